package service

//go:generate mockgen -source bill.go -destination mock/bill.go -package mock

import (
	"context"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/billup/billup-web/internal/bill/app/external"
	"github.com/billup/billup-web/internal/bill/app/permission"
	"github.com/billup/billup-web/internal/bill/domain"
	"github.com/billup/billup-web/internal/pkg/auth"
)

var (
	ErrBillNotFound   = errors.New("bill not found")
	ErrBillNotPayable = errors.New("bill is not payable")
	ErrInvalidBill    = errors.New("invalid bill")
	ErrInvalidPayment = errors.New("invalid payment")
)

var billMessages = map[string]string{
	"Name":        "Bill name is required.",
	"Amount":      "Amount must be a number greater than 0.",
	"DueDate":     "Due date must be a date in YYYY-MM-DD format.",
	"Type":        "Choose a bill type.",
	"ResidenceID": "Residence ID must be a positive whole number.",
	"CompanyID":   "Company ID must be a positive whole number.",
}

var paymentMessages = map[string]string{
	"Provider":    "Choose a payment provider.",
	"MethodToken": "Payment method token is required.",
}

type (
	BillData struct {
		Name        string  `validate:"required,max=100"`
		Amount      float64 `validate:"gt=0,finite"`
		DueDate     string  `validate:"required,datetime=2006-01-02"`
		Type        string  `validate:"required,billtype"`
		ResidenceID int     `validate:"gt=0"`
		CompanyID   int     `validate:"gt=0"`
	}

	PaymentData struct {
		BillID      domain.ID
		Provider    string `validate:"required,provider"`
		MethodToken string `validate:"required,max=255"`
	}

	UserBills struct {
		Filter  domain.Filter
		Bills   []domain.Bill
		Summary domain.Summary
	}

	// ValidationError describes the first invalid form field.
	ValidationError struct {
		Field   string
		Message string
		kind    error
	}

	Bills interface {
		UserBills(ctx context.Context, filter domain.Filter) (UserBills, error)
		AllBills(ctx context.Context) ([]domain.Bill, error)
		AuthorizeCreate(ctx context.Context) error
		Create(ctx context.Context, data BillData) (domain.Bill, error)
		PaymentBill(ctx context.Context, id domain.ID) (domain.Bill, error)
		Pay(ctx context.Context, data PaymentData) error
	}
)

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Unwrap() error {
	return e.kind
}

// MalformedBillField reports a bill form value that could not be read as the field's type.
func MalformedBillField(field string) error {
	return ValidationError{Field: field, Message: billMessages[field], kind: ErrInvalidBill}
}

type billService struct {
	billAPI     external.BillAPI
	paymentAPI  external.PaymentAPI
	permissions auth.PermissionService
	validate    *validator.Validate
}

func NewBills(
	billAPI external.BillAPI,
	paymentAPI external.PaymentAPI,
	permissions auth.PermissionService,
) Bills {
	validate := validator.New(validator.WithRequiredStructEnabled())
	_ = validate.RegisterValidation("billtype", func(fl validator.FieldLevel) bool {
		return domain.Type(fl.Field().String()).Valid()
	})
	_ = validate.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		v := fl.Field().Float()
		return !math.IsInf(v, 0) && !math.IsNaN(v)
	})
	_ = validate.RegisterValidation("provider", func(fl validator.FieldLevel) bool {
		for _, provider := range domain.Providers() {
			if provider == fl.Field().String() {
				return true
			}
		}
		return false
	})

	return &billService{
		billAPI:     billAPI,
		paymentAPI:  paymentAPI,
		permissions: permissions,
		validate:    validate,
	}
}

func (s *billService) UserBills(ctx context.Context, filter domain.Filter) (UserBills, error) {
	principal, err := s.currentUser(ctx, permission.CanListOwnBills())
	if err != nil {
		return UserBills{}, err
	}

	bills, err := s.billAPI.ListUserBills(ctx, principal.UserID)
	if err != nil {
		return UserBills{}, fmt.Errorf("list bills of user %d: %w", principal.UserID, err)
	}

	return UserBills{
		Filter:  filter,
		Bills:   filter.Apply(bills),
		Summary: domain.Summarize(bills),
	}, nil
}

func (s *billService) AllBills(ctx context.Context) ([]domain.Bill, error) {
	if err := s.permissions.Check(ctx, permission.CanListAllBills()); err != nil {
		return nil, err
	}

	bills, err := s.billAPI.ListAllBills(ctx)
	if err != nil {
		return nil, fmt.Errorf("list all bills: %w", err)
	}
	return bills, nil
}

func (s *billService) AuthorizeCreate(ctx context.Context) error {
	return s.permissions.Check(ctx, permission.CanCreateBill())
}

func (s *billService) Create(ctx context.Context, data BillData) (domain.Bill, error) {
	if err := s.AuthorizeCreate(ctx); err != nil {
		return domain.Bill{}, err
	}

	data.Name = strings.TrimSpace(data.Name)
	if err := s.validateStruct(data, billMessages, ErrInvalidBill); err != nil {
		return domain.Bill{}, err
	}

	bill, err := s.billAPI.CreateBill(ctx, external.NewBill{
		Name:        data.Name,
		Amount:      data.Amount,
		DueDate:     data.DueDate,
		Type:        domain.Type(data.Type),
		ResidenceID: data.ResidenceID,
		CompanyID:   data.CompanyID,
	})
	if err != nil {
		return domain.Bill{}, fmt.Errorf("create bill: %w", err)
	}
	return bill, nil
}

// PaymentBill looks the bill up among the bills of the current user only.
func (s *billService) PaymentBill(ctx context.Context, id domain.ID) (domain.Bill, error) {
	principal, err := s.currentUser(ctx, permission.CanPayBill())
	if err != nil {
		return domain.Bill{}, err
	}

	return s.findUserBill(ctx, principal.UserID, id)
}

func (s *billService) Pay(ctx context.Context, data PaymentData) error {
	principal, err := s.currentUser(ctx, permission.CanPayBill())
	if err != nil {
		return err
	}

	data.MethodToken = strings.TrimSpace(data.MethodToken)
	if err = s.validateStruct(data, paymentMessages, ErrInvalidPayment); err != nil {
		return err
	}

	bill, err := s.findUserBill(ctx, principal.UserID, data.BillID)
	if err != nil {
		return err
	}
	if !bill.Payable() {
		return ErrBillNotPayable
	}

	err = s.paymentAPI.Pay(ctx, external.Payment{
		BillID:      bill.ID,
		UserID:      principal.UserID,
		Amount:      bill.Amount,
		Provider:    data.Provider,
		MethodToken: data.MethodToken,
	})
	if err != nil {
		return fmt.Errorf("pay bill %d: %w", bill.ID, err)
	}
	return nil
}

func (s *billService) currentUser(ctx context.Context, p auth.Permission) (auth.Principal, error) {
	if err := s.permissions.Check(ctx, p); err != nil {
		return auth.Principal{}, err
	}
	return auth.CurrentPrincipal(ctx)
}

func (s *billService) findUserBill(ctx context.Context, userID int, id domain.ID) (domain.Bill, error) {
	bills, err := s.billAPI.ListUserBills(ctx, userID)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("list bills of user %d: %w", userID, err)
	}

	for _, bill := range bills {
		if bill.ID == id {
			return bill, nil
		}
	}
	return domain.Bill{}, ErrBillNotFound
}

func (s *billService) validateStruct(data any, messages map[string]string, kind error) error {
	err := s.validate.Struct(data)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		field := fieldErrs[0].Field()
		return ValidationError{Field: field, Message: messages[field], kind: kind}
	}
	return fmt.Errorf("%w: %w", kind, err)
}
