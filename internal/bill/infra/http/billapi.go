package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/billup/billup-web/internal/bill/app/external"
	"github.com/billup/billup-web/internal/bill/domain"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

type (
	BillOut struct {
		ID              int     `json:"id"`
		Name            string  `json:"name"`
		Amount          float64 `json:"amount"`
		DueDate         string  `json:"dueDate"`
		IssueDate       string  `json:"issueDate"`
		Type            string  `json:"type"`
		Status          string  `json:"status"`
		Priority        string  `json:"priority"`
		CompanyName     string  `json:"companyName"`
		UserName        string  `json:"userName"`
		TotalPaid       float64 `json:"totalPaid"`
		RemainingAmount float64 `json:"remainingAmount"`
	}

	createBillIn struct {
		Name        string  `json:"name"`
		Amount      float64 `json:"amount"`
		DueDate     string  `json:"dueDate"`
		Type        string  `json:"type"`
		ResidenceID int     `json:"residenceId"`
		CompanyID   int     `json:"companyId"`
	}

	paymentIn struct {
		BillID      int     `json:"billId"`
		UserID      int     `json:"userId"`
		Amount      float64 `json:"amount"`
		Provider    string  `json:"provider"`
		MethodToken string  `json:"methodToken"`
	}
)

type API interface {
	external.BillAPI
	external.PaymentAPI
}

type billAPI struct {
	client      pkghttp.Client
	retryPolicy pkghttp.RetryPolicy
}

// NewBillAPI returns the client of the bills and payments endpoints, authenticated with the bearer token of the request session.
func NewBillAPI(client pkghttp.Client, retryPolicy pkghttp.RetryPolicy) API {
	return billAPI{
		client:      client.With(commonhttp.WithBearerAuth()),
		retryPolicy: retryPolicy,
	}
}

func (a billAPI) ListUserBills(ctx context.Context, userID int) ([]domain.Bill, error) {
	return a.listBills(ctx, "/bills/user/"+strconv.Itoa(userID))
}

func (a billAPI) ListAllBills(ctx context.Context) ([]domain.Bill, error) {
	return a.listBills(ctx, "/bills")
}

func (a billAPI) CreateBill(ctx context.Context, bill external.NewBill) (domain.Bill, error) {
	resp, err := a.client.NewRequest(ctx).
		SetBody(createBillIn{
			Name:        bill.Name,
			Amount:      bill.Amount,
			DueDate:     bill.DueDate,
			Type:        string(bill.Type),
			ResidenceID: bill.ResidenceID,
			CompanyID:   bill.CompanyID,
		}).
		Post("/bills")
	if err = commonhttp.CheckResponse(resp, err); err != nil {
		return domain.Bill{}, err
	}

	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[BillOut](), nil)
	if err != nil {
		return domain.Bill{}, fmt.Errorf("parse created bill: %w", err)
	}
	return toDomainBill(out), nil
}

func (a billAPI) Pay(ctx context.Context, payment external.Payment) error {
	resp, err := a.client.NewRequest(ctx).
		SetBody(paymentIn{
			BillID:      int(payment.BillID),
			UserID:      payment.UserID,
			Amount:      payment.Amount,
			Provider:    payment.Provider,
			MethodToken: payment.MethodToken,
		}).
		Post("/payments")
	return commonhttp.CheckResponse(resp, err)
}

func (a billAPI) listBills(ctx context.Context, path string) ([]domain.Bill, error) {
	resp, err := pkghttp.DoIdempotent(ctx, a.retryPolicy, a.client.NewRequest, http.MethodGet, path)
	if err = commonhttp.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]BillOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("parse bills: %w", err)
	}

	bills := make([]domain.Bill, 0, len(out))
	for _, b := range out {
		bills = append(bills, toDomainBill(b))
	}
	return bills, nil
}

func toDomainBill(b BillOut) domain.Bill {
	return domain.Bill{
		ID:              domain.ID(b.ID),
		Name:            b.Name,
		Amount:          b.Amount,
		DueDate:         b.DueDate,
		IssueDate:       b.IssueDate,
		Type:            domain.Type(b.Type),
		Status:          domain.Status(b.Status),
		Priority:        domain.Priority(b.Priority),
		CompanyName:     b.CompanyName,
		UserName:        b.UserName,
		TotalPaid:       b.TotalPaid,
		RemainingAmount: b.RemainingAmount,
	}
}
