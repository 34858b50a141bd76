package service

//go:generate mockgen -source residence.go -destination mock/residence.go -package mock

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/billup/billup-web/internal/pkg/auth"
	"github.com/billup/billup-web/internal/residence/app/external"
	"github.com/billup/billup-web/internal/residence/app/permission"
	"github.com/billup/billup-web/internal/residence/domain"
)

var ErrInvalidResidence = errors.New("invalid residence")

var residenceMessages = map[string]string{
	"StreetAddress": "Street address is required.",
	"FlatNumber":    "Flat number is too long.",
	"City":          "City is required.",
	"PostalCode":    "Postal code is required.",
	"Country":       "Country is required.",
	"ResidenceType": "Choose a residence type.",
}

type (
	ResidenceData struct {
		StreetAddress string `validate:"required,max=100"`
		FlatNumber    string `validate:"max=10"`
		City          string `validate:"required,max=50"`
		PostalCode    string `validate:"required,max=10"`
		Country       string `validate:"required,max=56"`
		ResidenceType string `validate:"required,oneof=FLAT HOUSE"`
		Primary       bool
	}

	// ValidationError describes the first invalid residence field.
	ValidationError struct {
		Field   string
		Message string
	}

	Residences interface {
		// List returns all residences of the user, or the autocomplete matches when query is not blank.
		List(ctx context.Context, query string) ([]domain.Residence, error)
		Create(ctx context.Context, data ResidenceData) (domain.Residence, error)
		Apply(ctx context.Context, id domain.ID, action domain.Action) error
	}
)

func (e ValidationError) Error() string {
	return e.Message
}

func (e ValidationError) Unwrap() error {
	return ErrInvalidResidence
}

type residenceService struct {
	residenceAPI external.ResidenceAPI
	permissions  auth.PermissionService
	validate     *validator.Validate
}

func NewResidences(residenceAPI external.ResidenceAPI, permissions auth.PermissionService) Residences {
	return &residenceService{
		residenceAPI: residenceAPI,
		permissions:  permissions,
		validate:     validator.New(validator.WithRequiredStructEnabled()),
	}
}

func (s *residenceService) List(ctx context.Context, query string) ([]domain.Residence, error) {
	if err := s.permissions.Check(ctx, permission.CanManageResidences()); err != nil {
		return nil, err
	}

	query = strings.TrimSpace(query)
	if query == "" {
		residences, err := s.residenceAPI.List(ctx)
		if err != nil {
			return nil, fmt.Errorf("list residences: %w", err)
		}
		return residences, nil
	}

	residences, err := s.residenceAPI.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("search residences: %w", err)
	}
	return residences, nil
}

func (s *residenceService) Create(ctx context.Context, data ResidenceData) (domain.Residence, error) {
	if err := s.permissions.Check(ctx, permission.CanManageResidences()); err != nil {
		return domain.Residence{}, err
	}

	data = trimResidenceData(data)
	if err := s.validate.Struct(data); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			field := fieldErrs[0].Field()
			return domain.Residence{}, ValidationError{Field: field, Message: residenceMessages[field]}
		}
		return domain.Residence{}, fmt.Errorf("%w: %w", ErrInvalidResidence, err)
	}

	residence, err := s.residenceAPI.Create(ctx, external.NewResidence{
		StreetAddress: data.StreetAddress,
		FlatNumber:    data.FlatNumber,
		City:          data.City,
		PostalCode:    data.PostalCode,
		Country:       data.Country,
		ResidenceType: domain.Type(data.ResidenceType),
		Primary:       data.Primary,
	})
	if err != nil {
		return domain.Residence{}, fmt.Errorf("create residence: %w", err)
	}
	return residence, nil
}

func (s *residenceService) Apply(ctx context.Context, id domain.ID, action domain.Action) error {
	if err := s.permissions.Check(ctx, permission.CanManageResidences()); err != nil {
		return err
	}

	var err error
	switch action {
	case domain.ActionSetPrimary:
		err = s.residenceAPI.SetPrimary(ctx, id)
	case domain.ActionActivate:
		err = s.residenceAPI.Activate(ctx, id)
	case domain.ActionDeactivate:
		err = s.residenceAPI.Deactivate(ctx, id)
	case domain.ActionClone:
		_, err = s.residenceAPI.Clone(ctx, id)
	default:
		return fmt.Errorf("%w: %s", domain.ErrUnknownAction, action)
	}
	if err != nil {
		return fmt.Errorf("%s residence %d: %w", action, id, err)
	}
	return nil
}

func trimResidenceData(data ResidenceData) ResidenceData {
	data.StreetAddress = strings.TrimSpace(data.StreetAddress)
	data.FlatNumber = strings.TrimSpace(data.FlatNumber)
	data.City = strings.TrimSpace(data.City)
	data.PostalCode = strings.TrimSpace(data.PostalCode)
	data.Country = strings.TrimSpace(data.Country)
	return data
}
