package external

//go:generate mockgen -source residenceapi.go -destination mock/residenceapi.go -package mock

import (
	"context"

	"github.com/billup/billup-web/internal/residence/domain"
)

type (
	NewResidence struct {
		StreetAddress string
		FlatNumber    string
		City          string
		PostalCode    string
		Country       string
		ResidenceType domain.Type
		Primary       bool
	}

	ResidenceAPI interface {
		List(context.Context) ([]domain.Residence, error)
		Search(ctx context.Context, query string) ([]domain.Residence, error)
		Create(context.Context, NewResidence) (domain.Residence, error)
		SetPrimary(context.Context, domain.ID) error
		Activate(context.Context, domain.ID) error
		Deactivate(context.Context, domain.ID) error
		Clone(context.Context, domain.ID) (domain.Residence, error)
	}
)
