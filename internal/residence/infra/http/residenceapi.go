package http

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-resty/resty/v2"

	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	"github.com/billup/billup-web/internal/residence/app/external"
	"github.com/billup/billup-web/internal/residence/domain"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const residencesPath = "/residences"

type (
	ResidenceOut struct {
		ID            int    `json:"id"`
		StreetAddress string `json:"streetAddress"`
		FlatNumber    string `json:"flatNumber"`
		City          string `json:"city"`
		PostalCode    string `json:"postalCode"`
		Country       string `json:"country"`
		ResidencyType string `json:"residencyType"`
		FullAddress   string `json:"fullAddress"`
		Active        bool   `json:"active"`
		Primary       bool   `json:"primary"`
		IsSecondary   bool   `json:"isSecondary"`
	}

	createResidenceIn struct {
		StreetAddress string `json:"streetAddress"`
		FlatNumber    string `json:"flatNumber,omitempty"`
		City          string `json:"city"`
		PostalCode    string `json:"postalCode"`
		Country       string `json:"country"`
		ResidenceType string `json:"residenceType"`
		Primary       bool   `json:"primary"`
	}
)

type residenceAPI struct {
	client      pkghttp.Client
	retryPolicy pkghttp.RetryPolicy
}

func NewResidenceAPI(client pkghttp.Client, retryPolicy pkghttp.RetryPolicy) external.ResidenceAPI {
	return residenceAPI{
		client:      client.With(commonhttp.WithBearerAuth()),
		retryPolicy: retryPolicy,
	}
}

func (a residenceAPI) List(ctx context.Context) ([]domain.Residence, error) {
	return a.listResidences(ctx, residencesPath, nil)
}

func (a residenceAPI) Search(ctx context.Context, query string) ([]domain.Residence, error) {
	return a.listResidences(ctx, residencesPath+"/autocomplete", map[string]string{"query": query})
}

func (a residenceAPI) Create(ctx context.Context, residence external.NewResidence) (domain.Residence, error) {
	resp, err := a.client.NewRequest(ctx).
		SetBody(createResidenceIn{
			StreetAddress: residence.StreetAddress,
			FlatNumber:    residence.FlatNumber,
			City:          residence.City,
			PostalCode:    residence.PostalCode,
			Country:       residence.Country,
			ResidenceType: string(residence.ResidenceType),
			Primary:       residence.Primary,
		}).
		Post(residencesPath)
	return a.parseResidence(resp, err)
}

func (a residenceAPI) SetPrimary(ctx context.Context, id domain.ID) error {
	return a.changeState(ctx, id, domain.ActionSetPrimary)
}

func (a residenceAPI) Activate(ctx context.Context, id domain.ID) error {
	return a.changeState(ctx, id, domain.ActionActivate)
}

func (a residenceAPI) Deactivate(ctx context.Context, id domain.ID) error {
	return a.changeState(ctx, id, domain.ActionDeactivate)
}

func (a residenceAPI) Clone(ctx context.Context, id domain.ID) (domain.Residence, error) {
	resp, err := a.client.NewRequest(ctx).Post(actionPath(id, domain.ActionClone))
	return a.parseResidence(resp, err)
}

// changeState uses PUT, so the request is safe to repeat.
func (a residenceAPI) changeState(ctx context.Context, id domain.ID, action domain.Action) error {
	resp, err := pkghttp.DoIdempotent(ctx, a.retryPolicy, a.client.NewRequest, http.MethodPut, actionPath(id, action))
	return commonhttp.CheckResponse(resp, err)
}

func (a residenceAPI) listResidences(ctx context.Context, path string, query map[string]string) ([]domain.Residence, error) {
	newRequest := func(ctx context.Context) *resty.Request {
		return a.client.NewRequest(ctx).SetQueryParams(query)
	}
	resp, err := pkghttp.DoIdempotent(ctx, a.retryPolicy, newRequest, http.MethodGet, path)
	if err = commonhttp.CheckResponse(resp, err); err != nil {
		return nil, err
	}

	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[[]ResidenceOut](), nil)
	if err != nil {
		return nil, fmt.Errorf("parse residences: %w", err)
	}

	residences := make([]domain.Residence, 0, len(out))
	for _, r := range out {
		residences = append(residences, toDomainResidence(r))
	}
	return residences, nil
}

func (a residenceAPI) parseResidence(resp *resty.Response, err error) (domain.Residence, error) {
	if err = commonhttp.CheckResponse(resp, err); err != nil {
		return domain.Residence{}, err
	}

	out, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[ResidenceOut](), nil)
	if err != nil {
		return domain.Residence{}, fmt.Errorf("parse residence: %w", err)
	}
	return toDomainResidence(out), nil
}

func actionPath(id domain.ID, action domain.Action) string {
	return residencesPath + "/" + strconv.Itoa(int(id)) + "/" + string(action)
}

func toDomainResidence(r ResidenceOut) domain.Residence {
	return domain.Residence{
		ID:            domain.ID(r.ID),
		StreetAddress: r.StreetAddress,
		FlatNumber:    r.FlatNumber,
		City:          r.City,
		PostalCode:    r.PostalCode,
		Country:       r.Country,
		ResidencyType: domain.Type(r.ResidencyType),
		FullAddress:   r.FullAddress,
		Active:        r.Active,
		Primary:       r.Primary,
		Secondary:     r.IsSecondary,
	}
}
