package http

import (
	"errors"
	"net/http"

	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/residence/app/service"
	"github.com/billup/billup-web/internal/residence/domain"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const (
	createResidencePath  = residencesPath + "/create"
	createResidenceTitle = "Add residence"
	createResidenceError = "Failed to create residence."
)

type CreateResidenceForm struct {
	StreetAddress string
	FlatNumber    string
	City          string
	PostalCode    string
	Country       string
	ResidenceType string
	Primary       bool
	Types         []domain.Type
}

type createResidencePageHandler struct {
	renderer web.Renderer
}

func NewCreateResidencePageHandler(renderer web.Renderer) pkghttp.Handler {
	return createResidencePageHandler{renderer: renderer}
}

func (h createResidencePageHandler) Method() string {
	return http.MethodGet
}

func (h createResidencePageHandler) Path() string {
	return createResidencePath
}

func (h createResidencePageHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	form := CreateResidenceForm{ResidenceType: string(domain.TypeFlat), Types: domain.Types()}
	web.Render(w, h.renderer, web.PageCreateResidence, web.NewView(r.Context(), createResidenceTitle, form))
	return nil
}

type createResidenceHandler struct {
	residences service.Residences
	renderer   web.Renderer
}

func NewCreateResidenceHandler(residences service.Residences, renderer web.Renderer) pkghttp.Handler {
	return createResidenceHandler{residences: residences, renderer: renderer}
}

func (h createResidenceHandler) Method() string {
	return http.MethodPost
}

func (h createResidenceHandler) Path() string {
	return createResidencePath
}

func (h createResidenceHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	form := CreateResidenceForm{Types: domain.Types()}
	form.StreetAddress, err = pkghttp.ParseRequest(r, pkghttp.FormValue("streetAddress"), err)
	form.FlatNumber, err = pkghttp.ParseRequest(r, pkghttp.FormValue("flatNumber"), err)
	form.City, err = pkghttp.ParseRequest(r, pkghttp.FormValue("city"), err)
	form.PostalCode, err = pkghttp.ParseRequest(r, pkghttp.FormValue("postalCode"), err)
	form.Country, err = pkghttp.ParseRequest(r, pkghttp.FormValue("country"), err)
	form.ResidenceType, err = pkghttp.ParseRequest(r, pkghttp.FormValue("residenceType"), err)
	if err != nil {
		return err
	}
	if primary := pkghttp.ParseRequestOptional(r, pkghttp.TypedFormValue[bool]("primary"), nil); primary != nil {
		form.Primary = *primary
	}

	_, err = h.residences.Create(r.Context(), service.ResidenceData{
		StreetAddress: form.StreetAddress,
		FlatNumber:    form.FlatNumber,
		City:          form.City,
		PostalCode:    form.PostalCode,
		Country:       form.Country,
		ResidenceType: form.ResidenceType,
		Primary:       form.Primary,
	})
	if err == nil {
		w.Redirect(residencesPath)
		return nil
	}
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	view := web.NewView(r.Context(), createResidenceTitle, form)
	if errors.Is(err, service.ErrInvalidResidence) {
		w.SetStatusCode(http.StatusUnprocessableEntity)
		view = view.WithError(err)
	} else {
		w.SetStatusCode(http.StatusBadGateway)
		view = view.WithAPIError(err, createResidenceError)
	}

	web.Render(w, h.renderer, web.PageCreateResidence, view)
	return nil
}
