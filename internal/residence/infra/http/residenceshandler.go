package http

import (
	"net/http"

	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/residence/app/service"
	"github.com/billup/billup-web/internal/residence/domain"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const (
	residencesTitle     = "Residences"
	listResidencesError = "Failed to load residences."
)

type ResidencesPage struct {
	Query      string
	Residences []domain.Residence
}

type residencesHandler struct {
	residences service.Residences
	renderer   web.Renderer
}

func NewResidencesHandler(residences service.Residences, renderer web.Renderer) pkghttp.Handler {
	return residencesHandler{residences: residences, renderer: renderer}
}

func (h residencesHandler) Method() string {
	return http.MethodGet
}

func (h residencesHandler) Path() string {
	return residencesPath
}

func (h residencesHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	query := ""
	if value := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("query"), nil); value != nil {
		query = *value
	}

	residences, err := h.residences.List(r.Context(), query)
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	view := web.NewView(r.Context(), residencesTitle, ResidencesPage{Query: query, Residences: residences}).
		WithAPIError(err, listResidencesError)
	if err != nil {
		w.SetStatusCode(http.StatusBadGateway)
	}

	web.Render(w, h.renderer, web.PageResidences, view)
	return nil
}
