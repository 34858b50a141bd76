package http

import (
	"fmt"
	"net/http"

	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/residence/app/service"
	"github.com/billup/billup-web/internal/residence/domain"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const residenceActionError = "Failed to update residence."

type residenceActionHandler struct {
	residences service.Residences
	renderer   web.Renderer
}

func NewResidenceActionHandler(residences service.Residences, renderer web.Renderer) pkghttp.Handler {
	return residenceActionHandler{residences: residences, renderer: renderer}
}

func (h residenceActionHandler) Method() string {
	return http.MethodPost
}

func (h residenceActionHandler) Path() string {
	return residencesPath + "/{id:[0-9]+}/{action}"
}

// Handle returns to the residence list, a failed action shows the list with the error.
func (h residenceActionHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	id, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[int]("id"), nil)
	actionValue, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("action"), err)
	if err != nil {
		return err
	}
	action, err := domain.ParseAction(actionValue)
	if err != nil {
		return fmt.Errorf("%w: %w", pkghttp.ErrParsingError, err)
	}

	err = h.residences.Apply(r.Context(), domain.ID(id), action)
	if err == nil {
		w.Redirect(residencesPath)
		return nil
	}
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	residences, _ := h.residences.List(r.Context(), "")
	view := web.NewView(r.Context(), residencesTitle, ResidencesPage{Residences: residences}).
		WithAPIError(err, residenceActionError)

	w.SetStatusCode(http.StatusBadGateway)
	web.Render(w, h.renderer, web.PageResidences, view)
	return nil
}
