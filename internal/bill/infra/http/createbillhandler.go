package http

import (
	"errors"
	"net/http"

	"github.com/billup/billup-web/internal/bill/app/service"
	"github.com/billup/billup-web/internal/bill/domain"
	"github.com/billup/billup-web/internal/pkg/web"
	pkghttp "github.com/billup/billup-web/pkg/http"
	pkgstrings "github.com/billup/billup-web/pkg/strings"
)

const (
	createBillPath    = "/company/create-bill"
	createBillTitle   = "Issue a bill"
	billCreatedNotice = "Bill created successfully!"
	createBillError   = "Failed to create bill."
)

// CreateBillForm echoes the submitted values back to the form as typed.
type CreateBillForm struct {
	Name        string
	Amount      string
	DueDate     string
	Type        string
	ResidenceID string
	CompanyID   string
	Types       []domain.Type
}

type createBillPageHandler struct {
	bills    service.Bills
	renderer web.Renderer
}

func NewCreateBillPageHandler(bills service.Bills, renderer web.Renderer) pkghttp.Handler {
	return createBillPageHandler{bills: bills, renderer: renderer}
}

func (h createBillPageHandler) Method() string {
	return http.MethodGet
}

func (h createBillPageHandler) Path() string {
	return createBillPath
}

func (h createBillPageHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	if web.RenderAccessError(r.Context(), w, h.renderer, h.bills.AuthorizeCreate(r.Context())) {
		return nil
	}

	form := CreateBillForm{Types: domain.Types()}
	web.Render(w, h.renderer, web.PageCreateBill, web.NewView(r.Context(), createBillTitle, form))
	return nil
}

type createBillHandler struct {
	bills    service.Bills
	renderer web.Renderer
}

func NewCreateBillHandler(bills service.Bills, renderer web.Renderer) pkghttp.Handler {
	return createBillHandler{bills: bills, renderer: renderer}
}

func (h createBillHandler) Method() string {
	return http.MethodPost
}

func (h createBillHandler) Path() string {
	return createBillPath
}

func (h createBillHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	form := CreateBillForm{Types: domain.Types()}
	form.Name, err = pkghttp.ParseRequest(r, pkghttp.FormValue("name"), err)
	form.Amount, err = pkghttp.ParseRequest(r, pkghttp.FormValue("amount"), err)
	form.DueDate, err = pkghttp.ParseRequest(r, pkghttp.FormValue("dueDate"), err)
	form.Type, err = pkghttp.ParseRequest(r, pkghttp.FormValue("type"), err)
	form.ResidenceID, err = pkghttp.ParseRequest(r, pkghttp.FormValue("residenceId"), err)
	form.CompanyID, err = pkghttp.ParseRequest(r, pkghttp.FormValue("companyId"), err)
	if err != nil {
		return err
	}

	data, err := parseBillData(form)
	if err != nil {
		if web.RenderAccessError(r.Context(), w, h.renderer, h.bills.AuthorizeCreate(r.Context())) {
			return nil
		}
	} else {
		_, err = h.bills.Create(r.Context(), data)
	}
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	view := web.NewView(r.Context(), createBillTitle, form)
	switch {
	case errors.Is(err, service.ErrInvalidBill):
		w.SetStatusCode(http.StatusUnprocessableEntity)
		view = view.WithError(err)
	case err != nil:
		w.SetStatusCode(http.StatusBadGateway)
		view = view.WithAPIError(err, createBillError)
	default:
		view = web.NewView(r.Context(), createBillTitle, CreateBillForm{Types: domain.Types()}).WithNotice(billCreatedNotice)
	}

	web.Render(w, h.renderer, web.PageCreateBill, view)
	return nil
}

// parseBillData leaves blank numbers at zero for the validation to report.
func parseBillData(form CreateBillForm) (data service.BillData, err error) {
	data = service.BillData{
		Name:    form.Name,
		DueDate: form.DueDate,
		Type:    form.Type,
	}
	data.Amount, err = parseNumber[float64](form.Amount, "Amount", err)
	data.ResidenceID, err = parseNumber[int](form.ResidenceID, "ResidenceID", err)
	data.CompanyID, err = parseNumber[int](form.CompanyID, "CompanyID", err)
	return data, err
}

func parseNumber[T float64 | int](value, field string, err error) (T, error) {
	var zero T
	if err != nil || value == "" {
		return zero, err
	}

	v, parseErr := pkgstrings.ParseTypedValue[T](value)
	if parseErr != nil {
		return zero, service.MalformedBillField(field)
	}
	return v, nil
}
