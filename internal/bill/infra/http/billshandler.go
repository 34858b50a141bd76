package http

import (
	"net/http"

	"github.com/billup/billup-web/internal/bill/app/service"
	"github.com/billup/billup-web/internal/bill/domain"
	"github.com/billup/billup-web/internal/pkg/web"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const listBillsError = "Failed to fetch bills."

type (
	BillsPage struct {
		Filter  domain.Filter
		Filters []domain.Filter
		Bills   []domain.Bill
		Summary domain.Summary
	}

	AllBillsPage struct {
		Bills []domain.Bill
	}
)

type billsHandler struct {
	bills    service.Bills
	renderer web.Renderer
}

func NewBillsHandler(bills service.Bills, renderer web.Renderer) pkghttp.Handler {
	return billsHandler{bills: bills, renderer: renderer}
}

func (h billsHandler) Method() string {
	return http.MethodGet
}

func (h billsHandler) Path() string {
	return "/bills"
}

// Handle falls back to all bills on an unknown filter.
func (h billsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	filter := domain.FilterAll
	if value := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[string]("filter"), nil); value != nil {
		if parsed, err := domain.ParseFilter(*value); err == nil {
			filter = parsed
		}
	}

	result, err := h.bills.UserBills(r.Context(), filter)
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	page := BillsPage{
		Filter:  filter,
		Filters: domain.Filters(),
		Bills:   result.Bills,
		Summary: result.Summary,
	}
	view := web.NewView(r.Context(), "My bills", page).WithAPIError(err, listBillsError)
	if err != nil {
		w.SetStatusCode(http.StatusBadGateway)
	}

	web.Render(w, h.renderer, web.PageBills, view)
	return nil
}

type allBillsHandler struct {
	bills    service.Bills
	renderer web.Renderer
}

func NewAllBillsHandler(bills service.Bills, renderer web.Renderer) pkghttp.Handler {
	return allBillsHandler{bills: bills, renderer: renderer}
}

func (h allBillsHandler) Method() string {
	return http.MethodGet
}

func (h allBillsHandler) Path() string {
	return "/bills/all"
}

func (h allBillsHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	bills, err := h.bills.AllBills(r.Context())
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	view := web.NewView(r.Context(), "All bills", AllBillsPage{Bills: bills}).WithAPIError(err, listBillsError)
	if err != nil {
		w.SetStatusCode(http.StatusBadGateway)
	}

	web.Render(w, h.renderer, web.PageAllBills, view)
	return nil
}
