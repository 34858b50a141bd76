package http

import (
	"errors"
	"net/http"

	"github.com/billup/billup-web/internal/bill/app/service"
	"github.com/billup/billup-web/internal/bill/domain"
	"github.com/billup/billup-web/internal/pkg/web"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const (
	paymentPath  = "/payments"
	paymentTitle = "Pay a bill"
	paymentError = "Payment failed, please try again."
)

type PaymentPage struct {
	Bill      *domain.Bill
	Providers []string
}

type paymentPageHandler struct {
	bills    service.Bills
	renderer web.Renderer
}

func NewPaymentPageHandler(bills service.Bills, renderer web.Renderer) pkghttp.Handler {
	return paymentPageHandler{bills: bills, renderer: renderer}
}

func (h paymentPageHandler) Method() string {
	return http.MethodGet
}

func (h paymentPageHandler) Path() string {
	return paymentPath
}

func (h paymentPageHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	billID, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[int]("billId"), nil)
	if err != nil {
		return err
	}

	page, err := h.page(r, domain.ID(billID))
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	view := web.NewView(r.Context(), paymentTitle, page)
	switch {
	case errors.Is(err, service.ErrBillNotFound):
		w.SetStatusCode(http.StatusNotFound)
	case err != nil:
		w.SetStatusCode(http.StatusBadGateway)
		view = view.WithAPIError(err, paymentError)
	}

	web.Render(w, h.renderer, web.PagePayment, view)
	return nil
}

func (h paymentPageHandler) page(r *http.Request, billID domain.ID) (PaymentPage, error) {
	page := PaymentPage{Providers: domain.Providers()}
	bill, err := h.bills.PaymentBill(r.Context(), billID)
	if err != nil {
		return page, err
	}

	page.Bill = &bill
	return page, nil
}

type paymentHandler struct {
	paymentPageHandler
}

func NewPaymentHandler(bills service.Bills, renderer web.Renderer) pkghttp.Handler {
	return paymentHandler{paymentPageHandler{bills: bills, renderer: renderer}}
}

func (h paymentHandler) Method() string {
	return http.MethodPost
}

func (h paymentHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	billID, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[int]("billId"), nil)
	provider, err := pkghttp.ParseRequest(r, pkghttp.FormValue("provider"), err)
	methodToken, err := pkghttp.ParseRequest(r, pkghttp.FormValue("methodToken"), err)
	if err != nil {
		return err
	}

	err = h.bills.Pay(r.Context(), service.PaymentData{
		BillID:      domain.ID(billID),
		Provider:    provider,
		MethodToken: methodToken,
	})
	if err == nil {
		w.Redirect("/bills")
		return nil
	}
	if web.RenderAccessError(r.Context(), w, h.renderer, err) {
		return nil
	}

	code := http.StatusBadGateway
	switch {
	case errors.Is(err, service.ErrBillNotFound):
		code = http.StatusNotFound
	case errors.Is(err, service.ErrInvalidPayment), errors.Is(err, service.ErrBillNotPayable):
		code = http.StatusUnprocessableEntity
	}

	// the page is rendered again without the failed input, a failed lookup leaves it empty
	page, _ := h.page(r, domain.ID(billID))
	view := web.NewView(r.Context(), paymentTitle, page)
	if code == http.StatusBadGateway {
		view = view.WithAPIError(err, paymentError)
	} else {
		view = view.WithError(err)
	}

	w.SetStatusCode(code)
	web.Render(w, h.renderer, web.PagePayment, view)
	return nil
}
