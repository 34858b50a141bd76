package http

import (
	"errors"
	"net/http"

	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/session/app/service"
	"github.com/billup/billup-web/internal/session/app/session"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const (
	registrationPath        = "/registration"
	registrationFailedError = "Registration failed, please try again later."
)

type RegistrationForm struct {
	Name        string
	Surname     string
	Residency   string
	Email       string
	PhoneNumber string
	Role        string
}

type registrationPageHandler struct {
	renderer web.Renderer
}

func NewRegistrationPageHandler(renderer web.Renderer) pkghttp.Handler {
	return registrationPageHandler{renderer: renderer}
}

func (h registrationPageHandler) Method() string {
	return http.MethodGet
}

func (h registrationPageHandler) Path() string {
	return registrationPath
}

func (h registrationPageHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	web.Render(w, h.renderer, web.PageRegistration, web.NewView(r.Context(), "Sign up", RegistrationForm{Role: "CLIENT"}))
	return nil
}

type registrationHandler struct {
	authentication service.Authentication
	renderer       web.Renderer
}

func NewRegistrationHandler(authentication service.Authentication, renderer web.Renderer) pkghttp.Handler {
	return registrationHandler{
		authentication: authentication,
		renderer:       renderer,
	}
}

func (h registrationHandler) Method() string {
	return http.MethodPost
}

func (h registrationHandler) Path() string {
	return registrationPath
}

func (h registrationHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	registration := service.Registration{}
	registration.Name, err = pkghttp.ParseRequest(r, pkghttp.FormValue("name"), err)
	registration.Surname, err = pkghttp.ParseRequest(r, pkghttp.FormValue("surname"), err)
	registration.Residency, err = pkghttp.ParseRequest(r, pkghttp.FormValue("residency"), err)
	registration.Email, err = pkghttp.ParseRequest(r, pkghttp.FormValue("email"), err)
	registration.PhoneNumber, err = pkghttp.ParseRequest(r, pkghttp.FormValue("phoneNumber"), err)
	registration.Role, err = pkghttp.ParseRequest(r, pkghttp.FormValue("role"), err)
	registration.Password, err = pkghttp.ParseRequest(r, pkghttp.FormValue("password"), err)
	registration.RepeatedPassword, err = pkghttp.ParseRequest(r, pkghttp.FormValue("repeatedPassword"), err)
	if err != nil {
		return err
	}

	err = h.authentication.Register(r.Context(), registration)
	if errors.Is(err, service.ErrInvalidRegistration) || errors.Is(err, service.ErrRegistrationFailed) {
		form := RegistrationForm{
			Name:        registration.Name,
			Surname:     registration.Surname,
			Residency:   registration.Residency,
			Email:       registration.Email,
			PhoneNumber: registration.PhoneNumber,
			Role:        registration.Role,
		}
		view := web.NewView(r.Context(), "Sign up", form)
		if errors.Is(err, service.ErrInvalidRegistration) {
			view = view.WithError(err)
		} else {
			view = view.WithAPIError(err, registrationFailedError)
		}

		w.SetStatusCode(http.StatusUnprocessableEntity)
		web.Render(w, h.renderer, web.PageRegistration, view)
		return nil
	}
	if err != nil {
		return err
	}

	w.Redirect(session.LoginRoute + "?registered=true")
	return nil
}
