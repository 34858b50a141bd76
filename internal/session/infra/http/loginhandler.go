package http

import (
	"errors"
	"net/http"

	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/session/app/external"
	"github.com/billup/billup-web/internal/session/app/service"
	"github.com/billup/billup-web/internal/session/app/session"
	"github.com/billup/billup-web/internal/session/domain"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

const (
	registeredNotice = "Account created, you can log in now."
	loginFailedError = "Login failed, please try again later."
)

type LoginForm struct {
	Email string
}

type loginPageHandler struct {
	renderer web.Renderer
}

func NewLoginPageHandler(renderer web.Renderer) pkghttp.Handler {
	return loginPageHandler{renderer: renderer}
}

func (h loginPageHandler) Method() string {
	return http.MethodGet
}

func (h loginPageHandler) Path() string {
	return session.LoginRoute
}

func (h loginPageHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	view := web.NewView(r.Context(), "Log in", LoginForm{})
	if registered := pkghttp.ParseRequestOptional(r, pkghttp.QueryParameter[bool]("registered"), nil); registered != nil && *registered {
		view = view.WithNotice(registeredNotice)
	}

	web.Render(w, h.renderer, web.PageLogin, view)
	return nil
}

type loginHandler struct {
	authentication service.Authentication
	sessions       SessionProvider
	renderer       web.Renderer
}

func NewLoginHandler(
	authentication service.Authentication,
	sessions SessionProvider,
	renderer web.Renderer,
) pkghttp.Handler {
	return loginHandler{
		authentication: authentication,
		sessions:       sessions,
		renderer:       renderer,
	}
}

func (h loginHandler) Method() string {
	return http.MethodPost
}

func (h loginHandler) Path() string {
	return session.LoginRoute
}

func (h loginHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) (err error) {
	email, err := pkghttp.ParseRequest(r, pkghttp.FormValue("email"), err)
	password, err := pkghttp.ParseRequest(r, pkghttp.FormValue("password"), err)
	if err != nil {
		return err
	}

	s := h.sessions.ForRequest(w.Raw(), r)
	err = h.authentication.Login(r.Context(), s.Controller, external.Credentials{
		Email:    email,
		Password: password,
	})
	switch {
	case errors.Is(err, service.ErrLoginFailed):
		w.SetStatusCode(http.StatusUnauthorized)
		web.Render(w, h.renderer, web.PageLogin, web.NewView(r.Context(), "Log in", LoginForm{Email: email}).WithAPIError(err, loginFailedError))
		return nil
	case errors.Is(err, domain.ErrInvalidToken):
		target, _ := s.Navigator.Target()
		w.Redirect(target)
		return nil
	case err != nil:
		return err
	}

	w.Redirect(session.MainRoute)
	return nil
}
