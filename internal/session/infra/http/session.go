package http

import (
	"context"
	"net/http"

	"github.com/billup/billup-web/internal/pkg/auth"
	"github.com/billup/billup-web/internal/session/app/external"
	"github.com/billup/billup-web/internal/session/app/guard"
	"github.com/billup/billup-web/internal/session/app/session"
	"github.com/billup/billup-web/internal/session/app/token"
	"github.com/billup/billup-web/internal/session/infra/storage"
	pkghttp "github.com/billup/billup-web/pkg/http"
	"github.com/billup/billup-web/pkg/log"
	"github.com/billup/billup-web/pkg/observability"
)

type contextKey int

const requestSessionContextKey contextKey = iota

// RequestSession is the session controller of the browser that sent the request.
type RequestSession struct {
	Controller *session.Controller
	Navigator  *RedirectNavigator
}

type SessionProvider interface {
	// ForRequest returns the session already attached to r, or hydrates a new one from its cookies.
	ForRequest(w http.ResponseWriter, r *http.Request) RequestSession
}

type sessionProvider struct {
	codec         token.Codec
	validator     token.Validator
	authAPI       external.AuthAPI
	cookieOptions []storage.CookieOption
	logger        log.Logger
}

func NewSessionProvider(
	codec token.Codec,
	validator token.Validator,
	authAPI external.AuthAPI,
	logger log.Logger,
	cookieOptions ...storage.CookieOption,
) SessionProvider {
	return sessionProvider{
		codec:         codec,
		validator:     validator,
		authAPI:       authAPI,
		cookieOptions: cookieOptions,
		logger:        logger,
	}
}

func (p sessionProvider) ForRequest(w http.ResponseWriter, r *http.Request) RequestSession {
	if s, ok := r.Context().Value(requestSessionContextKey).(RequestSession); ok {
		return s
	}

	navigator := NewRedirectNavigator()
	store := session.NewStore(
		storage.NewCookies(w, r, p.cookieOptions...),
		p.codec,
		p.validator,
		p.logger,
	)

	return RequestSession{
		Controller: session.NewController(r.Context(), store, p.validator, p.codec, p.authAPI, navigator, p.logger),
		Navigator:  navigator,
	}
}

// WithSessionGuard runs the route guard before the handler and publishes the session principal
// and bearer token into the request context. The user id of a signed-in session is attached to the observer.
func WithSessionGuard(provider SessionProvider, g guard.Guard, observer observability.Observer) pkghttp.ServerOption {
	return pkghttp.WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			s := provider.ForRequest(w, r)
			if !g.Enforce(s.Controller, s.Navigator, r.URL.Path) {
				target, _ := s.Navigator.Target()
				pkghttp.SetResponseCode(r.Context(), http.StatusSeeOther)
				http.Redirect(w, r, target, http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), requestSessionContextKey, s)
			p, bearer := principal(s.Controller)
			ctx = auth.WithSession(ctx, p, bearer)
			if p != nil {
				ctx = observer.WithUserID(ctx, p.ID())
			}
			handler.ServeHTTP(w, r.WithContext(ctx))
		})
	})
}

func principal(controller *session.Controller) (*auth.Principal, string) {
	if !controller.IsLoggedIn() {
		return nil, ""
	}

	state := controller.State()
	t, _ := state.AccessToken()
	userID, _ := state.UserID()
	roles, _ := state.Roles()
	return &auth.Principal{UserID: userID, Roles: roles}, string(t)
}
