package http

import (
	"net/http"

	"github.com/billup/billup-web/internal/session/app/session"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

type logoutHandler struct {
	sessions SessionProvider
}

func NewLogoutHandler(sessions SessionProvider) pkghttp.Handler {
	return logoutHandler{sessions: sessions}
}

func (h logoutHandler) Method() string {
	return http.MethodPost
}

func (h logoutHandler) Path() string {
	return "/logout"
}

// Handle always ends on the login page, a failed remote logout only gets logged by the controller.
func (h logoutHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	h.sessions.ForRequest(w.Raw(), r).Controller.Logout(r.Context())
	w.Redirect(session.LoginRoute)
	return nil
}
