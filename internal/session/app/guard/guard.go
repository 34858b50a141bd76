package guard

//go:generate mockgen -source guard.go -destination mock/guard.go -package mock

import (
	"strings"

	"github.com/billup/billup-web/internal/session/app/session"
)

// PublicPaths matches paths reachable without a session. A pattern ending with * matches by prefix.
type PublicPaths []string

func DefaultPublicPaths() PublicPaths {
	return PublicPaths{
		"/",
		session.LoginRoute,
		"/registration",
		"/static/*",
		"/healthz",
		"/metrics",
	}
}

func (p PublicPaths) Match(path string) bool {
	for _, pattern := range p {
		if prefix, ok := strings.CutSuffix(pattern, "*"); ok {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		if pattern == path {
			return true
		}
	}
	return false
}

type Session interface {
	IsLoggedIn() bool
	Invalidate()
}

type Guard struct {
	publicPaths PublicPaths
	loginRoute  string
}

func New(publicPaths PublicPaths) Guard {
	return Guard{
		publicPaths: publicPaths,
		loginRoute:  session.LoginRoute,
	}
}

// Enforce clears an invalid session and sends the user to the login route unless path is public.
// It reports whether the page at path may be rendered.
func (g Guard) Enforce(s Session, navigator session.Navigator, path string) bool {
	if s.IsLoggedIn() {
		return true
	}

	s.Invalidate()
	if g.publicPaths.Match(path) {
		return true
	}

	navigator.Navigate(g.loginRoute)
	return false
}
