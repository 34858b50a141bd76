package session

import (
	commoncmd "github.com/billup/billup-web/internal/pkg/cmd"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/session/app/external"
	"github.com/billup/billup-web/internal/session/app/guard"
	"github.com/billup/billup-web/internal/session/app/service"
	"github.com/billup/billup-web/internal/session/app/token"
	"github.com/billup/billup-web/internal/session/infra/http"
	"github.com/billup/billup-web/internal/session/infra/jwt"
	"github.com/billup/billup-web/internal/session/infra/storage"
	"github.com/billup/billup-web/pkg/env"
	pkghttp "github.com/billup/billup-web/pkg/http"
	pkglazy "github.com/billup/billup-web/pkg/lazy"
	pkglog "github.com/billup/billup-web/pkg/log"
	"github.com/billup/billup-web/pkg/observability"
	pkgtime "github.com/billup/billup-web/pkg/time"
)

type DependencyContainer struct {
	Codec           pkglazy.Loader[token.Codec]
	Validator       pkglazy.Loader[token.Validator]
	AuthAPI         pkglazy.Loader[external.AuthAPI]
	Authentication  pkglazy.Loader[service.Authentication]
	SessionProvider pkglazy.Loader[http.SessionProvider]
	Guard           pkglazy.Loader[pkghttp.ServerOption]

	renderer pkglazy.Loader[web.Renderer]
}

func NewDependencyContainer(
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	renderer pkglazy.Loader[web.Renderer],
	clock pkglazy.Loader[pkgtime.Clock],
	observer pkglazy.Loader[observability.Observer],
	logger pkglazy.Loader[pkglog.Logger],
) *DependencyContainer {
	codec := pkglazy.New(func() (token.Codec, error) {
		return jwt.NewCodec(), nil
	})
	validator := pkglazy.New(func() (token.Validator, error) {
		return token.NewValidator(codec.MustLoad(), clock.MustLoad()), nil
	})
	authAPI := authAPIProvider(httpClients)
	sessionProvider := sessionProviderProvider(codec, validator, authAPI, logger)

	return &DependencyContainer{
		Codec:     codec,
		Validator: validator,
		AuthAPI:   authAPI,
		Authentication: pkglazy.New(func() (service.Authentication, error) {
			return service.NewAuthentication(authAPI.MustLoad()), nil
		}),
		SessionProvider: sessionProvider,
		Guard: pkglazy.New(func() (pkghttp.ServerOption, error) {
			return http.WithSessionGuard(sessionProvider.MustLoad(), guard.New(guard.DefaultPublicPaths()), observer.MustLoad()), nil
		}),
		renderer: renderer,
	}
}

// MustRegisterHTTPHandlers registers the session pages behind the route guard.
func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	renderer := c.renderer.MustLoad()
	sessions := c.SessionProvider.MustLoad()
	authentication := c.Authentication.MustLoad()
	guarded := c.Guard.MustLoad()

	registry.Register(http.NewHomeHandler(renderer), guarded)
	registry.Register(http.NewMainHandler(renderer), guarded)
	registry.Register(http.NewLoginPageHandler(renderer), guarded)
	registry.Register(http.NewLoginHandler(authentication, sessions, renderer), guarded)
	registry.Register(http.NewRegistrationPageHandler(renderer), guarded)
	registry.Register(http.NewRegistrationHandler(authentication, renderer), guarded)
	registry.Register(http.NewLogoutHandler(sessions), guarded)
}

func authAPIProvider(
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
) pkglazy.Loader[external.AuthAPI] {
	return pkglazy.New(func() (external.AuthAPI, error) {
		client := httpClients.MustLoad().MustInitClient(commonhttp.DestinationBillUpAPI)
		return http.NewAuthAPI(client), nil
	})
}

func sessionProviderProvider(
	codec pkglazy.Loader[token.Codec],
	validator pkglazy.Loader[token.Validator],
	authAPI pkglazy.Loader[external.AuthAPI],
	logger pkglazy.Loader[pkglog.Logger],
) pkglazy.Loader[http.SessionProvider] {
	return pkglazy.New(func() (http.SessionProvider, error) {
		secure := env.Must(env.ParseWithDefault("SESSION_COOKIE_SECURE", false))

		return http.NewSessionProvider(
			codec.MustLoad(),
			validator.MustLoad(),
			authAPI.MustLoad(),
			logger.MustLoad(),
			storage.WithSecureCookies(secure),
		), nil
	})
}
