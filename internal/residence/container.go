package residence

import (
	"github.com/billup/billup-web/internal/pkg/auth"
	commoncmd "github.com/billup/billup-web/internal/pkg/cmd"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/internal/residence/app/external"
	"github.com/billup/billup-web/internal/residence/app/service"
	"github.com/billup/billup-web/internal/residence/infra/http"
	pkghttp "github.com/billup/billup-web/pkg/http"
	pkglazy "github.com/billup/billup-web/pkg/lazy"
)

type DependencyContainer struct {
	ResidenceService pkglazy.Loader[service.Residences]

	renderer pkglazy.Loader[web.Renderer]
	guard    pkglazy.Loader[pkghttp.ServerOption]
}

func NewDependencyContainer(
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	renderer pkglazy.Loader[web.Renderer],
	guard pkglazy.Loader[pkghttp.ServerOption],
) *DependencyContainer {
	residenceAPI := residenceAPIProvider(httpClients)

	return &DependencyContainer{
		ResidenceService: pkglazy.New(func() (service.Residences, error) {
			return service.NewResidences(residenceAPI.MustLoad(), auth.NewPermissionService()), nil
		}),
		renderer: renderer,
		guard:    guard,
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	residences := c.ResidenceService.MustLoad()
	renderer := c.renderer.MustLoad()
	guarded := c.guard.MustLoad()

	registry.Register(http.NewResidencesHandler(residences, renderer), guarded)
	registry.Register(http.NewCreateResidencePageHandler(renderer), guarded)
	registry.Register(http.NewCreateResidenceHandler(residences, renderer), guarded)
	registry.Register(http.NewResidenceActionHandler(residences, renderer), guarded)
}

func residenceAPIProvider(
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
) pkglazy.Loader[external.ResidenceAPI] {
	return pkglazy.New(func() (external.ResidenceAPI, error) {
		client := httpClients.MustLoad().MustInitClient(commonhttp.DestinationBillUpAPI)
		return http.NewResidenceAPI(client, pkghttp.DefaultRetryPolicy()), nil
	})
}
