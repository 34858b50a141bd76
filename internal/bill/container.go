package bill

import (
	"github.com/billup/billup-web/internal/bill/app/service"
	"github.com/billup/billup-web/internal/bill/infra/http"
	"github.com/billup/billup-web/internal/pkg/auth"
	commoncmd "github.com/billup/billup-web/internal/pkg/cmd"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	"github.com/billup/billup-web/internal/pkg/web"
	pkghttp "github.com/billup/billup-web/pkg/http"
	pkglazy "github.com/billup/billup-web/pkg/lazy"
)

type DependencyContainer struct {
	BillService pkglazy.Loader[service.Bills]

	renderer pkglazy.Loader[web.Renderer]
	guard    pkglazy.Loader[pkghttp.ServerOption]
}

func NewDependencyContainer(
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
	renderer pkglazy.Loader[web.Renderer],
	guard pkglazy.Loader[pkghttp.ServerOption],
) *DependencyContainer {
	billAPI := billAPIProvider(httpClients)

	return &DependencyContainer{
		BillService: pkglazy.New(func() (service.Bills, error) {
			api := billAPI.MustLoad()
			return service.NewBills(api, api, auth.NewPermissionService()), nil
		}),
		renderer: renderer,
		guard:    guard,
	}
}

func (c *DependencyContainer) MustRegisterHTTPHandlers(registry pkghttp.HandlerRegistry) {
	bills := c.BillService.MustLoad()
	renderer := c.renderer.MustLoad()
	guarded := c.guard.MustLoad()

	registry.Register(http.NewBillsHandler(bills, renderer), guarded)
	registry.Register(http.NewAllBillsHandler(bills, renderer), guarded)
	registry.Register(http.NewCreateBillPageHandler(bills, renderer), guarded)
	registry.Register(http.NewCreateBillHandler(bills, renderer), guarded)
	registry.Register(http.NewPaymentPageHandler(bills, renderer), guarded)
	registry.Register(http.NewPaymentHandler(bills, renderer), guarded)
}

func billAPIProvider(
	httpClients pkglazy.Loader[commoncmd.HTTPClientFactory],
) pkglazy.Loader[http.API] {
	return pkglazy.New(func() (http.API, error) {
		client := httpClients.MustLoad().MustInitClient(commonhttp.DestinationBillUpAPI)
		return http.NewBillAPI(client, pkghttp.DefaultRetryPolicy()), nil
	})
}
