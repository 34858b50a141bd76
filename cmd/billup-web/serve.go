package main

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/billup/billup-web/internal/bill"
	"github.com/billup/billup-web/internal/pkg/cmd"
	"github.com/billup/billup-web/internal/residence"
	"github.com/billup/billup-web/internal/session"
	pkgcmd "github.com/billup/billup-web/pkg/cmd"
)

func serveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(c *cobra.Command, _ []string) error {
			return runServe(c.Context())
		},
	}
}

func runServe(ctx context.Context) (err error) {
	if ctx == nil {
		ctx = context.Background()
	}

	infra := cmd.NewInfrastructureContainer(ctx)
	logger := infra.Logger.MustLoad()
	defer pkgcmd.RecoverAppPanic(ctx, logger, &err)

	sessionContainer := session.NewDependencyContainer(
		infra.HTTPClientFactory,
		infra.Renderer,
		infra.Clock,
		infra.Observer,
		infra.Logger,
	)
	billContainer := bill.NewDependencyContainer(
		infra.HTTPClientFactory,
		infra.Renderer,
		sessionContainer.Guard,
	)
	residenceContainer := residence.NewDependencyContainer(
		infra.HTTPClientFactory,
		infra.Renderer,
		sessionContainer.Guard,
	)

	httpServer := infra.HTTPServer.MustLoad()
	sessionContainer.MustRegisterHTTPHandlers(httpServer)
	billContainer.MustRegisterHTTPHandlers(httpServer)
	residenceContainer.MustRegisterHTTPHandlers(httpServer)

	return pkgcmd.Run(ctx, logger,
		pkgcmd.TermSignalAwaiter,
		httpServer.Listener,
	)
}
