package cmd

import (
	"context"
	"fmt"
	stdhttp "net/http"
	"time"

	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	"github.com/billup/billup-web/internal/pkg/web"
	"github.com/billup/billup-web/pkg/env"
	"github.com/billup/billup-web/pkg/http"
	"github.com/billup/billup-web/pkg/lazy"
	"github.com/billup/billup-web/pkg/log"
	"github.com/billup/billup-web/pkg/metric/prometheus"
	"github.com/billup/billup-web/pkg/observability"
	pkgtime "github.com/billup/billup-web/pkg/time"
)

const (
	metricsNamespace = "billup_web"

	MetricsPath = "/metrics"
)

type InfrastructureContainer struct {
	HTTPServer        lazy.Loader[http.Server]
	HTTPClientFactory lazy.Loader[HTTPClientFactory]
	Renderer          lazy.Loader[web.Renderer]
	Clock             lazy.Loader[pkgtime.Clock]
	Observer          lazy.Loader[observability.Observer]
	Metrics           lazy.Loader[prometheus.Metrics]
	Logger            lazy.Loader[log.Logger]
}

func NewInfrastructureContainer(_ context.Context) *InfrastructureContainer {
	logger := loggerProvider()
	metrics := metricsProvider()
	observer := observerProvider(logger)

	return &InfrastructureContainer{
		HTTPServer:        httpServerProvider(observer, metrics, logger),
		HTTPClientFactory: httpClientFactoryProvider(observer, metrics, logger),
		Renderer:          rendererProvider(),
		Clock:             lazy.Value(pkgtime.NewClock()),
		Observer:          observer,
		Metrics:           metrics,
		Logger:            logger,
	}
}

func loggerProvider() lazy.Loader[log.Logger] {
	return lazy.New(func() (log.Logger, error) {
		logLevel := env.Must(env.ParseWithDefault("LOG_LEVEL", "info"))
		return log.New(log.ParseLevel(logLevel)), nil
	})
}

func metricsProvider() lazy.Loader[prometheus.Metrics] {
	return lazy.New(func() (prometheus.Metrics, error) {
		return prometheus.New(metricsNamespace), nil
	})
}

func observerProvider(
	logger lazy.Loader[log.Logger],
) lazy.Loader[observability.Observer] {
	return lazy.New(func() (observability.Observer, error) {
		return observability.New(
			observability.WithFieldsLogging(logger.MustLoad(), observability.LogFieldRequestID, observability.LogFieldUserID),
		), nil
	})
}

func rendererProvider() lazy.Loader[web.Renderer] {
	return lazy.New(func() (web.Renderer, error) {
		renderer, err := web.NewRenderer()
		if err != nil {
			return nil, fmt.Errorf("init page renderer: %w", err)
		}
		return renderer, nil
	})
}

func httpServerProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[prometheus.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[http.Server] {
	return lazy.New(func() (http.Server, error) {
		address := env.Must(env.ParseWithDefault("HTTP_ADDRESS", http.DefaultServerAddress))

		server := http.NewServer(
			address,
			http.WithHealthCheck(nil),
			http.WithStaticFiles(web.StaticPathPrefix, web.StaticFiles()),
			http.WithObservability(
				observer.MustLoad(),
				commonhttp.RequestIDHeader,
				http.RequestIDHeaderExtractor(commonhttp.RequestIDHeader),
				http.RequestIDRandomUUIDExtractor(),
			),
			http.WithTracing(nil),
			http.WithMetrics(metrics.MustLoad()),
			http.WithLogging(logger.MustLoad(), log.LevelInfo, log.LevelError, web.StaticPathPrefix),
		)
		server.RegisterRaw(stdhttp.MethodGet, MetricsPath, metrics.MustLoad().Handler())

		return server, nil
	})
}

func httpClientFactoryProvider(
	observer lazy.Loader[observability.Observer],
	metrics lazy.Loader[prometheus.Metrics],
	logger lazy.Loader[log.Logger],
) lazy.Loader[HTTPClientFactory] {
	return lazy.New(func() (HTTPClientFactory, error) {
		timeout := env.Must(env.ParseWithDefault("HTTP_CLIENT_TIMEOUT", 10*time.Second))

		return NewHTTPClientFactory(
			http.WithTimeout(timeout),
			http.WithRequestHeader("Accept", "application/json"),
			http.WithRequestObservability(observer.MustLoad(), commonhttp.RequestIDHeader),
			http.WithRequestTracing(),
			http.WithRequestMetrics(metrics.MustLoad()),
			http.WithRequestLogging(logger.MustLoad(), log.LevelInfo, log.LevelWarn),
		), nil
	})
}
