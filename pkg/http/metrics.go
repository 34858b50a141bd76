package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"github.com/billup/billup-web/pkg/metric"
)

func WithMetrics(metrics metric.Metrics) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			started := time.Now()
			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			route := routeTemplate(r)
			if meta.Panic != nil {
				metrics.With(metric.Labels{
					"method": r.Method,
					"route":  route,
				}).Increment("http_request_panics_total")
			}

			metrics.With(metric.Labels{
				"method": r.Method,
				"route":  route,
				"code":   strconv.Itoa(meta.Code),
			}).Duration("http_request_duration_seconds", time.Since(started))
		})
	})
}

func routeTemplate(r *http.Request) string {
	route := mux.CurrentRoute(r)
	if route == nil {
		return "unknown"
	}

	tpl, err := route.GetPathTemplate()
	if err != nil {
		return "unknown"
	}
	return tpl
}
