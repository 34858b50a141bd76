package http

import (
	"net/http"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/trace"
)

const tracerName = "github.com/billup/billup-web/pkg/http"

// WithTracing starts a server span per request, continuing the caller's trace from W3C headers.
func WithTracing(tp trace.TracerProvider) ServerOption {
	if tp == nil {
		tp = otel.GetTracerProvider()
	}
	tracer := tp.Tracer(tracerName)
	propagator := propagation.TraceContext{}

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := propagator.Extract(r.Context(), propagation.HeaderCarrier(r.Header))
			ctx, span := tracer.Start(ctx, r.Method+" "+routeTemplate(r),
				trace.WithSpanKind(trace.SpanKindServer),
				trace.WithAttributes(
					attribute.String("http.request.method", r.Method),
					attribute.String("url.path", r.URL.Path),
				),
			)
			defer span.End()

			handler.ServeHTTP(w, r.WithContext(ctx))

			meta := getHandlerMetadata(ctx)
			span.SetAttributes(attribute.Int("http.response.status_code", meta.Code))
			if meta.Error != nil {
				span.RecordError(meta.Error)
			}
			if meta.Code >= http.StatusInternalServerError || meta.Panic != nil {
				span.SetStatus(codes.Error, http.StatusText(meta.Code))
			}
		})
	})
}

func injectTraceContext(r *http.Request) {
	propagation.TraceContext{}.Inject(r.Context(), propagation.HeaderCarrier(r.Header))
}
