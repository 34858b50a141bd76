package http

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/billup/billup-web/pkg/observability"
)

type RequestIDExtractor func(*http.Request) string

func WithObservability(
	observer observability.Observer,
	responseHeader string,
	extractors ...RequestIDExtractor,
) ServerOption {
	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			for _, extractor := range extractors {
				if id := extractor(r); id != "" {
					r = r.WithContext(observer.WithRequestID(r.Context(), id))
					if responseHeader != "" {
						w.Header().Set(responseHeader, id)
					}
					break
				}
			}

			handler.ServeHTTP(w, r)
		})
	})
}

func RequestIDHeaderExtractor(header string) RequestIDExtractor {
	return func(r *http.Request) string {
		return r.Header.Get(header)
	}
}

func RequestIDRandomUUIDExtractor() RequestIDExtractor {
	return func(*http.Request) string {
		return uuid.New().String()
	}
}
