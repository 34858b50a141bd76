package http

import (
	"net/http"
	"slices"
	"strings"

	"github.com/billup/billup-web/pkg/log"
)

const requestLogEntryField = "httpRequest"

func WithLogging(logger log.Logger, infoLevel, errorLevel log.Level, excludedPaths ...string) ServerOption {
	excludedPaths = append(excludedPaths, HealthPath)

	return WithMW(func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExcludedPath(excludedPaths, r.URL.Path) {
				handler.ServeHTTP(w, r)
				return
			}

			handler.ServeHTTP(w, r)
			meta := getHandlerMetadata(r.Context())

			entry := logger.With(log.Fields{
				requestLogEntryField: log.Fields{
					"method":       r.Method,
					"path":         r.URL.Path,
					"uri":          r.RequestURI,
					"responseCode": meta.Code,
				},
			})
			switch {
			case meta.Panic != nil:
				entry.With(log.Fields{
					"panic": log.Fields{
						"message": meta.Panic.Message,
						"stack":   string(meta.Panic.Stacktrace),
					},
				}).Error(r.Context(), "request handler panicked")
			case meta.Error != nil:
				entry.WithError(meta.Error).Log(r.Context(), errorLevel, "request handled with error")
			default:
				entry.Log(r.Context(), infoLevel, "request handled")
			}
		})
	})
}

// isExcludedPath treats excluded paths ending with a slash as prefixes.
func isExcludedPath(excludedPaths []string, path string) bool {
	return slices.ContainsFunc(excludedPaths, func(excluded string) bool {
		if strings.HasSuffix(excluded, "/") {
			return strings.HasPrefix(path, excluded)
		}
		return excluded == path
	})
}
