package http

import (
	"io/fs"
	"net/http"

	"github.com/gorilla/mux"
)

func WithStaticFiles(pathPrefix string, files fs.FS) ServerOption {
	return func(router *mux.Router) {
		router.
			Name(getRouteName(http.MethodGet, pathPrefix)).
			Methods(http.MethodGet).
			PathPrefix(pathPrefix).
			Handler(http.StripPrefix(pathPrefix, http.FileServer(http.FS(files))))
	}
}
