package http

import (
	"net/http"

	"github.com/billup/billup-web/internal/pkg/web"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

type homeHandler struct {
	renderer web.Renderer
}

func NewHomeHandler(renderer web.Renderer) pkghttp.Handler {
	return homeHandler{renderer: renderer}
}

func (h homeHandler) Method() string {
	return http.MethodGet
}

func (h homeHandler) Path() string {
	return "/"
}

func (h homeHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	web.Render(w, h.renderer, web.PageHome, web.NewView(r.Context(), "Home", nil))
	return nil
}

type mainHandler struct {
	renderer web.Renderer
}

func NewMainHandler(renderer web.Renderer) pkghttp.Handler {
	return mainHandler{renderer: renderer}
}

func (h mainHandler) Method() string {
	return http.MethodGet
}

func (h mainHandler) Path() string {
	return "/main"
}

func (h mainHandler) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	web.Render(w, h.renderer, web.PageMain, web.NewView(r.Context(), "Dashboard", nil))
	return nil
}
