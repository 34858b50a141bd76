package http_test

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/billup/billup-web/pkg/http"
	"github.com/billup/billup-web/pkg/metric"
)

type handlerStub struct {
	method string
	path   string
	handle pkghttp.HandlerFunc
}

func (h handlerStub) Method() string { return h.method }
func (h handlerStub) Path() string   { return h.path }
func (h handlerStub) Handle(w pkghttp.ResponseWriter, r *http.Request) error {
	return h.handle(w, r)
}

func serve(t *testing.T, srv pkghttp.Server, method, target string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestServer_Register_RendersHTMLBody(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	srv.Register(handlerStub{
		method: http.MethodGet,
		path:   "/hello/{name}",
		handle: func(w pkghttp.ResponseWriter, r *http.Request) error {
			name, err := pkghttp.ParseRequest(r, pkghttp.PathParameter[string]("name"), nil)
			if err != nil {
				return err
			}
			w.SetHTMLBody(func(out io.Writer) error {
				_, err := fmt.Fprintf(out, "<p>%s</p>", name)
				return err
			})
			return nil
		},
	})

	rec := serve(t, srv, http.MethodGet, "/hello/world")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<p>world</p>", rec.Body.String())
}

func TestServer_Register_Redirect(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	srv.Register(handlerStub{
		method: http.MethodPost,
		path:   "/logout",
		handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
			w.Redirect("/login")
			return nil
		},
	})

	rec := serve(t, srv, http.MethodPost, "/logout")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/login", rec.Header().Get("Location"))
}

func TestServer_Register_ErrorCodes(t *testing.T) {
	tests := []struct {
		name         string
		handle       pkghttp.HandlerFunc
		expectedCode int
	}{
		{
			name: "parsing error",
			handle: func(_ pkghttp.ResponseWriter, r *http.Request) error {
				_, err := pkghttp.ParseRequest(r, pkghttp.QueryParameter[int]("id"), nil)
				return err
			},
			expectedCode: http.StatusBadRequest,
		},
		{
			name: "explicit status",
			handle: func(w pkghttp.ResponseWriter, _ *http.Request) error {
				w.SetStatusCode(http.StatusForbidden)
				return errors.New("forbidden")
			},
			expectedCode: http.StatusForbidden,
		},
		{
			name: "unexpected error",
			handle: func(_ pkghttp.ResponseWriter, _ *http.Request) error {
				return errors.New("boom")
			},
			expectedCode: http.StatusInternalServerError,
		},
		{
			name: "panic",
			handle: func(_ pkghttp.ResponseWriter, _ *http.Request) error {
				panic("unexpected")
			},
			expectedCode: http.StatusInternalServerError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithMetrics(metric.NewStub()))
			srv.Register(handlerStub{method: http.MethodGet, path: "/resource", handle: tt.handle})

			rec := serve(t, srv, http.MethodGet, "/resource")
			assert.Equal(t, tt.expectedCode, rec.Code)
		})
	}
}

func TestServer_WithHealthCheck(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress, pkghttp.WithHealthCheck(nil))

	rec := serve(t, srv, http.MethodGet, pkghttp.HealthPath)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"OK"}`, rec.Body.String())
}

func TestServer_Register_WithRouteMiddleware(t *testing.T) {
	srv := pkghttp.NewServer(pkghttp.DefaultServerAddress)
	blocking := pkghttp.WithMW(func(http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(http.StatusTeapot)
		})
	})
	ok := func(_ pkghttp.ResponseWriter, _ *http.Request) error { return nil }

	srv.Register(handlerStub{method: http.MethodGet, path: "/guarded", handle: ok}, blocking)
	srv.Register(handlerStub{method: http.MethodGet, path: "/open", handle: ok})

	assert.Equal(t, http.StatusTeapot, serve(t, srv, http.MethodGet, "/guarded").Code)
	assert.Equal(t, http.StatusOK, serve(t, srv, http.MethodGet, "/open").Code)
}
