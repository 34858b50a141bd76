package web_test

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billup/billup-web/internal/pkg/auth"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	"github.com/billup/billup-web/internal/pkg/web"
	pkgauth "github.com/billup/billup-web/pkg/auth"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

func TestRenderer_NavigationDependsOnRoles(t *testing.T) {
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		name          string
		ctx           context.Context
		contains      []string
		doesntContain []string
	}{
		{
			name:          "anonymous",
			ctx:           context.Background(),
			contains:      []string{`href="/login"`, `href="/registration"`},
			doesntContain: []string{`action="/logout"`},
		},
		{
			name:          "client",
			ctx:           auth.WithSession(context.Background(), &auth.Principal{UserID: 1, Roles: []string{auth.RoleClient}}, "token"),
			contains:      []string{`action="/logout"`, `href="/bills"`},
			doesntContain: []string{`href="/company/create-bill"`},
		},
		{
			name:     "company",
			ctx:      auth.WithSession(context.Background(), &auth.Principal{UserID: 2, Roles: []string{auth.RoleCompany}}, "token"),
			contains: []string{`href="/company/create-bill"`, `href="/bills/all"`},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := &bytes.Buffer{}
			require.NoError(t, renderer.Render(buf, web.PageHome, web.NewView(tt.ctx, "Home", nil)))

			for _, s := range tt.contains {
				assert.Contains(t, buf.String(), s)
			}
			for _, s := range tt.doesntContain {
				assert.NotContains(t, buf.String(), s)
			}
		})
	}
}

func TestRenderer_ErrorPage(t *testing.T) {
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	buf := &bytes.Buffer{}
	require.NoError(t, renderer.Render(buf, web.PageError, web.NewView(context.Background(), "Forbidden", 403)))

	assert.Contains(t, buf.String(), "You do not have access to this page.")
}

func TestView_WithAPIError(t *testing.T) {
	apiErr := commonhttp.APIError{Code: 401, Message: "Bad credentials"}

	view := web.View{}.WithAPIError(fmt.Errorf("login failed: %w", apiErr), "fallback")
	assert.Equal(t, "Bad credentials", view.Error)

	view = web.View{}.WithAPIError(errors.New("connection refused"), "fallback")
	assert.Equal(t, "fallback", view.Error)

	view = web.View{}.WithAPIError(nil, "fallback")
	assert.Empty(t, view.Error)
}

type responseWriterStub struct {
	pkghttp.ResponseWriter
	code int
	body bytes.Buffer
}

func (w *responseWriterStub) SetStatusCode(code int) pkghttp.ResponseWriter {
	w.code = code
	return w
}

func (w *responseWriterStub) SetHTMLBody(render func(io.Writer) error) pkghttp.ResponseWriter {
	_ = render(&w.body)
	return w
}

func TestRenderAccessError(t *testing.T) {
	renderer, err := web.NewRenderer()
	require.NoError(t, err)

	tests := []struct {
		err      error
		rendered bool
		code     int
	}{
		{err: fmt.Errorf("check: %w", pkgauth.ErrPermissionDenied), rendered: true, code: http.StatusForbidden},
		{err: pkgauth.ErrUnauthenticated, rendered: true, code: http.StatusUnauthorized},
		{err: errors.New("remote failure"), rendered: false},
		{err: nil, rendered: false},
	}

	for _, tt := range tests {
		w := &responseWriterStub{}
		assert.Equal(t, tt.rendered, web.RenderAccessError(context.Background(), w, renderer, tt.err))
		assert.Equal(t, tt.code, w.code)
		if tt.rendered {
			assert.Contains(t, w.body.String(), http.StatusText(tt.code))
		}
	}
}
