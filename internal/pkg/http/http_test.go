package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billup/billup-web/internal/pkg/auth"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

func TestWithBearerAuth(t *testing.T) {
	var authorization string
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authorization = r.Header.Get("Authorization")
		w.WriteHeader(http.StatusNoContent)
	}))
	defer api.Close()

	client := pkghttp.NewClient(
		pkghttp.WithClientDestination(string(commonhttp.DestinationBillUpAPI), api.URL),
		commonhttp.WithBearerAuth(),
	)
	ctx := auth.WithSession(context.Background(), &auth.Principal{UserID: 1}, "abc")

	err := commonhttp.CheckResponse(client.NewRequest(ctx).Get("/bills"))
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc", authorization)

	err = commonhttp.CheckResponse(client.NewRequest(context.Background()).Get("/bills"))
	require.NoError(t, err)
	assert.Empty(t, authorization)
}

func TestCheckResponse_DecodesAPIError(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		_, _ = w.Write([]byte(`{"message":"Bad credentials"}`))
	}))
	defer api.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("api", api.URL))
	err := commonhttp.CheckResponse(client.NewRequest(context.Background()).Post("/auth/login"))

	require.Error(t, err)
	assert.Equal(t, "Bad credentials", err.Error())
	assert.True(t, commonhttp.IsUnauthorized(err))
}

func TestCheckResponse_UndecodableBody(t *testing.T) {
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte(`<html>bad gateway</html>`))
	}))
	defer api.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("api", api.URL))
	err := commonhttp.CheckResponse(client.NewRequest(context.Background()).Get("/bills"))

	require.Error(t, err)
	assert.Equal(t, "unexpected status 502", err.Error())
	assert.True(t, commonhttp.IsStatus(err, http.StatusBadGateway))
}
