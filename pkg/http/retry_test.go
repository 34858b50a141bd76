package http_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkghttp "github.com/billup/billup-web/pkg/http"
)

func fastRetryPolicy() pkghttp.RetryPolicy {
	return pkghttp.RetryPolicy{
		InitialInterval: time.Millisecond,
		MaxElapsedTime:  time.Second,
		MaxRetries:      3,
	}
}

func TestDoIdempotent_RetriesServerErrors(t *testing.T) {
	var calls atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		if calls.Add(1) < 3 {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_, _ = w.Write([]byte(`{"ok":true}`))
	}))
	defer api.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("api", api.URL))
	resp, err := pkghttp.DoIdempotent(context.Background(), fastRetryPolicy(), func(ctx context.Context) *resty.Request {
		return client.NewRequest(ctx)
	}, http.MethodGet, "/items")

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode())
	assert.EqualValues(t, 3, calls.Load())
}

func TestDoIdempotent_ReturnsLastResponseWhenRetriesExhausted(t *testing.T) {
	var calls atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer api.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("api", api.URL))
	resp, err := pkghttp.DoIdempotent(context.Background(), fastRetryPolicy(), func(ctx context.Context) *resty.Request {
		return client.NewRequest(ctx)
	}, http.MethodGet, "/items")

	require.NoError(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode())
	assert.EqualValues(t, 4, calls.Load())
}

func TestDoIdempotent_DoesNotRetryClientErrors(t *testing.T) {
	var calls atomic.Int32
	api := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		calls.Add(1)
		w.WriteHeader(http.StatusNotFound)
	}))
	defer api.Close()

	client := pkghttp.NewClient(pkghttp.WithClientDestination("api", api.URL))
	resp, err := pkghttp.DoIdempotent(context.Background(), fastRetryPolicy(), func(ctx context.Context) *resty.Request {
		return client.NewRequest(ctx)
	}, http.MethodGet, "/items")

	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())
	assert.EqualValues(t, 1, calls.Load())
}
