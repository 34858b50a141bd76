package prometheus_test

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billup/billup-web/pkg/metric"
	"github.com/billup/billup-web/pkg/metric/prometheus"
)

func TestMetrics_Handler_ExposesRecordedMetrics(t *testing.T) {
	metrics := prometheus.New("billup_web")

	metrics.With(metric.Labels{"method": "GET", "code": "200"}).
		Duration("http_api_request_duration_seconds", 150*time.Millisecond)
	metrics.With(metric.Labels{"reason": "expired"}).
		Increment("session_invalidations_total")
	metrics.With(metric.Labels{"unexpected": "label"}).
		Increment("session_invalidations_total")

	rec := httptest.NewRecorder()
	metrics.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Body)
	require.NoError(t, err)
	assert.Contains(t, string(body), `billup_web_http_api_request_duration_seconds_count{code="200",method="GET"} 1`)
	assert.Contains(t, string(body), `billup_web_session_invalidations_total{reason="expired"} 1`)
	assert.NotContains(t, string(body), `unexpected="label"`)
}
