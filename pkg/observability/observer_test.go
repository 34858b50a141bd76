package observability_test

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/billup/billup-web/pkg/log"
	"github.com/billup/billup-web/pkg/observability"
)

func TestObserver_CorrelationValues(t *testing.T) {
	observer := observability.New()

	_, ok := observer.RequestID(context.Background())
	assert.False(t, ok)

	ctx := observer.WithRequestID(context.Background(), "req-1")
	ctx = observer.WithUserID(ctx, "42")

	requestID, ok := observer.RequestID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "req-1", requestID)

	userID, ok := observer.UserID(ctx)
	assert.True(t, ok)
	assert.Equal(t, "42", userID)

	_, ok = observer.UserID(observer.WithUserID(context.Background(), ""))
	assert.False(t, ok)
}

func TestObserver_LogsSelectedFields(t *testing.T) {
	buf := &bytes.Buffer{}
	logger := log.New(log.LevelInfo, log.WithOutput(buf))
	observer := observability.New(observability.WithFieldsLogging(logger, observability.LogFieldUserID))

	ctx := observer.WithRequestID(context.Background(), "req-1")
	ctx = observer.WithUserID(ctx, "42")
	logger.Info(ctx, "page rendered")

	assert.Contains(t, buf.String(), `"userID":"42"`)
	assert.NotContains(t, buf.String(), "req-1")
}
