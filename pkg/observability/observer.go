package observability

import (
	"context"

	"github.com/billup/billup-web/pkg/log"
)

type (
	LogField string

	contextKey int
)

const (
	LogFieldRequestID LogField = "requestID"
	LogFieldUserID    LogField = "userID"
)

const (
	requestIDContextKey contextKey = iota
	userIDContextKey
)

type (
	// Observer carries correlation values through the context and mirrors the selected ones into log fields.
	Observer interface {
		RequestID(context.Context) (string, bool)
		WithRequestID(context.Context, string) context.Context
		UserID(context.Context) (string, bool)
		WithUserID(context.Context, string) context.Context
	}

	ObserverOption func(*observer)
)

type observer struct {
	logger        log.Logger
	loggingFields map[LogField]struct{}
}

func New(opts ...ObserverOption) Observer {
	o := observer{}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

func (o observer) RequestID(ctx context.Context) (string, bool) {
	return o.value(ctx, requestIDContextKey)
}

func (o observer) WithRequestID(ctx context.Context, id string) context.Context {
	return o.withValue(ctx, requestIDContextKey, LogFieldRequestID, id)
}

func (o observer) UserID(ctx context.Context) (string, bool) {
	return o.value(ctx, userIDContextKey)
}

func (o observer) WithUserID(ctx context.Context, id string) context.Context {
	return o.withValue(ctx, userIDContextKey, LogFieldUserID, id)
}

func (o observer) value(ctx context.Context, key contextKey) (string, bool) {
	v, ok := ctx.Value(key).(string)
	return v, ok && v != ""
}

func (o observer) withValue(ctx context.Context, key contextKey, field LogField, v string) context.Context {
	ctx = context.WithValue(ctx, key, v)

	if _, ok := o.loggingFields[field]; ok && o.logger != nil {
		ctx = o.logger.WithContext(ctx, log.Fields{
			string(field): v,
		})
	}

	return ctx
}

func WithFieldsLogging(logger log.Logger, fields ...LogField) ObserverOption {
	return func(o *observer) {
		o.logger = logger

		o.loggingFields = make(map[LogField]struct{}, len(fields))
		for _, field := range fields {
			o.loggingFields[field] = struct{}{}
		}
	}
}
