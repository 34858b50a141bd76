package auth

import (
	"context"

	"github.com/billup/billup-web/pkg/auth"
)

type contextKey int

const bearerTokenContextKey contextKey = iota

// WithSession puts the principal and the bearer token it was derived from into the context.
// A nil principal marks the request as anonymous.
func WithSession(ctx context.Context, principal *Principal, bearerToken string) context.Context {
	ctx = auth.WithAuthentication[Principal](ctx, auth.Auth[Principal]{AuthPrincipal: principal})
	if principal == nil || bearerToken == "" {
		return ctx
	}
	return context.WithValue(ctx, bearerTokenContextKey, bearerToken)
}

func CurrentPrincipal(ctx context.Context) (Principal, error) {
	return auth.GetPrincipal[Principal](ctx)
}

func BearerToken(ctx context.Context) (string, bool) {
	token, ok := ctx.Value(bearerTokenContextKey).(string)
	return token, ok && token != ""
}
