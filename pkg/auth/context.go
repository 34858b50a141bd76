package auth

import (
	"context"
)

const authenticationContextKey contextKey = iota

type contextKey int

func WithAuthentication[T Principal](ctx context.Context, auth Authentication[T]) context.Context {
	return context.WithValue(ctx, authenticationContextKey, auth)
}

func GetAuthentication[T Principal](ctx context.Context) (Authentication[T], bool) {
	authentication, ok := ctx.Value(authenticationContextKey).(Authentication[T])
	return authentication, ok
}

// GetPrincipal returns ErrUnauthenticated when the context carries no authenticated principal.
func GetPrincipal[T Principal](ctx context.Context) (T, error) {
	authentication, ok := GetAuthentication[T](ctx)
	if !ok || !authentication.IsAuthenticated() {
		var empty T
		return empty, ErrUnauthenticated
	}

	return *authentication.Principal(), nil
}
