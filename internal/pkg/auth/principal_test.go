package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billup/billup-web/internal/pkg/auth"
	pkgauth "github.com/billup/billup-web/pkg/auth"
)

func TestHasRole(t *testing.T) {
	permissions := auth.NewPermissionService()
	company := auth.WithSession(context.Background(), &auth.Principal{UserID: 7, Roles: []string{auth.RoleCompany}}, "token")
	client := auth.WithSession(context.Background(), &auth.Principal{UserID: 8, Roles: []string{auth.RoleClient}}, "token")
	anonymous := auth.WithSession(context.Background(), nil, "")

	assert.NoError(t, permissions.Check(company, auth.HasRole(auth.RoleCompany)))
	assert.ErrorIs(t, permissions.Check(client, auth.HasRole(auth.RoleCompany)), pkgauth.ErrPermissionDenied)
	assert.ErrorIs(t, permissions.Check(anonymous, auth.HasRole(auth.RoleCompany)), pkgauth.ErrUnauthenticated)
	assert.ErrorIs(t, permissions.Check(anonymous, auth.Authenticated()), pkgauth.ErrUnauthenticated)
}

func TestWithSession(t *testing.T) {
	ctx := auth.WithSession(context.Background(), &auth.Principal{UserID: 42, Roles: []string{auth.RoleClient}}, "bearer")

	principal, err := auth.CurrentPrincipal(ctx)
	require.NoError(t, err)
	assert.Equal(t, 42, principal.UserID)
	assert.Equal(t, "42", principal.ID())

	token, ok := auth.BearerToken(ctx)
	assert.True(t, ok)
	assert.Equal(t, "bearer", token)
}

func TestWithSession_Anonymous(t *testing.T) {
	ctx := auth.WithSession(context.Background(), nil, "ignored")

	_, err := auth.CurrentPrincipal(ctx)
	assert.ErrorIs(t, err, pkgauth.ErrUnauthenticated)

	_, ok := auth.BearerToken(ctx)
	assert.False(t, ok)
}
