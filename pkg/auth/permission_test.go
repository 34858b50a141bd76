package auth_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/billup/billup-web/pkg/auth"
)

type testPrincipal struct {
	name string
}

func (p testPrincipal) Type() auth.PrincipalType { return "test" }
func (p testPrincipal) ID() string              { return p.name }

func isAlice(a auth.Authentication[testPrincipal]) (bool, error) {
	return a.IsAuthenticated() && a.Principal().name == "alice", nil
}

func TestPermissionService_Check(t *testing.T) {
	service := auth.NewPermissionService[testPrincipal]()
	alice := context.Background()
	alice = auth.WithAuthentication[testPrincipal](alice, auth.Auth[testPrincipal]{AuthPrincipal: &testPrincipal{name: "alice"}})
	bob := auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{AuthPrincipal: &testPrincipal{name: "bob"}})
	anonymous := auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{})

	assert.NoError(t, service.Check(alice, isAlice))
	assert.ErrorIs(t, service.Check(bob, isAlice), auth.ErrPermissionDenied)
	assert.ErrorIs(t, service.Check(anonymous, isAlice), auth.ErrUnauthenticated)
	assert.ErrorIs(t, service.Check(context.Background(), isAlice), auth.ErrUnauthenticated)
}

func TestPermissionService_Check_WrapsPermissionError(t *testing.T) {
	service := auth.NewPermissionService[testPrincipal]()
	ctx := auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{})
	expectedErr := errors.New("lookup failed")

	err := service.Check(ctx, func(auth.Authentication[testPrincipal]) (bool, error) {
		return false, expectedErr
	})
	assert.ErrorIs(t, err, expectedErr)
}

func TestAllAny(t *testing.T) {
	service := auth.NewPermissionService[testPrincipal]()
	bob := auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{AuthPrincipal: &testPrincipal{name: "bob"}})
	isBob := func(a auth.Authentication[testPrincipal]) (bool, error) {
		return a.IsAuthenticated() && a.Principal().name == "bob", nil
	}

	assert.NoError(t, service.Check(bob, auth.Any(isAlice, isBob)))
	assert.ErrorIs(t, service.Check(bob, auth.All(isAlice, isBob)), auth.ErrPermissionDenied)
	assert.NoError(t, service.Check(bob, auth.All[testPrincipal]()))
	assert.ErrorIs(t, service.Check(bob, auth.Any[testPrincipal]()), auth.ErrPermissionDenied)

	expectedErr := errors.New("lookup failed")
	failing := func(auth.Authentication[testPrincipal]) (bool, error) { return false, expectedErr }
	assert.ErrorIs(t, service.Check(bob, auth.Any(failing, isBob)), expectedErr)
}

func TestGetPrincipal(t *testing.T) {
	_, err := auth.GetPrincipal[testPrincipal](context.Background())
	assert.ErrorIs(t, err, auth.ErrUnauthenticated)

	ctx := auth.WithAuthentication[testPrincipal](context.Background(), auth.Auth[testPrincipal]{AuthPrincipal: &testPrincipal{name: "alice"}})
	principal, err := auth.GetPrincipal[testPrincipal](ctx)
	assert.NoError(t, err)
	assert.Equal(t, "alice", principal.ID())
}
