package auth

import (
	"context"
	"errors"
	"fmt"
)

var ErrPermissionDenied = errors.New("permission denied")

type (
	PermissionService[T Principal] interface {
		// Check fails with ErrUnauthenticated for anonymous callers and ErrPermissionDenied for authenticated ones.
		Check(context.Context, Permission[T]) error
	}

	Permission[T Principal] func(Authentication[T]) (bool, error)

	permissionService[T Principal] struct{}
)

func NewPermissionService[T Principal]() PermissionService[T] {
	return permissionService[T]{}
}

func (p permissionService[T]) Check(ctx context.Context, permission Permission[T]) error {
	authentication, ok := GetAuthentication[T](ctx)
	if !ok {
		return ErrUnauthenticated
	}

	allowed, err := permission(authentication)
	if err != nil {
		return fmt.Errorf("check permission: %w", err)
	}
	switch {
	case allowed:
		return nil
	case !authentication.IsAuthenticated():
		return ErrUnauthenticated
	default:
		return ErrPermissionDenied
	}
}

// All is granted when every permission is. Evaluation stops at the first refusal.
func All[T Principal](permissions ...Permission[T]) Permission[T] {
	return func(a Authentication[T]) (bool, error) {
		for _, permission := range permissions {
			allowed, err := permission(a)
			if err != nil || !allowed {
				return false, err
			}
		}
		return true, nil
	}
}

func Any[T Principal](permissions ...Permission[T]) Permission[T] {
	return func(a Authentication[T]) (bool, error) {
		for _, permission := range permissions {
			allowed, err := permission(a)
			if err != nil {
				return false, err
			}
			if allowed {
				return true, nil
			}
		}
		return false, nil
	}
}
