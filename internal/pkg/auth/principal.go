package auth

import (
	"slices"
	"strconv"

	"github.com/billup/billup-web/pkg/auth"
)

const (
	PrincipalTypeUser auth.PrincipalType = "user"

	RoleClient  = "CLIENT"
	RoleCompany = "COMPANY"
)

type (
	Principal struct {
		UserID int
		Roles  []string
	}

	Authentication    = auth.Authentication[Principal]
	PermissionService = auth.PermissionService[Principal]
	Permission        = auth.Permission[Principal]
)

func NewPermissionService() PermissionService {
	return auth.NewPermissionService[Principal]()
}

func (p Principal) Type() auth.PrincipalType {
	return PrincipalTypeUser
}

func (p Principal) ID() string {
	return strconv.Itoa(p.UserID)
}

func (p Principal) HasRole(role string) bool {
	return slices.Contains(p.Roles, role)
}

func HasRole(role string) Permission {
	return auth.All(Authenticated(), func(a Authentication) (bool, error) {
		return a.Principal().HasRole(role), nil
	})
}

func Authenticated() Permission {
	return func(a Authentication) (bool, error) {
		return a.IsAuthenticated(), nil
	}
}
