package permission

import (
	"github.com/billup/billup-web/internal/pkg/auth"
)

func CanListOwnBills() auth.Permission {
	return auth.Authenticated()
}

func CanListAllBills() auth.Permission {
	return auth.HasRole(auth.RoleCompany)
}

func CanCreateBill() auth.Permission {
	return auth.HasRole(auth.RoleCompany)
}

func CanPayBill() auth.Permission {
	return auth.Authenticated()
}
