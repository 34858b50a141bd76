package permission

import (
	"github.com/billup/billup-web/internal/pkg/auth"
)

func CanManageResidences() auth.Permission {
	return auth.Authenticated()
}
