package external

//go:generate mockgen -source authapi.go -destination mock/authapi.go -package mock

import (
	"context"

	"github.com/billup/billup-web/internal/session/domain"
)

type (
	Credentials struct {
		Email    string
		Password string
	}

	Tokens struct {
		AccessToken  domain.BearerToken
		RefreshToken string
	}

	NewUser struct {
		Name        string
		Surname     string
		Residency   string
		Email       string
		Password    string
		PhoneNumber string
		Role        string
	}

	AuthAPI interface {
		Login(context.Context, Credentials) (Tokens, error)
		Logout(context.Context, domain.BearerToken) error
		Register(context.Context, NewUser) error
	}
)
