package http

import (
	"context"
	"fmt"

	"github.com/billup/billup-web/internal/session/app/external"
	"github.com/billup/billup-web/internal/session/domain"
	commonhttp "github.com/billup/billup-web/internal/pkg/http"
	pkghttp "github.com/billup/billup-web/pkg/http"
)

type (
	loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	loginResponse struct {
		AccessToken  string `json:"access_token"`
		RefreshToken string `json:"refresh_token"`
	}

	registerRequest struct {
		Name        string `json:"name"`
		Surname     string `json:"surname"`
		Residency   string `json:"residency"`
		Email       string `json:"email"`
		Password    string `json:"password"`
		PhoneNumber string `json:"phoneNumber"`
		Role        string `json:"role"`
	}
)

type authAPI struct {
	client pkghttp.Client
}

func NewAuthAPI(client pkghttp.Client) external.AuthAPI {
	return authAPI{client: client}
}

func (a authAPI) Login(ctx context.Context, credentials external.Credentials) (external.Tokens, error) {
	resp, err := a.client.NewRequest(ctx).
		SetBody(loginRequest(credentials)).
		Post("/auth/login")
	if err = commonhttp.CheckResponse(resp, err); err != nil {
		return external.Tokens{}, err
	}

	body, err := pkghttp.ParseResponse(resp, pkghttp.JSONBody[loginResponse](), nil)
	if err != nil {
		return external.Tokens{}, fmt.Errorf("parse login response: %w", err)
	}

	return external.Tokens{
		AccessToken:  domain.BearerToken(body.AccessToken),
		RefreshToken: body.RefreshToken,
	}, nil
}

func (a authAPI) Logout(ctx context.Context, t domain.BearerToken) error {
	resp, err := a.client.NewRequest(ctx).
		SetAuthToken(string(t)).
		Post("/auth/logout")
	return commonhttp.CheckResponse(resp, err)
}

func (a authAPI) Register(ctx context.Context, user external.NewUser) error {
	resp, err := a.client.NewRequest(ctx).
		SetBody(registerRequest(user)).
		Post("/auth/register")
	return commonhttp.CheckResponse(resp, err)
}
