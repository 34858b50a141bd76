package jwt

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"

	"github.com/billup/billup-web/internal/session/app/token"
	"github.com/billup/billup-web/internal/session/domain"
)

type claims struct {
	UserID *int     `json:"userId"`
	Roles  []string `json:"roles"`
	jwt.RegisteredClaims
}

type codec struct {
	parser *jwt.Parser
}

// NewCodec returns a codec that trusts the token payload without verifying its signature.
func NewCodec() token.Codec {
	return codec{
		parser: jwt.NewParser(),
	}
}

func (c codec) Decode(t domain.BearerToken) (domain.Claims, error) {
	var payload claims
	_, _, err := c.parser.ParseUnverified(string(t), &payload)
	if err != nil {
		return domain.Claims{}, fmt.Errorf("%w: %w", domain.ErrDecode, err)
	}

	result := domain.Claims{
		UserID: payload.UserID,
		Roles:  payload.Roles,
	}
	if payload.ExpiresAt != nil {
		exp := payload.ExpiresAt.Time
		result.ExpiresAt = &exp
	}

	return result, nil
}
