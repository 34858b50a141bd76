package token

//go:generate mockgen -source token.go -destination mock/token.go -package mock

import (
	"github.com/billup/billup-web/internal/session/domain"
	pkgtime "github.com/billup/billup-web/pkg/time"
)

type (
	// Codec decodes a token without verifying its signature. Malformed tokens fail with domain.ErrDecode.
	Codec interface {
		Decode(domain.BearerToken) (domain.Claims, error)
	}

	Validator interface {
		IsValid(domain.BearerToken) bool
	}
)

type validator struct {
	codec Codec
	clock pkgtime.Clock
}

func NewValidator(codec Codec, clock pkgtime.Clock) Validator {
	return validator{
		codec: codec,
		clock: clock,
	}
}

// IsValid reports whether the token decodes and expires strictly after the current time.
func (v validator) IsValid(token domain.BearerToken) bool {
	if token == "" {
		return false
	}

	claims, err := v.codec.Decode(token)
	if err != nil || claims.ExpiresAt == nil {
		return false
	}

	return claims.ExpiresAt.After(v.clock.Now())
}
