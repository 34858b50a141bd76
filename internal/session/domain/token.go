package domain

import (
	"errors"
	"slices"
	"time"
)

var (
	ErrDecode           = errors.New("token decode failed")
	ErrIncompleteClaims = errors.New("token claims are incomplete")
	ErrInvalidToken     = errors.New("invalid token")
)

// BearerToken is an opaque credential issued by the remote API.
type BearerToken string

// Claims is the payload of a decoded token. Absent claims are nil.
type Claims struct {
	UserID    *int
	Roles     []string
	ExpiresAt *time.Time
}

type Identity struct {
	UserID    int
	Roles     []string
	ExpiresAt time.Time
}

// Identity requires a non-zero userId and a roles claim, an empty roles list is accepted.
func (c Claims) Identity() (Identity, error) {
	if c.UserID == nil || *c.UserID == 0 || c.Roles == nil {
		return Identity{}, ErrIncompleteClaims
	}

	identity := Identity{
		UserID: *c.UserID,
		Roles:  slices.Clone(c.Roles),
	}
	if c.ExpiresAt != nil {
		identity.ExpiresAt = *c.ExpiresAt
	}
	return identity, nil
}
