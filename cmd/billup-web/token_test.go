package main

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billup/billup-web/internal/session/domain"
	pkgtime "github.com/billup/billup-web/pkg/time"
)

func signedToken(t *testing.T, claims jwt.MapClaims) domain.BearerToken {
	t.Helper()
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	require.NoError(t, err)
	return domain.BearerToken(signed)
}

func TestInspectToken(t *testing.T) {
	now := time.Date(2026, 10, 17, 12, 0, 0, 0, time.UTC)
	clock := pkgtime.NewAdjustableClock(now)

	tests := []struct {
		name     string
		claims   jwt.MapClaims
		expected []string
	}{
		{
			name:   "accepted",
			claims: jwt.MapClaims{"userId": 42, "roles": []string{"CLIENT"}, "exp": now.Add(time.Hour).Unix()},
			expected: []string{
				"userId:    42",
				"roles:     [CLIENT]",
				"expiresAt: 2026-10-17T13:00:00Z",
				"valid:     true",
				"session:   accepted",
			},
		},
		{
			name:   "expired",
			claims: jwt.MapClaims{"userId": 42, "roles": []string{"CLIENT"}, "exp": now.Add(-time.Second).Unix()},
			expected: []string{
				"valid:     false",
				"session:   rejected",
			},
		},
		{
			name:   "missing user id",
			claims: jwt.MapClaims{"roles": []string{"COMPANY"}, "exp": now.Add(time.Hour).Unix()},
			expected: []string{
				"userId:    -",
				"valid:     true",
				"session:   rejected",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := &bytes.Buffer{}
			require.NoError(t, inspectToken(context.Background(), out, signedToken(t, tt.claims), clock))

			for _, line := range tt.expected {
				assert.Contains(t, out.String(), line)
			}
		})
	}
}

func TestInspectToken_Malformed(t *testing.T) {
	err := inspectToken(context.Background(), &bytes.Buffer{}, "not-a-jwt", pkgtime.NewClock())
	assert.ErrorIs(t, err, domain.ErrDecode)
}
