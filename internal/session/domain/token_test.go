package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/billup/billup-web/internal/session/domain"
)

func ptr[T any](v T) *T {
	return &v
}

func TestClaims_Identity(t *testing.T) {
	exp := time.Unix(1700000000, 0)

	tests := []struct {
		name        string
		claims      domain.Claims
		expected    domain.Identity
		expectedErr error
	}{
		{
			name:     "complete",
			claims:   domain.Claims{UserID: ptr(42), Roles: []string{"CLIENT"}, ExpiresAt: &exp},
			expected: domain.Identity{UserID: 42, Roles: []string{"CLIENT"}, ExpiresAt: exp},
		},
		{
			name:     "empty roles",
			claims:   domain.Claims{UserID: ptr(42), Roles: []string{}},
			expected: domain.Identity{UserID: 42, Roles: []string{}},
		},
		{
			name:        "missing user id",
			claims:      domain.Claims{Roles: []string{"CLIENT"}, ExpiresAt: &exp},
			expectedErr: domain.ErrIncompleteClaims,
		},
		{
			name:        "zero user id",
			claims:      domain.Claims{UserID: ptr(0), Roles: []string{"CLIENT"}},
			expectedErr: domain.ErrIncompleteClaims,
		},
		{
			name:        "missing roles",
			claims:      domain.Claims{UserID: ptr(42), ExpiresAt: &exp},
			expectedErr: domain.ErrIncompleteClaims,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			identity, err := tt.claims.Identity()
			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.expected, identity)
		})
	}
}

func TestState(t *testing.T) {
	anonymous := domain.Anonymous()
	assert.True(t, anonymous.IsAnonymous())
	_, ok := anonymous.UserID()
	assert.False(t, ok)
	_, ok = anonymous.Roles()
	assert.False(t, ok)

	roles := []string{"CLIENT"}
	state := domain.Authenticated("token", domain.Identity{UserID: 42, Roles: roles})
	roles[0] = "COMPANY"

	token, ok := state.AccessToken()
	assert.True(t, ok)
	assert.Equal(t, domain.BearerToken("token"), token)

	userID, _ := state.UserID()
	assert.Equal(t, 42, userID)

	stateRoles, _ := state.Roles()
	assert.Equal(t, []string{"CLIENT"}, stateRoles)
}
