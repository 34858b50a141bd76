package token_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"github.com/billup/billup-web/internal/session/app/token"
	"github.com/billup/billup-web/internal/session/app/token/mock"
	"github.com/billup/billup-web/internal/session/domain"
	pkgtime "github.com/billup/billup-web/pkg/time"
)

var now = time.Date(2024, time.May, 1, 12, 0, 0, 0, time.UTC)

func expiringAt(t time.Time) domain.Claims {
	userID := 42
	return domain.Claims{UserID: &userID, Roles: []string{"CLIENT"}, ExpiresAt: &t}
}

func TestValidator_IsValid(t *testing.T) {
	tests := []struct {
		name      string
		claims    domain.Claims
		decodeErr error
		expected  bool
	}{
		{name: "expires in the future", claims: expiringAt(now.Add(time.Hour)), expected: true},
		{name: "expires in one second", claims: expiringAt(now.Add(time.Second)), expected: true},
		{name: "expires now", claims: expiringAt(now), expected: false},
		{name: "expired", claims: expiringAt(now.Add(-10 * time.Second)), expected: false},
		{name: "no expiry", claims: domain.Claims{Roles: []string{"CLIENT"}}, expected: false},
		{name: "malformed", decodeErr: domain.ErrDecode, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			codec := mock.NewMockCodec(ctrl)
			codec.EXPECT().Decode(domain.BearerToken("token")).Return(tt.claims, tt.decodeErr)

			validator := token.NewValidator(codec, pkgtime.NewAdjustableClock(now))
			assert.Equal(t, tt.expected, validator.IsValid("token"))
		})
	}
}

func TestValidator_IsValid_ReevaluatesClockOnEveryCall(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockCodec(ctrl)
	codec.EXPECT().Decode(domain.BearerToken("token")).Return(expiringAt(now.Add(time.Minute)), nil).Times(2)

	clock := pkgtime.NewAdjustableClock(now)
	validator := token.NewValidator(codec, clock)

	assert.True(t, validator.IsValid("token"))
	clock.Add(time.Minute)
	assert.False(t, validator.IsValid("token"))
}

func TestValidator_IsValid_EmptyTokenIsNotDecoded(t *testing.T) {
	ctrl := gomock.NewController(t)
	codec := mock.NewMockCodec(ctrl)

	validator := token.NewValidator(codec, pkgtime.NewClock())
	assert.False(t, validator.IsValid(""))
}
