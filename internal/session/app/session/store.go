package session

//go:generate mockgen -source store.go -destination mock/store.go -package mock

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strconv"

	"github.com/billup/billup-web/internal/session/app/token"
	"github.com/billup/billup-web/internal/session/domain"
	"github.com/billup/billup-web/pkg/log"
)

const (
	KeyAccessToken  = "accessToken"
	KeyRefreshToken = "refreshToken"
	KeyUserID       = "userId"
	KeyRoles        = "roles"
)

var keys = []string{KeyAccessToken, KeyRefreshToken, KeyUserID, KeyRoles}

// KeyValueStorage is the durable storage the session is mirrored into.
type KeyValueStorage interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}

type Store struct {
	storage   KeyValueStorage
	codec     token.Codec
	validator token.Validator
	logger    log.Logger
}

func NewStore(
	storage KeyValueStorage,
	codec token.Codec,
	validator token.Validator,
	logger log.Logger,
) *Store {
	return &Store{
		storage:   storage,
		codec:     codec,
		validator: validator,
		logger:    logger,
	}
}

// Load restores the session from storage. The identity is always derived from the stored token,
// separately stored userId and roles are only compared against it.
func (s *Store) Load(ctx context.Context) domain.State {
	raw, ok := s.storage.Get(KeyAccessToken)
	if !ok || raw == "" {
		return domain.Anonymous()
	}

	t := domain.BearerToken(raw)
	if !s.validator.IsValid(t) {
		s.logger.Debug(ctx, "stored token is expired or malformed")
		return domain.Anonymous()
	}

	claims, err := s.codec.Decode(t)
	if err != nil {
		return domain.Anonymous()
	}
	identity, err := claims.Identity()
	if err != nil {
		s.logger.WithError(err).Debug(ctx, "stored token has no identity")
		return domain.Anonymous()
	}

	if s.hasDrift(identity) {
		s.logger.With(log.Fields{
			"userId": identity.UserID,
		}).Warn(ctx, "stored identity differs from token, using token claims")
	}

	return domain.Authenticated(t, identity)
}

// Save encodes every value before the first write, so a failure leaves storage untouched.
func (s *Store) Save(t domain.BearerToken, identity domain.Identity) error {
	roles := identity.Roles
	if roles == nil {
		roles = []string{}
	}
	rolesEncoded, err := json.Marshal(roles)
	if err != nil {
		return fmt.Errorf("encode roles: %w", err)
	}

	s.storage.Set(KeyAccessToken, string(t))
	s.storage.Set(KeyUserID, strconv.Itoa(identity.UserID))
	s.storage.Set(KeyRoles, string(rolesEncoded))
	return nil
}

// SaveRefreshToken persists the refresh token, nothing reads it back yet.
func (s *Store) SaveRefreshToken(refreshToken string) {
	s.storage.Set(KeyRefreshToken, refreshToken)
}

func (s *Store) Clear() {
	for _, key := range keys {
		s.storage.Remove(key)
	}
}

func (s *Store) hasDrift(identity domain.Identity) bool {
	if userID, ok := s.storage.Get(KeyUserID); !ok || userID != strconv.Itoa(identity.UserID) {
		return true
	}

	rolesEncoded, ok := s.storage.Get(KeyRoles)
	if !ok {
		return true
	}
	var roles []string
	if err := json.Unmarshal([]byte(rolesEncoded), &roles); err != nil {
		return true
	}
	return !slices.Equal(roles, identity.Roles)
}
