package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/billup/billup-web/internal/session/app/external"
	"github.com/billup/billup-web/internal/session/app/token"
	"github.com/billup/billup-web/internal/session/domain"
	"github.com/billup/billup-web/pkg/log"
)

var errTokenNotValid = errors.New("token is expired or malformed")

// Controller owns the session state of one browser.
// Every state change replaces the token, userId and roles together under mu.
type Controller struct {
	mu    sync.Mutex
	state domain.State

	store     *Store
	validator token.Validator
	codec     token.Codec
	authAPI   external.AuthAPI
	navigator Navigator
	logger    log.Logger
}

func NewController(
	ctx context.Context,
	store *Store,
	validator token.Validator,
	codec token.Codec,
	authAPI external.AuthAPI,
	navigator Navigator,
	logger log.Logger,
) *Controller {
	return &Controller{
		state:     store.Load(ctx),
		store:     store,
		validator: validator,
		codec:     codec,
		authAPI:   authAPI,
		navigator: navigator,
		logger:    logger,
	}
}

// IsLoggedIn checks the expiry of the current token on every call.
func (c *Controller) IsLoggedIn() bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	t, ok := c.state.AccessToken()
	return ok && c.validator.IsValid(t)
}

// SetAuthData adopts t as the session token. A token that is not valid or has no identity
// resets the session to anonymous, removes the stored session and navigates to the login route.
// Nothing is written to storage on failure.
func (c *Controller) SetAuthData(ctx context.Context, t domain.BearerToken) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	identity, err := c.identity(t)
	if err != nil {
		c.state = domain.Anonymous()
		c.store.Clear()
		c.logger.WithError(err).Warn(ctx, "session token rejected")
		c.navigator.Navigate(LoginRoute)
		return fmt.Errorf("%w: %w", domain.ErrInvalidToken, err)
	}

	state := domain.Authenticated(t, identity)
	if err = c.store.Save(t, identity); err != nil {
		c.state = domain.Anonymous()
		c.store.Clear()
		return fmt.Errorf("save session: %w", err)
	}
	c.state = state

	return nil
}

func (c *Controller) SaveRefreshToken(refreshToken string) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.store.SaveRefreshToken(refreshToken)
}

// Logout notifies the remote API and then clears the session whatever the outcome.
// It returns true only when the remote API accepted the logout.
func (c *Controller) Logout(ctx context.Context) bool {
	c.mu.Lock()
	t, hasToken := c.state.AccessToken()
	c.mu.Unlock()

	remoteLoggedOut := false
	if hasToken {
		err := c.authAPI.Logout(ctx, t)
		if err != nil {
			c.logger.WithError(err).Warn(ctx, "remote logout failed")
		} else {
			remoteLoggedOut = true
		}
	}

	c.Invalidate()
	return remoteLoggedOut
}

// Invalidate drops the in-memory session and every stored session key.
func (c *Controller) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = domain.Anonymous()
	c.store.Clear()
}

func (c *Controller) UserID() (int, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.UserID()
}

func (c *Controller) UserRoles() ([]string, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.Roles()
}

func (c *Controller) AccessToken() (domain.BearerToken, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state.AccessToken()
}

func (c *Controller) State() domain.State {
	c.mu.Lock()
	defer c.mu.Unlock()

	return c.state
}

func (c *Controller) identity(t domain.BearerToken) (domain.Identity, error) {
	if !c.validator.IsValid(t) {
		return domain.Identity{}, errTokenNotValid
	}

	claims, err := c.codec.Decode(t)
	if err != nil {
		return domain.Identity{}, err
	}

	return claims.Identity()
}
