package domain

import (
	"slices"
)

// State holds the access token together with the identity derived from it.
// The zero value is the anonymous state.
type State struct {
	accessToken BearerToken
	userID      int
	roles       []string
}

func Anonymous() State {
	return State{}
}

func Authenticated(token BearerToken, identity Identity) State {
	return State{
		accessToken: token,
		userID:      identity.UserID,
		roles:       slices.Clone(identity.Roles),
	}
}

func (s State) IsAnonymous() bool {
	return s.accessToken == ""
}

func (s State) AccessToken() (BearerToken, bool) {
	return s.accessToken, !s.IsAnonymous()
}

func (s State) UserID() (int, bool) {
	return s.userID, !s.IsAnonymous()
}

func (s State) Roles() ([]string, bool) {
	if s.IsAnonymous() {
		return nil, false
	}
	return slices.Clone(s.roles), true
}
