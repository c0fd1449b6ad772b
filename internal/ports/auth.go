// Package ports defines the auth seams between the service layer and its
// adapters: the identity provider, the session store, and the role mapper.
// Implementations live in internal/adapters.
package ports

import (
	"context"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
)

// BeginInput carries the callback URL the provider should return to.
type BeginInput struct {
	RedirectURL string
}

// ExchangeInput carries the authorization code plus the state and nonce
// minted at Begin time, which the provider must see again unmodified.
type ExchangeInput struct {
	Code  string
	State string
	Nonce string
}

// AuthProvider runs the login handshake against an identity provider.
type AuthProvider interface {
	// Begin returns the provider URL to send the browser to, together
	// with the state and nonce that bind the eventual callback to this
	// initiation.
	Begin(ctx context.Context, in BeginInput) (authURL, state, nonce string, err error)

	// Exchange redeems the callback code for a verified identity,
	// checking state and nonce along the way.
	Exchange(ctx context.Context, in ExchangeInput) (domainauth.Identity, error)
}

// SessionStore persists sessions between requests.
type SessionStore interface {
	Save(ctx context.Context, sess domainauth.Session) error
	Get(ctx context.Context, id string) (domainauth.Session, error)
	Delete(ctx context.Context, id string) error
}

// RoleMapper translates provider group claims into an application role.
type RoleMapper interface {
	Map(groups []string) domainauth.Role
}
