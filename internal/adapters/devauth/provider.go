// Package devauth implements ports.AuthProvider for local development.
// It skips the real IdP round-trip: Begin points the browser straight at
// our own callback and Exchange hands back a configured identity.
package devauth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"errors"
	"fmt"
	"time"

	domainauth "github.com/hamzanaeem10/auto-suite-space/internal/domain/auth"
	"github.com/hamzanaeem10/auto-suite-space/internal/ports"
)

// Config describes the single development identity the provider signs in.
// Name and Groups may be empty; everything else is required.
type Config struct {
	UserID          string
	Name            string
	Email           string
	Groups          []string
	SessionDuration time.Duration // default 8h when zero
}

// Provider is the dev-mode AuthProvider.
type Provider struct {
	identity        domainauth.Identity
	sessionDuration time.Duration
}

// NewProvider validates cfg and builds the provider.
func NewProvider(cfg Config) (*Provider, error) {
	if cfg.UserID == "" {
		return nil, errors.New("dev auth: UserID is required")
	}
	if cfg.Email == "" {
		return nil, errors.New("dev auth: Email is required")
	}

	dur := cfg.SessionDuration
	if dur == 0 {
		dur = 8 * time.Hour
	}

	return &Provider{
		identity: domainauth.Identity{
			UserID:    cfg.UserID,
			Name:      cfg.Name,
			Email:     cfg.Email,
			Groups:    append([]string(nil), cfg.Groups...),
			ExpiresAt: time.Now().Add(dur),
		},
		sessionDuration: dur,
	}, nil
}

// Begin returns a relative URL into our own callback handler, with freshly
// generated state and nonce so the handler's checks run unchanged in dev.
func (p *Provider) Begin(_ context.Context, _ ports.BeginInput) (string, string, string, error) {
	state, err := randomToken(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate state: %w", err)
	}
	nonce, err := randomToken(24)
	if err != nil {
		return "", "", "", fmt.Errorf("generate nonce: %w", err)
	}
	return "/auth/callback?code=dev&state=" + state, state, nonce, nil
}

// Exchange returns the configured identity, extending its expiry when it
// is about to lapse so repeated dev logins keep working.
func (p *Provider) Exchange(_ context.Context, _ ports.ExchangeInput) (domainauth.Identity, error) {
	if time.Until(p.identity.ExpiresAt) < 5*time.Minute {
		p.identity.ExpiresAt = time.Now().Add(p.sessionDuration)
	}
	return p.identity, nil
}

// randomToken returns n URL-safe base64 characters from crypto/rand.
func randomToken(n int) (string, error) {
	if n <= 0 {
		return "", nil
	}

	b := make([]byte, (n*3+3)/4)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	s := base64.RawURLEncoding.EncodeToString(b)
	for len(s) < n {
		extra := make([]byte, 1)
		if _, err := rand.Read(extra); err != nil {
			return "", err
		}
		s += base64.RawURLEncoding.EncodeToString(extra)
	}
	return s[:n], nil
}
