package config

import (
	"fmt"
	"strings"
)

// AuthMode selects how users sign in.
type AuthMode string

const (
	// AuthModeOAuth signs users in through a real OIDC provider.
	AuthModeOAuth AuthMode = "oauth"
	// AuthModeMock signs in a fixed local identity; development only.
	AuthModeMock AuthMode = "mock"
)

// UnmarshalText parses AUTH_MODE, rejecting anything but the two modes.
func (a *AuthMode) UnmarshalText(text []byte) error {
	v := strings.ToLower(string(text))
	switch v {
	case "oauth", "mock":
		*a = AuthMode(v)
		return nil
	default:
		return fmt.Errorf("invalid AuthMode: %q (valid options: oauth, mock)", v)
	}
}

// OAuthConfig carries the OIDC client registration.
type OAuthConfig struct {
	ClientID     string `env:"CLIENT_ID"     envDefault:"autosuite"`
	ClientSecret string `env:"CLIENT_SECRET" envDefault:"autosuite"`
	RedirectURL  string `env:"REDIRECT_URL"  envDefault:"http://localhost:8080/auth/callback"`
	Scope        string `env:"SCOPE"         envDefault:"openid profile email groups"`
	DiscoveryURL string `env:"DISCOVERY_URL"`
	LogoutURL    string `env:"LOGOUT_URL"`
}

// DevAuthConfig is the fixed identity AUTH_MODE=mock signs in.
type DevAuthConfig struct {
	UserID string   `env:"USER_ID" envDefault:"dev-user"`
	Name   string   `env:"NAME"    envDefault:"Dev User"`
	Email  string   `env:"EMAIL"   envDefault:"dev@example.com"`
	Groups []string `env:"GROUPS"  envDefault:"admins"          envSeparator:";"`
}

// AuthConfig groups everything sign-in related.
type AuthConfig struct {
	// Mode picks the provider; OAuth applies when oauth, DevAuth when mock.
	Mode AuthMode `env:"AUTH_MODE" envDefault:"oauth"`

	OAuth   OAuthConfig   `envPrefix:"OAUTH_"`
	DevAuth DevAuthConfig `envPrefix:"DEV_AUTH_"`

	// AdminGroup and UserGroup are the IdP groups the role mapper
	// translates into application roles.
	AdminGroup string `env:"ADMIN_GROUP,required"`
	UserGroup  string `env:"USER_GROUP,required"`
}
