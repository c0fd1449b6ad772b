package bootstrap

import (
	"log/slog"

	"github.com/redis/go-redis/v9"

	"github.com/hamzanaeem10/auto-suite-space/config"
	"github.com/hamzanaeem10/auto-suite-space/internal/adapters/authroles"
	"github.com/hamzanaeem10/auto-suite-space/internal/adapters/devauth"
	"github.com/hamzanaeem10/auto-suite-space/internal/adapters/oidc"
	redisadapter "github.com/hamzanaeem10/auto-suite-space/internal/adapters/redis"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
)

// AuthConfig collects what the auth assembly needs from the wider app.
type AuthConfig struct {
	Auth        config.AuthConfig
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

func (c AuthConfig) logger() *slog.Logger {
	if c.Logger != nil {
		return c.Logger
	}
	return slog.Default()
}

// BuildAuthService assembles the auth service for the configured mode.
// A nil return means auth is unavailable and the app runs browse-only;
// sessions need Redis, so a missing client disables auth outright.
func BuildAuthService(cfg AuthConfig) *service.AuthService {
	if cfg.RedisClient == nil {
		cfg.logger().Warn("auth service disabled: redis client not configured", "mode", cfg.Auth.Mode)
		return nil
	}

	sessionStore := redisadapter.NewSessionStoreWithPrefix(cfg.RedisClient, "session:")
	roleMapper := authroles.StaticRoleMapper{
		AdminGroup: cfg.Auth.AdminGroup,
		UserGroup:  cfg.Auth.UserGroup,
	}

	switch cfg.Auth.Mode {
	case config.AuthModeMock:
		return buildDevAuthService(cfg, sessionStore, roleMapper)
	case config.AuthModeOAuth:
		return buildOAuthService(cfg, sessionStore, roleMapper)
	default:
		return nil
	}
}

func buildDevAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	prov, err := devauth.NewProvider(devauth.Config{
		UserID: cfg.Auth.DevAuth.UserID,
		Name:   cfg.Auth.DevAuth.Name,
		Email:  cfg.Auth.DevAuth.Email,
		Groups: cfg.Auth.DevAuth.Groups,
	})
	if err != nil {
		cfg.logger().Warn("failed to create dev auth provider, auth disabled", "error", err)
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
	})
}

func buildOAuthService(
	cfg AuthConfig,
	sessionStore *redisadapter.SessionStore,
	roleMapper authroles.StaticRoleMapper,
) *service.AuthService {
	oauth := cfg.Auth.OAuth
	if oauth.DiscoveryURL == "" || oauth.ClientID == "" || oauth.ClientSecret == "" {
		cfg.logger().Warn("oauth mode selected but required config missing; auth disabled",
			"discovery_url_empty", oauth.DiscoveryURL == "",
			"client_id_empty", oauth.ClientID == "",
			"client_secret_empty", oauth.ClientSecret == "",
		)
		return nil
	}

	prov, err := oidc.NewProvider(oidc.ProviderConfig{
		ClientID:     oauth.ClientID,
		ClientSecret: oauth.ClientSecret,
		RedirectURL:  oauth.RedirectURL,
		Scope:        oauth.Scope,
		DiscoveryURL: oauth.DiscoveryURL,
		LogoutURL:    oauth.LogoutURL,
	})
	if err != nil {
		cfg.logger().Warn("failed to create OIDC provider, auth disabled", "error", err)
		return nil
	}

	return service.NewAuthService(service.AuthServiceOptions{
		Provider: prov,
		Sessions: sessionStore,
		Roles:    roleMapper,
	})
}
