package bootstrap

import (
	"context"
	"errors"
	"log/slog"

	"github.com/hamzanaeem10/auto-suite-space/config"
	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/data"
	"github.com/hamzanaeem10/auto-suite-space/internal/service"
	"github.com/redis/go-redis/v9"
)

// ServiceContainer holds all application services.
type ServiceContainer struct {
	Listings  *service.ListingService
	Profiles  *service.ProfileService
	Favorites *service.FavoriteService
	Dashboard *service.DashboardService
	Auth      *service.AuthService
}

// ServiceDeps groups dependencies for service initialization.
type ServiceDeps struct {
	Config      *config.AppConfig
	Backend     *backend.Client
	RedisClient redis.UniversalClient
	Logger      *slog.Logger
}

// InitServices initializes all application services backed by the data service.
func InitServices(deps ServiceDeps) (ServiceContainer, error) {
	if deps.Config == nil {
		return ServiceContainer{}, errors.New("config is required")
	}
	if deps.Backend == nil {
		return ServiceContainer{}, errors.New("backend client is required")
	}

	logger := deps.Logger
	if logger == nil {
		logger = slog.Default()
	}

	carRepo := data.NewCarRepo(deps.Backend)
	profileRepo := data.NewProfileRepo(deps.Backend)
	favoriteRepo := data.NewFavoriteRepo(deps.Backend)
	testDriveRepo := data.NewTestDriveRepo(deps.Backend)

	listings := service.NewListingService(service.ListingServiceOptions{
		Cars:   carRepo,
		Logger: logger,
	})
	profiles := service.NewProfileService(service.ProfileServiceOptions{
		Profiles: profileRepo,
	})
	favorites := service.NewFavoriteService(service.FavoriteServiceOptions{
		Favorites: favoriteRepo,
	})
	dashboard := service.NewDashboardService(service.DashboardServiceOptions{
		Cars:       carRepo,
		Profiles:   profileRepo,
		TestDrives: testDriveRepo,
	})

	auth := BuildAuthService(AuthConfig{
		Auth:        deps.Config.Auth,
		RedisClient: deps.RedisClient,
		Logger:      logger,
	})

	return ServiceContainer{
		Listings:  listings,
		Profiles:  profiles,
		Favorites: favorites,
		Dashboard: dashboard,
		Auth:      auth,
	}, nil
}

// WatchSessionEvents subscribes to session changes and logs them until ctx is
// canceled. The returned cancel releases the subscription.
func WatchSessionEvents(ctx context.Context, auth *service.AuthService, logger *slog.Logger) func() {
	if auth == nil {
		return func() {}
	}
	if logger == nil {
		logger = slog.Default()
	}

	events, cancel := auth.Subscribe()
	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-events:
				if !ok {
					return
				}
				logger.Info("session event",
					"kind", string(event.Kind),
					"user_id", event.Session.UserID,
					"role", string(event.Session.Role),
				)
			}
		}
	}()
	return cancel
}
