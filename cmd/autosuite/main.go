package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/hamzanaeem10/auto-suite-space/config"
	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/hamzanaeem10/auto-suite-space/internal/bootstrap"
	"github.com/hamzanaeem10/auto-suite-space/internal/data"
	"github.com/hamzanaeem10/auto-suite-space/internal/devseed"
	"github.com/redis/go-redis/v9"
)

func main() {
	ctx := context.Background()
	logger := bootstrap.InitLogger()
	if err := run(ctx, logger); err != nil {
		logger.ErrorContext(ctx, "fatal error", "error", err)
		os.Exit(1) //nolint:forbidigo // Main entrypoint should exit with non-zero status on fatal errors.
	}
}

func run(ctx context.Context, logger *slog.Logger) error {
	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		return err
	}

	logStartupInfo(ctx, logger, &cfg)

	backendClient, redisClient, err := initInfrastructure(ctx, &cfg, logger)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer func() {
			if cerr := redisClient.Close(); cerr != nil {
				logger.ErrorContext(ctx, "close redis failed", "error", cerr)
			}
		}()
	}

	services, err := bootstrap.InitServices(bootstrap.ServiceDeps{
		Config:      &cfg,
		Backend:     backendClient,
		RedisClient: redisClient,
		Logger:      logger,
	})
	if err != nil {
		return err
	}

	if cfg.IsDev {
		seedDevData(ctx, backendClient, redisClient, logger)
	}

	// Log session logins/logouts for the lifetime of the process.
	unsubscribe := bootstrap.WatchSessionEvents(ctx, services.Auth, logger)
	defer unsubscribe()

	server := bootstrap.StartHTTPServer(&bootstrap.HTTPServerConfig{
		Config:   &cfg,
		Services: services,
		Logger:   logger,
	})

	// Block until a shutdown signal arrives.
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)
	sig := <-stop
	logger.InfoContext(ctx, "received shutdown signal", "signal", sig.String())

	return bootstrap.ShutdownHTTPServer(bootstrap.ShutdownConfig{
		Context: ctx,
		Server:  server,
		Logger:  logger,
	})
}

func logStartupInfo(ctx context.Context, logger *slog.Logger, cfg *config.AppConfig) {
	logger.InfoContext(ctx, "starting autosuite service",
		"addr", cfg.HTTP.Addr,
		"auth_mode", string(cfg.Auth.Mode),
		"dev_mode", cfg.IsDev)
}

// initInfrastructure connects shared dependencies used by the service runtime.
//
//nolint:ireturn // returning redis.UniversalClient keeps sentinel/cluster support flexible.
func initInfrastructure(
	ctx context.Context,
	cfg *config.AppConfig,
	logger *slog.Logger,
) (*backend.Client, redis.UniversalClient, error) {
	backendClient, err := bootstrap.BuildBackendClient(cfg.Backend, logger)
	if err != nil {
		return nil, nil, fmt.Errorf("build backend client: %w", err)
	}

	redisClient, err := bootstrap.ConnectRedis(cfg.Redis, logger)
	if err != nil {
		// Auth is the only consumer of redis; browsing still works without it.
		logger.WarnContext(ctx, "redis unavailable, continuing without sessions", "error", err)
		return backendClient, nil, nil
	}

	return backendClient, redisClient, nil
}

// seedDevData populates demo cars in development so the catalog is never empty.
func seedDevData(ctx context.Context, backendClient *backend.Client, redisClient redis.UniversalClient, logger *slog.Logger) {
	var cache *data.RedisCacheRepo
	if redisClient != nil {
		cache = data.NewRedisCacheRepo(redisClient)
	}
	if err := devseed.Run(ctx, devseed.Options{
		Backend: backendClient,
		Cache:   cache,
		Logger:  logger,
	}); err != nil {
		if errors.Is(err, devseed.ErrSeedSkipped) {
			logger.InfoContext(ctx, "dev seed skipped", "reason", err)
			return
		}
		logger.WarnContext(ctx, "dev seed failed", "error", err)
	}
}
