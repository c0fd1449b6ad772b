package bootstrap

import (
	"io"
	"log/slog"
	"testing"

	"github.com/hamzanaeem10/auto-suite-space/config"
	"github.com/hamzanaeem10/auto-suite-space/internal/backend"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBackendClient(t *testing.T) *backend.Client {
	t.Helper()
	client, err := backend.NewClient(backend.Config{
		BaseURL: "https://data.example.com/rest/v1",
		APIKey:  "anon-key",
	})
	require.NoError(t, err)
	return client
}

func TestInitServices(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	container, err := InitServices(ServiceDeps{
		Config:  &config.AppConfig{},
		Backend: testBackendClient(t),
		Logger:  logger,
	})
	require.NoError(t, err)

	assert.NotNil(t, container.Listings)
	assert.NotNil(t, container.Profiles)
	assert.NotNil(t, container.Favorites)
	assert.NotNil(t, container.Dashboard)
	// Auth stays nil without a redis client.
	assert.Nil(t, container.Auth)
}

func TestInitServicesRequiresConfig(t *testing.T) {
	_, err := InitServices(ServiceDeps{Backend: testBackendClient(t)})
	assert.Error(t, err)
}

func TestInitServicesRequiresBackend(t *testing.T) {
	_, err := InitServices(ServiceDeps{Config: &config.AppConfig{}})
	assert.Error(t, err)
}

func TestBuildBackendClientValidation(t *testing.T) {
	_, err := BuildBackendClient(config.BackendConfig{}, nil)
	assert.Error(t, err)

	client, err := BuildBackendClient(config.BackendConfig{
		URL:     "https://data.example.com/rest/v1",
		AnonKey: "anon-key",
	}, slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	assert.NotNil(t, client)
}
