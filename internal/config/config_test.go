package config

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/harinagireddy-katta/DeKart/internal/modules/products"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "development", cfg.Env)
	assert.Equal(t, slog.LevelInfo, cfg.Level())
	assert.Equal(t, products.DefaultEndpoint, cfg.Listing.Endpoint)
	assert.Equal(t, products.DefaultOrigin, cfg.Listing.Origin)
	assert.Equal(t, products.DefaultTimeout, cfg.Listing.Timeout)
	assert.False(t, cfg.Listing.StrictStatus)
	assert.False(t, cfg.IsProduction())
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("ADDR", ":9090")
	t.Setenv("APP_ENV", "Production")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("LISTING_ENDPOINT", "https://api.example.test/prods")
	t.Setenv("LISTING_ORIGIN", "https://shop.example.test")
	t.Setenv("LISTING_TIMEOUT", "3s")
	t.Setenv("LISTING_STRICT_STATUS", "true")

	cfg, err := Load(New())
	require.NoError(t, err)

	assert.Equal(t, ":9090", cfg.Addr)
	assert.True(t, cfg.IsProduction())
	assert.Equal(t, slog.LevelDebug, cfg.Level())

	cc := cfg.Listing.ClientConfig()
	assert.Equal(t, products.ClientConfig{
		Endpoint:     "https://api.example.test/prods",
		Origin:       "https://shop.example.test",
		Timeout:      3 * time.Second,
		StrictStatus: true,
	}, cc)
}

func TestLoadRejectsInvalid(t *testing.T) {
	t.Setenv("LISTING_ENDPOINT", "not-a-url")
	t.Setenv("LOG_LEVEL", "chatty")

	_, err := Load(New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing.endpoint")
	assert.Contains(t, err.Error(), "log_level")
}

func TestLoadRejectsZeroTimeout(t *testing.T) {
	t.Setenv("LISTING_TIMEOUT", "0s")

	_, err := Load(New())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing.timeout")
}
