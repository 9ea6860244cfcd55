package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"PORT", "API_URL", "NEXT_PUBLIC_API_URL", "BACKEND_TIMEOUT_MS",
		"BACKEND_RATE_LIMIT", "BACKEND_RATE_BURST", "APP_ENV", "LOG_LEVEL", "LOG_FILE", "APP_VERSION",
	} {
		t.Setenv(key, "")
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5001", cfg.Backend.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	assert.Zero(t, cfg.Backend.RateLimit)
	assert.Equal(t, "development", cfg.App.Environment)
	assert.False(t, cfg.IsProduction())
}

func TestLoad_BaseURLFromEnvironment(t *testing.T) {
	clearEnv(t)

	t.Run("API_URL wins and trailing slash is trimmed", func(t *testing.T) {
		t.Setenv("API_URL", "https://api.example.com/")
		t.Setenv("NEXT_PUBLIC_API_URL", "http://ignored:1")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "https://api.example.com", cfg.Backend.BaseURL)
	})

	t.Run("falls back to NEXT_PUBLIC_API_URL", func(t *testing.T) {
		t.Setenv("API_URL", "")
		t.Setenv("NEXT_PUBLIC_API_URL", "http://backend:5001")

		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, "http://backend:5001", cfg.Backend.BaseURL)
	})
}

func TestLoad_InvalidValues(t *testing.T) {
	clearEnv(t)

	t.Run("relative base URL", func(t *testing.T) {
		t.Setenv("API_URL", "backend:5001")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("non-numeric timeout falls back to default", func(t *testing.T) {
		t.Setenv("API_URL", "")
		t.Setenv("BACKEND_TIMEOUT_MS", "soon")
		cfg, err := Load()
		require.NoError(t, err)
		assert.Equal(t, 10*time.Second, cfg.Backend.Timeout)
	})

	t.Run("negative timeout", func(t *testing.T) {
		t.Setenv("BACKEND_TIMEOUT_MS", "-5")
		_, err := Load()
		assert.Error(t, err)
	})
}

func TestValidate_RateLimit(t *testing.T) {
	cfg := &Config{
		Server:  ServerConfig{Port: "8080"},
		Backend: BackendConfig{BaseURL: "http://localhost:5001", Timeout: time.Second, RateLimit: 5, RateBurst: 0},
	}
	assert.Error(t, cfg.Validate())

	cfg.Backend.RateBurst = 2
	assert.NoError(t, cfg.Validate())

	cfg.Backend.RateLimit = -1
	assert.Error(t, cfg.Validate())
}
