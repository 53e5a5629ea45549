package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "gold-terminal", cfg.App.Name)
	assert.Equal(t, "development", cfg.App.Env)
	assert.Equal(t, "8080", cfg.App.Port)
	assert.Equal(t, "http://localhost:8000/api", cfg.Backoffice.BaseURL)
	assert.Equal(t, 10*time.Second, cfg.Backoffice.Timeout)
	assert.Equal(t, 4*time.Hour, cfg.Session.TTL)
	assert.Equal(t, "memory", cfg.Idempotency.Store)
	assert.Equal(t, 24*time.Hour, cfg.Idempotency.TTL)
	assert.Equal(t, 12*time.Hour, cfg.JWT.TokenExpiration)
	assert.Equal(t, 1.0, cfg.Telemetry.SamplingRatio)
	assert.Equal(t, cfg.App.Name, cfg.Telemetry.ServiceName)
	assert.Empty(t, cfg.HTTP.CORSAllowOrigins)
	assert.Contains(t, cfg.HTTP.CORSAllowHeaders, "X-Idempotency-Key")
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("POS_APP_PORT", "9090")
	t.Setenv("POS_BACKOFFICE_BASE_URL", "http://backoffice:8000/api")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.App.Port)
	assert.Equal(t, "http://backoffice:8000/api", cfg.Backoffice.BaseURL)
}

func TestValidateRejectsUnknownIdempotencyStore(t *testing.T) {
	t.Setenv("POS_IDEMPOTENCY_STORE", "memcached")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "idempotency.store")
}

func TestValidateRejectsBadSamplingRatio(t *testing.T) {
	t.Setenv("POS_TELEMETRY_SAMPLING_RATIO", "1.5")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "sampling_ratio")
}

func TestValidateProductionRequirements(t *testing.T) {
	t.Run("missing jwt secret", func(t *testing.T) {
		cfg := &Config{App: AppConfig{Env: "production"}}
		applyDefaults(cfg)
		cfg.Backoffice.BaseURL = "https://backoffice.internal/api"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "jwt.secret")
	})

	t.Run("short jwt secret", func(t *testing.T) {
		cfg := &Config{
			App: AppConfig{Env: "production"},
			JWT: JWTConfig{Secret: "too-short"},
		}
		applyDefaults(cfg)
		cfg.Backoffice.BaseURL = "https://backoffice.internal/api"

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "32 characters")
	})

	t.Run("localhost backoffice", func(t *testing.T) {
		cfg := &Config{
			App: AppConfig{Env: "production"},
			JWT: JWTConfig{Secret: "a-long-enough-production-secret-123456"},
		}
		applyDefaults(cfg)

		err := cfg.validate()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "backoffice.base_url")
	})

	t.Run("valid production config", func(t *testing.T) {
		cfg := &Config{
			App: AppConfig{Env: "production"},
			JWT: JWTConfig{Secret: "a-long-enough-production-secret-123456"},
		}
		applyDefaults(cfg)
		cfg.Backoffice.BaseURL = "https://backoffice.internal/api"

		assert.NoError(t, cfg.validate())
	})
}
