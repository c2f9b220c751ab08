package infra

import (
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ENV", "PORT", "AWS_LWA_PORT", "API_PREFIX", "LOG_LEVEL", "SECRET_KEY", "JWT_TTL", "BLACKLIST_RETENTION",
		"CORS_ORIGINS", "DB_NAME", "DB_PORT", "SQLITE_PATH", "GEMINI_API_KEY", "GEMINI_MODEL",
	} {
		t.Setenv(key, "")
	}
}

func TestLoadConfig_Defaults(t *testing.T) {
	clearEnv(t)

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "dev", cfg.Env)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "/api", cfg.APIPrefix)
	assert.Equal(t, defaultSecretKey, cfg.SecretKey)
	assert.Zero(t, cfg.TokenTTL)
	assert.Zero(t, cfg.BlacklistRetention)
	assert.Equal(t, []string{"http://localhost:5173"}, cfg.CORSOrigins)
	assert.Equal(t, "grocery.db", cfg.DB.SQLitePath)
	assert.Empty(t, cfg.DB.Name)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.Model)
}

func TestLoadConfig_Overrides(t *testing.T) {
	clearEnv(t)
	t.Setenv("AWS_LWA_PORT", "9000")
	t.Setenv("API_PREFIX", "v1")
	t.Setenv("JWT_TTL", "24h")
	t.Setenv("BLACKLIST_RETENTION", "720h")
	t.Setenv("SECRET_KEY", "s3cret")
	t.Setenv("CORS_ORIGINS", "http://localhost:5173, https://grocery.example.com ,")

	cfg, err := LoadConfig()

	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Port)
	assert.Equal(t, "/v1", cfg.APIPrefix)
	assert.Equal(t, 24*time.Hour, cfg.TokenTTL)
	assert.Equal(t, 720*time.Hour, cfg.BlacklistRetention)
	assert.Equal(t, "s3cret", cfg.SecretKey)
	assert.Equal(t, []string{"http://localhost:5173", "https://grocery.example.com"}, cfg.CORSOrigins)
}

func TestLoadConfig_Errors(t *testing.T) {
	t.Run("prod without secret", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("ENV", "prod")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad ttl", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("JWT_TTL", "forever")

		_, err := LoadConfig()
		assert.Error(t, err)
	})

	t.Run("bad retention", func(t *testing.T) {
		clearEnv(t)
		t.Setenv("BLACKLIST_RETENTION", "30d")

		_, err := LoadConfig()
		assert.Error(t, err)
	})
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, ParseLevel("DEBUG"))
	assert.Equal(t, slog.LevelWarn, ParseLevel("warn"))
	assert.Equal(t, slog.LevelError, ParseLevel("error"))
	assert.Equal(t, slog.LevelInfo, ParseLevel(""))
}
