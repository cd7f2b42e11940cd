package config

import (
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("APP_ENV", "")
	t.Setenv("ENV", "")
	t.Setenv("PORT", "")
	t.Setenv("DATABASE_URL", "")
	t.Setenv("CORS_ALLOWED_ORIGINS", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "dev", cfg.AppEnv)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "bookings.db", cfg.DatabaseURL)
	assert.Equal(t, 60, cfg.RateLimitPerMin)
	assert.Equal(t, 10*time.Second, cfg.ShutdownTimeout)
	assert.Equal(t, http.SameSiteLaxMode, cfg.SameSite())
	assert.False(t, cfg.InProduction())
	assert.Empty(t, cfg.AllowedOrigins)
}

func TestLoad_AllowedOrigins(t *testing.T) {
	t.Setenv("CORS_ALLOWED_ORIGINS", "https://a.example, ,https://b.example")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
}

func TestLoad_Invalid(t *testing.T) {
	cases := map[string]map[string]string{
		"bad samesite":         {"COOKIE_SAMESITE": "sometimes"},
		"none without secure":  {"COOKIE_SAMESITE": "None", "COOKIE_SECURE": "false"},
		"prod without secure":  {"APP_ENV": "production", "COOKIE_SECURE": "false"},
		"non numeric limit":    {"RATE_LIMIT_PER_MIN": "lots"},
		"zero limit":           {"RATE_LIMIT_PER_MIN": "0"},
		"bad shutdown timeout": {"SHUTDOWN_TIMEOUT": "soon"},
	}

	for name, env := range cases {
		t.Run(name, func(t *testing.T) {
			for k, v := range env {
				t.Setenv(k, v)
			}
			_, err := Load()
			assert.Error(t, err)
		})
	}
}

func TestLoad_ProductionSecure(t *testing.T) {
	t.Setenv("APP_ENV", "release")
	t.Setenv("COOKIE_SECURE", "true")
	t.Setenv("COOKIE_SAMESITE", "Strict")

	cfg, err := Load()
	require.NoError(t, err)
	assert.True(t, cfg.InProduction())
	assert.Equal(t, http.SameSiteStrictMode, cfg.SameSite())
}
