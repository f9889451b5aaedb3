package config_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/neexbeast/weatherdash/internal/config"
)

var keys = []string{
	"OPENWEATHER_API_KEY", "OPENWEATHER_BASE_URL", "REDIS_URL", "BEARER_TOKEN",
	"PORT", "DEFAULT_CITY", "SESSION_TTL", "OTEL_EXPORTER_OTLP_ENDPOINT", "OTEL_SERVICE_NAME",
}

// clearEnv blanks every key for the duration of the test.
func clearEnv(t *testing.T) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoad_Defaults(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "k")

	cfg, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "k", cfg.WeatherAPIKey)
	assert.Equal(t, "https://api.openweathermap.org/data/2.5", cfg.WeatherBaseURL)
	assert.Equal(t, "8080", cfg.Port)
	assert.Equal(t, "London", cfg.DefaultCity)
	assert.Equal(t, 10*time.Minute, cfg.SessionTTL)
	assert.Equal(t, "weatherdash", cfg.ServiceName)
	assert.Empty(t, cfg.RedisURL)
	assert.Empty(t, cfg.BearerToken)
}

func TestLoad_MissingAPIKey(t *testing.T) {
	clearEnv(t)

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	assert.ErrorIs(t, err, config.ErrMissingAPIKey)
}

func TestLoad_EnvFile(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENWEATHER_API_KEY=from-file\nDEFAULT_CITY=Paris\nSESSION_TTL=30s\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.WeatherAPIKey)
	assert.Equal(t, "Paris", cfg.DefaultCity)
	assert.Equal(t, 30*time.Second, cfg.SessionTTL)
}

func TestLoad_EnvironmentWinsOverFile(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "from-env")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OPENWEATHER_API_KEY=from-file\n"), 0o644))

	cfg, err := config.Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", cfg.WeatherAPIKey)
}

func TestLoad_BadSessionTTL(t *testing.T) {
	clearEnv(t)
	t.Setenv("OPENWEATHER_API_KEY", "k")
	t.Setenv("SESSION_TTL", "soon")

	_, err := config.Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "SESSION_TTL")
}
