// Package config loads runtime settings from the environment, reading a
// .env file first when one exists.
package config

import (
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/neexbeast/weatherdash/internal/weather"
)

// Config holds every setting the binaries read from the environment.
type Config struct {
	WeatherAPIKey  string
	WeatherBaseURL string
	RedisURL       string
	BearerToken    string
	Port           string
	DefaultCity    string
	SessionTTL     time.Duration
	OTLPEndpoint   string
	ServiceName    string
}

// ErrMissingAPIKey is returned when OPENWEATHER_API_KEY is unset.
var ErrMissingAPIKey = errors.New("OPENWEATHER_API_KEY is not set")

// Load reads the given .env files (default ".env"; missing files are
// ignored) and then the process environment.
func Load(envFiles ...string) (*Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", f, err)
		}
	}

	ttl, err := time.ParseDuration(getEnv("SESSION_TTL", "10m"))
	if err != nil {
		return nil, fmt.Errorf("parsing SESSION_TTL: %w", err)
	}

	cfg := &Config{
		WeatherAPIKey:  os.Getenv("OPENWEATHER_API_KEY"),
		WeatherBaseURL: getEnv("OPENWEATHER_BASE_URL", weather.DefaultBaseURL),
		RedisURL:       os.Getenv("REDIS_URL"),
		BearerToken:    os.Getenv("BEARER_TOKEN"),
		Port:           getEnv("PORT", "8080"),
		DefaultCity:    getEnv("DEFAULT_CITY", "London"),
		SessionTTL:     ttl,
		OTLPEndpoint:   os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT"),
		ServiceName:    getEnv("OTEL_SERVICE_NAME", "weatherdash"),
	}
	if cfg.WeatherAPIKey == "" {
		return nil, ErrMissingAPIKey
	}
	return cfg, nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
