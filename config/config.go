package config

import (
	"errors"
	"os"
	"strings"
	"time"
)

// Config holds all service settings, populated from environment variables.
type Config struct {
	MongoURL    string
	DBName      string
	Port        string
	CORSOrigins []string
	LogLevel    string
	LogFormat   string

	GeocoderBaseURL string
	GeocoderTimeout time.Duration
	GeocodeCacheTTL time.Duration
}

// Load reads configuration from environment variables, applying defaults
// where unset.
func Load() (*Config, error) {
	geocoderTimeout, err := time.ParseDuration(envOrDefault("GEOCODER_TIMEOUT", "5s"))
	if err != nil || geocoderTimeout <= 0 {
		return nil, errors.New("invalid GEOCODER_TIMEOUT")
	}

	geocodeCacheTTL, err := time.ParseDuration(envOrDefault("GEOCODE_CACHE_TTL", "12h"))
	if err != nil || geocodeCacheTTL <= 0 {
		return nil, errors.New("invalid GEOCODE_CACHE_TTL")
	}

	cfg := &Config{
		MongoURL:    envOrDefault("MONGO_URL", "mongodb://localhost:27017"),
		DBName:      envOrDefault("DB_NAME", "mgnrega_dashboard"),
		Port:        envOrDefault("PORT", "8080"),
		CORSOrigins: splitOrigins(envOrDefault("CORS_ORIGINS", "*")),
		LogLevel:    envOrDefault("LOG_LEVEL", "info"),
		LogFormat:   envOrDefault("LOG_FORMAT", "json"),

		GeocoderBaseURL: envOrDefault("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org"),
		GeocoderTimeout: geocoderTimeout,
		GeocodeCacheTTL: geocodeCacheTTL,
	}

	if cfg.MongoURL == "" {
		return nil, errors.New("MONGO_URL is required")
	}
	if cfg.DBName == "" {
		return nil, errors.New("DB_NAME is required")
	}

	return cfg, nil
}

func envOrDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitOrigins(raw string) []string {
	parts := strings.Split(raw, ",")
	origins := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			origins = append(origins, trimmed)
		}
	}
	return origins
}
