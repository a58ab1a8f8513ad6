// Package config loads service configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds everything the server and CLI need at start time.
type Config struct {
	AppName string `env:"APP_NAME" envDefault:"Mindwell"`
	Env     string `env:"ENV" envDefault:"DEV"`
	Port    string `env:"PORT" envDefault:":8000"`

	// APIBaseURL is the base URL of the REST API as seen by clients.
	// RootURL is the base URL of the root service (frontend entry point).
	APIBaseURL string `env:"API_BASE_URL" envDefault:"http://localhost:8000/api"`
	RootURL    string `env:"ROOT_URL" envDefault:"http://localhost:3000"`

	DatabasePath string `env:"DATABASE_PATH" envDefault:"mindwell.db"`

	// RedisAddr switches the refresh-token repo to Redis when set.
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	JWTSecret  string        `env:"JWT_SECRET" envDefault:"dev-only-secret-change-me"`
	AccessTTL  time.Duration `env:"ACCESS_TOKEN_TTL" envDefault:"15m"`
	RefreshTTL time.Duration `env:"REFRESH_TOKEN_TTL" envDefault:"720h"`

	// SentimentURL points at the external emotion-classification model
	// service. Empty means the in-process keyword classifier is used.
	SentimentURL string `env:"SENTIMENT_URL"`

	AllowedOrigins []string `env:"ALLOWED_ORIGINS" envSeparator:"," envDefault:"http://localhost:3000"`
}

// New parses configuration from the environment.
func New() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// IsDev reports whether the service runs in a development environment.
func (c *Config) IsDev() bool {
	return c.Env == "DEV"
}
