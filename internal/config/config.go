// Package config loads process configuration from environment variables.
// The configuration is read once at startup and passed by reference into
// the components that need it; nothing reads the environment afterwards.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
	"golang.org/x/crypto/bcrypt"
)

// Config holds every tunable of the server.
type Config struct {
	Port         string        `env:"PORT"          envDefault:"8080"`
	DatabasePath string        `env:"DATABASE_PATH" envDefault:"taskdeck.db"`
	JWTSecret    string        `env:"JWT_SECRET"`
	TokenTTL     time.Duration `env:"TOKEN_TTL"     envDefault:"1h"`
	BcryptCost   int           `env:"BCRYPT_COST"   envDefault:"12"`
	LogFormat    string        `env:"LOG_FORMAT"    envDefault:"text"`
}

// Load parses the environment and validates the result. A missing or weak
// JWT secret is a startup-fatal condition, not a per-request error.
func Load() (*Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.JWTSecret == "" {
		return nil, fmt.Errorf("JWT_SECRET is required")
	}
	if len(cfg.JWTSecret) < 32 {
		return nil, fmt.Errorf("JWT_SECRET must be at least 32 characters for HMAC-SHA256")
	}
	if cfg.BcryptCost < bcrypt.MinCost || cfg.BcryptCost > 14 {
		return nil, fmt.Errorf("BCRYPT_COST must be between %d and 14, got %d", bcrypt.MinCost, cfg.BcryptCost)
	}
	return &cfg, nil
}
