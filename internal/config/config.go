// Package config loads process configuration from environment variables.
package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration. SecretKey is the single
// process-wide trust anchor for session token signing; a missing value is a
// fatal startup condition.
type Config struct {
	Addr              string        `env:"ADDR" envDefault:":8080"`
	DatabaseURL       string        `env:"DATABASE_URL,required"`
	SecretKey         string        `env:"SECRET_KEY,required"`
	FirebaseProjectID string        `env:"FIREBASE_PROJECT_ID"`
	SecureCookies     bool          `env:"SECURE_COOKIES" envDefault:"true"`
	SessionTTL        time.Duration `env:"SESSION_TTL" envDefault:"24h"`
}

// Load parses configuration from the environment.
func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}
