// Package config provides environment-based configuration.
//
// Loads from .env file (godotenv), maps to Config struct via go-simpler/env
// struct tags, then validates.
package config

import (
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"
)

type Config struct {
	AppEnv          string `env:"APP_ENV" default:"development"`
	Port            string `env:"PORT" default:"3005"`
	PublicBase      string `env:"PUBLIC_BASE"`
	AudioDir        string `env:"AUDIO_DIR" default:"./audio"`
	RetellAPIKey    string `env:"RETELL_API_KEY"`
	VerifySignature bool   `env:"RETELL_VERIFY_SIGNATURE" default:"true"`
	LogLevel        string `env:"LOG_LEVEL" default:"info"`
	LogFormat       string `env:"LOG_FORMAT" default:"text"`

	MaxViewerConnections int `env:"MAX_VIEWER_CONNECTIONS" default:"256"`
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		slog.Info("No .env file found, using environment variables")
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}

	if cfg.PublicBase == "" {
		cfg.PublicBase = "http://localhost:" + cfg.Port
	}

	if err := validate(&cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

func validate(cfg *Config) error {
	// Fail closed: nominally-enabled verification without a secret is a
	// misconfiguration, not an implicit skip.
	if cfg.VerifySignature && cfg.RetellAPIKey == "" {
		return fmt.Errorf("RETELL_API_KEY is required when RETELL_VERIFY_SIGNATURE is enabled")
	}
	if cfg.MaxViewerConnections < 1 {
		return fmt.Errorf("MAX_VIEWER_CONNECTIONS must be at least 1, got %d", cfg.MaxViewerConnections)
	}
	return nil
}
