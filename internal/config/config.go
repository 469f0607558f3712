package config

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// Provider exposes configuration values to the rest of the application.
type Provider interface {
	GetAddr() string
	GetOverlayPath() string
	GetShutdownTimeout() time.Duration
	GetLogFormat() string
	GetLogLevel() string
}

// Config holds all configuration for the application.
type Config struct {
	Addr            string        `env:"ICONKIT_ADDR" envDefault:":8080"`
	OverlayPath     string        `env:"ICONKIT_OVERLAY"`
	ShutdownTimeout time.Duration `env:"ICONKIT_SHUTDOWN_TIMEOUT" envDefault:"10s"`
	LogFormat       string        `env:"LOG_FORMAT" envDefault:"text"`
	LogLevel        string        `env:"LOG_LEVEL" envDefault:"info"`
}

// New loads a .env file if one exists and then reads the environment.
func New() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		// slog is not configured yet; the default handler is fine here.
		slog.Debug("No .env file found, relying on environment variables")
	}
	return Parse()
}

// Parse reads configuration from the environment only.
func Parse() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse env: %w", err)
	}
	if cfg.ShutdownTimeout <= 0 {
		return nil, fmt.Errorf("ICONKIT_SHUTDOWN_TIMEOUT must be positive, got %s", cfg.ShutdownTimeout)
	}
	return cfg, nil
}

func (c *Config) GetAddr() string                   { return c.Addr }
func (c *Config) GetOverlayPath() string            { return c.OverlayPath }
func (c *Config) GetShutdownTimeout() time.Duration { return c.ShutdownTimeout }
func (c *Config) GetLogFormat() string              { return c.LogFormat }
func (c *Config) GetLogLevel() string               { return c.LogLevel }
