package config

import (
	"time"

	"github.com/marmos91/storefront/pkg/api"
	"github.com/marmos91/storefront/pkg/store"
)

// GetDefaultConfig returns a configuration populated with defaults.
//
// The JWT secret is deliberately NOT defaulted: shipping a guessable
// signing secret would let anyone forge tokens. Startup fails unless a
// secret is supplied via config file or STOREFRONT_API_JWT_SECRET.
func GetDefaultConfig() *Config {
	cfg := &Config{
		Logging: LoggingConfig{
			Level:  "INFO",
			Format: "text",
			Output: "stdout",
		},
		ShutdownTimeout: 30 * time.Second,
		Database: store.Config{
			Type: store.DatabaseTypeSQLite,
		},
		Metrics: MetricsConfig{
			Enabled: false,
			Port:    9090,
		},
		API: api.APIConfig{
			Port:         8080,
			ReadTimeout:  10 * time.Second,
			WriteTimeout: 10 * time.Second,
			IdleTimeout:  60 * time.Second,
			JWT: api.JWTConfig{
				TokenDuration: 24 * time.Hour,
			},
		},
	}
	cfg.Database.ApplyDefaults()
	return cfg
}

// ApplyDefaults fills in missing values on a loaded configuration.
func ApplyDefaults(cfg *Config) {
	if cfg.Logging.Level == "" {
		cfg.Logging.Level = "INFO"
	}
	if cfg.Logging.Format == "" {
		cfg.Logging.Format = "text"
	}
	if cfg.Logging.Output == "" {
		cfg.Logging.Output = "stdout"
	}
	if cfg.ShutdownTimeout == 0 {
		cfg.ShutdownTimeout = 30 * time.Second
	}
	if cfg.Metrics.Port == 0 {
		cfg.Metrics.Port = 9090
	}
	if cfg.API.Port == 0 {
		cfg.API.Port = 8080
	}
	if cfg.API.ReadTimeout == 0 {
		cfg.API.ReadTimeout = 10 * time.Second
	}
	if cfg.API.WriteTimeout == 0 {
		cfg.API.WriteTimeout = 10 * time.Second
	}
	if cfg.API.IdleTimeout == 0 {
		cfg.API.IdleTimeout = 60 * time.Second
	}
	if cfg.API.JWT.TokenDuration == 0 {
		cfg.API.JWT.TokenDuration = 24 * time.Hour
	}
	cfg.Database.ApplyDefaults()
}
