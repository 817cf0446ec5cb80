package config

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
)

// sampleConfigTemplate is the commented configuration file written by
// `storefront init`. %s is replaced with a freshly generated JWT secret.
const sampleConfigTemplate = `# Storefront Configuration File
#
# All options can be overridden with environment variables using the
# STOREFRONT_ prefix, e.g. STOREFRONT_LOGGING_LEVEL=DEBUG.

logging:
  # Minimum log level: DEBUG, INFO, WARN, ERROR
  level: INFO
  # Output format: text, json
  format: text
  # Destination: stdout, stderr, or a file path
  output: stdout

# Maximum time to wait for graceful shutdown
shutdown_timeout: 30s

database:
  # Persistence backend: sqlite (default) or postgres
  type: sqlite
  sqlite:
    # Defaults to $XDG_CONFIG_HOME/storefront/storefront.db when empty
    path: ""
  # postgres:
  #   host: localhost
  #   port: 5432
  #   database: storefront
  #   user: storefront
  #   password: ""
  #   ssl_mode: disable

metrics:
  # Prometheus metrics endpoint on its own port
  enabled: false
  port: 9090

api:
  port: 8080
  read_timeout: 10s
  write_timeout: 10s
  idle_timeout: 60s
  jwt:
    # HMAC signing secret for bearer tokens. Required, minimum 32
    # characters; the server refuses to start without one. The value
    # below was randomly generated for development use.
    secret: "%s"
    # Token lifetime
    token_duration: 24h
`

// InitConfig creates a sample configuration file at the default location.
// Returns the path of the created file.
func InitConfig(force bool) (string, error) {
	path := GetDefaultConfigPath()
	return path, InitConfigToPath(path, force)
}

// InitConfigToPath creates a sample configuration file at the given path.
// Fails if the file already exists unless force is set.
func InitConfigToPath(path string, force bool) error {
	if _, err := os.Stat(path); err == nil && !force {
		return fmt.Errorf("config file already exists at %s (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	secret, err := generateDevSecret()
	if err != nil {
		return fmt.Errorf("failed to generate JWT secret: %w", err)
	}

	content := fmt.Sprintf(sampleConfigTemplate, secret)

	// 0600: the file carries the signing secret
	if err := os.WriteFile(path, []byte(content), 0600); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// generateDevSecret returns 32 random bytes hex-encoded (64 characters).
func generateDevSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
