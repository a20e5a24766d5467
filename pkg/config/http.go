package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// HTTPConfig controls the Agent/operator API HTTP server.
type HTTPConfig struct {
	Port              int
	MaxBodyBytes      int64
	ReadHeaderTimeoutSeconds int
}

// DefaultHTTPConfig returns the built-in HTTP defaults.
func DefaultHTTPConfig() *HTTPConfig {
	return &HTTPConfig{
		Port:                     8080,
		MaxBodyBytes:             10 << 20, // 10 MiB, generous for status/crack batches
		ReadHeaderTimeoutSeconds: 10,
	}
}

// LoadHTTPConfigFromEnv loads HTTP configuration from environment variables.
func LoadHTTPConfigFromEnv() (*HTTPConfig, error) {
	cfg := DefaultHTTPConfig()

	if v := os.Getenv("CIPHERSWARM_HTTP_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_HTTP_PORT: %w", err)
		}
		cfg.Port = n
	}

	if v := os.Getenv("CIPHERSWARM_HTTP_MAX_BODY_BYTES"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_HTTP_MAX_BODY_BYTES: %w", err)
		}
		cfg.MaxBodyBytes = n
	}

	return cfg, cfg.Validate()
}

// ReadHeaderTimeout returns the header read deadline as a duration.
func (c *HTTPConfig) ReadHeaderTimeout() time.Duration {
	return time.Duration(c.ReadHeaderTimeoutSeconds) * time.Second
}

// Validate checks if the configuration is valid.
func (c *HTTPConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("Port must be between 1 and 65535")
	}
	if c.MaxBodyBytes < 1 {
		return fmt.Errorf("MaxBodyBytes must be positive")
	}
	return nil
}
