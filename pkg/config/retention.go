package config

import (
	"fmt"
	"os"
	"time"
)

// RetentionConfig controls the cleanup service's retention policies:
// trailing HashcatStatus rows on terminal tasks (the inline purge on the
// completion transition can be interrupted by a crash) and aged
// AgentError records.
type RetentionConfig struct {
	// CleanupInterval is the period between retention passes.
	CleanupInterval time.Duration

	// AgentErrorTTL is how long agent error records are kept.
	AgentErrorTTL time.Duration
}

// DefaultRetentionConfig returns the built-in retention defaults.
func DefaultRetentionConfig() *RetentionConfig {
	return &RetentionConfig{
		CleanupInterval: 1 * time.Hour,
		AgentErrorTTL:   30 * 24 * time.Hour,
	}
}

// LoadRetentionConfigFromEnv loads retention configuration from environment variables.
func LoadRetentionConfigFromEnv() (*RetentionConfig, error) {
	cfg := DefaultRetentionConfig()

	if v := os.Getenv("CIPHERSWARM_CLEANUP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_CLEANUP_INTERVAL: %w", err)
		}
		cfg.CleanupInterval = d
	}

	if v := os.Getenv("CIPHERSWARM_AGENT_ERROR_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_AGENT_ERROR_TTL: %w", err)
		}
		cfg.AgentErrorTTL = d
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *RetentionConfig) Validate() error {
	if c.CleanupInterval <= 0 {
		return fmt.Errorf("CleanupInterval must be positive")
	}
	if c.AgentErrorTTL <= 0 {
		return fmt.Errorf("AgentErrorTTL must be positive")
	}
	return nil
}
