package config

import (
	"fmt"
	"os"
	"strconv"
)

// ProgressConfig controls the Progress Ingestor bounded status-frame
// history and the cleanup sweep that trims it.
type ProgressConfig struct {
	// HistoryLimit is the number of most-recent HashcatStatus rows retained
	// per task.
	HistoryLimit int
}

// DefaultProgressConfig returns the built-in progress defaults.
func DefaultProgressConfig() *ProgressConfig {
	return &ProgressConfig{
		HistoryLimit: 10,
	}
}

// LoadProgressConfigFromEnv loads progress configuration from environment variables.
func LoadProgressConfigFromEnv() (*ProgressConfig, error) {
	cfg := DefaultProgressConfig()

	if v := os.Getenv("CIPHERSWARM_STATUS_HISTORY_LIMIT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_STATUS_HISTORY_LIMIT: %w", err)
		}
		cfg.HistoryLimit = n
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *ProgressConfig) Validate() error {
	if c.HistoryLimit < 1 {
		return fmt.Errorf("HistoryLimit must be at least 1")
	}
	return nil
}
