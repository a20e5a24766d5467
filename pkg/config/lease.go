package config

import (
	"fmt"
	"os"
	"time"
)

// LeaseConfig controls the Lease Manager reclamation sweep: how long a
// running task may go without activity before it's considered abandoned,
// and how often the sweep worker scans for such tasks.
type LeaseConfig struct {
	// TTL is the inactivity threshold past which a running task is abandoned.
	TTL time.Duration

	// SweepInterval is the base period between reclamation sweeps.
	SweepInterval time.Duration

	// SweepJitter is random jitter applied to SweepInterval to avoid
	// thundering-herd sweeps across replicas.
	SweepJitter time.Duration
}

// DefaultLeaseConfig returns the built-in lease defaults: a 30 minute
// inactivity TTL swept about once a minute.
func DefaultLeaseConfig() *LeaseConfig {
	return &LeaseConfig{
		TTL:           30 * time.Minute,
		SweepInterval: 1 * time.Minute,
		SweepJitter:   10 * time.Second,
	}
}

// LoadLeaseConfigFromEnv loads lease configuration from environment variables.
func LoadLeaseConfigFromEnv() (*LeaseConfig, error) {
	cfg := DefaultLeaseConfig()

	if v := os.Getenv("CIPHERSWARM_LEASE_TTL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_LEASE_TTL: %w", err)
		}
		cfg.TTL = d
	}

	if v := os.Getenv("CIPHERSWARM_LEASE_SWEEP_INTERVAL"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_LEASE_SWEEP_INTERVAL: %w", err)
		}
		cfg.SweepInterval = d
	}

	if v := os.Getenv("CIPHERSWARM_LEASE_SWEEP_JITTER"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_LEASE_SWEEP_JITTER: %w", err)
		}
		cfg.SweepJitter = d
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *LeaseConfig) Validate() error {
	if c.TTL <= 0 {
		return fmt.Errorf("TTL must be positive")
	}
	if c.SweepInterval <= 0 {
		return fmt.Errorf("SweepInterval must be positive")
	}
	if c.SweepJitter < 0 {
		return fmt.Errorf("SweepJitter cannot be negative")
	}
	return nil
}
