package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// MatcherConfig controls the task matcher's benchmark-freshness gate and
// its fallback probe-slice sizing when no benchmark exists for a hash type.
type MatcherConfig struct {
	// BenchmarkFreshness is how long a benchmark remains usable before the
	// matcher considers the agent's capability for that hash type unknown
	// and returns benchmark_required instead of a task.
	BenchmarkFreshness time.Duration

	// ProbeSliceSize is the conservative keyspace size issued as a single
	// slice when the planner has no benchmark data to size a slice from.
	ProbeSliceSize int64

	// TargetSliceSeconds is the planner's aim for wall-clock time per slice,
	// used together with a benchmark's hash_speed to size (skip, limit) pairs.
	TargetSliceSeconds int
}

// DefaultMatcherConfig returns the built-in matcher defaults.
func DefaultMatcherConfig() *MatcherConfig {
	return &MatcherConfig{
		BenchmarkFreshness: 7 * 24 * time.Hour,
		ProbeSliceSize:      100_000_000,
		TargetSliceSeconds:  60,
	}
}

// LoadMatcherConfigFromEnv loads matcher configuration from environment
// variables, falling back to DefaultMatcherConfig for anything unset.
func LoadMatcherConfigFromEnv() (*MatcherConfig, error) {
	cfg := DefaultMatcherConfig()

	if v := os.Getenv("CIPHERSWARM_BENCHMARK_FRESHNESS"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_BENCHMARK_FRESHNESS: %w", err)
		}
		cfg.BenchmarkFreshness = d
	}

	if v := os.Getenv("CIPHERSWARM_PROBE_SLICE_SIZE"); v != "" {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_PROBE_SLICE_SIZE: %w", err)
		}
		cfg.ProbeSliceSize = n
	}

	if v := os.Getenv("CIPHERSWARM_TARGET_SLICE_SECONDS"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_TARGET_SLICE_SECONDS: %w", err)
		}
		cfg.TargetSliceSeconds = n
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *MatcherConfig) Validate() error {
	if c.BenchmarkFreshness <= 0 {
		return fmt.Errorf("BenchmarkFreshness must be positive")
	}
	if c.ProbeSliceSize <= 0 {
		return fmt.Errorf("ProbeSliceSize must be positive")
	}
	if c.TargetSliceSeconds <= 0 {
		return fmt.Errorf("TargetSliceSeconds must be positive")
	}
	return nil
}
