// Package config loads CipherSwarm's environment-driven configuration
// groups. Each group ships validated defaults and reads overrides from
// CIPHERSWARM_* environment variables.
package config

import (
	"fmt"

	"github.com/cipherswarm/cipherswarm/pkg/database"
)

// Config aggregates every configuration group the server needs at boot.
type Config struct {
	Database  database.Config
	Matcher   *MatcherConfig
	Lease     *LeaseConfig
	Progress  *ProgressConfig
	Queue     *QueueConfig
	Retention *RetentionConfig
	HTTP      *HTTPConfig
	AgentRPC  *AgentRPCConfig
	Auth      *AuthConfig
}

// Load reads every configuration group from the environment, applying
// defaults and validating each group. Call godotenv.Load() before Load so
// that a `.env` file (if present) populates os.Environ() first.
func Load() (*Config, error) {
	dbCfg, err := database.LoadConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("database config: %w", err)
	}

	matcherCfg, err := LoadMatcherConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("matcher config: %w", err)
	}

	leaseCfg, err := LoadLeaseConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("lease config: %w", err)
	}

	progressCfg, err := LoadProgressConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("progress config: %w", err)
	}

	retentionCfg, err := LoadRetentionConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("retention config: %w", err)
	}

	httpCfg, err := LoadHTTPConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("http config: %w", err)
	}

	agentRPCCfg, err := LoadAgentRPCConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("agent rpc config: %w", err)
	}

	authCfg, err := LoadAuthConfigFromEnv()
	if err != nil {
		return nil, fmt.Errorf("auth config: %w", err)
	}

	return &Config{
		Database:  dbCfg,
		Matcher:   matcherCfg,
		Lease:     leaseCfg,
		Progress:  progressCfg,
		Queue:     DefaultQueueConfig(),
		Retention: retentionCfg,
		HTTP:      httpCfg,
		AgentRPC:  agentRPCCfg,
		Auth:      authCfg,
	}, nil
}
