package config

import (
	"fmt"
	"os"
	"strconv"
)

// AgentRPCConfig controls the optional gRPC streaming sibling of the HTTP
// status/crack submission endpoints. Disabled by
// default; the HTTP/JSON contract is the baseline every agent speaks.
type AgentRPCConfig struct {
	Enabled bool
	Port    int
}

// DefaultAgentRPCConfig returns the built-in agent-RPC defaults.
func DefaultAgentRPCConfig() *AgentRPCConfig {
	return &AgentRPCConfig{
		Enabled: false,
		Port:    9090,
	}
}

// LoadAgentRPCConfigFromEnv loads agent-RPC configuration from environment variables.
func LoadAgentRPCConfigFromEnv() (*AgentRPCConfig, error) {
	cfg := DefaultAgentRPCConfig()

	if v := os.Getenv("CIPHERSWARM_AGENTRPC_ENABLED"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_AGENTRPC_ENABLED: %w", err)
		}
		cfg.Enabled = b
	}

	if v := os.Getenv("CIPHERSWARM_AGENTRPC_PORT"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid CIPHERSWARM_AGENTRPC_PORT: %w", err)
		}
		cfg.Port = n
	}

	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *AgentRPCConfig) Validate() error {
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("Port must be between 1 and 65535")
	}
	return nil
}
