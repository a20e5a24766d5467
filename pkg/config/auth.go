package config

import (
	"fmt"
	"os"
)

// AuthConfig holds the HMAC secret used to sign invitation tokens (the
// out-of-band project-visibility grant an operator hands a new agent) and
// to validate the opaque half of an agent's bearer token.
type AuthConfig struct {
	// InvitationSecret signs/verifies invitation tokens minted by the
	// operator API for POST /client/agents bootstrap.
	InvitationSecret []byte
}

// DefaultAuthConfig returns an insecure development default; production
// deployments must set CIPHERSWARM_INVITATION_SECRET.
func DefaultAuthConfig() *AuthConfig {
	return &AuthConfig{InvitationSecret: []byte("development-only-invitation-secret")}
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() (*AuthConfig, error) {
	cfg := DefaultAuthConfig()
	if v := os.Getenv("CIPHERSWARM_INVITATION_SECRET"); v != "" {
		cfg.InvitationSecret = []byte(v)
	}
	return cfg, cfg.Validate()
}

// Validate checks if the configuration is valid.
func (c *AuthConfig) Validate() error {
	if len(c.InvitationSecret) == 0 {
		return fmt.Errorf("InvitationSecret must not be empty")
	}
	return nil
}
