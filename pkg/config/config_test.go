package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultMatcherConfig(t *testing.T) {
	cfg := DefaultMatcherConfig()
	assert.Equal(t, 7*24*time.Hour, cfg.BenchmarkFreshness)
	assert.Equal(t, int64(100_000_000), cfg.ProbeSliceSize)
	assert.Equal(t, 60, cfg.TargetSliceSeconds)
	assert.NoError(t, cfg.Validate())
}

func TestMatcherConfig_EnvOverride(t *testing.T) {
	t.Setenv("CIPHERSWARM_BENCHMARK_FRESHNESS", "48h")
	t.Setenv("CIPHERSWARM_TARGET_SLICE_SECONDS", "90")

	cfg, err := LoadMatcherConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 48*time.Hour, cfg.BenchmarkFreshness)
	assert.Equal(t, 90, cfg.TargetSliceSeconds)
}

func TestMatcherConfig_RejectsGarbage(t *testing.T) {
	t.Setenv("CIPHERSWARM_BENCHMARK_FRESHNESS", "not-a-duration")
	_, err := LoadMatcherConfigFromEnv()
	assert.Error(t, err)
}

func TestLeaseConfig_DefaultTTL(t *testing.T) {
	cfg := DefaultLeaseConfig()
	assert.Equal(t, 30*time.Minute, cfg.TTL)
	assert.NoError(t, cfg.Validate())
}

func TestLeaseConfig_EnvOverrideAndValidation(t *testing.T) {
	t.Setenv("CIPHERSWARM_LEASE_TTL", "15m")
	cfg, err := LoadLeaseConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 15*time.Minute, cfg.TTL)

	bad := &LeaseConfig{TTL: -time.Minute, SweepInterval: time.Minute}
	assert.Error(t, bad.Validate())
}

func TestProgressConfig_HistoryLimit(t *testing.T) {
	cfg := DefaultProgressConfig()
	assert.Equal(t, 10, cfg.HistoryLimit)

	t.Setenv("CIPHERSWARM_STATUS_HISTORY_LIMIT", "25")
	cfg, err := LoadProgressConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, 25, cfg.HistoryLimit)

	zero := &ProgressConfig{HistoryLimit: 0}
	assert.Error(t, zero.Validate())
}

func TestHTTPConfig_Validation(t *testing.T) {
	cfg := DefaultHTTPConfig()
	assert.NoError(t, cfg.Validate())
	assert.Equal(t, 10*time.Second, cfg.ReadHeaderTimeout())

	cfg.Port = 0
	assert.Error(t, cfg.Validate())
}

func TestRetentionConfig_Defaults(t *testing.T) {
	cfg := DefaultRetentionConfig()
	assert.Equal(t, time.Hour, cfg.CleanupInterval)
	assert.Equal(t, 30*24*time.Hour, cfg.AgentErrorTTL)
	assert.NoError(t, cfg.Validate())
}

func TestAgentRPCConfig_DisabledByDefault(t *testing.T) {
	cfg := DefaultAgentRPCConfig()
	assert.False(t, cfg.Enabled)

	t.Setenv("CIPHERSWARM_AGENTRPC_ENABLED", "true")
	loaded, err := LoadAgentRPCConfigFromEnv()
	require.NoError(t, err)
	assert.True(t, loaded.Enabled)
}

func TestAuthConfig_RequiresSecret(t *testing.T) {
	bad := &AuthConfig{}
	assert.Error(t, bad.Validate())

	t.Setenv("CIPHERSWARM_INVITATION_SECRET", "super-secret")
	cfg, err := LoadAuthConfigFromEnv()
	require.NoError(t, err)
	assert.Equal(t, []byte("super-secret"), cfg.InvitationSecret)
}
