package cleanup

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/pkg/config"
)

type fakePurger struct {
	calls atomic.Int64
}

func (f *fakePurger) PurgeTerminalStatusHistory(_ context.Context) (int, error) {
	f.calls.Add(1)
	return 2, nil
}

type fakeCleaner struct {
	calls atomic.Int64
	ttl   atomic.Int64
}

func (f *fakeCleaner) CleanupOldErrors(_ context.Context, ttl time.Duration) (int, error) {
	f.calls.Add(1)
	f.ttl.Store(int64(ttl))
	return 1, nil
}

func TestService_RunsImmediatePassOnStart(t *testing.T) {
	purger := &fakePurger{}
	cleaner := &fakeCleaner{}
	cfg := &config.RetentionConfig{
		CleanupInterval: time.Hour,
		AgentErrorTTL:   24 * time.Hour,
	}

	svc := NewService(cfg, purger, cleaner)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return purger.calls.Load() >= 1 && cleaner.calls.Load() >= 1
	}, time.Second, 10*time.Millisecond)

	require.Equal(t, int64(24*time.Hour), cleaner.ttl.Load())
}

func TestService_PollsOnInterval(t *testing.T) {
	purger := &fakePurger{}
	cleaner := &fakeCleaner{}
	cfg := &config.RetentionConfig{
		CleanupInterval: 20 * time.Millisecond,
		AgentErrorTTL:   time.Hour,
	}

	svc := NewService(cfg, purger, cleaner)
	svc.Start(context.Background())
	defer svc.Stop()

	require.Eventually(t, func() bool {
		return purger.calls.Load() >= 3
	}, 2*time.Second, 10*time.Millisecond)
}

func TestService_StopWaitsForLoop(t *testing.T) {
	svc := NewService(config.DefaultRetentionConfig(), &fakePurger{}, &fakeCleaner{})
	svc.Start(context.Background())
	svc.Stop()
	svc.Stop() // idempotent
}
