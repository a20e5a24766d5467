// Package queue runs the background workers of the distribution core: the
// periodic lease-reclamation sweep that returns abandoned
// slices to the pending pool.
package queue

import (
	"context"
	"log/slog"
	"math/rand"
	"sync"
	"time"

	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/services"
)

// LeaseSweeper is the slice of LeaseService the scheduler drives; narrowed
// to an interface so tests can count passes without a store.
type LeaseSweeper interface {
	Sweep(ctx context.Context) services.SweepResult
}

// Sweeper schedules the reclamation sweep: one goroutine, a jittered poll
// interval so replicas don't synchronize, graceful Stop that waits for an
// in-flight pass.
type Sweeper struct {
	sweeper LeaseSweeper
	cfg     *config.QueueConfig
	logger  *slog.Logger

	stopCh   chan struct{}
	stopOnce sync.Once
	wg       sync.WaitGroup
	started  bool

	mu        sync.Mutex
	lastSweep time.Time
	lastStats services.SweepResult
}

// NewSweeper creates a reclamation sweep scheduler.
func NewSweeper(sweeper LeaseSweeper, cfg *config.QueueConfig, logger *slog.Logger) *Sweeper {
	if cfg == nil {
		cfg = config.DefaultQueueConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Sweeper{
		sweeper: sweeper,
		cfg:     cfg,
		logger:  logger,
		stopCh:  make(chan struct{}),
	}
}

// Start launches the sweep loop. Safe to call multiple times; subsequent
// calls are no-ops. An immediate pass runs at startup so leases abandoned
// while the process was down are reclaimed without waiting a full interval.
func (s *Sweeper) Start(ctx context.Context) {
	if s.started {
		s.logger.Warn("sweeper already started, ignoring duplicate Start call")
		return
	}
	s.started = true

	s.logger.Info("lease sweeper started",
		"poll_interval", s.cfg.PollInterval,
		"poll_jitter", s.cfg.PollIntervalJitter)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.run(ctx)
	}()
}

// Stop signals the loop to exit and waits for an in-flight pass to finish.
func (s *Sweeper) Stop() {
	s.stopOnce.Do(func() { close(s.stopCh) })
	s.wg.Wait()
	s.logger.Info("lease sweeper stopped")
}

func (s *Sweeper) run(ctx context.Context) {
	s.runOnce(ctx)

	timer := time.NewTimer(s.nextInterval())
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-s.stopCh:
			return
		case <-timer.C:
			s.runOnce(ctx)
			timer.Reset(s.nextInterval())
		}
	}
}

// runOnce executes one sweep pass and records its stats for the health probe.
func (s *Sweeper) runOnce(ctx context.Context) {
	result := s.sweeper.Sweep(ctx)

	s.mu.Lock()
	s.lastSweep = time.Now()
	s.lastStats = result
	s.mu.Unlock()

	if result.Reclaimed > 0 || result.Failed > 0 {
		s.logger.Info("lease sweep pass finished",
			"scanned", result.Scanned,
			"reclaimed", result.Reclaimed,
			"failed", result.Failed)
	}
}

// nextInterval returns the base poll interval plus up to PollIntervalJitter
// of random jitter.
func (s *Sweeper) nextInterval() time.Duration {
	interval := s.cfg.PollInterval
	if s.cfg.PollIntervalJitter > 0 {
		interval += time.Duration(rand.Int63n(int64(s.cfg.PollIntervalJitter)))
	}
	return interval
}

// LastSweep reports the most recent pass for the health probe; ok is false
// until the first pass completes.
func (s *Sweeper) LastSweep() (scanned, reclaimed, failed int, ok bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.lastSweep.IsZero() {
		return 0, 0, 0, false
	}
	return s.lastStats.Scanned, s.lastStats.Reclaimed, s.lastStats.Failed, true
}
