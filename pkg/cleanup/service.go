// Package cleanup provides data retention for the distribution core's
// bounded-history stores.
package cleanup

import (
	"context"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/pkg/config"
)

// StatusPurger is the slice of TaskService the retention pass drives.
type StatusPurger interface {
	PurgeTerminalStatusHistory(ctx context.Context) (int, error)
}

// ErrorCleaner is the slice of AgentErrorService the retention pass drives.
type ErrorCleaner interface {
	CleanupOldErrors(ctx context.Context, ttl time.Duration) (int, error)
}

// Service periodically enforces retention policies:
//   - Purges HashcatStatus rows still attached to terminal tasks (a crash
//     between the completion commit and the inline purge can leave some).
//   - Removes AgentError records past their TTL.
//
// All operations are idempotent and safe to run from multiple replicas.
type Service struct {
	config   *config.RetentionConfig
	statuses StatusPurger
	errors   ErrorCleaner

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates a new cleanup service.
func NewService(cfg *config.RetentionConfig, statuses StatusPurger, errors ErrorCleaner) *Service {
	if cfg == nil {
		cfg = config.DefaultRetentionConfig()
	}
	return &Service{
		config:   cfg,
		statuses: statuses,
		errors:   errors,
	}
}

// Start launches the background cleanup loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("cleanup service started",
		"agent_error_ttl", s.config.AgentErrorTTL,
		"interval", s.config.CleanupInterval)
}

// Stop signals the cleanup loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	s.cancel = nil
	s.done = nil
	slog.Info("cleanup service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.runAll(ctx)

	ticker := time.NewTicker(s.config.CleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.runAll(ctx)
		}
	}
}

func (s *Service) runAll(ctx context.Context) {
	s.purgeTerminalStatuses(ctx)
	s.cleanupOldAgentErrors(ctx)
}

func (s *Service) purgeTerminalStatuses(ctx context.Context) {
	count, err := s.statuses.PurgeTerminalStatusHistory(ctx)
	if err != nil {
		slog.Error("retention: status purge failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("retention: purged terminal-task status frames", "count", count)
	}
}

func (s *Service) cleanupOldAgentErrors(ctx context.Context) {
	count, err := s.errors.CleanupOldErrors(ctx, s.config.AgentErrorTTL)
	if err != nil {
		slog.Error("retention: agent error cleanup failed", "error", err)
		return
	}
	if count > 0 {
		slog.Info("retention: removed aged agent errors", "count", count)
	}
}
