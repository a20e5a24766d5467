package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// LeaseService implements the Lease Manager: tasks carry their own
// lease as (state, agent, activity_timestamp) rather than a separate lease
// table, so renewal is just bumping activity_timestamp and
// reclamation is a periodic sweep that abandons stale running tasks.
type LeaseService struct {
	client *ent.Client
	tasks  *TaskService
	attacks *AttackService
	cfg    *config.LeaseConfig
	logger *slog.Logger
}

// NewLeaseService creates a new LeaseService.
func NewLeaseService(client *ent.Client, tasks *TaskService, attacks *AttackService, cfg *config.LeaseConfig, logger *slog.Logger) *LeaseService {
	if cfg == nil {
		cfg = config.DefaultLeaseConfig()
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &LeaseService{client: client, tasks: tasks, attacks: attacks, cfg: cfg, logger: logger}
}

// Renew bumps a task's activity_timestamp, keeping its lease alive. Called
// on every heartbeat, status frame, and crack submission.
func (l *LeaseService) Renew(ctx context.Context, taskID int64) error {
	err := l.client.Task.UpdateOneID(taskID).
		SetActivityTimestamp(time.Now()).
		Exec(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return fmt.Errorf("failed to renew lease: %w", err)
	}
	return nil
}

// SweepResult summarizes one reclamation pass.
type SweepResult struct {
	Scanned   int
	Reclaimed int
	Failed    int
}

// Sweep scans for running tasks whose lease has expired (activity older
// than cfg.TTL) and fires "abandon" on each, detaching the agent and
// returning the task to pending.
func (l *LeaseService) Sweep(ctx context.Context) SweepResult {
	cutoff := time.Now().Add(-l.cfg.TTL)
	stale, err := l.client.Task.Query().
		Where(
			task.StateEQ(task.StateRunning),
			task.ActivityTimestampLT(cutoff),
		).
		All(ctx)
	if err != nil {
		l.logger.Error("lease sweep: query failed", "error", err)
		return SweepResult{}
	}

	result := SweepResult{Scanned: len(stale)}
	for _, t := range stale {
		if err := l.reclaim(ctx, t); err != nil {
			l.logger.Error("lease sweep: failed to reclaim task", "task_id", t.ID, "error", err)
			result.Failed++
			continue
		}
		result.Reclaimed++
	}
	return result
}

// reclaim runs the task's abandon transition and, best-effort, re-checks
// the owning attack (an abandoned task never completes or exhausts the
// attack by itself, but a cascading campaign cancel may have raced it).
func (l *LeaseService) reclaim(ctx context.Context, t *ent.Task) error {
	_, err := l.tasks.ApplyEvent(ctx, t, TaskTransitionInput{Event: statemachine.TaskEventAbandon})
	if err != nil {
		return err
	}
	l.logger.Warn("lease sweep: reclaimed abandoned task", "task_id", t.ID)
	return nil
}
