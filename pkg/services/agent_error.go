package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// AgentErrorService records agent-reported errors and, for fatal severity,
// fires the associated task's error transition.
type AgentErrorService struct {
	client *ent.Client
	tasks  *TaskService
}

// NewAgentErrorService creates a new AgentErrorService.
func NewAgentErrorService(client *ent.Client, tasks *TaskService) *AgentErrorService {
	return &AgentErrorService{client: client, tasks: tasks}
}

// Report stores an AgentErrorReport against ag, and against t when the
// report names a task. A fatal report against a running task fails it.
func (s *AgentErrorService) Report(ctx context.Context, ag *ent.Agent, t *ent.Task, in models.AgentErrorReport) (*ent.AgentError, error) {
	severity := agenterror.Severity(in.Severity)
	switch severity {
	case agenterror.SeverityInfo, agenterror.SeverityWarning, agenterror.SeverityFatal:
	default:
		return nil, NewValidationError("severity", fmt.Sprintf("unknown severity %q", in.Severity))
	}

	create := s.client.AgentError.Create().
		SetAgent(ag).
		SetSeverity(severity).
		SetMessage(in.Message)
	if in.Context != "" {
		create = create.SetContextJSON(in.Context)
	}
	if t != nil {
		create = create.SetTask(t)
	}

	created, err := create.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to record agent error: %w", err)
	}

	if severity == agenterror.SeverityFatal && t != nil {
		if _, err := s.tasks.ApplyEvent(ctx, t, TaskTransitionInput{Event: statemachine.TaskEventError}); err != nil {
			return created, fmt.Errorf("error recorded but task transition failed: %w", err)
		}
	}

	return created, nil
}

// CleanupOldErrors deletes agent error records older than ttl, returning the
// number removed. Driven by the retention service.
func (s *AgentErrorService) CleanupOldErrors(ctx context.Context, ttl time.Duration) (int, error) {
	cutoff := time.Now().Add(-ttl)
	n, err := s.client.AgentError.Delete().
		Where(agenterror.RecordedAtLT(cutoff)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to delete old agent errors: %w", err)
	}
	return n, nil
}
