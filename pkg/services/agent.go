package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/auth"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// AgentService owns Agent bootstrap, profile lookup, and heartbeat
// handling.
type AgentService struct {
	client           *ent.Client
	tasks            *TaskService
	invitationSecret []byte
}

// NewAgentService creates a new AgentService.
func NewAgentService(client *ent.Client, tasks *TaskService, invitationSecret []byte) *AgentService {
	return &AgentService{client: client, tasks: tasks, invitationSecret: invitationSecret}
}

// Register exchanges an invitation token for a new Agent row and bearer
// token, granting visibility into the project the invitation names.
func (s *AgentService) Register(ctx context.Context, in models.RegisterAgentRequest) (*ent.Agent, string, error) {
	projectID, err := auth.ParseInvitation(in.InvitationToken, s.invitationSecret)
	if err != nil {
		return nil, "", fmt.Errorf("%w: %s", ErrInvalidInput, err.Error())
	}
	if in.HostName == "" {
		return nil, "", NewValidationError("host_name", "host_name is required")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to open transaction: %w", err)
	}

	created, err := tx.Agent.Create().
		SetHostName(in.HostName).
		SetClientSignature(in.ClientSignature).
		SetOperatingSystem(in.OperatingSystem).
		SetDevices(in.Devices).
		SetToken("pending"). // placeholder, replaced below once the row has an ID
		AddProjectIDs(projectID).
		Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		if ent.IsConstraintError(err) {
			return nil, "", fmt.Errorf("%w: agent with this host/client signature", ErrAlreadyExists)
		}
		return nil, "", fmt.Errorf("failed to register agent: %w", err)
	}

	token, err := auth.IssueAgentToken(created.ID)
	if err != nil {
		_ = tx.Rollback()
		return nil, "", err
	}

	created, err = tx.Agent.UpdateOneID(created.ID).SetToken(token).Save(ctx)
	if err != nil {
		_ = tx.Rollback()
		return nil, "", fmt.Errorf("failed to finalize agent token: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit agent registration: %w", err)
	}

	return created, token, nil
}

// Authenticate looks up the agent owning token, requiring an exact match.
func (s *AgentService) Authenticate(ctx context.Context, token string) (*ent.Agent, error) {
	ag, err := s.client.Agent.Query().Where(agent.TokenEQ(token)).Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: invalid agent token", ErrNotFound)
		}
		return nil, fmt.Errorf("failed to authenticate agent: %w", err)
	}
	return ag, nil
}

// Get loads an agent's profile.
func (s *AgentService) Get(ctx context.Context, id int64) (*ent.Agent, error) {
	ag, err := s.client.Agent.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: agent %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load agent: %w", err)
	}
	return ag, nil
}

// ProjectIDs resolves the project set an agent is scoped to.
func (s *AgentService) ProjectIDs(ctx context.Context, agentID int64) ([]int64, error) {
	ids, err := s.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		QueryProjects().
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve agent projects: %w", err)
	}
	return ids, nil
}

// Heartbeat updates last_seen_at/last_ipaddress, renews the lease of
// every task the agent currently runs, and returns the command the agent
// should follow: stopped/error agents are told to
// stop, active agents continue — or pause, when a held task has a pending
// cancel signal to observe — and everything else falls back to backoff so a
// half-initialized agent doesn't spin.
func (s *AgentService) Heartbeat(ctx context.Context, ag *ent.Agent, remoteAddr string) (models.HeartbeatResponse, error) {
	update := s.client.Agent.UpdateOneID(ag.ID).SetLastIpaddress(remoteAddr)
	updated, err := update.Save(ctx)
	if err != nil {
		return models.HeartbeatResponse{}, fmt.Errorf("failed to record heartbeat: %w", err)
	}
	s.touchLastSeen(ctx, ag.ID)

	cancelPending, err := s.client.Task.Query().
		Where(
			task.HasAgentWith(agent.IDEQ(ag.ID)),
			task.StateEQ(task.StateRunning),
			task.CancelRequested(true),
		).
		Exist(ctx)
	if err != nil {
		return models.HeartbeatResponse{}, fmt.Errorf("failed to check cancel signals: %w", err)
	}

	if err := s.client.Task.Update().
		Where(task.HasAgentWith(agent.IDEQ(ag.ID)), task.StateEQ(task.StateRunning)).
		SetActivityTimestamp(time.Now()).
		Exec(ctx); err != nil {
		return models.HeartbeatResponse{}, fmt.Errorf("failed to renew task leases: %w", err)
	}

	switch updated.State {
	case agent.StateActive:
		if cancelPending {
			return models.HeartbeatResponse{Command: models.HeartbeatCommandPause}, nil
		}
		return models.HeartbeatResponse{Command: models.HeartbeatCommandContinue}, nil
	case agent.StateStopped, agent.StateError:
		return models.HeartbeatResponse{Command: models.HeartbeatCommandStop}, nil
	default:
		backoff := 30
		return models.HeartbeatResponse{Command: models.HeartbeatCommandBackoff, BackoffSeconds: &backoff}, nil
	}
}

// Shutdown handles an agent announcing it is stopping: every task it holds
// is released back to pending via abandon so other agents can pick the
// slices up immediately.
func (s *AgentService) Shutdown(ctx context.Context, ag *ent.Agent) error {
	running, err := s.client.Task.Query().
		Where(task.HasAgentWith(agent.IDEQ(ag.ID)), task.StateEQ(task.StateRunning)).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query held tasks: %w", err)
	}
	for _, t := range running {
		if _, err := s.tasks.ApplyEvent(ctx, t, TaskTransitionInput{Event: statemachine.TaskEventAbandon}); err != nil {
			return fmt.Errorf("failed to release task %d on shutdown: %w", t.ID, err)
		}
	}
	return nil
}

func (s *AgentService) touchLastSeen(ctx context.Context, agentID int64) {
	_ = s.client.Agent.UpdateOneID(agentID).SetLastSeenAt(time.Now()).Exec(ctx)
}

// Delete removes an agent after releasing any task it holds; its historical
// tasks survive with agent_id nulled (the task outlives the agent that
// worked it), benchmarks and error records cascade away with the row.
func (s *AgentService) Delete(ctx context.Context, ag *ent.Agent) error {
	if err := s.Shutdown(ctx, ag); err != nil {
		return err
	}
	if err := s.client.Agent.DeleteOneID(ag.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete agent: %w", err)
	}
	return nil
}

// SetState transitions an agent to a new administrative state (operator
// enable/disable). Disabling (stopped/error) abandons any task
// the agent currently holds so the reclamation sweep doesn't have to wait
// out the full lease TTL.
func (s *AgentService) SetState(ctx context.Context, ag *ent.Agent, newState string) (*ent.Agent, error) {
	st := agent.State(newState)
	switch st {
	case agent.StatePending, agent.StateActive, agent.StateStopped, agent.StateError:
	default:
		return nil, NewValidationError("state", fmt.Sprintf("unknown agent state %q", newState))
	}

	updated, err := s.client.Agent.UpdateOneID(ag.ID).SetState(st).Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update agent state: %w", err)
	}

	if st == agent.StateStopped || st == agent.StateError {
		running, err := s.client.Task.Query().
			Where(task.HasAgentWith(agent.IDEQ(ag.ID)), task.StateEQ(task.StateRunning)).
			All(ctx)
		if err == nil {
			for _, t := range running {
				_, _ = s.tasks.ApplyEvent(ctx, t, TaskTransitionInput{Event: statemachine.TaskEventAbandon})
			}
		}
	}

	return updated, nil
}
