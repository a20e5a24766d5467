package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/keyspace"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// TaskService owns Task persistence and the task-level slice of the state
// engine: materializing pending slices, claiming them atomically for
// an agent, and applying the task transition table (pkg/statemachine).
type TaskService struct {
	client    *ent.Client
	progress  *config.ProgressConfig
	publisher events.Publisher
	// attacks is wired post-construction via SetAttackService, breaking the
	// TaskService<->AttackService construction cycle (AttackService needs a
	// *TaskService up front for its own cascades).
	attacks *AttackService
}

// NewTaskService creates a new TaskService.
func NewTaskService(client *ent.Client, progressCfg *config.ProgressConfig, publisher events.Publisher) *TaskService {
	if publisher == nil {
		publisher = events.NewLogPublisher(nil)
	}
	return &TaskService{client: client, progress: progressCfg, publisher: publisher}
}

// SetAttackService wires the AttackService used to evaluate
// EffectEvaluateAttackComplete/EffectEvaluateAttackExhaust. Must be called
// once during startup wiring before ApplyEvent is used.
func (s *TaskService) SetAttackService(attacks *AttackService) {
	s.attacks = attacks
}

// MaterializeNextSlice computes the next (skip, limit) slice for attk via
// the keyspace planner and inserts it as a pending task. sliceSize is
// derived by the matcher from the requesting agent's benchmark (or the
// configured probe size when none exists).
func (s *TaskService) MaterializeNextSlice(ctx context.Context, attk *ent.Attack, sliceSize int64) (*ent.Task, error) {
	in := attackKeyspaceInputs(attk)
	total, phases, err := keyspace.Plan(in)
	if err != nil {
		return nil, err
	}

	if attk.TotalKeyspace == nil || *attk.TotalKeyspace != total {
		if err := s.client.Attack.UpdateOneID(attk.ID).SetTotalKeyspace(total).Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to persist total_keyspace: %w", err)
		}
	}

	covered, err := s.coveredKeyspace(ctx, attk.ID)
	if err != nil {
		return nil, err
	}

	next, ok := nextSlice(phases, covered, sliceSize)
	if !ok {
		return nil, ErrStateConflict
	}

	created, err := s.client.Task.Create().
		SetAttack(attk).
		SetKeyspaceOffset(next.Skip).
		SetKeyspaceLimit(next.Limit).
		SetState(task.StatePending).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to materialize task: %w", err)
	}
	return created, nil
}

// coveredKeyspace sums keyspace_limit across every task already materialized
// for the attack, so MaterializeNextSlice picks up where the last one left off.
func (s *TaskService) coveredKeyspace(ctx context.Context, attackID int64) (int64, error) {
	tasks, err := s.client.Task.Query().
		Where(task.HasAttackWith(attack.IDEQ(attackID))).
		All(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query existing tasks: %w", err)
	}
	var covered int64
	for _, t := range tasks {
		covered += t.KeyspaceLimit
	}
	return covered, nil
}

// nextSlice walks phases (in order) and returns the slice starting at the
// keyspace offset `covered`, never spanning two increment phases.
func nextSlice(phases []keyspace.Phase, covered int64, sliceSize int64) (keyspace.Slice, bool) {
	var phaseStart int64
	for _, phase := range phases {
		phaseEnd := phaseStart + phase.Keyspace
		if covered < phaseEnd {
			offsetInPhase := covered - phaseStart
			remaining := phase.Keyspace - offsetInPhase
			limit := sliceSize
			if limit > remaining {
				limit = remaining
			}
			return keyspace.Slice{Skip: covered, Limit: limit}, true
		}
		phaseStart = phaseEnd
	}
	return keyspace.Slice{}, false
}

// attackKeyspaceInputs projects an ent.Attack (with its resource edges
// loaded) into the planner's Inputs shape.
func attackKeyspaceInputs(attk *ent.Attack) keyspace.Inputs {
	in := keyspace.Inputs{
		Mode:             keyspace.AttackMode(attk.AttackMode),
		Mask:             attk.Mask,
		CustomCharsets:   [4]string{attk.CustomCharset1, attk.CustomCharset2, attk.CustomCharset3, attk.CustomCharset4},
		IncrementMode:    attk.IncrementMode,
		IncrementMinimum: attk.IncrementMinimum,
		IncrementMaximum: attk.IncrementMaximum,
	}
	if attk.Edges.WordList != nil {
		in.WordListLineCount = attk.Edges.WordList.LineCount
	}
	if attk.Edges.RuleList != nil {
		in.RuleListLineCount = attk.Edges.RuleList.LineCount
	}
	if attk.Edges.MaskList != nil && attk.Edges.MaskList.LineCount != nil {
		// Mask lists are newline-delimited mask files; line_count here
		// stands in for "how many masks", matching the word/rule list
		// convention. The actual per-mask strings live in the object
		// store (out of scope); the planner multiplies a representative
		// mask's keyspace by the count when a sample isn't available.
		in.MaskListMasks = make([]string, *attk.Edges.MaskList.LineCount)
		for i := range in.MaskListMasks {
			in.MaskListMasks[i] = attk.Mask
		}
	}
	return in
}

// ErrClaimRaceLost is returned by ClaimPending when another agent already
// claimed the task.
var ErrClaimRaceLost = fmt.Errorf("task: claim race lost")

// ClaimPending atomically moves a pending, unassigned task to running
// under ag with a single conditional write. Returns ErrClaimRaceLost
// (not a hard error) when another agent won the race first.
func (s *TaskService) ClaimPending(ctx context.Context, taskID int64, ag *ent.Agent) (*ent.Task, error) {
	n, err := s.client.Task.Update().
		Where(
			task.IDEQ(taskID),
			task.StateEQ(task.StatePending),
			task.Not(task.HasAgent()),
		).
		SetState(task.StateRunning).
		SetAgent(ag).
		SetStartDate(time.Now()).
		SetActivityTimestamp(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to claim task: %w", err)
	}
	if n == 0 {
		return nil, ErrClaimRaceLost
	}
	claimed, err := s.client.Task.Get(ctx, taskID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload claimed task: %w", err)
	}
	s.publisher.PublishTaskStatus(ctx, events.TaskStatusPayload{
		Type: events.TypeTaskStatus, TaskID: claimed.ID, Status: string(task.StateRunning), Timestamp: time.Now(),
	})
	return claimed, nil
}

// TaskTransitionInput bundles what ApplyEvent needs to evaluate an attack-
// level cascade once the task's own transition commits.
type TaskTransitionInput struct {
	Event                statemachine.TaskEvent
	HashListFullyCracked bool
}

// ApplyEvent runs the pure task transition table, persists the resulting
// state, and executes its effects (history purge, agent detach, attack
// cascade), keeping effects outside the row lock.
func (s *TaskService) ApplyEvent(ctx context.Context, t *ent.Task, in TaskTransitionInput) (*ent.Task, error) {
	result, err := statemachine.ApplyTask(statemachine.TaskState(t.State), in.Event, statemachine.TaskContext{
		HashListFullyCracked: in.HashListFullyCracked,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStateConflict, err.Error())
	}

	update := s.client.Task.UpdateOneID(t.ID).
		SetState(task.State(result.To)).
		SetActivityTimestamp(time.Now())

	for _, effect := range result.Effects {
		switch effect {
		case statemachine.EffectClearAgent:
			update = update.ClearAgent()
		case statemachine.EffectLogAbandon:
			// Preserve the prior assignment for post-mortem before the
			// detach erases it.
			if ownerID, err := s.client.Task.QueryAgent(t).OnlyID(ctx); err == nil {
				slog.Warn("task abandoned, requeueing",
					"task_id", t.ID,
					"prior_agent_id", ownerID,
					"keyspace_offset", t.KeyspaceOffset,
					"keyspace_limit", t.KeyspaceLimit)
			}
		}
	}

	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist task transition: %w", err)
	}

	for _, effect := range result.Effects {
		if effect == statemachine.EffectPurgeStatusHistory {
			if err := s.purgeAllStatusHistory(ctx, updated.ID); err != nil {
				return updated, fmt.Errorf("task %d transitioned but status purge failed: %w", updated.ID, err)
			}
		}
	}

	s.publisher.PublishTaskStatus(ctx, events.TaskStatusPayload{
		Type: events.TypeTaskStatus, TaskID: updated.ID, Status: string(updated.State), Timestamp: time.Now(),
	})

	for _, effect := range result.Effects {
		if effect == statemachine.EffectEvaluateAttackComplete || effect == statemachine.EffectEvaluateAttackExhaust {
			if s.attacks == nil {
				continue
			}
			attackID, err := s.client.Task.QueryAttack(updated).OnlyID(ctx)
			if err != nil {
				return updated, fmt.Errorf("failed to resolve owning attack for cascade: %w", err)
			}
			attk, err := s.client.Attack.Get(ctx, attackID)
			if err != nil {
				return updated, fmt.Errorf("failed to load owning attack for cascade: %w", err)
			}
			event := statemachine.AttackEventComplete
			if effect == statemachine.EffectEvaluateAttackExhaust {
				event = statemachine.AttackEventExhaust
			}
			if _, err := s.attacks.ApplyEvent(ctx, attk, event); err != nil {
				// Not every terminal task triggers a legal attack transition
				// (e.g. siblings still running); that's expected, not an error.
				continue
			}
		}
	}

	return updated, nil
}

// GetWithAgent loads a task with its agent edge populated, for lease checks
// on status/crack/abandon submissions.
func (s *TaskService) GetWithAgent(ctx context.Context, taskID int64) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(task.IDEQ(taskID)).
		WithAgent().
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: task %d", ErrNotFound, taskID)
		}
		return nil, fmt.Errorf("failed to load task: %w", err)
	}
	return t, nil
}

// AttackID resolves the owning attack's ID for t.
func (s *TaskService) AttackID(ctx context.Context, t *ent.Task) (int64, error) {
	id, err := s.client.Task.QueryAttack(t).OnlyID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve owning attack: %w", err)
	}
	return id, nil
}

// TrimStatusHistory deletes HashcatStatus rows beyond the configured
// retention limit for t, keeping only the most recent N.
func (s *TaskService) TrimStatusHistory(ctx context.Context, taskID int64) error {
	limit := 10
	if s.progress != nil {
		limit = s.progress.HistoryLimit
	}
	ids, err := s.client.HashcatStatus.Query().
		Where(hashcatstatus.HasTaskWith(task.IDEQ(taskID))).
		Order(ent.Desc(hashcatstatus.FieldReceivedAt)).
		Offset(limit).
		IDs(ctx)
	if err != nil {
		return fmt.Errorf("failed to list trimmable status rows: %w", err)
	}
	if len(ids) == 0 {
		return nil
	}
	_, err = s.client.HashcatStatus.Delete().Where(hashcatstatus.IDIn(ids...)).Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to trim status history: %w", err)
	}
	return nil
}

// purgeAllStatusHistory removes every HashcatStatus row for a task that
// just reached a terminal successful state.
func (s *TaskService) purgeAllStatusHistory(ctx context.Context, taskID int64) error {
	_, err := s.client.HashcatStatus.Delete().
		Where(hashcatstatus.HasTaskWith(task.IDEQ(taskID))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to purge status history: %w", err)
	}
	return nil
}

// PurgeTerminalStatusHistory deletes every HashcatStatus row still attached
// to a completed or exhausted task, returning the number removed. The purge
// normally happens inline on the completion transition; this retention pass
// catches rows that survived a crash between commit and purge.
func (s *TaskService) PurgeTerminalStatusHistory(ctx context.Context) (int, error) {
	n, err := s.client.HashcatStatus.Delete().
		Where(hashcatstatus.HasTaskWith(
			task.StateIn(task.StateCompleted, task.StateExhausted),
		)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge terminal status history: %w", err)
	}
	return n, nil
}

// SiblingSummary reports the terminal/exhausted state of every task
// belonging to an attack, used by AttackService to decide completion and
// exhaustion cascades.
type SiblingSummary struct {
	Total         int
	AllTerminal   bool
	AllExhausted  bool
}

// SummarizeSiblings loads every task for attackID and classifies them.
func (s *TaskService) SummarizeSiblings(ctx context.Context, attackID int64) (SiblingSummary, error) {
	tasks, err := s.client.Task.Query().
		Where(task.HasAttackWith(attack.IDEQ(attackID))).
		All(ctx)
	if err != nil {
		return SiblingSummary{}, fmt.Errorf("failed to query sibling tasks: %w", err)
	}
	if len(tasks) == 0 {
		return SiblingSummary{Total: 0}, nil
	}
	allTerminal := true
	allExhausted := true
	for _, t := range tasks {
		st := statemachine.TaskState(t.State)
		if !st.Terminal() {
			allTerminal = false
		}
		if st != statemachine.TaskExhausted {
			allExhausted = false
		}
	}
	return SiblingSummary{Total: len(tasks), AllTerminal: allTerminal, AllExhausted: allExhausted}, nil
}

// CompleteAllNonTerminal marks every non-completed sibling task of attackID
// as completed, for the "hash list fully cracked" cascade.
func (s *TaskService) CompleteAllNonTerminal(ctx context.Context, attackID int64) error {
	_, err := s.client.Task.Update().
		Where(
			task.HasAttackWith(attack.IDEQ(attackID)),
			task.StateNotIn(task.StateCompleted, task.StateFailed),
		).
		SetState(task.StateCompleted).
		SetActivityTimestamp(time.Now()).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to complete sibling tasks: %w", err)
	}
	return nil
}

// PauseAll pauses every non-paused task of attackID (attack-level pause
// cascade).
func (s *TaskService) PauseAll(ctx context.Context, attackID int64) error {
	_, err := s.client.Task.Update().
		Where(
			task.HasAttackWith(attack.IDEQ(attackID)),
			task.StateIn(task.StatePending, task.StateRunning),
		).
		SetState(task.StatePaused).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to pause tasks: %w", err)
	}
	return nil
}

// ResumeAll transitions paused tasks of attackID back to pending and marks
// them stale, detaching any still-assigned agent.
func (s *TaskService) ResumeAll(ctx context.Context, attackID int64) error {
	_, err := s.client.Task.Update().
		Where(
			task.HasAttackWith(attack.IDEQ(attackID)),
			task.StateEQ(task.StatePaused),
		).
		SetState(task.StatePending).
		SetStale(true).
		ClearAgent().
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to resume tasks: %w", err)
	}
	return nil
}

// DestroyAll deletes every task row of attackID (attack.abandon: "all child
// tasks are destroyed"). HashcatStatus/CrackResult rows cascade-delete with
// them via the ent schema's OnDelete(Cascade) edges.
func (s *TaskService) DestroyAll(ctx context.Context, attackID int64) error {
	_, err := s.client.Task.Delete().
		Where(task.HasAttackWith(attack.IDEQ(attackID))).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to destroy tasks: %w", err)
	}
	return nil
}

// CancelAll fails every non-terminal task of attackID (operator cancel
// cascade).
func (s *TaskService) CancelAll(ctx context.Context, attackID int64) error {
	_, err := s.client.Task.Update().
		Where(
			task.HasAttackWith(attack.IDEQ(attackID)),
			task.StateIn(task.StatePending, task.StateRunning),
		).
		SetState(task.StateFailed).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to cancel tasks: %w", err)
	}
	return nil
}

// RequestCancel flags every running task of attackID for the agent to
// observe on its next status/heartbeat,
// without itself transitioning task state — the agent's own ack (or the
// reclamation sweep, if it never reports back) drives the transition.
func (s *TaskService) RequestCancel(ctx context.Context, attackID int64) error {
	_, err := s.client.Task.Update().
		Where(
			task.HasAttackWith(attack.IDEQ(attackID)),
			task.StateEQ(task.StateRunning),
		).
		SetCancelRequested(true).
		Save(ctx)
	if err != nil {
		return fmt.Errorf("failed to flag tasks for cancellation: %w", err)
	}
	return nil
}

// FindPendingForAttack returns an already-materialized pending, unclaimed
// task for the attack, if one exists.
func (s *TaskService) FindPendingForAttack(ctx context.Context, attackID int64) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(
			task.HasAttackWith(attack.IDEQ(attackID)),
			task.StateEQ(task.StatePending),
			task.Not(task.HasAgent()),
		).
		Order(ent.Asc(task.FieldKeyspaceOffset)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query pending task: %w", err)
	}
	return t, nil
}

// RunningTaskForAgent returns ag's currently running task for attackID, if
// any, keeping at most one running task per agent per attack by
// construction rather than a DB constraint.
func (s *TaskService) RunningTaskForAgent(ctx context.Context, attackID int64, agentID int64) (*ent.Task, error) {
	t, err := s.client.Task.Query().
		Where(
			task.HasAttackWith(attack.IDEQ(attackID)),
			task.StateEQ(task.StateRunning),
			task.HasAgentWith(agent.IDEQ(agentID)),
		).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query running task: %w", err)
	}
	return t, nil
}
