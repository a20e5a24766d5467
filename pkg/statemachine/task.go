// Package statemachine implements the pure transition tables for the
// Task/Attack/Campaign state machines: each entity is modeled as a tagged
// state plus a pure function (state, event, ctx) -> (state', effects[],
// error). Callers (pkg/services) execute the returned effects — cascading
// events, history purges, broadcasts — outside of any row lock.
package statemachine

import "fmt"

// TaskState mirrors the generated ent/task.State enum values.
type TaskState string

// Task states.
const (
	TaskPending   TaskState = "pending"
	TaskRunning   TaskState = "running"
	TaskPaused    TaskState = "paused"
	TaskCompleted TaskState = "completed"
	TaskExhausted TaskState = "exhausted"
	TaskFailed    TaskState = "failed"
)

func (s TaskState) Terminal() bool {
	switch s {
	case TaskCompleted, TaskExhausted, TaskFailed:
		return true
	default:
		return false
	}
}

// TaskEvent names a task-level transition.
type TaskEvent string

const (
	TaskEventAccept       TaskEvent = "accept"
	TaskEventRun          TaskEvent = "run"
	TaskEventComplete     TaskEvent = "complete"
	TaskEventAcceptCrack  TaskEvent = "accept_crack"
	TaskEventAcceptStatus TaskEvent = "accept_status"
	TaskEventPause        TaskEvent = "pause"
	TaskEventResume       TaskEvent = "resume"
	TaskEventExhaust      TaskEvent = "exhaust"
	TaskEventError        TaskEvent = "error"
	TaskEventCancel       TaskEvent = "cancel"
	TaskEventAbandon      TaskEvent = "abandon"
)

// TaskEffect is a cascade instruction for the caller to execute after the
// primary transition commits.
type TaskEffect int

const (
	// EffectNone has no follow-up work.
	EffectNone TaskEffect = iota
	// EffectPurgeStatusHistory trims HashcatStatus rows beyond the retention limit.
	EffectPurgeStatusHistory
	// EffectEvaluateAttackComplete asks the attack-level machine whether all
	// sibling tasks are now terminal (cascades task.completed -> attack.complete).
	EffectEvaluateAttackComplete
	// EffectEvaluateAttackExhaust asks whether all sibling tasks are exhausted.
	EffectEvaluateAttackExhaust
	// EffectClearAgent detaches agent_id (used by abandon).
	EffectClearAgent
	// EffectLogAbandon preserves the prior assignment for post-mortem before clearing it.
	EffectLogAbandon
)

// TaskContext carries the facts the transition needs beyond (state, event):
// whether the triggering result ingest fully cracked the hash list, and
// whether this is a resume-from-pause (which marks the task stale).
type TaskContext struct {
	// HashListFullyCracked is set by the result ingestor when the
	// triggering crack batch drove uncracked_count to zero.
	HashListFullyCracked bool
}

// TaskTransitionResult is what Apply returns: the new state and the effects
// the caller must execute.
type TaskTransitionResult struct {
	From    TaskState
	To      TaskState
	Effects []TaskEffect
}

// GuardError is returned when a transition's precondition is not met; it
// corresponds to the "Error::Guard veto" and is always a state conflict
// at the API boundary.
type GuardError struct {
	State TaskState
	Event TaskEvent
}

func (e *GuardError) Error() string {
	return fmt.Sprintf("task: event %q not valid from state %q", e.Event, e.State)
}

// ApplyTask computes the next task state and cascade effects for (state, event).
func ApplyTask(from TaskState, event TaskEvent, ctx TaskContext) (TaskTransitionResult, error) {
	veto := func() (TaskTransitionResult, error) {
		return TaskTransitionResult{}, &GuardError{State: from, Event: event}
	}

	switch event {
	case TaskEventAccept, TaskEventRun:
		if from != TaskPending {
			return veto()
		}
		return TaskTransitionResult{From: from, To: TaskRunning}, nil

	case TaskEventAcceptStatus:
		// Heartbeat of progress: valid from any live non-paused state,
		// idempotent for running. Terminal states veto so a late frame can
		// never revive a completed/cancelled task without an explicit reset
		// on the parent attack.
		if from == TaskPaused || from.Terminal() {
			return veto()
		}
		return TaskTransitionResult{From: from, To: TaskRunning}, nil

	case TaskEventAcceptCrack:
		if from != TaskRunning {
			return veto()
		}
		if ctx.HashListFullyCracked {
			return TaskTransitionResult{
				From: from, To: TaskCompleted,
				Effects: []TaskEffect{EffectPurgeStatusHistory, EffectEvaluateAttackComplete},
			}, nil
		}
		return TaskTransitionResult{From: from, To: TaskRunning}, nil

	case TaskEventComplete:
		if from != TaskRunning {
			return veto()
		}
		return TaskTransitionResult{
			From: from, To: TaskCompleted,
			Effects: []TaskEffect{EffectPurgeStatusHistory, EffectEvaluateAttackComplete},
		}, nil

	case TaskEventExhaust:
		if from != TaskRunning {
			return veto()
		}
		return TaskTransitionResult{
			From: from, To: TaskExhausted,
			Effects: []TaskEffect{EffectEvaluateAttackExhaust},
		}, nil

	case TaskEventPause:
		if from != TaskPending && from != TaskRunning {
			return veto()
		}
		return TaskTransitionResult{From: from, To: TaskPaused}, nil

	case TaskEventResume:
		if from != TaskPaused {
			return veto()
		}
		return TaskTransitionResult{From: from, To: TaskPending}, nil

	case TaskEventError:
		if from != TaskRunning {
			return veto()
		}
		return TaskTransitionResult{From: from, To: TaskFailed}, nil

	case TaskEventCancel:
		if from != TaskPending && from != TaskRunning {
			return veto()
		}
		return TaskTransitionResult{From: from, To: TaskFailed}, nil

	case TaskEventAbandon:
		if from != TaskRunning {
			return veto()
		}
		return TaskTransitionResult{
			From: from, To: TaskPending,
			Effects: []TaskEffect{EffectLogAbandon, EffectClearAgent},
		}, nil

	default:
		return veto()
	}
}
