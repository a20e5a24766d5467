package statemachine

import "fmt"

// AttackState mirrors the generated ent/attack.State enum values; attacks
// share TaskState's vocabulary because they run the same state set.
type AttackState string

const (
	AttackPending   AttackState = "pending"
	AttackRunning   AttackState = "running"
	AttackPaused    AttackState = "paused"
	AttackCompleted AttackState = "completed"
	AttackExhausted AttackState = "exhausted"
	AttackFailed    AttackState = "failed"
)

func (s AttackState) Terminal() bool {
	switch s {
	case AttackCompleted, AttackExhausted, AttackFailed:
		return true
	default:
		return false
	}
}

// AttackEvent names an attack-level transition.
type AttackEvent string

const (
	AttackEventAccept  AttackEvent = "accept"
	AttackEventRun     AttackEvent = "run"
	AttackEventComplete AttackEvent = "complete"
	AttackEventExhaust AttackEvent = "exhaust"
	AttackEventPause   AttackEvent = "pause"
	AttackEventResume  AttackEvent = "resume"
	AttackEventAbandon AttackEvent = "abandon"
	AttackEventCancel  AttackEvent = "cancel"
	AttackEventError   AttackEvent = "error"
	AttackEventReset   AttackEvent = "reset"
)

// AttackEffect is a cascade instruction for the caller.
type AttackEffect int

const (
	// EffectSetStartTime stamps start_time on the attack row.
	EffectSetStartTime AttackEffect = iota
	// EffectSetEndTime stamps end_time on the attack row.
	EffectSetEndTime
	// EffectCompleteSiblingTasks marks every non-completed sibling task
	// completed before the attack itself transitions.
	EffectCompleteSiblingTasks
	// EffectCascadeToCampaign re-evaluates the owning campaign's derived state.
	EffectCascadeToCampaign
	// EffectDestroyChildTasks deletes every task row belonging to the attack
	// (abandon: "all child tasks are destroyed").
	EffectDestroyChildTasks
	// EffectPauseChildTasks pauses every non-paused sibling task.
	EffectPauseChildTasks
	// EffectResumeChildTasks transitions paused tasks back to pending and marks them stale.
	EffectResumeChildTasks
	// EffectCompleteSiblingAttacks fires complete on every other non-completed
	// attack in the campaign once the hash list is fully cracked (fanout,
	// best-effort).
	EffectCompleteSiblingAttacks
	// EffectBumpCampaignVersion touches the campaign's updated_at.
	EffectBumpCampaignVersion
)

// AttackContext carries the facts the transition needs beyond (state, event).
type AttackContext struct {
	// AllTasksTerminal is true when every sibling task is in a terminal state.
	AllTasksTerminal bool
	// AllTasksExhausted is true when every sibling task is exhausted.
	AllTasksExhausted bool
	// HashListUncrackedCount is the owning campaign's hash list's current count.
	HashListUncrackedCount int
	// IsFirstTaskAccepted is true on the first task accepted for this attack
	// (drives the implicit pending/paused -> running edge on task accept).
	IsFirstTaskAccepted bool
}

// AttackTransitionResult is what ApplyAttack returns.
type AttackTransitionResult struct {
	From    AttackState
	To      AttackState
	Effects []AttackEffect
}

// AttackGuardError mirrors GuardError for the attack machine.
type AttackGuardError struct {
	State AttackState
	Event AttackEvent
}

func (e *AttackGuardError) Error() string {
	return fmt.Sprintf("attack: event %q not valid from state %q", e.Event, e.State)
}

// ApplyAttack computes the next attack state and cascade effects for (state, event).
func ApplyAttack(from AttackState, event AttackEvent, ctx AttackContext) (AttackTransitionResult, error) {
	veto := func() (AttackTransitionResult, error) {
		return AttackTransitionResult{}, &AttackGuardError{State: from, Event: event}
	}

	switch event {
	case AttackEventAccept:
		if from.Terminal() {
			return veto()
		}
		if from == AttackRunning {
			return AttackTransitionResult{From: from, To: from}, nil
		}
		return AttackTransitionResult{
			From: from, To: AttackRunning,
			Effects: []AttackEffect{EffectSetStartTime, EffectBumpCampaignVersion},
		}, nil

	case AttackEventRun:
		if from != AttackPending {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackRunning,
			Effects: []AttackEffect{EffectSetStartTime, EffectBumpCampaignVersion},
		}, nil

	case AttackEventComplete:
		if from != AttackRunning {
			return veto()
		}
		if !(ctx.AllTasksTerminal || ctx.HashListUncrackedCount == 0) {
			return veto()
		}
		effects := []AttackEffect{EffectSetEndTime, EffectCascadeToCampaign, EffectBumpCampaignVersion}
		if ctx.HashListUncrackedCount == 0 {
			effects = append([]AttackEffect{EffectCompleteSiblingTasks}, effects...)
			effects = append(effects, EffectCompleteSiblingAttacks)
		}
		return AttackTransitionResult{From: from, To: AttackCompleted, Effects: effects}, nil

	case AttackEventExhaust:
		if from != AttackRunning {
			return veto()
		}
		if !ctx.AllTasksExhausted || ctx.HashListUncrackedCount == 0 {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackExhausted,
			Effects: []AttackEffect{EffectSetEndTime, EffectCascadeToCampaign, EffectBumpCampaignVersion},
		}, nil

	case AttackEventPause:
		if from.Terminal() {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackPaused,
			Effects: []AttackEffect{EffectPauseChildTasks, EffectBumpCampaignVersion},
		}, nil

	case AttackEventResume:
		if from != AttackPaused {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackPending,
			Effects: []AttackEffect{EffectResumeChildTasks, EffectBumpCampaignVersion},
		}, nil

	case AttackEventAbandon:
		if from != AttackRunning {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackPending,
			Effects: []AttackEffect{EffectDestroyChildTasks, EffectBumpCampaignVersion},
		}, nil

	case AttackEventCancel:
		if from.Terminal() {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackFailed,
			Effects: []AttackEffect{EffectCascadeToCampaign, EffectBumpCampaignVersion},
		}, nil

	case AttackEventError:
		if from != AttackRunning {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackFailed,
			Effects: []AttackEffect{EffectCascadeToCampaign, EffectBumpCampaignVersion},
		}, nil

	case AttackEventReset:
		if !from.Terminal() {
			return veto()
		}
		return AttackTransitionResult{
			From: from, To: AttackPending,
			Effects: []AttackEffect{EffectBumpCampaignVersion},
		}, nil

	default:
		return veto()
	}
}
