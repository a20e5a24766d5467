package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyTask_AcceptFromPending(t *testing.T) {
	result, err := ApplyTask(TaskPending, TaskEventAccept, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskRunning, result.To)
	assert.Empty(t, result.Effects)
}

func TestApplyTask_AcceptFromRunningVetoed(t *testing.T) {
	_, err := ApplyTask(TaskRunning, TaskEventAccept, TaskContext{})
	require.Error(t, err)
	var guard *GuardError
	assert.ErrorAs(t, err, &guard)
}

func TestApplyTask_AcceptStatusIdempotentForRunning(t *testing.T) {
	result, err := ApplyTask(TaskRunning, TaskEventAcceptStatus, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskRunning, result.To)
}

func TestApplyTask_AcceptStatusVetoedFromPaused(t *testing.T) {
	_, err := ApplyTask(TaskPaused, TaskEventAcceptStatus, TaskContext{})
	assert.Error(t, err)
}

func TestApplyTask_TerminalStatesNeverReviveWithoutReset(t *testing.T) {
	// A task in a terminal state must reject every event that would move it
	// back to running; only an attack-level reset (which destroys and
	// re-plans tasks) can re-run the keyspace.
	terminal := []TaskState{TaskCompleted, TaskExhausted, TaskFailed}
	revivers := []TaskEvent{TaskEventAccept, TaskEventRun, TaskEventAcceptStatus, TaskEventAcceptCrack, TaskEventResume}
	for _, state := range terminal {
		for _, event := range revivers {
			_, err := ApplyTask(state, event, TaskContext{})
			assert.Error(t, err, "state %s must veto %s", state, event)
		}
	}
}

func TestApplyTask_AcceptCrackKeepsRunningWhileUncracked(t *testing.T) {
	result, err := ApplyTask(TaskRunning, TaskEventAcceptCrack, TaskContext{HashListFullyCracked: false})
	require.NoError(t, err)
	assert.Equal(t, TaskRunning, result.To)
	assert.Empty(t, result.Effects)
}

func TestApplyTask_AcceptCrackCompletesWhenFullyCracked(t *testing.T) {
	result, err := ApplyTask(TaskRunning, TaskEventAcceptCrack, TaskContext{HashListFullyCracked: true})
	require.NoError(t, err)
	assert.Equal(t, TaskCompleted, result.To)
	assert.Contains(t, result.Effects, EffectPurgeStatusHistory)
	assert.Contains(t, result.Effects, EffectEvaluateAttackComplete)
}

func TestApplyTask_CompletePurgesHistoryAndCascades(t *testing.T) {
	result, err := ApplyTask(TaskRunning, TaskEventComplete, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskCompleted, result.To)
	assert.Contains(t, result.Effects, EffectPurgeStatusHistory)
	assert.Contains(t, result.Effects, EffectEvaluateAttackComplete)
}

func TestApplyTask_ExhaustCascadesExhaustCheck(t *testing.T) {
	result, err := ApplyTask(TaskRunning, TaskEventExhaust, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskExhausted, result.To)
	assert.Contains(t, result.Effects, EffectEvaluateAttackExhaust)
	assert.NotContains(t, result.Effects, EffectPurgeStatusHistory)
}

func TestApplyTask_PauseResumeRoundTrip(t *testing.T) {
	paused, err := ApplyTask(TaskRunning, TaskEventPause, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskPaused, paused.To)

	resumed, err := ApplyTask(paused.To, TaskEventResume, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskPending, resumed.To)
}

func TestApplyTask_AbandonDetachesAgentAndRequeues(t *testing.T) {
	result, err := ApplyTask(TaskRunning, TaskEventAbandon, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskPending, result.To)
	assert.Contains(t, result.Effects, EffectClearAgent)
	assert.Contains(t, result.Effects, EffectLogAbandon)
}

func TestApplyTask_AbandonOnlyFromRunning(t *testing.T) {
	for _, state := range []TaskState{TaskPending, TaskPaused, TaskCompleted, TaskExhausted, TaskFailed} {
		_, err := ApplyTask(state, TaskEventAbandon, TaskContext{})
		assert.Error(t, err, "abandon from %s must be vetoed", state)
	}
}

func TestApplyTask_CancelFailsLiveStates(t *testing.T) {
	for _, state := range []TaskState{TaskPending, TaskRunning} {
		result, err := ApplyTask(state, TaskEventCancel, TaskContext{})
		require.NoError(t, err)
		assert.Equal(t, TaskFailed, result.To)
	}
}

func TestApplyTask_ErrorOnlyFromRunning(t *testing.T) {
	result, err := ApplyTask(TaskRunning, TaskEventError, TaskContext{})
	require.NoError(t, err)
	assert.Equal(t, TaskFailed, result.To)

	_, err = ApplyTask(TaskPending, TaskEventError, TaskContext{})
	assert.Error(t, err)
}

func TestTaskState_Terminal(t *testing.T) {
	assert.True(t, TaskCompleted.Terminal())
	assert.True(t, TaskExhausted.Terminal())
	assert.True(t, TaskFailed.Terminal())
	assert.False(t, TaskPending.Terminal())
	assert.False(t, TaskRunning.Terminal())
	assert.False(t, TaskPaused.Terminal())
}
