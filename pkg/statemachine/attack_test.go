package statemachine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyAttack_RunSetsStartTime(t *testing.T) {
	result, err := ApplyAttack(AttackPending, AttackEventRun, AttackContext{})
	require.NoError(t, err)
	assert.Equal(t, AttackRunning, result.To)
	assert.Contains(t, result.Effects, EffectSetStartTime)
}

func TestApplyAttack_AcceptIdempotentWhileRunning(t *testing.T) {
	result, err := ApplyAttack(AttackRunning, AttackEventAccept, AttackContext{})
	require.NoError(t, err)
	assert.Equal(t, AttackRunning, result.To)
	assert.Empty(t, result.Effects)
}

func TestApplyAttack_CompleteRequiresTerminalTasksOrFullCrack(t *testing.T) {
	// Neither condition met: vetoed.
	_, err := ApplyAttack(AttackRunning, AttackEventComplete, AttackContext{
		AllTasksTerminal: false, HashListUncrackedCount: 2,
	})
	assert.Error(t, err)

	// All tasks terminal: completes without the sibling fanout.
	result, err := ApplyAttack(AttackRunning, AttackEventComplete, AttackContext{
		AllTasksTerminal: true, HashListUncrackedCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, AttackCompleted, result.To)
	assert.Contains(t, result.Effects, EffectSetEndTime)
	assert.Contains(t, result.Effects, EffectCascadeToCampaign)
	assert.NotContains(t, result.Effects, EffectCompleteSiblingTasks)
	assert.NotContains(t, result.Effects, EffectCompleteSiblingAttacks)
}

func TestApplyAttack_FullCrackCompletesSiblingsFirst(t *testing.T) {
	result, err := ApplyAttack(AttackRunning, AttackEventComplete, AttackContext{
		AllTasksTerminal: false, HashListUncrackedCount: 0,
	})
	require.NoError(t, err)
	assert.Equal(t, AttackCompleted, result.To)
	// Sibling tasks are completed before the attack transition's own
	// persistence, so the effect must come first in the list.
	require.NotEmpty(t, result.Effects)
	assert.Equal(t, EffectCompleteSiblingTasks, result.Effects[0])
	assert.Contains(t, result.Effects, EffectCompleteSiblingAttacks)
}

func TestApplyAttack_ExhaustRequiresAllExhaustedAndUncrackedLeft(t *testing.T) {
	// Hash list fully cracked: exhaust is the wrong terminal, veto.
	_, err := ApplyAttack(AttackRunning, AttackEventExhaust, AttackContext{
		AllTasksExhausted: true, HashListUncrackedCount: 0,
	})
	assert.Error(t, err)

	// Some tasks not exhausted: veto.
	_, err = ApplyAttack(AttackRunning, AttackEventExhaust, AttackContext{
		AllTasksExhausted: false, HashListUncrackedCount: 2,
	})
	assert.Error(t, err)

	result, err := ApplyAttack(AttackRunning, AttackEventExhaust, AttackContext{
		AllTasksExhausted: true, HashListUncrackedCount: 2,
	})
	require.NoError(t, err)
	assert.Equal(t, AttackExhausted, result.To)
}

func TestApplyAttack_PauseCascadesToTasks(t *testing.T) {
	result, err := ApplyAttack(AttackRunning, AttackEventPause, AttackContext{})
	require.NoError(t, err)
	assert.Equal(t, AttackPaused, result.To)
	assert.Contains(t, result.Effects, EffectPauseChildTasks)
}

func TestApplyAttack_ResumeReturnsToPending(t *testing.T) {
	result, err := ApplyAttack(AttackPaused, AttackEventResume, AttackContext{})
	require.NoError(t, err)
	assert.Equal(t, AttackPending, result.To)
	assert.Contains(t, result.Effects, EffectResumeChildTasks)
}

func TestApplyAttack_AbandonDestroysChildTasks(t *testing.T) {
	result, err := ApplyAttack(AttackRunning, AttackEventAbandon, AttackContext{})
	require.NoError(t, err)
	assert.Equal(t, AttackPending, result.To)
	assert.Contains(t, result.Effects, EffectDestroyChildTasks)
	assert.Contains(t, result.Effects, EffectBumpCampaignVersion)
}

func TestApplyAttack_ResetOnlyFromTerminal(t *testing.T) {
	for _, state := range []AttackState{AttackCompleted, AttackExhausted, AttackFailed} {
		result, err := ApplyAttack(state, AttackEventReset, AttackContext{})
		require.NoError(t, err)
		assert.Equal(t, AttackPending, result.To)
	}
	for _, state := range []AttackState{AttackPending, AttackRunning, AttackPaused} {
		_, err := ApplyAttack(state, AttackEventReset, AttackContext{})
		assert.Error(t, err, "reset from %s must be vetoed", state)
	}
}

func TestApplyAttack_CancelVetoedFromTerminal(t *testing.T) {
	for _, state := range []AttackState{AttackCompleted, AttackExhausted, AttackFailed} {
		_, err := ApplyAttack(state, AttackEventCancel, AttackContext{})
		assert.Error(t, err)
	}
	result, err := ApplyAttack(AttackPaused, AttackEventCancel, AttackContext{})
	require.NoError(t, err)
	assert.Equal(t, AttackFailed, result.To)
}
