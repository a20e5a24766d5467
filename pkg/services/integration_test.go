package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	entattack "github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	enttask "github.com/cipherswarm/cipherswarm/ent/task"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

func TestMatcher_HappyPathDictionary(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, status, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	require.Equal(t, SelectionTask, status)
	require.NotNil(t, claimed)

	// Total keyspace 1000 words x 10 rules = 10000; the benchmark-sized
	// slice (1e8 H/s x 60s) dwarfs it, so one slice covers everything.
	assert.Equal(t, int64(0), claimed.KeyspaceOffset)
	assert.Equal(t, int64(10000), claimed.KeyspaceLimit)
	assert.Equal(t, enttask.StateRunning, claimed.State)

	// A running task always has an agent and a live activity timestamp.
	owner, err := client.Task.QueryAgent(claimed).Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, fx.agent.ID, owner.ID)
	assert.WithinDuration(t, time.Now(), claimed.ActivityTimestamp, time.Minute)

	// The attack entered running and total_keyspace was persisted.
	attk, err := client.Attack.Get(ctx, fx.attack.ID)
	require.NoError(t, err)
	assert.Equal(t, entattack.StateRunning, attk.State)
	require.NotNil(t, attk.TotalKeyspace)
	assert.Equal(t, int64(10000), *attk.TotalKeyspace)
}

func TestMatcher_ReturnsExistingRunningTask(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	first, status, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	require.Equal(t, SelectionTask, status)

	// Asking again while the slice runs hands back the same task
	// instead of leasing a second one to the same agent.
	second, status, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	require.Equal(t, SelectionTask, status)
	assert.Equal(t, first.ID, second.ID)

	count, err := client.Task.Query().
		Where(enttask.StateEQ(enttask.StateRunning), enttask.HasAgentWith(agent.IDEQ(fx.agent.ID))).
		Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestMatcher_BenchmarkRequired(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	// Strip the agent's benchmarks: the matcher must ask for one instead
	// of dispatching, and no task may materialize.
	_, err := client.Benchmark.Delete().Exec(ctx)
	require.NoError(t, err)

	claimed, status, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	assert.Equal(t, SelectionBenchmarkRequired, status)
	assert.Nil(t, claimed)

	count, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestMatcher_StaleBenchmarkRequiresRefresh(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	// Age the benchmark past the 7-day freshness window.
	_, err := client.Benchmark.Update().
		SetMeasuredAt(time.Now().Add(-8 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	_, status, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	assert.Equal(t, SelectionBenchmarkRequired, status)
}

func TestMatcher_SkipsAttackWithUnreadyResources(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	// A NULL line_count blocks dispatch entirely.
	err := client.Resource.UpdateOneID(fx.wordList.ID).ClearLineCount().Exec(ctx)
	require.NoError(t, err)

	claimed, status, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	assert.Equal(t, SelectionNoWork, status)
	assert.Nil(t, claimed)
}

func TestMatcher_FlashOutranksRoutine(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	// A flash campaign created after the routine one still wins.
	flashList, err := client.HashList.Create().
		SetProject(fx.project).
		SetName("flash-dump").
		SetHashMode(0).
		SetUncrackedCount(1).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.HashItem.Create().SetHashList(flashList).SetHashValue("f1").Save(ctx)
	require.NoError(t, err)

	flashCampaign, err := client.Campaign.Create().
		SetProject(fx.project).
		SetHashList(flashList).
		SetName("incident-response").
		SetPriority(campaign.PriorityFlash).
		SetState(campaign.StateActive).
		Save(ctx)
	require.NoError(t, err)

	flashAttack, err := client.Attack.Create().
		SetCampaign(flashCampaign).
		SetPosition(0).
		SetAttackMode("dictionary").
		SetWordList(fx.wordList).
		Save(ctx)
	require.NoError(t, err)

	claimed, status, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	require.Equal(t, SelectionTask, status)

	attackID, err := client.Task.QueryAttack(claimed).OnlyID(ctx)
	require.NoError(t, err)
	assert.Equal(t, flashAttack.ID, attackID)
}

func TestMatcher_ProjectScope(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	// An agent outside the project sees no work.
	other, err := client.Project.Create().SetName("other").Save(ctx)
	require.NoError(t, err)
	outsider := newActiveAgent(t, client, other, "agent-outside")

	_, status, err := svc.matcher.SelectTask(ctx, outsider)
	require.NoError(t, err)
	assert.Equal(t, SelectionNoWork, status)

	_, status, err = svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	assert.Equal(t, SelectionTask, status)
}

func TestClaimPending_RaceHasSingleWinner(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	attk, err := client.Attack.Query().
		Where(entattack.IDEQ(fx.attack.ID)).
		WithWordList().WithRuleList().WithMaskList().
		Only(ctx)
	require.NoError(t, err)
	pending, err := svc.tasks.MaterializeNextSlice(ctx, attk, 10000)
	require.NoError(t, err)

	agentB := newActiveAgent(t, client, fx.project, "agent-b")

	// Exactly one claim wins; the loser sees the race, not an error.
	won, err := svc.tasks.ClaimPending(ctx, pending.ID, fx.agent)
	require.NoError(t, err)
	assert.Equal(t, enttask.StateRunning, won.State)

	_, err = svc.tasks.ClaimPending(ctx, pending.ID, agentB)
	assert.ErrorIs(t, err, ErrClaimRaceLost)
}

func TestResultIngest_PartialCrack(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	newCracks, err := svc.results.Submit(ctx, leased, fx.agent.ID, []models.CrackEntry{
		{Timestamp: time.Now(), Hash: "h1", PlainText: "password"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, newCracks)

	// The cached counter matches the real uncracked set.
	hl, err := client.HashList.Get(ctx, fx.hashList.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, hl.UncrackedCount)

	// Task keeps running: keyspace isn't done, hashes remain.
	reloaded, err := client.Task.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StateRunning, reloaded.State)

	// An explicit completion signal finishes the slice.
	_, err = svc.tasks.ApplyEvent(ctx, reloaded, TaskTransitionInput{Event: statemachine.TaskEventComplete})
	require.NoError(t, err)
	reloaded, err = client.Task.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StateCompleted, reloaded.State)

	// Campaign stays active: the hash list still has uncracked items.
	camp, err := client.Campaign.Get(ctx, fx.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StateActive, camp.State)
}

func TestResultIngest_FullCrackCascade(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	newCracks, err := svc.results.Submit(ctx, leased, fx.agent.ID, []models.CrackEntry{
		{Timestamp: time.Now(), Hash: "h1", PlainText: "password"},
		{Timestamp: time.Now(), Hash: "h2", PlainText: "letmein"},
		{Timestamp: time.Now(), Hash: "h3", PlainText: "hunter2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 3, newCracks)

	// Cracking the last hash completes the whole tree bottom-up.
	hl, err := client.HashList.Get(ctx, fx.hashList.ID)
	require.NoError(t, err)
	assert.Zero(t, hl.UncrackedCount)

	task, err := client.Task.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StateCompleted, task.State)

	attk, err := client.Attack.Get(ctx, fx.attack.ID)
	require.NoError(t, err)
	assert.Equal(t, entattack.StateCompleted, attk.State)
	assert.NotNil(t, attk.EndTime)

	camp, err := client.Campaign.Get(ctx, fx.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StateCompleted, camp.State)
}

func TestResultIngest_DuplicateCrackIsIdempotent(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	entry := []models.CrackEntry{{Timestamp: time.Now(), Hash: "h1", PlainText: "password"}}

	first, err := svc.results.Submit(ctx, leased, fx.agent.ID, entry)
	require.NoError(t, err)
	assert.Equal(t, 1, first)

	// The duplicate decrements nothing.
	second, err := svc.results.Submit(ctx, leased, fx.agent.ID, entry)
	require.NoError(t, err)
	assert.Zero(t, second)

	hl, err := client.HashList.Get(ctx, fx.hashList.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, hl.UncrackedCount)
}

func TestResultIngest_UnknownHashDiscarded(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	newCracks, err := svc.results.Submit(ctx, leased, fx.agent.ID, []models.CrackEntry{
		{Timestamp: time.Now(), Hash: "not-in-list", PlainText: "x"},
	})
	require.NoError(t, err)
	assert.Zero(t, newCracks)

	hl, err := client.HashList.Get(ctx, fx.hashList.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, hl.UncrackedCount)
}

func TestResultIngest_RejectsNonLeaseHolder(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	intruder := newActiveAgent(t, client, fx.project, "agent-intruder")
	_, err = svc.results.Submit(ctx, leased, intruder.ID, []models.CrackEntry{
		{Timestamp: time.Now(), Hash: "h1", PlainText: "password"},
	})
	assert.ErrorIs(t, err, ErrStateConflict)
}

func TestLease_SweepReclaimsExactlyExpired(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	// Two running tasks on distinct agents and slices: one 31 minutes
	// silent, one fresh.
	agentB := newActiveAgent(t, client, fx.project, "agent-b")
	stale, err := client.Task.Create().
		SetAttack(fx.attack).
		SetKeyspaceOffset(0).
		SetKeyspaceLimit(5000).
		SetState(enttask.StateRunning).
		SetAgent(fx.agent).
		SetActivityTimestamp(time.Now().Add(-31 * time.Minute)).
		Save(ctx)
	require.NoError(t, err)
	fresh, err := client.Task.Create().
		SetAttack(fx.attack).
		SetKeyspaceOffset(5000).
		SetKeyspaceLimit(5000).
		SetState(enttask.StateRunning).
		SetAgent(agentB).
		Save(ctx)
	require.NoError(t, err)
	err = client.Attack.UpdateOneID(fx.attack.ID).SetState(entattack.StateRunning).Exec(ctx)
	require.NoError(t, err)

	// Only the 31-minute-silent task is reclaimed.

	result := svc.lease.Sweep(ctx)
	assert.Equal(t, 1, result.Scanned)
	assert.Equal(t, 1, result.Reclaimed)
	assert.Zero(t, result.Failed)

	reclaimed, err := client.Task.Query().
		Where(enttask.IDEQ(stale.ID)).
		WithAgent().
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatePending, reclaimed.State)
	assert.Nil(t, reclaimed.Edges.Agent)

	untouched, err := client.Task.Query().
		Where(enttask.IDEQ(fresh.ID)).
		WithAgent().
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StateRunning, untouched.State)
	require.NotNil(t, untouched.Edges.Agent)

	// A third agent can pick the reclaimed slice up.
	agentC := newActiveAgent(t, client, fx.project, "agent-c")
	reassigned, status, err := svc.matcher.SelectTask(ctx, agentC)
	require.NoError(t, err)
	require.Equal(t, SelectionTask, status)
	assert.Equal(t, stale.ID, reassigned.ID)
}

func TestProgress_FrameStoredAndTrimmed(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	frame := models.HashcatStatusDTO{
		Session:  "cs-1",
		Progress: [2]int64{500, 10000},
	}

	// Resubmitting the same frame leaves the task running and the
	// stored history within its bound.
	for i := 0; i < 2; i++ {
		summary, err := svc.progress.Submit(ctx, leased, fx.agent.ID, frame)
		require.NoError(t, err)
		assert.InDelta(t, 5.0, summary.Percentage, 0.001)
	}
	reloaded, err := client.Task.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StateRunning, reloaded.State)

	// Push past the retention limit; only the most recent 10 survive.
	for i := 0; i < 12; i++ {
		_, err := svc.progress.Submit(ctx, leased, fx.agent.ID, frame)
		require.NoError(t, err)
	}
	frames, err := client.HashcatStatus.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, frames)
}

func TestProgress_RejectsNonLeaseHolder(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	intruder := newActiveAgent(t, client, fx.project, "agent-intruder")
	_, err = svc.progress.Submit(ctx, leased, intruder.ID, models.HashcatStatusDTO{
		Progress: [2]int64{1, 10000},
	})
	assert.ErrorIs(t, err, ErrLeaseMismatch)
}

func TestAttack_AbandonDestroysChildTasks(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	// Two running tasks (distinct agents) and three pending ones.
	agentB := newActiveAgent(t, client, fx.project, "agent-b")
	for _, ag := range []*ent.Agent{fx.agent, agentB} {
		_, err := client.Task.Create().
			SetAttack(fx.attack).
			SetKeyspaceOffset(0).
			SetKeyspaceLimit(100).
			SetState(enttask.StateRunning).
			SetAgent(ag).
			Save(ctx)
		require.NoError(t, err)
	}
	for i := 0; i < 3; i++ {
		_, err := client.Task.Create().
			SetAttack(fx.attack).
			SetKeyspaceOffset(int64(100 * (i + 1))).
			SetKeyspaceLimit(100).
			Save(ctx)
		require.NoError(t, err)
	}
	err := client.Attack.UpdateOneID(fx.attack.ID).SetState(entattack.StateRunning).Exec(ctx)
	require.NoError(t, err)
	before, err := client.Campaign.Get(ctx, fx.campaign.ID)
	require.NoError(t, err)

	attk, err := client.Attack.Get(ctx, fx.attack.ID)
	require.NoError(t, err)
	updated, err := svc.attacks.ApplyEvent(ctx, attk, statemachine.AttackEventAbandon)
	require.NoError(t, err)
	assert.Equal(t, entattack.StatePending, updated.State)

	count, err := client.Task.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count, "all child task rows must be destroyed")

	after, err := client.Campaign.Get(ctx, fx.campaign.ID)
	require.NoError(t, err)
	assert.False(t, after.UpdatedAt.Before(before.UpdatedAt))
}

func TestAttack_ExhaustDerivesCampaignCompletion(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)

	// The single slice covers the whole keyspace; exhausting it without
	// cracks exhausts the attack. With every attack exhausted the campaign
	// derives completion even though uncracked items remain — there is
	// nothing left to search.
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)
	_, err = svc.tasks.ApplyEvent(ctx, leased, TaskTransitionInput{Event: statemachine.TaskEventExhaust})
	require.NoError(t, err)

	attk, err := client.Attack.Get(ctx, fx.attack.ID)
	require.NoError(t, err)
	assert.Equal(t, entattack.StateExhausted, attk.State)

	camp, err := client.Campaign.Get(ctx, fx.campaign.ID)
	require.NoError(t, err)
	assert.Equal(t, campaign.StateCompleted, camp.State,
		"all attacks exhausted derives campaign completion per the adopted revision")
}

func TestAttack_PauseResumeCascade(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)

	attk, err := client.Attack.Get(ctx, fx.attack.ID)
	require.NoError(t, err)
	_, err = svc.attacks.ApplyEvent(ctx, attk, statemachine.AttackEventPause)
	require.NoError(t, err)

	paused, err := client.Task.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatePaused, paused.State)

	attk, err = client.Attack.Get(ctx, fx.attack.ID)
	require.NoError(t, err)
	_, err = svc.attacks.ApplyEvent(ctx, attk, statemachine.AttackEventResume)
	require.NoError(t, err)

	resumed, err := client.Task.Query().
		Where(enttask.IDEQ(claimed.ID)).
		WithAgent().
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatePending, resumed.State)
	assert.True(t, resumed.Stale, "resumed tasks are marked stale for refetch")
	assert.Nil(t, resumed.Edges.Agent)
}

func TestAgent_ShutdownReleasesHeldTasks(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)

	require.NoError(t, svc.agents.Shutdown(ctx, fx.agent))

	released, err := client.Task.Query().
		Where(enttask.IDEQ(claimed.ID)).
		WithAgent().
		Only(ctx)
	require.NoError(t, err)
	assert.Equal(t, enttask.StatePending, released.State)
	assert.Nil(t, released.Edges.Agent)
}

func TestAgentError_FatalFailsTask(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	_, err = svc.agentErrors.Report(ctx, fx.agent, leased, models.AgentErrorReport{
		Severity: "fatal",
		Message:  "GPU memory allocation failed",
	})
	require.NoError(t, err)

	failed, err := client.Task.Get(ctx, claimed.ID)
	require.NoError(t, err)
	assert.Equal(t, enttask.StateFailed, failed.State)

	// A warning against a fresh task leaves it alone.
	_, err = svc.agentErrors.Report(ctx, fx.agent, nil, models.AgentErrorReport{
		Severity: "warning",
		Message:  "thermal throttling",
	})
	require.NoError(t, err)
}

func TestTask_CompletedPurgesStatusHistory(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	claimed, _, err := svc.matcher.SelectTask(ctx, fx.agent)
	require.NoError(t, err)
	leased, err := svc.tasks.GetWithAgent(ctx, claimed.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		_, err := svc.progress.Submit(ctx, leased, fx.agent.ID, models.HashcatStatusDTO{
			Progress: [2]int64{int64(i * 1000), 10000},
		})
		require.NoError(t, err)
	}

	_, err = svc.tasks.ApplyEvent(ctx, leased, TaskTransitionInput{Event: statemachine.TaskEventComplete})
	require.NoError(t, err)

	frames, err := client.HashcatStatus.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, frames, "terminal success purges the frame history")
}

func TestBenchmark_UpsertReplacesSamePair(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	err := svc.benchmarks.Submit(ctx, fx.agent, []models.HashcatBenchmark{
		{HashType: 0, Device: 0, HashSpeed: 2e8, RuntimeMs: 55000},
		{HashType: 1000, Device: 0, HashSpeed: 5e9, RuntimeMs: 48000},
	})
	require.NoError(t, err)

	// The fixture row for (0, 0) was replaced, not duplicated.
	rows, err := client.Benchmark.Query().All(ctx)
	require.NoError(t, err)
	assert.Len(t, rows, 2)
	for _, row := range rows {
		if row.HashType == 0 {
			assert.Equal(t, 2e8, row.HashSpeed)
		}
	}
}

func TestBenchmark_RejectsMalformedRecords(t *testing.T) {
	client := setupTestDB(t)
	svc := newServices(client)
	fx := newDictionaryFixtures(t, client)
	ctx := context.Background()

	err := svc.benchmarks.Submit(ctx, fx.agent, []models.HashcatBenchmark{
		{HashType: 0, Device: 0, HashSpeed: -5},
	})
	require.Error(t, err)
	assert.True(t, IsValidationError(err))
}
