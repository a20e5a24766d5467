package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/pkg/config"
	"github.com/cipherswarm/cipherswarm/pkg/keyspace"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// MatcherService selects the next task to hand an idle agent: an ordered
// walk over candidate attacks, combined with the keyspace planner for
// slice generation and an atomic claim against racing agents.
type MatcherService struct {
	client  *ent.Client
	attacks *AttackService
	tasks   *TaskService
	cfg     *config.MatcherConfig
}

// NewMatcherService creates a new MatcherService.
func NewMatcherService(client *ent.Client, attacks *AttackService, tasks *TaskService, cfg *config.MatcherConfig) *MatcherService {
	if cfg == nil {
		cfg = config.DefaultMatcherConfig()
	}
	return &MatcherService{client: client, attacks: attacks, tasks: tasks, cfg: cfg}
}

// SelectionStatus enumerates the non-task outcomes of SelectTask.
type SelectionStatus string

const (
	SelectionTask               SelectionStatus = "task"
	SelectionBenchmarkRequired  SelectionStatus = "benchmark_required"
	SelectionNoWork             SelectionStatus = "no_work"
)

// SelectTask walks candidate attacks in active
// campaigns visible to ag, ordered by campaign priority desc, campaign
// created_at asc, attack position asc; skip attacks with unready resources;
// require a fresh benchmark for the attack's hash type before dispatching;
// prefer an already-materialized pending task, else ask the keyspace
// planner for the next slice; claim atomically, retrying the next
// candidate on a lost race.
func (m *MatcherService) SelectTask(ctx context.Context, ag *ent.Agent) (*ent.Task, SelectionStatus, error) {
	if ag.State != agent.StateActive {
		return nil, SelectionNoWork, NewStateConflictError("agent", string(ag.State), "select_task")
	}

	candidates, err := m.candidateAttacks(ctx, ag.ID)
	if err != nil {
		return nil, SelectionNoWork, err
	}

	sawBenchmarkRequired := false

	for _, attk := range candidates {
		hashList, err := m.attacks.hashListFor(ctx, attk.ID)
		if err != nil {
			continue
		}

		bm, err := m.latestBenchmark(ctx, ag.ID, hashList.HashMode)
		if err != nil {
			return nil, SelectionNoWork, err
		}
		if bm == nil {
			sawBenchmarkRequired = true
			continue
		}

		ready, err := m.attacks.resourcesReady(ctx, attk)
		if err != nil {
			return nil, SelectionNoWork, err
		}
		if !ready {
			continue
		}

		// An agent restarting mid-slice asks for work while its old task
		// still runs; hand that task back instead of leasing a second slice
		// of the same attack to the same agent.
		if existing, err := m.tasks.RunningTaskForAgent(ctx, attk.ID, ag.ID); err != nil {
			return nil, SelectionNoWork, err
		} else if existing != nil {
			return existing, SelectionTask, nil
		}

		if attk.State == attack.StatePending {
			if _, err := m.attacks.ApplyEvent(ctx, attk, statemachine.AttackEventRun); err != nil {
				continue
			}
		}

		task, status, err := m.claimOrMaterialize(ctx, attk, ag, bm)
		if err != nil {
			return nil, SelectionNoWork, err
		}
		if status == SelectionTask {
			return task, SelectionTask, nil
		}
		// Claim race lost or slice exhausted: try the next candidate.
	}

	if sawBenchmarkRequired {
		return nil, SelectionBenchmarkRequired, nil
	}
	return nil, SelectionNoWork, nil
}

// claimOrMaterialize tries the attack's existing pending task first, then
// falls back to asking the keyspace planner for a new slice.
func (m *MatcherService) claimOrMaterialize(ctx context.Context, attk *ent.Attack, ag *ent.Agent, bm *ent.Benchmark) (*ent.Task, SelectionStatus, error) {
	pending, err := m.tasks.FindPendingForAttack(ctx, attk.ID)
	if err != nil {
		return nil, SelectionNoWork, err
	}
	if pending != nil {
		claimed, err := m.tasks.ClaimPending(ctx, pending.ID, ag)
		if err != nil {
			if err == ErrClaimRaceLost {
				return nil, SelectionNoWork, nil
			}
			return nil, SelectionNoWork, err
		}
		return claimed, SelectionTask, nil
	}

	sliceSize := keyspace.TargetSliceSize(bm.HashSpeed, m.cfg.TargetSliceSeconds)
	if bm.HashSpeed <= 0 {
		// A degenerate benchmark row can't size a slice; fall back to the
		// configured conservative probe size.
		sliceSize = m.cfg.ProbeSliceSize
	}
	created, err := m.tasks.MaterializeNextSlice(ctx, attk, sliceSize)
	if err != nil {
		if err == ErrStateConflict {
			// Attack's keyspace is fully covered by existing tasks: it's
			// exhausted once those tasks finish, not a matcher error.
			return nil, SelectionNoWork, nil
		}
		return nil, SelectionNoWork, err
	}

	claimed, err := m.tasks.ClaimPending(ctx, created.ID, ag)
	if err != nil {
		if err == ErrClaimRaceLost {
			return nil, SelectionNoWork, nil
		}
		return nil, SelectionNoWork, err
	}
	return claimed, SelectionTask, nil
}

// candidateAttacks returns every pending/running attack in an active
// campaign within one of ag's projects, ordered for selection.
func (m *MatcherService) candidateAttacks(ctx context.Context, agentID int64) ([]*ent.Attack, error) {
	projectIDs, err := m.client.Agent.Query().
		Where(agent.IDEQ(agentID)).
		QueryProjects().
		IDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve agent projects: %w", err)
	}
	if len(projectIDs) == 0 {
		return nil, nil
	}

	attacks, err := m.client.Attack.Query().
		Where(
			attack.StateIn(attack.StatePending, attack.StateRunning),
			attack.HasCampaignWith(
				campaign.StateEQ(campaign.StateActive),
				campaign.HasProjectWith(project.IDIn(projectIDs...)),
			),
		).
		WithCampaign().
		WithWordList().
		WithRuleList().
		WithMaskList().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query candidate attacks: %w", err)
	}

	sortCandidates(attacks)
	return attacks, nil
}

// sortCandidates orders attacks by campaign priority desc, campaign
// created_at asc, attack position asc.
func sortCandidates(attacks []*ent.Attack) {
	rank := func(p campaign.Priority) int {
		switch p {
		case campaign.PriorityFlash:
			return 6
		case campaign.PriorityImmediate:
			return 5
		case campaign.PriorityUrgent:
			return 4
		case campaign.PriorityPriority:
			return 3
		case campaign.PriorityRoutine:
			return 2
		case campaign.PriorityDeferred:
			return 1
		default:
			return 0
		}
	}
	less := func(i, j int) bool {
		ci, cj := attacks[i].Edges.Campaign, attacks[j].Edges.Campaign
		if ci == nil || cj == nil {
			return attacks[i].Position < attacks[j].Position
		}
		ri, rj := rank(ci.Priority), rank(cj.Priority)
		if ri != rj {
			return ri > rj
		}
		if !ci.CreatedAt.Equal(cj.CreatedAt) {
			return ci.CreatedAt.Before(cj.CreatedAt)
		}
		return attacks[i].Position < attacks[j].Position
	}
	insertionSort(attacks, less)
}

// insertionSort is a tiny stable sort, avoiding a sort.Slice import for one
// small, already-bounded-size candidate list.
func insertionSort(attacks []*ent.Attack, less func(i, j int) bool) {
	for i := 1; i < len(attacks); i++ {
		for j := i; j > 0 && less(j, j-1); j-- {
			attacks[j], attacks[j-1] = attacks[j-1], attacks[j]
		}
	}
}

// latestBenchmark returns ag's most recent benchmark for hashType within
// the configured freshness window, or nil if none qualifies.
func (m *MatcherService) latestBenchmark(ctx context.Context, agentID int64, hashType int) (*ent.Benchmark, error) {
	cutoff := time.Now().Add(-m.cfg.BenchmarkFreshness)
	bm, err := m.client.Benchmark.Query().
		Where(
			benchmark.HasAgentWith(agent.IDEQ(agentID)),
			benchmark.HashType(hashType),
			benchmark.MeasuredAtGTE(cutoff),
		).
		Order(ent.Desc(benchmark.FieldMeasuredAt)).
		First(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to query benchmark: %w", err)
	}
	return bm, nil
}
