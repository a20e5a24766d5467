package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// AttackService owns Attack persistence and the bottom-up cascade from
// tasks to attacks to campaigns: a task event first resolves at the task
// level, then this service re-aggregates the attack's children and decides
// whether the attack itself transitions.
type AttackService struct {
	client    *ent.Client
	tasks     *TaskService
	publisher events.Publisher
}

// NewAttackService creates a new AttackService.
func NewAttackService(client *ent.Client, tasks *TaskService, publisher events.Publisher) *AttackService {
	if publisher == nil {
		publisher = events.NewLogPublisher(nil)
	}
	return &AttackService{client: client, tasks: tasks, publisher: publisher}
}

// CreateAttackInput bundles the fields accepted from the operator API
// needed to build one Attack row.
type CreateAttackInput struct {
	CampaignID        int64
	Position          int
	AttackMode        string
	Mask              string
	CustomCharsets    [4]string
	IncrementMode     bool
	IncrementMinimum  int
	IncrementMaximum  int
	WorkloadProfile   int
	Optimized         bool
	DisableMarkov     bool
	ClassicMarkov     bool
	MarkovThreshold   int
	SlowCandidateGens bool
	LeftRule          string
	RightRule         string
	WordListID        *int64
	RuleListID        *int64
	MaskListID        *int64
}

// Create validates the per-mode resource-presence invariant and inserts the Attack row in
// pending state.
func (s *AttackService) Create(ctx context.Context, in CreateAttackInput) (*ent.Attack, error) {
	switch in.AttackMode {
	case "dictionary":
		if in.WordListID == nil {
			return nil, NewValidationError("word_list_id", "dictionary attacks require a word list")
		}
	case "hybrid_dictionary", "hybrid_mask":
		if in.WordListID == nil {
			return nil, NewValidationError("word_list_id", "hybrid attacks require a word list")
		}
		if in.Mask == "" && in.MaskListID == nil {
			return nil, NewValidationError("mask", "hybrid attacks require a mask or mask list")
		}
	case "mask":
		if in.Mask == "" && in.MaskListID == nil {
			return nil, NewValidationError("mask", "mask attacks require a mask or mask list")
		}
	default:
		return nil, NewValidationError("attack_mode", fmt.Sprintf("unknown attack mode %q", in.AttackMode))
	}

	create := s.client.Attack.Create().
		SetCampaignID(in.CampaignID).
		SetPosition(in.Position).
		SetAttackMode(attack.AttackMode(in.AttackMode)).
		SetMask(in.Mask).
		SetCustomCharset1(in.CustomCharsets[0]).
		SetCustomCharset2(in.CustomCharsets[1]).
		SetCustomCharset3(in.CustomCharsets[2]).
		SetCustomCharset4(in.CustomCharsets[3]).
		SetIncrementMode(in.IncrementMode).
		SetIncrementMinimum(in.IncrementMinimum).
		SetIncrementMaximum(in.IncrementMaximum).
		SetWorkloadProfile(in.WorkloadProfile).
		SetOptimized(in.Optimized).
		SetDisableMarkov(in.DisableMarkov).
		SetClassicMarkov(in.ClassicMarkov).
		SetMarkovThreshold(in.MarkovThreshold).
		SetSlowCandidateGenerators(in.SlowCandidateGens).
		SetLeftRule(in.LeftRule).
		SetRightRule(in.RightRule)

	if in.WordListID != nil {
		create = create.SetWordListID(*in.WordListID)
	}
	if in.RuleListID != nil {
		create = create.SetRuleListID(*in.RuleListID)
	}
	if in.MaskListID != nil {
		create = create.SetMaskListID(*in.MaskListID)
	}

	created, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: attack at position %d", ErrAlreadyExists, in.Position)
		}
		return nil, fmt.Errorf("failed to create attack: %w", err)
	}
	return created, nil
}

// Get loads an attack by ID.
func (s *AttackService) Get(ctx context.Context, id int64) (*ent.Attack, error) {
	a, err := s.client.Attack.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: attack %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load attack: %w", err)
	}
	return a, nil
}

// GetForAgent loads an attack with its resource edges for the agent-facing
// DTO, restricted to attacks whose campaign lives in one of the agent's
// projects — outside that scope the attack is reported not-found,
// indistinguishable from non-existence.
func (s *AttackService) GetForAgent(ctx context.Context, attackID, agentID int64) (*ent.Attack, error) {
	a, err := s.client.Attack.Query().
		Where(
			attack.IDEQ(attackID),
			attack.HasCampaignWith(
				campaign.HasProjectWith(project.HasAgentsWith(agent.IDEQ(agentID))),
			),
		).
		WithWordList().
		WithRuleList().
		WithMaskList().
		WithCampaign(func(q *ent.CampaignQuery) { q.WithHashList() }).
		Only(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: attack %d", ErrNotFound, attackID)
		}
		return nil, fmt.Errorf("failed to load attack: %w", err)
	}
	return a, nil
}

// resourcesReady reports whether every resource an attack references has a
// known line_count.
func (s *AttackService) resourcesReady(ctx context.Context, attk *ent.Attack) (bool, error) {
	var ids []int64
	withEdges, err := s.client.Attack.Query().
		Where(attack.IDEQ(attk.ID)).
		WithWordList().WithRuleList().WithMaskList().
		Only(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to load attack resources: %w", err)
	}
	if withEdges.Edges.WordList != nil {
		ids = append(ids, withEdges.Edges.WordList.ID)
	}
	if withEdges.Edges.RuleList != nil {
		ids = append(ids, withEdges.Edges.RuleList.ID)
	}
	if withEdges.Edges.MaskList != nil {
		ids = append(ids, withEdges.Edges.MaskList.ID)
	}
	if len(ids) == 0 {
		return true, nil
	}
	count, err := s.client.Resource.Query().
		Where(resource.IDIn(ids...), resource.LineCountNotNil()).
		Count(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to check resource readiness: %w", err)
	}
	return count == len(ids), nil
}

// ApplyEvent runs the attack transition table, persists the result, and
// executes every effect synchronously in dependency order: child-task
// cascades first (so the re-aggregated counts the campaign cascade reads
// are already correct), then the campaign cascade last.
func (s *AttackService) ApplyEvent(ctx context.Context, attk *ent.Attack, event statemachine.AttackEvent) (*ent.Attack, error) {
	hashList, err := s.hashListFor(ctx, attk.ID)
	if err != nil {
		return nil, err
	}

	siblings, err := s.tasks.SummarizeSiblings(ctx, attk.ID)
	if err != nil {
		return nil, err
	}

	result, err := statemachine.ApplyAttack(statemachine.AttackState(attk.State), event, statemachine.AttackContext{
		AllTasksTerminal:       siblings.AllTerminal,
		AllTasksExhausted:      siblings.AllExhausted,
		HashListUncrackedCount: hashList.UncrackedCount,
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStateConflict, err.Error())
	}

	for _, effect := range result.Effects {
		switch effect {
		case statemachine.EffectCompleteSiblingTasks:
			if err := s.tasks.CompleteAllNonTerminal(ctx, attk.ID); err != nil {
				return nil, err
			}
		case statemachine.EffectPauseChildTasks:
			if err := s.tasks.PauseAll(ctx, attk.ID); err != nil {
				return nil, err
			}
		case statemachine.EffectResumeChildTasks:
			if err := s.tasks.ResumeAll(ctx, attk.ID); err != nil {
				return nil, err
			}
		case statemachine.EffectDestroyChildTasks:
			if err := s.tasks.DestroyAll(ctx, attk.ID); err != nil {
				return nil, err
			}
		}
	}

	update := s.client.Attack.UpdateOneID(attk.ID).SetState(attack.State(result.To))
	now := time.Now()
	for _, effect := range result.Effects {
		switch effect {
		case statemachine.EffectSetStartTime:
			update = update.SetStartTime(now)
		case statemachine.EffectSetEndTime:
			update = update.SetEndTime(now)
		}
	}
	updated, err := update.Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist attack transition: %w", err)
	}

	campaignID, cidErr := s.campaignIDFor(ctx, updated.ID)
	if cidErr != nil {
		campaignID = 0
	}

	for _, effect := range result.Effects {
		if effect == statemachine.EffectBumpCampaignVersion && campaignID != 0 {
			// Touch the campaign so ordering/staleness views see the child
			// change.
			if err := s.client.Campaign.UpdateOneID(campaignID).SetUpdatedAt(now).Exec(ctx); err != nil {
				return updated, fmt.Errorf("failed to bump campaign version: %w", err)
			}
			break
		}
	}
	s.publisher.PublishAttackStatus(ctx, events.AttackStatusPayload{
		Type: events.TypeAttackStatus, AttackID: updated.ID, CampaignID: campaignID, Status: string(updated.State), Timestamp: now,
	})

	for _, effect := range result.Effects {
		if effect == statemachine.EffectCompleteSiblingAttacks {
			if err := s.completeSiblingAttacks(ctx, updated); err != nil {
				return updated, err
			}
		}
	}

	for _, effect := range result.Effects {
		if effect == statemachine.EffectCascadeToCampaign || effect == statemachine.EffectCompleteSiblingAttacks {
			if err := s.cascadeToCampaign(ctx, updated.ID); err != nil {
				return updated, err
			}
			break
		}
	}

	return updated, nil
}

// completeSiblingAttacks fires "complete" on every other non-terminal
// attack in the campaign once the hash list is fully cracked, best-effort: a sibling that can't legally complete
// (e.g. it never started) is left alone rather than failing the batch.
func (s *AttackService) completeSiblingAttacks(ctx context.Context, completed *ent.Attack) error {
	campaignID, err := s.campaignIDFor(ctx, completed.ID)
	if err != nil {
		return err
	}
	siblings, err := s.client.Attack.Query().
		Where(
			attack.HasCampaignWith(campaign.IDEQ(campaignID)),
			attack.IDNEQ(completed.ID),
			attack.StateNotIn(attack.StateCompleted, attack.StateFailed, attack.StateExhausted),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query sibling attacks: %w", err)
	}
	for _, sib := range siblings {
		if sib.State == attack.StatePending {
			continue
		}
		if _, err := s.ApplyEvent(ctx, sib, statemachine.AttackEventComplete); err != nil {
			continue
		}
	}
	return nil
}

// cascadeToCampaign re-derives the owning campaign's state from its
// current attack set
func (s *AttackService) cascadeToCampaign(ctx context.Context, attackID int64) error {
	campaignID, err := s.campaignIDFor(ctx, attackID)
	if err != nil {
		return err
	}
	return s.reevaluateCampaign(ctx, campaignID)
}

// reevaluateCampaign loads the campaign's attacks and hash list and applies
// DeriveCampaignState, persisting a transition when one applies.
func (s *AttackService) reevaluateCampaign(ctx context.Context, campaignID int64) error {
	camp, err := s.client.Campaign.Query().
		Where(campaign.IDEQ(campaignID)).
		WithHashList().
		Only(ctx)
	if err != nil {
		return fmt.Errorf("failed to load campaign: %w", err)
	}
	attacks, err := s.client.Attack.Query().
		Where(attack.HasCampaignWith(campaign.IDEQ(campaignID))).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query campaign attacks: %w", err)
	}
	if len(attacks) == 0 {
		return nil
	}
	allTerminal := true
	allExhausted := true
	for _, a := range attacks {
		st := statemachine.AttackState(a.State)
		if !st.Terminal() {
			allTerminal = false
		}
		if st != statemachine.AttackExhausted {
			allExhausted = false
		}
	}
	uncracked := 0
	if camp.Edges.HashList != nil {
		uncracked = camp.Edges.HashList.UncrackedCount
	}
	next, derived := statemachine.DeriveCampaignState(statemachine.CampaignState(camp.State), allTerminal, allExhausted, uncracked)
	if !derived {
		return nil
	}
	if err := s.client.Campaign.UpdateOneID(camp.ID).SetState(campaign.State(next)).Exec(ctx); err != nil {
		return fmt.Errorf("failed to persist derived campaign state: %w", err)
	}
	s.publisher.PublishCampaignStatus(ctx, events.CampaignStatusPayload{
		Type: events.TypeCampaignStatus, CampaignID: camp.ID, Status: string(next), Timestamp: time.Now(),
	})
	return nil
}

func (s *AttackService) campaignIDFor(ctx context.Context, attackID int64) (int64, error) {
	a, err := s.client.Attack.Query().
		Where(attack.IDEQ(attackID)).
		QueryCampaign().
		OnlyID(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to resolve owning campaign: %w", err)
	}
	return a, nil
}

func (s *AttackService) hashListFor(ctx context.Context, attackID int64) (*ent.HashList, error) {
	hl, err := s.client.Attack.Query().
		Where(attack.IDEQ(attackID)).
		QueryCampaign().
		QueryHashList().
		Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve hash list: %w", err)
	}
	return hl, nil
}

// Reorder applies a new position ordering to a set of attacks within one
// campaign, rejecting any ID not
// belonging to campaignID.
func (s *AttackService) Reorder(ctx context.Context, campaignID int64, orderedIDs []int64) error {
	count, err := s.client.Attack.Query().
		Where(attack.IDIn(orderedIDs...), attack.HasCampaignWith(campaign.IDEQ(campaignID))).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to validate reorder set: %w", err)
	}
	if count != len(orderedIDs) {
		return NewValidationError("attack_ids", "all attacks must belong to the campaign being reordered")
	}
	for i, id := range orderedIDs {
		if err := s.client.Attack.UpdateOneID(id).SetPosition(i).Exec(ctx); err != nil {
			return fmt.Errorf("failed to update attack position: %w", err)
		}
	}
	return nil
}
