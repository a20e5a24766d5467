package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// CampaignService owns Campaign CRUD and the operator-driven half of the
// campaign state machine (activate/archive/unarchive); derived completion
// lives in AttackService.cascadeToCampaign, fired from the task/attack
// cascade rather than called directly here.
type CampaignService struct {
	client    *ent.Client
	attacks   *AttackService
	publisher events.Publisher
}

// NewCampaignService creates a new CampaignService.
func NewCampaignService(client *ent.Client, attacks *AttackService, publisher events.Publisher) *CampaignService {
	if publisher == nil {
		publisher = events.NewLogPublisher(nil)
	}
	return &CampaignService{client: client, attacks: attacks, publisher: publisher}
}

// CreateCampaignInput bundles the fields accepted from the operator API.
type CreateCampaignInput struct {
	ProjectID  int64
	HashListID int64
	Name       string
	Priority   string
}

// Create inserts a new draft Campaign.
func (s *CampaignService) Create(ctx context.Context, in CreateCampaignInput) (*ent.Campaign, error) {
	if in.Name == "" {
		return nil, NewValidationError("name", "name is required")
	}
	priority := in.Priority
	if priority == "" {
		priority = string(campaign.PriorityRoutine)
	}
	created, err := s.client.Campaign.Create().
		SetProjectID(in.ProjectID).
		SetHashListID(in.HashListID).
		SetName(in.Name).
		SetPriority(campaign.Priority(priority)).
		Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: campaign referencing project/hash list", ErrAlreadyExists)
		}
		return nil, fmt.Errorf("failed to create campaign: %w", err)
	}
	return created, nil
}

// Get loads a campaign by ID, mapping ent's not-found into the service
// layer's ErrNotFound.
func (s *CampaignService) Get(ctx context.Context, id int64) (*ent.Campaign, error) {
	c, err := s.client.Campaign.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: campaign %d", ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load campaign: %w", err)
	}
	return c, nil
}

// ApplyEvent runs the operator-driven campaign transition table and
// persists the result. Archive/unarchive further cascade to the campaign's
// attacks: archiving pauses every non-terminal attack (and transitively its
// tasks); unarchiving resumes them.
func (s *CampaignService) ApplyEvent(ctx context.Context, c *ent.Campaign, event statemachine.CampaignEvent) (*ent.Campaign, error) {
	next, err := statemachine.ApplyCampaign(statemachine.CampaignState(c.State), event)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrStateConflict, err.Error())
	}

	updated, err := s.client.Campaign.UpdateOneID(c.ID).
		SetState(campaign.State(next)).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to persist campaign transition: %w", err)
	}

	if event == statemachine.CampaignEventArchive {
		if err := s.pauseAllAttacks(ctx, updated.ID); err != nil {
			return updated, err
		}
	}
	if event == statemachine.CampaignEventUnarchive {
		if err := s.resumeAllAttacks(ctx, updated.ID); err != nil {
			return updated, err
		}
	}

	s.publisher.PublishCampaignStatus(ctx, events.CampaignStatusPayload{
		Type: events.TypeCampaignStatus, CampaignID: updated.ID, Status: string(updated.State), Timestamp: time.Now(),
	})
	return updated, nil
}

// pauseAllAttacks fires "pause" on every non-terminal attack belonging to
// the campaign, best-effort.
func (s *CampaignService) pauseAllAttacks(ctx context.Context, campaignID int64) error {
	attacks, err := s.client.Attack.Query().
		Where(
			attack.HasCampaignWith(campaign.IDEQ(campaignID)),
			attack.StateNotIn(attack.StateCompleted, attack.StateFailed, attack.StateExhausted, attack.StatePaused),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query campaign attacks: %w", err)
	}
	for _, a := range attacks {
		if _, err := s.attacks.ApplyEvent(ctx, a, statemachine.AttackEventPause); err != nil {
			continue
		}
	}
	return nil
}

// resumeAllAttacks fires "resume" on every paused attack in the campaign.
func (s *CampaignService) resumeAllAttacks(ctx context.Context, campaignID int64) error {
	attacks, err := s.client.Attack.Query().
		Where(
			attack.HasCampaignWith(campaign.IDEQ(campaignID)),
			attack.StateEQ(attack.StatePaused),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query campaign attacks: %w", err)
	}
	for _, a := range attacks {
		if _, err := s.attacks.ApplyEvent(ctx, a, statemachine.AttackEventResume); err != nil {
			continue
		}
	}
	return nil
}

// Pause fires "pause" on every non-terminal attack of an active
// campaign. The campaign itself stays active — pausing is an
// attack/task-level condition, and the cascade is restartable and
// idempotent.
func (s *CampaignService) Pause(ctx context.Context, c *ent.Campaign) error {
	if c.State != campaign.StateActive {
		return NewStateConflictError("campaign", string(c.State), "pause")
	}
	return s.pauseAllAttacks(ctx, c.ID)
}

// Resume fires "resume" on every paused attack of an active campaign.
func (s *CampaignService) Resume(ctx context.Context, c *ent.Campaign) error {
	if c.State != campaign.StateActive {
		return NewStateConflictError("campaign", string(c.State), "resume")
	}
	return s.resumeAllAttacks(ctx, c.ID)
}

// Stop cancels every non-terminal attack of the campaign, cascading the
// cancel to child tasks.
func (s *CampaignService) Stop(ctx context.Context, c *ent.Campaign) error {
	if c.State != campaign.StateActive {
		return NewStateConflictError("campaign", string(c.State), "stop")
	}
	attacks, err := s.client.Attack.Query().
		Where(
			attack.HasCampaignWith(campaign.IDEQ(c.ID)),
			attack.StateNotIn(attack.StateCompleted, attack.StateFailed, attack.StateExhausted),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query campaign attacks: %w", err)
	}
	for _, a := range attacks {
		if _, err := s.attacks.ApplyEvent(ctx, a, statemachine.AttackEventCancel); err != nil {
			continue
		}
	}
	return nil
}

// Reset re-arms every terminal attack of the campaign for another run after
// operator edits.
func (s *CampaignService) Reset(ctx context.Context, c *ent.Campaign) error {
	attacks, err := s.client.Attack.Query().
		Where(
			attack.HasCampaignWith(campaign.IDEQ(c.ID)),
			attack.StateIn(attack.StateCompleted, attack.StateFailed, attack.StateExhausted),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query campaign attacks: %w", err)
	}
	for _, a := range attacks {
		if _, err := s.attacks.ApplyEvent(ctx, a, statemachine.AttackEventReset); err != nil {
			continue
		}
	}
	return nil
}

// List returns campaigns visible to projectID, ordered by priority desc
// then created_at asc.
func (s *CampaignService) List(ctx context.Context, projectID int64) ([]*ent.Campaign, error) {
	campaigns, err := s.client.Campaign.Query().
		Where(campaign.HasProjectWith(project.IDEQ(projectID))).
		Order(ent.Desc(campaign.FieldPriority), ent.Asc(campaign.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list campaigns for project: %w", err)
	}
	return campaigns, nil
}
