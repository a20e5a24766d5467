package services

import (
	"context"
	"fmt"
	"time"

	"github.com/cipherswarm/cipherswarm/ent"
	"github.com/cipherswarm/cipherswarm/ent/schema"
	"github.com/cipherswarm/cipherswarm/pkg/events"
	"github.com/cipherswarm/cipherswarm/pkg/models"
	"github.com/cipherswarm/cipherswarm/pkg/statemachine"
)

// ProgressService ingests progress: it accepts a HashcatStatus frame from
// the agent currently leasing a task, enforces the lease-match guard,
// appends the frame, renews the lease, and trims history to the configured
// retention.
type ProgressService struct {
	client    *ent.Client
	tasks     *TaskService
	publisher events.Publisher
}

// NewProgressService creates a new ProgressService.
func NewProgressService(client *ent.Client, tasks *TaskService, publisher events.Publisher) *ProgressService {
	if publisher == nil {
		publisher = events.NewLogPublisher(nil)
	}
	return &ProgressService{client: client, tasks: tasks, publisher: publisher}
}

// ErrLeaseMismatch is returned when the submitting agent does not hold the
// task's current lease.
var ErrLeaseMismatch = fmt.Errorf("%w: submitting agent does not hold this task's lease", ErrStateConflict)

// ProgressSummary is the view derived from one accepted frame:
// a bounded completion percentage and hashcat's finish estimate, nulled for
// mask-list attacks where that estimate is unreliable.
type ProgressSummary struct {
	Percentage      float64
	EstimatedFinish *time.Time
}

// ProgressPercentage derives done/total as a percentage bounded [0, 100].
func ProgressPercentage(done, total int64) float64 {
	if total <= 0 || done <= 0 {
		return 0
	}
	pct := float64(done) / float64(total) * 100
	if pct > 100 {
		return 100
	}
	return pct
}

// EstimatedFinish passes through hashcat's estimated_stop except for mask
// attacks over an explicit mask list, whose keyspace shape makes the
// estimate unreliable: those always derive nil.
func EstimatedFinish(attackMode string, hasMaskList bool, estimatedStop *time.Time) *time.Time {
	if attackMode == "mask" && hasMaskList {
		return nil
	}
	return estimatedStop
}

// Submit validates the lease, stores the status frame, renews the lease,
// and fires the task's accept_status event, returning the derived progress
// summary.
func (p *ProgressService) Submit(ctx context.Context, t *ent.Task, agentID int64, in models.HashcatStatusDTO) (*ProgressSummary, error) {
	if t.Edges.Agent == nil || t.Edges.Agent.ID != agentID {
		p.publisher.PublishStatusMismatch(ctx, events.StatusMismatchPayload{
			Type: events.TypeStatusMismatch, TaskID: t.ID, AgentID: agentID, Timestamp: time.Now(),
		})
		return nil, ErrLeaseMismatch
	}

	devices := make([]schema.DeviceStatus, 0, len(in.Devices))
	for _, d := range in.Devices {
		devices = append(devices, schema.DeviceStatus{
			ID: d.ID, Name: d.Name, Type: d.Type, Speed: d.Speed,
			Utilization: d.Utilization, Temperature: d.Temperature,
		})
	}

	create := p.client.HashcatStatus.Create().
		SetTask(t).
		SetSession(in.Session).
		SetStatusCode(in.StatusCode).
		SetTarget(in.Target).
		SetProgressDone(in.Progress[0]).
		SetProgressTotal(in.Progress[1]).
		SetRestorePoint(in.RestorePoint).
		SetRecoveredHashes(in.RecoveredHashes).
		SetRecoveredSalts(in.RecoveredSalts).
		SetRejected(in.Rejected).
		SetDevices(devices).
		SetHashcatGuess(in.HashcatGuess)
	if in.TimeStart != nil {
		create = create.SetTimeStart(*in.TimeStart)
	}
	if in.EstimatedStop != nil {
		create = create.SetEstimatedStop(*in.EstimatedStop)
	}

	if _, err := create.Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to store status frame: %w", err)
	}

	if err := p.tasks.TrimStatusHistory(ctx, t.ID); err != nil {
		return nil, err
	}

	if _, err := p.tasks.ApplyEvent(ctx, t, TaskTransitionInput{Event: statemachine.TaskEventAcceptStatus}); err != nil {
		return nil, err
	}

	attk, err := p.client.Task.QueryAttack(t).WithMaskList().Only(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve owning attack: %w", err)
	}

	return &ProgressSummary{
		Percentage:      ProgressPercentage(in.Progress[0], in.Progress[1]),
		EstimatedFinish: EstimatedFinish(string(attk.AttackMode), attk.Edges.MaskList != nil, in.EstimatedStop),
	}, nil
}
