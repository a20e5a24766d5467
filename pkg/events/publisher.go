package events

import (
	"context"
	"log/slog"
)

// Publisher is the fire-and-forget broadcast hook: a
// uniform, failure-isolating event emission point with no guaranteed
// delivery. How events reach browsers (WebSocket fanout, SSE, a message
// bus) is outside this package's concern — callers inject whatever
// Publisher implementation wires that up; NoopPublisher below is the
// default when nothing is configured.
type Publisher interface {
	PublishCampaignStatus(ctx context.Context, payload CampaignStatusPayload)
	PublishAttackStatus(ctx context.Context, payload AttackStatusPayload)
	PublishTaskStatus(ctx context.Context, payload TaskStatusPayload)
	PublishCrackObserved(ctx context.Context, payload CrackObservedPayload)
	PublishResourceReady(ctx context.Context, payload ResourceReadyPayload)
	PublishStatusMismatch(ctx context.Context, payload StatusMismatchPayload)
}

// devMode, when true, re-raises publish failures as panics instead of
// swallowing them, so broadcast bugs surface early in development.
var devMode = false

// SetDevMode toggles the panic-on-broadcast-error behavior. Called once at
// boot from CIPHERSWARM_ENV=development.
func SetDevMode(enabled bool) { devMode = enabled }

// LogPublisher is the default Publisher: it logs every event via slog and
// never returns an error to the caller, since broadcast failures are
// explicitly best-effort — real delivery is
// a UI-layer concern not specified here.
type LogPublisher struct {
	Logger *slog.Logger
}

// NewLogPublisher creates a LogPublisher using the given logger, or
// slog.Default() if nil.
func NewLogPublisher(logger *slog.Logger) *LogPublisher {
	if logger == nil {
		logger = slog.Default()
	}
	return &LogPublisher{Logger: logger}
}

func (p *LogPublisher) recover(event string) {
	if r := recover(); r != nil {
		if devMode {
			panic(r)
		}
		p.Logger.Error("event publish failed", "event", event, "panic", r)
	}
}

func (p *LogPublisher) PublishCampaignStatus(ctx context.Context, payload CampaignStatusPayload) {
	defer p.recover(TypeCampaignStatus)
	p.Logger.Info("event", "type", payload.Type, "campaign_id", payload.CampaignID, "status", payload.Status)
}

func (p *LogPublisher) PublishAttackStatus(ctx context.Context, payload AttackStatusPayload) {
	defer p.recover(TypeAttackStatus)
	p.Logger.Info("event", "type", payload.Type, "attack_id", payload.AttackID, "status", payload.Status)
}

func (p *LogPublisher) PublishTaskStatus(ctx context.Context, payload TaskStatusPayload) {
	defer p.recover(TypeTaskStatus)
	p.Logger.Info("event", "type", payload.Type, "task_id", payload.TaskID, "status", payload.Status)
}

func (p *LogPublisher) PublishCrackObserved(ctx context.Context, payload CrackObservedPayload) {
	defer p.recover(TypeCrackObserved)
	p.Logger.Info("event", "type", payload.Type, "task_id", payload.TaskID, "hash_list_id", payload.HashListID)
}

func (p *LogPublisher) PublishResourceReady(ctx context.Context, payload ResourceReadyPayload) {
	defer p.recover(TypeResourceReady)
	p.Logger.Info("event", "type", payload.Type, "resource_id", payload.ResourceID, "line_count", payload.LineCount)
}

func (p *LogPublisher) PublishStatusMismatch(ctx context.Context, payload StatusMismatchPayload) {
	defer p.recover(TypeStatusMismatch)
	p.Logger.Warn("event", "type", payload.Type, "task_id", payload.TaskID, "agent_id", payload.AgentID)
}
