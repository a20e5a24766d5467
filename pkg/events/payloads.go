// Package events defines the typed event payloads the core emits, and a
// fire-and-forget publish-side contract for delivering them. Real-time UI
// push (fanout to browsers) is a delivery concern this package stops
// short of: only the publish-side interface lives here.
package events

import "time"

// Event type strings.
const (
	TypeCampaignStatus = "campaign.status"
	TypeAttackStatus   = "attack.status"
	TypeTaskStatus     = "task.status"
	TypeCrackObserved  = "crack_observed"
	TypeResourceReady  = "resource_ready"
	TypeStatusMismatch = "status_mismatch"
)

// CampaignStatusPayload is published on every campaign state transition.
type CampaignStatusPayload struct {
	Type       string    `json:"type"`
	CampaignID int64     `json:"campaign_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// AttackStatusPayload is published on every attack state transition.
type AttackStatusPayload struct {
	Type       string    `json:"type"`
	AttackID   int64     `json:"attack_id"`
	CampaignID int64     `json:"campaign_id"`
	Status     string    `json:"status"`
	Timestamp  time.Time `json:"timestamp"`
}

// TaskStatusPayload is published on every task state transition.
type TaskStatusPayload struct {
	Type      string    `json:"type"`
	TaskID    int64     `json:"task_id"`
	AttackID  int64     `json:"attack_id"`
	AgentID   *int64    `json:"agent_id,omitempty"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// CrackObservedPayload is published by the Result Ingestor for every
// newly-cracked hash.
type CrackObservedPayload struct {
	Type         string    `json:"type"`
	TaskID       int64     `json:"task_id"`
	HashListID   int64     `json:"hash_list_id"`
	HashValue    string    `json:"hash_value"`
	UncrackedLeft int      `json:"uncracked_left"`
	Timestamp    time.Time `json:"timestamp"`
}

// ResourceReadyPayload is published by the resource readiness poller
// when a previously-NULL line_count becomes known.
type ResourceReadyPayload struct {
	Type       string `json:"type"`
	ResourceID int64  `json:"resource_id"`
	LineCount  int64  `json:"line_count"`
}

// StatusMismatchPayload is published when a status/crack frame arrives for
// a task not currently leased to the submitting agent.
type StatusMismatchPayload struct {
	Type      string    `json:"type"`
	TaskID    int64     `json:"task_id"`
	AgentID   int64     `json:"agent_id"`
	Timestamp time.Time `json:"timestamp"`
}
