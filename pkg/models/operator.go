package models

import "time"

// CreateProjectRequest is the body of POST /api/v1/operator/projects.
type CreateProjectRequest struct {
	Name string `json:"name"`
}

// ProjectResponse is returned by the project endpoints.
type ProjectResponse struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

// InvitationResponse carries the one-time credential an operator hands a
// new agent for POST /client/agents bootstrap.
type InvitationResponse struct {
	ProjectID       int64  `json:"project_id"`
	InvitationToken string `json:"invitation_token"`
}

// CreateHashListRequest is the body of POST /api/v1/operator/hash_lists.
type CreateHashListRequest struct {
	ProjectID int64              `json:"project_id"`
	Name      string             `json:"name"`
	HashMode  int                `json:"hash_mode"`
	Hashes    []HashListItemBody `json:"hashes"`
}

// HashListItemBody is one target hash inside CreateHashListRequest.
type HashListItemBody struct {
	Hash     string `json:"hash"`
	Metadata string `json:"metadata,omitempty"`
}

// HashListResponse is returned by the hash list endpoints.
type HashListResponse struct {
	ID             int64  `json:"id"`
	ProjectID      int64  `json:"project_id"`
	Name           string `json:"name"`
	HashMode       int    `json:"hash_mode"`
	UncrackedCount int    `json:"uncracked_count"`
}

// CreateCampaignRequest is the body of POST /api/v1/operator/campaigns.
type CreateCampaignRequest struct {
	ProjectID  int64  `json:"project_id"`
	Name       string `json:"name"`
	Priority   string `json:"priority,omitempty"`
	HashListID int64  `json:"hash_list_id"`
}

// CampaignResponse is returned by the campaign CRUD endpoints.
type CampaignResponse struct {
	ID         int64     `json:"id"`
	ProjectID  int64     `json:"project_id"`
	Name       string    `json:"name"`
	Priority   string    `json:"priority"`
	State      string    `json:"state"`
	HashListID int64     `json:"hash_list_id"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// CreateAttackRequest is the body of POST /api/v1/operator/campaigns/:id/attacks.
type CreateAttackRequest struct {
	AttackMode              string `json:"attack_mode"`
	Position                *int   `json:"position,omitempty"`
	Mask                    string `json:"mask,omitempty"`
	WordListID              *int64 `json:"word_list_id,omitempty"`
	RuleListID              *int64 `json:"rule_list_id,omitempty"`
	MaskListID              *int64 `json:"mask_list_id,omitempty"`
	CustomCharset1          string `json:"custom_charset_1,omitempty"`
	CustomCharset2          string `json:"custom_charset_2,omitempty"`
	CustomCharset3          string `json:"custom_charset_3,omitempty"`
	CustomCharset4          string `json:"custom_charset_4,omitempty"`
	IncrementMode           bool   `json:"increment_mode,omitempty"`
	IncrementMinimum        int    `json:"increment_minimum,omitempty"`
	IncrementMaximum        int    `json:"increment_maximum,omitempty"`
	WorkloadProfile         int    `json:"workload_profile,omitempty"`
	Optimized               bool   `json:"optimized,omitempty"`
	DisableMarkov           bool   `json:"disable_markov,omitempty"`
	ClassicMarkov           bool   `json:"classic_markov,omitempty"`
	MarkovThreshold         int    `json:"markov_threshold,omitempty"`
	SlowCandidateGenerators bool   `json:"slow_candidate_generators,omitempty"`
}

// AttackResponse is returned by the attack CRUD endpoints.
type AttackResponse struct {
	ID         int64  `json:"id"`
	CampaignID int64  `json:"campaign_id"`
	Position   int    `json:"position"`
	AttackMode string `json:"attack_mode"`
	State      string `json:"state"`
}

// ReorderAttacksRequest is the body of POST /api/v1/operator/campaigns/:id/attacks/reorder.
type ReorderAttacksRequest struct {
	AttackIDsInOrder []int64 `json:"attack_ids_in_order"`
}

// ResourceUploadHandleRequest is the body of POST /api/v1/operator/resources.
type ResourceUploadHandleRequest struct {
	Name      string  `json:"name"`
	Kind      string  `json:"kind"`
	Sensitive bool    `json:"sensitive,omitempty"`
	ProjectIDs []int64 `json:"project_ids"`
}

// ResourceUploadHandleResponse returns the opaque handle the caller uploads to.
type ResourceUploadHandleResponse struct {
	ResourceID int64  `json:"resource_id"`
	UploadURL  string `json:"upload_url"`
	FileHandle string `json:"file_handle"`
}

// AgentAdminRequest is the body of agent enable/disable operator actions.
type AgentAdminRequest struct {
	State string `json:"state"`
}

// SystemHealthResponse is returned by GET /api/v1/operator/health.
type SystemHealthResponse struct {
	Status string                 `json:"status"`
	Checks map[string]HealthCheck `json:"checks"`
}

// HealthCheck represents the status of a single health check component.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}
