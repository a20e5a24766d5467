// Package models holds the wire-contract DTOs for the Agent API and the
// request/response shapes for the operator API, separate from the
// ent-generated persistence types.
package models

import "time"

// AttackResourceFile is the download descriptor for a word/rule/mask list
// referenced by an Attack DTO.
type AttackResourceFile struct {
	ID          int64  `json:"id"`
	DownloadURL string `json:"download_url"`
	Checksum    string `json:"checksum"`
	FileName    string `json:"file_name"`
}

// AttackDTO is the bit-exact wire contract for GET /client/attacks/{id}.
type AttackDTO struct {
	ID                      int64               `json:"id"`
	AttackModeHashcat       int                 `json:"attack_mode_hashcat"`
	AttackMode              string              `json:"attack_mode"`
	Mask                    string              `json:"mask"`
	IncrementMode           bool                `json:"increment_mode"`
	IncrementMinimum        int                 `json:"increment_minimum"`
	IncrementMaximum        int                 `json:"increment_maximum"`
	Optimized               bool                `json:"optimized"`
	SlowCandidateGenerators bool                `json:"slow_candidate_generators"`
	WorkloadProfile         int                 `json:"workload_profile"`
	DisableMarkov           bool                `json:"disable_markov"`
	ClassicMarkov           bool                `json:"classic_markov"`
	MarkovThreshold         int                 `json:"markov_threshold"`
	LeftRule                string              `json:"left_rule"`
	RightRule               string              `json:"right_rule"`
	CustomCharset1          string              `json:"custom_charset_1"`
	CustomCharset2          string              `json:"custom_charset_2"`
	CustomCharset3          string              `json:"custom_charset_3"`
	CustomCharset4          string              `json:"custom_charset_4"`
	HashListID              int64               `json:"hash_list_id"`
	HashMode                int                 `json:"hash_mode"`
	WordList                *AttackResourceFile `json:"word_list,omitempty"`
	RuleList                *AttackResourceFile `json:"rule_list,omitempty"`
	MaskList                *AttackResourceFile `json:"mask_list,omitempty"`
	HashListURL             string              `json:"hash_list_url"`
	HashListChecksum        string              `json:"hash_list_checksum"`
	URL                     string              `json:"url"`
}

// AttackModeHashcat maps the string attack_mode to hashcat's numeric mode.
func AttackModeHashcat(mode string) int {
	switch mode {
	case "dictionary":
		return 0
	case "hybrid_dictionary":
		return 6
	case "hybrid_mask":
		return 7
	case "mask":
		return 3
	default:
		return -1
	}
}

// TaskDTO is the bit-exact wire contract for GET /client/tasks/next.
type TaskDTO struct {
	ID        int64     `json:"id"`
	AttackID  int64     `json:"attack_id"`
	StartDate time.Time `json:"start_date"`
	Status    string    `json:"status"`
	Skip      *int64    `json:"skip,omitempty"`
	Limit     *int64    `json:"limit,omitempty"`
}

// NextTaskResponse wraps the three possible shapes of GET /client/tasks/next:
// a Task, {status: benchmark_required}, or {status: no_work}.
type NextTaskResponse struct {
	Task   *TaskDTO `json:"task,omitempty"`
	Status string   `json:"status,omitempty"`
}

const (
	NextTaskStatusBenchmarkRequired = "benchmark_required"
	NextTaskStatusNoWork            = "no_work"
)

// DeviceStatusDTO is the per-device entry inside a HashcatStatus frame.
type DeviceStatusDTO struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	Type        string `json:"type"`
	Speed       int64  `json:"speed"`
	Utilization int    `json:"utilization"`
	Temperature int    `json:"temperature"`
}

// HashcatStatusDTO is the bit-exact wire contract for POST /client/tasks/{id}/status.
type HashcatStatusDTO struct {
	Session         string            `json:"session"`
	StatusCode      int               `json:"status"`
	Target          string            `json:"target"`
	Progress        [2]int64          `json:"progress"`
	RestorePoint    int64             `json:"restore_point"`
	RecoveredHashes []string          `json:"recovered_hashes"`
	RecoveredSalts  []string          `json:"recovered_salts"`
	Rejected        int64             `json:"rejected"`
	Devices         []DeviceStatusDTO `json:"devices"`
	TimeStart       *time.Time        `json:"time_start,omitempty"`
	EstimatedStop   *time.Time        `json:"estimated_stop,omitempty"`
	HashcatGuess    string            `json:"hashcat_guess"`
}

// CrackEntry is one element of the POST /client/tasks/{id}/cracks batch.
type CrackEntry struct {
	Timestamp  time.Time `json:"timestamp"`
	Hash       string    `json:"hash"`
	PlainText  string    `json:"plain_text"`
}

// AgentErrorReport is the body of POST /client/tasks/{id}/error.
type AgentErrorReport struct {
	Severity string `json:"severity"`
	Message  string `json:"message"`
	TaskID   *int64 `json:"task_id,omitempty"`
	Context  string `json:"context,omitempty"`
}

// HashcatBenchmark is one element of the POST /client/agents/{id}/benchmark batch.
type HashcatBenchmark struct {
	HashType   int     `json:"hash_type"`
	Device     int     `json:"device"`
	HashSpeed  float64 `json:"hash_speed"`
	RuntimeMs  int64   `json:"runtime_ms"`
}

// RegisterAgentRequest is the body of POST /client/agents.
type RegisterAgentRequest struct {
	InvitationToken string           `json:"invitation_token"`
	HostName        string           `json:"host_name"`
	ClientSignature string           `json:"client_signature"`
	OperatingSystem string           `json:"operating_system"`
	Devices         []map[string]any `json:"devices"`
}

// RegisterAgentResponse is the response of POST /client/agents.
type RegisterAgentResponse struct {
	AgentID  int64   `json:"agent_id"`
	Token    string  `json:"token"`
	Projects []int64 `json:"projects"`
}

// AgentDTO is the response of GET /client/agents/{id}.
type AgentDTO struct {
	ID              int64            `json:"id"`
	HostName        string           `json:"host_name"`
	State           string           `json:"state"`
	AdvancedConfig  map[string]any   `json:"advanced_config"`
	Devices         []map[string]any `json:"devices"`
	Projects        []int64          `json:"projects"`
}

// HeartbeatRequest is the body of POST /client/agents/{id}/heartbeat.
type HeartbeatRequest struct {
	State *string `json:"state,omitempty"`
}

// HeartbeatResponse is the response of POST /client/agents/{id}/heartbeat.
type HeartbeatResponse struct {
	Command        string `json:"command"`
	BackoffSeconds *int   `json:"backoff_seconds,omitempty"`
}

const (
	HeartbeatCommandContinue = "continue"
	HeartbeatCommandPause    = "pause"
	HeartbeatCommandStop     = "stop"
	HeartbeatCommandBackoff  = "backoff"
)
