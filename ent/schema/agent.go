package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent state values.
const (
	AgentStatePending = "pending"
	AgentStateActive  = "active"
	AgentStateStopped = "stopped"
	AgentStateError   = "error"
)

// Agent holds the schema definition for the Agent entity.
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("host_name").
			NotEmpty(),
		field.String("client_signature").
			NotEmpty(),
		field.String("operating_system").
			Default(""),
		// devices is the raw device inventory reported at registration
		// ({id, name, type} per GPU/CPU); re-reported on every benchmark.
		field.JSON("devices", []map[string]any{}).
			Optional(),
		field.String("token").
			NotEmpty().
			Unique().
			Sensitive(),
		field.Enum("state").
			Values(AgentStatePending, AgentStateActive, AgentStateStopped, AgentStateError).
			Default(AgentStatePending),
		field.Time("last_seen_at").
			Optional().
			Nillable(),
		field.String("last_ipaddress").
			Optional().
			Default(""),
		field.JSON("advanced_config", map[string]any{}).
			Optional(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Agent.
func (Agent) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("projects", Project.Type).
			Ref("agents"),
		edge.To("tasks", Task.Type).
			StorageKey(edge.Column("agent_id")).
			Annotations(entsql.OnDelete(entsql.SetNull)),
		edge.To("benchmarks", Benchmark.Type).
			StorageKey(edge.Column("agent_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("agent_errors", AgentError.Type).
			StorageKey(edge.Column("agent_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("host_name", "client_signature").Unique(),
	}
}
