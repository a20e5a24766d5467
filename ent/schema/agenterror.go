package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AgentError severities.
const (
	AgentErrorSeverityInfo    = "info"
	AgentErrorSeverityWarning = "warning"
	AgentErrorSeverityFatal   = "fatal"
)

// AgentError holds the schema definition for the AgentError entity.
type AgentError struct {
	ent.Schema
}

// Fields of the AgentError.
func (AgentError) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("severity").
			Values(AgentErrorSeverityInfo, AgentErrorSeverityWarning, AgentErrorSeverityFatal),
		field.String("message").
			NotEmpty(),
		field.String("context_json").
			Optional().
			Default("{}"),
		field.Time("recorded_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the AgentError.
func (AgentError) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("agent_errors").
			Unique().
			Required().
			Immutable(),
		edge.From("task", Task.Type).
			Ref("errors").
			Unique(),
	}
}

// Indexes of the AgentError.
func (AgentError) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("severity", "recorded_at"),
	}
}
