package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task state values.
const (
	TaskStatePending   = "pending"
	TaskStateRunning   = "running"
	TaskStatePaused    = "paused"
	TaskStateCompleted = "completed"
	TaskStateExhausted = "exhausted"
	TaskStateFailed    = "failed"
)

// Task holds the schema definition for the Task entity.
// A Task is one leased keyspace slice; state, agent_id and activity_timestamp
// together constitute the lease.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.Enum("state").
			Values(TaskStatePending, TaskStateRunning, TaskStatePaused, TaskStateCompleted, TaskStateExhausted, TaskStateFailed).
			Default(TaskStatePending),
		field.Int64("keyspace_offset").
			Min(0),
		field.Int64("keyspace_limit").
			Min(0),
		field.Time("start_date").
			Optional().
			Nillable(),
		field.Time("activity_timestamp").
			Default(time.Now).
			UpdateDefault(time.Now),
		// stale marks a task resumed from pause so the next assignment
		// refetches current attack configuration before dispatch.
		field.Bool("stale").
			Default(false),
		// cancel_requested is the server-side flag an agent observes on its
		// next status/heartbeat for campaign/attack-level cancellation.
		field.Bool("cancel_requested").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("attack", Attack.Type).
			Ref("tasks").
			Unique().
			Required().
			Immutable(),
		edge.From("agent", Agent.Type).
			Ref("tasks").
			Unique(),
		edge.To("statuses", HashcatStatus.Type).
			StorageKey(edge.Column("task_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("crack_results", CrackResult.Type).
			StorageKey(edge.Column("task_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("errors", AgentError.Type).
			StorageKey(edge.Column("task_id")).
			Annotations(entsql.OnDelete(entsql.SetNull)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		// Lease-sweep scan: state='running' AND activity_timestamp < cutoff.
		index.Fields("state", "activity_timestamp"),
		index.Fields("keyspace_offset"),
	}
}
