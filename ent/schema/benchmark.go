package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Benchmark holds the schema definition for the Benchmark entity.
// One per (agent, hash_type, device_index); the matcher consults the most
// recent row within the configured freshness window.
type Benchmark struct {
	ent.Schema
}

// Fields of the Benchmark.
func (Benchmark) Fields() []ent.Field {
	return []ent.Field{
		field.Int("hash_type"),
		field.Int("device_index").
			Min(0),
		field.Float("hash_speed"),
		field.Int64("runtime_ms"),
		field.Time("measured_at").
			Default(time.Now),
	}
}

// Edges of the Benchmark.
func (Benchmark) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("agent", Agent.Type).
			Ref("benchmarks").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the Benchmark.
func (Benchmark) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("agent").Fields("hash_type", "device_index").Unique(),
	}
}
