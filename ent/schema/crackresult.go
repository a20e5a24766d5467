package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CrackResult holds the schema definition for the CrackResult entity.
// Records an observation of a cracked hash against the task that reported
// it; deduplicated against the owning HashItem.
type CrackResult struct {
	ent.Schema
}

// Fields of the CrackResult.
func (CrackResult) Fields() []ent.Field {
	return []ent.Field{
		field.String("hash_value").
			NotEmpty().
			Immutable(),
		field.String("plaintext").
			Immutable(),
		field.Time("cracked_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the CrackResult.
func (CrackResult) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("crack_results").
			Unique().
			Required().
			Immutable(),
		edge.From("hash_item", HashItem.Type).
			Ref("crack_results").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the CrackResult.
func (CrackResult) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hash_value"),
		// One observation row per (task, hash item); duplicate submissions
		// within a task are absorbed, not accumulated.
		index.Edges("task", "hash_item").Unique(),
	}
}
