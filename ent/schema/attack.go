package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Attack mode values.
const (
	AttackModeDictionary       = "dictionary"
	AttackModeMask             = "mask"
	AttackModeHybridDictionary = "hybrid_dictionary"
	AttackModeHybridMask       = "hybrid_mask"
)

// Attack state values, mirroring Task states for the cascade.
const (
	AttackStatePending   = "pending"
	AttackStateRunning   = "running"
	AttackStatePaused    = "paused"
	AttackStateCompleted = "completed"
	AttackStateExhausted = "exhausted"
	AttackStateFailed    = "failed"
)

// Attack holds the schema definition for the Attack entity.
type Attack struct {
	ent.Schema
}

// Fields of the Attack.
func (Attack) Fields() []ent.Field {
	return []ent.Field{
		field.Int("position").
			Min(0),
		field.Enum("attack_mode").
			Values(AttackModeDictionary, AttackModeMask, AttackModeHybridDictionary, AttackModeHybridMask),
		field.Enum("state").
			Values(AttackStatePending, AttackStateRunning, AttackStatePaused, AttackStateCompleted, AttackStateExhausted, AttackStateFailed).
			Default(AttackStatePending),

		field.String("mask").
			Optional().
			Default(""),
		field.String("custom_charset_1").Optional().Default(""),
		field.String("custom_charset_2").Optional().Default(""),
		field.String("custom_charset_3").Optional().Default(""),
		field.String("custom_charset_4").Optional().Default(""),

		field.Bool("increment_mode").
			Default(false),
		field.Int("increment_minimum").
			Default(0),
		field.Int("increment_maximum").
			Default(0).
			Max(62),

		field.Int("workload_profile").
			Default(3).
			Min(1).
			Max(4),
		field.Bool("optimized").
			Default(false),
		field.Bool("disable_markov").
			Default(false),
		field.Bool("classic_markov").
			Default(false),
		field.Int("markov_threshold").
			Default(0),
		field.Bool("slow_candidate_generators").
			Default(false),
		field.String("left_rule").Optional().Default(""),
		field.String("right_rule").Optional().Default(""),

		// total_keyspace is computed by the keyspace planner once resources
		// are ready; nil means "not yet computed" (resources not ready or
		// never planned).
		field.Int64("total_keyspace").
			Optional().
			Nillable(),

		field.Time("start_time").
			Optional().
			Nillable(),
		field.Time("end_time").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Attack.
func (Attack) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("campaign", Campaign.Type).
			Ref("attacks").
			Unique().
			Required().
			Immutable(),
		edge.To("word_list", Resource.Type).
			Unique().
			StorageKey(edge.Column("word_list_id")),
		edge.To("rule_list", Resource.Type).
			Unique().
			StorageKey(edge.Column("rule_list_id")),
		edge.To("mask_list", Resource.Type).
			Unique().
			StorageKey(edge.Column("mask_list_id")),
		edge.To("tasks", Task.Type).
			StorageKey(edge.Column("attack_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Attack.
func (Attack) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("position"),
		index.Fields("state"),
	}
}
