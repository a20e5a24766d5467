package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Resource holds the schema definition for the Resource entity.
// Resource covers word lists, rule lists, and mask lists uniformly; the
// object bytes themselves live outside the store, this
// row only tracks the opaque handle and asynchronously-computed metadata.
type Resource struct {
	ent.Schema
}

// ResourceKind enumerates the resource variants.
const (
	ResourceKindWordList = "word_list"
	ResourceKindRuleList = "rule_list"
	ResourceKindMaskList = "mask_list"
)

// Fields of the Resource.
func (Resource) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Enum("kind").
			Values(ResourceKindWordList, ResourceKindRuleList, ResourceKindMaskList),
		field.String("file_handle").
			NotEmpty().
			Immutable(),
		// line_count is nil until the async upload pipeline (out of scope) reports it.
		field.Int64("line_count").
			Optional().
			Nillable(),
		field.Bool("sensitive").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the Resource.
func (Resource) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("projects", Project.Type).
			Ref("resources"),
		edge.From("word_list_attacks", Attack.Type).
			Ref("word_list"),
		edge.From("rule_list_attacks", Attack.Type).
			Ref("rule_list"),
		edge.From("mask_list_attacks", Attack.Type).
			Ref("mask_list"),
	}
}

// Indexes of the Resource.
func (Resource) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("kind"),
	}
}
