package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Priority ordinals, flash outranking everything, deferred outranked by everything.
const (
	PriorityDeferred = "deferred"
	PriorityRoutine  = "routine"
	PriorityPriority = "priority"
	PriorityUrgent   = "urgent"
	PriorityImmediate = "immediate"
	PriorityFlash    = "flash"
)

// Campaign state values.
const (
	CampaignStateDraft    = "draft"
	CampaignStateActive   = "active"
	CampaignStateCompleted = "completed"
	CampaignStateArchived = "archived"
)

// Campaign holds the schema definition for the Campaign entity.
type Campaign struct {
	ent.Schema
}

// Fields of the Campaign.
func (Campaign) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Enum("priority").
			Values(PriorityDeferred, PriorityRoutine, PriorityPriority, PriorityUrgent, PriorityImmediate, PriorityFlash).
			Default(PriorityRoutine),
		field.Enum("state").
			Values(CampaignStateDraft, CampaignStateActive, CampaignStateCompleted, CampaignStateArchived).
			Default(CampaignStateDraft),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Campaign.
func (Campaign) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("campaigns").
			Unique().
			Required().
			Immutable(),
		edge.From("hash_list", HashList.Type).
			Ref("campaigns").
			Unique().
			Required().
			Immutable(),
		edge.To("attacks", Attack.Type).
			StorageKey(edge.Column("campaign_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Campaign.
func (Campaign) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("state", "priority", "created_at"),
	}
}
