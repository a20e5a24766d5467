package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Project holds the schema definition for the Project entity.
// A Project is the tenant boundary: it owns campaigns and resources and
// grants visibility to a set of agents and users.
type Project struct {
	ent.Schema
}

// Fields of the Project.
func (Project) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Project.
func (Project) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("campaigns", Campaign.Type).
			StorageKey(edge.Column("project_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("hash_lists", HashList.Type).
			StorageKey(edge.Column("project_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("resources", Resource.Type).
			StorageKey(edge.Table("project_resources"), edge.Columns("project_id", "resource_id")),
		edge.To("agents", Agent.Type).
			StorageKey(edge.Table("project_agents"), edge.Columns("project_id", "agent_id")),
	}
}

// Indexes of the Project.
func (Project) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("name").Unique(),
	}
}
