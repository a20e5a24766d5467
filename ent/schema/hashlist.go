package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// HashList holds the schema definition for the HashList entity.
// A HashList is an immutable set of HashItems sharing a hashcat hash-mode.
type HashList struct {
	ent.Schema
}

// Fields of the HashList.
func (HashList) Fields() []ent.Field {
	return []ent.Field{
		field.String("name").
			NotEmpty(),
		field.Int("hash_mode"),
		field.Int("uncracked_count").
			Default(0).
			Min(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Edges of the HashList.
func (HashList) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("project", Project.Type).
			Ref("hash_lists").
			Unique().
			Required().
			Immutable(),
		edge.To("items", HashItem.Type).
			StorageKey(edge.Column("hash_list_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("campaigns", Campaign.Type).
			StorageKey(edge.Column("hash_list_id")),
	}
}
