package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// HashItem holds the schema definition for the HashItem entity.
// One cryptographic hash (plus optional metadata such as a username or salt)
// belonging to a HashList. Cracked state lives here so progress/result
// ingestion can mark items without touching the parent HashList row.
type HashItem struct {
	ent.Schema
}

// Fields of the HashItem.
func (HashItem) Fields() []ent.Field {
	return []ent.Field{
		field.String("hash_value").
			NotEmpty().
			Immutable(),
		field.String("metadata").
			Optional().
			Nillable(),
		field.Bool("is_cracked").
			Default(false),
		field.String("plaintext").
			Optional().
			Nillable(),
		field.Time("cracked_at").
			Optional().
			Nillable(),
	}
}

// Edges of the HashItem.
func (HashItem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("hash_list", HashList.Type).
			Ref("items").
			Unique().
			Required().
			Immutable(),
		edge.To("crack_results", CrackResult.Type).
			StorageKey(edge.Column("hash_item_id")).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the HashItem.
func (HashItem) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("hash_value"),
		index.Fields("is_cracked"),
	}
}
