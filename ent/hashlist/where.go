// Code generated by ent, DO NOT EDIT.

package hashlist

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldName, v))
}

// HashMode applies equality check predicate on the "hash_mode" field. It's identical to HashModeEQ.
func HashMode(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldHashMode, v))
}

// UncrackedCount applies equality check predicate on the "uncracked_count" field. It's identical to UncrackedCountEQ.
func UncrackedCount(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldUncrackedCount, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.HashList {
	return predicate.HashList(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.HashList {
	return predicate.HashList(sql.FieldContainsFold(FieldName, v))
}

// HashModeEQ applies the EQ predicate on the "hash_mode" field.
func HashModeEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldHashMode, v))
}

// HashModeNEQ applies the NEQ predicate on the "hash_mode" field.
func HashModeNEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldHashMode, v))
}

// HashModeIn applies the In predicate on the "hash_mode" field.
func HashModeIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldHashMode, vs...))
}

// HashModeNotIn applies the NotIn predicate on the "hash_mode" field.
func HashModeNotIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldHashMode, vs...))
}

// HashModeGT applies the GT predicate on the "hash_mode" field.
func HashModeGT(v int) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldHashMode, v))
}

// HashModeGTE applies the GTE predicate on the "hash_mode" field.
func HashModeGTE(v int) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldHashMode, v))
}

// HashModeLT applies the LT predicate on the "hash_mode" field.
func HashModeLT(v int) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldHashMode, v))
}

// HashModeLTE applies the LTE predicate on the "hash_mode" field.
func HashModeLTE(v int) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldHashMode, v))
}

// UncrackedCountEQ applies the EQ predicate on the "uncracked_count" field.
func UncrackedCountEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldUncrackedCount, v))
}

// UncrackedCountNEQ applies the NEQ predicate on the "uncracked_count" field.
func UncrackedCountNEQ(v int) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldUncrackedCount, v))
}

// UncrackedCountIn applies the In predicate on the "uncracked_count" field.
func UncrackedCountIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldUncrackedCount, vs...))
}

// UncrackedCountNotIn applies the NotIn predicate on the "uncracked_count" field.
func UncrackedCountNotIn(vs ...int) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldUncrackedCount, vs...))
}

// UncrackedCountGT applies the GT predicate on the "uncracked_count" field.
func UncrackedCountGT(v int) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldUncrackedCount, v))
}

// UncrackedCountGTE applies the GTE predicate on the "uncracked_count" field.
func UncrackedCountGTE(v int) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldUncrackedCount, v))
}

// UncrackedCountLT applies the LT predicate on the "uncracked_count" field.
func UncrackedCountLT(v int) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldUncrackedCount, v))
}

// UncrackedCountLTE applies the LTE predicate on the "uncracked_count" field.
func UncrackedCountLTE(v int) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldUncrackedCount, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.HashList {
	return predicate.HashList(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProject applies the HasEdge predicate on the "project" edge.
func HasProject() predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectWith applies the HasEdge predicate on the "project" edge with a given conditions (other predicates).
func HasProjectWith(preds ...predicate.Project) predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := newProjectStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasItems applies the HasEdge predicate on the "items" edge.
func HasItems() predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, ItemsTable, ItemsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasItemsWith applies the HasEdge predicate on the "items" edge with a given conditions (other predicates).
func HasItemsWith(preds ...predicate.HashItem) predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := newItemsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCampaigns applies the HasEdge predicate on the "campaigns" edge.
func HasCampaigns() predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CampaignsTable, CampaignsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCampaignsWith applies the HasEdge predicate on the "campaigns" edge with a given conditions (other predicates).
func HasCampaignsWith(preds ...predicate.Campaign) predicate.HashList {
	return predicate.HashList(func(s *sql.Selector) {
		step := newCampaignsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HashList) predicate.HashList {
	return predicate.HashList(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HashList) predicate.HashList {
	return predicate.HashList(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HashList) predicate.HashList {
	return predicate.HashList(sql.NotPredicates(p))
}
