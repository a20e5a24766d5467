// Code generated by ent, DO NOT EDIT.

package crackresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLTE(FieldID, id))
}

// HashValue applies equality check predicate on the "hash_value" field. It's identical to HashValueEQ.
func HashValue(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldHashValue, v))
}

// Plaintext applies equality check predicate on the "plaintext" field. It's identical to PlaintextEQ.
func Plaintext(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldPlaintext, v))
}

// CrackedAt applies equality check predicate on the "cracked_at" field. It's identical to CrackedAtEQ.
func CrackedAt(v time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldCrackedAt, v))
}

// HashValueEQ applies the EQ predicate on the "hash_value" field.
func HashValueEQ(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldHashValue, v))
}

// HashValueNEQ applies the NEQ predicate on the "hash_value" field.
func HashValueNEQ(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNEQ(FieldHashValue, v))
}

// HashValueIn applies the In predicate on the "hash_value" field.
func HashValueIn(vs ...string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldIn(FieldHashValue, vs...))
}

// HashValueNotIn applies the NotIn predicate on the "hash_value" field.
func HashValueNotIn(vs ...string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNotIn(FieldHashValue, vs...))
}

// HashValueGT applies the GT predicate on the "hash_value" field.
func HashValueGT(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGT(FieldHashValue, v))
}

// HashValueGTE applies the GTE predicate on the "hash_value" field.
func HashValueGTE(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGTE(FieldHashValue, v))
}

// HashValueLT applies the LT predicate on the "hash_value" field.
func HashValueLT(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLT(FieldHashValue, v))
}

// HashValueLTE applies the LTE predicate on the "hash_value" field.
func HashValueLTE(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLTE(FieldHashValue, v))
}

// HashValueContains applies the Contains predicate on the "hash_value" field.
func HashValueContains(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldContains(FieldHashValue, v))
}

// HashValueHasPrefix applies the HasPrefix predicate on the "hash_value" field.
func HashValueHasPrefix(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldHasPrefix(FieldHashValue, v))
}

// HashValueHasSuffix applies the HasSuffix predicate on the "hash_value" field.
func HashValueHasSuffix(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldHasSuffix(FieldHashValue, v))
}

// HashValueEqualFold applies the EqualFold predicate on the "hash_value" field.
func HashValueEqualFold(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEqualFold(FieldHashValue, v))
}

// HashValueContainsFold applies the ContainsFold predicate on the "hash_value" field.
func HashValueContainsFold(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldContainsFold(FieldHashValue, v))
}

// PlaintextEQ applies the EQ predicate on the "plaintext" field.
func PlaintextEQ(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldPlaintext, v))
}

// PlaintextNEQ applies the NEQ predicate on the "plaintext" field.
func PlaintextNEQ(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNEQ(FieldPlaintext, v))
}

// PlaintextIn applies the In predicate on the "plaintext" field.
func PlaintextIn(vs ...string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldIn(FieldPlaintext, vs...))
}

// PlaintextNotIn applies the NotIn predicate on the "plaintext" field.
func PlaintextNotIn(vs ...string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNotIn(FieldPlaintext, vs...))
}

// PlaintextGT applies the GT predicate on the "plaintext" field.
func PlaintextGT(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGT(FieldPlaintext, v))
}

// PlaintextGTE applies the GTE predicate on the "plaintext" field.
func PlaintextGTE(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGTE(FieldPlaintext, v))
}

// PlaintextLT applies the LT predicate on the "plaintext" field.
func PlaintextLT(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLT(FieldPlaintext, v))
}

// PlaintextLTE applies the LTE predicate on the "plaintext" field.
func PlaintextLTE(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLTE(FieldPlaintext, v))
}

// PlaintextContains applies the Contains predicate on the "plaintext" field.
func PlaintextContains(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldContains(FieldPlaintext, v))
}

// PlaintextHasPrefix applies the HasPrefix predicate on the "plaintext" field.
func PlaintextHasPrefix(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldHasPrefix(FieldPlaintext, v))
}

// PlaintextHasSuffix applies the HasSuffix predicate on the "plaintext" field.
func PlaintextHasSuffix(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldHasSuffix(FieldPlaintext, v))
}

// PlaintextEqualFold applies the EqualFold predicate on the "plaintext" field.
func PlaintextEqualFold(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEqualFold(FieldPlaintext, v))
}

// PlaintextContainsFold applies the ContainsFold predicate on the "plaintext" field.
func PlaintextContainsFold(v string) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldContainsFold(FieldPlaintext, v))
}

// CrackedAtEQ applies the EQ predicate on the "cracked_at" field.
func CrackedAtEQ(v time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldEQ(FieldCrackedAt, v))
}

// CrackedAtNEQ applies the NEQ predicate on the "cracked_at" field.
func CrackedAtNEQ(v time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNEQ(FieldCrackedAt, v))
}

// CrackedAtIn applies the In predicate on the "cracked_at" field.
func CrackedAtIn(vs ...time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldIn(FieldCrackedAt, vs...))
}

// CrackedAtNotIn applies the NotIn predicate on the "cracked_at" field.
func CrackedAtNotIn(vs ...time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldNotIn(FieldCrackedAt, vs...))
}

// CrackedAtGT applies the GT predicate on the "cracked_at" field.
func CrackedAtGT(v time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGT(FieldCrackedAt, v))
}

// CrackedAtGTE applies the GTE predicate on the "cracked_at" field.
func CrackedAtGTE(v time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldGTE(FieldCrackedAt, v))
}

// CrackedAtLT applies the LT predicate on the "cracked_at" field.
func CrackedAtLT(v time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLT(FieldCrackedAt, v))
}

// CrackedAtLTE applies the LTE predicate on the "cracked_at" field.
func CrackedAtLTE(v time.Time) predicate.CrackResult {
	return predicate.CrackResult(sql.FieldLTE(FieldCrackedAt, v))
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.CrackResult {
	return predicate.CrackResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.CrackResult {
	return predicate.CrackResult(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasHashItem applies the HasEdge predicate on the "hash_item" edge.
func HasHashItem() predicate.CrackResult {
	return predicate.CrackResult(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HashItemTable, HashItemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHashItemWith applies the HasEdge predicate on the "hash_item" edge with a given conditions (other predicates).
func HasHashItemWith(preds ...predicate.HashItem) predicate.CrackResult {
	return predicate.CrackResult(func(s *sql.Selector) {
		step := newHashItemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.CrackResult) predicate.CrackResult {
	return predicate.CrackResult(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.CrackResult) predicate.CrackResult {
	return predicate.CrackResult(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.CrackResult) predicate.CrackResult {
	return predicate.CrackResult(sql.NotPredicates(p))
}
