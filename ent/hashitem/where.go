// Code generated by ent, DO NOT EDIT.

package hashitem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldID, id))
}

// HashValue applies equality check predicate on the "hash_value" field. It's identical to HashValueEQ.
func HashValue(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldHashValue, v))
}

// Metadata applies equality check predicate on the "metadata" field. It's identical to MetadataEQ.
func Metadata(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldMetadata, v))
}

// IsCracked applies equality check predicate on the "is_cracked" field. It's identical to IsCrackedEQ.
func IsCracked(v bool) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldIsCracked, v))
}

// Plaintext applies equality check predicate on the "plaintext" field. It's identical to PlaintextEQ.
func Plaintext(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldPlaintext, v))
}

// CrackedAt applies equality check predicate on the "cracked_at" field. It's identical to CrackedAtEQ.
func CrackedAt(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldCrackedAt, v))
}

// HashValueEQ applies the EQ predicate on the "hash_value" field.
func HashValueEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldHashValue, v))
}

// HashValueNEQ applies the NEQ predicate on the "hash_value" field.
func HashValueNEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldHashValue, v))
}

// HashValueIn applies the In predicate on the "hash_value" field.
func HashValueIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldHashValue, vs...))
}

// HashValueNotIn applies the NotIn predicate on the "hash_value" field.
func HashValueNotIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldHashValue, vs...))
}

// HashValueGT applies the GT predicate on the "hash_value" field.
func HashValueGT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldHashValue, v))
}

// HashValueGTE applies the GTE predicate on the "hash_value" field.
func HashValueGTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldHashValue, v))
}

// HashValueLT applies the LT predicate on the "hash_value" field.
func HashValueLT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldHashValue, v))
}

// HashValueLTE applies the LTE predicate on the "hash_value" field.
func HashValueLTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldHashValue, v))
}

// HashValueContains applies the Contains predicate on the "hash_value" field.
func HashValueContains(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContains(FieldHashValue, v))
}

// HashValueHasPrefix applies the HasPrefix predicate on the "hash_value" field.
func HashValueHasPrefix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasPrefix(FieldHashValue, v))
}

// HashValueHasSuffix applies the HasSuffix predicate on the "hash_value" field.
func HashValueHasSuffix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasSuffix(FieldHashValue, v))
}

// HashValueEqualFold applies the EqualFold predicate on the "hash_value" field.
func HashValueEqualFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEqualFold(FieldHashValue, v))
}

// HashValueContainsFold applies the ContainsFold predicate on the "hash_value" field.
func HashValueContainsFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContainsFold(FieldHashValue, v))
}

// MetadataEQ applies the EQ predicate on the "metadata" field.
func MetadataEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldMetadata, v))
}

// MetadataNEQ applies the NEQ predicate on the "metadata" field.
func MetadataNEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldMetadata, v))
}

// MetadataIn applies the In predicate on the "metadata" field.
func MetadataIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldMetadata, vs...))
}

// MetadataNotIn applies the NotIn predicate on the "metadata" field.
func MetadataNotIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldMetadata, vs...))
}

// MetadataGT applies the GT predicate on the "metadata" field.
func MetadataGT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldMetadata, v))
}

// MetadataGTE applies the GTE predicate on the "metadata" field.
func MetadataGTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldMetadata, v))
}

// MetadataLT applies the LT predicate on the "metadata" field.
func MetadataLT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldMetadata, v))
}

// MetadataLTE applies the LTE predicate on the "metadata" field.
func MetadataLTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldMetadata, v))
}

// MetadataContains applies the Contains predicate on the "metadata" field.
func MetadataContains(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContains(FieldMetadata, v))
}

// MetadataHasPrefix applies the HasPrefix predicate on the "metadata" field.
func MetadataHasPrefix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasPrefix(FieldMetadata, v))
}

// MetadataHasSuffix applies the HasSuffix predicate on the "metadata" field.
func MetadataHasSuffix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasSuffix(FieldMetadata, v))
}

// MetadataIsNil applies the IsNil predicate on the "metadata" field.
func MetadataIsNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldIsNull(FieldMetadata))
}

// MetadataNotNil applies the NotNil predicate on the "metadata" field.
func MetadataNotNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldNotNull(FieldMetadata))
}

// MetadataEqualFold applies the EqualFold predicate on the "metadata" field.
func MetadataEqualFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEqualFold(FieldMetadata, v))
}

// MetadataContainsFold applies the ContainsFold predicate on the "metadata" field.
func MetadataContainsFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContainsFold(FieldMetadata, v))
}

// IsCrackedEQ applies the EQ predicate on the "is_cracked" field.
func IsCrackedEQ(v bool) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldIsCracked, v))
}

// IsCrackedNEQ applies the NEQ predicate on the "is_cracked" field.
func IsCrackedNEQ(v bool) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldIsCracked, v))
}

// PlaintextEQ applies the EQ predicate on the "plaintext" field.
func PlaintextEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldPlaintext, v))
}

// PlaintextNEQ applies the NEQ predicate on the "plaintext" field.
func PlaintextNEQ(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldPlaintext, v))
}

// PlaintextIn applies the In predicate on the "plaintext" field.
func PlaintextIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldPlaintext, vs...))
}

// PlaintextNotIn applies the NotIn predicate on the "plaintext" field.
func PlaintextNotIn(vs ...string) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldPlaintext, vs...))
}

// PlaintextGT applies the GT predicate on the "plaintext" field.
func PlaintextGT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldPlaintext, v))
}

// PlaintextGTE applies the GTE predicate on the "plaintext" field.
func PlaintextGTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldPlaintext, v))
}

// PlaintextLT applies the LT predicate on the "plaintext" field.
func PlaintextLT(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldPlaintext, v))
}

// PlaintextLTE applies the LTE predicate on the "plaintext" field.
func PlaintextLTE(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldPlaintext, v))
}

// PlaintextContains applies the Contains predicate on the "plaintext" field.
func PlaintextContains(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContains(FieldPlaintext, v))
}

// PlaintextHasPrefix applies the HasPrefix predicate on the "plaintext" field.
func PlaintextHasPrefix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasPrefix(FieldPlaintext, v))
}

// PlaintextHasSuffix applies the HasSuffix predicate on the "plaintext" field.
func PlaintextHasSuffix(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldHasSuffix(FieldPlaintext, v))
}

// PlaintextIsNil applies the IsNil predicate on the "plaintext" field.
func PlaintextIsNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldIsNull(FieldPlaintext))
}

// PlaintextNotNil applies the NotNil predicate on the "plaintext" field.
func PlaintextNotNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldNotNull(FieldPlaintext))
}

// PlaintextEqualFold applies the EqualFold predicate on the "plaintext" field.
func PlaintextEqualFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldEqualFold(FieldPlaintext, v))
}

// PlaintextContainsFold applies the ContainsFold predicate on the "plaintext" field.
func PlaintextContainsFold(v string) predicate.HashItem {
	return predicate.HashItem(sql.FieldContainsFold(FieldPlaintext, v))
}

// CrackedAtEQ applies the EQ predicate on the "cracked_at" field.
func CrackedAtEQ(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldEQ(FieldCrackedAt, v))
}

// CrackedAtNEQ applies the NEQ predicate on the "cracked_at" field.
func CrackedAtNEQ(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldNEQ(FieldCrackedAt, v))
}

// CrackedAtIn applies the In predicate on the "cracked_at" field.
func CrackedAtIn(vs ...time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldIn(FieldCrackedAt, vs...))
}

// CrackedAtNotIn applies the NotIn predicate on the "cracked_at" field.
func CrackedAtNotIn(vs ...time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldNotIn(FieldCrackedAt, vs...))
}

// CrackedAtGT applies the GT predicate on the "cracked_at" field.
func CrackedAtGT(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldGT(FieldCrackedAt, v))
}

// CrackedAtGTE applies the GTE predicate on the "cracked_at" field.
func CrackedAtGTE(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldGTE(FieldCrackedAt, v))
}

// CrackedAtLT applies the LT predicate on the "cracked_at" field.
func CrackedAtLT(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldLT(FieldCrackedAt, v))
}

// CrackedAtLTE applies the LTE predicate on the "cracked_at" field.
func CrackedAtLTE(v time.Time) predicate.HashItem {
	return predicate.HashItem(sql.FieldLTE(FieldCrackedAt, v))
}

// CrackedAtIsNil applies the IsNil predicate on the "cracked_at" field.
func CrackedAtIsNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldIsNull(FieldCrackedAt))
}

// CrackedAtNotNil applies the NotNil predicate on the "cracked_at" field.
func CrackedAtNotNil() predicate.HashItem {
	return predicate.HashItem(sql.FieldNotNull(FieldCrackedAt))
}

// HasHashList applies the HasEdge predicate on the "hash_list" edge.
func HasHashList() predicate.HashItem {
	return predicate.HashItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, HashListTable, HashListColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasHashListWith applies the HasEdge predicate on the "hash_list" edge with a given conditions (other predicates).
func HasHashListWith(preds ...predicate.HashList) predicate.HashItem {
	return predicate.HashItem(func(s *sql.Selector) {
		step := newHashListStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasCrackResults applies the HasEdge predicate on the "crack_results" edge.
func HasCrackResults() predicate.HashItem {
	return predicate.HashItem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, CrackResultsTable, CrackResultsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasCrackResultsWith applies the HasEdge predicate on the "crack_results" edge with a given conditions (other predicates).
func HasCrackResultsWith(preds ...predicate.CrackResult) predicate.HashItem {
	return predicate.HashItem(func(s *sql.Selector) {
		step := newCrackResultsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.HashItem) predicate.HashItem {
	return predicate.HashItem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.HashItem) predicate.HashItem {
	return predicate.HashItem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.HashItem) predicate.HashItem {
	return predicate.HashItem(sql.NotPredicates(p))
}
