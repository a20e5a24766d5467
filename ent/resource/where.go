// Code generated by ent, DO NOT EDIT.

package resource

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldID, id))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldName, v))
}

// FileHandle applies equality check predicate on the "file_handle" field. It's identical to FileHandleEQ.
func FileHandle(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldFileHandle, v))
}

// LineCount applies equality check predicate on the "line_count" field. It's identical to LineCountEQ.
func LineCount(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldLineCount, v))
}

// Sensitive applies equality check predicate on the "sensitive" field. It's identical to SensitiveEQ.
func Sensitive(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldSensitive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedAt, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldName, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldKind, vs...))
}

// FileHandleEQ applies the EQ predicate on the "file_handle" field.
func FileHandleEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldFileHandle, v))
}

// FileHandleNEQ applies the NEQ predicate on the "file_handle" field.
func FileHandleNEQ(v string) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldFileHandle, v))
}

// FileHandleIn applies the In predicate on the "file_handle" field.
func FileHandleIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldFileHandle, vs...))
}

// FileHandleNotIn applies the NotIn predicate on the "file_handle" field.
func FileHandleNotIn(vs ...string) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldFileHandle, vs...))
}

// FileHandleGT applies the GT predicate on the "file_handle" field.
func FileHandleGT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldFileHandle, v))
}

// FileHandleGTE applies the GTE predicate on the "file_handle" field.
func FileHandleGTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldFileHandle, v))
}

// FileHandleLT applies the LT predicate on the "file_handle" field.
func FileHandleLT(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldFileHandle, v))
}

// FileHandleLTE applies the LTE predicate on the "file_handle" field.
func FileHandleLTE(v string) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldFileHandle, v))
}

// FileHandleContains applies the Contains predicate on the "file_handle" field.
func FileHandleContains(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContains(FieldFileHandle, v))
}

// FileHandleHasPrefix applies the HasPrefix predicate on the "file_handle" field.
func FileHandleHasPrefix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasPrefix(FieldFileHandle, v))
}

// FileHandleHasSuffix applies the HasSuffix predicate on the "file_handle" field.
func FileHandleHasSuffix(v string) predicate.Resource {
	return predicate.Resource(sql.FieldHasSuffix(FieldFileHandle, v))
}

// FileHandleEqualFold applies the EqualFold predicate on the "file_handle" field.
func FileHandleEqualFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldEqualFold(FieldFileHandle, v))
}

// FileHandleContainsFold applies the ContainsFold predicate on the "file_handle" field.
func FileHandleContainsFold(v string) predicate.Resource {
	return predicate.Resource(sql.FieldContainsFold(FieldFileHandle, v))
}

// LineCountEQ applies the EQ predicate on the "line_count" field.
func LineCountEQ(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldLineCount, v))
}

// LineCountNEQ applies the NEQ predicate on the "line_count" field.
func LineCountNEQ(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldLineCount, v))
}

// LineCountIn applies the In predicate on the "line_count" field.
func LineCountIn(vs ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldLineCount, vs...))
}

// LineCountNotIn applies the NotIn predicate on the "line_count" field.
func LineCountNotIn(vs ...int64) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldLineCount, vs...))
}

// LineCountGT applies the GT predicate on the "line_count" field.
func LineCountGT(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldLineCount, v))
}

// LineCountGTE applies the GTE predicate on the "line_count" field.
func LineCountGTE(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldLineCount, v))
}

// LineCountLT applies the LT predicate on the "line_count" field.
func LineCountLT(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldLineCount, v))
}

// LineCountLTE applies the LTE predicate on the "line_count" field.
func LineCountLTE(v int64) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldLineCount, v))
}

// LineCountIsNil applies the IsNil predicate on the "line_count" field.
func LineCountIsNil() predicate.Resource {
	return predicate.Resource(sql.FieldIsNull(FieldLineCount))
}

// LineCountNotNil applies the NotNil predicate on the "line_count" field.
func LineCountNotNil() predicate.Resource {
	return predicate.Resource(sql.FieldNotNull(FieldLineCount))
}

// SensitiveEQ applies the EQ predicate on the "sensitive" field.
func SensitiveEQ(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldSensitive, v))
}

// SensitiveNEQ applies the NEQ predicate on the "sensitive" field.
func SensitiveNEQ(v bool) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldSensitive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Resource {
	return predicate.Resource(sql.FieldLTE(FieldCreatedAt, v))
}

// HasProjects applies the HasEdge predicate on the "projects" edge.
func HasProjects() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, ProjectsTable, ProjectsPrimaryKey...),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasProjectsWith applies the HasEdge predicate on the "projects" edge with a given conditions (other predicates).
func HasProjectsWith(preds ...predicate.Project) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newProjectsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasWordListAttacks applies the HasEdge predicate on the "word_list_attacks" edge.
func HasWordListAttacks() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, WordListAttacksTable, WordListAttacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasWordListAttacksWith applies the HasEdge predicate on the "word_list_attacks" edge with a given conditions (other predicates).
func HasWordListAttacksWith(preds ...predicate.Attack) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newWordListAttacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasRuleListAttacks applies the HasEdge predicate on the "rule_list_attacks" edge.
func HasRuleListAttacks() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, RuleListAttacksTable, RuleListAttacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRuleListAttacksWith applies the HasEdge predicate on the "rule_list_attacks" edge with a given conditions (other predicates).
func HasRuleListAttacksWith(preds ...predicate.Attack) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newRuleListAttacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasMaskListAttacks applies the HasEdge predicate on the "mask_list_attacks" edge.
func HasMaskListAttacks() predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, MaskListAttacksTable, MaskListAttacksColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMaskListAttacksWith applies the HasEdge predicate on the "mask_list_attacks" edge with a given conditions (other predicates).
func HasMaskListAttacksWith(preds ...predicate.Attack) predicate.Resource {
	return predicate.Resource(func(s *sql.Selector) {
		step := newMaskListAttacksStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Resource) predicate.Resource {
	return predicate.Resource(sql.NotPredicates(p))
}
