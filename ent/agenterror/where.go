// Code generated by ent, DO NOT EDIT.

package agenterror

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int64) predicate.AgentError {
	return predicate.AgentError(sql.FieldLTE(FieldID, id))
}

// Message applies equality check predicate on the "message" field. It's identical to MessageEQ.
func Message(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldMessage, v))
}

// ContextJSON applies equality check predicate on the "context_json" field. It's identical to ContextJSONEQ.
func ContextJSON(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldContextJSON, v))
}

// RecordedAt applies equality check predicate on the "recorded_at" field. It's identical to RecordedAtEQ.
func RecordedAt(v time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldRecordedAt, v))
}

// SeverityEQ applies the EQ predicate on the "severity" field.
func SeverityEQ(v Severity) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldSeverity, v))
}

// SeverityNEQ applies the NEQ predicate on the "severity" field.
func SeverityNEQ(v Severity) predicate.AgentError {
	return predicate.AgentError(sql.FieldNEQ(FieldSeverity, v))
}

// SeverityIn applies the In predicate on the "severity" field.
func SeverityIn(vs ...Severity) predicate.AgentError {
	return predicate.AgentError(sql.FieldIn(FieldSeverity, vs...))
}

// SeverityNotIn applies the NotIn predicate on the "severity" field.
func SeverityNotIn(vs ...Severity) predicate.AgentError {
	return predicate.AgentError(sql.FieldNotIn(FieldSeverity, vs...))
}

// MessageEQ applies the EQ predicate on the "message" field.
func MessageEQ(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldMessage, v))
}

// MessageNEQ applies the NEQ predicate on the "message" field.
func MessageNEQ(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldNEQ(FieldMessage, v))
}

// MessageIn applies the In predicate on the "message" field.
func MessageIn(vs ...string) predicate.AgentError {
	return predicate.AgentError(sql.FieldIn(FieldMessage, vs...))
}

// MessageNotIn applies the NotIn predicate on the "message" field.
func MessageNotIn(vs ...string) predicate.AgentError {
	return predicate.AgentError(sql.FieldNotIn(FieldMessage, vs...))
}

// MessageGT applies the GT predicate on the "message" field.
func MessageGT(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldGT(FieldMessage, v))
}

// MessageGTE applies the GTE predicate on the "message" field.
func MessageGTE(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldGTE(FieldMessage, v))
}

// MessageLT applies the LT predicate on the "message" field.
func MessageLT(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldLT(FieldMessage, v))
}

// MessageLTE applies the LTE predicate on the "message" field.
func MessageLTE(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldLTE(FieldMessage, v))
}

// MessageContains applies the Contains predicate on the "message" field.
func MessageContains(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldContains(FieldMessage, v))
}

// MessageHasPrefix applies the HasPrefix predicate on the "message" field.
func MessageHasPrefix(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldHasPrefix(FieldMessage, v))
}

// MessageHasSuffix applies the HasSuffix predicate on the "message" field.
func MessageHasSuffix(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldHasSuffix(FieldMessage, v))
}

// MessageEqualFold applies the EqualFold predicate on the "message" field.
func MessageEqualFold(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldEqualFold(FieldMessage, v))
}

// MessageContainsFold applies the ContainsFold predicate on the "message" field.
func MessageContainsFold(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldContainsFold(FieldMessage, v))
}

// ContextJSONEQ applies the EQ predicate on the "context_json" field.
func ContextJSONEQ(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldContextJSON, v))
}

// ContextJSONNEQ applies the NEQ predicate on the "context_json" field.
func ContextJSONNEQ(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldNEQ(FieldContextJSON, v))
}

// ContextJSONIn applies the In predicate on the "context_json" field.
func ContextJSONIn(vs ...string) predicate.AgentError {
	return predicate.AgentError(sql.FieldIn(FieldContextJSON, vs...))
}

// ContextJSONNotIn applies the NotIn predicate on the "context_json" field.
func ContextJSONNotIn(vs ...string) predicate.AgentError {
	return predicate.AgentError(sql.FieldNotIn(FieldContextJSON, vs...))
}

// ContextJSONGT applies the GT predicate on the "context_json" field.
func ContextJSONGT(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldGT(FieldContextJSON, v))
}

// ContextJSONGTE applies the GTE predicate on the "context_json" field.
func ContextJSONGTE(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldGTE(FieldContextJSON, v))
}

// ContextJSONLT applies the LT predicate on the "context_json" field.
func ContextJSONLT(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldLT(FieldContextJSON, v))
}

// ContextJSONLTE applies the LTE predicate on the "context_json" field.
func ContextJSONLTE(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldLTE(FieldContextJSON, v))
}

// ContextJSONContains applies the Contains predicate on the "context_json" field.
func ContextJSONContains(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldContains(FieldContextJSON, v))
}

// ContextJSONHasPrefix applies the HasPrefix predicate on the "context_json" field.
func ContextJSONHasPrefix(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldHasPrefix(FieldContextJSON, v))
}

// ContextJSONHasSuffix applies the HasSuffix predicate on the "context_json" field.
func ContextJSONHasSuffix(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldHasSuffix(FieldContextJSON, v))
}

// ContextJSONIsNil applies the IsNil predicate on the "context_json" field.
func ContextJSONIsNil() predicate.AgentError {
	return predicate.AgentError(sql.FieldIsNull(FieldContextJSON))
}

// ContextJSONNotNil applies the NotNil predicate on the "context_json" field.
func ContextJSONNotNil() predicate.AgentError {
	return predicate.AgentError(sql.FieldNotNull(FieldContextJSON))
}

// ContextJSONEqualFold applies the EqualFold predicate on the "context_json" field.
func ContextJSONEqualFold(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldEqualFold(FieldContextJSON, v))
}

// ContextJSONContainsFold applies the ContainsFold predicate on the "context_json" field.
func ContextJSONContainsFold(v string) predicate.AgentError {
	return predicate.AgentError(sql.FieldContainsFold(FieldContextJSON, v))
}

// RecordedAtEQ applies the EQ predicate on the "recorded_at" field.
func RecordedAtEQ(v time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldEQ(FieldRecordedAt, v))
}

// RecordedAtNEQ applies the NEQ predicate on the "recorded_at" field.
func RecordedAtNEQ(v time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldNEQ(FieldRecordedAt, v))
}

// RecordedAtIn applies the In predicate on the "recorded_at" field.
func RecordedAtIn(vs ...time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldIn(FieldRecordedAt, vs...))
}

// RecordedAtNotIn applies the NotIn predicate on the "recorded_at" field.
func RecordedAtNotIn(vs ...time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldNotIn(FieldRecordedAt, vs...))
}

// RecordedAtGT applies the GT predicate on the "recorded_at" field.
func RecordedAtGT(v time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldGT(FieldRecordedAt, v))
}

// RecordedAtGTE applies the GTE predicate on the "recorded_at" field.
func RecordedAtGTE(v time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldGTE(FieldRecordedAt, v))
}

// RecordedAtLT applies the LT predicate on the "recorded_at" field.
func RecordedAtLT(v time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldLT(FieldRecordedAt, v))
}

// RecordedAtLTE applies the LTE predicate on the "recorded_at" field.
func RecordedAtLTE(v time.Time) predicate.AgentError {
	return predicate.AgentError(sql.FieldLTE(FieldRecordedAt, v))
}

// HasAgent applies the HasEdge predicate on the "agent" edge.
func HasAgent() predicate.AgentError {
	return predicate.AgentError(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasAgentWith applies the HasEdge predicate on the "agent" edge with a given conditions (other predicates).
func HasAgentWith(preds ...predicate.Agent) predicate.AgentError {
	return predicate.AgentError(func(s *sql.Selector) {
		step := newAgentStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTask applies the HasEdge predicate on the "task" edge.
func HasTask() predicate.AgentError {
	return predicate.AgentError(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTaskWith applies the HasEdge predicate on the "task" edge with a given conditions (other predicates).
func HasTaskWith(preds ...predicate.Task) predicate.AgentError {
	return predicate.AgentError(func(s *sql.Selector) {
		step := newTaskStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.AgentError) predicate.AgentError {
	return predicate.AgentError(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.AgentError) predicate.AgentError {
	return predicate.AgentError(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.AgentError) predicate.AgentError {
	return predicate.AgentError(sql.NotPredicates(p))
}
