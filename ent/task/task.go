// Code generated by ent, DO NOT EDIT.

package task

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the task type in the database.
	Label = "task"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldKeyspaceOffset holds the string denoting the keyspace_offset field in the database.
	FieldKeyspaceOffset = "keyspace_offset"
	// FieldKeyspaceLimit holds the string denoting the keyspace_limit field in the database.
	FieldKeyspaceLimit = "keyspace_limit"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldActivityTimestamp holds the string denoting the activity_timestamp field in the database.
	FieldActivityTimestamp = "activity_timestamp"
	// FieldStale holds the string denoting the stale field in the database.
	FieldStale = "stale"
	// FieldCancelRequested holds the string denoting the cancel_requested field in the database.
	FieldCancelRequested = "cancel_requested"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeAttack holds the string denoting the attack edge name in mutations.
	EdgeAttack = "attack"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// EdgeStatuses holds the string denoting the statuses edge name in mutations.
	EdgeStatuses = "statuses"
	// EdgeCrackResults holds the string denoting the crack_results edge name in mutations.
	EdgeCrackResults = "crack_results"
	// EdgeErrors holds the string denoting the errors edge name in mutations.
	EdgeErrors = "errors"
	// Table holds the table name of the task in the database.
	Table = "tasks"
	// AttackTable is the table that holds the attack relation/edge.
	AttackTable = "tasks"
	// AttackInverseTable is the table name for the Attack entity.
	// It exists in this package in order to avoid circular dependency with the "attack" package.
	AttackInverseTable = "attacks"
	// AttackColumn is the table column denoting the attack relation/edge.
	AttackColumn = "attack_id"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "tasks"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
	// StatusesTable is the table that holds the statuses relation/edge.
	StatusesTable = "hashcat_status"
	// StatusesInverseTable is the table name for the HashcatStatus entity.
	// It exists in this package in order to avoid circular dependency with the "hashcatstatus" package.
	StatusesInverseTable = "hashcat_status"
	// StatusesColumn is the table column denoting the statuses relation/edge.
	StatusesColumn = "task_id"
	// CrackResultsTable is the table that holds the crack_results relation/edge.
	CrackResultsTable = "crack_results"
	// CrackResultsInverseTable is the table name for the CrackResult entity.
	// It exists in this package in order to avoid circular dependency with the "crackresult" package.
	CrackResultsInverseTable = "crack_results"
	// CrackResultsColumn is the table column denoting the crack_results relation/edge.
	CrackResultsColumn = "task_id"
	// ErrorsTable is the table that holds the errors relation/edge.
	ErrorsTable = "agent_errors"
	// ErrorsInverseTable is the table name for the AgentError entity.
	// It exists in this package in order to avoid circular dependency with the "agenterror" package.
	ErrorsInverseTable = "agent_errors"
	// ErrorsColumn is the table column denoting the errors relation/edge.
	ErrorsColumn = "task_id"
)

// Columns holds all SQL columns for task fields.
var Columns = []string{
	FieldID,
	FieldState,
	FieldKeyspaceOffset,
	FieldKeyspaceLimit,
	FieldStartDate,
	FieldActivityTimestamp,
	FieldStale,
	FieldCancelRequested,
	FieldCreatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "tasks"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"agent_id",
	"attack_id",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// KeyspaceOffsetValidator is a validator for the "keyspace_offset" field. It is called by the builders before save.
	KeyspaceOffsetValidator func(int64) error
	// KeyspaceLimitValidator is a validator for the "keyspace_limit" field. It is called by the builders before save.
	KeyspaceLimitValidator func(int64) error
	// DefaultActivityTimestamp holds the default value on creation for the "activity_timestamp" field.
	DefaultActivityTimestamp func() time.Time
	// UpdateDefaultActivityTimestamp holds the default value on update for the "activity_timestamp" field.
	UpdateDefaultActivityTimestamp func() time.Time
	// DefaultStale holds the default value on creation for the "stale" field.
	DefaultStale bool
	// DefaultCancelRequested holds the default value on creation for the "cancel_requested" field.
	DefaultCancelRequested bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StatePending is the default value of the State enum.
const DefaultState = StatePending

// State values.
const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateExhausted State = "exhausted"
	StateFailed    State = "failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePending, StateRunning, StatePaused, StateCompleted, StateExhausted, StateFailed:
		return nil
	default:
		return fmt.Errorf("task: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Task queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByKeyspaceOffset orders the results by the keyspace_offset field.
func ByKeyspaceOffset(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyspaceOffset, opts...).ToFunc()
}

// ByKeyspaceLimit orders the results by the keyspace_limit field.
func ByKeyspaceLimit(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKeyspaceLimit, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByActivityTimestamp orders the results by the activity_timestamp field.
func ByActivityTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActivityTimestamp, opts...).ToFunc()
}

// ByStale orders the results by the stale field.
func ByStale(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStale, opts...).ToFunc()
}

// ByCancelRequested orders the results by the cancel_requested field.
func ByCancelRequested(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelRequested, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByAttackField orders the results by attack field.
func ByAttackField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttackStep(), sql.OrderByField(field, opts...))
	}
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}

// ByStatusesCount orders the results by statuses count.
func ByStatusesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newStatusesStep(), opts...)
	}
}

// ByStatuses orders the results by statuses terms.
func ByStatuses(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newStatusesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByCrackResultsCount orders the results by crack_results count.
func ByCrackResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCrackResultsStep(), opts...)
	}
}

// ByCrackResults orders the results by crack_results terms.
func ByCrackResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCrackResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByErrorsCount orders the results by errors count.
func ByErrorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newErrorsStep(), opts...)
	}
}

// ByErrors orders the results by errors terms.
func ByErrors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newErrorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newAttackStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttackInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AttackTable, AttackColumn),
	)
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
func newStatusesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(StatusesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, StatusesTable, StatusesColumn),
	)
}
func newCrackResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CrackResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CrackResultsTable, CrackResultsColumn),
	)
}
func newErrorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ErrorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, ErrorsTable, ErrorsColumn),
	)
}
