// Code generated by ent, DO NOT EDIT.

package campaign

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the campaign type in the database.
	Label = "campaign"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldName holds the string denoting the name field in the database.
	FieldName = "name"
	// FieldPriority holds the string denoting the priority field in the database.
	FieldPriority = "priority"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeProject holds the string denoting the project edge name in mutations.
	EdgeProject = "project"
	// EdgeHashList holds the string denoting the hash_list edge name in mutations.
	EdgeHashList = "hash_list"
	// EdgeAttacks holds the string denoting the attacks edge name in mutations.
	EdgeAttacks = "attacks"
	// Table holds the table name of the campaign in the database.
	Table = "campaigns"
	// ProjectTable is the table that holds the project relation/edge.
	ProjectTable = "campaigns"
	// ProjectInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectInverseTable = "projects"
	// ProjectColumn is the table column denoting the project relation/edge.
	ProjectColumn = "project_id"
	// HashListTable is the table that holds the hash_list relation/edge.
	HashListTable = "campaigns"
	// HashListInverseTable is the table name for the HashList entity.
	// It exists in this package in order to avoid circular dependency with the "hashlist" package.
	HashListInverseTable = "hash_lists"
	// HashListColumn is the table column denoting the hash_list relation/edge.
	HashListColumn = "hash_list_id"
	// AttacksTable is the table that holds the attacks relation/edge.
	AttacksTable = "attacks"
	// AttacksInverseTable is the table name for the Attack entity.
	// It exists in this package in order to avoid circular dependency with the "attack" package.
	AttacksInverseTable = "attacks"
	// AttacksColumn is the table column denoting the attacks relation/edge.
	AttacksColumn = "campaign_id"
)

// Columns holds all SQL columns for campaign fields.
var Columns = []string{
	FieldID,
	FieldName,
	FieldPriority,
	FieldState,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "campaigns"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"hash_list_id",
	"project_id",
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
	// NameValidator is a validator for the "name" field. It is called by the builders before save.
	NameValidator func(string) error
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Priority defines the type for the "priority" enum field.
type Priority string

// PriorityRoutine is the default value of the Priority enum.
const DefaultPriority = PriorityRoutine

// Priority values.
const (
	PriorityDeferred  Priority = "deferred"
	PriorityRoutine   Priority = "routine"
	PriorityPriority  Priority = "priority"
	PriorityUrgent    Priority = "urgent"
	PriorityImmediate Priority = "immediate"
	PriorityFlash     Priority = "flash"
)

func (pr Priority) String() string {
	return string(pr)
}

// PriorityValidator is a validator for the "priority" field enum values. It is called by the builders before save.
func PriorityValidator(pr Priority) error {
	switch pr {
	case PriorityDeferred, PriorityRoutine, PriorityPriority, PriorityUrgent, PriorityImmediate, PriorityFlash:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for priority field: %q", pr)
	}
}

// State defines the type for the "state" enum field.
type State string

// StateDraft is the default value of the State enum.
const DefaultState = StateDraft

// State values.
const (
	StateDraft     State = "draft"
	StateActive    State = "active"
	StateCompleted State = "completed"
	StateArchived  State = "archived"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StateDraft, StateActive, StateCompleted, StateArchived:
		return nil
	default:
		return fmt.Errorf("campaign: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Campaign queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByName orders the results by the name field.
func ByName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldName, opts...).ToFunc()
}

// ByPriority orders the results by the priority field.
func ByPriority(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPriority, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByProjectField orders the results by project field.
func ByProjectField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectStep(), sql.OrderByField(field, opts...))
	}
}

// ByHashListField orders the results by hash_list field.
func ByHashListField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHashListStep(), sql.OrderByField(field, opts...))
	}
}

// ByAttacksCount orders the results by attacks count.
func ByAttacksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAttacksStep(), opts...)
	}
}

// ByAttacks orders the results by attacks terms.
func ByAttacks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAttacksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, ProjectTable, ProjectColumn),
	)
}
func newHashListStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HashListInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HashListTable, HashListColumn),
	)
}
func newAttacksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AttacksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AttacksTable, AttacksColumn),
	)
}
