// Code generated by ent, DO NOT EDIT.

package crackresult

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the crackresult type in the database.
	Label = "crack_result"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHashValue holds the string denoting the hash_value field in the database.
	FieldHashValue = "hash_value"
	// FieldPlaintext holds the string denoting the plaintext field in the database.
	FieldPlaintext = "plaintext"
	// FieldCrackedAt holds the string denoting the cracked_at field in the database.
	FieldCrackedAt = "cracked_at"
	// EdgeTask holds the string denoting the task edge name in mutations.
	EdgeTask = "task"
	// EdgeHashItem holds the string denoting the hash_item edge name in mutations.
	EdgeHashItem = "hash_item"
	// Table holds the table name of the crackresult in the database.
	Table = "crack_results"
	// TaskTable is the table that holds the task relation/edge.
	TaskTable = "crack_results"
	// TaskInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TaskInverseTable = "tasks"
	// TaskColumn is the table column denoting the task relation/edge.
	TaskColumn = "task_id"
	// HashItemTable is the table that holds the hash_item relation/edge.
	HashItemTable = "crack_results"
	// HashItemInverseTable is the table name for the HashItem entity.
	// It exists in this package in order to avoid circular dependency with the "hashitem" package.
	HashItemInverseTable = "hash_items"
	// HashItemColumn is the table column denoting the hash_item relation/edge.
	HashItemColumn = "hash_item_id"
)

// Columns holds all SQL columns for crackresult fields.
var Columns = []string{
	FieldID,
	FieldHashValue,
	FieldPlaintext,
	FieldCrackedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "crack_results"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"hash_item_id",
	"task_id",
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
	// HashValueValidator is a validator for the "hash_value" field. It is called by the builders before save.
	HashValueValidator func(string) error
	// DefaultCrackedAt holds the default value on creation for the "cracked_at" field.
	DefaultCrackedAt func() time.Time
)

// OrderOption defines the ordering options for the CrackResult queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHashValue orders the results by the hash_value field.
func ByHashValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashValue, opts...).ToFunc()
}

// ByPlaintext orders the results by the plaintext field.
func ByPlaintext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaintext, opts...).ToFunc()
}

// ByCrackedAt orders the results by the cracked_at field.
func ByCrackedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrackedAt, opts...).ToFunc()
}

// ByTaskField orders the results by task field.
func ByTaskField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTaskStep(), sql.OrderByField(field, opts...))
	}
}

// ByHashItemField orders the results by hash_item field.
func ByHashItemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHashItemStep(), sql.OrderByField(field, opts...))
	}
}
func newTaskStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TaskInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, TaskTable, TaskColumn),
	)
}
func newHashItemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HashItemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HashItemTable, HashItemColumn),
	)
}
