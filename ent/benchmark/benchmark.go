// Code generated by ent, DO NOT EDIT.

package benchmark

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the benchmark type in the database.
	Label = "benchmark"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHashType holds the string denoting the hash_type field in the database.
	FieldHashType = "hash_type"
	// FieldDeviceIndex holds the string denoting the device_index field in the database.
	FieldDeviceIndex = "device_index"
	// FieldHashSpeed holds the string denoting the hash_speed field in the database.
	FieldHashSpeed = "hash_speed"
	// FieldRuntimeMs holds the string denoting the runtime_ms field in the database.
	FieldRuntimeMs = "runtime_ms"
	// FieldMeasuredAt holds the string denoting the measured_at field in the database.
	FieldMeasuredAt = "measured_at"
	// EdgeAgent holds the string denoting the agent edge name in mutations.
	EdgeAgent = "agent"
	// Table holds the table name of the benchmark in the database.
	Table = "benchmarks"
	// AgentTable is the table that holds the agent relation/edge.
	AgentTable = "benchmarks"
	// AgentInverseTable is the table name for the Agent entity.
	// It exists in this package in order to avoid circular dependency with the "agent" package.
	AgentInverseTable = "agents"
	// AgentColumn is the table column denoting the agent relation/edge.
	AgentColumn = "agent_id"
)

// Columns holds all SQL columns for benchmark fields.
var Columns = []string{
	FieldID,
	FieldHashType,
	FieldDeviceIndex,
	FieldHashSpeed,
	FieldRuntimeMs,
	FieldMeasuredAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "benchmarks"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"agent_id",
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
	// DeviceIndexValidator is a validator for the "device_index" field. It is called by the builders before save.
	DeviceIndexValidator func(int) error
	// DefaultMeasuredAt holds the default value on creation for the "measured_at" field.
	DefaultMeasuredAt func() time.Time
)

// OrderOption defines the ordering options for the Benchmark queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHashType orders the results by the hash_type field.
func ByHashType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashType, opts...).ToFunc()
}

// ByDeviceIndex orders the results by the device_index field.
func ByDeviceIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeviceIndex, opts...).ToFunc()
}

// ByHashSpeed orders the results by the hash_speed field.
func ByHashSpeed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashSpeed, opts...).ToFunc()
}

// ByRuntimeMs orders the results by the runtime_ms field.
func ByRuntimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRuntimeMs, opts...).ToFunc()
}

// ByMeasuredAt orders the results by the measured_at field.
func ByMeasuredAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMeasuredAt, opts...).ToFunc()
}

// ByAgentField orders the results by agent field.
func ByAgentField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentStep(), sql.OrderByField(field, opts...))
	}
}
func newAgentStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, AgentTable, AgentColumn),
	)
}
