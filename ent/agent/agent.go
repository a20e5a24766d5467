// Code generated by ent, DO NOT EDIT.

package agent

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the agent type in the database.
	Label = "agent"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHostName holds the string denoting the host_name field in the database.
	FieldHostName = "host_name"
	// FieldClientSignature holds the string denoting the client_signature field in the database.
	FieldClientSignature = "client_signature"
	// FieldOperatingSystem holds the string denoting the operating_system field in the database.
	FieldOperatingSystem = "operating_system"
	// FieldDevices holds the string denoting the devices field in the database.
	FieldDevices = "devices"
	// FieldToken holds the string denoting the token field in the database.
	FieldToken = "token"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldLastSeenAt holds the string denoting the last_seen_at field in the database.
	FieldLastSeenAt = "last_seen_at"
	// FieldLastIpaddress holds the string denoting the last_ipaddress field in the database.
	FieldLastIpaddress = "last_ipaddress"
	// FieldAdvancedConfig holds the string denoting the advanced_config field in the database.
	FieldAdvancedConfig = "advanced_config"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeProjects holds the string denoting the projects edge name in mutations.
	EdgeProjects = "projects"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// EdgeBenchmarks holds the string denoting the benchmarks edge name in mutations.
	EdgeBenchmarks = "benchmarks"
	// EdgeAgentErrors holds the string denoting the agent_errors edge name in mutations.
	EdgeAgentErrors = "agent_errors"
	// Table holds the table name of the agent in the database.
	Table = "agents"
	// ProjectsTable is the table that holds the projects relation/edge. The primary key declared below.
	ProjectsTable = "project_agents"
	// ProjectsInverseTable is the table name for the Project entity.
	// It exists in this package in order to avoid circular dependency with the "project" package.
	ProjectsInverseTable = "projects"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "agent_id"
	// BenchmarksTable is the table that holds the benchmarks relation/edge.
	BenchmarksTable = "benchmarks"
	// BenchmarksInverseTable is the table name for the Benchmark entity.
	// It exists in this package in order to avoid circular dependency with the "benchmark" package.
	BenchmarksInverseTable = "benchmarks"
	// BenchmarksColumn is the table column denoting the benchmarks relation/edge.
	BenchmarksColumn = "agent_id"
	// AgentErrorsTable is the table that holds the agent_errors relation/edge.
	AgentErrorsTable = "agent_errors"
	// AgentErrorsInverseTable is the table name for the AgentError entity.
	// It exists in this package in order to avoid circular dependency with the "agenterror" package.
	AgentErrorsInverseTable = "agent_errors"
	// AgentErrorsColumn is the table column denoting the agent_errors relation/edge.
	AgentErrorsColumn = "agent_id"
)

// Columns holds all SQL columns for agent fields.
var Columns = []string{
	FieldID,
	FieldHostName,
	FieldClientSignature,
	FieldOperatingSystem,
	FieldDevices,
	FieldToken,
	FieldState,
	FieldLastSeenAt,
	FieldLastIpaddress,
	FieldAdvancedConfig,
	FieldCreatedAt,
}

var (
	// ProjectsPrimaryKey and ProjectsColumn2 are the table columns denoting the
	// primary key for the projects relation (M2M).
	ProjectsPrimaryKey = []string{"project_id", "agent_id"}
)

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// HostNameValidator is a validator for the "host_name" field. It is called by the builders before save.
	HostNameValidator func(string) error
	// ClientSignatureValidator is a validator for the "client_signature" field. It is called by the builders before save.
	ClientSignatureValidator func(string) error
	// DefaultOperatingSystem holds the default value on creation for the "operating_system" field.
	DefaultOperatingSystem string
	// TokenValidator is a validator for the "token" field. It is called by the builders before save.
	TokenValidator func(string) error
	// DefaultLastIpaddress holds the default value on creation for the "last_ipaddress" field.
	DefaultLastIpaddress string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// State defines the type for the "state" enum field.
type State string

// StatePending is the default value of the State enum.
const DefaultState = StatePending

// State values.
const (
	StatePending State = "pending"
	StateActive  State = "active"
	StateStopped State = "stopped"
	StateError   State = "error"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePending, StateActive, StateStopped, StateError:
		return nil
	default:
		return fmt.Errorf("agent: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Agent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHostName orders the results by the host_name field.
func ByHostName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHostName, opts...).ToFunc()
}

// ByClientSignature orders the results by the client_signature field.
func ByClientSignature(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClientSignature, opts...).ToFunc()
}

// ByOperatingSystem orders the results by the operating_system field.
func ByOperatingSystem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOperatingSystem, opts...).ToFunc()
}

// ByToken orders the results by the token field.
func ByToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldToken, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByLastSeenAt orders the results by the last_seen_at field.
func ByLastSeenAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeenAt, opts...).ToFunc()
}

// ByLastIpaddress orders the results by the last_ipaddress field.
func ByLastIpaddress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastIpaddress, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByProjectsCount orders the results by projects count.
func ByProjectsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newProjectsStep(), opts...)
	}
}

// ByProjects orders the results by projects terms.
func ByProjects(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newProjectsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByBenchmarksCount orders the results by benchmarks count.
func ByBenchmarksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newBenchmarksStep(), opts...)
	}
}

// ByBenchmarks orders the results by benchmarks terms.
func ByBenchmarks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newBenchmarksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByAgentErrorsCount orders the results by agent_errors count.
func ByAgentErrorsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newAgentErrorsStep(), opts...)
	}
}

// ByAgentErrors orders the results by agent_errors terms.
func ByAgentErrors(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newAgentErrorsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newProjectsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ProjectsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2M, true, ProjectsTable, ProjectsPrimaryKey...),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
func newBenchmarksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(BenchmarksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, BenchmarksTable, BenchmarksColumn),
	)
}
func newAgentErrorsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(AgentErrorsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, AgentErrorsTable, AgentErrorsColumn),
	)
}
