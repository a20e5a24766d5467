// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// AgentError is the model entity for the AgentError schema.
type AgentError struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Severity holds the value of the "severity" field.
	Severity agenterror.Severity `json:"severity,omitempty"`
	// Message holds the value of the "message" field.
	Message string `json:"message,omitempty"`
	// ContextJSON holds the value of the "context_json" field.
	ContextJSON string `json:"context_json,omitempty"`
	// RecordedAt holds the value of the "recorded_at" field.
	RecordedAt time.Time `json:"recorded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AgentErrorQuery when eager-loading is set.
	Edges        AgentErrorEdges `json:"edges"`
	agent_id     *int64
	task_id      *int64
	selectValues sql.SelectValues
}

// AgentErrorEdges holds the relations/edges for other nodes in the graph.
type AgentErrorEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentErrorEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AgentErrorEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AgentError) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case agenterror.FieldID:
			values[i] = new(sql.NullInt64)
		case agenterror.FieldSeverity, agenterror.FieldMessage, agenterror.FieldContextJSON:
			values[i] = new(sql.NullString)
		case agenterror.FieldRecordedAt:
			values[i] = new(sql.NullTime)
		case agenterror.ForeignKeys[0]: // agent_id
			values[i] = new(sql.NullInt64)
		case agenterror.ForeignKeys[1]: // task_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AgentError fields.
func (_m *AgentError) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case agenterror.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case agenterror.FieldSeverity:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field severity", values[i])
			} else if value.Valid {
				_m.Severity = agenterror.Severity(value.String)
			}
		case agenterror.FieldMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message", values[i])
			} else if value.Valid {
				_m.Message = value.String
			}
		case agenterror.FieldContextJSON:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field context_json", values[i])
			} else if value.Valid {
				_m.ContextJSON = value.String
			}
		case agenterror.FieldRecordedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field recorded_at", values[i])
			} else if value.Valid {
				_m.RecordedAt = value.Time
			}
		case agenterror.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field agent_id", value)
			} else if value.Valid {
				_m.agent_id = new(int64)
				*_m.agent_id = int64(value.Int64)
			}
		case agenterror.ForeignKeys[1]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field task_id", value)
			} else if value.Valid {
				_m.task_id = new(int64)
				*_m.task_id = int64(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AgentError.
// This includes values selected through modifiers, order, etc.
func (_m *AgentError) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the AgentError entity.
func (_m *AgentError) QueryAgent() *AgentQuery {
	return NewAgentErrorClient(_m.config).QueryAgent(_m)
}

// QueryTask queries the "task" edge of the AgentError entity.
func (_m *AgentError) QueryTask() *TaskQuery {
	return NewAgentErrorClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this AgentError.
// Note that you need to call AgentError.Unwrap() before calling this method if this AgentError
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AgentError) Update() *AgentErrorUpdateOne {
	return NewAgentErrorClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AgentError entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AgentError) Unwrap() *AgentError {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AgentError is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AgentError) String() string {
	var builder strings.Builder
	builder.WriteString("AgentError(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("severity=")
	builder.WriteString(fmt.Sprintf("%v", _m.Severity))
	builder.WriteString(", ")
	builder.WriteString("message=")
	builder.WriteString(_m.Message)
	builder.WriteString(", ")
	builder.WriteString("context_json=")
	builder.WriteString(_m.ContextJSON)
	builder.WriteString(", ")
	builder.WriteString("recorded_at=")
	builder.WriteString(_m.RecordedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// AgentErrors is a parsable slice of AgentError.
type AgentErrors []*AgentError
