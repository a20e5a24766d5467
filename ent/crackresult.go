// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// CrackResult is the model entity for the CrackResult schema.
type CrackResult struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// HashValue holds the value of the "hash_value" field.
	HashValue string `json:"hash_value,omitempty"`
	// Plaintext holds the value of the "plaintext" field.
	Plaintext string `json:"plaintext,omitempty"`
	// CrackedAt holds the value of the "cracked_at" field.
	CrackedAt time.Time `json:"cracked_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the CrackResultQuery when eager-loading is set.
	Edges        CrackResultEdges `json:"edges"`
	hash_item_id *int64
	task_id      *int64
	selectValues sql.SelectValues
}

// CrackResultEdges holds the relations/edges for other nodes in the graph.
type CrackResultEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// HashItem holds the value of the hash_item edge.
	HashItem *HashItem `json:"hash_item,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CrackResultEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// HashItemOrErr returns the HashItem value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e CrackResultEdges) HashItemOrErr() (*HashItem, error) {
	if e.HashItem != nil {
		return e.HashItem, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: hashitem.Label}
	}
	return nil, &NotLoadedError{edge: "hash_item"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*CrackResult) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case crackresult.FieldID:
			values[i] = new(sql.NullInt64)
		case crackresult.FieldHashValue, crackresult.FieldPlaintext:
			values[i] = new(sql.NullString)
		case crackresult.FieldCrackedAt:
			values[i] = new(sql.NullTime)
		case crackresult.ForeignKeys[0]: // hash_item_id
			values[i] = new(sql.NullInt64)
		case crackresult.ForeignKeys[1]: // task_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the CrackResult fields.
func (_m *CrackResult) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case crackresult.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case crackresult.FieldHashValue:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hash_value", values[i])
			} else if value.Valid {
				_m.HashValue = value.String
			}
		case crackresult.FieldPlaintext:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plaintext", values[i])
			} else if value.Valid {
				_m.Plaintext = value.String
			}
		case crackresult.FieldCrackedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field cracked_at", values[i])
			} else if value.Valid {
				_m.CrackedAt = value.Time
			}
		case crackresult.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field hash_item_id", value)
			} else if value.Valid {
				_m.hash_item_id = new(int64)
				*_m.hash_item_id = int64(value.Int64)
			}
		case crackresult.ForeignKeys[1]:
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

// Value returns the ent.Value that was dynamically selected and assigned to the CrackResult.
// This includes values selected through modifiers, order, etc.
func (_m *CrackResult) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the CrackResult entity.
func (_m *CrackResult) QueryTask() *TaskQuery {
	return NewCrackResultClient(_m.config).QueryTask(_m)
}

// QueryHashItem queries the "hash_item" edge of the CrackResult entity.
func (_m *CrackResult) QueryHashItem() *HashItemQuery {
	return NewCrackResultClient(_m.config).QueryHashItem(_m)
}

// Update returns a builder for updating this CrackResult.
// Note that you need to call CrackResult.Unwrap() before calling this method if this CrackResult
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *CrackResult) Update() *CrackResultUpdateOne {
	return NewCrackResultClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the CrackResult entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *CrackResult) Unwrap() *CrackResult {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: CrackResult is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *CrackResult) String() string {
	var builder strings.Builder
	builder.WriteString("CrackResult(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hash_value=")
	builder.WriteString(_m.HashValue)
	builder.WriteString(", ")
	builder.WriteString("plaintext=")
	builder.WriteString(_m.Plaintext)
	builder.WriteString(", ")
	builder.WriteString("cracked_at=")
	builder.WriteString(_m.CrackedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// CrackResults is a parsable slice of CrackResult.
type CrackResults []*CrackResult
