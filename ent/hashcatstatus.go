// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/schema"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// HashcatStatus is the model entity for the HashcatStatus schema.
type HashcatStatus struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// ReceivedAt holds the value of the "received_at" field.
	ReceivedAt time.Time `json:"received_at,omitempty"`
	// Session holds the value of the "session" field.
	Session string `json:"session,omitempty"`
	// StatusCode holds the value of the "status_code" field.
	StatusCode int `json:"status_code,omitempty"`
	// Target holds the value of the "target" field.
	Target string `json:"target,omitempty"`
	// ProgressDone holds the value of the "progress_done" field.
	ProgressDone int64 `json:"progress_done,omitempty"`
	// ProgressTotal holds the value of the "progress_total" field.
	ProgressTotal int64 `json:"progress_total,omitempty"`
	// RestorePoint holds the value of the "restore_point" field.
	RestorePoint int64 `json:"restore_point,omitempty"`
	// RecoveredHashes holds the value of the "recovered_hashes" field.
	RecoveredHashes []string `json:"recovered_hashes,omitempty"`
	// RecoveredSalts holds the value of the "recovered_salts" field.
	RecoveredSalts []string `json:"recovered_salts,omitempty"`
	// Rejected holds the value of the "rejected" field.
	Rejected int64 `json:"rejected,omitempty"`
	// Devices holds the value of the "devices" field.
	Devices []schema.DeviceStatus `json:"devices,omitempty"`
	// TimeStart holds the value of the "time_start" field.
	TimeStart *time.Time `json:"time_start,omitempty"`
	// EstimatedStop holds the value of the "estimated_stop" field.
	EstimatedStop *time.Time `json:"estimated_stop,omitempty"`
	// HashcatGuess holds the value of the "hashcat_guess" field.
	HashcatGuess string `json:"hashcat_guess,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HashcatStatusQuery when eager-loading is set.
	Edges        HashcatStatusEdges `json:"edges"`
	task_id      *int64
	selectValues sql.SelectValues
}

// HashcatStatusEdges holds the relations/edges for other nodes in the graph.
type HashcatStatusEdges struct {
	// Task holds the value of the task edge.
	Task *Task `json:"task,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// TaskOrErr returns the Task value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HashcatStatusEdges) TaskOrErr() (*Task, error) {
	if e.Task != nil {
		return e.Task, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: task.Label}
	}
	return nil, &NotLoadedError{edge: "task"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HashcatStatus) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hashcatstatus.FieldRecoveredHashes, hashcatstatus.FieldRecoveredSalts, hashcatstatus.FieldDevices:
			values[i] = new([]byte)
		case hashcatstatus.FieldID, hashcatstatus.FieldStatusCode, hashcatstatus.FieldProgressDone, hashcatstatus.FieldProgressTotal, hashcatstatus.FieldRestorePoint, hashcatstatus.FieldRejected:
			values[i] = new(sql.NullInt64)
		case hashcatstatus.FieldSession, hashcatstatus.FieldTarget, hashcatstatus.FieldHashcatGuess:
			values[i] = new(sql.NullString)
		case hashcatstatus.FieldReceivedAt, hashcatstatus.FieldTimeStart, hashcatstatus.FieldEstimatedStop:
			values[i] = new(sql.NullTime)
		case hashcatstatus.ForeignKeys[0]: // task_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HashcatStatus fields.
func (_m *HashcatStatus) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hashcatstatus.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case hashcatstatus.FieldReceivedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field received_at", values[i])
			} else if value.Valid {
				_m.ReceivedAt = value.Time
			}
		case hashcatstatus.FieldSession:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session", values[i])
			} else if value.Valid {
				_m.Session = value.String
			}
		case hashcatstatus.FieldStatusCode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field status_code", values[i])
			} else if value.Valid {
				_m.StatusCode = int(value.Int64)
			}
		case hashcatstatus.FieldTarget:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field target", values[i])
			} else if value.Valid {
				_m.Target = value.String
			}
		case hashcatstatus.FieldProgressDone:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_done", values[i])
			} else if value.Valid {
				_m.ProgressDone = value.Int64
			}
		case hashcatstatus.FieldProgressTotal:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field progress_total", values[i])
			} else if value.Valid {
				_m.ProgressTotal = value.Int64
			}
		case hashcatstatus.FieldRestorePoint:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field restore_point", values[i])
			} else if value.Valid {
				_m.RestorePoint = value.Int64
			}
		case hashcatstatus.FieldRecoveredHashes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recovered_hashes", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecoveredHashes); err != nil {
					return fmt.Errorf("unmarshal field recovered_hashes: %w", err)
				}
			}
		case hashcatstatus.FieldRecoveredSalts:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field recovered_salts", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RecoveredSalts); err != nil {
					return fmt.Errorf("unmarshal field recovered_salts: %w", err)
				}
			}
		case hashcatstatus.FieldRejected:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field rejected", values[i])
			} else if value.Valid {
				_m.Rejected = value.Int64
			}
		case hashcatstatus.FieldDevices:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field devices", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Devices); err != nil {
					return fmt.Errorf("unmarshal field devices: %w", err)
				}
			}
		case hashcatstatus.FieldTimeStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field time_start", values[i])
			} else if value.Valid {
				_m.TimeStart = new(time.Time)
				*_m.TimeStart = value.Time
			}
		case hashcatstatus.FieldEstimatedStop:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field estimated_stop", values[i])
			} else if value.Valid {
				_m.EstimatedStop = new(time.Time)
				*_m.EstimatedStop = value.Time
			}
		case hashcatstatus.FieldHashcatGuess:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field hashcat_guess", values[i])
			} else if value.Valid {
				_m.HashcatGuess = value.String
			}
		case hashcatstatus.ForeignKeys[0]:
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

// Value returns the ent.Value that was dynamically selected and assigned to the HashcatStatus.
// This includes values selected through modifiers, order, etc.
func (_m *HashcatStatus) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryTask queries the "task" edge of the HashcatStatus entity.
func (_m *HashcatStatus) QueryTask() *TaskQuery {
	return NewHashcatStatusClient(_m.config).QueryTask(_m)
}

// Update returns a builder for updating this HashcatStatus.
// Note that you need to call HashcatStatus.Unwrap() before calling this method if this HashcatStatus
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HashcatStatus) Update() *HashcatStatusUpdateOne {
	return NewHashcatStatusClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HashcatStatus entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HashcatStatus) Unwrap() *HashcatStatus {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HashcatStatus is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HashcatStatus) String() string {
	var builder strings.Builder
	builder.WriteString("HashcatStatus(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("received_at=")
	builder.WriteString(_m.ReceivedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session=")
	builder.WriteString(_m.Session)
	builder.WriteString(", ")
	builder.WriteString("status_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.StatusCode))
	builder.WriteString(", ")
	builder.WriteString("target=")
	builder.WriteString(_m.Target)
	builder.WriteString(", ")
	builder.WriteString("progress_done=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressDone))
	builder.WriteString(", ")
	builder.WriteString("progress_total=")
	builder.WriteString(fmt.Sprintf("%v", _m.ProgressTotal))
	builder.WriteString(", ")
	builder.WriteString("restore_point=")
	builder.WriteString(fmt.Sprintf("%v", _m.RestorePoint))
	builder.WriteString(", ")
	builder.WriteString("recovered_hashes=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveredHashes))
	builder.WriteString(", ")
	builder.WriteString("recovered_salts=")
	builder.WriteString(fmt.Sprintf("%v", _m.RecoveredSalts))
	builder.WriteString(", ")
	builder.WriteString("rejected=")
	builder.WriteString(fmt.Sprintf("%v", _m.Rejected))
	builder.WriteString(", ")
	builder.WriteString("devices=")
	builder.WriteString(fmt.Sprintf("%v", _m.Devices))
	builder.WriteString(", ")
	if v := _m.TimeStart; v != nil {
		builder.WriteString("time_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.EstimatedStop; v != nil {
		builder.WriteString("estimated_stop=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("hashcat_guess=")
	builder.WriteString(_m.HashcatGuess)
	builder.WriteByte(')')
	return builder.String()
}

// HashcatStatusSlice is a parsable slice of HashcatStatus.
type HashcatStatusSlice []*HashcatStatus
