// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
)

// Benchmark is the model entity for the Benchmark schema.
type Benchmark struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// HashType holds the value of the "hash_type" field.
	HashType int `json:"hash_type,omitempty"`
	// DeviceIndex holds the value of the "device_index" field.
	DeviceIndex int `json:"device_index,omitempty"`
	// HashSpeed holds the value of the "hash_speed" field.
	HashSpeed float64 `json:"hash_speed,omitempty"`
	// RuntimeMs holds the value of the "runtime_ms" field.
	RuntimeMs int64 `json:"runtime_ms,omitempty"`
	// MeasuredAt holds the value of the "measured_at" field.
	MeasuredAt time.Time `json:"measured_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the BenchmarkQuery when eager-loading is set.
	Edges        BenchmarkEdges `json:"edges"`
	agent_id     *int64
	selectValues sql.SelectValues
}

// BenchmarkEdges holds the relations/edges for other nodes in the graph.
type BenchmarkEdges struct {
	// Agent holds the value of the agent edge.
	Agent *Agent `json:"agent,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// AgentOrErr returns the Agent value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e BenchmarkEdges) AgentOrErr() (*Agent, error) {
	if e.Agent != nil {
		return e.Agent, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: agent.Label}
	}
	return nil, &NotLoadedError{edge: "agent"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Benchmark) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case benchmark.FieldHashSpeed:
			values[i] = new(sql.NullFloat64)
		case benchmark.FieldID, benchmark.FieldHashType, benchmark.FieldDeviceIndex, benchmark.FieldRuntimeMs:
			values[i] = new(sql.NullInt64)
		case benchmark.FieldMeasuredAt:
			values[i] = new(sql.NullTime)
		case benchmark.ForeignKeys[0]: // agent_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Benchmark fields.
func (_m *Benchmark) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case benchmark.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case benchmark.FieldHashType:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hash_type", values[i])
			} else if value.Valid {
				_m.HashType = int(value.Int64)
			}
		case benchmark.FieldDeviceIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field device_index", values[i])
			} else if value.Valid {
				_m.DeviceIndex = int(value.Int64)
			}
		case benchmark.FieldHashSpeed:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field hash_speed", values[i])
			} else if value.Valid {
				_m.HashSpeed = value.Float64
			}
		case benchmark.FieldRuntimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field runtime_ms", values[i])
			} else if value.Valid {
				_m.RuntimeMs = value.Int64
			}
		case benchmark.FieldMeasuredAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field measured_at", values[i])
			} else if value.Valid {
				_m.MeasuredAt = value.Time
			}
		case benchmark.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field agent_id", value)
			} else if value.Valid {
				_m.agent_id = new(int64)
				*_m.agent_id = int64(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Benchmark.
// This includes values selected through modifiers, order, etc.
func (_m *Benchmark) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryAgent queries the "agent" edge of the Benchmark entity.
func (_m *Benchmark) QueryAgent() *AgentQuery {
	return NewBenchmarkClient(_m.config).QueryAgent(_m)
}

// Update returns a builder for updating this Benchmark.
// Note that you need to call Benchmark.Unwrap() before calling this method if this Benchmark
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Benchmark) Update() *BenchmarkUpdateOne {
	return NewBenchmarkClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Benchmark entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Benchmark) Unwrap() *Benchmark {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Benchmark is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Benchmark) String() string {
	var builder strings.Builder
	builder.WriteString("Benchmark(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("hash_type=")
	builder.WriteString(fmt.Sprintf("%v", _m.HashType))
	builder.WriteString(", ")
	builder.WriteString("device_index=")
	builder.WriteString(fmt.Sprintf("%v", _m.DeviceIndex))
	builder.WriteString(", ")
	builder.WriteString("hash_speed=")
	builder.WriteString(fmt.Sprintf("%v", _m.HashSpeed))
	builder.WriteString(", ")
	builder.WriteString("runtime_ms=")
	builder.WriteString(fmt.Sprintf("%v", _m.RuntimeMs))
	builder.WriteString(", ")
	builder.WriteString("measured_at=")
	builder.WriteString(_m.MeasuredAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Benchmarks is a parsable slice of Benchmark.
type Benchmarks []*Benchmark
