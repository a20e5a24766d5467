// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
)

// HashList is the model entity for the HashList schema.
type HashList struct {
	config `json:"-"`
	// ID of the ent.
	ID int64 `json:"id,omitempty"`
	// Name holds the value of the "name" field.
	Name string `json:"name,omitempty"`
	// HashMode holds the value of the "hash_mode" field.
	HashMode int `json:"hash_mode,omitempty"`
	// UncrackedCount holds the value of the "uncracked_count" field.
	UncrackedCount int `json:"uncracked_count,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the HashListQuery when eager-loading is set.
	Edges        HashListEdges `json:"edges"`
	project_id   *int64
	selectValues sql.SelectValues
}

// HashListEdges holds the relations/edges for other nodes in the graph.
type HashListEdges struct {
	// Project holds the value of the project edge.
	Project *Project `json:"project,omitempty"`
	// Items holds the value of the items edge.
	Items []*HashItem `json:"items,omitempty"`
	// Campaigns holds the value of the campaigns edge.
	Campaigns []*Campaign `json:"campaigns,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// ProjectOrErr returns the Project value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e HashListEdges) ProjectOrErr() (*Project, error) {
	if e.Project != nil {
		return e.Project, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: project.Label}
	}
	return nil, &NotLoadedError{edge: "project"}
}

// ItemsOrErr returns the Items value or an error if the edge
// was not loaded in eager-loading.
func (e HashListEdges) ItemsOrErr() ([]*HashItem, error) {
	if e.loadedTypes[1] {
		return e.Items, nil
	}
	return nil, &NotLoadedError{edge: "items"}
}

// CampaignsOrErr returns the Campaigns value or an error if the edge
// was not loaded in eager-loading.
func (e HashListEdges) CampaignsOrErr() ([]*Campaign, error) {
	if e.loadedTypes[2] {
		return e.Campaigns, nil
	}
	return nil, &NotLoadedError{edge: "campaigns"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*HashList) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case hashlist.FieldID, hashlist.FieldHashMode, hashlist.FieldUncrackedCount:
			values[i] = new(sql.NullInt64)
		case hashlist.FieldName:
			values[i] = new(sql.NullString)
		case hashlist.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case hashlist.ForeignKeys[0]: // project_id
			values[i] = new(sql.NullInt64)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the HashList fields.
func (_m *HashList) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case hashlist.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			_m.ID = int64(value.Int64)
		case hashlist.FieldName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field name", values[i])
			} else if value.Valid {
				_m.Name = value.String
			}
		case hashlist.FieldHashMode:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field hash_mode", values[i])
			} else if value.Valid {
				_m.HashMode = int(value.Int64)
			}
		case hashlist.FieldUncrackedCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field uncracked_count", values[i])
			} else if value.Valid {
				_m.UncrackedCount = int(value.Int64)
			}
		case hashlist.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case hashlist.ForeignKeys[0]:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for edge-field project_id", value)
			} else if value.Valid {
				_m.project_id = new(int64)
				*_m.project_id = int64(value.Int64)
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the HashList.
// This includes values selected through modifiers, order, etc.
func (_m *HashList) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryProject queries the "project" edge of the HashList entity.
func (_m *HashList) QueryProject() *ProjectQuery {
	return NewHashListClient(_m.config).QueryProject(_m)
}

// QueryItems queries the "items" edge of the HashList entity.
func (_m *HashList) QueryItems() *HashItemQuery {
	return NewHashListClient(_m.config).QueryItems(_m)
}

// QueryCampaigns queries the "campaigns" edge of the HashList entity.
func (_m *HashList) QueryCampaigns() *CampaignQuery {
	return NewHashListClient(_m.config).QueryCampaigns(_m)
}

// Update returns a builder for updating this HashList.
// Note that you need to call HashList.Unwrap() before calling this method if this HashList
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *HashList) Update() *HashListUpdateOne {
	return NewHashListClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the HashList entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *HashList) Unwrap() *HashList {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: HashList is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *HashList) String() string {
	var builder strings.Builder
	builder.WriteString("HashList(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("name=")
	builder.WriteString(_m.Name)
	builder.WriteString(", ")
	builder.WriteString("hash_mode=")
	builder.WriteString(fmt.Sprintf("%v", _m.HashMode))
	builder.WriteString(", ")
	builder.WriteString("uncracked_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.UncrackedCount))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// HashLists is a parsable slice of HashList.
type HashLists []*HashList
