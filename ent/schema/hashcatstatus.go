package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeviceStatus is the per-device status reported inside a HashcatStatus frame.
type DeviceStatus struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Type        string  `json:"type"`
	Speed       int64   `json:"speed"`
	Utilization int     `json:"utilization"`
	Temperature int     `json:"temperature"`
}

// HashcatStatus holds the schema definition for the HashcatStatus entity.
// A bounded-history progress frame; only the most recent N per task are
// retained (pkg/cleanup trims older rows, and the whole set is purged by
// cascade when the owning task is destroyed).
type HashcatStatus struct {
	ent.Schema
}

// Fields of the HashcatStatus.
func (HashcatStatus) Fields() []ent.Field {
	return []ent.Field{
		field.Time("received_at").
			Default(time.Now).
			Immutable(),
		field.String("session").
			Optional().
			Default(""),
		field.Int("status_code"),
		field.String("target").
			Optional().
			Default(""),
		field.Int64("progress_done"),
		field.Int64("progress_total"),
		field.Int64("restore_point").
			Optional().
			Default(0),
		field.Strings("recovered_hashes").
			Optional(),
		field.Strings("recovered_salts").
			Optional(),
		field.Int64("rejected").
			Optional().
			Default(0),
		field.JSON("devices", []DeviceStatus{}).
			Optional(),
		field.Time("time_start").
			Optional().
			Nillable(),
		field.Time("estimated_stop").
			Optional().
			Nillable(),
		field.String("hashcat_guess").
			Optional().
			Default(""),
	}
}

// Edges of the HashcatStatus.
func (HashcatStatus) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("task", Task.Type).
			Ref("statuses").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the HashcatStatus.
func (HashcatStatus) Indexes() []ent.Index {
	return []ent.Index{
		index.Edges("task").Fields("received_at"),
	}
}
