// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/schema"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// HashcatStatusCreate is the builder for creating a HashcatStatus entity.
type HashcatStatusCreate struct {
	config
	mutation *HashcatStatusMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetReceivedAt sets the "received_at" field.
func (_c *HashcatStatusCreate) SetReceivedAt(v time.Time) *HashcatStatusCreate {
	_c.mutation.SetReceivedAt(v)
	return _c
}

// SetNillableReceivedAt sets the "received_at" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableReceivedAt(v *time.Time) *HashcatStatusCreate {
	if v != nil {
		_c.SetReceivedAt(*v)
	}
	return _c
}

// SetSession sets the "session" field.
func (_c *HashcatStatusCreate) SetSession(v string) *HashcatStatusCreate {
	_c.mutation.SetSession(v)
	return _c
}

// SetNillableSession sets the "session" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableSession(v *string) *HashcatStatusCreate {
	if v != nil {
		_c.SetSession(*v)
	}
	return _c
}

// SetStatusCode sets the "status_code" field.
func (_c *HashcatStatusCreate) SetStatusCode(v int) *HashcatStatusCreate {
	_c.mutation.SetStatusCode(v)
	return _c
}

// SetTarget sets the "target" field.
func (_c *HashcatStatusCreate) SetTarget(v string) *HashcatStatusCreate {
	_c.mutation.SetTarget(v)
	return _c
}

// SetNillableTarget sets the "target" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableTarget(v *string) *HashcatStatusCreate {
	if v != nil {
		_c.SetTarget(*v)
	}
	return _c
}

// SetProgressDone sets the "progress_done" field.
func (_c *HashcatStatusCreate) SetProgressDone(v int64) *HashcatStatusCreate {
	_c.mutation.SetProgressDone(v)
	return _c
}

// SetProgressTotal sets the "progress_total" field.
func (_c *HashcatStatusCreate) SetProgressTotal(v int64) *HashcatStatusCreate {
	_c.mutation.SetProgressTotal(v)
	return _c
}

// SetRestorePoint sets the "restore_point" field.
func (_c *HashcatStatusCreate) SetRestorePoint(v int64) *HashcatStatusCreate {
	_c.mutation.SetRestorePoint(v)
	return _c
}

// SetNillableRestorePoint sets the "restore_point" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableRestorePoint(v *int64) *HashcatStatusCreate {
	if v != nil {
		_c.SetRestorePoint(*v)
	}
	return _c
}

// SetRecoveredHashes sets the "recovered_hashes" field.
func (_c *HashcatStatusCreate) SetRecoveredHashes(v []string) *HashcatStatusCreate {
	_c.mutation.SetRecoveredHashes(v)
	return _c
}

// SetRecoveredSalts sets the "recovered_salts" field.
func (_c *HashcatStatusCreate) SetRecoveredSalts(v []string) *HashcatStatusCreate {
	_c.mutation.SetRecoveredSalts(v)
	return _c
}

// SetRejected sets the "rejected" field.
func (_c *HashcatStatusCreate) SetRejected(v int64) *HashcatStatusCreate {
	_c.mutation.SetRejected(v)
	return _c
}

// SetNillableRejected sets the "rejected" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableRejected(v *int64) *HashcatStatusCreate {
	if v != nil {
		_c.SetRejected(*v)
	}
	return _c
}

// SetDevices sets the "devices" field.
func (_c *HashcatStatusCreate) SetDevices(v []schema.DeviceStatus) *HashcatStatusCreate {
	_c.mutation.SetDevices(v)
	return _c
}

// SetTimeStart sets the "time_start" field.
func (_c *HashcatStatusCreate) SetTimeStart(v time.Time) *HashcatStatusCreate {
	_c.mutation.SetTimeStart(v)
	return _c
}

// SetNillableTimeStart sets the "time_start" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableTimeStart(v *time.Time) *HashcatStatusCreate {
	if v != nil {
		_c.SetTimeStart(*v)
	}
	return _c
}

// SetEstimatedStop sets the "estimated_stop" field.
func (_c *HashcatStatusCreate) SetEstimatedStop(v time.Time) *HashcatStatusCreate {
	_c.mutation.SetEstimatedStop(v)
	return _c
}

// SetNillableEstimatedStop sets the "estimated_stop" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableEstimatedStop(v *time.Time) *HashcatStatusCreate {
	if v != nil {
		_c.SetEstimatedStop(*v)
	}
	return _c
}

// SetHashcatGuess sets the "hashcat_guess" field.
func (_c *HashcatStatusCreate) SetHashcatGuess(v string) *HashcatStatusCreate {
	_c.mutation.SetHashcatGuess(v)
	return _c
}

// SetNillableHashcatGuess sets the "hashcat_guess" field if the given value is not nil.
func (_c *HashcatStatusCreate) SetNillableHashcatGuess(v *string) *HashcatStatusCreate {
	if v != nil {
		_c.SetHashcatGuess(*v)
	}
	return _c
}

// SetTaskID sets the "task" edge to the Task entity by ID.
func (_c *HashcatStatusCreate) SetTaskID(id int64) *HashcatStatusCreate {
	_c.mutation.SetTaskID(id)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *HashcatStatusCreate) SetTask(v *Task) *HashcatStatusCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the HashcatStatusMutation object of the builder.
func (_c *HashcatStatusCreate) Mutation() *HashcatStatusMutation {
	return _c.mutation
}

// Save creates the HashcatStatus in the database.
func (_c *HashcatStatusCreate) Save(ctx context.Context) (*HashcatStatus, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HashcatStatusCreate) SaveX(ctx context.Context) *HashcatStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashcatStatusCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashcatStatusCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HashcatStatusCreate) defaults() {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		v := hashcatstatus.DefaultReceivedAt()
		_c.mutation.SetReceivedAt(v)
	}
	if _, ok := _c.mutation.Session(); !ok {
		v := hashcatstatus.DefaultSession
		_c.mutation.SetSession(v)
	}
	if _, ok := _c.mutation.Target(); !ok {
		v := hashcatstatus.DefaultTarget
		_c.mutation.SetTarget(v)
	}
	if _, ok := _c.mutation.RestorePoint(); !ok {
		v := hashcatstatus.DefaultRestorePoint
		_c.mutation.SetRestorePoint(v)
	}
	if _, ok := _c.mutation.Rejected(); !ok {
		v := hashcatstatus.DefaultRejected
		_c.mutation.SetRejected(v)
	}
	if _, ok := _c.mutation.HashcatGuess(); !ok {
		v := hashcatstatus.DefaultHashcatGuess
		_c.mutation.SetHashcatGuess(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HashcatStatusCreate) check() error {
	if _, ok := _c.mutation.ReceivedAt(); !ok {
		return &ValidationError{Name: "received_at", err: errors.New(`ent: missing required field "HashcatStatus.received_at"`)}
	}
	if _, ok := _c.mutation.StatusCode(); !ok {
		return &ValidationError{Name: "status_code", err: errors.New(`ent: missing required field "HashcatStatus.status_code"`)}
	}
	if _, ok := _c.mutation.ProgressDone(); !ok {
		return &ValidationError{Name: "progress_done", err: errors.New(`ent: missing required field "HashcatStatus.progress_done"`)}
	}
	if _, ok := _c.mutation.ProgressTotal(); !ok {
		return &ValidationError{Name: "progress_total", err: errors.New(`ent: missing required field "HashcatStatus.progress_total"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "HashcatStatus.task"`)}
	}
	return nil
}

func (_c *HashcatStatusCreate) sqlSave(ctx context.Context) (*HashcatStatus, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	id := _spec.ID.Value.(int64)
	_node.ID = int64(id)
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *HashcatStatusCreate) createSpec() (*HashcatStatus, *sqlgraph.CreateSpec) {
	var (
		_node = &HashcatStatus{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hashcatstatus.Table, sqlgraph.NewFieldSpec(hashcatstatus.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.ReceivedAt(); ok {
		_spec.SetField(hashcatstatus.FieldReceivedAt, field.TypeTime, value)
		_node.ReceivedAt = value
	}
	if value, ok := _c.mutation.Session(); ok {
		_spec.SetField(hashcatstatus.FieldSession, field.TypeString, value)
		_node.Session = value
	}
	if value, ok := _c.mutation.StatusCode(); ok {
		_spec.SetField(hashcatstatus.FieldStatusCode, field.TypeInt, value)
		_node.StatusCode = value
	}
	if value, ok := _c.mutation.Target(); ok {
		_spec.SetField(hashcatstatus.FieldTarget, field.TypeString, value)
		_node.Target = value
	}
	if value, ok := _c.mutation.ProgressDone(); ok {
		_spec.SetField(hashcatstatus.FieldProgressDone, field.TypeInt64, value)
		_node.ProgressDone = value
	}
	if value, ok := _c.mutation.ProgressTotal(); ok {
		_spec.SetField(hashcatstatus.FieldProgressTotal, field.TypeInt64, value)
		_node.ProgressTotal = value
	}
	if value, ok := _c.mutation.RestorePoint(); ok {
		_spec.SetField(hashcatstatus.FieldRestorePoint, field.TypeInt64, value)
		_node.RestorePoint = value
	}
	if value, ok := _c.mutation.RecoveredHashes(); ok {
		_spec.SetField(hashcatstatus.FieldRecoveredHashes, field.TypeJSON, value)
		_node.RecoveredHashes = value
	}
	if value, ok := _c.mutation.RecoveredSalts(); ok {
		_spec.SetField(hashcatstatus.FieldRecoveredSalts, field.TypeJSON, value)
		_node.RecoveredSalts = value
	}
	if value, ok := _c.mutation.Rejected(); ok {
		_spec.SetField(hashcatstatus.FieldRejected, field.TypeInt64, value)
		_node.Rejected = value
	}
	if value, ok := _c.mutation.Devices(); ok {
		_spec.SetField(hashcatstatus.FieldDevices, field.TypeJSON, value)
		_node.Devices = value
	}
	if value, ok := _c.mutation.TimeStart(); ok {
		_spec.SetField(hashcatstatus.FieldTimeStart, field.TypeTime, value)
		_node.TimeStart = &value
	}
	if value, ok := _c.mutation.EstimatedStop(); ok {
		_spec.SetField(hashcatstatus.FieldEstimatedStop, field.TypeTime, value)
		_node.EstimatedStop = &value
	}
	if value, ok := _c.mutation.HashcatGuess(); ok {
		_spec.SetField(hashcatstatus.FieldHashcatGuess, field.TypeString, value)
		_node.HashcatGuess = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hashcatstatus.TaskTable,
			Columns: []string{hashcatstatus.TaskColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.task_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HashcatStatus.Create().
//		SetReceivedAt(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashcatStatusUpsert) {
//			SetReceivedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HashcatStatusCreate) OnConflict(opts ...sql.ConflictOption) *HashcatStatusUpsertOne {
	_c.conflict = opts
	return &HashcatStatusUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashcatStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashcatStatusCreate) OnConflictColumns(columns ...string) *HashcatStatusUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashcatStatusUpsertOne{
		create: _c,
	}
}

type (
	// HashcatStatusUpsertOne is the builder for "upsert"-ing
	//  one HashcatStatus node.
	HashcatStatusUpsertOne struct {
		create *HashcatStatusCreate
	}

	// HashcatStatusUpsert is the "OnConflict" setter.
	HashcatStatusUpsert struct {
		*sql.UpdateSet
	}
)

// SetSession sets the "session" field.
func (u *HashcatStatusUpsert) SetSession(v string) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldSession, v)
	return u
}

// UpdateSession sets the "session" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateSession() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldSession)
	return u
}

// ClearSession clears the value of the "session" field.
func (u *HashcatStatusUpsert) ClearSession() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldSession)
	return u
}

// SetStatusCode sets the "status_code" field.
func (u *HashcatStatusUpsert) SetStatusCode(v int) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldStatusCode, v)
	return u
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateStatusCode() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldStatusCode)
	return u
}

// AddStatusCode adds v to the "status_code" field.
func (u *HashcatStatusUpsert) AddStatusCode(v int) *HashcatStatusUpsert {
	u.Add(hashcatstatus.FieldStatusCode, v)
	return u
}

// SetTarget sets the "target" field.
func (u *HashcatStatusUpsert) SetTarget(v string) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldTarget, v)
	return u
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateTarget() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldTarget)
	return u
}

// ClearTarget clears the value of the "target" field.
func (u *HashcatStatusUpsert) ClearTarget() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldTarget)
	return u
}

// SetProgressDone sets the "progress_done" field.
func (u *HashcatStatusUpsert) SetProgressDone(v int64) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldProgressDone, v)
	return u
}

// UpdateProgressDone sets the "progress_done" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateProgressDone() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldProgressDone)
	return u
}

// AddProgressDone adds v to the "progress_done" field.
func (u *HashcatStatusUpsert) AddProgressDone(v int64) *HashcatStatusUpsert {
	u.Add(hashcatstatus.FieldProgressDone, v)
	return u
}

// SetProgressTotal sets the "progress_total" field.
func (u *HashcatStatusUpsert) SetProgressTotal(v int64) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldProgressTotal, v)
	return u
}

// UpdateProgressTotal sets the "progress_total" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateProgressTotal() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldProgressTotal)
	return u
}

// AddProgressTotal adds v to the "progress_total" field.
func (u *HashcatStatusUpsert) AddProgressTotal(v int64) *HashcatStatusUpsert {
	u.Add(hashcatstatus.FieldProgressTotal, v)
	return u
}

// SetRestorePoint sets the "restore_point" field.
func (u *HashcatStatusUpsert) SetRestorePoint(v int64) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldRestorePoint, v)
	return u
}

// UpdateRestorePoint sets the "restore_point" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateRestorePoint() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldRestorePoint)
	return u
}

// AddRestorePoint adds v to the "restore_point" field.
func (u *HashcatStatusUpsert) AddRestorePoint(v int64) *HashcatStatusUpsert {
	u.Add(hashcatstatus.FieldRestorePoint, v)
	return u
}

// ClearRestorePoint clears the value of the "restore_point" field.
func (u *HashcatStatusUpsert) ClearRestorePoint() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldRestorePoint)
	return u
}

// SetRecoveredHashes sets the "recovered_hashes" field.
func (u *HashcatStatusUpsert) SetRecoveredHashes(v []string) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldRecoveredHashes, v)
	return u
}

// UpdateRecoveredHashes sets the "recovered_hashes" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateRecoveredHashes() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldRecoveredHashes)
	return u
}

// ClearRecoveredHashes clears the value of the "recovered_hashes" field.
func (u *HashcatStatusUpsert) ClearRecoveredHashes() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldRecoveredHashes)
	return u
}

// SetRecoveredSalts sets the "recovered_salts" field.
func (u *HashcatStatusUpsert) SetRecoveredSalts(v []string) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldRecoveredSalts, v)
	return u
}

// UpdateRecoveredSalts sets the "recovered_salts" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateRecoveredSalts() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldRecoveredSalts)
	return u
}

// ClearRecoveredSalts clears the value of the "recovered_salts" field.
func (u *HashcatStatusUpsert) ClearRecoveredSalts() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldRecoveredSalts)
	return u
}

// SetRejected sets the "rejected" field.
func (u *HashcatStatusUpsert) SetRejected(v int64) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldRejected, v)
	return u
}

// UpdateRejected sets the "rejected" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateRejected() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldRejected)
	return u
}

// AddRejected adds v to the "rejected" field.
func (u *HashcatStatusUpsert) AddRejected(v int64) *HashcatStatusUpsert {
	u.Add(hashcatstatus.FieldRejected, v)
	return u
}

// ClearRejected clears the value of the "rejected" field.
func (u *HashcatStatusUpsert) ClearRejected() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldRejected)
	return u
}

// SetDevices sets the "devices" field.
func (u *HashcatStatusUpsert) SetDevices(v []schema.DeviceStatus) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldDevices, v)
	return u
}

// UpdateDevices sets the "devices" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateDevices() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldDevices)
	return u
}

// ClearDevices clears the value of the "devices" field.
func (u *HashcatStatusUpsert) ClearDevices() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldDevices)
	return u
}

// SetTimeStart sets the "time_start" field.
func (u *HashcatStatusUpsert) SetTimeStart(v time.Time) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldTimeStart, v)
	return u
}

// UpdateTimeStart sets the "time_start" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateTimeStart() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldTimeStart)
	return u
}

// ClearTimeStart clears the value of the "time_start" field.
func (u *HashcatStatusUpsert) ClearTimeStart() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldTimeStart)
	return u
}

// SetEstimatedStop sets the "estimated_stop" field.
func (u *HashcatStatusUpsert) SetEstimatedStop(v time.Time) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldEstimatedStop, v)
	return u
}

// UpdateEstimatedStop sets the "estimated_stop" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateEstimatedStop() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldEstimatedStop)
	return u
}

// ClearEstimatedStop clears the value of the "estimated_stop" field.
func (u *HashcatStatusUpsert) ClearEstimatedStop() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldEstimatedStop)
	return u
}

// SetHashcatGuess sets the "hashcat_guess" field.
func (u *HashcatStatusUpsert) SetHashcatGuess(v string) *HashcatStatusUpsert {
	u.Set(hashcatstatus.FieldHashcatGuess, v)
	return u
}

// UpdateHashcatGuess sets the "hashcat_guess" field to the value that was provided on create.
func (u *HashcatStatusUpsert) UpdateHashcatGuess() *HashcatStatusUpsert {
	u.SetExcluded(hashcatstatus.FieldHashcatGuess)
	return u
}

// ClearHashcatGuess clears the value of the "hashcat_guess" field.
func (u *HashcatStatusUpsert) ClearHashcatGuess() *HashcatStatusUpsert {
	u.SetNull(hashcatstatus.FieldHashcatGuess)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.HashcatStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashcatStatusUpsertOne) UpdateNewValues() *HashcatStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ReceivedAt(); exists {
			s.SetIgnore(hashcatstatus.FieldReceivedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashcatStatus.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HashcatStatusUpsertOne) Ignore() *HashcatStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashcatStatusUpsertOne) DoNothing() *HashcatStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashcatStatusCreate.OnConflict
// documentation for more info.
func (u *HashcatStatusUpsertOne) Update(set func(*HashcatStatusUpsert)) *HashcatStatusUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashcatStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetSession sets the "session" field.
func (u *HashcatStatusUpsertOne) SetSession(v string) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetSession(v)
	})
}

// UpdateSession sets the "session" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateSession() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateSession()
	})
}

// ClearSession clears the value of the "session" field.
func (u *HashcatStatusUpsertOne) ClearSession() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearSession()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *HashcatStatusUpsertOne) SetStatusCode(v int) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *HashcatStatusUpsertOne) AddStatusCode(v int) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateStatusCode() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateStatusCode()
	})
}

// SetTarget sets the "target" field.
func (u *HashcatStatusUpsertOne) SetTarget(v string) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetTarget(v)
	})
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateTarget() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateTarget()
	})
}

// ClearTarget clears the value of the "target" field.
func (u *HashcatStatusUpsertOne) ClearTarget() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearTarget()
	})
}

// SetProgressDone sets the "progress_done" field.
func (u *HashcatStatusUpsertOne) SetProgressDone(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetProgressDone(v)
	})
}

// AddProgressDone adds v to the "progress_done" field.
func (u *HashcatStatusUpsertOne) AddProgressDone(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddProgressDone(v)
	})
}

// UpdateProgressDone sets the "progress_done" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateProgressDone() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateProgressDone()
	})
}

// SetProgressTotal sets the "progress_total" field.
func (u *HashcatStatusUpsertOne) SetProgressTotal(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetProgressTotal(v)
	})
}

// AddProgressTotal adds v to the "progress_total" field.
func (u *HashcatStatusUpsertOne) AddProgressTotal(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddProgressTotal(v)
	})
}

// UpdateProgressTotal sets the "progress_total" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateProgressTotal() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateProgressTotal()
	})
}

// SetRestorePoint sets the "restore_point" field.
func (u *HashcatStatusUpsertOne) SetRestorePoint(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRestorePoint(v)
	})
}

// AddRestorePoint adds v to the "restore_point" field.
func (u *HashcatStatusUpsertOne) AddRestorePoint(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddRestorePoint(v)
	})
}

// UpdateRestorePoint sets the "restore_point" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateRestorePoint() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRestorePoint()
	})
}

// ClearRestorePoint clears the value of the "restore_point" field.
func (u *HashcatStatusUpsertOne) ClearRestorePoint() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRestorePoint()
	})
}

// SetRecoveredHashes sets the "recovered_hashes" field.
func (u *HashcatStatusUpsertOne) SetRecoveredHashes(v []string) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRecoveredHashes(v)
	})
}

// UpdateRecoveredHashes sets the "recovered_hashes" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateRecoveredHashes() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRecoveredHashes()
	})
}

// ClearRecoveredHashes clears the value of the "recovered_hashes" field.
func (u *HashcatStatusUpsertOne) ClearRecoveredHashes() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRecoveredHashes()
	})
}

// SetRecoveredSalts sets the "recovered_salts" field.
func (u *HashcatStatusUpsertOne) SetRecoveredSalts(v []string) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRecoveredSalts(v)
	})
}

// UpdateRecoveredSalts sets the "recovered_salts" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateRecoveredSalts() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRecoveredSalts()
	})
}

// ClearRecoveredSalts clears the value of the "recovered_salts" field.
func (u *HashcatStatusUpsertOne) ClearRecoveredSalts() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRecoveredSalts()
	})
}

// SetRejected sets the "rejected" field.
func (u *HashcatStatusUpsertOne) SetRejected(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRejected(v)
	})
}

// AddRejected adds v to the "rejected" field.
func (u *HashcatStatusUpsertOne) AddRejected(v int64) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddRejected(v)
	})
}

// UpdateRejected sets the "rejected" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateRejected() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRejected()
	})
}

// ClearRejected clears the value of the "rejected" field.
func (u *HashcatStatusUpsertOne) ClearRejected() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRejected()
	})
}

// SetDevices sets the "devices" field.
func (u *HashcatStatusUpsertOne) SetDevices(v []schema.DeviceStatus) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetDevices(v)
	})
}

// UpdateDevices sets the "devices" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateDevices() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateDevices()
	})
}

// ClearDevices clears the value of the "devices" field.
func (u *HashcatStatusUpsertOne) ClearDevices() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearDevices()
	})
}

// SetTimeStart sets the "time_start" field.
func (u *HashcatStatusUpsertOne) SetTimeStart(v time.Time) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetTimeStart(v)
	})
}

// UpdateTimeStart sets the "time_start" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateTimeStart() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateTimeStart()
	})
}

// ClearTimeStart clears the value of the "time_start" field.
func (u *HashcatStatusUpsertOne) ClearTimeStart() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearTimeStart()
	})
}

// SetEstimatedStop sets the "estimated_stop" field.
func (u *HashcatStatusUpsertOne) SetEstimatedStop(v time.Time) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetEstimatedStop(v)
	})
}

// UpdateEstimatedStop sets the "estimated_stop" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateEstimatedStop() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateEstimatedStop()
	})
}

// ClearEstimatedStop clears the value of the "estimated_stop" field.
func (u *HashcatStatusUpsertOne) ClearEstimatedStop() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearEstimatedStop()
	})
}

// SetHashcatGuess sets the "hashcat_guess" field.
func (u *HashcatStatusUpsertOne) SetHashcatGuess(v string) *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetHashcatGuess(v)
	})
}

// UpdateHashcatGuess sets the "hashcat_guess" field to the value that was provided on create.
func (u *HashcatStatusUpsertOne) UpdateHashcatGuess() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateHashcatGuess()
	})
}

// ClearHashcatGuess clears the value of the "hashcat_guess" field.
func (u *HashcatStatusUpsertOne) ClearHashcatGuess() *HashcatStatusUpsertOne {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearHashcatGuess()
	})
}

// Exec executes the query.
func (u *HashcatStatusUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashcatStatusCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashcatStatusUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HashcatStatusUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HashcatStatusUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HashcatStatusCreateBulk is the builder for creating many HashcatStatus entities in bulk.
type HashcatStatusCreateBulk struct {
	config
	err      error
	builders []*HashcatStatusCreate
	conflict []sql.ConflictOption
}

// Save creates the HashcatStatus entities in the database.
func (_c *HashcatStatusCreateBulk) Save(ctx context.Context) ([]*HashcatStatus, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HashcatStatus, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HashcatStatusMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = _c.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				if specs[i].ID.Value != nil {
					id := specs[i].ID.Value.(int64)
					nodes[i].ID = int64(id)
				}
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *HashcatStatusCreateBulk) SaveX(ctx context.Context) []*HashcatStatus {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashcatStatusCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashcatStatusCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HashcatStatus.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashcatStatusUpsert) {
//			SetReceivedAt(v+v).
//		}).
//		Exec(ctx)
func (_c *HashcatStatusCreateBulk) OnConflict(opts ...sql.ConflictOption) *HashcatStatusUpsertBulk {
	_c.conflict = opts
	return &HashcatStatusUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashcatStatus.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashcatStatusCreateBulk) OnConflictColumns(columns ...string) *HashcatStatusUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashcatStatusUpsertBulk{
		create: _c,
	}
}

// HashcatStatusUpsertBulk is the builder for "upsert"-ing
// a bulk of HashcatStatus nodes.
type HashcatStatusUpsertBulk struct {
	create *HashcatStatusCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HashcatStatus.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashcatStatusUpsertBulk) UpdateNewValues() *HashcatStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ReceivedAt(); exists {
				s.SetIgnore(hashcatstatus.FieldReceivedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashcatStatus.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HashcatStatusUpsertBulk) Ignore() *HashcatStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashcatStatusUpsertBulk) DoNothing() *HashcatStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashcatStatusCreateBulk.OnConflict
// documentation for more info.
func (u *HashcatStatusUpsertBulk) Update(set func(*HashcatStatusUpsert)) *HashcatStatusUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashcatStatusUpsert{UpdateSet: update})
	}))
	return u
}

// SetSession sets the "session" field.
func (u *HashcatStatusUpsertBulk) SetSession(v string) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetSession(v)
	})
}

// UpdateSession sets the "session" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateSession() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateSession()
	})
}

// ClearSession clears the value of the "session" field.
func (u *HashcatStatusUpsertBulk) ClearSession() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearSession()
	})
}

// SetStatusCode sets the "status_code" field.
func (u *HashcatStatusUpsertBulk) SetStatusCode(v int) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetStatusCode(v)
	})
}

// AddStatusCode adds v to the "status_code" field.
func (u *HashcatStatusUpsertBulk) AddStatusCode(v int) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddStatusCode(v)
	})
}

// UpdateStatusCode sets the "status_code" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateStatusCode() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateStatusCode()
	})
}

// SetTarget sets the "target" field.
func (u *HashcatStatusUpsertBulk) SetTarget(v string) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetTarget(v)
	})
}

// UpdateTarget sets the "target" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateTarget() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateTarget()
	})
}

// ClearTarget clears the value of the "target" field.
func (u *HashcatStatusUpsertBulk) ClearTarget() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearTarget()
	})
}

// SetProgressDone sets the "progress_done" field.
func (u *HashcatStatusUpsertBulk) SetProgressDone(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetProgressDone(v)
	})
}

// AddProgressDone adds v to the "progress_done" field.
func (u *HashcatStatusUpsertBulk) AddProgressDone(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddProgressDone(v)
	})
}

// UpdateProgressDone sets the "progress_done" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateProgressDone() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateProgressDone()
	})
}

// SetProgressTotal sets the "progress_total" field.
func (u *HashcatStatusUpsertBulk) SetProgressTotal(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetProgressTotal(v)
	})
}

// AddProgressTotal adds v to the "progress_total" field.
func (u *HashcatStatusUpsertBulk) AddProgressTotal(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddProgressTotal(v)
	})
}

// UpdateProgressTotal sets the "progress_total" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateProgressTotal() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateProgressTotal()
	})
}

// SetRestorePoint sets the "restore_point" field.
func (u *HashcatStatusUpsertBulk) SetRestorePoint(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRestorePoint(v)
	})
}

// AddRestorePoint adds v to the "restore_point" field.
func (u *HashcatStatusUpsertBulk) AddRestorePoint(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddRestorePoint(v)
	})
}

// UpdateRestorePoint sets the "restore_point" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateRestorePoint() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRestorePoint()
	})
}

// ClearRestorePoint clears the value of the "restore_point" field.
func (u *HashcatStatusUpsertBulk) ClearRestorePoint() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRestorePoint()
	})
}

// SetRecoveredHashes sets the "recovered_hashes" field.
func (u *HashcatStatusUpsertBulk) SetRecoveredHashes(v []string) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRecoveredHashes(v)
	})
}

// UpdateRecoveredHashes sets the "recovered_hashes" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateRecoveredHashes() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRecoveredHashes()
	})
}

// ClearRecoveredHashes clears the value of the "recovered_hashes" field.
func (u *HashcatStatusUpsertBulk) ClearRecoveredHashes() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRecoveredHashes()
	})
}

// SetRecoveredSalts sets the "recovered_salts" field.
func (u *HashcatStatusUpsertBulk) SetRecoveredSalts(v []string) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRecoveredSalts(v)
	})
}

// UpdateRecoveredSalts sets the "recovered_salts" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateRecoveredSalts() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRecoveredSalts()
	})
}

// ClearRecoveredSalts clears the value of the "recovered_salts" field.
func (u *HashcatStatusUpsertBulk) ClearRecoveredSalts() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRecoveredSalts()
	})
}

// SetRejected sets the "rejected" field.
func (u *HashcatStatusUpsertBulk) SetRejected(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetRejected(v)
	})
}

// AddRejected adds v to the "rejected" field.
func (u *HashcatStatusUpsertBulk) AddRejected(v int64) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.AddRejected(v)
	})
}

// UpdateRejected sets the "rejected" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateRejected() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateRejected()
	})
}

// ClearRejected clears the value of the "rejected" field.
func (u *HashcatStatusUpsertBulk) ClearRejected() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearRejected()
	})
}

// SetDevices sets the "devices" field.
func (u *HashcatStatusUpsertBulk) SetDevices(v []schema.DeviceStatus) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetDevices(v)
	})
}

// UpdateDevices sets the "devices" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateDevices() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateDevices()
	})
}

// ClearDevices clears the value of the "devices" field.
func (u *HashcatStatusUpsertBulk) ClearDevices() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearDevices()
	})
}

// SetTimeStart sets the "time_start" field.
func (u *HashcatStatusUpsertBulk) SetTimeStart(v time.Time) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetTimeStart(v)
	})
}

// UpdateTimeStart sets the "time_start" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateTimeStart() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateTimeStart()
	})
}

// ClearTimeStart clears the value of the "time_start" field.
func (u *HashcatStatusUpsertBulk) ClearTimeStart() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearTimeStart()
	})
}

// SetEstimatedStop sets the "estimated_stop" field.
func (u *HashcatStatusUpsertBulk) SetEstimatedStop(v time.Time) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetEstimatedStop(v)
	})
}

// UpdateEstimatedStop sets the "estimated_stop" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateEstimatedStop() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateEstimatedStop()
	})
}

// ClearEstimatedStop clears the value of the "estimated_stop" field.
func (u *HashcatStatusUpsertBulk) ClearEstimatedStop() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearEstimatedStop()
	})
}

// SetHashcatGuess sets the "hashcat_guess" field.
func (u *HashcatStatusUpsertBulk) SetHashcatGuess(v string) *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.SetHashcatGuess(v)
	})
}

// UpdateHashcatGuess sets the "hashcat_guess" field to the value that was provided on create.
func (u *HashcatStatusUpsertBulk) UpdateHashcatGuess() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.UpdateHashcatGuess()
	})
}

// ClearHashcatGuess clears the value of the "hashcat_guess" field.
func (u *HashcatStatusUpsertBulk) ClearHashcatGuess() *HashcatStatusUpsertBulk {
	return u.Update(func(s *HashcatStatusUpsert) {
		s.ClearHashcatGuess()
	})
}

// Exec executes the query.
func (u *HashcatStatusUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HashcatStatusCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashcatStatusCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashcatStatusUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
