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
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
)

// BenchmarkCreate is the builder for creating a Benchmark entity.
type BenchmarkCreate struct {
	config
	mutation *BenchmarkMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHashType sets the "hash_type" field.
func (_c *BenchmarkCreate) SetHashType(v int) *BenchmarkCreate {
	_c.mutation.SetHashType(v)
	return _c
}

// SetDeviceIndex sets the "device_index" field.
func (_c *BenchmarkCreate) SetDeviceIndex(v int) *BenchmarkCreate {
	_c.mutation.SetDeviceIndex(v)
	return _c
}

// SetHashSpeed sets the "hash_speed" field.
func (_c *BenchmarkCreate) SetHashSpeed(v float64) *BenchmarkCreate {
	_c.mutation.SetHashSpeed(v)
	return _c
}

// SetRuntimeMs sets the "runtime_ms" field.
func (_c *BenchmarkCreate) SetRuntimeMs(v int64) *BenchmarkCreate {
	_c.mutation.SetRuntimeMs(v)
	return _c
}

// SetMeasuredAt sets the "measured_at" field.
func (_c *BenchmarkCreate) SetMeasuredAt(v time.Time) *BenchmarkCreate {
	_c.mutation.SetMeasuredAt(v)
	return _c
}

// SetNillableMeasuredAt sets the "measured_at" field if the given value is not nil.
func (_c *BenchmarkCreate) SetNillableMeasuredAt(v *time.Time) *BenchmarkCreate {
	if v != nil {
		_c.SetMeasuredAt(*v)
	}
	return _c
}

// SetAgentID sets the "agent" edge to the Agent entity by ID.
func (_c *BenchmarkCreate) SetAgentID(id int64) *BenchmarkCreate {
	_c.mutation.SetAgentID(id)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *BenchmarkCreate) SetAgent(v *Agent) *BenchmarkCreate {
	return _c.SetAgentID(v.ID)
}

// Mutation returns the BenchmarkMutation object of the builder.
func (_c *BenchmarkCreate) Mutation() *BenchmarkMutation {
	return _c.mutation
}

// Save creates the Benchmark in the database.
func (_c *BenchmarkCreate) Save(ctx context.Context) (*Benchmark, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BenchmarkCreate) SaveX(ctx context.Context) *Benchmark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BenchmarkCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BenchmarkCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BenchmarkCreate) defaults() {
	if _, ok := _c.mutation.MeasuredAt(); !ok {
		v := benchmark.DefaultMeasuredAt()
		_c.mutation.SetMeasuredAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BenchmarkCreate) check() error {
	if _, ok := _c.mutation.HashType(); !ok {
		return &ValidationError{Name: "hash_type", err: errors.New(`ent: missing required field "Benchmark.hash_type"`)}
	}
	if _, ok := _c.mutation.DeviceIndex(); !ok {
		return &ValidationError{Name: "device_index", err: errors.New(`ent: missing required field "Benchmark.device_index"`)}
	}
	if v, ok := _c.mutation.DeviceIndex(); ok {
		if err := benchmark.DeviceIndexValidator(v); err != nil {
			return &ValidationError{Name: "device_index", err: fmt.Errorf(`ent: validator failed for field "Benchmark.device_index": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HashSpeed(); !ok {
		return &ValidationError{Name: "hash_speed", err: errors.New(`ent: missing required field "Benchmark.hash_speed"`)}
	}
	if _, ok := _c.mutation.RuntimeMs(); !ok {
		return &ValidationError{Name: "runtime_ms", err: errors.New(`ent: missing required field "Benchmark.runtime_ms"`)}
	}
	if _, ok := _c.mutation.MeasuredAt(); !ok {
		return &ValidationError{Name: "measured_at", err: errors.New(`ent: missing required field "Benchmark.measured_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "Benchmark.agent"`)}
	}
	return nil
}

func (_c *BenchmarkCreate) sqlSave(ctx context.Context) (*Benchmark, error) {
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

func (_c *BenchmarkCreate) createSpec() (*Benchmark, *sqlgraph.CreateSpec) {
	var (
		_node = &Benchmark{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(benchmark.Table, sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.HashType(); ok {
		_spec.SetField(benchmark.FieldHashType, field.TypeInt, value)
		_node.HashType = value
	}
	if value, ok := _c.mutation.DeviceIndex(); ok {
		_spec.SetField(benchmark.FieldDeviceIndex, field.TypeInt, value)
		_node.DeviceIndex = value
	}
	if value, ok := _c.mutation.HashSpeed(); ok {
		_spec.SetField(benchmark.FieldHashSpeed, field.TypeFloat64, value)
		_node.HashSpeed = value
	}
	if value, ok := _c.mutation.RuntimeMs(); ok {
		_spec.SetField(benchmark.FieldRuntimeMs, field.TypeInt64, value)
		_node.RuntimeMs = value
	}
	if value, ok := _c.mutation.MeasuredAt(); ok {
		_spec.SetField(benchmark.FieldMeasuredAt, field.TypeTime, value)
		_node.MeasuredAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   benchmark.AgentTable,
			Columns: []string{benchmark.AgentColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.agent_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Benchmark.Create().
//		SetHashType(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BenchmarkUpsert) {
//			SetHashType(v+v).
//		}).
//		Exec(ctx)
func (_c *BenchmarkCreate) OnConflict(opts ...sql.ConflictOption) *BenchmarkUpsertOne {
	_c.conflict = opts
	return &BenchmarkUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Benchmark.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BenchmarkCreate) OnConflictColumns(columns ...string) *BenchmarkUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BenchmarkUpsertOne{
		create: _c,
	}
}

type (
	// BenchmarkUpsertOne is the builder for "upsert"-ing
	//  one Benchmark node.
	BenchmarkUpsertOne struct {
		create *BenchmarkCreate
	}

	// BenchmarkUpsert is the "OnConflict" setter.
	BenchmarkUpsert struct {
		*sql.UpdateSet
	}
)

// SetHashType sets the "hash_type" field.
func (u *BenchmarkUpsert) SetHashType(v int) *BenchmarkUpsert {
	u.Set(benchmark.FieldHashType, v)
	return u
}

// UpdateHashType sets the "hash_type" field to the value that was provided on create.
func (u *BenchmarkUpsert) UpdateHashType() *BenchmarkUpsert {
	u.SetExcluded(benchmark.FieldHashType)
	return u
}

// AddHashType adds v to the "hash_type" field.
func (u *BenchmarkUpsert) AddHashType(v int) *BenchmarkUpsert {
	u.Add(benchmark.FieldHashType, v)
	return u
}

// SetDeviceIndex sets the "device_index" field.
func (u *BenchmarkUpsert) SetDeviceIndex(v int) *BenchmarkUpsert {
	u.Set(benchmark.FieldDeviceIndex, v)
	return u
}

// UpdateDeviceIndex sets the "device_index" field to the value that was provided on create.
func (u *BenchmarkUpsert) UpdateDeviceIndex() *BenchmarkUpsert {
	u.SetExcluded(benchmark.FieldDeviceIndex)
	return u
}

// AddDeviceIndex adds v to the "device_index" field.
func (u *BenchmarkUpsert) AddDeviceIndex(v int) *BenchmarkUpsert {
	u.Add(benchmark.FieldDeviceIndex, v)
	return u
}

// SetHashSpeed sets the "hash_speed" field.
func (u *BenchmarkUpsert) SetHashSpeed(v float64) *BenchmarkUpsert {
	u.Set(benchmark.FieldHashSpeed, v)
	return u
}

// UpdateHashSpeed sets the "hash_speed" field to the value that was provided on create.
func (u *BenchmarkUpsert) UpdateHashSpeed() *BenchmarkUpsert {
	u.SetExcluded(benchmark.FieldHashSpeed)
	return u
}

// AddHashSpeed adds v to the "hash_speed" field.
func (u *BenchmarkUpsert) AddHashSpeed(v float64) *BenchmarkUpsert {
	u.Add(benchmark.FieldHashSpeed, v)
	return u
}

// SetRuntimeMs sets the "runtime_ms" field.
func (u *BenchmarkUpsert) SetRuntimeMs(v int64) *BenchmarkUpsert {
	u.Set(benchmark.FieldRuntimeMs, v)
	return u
}

// UpdateRuntimeMs sets the "runtime_ms" field to the value that was provided on create.
func (u *BenchmarkUpsert) UpdateRuntimeMs() *BenchmarkUpsert {
	u.SetExcluded(benchmark.FieldRuntimeMs)
	return u
}

// AddRuntimeMs adds v to the "runtime_ms" field.
func (u *BenchmarkUpsert) AddRuntimeMs(v int64) *BenchmarkUpsert {
	u.Add(benchmark.FieldRuntimeMs, v)
	return u
}

// SetMeasuredAt sets the "measured_at" field.
func (u *BenchmarkUpsert) SetMeasuredAt(v time.Time) *BenchmarkUpsert {
	u.Set(benchmark.FieldMeasuredAt, v)
	return u
}

// UpdateMeasuredAt sets the "measured_at" field to the value that was provided on create.
func (u *BenchmarkUpsert) UpdateMeasuredAt() *BenchmarkUpsert {
	u.SetExcluded(benchmark.FieldMeasuredAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Benchmark.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BenchmarkUpsertOne) UpdateNewValues() *BenchmarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Benchmark.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *BenchmarkUpsertOne) Ignore() *BenchmarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BenchmarkUpsertOne) DoNothing() *BenchmarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BenchmarkCreate.OnConflict
// documentation for more info.
func (u *BenchmarkUpsertOne) Update(set func(*BenchmarkUpsert)) *BenchmarkUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BenchmarkUpsert{UpdateSet: update})
	}))
	return u
}

// SetHashType sets the "hash_type" field.
func (u *BenchmarkUpsertOne) SetHashType(v int) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetHashType(v)
	})
}

// AddHashType adds v to the "hash_type" field.
func (u *BenchmarkUpsertOne) AddHashType(v int) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddHashType(v)
	})
}

// UpdateHashType sets the "hash_type" field to the value that was provided on create.
func (u *BenchmarkUpsertOne) UpdateHashType() *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateHashType()
	})
}

// SetDeviceIndex sets the "device_index" field.
func (u *BenchmarkUpsertOne) SetDeviceIndex(v int) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetDeviceIndex(v)
	})
}

// AddDeviceIndex adds v to the "device_index" field.
func (u *BenchmarkUpsertOne) AddDeviceIndex(v int) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddDeviceIndex(v)
	})
}

// UpdateDeviceIndex sets the "device_index" field to the value that was provided on create.
func (u *BenchmarkUpsertOne) UpdateDeviceIndex() *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateDeviceIndex()
	})
}

// SetHashSpeed sets the "hash_speed" field.
func (u *BenchmarkUpsertOne) SetHashSpeed(v float64) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetHashSpeed(v)
	})
}

// AddHashSpeed adds v to the "hash_speed" field.
func (u *BenchmarkUpsertOne) AddHashSpeed(v float64) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddHashSpeed(v)
	})
}

// UpdateHashSpeed sets the "hash_speed" field to the value that was provided on create.
func (u *BenchmarkUpsertOne) UpdateHashSpeed() *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateHashSpeed()
	})
}

// SetRuntimeMs sets the "runtime_ms" field.
func (u *BenchmarkUpsertOne) SetRuntimeMs(v int64) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetRuntimeMs(v)
	})
}

// AddRuntimeMs adds v to the "runtime_ms" field.
func (u *BenchmarkUpsertOne) AddRuntimeMs(v int64) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddRuntimeMs(v)
	})
}

// UpdateRuntimeMs sets the "runtime_ms" field to the value that was provided on create.
func (u *BenchmarkUpsertOne) UpdateRuntimeMs() *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateRuntimeMs()
	})
}

// SetMeasuredAt sets the "measured_at" field.
func (u *BenchmarkUpsertOne) SetMeasuredAt(v time.Time) *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetMeasuredAt(v)
	})
}

// UpdateMeasuredAt sets the "measured_at" field to the value that was provided on create.
func (u *BenchmarkUpsertOne) UpdateMeasuredAt() *BenchmarkUpsertOne {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateMeasuredAt()
	})
}

// Exec executes the query.
func (u *BenchmarkUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BenchmarkCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BenchmarkUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *BenchmarkUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *BenchmarkUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// BenchmarkCreateBulk is the builder for creating many Benchmark entities in bulk.
type BenchmarkCreateBulk struct {
	config
	err      error
	builders []*BenchmarkCreate
	conflict []sql.ConflictOption
}

// Save creates the Benchmark entities in the database.
func (_c *BenchmarkCreateBulk) Save(ctx context.Context) ([]*Benchmark, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Benchmark, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BenchmarkMutation)
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
func (_c *BenchmarkCreateBulk) SaveX(ctx context.Context) []*Benchmark {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BenchmarkCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BenchmarkCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Benchmark.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.BenchmarkUpsert) {
//			SetHashType(v+v).
//		}).
//		Exec(ctx)
func (_c *BenchmarkCreateBulk) OnConflict(opts ...sql.ConflictOption) *BenchmarkUpsertBulk {
	_c.conflict = opts
	return &BenchmarkUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Benchmark.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *BenchmarkCreateBulk) OnConflictColumns(columns ...string) *BenchmarkUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &BenchmarkUpsertBulk{
		create: _c,
	}
}

// BenchmarkUpsertBulk is the builder for "upsert"-ing
// a bulk of Benchmark nodes.
type BenchmarkUpsertBulk struct {
	create *BenchmarkCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Benchmark.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *BenchmarkUpsertBulk) UpdateNewValues() *BenchmarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Benchmark.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *BenchmarkUpsertBulk) Ignore() *BenchmarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *BenchmarkUpsertBulk) DoNothing() *BenchmarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the BenchmarkCreateBulk.OnConflict
// documentation for more info.
func (u *BenchmarkUpsertBulk) Update(set func(*BenchmarkUpsert)) *BenchmarkUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&BenchmarkUpsert{UpdateSet: update})
	}))
	return u
}

// SetHashType sets the "hash_type" field.
func (u *BenchmarkUpsertBulk) SetHashType(v int) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetHashType(v)
	})
}

// AddHashType adds v to the "hash_type" field.
func (u *BenchmarkUpsertBulk) AddHashType(v int) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddHashType(v)
	})
}

// UpdateHashType sets the "hash_type" field to the value that was provided on create.
func (u *BenchmarkUpsertBulk) UpdateHashType() *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateHashType()
	})
}

// SetDeviceIndex sets the "device_index" field.
func (u *BenchmarkUpsertBulk) SetDeviceIndex(v int) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetDeviceIndex(v)
	})
}

// AddDeviceIndex adds v to the "device_index" field.
func (u *BenchmarkUpsertBulk) AddDeviceIndex(v int) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddDeviceIndex(v)
	})
}

// UpdateDeviceIndex sets the "device_index" field to the value that was provided on create.
func (u *BenchmarkUpsertBulk) UpdateDeviceIndex() *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateDeviceIndex()
	})
}

// SetHashSpeed sets the "hash_speed" field.
func (u *BenchmarkUpsertBulk) SetHashSpeed(v float64) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetHashSpeed(v)
	})
}

// AddHashSpeed adds v to the "hash_speed" field.
func (u *BenchmarkUpsertBulk) AddHashSpeed(v float64) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddHashSpeed(v)
	})
}

// UpdateHashSpeed sets the "hash_speed" field to the value that was provided on create.
func (u *BenchmarkUpsertBulk) UpdateHashSpeed() *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateHashSpeed()
	})
}

// SetRuntimeMs sets the "runtime_ms" field.
func (u *BenchmarkUpsertBulk) SetRuntimeMs(v int64) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetRuntimeMs(v)
	})
}

// AddRuntimeMs adds v to the "runtime_ms" field.
func (u *BenchmarkUpsertBulk) AddRuntimeMs(v int64) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.AddRuntimeMs(v)
	})
}

// UpdateRuntimeMs sets the "runtime_ms" field to the value that was provided on create.
func (u *BenchmarkUpsertBulk) UpdateRuntimeMs() *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateRuntimeMs()
	})
}

// SetMeasuredAt sets the "measured_at" field.
func (u *BenchmarkUpsertBulk) SetMeasuredAt(v time.Time) *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.SetMeasuredAt(v)
	})
}

// UpdateMeasuredAt sets the "measured_at" field to the value that was provided on create.
func (u *BenchmarkUpsertBulk) UpdateMeasuredAt() *BenchmarkUpsertBulk {
	return u.Update(func(s *BenchmarkUpsert) {
		s.UpdateMeasuredAt()
	})
}

// Exec executes the query.
func (u *BenchmarkUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the BenchmarkCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for BenchmarkCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *BenchmarkUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
