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
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// AgentErrorCreate is the builder for creating a AgentError entity.
type AgentErrorCreate struct {
	config
	mutation *AgentErrorMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetSeverity sets the "severity" field.
func (_c *AgentErrorCreate) SetSeverity(v agenterror.Severity) *AgentErrorCreate {
	_c.mutation.SetSeverity(v)
	return _c
}

// SetMessage sets the "message" field.
func (_c *AgentErrorCreate) SetMessage(v string) *AgentErrorCreate {
	_c.mutation.SetMessage(v)
	return _c
}

// SetContextJSON sets the "context_json" field.
func (_c *AgentErrorCreate) SetContextJSON(v string) *AgentErrorCreate {
	_c.mutation.SetContextJSON(v)
	return _c
}

// SetNillableContextJSON sets the "context_json" field if the given value is not nil.
func (_c *AgentErrorCreate) SetNillableContextJSON(v *string) *AgentErrorCreate {
	if v != nil {
		_c.SetContextJSON(*v)
	}
	return _c
}

// SetRecordedAt sets the "recorded_at" field.
func (_c *AgentErrorCreate) SetRecordedAt(v time.Time) *AgentErrorCreate {
	_c.mutation.SetRecordedAt(v)
	return _c
}

// SetNillableRecordedAt sets the "recorded_at" field if the given value is not nil.
func (_c *AgentErrorCreate) SetNillableRecordedAt(v *time.Time) *AgentErrorCreate {
	if v != nil {
		_c.SetRecordedAt(*v)
	}
	return _c
}

// SetAgentID sets the "agent" edge to the Agent entity by ID.
func (_c *AgentErrorCreate) SetAgentID(id int64) *AgentErrorCreate {
	_c.mutation.SetAgentID(id)
	return _c
}

// SetAgent sets the "agent" edge to the Agent entity.
func (_c *AgentErrorCreate) SetAgent(v *Agent) *AgentErrorCreate {
	return _c.SetAgentID(v.ID)
}

// SetTaskID sets the "task" edge to the Task entity by ID.
func (_c *AgentErrorCreate) SetTaskID(id int64) *AgentErrorCreate {
	_c.mutation.SetTaskID(id)
	return _c
}

// SetNillableTaskID sets the "task" edge to the Task entity by ID if the given value is not nil.
func (_c *AgentErrorCreate) SetNillableTaskID(id *int64) *AgentErrorCreate {
	if id != nil {
		_c = _c.SetTaskID(*id)
	}
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *AgentErrorCreate) SetTask(v *Task) *AgentErrorCreate {
	return _c.SetTaskID(v.ID)
}

// Mutation returns the AgentErrorMutation object of the builder.
func (_c *AgentErrorCreate) Mutation() *AgentErrorMutation {
	return _c.mutation
}

// Save creates the AgentError in the database.
func (_c *AgentErrorCreate) Save(ctx context.Context) (*AgentError, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentErrorCreate) SaveX(ctx context.Context) *AgentError {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentErrorCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentErrorCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentErrorCreate) defaults() {
	if _, ok := _c.mutation.ContextJSON(); !ok {
		v := agenterror.DefaultContextJSON
		_c.mutation.SetContextJSON(v)
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		v := agenterror.DefaultRecordedAt()
		_c.mutation.SetRecordedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentErrorCreate) check() error {
	if _, ok := _c.mutation.Severity(); !ok {
		return &ValidationError{Name: "severity", err: errors.New(`ent: missing required field "AgentError.severity"`)}
	}
	if v, ok := _c.mutation.Severity(); ok {
		if err := agenterror.SeverityValidator(v); err != nil {
			return &ValidationError{Name: "severity", err: fmt.Errorf(`ent: validator failed for field "AgentError.severity": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Message(); !ok {
		return &ValidationError{Name: "message", err: errors.New(`ent: missing required field "AgentError.message"`)}
	}
	if v, ok := _c.mutation.Message(); ok {
		if err := agenterror.MessageValidator(v); err != nil {
			return &ValidationError{Name: "message", err: fmt.Errorf(`ent: validator failed for field "AgentError.message": %w`, err)}
		}
	}
	if _, ok := _c.mutation.RecordedAt(); !ok {
		return &ValidationError{Name: "recorded_at", err: errors.New(`ent: missing required field "AgentError.recorded_at"`)}
	}
	if len(_c.mutation.AgentIDs()) == 0 {
		return &ValidationError{Name: "agent", err: errors.New(`ent: missing required edge "AgentError.agent"`)}
	}
	return nil
}

func (_c *AgentErrorCreate) sqlSave(ctx context.Context) (*AgentError, error) {
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

func (_c *AgentErrorCreate) createSpec() (*AgentError, *sqlgraph.CreateSpec) {
	var (
		_node = &AgentError{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agenterror.Table, sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Severity(); ok {
		_spec.SetField(agenterror.FieldSeverity, field.TypeEnum, value)
		_node.Severity = value
	}
	if value, ok := _c.mutation.Message(); ok {
		_spec.SetField(agenterror.FieldMessage, field.TypeString, value)
		_node.Message = value
	}
	if value, ok := _c.mutation.ContextJSON(); ok {
		_spec.SetField(agenterror.FieldContextJSON, field.TypeString, value)
		_node.ContextJSON = value
	}
	if value, ok := _c.mutation.RecordedAt(); ok {
		_spec.SetField(agenterror.FieldRecordedAt, field.TypeTime, value)
		_node.RecordedAt = value
	}
	if nodes := _c.mutation.AgentIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenterror.AgentTable,
			Columns: []string{agenterror.AgentColumn},
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
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   agenterror.TaskTable,
			Columns: []string{agenterror.TaskColumn},
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
//	client.AgentError.Create().
//		SetSeverity(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentErrorUpsert) {
//			SetSeverity(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentErrorCreate) OnConflict(opts ...sql.ConflictOption) *AgentErrorUpsertOne {
	_c.conflict = opts
	return &AgentErrorUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentError.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentErrorCreate) OnConflictColumns(columns ...string) *AgentErrorUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentErrorUpsertOne{
		create: _c,
	}
}

type (
	// AgentErrorUpsertOne is the builder for "upsert"-ing
	//  one AgentError node.
	AgentErrorUpsertOne struct {
		create *AgentErrorCreate
	}

	// AgentErrorUpsert is the "OnConflict" setter.
	AgentErrorUpsert struct {
		*sql.UpdateSet
	}
)

// SetSeverity sets the "severity" field.
func (u *AgentErrorUpsert) SetSeverity(v agenterror.Severity) *AgentErrorUpsert {
	u.Set(agenterror.FieldSeverity, v)
	return u
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AgentErrorUpsert) UpdateSeverity() *AgentErrorUpsert {
	u.SetExcluded(agenterror.FieldSeverity)
	return u
}

// SetMessage sets the "message" field.
func (u *AgentErrorUpsert) SetMessage(v string) *AgentErrorUpsert {
	u.Set(agenterror.FieldMessage, v)
	return u
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AgentErrorUpsert) UpdateMessage() *AgentErrorUpsert {
	u.SetExcluded(agenterror.FieldMessage)
	return u
}

// SetContextJSON sets the "context_json" field.
func (u *AgentErrorUpsert) SetContextJSON(v string) *AgentErrorUpsert {
	u.Set(agenterror.FieldContextJSON, v)
	return u
}

// UpdateContextJSON sets the "context_json" field to the value that was provided on create.
func (u *AgentErrorUpsert) UpdateContextJSON() *AgentErrorUpsert {
	u.SetExcluded(agenterror.FieldContextJSON)
	return u
}

// ClearContextJSON clears the value of the "context_json" field.
func (u *AgentErrorUpsert) ClearContextJSON() *AgentErrorUpsert {
	u.SetNull(agenterror.FieldContextJSON)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.AgentError.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentErrorUpsertOne) UpdateNewValues() *AgentErrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.RecordedAt(); exists {
			s.SetIgnore(agenterror.FieldRecordedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentError.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentErrorUpsertOne) Ignore() *AgentErrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentErrorUpsertOne) DoNothing() *AgentErrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentErrorCreate.OnConflict
// documentation for more info.
func (u *AgentErrorUpsertOne) Update(set func(*AgentErrorUpsert)) *AgentErrorUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentErrorUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeverity sets the "severity" field.
func (u *AgentErrorUpsertOne) SetSeverity(v agenterror.Severity) *AgentErrorUpsertOne {
	return u.Update(func(s *AgentErrorUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AgentErrorUpsertOne) UpdateSeverity() *AgentErrorUpsertOne {
	return u.Update(func(s *AgentErrorUpsert) {
		s.UpdateSeverity()
	})
}

// SetMessage sets the "message" field.
func (u *AgentErrorUpsertOne) SetMessage(v string) *AgentErrorUpsertOne {
	return u.Update(func(s *AgentErrorUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AgentErrorUpsertOne) UpdateMessage() *AgentErrorUpsertOne {
	return u.Update(func(s *AgentErrorUpsert) {
		s.UpdateMessage()
	})
}

// SetContextJSON sets the "context_json" field.
func (u *AgentErrorUpsertOne) SetContextJSON(v string) *AgentErrorUpsertOne {
	return u.Update(func(s *AgentErrorUpsert) {
		s.SetContextJSON(v)
	})
}

// UpdateContextJSON sets the "context_json" field to the value that was provided on create.
func (u *AgentErrorUpsertOne) UpdateContextJSON() *AgentErrorUpsertOne {
	return u.Update(func(s *AgentErrorUpsert) {
		s.UpdateContextJSON()
	})
}

// ClearContextJSON clears the value of the "context_json" field.
func (u *AgentErrorUpsertOne) ClearContextJSON() *AgentErrorUpsertOne {
	return u.Update(func(s *AgentErrorUpsert) {
		s.ClearContextJSON()
	})
}

// Exec executes the query.
func (u *AgentErrorUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentErrorCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentErrorUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentErrorUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentErrorUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentErrorCreateBulk is the builder for creating many AgentError entities in bulk.
type AgentErrorCreateBulk struct {
	config
	err      error
	builders []*AgentErrorCreate
	conflict []sql.ConflictOption
}

// Save creates the AgentError entities in the database.
func (_c *AgentErrorCreateBulk) Save(ctx context.Context) ([]*AgentError, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AgentError, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentErrorMutation)
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
func (_c *AgentErrorCreateBulk) SaveX(ctx context.Context) []*AgentError {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentErrorCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentErrorCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AgentError.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentErrorUpsert) {
//			SetSeverity(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentErrorCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentErrorUpsertBulk {
	_c.conflict = opts
	return &AgentErrorUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AgentError.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentErrorCreateBulk) OnConflictColumns(columns ...string) *AgentErrorUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentErrorUpsertBulk{
		create: _c,
	}
}

// AgentErrorUpsertBulk is the builder for "upsert"-ing
// a bulk of AgentError nodes.
type AgentErrorUpsertBulk struct {
	create *AgentErrorCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AgentError.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentErrorUpsertBulk) UpdateNewValues() *AgentErrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.RecordedAt(); exists {
				s.SetIgnore(agenterror.FieldRecordedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AgentError.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentErrorUpsertBulk) Ignore() *AgentErrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentErrorUpsertBulk) DoNothing() *AgentErrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentErrorCreateBulk.OnConflict
// documentation for more info.
func (u *AgentErrorUpsertBulk) Update(set func(*AgentErrorUpsert)) *AgentErrorUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentErrorUpsert{UpdateSet: update})
	}))
	return u
}

// SetSeverity sets the "severity" field.
func (u *AgentErrorUpsertBulk) SetSeverity(v agenterror.Severity) *AgentErrorUpsertBulk {
	return u.Update(func(s *AgentErrorUpsert) {
		s.SetSeverity(v)
	})
}

// UpdateSeverity sets the "severity" field to the value that was provided on create.
func (u *AgentErrorUpsertBulk) UpdateSeverity() *AgentErrorUpsertBulk {
	return u.Update(func(s *AgentErrorUpsert) {
		s.UpdateSeverity()
	})
}

// SetMessage sets the "message" field.
func (u *AgentErrorUpsertBulk) SetMessage(v string) *AgentErrorUpsertBulk {
	return u.Update(func(s *AgentErrorUpsert) {
		s.SetMessage(v)
	})
}

// UpdateMessage sets the "message" field to the value that was provided on create.
func (u *AgentErrorUpsertBulk) UpdateMessage() *AgentErrorUpsertBulk {
	return u.Update(func(s *AgentErrorUpsert) {
		s.UpdateMessage()
	})
}

// SetContextJSON sets the "context_json" field.
func (u *AgentErrorUpsertBulk) SetContextJSON(v string) *AgentErrorUpsertBulk {
	return u.Update(func(s *AgentErrorUpsert) {
		s.SetContextJSON(v)
	})
}

// UpdateContextJSON sets the "context_json" field to the value that was provided on create.
func (u *AgentErrorUpsertBulk) UpdateContextJSON() *AgentErrorUpsertBulk {
	return u.Update(func(s *AgentErrorUpsert) {
		s.UpdateContextJSON()
	})
}

// ClearContextJSON clears the value of the "context_json" field.
func (u *AgentErrorUpsertBulk) ClearContextJSON() *AgentErrorUpsertBulk {
	return u.Update(func(s *AgentErrorUpsert) {
		s.ClearContextJSON()
	})
}

// Exec executes the query.
func (u *AgentErrorUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentErrorCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentErrorCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentErrorUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
