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
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// CrackResultCreate is the builder for creating a CrackResult entity.
type CrackResultCreate struct {
	config
	mutation *CrackResultMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHashValue sets the "hash_value" field.
func (_c *CrackResultCreate) SetHashValue(v string) *CrackResultCreate {
	_c.mutation.SetHashValue(v)
	return _c
}

// SetPlaintext sets the "plaintext" field.
func (_c *CrackResultCreate) SetPlaintext(v string) *CrackResultCreate {
	_c.mutation.SetPlaintext(v)
	return _c
}

// SetCrackedAt sets the "cracked_at" field.
func (_c *CrackResultCreate) SetCrackedAt(v time.Time) *CrackResultCreate {
	_c.mutation.SetCrackedAt(v)
	return _c
}

// SetNillableCrackedAt sets the "cracked_at" field if the given value is not nil.
func (_c *CrackResultCreate) SetNillableCrackedAt(v *time.Time) *CrackResultCreate {
	if v != nil {
		_c.SetCrackedAt(*v)
	}
	return _c
}

// SetTaskID sets the "task" edge to the Task entity by ID.
func (_c *CrackResultCreate) SetTaskID(id int64) *CrackResultCreate {
	_c.mutation.SetTaskID(id)
	return _c
}

// SetTask sets the "task" edge to the Task entity.
func (_c *CrackResultCreate) SetTask(v *Task) *CrackResultCreate {
	return _c.SetTaskID(v.ID)
}

// SetHashItemID sets the "hash_item" edge to the HashItem entity by ID.
func (_c *CrackResultCreate) SetHashItemID(id int64) *CrackResultCreate {
	_c.mutation.SetHashItemID(id)
	return _c
}

// SetHashItem sets the "hash_item" edge to the HashItem entity.
func (_c *CrackResultCreate) SetHashItem(v *HashItem) *CrackResultCreate {
	return _c.SetHashItemID(v.ID)
}

// Mutation returns the CrackResultMutation object of the builder.
func (_c *CrackResultCreate) Mutation() *CrackResultMutation {
	return _c.mutation
}

// Save creates the CrackResult in the database.
func (_c *CrackResultCreate) Save(ctx context.Context) (*CrackResult, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CrackResultCreate) SaveX(ctx context.Context) *CrackResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CrackResultCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CrackResultCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CrackResultCreate) defaults() {
	if _, ok := _c.mutation.CrackedAt(); !ok {
		v := crackresult.DefaultCrackedAt()
		_c.mutation.SetCrackedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CrackResultCreate) check() error {
	if _, ok := _c.mutation.HashValue(); !ok {
		return &ValidationError{Name: "hash_value", err: errors.New(`ent: missing required field "CrackResult.hash_value"`)}
	}
	if v, ok := _c.mutation.HashValue(); ok {
		if err := crackresult.HashValueValidator(v); err != nil {
			return &ValidationError{Name: "hash_value", err: fmt.Errorf(`ent: validator failed for field "CrackResult.hash_value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Plaintext(); !ok {
		return &ValidationError{Name: "plaintext", err: errors.New(`ent: missing required field "CrackResult.plaintext"`)}
	}
	if _, ok := _c.mutation.CrackedAt(); !ok {
		return &ValidationError{Name: "cracked_at", err: errors.New(`ent: missing required field "CrackResult.cracked_at"`)}
	}
	if len(_c.mutation.TaskIDs()) == 0 {
		return &ValidationError{Name: "task", err: errors.New(`ent: missing required edge "CrackResult.task"`)}
	}
	if len(_c.mutation.HashItemIDs()) == 0 {
		return &ValidationError{Name: "hash_item", err: errors.New(`ent: missing required edge "CrackResult.hash_item"`)}
	}
	return nil
}

func (_c *CrackResultCreate) sqlSave(ctx context.Context) (*CrackResult, error) {
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

func (_c *CrackResultCreate) createSpec() (*CrackResult, *sqlgraph.CreateSpec) {
	var (
		_node = &CrackResult{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(crackresult.Table, sqlgraph.NewFieldSpec(crackresult.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.HashValue(); ok {
		_spec.SetField(crackresult.FieldHashValue, field.TypeString, value)
		_node.HashValue = value
	}
	if value, ok := _c.mutation.Plaintext(); ok {
		_spec.SetField(crackresult.FieldPlaintext, field.TypeString, value)
		_node.Plaintext = value
	}
	if value, ok := _c.mutation.CrackedAt(); ok {
		_spec.SetField(crackresult.FieldCrackedAt, field.TypeTime, value)
		_node.CrackedAt = value
	}
	if nodes := _c.mutation.TaskIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   crackresult.TaskTable,
			Columns: []string{crackresult.TaskColumn},
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
	if nodes := _c.mutation.HashItemIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   crackresult.HashItemTable,
			Columns: []string{crackresult.HashItemColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hashitem.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.hash_item_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CrackResult.Create().
//		SetHashValue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CrackResultUpsert) {
//			SetHashValue(v+v).
//		}).
//		Exec(ctx)
func (_c *CrackResultCreate) OnConflict(opts ...sql.ConflictOption) *CrackResultUpsertOne {
	_c.conflict = opts
	return &CrackResultUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CrackResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CrackResultCreate) OnConflictColumns(columns ...string) *CrackResultUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CrackResultUpsertOne{
		create: _c,
	}
}

type (
	// CrackResultUpsertOne is the builder for "upsert"-ing
	//  one CrackResult node.
	CrackResultUpsertOne struct {
		create *CrackResultCreate
	}

	// CrackResultUpsert is the "OnConflict" setter.
	CrackResultUpsert struct {
		*sql.UpdateSet
	}
)

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.CrackResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CrackResultUpsertOne) UpdateNewValues() *CrackResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.HashValue(); exists {
			s.SetIgnore(crackresult.FieldHashValue)
		}
		if _, exists := u.create.mutation.Plaintext(); exists {
			s.SetIgnore(crackresult.FieldPlaintext)
		}
		if _, exists := u.create.mutation.CrackedAt(); exists {
			s.SetIgnore(crackresult.FieldCrackedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CrackResult.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *CrackResultUpsertOne) Ignore() *CrackResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CrackResultUpsertOne) DoNothing() *CrackResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CrackResultCreate.OnConflict
// documentation for more info.
func (u *CrackResultUpsertOne) Update(set func(*CrackResultUpsert)) *CrackResultUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CrackResultUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CrackResultUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CrackResultCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CrackResultUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *CrackResultUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *CrackResultUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// CrackResultCreateBulk is the builder for creating many CrackResult entities in bulk.
type CrackResultCreateBulk struct {
	config
	err      error
	builders []*CrackResultCreate
	conflict []sql.ConflictOption
}

// Save creates the CrackResult entities in the database.
func (_c *CrackResultCreateBulk) Save(ctx context.Context) ([]*CrackResult, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CrackResult, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CrackResultMutation)
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
func (_c *CrackResultCreateBulk) SaveX(ctx context.Context) []*CrackResult {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CrackResultCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CrackResultCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.CrackResult.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.CrackResultUpsert) {
//			SetHashValue(v+v).
//		}).
//		Exec(ctx)
func (_c *CrackResultCreateBulk) OnConflict(opts ...sql.ConflictOption) *CrackResultUpsertBulk {
	_c.conflict = opts
	return &CrackResultUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.CrackResult.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *CrackResultCreateBulk) OnConflictColumns(columns ...string) *CrackResultUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &CrackResultUpsertBulk{
		create: _c,
	}
}

// CrackResultUpsertBulk is the builder for "upsert"-ing
// a bulk of CrackResult nodes.
type CrackResultUpsertBulk struct {
	create *CrackResultCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.CrackResult.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *CrackResultUpsertBulk) UpdateNewValues() *CrackResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.HashValue(); exists {
				s.SetIgnore(crackresult.FieldHashValue)
			}
			if _, exists := b.mutation.Plaintext(); exists {
				s.SetIgnore(crackresult.FieldPlaintext)
			}
			if _, exists := b.mutation.CrackedAt(); exists {
				s.SetIgnore(crackresult.FieldCrackedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.CrackResult.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *CrackResultUpsertBulk) Ignore() *CrackResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *CrackResultUpsertBulk) DoNothing() *CrackResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the CrackResultCreateBulk.OnConflict
// documentation for more info.
func (u *CrackResultUpsertBulk) Update(set func(*CrackResultUpsert)) *CrackResultUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&CrackResultUpsert{UpdateSet: update})
	}))
	return u
}

// Exec executes the query.
func (u *CrackResultUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the CrackResultCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for CrackResultCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *CrackResultUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
