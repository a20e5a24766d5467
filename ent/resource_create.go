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
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
)

// ResourceCreate is the builder for creating a Resource entity.
type ResourceCreate struct {
	config
	mutation *ResourceMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *ResourceCreate) SetName(v string) *ResourceCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetKind sets the "kind" field.
func (_c *ResourceCreate) SetKind(v resource.Kind) *ResourceCreate {
	_c.mutation.SetKind(v)
	return _c
}

// SetFileHandle sets the "file_handle" field.
func (_c *ResourceCreate) SetFileHandle(v string) *ResourceCreate {
	_c.mutation.SetFileHandle(v)
	return _c
}

// SetLineCount sets the "line_count" field.
func (_c *ResourceCreate) SetLineCount(v int64) *ResourceCreate {
	_c.mutation.SetLineCount(v)
	return _c
}

// SetNillableLineCount sets the "line_count" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableLineCount(v *int64) *ResourceCreate {
	if v != nil {
		_c.SetLineCount(*v)
	}
	return _c
}

// SetSensitive sets the "sensitive" field.
func (_c *ResourceCreate) SetSensitive(v bool) *ResourceCreate {
	_c.mutation.SetSensitive(v)
	return _c
}

// SetNillableSensitive sets the "sensitive" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableSensitive(v *bool) *ResourceCreate {
	if v != nil {
		_c.SetSensitive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ResourceCreate) SetCreatedAt(v time.Time) *ResourceCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ResourceCreate) SetNillableCreatedAt(v *time.Time) *ResourceCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_c *ResourceCreate) AddProjectIDs(ids ...int64) *ResourceCreate {
	_c.mutation.AddProjectIDs(ids...)
	return _c
}

// AddProjects adds the "projects" edges to the Project entity.
func (_c *ResourceCreate) AddProjects(v ...*Project) *ResourceCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProjectIDs(ids...)
}

// AddWordListAttackIDs adds the "word_list_attacks" edge to the Attack entity by IDs.
func (_c *ResourceCreate) AddWordListAttackIDs(ids ...int64) *ResourceCreate {
	_c.mutation.AddWordListAttackIDs(ids...)
	return _c
}

// AddWordListAttacks adds the "word_list_attacks" edges to the Attack entity.
func (_c *ResourceCreate) AddWordListAttacks(v ...*Attack) *ResourceCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddWordListAttackIDs(ids...)
}

// AddRuleListAttackIDs adds the "rule_list_attacks" edge to the Attack entity by IDs.
func (_c *ResourceCreate) AddRuleListAttackIDs(ids ...int64) *ResourceCreate {
	_c.mutation.AddRuleListAttackIDs(ids...)
	return _c
}

// AddRuleListAttacks adds the "rule_list_attacks" edges to the Attack entity.
func (_c *ResourceCreate) AddRuleListAttacks(v ...*Attack) *ResourceCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddRuleListAttackIDs(ids...)
}

// AddMaskListAttackIDs adds the "mask_list_attacks" edge to the Attack entity by IDs.
func (_c *ResourceCreate) AddMaskListAttackIDs(ids ...int64) *ResourceCreate {
	_c.mutation.AddMaskListAttackIDs(ids...)
	return _c
}

// AddMaskListAttacks adds the "mask_list_attacks" edges to the Attack entity.
func (_c *ResourceCreate) AddMaskListAttacks(v ...*Attack) *ResourceCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMaskListAttackIDs(ids...)
}

// Mutation returns the ResourceMutation object of the builder.
func (_c *ResourceCreate) Mutation() *ResourceMutation {
	return _c.mutation
}

// Save creates the Resource in the database.
func (_c *ResourceCreate) Save(ctx context.Context) (*Resource, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ResourceCreate) SaveX(ctx context.Context) *Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ResourceCreate) defaults() {
	if _, ok := _c.mutation.Sensitive(); !ok {
		v := resource.DefaultSensitive
		_c.mutation.SetSensitive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := resource.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ResourceCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "Resource.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := resource.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "Resource.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Kind(); !ok {
		return &ValidationError{Name: "kind", err: errors.New(`ent: missing required field "Resource.kind"`)}
	}
	if v, ok := _c.mutation.Kind(); ok {
		if err := resource.KindValidator(v); err != nil {
			return &ValidationError{Name: "kind", err: fmt.Errorf(`ent: validator failed for field "Resource.kind": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FileHandle(); !ok {
		return &ValidationError{Name: "file_handle", err: errors.New(`ent: missing required field "Resource.file_handle"`)}
	}
	if v, ok := _c.mutation.FileHandle(); ok {
		if err := resource.FileHandleValidator(v); err != nil {
			return &ValidationError{Name: "file_handle", err: fmt.Errorf(`ent: validator failed for field "Resource.file_handle": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Sensitive(); !ok {
		return &ValidationError{Name: "sensitive", err: errors.New(`ent: missing required field "Resource.sensitive"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Resource.created_at"`)}
	}
	return nil
}

func (_c *ResourceCreate) sqlSave(ctx context.Context) (*Resource, error) {
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

func (_c *ResourceCreate) createSpec() (*Resource, *sqlgraph.CreateSpec) {
	var (
		_node = &Resource{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(resource.Table, sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(resource.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.Kind(); ok {
		_spec.SetField(resource.FieldKind, field.TypeEnum, value)
		_node.Kind = value
	}
	if value, ok := _c.mutation.FileHandle(); ok {
		_spec.SetField(resource.FieldFileHandle, field.TypeString, value)
		_node.FileHandle = value
	}
	if value, ok := _c.mutation.LineCount(); ok {
		_spec.SetField(resource.FieldLineCount, field.TypeInt64, value)
		_node.LineCount = &value
	}
	if value, ok := _c.mutation.Sensitive(); ok {
		_spec.SetField(resource.FieldSensitive, field.TypeBool, value)
		_node.Sensitive = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(resource.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   resource.ProjectsTable,
			Columns: resource.ProjectsPrimaryKey,
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WordListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   resource.WordListAttacksTable,
			Columns: []string{resource.WordListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RuleListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   resource.RuleListAttacksTable,
			Columns: []string{resource.RuleListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MaskListAttacksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: true,
			Table:   resource.MaskListAttacksTable,
			Columns: []string{resource.MaskListAttacksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Resource.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceCreate) OnConflict(opts ...sql.ConflictOption) *ResourceUpsertOne {
	_c.conflict = opts
	return &ResourceUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceCreate) OnConflictColumns(columns ...string) *ResourceUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceUpsertOne{
		create: _c,
	}
}

type (
	// ResourceUpsertOne is the builder for "upsert"-ing
	//  one Resource node.
	ResourceUpsertOne struct {
		create *ResourceCreate
	}

	// ResourceUpsert is the "OnConflict" setter.
	ResourceUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *ResourceUpsert) SetName(v string) *ResourceUpsert {
	u.Set(resource.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateName() *ResourceUpsert {
	u.SetExcluded(resource.FieldName)
	return u
}

// SetKind sets the "kind" field.
func (u *ResourceUpsert) SetKind(v resource.Kind) *ResourceUpsert {
	u.Set(resource.FieldKind, v)
	return u
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateKind() *ResourceUpsert {
	u.SetExcluded(resource.FieldKind)
	return u
}

// SetLineCount sets the "line_count" field.
func (u *ResourceUpsert) SetLineCount(v int64) *ResourceUpsert {
	u.Set(resource.FieldLineCount, v)
	return u
}

// UpdateLineCount sets the "line_count" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateLineCount() *ResourceUpsert {
	u.SetExcluded(resource.FieldLineCount)
	return u
}

// AddLineCount adds v to the "line_count" field.
func (u *ResourceUpsert) AddLineCount(v int64) *ResourceUpsert {
	u.Add(resource.FieldLineCount, v)
	return u
}

// ClearLineCount clears the value of the "line_count" field.
func (u *ResourceUpsert) ClearLineCount() *ResourceUpsert {
	u.SetNull(resource.FieldLineCount)
	return u
}

// SetSensitive sets the "sensitive" field.
func (u *ResourceUpsert) SetSensitive(v bool) *ResourceUpsert {
	u.Set(resource.FieldSensitive, v)
	return u
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *ResourceUpsert) UpdateSensitive() *ResourceUpsert {
	u.SetExcluded(resource.FieldSensitive)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResourceUpsertOne) UpdateNewValues() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.FileHandle(); exists {
			s.SetIgnore(resource.FieldFileHandle)
		}
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(resource.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *ResourceUpsertOne) Ignore() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceUpsertOne) DoNothing() *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceCreate.OnConflict
// documentation for more info.
func (u *ResourceUpsertOne) Update(set func(*ResourceUpsert)) *ResourceUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ResourceUpsertOne) SetName(v string) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateName() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateName()
	})
}

// SetKind sets the "kind" field.
func (u *ResourceUpsertOne) SetKind(v resource.Kind) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateKind() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateKind()
	})
}

// SetLineCount sets the "line_count" field.
func (u *ResourceUpsertOne) SetLineCount(v int64) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetLineCount(v)
	})
}

// AddLineCount adds v to the "line_count" field.
func (u *ResourceUpsertOne) AddLineCount(v int64) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.AddLineCount(v)
	})
}

// UpdateLineCount sets the "line_count" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateLineCount() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateLineCount()
	})
}

// ClearLineCount clears the value of the "line_count" field.
func (u *ResourceUpsertOne) ClearLineCount() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearLineCount()
	})
}

// SetSensitive sets the "sensitive" field.
func (u *ResourceUpsertOne) SetSensitive(v bool) *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.SetSensitive(v)
	})
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *ResourceUpsertOne) UpdateSensitive() *ResourceUpsertOne {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateSensitive()
	})
}

// Exec executes the query.
func (u *ResourceUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *ResourceUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *ResourceUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// ResourceCreateBulk is the builder for creating many Resource entities in bulk.
type ResourceCreateBulk struct {
	config
	err      error
	builders []*ResourceCreate
	conflict []sql.ConflictOption
}

// Save creates the Resource entities in the database.
func (_c *ResourceCreateBulk) Save(ctx context.Context) ([]*Resource, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Resource, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ResourceMutation)
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
func (_c *ResourceCreateBulk) SaveX(ctx context.Context) []*Resource {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ResourceCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ResourceCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Resource.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.ResourceUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *ResourceCreateBulk) OnConflict(opts ...sql.ConflictOption) *ResourceUpsertBulk {
	_c.conflict = opts
	return &ResourceUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *ResourceCreateBulk) OnConflictColumns(columns ...string) *ResourceUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &ResourceUpsertBulk{
		create: _c,
	}
}

// ResourceUpsertBulk is the builder for "upsert"-ing
// a bulk of Resource nodes.
type ResourceUpsertBulk struct {
	create *ResourceCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *ResourceUpsertBulk) UpdateNewValues() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.FileHandle(); exists {
				s.SetIgnore(resource.FieldFileHandle)
			}
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(resource.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Resource.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *ResourceUpsertBulk) Ignore() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *ResourceUpsertBulk) DoNothing() *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the ResourceCreateBulk.OnConflict
// documentation for more info.
func (u *ResourceUpsertBulk) Update(set func(*ResourceUpsert)) *ResourceUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&ResourceUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *ResourceUpsertBulk) SetName(v string) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateName() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateName()
	})
}

// SetKind sets the "kind" field.
func (u *ResourceUpsertBulk) SetKind(v resource.Kind) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetKind(v)
	})
}

// UpdateKind sets the "kind" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateKind() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateKind()
	})
}

// SetLineCount sets the "line_count" field.
func (u *ResourceUpsertBulk) SetLineCount(v int64) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetLineCount(v)
	})
}

// AddLineCount adds v to the "line_count" field.
func (u *ResourceUpsertBulk) AddLineCount(v int64) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.AddLineCount(v)
	})
}

// UpdateLineCount sets the "line_count" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateLineCount() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateLineCount()
	})
}

// ClearLineCount clears the value of the "line_count" field.
func (u *ResourceUpsertBulk) ClearLineCount() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.ClearLineCount()
	})
}

// SetSensitive sets the "sensitive" field.
func (u *ResourceUpsertBulk) SetSensitive(v bool) *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.SetSensitive(v)
	})
}

// UpdateSensitive sets the "sensitive" field to the value that was provided on create.
func (u *ResourceUpsertBulk) UpdateSensitive() *ResourceUpsertBulk {
	return u.Update(func(s *ResourceUpsert) {
		s.UpdateSensitive()
	})
}

// Exec executes the query.
func (u *ResourceUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the ResourceCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for ResourceCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *ResourceUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
