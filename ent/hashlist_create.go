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
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
)

// HashListCreate is the builder for creating a HashList entity.
type HashListCreate struct {
	config
	mutation *HashListMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetName sets the "name" field.
func (_c *HashListCreate) SetName(v string) *HashListCreate {
	_c.mutation.SetName(v)
	return _c
}

// SetHashMode sets the "hash_mode" field.
func (_c *HashListCreate) SetHashMode(v int) *HashListCreate {
	_c.mutation.SetHashMode(v)
	return _c
}

// SetUncrackedCount sets the "uncracked_count" field.
func (_c *HashListCreate) SetUncrackedCount(v int) *HashListCreate {
	_c.mutation.SetUncrackedCount(v)
	return _c
}

// SetNillableUncrackedCount sets the "uncracked_count" field if the given value is not nil.
func (_c *HashListCreate) SetNillableUncrackedCount(v *int) *HashListCreate {
	if v != nil {
		_c.SetUncrackedCount(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *HashListCreate) SetCreatedAt(v time.Time) *HashListCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *HashListCreate) SetNillableCreatedAt(v *time.Time) *HashListCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetProjectID sets the "project" edge to the Project entity by ID.
func (_c *HashListCreate) SetProjectID(id int64) *HashListCreate {
	_c.mutation.SetProjectID(id)
	return _c
}

// SetProject sets the "project" edge to the Project entity.
func (_c *HashListCreate) SetProject(v *Project) *HashListCreate {
	return _c.SetProjectID(v.ID)
}

// AddItemIDs adds the "items" edge to the HashItem entity by IDs.
func (_c *HashListCreate) AddItemIDs(ids ...int64) *HashListCreate {
	_c.mutation.AddItemIDs(ids...)
	return _c
}

// AddItems adds the "items" edges to the HashItem entity.
func (_c *HashListCreate) AddItems(v ...*HashItem) *HashListCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddItemIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_c *HashListCreate) AddCampaignIDs(ids ...int64) *HashListCreate {
	_c.mutation.AddCampaignIDs(ids...)
	return _c
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_c *HashListCreate) AddCampaigns(v ...*Campaign) *HashListCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCampaignIDs(ids...)
}

// Mutation returns the HashListMutation object of the builder.
func (_c *HashListCreate) Mutation() *HashListMutation {
	return _c.mutation
}

// Save creates the HashList in the database.
func (_c *HashListCreate) Save(ctx context.Context) (*HashList, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HashListCreate) SaveX(ctx context.Context) *HashList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashListCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashListCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HashListCreate) defaults() {
	if _, ok := _c.mutation.UncrackedCount(); !ok {
		v := hashlist.DefaultUncrackedCount
		_c.mutation.SetUncrackedCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := hashlist.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HashListCreate) check() error {
	if _, ok := _c.mutation.Name(); !ok {
		return &ValidationError{Name: "name", err: errors.New(`ent: missing required field "HashList.name"`)}
	}
	if v, ok := _c.mutation.Name(); ok {
		if err := hashlist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "HashList.name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.HashMode(); !ok {
		return &ValidationError{Name: "hash_mode", err: errors.New(`ent: missing required field "HashList.hash_mode"`)}
	}
	if _, ok := _c.mutation.UncrackedCount(); !ok {
		return &ValidationError{Name: "uncracked_count", err: errors.New(`ent: missing required field "HashList.uncracked_count"`)}
	}
	if v, ok := _c.mutation.UncrackedCount(); ok {
		if err := hashlist.UncrackedCountValidator(v); err != nil {
			return &ValidationError{Name: "uncracked_count", err: fmt.Errorf(`ent: validator failed for field "HashList.uncracked_count": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "HashList.created_at"`)}
	}
	if len(_c.mutation.ProjectIDs()) == 0 {
		return &ValidationError{Name: "project", err: errors.New(`ent: missing required edge "HashList.project"`)}
	}
	return nil
}

func (_c *HashListCreate) sqlSave(ctx context.Context) (*HashList, error) {
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

func (_c *HashListCreate) createSpec() (*HashList, *sqlgraph.CreateSpec) {
	var (
		_node = &HashList{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hashlist.Table, sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Name(); ok {
		_spec.SetField(hashlist.FieldName, field.TypeString, value)
		_node.Name = value
	}
	if value, ok := _c.mutation.HashMode(); ok {
		_spec.SetField(hashlist.FieldHashMode, field.TypeInt, value)
		_node.HashMode = value
	}
	if value, ok := _c.mutation.UncrackedCount(); ok {
		_spec.SetField(hashlist.FieldUncrackedCount, field.TypeInt, value)
		_node.UncrackedCount = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(hashlist.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hashlist.ProjectTable,
			Columns: []string{hashlist.ProjectColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(project.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.project_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ItemsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hashlist.ItemsTable,
			Columns: []string{hashlist.ItemsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hashitem.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CampaignsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hashlist.CampaignsTable,
			Columns: []string{hashlist.CampaignsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt64),
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
//	client.HashList.Create().
//		SetName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashListUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *HashListCreate) OnConflict(opts ...sql.ConflictOption) *HashListUpsertOne {
	_c.conflict = opts
	return &HashListUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashListCreate) OnConflictColumns(columns ...string) *HashListUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashListUpsertOne{
		create: _c,
	}
}

type (
	// HashListUpsertOne is the builder for "upsert"-ing
	//  one HashList node.
	HashListUpsertOne struct {
		create *HashListCreate
	}

	// HashListUpsert is the "OnConflict" setter.
	HashListUpsert struct {
		*sql.UpdateSet
	}
)

// SetName sets the "name" field.
func (u *HashListUpsert) SetName(v string) *HashListUpsert {
	u.Set(hashlist.FieldName, v)
	return u
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *HashListUpsert) UpdateName() *HashListUpsert {
	u.SetExcluded(hashlist.FieldName)
	return u
}

// SetHashMode sets the "hash_mode" field.
func (u *HashListUpsert) SetHashMode(v int) *HashListUpsert {
	u.Set(hashlist.FieldHashMode, v)
	return u
}

// UpdateHashMode sets the "hash_mode" field to the value that was provided on create.
func (u *HashListUpsert) UpdateHashMode() *HashListUpsert {
	u.SetExcluded(hashlist.FieldHashMode)
	return u
}

// AddHashMode adds v to the "hash_mode" field.
func (u *HashListUpsert) AddHashMode(v int) *HashListUpsert {
	u.Add(hashlist.FieldHashMode, v)
	return u
}

// SetUncrackedCount sets the "uncracked_count" field.
func (u *HashListUpsert) SetUncrackedCount(v int) *HashListUpsert {
	u.Set(hashlist.FieldUncrackedCount, v)
	return u
}

// UpdateUncrackedCount sets the "uncracked_count" field to the value that was provided on create.
func (u *HashListUpsert) UpdateUncrackedCount() *HashListUpsert {
	u.SetExcluded(hashlist.FieldUncrackedCount)
	return u
}

// AddUncrackedCount adds v to the "uncracked_count" field.
func (u *HashListUpsert) AddUncrackedCount(v int) *HashListUpsert {
	u.Add(hashlist.FieldUncrackedCount, v)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashListUpsertOne) UpdateNewValues() *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(hashlist.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashList.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HashListUpsertOne) Ignore() *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashListUpsertOne) DoNothing() *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashListCreate.OnConflict
// documentation for more info.
func (u *HashListUpsertOne) Update(set func(*HashListUpsert)) *HashListUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashListUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *HashListUpsertOne) SetName(v string) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateName() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateName()
	})
}

// SetHashMode sets the "hash_mode" field.
func (u *HashListUpsertOne) SetHashMode(v int) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetHashMode(v)
	})
}

// AddHashMode adds v to the "hash_mode" field.
func (u *HashListUpsertOne) AddHashMode(v int) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.AddHashMode(v)
	})
}

// UpdateHashMode sets the "hash_mode" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateHashMode() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateHashMode()
	})
}

// SetUncrackedCount sets the "uncracked_count" field.
func (u *HashListUpsertOne) SetUncrackedCount(v int) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.SetUncrackedCount(v)
	})
}

// AddUncrackedCount adds v to the "uncracked_count" field.
func (u *HashListUpsertOne) AddUncrackedCount(v int) *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.AddUncrackedCount(v)
	})
}

// UpdateUncrackedCount sets the "uncracked_count" field to the value that was provided on create.
func (u *HashListUpsertOne) UpdateUncrackedCount() *HashListUpsertOne {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateUncrackedCount()
	})
}

// Exec executes the query.
func (u *HashListUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashListCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashListUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HashListUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HashListUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HashListCreateBulk is the builder for creating many HashList entities in bulk.
type HashListCreateBulk struct {
	config
	err      error
	builders []*HashListCreate
	conflict []sql.ConflictOption
}

// Save creates the HashList entities in the database.
func (_c *HashListCreateBulk) Save(ctx context.Context) ([]*HashList, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HashList, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HashListMutation)
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
func (_c *HashListCreateBulk) SaveX(ctx context.Context) []*HashList {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashListCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashListCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HashList.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashListUpsert) {
//			SetName(v+v).
//		}).
//		Exec(ctx)
func (_c *HashListCreateBulk) OnConflict(opts ...sql.ConflictOption) *HashListUpsertBulk {
	_c.conflict = opts
	return &HashListUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashListCreateBulk) OnConflictColumns(columns ...string) *HashListUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashListUpsertBulk{
		create: _c,
	}
}

// HashListUpsertBulk is the builder for "upsert"-ing
// a bulk of HashList nodes.
type HashListUpsertBulk struct {
	create *HashListCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashListUpsertBulk) UpdateNewValues() *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(hashlist.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashList.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HashListUpsertBulk) Ignore() *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashListUpsertBulk) DoNothing() *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashListCreateBulk.OnConflict
// documentation for more info.
func (u *HashListUpsertBulk) Update(set func(*HashListUpsert)) *HashListUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashListUpsert{UpdateSet: update})
	}))
	return u
}

// SetName sets the "name" field.
func (u *HashListUpsertBulk) SetName(v string) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetName(v)
	})
}

// UpdateName sets the "name" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateName() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateName()
	})
}

// SetHashMode sets the "hash_mode" field.
func (u *HashListUpsertBulk) SetHashMode(v int) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetHashMode(v)
	})
}

// AddHashMode adds v to the "hash_mode" field.
func (u *HashListUpsertBulk) AddHashMode(v int) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.AddHashMode(v)
	})
}

// UpdateHashMode sets the "hash_mode" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateHashMode() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateHashMode()
	})
}

// SetUncrackedCount sets the "uncracked_count" field.
func (u *HashListUpsertBulk) SetUncrackedCount(v int) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.SetUncrackedCount(v)
	})
}

// AddUncrackedCount adds v to the "uncracked_count" field.
func (u *HashListUpsertBulk) AddUncrackedCount(v int) *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.AddUncrackedCount(v)
	})
}

// UpdateUncrackedCount sets the "uncracked_count" field to the value that was provided on create.
func (u *HashListUpsertBulk) UpdateUncrackedCount() *HashListUpsertBulk {
	return u.Update(func(s *HashListUpsert) {
		s.UpdateUncrackedCount()
	})
}

// Exec executes the query.
func (u *HashListUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HashListCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashListCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashListUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
