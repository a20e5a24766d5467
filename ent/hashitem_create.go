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
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
)

// HashItemCreate is the builder for creating a HashItem entity.
type HashItemCreate struct {
	config
	mutation *HashItemMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHashValue sets the "hash_value" field.
func (_c *HashItemCreate) SetHashValue(v string) *HashItemCreate {
	_c.mutation.SetHashValue(v)
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *HashItemCreate) SetMetadata(v string) *HashItemCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_c *HashItemCreate) SetNillableMetadata(v *string) *HashItemCreate {
	if v != nil {
		_c.SetMetadata(*v)
	}
	return _c
}

// SetIsCracked sets the "is_cracked" field.
func (_c *HashItemCreate) SetIsCracked(v bool) *HashItemCreate {
	_c.mutation.SetIsCracked(v)
	return _c
}

// SetNillableIsCracked sets the "is_cracked" field if the given value is not nil.
func (_c *HashItemCreate) SetNillableIsCracked(v *bool) *HashItemCreate {
	if v != nil {
		_c.SetIsCracked(*v)
	}
	return _c
}

// SetPlaintext sets the "plaintext" field.
func (_c *HashItemCreate) SetPlaintext(v string) *HashItemCreate {
	_c.mutation.SetPlaintext(v)
	return _c
}

// SetNillablePlaintext sets the "plaintext" field if the given value is not nil.
func (_c *HashItemCreate) SetNillablePlaintext(v *string) *HashItemCreate {
	if v != nil {
		_c.SetPlaintext(*v)
	}
	return _c
}

// SetCrackedAt sets the "cracked_at" field.
func (_c *HashItemCreate) SetCrackedAt(v time.Time) *HashItemCreate {
	_c.mutation.SetCrackedAt(v)
	return _c
}

// SetNillableCrackedAt sets the "cracked_at" field if the given value is not nil.
func (_c *HashItemCreate) SetNillableCrackedAt(v *time.Time) *HashItemCreate {
	if v != nil {
		_c.SetCrackedAt(*v)
	}
	return _c
}

// SetHashListID sets the "hash_list" edge to the HashList entity by ID.
func (_c *HashItemCreate) SetHashListID(id int64) *HashItemCreate {
	_c.mutation.SetHashListID(id)
	return _c
}

// SetHashList sets the "hash_list" edge to the HashList entity.
func (_c *HashItemCreate) SetHashList(v *HashList) *HashItemCreate {
	return _c.SetHashListID(v.ID)
}

// AddCrackResultIDs adds the "crack_results" edge to the CrackResult entity by IDs.
func (_c *HashItemCreate) AddCrackResultIDs(ids ...int64) *HashItemCreate {
	_c.mutation.AddCrackResultIDs(ids...)
	return _c
}

// AddCrackResults adds the "crack_results" edges to the CrackResult entity.
func (_c *HashItemCreate) AddCrackResults(v ...*CrackResult) *HashItemCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCrackResultIDs(ids...)
}

// Mutation returns the HashItemMutation object of the builder.
func (_c *HashItemCreate) Mutation() *HashItemMutation {
	return _c.mutation
}

// Save creates the HashItem in the database.
func (_c *HashItemCreate) Save(ctx context.Context) (*HashItem, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *HashItemCreate) SaveX(ctx context.Context) *HashItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashItemCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashItemCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *HashItemCreate) defaults() {
	if _, ok := _c.mutation.IsCracked(); !ok {
		v := hashitem.DefaultIsCracked
		_c.mutation.SetIsCracked(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *HashItemCreate) check() error {
	if _, ok := _c.mutation.HashValue(); !ok {
		return &ValidationError{Name: "hash_value", err: errors.New(`ent: missing required field "HashItem.hash_value"`)}
	}
	if v, ok := _c.mutation.HashValue(); ok {
		if err := hashitem.HashValueValidator(v); err != nil {
			return &ValidationError{Name: "hash_value", err: fmt.Errorf(`ent: validator failed for field "HashItem.hash_value": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IsCracked(); !ok {
		return &ValidationError{Name: "is_cracked", err: errors.New(`ent: missing required field "HashItem.is_cracked"`)}
	}
	if len(_c.mutation.HashListIDs()) == 0 {
		return &ValidationError{Name: "hash_list", err: errors.New(`ent: missing required edge "HashItem.hash_list"`)}
	}
	return nil
}

func (_c *HashItemCreate) sqlSave(ctx context.Context) (*HashItem, error) {
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

func (_c *HashItemCreate) createSpec() (*HashItem, *sqlgraph.CreateSpec) {
	var (
		_node = &HashItem{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(hashitem.Table, sqlgraph.NewFieldSpec(hashitem.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.HashValue(); ok {
		_spec.SetField(hashitem.FieldHashValue, field.TypeString, value)
		_node.HashValue = value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(hashitem.FieldMetadata, field.TypeString, value)
		_node.Metadata = &value
	}
	if value, ok := _c.mutation.IsCracked(); ok {
		_spec.SetField(hashitem.FieldIsCracked, field.TypeBool, value)
		_node.IsCracked = value
	}
	if value, ok := _c.mutation.Plaintext(); ok {
		_spec.SetField(hashitem.FieldPlaintext, field.TypeString, value)
		_node.Plaintext = &value
	}
	if value, ok := _c.mutation.CrackedAt(); ok {
		_spec.SetField(hashitem.FieldCrackedAt, field.TypeTime, value)
		_node.CrackedAt = &value
	}
	if nodes := _c.mutation.HashListIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   hashitem.HashListTable,
			Columns: []string{hashitem.HashListColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.hash_list_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CrackResultsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   hashitem.CrackResultsTable,
			Columns: []string{hashitem.CrackResultsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(crackresult.FieldID, field.TypeInt64),
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
//	client.HashItem.Create().
//		SetHashValue(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashItemUpsert) {
//			SetHashValue(v+v).
//		}).
//		Exec(ctx)
func (_c *HashItemCreate) OnConflict(opts ...sql.ConflictOption) *HashItemUpsertOne {
	_c.conflict = opts
	return &HashItemUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashItemCreate) OnConflictColumns(columns ...string) *HashItemUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashItemUpsertOne{
		create: _c,
	}
}

type (
	// HashItemUpsertOne is the builder for "upsert"-ing
	//  one HashItem node.
	HashItemUpsertOne struct {
		create *HashItemCreate
	}

	// HashItemUpsert is the "OnConflict" setter.
	HashItemUpsert struct {
		*sql.UpdateSet
	}
)

// SetMetadata sets the "metadata" field.
func (u *HashItemUpsert) SetMetadata(v string) *HashItemUpsert {
	u.Set(hashitem.FieldMetadata, v)
	return u
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *HashItemUpsert) UpdateMetadata() *HashItemUpsert {
	u.SetExcluded(hashitem.FieldMetadata)
	return u
}

// ClearMetadata clears the value of the "metadata" field.
func (u *HashItemUpsert) ClearMetadata() *HashItemUpsert {
	u.SetNull(hashitem.FieldMetadata)
	return u
}

// SetIsCracked sets the "is_cracked" field.
func (u *HashItemUpsert) SetIsCracked(v bool) *HashItemUpsert {
	u.Set(hashitem.FieldIsCracked, v)
	return u
}

// UpdateIsCracked sets the "is_cracked" field to the value that was provided on create.
func (u *HashItemUpsert) UpdateIsCracked() *HashItemUpsert {
	u.SetExcluded(hashitem.FieldIsCracked)
	return u
}

// SetPlaintext sets the "plaintext" field.
func (u *HashItemUpsert) SetPlaintext(v string) *HashItemUpsert {
	u.Set(hashitem.FieldPlaintext, v)
	return u
}

// UpdatePlaintext sets the "plaintext" field to the value that was provided on create.
func (u *HashItemUpsert) UpdatePlaintext() *HashItemUpsert {
	u.SetExcluded(hashitem.FieldPlaintext)
	return u
}

// ClearPlaintext clears the value of the "plaintext" field.
func (u *HashItemUpsert) ClearPlaintext() *HashItemUpsert {
	u.SetNull(hashitem.FieldPlaintext)
	return u
}

// SetCrackedAt sets the "cracked_at" field.
func (u *HashItemUpsert) SetCrackedAt(v time.Time) *HashItemUpsert {
	u.Set(hashitem.FieldCrackedAt, v)
	return u
}

// UpdateCrackedAt sets the "cracked_at" field to the value that was provided on create.
func (u *HashItemUpsert) UpdateCrackedAt() *HashItemUpsert {
	u.SetExcluded(hashitem.FieldCrackedAt)
	return u
}

// ClearCrackedAt clears the value of the "cracked_at" field.
func (u *HashItemUpsert) ClearCrackedAt() *HashItemUpsert {
	u.SetNull(hashitem.FieldCrackedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.HashItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashItemUpsertOne) UpdateNewValues() *HashItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.HashValue(); exists {
			s.SetIgnore(hashitem.FieldHashValue)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashItem.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *HashItemUpsertOne) Ignore() *HashItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashItemUpsertOne) DoNothing() *HashItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashItemCreate.OnConflict
// documentation for more info.
func (u *HashItemUpsertOne) Update(set func(*HashItemUpsert)) *HashItemUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadata sets the "metadata" field.
func (u *HashItemUpsertOne) SetMetadata(v string) *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *HashItemUpsertOne) UpdateMetadata() *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *HashItemUpsertOne) ClearMetadata() *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.ClearMetadata()
	})
}

// SetIsCracked sets the "is_cracked" field.
func (u *HashItemUpsertOne) SetIsCracked(v bool) *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.SetIsCracked(v)
	})
}

// UpdateIsCracked sets the "is_cracked" field to the value that was provided on create.
func (u *HashItemUpsertOne) UpdateIsCracked() *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdateIsCracked()
	})
}

// SetPlaintext sets the "plaintext" field.
func (u *HashItemUpsertOne) SetPlaintext(v string) *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.SetPlaintext(v)
	})
}

// UpdatePlaintext sets the "plaintext" field to the value that was provided on create.
func (u *HashItemUpsertOne) UpdatePlaintext() *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdatePlaintext()
	})
}

// ClearPlaintext clears the value of the "plaintext" field.
func (u *HashItemUpsertOne) ClearPlaintext() *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.ClearPlaintext()
	})
}

// SetCrackedAt sets the "cracked_at" field.
func (u *HashItemUpsertOne) SetCrackedAt(v time.Time) *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.SetCrackedAt(v)
	})
}

// UpdateCrackedAt sets the "cracked_at" field to the value that was provided on create.
func (u *HashItemUpsertOne) UpdateCrackedAt() *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdateCrackedAt()
	})
}

// ClearCrackedAt clears the value of the "cracked_at" field.
func (u *HashItemUpsertOne) ClearCrackedAt() *HashItemUpsertOne {
	return u.Update(func(s *HashItemUpsert) {
		s.ClearCrackedAt()
	})
}

// Exec executes the query.
func (u *HashItemUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashItemCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashItemUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *HashItemUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *HashItemUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// HashItemCreateBulk is the builder for creating many HashItem entities in bulk.
type HashItemCreateBulk struct {
	config
	err      error
	builders []*HashItemCreate
	conflict []sql.ConflictOption
}

// Save creates the HashItem entities in the database.
func (_c *HashItemCreateBulk) Save(ctx context.Context) ([]*HashItem, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*HashItem, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*HashItemMutation)
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
func (_c *HashItemCreateBulk) SaveX(ctx context.Context) []*HashItem {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *HashItemCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *HashItemCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.HashItem.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.HashItemUpsert) {
//			SetHashValue(v+v).
//		}).
//		Exec(ctx)
func (_c *HashItemCreateBulk) OnConflict(opts ...sql.ConflictOption) *HashItemUpsertBulk {
	_c.conflict = opts
	return &HashItemUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.HashItem.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *HashItemCreateBulk) OnConflictColumns(columns ...string) *HashItemUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &HashItemUpsertBulk{
		create: _c,
	}
}

// HashItemUpsertBulk is the builder for "upsert"-ing
// a bulk of HashItem nodes.
type HashItemUpsertBulk struct {
	create *HashItemCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.HashItem.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *HashItemUpsertBulk) UpdateNewValues() *HashItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.HashValue(); exists {
				s.SetIgnore(hashitem.FieldHashValue)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.HashItem.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *HashItemUpsertBulk) Ignore() *HashItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *HashItemUpsertBulk) DoNothing() *HashItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the HashItemCreateBulk.OnConflict
// documentation for more info.
func (u *HashItemUpsertBulk) Update(set func(*HashItemUpsert)) *HashItemUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&HashItemUpsert{UpdateSet: update})
	}))
	return u
}

// SetMetadata sets the "metadata" field.
func (u *HashItemUpsertBulk) SetMetadata(v string) *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.SetMetadata(v)
	})
}

// UpdateMetadata sets the "metadata" field to the value that was provided on create.
func (u *HashItemUpsertBulk) UpdateMetadata() *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdateMetadata()
	})
}

// ClearMetadata clears the value of the "metadata" field.
func (u *HashItemUpsertBulk) ClearMetadata() *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.ClearMetadata()
	})
}

// SetIsCracked sets the "is_cracked" field.
func (u *HashItemUpsertBulk) SetIsCracked(v bool) *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.SetIsCracked(v)
	})
}

// UpdateIsCracked sets the "is_cracked" field to the value that was provided on create.
func (u *HashItemUpsertBulk) UpdateIsCracked() *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdateIsCracked()
	})
}

// SetPlaintext sets the "plaintext" field.
func (u *HashItemUpsertBulk) SetPlaintext(v string) *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.SetPlaintext(v)
	})
}

// UpdatePlaintext sets the "plaintext" field to the value that was provided on create.
func (u *HashItemUpsertBulk) UpdatePlaintext() *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdatePlaintext()
	})
}

// ClearPlaintext clears the value of the "plaintext" field.
func (u *HashItemUpsertBulk) ClearPlaintext() *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.ClearPlaintext()
	})
}

// SetCrackedAt sets the "cracked_at" field.
func (u *HashItemUpsertBulk) SetCrackedAt(v time.Time) *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.SetCrackedAt(v)
	})
}

// UpdateCrackedAt sets the "cracked_at" field to the value that was provided on create.
func (u *HashItemUpsertBulk) UpdateCrackedAt() *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.UpdateCrackedAt()
	})
}

// ClearCrackedAt clears the value of the "cracked_at" field.
func (u *HashItemUpsertBulk) ClearCrackedAt() *HashItemUpsertBulk {
	return u.Update(func(s *HashItemUpsert) {
		s.ClearCrackedAt()
	})
}

// Exec executes the query.
func (u *HashItemUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the HashItemCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for HashItemCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *HashItemUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
