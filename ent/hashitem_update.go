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
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// HashItemUpdate is the builder for updating HashItem entities.
type HashItemUpdate struct {
	config
	hooks    []Hook
	mutation *HashItemMutation
}

// Where appends a list predicates to the HashItemUpdate builder.
func (_u *HashItemUpdate) Where(ps ...predicate.HashItem) *HashItemUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *HashItemUpdate) SetMetadata(v string) *HashItemUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *HashItemUpdate) SetNillableMetadata(v *string) *HashItemUpdate {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *HashItemUpdate) ClearMetadata() *HashItemUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsCracked sets the "is_cracked" field.
func (_u *HashItemUpdate) SetIsCracked(v bool) *HashItemUpdate {
	_u.mutation.SetIsCracked(v)
	return _u
}

// SetNillableIsCracked sets the "is_cracked" field if the given value is not nil.
func (_u *HashItemUpdate) SetNillableIsCracked(v *bool) *HashItemUpdate {
	if v != nil {
		_u.SetIsCracked(*v)
	}
	return _u
}

// SetPlaintext sets the "plaintext" field.
func (_u *HashItemUpdate) SetPlaintext(v string) *HashItemUpdate {
	_u.mutation.SetPlaintext(v)
	return _u
}

// SetNillablePlaintext sets the "plaintext" field if the given value is not nil.
func (_u *HashItemUpdate) SetNillablePlaintext(v *string) *HashItemUpdate {
	if v != nil {
		_u.SetPlaintext(*v)
	}
	return _u
}

// ClearPlaintext clears the value of the "plaintext" field.
func (_u *HashItemUpdate) ClearPlaintext() *HashItemUpdate {
	_u.mutation.ClearPlaintext()
	return _u
}

// SetCrackedAt sets the "cracked_at" field.
func (_u *HashItemUpdate) SetCrackedAt(v time.Time) *HashItemUpdate {
	_u.mutation.SetCrackedAt(v)
	return _u
}

// SetNillableCrackedAt sets the "cracked_at" field if the given value is not nil.
func (_u *HashItemUpdate) SetNillableCrackedAt(v *time.Time) *HashItemUpdate {
	if v != nil {
		_u.SetCrackedAt(*v)
	}
	return _u
}

// ClearCrackedAt clears the value of the "cracked_at" field.
func (_u *HashItemUpdate) ClearCrackedAt() *HashItemUpdate {
	_u.mutation.ClearCrackedAt()
	return _u
}

// AddCrackResultIDs adds the "crack_results" edge to the CrackResult entity by IDs.
func (_u *HashItemUpdate) AddCrackResultIDs(ids ...int64) *HashItemUpdate {
	_u.mutation.AddCrackResultIDs(ids...)
	return _u
}

// AddCrackResults adds the "crack_results" edges to the CrackResult entity.
func (_u *HashItemUpdate) AddCrackResults(v ...*CrackResult) *HashItemUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCrackResultIDs(ids...)
}

// Mutation returns the HashItemMutation object of the builder.
func (_u *HashItemUpdate) Mutation() *HashItemMutation {
	return _u.mutation
}

// ClearCrackResults clears all "crack_results" edges to the CrackResult entity.
func (_u *HashItemUpdate) ClearCrackResults() *HashItemUpdate {
	_u.mutation.ClearCrackResults()
	return _u
}

// RemoveCrackResultIDs removes the "crack_results" edge to CrackResult entities by IDs.
func (_u *HashItemUpdate) RemoveCrackResultIDs(ids ...int64) *HashItemUpdate {
	_u.mutation.RemoveCrackResultIDs(ids...)
	return _u
}

// RemoveCrackResults removes "crack_results" edges to CrackResult entities.
func (_u *HashItemUpdate) RemoveCrackResults(v ...*CrackResult) *HashItemUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCrackResultIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HashItemUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashItemUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HashItemUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashItemUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashItemUpdate) check() error {
	if _u.mutation.HashListCleared() && len(_u.mutation.HashListIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashItem.hash_list"`)
	}
	return nil
}

func (_u *HashItemUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashitem.Table, hashitem.Columns, sqlgraph.NewFieldSpec(hashitem.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(hashitem.FieldMetadata, field.TypeString, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(hashitem.FieldMetadata, field.TypeString)
	}
	if value, ok := _u.mutation.IsCracked(); ok {
		_spec.SetField(hashitem.FieldIsCracked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Plaintext(); ok {
		_spec.SetField(hashitem.FieldPlaintext, field.TypeString, value)
	}
	if _u.mutation.PlaintextCleared() {
		_spec.ClearField(hashitem.FieldPlaintext, field.TypeString)
	}
	if value, ok := _u.mutation.CrackedAt(); ok {
		_spec.SetField(hashitem.FieldCrackedAt, field.TypeTime, value)
	}
	if _u.mutation.CrackedAtCleared() {
		_spec.ClearField(hashitem.FieldCrackedAt, field.TypeTime)
	}
	if _u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCrackResultsIDs(); len(nodes) > 0 && !_u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CrackResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HashItemUpdateOne is the builder for updating a single HashItem entity.
type HashItemUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HashItemMutation
}

// SetMetadata sets the "metadata" field.
func (_u *HashItemUpdateOne) SetMetadata(v string) *HashItemUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// SetNillableMetadata sets the "metadata" field if the given value is not nil.
func (_u *HashItemUpdateOne) SetNillableMetadata(v *string) *HashItemUpdateOne {
	if v != nil {
		_u.SetMetadata(*v)
	}
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *HashItemUpdateOne) ClearMetadata() *HashItemUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// SetIsCracked sets the "is_cracked" field.
func (_u *HashItemUpdateOne) SetIsCracked(v bool) *HashItemUpdateOne {
	_u.mutation.SetIsCracked(v)
	return _u
}

// SetNillableIsCracked sets the "is_cracked" field if the given value is not nil.
func (_u *HashItemUpdateOne) SetNillableIsCracked(v *bool) *HashItemUpdateOne {
	if v != nil {
		_u.SetIsCracked(*v)
	}
	return _u
}

// SetPlaintext sets the "plaintext" field.
func (_u *HashItemUpdateOne) SetPlaintext(v string) *HashItemUpdateOne {
	_u.mutation.SetPlaintext(v)
	return _u
}

// SetNillablePlaintext sets the "plaintext" field if the given value is not nil.
func (_u *HashItemUpdateOne) SetNillablePlaintext(v *string) *HashItemUpdateOne {
	if v != nil {
		_u.SetPlaintext(*v)
	}
	return _u
}

// ClearPlaintext clears the value of the "plaintext" field.
func (_u *HashItemUpdateOne) ClearPlaintext() *HashItemUpdateOne {
	_u.mutation.ClearPlaintext()
	return _u
}

// SetCrackedAt sets the "cracked_at" field.
func (_u *HashItemUpdateOne) SetCrackedAt(v time.Time) *HashItemUpdateOne {
	_u.mutation.SetCrackedAt(v)
	return _u
}

// SetNillableCrackedAt sets the "cracked_at" field if the given value is not nil.
func (_u *HashItemUpdateOne) SetNillableCrackedAt(v *time.Time) *HashItemUpdateOne {
	if v != nil {
		_u.SetCrackedAt(*v)
	}
	return _u
}

// ClearCrackedAt clears the value of the "cracked_at" field.
func (_u *HashItemUpdateOne) ClearCrackedAt() *HashItemUpdateOne {
	_u.mutation.ClearCrackedAt()
	return _u
}

// AddCrackResultIDs adds the "crack_results" edge to the CrackResult entity by IDs.
func (_u *HashItemUpdateOne) AddCrackResultIDs(ids ...int64) *HashItemUpdateOne {
	_u.mutation.AddCrackResultIDs(ids...)
	return _u
}

// AddCrackResults adds the "crack_results" edges to the CrackResult entity.
func (_u *HashItemUpdateOne) AddCrackResults(v ...*CrackResult) *HashItemUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCrackResultIDs(ids...)
}

// Mutation returns the HashItemMutation object of the builder.
func (_u *HashItemUpdateOne) Mutation() *HashItemMutation {
	return _u.mutation
}

// ClearCrackResults clears all "crack_results" edges to the CrackResult entity.
func (_u *HashItemUpdateOne) ClearCrackResults() *HashItemUpdateOne {
	_u.mutation.ClearCrackResults()
	return _u
}

// RemoveCrackResultIDs removes the "crack_results" edge to CrackResult entities by IDs.
func (_u *HashItemUpdateOne) RemoveCrackResultIDs(ids ...int64) *HashItemUpdateOne {
	_u.mutation.RemoveCrackResultIDs(ids...)
	return _u
}

// RemoveCrackResults removes "crack_results" edges to CrackResult entities.
func (_u *HashItemUpdateOne) RemoveCrackResults(v ...*CrackResult) *HashItemUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCrackResultIDs(ids...)
}

// Where appends a list predicates to the HashItemUpdate builder.
func (_u *HashItemUpdateOne) Where(ps ...predicate.HashItem) *HashItemUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HashItemUpdateOne) Select(field string, fields ...string) *HashItemUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HashItem entity.
func (_u *HashItemUpdateOne) Save(ctx context.Context) (*HashItem, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashItemUpdateOne) SaveX(ctx context.Context) *HashItem {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HashItemUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashItemUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashItemUpdateOne) check() error {
	if _u.mutation.HashListCleared() && len(_u.mutation.HashListIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashItem.hash_list"`)
	}
	return nil
}

func (_u *HashItemUpdateOne) sqlSave(ctx context.Context) (_node *HashItem, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashitem.Table, hashitem.Columns, sqlgraph.NewFieldSpec(hashitem.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HashItem.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hashitem.FieldID)
		for _, f := range fields {
			if !hashitem.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hashitem.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(hashitem.FieldMetadata, field.TypeString, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(hashitem.FieldMetadata, field.TypeString)
	}
	if value, ok := _u.mutation.IsCracked(); ok {
		_spec.SetField(hashitem.FieldIsCracked, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Plaintext(); ok {
		_spec.SetField(hashitem.FieldPlaintext, field.TypeString, value)
	}
	if _u.mutation.PlaintextCleared() {
		_spec.ClearField(hashitem.FieldPlaintext, field.TypeString)
	}
	if value, ok := _u.mutation.CrackedAt(); ok {
		_spec.SetField(hashitem.FieldCrackedAt, field.TypeTime, value)
	}
	if _u.mutation.CrackedAtCleared() {
		_spec.ClearField(hashitem.FieldCrackedAt, field.TypeTime)
	}
	if _u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCrackResultsIDs(); len(nodes) > 0 && !_u.mutation.CrackResultsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CrackResultsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HashItem{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashitem.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
