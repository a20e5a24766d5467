// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/predicate"
)

// HashListUpdate is the builder for updating HashList entities.
type HashListUpdate struct {
	config
	hooks    []Hook
	mutation *HashListMutation
}

// Where appends a list predicates to the HashListUpdate builder.
func (_u *HashListUpdate) Where(ps ...predicate.HashList) *HashListUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetName sets the "name" field.
func (_u *HashListUpdate) SetName(v string) *HashListUpdate {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableName(v *string) *HashListUpdate {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHashMode sets the "hash_mode" field.
func (_u *HashListUpdate) SetHashMode(v int) *HashListUpdate {
	_u.mutation.ResetHashMode()
	_u.mutation.SetHashMode(v)
	return _u
}

// SetNillableHashMode sets the "hash_mode" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableHashMode(v *int) *HashListUpdate {
	if v != nil {
		_u.SetHashMode(*v)
	}
	return _u
}

// AddHashMode adds value to the "hash_mode" field.
func (_u *HashListUpdate) AddHashMode(v int) *HashListUpdate {
	_u.mutation.AddHashMode(v)
	return _u
}

// SetUncrackedCount sets the "uncracked_count" field.
func (_u *HashListUpdate) SetUncrackedCount(v int) *HashListUpdate {
	_u.mutation.ResetUncrackedCount()
	_u.mutation.SetUncrackedCount(v)
	return _u
}

// SetNillableUncrackedCount sets the "uncracked_count" field if the given value is not nil.
func (_u *HashListUpdate) SetNillableUncrackedCount(v *int) *HashListUpdate {
	if v != nil {
		_u.SetUncrackedCount(*v)
	}
	return _u
}

// AddUncrackedCount adds value to the "uncracked_count" field.
func (_u *HashListUpdate) AddUncrackedCount(v int) *HashListUpdate {
	_u.mutation.AddUncrackedCount(v)
	return _u
}

// AddItemIDs adds the "items" edge to the HashItem entity by IDs.
func (_u *HashListUpdate) AddItemIDs(ids ...int64) *HashListUpdate {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the HashItem entity.
func (_u *HashListUpdate) AddItems(v ...*HashItem) *HashListUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *HashListUpdate) AddCampaignIDs(ids ...int64) *HashListUpdate {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *HashListUpdate) AddCampaigns(v ...*Campaign) *HashListUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the HashListMutation object of the builder.
func (_u *HashListUpdate) Mutation() *HashListMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the HashItem entity.
func (_u *HashListUpdate) ClearItems() *HashListUpdate {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to HashItem entities by IDs.
func (_u *HashListUpdate) RemoveItemIDs(ids ...int64) *HashListUpdate {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to HashItem entities.
func (_u *HashListUpdate) RemoveItems(v ...*HashItem) *HashListUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *HashListUpdate) ClearCampaigns() *HashListUpdate {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *HashListUpdate) RemoveCampaignIDs(ids ...int64) *HashListUpdate {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *HashListUpdate) RemoveCampaigns(v ...*Campaign) *HashListUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *HashListUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashListUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *HashListUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashListUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashListUpdate) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := hashlist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "HashList.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UncrackedCount(); ok {
		if err := hashlist.UncrackedCountValidator(v); err != nil {
			return &ValidationError{Name: "uncracked_count", err: fmt.Errorf(`ent: validator failed for field "HashList.uncracked_count": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashList.project"`)
	}
	return nil
}

func (_u *HashListUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashlist.Table, hashlist.Columns, sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(hashlist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashMode(); ok {
		_spec.SetField(hashlist.FieldHashMode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHashMode(); ok {
		_spec.AddField(hashlist.FieldHashMode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UncrackedCount(); ok {
		_spec.SetField(hashlist.FieldUncrackedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUncrackedCount(); ok {
		_spec.AddField(hashlist.FieldUncrackedCount, field.TypeInt, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashlist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// HashListUpdateOne is the builder for updating a single HashList entity.
type HashListUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *HashListMutation
}

// SetName sets the "name" field.
func (_u *HashListUpdateOne) SetName(v string) *HashListUpdateOne {
	_u.mutation.SetName(v)
	return _u
}

// SetNillableName sets the "name" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableName(v *string) *HashListUpdateOne {
	if v != nil {
		_u.SetName(*v)
	}
	return _u
}

// SetHashMode sets the "hash_mode" field.
func (_u *HashListUpdateOne) SetHashMode(v int) *HashListUpdateOne {
	_u.mutation.ResetHashMode()
	_u.mutation.SetHashMode(v)
	return _u
}

// SetNillableHashMode sets the "hash_mode" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableHashMode(v *int) *HashListUpdateOne {
	if v != nil {
		_u.SetHashMode(*v)
	}
	return _u
}

// AddHashMode adds value to the "hash_mode" field.
func (_u *HashListUpdateOne) AddHashMode(v int) *HashListUpdateOne {
	_u.mutation.AddHashMode(v)
	return _u
}

// SetUncrackedCount sets the "uncracked_count" field.
func (_u *HashListUpdateOne) SetUncrackedCount(v int) *HashListUpdateOne {
	_u.mutation.ResetUncrackedCount()
	_u.mutation.SetUncrackedCount(v)
	return _u
}

// SetNillableUncrackedCount sets the "uncracked_count" field if the given value is not nil.
func (_u *HashListUpdateOne) SetNillableUncrackedCount(v *int) *HashListUpdateOne {
	if v != nil {
		_u.SetUncrackedCount(*v)
	}
	return _u
}

// AddUncrackedCount adds value to the "uncracked_count" field.
func (_u *HashListUpdateOne) AddUncrackedCount(v int) *HashListUpdateOne {
	_u.mutation.AddUncrackedCount(v)
	return _u
}

// AddItemIDs adds the "items" edge to the HashItem entity by IDs.
func (_u *HashListUpdateOne) AddItemIDs(ids ...int64) *HashListUpdateOne {
	_u.mutation.AddItemIDs(ids...)
	return _u
}

// AddItems adds the "items" edges to the HashItem entity.
func (_u *HashListUpdateOne) AddItems(v ...*HashItem) *HashListUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddItemIDs(ids...)
}

// AddCampaignIDs adds the "campaigns" edge to the Campaign entity by IDs.
func (_u *HashListUpdateOne) AddCampaignIDs(ids ...int64) *HashListUpdateOne {
	_u.mutation.AddCampaignIDs(ids...)
	return _u
}

// AddCampaigns adds the "campaigns" edges to the Campaign entity.
func (_u *HashListUpdateOne) AddCampaigns(v ...*Campaign) *HashListUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCampaignIDs(ids...)
}

// Mutation returns the HashListMutation object of the builder.
func (_u *HashListUpdateOne) Mutation() *HashListMutation {
	return _u.mutation
}

// ClearItems clears all "items" edges to the HashItem entity.
func (_u *HashListUpdateOne) ClearItems() *HashListUpdateOne {
	_u.mutation.ClearItems()
	return _u
}

// RemoveItemIDs removes the "items" edge to HashItem entities by IDs.
func (_u *HashListUpdateOne) RemoveItemIDs(ids ...int64) *HashListUpdateOne {
	_u.mutation.RemoveItemIDs(ids...)
	return _u
}

// RemoveItems removes "items" edges to HashItem entities.
func (_u *HashListUpdateOne) RemoveItems(v ...*HashItem) *HashListUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveItemIDs(ids...)
}

// ClearCampaigns clears all "campaigns" edges to the Campaign entity.
func (_u *HashListUpdateOne) ClearCampaigns() *HashListUpdateOne {
	_u.mutation.ClearCampaigns()
	return _u
}

// RemoveCampaignIDs removes the "campaigns" edge to Campaign entities by IDs.
func (_u *HashListUpdateOne) RemoveCampaignIDs(ids ...int64) *HashListUpdateOne {
	_u.mutation.RemoveCampaignIDs(ids...)
	return _u
}

// RemoveCampaigns removes "campaigns" edges to Campaign entities.
func (_u *HashListUpdateOne) RemoveCampaigns(v ...*Campaign) *HashListUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCampaignIDs(ids...)
}

// Where appends a list predicates to the HashListUpdate builder.
func (_u *HashListUpdateOne) Where(ps ...predicate.HashList) *HashListUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *HashListUpdateOne) Select(field string, fields ...string) *HashListUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated HashList entity.
func (_u *HashListUpdateOne) Save(ctx context.Context) (*HashList, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *HashListUpdateOne) SaveX(ctx context.Context) *HashList {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *HashListUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *HashListUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *HashListUpdateOne) check() error {
	if v, ok := _u.mutation.Name(); ok {
		if err := hashlist.NameValidator(v); err != nil {
			return &ValidationError{Name: "name", err: fmt.Errorf(`ent: validator failed for field "HashList.name": %w`, err)}
		}
	}
	if v, ok := _u.mutation.UncrackedCount(); ok {
		if err := hashlist.UncrackedCountValidator(v); err != nil {
			return &ValidationError{Name: "uncracked_count", err: fmt.Errorf(`ent: validator failed for field "HashList.uncracked_count": %w`, err)}
		}
	}
	if _u.mutation.ProjectCleared() && len(_u.mutation.ProjectIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "HashList.project"`)
	}
	return nil
}

func (_u *HashListUpdateOne) sqlSave(ctx context.Context) (_node *HashList, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(hashlist.Table, hashlist.Columns, sqlgraph.NewFieldSpec(hashlist.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "HashList.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, hashlist.FieldID)
		for _, f := range fields {
			if !hashlist.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != hashlist.FieldID {
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
	if value, ok := _u.mutation.Name(); ok {
		_spec.SetField(hashlist.FieldName, field.TypeString, value)
	}
	if value, ok := _u.mutation.HashMode(); ok {
		_spec.SetField(hashlist.FieldHashMode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedHashMode(); ok {
		_spec.AddField(hashlist.FieldHashMode, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UncrackedCount(); ok {
		_spec.SetField(hashlist.FieldUncrackedCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedUncrackedCount(); ok {
		_spec.AddField(hashlist.FieldUncrackedCount, field.TypeInt, value)
	}
	if _u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedItemsIDs(); len(nodes) > 0 && !_u.mutation.ItemsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ItemsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCampaignsIDs(); len(nodes) > 0 && !_u.mutation.CampaignsCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CampaignsIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &HashList{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{hashlist.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
