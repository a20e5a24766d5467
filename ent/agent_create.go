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
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// AgentCreate is the builder for creating a Agent entity.
type AgentCreate struct {
	config
	mutation *AgentMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetHostName sets the "host_name" field.
func (_c *AgentCreate) SetHostName(v string) *AgentCreate {
	_c.mutation.SetHostName(v)
	return _c
}

// SetClientSignature sets the "client_signature" field.
func (_c *AgentCreate) SetClientSignature(v string) *AgentCreate {
	_c.mutation.SetClientSignature(v)
	return _c
}

// SetOperatingSystem sets the "operating_system" field.
func (_c *AgentCreate) SetOperatingSystem(v string) *AgentCreate {
	_c.mutation.SetOperatingSystem(v)
	return _c
}

// SetNillableOperatingSystem sets the "operating_system" field if the given value is not nil.
func (_c *AgentCreate) SetNillableOperatingSystem(v *string) *AgentCreate {
	if v != nil {
		_c.SetOperatingSystem(*v)
	}
	return _c
}

// SetDevices sets the "devices" field.
func (_c *AgentCreate) SetDevices(v []map[string]interface{}) *AgentCreate {
	_c.mutation.SetDevices(v)
	return _c
}

// SetToken sets the "token" field.
func (_c *AgentCreate) SetToken(v string) *AgentCreate {
	_c.mutation.SetToken(v)
	return _c
}

// SetState sets the "state" field.
func (_c *AgentCreate) SetState(v agent.State) *AgentCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AgentCreate) SetNillableState(v *agent.State) *AgentCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetLastSeenAt sets the "last_seen_at" field.
func (_c *AgentCreate) SetLastSeenAt(v time.Time) *AgentCreate {
	_c.mutation.SetLastSeenAt(v)
	return _c
}

// SetNillableLastSeenAt sets the "last_seen_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastSeenAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetLastSeenAt(*v)
	}
	return _c
}

// SetLastIpaddress sets the "last_ipaddress" field.
func (_c *AgentCreate) SetLastIpaddress(v string) *AgentCreate {
	_c.mutation.SetLastIpaddress(v)
	return _c
}

// SetNillableLastIpaddress sets the "last_ipaddress" field if the given value is not nil.
func (_c *AgentCreate) SetNillableLastIpaddress(v *string) *AgentCreate {
	if v != nil {
		_c.SetLastIpaddress(*v)
	}
	return _c
}

// SetAdvancedConfig sets the "advanced_config" field.
func (_c *AgentCreate) SetAdvancedConfig(v map[string]interface{}) *AgentCreate {
	_c.mutation.SetAdvancedConfig(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AgentCreate) SetCreatedAt(v time.Time) *AgentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AgentCreate) SetNillableCreatedAt(v *time.Time) *AgentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// AddProjectIDs adds the "projects" edge to the Project entity by IDs.
func (_c *AgentCreate) AddProjectIDs(ids ...int64) *AgentCreate {
	_c.mutation.AddProjectIDs(ids...)
	return _c
}

// AddProjects adds the "projects" edges to the Project entity.
func (_c *AgentCreate) AddProjects(v ...*Project) *AgentCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddProjectIDs(ids...)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *AgentCreate) AddTaskIDs(ids ...int64) *AgentCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *AgentCreate) AddTasks(v ...*Task) *AgentCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// AddBenchmarkIDs adds the "benchmarks" edge to the Benchmark entity by IDs.
func (_c *AgentCreate) AddBenchmarkIDs(ids ...int64) *AgentCreate {
	_c.mutation.AddBenchmarkIDs(ids...)
	return _c
}

// AddBenchmarks adds the "benchmarks" edges to the Benchmark entity.
func (_c *AgentCreate) AddBenchmarks(v ...*Benchmark) *AgentCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddBenchmarkIDs(ids...)
}

// AddAgentErrorIDs adds the "agent_errors" edge to the AgentError entity by IDs.
func (_c *AgentCreate) AddAgentErrorIDs(ids ...int64) *AgentCreate {
	_c.mutation.AddAgentErrorIDs(ids...)
	return _c
}

// AddAgentErrors adds the "agent_errors" edges to the AgentError entity.
func (_c *AgentCreate) AddAgentErrors(v ...*AgentError) *AgentCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddAgentErrorIDs(ids...)
}

// Mutation returns the AgentMutation object of the builder.
func (_c *AgentCreate) Mutation() *AgentMutation {
	return _c.mutation
}

// Save creates the Agent in the database.
func (_c *AgentCreate) Save(ctx context.Context) (*Agent, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AgentCreate) SaveX(ctx context.Context) *Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AgentCreate) defaults() {
	if _, ok := _c.mutation.OperatingSystem(); !ok {
		v := agent.DefaultOperatingSystem
		_c.mutation.SetOperatingSystem(v)
	}
	if _, ok := _c.mutation.State(); !ok {
		v := agent.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.LastIpaddress(); !ok {
		v := agent.DefaultLastIpaddress
		_c.mutation.SetLastIpaddress(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := agent.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AgentCreate) check() error {
	if _, ok := _c.mutation.HostName(); !ok {
		return &ValidationError{Name: "host_name", err: errors.New(`ent: missing required field "Agent.host_name"`)}
	}
	if v, ok := _c.mutation.HostName(); ok {
		if err := agent.HostNameValidator(v); err != nil {
			return &ValidationError{Name: "host_name", err: fmt.Errorf(`ent: validator failed for field "Agent.host_name": %w`, err)}
		}
	}
	if _, ok := _c.mutation.ClientSignature(); !ok {
		return &ValidationError{Name: "client_signature", err: errors.New(`ent: missing required field "Agent.client_signature"`)}
	}
	if v, ok := _c.mutation.ClientSignature(); ok {
		if err := agent.ClientSignatureValidator(v); err != nil {
			return &ValidationError{Name: "client_signature", err: fmt.Errorf(`ent: validator failed for field "Agent.client_signature": %w`, err)}
		}
	}
	if _, ok := _c.mutation.OperatingSystem(); !ok {
		return &ValidationError{Name: "operating_system", err: errors.New(`ent: missing required field "Agent.operating_system"`)}
	}
	if _, ok := _c.mutation.Token(); !ok {
		return &ValidationError{Name: "token", err: errors.New(`ent: missing required field "Agent.token"`)}
	}
	if v, ok := _c.mutation.Token(); ok {
		if err := agent.TokenValidator(v); err != nil {
			return &ValidationError{Name: "token", err: fmt.Errorf(`ent: validator failed for field "Agent.token": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Agent.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := agent.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Agent.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Agent.created_at"`)}
	}
	return nil
}

func (_c *AgentCreate) sqlSave(ctx context.Context) (*Agent, error) {
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

func (_c *AgentCreate) createSpec() (*Agent, *sqlgraph.CreateSpec) {
	var (
		_node = &Agent{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(agent.Table, sqlgraph.NewFieldSpec(agent.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.HostName(); ok {
		_spec.SetField(agent.FieldHostName, field.TypeString, value)
		_node.HostName = value
	}
	if value, ok := _c.mutation.ClientSignature(); ok {
		_spec.SetField(agent.FieldClientSignature, field.TypeString, value)
		_node.ClientSignature = value
	}
	if value, ok := _c.mutation.OperatingSystem(); ok {
		_spec.SetField(agent.FieldOperatingSystem, field.TypeString, value)
		_node.OperatingSystem = value
	}
	if value, ok := _c.mutation.Devices(); ok {
		_spec.SetField(agent.FieldDevices, field.TypeJSON, value)
		_node.Devices = value
	}
	if value, ok := _c.mutation.Token(); ok {
		_spec.SetField(agent.FieldToken, field.TypeString, value)
		_node.Token = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(agent.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.LastSeenAt(); ok {
		_spec.SetField(agent.FieldLastSeenAt, field.TypeTime, value)
		_node.LastSeenAt = &value
	}
	if value, ok := _c.mutation.LastIpaddress(); ok {
		_spec.SetField(agent.FieldLastIpaddress, field.TypeString, value)
		_node.LastIpaddress = value
	}
	if value, ok := _c.mutation.AdvancedConfig(); ok {
		_spec.SetField(agent.FieldAdvancedConfig, field.TypeJSON, value)
		_node.AdvancedConfig = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(agent.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.ProjectsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2M,
			Inverse: true,
			Table:   agent.ProjectsTable,
			Columns: agent.ProjectsPrimaryKey,
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
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.TasksTable,
			Columns: []string{agent.TasksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(task.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.BenchmarksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.BenchmarksTable,
			Columns: []string{agent.BenchmarksColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(benchmark.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.AgentErrorsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   agent.AgentErrorsTable,
			Columns: []string{agent.AgentErrorsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(agenterror.FieldID, field.TypeInt64),
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
//	client.Agent.Create().
//		SetHostName(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetHostName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreate) OnConflict(opts ...sql.ConflictOption) *AgentUpsertOne {
	_c.conflict = opts
	return &AgentUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreate) OnConflictColumns(columns ...string) *AgentUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertOne{
		create: _c,
	}
}

type (
	// AgentUpsertOne is the builder for "upsert"-ing
	//  one Agent node.
	AgentUpsertOne struct {
		create *AgentCreate
	}

	// AgentUpsert is the "OnConflict" setter.
	AgentUpsert struct {
		*sql.UpdateSet
	}
)

// SetHostName sets the "host_name" field.
func (u *AgentUpsert) SetHostName(v string) *AgentUpsert {
	u.Set(agent.FieldHostName, v)
	return u
}

// UpdateHostName sets the "host_name" field to the value that was provided on create.
func (u *AgentUpsert) UpdateHostName() *AgentUpsert {
	u.SetExcluded(agent.FieldHostName)
	return u
}

// SetClientSignature sets the "client_signature" field.
func (u *AgentUpsert) SetClientSignature(v string) *AgentUpsert {
	u.Set(agent.FieldClientSignature, v)
	return u
}

// UpdateClientSignature sets the "client_signature" field to the value that was provided on create.
func (u *AgentUpsert) UpdateClientSignature() *AgentUpsert {
	u.SetExcluded(agent.FieldClientSignature)
	return u
}

// SetOperatingSystem sets the "operating_system" field.
func (u *AgentUpsert) SetOperatingSystem(v string) *AgentUpsert {
	u.Set(agent.FieldOperatingSystem, v)
	return u
}

// UpdateOperatingSystem sets the "operating_system" field to the value that was provided on create.
func (u *AgentUpsert) UpdateOperatingSystem() *AgentUpsert {
	u.SetExcluded(agent.FieldOperatingSystem)
	return u
}

// SetDevices sets the "devices" field.
func (u *AgentUpsert) SetDevices(v []map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldDevices, v)
	return u
}

// UpdateDevices sets the "devices" field to the value that was provided on create.
func (u *AgentUpsert) UpdateDevices() *AgentUpsert {
	u.SetExcluded(agent.FieldDevices)
	return u
}

// ClearDevices clears the value of the "devices" field.
func (u *AgentUpsert) ClearDevices() *AgentUpsert {
	u.SetNull(agent.FieldDevices)
	return u
}

// SetToken sets the "token" field.
func (u *AgentUpsert) SetToken(v string) *AgentUpsert {
	u.Set(agent.FieldToken, v)
	return u
}

// UpdateToken sets the "token" field to the value that was provided on create.
func (u *AgentUpsert) UpdateToken() *AgentUpsert {
	u.SetExcluded(agent.FieldToken)
	return u
}

// SetState sets the "state" field.
func (u *AgentUpsert) SetState(v agent.State) *AgentUpsert {
	u.Set(agent.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AgentUpsert) UpdateState() *AgentUpsert {
	u.SetExcluded(agent.FieldState)
	return u
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsert) SetLastSeenAt(v time.Time) *AgentUpsert {
	u.Set(agent.FieldLastSeenAt, v)
	return u
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastSeenAt() *AgentUpsert {
	u.SetExcluded(agent.FieldLastSeenAt)
	return u
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *AgentUpsert) ClearLastSeenAt() *AgentUpsert {
	u.SetNull(agent.FieldLastSeenAt)
	return u
}

// SetLastIpaddress sets the "last_ipaddress" field.
func (u *AgentUpsert) SetLastIpaddress(v string) *AgentUpsert {
	u.Set(agent.FieldLastIpaddress, v)
	return u
}

// UpdateLastIpaddress sets the "last_ipaddress" field to the value that was provided on create.
func (u *AgentUpsert) UpdateLastIpaddress() *AgentUpsert {
	u.SetExcluded(agent.FieldLastIpaddress)
	return u
}

// ClearLastIpaddress clears the value of the "last_ipaddress" field.
func (u *AgentUpsert) ClearLastIpaddress() *AgentUpsert {
	u.SetNull(agent.FieldLastIpaddress)
	return u
}

// SetAdvancedConfig sets the "advanced_config" field.
func (u *AgentUpsert) SetAdvancedConfig(v map[string]interface{}) *AgentUpsert {
	u.Set(agent.FieldAdvancedConfig, v)
	return u
}

// UpdateAdvancedConfig sets the "advanced_config" field to the value that was provided on create.
func (u *AgentUpsert) UpdateAdvancedConfig() *AgentUpsert {
	u.SetExcluded(agent.FieldAdvancedConfig)
	return u
}

// ClearAdvancedConfig clears the value of the "advanced_config" field.
func (u *AgentUpsert) ClearAdvancedConfig() *AgentUpsert {
	u.SetNull(agent.FieldAdvancedConfig)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentUpsertOne) UpdateNewValues() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(agent.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AgentUpsertOne) Ignore() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertOne) DoNothing() *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreate.OnConflict
// documentation for more info.
func (u *AgentUpsertOne) Update(set func(*AgentUpsert)) *AgentUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetHostName sets the "host_name" field.
func (u *AgentUpsertOne) SetHostName(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetHostName(v)
	})
}

// UpdateHostName sets the "host_name" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateHostName() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHostName()
	})
}

// SetClientSignature sets the "client_signature" field.
func (u *AgentUpsertOne) SetClientSignature(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetClientSignature(v)
	})
}

// UpdateClientSignature sets the "client_signature" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateClientSignature() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateClientSignature()
	})
}

// SetOperatingSystem sets the "operating_system" field.
func (u *AgentUpsertOne) SetOperatingSystem(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetOperatingSystem(v)
	})
}

// UpdateOperatingSystem sets the "operating_system" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateOperatingSystem() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateOperatingSystem()
	})
}

// SetDevices sets the "devices" field.
func (u *AgentUpsertOne) SetDevices(v []map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetDevices(v)
	})
}

// UpdateDevices sets the "devices" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateDevices() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDevices()
	})
}

// ClearDevices clears the value of the "devices" field.
func (u *AgentUpsertOne) ClearDevices() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDevices()
	})
}

// SetToken sets the "token" field.
func (u *AgentUpsertOne) SetToken(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetToken(v)
	})
}

// UpdateToken sets the "token" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateToken() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateToken()
	})
}

// SetState sets the "state" field.
func (u *AgentUpsertOne) SetState(v agent.State) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateState() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateState()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsertOne) SetLastSeenAt(v time.Time) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastSeenAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastSeenAt()
	})
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *AgentUpsertOne) ClearLastSeenAt() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastSeenAt()
	})
}

// SetLastIpaddress sets the "last_ipaddress" field.
func (u *AgentUpsertOne) SetLastIpaddress(v string) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastIpaddress(v)
	})
}

// UpdateLastIpaddress sets the "last_ipaddress" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateLastIpaddress() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastIpaddress()
	})
}

// ClearLastIpaddress clears the value of the "last_ipaddress" field.
func (u *AgentUpsertOne) ClearLastIpaddress() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastIpaddress()
	})
}

// SetAdvancedConfig sets the "advanced_config" field.
func (u *AgentUpsertOne) SetAdvancedConfig(v map[string]interface{}) *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.SetAdvancedConfig(v)
	})
}

// UpdateAdvancedConfig sets the "advanced_config" field to the value that was provided on create.
func (u *AgentUpsertOne) UpdateAdvancedConfig() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAdvancedConfig()
	})
}

// ClearAdvancedConfig clears the value of the "advanced_config" field.
func (u *AgentUpsertOne) ClearAdvancedConfig() *AgentUpsertOne {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAdvancedConfig()
	})
}

// Exec executes the query.
func (u *AgentUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AgentUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AgentUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AgentCreateBulk is the builder for creating many Agent entities in bulk.
type AgentCreateBulk struct {
	config
	err      error
	builders []*AgentCreate
	conflict []sql.ConflictOption
}

// Save creates the Agent entities in the database.
func (_c *AgentCreateBulk) Save(ctx context.Context) ([]*Agent, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Agent, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AgentMutation)
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
func (_c *AgentCreateBulk) SaveX(ctx context.Context) []*Agent {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AgentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AgentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Agent.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AgentUpsert) {
//			SetHostName(v+v).
//		}).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflict(opts ...sql.ConflictOption) *AgentUpsertBulk {
	_c.conflict = opts
	return &AgentUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AgentCreateBulk) OnConflictColumns(columns ...string) *AgentUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AgentUpsertBulk{
		create: _c,
	}
}

// AgentUpsertBulk is the builder for "upsert"-ing
// a bulk of Agent nodes.
type AgentUpsertBulk struct {
	create *AgentCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AgentUpsertBulk) UpdateNewValues() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(agent.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Agent.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AgentUpsertBulk) Ignore() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AgentUpsertBulk) DoNothing() *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AgentCreateBulk.OnConflict
// documentation for more info.
func (u *AgentUpsertBulk) Update(set func(*AgentUpsert)) *AgentUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AgentUpsert{UpdateSet: update})
	}))
	return u
}

// SetHostName sets the "host_name" field.
func (u *AgentUpsertBulk) SetHostName(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetHostName(v)
	})
}

// UpdateHostName sets the "host_name" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateHostName() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateHostName()
	})
}

// SetClientSignature sets the "client_signature" field.
func (u *AgentUpsertBulk) SetClientSignature(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetClientSignature(v)
	})
}

// UpdateClientSignature sets the "client_signature" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateClientSignature() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateClientSignature()
	})
}

// SetOperatingSystem sets the "operating_system" field.
func (u *AgentUpsertBulk) SetOperatingSystem(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetOperatingSystem(v)
	})
}

// UpdateOperatingSystem sets the "operating_system" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateOperatingSystem() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateOperatingSystem()
	})
}

// SetDevices sets the "devices" field.
func (u *AgentUpsertBulk) SetDevices(v []map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetDevices(v)
	})
}

// UpdateDevices sets the "devices" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateDevices() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateDevices()
	})
}

// ClearDevices clears the value of the "devices" field.
func (u *AgentUpsertBulk) ClearDevices() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearDevices()
	})
}

// SetToken sets the "token" field.
func (u *AgentUpsertBulk) SetToken(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetToken(v)
	})
}

// UpdateToken sets the "token" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateToken() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateToken()
	})
}

// SetState sets the "state" field.
func (u *AgentUpsertBulk) SetState(v agent.State) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateState() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateState()
	})
}

// SetLastSeenAt sets the "last_seen_at" field.
func (u *AgentUpsertBulk) SetLastSeenAt(v time.Time) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastSeenAt(v)
	})
}

// UpdateLastSeenAt sets the "last_seen_at" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastSeenAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastSeenAt()
	})
}

// ClearLastSeenAt clears the value of the "last_seen_at" field.
func (u *AgentUpsertBulk) ClearLastSeenAt() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastSeenAt()
	})
}

// SetLastIpaddress sets the "last_ipaddress" field.
func (u *AgentUpsertBulk) SetLastIpaddress(v string) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetLastIpaddress(v)
	})
}

// UpdateLastIpaddress sets the "last_ipaddress" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateLastIpaddress() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateLastIpaddress()
	})
}

// ClearLastIpaddress clears the value of the "last_ipaddress" field.
func (u *AgentUpsertBulk) ClearLastIpaddress() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearLastIpaddress()
	})
}

// SetAdvancedConfig sets the "advanced_config" field.
func (u *AgentUpsertBulk) SetAdvancedConfig(v map[string]interface{}) *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.SetAdvancedConfig(v)
	})
}

// UpdateAdvancedConfig sets the "advanced_config" field to the value that was provided on create.
func (u *AgentUpsertBulk) UpdateAdvancedConfig() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.UpdateAdvancedConfig()
	})
}

// ClearAdvancedConfig clears the value of the "advanced_config" field.
func (u *AgentUpsertBulk) ClearAdvancedConfig() *AgentUpsertBulk {
	return u.Update(func(s *AgentUpsert) {
		s.ClearAdvancedConfig()
	})
}

// Exec executes the query.
func (u *AgentUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AgentCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AgentCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AgentUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
