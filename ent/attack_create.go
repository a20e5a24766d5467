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
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// AttackCreate is the builder for creating a Attack entity.
type AttackCreate struct {
	config
	mutation *AttackMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetPosition sets the "position" field.
func (_c *AttackCreate) SetPosition(v int) *AttackCreate {
	_c.mutation.SetPosition(v)
	return _c
}

// SetAttackMode sets the "attack_mode" field.
func (_c *AttackCreate) SetAttackMode(v attack.AttackMode) *AttackCreate {
	_c.mutation.SetAttackMode(v)
	return _c
}

// SetState sets the "state" field.
func (_c *AttackCreate) SetState(v attack.State) *AttackCreate {
	_c.mutation.SetState(v)
	return _c
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_c *AttackCreate) SetNillableState(v *attack.State) *AttackCreate {
	if v != nil {
		_c.SetState(*v)
	}
	return _c
}

// SetMask sets the "mask" field.
func (_c *AttackCreate) SetMask(v string) *AttackCreate {
	_c.mutation.SetMask(v)
	return _c
}

// SetNillableMask sets the "mask" field if the given value is not nil.
func (_c *AttackCreate) SetNillableMask(v *string) *AttackCreate {
	if v != nil {
		_c.SetMask(*v)
	}
	return _c
}

// SetCustomCharset1 sets the "custom_charset_1" field.
func (_c *AttackCreate) SetCustomCharset1(v string) *AttackCreate {
	_c.mutation.SetCustomCharset1(v)
	return _c
}

// SetNillableCustomCharset1 sets the "custom_charset_1" field if the given value is not nil.
func (_c *AttackCreate) SetNillableCustomCharset1(v *string) *AttackCreate {
	if v != nil {
		_c.SetCustomCharset1(*v)
	}
	return _c
}

// SetCustomCharset2 sets the "custom_charset_2" field.
func (_c *AttackCreate) SetCustomCharset2(v string) *AttackCreate {
	_c.mutation.SetCustomCharset2(v)
	return _c
}

// SetNillableCustomCharset2 sets the "custom_charset_2" field if the given value is not nil.
func (_c *AttackCreate) SetNillableCustomCharset2(v *string) *AttackCreate {
	if v != nil {
		_c.SetCustomCharset2(*v)
	}
	return _c
}

// SetCustomCharset3 sets the "custom_charset_3" field.
func (_c *AttackCreate) SetCustomCharset3(v string) *AttackCreate {
	_c.mutation.SetCustomCharset3(v)
	return _c
}

// SetNillableCustomCharset3 sets the "custom_charset_3" field if the given value is not nil.
func (_c *AttackCreate) SetNillableCustomCharset3(v *string) *AttackCreate {
	if v != nil {
		_c.SetCustomCharset3(*v)
	}
	return _c
}

// SetCustomCharset4 sets the "custom_charset_4" field.
func (_c *AttackCreate) SetCustomCharset4(v string) *AttackCreate {
	_c.mutation.SetCustomCharset4(v)
	return _c
}

// SetNillableCustomCharset4 sets the "custom_charset_4" field if the given value is not nil.
func (_c *AttackCreate) SetNillableCustomCharset4(v *string) *AttackCreate {
	if v != nil {
		_c.SetCustomCharset4(*v)
	}
	return _c
}

// SetIncrementMode sets the "increment_mode" field.
func (_c *AttackCreate) SetIncrementMode(v bool) *AttackCreate {
	_c.mutation.SetIncrementMode(v)
	return _c
}

// SetNillableIncrementMode sets the "increment_mode" field if the given value is not nil.
func (_c *AttackCreate) SetNillableIncrementMode(v *bool) *AttackCreate {
	if v != nil {
		_c.SetIncrementMode(*v)
	}
	return _c
}

// SetIncrementMinimum sets the "increment_minimum" field.
func (_c *AttackCreate) SetIncrementMinimum(v int) *AttackCreate {
	_c.mutation.SetIncrementMinimum(v)
	return _c
}

// SetNillableIncrementMinimum sets the "increment_minimum" field if the given value is not nil.
func (_c *AttackCreate) SetNillableIncrementMinimum(v *int) *AttackCreate {
	if v != nil {
		_c.SetIncrementMinimum(*v)
	}
	return _c
}

// SetIncrementMaximum sets the "increment_maximum" field.
func (_c *AttackCreate) SetIncrementMaximum(v int) *AttackCreate {
	_c.mutation.SetIncrementMaximum(v)
	return _c
}

// SetNillableIncrementMaximum sets the "increment_maximum" field if the given value is not nil.
func (_c *AttackCreate) SetNillableIncrementMaximum(v *int) *AttackCreate {
	if v != nil {
		_c.SetIncrementMaximum(*v)
	}
	return _c
}

// SetWorkloadProfile sets the "workload_profile" field.
func (_c *AttackCreate) SetWorkloadProfile(v int) *AttackCreate {
	_c.mutation.SetWorkloadProfile(v)
	return _c
}

// SetNillableWorkloadProfile sets the "workload_profile" field if the given value is not nil.
func (_c *AttackCreate) SetNillableWorkloadProfile(v *int) *AttackCreate {
	if v != nil {
		_c.SetWorkloadProfile(*v)
	}
	return _c
}

// SetOptimized sets the "optimized" field.
func (_c *AttackCreate) SetOptimized(v bool) *AttackCreate {
	_c.mutation.SetOptimized(v)
	return _c
}

// SetNillableOptimized sets the "optimized" field if the given value is not nil.
func (_c *AttackCreate) SetNillableOptimized(v *bool) *AttackCreate {
	if v != nil {
		_c.SetOptimized(*v)
	}
	return _c
}

// SetDisableMarkov sets the "disable_markov" field.
func (_c *AttackCreate) SetDisableMarkov(v bool) *AttackCreate {
	_c.mutation.SetDisableMarkov(v)
	return _c
}

// SetNillableDisableMarkov sets the "disable_markov" field if the given value is not nil.
func (_c *AttackCreate) SetNillableDisableMarkov(v *bool) *AttackCreate {
	if v != nil {
		_c.SetDisableMarkov(*v)
	}
	return _c
}

// SetClassicMarkov sets the "classic_markov" field.
func (_c *AttackCreate) SetClassicMarkov(v bool) *AttackCreate {
	_c.mutation.SetClassicMarkov(v)
	return _c
}

// SetNillableClassicMarkov sets the "classic_markov" field if the given value is not nil.
func (_c *AttackCreate) SetNillableClassicMarkov(v *bool) *AttackCreate {
	if v != nil {
		_c.SetClassicMarkov(*v)
	}
	return _c
}

// SetMarkovThreshold sets the "markov_threshold" field.
func (_c *AttackCreate) SetMarkovThreshold(v int) *AttackCreate {
	_c.mutation.SetMarkovThreshold(v)
	return _c
}

// SetNillableMarkovThreshold sets the "markov_threshold" field if the given value is not nil.
func (_c *AttackCreate) SetNillableMarkovThreshold(v *int) *AttackCreate {
	if v != nil {
		_c.SetMarkovThreshold(*v)
	}
	return _c
}

// SetSlowCandidateGenerators sets the "slow_candidate_generators" field.
func (_c *AttackCreate) SetSlowCandidateGenerators(v bool) *AttackCreate {
	_c.mutation.SetSlowCandidateGenerators(v)
	return _c
}

// SetNillableSlowCandidateGenerators sets the "slow_candidate_generators" field if the given value is not nil.
func (_c *AttackCreate) SetNillableSlowCandidateGenerators(v *bool) *AttackCreate {
	if v != nil {
		_c.SetSlowCandidateGenerators(*v)
	}
	return _c
}

// SetLeftRule sets the "left_rule" field.
func (_c *AttackCreate) SetLeftRule(v string) *AttackCreate {
	_c.mutation.SetLeftRule(v)
	return _c
}

// SetNillableLeftRule sets the "left_rule" field if the given value is not nil.
func (_c *AttackCreate) SetNillableLeftRule(v *string) *AttackCreate {
	if v != nil {
		_c.SetLeftRule(*v)
	}
	return _c
}

// SetRightRule sets the "right_rule" field.
func (_c *AttackCreate) SetRightRule(v string) *AttackCreate {
	_c.mutation.SetRightRule(v)
	return _c
}

// SetNillableRightRule sets the "right_rule" field if the given value is not nil.
func (_c *AttackCreate) SetNillableRightRule(v *string) *AttackCreate {
	if v != nil {
		_c.SetRightRule(*v)
	}
	return _c
}

// SetTotalKeyspace sets the "total_keyspace" field.
func (_c *AttackCreate) SetTotalKeyspace(v int64) *AttackCreate {
	_c.mutation.SetTotalKeyspace(v)
	return _c
}

// SetNillableTotalKeyspace sets the "total_keyspace" field if the given value is not nil.
func (_c *AttackCreate) SetNillableTotalKeyspace(v *int64) *AttackCreate {
	if v != nil {
		_c.SetTotalKeyspace(*v)
	}
	return _c
}

// SetStartTime sets the "start_time" field.
func (_c *AttackCreate) SetStartTime(v time.Time) *AttackCreate {
	_c.mutation.SetStartTime(v)
	return _c
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_c *AttackCreate) SetNillableStartTime(v *time.Time) *AttackCreate {
	if v != nil {
		_c.SetStartTime(*v)
	}
	return _c
}

// SetEndTime sets the "end_time" field.
func (_c *AttackCreate) SetEndTime(v time.Time) *AttackCreate {
	_c.mutation.SetEndTime(v)
	return _c
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_c *AttackCreate) SetNillableEndTime(v *time.Time) *AttackCreate {
	if v != nil {
		_c.SetEndTime(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AttackCreate) SetCreatedAt(v time.Time) *AttackCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AttackCreate) SetNillableCreatedAt(v *time.Time) *AttackCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *AttackCreate) SetUpdatedAt(v time.Time) *AttackCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *AttackCreate) SetNillableUpdatedAt(v *time.Time) *AttackCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetCampaignID sets the "campaign" edge to the Campaign entity by ID.
func (_c *AttackCreate) SetCampaignID(id int64) *AttackCreate {
	_c.mutation.SetCampaignID(id)
	return _c
}

// SetCampaign sets the "campaign" edge to the Campaign entity.
func (_c *AttackCreate) SetCampaign(v *Campaign) *AttackCreate {
	return _c.SetCampaignID(v.ID)
}

// SetWordListID sets the "word_list" edge to the Resource entity by ID.
func (_c *AttackCreate) SetWordListID(id int64) *AttackCreate {
	_c.mutation.SetWordListID(id)
	return _c
}

// SetNillableWordListID sets the "word_list" edge to the Resource entity by ID if the given value is not nil.
func (_c *AttackCreate) SetNillableWordListID(id *int64) *AttackCreate {
	if id != nil {
		_c = _c.SetWordListID(*id)
	}
	return _c
}

// SetWordList sets the "word_list" edge to the Resource entity.
func (_c *AttackCreate) SetWordList(v *Resource) *AttackCreate {
	return _c.SetWordListID(v.ID)
}

// SetRuleListID sets the "rule_list" edge to the Resource entity by ID.
func (_c *AttackCreate) SetRuleListID(id int64) *AttackCreate {
	_c.mutation.SetRuleListID(id)
	return _c
}

// SetNillableRuleListID sets the "rule_list" edge to the Resource entity by ID if the given value is not nil.
func (_c *AttackCreate) SetNillableRuleListID(id *int64) *AttackCreate {
	if id != nil {
		_c = _c.SetRuleListID(*id)
	}
	return _c
}

// SetRuleList sets the "rule_list" edge to the Resource entity.
func (_c *AttackCreate) SetRuleList(v *Resource) *AttackCreate {
	return _c.SetRuleListID(v.ID)
}

// SetMaskListID sets the "mask_list" edge to the Resource entity by ID.
func (_c *AttackCreate) SetMaskListID(id int64) *AttackCreate {
	_c.mutation.SetMaskListID(id)
	return _c
}

// SetNillableMaskListID sets the "mask_list" edge to the Resource entity by ID if the given value is not nil.
func (_c *AttackCreate) SetNillableMaskListID(id *int64) *AttackCreate {
	if id != nil {
		_c = _c.SetMaskListID(*id)
	}
	return _c
}

// SetMaskList sets the "mask_list" edge to the Resource entity.
func (_c *AttackCreate) SetMaskList(v *Resource) *AttackCreate {
	return _c.SetMaskListID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_c *AttackCreate) AddTaskIDs(ids ...int64) *AttackCreate {
	_c.mutation.AddTaskIDs(ids...)
	return _c
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_c *AttackCreate) AddTasks(v ...*Task) *AttackCreate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddTaskIDs(ids...)
}

// Mutation returns the AttackMutation object of the builder.
func (_c *AttackCreate) Mutation() *AttackMutation {
	return _c.mutation
}

// Save creates the Attack in the database.
func (_c *AttackCreate) Save(ctx context.Context) (*Attack, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AttackCreate) SaveX(ctx context.Context) *Attack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttackCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttackCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AttackCreate) defaults() {
	if _, ok := _c.mutation.State(); !ok {
		v := attack.DefaultState
		_c.mutation.SetState(v)
	}
	if _, ok := _c.mutation.Mask(); !ok {
		v := attack.DefaultMask
		_c.mutation.SetMask(v)
	}
	if _, ok := _c.mutation.CustomCharset1(); !ok {
		v := attack.DefaultCustomCharset1
		_c.mutation.SetCustomCharset1(v)
	}
	if _, ok := _c.mutation.CustomCharset2(); !ok {
		v := attack.DefaultCustomCharset2
		_c.mutation.SetCustomCharset2(v)
	}
	if _, ok := _c.mutation.CustomCharset3(); !ok {
		v := attack.DefaultCustomCharset3
		_c.mutation.SetCustomCharset3(v)
	}
	if _, ok := _c.mutation.CustomCharset4(); !ok {
		v := attack.DefaultCustomCharset4
		_c.mutation.SetCustomCharset4(v)
	}
	if _, ok := _c.mutation.IncrementMode(); !ok {
		v := attack.DefaultIncrementMode
		_c.mutation.SetIncrementMode(v)
	}
	if _, ok := _c.mutation.IncrementMinimum(); !ok {
		v := attack.DefaultIncrementMinimum
		_c.mutation.SetIncrementMinimum(v)
	}
	if _, ok := _c.mutation.IncrementMaximum(); !ok {
		v := attack.DefaultIncrementMaximum
		_c.mutation.SetIncrementMaximum(v)
	}
	if _, ok := _c.mutation.WorkloadProfile(); !ok {
		v := attack.DefaultWorkloadProfile
		_c.mutation.SetWorkloadProfile(v)
	}
	if _, ok := _c.mutation.Optimized(); !ok {
		v := attack.DefaultOptimized
		_c.mutation.SetOptimized(v)
	}
	if _, ok := _c.mutation.DisableMarkov(); !ok {
		v := attack.DefaultDisableMarkov
		_c.mutation.SetDisableMarkov(v)
	}
	if _, ok := _c.mutation.ClassicMarkov(); !ok {
		v := attack.DefaultClassicMarkov
		_c.mutation.SetClassicMarkov(v)
	}
	if _, ok := _c.mutation.MarkovThreshold(); !ok {
		v := attack.DefaultMarkovThreshold
		_c.mutation.SetMarkovThreshold(v)
	}
	if _, ok := _c.mutation.SlowCandidateGenerators(); !ok {
		v := attack.DefaultSlowCandidateGenerators
		_c.mutation.SetSlowCandidateGenerators(v)
	}
	if _, ok := _c.mutation.LeftRule(); !ok {
		v := attack.DefaultLeftRule
		_c.mutation.SetLeftRule(v)
	}
	if _, ok := _c.mutation.RightRule(); !ok {
		v := attack.DefaultRightRule
		_c.mutation.SetRightRule(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := attack.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := attack.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AttackCreate) check() error {
	if _, ok := _c.mutation.Position(); !ok {
		return &ValidationError{Name: "position", err: errors.New(`ent: missing required field "Attack.position"`)}
	}
	if v, ok := _c.mutation.Position(); ok {
		if err := attack.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Attack.position": %w`, err)}
		}
	}
	if _, ok := _c.mutation.AttackMode(); !ok {
		return &ValidationError{Name: "attack_mode", err: errors.New(`ent: missing required field "Attack.attack_mode"`)}
	}
	if v, ok := _c.mutation.AttackMode(); ok {
		if err := attack.AttackModeValidator(v); err != nil {
			return &ValidationError{Name: "attack_mode", err: fmt.Errorf(`ent: validator failed for field "Attack.attack_mode": %w`, err)}
		}
	}
	if _, ok := _c.mutation.State(); !ok {
		return &ValidationError{Name: "state", err: errors.New(`ent: missing required field "Attack.state"`)}
	}
	if v, ok := _c.mutation.State(); ok {
		if err := attack.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Attack.state": %w`, err)}
		}
	}
	if _, ok := _c.mutation.IncrementMode(); !ok {
		return &ValidationError{Name: "increment_mode", err: errors.New(`ent: missing required field "Attack.increment_mode"`)}
	}
	if _, ok := _c.mutation.IncrementMinimum(); !ok {
		return &ValidationError{Name: "increment_minimum", err: errors.New(`ent: missing required field "Attack.increment_minimum"`)}
	}
	if _, ok := _c.mutation.IncrementMaximum(); !ok {
		return &ValidationError{Name: "increment_maximum", err: errors.New(`ent: missing required field "Attack.increment_maximum"`)}
	}
	if v, ok := _c.mutation.IncrementMaximum(); ok {
		if err := attack.IncrementMaximumValidator(v); err != nil {
			return &ValidationError{Name: "increment_maximum", err: fmt.Errorf(`ent: validator failed for field "Attack.increment_maximum": %w`, err)}
		}
	}
	if _, ok := _c.mutation.WorkloadProfile(); !ok {
		return &ValidationError{Name: "workload_profile", err: errors.New(`ent: missing required field "Attack.workload_profile"`)}
	}
	if v, ok := _c.mutation.WorkloadProfile(); ok {
		if err := attack.WorkloadProfileValidator(v); err != nil {
			return &ValidationError{Name: "workload_profile", err: fmt.Errorf(`ent: validator failed for field "Attack.workload_profile": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Optimized(); !ok {
		return &ValidationError{Name: "optimized", err: errors.New(`ent: missing required field "Attack.optimized"`)}
	}
	if _, ok := _c.mutation.DisableMarkov(); !ok {
		return &ValidationError{Name: "disable_markov", err: errors.New(`ent: missing required field "Attack.disable_markov"`)}
	}
	if _, ok := _c.mutation.ClassicMarkov(); !ok {
		return &ValidationError{Name: "classic_markov", err: errors.New(`ent: missing required field "Attack.classic_markov"`)}
	}
	if _, ok := _c.mutation.MarkovThreshold(); !ok {
		return &ValidationError{Name: "markov_threshold", err: errors.New(`ent: missing required field "Attack.markov_threshold"`)}
	}
	if _, ok := _c.mutation.SlowCandidateGenerators(); !ok {
		return &ValidationError{Name: "slow_candidate_generators", err: errors.New(`ent: missing required field "Attack.slow_candidate_generators"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Attack.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "Attack.updated_at"`)}
	}
	if len(_c.mutation.CampaignIDs()) == 0 {
		return &ValidationError{Name: "campaign", err: errors.New(`ent: missing required edge "Attack.campaign"`)}
	}
	return nil
}

func (_c *AttackCreate) sqlSave(ctx context.Context) (*Attack, error) {
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

func (_c *AttackCreate) createSpec() (*Attack, *sqlgraph.CreateSpec) {
	var (
		_node = &Attack{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(attack.Table, sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt64))
	)
	_spec.OnConflict = _c.conflict
	if value, ok := _c.mutation.Position(); ok {
		_spec.SetField(attack.FieldPosition, field.TypeInt, value)
		_node.Position = value
	}
	if value, ok := _c.mutation.AttackMode(); ok {
		_spec.SetField(attack.FieldAttackMode, field.TypeEnum, value)
		_node.AttackMode = value
	}
	if value, ok := _c.mutation.State(); ok {
		_spec.SetField(attack.FieldState, field.TypeEnum, value)
		_node.State = value
	}
	if value, ok := _c.mutation.Mask(); ok {
		_spec.SetField(attack.FieldMask, field.TypeString, value)
		_node.Mask = value
	}
	if value, ok := _c.mutation.CustomCharset1(); ok {
		_spec.SetField(attack.FieldCustomCharset1, field.TypeString, value)
		_node.CustomCharset1 = value
	}
	if value, ok := _c.mutation.CustomCharset2(); ok {
		_spec.SetField(attack.FieldCustomCharset2, field.TypeString, value)
		_node.CustomCharset2 = value
	}
	if value, ok := _c.mutation.CustomCharset3(); ok {
		_spec.SetField(attack.FieldCustomCharset3, field.TypeString, value)
		_node.CustomCharset3 = value
	}
	if value, ok := _c.mutation.CustomCharset4(); ok {
		_spec.SetField(attack.FieldCustomCharset4, field.TypeString, value)
		_node.CustomCharset4 = value
	}
	if value, ok := _c.mutation.IncrementMode(); ok {
		_spec.SetField(attack.FieldIncrementMode, field.TypeBool, value)
		_node.IncrementMode = value
	}
	if value, ok := _c.mutation.IncrementMinimum(); ok {
		_spec.SetField(attack.FieldIncrementMinimum, field.TypeInt, value)
		_node.IncrementMinimum = value
	}
	if value, ok := _c.mutation.IncrementMaximum(); ok {
		_spec.SetField(attack.FieldIncrementMaximum, field.TypeInt, value)
		_node.IncrementMaximum = value
	}
	if value, ok := _c.mutation.WorkloadProfile(); ok {
		_spec.SetField(attack.FieldWorkloadProfile, field.TypeInt, value)
		_node.WorkloadProfile = value
	}
	if value, ok := _c.mutation.Optimized(); ok {
		_spec.SetField(attack.FieldOptimized, field.TypeBool, value)
		_node.Optimized = value
	}
	if value, ok := _c.mutation.DisableMarkov(); ok {
		_spec.SetField(attack.FieldDisableMarkov, field.TypeBool, value)
		_node.DisableMarkov = value
	}
	if value, ok := _c.mutation.ClassicMarkov(); ok {
		_spec.SetField(attack.FieldClassicMarkov, field.TypeBool, value)
		_node.ClassicMarkov = value
	}
	if value, ok := _c.mutation.MarkovThreshold(); ok {
		_spec.SetField(attack.FieldMarkovThreshold, field.TypeInt, value)
		_node.MarkovThreshold = value
	}
	if value, ok := _c.mutation.SlowCandidateGenerators(); ok {
		_spec.SetField(attack.FieldSlowCandidateGenerators, field.TypeBool, value)
		_node.SlowCandidateGenerators = value
	}
	if value, ok := _c.mutation.LeftRule(); ok {
		_spec.SetField(attack.FieldLeftRule, field.TypeString, value)
		_node.LeftRule = value
	}
	if value, ok := _c.mutation.RightRule(); ok {
		_spec.SetField(attack.FieldRightRule, field.TypeString, value)
		_node.RightRule = value
	}
	if value, ok := _c.mutation.TotalKeyspace(); ok {
		_spec.SetField(attack.FieldTotalKeyspace, field.TypeInt64, value)
		_node.TotalKeyspace = &value
	}
	if value, ok := _c.mutation.StartTime(); ok {
		_spec.SetField(attack.FieldStartTime, field.TypeTime, value)
		_node.StartTime = &value
	}
	if value, ok := _c.mutation.EndTime(); ok {
		_spec.SetField(attack.FieldEndTime, field.TypeTime, value)
		_node.EndTime = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(attack.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(attack.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.CampaignIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   attack.CampaignTable,
			Columns: []string{attack.CampaignColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(campaign.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.campaign_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.WordListIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   attack.WordListTable,
			Columns: []string{attack.WordListColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.word_list_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.RuleListIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   attack.RuleListTable,
			Columns: []string{attack.RuleListColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.rule_list_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.MaskListIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   attack.MaskListTable,
			Columns: []string{attack.MaskListColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(resource.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.mask_list_id = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.TasksIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   attack.TasksTable,
			Columns: []string{attack.TasksColumn},
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
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Attack.Create().
//		SetPosition(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttackUpsert) {
//			SetPosition(v+v).
//		}).
//		Exec(ctx)
func (_c *AttackCreate) OnConflict(opts ...sql.ConflictOption) *AttackUpsertOne {
	_c.conflict = opts
	return &AttackUpsertOne{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attack.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttackCreate) OnConflictColumns(columns ...string) *AttackUpsertOne {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttackUpsertOne{
		create: _c,
	}
}

type (
	// AttackUpsertOne is the builder for "upsert"-ing
	//  one Attack node.
	AttackUpsertOne struct {
		create *AttackCreate
	}

	// AttackUpsert is the "OnConflict" setter.
	AttackUpsert struct {
		*sql.UpdateSet
	}
)

// SetPosition sets the "position" field.
func (u *AttackUpsert) SetPosition(v int) *AttackUpsert {
	u.Set(attack.FieldPosition, v)
	return u
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *AttackUpsert) UpdatePosition() *AttackUpsert {
	u.SetExcluded(attack.FieldPosition)
	return u
}

// AddPosition adds v to the "position" field.
func (u *AttackUpsert) AddPosition(v int) *AttackUpsert {
	u.Add(attack.FieldPosition, v)
	return u
}

// SetAttackMode sets the "attack_mode" field.
func (u *AttackUpsert) SetAttackMode(v attack.AttackMode) *AttackUpsert {
	u.Set(attack.FieldAttackMode, v)
	return u
}

// UpdateAttackMode sets the "attack_mode" field to the value that was provided on create.
func (u *AttackUpsert) UpdateAttackMode() *AttackUpsert {
	u.SetExcluded(attack.FieldAttackMode)
	return u
}

// SetState sets the "state" field.
func (u *AttackUpsert) SetState(v attack.State) *AttackUpsert {
	u.Set(attack.FieldState, v)
	return u
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AttackUpsert) UpdateState() *AttackUpsert {
	u.SetExcluded(attack.FieldState)
	return u
}

// SetMask sets the "mask" field.
func (u *AttackUpsert) SetMask(v string) *AttackUpsert {
	u.Set(attack.FieldMask, v)
	return u
}

// UpdateMask sets the "mask" field to the value that was provided on create.
func (u *AttackUpsert) UpdateMask() *AttackUpsert {
	u.SetExcluded(attack.FieldMask)
	return u
}

// ClearMask clears the value of the "mask" field.
func (u *AttackUpsert) ClearMask() *AttackUpsert {
	u.SetNull(attack.FieldMask)
	return u
}

// SetCustomCharset1 sets the "custom_charset_1" field.
func (u *AttackUpsert) SetCustomCharset1(v string) *AttackUpsert {
	u.Set(attack.FieldCustomCharset1, v)
	return u
}

// UpdateCustomCharset1 sets the "custom_charset_1" field to the value that was provided on create.
func (u *AttackUpsert) UpdateCustomCharset1() *AttackUpsert {
	u.SetExcluded(attack.FieldCustomCharset1)
	return u
}

// ClearCustomCharset1 clears the value of the "custom_charset_1" field.
func (u *AttackUpsert) ClearCustomCharset1() *AttackUpsert {
	u.SetNull(attack.FieldCustomCharset1)
	return u
}

// SetCustomCharset2 sets the "custom_charset_2" field.
func (u *AttackUpsert) SetCustomCharset2(v string) *AttackUpsert {
	u.Set(attack.FieldCustomCharset2, v)
	return u
}

// UpdateCustomCharset2 sets the "custom_charset_2" field to the value that was provided on create.
func (u *AttackUpsert) UpdateCustomCharset2() *AttackUpsert {
	u.SetExcluded(attack.FieldCustomCharset2)
	return u
}

// ClearCustomCharset2 clears the value of the "custom_charset_2" field.
func (u *AttackUpsert) ClearCustomCharset2() *AttackUpsert {
	u.SetNull(attack.FieldCustomCharset2)
	return u
}

// SetCustomCharset3 sets the "custom_charset_3" field.
func (u *AttackUpsert) SetCustomCharset3(v string) *AttackUpsert {
	u.Set(attack.FieldCustomCharset3, v)
	return u
}

// UpdateCustomCharset3 sets the "custom_charset_3" field to the value that was provided on create.
func (u *AttackUpsert) UpdateCustomCharset3() *AttackUpsert {
	u.SetExcluded(attack.FieldCustomCharset3)
	return u
}

// ClearCustomCharset3 clears the value of the "custom_charset_3" field.
func (u *AttackUpsert) ClearCustomCharset3() *AttackUpsert {
	u.SetNull(attack.FieldCustomCharset3)
	return u
}

// SetCustomCharset4 sets the "custom_charset_4" field.
func (u *AttackUpsert) SetCustomCharset4(v string) *AttackUpsert {
	u.Set(attack.FieldCustomCharset4, v)
	return u
}

// UpdateCustomCharset4 sets the "custom_charset_4" field to the value that was provided on create.
func (u *AttackUpsert) UpdateCustomCharset4() *AttackUpsert {
	u.SetExcluded(attack.FieldCustomCharset4)
	return u
}

// ClearCustomCharset4 clears the value of the "custom_charset_4" field.
func (u *AttackUpsert) ClearCustomCharset4() *AttackUpsert {
	u.SetNull(attack.FieldCustomCharset4)
	return u
}

// SetIncrementMode sets the "increment_mode" field.
func (u *AttackUpsert) SetIncrementMode(v bool) *AttackUpsert {
	u.Set(attack.FieldIncrementMode, v)
	return u
}

// UpdateIncrementMode sets the "increment_mode" field to the value that was provided on create.
func (u *AttackUpsert) UpdateIncrementMode() *AttackUpsert {
	u.SetExcluded(attack.FieldIncrementMode)
	return u
}

// SetIncrementMinimum sets the "increment_minimum" field.
func (u *AttackUpsert) SetIncrementMinimum(v int) *AttackUpsert {
	u.Set(attack.FieldIncrementMinimum, v)
	return u
}

// UpdateIncrementMinimum sets the "increment_minimum" field to the value that was provided on create.
func (u *AttackUpsert) UpdateIncrementMinimum() *AttackUpsert {
	u.SetExcluded(attack.FieldIncrementMinimum)
	return u
}

// AddIncrementMinimum adds v to the "increment_minimum" field.
func (u *AttackUpsert) AddIncrementMinimum(v int) *AttackUpsert {
	u.Add(attack.FieldIncrementMinimum, v)
	return u
}

// SetIncrementMaximum sets the "increment_maximum" field.
func (u *AttackUpsert) SetIncrementMaximum(v int) *AttackUpsert {
	u.Set(attack.FieldIncrementMaximum, v)
	return u
}

// UpdateIncrementMaximum sets the "increment_maximum" field to the value that was provided on create.
func (u *AttackUpsert) UpdateIncrementMaximum() *AttackUpsert {
	u.SetExcluded(attack.FieldIncrementMaximum)
	return u
}

// AddIncrementMaximum adds v to the "increment_maximum" field.
func (u *AttackUpsert) AddIncrementMaximum(v int) *AttackUpsert {
	u.Add(attack.FieldIncrementMaximum, v)
	return u
}

// SetWorkloadProfile sets the "workload_profile" field.
func (u *AttackUpsert) SetWorkloadProfile(v int) *AttackUpsert {
	u.Set(attack.FieldWorkloadProfile, v)
	return u
}

// UpdateWorkloadProfile sets the "workload_profile" field to the value that was provided on create.
func (u *AttackUpsert) UpdateWorkloadProfile() *AttackUpsert {
	u.SetExcluded(attack.FieldWorkloadProfile)
	return u
}

// AddWorkloadProfile adds v to the "workload_profile" field.
func (u *AttackUpsert) AddWorkloadProfile(v int) *AttackUpsert {
	u.Add(attack.FieldWorkloadProfile, v)
	return u
}

// SetOptimized sets the "optimized" field.
func (u *AttackUpsert) SetOptimized(v bool) *AttackUpsert {
	u.Set(attack.FieldOptimized, v)
	return u
}

// UpdateOptimized sets the "optimized" field to the value that was provided on create.
func (u *AttackUpsert) UpdateOptimized() *AttackUpsert {
	u.SetExcluded(attack.FieldOptimized)
	return u
}

// SetDisableMarkov sets the "disable_markov" field.
func (u *AttackUpsert) SetDisableMarkov(v bool) *AttackUpsert {
	u.Set(attack.FieldDisableMarkov, v)
	return u
}

// UpdateDisableMarkov sets the "disable_markov" field to the value that was provided on create.
func (u *AttackUpsert) UpdateDisableMarkov() *AttackUpsert {
	u.SetExcluded(attack.FieldDisableMarkov)
	return u
}

// SetClassicMarkov sets the "classic_markov" field.
func (u *AttackUpsert) SetClassicMarkov(v bool) *AttackUpsert {
	u.Set(attack.FieldClassicMarkov, v)
	return u
}

// UpdateClassicMarkov sets the "classic_markov" field to the value that was provided on create.
func (u *AttackUpsert) UpdateClassicMarkov() *AttackUpsert {
	u.SetExcluded(attack.FieldClassicMarkov)
	return u
}

// SetMarkovThreshold sets the "markov_threshold" field.
func (u *AttackUpsert) SetMarkovThreshold(v int) *AttackUpsert {
	u.Set(attack.FieldMarkovThreshold, v)
	return u
}

// UpdateMarkovThreshold sets the "markov_threshold" field to the value that was provided on create.
func (u *AttackUpsert) UpdateMarkovThreshold() *AttackUpsert {
	u.SetExcluded(attack.FieldMarkovThreshold)
	return u
}

// AddMarkovThreshold adds v to the "markov_threshold" field.
func (u *AttackUpsert) AddMarkovThreshold(v int) *AttackUpsert {
	u.Add(attack.FieldMarkovThreshold, v)
	return u
}

// SetSlowCandidateGenerators sets the "slow_candidate_generators" field.
func (u *AttackUpsert) SetSlowCandidateGenerators(v bool) *AttackUpsert {
	u.Set(attack.FieldSlowCandidateGenerators, v)
	return u
}

// UpdateSlowCandidateGenerators sets the "slow_candidate_generators" field to the value that was provided on create.
func (u *AttackUpsert) UpdateSlowCandidateGenerators() *AttackUpsert {
	u.SetExcluded(attack.FieldSlowCandidateGenerators)
	return u
}

// SetLeftRule sets the "left_rule" field.
func (u *AttackUpsert) SetLeftRule(v string) *AttackUpsert {
	u.Set(attack.FieldLeftRule, v)
	return u
}

// UpdateLeftRule sets the "left_rule" field to the value that was provided on create.
func (u *AttackUpsert) UpdateLeftRule() *AttackUpsert {
	u.SetExcluded(attack.FieldLeftRule)
	return u
}

// ClearLeftRule clears the value of the "left_rule" field.
func (u *AttackUpsert) ClearLeftRule() *AttackUpsert {
	u.SetNull(attack.FieldLeftRule)
	return u
}

// SetRightRule sets the "right_rule" field.
func (u *AttackUpsert) SetRightRule(v string) *AttackUpsert {
	u.Set(attack.FieldRightRule, v)
	return u
}

// UpdateRightRule sets the "right_rule" field to the value that was provided on create.
func (u *AttackUpsert) UpdateRightRule() *AttackUpsert {
	u.SetExcluded(attack.FieldRightRule)
	return u
}

// ClearRightRule clears the value of the "right_rule" field.
func (u *AttackUpsert) ClearRightRule() *AttackUpsert {
	u.SetNull(attack.FieldRightRule)
	return u
}

// SetTotalKeyspace sets the "total_keyspace" field.
func (u *AttackUpsert) SetTotalKeyspace(v int64) *AttackUpsert {
	u.Set(attack.FieldTotalKeyspace, v)
	return u
}

// UpdateTotalKeyspace sets the "total_keyspace" field to the value that was provided on create.
func (u *AttackUpsert) UpdateTotalKeyspace() *AttackUpsert {
	u.SetExcluded(attack.FieldTotalKeyspace)
	return u
}

// AddTotalKeyspace adds v to the "total_keyspace" field.
func (u *AttackUpsert) AddTotalKeyspace(v int64) *AttackUpsert {
	u.Add(attack.FieldTotalKeyspace, v)
	return u
}

// ClearTotalKeyspace clears the value of the "total_keyspace" field.
func (u *AttackUpsert) ClearTotalKeyspace() *AttackUpsert {
	u.SetNull(attack.FieldTotalKeyspace)
	return u
}

// SetStartTime sets the "start_time" field.
func (u *AttackUpsert) SetStartTime(v time.Time) *AttackUpsert {
	u.Set(attack.FieldStartTime, v)
	return u
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AttackUpsert) UpdateStartTime() *AttackUpsert {
	u.SetExcluded(attack.FieldStartTime)
	return u
}

// ClearStartTime clears the value of the "start_time" field.
func (u *AttackUpsert) ClearStartTime() *AttackUpsert {
	u.SetNull(attack.FieldStartTime)
	return u
}

// SetEndTime sets the "end_time" field.
func (u *AttackUpsert) SetEndTime(v time.Time) *AttackUpsert {
	u.Set(attack.FieldEndTime, v)
	return u
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AttackUpsert) UpdateEndTime() *AttackUpsert {
	u.SetExcluded(attack.FieldEndTime)
	return u
}

// ClearEndTime clears the value of the "end_time" field.
func (u *AttackUpsert) ClearEndTime() *AttackUpsert {
	u.SetNull(attack.FieldEndTime)
	return u
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AttackUpsert) SetUpdatedAt(v time.Time) *AttackUpsert {
	u.Set(attack.FieldUpdatedAt, v)
	return u
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AttackUpsert) UpdateUpdatedAt() *AttackUpsert {
	u.SetExcluded(attack.FieldUpdatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create.
// Using this option is equivalent to using:
//
//	client.Attack.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttackUpsertOne) UpdateNewValues() *AttackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.CreatedAt(); exists {
			s.SetIgnore(attack.FieldCreatedAt)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attack.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AttackUpsertOne) Ignore() *AttackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttackUpsertOne) DoNothing() *AttackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttackCreate.OnConflict
// documentation for more info.
func (u *AttackUpsertOne) Update(set func(*AttackUpsert)) *AttackUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttackUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *AttackUpsertOne) SetPosition(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *AttackUpsertOne) AddPosition(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdatePosition() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdatePosition()
	})
}

// SetAttackMode sets the "attack_mode" field.
func (u *AttackUpsertOne) SetAttackMode(v attack.AttackMode) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetAttackMode(v)
	})
}

// UpdateAttackMode sets the "attack_mode" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateAttackMode() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateAttackMode()
	})
}

// SetState sets the "state" field.
func (u *AttackUpsertOne) SetState(v attack.State) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateState() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateState()
	})
}

// SetMask sets the "mask" field.
func (u *AttackUpsertOne) SetMask(v string) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetMask(v)
	})
}

// UpdateMask sets the "mask" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateMask() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateMask()
	})
}

// ClearMask clears the value of the "mask" field.
func (u *AttackUpsertOne) ClearMask() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearMask()
	})
}

// SetCustomCharset1 sets the "custom_charset_1" field.
func (u *AttackUpsertOne) SetCustomCharset1(v string) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset1(v)
	})
}

// UpdateCustomCharset1 sets the "custom_charset_1" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateCustomCharset1() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset1()
	})
}

// ClearCustomCharset1 clears the value of the "custom_charset_1" field.
func (u *AttackUpsertOne) ClearCustomCharset1() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset1()
	})
}

// SetCustomCharset2 sets the "custom_charset_2" field.
func (u *AttackUpsertOne) SetCustomCharset2(v string) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset2(v)
	})
}

// UpdateCustomCharset2 sets the "custom_charset_2" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateCustomCharset2() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset2()
	})
}

// ClearCustomCharset2 clears the value of the "custom_charset_2" field.
func (u *AttackUpsertOne) ClearCustomCharset2() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset2()
	})
}

// SetCustomCharset3 sets the "custom_charset_3" field.
func (u *AttackUpsertOne) SetCustomCharset3(v string) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset3(v)
	})
}

// UpdateCustomCharset3 sets the "custom_charset_3" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateCustomCharset3() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset3()
	})
}

// ClearCustomCharset3 clears the value of the "custom_charset_3" field.
func (u *AttackUpsertOne) ClearCustomCharset3() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset3()
	})
}

// SetCustomCharset4 sets the "custom_charset_4" field.
func (u *AttackUpsertOne) SetCustomCharset4(v string) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset4(v)
	})
}

// UpdateCustomCharset4 sets the "custom_charset_4" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateCustomCharset4() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset4()
	})
}

// ClearCustomCharset4 clears the value of the "custom_charset_4" field.
func (u *AttackUpsertOne) ClearCustomCharset4() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset4()
	})
}

// SetIncrementMode sets the "increment_mode" field.
func (u *AttackUpsertOne) SetIncrementMode(v bool) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetIncrementMode(v)
	})
}

// UpdateIncrementMode sets the "increment_mode" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateIncrementMode() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateIncrementMode()
	})
}

// SetIncrementMinimum sets the "increment_minimum" field.
func (u *AttackUpsertOne) SetIncrementMinimum(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetIncrementMinimum(v)
	})
}

// AddIncrementMinimum adds v to the "increment_minimum" field.
func (u *AttackUpsertOne) AddIncrementMinimum(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.AddIncrementMinimum(v)
	})
}

// UpdateIncrementMinimum sets the "increment_minimum" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateIncrementMinimum() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateIncrementMinimum()
	})
}

// SetIncrementMaximum sets the "increment_maximum" field.
func (u *AttackUpsertOne) SetIncrementMaximum(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetIncrementMaximum(v)
	})
}

// AddIncrementMaximum adds v to the "increment_maximum" field.
func (u *AttackUpsertOne) AddIncrementMaximum(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.AddIncrementMaximum(v)
	})
}

// UpdateIncrementMaximum sets the "increment_maximum" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateIncrementMaximum() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateIncrementMaximum()
	})
}

// SetWorkloadProfile sets the "workload_profile" field.
func (u *AttackUpsertOne) SetWorkloadProfile(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetWorkloadProfile(v)
	})
}

// AddWorkloadProfile adds v to the "workload_profile" field.
func (u *AttackUpsertOne) AddWorkloadProfile(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.AddWorkloadProfile(v)
	})
}

// UpdateWorkloadProfile sets the "workload_profile" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateWorkloadProfile() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateWorkloadProfile()
	})
}

// SetOptimized sets the "optimized" field.
func (u *AttackUpsertOne) SetOptimized(v bool) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetOptimized(v)
	})
}

// UpdateOptimized sets the "optimized" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateOptimized() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateOptimized()
	})
}

// SetDisableMarkov sets the "disable_markov" field.
func (u *AttackUpsertOne) SetDisableMarkov(v bool) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetDisableMarkov(v)
	})
}

// UpdateDisableMarkov sets the "disable_markov" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateDisableMarkov() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateDisableMarkov()
	})
}

// SetClassicMarkov sets the "classic_markov" field.
func (u *AttackUpsertOne) SetClassicMarkov(v bool) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetClassicMarkov(v)
	})
}

// UpdateClassicMarkov sets the "classic_markov" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateClassicMarkov() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateClassicMarkov()
	})
}

// SetMarkovThreshold sets the "markov_threshold" field.
func (u *AttackUpsertOne) SetMarkovThreshold(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetMarkovThreshold(v)
	})
}

// AddMarkovThreshold adds v to the "markov_threshold" field.
func (u *AttackUpsertOne) AddMarkovThreshold(v int) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.AddMarkovThreshold(v)
	})
}

// UpdateMarkovThreshold sets the "markov_threshold" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateMarkovThreshold() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateMarkovThreshold()
	})
}

// SetSlowCandidateGenerators sets the "slow_candidate_generators" field.
func (u *AttackUpsertOne) SetSlowCandidateGenerators(v bool) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetSlowCandidateGenerators(v)
	})
}

// UpdateSlowCandidateGenerators sets the "slow_candidate_generators" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateSlowCandidateGenerators() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateSlowCandidateGenerators()
	})
}

// SetLeftRule sets the "left_rule" field.
func (u *AttackUpsertOne) SetLeftRule(v string) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetLeftRule(v)
	})
}

// UpdateLeftRule sets the "left_rule" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateLeftRule() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateLeftRule()
	})
}

// ClearLeftRule clears the value of the "left_rule" field.
func (u *AttackUpsertOne) ClearLeftRule() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearLeftRule()
	})
}

// SetRightRule sets the "right_rule" field.
func (u *AttackUpsertOne) SetRightRule(v string) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetRightRule(v)
	})
}

// UpdateRightRule sets the "right_rule" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateRightRule() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateRightRule()
	})
}

// ClearRightRule clears the value of the "right_rule" field.
func (u *AttackUpsertOne) ClearRightRule() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearRightRule()
	})
}

// SetTotalKeyspace sets the "total_keyspace" field.
func (u *AttackUpsertOne) SetTotalKeyspace(v int64) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetTotalKeyspace(v)
	})
}

// AddTotalKeyspace adds v to the "total_keyspace" field.
func (u *AttackUpsertOne) AddTotalKeyspace(v int64) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.AddTotalKeyspace(v)
	})
}

// UpdateTotalKeyspace sets the "total_keyspace" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateTotalKeyspace() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateTotalKeyspace()
	})
}

// ClearTotalKeyspace clears the value of the "total_keyspace" field.
func (u *AttackUpsertOne) ClearTotalKeyspace() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearTotalKeyspace()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AttackUpsertOne) SetStartTime(v time.Time) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateStartTime() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateStartTime()
	})
}

// ClearStartTime clears the value of the "start_time" field.
func (u *AttackUpsertOne) ClearStartTime() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AttackUpsertOne) SetEndTime(v time.Time) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateEndTime() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *AttackUpsertOne) ClearEndTime() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.ClearEndTime()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AttackUpsertOne) SetUpdatedAt(v time.Time) *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AttackUpsertOne) UpdateUpdatedAt() *AttackUpsertOne {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AttackUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttackCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttackUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AttackUpsertOne) ID(ctx context.Context) (id int64, err error) {
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AttackUpsertOne) IDX(ctx context.Context) int64 {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AttackCreateBulk is the builder for creating many Attack entities in bulk.
type AttackCreateBulk struct {
	config
	err      error
	builders []*AttackCreate
	conflict []sql.ConflictOption
}

// Save creates the Attack entities in the database.
func (_c *AttackCreateBulk) Save(ctx context.Context) ([]*Attack, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Attack, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AttackMutation)
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
func (_c *AttackCreateBulk) SaveX(ctx context.Context) []*Attack {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AttackCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AttackCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Attack.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AttackUpsert) {
//			SetPosition(v+v).
//		}).
//		Exec(ctx)
func (_c *AttackCreateBulk) OnConflict(opts ...sql.ConflictOption) *AttackUpsertBulk {
	_c.conflict = opts
	return &AttackUpsertBulk{
		create: _c,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Attack.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (_c *AttackCreateBulk) OnConflictColumns(columns ...string) *AttackUpsertBulk {
	_c.conflict = append(_c.conflict, sql.ConflictColumns(columns...))
	return &AttackUpsertBulk{
		create: _c,
	}
}

// AttackUpsertBulk is the builder for "upsert"-ing
// a bulk of Attack nodes.
type AttackUpsertBulk struct {
	create *AttackCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Attack.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//		).
//		Exec(ctx)
func (u *AttackUpsertBulk) UpdateNewValues() *AttackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.CreatedAt(); exists {
				s.SetIgnore(attack.FieldCreatedAt)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Attack.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AttackUpsertBulk) Ignore() *AttackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AttackUpsertBulk) DoNothing() *AttackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AttackCreateBulk.OnConflict
// documentation for more info.
func (u *AttackUpsertBulk) Update(set func(*AttackUpsert)) *AttackUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AttackUpsert{UpdateSet: update})
	}))
	return u
}

// SetPosition sets the "position" field.
func (u *AttackUpsertBulk) SetPosition(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetPosition(v)
	})
}

// AddPosition adds v to the "position" field.
func (u *AttackUpsertBulk) AddPosition(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.AddPosition(v)
	})
}

// UpdatePosition sets the "position" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdatePosition() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdatePosition()
	})
}

// SetAttackMode sets the "attack_mode" field.
func (u *AttackUpsertBulk) SetAttackMode(v attack.AttackMode) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetAttackMode(v)
	})
}

// UpdateAttackMode sets the "attack_mode" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateAttackMode() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateAttackMode()
	})
}

// SetState sets the "state" field.
func (u *AttackUpsertBulk) SetState(v attack.State) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetState(v)
	})
}

// UpdateState sets the "state" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateState() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateState()
	})
}

// SetMask sets the "mask" field.
func (u *AttackUpsertBulk) SetMask(v string) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetMask(v)
	})
}

// UpdateMask sets the "mask" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateMask() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateMask()
	})
}

// ClearMask clears the value of the "mask" field.
func (u *AttackUpsertBulk) ClearMask() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearMask()
	})
}

// SetCustomCharset1 sets the "custom_charset_1" field.
func (u *AttackUpsertBulk) SetCustomCharset1(v string) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset1(v)
	})
}

// UpdateCustomCharset1 sets the "custom_charset_1" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateCustomCharset1() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset1()
	})
}

// ClearCustomCharset1 clears the value of the "custom_charset_1" field.
func (u *AttackUpsertBulk) ClearCustomCharset1() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset1()
	})
}

// SetCustomCharset2 sets the "custom_charset_2" field.
func (u *AttackUpsertBulk) SetCustomCharset2(v string) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset2(v)
	})
}

// UpdateCustomCharset2 sets the "custom_charset_2" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateCustomCharset2() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset2()
	})
}

// ClearCustomCharset2 clears the value of the "custom_charset_2" field.
func (u *AttackUpsertBulk) ClearCustomCharset2() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset2()
	})
}

// SetCustomCharset3 sets the "custom_charset_3" field.
func (u *AttackUpsertBulk) SetCustomCharset3(v string) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset3(v)
	})
}

// UpdateCustomCharset3 sets the "custom_charset_3" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateCustomCharset3() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset3()
	})
}

// ClearCustomCharset3 clears the value of the "custom_charset_3" field.
func (u *AttackUpsertBulk) ClearCustomCharset3() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset3()
	})
}

// SetCustomCharset4 sets the "custom_charset_4" field.
func (u *AttackUpsertBulk) SetCustomCharset4(v string) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetCustomCharset4(v)
	})
}

// UpdateCustomCharset4 sets the "custom_charset_4" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateCustomCharset4() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateCustomCharset4()
	})
}

// ClearCustomCharset4 clears the value of the "custom_charset_4" field.
func (u *AttackUpsertBulk) ClearCustomCharset4() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearCustomCharset4()
	})
}

// SetIncrementMode sets the "increment_mode" field.
func (u *AttackUpsertBulk) SetIncrementMode(v bool) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetIncrementMode(v)
	})
}

// UpdateIncrementMode sets the "increment_mode" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateIncrementMode() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateIncrementMode()
	})
}

// SetIncrementMinimum sets the "increment_minimum" field.
func (u *AttackUpsertBulk) SetIncrementMinimum(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetIncrementMinimum(v)
	})
}

// AddIncrementMinimum adds v to the "increment_minimum" field.
func (u *AttackUpsertBulk) AddIncrementMinimum(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.AddIncrementMinimum(v)
	})
}

// UpdateIncrementMinimum sets the "increment_minimum" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateIncrementMinimum() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateIncrementMinimum()
	})
}

// SetIncrementMaximum sets the "increment_maximum" field.
func (u *AttackUpsertBulk) SetIncrementMaximum(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetIncrementMaximum(v)
	})
}

// AddIncrementMaximum adds v to the "increment_maximum" field.
func (u *AttackUpsertBulk) AddIncrementMaximum(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.AddIncrementMaximum(v)
	})
}

// UpdateIncrementMaximum sets the "increment_maximum" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateIncrementMaximum() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateIncrementMaximum()
	})
}

// SetWorkloadProfile sets the "workload_profile" field.
func (u *AttackUpsertBulk) SetWorkloadProfile(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetWorkloadProfile(v)
	})
}

// AddWorkloadProfile adds v to the "workload_profile" field.
func (u *AttackUpsertBulk) AddWorkloadProfile(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.AddWorkloadProfile(v)
	})
}

// UpdateWorkloadProfile sets the "workload_profile" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateWorkloadProfile() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateWorkloadProfile()
	})
}

// SetOptimized sets the "optimized" field.
func (u *AttackUpsertBulk) SetOptimized(v bool) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetOptimized(v)
	})
}

// UpdateOptimized sets the "optimized" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateOptimized() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateOptimized()
	})
}

// SetDisableMarkov sets the "disable_markov" field.
func (u *AttackUpsertBulk) SetDisableMarkov(v bool) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetDisableMarkov(v)
	})
}

// UpdateDisableMarkov sets the "disable_markov" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateDisableMarkov() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateDisableMarkov()
	})
}

// SetClassicMarkov sets the "classic_markov" field.
func (u *AttackUpsertBulk) SetClassicMarkov(v bool) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetClassicMarkov(v)
	})
}

// UpdateClassicMarkov sets the "classic_markov" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateClassicMarkov() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateClassicMarkov()
	})
}

// SetMarkovThreshold sets the "markov_threshold" field.
func (u *AttackUpsertBulk) SetMarkovThreshold(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetMarkovThreshold(v)
	})
}

// AddMarkovThreshold adds v to the "markov_threshold" field.
func (u *AttackUpsertBulk) AddMarkovThreshold(v int) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.AddMarkovThreshold(v)
	})
}

// UpdateMarkovThreshold sets the "markov_threshold" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateMarkovThreshold() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateMarkovThreshold()
	})
}

// SetSlowCandidateGenerators sets the "slow_candidate_generators" field.
func (u *AttackUpsertBulk) SetSlowCandidateGenerators(v bool) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetSlowCandidateGenerators(v)
	})
}

// UpdateSlowCandidateGenerators sets the "slow_candidate_generators" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateSlowCandidateGenerators() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateSlowCandidateGenerators()
	})
}

// SetLeftRule sets the "left_rule" field.
func (u *AttackUpsertBulk) SetLeftRule(v string) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetLeftRule(v)
	})
}

// UpdateLeftRule sets the "left_rule" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateLeftRule() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateLeftRule()
	})
}

// ClearLeftRule clears the value of the "left_rule" field.
func (u *AttackUpsertBulk) ClearLeftRule() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearLeftRule()
	})
}

// SetRightRule sets the "right_rule" field.
func (u *AttackUpsertBulk) SetRightRule(v string) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetRightRule(v)
	})
}

// UpdateRightRule sets the "right_rule" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateRightRule() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateRightRule()
	})
}

// ClearRightRule clears the value of the "right_rule" field.
func (u *AttackUpsertBulk) ClearRightRule() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearRightRule()
	})
}

// SetTotalKeyspace sets the "total_keyspace" field.
func (u *AttackUpsertBulk) SetTotalKeyspace(v int64) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetTotalKeyspace(v)
	})
}

// AddTotalKeyspace adds v to the "total_keyspace" field.
func (u *AttackUpsertBulk) AddTotalKeyspace(v int64) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.AddTotalKeyspace(v)
	})
}

// UpdateTotalKeyspace sets the "total_keyspace" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateTotalKeyspace() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateTotalKeyspace()
	})
}

// ClearTotalKeyspace clears the value of the "total_keyspace" field.
func (u *AttackUpsertBulk) ClearTotalKeyspace() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearTotalKeyspace()
	})
}

// SetStartTime sets the "start_time" field.
func (u *AttackUpsertBulk) SetStartTime(v time.Time) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetStartTime(v)
	})
}

// UpdateStartTime sets the "start_time" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateStartTime() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateStartTime()
	})
}

// ClearStartTime clears the value of the "start_time" field.
func (u *AttackUpsertBulk) ClearStartTime() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearStartTime()
	})
}

// SetEndTime sets the "end_time" field.
func (u *AttackUpsertBulk) SetEndTime(v time.Time) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetEndTime(v)
	})
}

// UpdateEndTime sets the "end_time" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateEndTime() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateEndTime()
	})
}

// ClearEndTime clears the value of the "end_time" field.
func (u *AttackUpsertBulk) ClearEndTime() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.ClearEndTime()
	})
}

// SetUpdatedAt sets the "updated_at" field.
func (u *AttackUpsertBulk) SetUpdatedAt(v time.Time) *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.SetUpdatedAt(v)
	})
}

// UpdateUpdatedAt sets the "updated_at" field to the value that was provided on create.
func (u *AttackUpsertBulk) UpdateUpdatedAt() *AttackUpsertBulk {
	return u.Update(func(s *AttackUpsert) {
		s.UpdateUpdatedAt()
	})
}

// Exec executes the query.
func (u *AttackUpsertBulk) Exec(ctx context.Context) error {
	if u.create.err != nil {
		return u.create.err
	}
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AttackCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AttackCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AttackUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
