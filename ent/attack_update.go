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
	"github.com/cipherswarm/cipherswarm/ent/predicate"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// AttackUpdate is the builder for updating Attack entities.
type AttackUpdate struct {
	config
	hooks    []Hook
	mutation *AttackMutation
}

// Where appends a list predicates to the AttackUpdate builder.
func (_u *AttackUpdate) Where(ps ...predicate.Attack) *AttackUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPosition sets the "position" field.
func (_u *AttackUpdate) SetPosition(v int) *AttackUpdate {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *AttackUpdate) SetNillablePosition(v *int) *AttackUpdate {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *AttackUpdate) AddPosition(v int) *AttackUpdate {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAttackMode sets the "attack_mode" field.
func (_u *AttackUpdate) SetAttackMode(v attack.AttackMode) *AttackUpdate {
	_u.mutation.SetAttackMode(v)
	return _u
}

// SetNillableAttackMode sets the "attack_mode" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableAttackMode(v *attack.AttackMode) *AttackUpdate {
	if v != nil {
		_u.SetAttackMode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *AttackUpdate) SetState(v attack.State) *AttackUpdate {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableState(v *attack.State) *AttackUpdate {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetMask sets the "mask" field.
func (_u *AttackUpdate) SetMask(v string) *AttackUpdate {
	_u.mutation.SetMask(v)
	return _u
}

// SetNillableMask sets the "mask" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableMask(v *string) *AttackUpdate {
	if v != nil {
		_u.SetMask(*v)
	}
	return _u
}

// ClearMask clears the value of the "mask" field.
func (_u *AttackUpdate) ClearMask() *AttackUpdate {
	_u.mutation.ClearMask()
	return _u
}

// SetCustomCharset1 sets the "custom_charset_1" field.
func (_u *AttackUpdate) SetCustomCharset1(v string) *AttackUpdate {
	_u.mutation.SetCustomCharset1(v)
	return _u
}

// SetNillableCustomCharset1 sets the "custom_charset_1" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableCustomCharset1(v *string) *AttackUpdate {
	if v != nil {
		_u.SetCustomCharset1(*v)
	}
	return _u
}

// ClearCustomCharset1 clears the value of the "custom_charset_1" field.
func (_u *AttackUpdate) ClearCustomCharset1() *AttackUpdate {
	_u.mutation.ClearCustomCharset1()
	return _u
}

// SetCustomCharset2 sets the "custom_charset_2" field.
func (_u *AttackUpdate) SetCustomCharset2(v string) *AttackUpdate {
	_u.mutation.SetCustomCharset2(v)
	return _u
}

// SetNillableCustomCharset2 sets the "custom_charset_2" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableCustomCharset2(v *string) *AttackUpdate {
	if v != nil {
		_u.SetCustomCharset2(*v)
	}
	return _u
}

// ClearCustomCharset2 clears the value of the "custom_charset_2" field.
func (_u *AttackUpdate) ClearCustomCharset2() *AttackUpdate {
	_u.mutation.ClearCustomCharset2()
	return _u
}

// SetCustomCharset3 sets the "custom_charset_3" field.
func (_u *AttackUpdate) SetCustomCharset3(v string) *AttackUpdate {
	_u.mutation.SetCustomCharset3(v)
	return _u
}

// SetNillableCustomCharset3 sets the "custom_charset_3" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableCustomCharset3(v *string) *AttackUpdate {
	if v != nil {
		_u.SetCustomCharset3(*v)
	}
	return _u
}

// ClearCustomCharset3 clears the value of the "custom_charset_3" field.
func (_u *AttackUpdate) ClearCustomCharset3() *AttackUpdate {
	_u.mutation.ClearCustomCharset3()
	return _u
}

// SetCustomCharset4 sets the "custom_charset_4" field.
func (_u *AttackUpdate) SetCustomCharset4(v string) *AttackUpdate {
	_u.mutation.SetCustomCharset4(v)
	return _u
}

// SetNillableCustomCharset4 sets the "custom_charset_4" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableCustomCharset4(v *string) *AttackUpdate {
	if v != nil {
		_u.SetCustomCharset4(*v)
	}
	return _u
}

// ClearCustomCharset4 clears the value of the "custom_charset_4" field.
func (_u *AttackUpdate) ClearCustomCharset4() *AttackUpdate {
	_u.mutation.ClearCustomCharset4()
	return _u
}

// SetIncrementMode sets the "increment_mode" field.
func (_u *AttackUpdate) SetIncrementMode(v bool) *AttackUpdate {
	_u.mutation.SetIncrementMode(v)
	return _u
}

// SetNillableIncrementMode sets the "increment_mode" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableIncrementMode(v *bool) *AttackUpdate {
	if v != nil {
		_u.SetIncrementMode(*v)
	}
	return _u
}

// SetIncrementMinimum sets the "increment_minimum" field.
func (_u *AttackUpdate) SetIncrementMinimum(v int) *AttackUpdate {
	_u.mutation.ResetIncrementMinimum()
	_u.mutation.SetIncrementMinimum(v)
	return _u
}

// SetNillableIncrementMinimum sets the "increment_minimum" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableIncrementMinimum(v *int) *AttackUpdate {
	if v != nil {
		_u.SetIncrementMinimum(*v)
	}
	return _u
}

// AddIncrementMinimum adds value to the "increment_minimum" field.
func (_u *AttackUpdate) AddIncrementMinimum(v int) *AttackUpdate {
	_u.mutation.AddIncrementMinimum(v)
	return _u
}

// SetIncrementMaximum sets the "increment_maximum" field.
func (_u *AttackUpdate) SetIncrementMaximum(v int) *AttackUpdate {
	_u.mutation.ResetIncrementMaximum()
	_u.mutation.SetIncrementMaximum(v)
	return _u
}

// SetNillableIncrementMaximum sets the "increment_maximum" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableIncrementMaximum(v *int) *AttackUpdate {
	if v != nil {
		_u.SetIncrementMaximum(*v)
	}
	return _u
}

// AddIncrementMaximum adds value to the "increment_maximum" field.
func (_u *AttackUpdate) AddIncrementMaximum(v int) *AttackUpdate {
	_u.mutation.AddIncrementMaximum(v)
	return _u
}

// SetWorkloadProfile sets the "workload_profile" field.
func (_u *AttackUpdate) SetWorkloadProfile(v int) *AttackUpdate {
	_u.mutation.ResetWorkloadProfile()
	_u.mutation.SetWorkloadProfile(v)
	return _u
}

// SetNillableWorkloadProfile sets the "workload_profile" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableWorkloadProfile(v *int) *AttackUpdate {
	if v != nil {
		_u.SetWorkloadProfile(*v)
	}
	return _u
}

// AddWorkloadProfile adds value to the "workload_profile" field.
func (_u *AttackUpdate) AddWorkloadProfile(v int) *AttackUpdate {
	_u.mutation.AddWorkloadProfile(v)
	return _u
}

// SetOptimized sets the "optimized" field.
func (_u *AttackUpdate) SetOptimized(v bool) *AttackUpdate {
	_u.mutation.SetOptimized(v)
	return _u
}

// SetNillableOptimized sets the "optimized" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableOptimized(v *bool) *AttackUpdate {
	if v != nil {
		_u.SetOptimized(*v)
	}
	return _u
}

// SetDisableMarkov sets the "disable_markov" field.
func (_u *AttackUpdate) SetDisableMarkov(v bool) *AttackUpdate {
	_u.mutation.SetDisableMarkov(v)
	return _u
}

// SetNillableDisableMarkov sets the "disable_markov" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableDisableMarkov(v *bool) *AttackUpdate {
	if v != nil {
		_u.SetDisableMarkov(*v)
	}
	return _u
}

// SetClassicMarkov sets the "classic_markov" field.
func (_u *AttackUpdate) SetClassicMarkov(v bool) *AttackUpdate {
	_u.mutation.SetClassicMarkov(v)
	return _u
}

// SetNillableClassicMarkov sets the "classic_markov" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableClassicMarkov(v *bool) *AttackUpdate {
	if v != nil {
		_u.SetClassicMarkov(*v)
	}
	return _u
}

// SetMarkovThreshold sets the "markov_threshold" field.
func (_u *AttackUpdate) SetMarkovThreshold(v int) *AttackUpdate {
	_u.mutation.ResetMarkovThreshold()
	_u.mutation.SetMarkovThreshold(v)
	return _u
}

// SetNillableMarkovThreshold sets the "markov_threshold" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableMarkovThreshold(v *int) *AttackUpdate {
	if v != nil {
		_u.SetMarkovThreshold(*v)
	}
	return _u
}

// AddMarkovThreshold adds value to the "markov_threshold" field.
func (_u *AttackUpdate) AddMarkovThreshold(v int) *AttackUpdate {
	_u.mutation.AddMarkovThreshold(v)
	return _u
}

// SetSlowCandidateGenerators sets the "slow_candidate_generators" field.
func (_u *AttackUpdate) SetSlowCandidateGenerators(v bool) *AttackUpdate {
	_u.mutation.SetSlowCandidateGenerators(v)
	return _u
}

// SetNillableSlowCandidateGenerators sets the "slow_candidate_generators" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableSlowCandidateGenerators(v *bool) *AttackUpdate {
	if v != nil {
		_u.SetSlowCandidateGenerators(*v)
	}
	return _u
}

// SetLeftRule sets the "left_rule" field.
func (_u *AttackUpdate) SetLeftRule(v string) *AttackUpdate {
	_u.mutation.SetLeftRule(v)
	return _u
}

// SetNillableLeftRule sets the "left_rule" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableLeftRule(v *string) *AttackUpdate {
	if v != nil {
		_u.SetLeftRule(*v)
	}
	return _u
}

// ClearLeftRule clears the value of the "left_rule" field.
func (_u *AttackUpdate) ClearLeftRule() *AttackUpdate {
	_u.mutation.ClearLeftRule()
	return _u
}

// SetRightRule sets the "right_rule" field.
func (_u *AttackUpdate) SetRightRule(v string) *AttackUpdate {
	_u.mutation.SetRightRule(v)
	return _u
}

// SetNillableRightRule sets the "right_rule" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableRightRule(v *string) *AttackUpdate {
	if v != nil {
		_u.SetRightRule(*v)
	}
	return _u
}

// ClearRightRule clears the value of the "right_rule" field.
func (_u *AttackUpdate) ClearRightRule() *AttackUpdate {
	_u.mutation.ClearRightRule()
	return _u
}

// SetTotalKeyspace sets the "total_keyspace" field.
func (_u *AttackUpdate) SetTotalKeyspace(v int64) *AttackUpdate {
	_u.mutation.ResetTotalKeyspace()
	_u.mutation.SetTotalKeyspace(v)
	return _u
}

// SetNillableTotalKeyspace sets the "total_keyspace" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableTotalKeyspace(v *int64) *AttackUpdate {
	if v != nil {
		_u.SetTotalKeyspace(*v)
	}
	return _u
}

// AddTotalKeyspace adds value to the "total_keyspace" field.
func (_u *AttackUpdate) AddTotalKeyspace(v int64) *AttackUpdate {
	_u.mutation.AddTotalKeyspace(v)
	return _u
}

// ClearTotalKeyspace clears the value of the "total_keyspace" field.
func (_u *AttackUpdate) ClearTotalKeyspace() *AttackUpdate {
	_u.mutation.ClearTotalKeyspace()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AttackUpdate) SetStartTime(v time.Time) *AttackUpdate {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableStartTime(v *time.Time) *AttackUpdate {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *AttackUpdate) ClearStartTime() *AttackUpdate {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AttackUpdate) SetEndTime(v time.Time) *AttackUpdate {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AttackUpdate) SetNillableEndTime(v *time.Time) *AttackUpdate {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *AttackUpdate) ClearEndTime() *AttackUpdate {
	_u.mutation.ClearEndTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttackUpdate) SetUpdatedAt(v time.Time) *AttackUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWordListID sets the "word_list" edge to the Resource entity by ID.
func (_u *AttackUpdate) SetWordListID(id int64) *AttackUpdate {
	_u.mutation.SetWordListID(id)
	return _u
}

// SetNillableWordListID sets the "word_list" edge to the Resource entity by ID if the given value is not nil.
func (_u *AttackUpdate) SetNillableWordListID(id *int64) *AttackUpdate {
	if id != nil {
		_u = _u.SetWordListID(*id)
	}
	return _u
}

// SetWordList sets the "word_list" edge to the Resource entity.
func (_u *AttackUpdate) SetWordList(v *Resource) *AttackUpdate {
	return _u.SetWordListID(v.ID)
}

// SetRuleListID sets the "rule_list" edge to the Resource entity by ID.
func (_u *AttackUpdate) SetRuleListID(id int64) *AttackUpdate {
	_u.mutation.SetRuleListID(id)
	return _u
}

// SetNillableRuleListID sets the "rule_list" edge to the Resource entity by ID if the given value is not nil.
func (_u *AttackUpdate) SetNillableRuleListID(id *int64) *AttackUpdate {
	if id != nil {
		_u = _u.SetRuleListID(*id)
	}
	return _u
}

// SetRuleList sets the "rule_list" edge to the Resource entity.
func (_u *AttackUpdate) SetRuleList(v *Resource) *AttackUpdate {
	return _u.SetRuleListID(v.ID)
}

// SetMaskListID sets the "mask_list" edge to the Resource entity by ID.
func (_u *AttackUpdate) SetMaskListID(id int64) *AttackUpdate {
	_u.mutation.SetMaskListID(id)
	return _u
}

// SetNillableMaskListID sets the "mask_list" edge to the Resource entity by ID if the given value is not nil.
func (_u *AttackUpdate) SetNillableMaskListID(id *int64) *AttackUpdate {
	if id != nil {
		_u = _u.SetMaskListID(*id)
	}
	return _u
}

// SetMaskList sets the "mask_list" edge to the Resource entity.
func (_u *AttackUpdate) SetMaskList(v *Resource) *AttackUpdate {
	return _u.SetMaskListID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *AttackUpdate) AddTaskIDs(ids ...int64) *AttackUpdate {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *AttackUpdate) AddTasks(v ...*Task) *AttackUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the AttackMutation object of the builder.
func (_u *AttackUpdate) Mutation() *AttackMutation {
	return _u.mutation
}

// ClearWordList clears the "word_list" edge to the Resource entity.
func (_u *AttackUpdate) ClearWordList() *AttackUpdate {
	_u.mutation.ClearWordList()
	return _u
}

// ClearRuleList clears the "rule_list" edge to the Resource entity.
func (_u *AttackUpdate) ClearRuleList() *AttackUpdate {
	_u.mutation.ClearRuleList()
	return _u
}

// ClearMaskList clears the "mask_list" edge to the Resource entity.
func (_u *AttackUpdate) ClearMaskList() *AttackUpdate {
	_u.mutation.ClearMaskList()
	return _u
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *AttackUpdate) ClearTasks() *AttackUpdate {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *AttackUpdate) RemoveTaskIDs(ids ...int64) *AttackUpdate {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *AttackUpdate) RemoveTasks(v ...*Task) *AttackUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AttackUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttackUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AttackUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttackUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttackUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attack.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttackUpdate) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := attack.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Attack.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttackMode(); ok {
		if err := attack.AttackModeValidator(v); err != nil {
			return &ValidationError{Name: "attack_mode", err: fmt.Errorf(`ent: validator failed for field "Attack.attack_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := attack.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Attack.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncrementMaximum(); ok {
		if err := attack.IncrementMaximumValidator(v); err != nil {
			return &ValidationError{Name: "increment_maximum", err: fmt.Errorf(`ent: validator failed for field "Attack.increment_maximum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkloadProfile(); ok {
		if err := attack.WorkloadProfileValidator(v); err != nil {
			return &ValidationError{Name: "workload_profile", err: fmt.Errorf(`ent: validator failed for field "Attack.workload_profile": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attack.campaign"`)
	}
	return nil
}

func (_u *AttackUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attack.Table, attack.Columns, sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt64))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(attack.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(attack.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttackMode(); ok {
		_spec.SetField(attack.FieldAttackMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(attack.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mask(); ok {
		_spec.SetField(attack.FieldMask, field.TypeString, value)
	}
	if _u.mutation.MaskCleared() {
		_spec.ClearField(attack.FieldMask, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset1(); ok {
		_spec.SetField(attack.FieldCustomCharset1, field.TypeString, value)
	}
	if _u.mutation.CustomCharset1Cleared() {
		_spec.ClearField(attack.FieldCustomCharset1, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset2(); ok {
		_spec.SetField(attack.FieldCustomCharset2, field.TypeString, value)
	}
	if _u.mutation.CustomCharset2Cleared() {
		_spec.ClearField(attack.FieldCustomCharset2, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset3(); ok {
		_spec.SetField(attack.FieldCustomCharset3, field.TypeString, value)
	}
	if _u.mutation.CustomCharset3Cleared() {
		_spec.ClearField(attack.FieldCustomCharset3, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset4(); ok {
		_spec.SetField(attack.FieldCustomCharset4, field.TypeString, value)
	}
	if _u.mutation.CustomCharset4Cleared() {
		_spec.ClearField(attack.FieldCustomCharset4, field.TypeString)
	}
	if value, ok := _u.mutation.IncrementMode(); ok {
		_spec.SetField(attack.FieldIncrementMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IncrementMinimum(); ok {
		_spec.SetField(attack.FieldIncrementMinimum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncrementMinimum(); ok {
		_spec.AddField(attack.FieldIncrementMinimum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncrementMaximum(); ok {
		_spec.SetField(attack.FieldIncrementMaximum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncrementMaximum(); ok {
		_spec.AddField(attack.FieldIncrementMaximum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkloadProfile(); ok {
		_spec.SetField(attack.FieldWorkloadProfile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkloadProfile(); ok {
		_spec.AddField(attack.FieldWorkloadProfile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Optimized(); ok {
		_spec.SetField(attack.FieldOptimized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisableMarkov(); ok {
		_spec.SetField(attack.FieldDisableMarkov, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClassicMarkov(); ok {
		_spec.SetField(attack.FieldClassicMarkov, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarkovThreshold(); ok {
		_spec.SetField(attack.FieldMarkovThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarkovThreshold(); ok {
		_spec.AddField(attack.FieldMarkovThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlowCandidateGenerators(); ok {
		_spec.SetField(attack.FieldSlowCandidateGenerators, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LeftRule(); ok {
		_spec.SetField(attack.FieldLeftRule, field.TypeString, value)
	}
	if _u.mutation.LeftRuleCleared() {
		_spec.ClearField(attack.FieldLeftRule, field.TypeString)
	}
	if value, ok := _u.mutation.RightRule(); ok {
		_spec.SetField(attack.FieldRightRule, field.TypeString, value)
	}
	if _u.mutation.RightRuleCleared() {
		_spec.ClearField(attack.FieldRightRule, field.TypeString)
	}
	if value, ok := _u.mutation.TotalKeyspace(); ok {
		_spec.SetField(attack.FieldTotalKeyspace, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalKeyspace(); ok {
		_spec.AddField(attack.FieldTotalKeyspace, field.TypeInt64, value)
	}
	if _u.mutation.TotalKeyspaceCleared() {
		_spec.ClearField(attack.FieldTotalKeyspace, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(attack.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(attack.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(attack.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(attack.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attack.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WordListCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordListIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleListCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleListIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaskListCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaskListIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AttackUpdateOne is the builder for updating a single Attack entity.
type AttackUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AttackMutation
}

// SetPosition sets the "position" field.
func (_u *AttackUpdateOne) SetPosition(v int) *AttackUpdateOne {
	_u.mutation.ResetPosition()
	_u.mutation.SetPosition(v)
	return _u
}

// SetNillablePosition sets the "position" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillablePosition(v *int) *AttackUpdateOne {
	if v != nil {
		_u.SetPosition(*v)
	}
	return _u
}

// AddPosition adds value to the "position" field.
func (_u *AttackUpdateOne) AddPosition(v int) *AttackUpdateOne {
	_u.mutation.AddPosition(v)
	return _u
}

// SetAttackMode sets the "attack_mode" field.
func (_u *AttackUpdateOne) SetAttackMode(v attack.AttackMode) *AttackUpdateOne {
	_u.mutation.SetAttackMode(v)
	return _u
}

// SetNillableAttackMode sets the "attack_mode" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableAttackMode(v *attack.AttackMode) *AttackUpdateOne {
	if v != nil {
		_u.SetAttackMode(*v)
	}
	return _u
}

// SetState sets the "state" field.
func (_u *AttackUpdateOne) SetState(v attack.State) *AttackUpdateOne {
	_u.mutation.SetState(v)
	return _u
}

// SetNillableState sets the "state" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableState(v *attack.State) *AttackUpdateOne {
	if v != nil {
		_u.SetState(*v)
	}
	return _u
}

// SetMask sets the "mask" field.
func (_u *AttackUpdateOne) SetMask(v string) *AttackUpdateOne {
	_u.mutation.SetMask(v)
	return _u
}

// SetNillableMask sets the "mask" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableMask(v *string) *AttackUpdateOne {
	if v != nil {
		_u.SetMask(*v)
	}
	return _u
}

// ClearMask clears the value of the "mask" field.
func (_u *AttackUpdateOne) ClearMask() *AttackUpdateOne {
	_u.mutation.ClearMask()
	return _u
}

// SetCustomCharset1 sets the "custom_charset_1" field.
func (_u *AttackUpdateOne) SetCustomCharset1(v string) *AttackUpdateOne {
	_u.mutation.SetCustomCharset1(v)
	return _u
}

// SetNillableCustomCharset1 sets the "custom_charset_1" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableCustomCharset1(v *string) *AttackUpdateOne {
	if v != nil {
		_u.SetCustomCharset1(*v)
	}
	return _u
}

// ClearCustomCharset1 clears the value of the "custom_charset_1" field.
func (_u *AttackUpdateOne) ClearCustomCharset1() *AttackUpdateOne {
	_u.mutation.ClearCustomCharset1()
	return _u
}

// SetCustomCharset2 sets the "custom_charset_2" field.
func (_u *AttackUpdateOne) SetCustomCharset2(v string) *AttackUpdateOne {
	_u.mutation.SetCustomCharset2(v)
	return _u
}

// SetNillableCustomCharset2 sets the "custom_charset_2" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableCustomCharset2(v *string) *AttackUpdateOne {
	if v != nil {
		_u.SetCustomCharset2(*v)
	}
	return _u
}

// ClearCustomCharset2 clears the value of the "custom_charset_2" field.
func (_u *AttackUpdateOne) ClearCustomCharset2() *AttackUpdateOne {
	_u.mutation.ClearCustomCharset2()
	return _u
}

// SetCustomCharset3 sets the "custom_charset_3" field.
func (_u *AttackUpdateOne) SetCustomCharset3(v string) *AttackUpdateOne {
	_u.mutation.SetCustomCharset3(v)
	return _u
}

// SetNillableCustomCharset3 sets the "custom_charset_3" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableCustomCharset3(v *string) *AttackUpdateOne {
	if v != nil {
		_u.SetCustomCharset3(*v)
	}
	return _u
}

// ClearCustomCharset3 clears the value of the "custom_charset_3" field.
func (_u *AttackUpdateOne) ClearCustomCharset3() *AttackUpdateOne {
	_u.mutation.ClearCustomCharset3()
	return _u
}

// SetCustomCharset4 sets the "custom_charset_4" field.
func (_u *AttackUpdateOne) SetCustomCharset4(v string) *AttackUpdateOne {
	_u.mutation.SetCustomCharset4(v)
	return _u
}

// SetNillableCustomCharset4 sets the "custom_charset_4" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableCustomCharset4(v *string) *AttackUpdateOne {
	if v != nil {
		_u.SetCustomCharset4(*v)
	}
	return _u
}

// ClearCustomCharset4 clears the value of the "custom_charset_4" field.
func (_u *AttackUpdateOne) ClearCustomCharset4() *AttackUpdateOne {
	_u.mutation.ClearCustomCharset4()
	return _u
}

// SetIncrementMode sets the "increment_mode" field.
func (_u *AttackUpdateOne) SetIncrementMode(v bool) *AttackUpdateOne {
	_u.mutation.SetIncrementMode(v)
	return _u
}

// SetNillableIncrementMode sets the "increment_mode" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableIncrementMode(v *bool) *AttackUpdateOne {
	if v != nil {
		_u.SetIncrementMode(*v)
	}
	return _u
}

// SetIncrementMinimum sets the "increment_minimum" field.
func (_u *AttackUpdateOne) SetIncrementMinimum(v int) *AttackUpdateOne {
	_u.mutation.ResetIncrementMinimum()
	_u.mutation.SetIncrementMinimum(v)
	return _u
}

// SetNillableIncrementMinimum sets the "increment_minimum" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableIncrementMinimum(v *int) *AttackUpdateOne {
	if v != nil {
		_u.SetIncrementMinimum(*v)
	}
	return _u
}

// AddIncrementMinimum adds value to the "increment_minimum" field.
func (_u *AttackUpdateOne) AddIncrementMinimum(v int) *AttackUpdateOne {
	_u.mutation.AddIncrementMinimum(v)
	return _u
}

// SetIncrementMaximum sets the "increment_maximum" field.
func (_u *AttackUpdateOne) SetIncrementMaximum(v int) *AttackUpdateOne {
	_u.mutation.ResetIncrementMaximum()
	_u.mutation.SetIncrementMaximum(v)
	return _u
}

// SetNillableIncrementMaximum sets the "increment_maximum" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableIncrementMaximum(v *int) *AttackUpdateOne {
	if v != nil {
		_u.SetIncrementMaximum(*v)
	}
	return _u
}

// AddIncrementMaximum adds value to the "increment_maximum" field.
func (_u *AttackUpdateOne) AddIncrementMaximum(v int) *AttackUpdateOne {
	_u.mutation.AddIncrementMaximum(v)
	return _u
}

// SetWorkloadProfile sets the "workload_profile" field.
func (_u *AttackUpdateOne) SetWorkloadProfile(v int) *AttackUpdateOne {
	_u.mutation.ResetWorkloadProfile()
	_u.mutation.SetWorkloadProfile(v)
	return _u
}

// SetNillableWorkloadProfile sets the "workload_profile" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableWorkloadProfile(v *int) *AttackUpdateOne {
	if v != nil {
		_u.SetWorkloadProfile(*v)
	}
	return _u
}

// AddWorkloadProfile adds value to the "workload_profile" field.
func (_u *AttackUpdateOne) AddWorkloadProfile(v int) *AttackUpdateOne {
	_u.mutation.AddWorkloadProfile(v)
	return _u
}

// SetOptimized sets the "optimized" field.
func (_u *AttackUpdateOne) SetOptimized(v bool) *AttackUpdateOne {
	_u.mutation.SetOptimized(v)
	return _u
}

// SetNillableOptimized sets the "optimized" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableOptimized(v *bool) *AttackUpdateOne {
	if v != nil {
		_u.SetOptimized(*v)
	}
	return _u
}

// SetDisableMarkov sets the "disable_markov" field.
func (_u *AttackUpdateOne) SetDisableMarkov(v bool) *AttackUpdateOne {
	_u.mutation.SetDisableMarkov(v)
	return _u
}

// SetNillableDisableMarkov sets the "disable_markov" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableDisableMarkov(v *bool) *AttackUpdateOne {
	if v != nil {
		_u.SetDisableMarkov(*v)
	}
	return _u
}

// SetClassicMarkov sets the "classic_markov" field.
func (_u *AttackUpdateOne) SetClassicMarkov(v bool) *AttackUpdateOne {
	_u.mutation.SetClassicMarkov(v)
	return _u
}

// SetNillableClassicMarkov sets the "classic_markov" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableClassicMarkov(v *bool) *AttackUpdateOne {
	if v != nil {
		_u.SetClassicMarkov(*v)
	}
	return _u
}

// SetMarkovThreshold sets the "markov_threshold" field.
func (_u *AttackUpdateOne) SetMarkovThreshold(v int) *AttackUpdateOne {
	_u.mutation.ResetMarkovThreshold()
	_u.mutation.SetMarkovThreshold(v)
	return _u
}

// SetNillableMarkovThreshold sets the "markov_threshold" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableMarkovThreshold(v *int) *AttackUpdateOne {
	if v != nil {
		_u.SetMarkovThreshold(*v)
	}
	return _u
}

// AddMarkovThreshold adds value to the "markov_threshold" field.
func (_u *AttackUpdateOne) AddMarkovThreshold(v int) *AttackUpdateOne {
	_u.mutation.AddMarkovThreshold(v)
	return _u
}

// SetSlowCandidateGenerators sets the "slow_candidate_generators" field.
func (_u *AttackUpdateOne) SetSlowCandidateGenerators(v bool) *AttackUpdateOne {
	_u.mutation.SetSlowCandidateGenerators(v)
	return _u
}

// SetNillableSlowCandidateGenerators sets the "slow_candidate_generators" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableSlowCandidateGenerators(v *bool) *AttackUpdateOne {
	if v != nil {
		_u.SetSlowCandidateGenerators(*v)
	}
	return _u
}

// SetLeftRule sets the "left_rule" field.
func (_u *AttackUpdateOne) SetLeftRule(v string) *AttackUpdateOne {
	_u.mutation.SetLeftRule(v)
	return _u
}

// SetNillableLeftRule sets the "left_rule" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableLeftRule(v *string) *AttackUpdateOne {
	if v != nil {
		_u.SetLeftRule(*v)
	}
	return _u
}

// ClearLeftRule clears the value of the "left_rule" field.
func (_u *AttackUpdateOne) ClearLeftRule() *AttackUpdateOne {
	_u.mutation.ClearLeftRule()
	return _u
}

// SetRightRule sets the "right_rule" field.
func (_u *AttackUpdateOne) SetRightRule(v string) *AttackUpdateOne {
	_u.mutation.SetRightRule(v)
	return _u
}

// SetNillableRightRule sets the "right_rule" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableRightRule(v *string) *AttackUpdateOne {
	if v != nil {
		_u.SetRightRule(*v)
	}
	return _u
}

// ClearRightRule clears the value of the "right_rule" field.
func (_u *AttackUpdateOne) ClearRightRule() *AttackUpdateOne {
	_u.mutation.ClearRightRule()
	return _u
}

// SetTotalKeyspace sets the "total_keyspace" field.
func (_u *AttackUpdateOne) SetTotalKeyspace(v int64) *AttackUpdateOne {
	_u.mutation.ResetTotalKeyspace()
	_u.mutation.SetTotalKeyspace(v)
	return _u
}

// SetNillableTotalKeyspace sets the "total_keyspace" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableTotalKeyspace(v *int64) *AttackUpdateOne {
	if v != nil {
		_u.SetTotalKeyspace(*v)
	}
	return _u
}

// AddTotalKeyspace adds value to the "total_keyspace" field.
func (_u *AttackUpdateOne) AddTotalKeyspace(v int64) *AttackUpdateOne {
	_u.mutation.AddTotalKeyspace(v)
	return _u
}

// ClearTotalKeyspace clears the value of the "total_keyspace" field.
func (_u *AttackUpdateOne) ClearTotalKeyspace() *AttackUpdateOne {
	_u.mutation.ClearTotalKeyspace()
	return _u
}

// SetStartTime sets the "start_time" field.
func (_u *AttackUpdateOne) SetStartTime(v time.Time) *AttackUpdateOne {
	_u.mutation.SetStartTime(v)
	return _u
}

// SetNillableStartTime sets the "start_time" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableStartTime(v *time.Time) *AttackUpdateOne {
	if v != nil {
		_u.SetStartTime(*v)
	}
	return _u
}

// ClearStartTime clears the value of the "start_time" field.
func (_u *AttackUpdateOne) ClearStartTime() *AttackUpdateOne {
	_u.mutation.ClearStartTime()
	return _u
}

// SetEndTime sets the "end_time" field.
func (_u *AttackUpdateOne) SetEndTime(v time.Time) *AttackUpdateOne {
	_u.mutation.SetEndTime(v)
	return _u
}

// SetNillableEndTime sets the "end_time" field if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableEndTime(v *time.Time) *AttackUpdateOne {
	if v != nil {
		_u.SetEndTime(*v)
	}
	return _u
}

// ClearEndTime clears the value of the "end_time" field.
func (_u *AttackUpdateOne) ClearEndTime() *AttackUpdateOne {
	_u.mutation.ClearEndTime()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *AttackUpdateOne) SetUpdatedAt(v time.Time) *AttackUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// SetWordListID sets the "word_list" edge to the Resource entity by ID.
func (_u *AttackUpdateOne) SetWordListID(id int64) *AttackUpdateOne {
	_u.mutation.SetWordListID(id)
	return _u
}

// SetNillableWordListID sets the "word_list" edge to the Resource entity by ID if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableWordListID(id *int64) *AttackUpdateOne {
	if id != nil {
		_u = _u.SetWordListID(*id)
	}
	return _u
}

// SetWordList sets the "word_list" edge to the Resource entity.
func (_u *AttackUpdateOne) SetWordList(v *Resource) *AttackUpdateOne {
	return _u.SetWordListID(v.ID)
}

// SetRuleListID sets the "rule_list" edge to the Resource entity by ID.
func (_u *AttackUpdateOne) SetRuleListID(id int64) *AttackUpdateOne {
	_u.mutation.SetRuleListID(id)
	return _u
}

// SetNillableRuleListID sets the "rule_list" edge to the Resource entity by ID if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableRuleListID(id *int64) *AttackUpdateOne {
	if id != nil {
		_u = _u.SetRuleListID(*id)
	}
	return _u
}

// SetRuleList sets the "rule_list" edge to the Resource entity.
func (_u *AttackUpdateOne) SetRuleList(v *Resource) *AttackUpdateOne {
	return _u.SetRuleListID(v.ID)
}

// SetMaskListID sets the "mask_list" edge to the Resource entity by ID.
func (_u *AttackUpdateOne) SetMaskListID(id int64) *AttackUpdateOne {
	_u.mutation.SetMaskListID(id)
	return _u
}

// SetNillableMaskListID sets the "mask_list" edge to the Resource entity by ID if the given value is not nil.
func (_u *AttackUpdateOne) SetNillableMaskListID(id *int64) *AttackUpdateOne {
	if id != nil {
		_u = _u.SetMaskListID(*id)
	}
	return _u
}

// SetMaskList sets the "mask_list" edge to the Resource entity.
func (_u *AttackUpdateOne) SetMaskList(v *Resource) *AttackUpdateOne {
	return _u.SetMaskListID(v.ID)
}

// AddTaskIDs adds the "tasks" edge to the Task entity by IDs.
func (_u *AttackUpdateOne) AddTaskIDs(ids ...int64) *AttackUpdateOne {
	_u.mutation.AddTaskIDs(ids...)
	return _u
}

// AddTasks adds the "tasks" edges to the Task entity.
func (_u *AttackUpdateOne) AddTasks(v ...*Task) *AttackUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddTaskIDs(ids...)
}

// Mutation returns the AttackMutation object of the builder.
func (_u *AttackUpdateOne) Mutation() *AttackMutation {
	return _u.mutation
}

// ClearWordList clears the "word_list" edge to the Resource entity.
func (_u *AttackUpdateOne) ClearWordList() *AttackUpdateOne {
	_u.mutation.ClearWordList()
	return _u
}

// ClearRuleList clears the "rule_list" edge to the Resource entity.
func (_u *AttackUpdateOne) ClearRuleList() *AttackUpdateOne {
	_u.mutation.ClearRuleList()
	return _u
}

// ClearMaskList clears the "mask_list" edge to the Resource entity.
func (_u *AttackUpdateOne) ClearMaskList() *AttackUpdateOne {
	_u.mutation.ClearMaskList()
	return _u
}

// ClearTasks clears all "tasks" edges to the Task entity.
func (_u *AttackUpdateOne) ClearTasks() *AttackUpdateOne {
	_u.mutation.ClearTasks()
	return _u
}

// RemoveTaskIDs removes the "tasks" edge to Task entities by IDs.
func (_u *AttackUpdateOne) RemoveTaskIDs(ids ...int64) *AttackUpdateOne {
	_u.mutation.RemoveTaskIDs(ids...)
	return _u
}

// RemoveTasks removes "tasks" edges to Task entities.
func (_u *AttackUpdateOne) RemoveTasks(v ...*Task) *AttackUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveTaskIDs(ids...)
}

// Where appends a list predicates to the AttackUpdate builder.
func (_u *AttackUpdateOne) Where(ps ...predicate.Attack) *AttackUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AttackUpdateOne) Select(field string, fields ...string) *AttackUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Attack entity.
func (_u *AttackUpdateOne) Save(ctx context.Context) (*Attack, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AttackUpdateOne) SaveX(ctx context.Context) *Attack {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AttackUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AttackUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *AttackUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := attack.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AttackUpdateOne) check() error {
	if v, ok := _u.mutation.Position(); ok {
		if err := attack.PositionValidator(v); err != nil {
			return &ValidationError{Name: "position", err: fmt.Errorf(`ent: validator failed for field "Attack.position": %w`, err)}
		}
	}
	if v, ok := _u.mutation.AttackMode(); ok {
		if err := attack.AttackModeValidator(v); err != nil {
			return &ValidationError{Name: "attack_mode", err: fmt.Errorf(`ent: validator failed for field "Attack.attack_mode": %w`, err)}
		}
	}
	if v, ok := _u.mutation.State(); ok {
		if err := attack.StateValidator(v); err != nil {
			return &ValidationError{Name: "state", err: fmt.Errorf(`ent: validator failed for field "Attack.state": %w`, err)}
		}
	}
	if v, ok := _u.mutation.IncrementMaximum(); ok {
		if err := attack.IncrementMaximumValidator(v); err != nil {
			return &ValidationError{Name: "increment_maximum", err: fmt.Errorf(`ent: validator failed for field "Attack.increment_maximum": %w`, err)}
		}
	}
	if v, ok := _u.mutation.WorkloadProfile(); ok {
		if err := attack.WorkloadProfileValidator(v); err != nil {
			return &ValidationError{Name: "workload_profile", err: fmt.Errorf(`ent: validator failed for field "Attack.workload_profile": %w`, err)}
		}
	}
	if _u.mutation.CampaignCleared() && len(_u.mutation.CampaignIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Attack.campaign"`)
	}
	return nil
}

func (_u *AttackUpdateOne) sqlSave(ctx context.Context) (_node *Attack, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(attack.Table, attack.Columns, sqlgraph.NewFieldSpec(attack.FieldID, field.TypeInt64))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Attack.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, attack.FieldID)
		for _, f := range fields {
			if !attack.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != attack.FieldID {
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
	if value, ok := _u.mutation.Position(); ok {
		_spec.SetField(attack.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPosition(); ok {
		_spec.AddField(attack.FieldPosition, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AttackMode(); ok {
		_spec.SetField(attack.FieldAttackMode, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.State(); ok {
		_spec.SetField(attack.FieldState, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Mask(); ok {
		_spec.SetField(attack.FieldMask, field.TypeString, value)
	}
	if _u.mutation.MaskCleared() {
		_spec.ClearField(attack.FieldMask, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset1(); ok {
		_spec.SetField(attack.FieldCustomCharset1, field.TypeString, value)
	}
	if _u.mutation.CustomCharset1Cleared() {
		_spec.ClearField(attack.FieldCustomCharset1, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset2(); ok {
		_spec.SetField(attack.FieldCustomCharset2, field.TypeString, value)
	}
	if _u.mutation.CustomCharset2Cleared() {
		_spec.ClearField(attack.FieldCustomCharset2, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset3(); ok {
		_spec.SetField(attack.FieldCustomCharset3, field.TypeString, value)
	}
	if _u.mutation.CustomCharset3Cleared() {
		_spec.ClearField(attack.FieldCustomCharset3, field.TypeString)
	}
	if value, ok := _u.mutation.CustomCharset4(); ok {
		_spec.SetField(attack.FieldCustomCharset4, field.TypeString, value)
	}
	if _u.mutation.CustomCharset4Cleared() {
		_spec.ClearField(attack.FieldCustomCharset4, field.TypeString)
	}
	if value, ok := _u.mutation.IncrementMode(); ok {
		_spec.SetField(attack.FieldIncrementMode, field.TypeBool, value)
	}
	if value, ok := _u.mutation.IncrementMinimum(); ok {
		_spec.SetField(attack.FieldIncrementMinimum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncrementMinimum(); ok {
		_spec.AddField(attack.FieldIncrementMinimum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IncrementMaximum(); ok {
		_spec.SetField(attack.FieldIncrementMaximum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedIncrementMaximum(); ok {
		_spec.AddField(attack.FieldIncrementMaximum, field.TypeInt, value)
	}
	if value, ok := _u.mutation.WorkloadProfile(); ok {
		_spec.SetField(attack.FieldWorkloadProfile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedWorkloadProfile(); ok {
		_spec.AddField(attack.FieldWorkloadProfile, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Optimized(); ok {
		_spec.SetField(attack.FieldOptimized, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DisableMarkov(); ok {
		_spec.SetField(attack.FieldDisableMarkov, field.TypeBool, value)
	}
	if value, ok := _u.mutation.ClassicMarkov(); ok {
		_spec.SetField(attack.FieldClassicMarkov, field.TypeBool, value)
	}
	if value, ok := _u.mutation.MarkovThreshold(); ok {
		_spec.SetField(attack.FieldMarkovThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMarkovThreshold(); ok {
		_spec.AddField(attack.FieldMarkovThreshold, field.TypeInt, value)
	}
	if value, ok := _u.mutation.SlowCandidateGenerators(); ok {
		_spec.SetField(attack.FieldSlowCandidateGenerators, field.TypeBool, value)
	}
	if value, ok := _u.mutation.LeftRule(); ok {
		_spec.SetField(attack.FieldLeftRule, field.TypeString, value)
	}
	if _u.mutation.LeftRuleCleared() {
		_spec.ClearField(attack.FieldLeftRule, field.TypeString)
	}
	if value, ok := _u.mutation.RightRule(); ok {
		_spec.SetField(attack.FieldRightRule, field.TypeString, value)
	}
	if _u.mutation.RightRuleCleared() {
		_spec.ClearField(attack.FieldRightRule, field.TypeString)
	}
	if value, ok := _u.mutation.TotalKeyspace(); ok {
		_spec.SetField(attack.FieldTotalKeyspace, field.TypeInt64, value)
	}
	if value, ok := _u.mutation.AddedTotalKeyspace(); ok {
		_spec.AddField(attack.FieldTotalKeyspace, field.TypeInt64, value)
	}
	if _u.mutation.TotalKeyspaceCleared() {
		_spec.ClearField(attack.FieldTotalKeyspace, field.TypeInt64)
	}
	if value, ok := _u.mutation.StartTime(); ok {
		_spec.SetField(attack.FieldStartTime, field.TypeTime, value)
	}
	if _u.mutation.StartTimeCleared() {
		_spec.ClearField(attack.FieldStartTime, field.TypeTime)
	}
	if value, ok := _u.mutation.EndTime(); ok {
		_spec.SetField(attack.FieldEndTime, field.TypeTime, value)
	}
	if _u.mutation.EndTimeCleared() {
		_spec.ClearField(attack.FieldEndTime, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(attack.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.WordListCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.WordListIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.RuleListCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RuleListIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.MaskListCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MaskListIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedTasksIDs(); len(nodes) > 0 && !_u.mutation.TasksCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.TasksIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Attack{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{attack.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
