// Code generated by ent, DO NOT EDIT.

package attack

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the attack type in the database.
	Label = "attack"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldPosition holds the string denoting the position field in the database.
	FieldPosition = "position"
	// FieldAttackMode holds the string denoting the attack_mode field in the database.
	FieldAttackMode = "attack_mode"
	// FieldState holds the string denoting the state field in the database.
	FieldState = "state"
	// FieldMask holds the string denoting the mask field in the database.
	FieldMask = "mask"
	// FieldCustomCharset1 holds the string denoting the custom_charset_1 field in the database.
	FieldCustomCharset1 = "custom_charset_1"
	// FieldCustomCharset2 holds the string denoting the custom_charset_2 field in the database.
	FieldCustomCharset2 = "custom_charset_2"
	// FieldCustomCharset3 holds the string denoting the custom_charset_3 field in the database.
	FieldCustomCharset3 = "custom_charset_3"
	// FieldCustomCharset4 holds the string denoting the custom_charset_4 field in the database.
	FieldCustomCharset4 = "custom_charset_4"
	// FieldIncrementMode holds the string denoting the increment_mode field in the database.
	FieldIncrementMode = "increment_mode"
	// FieldIncrementMinimum holds the string denoting the increment_minimum field in the database.
	FieldIncrementMinimum = "increment_minimum"
	// FieldIncrementMaximum holds the string denoting the increment_maximum field in the database.
	FieldIncrementMaximum = "increment_maximum"
	// FieldWorkloadProfile holds the string denoting the workload_profile field in the database.
	FieldWorkloadProfile = "workload_profile"
	// FieldOptimized holds the string denoting the optimized field in the database.
	FieldOptimized = "optimized"
	// FieldDisableMarkov holds the string denoting the disable_markov field in the database.
	FieldDisableMarkov = "disable_markov"
	// FieldClassicMarkov holds the string denoting the classic_markov field in the database.
	FieldClassicMarkov = "classic_markov"
	// FieldMarkovThreshold holds the string denoting the markov_threshold field in the database.
	FieldMarkovThreshold = "markov_threshold"
	// FieldSlowCandidateGenerators holds the string denoting the slow_candidate_generators field in the database.
	FieldSlowCandidateGenerators = "slow_candidate_generators"
	// FieldLeftRule holds the string denoting the left_rule field in the database.
	FieldLeftRule = "left_rule"
	// FieldRightRule holds the string denoting the right_rule field in the database.
	FieldRightRule = "right_rule"
	// FieldTotalKeyspace holds the string denoting the total_keyspace field in the database.
	FieldTotalKeyspace = "total_keyspace"
	// FieldStartTime holds the string denoting the start_time field in the database.
	FieldStartTime = "start_time"
	// FieldEndTime holds the string denoting the end_time field in the database.
	FieldEndTime = "end_time"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeCampaign holds the string denoting the campaign edge name in mutations.
	EdgeCampaign = "campaign"
	// EdgeWordList holds the string denoting the word_list edge name in mutations.
	EdgeWordList = "word_list"
	// EdgeRuleList holds the string denoting the rule_list edge name in mutations.
	EdgeRuleList = "rule_list"
	// EdgeMaskList holds the string denoting the mask_list edge name in mutations.
	EdgeMaskList = "mask_list"
	// EdgeTasks holds the string denoting the tasks edge name in mutations.
	EdgeTasks = "tasks"
	// Table holds the table name of the attack in the database.
	Table = "attacks"
	// CampaignTable is the table that holds the campaign relation/edge.
	CampaignTable = "attacks"
	// CampaignInverseTable is the table name for the Campaign entity.
	// It exists in this package in order to avoid circular dependency with the "campaign" package.
	CampaignInverseTable = "campaigns"
	// CampaignColumn is the table column denoting the campaign relation/edge.
	CampaignColumn = "campaign_id"
	// WordListTable is the table that holds the word_list relation/edge.
	WordListTable = "attacks"
	// WordListInverseTable is the table name for the Resource entity.
	// It exists in this package in order to avoid circular dependency with the "resource" package.
	WordListInverseTable = "resources"
	// WordListColumn is the table column denoting the word_list relation/edge.
	WordListColumn = "word_list_id"
	// RuleListTable is the table that holds the rule_list relation/edge.
	RuleListTable = "attacks"
	// RuleListInverseTable is the table name for the Resource entity.
	// It exists in this package in order to avoid circular dependency with the "resource" package.
	RuleListInverseTable = "resources"
	// RuleListColumn is the table column denoting the rule_list relation/edge.
	RuleListColumn = "rule_list_id"
	// MaskListTable is the table that holds the mask_list relation/edge.
	MaskListTable = "attacks"
	// MaskListInverseTable is the table name for the Resource entity.
	// It exists in this package in order to avoid circular dependency with the "resource" package.
	MaskListInverseTable = "resources"
	// MaskListColumn is the table column denoting the mask_list relation/edge.
	MaskListColumn = "mask_list_id"
	// TasksTable is the table that holds the tasks relation/edge.
	TasksTable = "tasks"
	// TasksInverseTable is the table name for the Task entity.
	// It exists in this package in order to avoid circular dependency with the "task" package.
	TasksInverseTable = "tasks"
	// TasksColumn is the table column denoting the tasks relation/edge.
	TasksColumn = "attack_id"
)

// Columns holds all SQL columns for attack fields.
var Columns = []string{
	FieldID,
	FieldPosition,
	FieldAttackMode,
	FieldState,
	FieldMask,
	FieldCustomCharset1,
	FieldCustomCharset2,
	FieldCustomCharset3,
	FieldCustomCharset4,
	FieldIncrementMode,
	FieldIncrementMinimum,
	FieldIncrementMaximum,
	FieldWorkloadProfile,
	FieldOptimized,
	FieldDisableMarkov,
	FieldClassicMarkov,
	FieldMarkovThreshold,
	FieldSlowCandidateGenerators,
	FieldLeftRule,
	FieldRightRule,
	FieldTotalKeyspace,
	FieldStartTime,
	FieldEndTime,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "attacks"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"word_list_id",
	"rule_list_id",
	"mask_list_id",
	"campaign_id",
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	for i := range ForeignKeys {
		if column == ForeignKeys[i] {
			return true
		}
	}
	return false
}

var (
	// PositionValidator is a validator for the "position" field. It is called by the builders before save.
	PositionValidator func(int) error
	// DefaultMask holds the default value on creation for the "mask" field.
	DefaultMask string
	// DefaultCustomCharset1 holds the default value on creation for the "custom_charset_1" field.
	DefaultCustomCharset1 string
	// DefaultCustomCharset2 holds the default value on creation for the "custom_charset_2" field.
	DefaultCustomCharset2 string
	// DefaultCustomCharset3 holds the default value on creation for the "custom_charset_3" field.
	DefaultCustomCharset3 string
	// DefaultCustomCharset4 holds the default value on creation for the "custom_charset_4" field.
	DefaultCustomCharset4 string
	// DefaultIncrementMode holds the default value on creation for the "increment_mode" field.
	DefaultIncrementMode bool
	// DefaultIncrementMinimum holds the default value on creation for the "increment_minimum" field.
	DefaultIncrementMinimum int
	// DefaultIncrementMaximum holds the default value on creation for the "increment_maximum" field.
	DefaultIncrementMaximum int
	// IncrementMaximumValidator is a validator for the "increment_maximum" field. It is called by the builders before save.
	IncrementMaximumValidator func(int) error
	// DefaultWorkloadProfile holds the default value on creation for the "workload_profile" field.
	DefaultWorkloadProfile int
	// WorkloadProfileValidator is a validator for the "workload_profile" field. It is called by the builders before save.
	WorkloadProfileValidator func(int) error
	// DefaultOptimized holds the default value on creation for the "optimized" field.
	DefaultOptimized bool
	// DefaultDisableMarkov holds the default value on creation for the "disable_markov" field.
	DefaultDisableMarkov bool
	// DefaultClassicMarkov holds the default value on creation for the "classic_markov" field.
	DefaultClassicMarkov bool
	// DefaultMarkovThreshold holds the default value on creation for the "markov_threshold" field.
	DefaultMarkovThreshold int
	// DefaultSlowCandidateGenerators holds the default value on creation for the "slow_candidate_generators" field.
	DefaultSlowCandidateGenerators bool
	// DefaultLeftRule holds the default value on creation for the "left_rule" field.
	DefaultLeftRule string
	// DefaultRightRule holds the default value on creation for the "right_rule" field.
	DefaultRightRule string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// AttackMode defines the type for the "attack_mode" enum field.
type AttackMode string

// AttackMode values.
const (
	AttackModeDictionary       AttackMode = "dictionary"
	AttackModeMask             AttackMode = "mask"
	AttackModeHybridDictionary AttackMode = "hybrid_dictionary"
	AttackModeHybridMask       AttackMode = "hybrid_mask"
)

func (am AttackMode) String() string {
	return string(am)
}

// AttackModeValidator is a validator for the "attack_mode" field enum values. It is called by the builders before save.
func AttackModeValidator(am AttackMode) error {
	switch am {
	case AttackModeDictionary, AttackModeMask, AttackModeHybridDictionary, AttackModeHybridMask:
		return nil
	default:
		return fmt.Errorf("attack: invalid enum value for attack_mode field: %q", am)
	}
}

// State defines the type for the "state" enum field.
type State string

// StatePending is the default value of the State enum.
const DefaultState = StatePending

// State values.
const (
	StatePending   State = "pending"
	StateRunning   State = "running"
	StatePaused    State = "paused"
	StateCompleted State = "completed"
	StateExhausted State = "exhausted"
	StateFailed    State = "failed"
)

func (s State) String() string {
	return string(s)
}

// StateValidator is a validator for the "state" field enum values. It is called by the builders before save.
func StateValidator(s State) error {
	switch s {
	case StatePending, StateRunning, StatePaused, StateCompleted, StateExhausted, StateFailed:
		return nil
	default:
		return fmt.Errorf("attack: invalid enum value for state field: %q", s)
	}
}

// OrderOption defines the ordering options for the Attack queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPosition orders the results by the position field.
func ByPosition(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPosition, opts...).ToFunc()
}

// ByAttackMode orders the results by the attack_mode field.
func ByAttackMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttackMode, opts...).ToFunc()
}

// ByState orders the results by the state field.
func ByState(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldState, opts...).ToFunc()
}

// ByMask orders the results by the mask field.
func ByMask(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMask, opts...).ToFunc()
}

// ByCustomCharset1 orders the results by the custom_charset_1 field.
func ByCustomCharset1(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomCharset1, opts...).ToFunc()
}

// ByCustomCharset2 orders the results by the custom_charset_2 field.
func ByCustomCharset2(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomCharset2, opts...).ToFunc()
}

// ByCustomCharset3 orders the results by the custom_charset_3 field.
func ByCustomCharset3(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomCharset3, opts...).ToFunc()
}

// ByCustomCharset4 orders the results by the custom_charset_4 field.
func ByCustomCharset4(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCustomCharset4, opts...).ToFunc()
}

// ByIncrementMode orders the results by the increment_mode field.
func ByIncrementMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncrementMode, opts...).ToFunc()
}

// ByIncrementMinimum orders the results by the increment_minimum field.
func ByIncrementMinimum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncrementMinimum, opts...).ToFunc()
}

// ByIncrementMaximum orders the results by the increment_maximum field.
func ByIncrementMaximum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIncrementMaximum, opts...).ToFunc()
}

// ByWorkloadProfile orders the results by the workload_profile field.
func ByWorkloadProfile(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkloadProfile, opts...).ToFunc()
}

// ByOptimized orders the results by the optimized field.
func ByOptimized(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOptimized, opts...).ToFunc()
}

// ByDisableMarkov orders the results by the disable_markov field.
func ByDisableMarkov(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisableMarkov, opts...).ToFunc()
}

// ByClassicMarkov orders the results by the classic_markov field.
func ByClassicMarkov(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClassicMarkov, opts...).ToFunc()
}

// ByMarkovThreshold orders the results by the markov_threshold field.
func ByMarkovThreshold(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMarkovThreshold, opts...).ToFunc()
}

// BySlowCandidateGenerators orders the results by the slow_candidate_generators field.
func BySlowCandidateGenerators(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlowCandidateGenerators, opts...).ToFunc()
}

// ByLeftRule orders the results by the left_rule field.
func ByLeftRule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLeftRule, opts...).ToFunc()
}

// ByRightRule orders the results by the right_rule field.
func ByRightRule(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRightRule, opts...).ToFunc()
}

// ByTotalKeyspace orders the results by the total_keyspace field.
func ByTotalKeyspace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalKeyspace, opts...).ToFunc()
}

// ByStartTime orders the results by the start_time field.
func ByStartTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartTime, opts...).ToFunc()
}

// ByEndTime orders the results by the end_time field.
func ByEndTime(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndTime, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByCampaignField orders the results by campaign field.
func ByCampaignField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCampaignStep(), sql.OrderByField(field, opts...))
	}
}

// ByWordListField orders the results by word_list field.
func ByWordListField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newWordListStep(), sql.OrderByField(field, opts...))
	}
}

// ByRuleListField orders the results by rule_list field.
func ByRuleListField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRuleListStep(), sql.OrderByField(field, opts...))
	}
}

// ByMaskListField orders the results by mask_list field.
func ByMaskListField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMaskListStep(), sql.OrderByField(field, opts...))
	}
}

// ByTasksCount orders the results by tasks count.
func ByTasksCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTasksStep(), opts...)
	}
}

// ByTasks orders the results by tasks terms.
func ByTasks(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTasksStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newCampaignStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CampaignInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, CampaignTable, CampaignColumn),
	)
}
func newWordListStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(WordListInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, WordListTable, WordListColumn),
	)
}
func newRuleListStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RuleListInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, RuleListTable, RuleListColumn),
	)
}
func newMaskListStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MaskListInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, false, MaskListTable, MaskListColumn),
	)
}
func newTasksStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TasksInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TasksTable, TasksColumn),
	)
}
