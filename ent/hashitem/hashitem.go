// Code generated by ent, DO NOT EDIT.

package hashitem

import (
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the hashitem type in the database.
	Label = "hash_item"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldHashValue holds the string denoting the hash_value field in the database.
	FieldHashValue = "hash_value"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldIsCracked holds the string denoting the is_cracked field in the database.
	FieldIsCracked = "is_cracked"
	// FieldPlaintext holds the string denoting the plaintext field in the database.
	FieldPlaintext = "plaintext"
	// FieldCrackedAt holds the string denoting the cracked_at field in the database.
	FieldCrackedAt = "cracked_at"
	// EdgeHashList holds the string denoting the hash_list edge name in mutations.
	EdgeHashList = "hash_list"
	// EdgeCrackResults holds the string denoting the crack_results edge name in mutations.
	EdgeCrackResults = "crack_results"
	// Table holds the table name of the hashitem in the database.
	Table = "hash_items"
	// HashListTable is the table that holds the hash_list relation/edge.
	HashListTable = "hash_items"
	// HashListInverseTable is the table name for the HashList entity.
	// It exists in this package in order to avoid circular dependency with the "hashlist" package.
	HashListInverseTable = "hash_lists"
	// HashListColumn is the table column denoting the hash_list relation/edge.
	HashListColumn = "hash_list_id"
	// CrackResultsTable is the table that holds the crack_results relation/edge.
	CrackResultsTable = "crack_results"
	// CrackResultsInverseTable is the table name for the CrackResult entity.
	// It exists in this package in order to avoid circular dependency with the "crackresult" package.
	CrackResultsInverseTable = "crack_results"
	// CrackResultsColumn is the table column denoting the crack_results relation/edge.
	CrackResultsColumn = "hash_item_id"
)

// Columns holds all SQL columns for hashitem fields.
var Columns = []string{
	FieldID,
	FieldHashValue,
	FieldMetadata,
	FieldIsCracked,
	FieldPlaintext,
	FieldCrackedAt,
}

// ForeignKeys holds the SQL foreign-keys that are owned by the "hash_items"
// table and are not defined as standalone fields in the schema.
var ForeignKeys = []string{
	"hash_list_id",
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
	// HashValueValidator is a validator for the "hash_value" field. It is called by the builders before save.
	HashValueValidator func(string) error
	// DefaultIsCracked holds the default value on creation for the "is_cracked" field.
	DefaultIsCracked bool
)

// OrderOption defines the ordering options for the HashItem queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByHashValue orders the results by the hash_value field.
func ByHashValue(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldHashValue, opts...).ToFunc()
}

// ByMetadata orders the results by the metadata field.
func ByMetadata(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMetadata, opts...).ToFunc()
}

// ByIsCracked orders the results by the is_cracked field.
func ByIsCracked(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsCracked, opts...).ToFunc()
}

// ByPlaintext orders the results by the plaintext field.
func ByPlaintext(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlaintext, opts...).ToFunc()
}

// ByCrackedAt orders the results by the cracked_at field.
func ByCrackedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCrackedAt, opts...).ToFunc()
}

// ByHashListField orders the results by hash_list field.
func ByHashListField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newHashListStep(), sql.OrderByField(field, opts...))
	}
}

// ByCrackResultsCount orders the results by crack_results count.
func ByCrackResultsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCrackResultsStep(), opts...)
	}
}

// ByCrackResults orders the results by crack_results terms.
func ByCrackResults(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCrackResultsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newHashListStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(HashListInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, HashListTable, HashListColumn),
	)
}
func newCrackResultsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CrackResultsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CrackResultsTable, CrackResultsColumn),
	)
}
