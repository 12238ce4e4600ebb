// Code generated by ent, DO NOT EDIT.

package presentationcache

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the presentationcache type in the database.
	Label = "presentation_cache"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "cache_id"
	// FieldOutputID holds the string denoting the output_id field in the database.
	FieldOutputID = "output_id"
	// FieldSectionKey holds the string denoting the section_key field in the database.
	FieldSectionKey = "section_key"
	// FieldSourceHash holds the string denoting the source_hash field in the database.
	FieldSourceHash = "source_hash"
	// FieldSkipHashCheck holds the string denoting the skip_hash_check field in the database.
	FieldSkipHashCheck = "skip_hash_check"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeOutput holds the string denoting the output edge name in mutations.
	EdgeOutput = "output"
	// PhaseOutputFieldID holds the string denoting the ID field of the PhaseOutput.
	PhaseOutputFieldID = "output_id"
	// Table holds the table name of the presentationcache in the database.
	Table = "presentation_caches"
	// OutputTable is the table that holds the output relation/edge.
	OutputTable = "presentation_caches"
	// OutputInverseTable is the table name for the PhaseOutput entity.
	// It exists in this package in order to avoid circular dependency with the "phaseoutput" package.
	OutputInverseTable = "phase_outputs"
	// OutputColumn is the table column denoting the output relation/edge.
	OutputColumn = "output_id"
)

// Columns holds all SQL columns for presentationcache fields.
var Columns = []string{
	FieldID,
	FieldOutputID,
	FieldSectionKey,
	FieldSourceHash,
	FieldSkipHashCheck,
	FieldPayload,
	FieldModelUsed,
	FieldCreatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultSkipHashCheck holds the default value on creation for the "skip_hash_check" field.
	DefaultSkipHashCheck bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PresentationCache queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByOutputID orders the results by the output_id field.
func ByOutputID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputID, opts...).ToFunc()
}

// BySectionKey orders the results by the section_key field.
func BySectionKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSectionKey, opts...).ToFunc()
}

// BySourceHash orders the results by the source_hash field.
func BySourceHash(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceHash, opts...).ToFunc()
}

// BySkipHashCheck orders the results by the skip_hash_check field.
func BySkipHashCheck(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSkipHashCheck, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByOutputField orders the results by output field.
func ByOutputField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutputStep(), sql.OrderByField(field, opts...))
	}
}
func newOutputStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutputInverseTable, PhaseOutputFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, OutputTable, OutputColumn),
	)
}
