// Code generated by ent, DO NOT EDIT.

package phaseoutput

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the phaseoutput type in the database.
	Label = "phase_output"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "output_id"
	// FieldJobID holds the string denoting the job_id field in the database.
	FieldJobID = "job_id"
	// FieldPhaseNumber holds the string denoting the phase_number field in the database.
	FieldPhaseNumber = "phase_number"
	// FieldEngineKey holds the string denoting the engine_key field in the database.
	FieldEngineKey = "engine_key"
	// FieldPassNumber holds the string denoting the pass_number field in the database.
	FieldPassNumber = "pass_number"
	// FieldWorkKey holds the string denoting the work_key field in the database.
	FieldWorkKey = "work_key"
	// FieldStanceKey holds the string denoting the stance_key field in the database.
	FieldStanceKey = "stance_key"
	// FieldRole holds the string denoting the role field in the database.
	FieldRole = "role"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldModelUsed holds the string denoting the model_used field in the database.
	FieldModelUsed = "model_used"
	// FieldInputTokens holds the string denoting the input_tokens field in the database.
	FieldInputTokens = "input_tokens"
	// FieldOutputTokens holds the string denoting the output_tokens field in the database.
	FieldOutputTokens = "output_tokens"
	// FieldParentID holds the string denoting the parent_id field in the database.
	FieldParentID = "parent_id"
	// FieldMetadata holds the string denoting the metadata field in the database.
	FieldMetadata = "metadata"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeJob holds the string denoting the job edge name in mutations.
	EdgeJob = "job"
	// EdgeCacheEntries holds the string denoting the cache_entries edge name in mutations.
	EdgeCacheEntries = "cache_entries"
	// AnalysisJobFieldID holds the string denoting the ID field of the AnalysisJob.
	AnalysisJobFieldID = "job_id"
	// PresentationCacheFieldID holds the string denoting the ID field of the PresentationCache.
	PresentationCacheFieldID = "cache_id"
	// Table holds the table name of the phaseoutput in the database.
	Table = "phase_outputs"
	// JobTable is the table that holds the job relation/edge.
	JobTable = "phase_outputs"
	// JobInverseTable is the table name for the AnalysisJob entity.
	// It exists in this package in order to avoid circular dependency with the "analysisjob" package.
	JobInverseTable = "analysis_jobs"
	// JobColumn is the table column denoting the job relation/edge.
	JobColumn = "job_id"
	// CacheEntriesTable is the table that holds the cache_entries relation/edge.
	CacheEntriesTable = "presentation_caches"
	// CacheEntriesInverseTable is the table name for the PresentationCache entity.
	// It exists in this package in order to avoid circular dependency with the "presentationcache" package.
	CacheEntriesInverseTable = "presentation_caches"
	// CacheEntriesColumn is the table column denoting the cache_entries relation/edge.
	CacheEntriesColumn = "output_id"
)

// Columns holds all SQL columns for phaseoutput fields.
var Columns = []string{
	FieldID,
	FieldJobID,
	FieldPhaseNumber,
	FieldEngineKey,
	FieldPassNumber,
	FieldWorkKey,
	FieldStanceKey,
	FieldRole,
	FieldContent,
	FieldModelUsed,
	FieldInputTokens,
	FieldOutputTokens,
	FieldParentID,
	FieldMetadata,
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
	// DefaultWorkKey holds the default value on creation for the "work_key" field.
	DefaultWorkKey string
	// DefaultRole holds the default value on creation for the "role" field.
	DefaultRole string
	// DefaultInputTokens holds the default value on creation for the "input_tokens" field.
	DefaultInputTokens int
	// DefaultOutputTokens holds the default value on creation for the "output_tokens" field.
	DefaultOutputTokens int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the PhaseOutput queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByJobID orders the results by the job_id field.
func ByJobID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldJobID, opts...).ToFunc()
}

// ByPhaseNumber orders the results by the phase_number field.
func ByPhaseNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPhaseNumber, opts...).ToFunc()
}

// ByEngineKey orders the results by the engine_key field.
func ByEngineKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEngineKey, opts...).ToFunc()
}

// ByPassNumber orders the results by the pass_number field.
func ByPassNumber(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPassNumber, opts...).ToFunc()
}

// ByWorkKey orders the results by the work_key field.
func ByWorkKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkKey, opts...).ToFunc()
}

// ByStanceKey orders the results by the stance_key field.
func ByStanceKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStanceKey, opts...).ToFunc()
}

// ByRole orders the results by the role field.
func ByRole(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRole, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByModelUsed orders the results by the model_used field.
func ByModelUsed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldModelUsed, opts...).ToFunc()
}

// ByInputTokens orders the results by the input_tokens field.
func ByInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldInputTokens, opts...).ToFunc()
}

// ByOutputTokens orders the results by the output_tokens field.
func ByOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOutputTokens, opts...).ToFunc()
}

// ByParentID orders the results by the parent_id field.
func ByParentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldParentID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByJobField orders the results by job field.
func ByJobField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobStep(), sql.OrderByField(field, opts...))
	}
}

// ByCacheEntriesCount orders the results by cache_entries count.
func ByCacheEntriesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newCacheEntriesStep(), opts...)
	}
}

// ByCacheEntries orders the results by cache_entries terms.
func ByCacheEntries(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newCacheEntriesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobInverseTable, AnalysisJobFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, JobTable, JobColumn),
	)
}
func newCacheEntriesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(CacheEntriesInverseTable, PresentationCacheFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, CacheEntriesTable, CacheEntriesColumn),
	)
}
