// Code generated by ent, DO NOT EDIT.

package analysisjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the analysisjob type in the database.
	Label = "analysis_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldPlanID holds the string denoting the plan_id field in the database.
	FieldPlanID = "plan_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldCurrentPhase holds the string denoting the current_phase field in the database.
	FieldCurrentPhase = "current_phase"
	// FieldCurrentPhaseName holds the string denoting the current_phase_name field in the database.
	FieldCurrentPhaseName = "current_phase_name"
	// FieldProgressDetail holds the string denoting the progress_detail field in the database.
	FieldProgressDetail = "progress_detail"
	// FieldCompletedPhases holds the string denoting the completed_phases field in the database.
	FieldCompletedPhases = "completed_phases"
	// FieldPhaseResults holds the string denoting the phase_results field in the database.
	FieldPhaseResults = "phase_results"
	// FieldTotalLlmCalls holds the string denoting the total_llm_calls field in the database.
	FieldTotalLlmCalls = "total_llm_calls"
	// FieldTotalInputTokens holds the string denoting the total_input_tokens field in the database.
	FieldTotalInputTokens = "total_input_tokens"
	// FieldTotalOutputTokens holds the string denoting the total_output_tokens field in the database.
	FieldTotalOutputTokens = "total_output_tokens"
	// FieldPlanSnapshot holds the string denoting the plan_snapshot field in the database.
	FieldPlanSnapshot = "plan_snapshot"
	// FieldRequestSnapshot holds the string denoting the request_snapshot field in the database.
	FieldRequestSnapshot = "request_snapshot"
	// FieldDocumentMap holds the string denoting the document_map field in the database.
	FieldDocumentMap = "document_map"
	// FieldCancelToken holds the string denoting the cancel_token field in the database.
	FieldCancelToken = "cancel_token"
	// FieldWorkflowKey holds the string denoting the workflow_key field in the database.
	FieldWorkflowKey = "workflow_key"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldStartedAt holds the string denoting the started_at field in the database.
	FieldStartedAt = "started_at"
	// FieldCompletedAt holds the string denoting the completed_at field in the database.
	FieldCompletedAt = "completed_at"
	// FieldErrorMessage holds the string denoting the error_message field in the database.
	FieldErrorMessage = "error_message"
	// FieldPodID holds the string denoting the pod_id field in the database.
	FieldPodID = "pod_id"
	// FieldLastInteractionAt holds the string denoting the last_interaction_at field in the database.
	FieldLastInteractionAt = "last_interaction_at"
	// EdgeOutputs holds the string denoting the outputs edge name in mutations.
	EdgeOutputs = "outputs"
	// EdgeViewRefinement holds the string denoting the view_refinement edge name in mutations.
	EdgeViewRefinement = "view_refinement"
	// EdgePolishes holds the string denoting the polishes edge name in mutations.
	EdgePolishes = "polishes"
	// PhaseOutputFieldID holds the string denoting the ID field of the PhaseOutput.
	PhaseOutputFieldID = "output_id"
	// ViewRefinementFieldID holds the string denoting the ID field of the ViewRefinement.
	ViewRefinementFieldID = "refinement_id"
	// PolishCacheFieldID holds the string denoting the ID field of the PolishCache.
	PolishCacheFieldID = "polish_id"
	// Table holds the table name of the analysisjob in the database.
	Table = "analysis_jobs"
	// OutputsTable is the table that holds the outputs relation/edge.
	OutputsTable = "phase_outputs"
	// OutputsInverseTable is the table name for the PhaseOutput entity.
	// It exists in this package in order to avoid circular dependency with the "phaseoutput" package.
	OutputsInverseTable = "phase_outputs"
	// OutputsColumn is the table column denoting the outputs relation/edge.
	OutputsColumn = "job_id"
	// ViewRefinementTable is the table that holds the view_refinement relation/edge.
	ViewRefinementTable = "view_refinements"
	// ViewRefinementInverseTable is the table name for the ViewRefinement entity.
	// It exists in this package in order to avoid circular dependency with the "viewrefinement" package.
	ViewRefinementInverseTable = "view_refinements"
	// ViewRefinementColumn is the table column denoting the view_refinement relation/edge.
	ViewRefinementColumn = "job_id"
	// PolishesTable is the table that holds the polishes relation/edge.
	PolishesTable = "polish_caches"
	// PolishesInverseTable is the table name for the PolishCache entity.
	// It exists in this package in order to avoid circular dependency with the "polishcache" package.
	PolishesInverseTable = "polish_caches"
	// PolishesColumn is the table column denoting the polishes relation/edge.
	PolishesColumn = "job_id"
)

// Columns holds all SQL columns for analysisjob fields.
var Columns = []string{
	FieldID,
	FieldPlanID,
	FieldStatus,
	FieldCurrentPhase,
	FieldCurrentPhaseName,
	FieldProgressDetail,
	FieldCompletedPhases,
	FieldPhaseResults,
	FieldTotalLlmCalls,
	FieldTotalInputTokens,
	FieldTotalOutputTokens,
	FieldPlanSnapshot,
	FieldRequestSnapshot,
	FieldDocumentMap,
	FieldCancelToken,
	FieldWorkflowKey,
	FieldCreatedAt,
	FieldStartedAt,
	FieldCompletedAt,
	FieldErrorMessage,
	FieldPodID,
	FieldLastInteractionAt,
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
	// DefaultTotalLlmCalls holds the default value on creation for the "total_llm_calls" field.
	DefaultTotalLlmCalls int
	// DefaultTotalInputTokens holds the default value on creation for the "total_input_tokens" field.
	DefaultTotalInputTokens int
	// DefaultTotalOutputTokens holds the default value on creation for the "total_output_tokens" field.
	DefaultTotalOutputTokens int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending   Status = "pending"
	StatusRunning   Status = "running"
	StatusCompleted Status = "completed"
	StatusFailed    Status = "failed"
	StatusCancelled Status = "cancelled"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusRunning, StatusCompleted, StatusFailed, StatusCancelled:
		return nil
	default:
		return fmt.Errorf("analysisjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the AnalysisJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPlanID orders the results by the plan_id field.
func ByPlanID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPlanID, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByCurrentPhase orders the results by the current_phase field.
func ByCurrentPhase(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhase, opts...).ToFunc()
}

// ByCurrentPhaseName orders the results by the current_phase_name field.
func ByCurrentPhaseName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrentPhaseName, opts...).ToFunc()
}

// ByProgressDetail orders the results by the progress_detail field.
func ByProgressDetail(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProgressDetail, opts...).ToFunc()
}

// ByTotalLlmCalls orders the results by the total_llm_calls field.
func ByTotalLlmCalls(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalLlmCalls, opts...).ToFunc()
}

// ByTotalInputTokens orders the results by the total_input_tokens field.
func ByTotalInputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalInputTokens, opts...).ToFunc()
}

// ByTotalOutputTokens orders the results by the total_output_tokens field.
func ByTotalOutputTokens(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTotalOutputTokens, opts...).ToFunc()
}

// ByCancelToken orders the results by the cancel_token field.
func ByCancelToken(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCancelToken, opts...).ToFunc()
}

// ByWorkflowKey orders the results by the workflow_key field.
func ByWorkflowKey(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldWorkflowKey, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByStartedAt orders the results by the started_at field.
func ByStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartedAt, opts...).ToFunc()
}

// ByCompletedAt orders the results by the completed_at field.
func ByCompletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCompletedAt, opts...).ToFunc()
}

// ByErrorMessage orders the results by the error_message field.
func ByErrorMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldErrorMessage, opts...).ToFunc()
}

// ByPodID orders the results by the pod_id field.
func ByPodID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPodID, opts...).ToFunc()
}

// ByLastInteractionAt orders the results by the last_interaction_at field.
func ByLastInteractionAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastInteractionAt, opts...).ToFunc()
}

// ByOutputsCount orders the results by outputs count.
func ByOutputsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newOutputsStep(), opts...)
	}
}

// ByOutputs orders the results by outputs terms.
func ByOutputs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newOutputsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}

// ByViewRefinementField orders the results by view_refinement field.
func ByViewRefinementField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newViewRefinementStep(), sql.OrderByField(field, opts...))
	}
}

// ByPolishesCount orders the results by polishes count.
func ByPolishesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newPolishesStep(), opts...)
	}
}

// ByPolishes orders the results by polishes terms.
func ByPolishes(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPolishesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newOutputsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(OutputsInverseTable, PhaseOutputFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, OutputsTable, OutputsColumn),
	)
}
func newViewRefinementStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(ViewRefinementInverseTable, ViewRefinementFieldID),
		sqlgraph.Edge(sqlgraph.O2O, false, ViewRefinementTable, ViewRefinementColumn),
	)
}
func newPolishesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PolishesInverseTable, PolishCacheFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, PolishesTable, PolishesColumn),
	)
}
