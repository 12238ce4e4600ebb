// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// AnalysisJob is the model entity for the AnalysisJob schema.
type AnalysisJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Identifier of the plan this job executes
	PlanID string `json:"plan_id,omitempty"`
	// Status holds the value of the "status" field.
	Status analysisjob.Status `json:"status,omitempty"`
	// Phase number currently executing (float allows 1.5 insertions)
	CurrentPhase float64 `json:"current_phase,omitempty"`
	// CurrentPhaseName holds the value of the "current_phase_name" field.
	CurrentPhaseName string `json:"current_phase_name,omitempty"`
	// Free-form progress text for status polling
	ProgressDetail string `json:"progress_detail,omitempty"`
	// CompletedPhases holds the value of the "completed_phases" field.
	CompletedPhases []float64 `json:"completed_phases,omitempty"`
	// Compact per-phase result records: status, duration, tokens, preview
	PhaseResults map[string]interface{} `json:"phase_results,omitempty"`
	// TotalLlmCalls holds the value of the "total_llm_calls" field.
	TotalLlmCalls int `json:"total_llm_calls,omitempty"`
	// TotalInputTokens holds the value of the "total_input_tokens" field.
	TotalInputTokens int `json:"total_input_tokens,omitempty"`
	// TotalOutputTokens holds the value of the "total_output_tokens" field.
	TotalOutputTokens int `json:"total_output_tokens,omitempty"`
	// Frozen ExecutionPlan — makes the job self-sufficient for resume
	PlanSnapshot map[string]interface{} `json:"plan_snapshot,omitempty"`
	// Original plan request, kept when the plan itself was never generated
	RequestSnapshot map[string]interface{} `json:"request_snapshot,omitempty"`
	// work title → document id
	DocumentMap map[string]string `json:"document_map,omitempty"`
	// Returned only at creation time; required to cancel
	CancelToken string `json:"-"`
	// WorkflowKey holds the value of the "workflow_key" field.
	WorkflowKey string `json:"workflow_key,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// StartedAt holds the value of the "started_at" field.
	StartedAt *time.Time `json:"started_at,omitempty"`
	// CompletedAt holds the value of the "completed_at" field.
	CompletedAt *time.Time `json:"completed_at,omitempty"`
	// ErrorMessage holds the value of the "error_message" field.
	ErrorMessage *string `json:"error_message,omitempty"`
	// For multi-replica coordination
	PodID *string `json:"pod_id,omitempty"`
	// Heartbeat for orphan detection
	LastInteractionAt *time.Time `json:"last_interaction_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AnalysisJobQuery when eager-loading is set.
	Edges        AnalysisJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AnalysisJobEdges holds the relations/edges for other nodes in the graph.
type AnalysisJobEdges struct {
	// Outputs holds the value of the outputs edge.
	Outputs []*PhaseOutput `json:"outputs,omitempty"`
	// ViewRefinement holds the value of the view_refinement edge.
	ViewRefinement *ViewRefinement `json:"view_refinement,omitempty"`
	// Polishes holds the value of the polishes edge.
	Polishes []*PolishCache `json:"polishes,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [3]bool
}

// OutputsOrErr returns the Outputs value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisJobEdges) OutputsOrErr() ([]*PhaseOutput, error) {
	if e.loadedTypes[0] {
		return e.Outputs, nil
	}
	return nil, &NotLoadedError{edge: "outputs"}
}

// ViewRefinementOrErr returns the ViewRefinement value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AnalysisJobEdges) ViewRefinementOrErr() (*ViewRefinement, error) {
	if e.ViewRefinement != nil {
		return e.ViewRefinement, nil
	} else if e.loadedTypes[1] {
		return nil, &NotFoundError{label: viewrefinement.Label}
	}
	return nil, &NotLoadedError{edge: "view_refinement"}
}

// PolishesOrErr returns the Polishes value or an error if the edge
// was not loaded in eager-loading.
func (e AnalysisJobEdges) PolishesOrErr() ([]*PolishCache, error) {
	if e.loadedTypes[2] {
		return e.Polishes, nil
	}
	return nil, &NotLoadedError{edge: "polishes"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AnalysisJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldCompletedPhases, analysisjob.FieldPhaseResults, analysisjob.FieldPlanSnapshot, analysisjob.FieldRequestSnapshot, analysisjob.FieldDocumentMap:
			values[i] = new([]byte)
		case analysisjob.FieldCurrentPhase:
			values[i] = new(sql.NullFloat64)
		case analysisjob.FieldTotalLlmCalls, analysisjob.FieldTotalInputTokens, analysisjob.FieldTotalOutputTokens:
			values[i] = new(sql.NullInt64)
		case analysisjob.FieldID, analysisjob.FieldPlanID, analysisjob.FieldStatus, analysisjob.FieldCurrentPhaseName, analysisjob.FieldProgressDetail, analysisjob.FieldCancelToken, analysisjob.FieldWorkflowKey, analysisjob.FieldErrorMessage, analysisjob.FieldPodID:
			values[i] = new(sql.NullString)
		case analysisjob.FieldCreatedAt, analysisjob.FieldStartedAt, analysisjob.FieldCompletedAt, analysisjob.FieldLastInteractionAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AnalysisJob fields.
func (_m *AnalysisJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case analysisjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case analysisjob.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				_m.PlanID = value.String
			}
		case analysisjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = analysisjob.Status(value.String)
			}
		case analysisjob.FieldCurrentPhase:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase", values[i])
			} else if value.Valid {
				_m.CurrentPhase = value.Float64
			}
		case analysisjob.FieldCurrentPhaseName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field current_phase_name", values[i])
			} else if value.Valid {
				_m.CurrentPhaseName = value.String
			}
		case analysisjob.FieldProgressDetail:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field progress_detail", values[i])
			} else if value.Valid {
				_m.ProgressDetail = value.String
			}
		case analysisjob.FieldCompletedPhases:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field completed_phases", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.CompletedPhases); err != nil {
					return fmt.Errorf("unmarshal field completed_phases: %w", err)
				}
			}
		case analysisjob.FieldPhaseResults:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field phase_results", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PhaseResults); err != nil {
					return fmt.Errorf("unmarshal field phase_results: %w", err)
				}
			}
		case analysisjob.FieldTotalLlmCalls:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_llm_calls", values[i])
			} else if value.Valid {
				_m.TotalLlmCalls = int(value.Int64)
			}
		case analysisjob.FieldTotalInputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_input_tokens", values[i])
			} else if value.Valid {
				_m.TotalInputTokens = int(value.Int64)
			}
		case analysisjob.FieldTotalOutputTokens:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field total_output_tokens", values[i])
			} else if value.Valid {
				_m.TotalOutputTokens = int(value.Int64)
			}
		case analysisjob.FieldPlanSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field plan_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PlanSnapshot); err != nil {
					return fmt.Errorf("unmarshal field plan_snapshot: %w", err)
				}
			}
		case analysisjob.FieldRequestSnapshot:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field request_snapshot", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.RequestSnapshot); err != nil {
					return fmt.Errorf("unmarshal field request_snapshot: %w", err)
				}
			}
		case analysisjob.FieldDocumentMap:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field document_map", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.DocumentMap); err != nil {
					return fmt.Errorf("unmarshal field document_map: %w", err)
				}
			}
		case analysisjob.FieldCancelToken:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field cancel_token", values[i])
			} else if value.Valid {
				_m.CancelToken = value.String
			}
		case analysisjob.FieldWorkflowKey:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field workflow_key", values[i])
			} else if value.Valid {
				_m.WorkflowKey = value.String
			}
		case analysisjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case analysisjob.FieldStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field started_at", values[i])
			} else if value.Valid {
				_m.StartedAt = new(time.Time)
				*_m.StartedAt = value.Time
			}
		case analysisjob.FieldCompletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field completed_at", values[i])
			} else if value.Valid {
				_m.CompletedAt = new(time.Time)
				*_m.CompletedAt = value.Time
			}
		case analysisjob.FieldErrorMessage:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field error_message", values[i])
			} else if value.Valid {
				_m.ErrorMessage = new(string)
				*_m.ErrorMessage = value.String
			}
		case analysisjob.FieldPodID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pod_id", values[i])
			} else if value.Valid {
				_m.PodID = new(string)
				*_m.PodID = value.String
			}
		case analysisjob.FieldLastInteractionAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_interaction_at", values[i])
			} else if value.Valid {
				_m.LastInteractionAt = new(time.Time)
				*_m.LastInteractionAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AnalysisJob.
// This includes values selected through modifiers, order, etc.
func (_m *AnalysisJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryOutputs queries the "outputs" edge of the AnalysisJob entity.
func (_m *AnalysisJob) QueryOutputs() *PhaseOutputQuery {
	return NewAnalysisJobClient(_m.config).QueryOutputs(_m)
}

// QueryViewRefinement queries the "view_refinement" edge of the AnalysisJob entity.
func (_m *AnalysisJob) QueryViewRefinement() *ViewRefinementQuery {
	return NewAnalysisJobClient(_m.config).QueryViewRefinement(_m)
}

// QueryPolishes queries the "polishes" edge of the AnalysisJob entity.
func (_m *AnalysisJob) QueryPolishes() *PolishCacheQuery {
	return NewAnalysisJobClient(_m.config).QueryPolishes(_m)
}

// Update returns a builder for updating this AnalysisJob.
// Note that you need to call AnalysisJob.Unwrap() before calling this method if this AnalysisJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *AnalysisJob) Update() *AnalysisJobUpdateOne {
	return NewAnalysisJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the AnalysisJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *AnalysisJob) Unwrap() *AnalysisJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: AnalysisJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *AnalysisJob) String() string {
	var builder strings.Builder
	builder.WriteString("AnalysisJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(_m.PlanID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("current_phase=")
	builder.WriteString(fmt.Sprintf("%v", _m.CurrentPhase))
	builder.WriteString(", ")
	builder.WriteString("current_phase_name=")
	builder.WriteString(_m.CurrentPhaseName)
	builder.WriteString(", ")
	builder.WriteString("progress_detail=")
	builder.WriteString(_m.ProgressDetail)
	builder.WriteString(", ")
	builder.WriteString("completed_phases=")
	builder.WriteString(fmt.Sprintf("%v", _m.CompletedPhases))
	builder.WriteString(", ")
	builder.WriteString("phase_results=")
	builder.WriteString(fmt.Sprintf("%v", _m.PhaseResults))
	builder.WriteString(", ")
	builder.WriteString("total_llm_calls=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalLlmCalls))
	builder.WriteString(", ")
	builder.WriteString("total_input_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalInputTokens))
	builder.WriteString(", ")
	builder.WriteString("total_output_tokens=")
	builder.WriteString(fmt.Sprintf("%v", _m.TotalOutputTokens))
	builder.WriteString(", ")
	builder.WriteString("plan_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.PlanSnapshot))
	builder.WriteString(", ")
	builder.WriteString("request_snapshot=")
	builder.WriteString(fmt.Sprintf("%v", _m.RequestSnapshot))
	builder.WriteString(", ")
	builder.WriteString("document_map=")
	builder.WriteString(fmt.Sprintf("%v", _m.DocumentMap))
	builder.WriteString(", ")
	builder.WriteString("cancel_token=<sensitive>")
	builder.WriteString(", ")
	builder.WriteString("workflow_key=")
	builder.WriteString(_m.WorkflowKey)
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.StartedAt; v != nil {
		builder.WriteString("started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.CompletedAt; v != nil {
		builder.WriteString("completed_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.ErrorMessage; v != nil {
		builder.WriteString("error_message=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.PodID; v != nil {
		builder.WriteString("pod_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.LastInteractionAt; v != nil {
		builder.WriteString("last_interaction_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// AnalysisJobs is a parsable slice of AnalysisJob.
type AnalysisJobs []*AnalysisJob
