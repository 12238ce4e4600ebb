// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/polishcache"
	"github.com/exegete-ai/exegete/ent/predicate"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// AnalysisJobUpdate is the builder for updating AnalysisJob entities.
type AnalysisJobUpdate struct {
	config
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdate) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPlanID sets the "plan_id" field.
func (_u *AnalysisJobUpdate) SetPlanID(v string) *AnalysisJobUpdate {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillablePlanID(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdate) SetStatus(v analysisjob.Status) *AnalysisJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *AnalysisJobUpdate) SetCurrentPhase(v float64) *AnalysisJobUpdate {
	_u.mutation.ResetCurrentPhase()
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCurrentPhase(v *float64) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// AddCurrentPhase adds value to the "current_phase" field.
func (_u *AnalysisJobUpdate) AddCurrentPhase(v float64) *AnalysisJobUpdate {
	_u.mutation.AddCurrentPhase(v)
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *AnalysisJobUpdate) ClearCurrentPhase() *AnalysisJobUpdate {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetCurrentPhaseName sets the "current_phase_name" field.
func (_u *AnalysisJobUpdate) SetCurrentPhaseName(v string) *AnalysisJobUpdate {
	_u.mutation.SetCurrentPhaseName(v)
	return _u
}

// SetNillableCurrentPhaseName sets the "current_phase_name" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCurrentPhaseName(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCurrentPhaseName(*v)
	}
	return _u
}

// ClearCurrentPhaseName clears the value of the "current_phase_name" field.
func (_u *AnalysisJobUpdate) ClearCurrentPhaseName() *AnalysisJobUpdate {
	_u.mutation.ClearCurrentPhaseName()
	return _u
}

// SetProgressDetail sets the "progress_detail" field.
func (_u *AnalysisJobUpdate) SetProgressDetail(v string) *AnalysisJobUpdate {
	_u.mutation.SetProgressDetail(v)
	return _u
}

// SetNillableProgressDetail sets the "progress_detail" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableProgressDetail(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetProgressDetail(*v)
	}
	return _u
}

// ClearProgressDetail clears the value of the "progress_detail" field.
func (_u *AnalysisJobUpdate) ClearProgressDetail() *AnalysisJobUpdate {
	_u.mutation.ClearProgressDetail()
	return _u
}

// SetCompletedPhases sets the "completed_phases" field.
func (_u *AnalysisJobUpdate) SetCompletedPhases(v []float64) *AnalysisJobUpdate {
	_u.mutation.SetCompletedPhases(v)
	return _u
}

// AppendCompletedPhases appends value to the "completed_phases" field.
func (_u *AnalysisJobUpdate) AppendCompletedPhases(v []float64) *AnalysisJobUpdate {
	_u.mutation.AppendCompletedPhases(v)
	return _u
}

// ClearCompletedPhases clears the value of the "completed_phases" field.
func (_u *AnalysisJobUpdate) ClearCompletedPhases() *AnalysisJobUpdate {
	_u.mutation.ClearCompletedPhases()
	return _u
}

// SetPhaseResults sets the "phase_results" field.
func (_u *AnalysisJobUpdate) SetPhaseResults(v map[string]interface{}) *AnalysisJobUpdate {
	_u.mutation.SetPhaseResults(v)
	return _u
}

// ClearPhaseResults clears the value of the "phase_results" field.
func (_u *AnalysisJobUpdate) ClearPhaseResults() *AnalysisJobUpdate {
	_u.mutation.ClearPhaseResults()
	return _u
}

// SetTotalLlmCalls sets the "total_llm_calls" field.
func (_u *AnalysisJobUpdate) SetTotalLlmCalls(v int) *AnalysisJobUpdate {
	_u.mutation.ResetTotalLlmCalls()
	_u.mutation.SetTotalLlmCalls(v)
	return _u
}

// SetNillableTotalLlmCalls sets the "total_llm_calls" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableTotalLlmCalls(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetTotalLlmCalls(*v)
	}
	return _u
}

// AddTotalLlmCalls adds value to the "total_llm_calls" field.
func (_u *AnalysisJobUpdate) AddTotalLlmCalls(v int) *AnalysisJobUpdate {
	_u.mutation.AddTotalLlmCalls(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *AnalysisJobUpdate) SetTotalInputTokens(v int) *AnalysisJobUpdate {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableTotalInputTokens(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *AnalysisJobUpdate) AddTotalInputTokens(v int) *AnalysisJobUpdate {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *AnalysisJobUpdate) SetTotalOutputTokens(v int) *AnalysisJobUpdate {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableTotalOutputTokens(v *int) *AnalysisJobUpdate {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *AnalysisJobUpdate) AddTotalOutputTokens(v int) *AnalysisJobUpdate {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetPlanSnapshot sets the "plan_snapshot" field.
func (_u *AnalysisJobUpdate) SetPlanSnapshot(v map[string]interface{}) *AnalysisJobUpdate {
	_u.mutation.SetPlanSnapshot(v)
	return _u
}

// ClearPlanSnapshot clears the value of the "plan_snapshot" field.
func (_u *AnalysisJobUpdate) ClearPlanSnapshot() *AnalysisJobUpdate {
	_u.mutation.ClearPlanSnapshot()
	return _u
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_u *AnalysisJobUpdate) SetRequestSnapshot(v map[string]interface{}) *AnalysisJobUpdate {
	_u.mutation.SetRequestSnapshot(v)
	return _u
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (_u *AnalysisJobUpdate) ClearRequestSnapshot() *AnalysisJobUpdate {
	_u.mutation.ClearRequestSnapshot()
	return _u
}

// SetDocumentMap sets the "document_map" field.
func (_u *AnalysisJobUpdate) SetDocumentMap(v map[string]string) *AnalysisJobUpdate {
	_u.mutation.SetDocumentMap(v)
	return _u
}

// ClearDocumentMap clears the value of the "document_map" field.
func (_u *AnalysisJobUpdate) ClearDocumentMap() *AnalysisJobUpdate {
	_u.mutation.ClearDocumentMap()
	return _u
}

// SetCancelToken sets the "cancel_token" field.
func (_u *AnalysisJobUpdate) SetCancelToken(v string) *AnalysisJobUpdate {
	_u.mutation.SetCancelToken(v)
	return _u
}

// SetNillableCancelToken sets the "cancel_token" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCancelToken(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCancelToken(*v)
	}
	return _u
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *AnalysisJobUpdate) SetWorkflowKey(v string) *AnalysisJobUpdate {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableWorkflowKey(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// ClearWorkflowKey clears the value of the "workflow_key" field.
func (_u *AnalysisJobUpdate) ClearWorkflowKey() *AnalysisJobUpdate {
	_u.mutation.ClearWorkflowKey()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdate) SetCreatedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdate) SetStartedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisJobUpdate) ClearStartedAt() *AnalysisJobUpdate {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdate) SetCompletedAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdate) ClearCompletedAt() *AnalysisJobUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdate) SetErrorMessage(v string) *AnalysisJobUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableErrorMessage(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdate) ClearErrorMessage() *AnalysisJobUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisJobUpdate) SetPodID(v string) *AnalysisJobUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillablePodID(v *string) *AnalysisJobUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisJobUpdate) ClearPodID() *AnalysisJobUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AnalysisJobUpdate) SetLastInteractionAt(v time.Time) *AnalysisJobUpdate {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableLastInteractionAt(v *time.Time) *AnalysisJobUpdate {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AnalysisJobUpdate) ClearLastInteractionAt() *AnalysisJobUpdate {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddOutputIDs adds the "outputs" edge to the PhaseOutput entity by IDs.
func (_u *AnalysisJobUpdate) AddOutputIDs(ids ...string) *AnalysisJobUpdate {
	_u.mutation.AddOutputIDs(ids...)
	return _u
}

// AddOutputs adds the "outputs" edges to the PhaseOutput entity.
func (_u *AnalysisJobUpdate) AddOutputs(v ...*PhaseOutput) *AnalysisJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutputIDs(ids...)
}

// SetViewRefinementID sets the "view_refinement" edge to the ViewRefinement entity by ID.
func (_u *AnalysisJobUpdate) SetViewRefinementID(id string) *AnalysisJobUpdate {
	_u.mutation.SetViewRefinementID(id)
	return _u
}

// SetNillableViewRefinementID sets the "view_refinement" edge to the ViewRefinement entity by ID if the given value is not nil.
func (_u *AnalysisJobUpdate) SetNillableViewRefinementID(id *string) *AnalysisJobUpdate {
	if id != nil {
		_u = _u.SetViewRefinementID(*id)
	}
	return _u
}

// SetViewRefinement sets the "view_refinement" edge to the ViewRefinement entity.
func (_u *AnalysisJobUpdate) SetViewRefinement(v *ViewRefinement) *AnalysisJobUpdate {
	return _u.SetViewRefinementID(v.ID)
}

// AddPolishIDs adds the "polishes" edge to the PolishCache entity by IDs.
func (_u *AnalysisJobUpdate) AddPolishIDs(ids ...string) *AnalysisJobUpdate {
	_u.mutation.AddPolishIDs(ids...)
	return _u
}

// AddPolishes adds the "polishes" edges to the PolishCache entity.
func (_u *AnalysisJobUpdate) AddPolishes(v ...*PolishCache) *AnalysisJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolishIDs(ids...)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdate) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearOutputs clears all "outputs" edges to the PhaseOutput entity.
func (_u *AnalysisJobUpdate) ClearOutputs() *AnalysisJobUpdate {
	_u.mutation.ClearOutputs()
	return _u
}

// RemoveOutputIDs removes the "outputs" edge to PhaseOutput entities by IDs.
func (_u *AnalysisJobUpdate) RemoveOutputIDs(ids ...string) *AnalysisJobUpdate {
	_u.mutation.RemoveOutputIDs(ids...)
	return _u
}

// RemoveOutputs removes "outputs" edges to PhaseOutput entities.
func (_u *AnalysisJobUpdate) RemoveOutputs(v ...*PhaseOutput) *AnalysisJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutputIDs(ids...)
}

// ClearViewRefinement clears the "view_refinement" edge to the ViewRefinement entity.
func (_u *AnalysisJobUpdate) ClearViewRefinement() *AnalysisJobUpdate {
	_u.mutation.ClearViewRefinement()
	return _u
}

// ClearPolishes clears all "polishes" edges to the PolishCache entity.
func (_u *AnalysisJobUpdate) ClearPolishes() *AnalysisJobUpdate {
	_u.mutation.ClearPolishes()
	return _u
}

// RemovePolishIDs removes the "polishes" edge to PolishCache entities by IDs.
func (_u *AnalysisJobUpdate) RemovePolishIDs(ids ...string) *AnalysisJobUpdate {
	_u.mutation.RemovePolishIDs(ids...)
	return _u
}

// RemovePolishes removes "polishes" edges to PolishCache entities.
func (_u *AnalysisJobUpdate) RemovePolishes(v ...*PolishCache) *AnalysisJobUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolishIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AnalysisJobUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AnalysisJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(analysisjob.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(analysisjob.FieldCurrentPhase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhase(); ok {
		_spec.AddField(analysisjob.FieldCurrentPhase, field.TypeFloat64, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(analysisjob.FieldCurrentPhase, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrentPhaseName(); ok {
		_spec.SetField(analysisjob.FieldCurrentPhaseName, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseNameCleared() {
		_spec.ClearField(analysisjob.FieldCurrentPhaseName, field.TypeString)
	}
	if value, ok := _u.mutation.ProgressDetail(); ok {
		_spec.SetField(analysisjob.FieldProgressDetail, field.TypeString, value)
	}
	if _u.mutation.ProgressDetailCleared() {
		_spec.ClearField(analysisjob.FieldProgressDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedPhases(); ok {
		_spec.SetField(analysisjob.FieldCompletedPhases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedPhases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldCompletedPhases, value)
		})
	}
	if _u.mutation.CompletedPhasesCleared() {
		_spec.ClearField(analysisjob.FieldCompletedPhases, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseResults(); ok {
		_spec.SetField(analysisjob.FieldPhaseResults, field.TypeJSON, value)
	}
	if _u.mutation.PhaseResultsCleared() {
		_spec.ClearField(analysisjob.FieldPhaseResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalLlmCalls(); ok {
		_spec.SetField(analysisjob.FieldTotalLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLlmCalls(); ok {
		_spec.AddField(analysisjob.FieldTotalLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(analysisjob.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(analysisjob.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(analysisjob.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(analysisjob.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanSnapshot(); ok {
		_spec.SetField(analysisjob.FieldPlanSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.PlanSnapshotCleared() {
		_spec.ClearField(analysisjob.FieldPlanSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestSnapshot(); ok {
		_spec.SetField(analysisjob.FieldRequestSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.RequestSnapshotCleared() {
		_spec.ClearField(analysisjob.FieldRequestSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocumentMap(); ok {
		_spec.SetField(analysisjob.FieldDocumentMap, field.TypeJSON, value)
	}
	if _u.mutation.DocumentMapCleared() {
		_spec.ClearField(analysisjob.FieldDocumentMap, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelToken(); ok {
		_spec.SetField(analysisjob.FieldCancelToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(analysisjob.FieldWorkflowKey, field.TypeString, value)
	}
	if _u.mutation.WorkflowKeyCleared() {
		_spec.ClearField(analysisjob.FieldWorkflowKey, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysisjob.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(analysisjob.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.OutputsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.OutputsTable,
			Columns: []string{analysisjob.OutputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutputsIDs(); len(nodes) > 0 && !_u.mutation.OutputsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.OutputsTable,
			Columns: []string{analysisjob.OutputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.OutputsTable,
			Columns: []string{analysisjob.OutputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViewRefinementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   analysisjob.ViewRefinementTable,
			Columns: []string{analysisjob.ViewRefinementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(viewrefinement.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViewRefinementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   analysisjob.ViewRefinementTable,
			Columns: []string{analysisjob.ViewRefinementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(viewrefinement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PolishesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.PolishesTable,
			Columns: []string{analysisjob.PolishesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPolishesIDs(); len(nodes) > 0 && !_u.mutation.PolishesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.PolishesTable,
			Columns: []string{analysisjob.PolishesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolishesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.PolishesTable,
			Columns: []string{analysisjob.PolishesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AnalysisJobUpdateOne is the builder for updating a single AnalysisJob entity.
type AnalysisJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AnalysisJobMutation
}

// SetPlanID sets the "plan_id" field.
func (_u *AnalysisJobUpdateOne) SetPlanID(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetPlanID(v)
	return _u
}

// SetNillablePlanID sets the "plan_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillablePlanID(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetPlanID(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AnalysisJobUpdateOne) SetStatus(v analysisjob.Status) *AnalysisJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStatus(v *analysisjob.Status) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetCurrentPhase sets the "current_phase" field.
func (_u *AnalysisJobUpdateOne) SetCurrentPhase(v float64) *AnalysisJobUpdateOne {
	_u.mutation.ResetCurrentPhase()
	_u.mutation.SetCurrentPhase(v)
	return _u
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCurrentPhase(v *float64) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCurrentPhase(*v)
	}
	return _u
}

// AddCurrentPhase adds value to the "current_phase" field.
func (_u *AnalysisJobUpdateOne) AddCurrentPhase(v float64) *AnalysisJobUpdateOne {
	_u.mutation.AddCurrentPhase(v)
	return _u
}

// ClearCurrentPhase clears the value of the "current_phase" field.
func (_u *AnalysisJobUpdateOne) ClearCurrentPhase() *AnalysisJobUpdateOne {
	_u.mutation.ClearCurrentPhase()
	return _u
}

// SetCurrentPhaseName sets the "current_phase_name" field.
func (_u *AnalysisJobUpdateOne) SetCurrentPhaseName(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetCurrentPhaseName(v)
	return _u
}

// SetNillableCurrentPhaseName sets the "current_phase_name" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCurrentPhaseName(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCurrentPhaseName(*v)
	}
	return _u
}

// ClearCurrentPhaseName clears the value of the "current_phase_name" field.
func (_u *AnalysisJobUpdateOne) ClearCurrentPhaseName() *AnalysisJobUpdateOne {
	_u.mutation.ClearCurrentPhaseName()
	return _u
}

// SetProgressDetail sets the "progress_detail" field.
func (_u *AnalysisJobUpdateOne) SetProgressDetail(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetProgressDetail(v)
	return _u
}

// SetNillableProgressDetail sets the "progress_detail" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableProgressDetail(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetProgressDetail(*v)
	}
	return _u
}

// ClearProgressDetail clears the value of the "progress_detail" field.
func (_u *AnalysisJobUpdateOne) ClearProgressDetail() *AnalysisJobUpdateOne {
	_u.mutation.ClearProgressDetail()
	return _u
}

// SetCompletedPhases sets the "completed_phases" field.
func (_u *AnalysisJobUpdateOne) SetCompletedPhases(v []float64) *AnalysisJobUpdateOne {
	_u.mutation.SetCompletedPhases(v)
	return _u
}

// AppendCompletedPhases appends value to the "completed_phases" field.
func (_u *AnalysisJobUpdateOne) AppendCompletedPhases(v []float64) *AnalysisJobUpdateOne {
	_u.mutation.AppendCompletedPhases(v)
	return _u
}

// ClearCompletedPhases clears the value of the "completed_phases" field.
func (_u *AnalysisJobUpdateOne) ClearCompletedPhases() *AnalysisJobUpdateOne {
	_u.mutation.ClearCompletedPhases()
	return _u
}

// SetPhaseResults sets the "phase_results" field.
func (_u *AnalysisJobUpdateOne) SetPhaseResults(v map[string]interface{}) *AnalysisJobUpdateOne {
	_u.mutation.SetPhaseResults(v)
	return _u
}

// ClearPhaseResults clears the value of the "phase_results" field.
func (_u *AnalysisJobUpdateOne) ClearPhaseResults() *AnalysisJobUpdateOne {
	_u.mutation.ClearPhaseResults()
	return _u
}

// SetTotalLlmCalls sets the "total_llm_calls" field.
func (_u *AnalysisJobUpdateOne) SetTotalLlmCalls(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetTotalLlmCalls()
	_u.mutation.SetTotalLlmCalls(v)
	return _u
}

// SetNillableTotalLlmCalls sets the "total_llm_calls" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableTotalLlmCalls(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetTotalLlmCalls(*v)
	}
	return _u
}

// AddTotalLlmCalls adds value to the "total_llm_calls" field.
func (_u *AnalysisJobUpdateOne) AddTotalLlmCalls(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddTotalLlmCalls(v)
	return _u
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_u *AnalysisJobUpdateOne) SetTotalInputTokens(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetTotalInputTokens()
	_u.mutation.SetTotalInputTokens(v)
	return _u
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableTotalInputTokens(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetTotalInputTokens(*v)
	}
	return _u
}

// AddTotalInputTokens adds value to the "total_input_tokens" field.
func (_u *AnalysisJobUpdateOne) AddTotalInputTokens(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddTotalInputTokens(v)
	return _u
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_u *AnalysisJobUpdateOne) SetTotalOutputTokens(v int) *AnalysisJobUpdateOne {
	_u.mutation.ResetTotalOutputTokens()
	_u.mutation.SetTotalOutputTokens(v)
	return _u
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableTotalOutputTokens(v *int) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetTotalOutputTokens(*v)
	}
	return _u
}

// AddTotalOutputTokens adds value to the "total_output_tokens" field.
func (_u *AnalysisJobUpdateOne) AddTotalOutputTokens(v int) *AnalysisJobUpdateOne {
	_u.mutation.AddTotalOutputTokens(v)
	return _u
}

// SetPlanSnapshot sets the "plan_snapshot" field.
func (_u *AnalysisJobUpdateOne) SetPlanSnapshot(v map[string]interface{}) *AnalysisJobUpdateOne {
	_u.mutation.SetPlanSnapshot(v)
	return _u
}

// ClearPlanSnapshot clears the value of the "plan_snapshot" field.
func (_u *AnalysisJobUpdateOne) ClearPlanSnapshot() *AnalysisJobUpdateOne {
	_u.mutation.ClearPlanSnapshot()
	return _u
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_u *AnalysisJobUpdateOne) SetRequestSnapshot(v map[string]interface{}) *AnalysisJobUpdateOne {
	_u.mutation.SetRequestSnapshot(v)
	return _u
}

// ClearRequestSnapshot clears the value of the "request_snapshot" field.
func (_u *AnalysisJobUpdateOne) ClearRequestSnapshot() *AnalysisJobUpdateOne {
	_u.mutation.ClearRequestSnapshot()
	return _u
}

// SetDocumentMap sets the "document_map" field.
func (_u *AnalysisJobUpdateOne) SetDocumentMap(v map[string]string) *AnalysisJobUpdateOne {
	_u.mutation.SetDocumentMap(v)
	return _u
}

// ClearDocumentMap clears the value of the "document_map" field.
func (_u *AnalysisJobUpdateOne) ClearDocumentMap() *AnalysisJobUpdateOne {
	_u.mutation.ClearDocumentMap()
	return _u
}

// SetCancelToken sets the "cancel_token" field.
func (_u *AnalysisJobUpdateOne) SetCancelToken(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetCancelToken(v)
	return _u
}

// SetNillableCancelToken sets the "cancel_token" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCancelToken(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCancelToken(*v)
	}
	return _u
}

// SetWorkflowKey sets the "workflow_key" field.
func (_u *AnalysisJobUpdateOne) SetWorkflowKey(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetWorkflowKey(v)
	return _u
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableWorkflowKey(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetWorkflowKey(*v)
	}
	return _u
}

// ClearWorkflowKey clears the value of the "workflow_key" field.
func (_u *AnalysisJobUpdateOne) ClearWorkflowKey() *AnalysisJobUpdateOne {
	_u.mutation.ClearWorkflowKey()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *AnalysisJobUpdateOne) SetCreatedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCreatedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetStartedAt sets the "started_at" field.
func (_u *AnalysisJobUpdateOne) SetStartedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetStartedAt(v)
	return _u
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableStartedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetStartedAt(*v)
	}
	return _u
}

// ClearStartedAt clears the value of the "started_at" field.
func (_u *AnalysisJobUpdateOne) ClearStartedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearStartedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *AnalysisJobUpdateOne) SetCompletedAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableCompletedAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *AnalysisJobUpdateOne) ClearCompletedAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *AnalysisJobUpdateOne) SetErrorMessage(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableErrorMessage(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *AnalysisJobUpdateOne) ClearErrorMessage() *AnalysisJobUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *AnalysisJobUpdateOne) SetPodID(v string) *AnalysisJobUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillablePodID(v *string) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *AnalysisJobUpdateOne) ClearPodID() *AnalysisJobUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_u *AnalysisJobUpdateOne) SetLastInteractionAt(v time.Time) *AnalysisJobUpdateOne {
	_u.mutation.SetLastInteractionAt(v)
	return _u
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableLastInteractionAt(v *time.Time) *AnalysisJobUpdateOne {
	if v != nil {
		_u.SetLastInteractionAt(*v)
	}
	return _u
}

// ClearLastInteractionAt clears the value of the "last_interaction_at" field.
func (_u *AnalysisJobUpdateOne) ClearLastInteractionAt() *AnalysisJobUpdateOne {
	_u.mutation.ClearLastInteractionAt()
	return _u
}

// AddOutputIDs adds the "outputs" edge to the PhaseOutput entity by IDs.
func (_u *AnalysisJobUpdateOne) AddOutputIDs(ids ...string) *AnalysisJobUpdateOne {
	_u.mutation.AddOutputIDs(ids...)
	return _u
}

// AddOutputs adds the "outputs" edges to the PhaseOutput entity.
func (_u *AnalysisJobUpdateOne) AddOutputs(v ...*PhaseOutput) *AnalysisJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddOutputIDs(ids...)
}

// SetViewRefinementID sets the "view_refinement" edge to the ViewRefinement entity by ID.
func (_u *AnalysisJobUpdateOne) SetViewRefinementID(id string) *AnalysisJobUpdateOne {
	_u.mutation.SetViewRefinementID(id)
	return _u
}

// SetNillableViewRefinementID sets the "view_refinement" edge to the ViewRefinement entity by ID if the given value is not nil.
func (_u *AnalysisJobUpdateOne) SetNillableViewRefinementID(id *string) *AnalysisJobUpdateOne {
	if id != nil {
		_u = _u.SetViewRefinementID(*id)
	}
	return _u
}

// SetViewRefinement sets the "view_refinement" edge to the ViewRefinement entity.
func (_u *AnalysisJobUpdateOne) SetViewRefinement(v *ViewRefinement) *AnalysisJobUpdateOne {
	return _u.SetViewRefinementID(v.ID)
}

// AddPolishIDs adds the "polishes" edge to the PolishCache entity by IDs.
func (_u *AnalysisJobUpdateOne) AddPolishIDs(ids ...string) *AnalysisJobUpdateOne {
	_u.mutation.AddPolishIDs(ids...)
	return _u
}

// AddPolishes adds the "polishes" edges to the PolishCache entity.
func (_u *AnalysisJobUpdateOne) AddPolishes(v ...*PolishCache) *AnalysisJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddPolishIDs(ids...)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_u *AnalysisJobUpdateOne) Mutation() *AnalysisJobMutation {
	return _u.mutation
}

// ClearOutputs clears all "outputs" edges to the PhaseOutput entity.
func (_u *AnalysisJobUpdateOne) ClearOutputs() *AnalysisJobUpdateOne {
	_u.mutation.ClearOutputs()
	return _u
}

// RemoveOutputIDs removes the "outputs" edge to PhaseOutput entities by IDs.
func (_u *AnalysisJobUpdateOne) RemoveOutputIDs(ids ...string) *AnalysisJobUpdateOne {
	_u.mutation.RemoveOutputIDs(ids...)
	return _u
}

// RemoveOutputs removes "outputs" edges to PhaseOutput entities.
func (_u *AnalysisJobUpdateOne) RemoveOutputs(v ...*PhaseOutput) *AnalysisJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveOutputIDs(ids...)
}

// ClearViewRefinement clears the "view_refinement" edge to the ViewRefinement entity.
func (_u *AnalysisJobUpdateOne) ClearViewRefinement() *AnalysisJobUpdateOne {
	_u.mutation.ClearViewRefinement()
	return _u
}

// ClearPolishes clears all "polishes" edges to the PolishCache entity.
func (_u *AnalysisJobUpdateOne) ClearPolishes() *AnalysisJobUpdateOne {
	_u.mutation.ClearPolishes()
	return _u
}

// RemovePolishIDs removes the "polishes" edge to PolishCache entities by IDs.
func (_u *AnalysisJobUpdateOne) RemovePolishIDs(ids ...string) *AnalysisJobUpdateOne {
	_u.mutation.RemovePolishIDs(ids...)
	return _u
}

// RemovePolishes removes "polishes" edges to PolishCache entities.
func (_u *AnalysisJobUpdateOne) RemovePolishes(v ...*PolishCache) *AnalysisJobUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemovePolishIDs(ids...)
}

// Where appends a list predicates to the AnalysisJobUpdate builder.
func (_u *AnalysisJobUpdateOne) Where(ps ...predicate.AnalysisJob) *AnalysisJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AnalysisJobUpdateOne) Select(field string, fields ...string) *AnalysisJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated AnalysisJob entity.
func (_u *AnalysisJobUpdateOne) Save(ctx context.Context) (*AnalysisJob, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) SaveX(ctx context.Context) *AnalysisJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AnalysisJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AnalysisJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AnalysisJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	return nil
}

func (_u *AnalysisJobUpdateOne) sqlSave(ctx context.Context) (_node *AnalysisJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(analysisjob.Table, analysisjob.Columns, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "AnalysisJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, analysisjob.FieldID)
		for _, f := range fields {
			if !analysisjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != analysisjob.FieldID {
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
	if value, ok := _u.mutation.PlanID(); ok {
		_spec.SetField(analysisjob.FieldPlanID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.CurrentPhase(); ok {
		_spec.SetField(analysisjob.FieldCurrentPhase, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedCurrentPhase(); ok {
		_spec.AddField(analysisjob.FieldCurrentPhase, field.TypeFloat64, value)
	}
	if _u.mutation.CurrentPhaseCleared() {
		_spec.ClearField(analysisjob.FieldCurrentPhase, field.TypeFloat64)
	}
	if value, ok := _u.mutation.CurrentPhaseName(); ok {
		_spec.SetField(analysisjob.FieldCurrentPhaseName, field.TypeString, value)
	}
	if _u.mutation.CurrentPhaseNameCleared() {
		_spec.ClearField(analysisjob.FieldCurrentPhaseName, field.TypeString)
	}
	if value, ok := _u.mutation.ProgressDetail(); ok {
		_spec.SetField(analysisjob.FieldProgressDetail, field.TypeString, value)
	}
	if _u.mutation.ProgressDetailCleared() {
		_spec.ClearField(analysisjob.FieldProgressDetail, field.TypeString)
	}
	if value, ok := _u.mutation.CompletedPhases(); ok {
		_spec.SetField(analysisjob.FieldCompletedPhases, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedCompletedPhases(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, analysisjob.FieldCompletedPhases, value)
		})
	}
	if _u.mutation.CompletedPhasesCleared() {
		_spec.ClearField(analysisjob.FieldCompletedPhases, field.TypeJSON)
	}
	if value, ok := _u.mutation.PhaseResults(); ok {
		_spec.SetField(analysisjob.FieldPhaseResults, field.TypeJSON, value)
	}
	if _u.mutation.PhaseResultsCleared() {
		_spec.ClearField(analysisjob.FieldPhaseResults, field.TypeJSON)
	}
	if value, ok := _u.mutation.TotalLlmCalls(); ok {
		_spec.SetField(analysisjob.FieldTotalLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalLlmCalls(); ok {
		_spec.AddField(analysisjob.FieldTotalLlmCalls, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalInputTokens(); ok {
		_spec.SetField(analysisjob.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalInputTokens(); ok {
		_spec.AddField(analysisjob.FieldTotalInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.TotalOutputTokens(); ok {
		_spec.SetField(analysisjob.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedTotalOutputTokens(); ok {
		_spec.AddField(analysisjob.FieldTotalOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PlanSnapshot(); ok {
		_spec.SetField(analysisjob.FieldPlanSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.PlanSnapshotCleared() {
		_spec.ClearField(analysisjob.FieldPlanSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.RequestSnapshot(); ok {
		_spec.SetField(analysisjob.FieldRequestSnapshot, field.TypeJSON, value)
	}
	if _u.mutation.RequestSnapshotCleared() {
		_spec.ClearField(analysisjob.FieldRequestSnapshot, field.TypeJSON)
	}
	if value, ok := _u.mutation.DocumentMap(); ok {
		_spec.SetField(analysisjob.FieldDocumentMap, field.TypeJSON, value)
	}
	if _u.mutation.DocumentMapCleared() {
		_spec.ClearField(analysisjob.FieldDocumentMap, field.TypeJSON)
	}
	if value, ok := _u.mutation.CancelToken(); ok {
		_spec.SetField(analysisjob.FieldCancelToken, field.TypeString, value)
	}
	if value, ok := _u.mutation.WorkflowKey(); ok {
		_spec.SetField(analysisjob.FieldWorkflowKey, field.TypeString, value)
	}
	if _u.mutation.WorkflowKeyCleared() {
		_spec.ClearField(analysisjob.FieldWorkflowKey, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
	}
	if _u.mutation.StartedAtCleared() {
		_spec.ClearField(analysisjob.FieldStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(analysisjob.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(analysisjob.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(analysisjob.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysisjob.FieldLastInteractionAt, field.TypeTime, value)
	}
	if _u.mutation.LastInteractionAtCleared() {
		_spec.ClearField(analysisjob.FieldLastInteractionAt, field.TypeTime)
	}
	if _u.mutation.OutputsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.OutputsTable,
			Columns: []string{analysisjob.OutputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedOutputsIDs(); len(nodes) > 0 && !_u.mutation.OutputsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.OutputsTable,
			Columns: []string{analysisjob.OutputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.OutputsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.OutputsTable,
			Columns: []string{analysisjob.OutputsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.ViewRefinementCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   analysisjob.ViewRefinementTable,
			Columns: []string{analysisjob.ViewRefinementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(viewrefinement.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ViewRefinementIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: false,
			Table:   analysisjob.ViewRefinementTable,
			Columns: []string{analysisjob.ViewRefinementColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(viewrefinement.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.PolishesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.PolishesTable,
			Columns: []string{analysisjob.PolishesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedPolishesIDs(); len(nodes) > 0 && !_u.mutation.PolishesCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.PolishesTable,
			Columns: []string{analysisjob.PolishesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.PolishesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   analysisjob.PolishesTable,
			Columns: []string{analysisjob.PolishesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &AnalysisJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{analysisjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
