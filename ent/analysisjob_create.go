// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/polishcache"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// AnalysisJobCreate is the builder for creating a AnalysisJob entity.
type AnalysisJobCreate struct {
	config
	mutation *AnalysisJobMutation
	hooks    []Hook
}

// SetPlanID sets the "plan_id" field.
func (_c *AnalysisJobCreate) SetPlanID(v string) *AnalysisJobCreate {
	_c.mutation.SetPlanID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *AnalysisJobCreate) SetStatus(v analysisjob.Status) *AnalysisJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStatus(v *analysisjob.Status) *AnalysisJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetCurrentPhase sets the "current_phase" field.
func (_c *AnalysisJobCreate) SetCurrentPhase(v float64) *AnalysisJobCreate {
	_c.mutation.SetCurrentPhase(v)
	return _c
}

// SetNillableCurrentPhase sets the "current_phase" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCurrentPhase(v *float64) *AnalysisJobCreate {
	if v != nil {
		_c.SetCurrentPhase(*v)
	}
	return _c
}

// SetCurrentPhaseName sets the "current_phase_name" field.
func (_c *AnalysisJobCreate) SetCurrentPhaseName(v string) *AnalysisJobCreate {
	_c.mutation.SetCurrentPhaseName(v)
	return _c
}

// SetNillableCurrentPhaseName sets the "current_phase_name" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCurrentPhaseName(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetCurrentPhaseName(*v)
	}
	return _c
}

// SetProgressDetail sets the "progress_detail" field.
func (_c *AnalysisJobCreate) SetProgressDetail(v string) *AnalysisJobCreate {
	_c.mutation.SetProgressDetail(v)
	return _c
}

// SetNillableProgressDetail sets the "progress_detail" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableProgressDetail(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetProgressDetail(*v)
	}
	return _c
}

// SetCompletedPhases sets the "completed_phases" field.
func (_c *AnalysisJobCreate) SetCompletedPhases(v []float64) *AnalysisJobCreate {
	_c.mutation.SetCompletedPhases(v)
	return _c
}

// SetPhaseResults sets the "phase_results" field.
func (_c *AnalysisJobCreate) SetPhaseResults(v map[string]interface{}) *AnalysisJobCreate {
	_c.mutation.SetPhaseResults(v)
	return _c
}

// SetTotalLlmCalls sets the "total_llm_calls" field.
func (_c *AnalysisJobCreate) SetTotalLlmCalls(v int) *AnalysisJobCreate {
	_c.mutation.SetTotalLlmCalls(v)
	return _c
}

// SetNillableTotalLlmCalls sets the "total_llm_calls" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableTotalLlmCalls(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetTotalLlmCalls(*v)
	}
	return _c
}

// SetTotalInputTokens sets the "total_input_tokens" field.
func (_c *AnalysisJobCreate) SetTotalInputTokens(v int) *AnalysisJobCreate {
	_c.mutation.SetTotalInputTokens(v)
	return _c
}

// SetNillableTotalInputTokens sets the "total_input_tokens" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableTotalInputTokens(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetTotalInputTokens(*v)
	}
	return _c
}

// SetTotalOutputTokens sets the "total_output_tokens" field.
func (_c *AnalysisJobCreate) SetTotalOutputTokens(v int) *AnalysisJobCreate {
	_c.mutation.SetTotalOutputTokens(v)
	return _c
}

// SetNillableTotalOutputTokens sets the "total_output_tokens" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableTotalOutputTokens(v *int) *AnalysisJobCreate {
	if v != nil {
		_c.SetTotalOutputTokens(*v)
	}
	return _c
}

// SetPlanSnapshot sets the "plan_snapshot" field.
func (_c *AnalysisJobCreate) SetPlanSnapshot(v map[string]interface{}) *AnalysisJobCreate {
	_c.mutation.SetPlanSnapshot(v)
	return _c
}

// SetRequestSnapshot sets the "request_snapshot" field.
func (_c *AnalysisJobCreate) SetRequestSnapshot(v map[string]interface{}) *AnalysisJobCreate {
	_c.mutation.SetRequestSnapshot(v)
	return _c
}

// SetDocumentMap sets the "document_map" field.
func (_c *AnalysisJobCreate) SetDocumentMap(v map[string]string) *AnalysisJobCreate {
	_c.mutation.SetDocumentMap(v)
	return _c
}

// SetCancelToken sets the "cancel_token" field.
func (_c *AnalysisJobCreate) SetCancelToken(v string) *AnalysisJobCreate {
	_c.mutation.SetCancelToken(v)
	return _c
}

// SetWorkflowKey sets the "workflow_key" field.
func (_c *AnalysisJobCreate) SetWorkflowKey(v string) *AnalysisJobCreate {
	_c.mutation.SetWorkflowKey(v)
	return _c
}

// SetNillableWorkflowKey sets the "workflow_key" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableWorkflowKey(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetWorkflowKey(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AnalysisJobCreate) SetCreatedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCreatedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetStartedAt sets the "started_at" field.
func (_c *AnalysisJobCreate) SetStartedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetStartedAt(v)
	return _c
}

// SetNillableStartedAt sets the "started_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableStartedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetStartedAt(*v)
	}
	return _c
}

// SetCompletedAt sets the "completed_at" field.
func (_c *AnalysisJobCreate) SetCompletedAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetCompletedAt(v)
	return _c
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableCompletedAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetCompletedAt(*v)
	}
	return _c
}

// SetErrorMessage sets the "error_message" field.
func (_c *AnalysisJobCreate) SetErrorMessage(v string) *AnalysisJobCreate {
	_c.mutation.SetErrorMessage(v)
	return _c
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableErrorMessage(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetErrorMessage(*v)
	}
	return _c
}

// SetPodID sets the "pod_id" field.
func (_c *AnalysisJobCreate) SetPodID(v string) *AnalysisJobCreate {
	_c.mutation.SetPodID(v)
	return _c
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillablePodID(v *string) *AnalysisJobCreate {
	if v != nil {
		_c.SetPodID(*v)
	}
	return _c
}

// SetLastInteractionAt sets the "last_interaction_at" field.
func (_c *AnalysisJobCreate) SetLastInteractionAt(v time.Time) *AnalysisJobCreate {
	_c.mutation.SetLastInteractionAt(v)
	return _c
}

// SetNillableLastInteractionAt sets the "last_interaction_at" field if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableLastInteractionAt(v *time.Time) *AnalysisJobCreate {
	if v != nil {
		_c.SetLastInteractionAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AnalysisJobCreate) SetID(v string) *AnalysisJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddOutputIDs adds the "outputs" edge to the PhaseOutput entity by IDs.
func (_c *AnalysisJobCreate) AddOutputIDs(ids ...string) *AnalysisJobCreate {
	_c.mutation.AddOutputIDs(ids...)
	return _c
}

// AddOutputs adds the "outputs" edges to the PhaseOutput entity.
func (_c *AnalysisJobCreate) AddOutputs(v ...*PhaseOutput) *AnalysisJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddOutputIDs(ids...)
}

// SetViewRefinementID sets the "view_refinement" edge to the ViewRefinement entity by ID.
func (_c *AnalysisJobCreate) SetViewRefinementID(id string) *AnalysisJobCreate {
	_c.mutation.SetViewRefinementID(id)
	return _c
}

// SetNillableViewRefinementID sets the "view_refinement" edge to the ViewRefinement entity by ID if the given value is not nil.
func (_c *AnalysisJobCreate) SetNillableViewRefinementID(id *string) *AnalysisJobCreate {
	if id != nil {
		_c = _c.SetViewRefinementID(*id)
	}
	return _c
}

// SetViewRefinement sets the "view_refinement" edge to the ViewRefinement entity.
func (_c *AnalysisJobCreate) SetViewRefinement(v *ViewRefinement) *AnalysisJobCreate {
	return _c.SetViewRefinementID(v.ID)
}

// AddPolishIDs adds the "polishes" edge to the PolishCache entity by IDs.
func (_c *AnalysisJobCreate) AddPolishIDs(ids ...string) *AnalysisJobCreate {
	_c.mutation.AddPolishIDs(ids...)
	return _c
}

// AddPolishes adds the "polishes" edges to the PolishCache entity.
func (_c *AnalysisJobCreate) AddPolishes(v ...*PolishCache) *AnalysisJobCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddPolishIDs(ids...)
}

// Mutation returns the AnalysisJobMutation object of the builder.
func (_c *AnalysisJobCreate) Mutation() *AnalysisJobMutation {
	return _c.mutation
}

// Save creates the AnalysisJob in the database.
func (_c *AnalysisJobCreate) Save(ctx context.Context) (*AnalysisJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AnalysisJobCreate) SaveX(ctx context.Context) *AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AnalysisJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := analysisjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.TotalLlmCalls(); !ok {
		v := analysisjob.DefaultTotalLlmCalls
		_c.mutation.SetTotalLlmCalls(v)
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		v := analysisjob.DefaultTotalInputTokens
		_c.mutation.SetTotalInputTokens(v)
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		v := analysisjob.DefaultTotalOutputTokens
		_c.mutation.SetTotalOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := analysisjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AnalysisJobCreate) check() error {
	if _, ok := _c.mutation.PlanID(); !ok {
		return &ValidationError{Name: "plan_id", err: errors.New(`ent: missing required field "AnalysisJob.plan_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "AnalysisJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := analysisjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "AnalysisJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.TotalLlmCalls(); !ok {
		return &ValidationError{Name: "total_llm_calls", err: errors.New(`ent: missing required field "AnalysisJob.total_llm_calls"`)}
	}
	if _, ok := _c.mutation.TotalInputTokens(); !ok {
		return &ValidationError{Name: "total_input_tokens", err: errors.New(`ent: missing required field "AnalysisJob.total_input_tokens"`)}
	}
	if _, ok := _c.mutation.TotalOutputTokens(); !ok {
		return &ValidationError{Name: "total_output_tokens", err: errors.New(`ent: missing required field "AnalysisJob.total_output_tokens"`)}
	}
	if _, ok := _c.mutation.CancelToken(); !ok {
		return &ValidationError{Name: "cancel_token", err: errors.New(`ent: missing required field "AnalysisJob.cancel_token"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "AnalysisJob.created_at"`)}
	}
	return nil
}

func (_c *AnalysisJobCreate) sqlSave(ctx context.Context) (*AnalysisJob, error) {
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
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AnalysisJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AnalysisJobCreate) createSpec() (*AnalysisJob, *sqlgraph.CreateSpec) {
	var (
		_node = &AnalysisJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(analysisjob.Table, sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PlanID(); ok {
		_spec.SetField(analysisjob.FieldPlanID, field.TypeString, value)
		_node.PlanID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(analysisjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.CurrentPhase(); ok {
		_spec.SetField(analysisjob.FieldCurrentPhase, field.TypeFloat64, value)
		_node.CurrentPhase = value
	}
	if value, ok := _c.mutation.CurrentPhaseName(); ok {
		_spec.SetField(analysisjob.FieldCurrentPhaseName, field.TypeString, value)
		_node.CurrentPhaseName = value
	}
	if value, ok := _c.mutation.ProgressDetail(); ok {
		_spec.SetField(analysisjob.FieldProgressDetail, field.TypeString, value)
		_node.ProgressDetail = value
	}
	if value, ok := _c.mutation.CompletedPhases(); ok {
		_spec.SetField(analysisjob.FieldCompletedPhases, field.TypeJSON, value)
		_node.CompletedPhases = value
	}
	if value, ok := _c.mutation.PhaseResults(); ok {
		_spec.SetField(analysisjob.FieldPhaseResults, field.TypeJSON, value)
		_node.PhaseResults = value
	}
	if value, ok := _c.mutation.TotalLlmCalls(); ok {
		_spec.SetField(analysisjob.FieldTotalLlmCalls, field.TypeInt, value)
		_node.TotalLlmCalls = value
	}
	if value, ok := _c.mutation.TotalInputTokens(); ok {
		_spec.SetField(analysisjob.FieldTotalInputTokens, field.TypeInt, value)
		_node.TotalInputTokens = value
	}
	if value, ok := _c.mutation.TotalOutputTokens(); ok {
		_spec.SetField(analysisjob.FieldTotalOutputTokens, field.TypeInt, value)
		_node.TotalOutputTokens = value
	}
	if value, ok := _c.mutation.PlanSnapshot(); ok {
		_spec.SetField(analysisjob.FieldPlanSnapshot, field.TypeJSON, value)
		_node.PlanSnapshot = value
	}
	if value, ok := _c.mutation.RequestSnapshot(); ok {
		_spec.SetField(analysisjob.FieldRequestSnapshot, field.TypeJSON, value)
		_node.RequestSnapshot = value
	}
	if value, ok := _c.mutation.DocumentMap(); ok {
		_spec.SetField(analysisjob.FieldDocumentMap, field.TypeJSON, value)
		_node.DocumentMap = value
	}
	if value, ok := _c.mutation.CancelToken(); ok {
		_spec.SetField(analysisjob.FieldCancelToken, field.TypeString, value)
		_node.CancelToken = value
	}
	if value, ok := _c.mutation.WorkflowKey(); ok {
		_spec.SetField(analysisjob.FieldWorkflowKey, field.TypeString, value)
		_node.WorkflowKey = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(analysisjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.StartedAt(); ok {
		_spec.SetField(analysisjob.FieldStartedAt, field.TypeTime, value)
		_node.StartedAt = &value
	}
	if value, ok := _c.mutation.CompletedAt(); ok {
		_spec.SetField(analysisjob.FieldCompletedAt, field.TypeTime, value)
		_node.CompletedAt = &value
	}
	if value, ok := _c.mutation.ErrorMessage(); ok {
		_spec.SetField(analysisjob.FieldErrorMessage, field.TypeString, value)
		_node.ErrorMessage = &value
	}
	if value, ok := _c.mutation.PodID(); ok {
		_spec.SetField(analysisjob.FieldPodID, field.TypeString, value)
		_node.PodID = &value
	}
	if value, ok := _c.mutation.LastInteractionAt(); ok {
		_spec.SetField(analysisjob.FieldLastInteractionAt, field.TypeTime, value)
		_node.LastInteractionAt = &value
	}
	if nodes := _c.mutation.OutputsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.ViewRefinementIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.PolishesIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AnalysisJobCreateBulk is the builder for creating many AnalysisJob entities in bulk.
type AnalysisJobCreateBulk struct {
	config
	err      error
	builders []*AnalysisJobCreate
}

// Save creates the AnalysisJob entities in the database.
func (_c *AnalysisJobCreateBulk) Save(ctx context.Context) ([]*AnalysisJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*AnalysisJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AnalysisJobMutation)
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
func (_c *AnalysisJobCreateBulk) SaveX(ctx context.Context) []*AnalysisJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AnalysisJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AnalysisJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
