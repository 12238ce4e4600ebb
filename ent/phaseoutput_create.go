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
	"github.com/exegete-ai/exegete/ent/presentationcache"
)

// PhaseOutputCreate is the builder for creating a PhaseOutput entity.
type PhaseOutputCreate struct {
	config
	mutation *PhaseOutputMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *PhaseOutputCreate) SetJobID(v string) *PhaseOutputCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetPhaseNumber sets the "phase_number" field.
func (_c *PhaseOutputCreate) SetPhaseNumber(v float64) *PhaseOutputCreate {
	_c.mutation.SetPhaseNumber(v)
	return _c
}

// SetEngineKey sets the "engine_key" field.
func (_c *PhaseOutputCreate) SetEngineKey(v string) *PhaseOutputCreate {
	_c.mutation.SetEngineKey(v)
	return _c
}

// SetPassNumber sets the "pass_number" field.
func (_c *PhaseOutputCreate) SetPassNumber(v int) *PhaseOutputCreate {
	_c.mutation.SetPassNumber(v)
	return _c
}

// SetWorkKey sets the "work_key" field.
func (_c *PhaseOutputCreate) SetWorkKey(v string) *PhaseOutputCreate {
	_c.mutation.SetWorkKey(v)
	return _c
}

// SetNillableWorkKey sets the "work_key" field if the given value is not nil.
func (_c *PhaseOutputCreate) SetNillableWorkKey(v *string) *PhaseOutputCreate {
	if v != nil {
		_c.SetWorkKey(*v)
	}
	return _c
}

// SetStanceKey sets the "stance_key" field.
func (_c *PhaseOutputCreate) SetStanceKey(v string) *PhaseOutputCreate {
	_c.mutation.SetStanceKey(v)
	return _c
}

// SetNillableStanceKey sets the "stance_key" field if the given value is not nil.
func (_c *PhaseOutputCreate) SetNillableStanceKey(v *string) *PhaseOutputCreate {
	if v != nil {
		_c.SetStanceKey(*v)
	}
	return _c
}

// SetRole sets the "role" field.
func (_c *PhaseOutputCreate) SetRole(v string) *PhaseOutputCreate {
	_c.mutation.SetRole(v)
	return _c
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_c *PhaseOutputCreate) SetNillableRole(v *string) *PhaseOutputCreate {
	if v != nil {
		_c.SetRole(*v)
	}
	return _c
}

// SetContent sets the "content" field.
func (_c *PhaseOutputCreate) SetContent(v string) *PhaseOutputCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *PhaseOutputCreate) SetModelUsed(v string) *PhaseOutputCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *PhaseOutputCreate) SetInputTokens(v int) *PhaseOutputCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *PhaseOutputCreate) SetNillableInputTokens(v *int) *PhaseOutputCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *PhaseOutputCreate) SetOutputTokens(v int) *PhaseOutputCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *PhaseOutputCreate) SetNillableOutputTokens(v *int) *PhaseOutputCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetParentID sets the "parent_id" field.
func (_c *PhaseOutputCreate) SetParentID(v string) *PhaseOutputCreate {
	_c.mutation.SetParentID(v)
	return _c
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_c *PhaseOutputCreate) SetNillableParentID(v *string) *PhaseOutputCreate {
	if v != nil {
		_c.SetParentID(*v)
	}
	return _c
}

// SetMetadata sets the "metadata" field.
func (_c *PhaseOutputCreate) SetMetadata(v map[string]interface{}) *PhaseOutputCreate {
	_c.mutation.SetMetadata(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PhaseOutputCreate) SetCreatedAt(v time.Time) *PhaseOutputCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PhaseOutputCreate) SetNillableCreatedAt(v *time.Time) *PhaseOutputCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PhaseOutputCreate) SetID(v string) *PhaseOutputCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the AnalysisJob entity.
func (_c *PhaseOutputCreate) SetJob(v *AnalysisJob) *PhaseOutputCreate {
	return _c.SetJobID(v.ID)
}

// AddCacheEntryIDs adds the "cache_entries" edge to the PresentationCache entity by IDs.
func (_c *PhaseOutputCreate) AddCacheEntryIDs(ids ...string) *PhaseOutputCreate {
	_c.mutation.AddCacheEntryIDs(ids...)
	return _c
}

// AddCacheEntries adds the "cache_entries" edges to the PresentationCache entity.
func (_c *PhaseOutputCreate) AddCacheEntries(v ...*PresentationCache) *PhaseOutputCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddCacheEntryIDs(ids...)
}

// Mutation returns the PhaseOutputMutation object of the builder.
func (_c *PhaseOutputCreate) Mutation() *PhaseOutputMutation {
	return _c.mutation
}

// Save creates the PhaseOutput in the database.
func (_c *PhaseOutputCreate) Save(ctx context.Context) (*PhaseOutput, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PhaseOutputCreate) SaveX(ctx context.Context) *PhaseOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseOutputCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseOutputCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PhaseOutputCreate) defaults() {
	if _, ok := _c.mutation.WorkKey(); !ok {
		v := phaseoutput.DefaultWorkKey
		_c.mutation.SetWorkKey(v)
	}
	if _, ok := _c.mutation.Role(); !ok {
		v := phaseoutput.DefaultRole
		_c.mutation.SetRole(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := phaseoutput.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := phaseoutput.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := phaseoutput.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PhaseOutputCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "PhaseOutput.job_id"`)}
	}
	if _, ok := _c.mutation.PhaseNumber(); !ok {
		return &ValidationError{Name: "phase_number", err: errors.New(`ent: missing required field "PhaseOutput.phase_number"`)}
	}
	if _, ok := _c.mutation.EngineKey(); !ok {
		return &ValidationError{Name: "engine_key", err: errors.New(`ent: missing required field "PhaseOutput.engine_key"`)}
	}
	if _, ok := _c.mutation.PassNumber(); !ok {
		return &ValidationError{Name: "pass_number", err: errors.New(`ent: missing required field "PhaseOutput.pass_number"`)}
	}
	if _, ok := _c.mutation.WorkKey(); !ok {
		return &ValidationError{Name: "work_key", err: errors.New(`ent: missing required field "PhaseOutput.work_key"`)}
	}
	if _, ok := _c.mutation.Role(); !ok {
		return &ValidationError{Name: "role", err: errors.New(`ent: missing required field "PhaseOutput.role"`)}
	}
	if _, ok := _c.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "PhaseOutput.content"`)}
	}
	if _, ok := _c.mutation.ModelUsed(); !ok {
		return &ValidationError{Name: "model_used", err: errors.New(`ent: missing required field "PhaseOutput.model_used"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "PhaseOutput.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "PhaseOutput.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PhaseOutput.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "PhaseOutput.job"`)}
	}
	return nil
}

func (_c *PhaseOutputCreate) sqlSave(ctx context.Context) (*PhaseOutput, error) {
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
			return nil, fmt.Errorf("unexpected PhaseOutput.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PhaseOutputCreate) createSpec() (*PhaseOutput, *sqlgraph.CreateSpec) {
	var (
		_node = &PhaseOutput{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(phaseoutput.Table, sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PhaseNumber(); ok {
		_spec.SetField(phaseoutput.FieldPhaseNumber, field.TypeFloat64, value)
		_node.PhaseNumber = value
	}
	if value, ok := _c.mutation.EngineKey(); ok {
		_spec.SetField(phaseoutput.FieldEngineKey, field.TypeString, value)
		_node.EngineKey = value
	}
	if value, ok := _c.mutation.PassNumber(); ok {
		_spec.SetField(phaseoutput.FieldPassNumber, field.TypeInt, value)
		_node.PassNumber = value
	}
	if value, ok := _c.mutation.WorkKey(); ok {
		_spec.SetField(phaseoutput.FieldWorkKey, field.TypeString, value)
		_node.WorkKey = value
	}
	if value, ok := _c.mutation.StanceKey(); ok {
		_spec.SetField(phaseoutput.FieldStanceKey, field.TypeString, value)
		_node.StanceKey = value
	}
	if value, ok := _c.mutation.Role(); ok {
		_spec.SetField(phaseoutput.FieldRole, field.TypeString, value)
		_node.Role = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(phaseoutput.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(phaseoutput.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(phaseoutput.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(phaseoutput.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.ParentID(); ok {
		_spec.SetField(phaseoutput.FieldParentID, field.TypeString, value)
		_node.ParentID = &value
	}
	if value, ok := _c.mutation.Metadata(); ok {
		_spec.SetField(phaseoutput.FieldMetadata, field.TypeJSON, value)
		_node.Metadata = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(phaseoutput.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   phaseoutput.JobTable,
			Columns: []string{phaseoutput.JobColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(analysisjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.JobID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.CacheEntriesIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   phaseoutput.CacheEntriesTable,
			Columns: []string{phaseoutput.CacheEntriesColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(presentationcache.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PhaseOutputCreateBulk is the builder for creating many PhaseOutput entities in bulk.
type PhaseOutputCreateBulk struct {
	config
	err      error
	builders []*PhaseOutputCreate
}

// Save creates the PhaseOutput entities in the database.
func (_c *PhaseOutputCreateBulk) Save(ctx context.Context) ([]*PhaseOutput, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PhaseOutput, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PhaseOutputMutation)
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
func (_c *PhaseOutputCreateBulk) SaveX(ctx context.Context) []*PhaseOutput {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PhaseOutputCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PhaseOutputCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
