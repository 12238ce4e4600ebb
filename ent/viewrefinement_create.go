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
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// ViewRefinementCreate is the builder for creating a ViewRefinement entity.
type ViewRefinementCreate struct {
	config
	mutation *ViewRefinementMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *ViewRefinementCreate) SetJobID(v string) *ViewRefinementCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetRefinedViews sets the "refined_views" field.
func (_c *ViewRefinementCreate) SetRefinedViews(v []map[string]interface{}) *ViewRefinementCreate {
	_c.mutation.SetRefinedViews(v)
	return _c
}

// SetChangeSummary sets the "change_summary" field.
func (_c *ViewRefinementCreate) SetChangeSummary(v string) *ViewRefinementCreate {
	_c.mutation.SetChangeSummary(v)
	return _c
}

// SetNillableChangeSummary sets the "change_summary" field if the given value is not nil.
func (_c *ViewRefinementCreate) SetNillableChangeSummary(v *string) *ViewRefinementCreate {
	if v != nil {
		_c.SetChangeSummary(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *ViewRefinementCreate) SetModelUsed(v string) *ViewRefinementCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *ViewRefinementCreate) SetNillableModelUsed(v *string) *ViewRefinementCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *ViewRefinementCreate) SetInputTokens(v int) *ViewRefinementCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *ViewRefinementCreate) SetNillableInputTokens(v *int) *ViewRefinementCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *ViewRefinementCreate) SetOutputTokens(v int) *ViewRefinementCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *ViewRefinementCreate) SetNillableOutputTokens(v *int) *ViewRefinementCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ViewRefinementCreate) SetCreatedAt(v time.Time) *ViewRefinementCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ViewRefinementCreate) SetNillableCreatedAt(v *time.Time) *ViewRefinementCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ViewRefinementCreate) SetID(v string) *ViewRefinementCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the AnalysisJob entity.
func (_c *ViewRefinementCreate) SetJob(v *AnalysisJob) *ViewRefinementCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the ViewRefinementMutation object of the builder.
func (_c *ViewRefinementCreate) Mutation() *ViewRefinementMutation {
	return _c.mutation
}

// Save creates the ViewRefinement in the database.
func (_c *ViewRefinementCreate) Save(ctx context.Context) (*ViewRefinement, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ViewRefinementCreate) SaveX(ctx context.Context) *ViewRefinement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViewRefinementCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViewRefinementCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ViewRefinementCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := viewrefinement.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := viewrefinement.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := viewrefinement.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ViewRefinementCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "ViewRefinement.job_id"`)}
	}
	if _, ok := _c.mutation.RefinedViews(); !ok {
		return &ValidationError{Name: "refined_views", err: errors.New(`ent: missing required field "ViewRefinement.refined_views"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "ViewRefinement.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "ViewRefinement.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ViewRefinement.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "ViewRefinement.job"`)}
	}
	return nil
}

func (_c *ViewRefinementCreate) sqlSave(ctx context.Context) (*ViewRefinement, error) {
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
			return nil, fmt.Errorf("unexpected ViewRefinement.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ViewRefinementCreate) createSpec() (*ViewRefinement, *sqlgraph.CreateSpec) {
	var (
		_node = &ViewRefinement{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(viewrefinement.Table, sqlgraph.NewFieldSpec(viewrefinement.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.RefinedViews(); ok {
		_spec.SetField(viewrefinement.FieldRefinedViews, field.TypeJSON, value)
		_node.RefinedViews = value
	}
	if value, ok := _c.mutation.ChangeSummary(); ok {
		_spec.SetField(viewrefinement.FieldChangeSummary, field.TypeString, value)
		_node.ChangeSummary = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(viewrefinement.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(viewrefinement.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(viewrefinement.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(viewrefinement.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2O,
			Inverse: true,
			Table:   viewrefinement.JobTable,
			Columns: []string{viewrefinement.JobColumn},
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
	return _node, _spec
}

// ViewRefinementCreateBulk is the builder for creating many ViewRefinement entities in bulk.
type ViewRefinementCreateBulk struct {
	config
	err      error
	builders []*ViewRefinementCreate
}

// Save creates the ViewRefinement entities in the database.
func (_c *ViewRefinementCreateBulk) Save(ctx context.Context) ([]*ViewRefinement, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ViewRefinement, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ViewRefinementMutation)
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
func (_c *ViewRefinementCreateBulk) SaveX(ctx context.Context) []*ViewRefinement {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ViewRefinementCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ViewRefinementCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
