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
	"github.com/exegete-ai/exegete/ent/polishcache"
)

// PolishCacheCreate is the builder for creating a PolishCache entity.
type PolishCacheCreate struct {
	config
	mutation *PolishCacheMutation
	hooks    []Hook
}

// SetJobID sets the "job_id" field.
func (_c *PolishCacheCreate) SetJobID(v string) *PolishCacheCreate {
	_c.mutation.SetJobID(v)
	return _c
}

// SetViewKey sets the "view_key" field.
func (_c *PolishCacheCreate) SetViewKey(v string) *PolishCacheCreate {
	_c.mutation.SetViewKey(v)
	return _c
}

// SetSchoolKey sets the "school_key" field.
func (_c *PolishCacheCreate) SetSchoolKey(v string) *PolishCacheCreate {
	_c.mutation.SetSchoolKey(v)
	return _c
}

// SetProse sets the "prose" field.
func (_c *PolishCacheCreate) SetProse(v string) *PolishCacheCreate {
	_c.mutation.SetProse(v)
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *PolishCacheCreate) SetModelUsed(v string) *PolishCacheCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *PolishCacheCreate) SetNillableModelUsed(v *string) *PolishCacheCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *PolishCacheCreate) SetInputTokens(v int) *PolishCacheCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *PolishCacheCreate) SetNillableInputTokens(v *int) *PolishCacheCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *PolishCacheCreate) SetOutputTokens(v int) *PolishCacheCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *PolishCacheCreate) SetNillableOutputTokens(v *int) *PolishCacheCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PolishCacheCreate) SetCreatedAt(v time.Time) *PolishCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PolishCacheCreate) SetNillableCreatedAt(v *time.Time) *PolishCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PolishCacheCreate) SetID(v string) *PolishCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetJob sets the "job" edge to the AnalysisJob entity.
func (_c *PolishCacheCreate) SetJob(v *AnalysisJob) *PolishCacheCreate {
	return _c.SetJobID(v.ID)
}

// Mutation returns the PolishCacheMutation object of the builder.
func (_c *PolishCacheCreate) Mutation() *PolishCacheMutation {
	return _c.mutation
}

// Save creates the PolishCache in the database.
func (_c *PolishCacheCreate) Save(ctx context.Context) (*PolishCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PolishCacheCreate) SaveX(ctx context.Context) *PolishCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolishCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolishCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PolishCacheCreate) defaults() {
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := polishcache.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := polishcache.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := polishcache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PolishCacheCreate) check() error {
	if _, ok := _c.mutation.JobID(); !ok {
		return &ValidationError{Name: "job_id", err: errors.New(`ent: missing required field "PolishCache.job_id"`)}
	}
	if _, ok := _c.mutation.ViewKey(); !ok {
		return &ValidationError{Name: "view_key", err: errors.New(`ent: missing required field "PolishCache.view_key"`)}
	}
	if _, ok := _c.mutation.SchoolKey(); !ok {
		return &ValidationError{Name: "school_key", err: errors.New(`ent: missing required field "PolishCache.school_key"`)}
	}
	if _, ok := _c.mutation.Prose(); !ok {
		return &ValidationError{Name: "prose", err: errors.New(`ent: missing required field "PolishCache.prose"`)}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "PolishCache.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "PolishCache.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PolishCache.created_at"`)}
	}
	if len(_c.mutation.JobIDs()) == 0 {
		return &ValidationError{Name: "job", err: errors.New(`ent: missing required edge "PolishCache.job"`)}
	}
	return nil
}

func (_c *PolishCacheCreate) sqlSave(ctx context.Context) (*PolishCache, error) {
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
			return nil, fmt.Errorf("unexpected PolishCache.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PolishCacheCreate) createSpec() (*PolishCache, *sqlgraph.CreateSpec) {
	var (
		_node = &PolishCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(polishcache.Table, sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ViewKey(); ok {
		_spec.SetField(polishcache.FieldViewKey, field.TypeString, value)
		_node.ViewKey = value
	}
	if value, ok := _c.mutation.SchoolKey(); ok {
		_spec.SetField(polishcache.FieldSchoolKey, field.TypeString, value)
		_node.SchoolKey = value
	}
	if value, ok := _c.mutation.Prose(); ok {
		_spec.SetField(polishcache.FieldProse, field.TypeString, value)
		_node.Prose = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(polishcache.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(polishcache.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(polishcache.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(polishcache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.JobIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   polishcache.JobTable,
			Columns: []string{polishcache.JobColumn},
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

// PolishCacheCreateBulk is the builder for creating many PolishCache entities in bulk.
type PolishCacheCreateBulk struct {
	config
	err      error
	builders []*PolishCacheCreate
}

// Save creates the PolishCache entities in the database.
func (_c *PolishCacheCreateBulk) Save(ctx context.Context) ([]*PolishCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PolishCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PolishCacheMutation)
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
func (_c *PolishCacheCreateBulk) SaveX(ctx context.Context) []*PolishCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PolishCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PolishCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
