// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/presentationcache"
)

// PresentationCacheCreate is the builder for creating a PresentationCache entity.
type PresentationCacheCreate struct {
	config
	mutation *PresentationCacheMutation
	hooks    []Hook
}

// SetOutputID sets the "output_id" field.
func (_c *PresentationCacheCreate) SetOutputID(v string) *PresentationCacheCreate {
	_c.mutation.SetOutputID(v)
	return _c
}

// SetSectionKey sets the "section_key" field.
func (_c *PresentationCacheCreate) SetSectionKey(v string) *PresentationCacheCreate {
	_c.mutation.SetSectionKey(v)
	return _c
}

// SetSourceHash sets the "source_hash" field.
func (_c *PresentationCacheCreate) SetSourceHash(v string) *PresentationCacheCreate {
	_c.mutation.SetSourceHash(v)
	return _c
}

// SetSkipHashCheck sets the "skip_hash_check" field.
func (_c *PresentationCacheCreate) SetSkipHashCheck(v bool) *PresentationCacheCreate {
	_c.mutation.SetSkipHashCheck(v)
	return _c
}

// SetNillableSkipHashCheck sets the "skip_hash_check" field if the given value is not nil.
func (_c *PresentationCacheCreate) SetNillableSkipHashCheck(v *bool) *PresentationCacheCreate {
	if v != nil {
		_c.SetSkipHashCheck(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *PresentationCacheCreate) SetPayload(v map[string]interface{}) *PresentationCacheCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *PresentationCacheCreate) SetModelUsed(v string) *PresentationCacheCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *PresentationCacheCreate) SetNillableModelUsed(v *string) *PresentationCacheCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PresentationCacheCreate) SetCreatedAt(v time.Time) *PresentationCacheCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PresentationCacheCreate) SetNillableCreatedAt(v *time.Time) *PresentationCacheCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PresentationCacheCreate) SetID(v string) *PresentationCacheCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetOutput sets the "output" edge to the PhaseOutput entity.
func (_c *PresentationCacheCreate) SetOutput(v *PhaseOutput) *PresentationCacheCreate {
	return _c.SetOutputID(v.ID)
}

// Mutation returns the PresentationCacheMutation object of the builder.
func (_c *PresentationCacheCreate) Mutation() *PresentationCacheMutation {
	return _c.mutation
}

// Save creates the PresentationCache in the database.
func (_c *PresentationCacheCreate) Save(ctx context.Context) (*PresentationCache, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PresentationCacheCreate) SaveX(ctx context.Context) *PresentationCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresentationCacheCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresentationCacheCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PresentationCacheCreate) defaults() {
	if _, ok := _c.mutation.SkipHashCheck(); !ok {
		v := presentationcache.DefaultSkipHashCheck
		_c.mutation.SetSkipHashCheck(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := presentationcache.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PresentationCacheCreate) check() error {
	if _, ok := _c.mutation.OutputID(); !ok {
		return &ValidationError{Name: "output_id", err: errors.New(`ent: missing required field "PresentationCache.output_id"`)}
	}
	if _, ok := _c.mutation.SectionKey(); !ok {
		return &ValidationError{Name: "section_key", err: errors.New(`ent: missing required field "PresentationCache.section_key"`)}
	}
	if _, ok := _c.mutation.SourceHash(); !ok {
		return &ValidationError{Name: "source_hash", err: errors.New(`ent: missing required field "PresentationCache.source_hash"`)}
	}
	if _, ok := _c.mutation.SkipHashCheck(); !ok {
		return &ValidationError{Name: "skip_hash_check", err: errors.New(`ent: missing required field "PresentationCache.skip_hash_check"`)}
	}
	if _, ok := _c.mutation.Payload(); !ok {
		return &ValidationError{Name: "payload", err: errors.New(`ent: missing required field "PresentationCache.payload"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "PresentationCache.created_at"`)}
	}
	if len(_c.mutation.OutputIDs()) == 0 {
		return &ValidationError{Name: "output", err: errors.New(`ent: missing required edge "PresentationCache.output"`)}
	}
	return nil
}

func (_c *PresentationCacheCreate) sqlSave(ctx context.Context) (*PresentationCache, error) {
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
			return nil, fmt.Errorf("unexpected PresentationCache.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PresentationCacheCreate) createSpec() (*PresentationCache, *sqlgraph.CreateSpec) {
	var (
		_node = &PresentationCache{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(presentationcache.Table, sqlgraph.NewFieldSpec(presentationcache.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.SectionKey(); ok {
		_spec.SetField(presentationcache.FieldSectionKey, field.TypeString, value)
		_node.SectionKey = value
	}
	if value, ok := _c.mutation.SourceHash(); ok {
		_spec.SetField(presentationcache.FieldSourceHash, field.TypeString, value)
		_node.SourceHash = value
	}
	if value, ok := _c.mutation.SkipHashCheck(); ok {
		_spec.SetField(presentationcache.FieldSkipHashCheck, field.TypeBool, value)
		_node.SkipHashCheck = value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(presentationcache.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(presentationcache.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(presentationcache.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.OutputIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   presentationcache.OutputTable,
			Columns: []string{presentationcache.OutputColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.OutputID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PresentationCacheCreateBulk is the builder for creating many PresentationCache entities in bulk.
type PresentationCacheCreateBulk struct {
	config
	err      error
	builders []*PresentationCacheCreate
}

// Save creates the PresentationCache entities in the database.
func (_c *PresentationCacheCreateBulk) Save(ctx context.Context) ([]*PresentationCache, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*PresentationCache, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PresentationCacheMutation)
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
func (_c *PresentationCacheCreateBulk) SaveX(ctx context.Context) []*PresentationCache {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PresentationCacheCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PresentationCacheCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
