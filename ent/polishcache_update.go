// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/exegete-ai/exegete/ent/polishcache"
	"github.com/exegete-ai/exegete/ent/predicate"
)

// PolishCacheUpdate is the builder for updating PolishCache entities.
type PolishCacheUpdate struct {
	config
	hooks    []Hook
	mutation *PolishCacheMutation
}

// Where appends a list predicates to the PolishCacheUpdate builder.
func (_u *PolishCacheUpdate) Where(ps ...predicate.PolishCache) *PolishCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetProse sets the "prose" field.
func (_u *PolishCacheUpdate) SetProse(v string) *PolishCacheUpdate {
	_u.mutation.SetProse(v)
	return _u
}

// SetNillableProse sets the "prose" field if the given value is not nil.
func (_u *PolishCacheUpdate) SetNillableProse(v *string) *PolishCacheUpdate {
	if v != nil {
		_u.SetProse(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PolishCacheUpdate) SetModelUsed(v string) *PolishCacheUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PolishCacheUpdate) SetNillableModelUsed(v *string) *PolishCacheUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *PolishCacheUpdate) ClearModelUsed() *PolishCacheUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PolishCacheUpdate) SetInputTokens(v int) *PolishCacheUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PolishCacheUpdate) SetNillableInputTokens(v *int) *PolishCacheUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PolishCacheUpdate) AddInputTokens(v int) *PolishCacheUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PolishCacheUpdate) SetOutputTokens(v int) *PolishCacheUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PolishCacheUpdate) SetNillableOutputTokens(v *int) *PolishCacheUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PolishCacheUpdate) AddOutputTokens(v int) *PolishCacheUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PolishCacheUpdate) SetCreatedAt(v time.Time) *PolishCacheUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PolishCacheUpdate) SetNillableCreatedAt(v *time.Time) *PolishCacheUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PolishCacheMutation object of the builder.
func (_u *PolishCacheUpdate) Mutation() *PolishCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PolishCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolishCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PolishCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolishCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolishCacheUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolishCache.job"`)
	}
	return nil
}

func (_u *PolishCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(polishcache.Table, polishcache.Columns, sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Prose(); ok {
		_spec.SetField(polishcache.FieldProse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(polishcache.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(polishcache.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(polishcache.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(polishcache.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(polishcache.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(polishcache.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(polishcache.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{polishcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PolishCacheUpdateOne is the builder for updating a single PolishCache entity.
type PolishCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PolishCacheMutation
}

// SetProse sets the "prose" field.
func (_u *PolishCacheUpdateOne) SetProse(v string) *PolishCacheUpdateOne {
	_u.mutation.SetProse(v)
	return _u
}

// SetNillableProse sets the "prose" field if the given value is not nil.
func (_u *PolishCacheUpdateOne) SetNillableProse(v *string) *PolishCacheUpdateOne {
	if v != nil {
		_u.SetProse(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PolishCacheUpdateOne) SetModelUsed(v string) *PolishCacheUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PolishCacheUpdateOne) SetNillableModelUsed(v *string) *PolishCacheUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *PolishCacheUpdateOne) ClearModelUsed() *PolishCacheUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PolishCacheUpdateOne) SetInputTokens(v int) *PolishCacheUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PolishCacheUpdateOne) SetNillableInputTokens(v *int) *PolishCacheUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PolishCacheUpdateOne) AddInputTokens(v int) *PolishCacheUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PolishCacheUpdateOne) SetOutputTokens(v int) *PolishCacheUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PolishCacheUpdateOne) SetNillableOutputTokens(v *int) *PolishCacheUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PolishCacheUpdateOne) AddOutputTokens(v int) *PolishCacheUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PolishCacheUpdateOne) SetCreatedAt(v time.Time) *PolishCacheUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PolishCacheUpdateOne) SetNillableCreatedAt(v *time.Time) *PolishCacheUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PolishCacheMutation object of the builder.
func (_u *PolishCacheUpdateOne) Mutation() *PolishCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the PolishCacheUpdate builder.
func (_u *PolishCacheUpdateOne) Where(ps ...predicate.PolishCache) *PolishCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PolishCacheUpdateOne) Select(field string, fields ...string) *PolishCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PolishCache entity.
func (_u *PolishCacheUpdateOne) Save(ctx context.Context) (*PolishCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PolishCacheUpdateOne) SaveX(ctx context.Context) *PolishCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PolishCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PolishCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PolishCacheUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PolishCache.job"`)
	}
	return nil
}

func (_u *PolishCacheUpdateOne) sqlSave(ctx context.Context) (_node *PolishCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(polishcache.Table, polishcache.Columns, sqlgraph.NewFieldSpec(polishcache.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PolishCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, polishcache.FieldID)
		for _, f := range fields {
			if !polishcache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != polishcache.FieldID {
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
	if value, ok := _u.mutation.Prose(); ok {
		_spec.SetField(polishcache.FieldProse, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(polishcache.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(polishcache.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(polishcache.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(polishcache.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(polishcache.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(polishcache.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(polishcache.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &PolishCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{polishcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
