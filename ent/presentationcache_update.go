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
	"github.com/exegete-ai/exegete/ent/predicate"
	"github.com/exegete-ai/exegete/ent/presentationcache"
)

// PresentationCacheUpdate is the builder for updating PresentationCache entities.
type PresentationCacheUpdate struct {
	config
	hooks    []Hook
	mutation *PresentationCacheMutation
}

// Where appends a list predicates to the PresentationCacheUpdate builder.
func (_u *PresentationCacheUpdate) Where(ps ...predicate.PresentationCache) *PresentationCacheUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSourceHash sets the "source_hash" field.
func (_u *PresentationCacheUpdate) SetSourceHash(v string) *PresentationCacheUpdate {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *PresentationCacheUpdate) SetNillableSourceHash(v *string) *PresentationCacheUpdate {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetSkipHashCheck sets the "skip_hash_check" field.
func (_u *PresentationCacheUpdate) SetSkipHashCheck(v bool) *PresentationCacheUpdate {
	_u.mutation.SetSkipHashCheck(v)
	return _u
}

// SetNillableSkipHashCheck sets the "skip_hash_check" field if the given value is not nil.
func (_u *PresentationCacheUpdate) SetNillableSkipHashCheck(v *bool) *PresentationCacheUpdate {
	if v != nil {
		_u.SetSkipHashCheck(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PresentationCacheUpdate) SetPayload(v map[string]interface{}) *PresentationCacheUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PresentationCacheUpdate) SetModelUsed(v string) *PresentationCacheUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PresentationCacheUpdate) SetNillableModelUsed(v *string) *PresentationCacheUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *PresentationCacheUpdate) ClearModelUsed() *PresentationCacheUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PresentationCacheUpdate) SetCreatedAt(v time.Time) *PresentationCacheUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PresentationCacheUpdate) SetNillableCreatedAt(v *time.Time) *PresentationCacheUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PresentationCacheMutation object of the builder.
func (_u *PresentationCacheUpdate) Mutation() *PresentationCacheMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PresentationCacheUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PresentationCacheUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PresentationCacheUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PresentationCacheUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PresentationCacheUpdate) check() error {
	if _u.mutation.OutputCleared() && len(_u.mutation.OutputIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PresentationCache.output"`)
	}
	return nil
}

func (_u *PresentationCacheUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(presentationcache.Table, presentationcache.Columns, sqlgraph.NewFieldSpec(presentationcache.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(presentationcache.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkipHashCheck(); ok {
		_spec.SetField(presentationcache.FieldSkipHashCheck, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(presentationcache.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(presentationcache.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(presentationcache.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(presentationcache.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{presentationcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PresentationCacheUpdateOne is the builder for updating a single PresentationCache entity.
type PresentationCacheUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PresentationCacheMutation
}

// SetSourceHash sets the "source_hash" field.
func (_u *PresentationCacheUpdateOne) SetSourceHash(v string) *PresentationCacheUpdateOne {
	_u.mutation.SetSourceHash(v)
	return _u
}

// SetNillableSourceHash sets the "source_hash" field if the given value is not nil.
func (_u *PresentationCacheUpdateOne) SetNillableSourceHash(v *string) *PresentationCacheUpdateOne {
	if v != nil {
		_u.SetSourceHash(*v)
	}
	return _u
}

// SetSkipHashCheck sets the "skip_hash_check" field.
func (_u *PresentationCacheUpdateOne) SetSkipHashCheck(v bool) *PresentationCacheUpdateOne {
	_u.mutation.SetSkipHashCheck(v)
	return _u
}

// SetNillableSkipHashCheck sets the "skip_hash_check" field if the given value is not nil.
func (_u *PresentationCacheUpdateOne) SetNillableSkipHashCheck(v *bool) *PresentationCacheUpdateOne {
	if v != nil {
		_u.SetSkipHashCheck(*v)
	}
	return _u
}

// SetPayload sets the "payload" field.
func (_u *PresentationCacheUpdateOne) SetPayload(v map[string]interface{}) *PresentationCacheUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PresentationCacheUpdateOne) SetModelUsed(v string) *PresentationCacheUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PresentationCacheUpdateOne) SetNillableModelUsed(v *string) *PresentationCacheUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *PresentationCacheUpdateOne) ClearModelUsed() *PresentationCacheUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PresentationCacheUpdateOne) SetCreatedAt(v time.Time) *PresentationCacheUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PresentationCacheUpdateOne) SetNillableCreatedAt(v *time.Time) *PresentationCacheUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the PresentationCacheMutation object of the builder.
func (_u *PresentationCacheUpdateOne) Mutation() *PresentationCacheMutation {
	return _u.mutation
}

// Where appends a list predicates to the PresentationCacheUpdate builder.
func (_u *PresentationCacheUpdateOne) Where(ps ...predicate.PresentationCache) *PresentationCacheUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PresentationCacheUpdateOne) Select(field string, fields ...string) *PresentationCacheUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PresentationCache entity.
func (_u *PresentationCacheUpdateOne) Save(ctx context.Context) (*PresentationCache, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PresentationCacheUpdateOne) SaveX(ctx context.Context) *PresentationCache {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PresentationCacheUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PresentationCacheUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PresentationCacheUpdateOne) check() error {
	if _u.mutation.OutputCleared() && len(_u.mutation.OutputIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PresentationCache.output"`)
	}
	return nil
}

func (_u *PresentationCacheUpdateOne) sqlSave(ctx context.Context) (_node *PresentationCache, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(presentationcache.Table, presentationcache.Columns, sqlgraph.NewFieldSpec(presentationcache.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PresentationCache.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, presentationcache.FieldID)
		for _, f := range fields {
			if !presentationcache.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != presentationcache.FieldID {
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
	if value, ok := _u.mutation.SourceHash(); ok {
		_spec.SetField(presentationcache.FieldSourceHash, field.TypeString, value)
	}
	if value, ok := _u.mutation.SkipHashCheck(); ok {
		_spec.SetField(presentationcache.FieldSkipHashCheck, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(presentationcache.FieldPayload, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(presentationcache.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(presentationcache.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(presentationcache.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &PresentationCache{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{presentationcache.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
