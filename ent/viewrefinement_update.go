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
	"github.com/exegete-ai/exegete/ent/predicate"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// ViewRefinementUpdate is the builder for updating ViewRefinement entities.
type ViewRefinementUpdate struct {
	config
	hooks    []Hook
	mutation *ViewRefinementMutation
}

// Where appends a list predicates to the ViewRefinementUpdate builder.
func (_u *ViewRefinementUpdate) Where(ps ...predicate.ViewRefinement) *ViewRefinementUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetRefinedViews sets the "refined_views" field.
func (_u *ViewRefinementUpdate) SetRefinedViews(v []map[string]interface{}) *ViewRefinementUpdate {
	_u.mutation.SetRefinedViews(v)
	return _u
}

// AppendRefinedViews appends value to the "refined_views" field.
func (_u *ViewRefinementUpdate) AppendRefinedViews(v []map[string]interface{}) *ViewRefinementUpdate {
	_u.mutation.AppendRefinedViews(v)
	return _u
}

// SetChangeSummary sets the "change_summary" field.
func (_u *ViewRefinementUpdate) SetChangeSummary(v string) *ViewRefinementUpdate {
	_u.mutation.SetChangeSummary(v)
	return _u
}

// SetNillableChangeSummary sets the "change_summary" field if the given value is not nil.
func (_u *ViewRefinementUpdate) SetNillableChangeSummary(v *string) *ViewRefinementUpdate {
	if v != nil {
		_u.SetChangeSummary(*v)
	}
	return _u
}

// ClearChangeSummary clears the value of the "change_summary" field.
func (_u *ViewRefinementUpdate) ClearChangeSummary() *ViewRefinementUpdate {
	_u.mutation.ClearChangeSummary()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ViewRefinementUpdate) SetModelUsed(v string) *ViewRefinementUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ViewRefinementUpdate) SetNillableModelUsed(v *string) *ViewRefinementUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ViewRefinementUpdate) ClearModelUsed() *ViewRefinementUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ViewRefinementUpdate) SetInputTokens(v int) *ViewRefinementUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ViewRefinementUpdate) SetNillableInputTokens(v *int) *ViewRefinementUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ViewRefinementUpdate) AddInputTokens(v int) *ViewRefinementUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ViewRefinementUpdate) SetOutputTokens(v int) *ViewRefinementUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ViewRefinementUpdate) SetNillableOutputTokens(v *int) *ViewRefinementUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ViewRefinementUpdate) AddOutputTokens(v int) *ViewRefinementUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ViewRefinementUpdate) SetCreatedAt(v time.Time) *ViewRefinementUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ViewRefinementUpdate) SetNillableCreatedAt(v *time.Time) *ViewRefinementUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ViewRefinementMutation object of the builder.
func (_u *ViewRefinementUpdate) Mutation() *ViewRefinementMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ViewRefinementUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViewRefinementUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ViewRefinementUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViewRefinementUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViewRefinementUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ViewRefinement.job"`)
	}
	return nil
}

func (_u *ViewRefinementUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewrefinement.Table, viewrefinement.Columns, sqlgraph.NewFieldSpec(viewrefinement.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.RefinedViews(); ok {
		_spec.SetField(viewrefinement.FieldRefinedViews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRefinedViews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, viewrefinement.FieldRefinedViews, value)
		})
	}
	if value, ok := _u.mutation.ChangeSummary(); ok {
		_spec.SetField(viewrefinement.FieldChangeSummary, field.TypeString, value)
	}
	if _u.mutation.ChangeSummaryCleared() {
		_spec.ClearField(viewrefinement.FieldChangeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(viewrefinement.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(viewrefinement.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(viewrefinement.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(viewrefinement.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(viewrefinement.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(viewrefinement.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(viewrefinement.FieldCreatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewrefinement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ViewRefinementUpdateOne is the builder for updating a single ViewRefinement entity.
type ViewRefinementUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ViewRefinementMutation
}

// SetRefinedViews sets the "refined_views" field.
func (_u *ViewRefinementUpdateOne) SetRefinedViews(v []map[string]interface{}) *ViewRefinementUpdateOne {
	_u.mutation.SetRefinedViews(v)
	return _u
}

// AppendRefinedViews appends value to the "refined_views" field.
func (_u *ViewRefinementUpdateOne) AppendRefinedViews(v []map[string]interface{}) *ViewRefinementUpdateOne {
	_u.mutation.AppendRefinedViews(v)
	return _u
}

// SetChangeSummary sets the "change_summary" field.
func (_u *ViewRefinementUpdateOne) SetChangeSummary(v string) *ViewRefinementUpdateOne {
	_u.mutation.SetChangeSummary(v)
	return _u
}

// SetNillableChangeSummary sets the "change_summary" field if the given value is not nil.
func (_u *ViewRefinementUpdateOne) SetNillableChangeSummary(v *string) *ViewRefinementUpdateOne {
	if v != nil {
		_u.SetChangeSummary(*v)
	}
	return _u
}

// ClearChangeSummary clears the value of the "change_summary" field.
func (_u *ViewRefinementUpdateOne) ClearChangeSummary() *ViewRefinementUpdateOne {
	_u.mutation.ClearChangeSummary()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ViewRefinementUpdateOne) SetModelUsed(v string) *ViewRefinementUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ViewRefinementUpdateOne) SetNillableModelUsed(v *string) *ViewRefinementUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ViewRefinementUpdateOne) ClearModelUsed() *ViewRefinementUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ViewRefinementUpdateOne) SetInputTokens(v int) *ViewRefinementUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ViewRefinementUpdateOne) SetNillableInputTokens(v *int) *ViewRefinementUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ViewRefinementUpdateOne) AddInputTokens(v int) *ViewRefinementUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ViewRefinementUpdateOne) SetOutputTokens(v int) *ViewRefinementUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ViewRefinementUpdateOne) SetNillableOutputTokens(v *int) *ViewRefinementUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ViewRefinementUpdateOne) AddOutputTokens(v int) *ViewRefinementUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *ViewRefinementUpdateOne) SetCreatedAt(v time.Time) *ViewRefinementUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *ViewRefinementUpdateOne) SetNillableCreatedAt(v *time.Time) *ViewRefinementUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// Mutation returns the ViewRefinementMutation object of the builder.
func (_u *ViewRefinementUpdateOne) Mutation() *ViewRefinementMutation {
	return _u.mutation
}

// Where appends a list predicates to the ViewRefinementUpdate builder.
func (_u *ViewRefinementUpdateOne) Where(ps ...predicate.ViewRefinement) *ViewRefinementUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ViewRefinementUpdateOne) Select(field string, fields ...string) *ViewRefinementUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ViewRefinement entity.
func (_u *ViewRefinementUpdateOne) Save(ctx context.Context) (*ViewRefinement, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ViewRefinementUpdateOne) SaveX(ctx context.Context) *ViewRefinement {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ViewRefinementUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ViewRefinementUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ViewRefinementUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ViewRefinement.job"`)
	}
	return nil
}

func (_u *ViewRefinementUpdateOne) sqlSave(ctx context.Context) (_node *ViewRefinement, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(viewrefinement.Table, viewrefinement.Columns, sqlgraph.NewFieldSpec(viewrefinement.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ViewRefinement.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, viewrefinement.FieldID)
		for _, f := range fields {
			if !viewrefinement.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != viewrefinement.FieldID {
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
	if value, ok := _u.mutation.RefinedViews(); ok {
		_spec.SetField(viewrefinement.FieldRefinedViews, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedRefinedViews(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, viewrefinement.FieldRefinedViews, value)
		})
	}
	if value, ok := _u.mutation.ChangeSummary(); ok {
		_spec.SetField(viewrefinement.FieldChangeSummary, field.TypeString, value)
	}
	if _u.mutation.ChangeSummaryCleared() {
		_spec.ClearField(viewrefinement.FieldChangeSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(viewrefinement.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(viewrefinement.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(viewrefinement.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(viewrefinement.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(viewrefinement.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(viewrefinement.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(viewrefinement.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &ViewRefinement{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{viewrefinement.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
