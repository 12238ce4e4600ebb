// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/predicate"
	"github.com/exegete-ai/exegete/ent/presentationcache"
)

// PhaseOutputUpdate is the builder for updating PhaseOutput entities.
type PhaseOutputUpdate struct {
	config
	hooks    []Hook
	mutation *PhaseOutputMutation
}

// Where appends a list predicates to the PhaseOutputUpdate builder.
func (_u *PhaseOutputUpdate) Where(ps ...predicate.PhaseOutput) *PhaseOutputUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStanceKey sets the "stance_key" field.
func (_u *PhaseOutputUpdate) SetStanceKey(v string) *PhaseOutputUpdate {
	_u.mutation.SetStanceKey(v)
	return _u
}

// SetNillableStanceKey sets the "stance_key" field if the given value is not nil.
func (_u *PhaseOutputUpdate) SetNillableStanceKey(v *string) *PhaseOutputUpdate {
	if v != nil {
		_u.SetStanceKey(*v)
	}
	return _u
}

// ClearStanceKey clears the value of the "stance_key" field.
func (_u *PhaseOutputUpdate) ClearStanceKey() *PhaseOutputUpdate {
	_u.mutation.ClearStanceKey()
	return _u
}

// SetRole sets the "role" field.
func (_u *PhaseOutputUpdate) SetRole(v string) *PhaseOutputUpdate {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PhaseOutputUpdate) SetNillableRole(v *string) *PhaseOutputUpdate {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PhaseOutputUpdate) SetContent(v string) *PhaseOutputUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PhaseOutputUpdate) SetNillableContent(v *string) *PhaseOutputUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PhaseOutputUpdate) SetModelUsed(v string) *PhaseOutputUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PhaseOutputUpdate) SetNillableModelUsed(v *string) *PhaseOutputUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PhaseOutputUpdate) SetInputTokens(v int) *PhaseOutputUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PhaseOutputUpdate) SetNillableInputTokens(v *int) *PhaseOutputUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PhaseOutputUpdate) AddInputTokens(v int) *PhaseOutputUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PhaseOutputUpdate) SetOutputTokens(v int) *PhaseOutputUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PhaseOutputUpdate) SetNillableOutputTokens(v *int) *PhaseOutputUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PhaseOutputUpdate) AddOutputTokens(v int) *PhaseOutputUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *PhaseOutputUpdate) SetParentID(v string) *PhaseOutputUpdate {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *PhaseOutputUpdate) SetNillableParentID(v *string) *PhaseOutputUpdate {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *PhaseOutputUpdate) ClearParentID() *PhaseOutputUpdate {
	_u.mutation.ClearParentID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PhaseOutputUpdate) SetMetadata(v map[string]interface{}) *PhaseOutputUpdate {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PhaseOutputUpdate) ClearMetadata() *PhaseOutputUpdate {
	_u.mutation.ClearMetadata()
	return _u
}

// AddCacheEntryIDs adds the "cache_entries" edge to the PresentationCache entity by IDs.
func (_u *PhaseOutputUpdate) AddCacheEntryIDs(ids ...string) *PhaseOutputUpdate {
	_u.mutation.AddCacheEntryIDs(ids...)
	return _u
}

// AddCacheEntries adds the "cache_entries" edges to the PresentationCache entity.
func (_u *PhaseOutputUpdate) AddCacheEntries(v ...*PresentationCache) *PhaseOutputUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCacheEntryIDs(ids...)
}

// Mutation returns the PhaseOutputMutation object of the builder.
func (_u *PhaseOutputUpdate) Mutation() *PhaseOutputMutation {
	return _u.mutation
}

// ClearCacheEntries clears all "cache_entries" edges to the PresentationCache entity.
func (_u *PhaseOutputUpdate) ClearCacheEntries() *PhaseOutputUpdate {
	_u.mutation.ClearCacheEntries()
	return _u
}

// RemoveCacheEntryIDs removes the "cache_entries" edge to PresentationCache entities by IDs.
func (_u *PhaseOutputUpdate) RemoveCacheEntryIDs(ids ...string) *PhaseOutputUpdate {
	_u.mutation.RemoveCacheEntryIDs(ids...)
	return _u
}

// RemoveCacheEntries removes "cache_entries" edges to PresentationCache entities.
func (_u *PhaseOutputUpdate) RemoveCacheEntries(v ...*PresentationCache) *PhaseOutputUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCacheEntryIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PhaseOutputUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseOutputUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PhaseOutputUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseOutputUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseOutputUpdate) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhaseOutput.job"`)
	}
	return nil
}

func (_u *PhaseOutputUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaseoutput.Table, phaseoutput.Columns, sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.StanceKey(); ok {
		_spec.SetField(phaseoutput.FieldStanceKey, field.TypeString, value)
	}
	if _u.mutation.StanceKeyCleared() {
		_spec.ClearField(phaseoutput.FieldStanceKey, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(phaseoutput.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(phaseoutput.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(phaseoutput.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(phaseoutput.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(phaseoutput.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(phaseoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(phaseoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(phaseoutput.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(phaseoutput.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(phaseoutput.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(phaseoutput.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.CacheEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCacheEntriesIDs(); len(nodes) > 0 && !_u.mutation.CacheEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CacheEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaseoutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PhaseOutputUpdateOne is the builder for updating a single PhaseOutput entity.
type PhaseOutputUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PhaseOutputMutation
}

// SetStanceKey sets the "stance_key" field.
func (_u *PhaseOutputUpdateOne) SetStanceKey(v string) *PhaseOutputUpdateOne {
	_u.mutation.SetStanceKey(v)
	return _u
}

// SetNillableStanceKey sets the "stance_key" field if the given value is not nil.
func (_u *PhaseOutputUpdateOne) SetNillableStanceKey(v *string) *PhaseOutputUpdateOne {
	if v != nil {
		_u.SetStanceKey(*v)
	}
	return _u
}

// ClearStanceKey clears the value of the "stance_key" field.
func (_u *PhaseOutputUpdateOne) ClearStanceKey() *PhaseOutputUpdateOne {
	_u.mutation.ClearStanceKey()
	return _u
}

// SetRole sets the "role" field.
func (_u *PhaseOutputUpdateOne) SetRole(v string) *PhaseOutputUpdateOne {
	_u.mutation.SetRole(v)
	return _u
}

// SetNillableRole sets the "role" field if the given value is not nil.
func (_u *PhaseOutputUpdateOne) SetNillableRole(v *string) *PhaseOutputUpdateOne {
	if v != nil {
		_u.SetRole(*v)
	}
	return _u
}

// SetContent sets the "content" field.
func (_u *PhaseOutputUpdateOne) SetContent(v string) *PhaseOutputUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *PhaseOutputUpdateOne) SetNillableContent(v *string) *PhaseOutputUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *PhaseOutputUpdateOne) SetModelUsed(v string) *PhaseOutputUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *PhaseOutputUpdateOne) SetNillableModelUsed(v *string) *PhaseOutputUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *PhaseOutputUpdateOne) SetInputTokens(v int) *PhaseOutputUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *PhaseOutputUpdateOne) SetNillableInputTokens(v *int) *PhaseOutputUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *PhaseOutputUpdateOne) AddInputTokens(v int) *PhaseOutputUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *PhaseOutputUpdateOne) SetOutputTokens(v int) *PhaseOutputUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *PhaseOutputUpdateOne) SetNillableOutputTokens(v *int) *PhaseOutputUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *PhaseOutputUpdateOne) AddOutputTokens(v int) *PhaseOutputUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetParentID sets the "parent_id" field.
func (_u *PhaseOutputUpdateOne) SetParentID(v string) *PhaseOutputUpdateOne {
	_u.mutation.SetParentID(v)
	return _u
}

// SetNillableParentID sets the "parent_id" field if the given value is not nil.
func (_u *PhaseOutputUpdateOne) SetNillableParentID(v *string) *PhaseOutputUpdateOne {
	if v != nil {
		_u.SetParentID(*v)
	}
	return _u
}

// ClearParentID clears the value of the "parent_id" field.
func (_u *PhaseOutputUpdateOne) ClearParentID() *PhaseOutputUpdateOne {
	_u.mutation.ClearParentID()
	return _u
}

// SetMetadata sets the "metadata" field.
func (_u *PhaseOutputUpdateOne) SetMetadata(v map[string]interface{}) *PhaseOutputUpdateOne {
	_u.mutation.SetMetadata(v)
	return _u
}

// ClearMetadata clears the value of the "metadata" field.
func (_u *PhaseOutputUpdateOne) ClearMetadata() *PhaseOutputUpdateOne {
	_u.mutation.ClearMetadata()
	return _u
}

// AddCacheEntryIDs adds the "cache_entries" edge to the PresentationCache entity by IDs.
func (_u *PhaseOutputUpdateOne) AddCacheEntryIDs(ids ...string) *PhaseOutputUpdateOne {
	_u.mutation.AddCacheEntryIDs(ids...)
	return _u
}

// AddCacheEntries adds the "cache_entries" edges to the PresentationCache entity.
func (_u *PhaseOutputUpdateOne) AddCacheEntries(v ...*PresentationCache) *PhaseOutputUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddCacheEntryIDs(ids...)
}

// Mutation returns the PhaseOutputMutation object of the builder.
func (_u *PhaseOutputUpdateOne) Mutation() *PhaseOutputMutation {
	return _u.mutation
}

// ClearCacheEntries clears all "cache_entries" edges to the PresentationCache entity.
func (_u *PhaseOutputUpdateOne) ClearCacheEntries() *PhaseOutputUpdateOne {
	_u.mutation.ClearCacheEntries()
	return _u
}

// RemoveCacheEntryIDs removes the "cache_entries" edge to PresentationCache entities by IDs.
func (_u *PhaseOutputUpdateOne) RemoveCacheEntryIDs(ids ...string) *PhaseOutputUpdateOne {
	_u.mutation.RemoveCacheEntryIDs(ids...)
	return _u
}

// RemoveCacheEntries removes "cache_entries" edges to PresentationCache entities.
func (_u *PhaseOutputUpdateOne) RemoveCacheEntries(v ...*PresentationCache) *PhaseOutputUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveCacheEntryIDs(ids...)
}

// Where appends a list predicates to the PhaseOutputUpdate builder.
func (_u *PhaseOutputUpdateOne) Where(ps ...predicate.PhaseOutput) *PhaseOutputUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PhaseOutputUpdateOne) Select(field string, fields ...string) *PhaseOutputUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated PhaseOutput entity.
func (_u *PhaseOutputUpdateOne) Save(ctx context.Context) (*PhaseOutput, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PhaseOutputUpdateOne) SaveX(ctx context.Context) *PhaseOutput {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PhaseOutputUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PhaseOutputUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PhaseOutputUpdateOne) check() error {
	if _u.mutation.JobCleared() && len(_u.mutation.JobIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "PhaseOutput.job"`)
	}
	return nil
}

func (_u *PhaseOutputUpdateOne) sqlSave(ctx context.Context) (_node *PhaseOutput, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(phaseoutput.Table, phaseoutput.Columns, sqlgraph.NewFieldSpec(phaseoutput.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PhaseOutput.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, phaseoutput.FieldID)
		for _, f := range fields {
			if !phaseoutput.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != phaseoutput.FieldID {
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
	if value, ok := _u.mutation.StanceKey(); ok {
		_spec.SetField(phaseoutput.FieldStanceKey, field.TypeString, value)
	}
	if _u.mutation.StanceKeyCleared() {
		_spec.ClearField(phaseoutput.FieldStanceKey, field.TypeString)
	}
	if value, ok := _u.mutation.Role(); ok {
		_spec.SetField(phaseoutput.FieldRole, field.TypeString, value)
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(phaseoutput.FieldContent, field.TypeString, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(phaseoutput.FieldModelUsed, field.TypeString, value)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(phaseoutput.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(phaseoutput.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(phaseoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(phaseoutput.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentID(); ok {
		_spec.SetField(phaseoutput.FieldParentID, field.TypeString, value)
	}
	if _u.mutation.ParentIDCleared() {
		_spec.ClearField(phaseoutput.FieldParentID, field.TypeString)
	}
	if value, ok := _u.mutation.Metadata(); ok {
		_spec.SetField(phaseoutput.FieldMetadata, field.TypeJSON, value)
	}
	if _u.mutation.MetadataCleared() {
		_spec.ClearField(phaseoutput.FieldMetadata, field.TypeJSON)
	}
	if _u.mutation.CacheEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedCacheEntriesIDs(); len(nodes) > 0 && !_u.mutation.CacheEntriesCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CacheEntriesIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &PhaseOutput{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{phaseoutput.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
