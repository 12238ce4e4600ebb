// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/predicate"
	"github.com/exegete-ai/exegete/ent/presentationcache"
)

// PresentationCacheQuery is the builder for querying PresentationCache entities.
type PresentationCacheQuery struct {
	config
	ctx        *QueryContext
	order      []presentationcache.OrderOption
	inters     []Interceptor
	predicates []predicate.PresentationCache
	withOutput *PhaseOutputQuery
	modifiers  []func(*sql.Selector)
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PresentationCacheQuery builder.
func (_q *PresentationCacheQuery) Where(ps ...predicate.PresentationCache) *PresentationCacheQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PresentationCacheQuery) Limit(limit int) *PresentationCacheQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PresentationCacheQuery) Offset(offset int) *PresentationCacheQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PresentationCacheQuery) Unique(unique bool) *PresentationCacheQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PresentationCacheQuery) Order(o ...presentationcache.OrderOption) *PresentationCacheQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryOutput chains the current query on the "output" edge.
func (_q *PresentationCacheQuery) QueryOutput() *PhaseOutputQuery {
	query := (&PhaseOutputClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(presentationcache.Table, presentationcache.FieldID, selector),
			sqlgraph.To(phaseoutput.Table, phaseoutput.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, presentationcache.OutputTable, presentationcache.OutputColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PresentationCache entity from the query.
// Returns a *NotFoundError when no PresentationCache was found.
func (_q *PresentationCacheQuery) First(ctx context.Context) (*PresentationCache, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{presentationcache.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PresentationCacheQuery) FirstX(ctx context.Context) *PresentationCache {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PresentationCache ID from the query.
// Returns a *NotFoundError when no PresentationCache ID was found.
func (_q *PresentationCacheQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{presentationcache.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PresentationCacheQuery) FirstIDX(ctx context.Context) string {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PresentationCache entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PresentationCache entity is found.
// Returns a *NotFoundError when no PresentationCache entities are found.
func (_q *PresentationCacheQuery) Only(ctx context.Context) (*PresentationCache, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{presentationcache.Label}
	default:
		return nil, &NotSingularError{presentationcache.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PresentationCacheQuery) OnlyX(ctx context.Context) *PresentationCache {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PresentationCache ID in the query.
// Returns a *NotSingularError when more than one PresentationCache ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PresentationCacheQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{presentationcache.Label}
	default:
		err = &NotSingularError{presentationcache.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PresentationCacheQuery) OnlyIDX(ctx context.Context) string {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PresentationCaches.
func (_q *PresentationCacheQuery) All(ctx context.Context) ([]*PresentationCache, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PresentationCache, *PresentationCacheQuery]()
	return withInterceptors[[]*PresentationCache](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PresentationCacheQuery) AllX(ctx context.Context) []*PresentationCache {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PresentationCache IDs.
func (_q *PresentationCacheQuery) IDs(ctx context.Context) (ids []string, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(presentationcache.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PresentationCacheQuery) IDsX(ctx context.Context) []string {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PresentationCacheQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PresentationCacheQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PresentationCacheQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PresentationCacheQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PresentationCacheQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PresentationCacheQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PresentationCacheQuery) Clone() *PresentationCacheQuery {
	if _q == nil {
		return nil
	}
	return &PresentationCacheQuery{
		config:     _q.config,
		ctx:        _q.ctx.Clone(),
		order:      append([]presentationcache.OrderOption{}, _q.order...),
		inters:     append([]Interceptor{}, _q.inters...),
		predicates: append([]predicate.PresentationCache{}, _q.predicates...),
		withOutput: _q.withOutput.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithOutput tells the query-builder to eager-load the nodes that are connected to
// the "output" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PresentationCacheQuery) WithOutput(opts ...func(*PhaseOutputQuery)) *PresentationCacheQuery {
	query := (&PhaseOutputClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withOutput = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		OutputID string `json:"output_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PresentationCache.Query().
//		GroupBy(presentationcache.FieldOutputID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *PresentationCacheQuery) GroupBy(field string, fields ...string) *PresentationCacheGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PresentationCacheGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = presentationcache.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		OutputID string `json:"output_id,omitempty"`
//	}
//
//	client.PresentationCache.Query().
//		Select(presentationcache.FieldOutputID).
//		Scan(ctx, &v)
func (_q *PresentationCacheQuery) Select(fields ...string) *PresentationCacheSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PresentationCacheSelect{PresentationCacheQuery: _q}
	sbuild.label = presentationcache.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PresentationCacheSelect configured with the given aggregations.
func (_q *PresentationCacheQuery) Aggregate(fns ...AggregateFunc) *PresentationCacheSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PresentationCacheQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !presentationcache.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PresentationCacheQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PresentationCache, error) {
	var (
		nodes       = []*PresentationCache{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withOutput != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PresentationCache).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PresentationCache{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withOutput; query != nil {
		if err := _q.loadOutput(ctx, query, nodes, nil,
			func(n *PresentationCache, e *PhaseOutput) { n.Edges.Output = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PresentationCacheQuery) loadOutput(ctx context.Context, query *PhaseOutputQuery, nodes []*PresentationCache, init func(*PresentationCache), assign func(*PresentationCache, *PhaseOutput)) error {
	ids := make([]string, 0, len(nodes))
	nodeids := make(map[string][]*PresentationCache)
	for i := range nodes {
		fk := nodes[i].OutputID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(phaseoutput.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "output_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PresentationCacheQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	if len(_q.modifiers) > 0 {
		_spec.Modifiers = _q.modifiers
	}
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PresentationCacheQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(presentationcache.Table, presentationcache.Columns, sqlgraph.NewFieldSpec(presentationcache.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, presentationcache.FieldID)
		for i := range fields {
			if fields[i] != presentationcache.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withOutput != nil {
			_spec.Node.AddColumnOnce(presentationcache.FieldOutputID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PresentationCacheQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(presentationcache.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = presentationcache.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, m := range _q.modifiers {
		m(selector)
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// ForUpdate locks the selected rows against concurrent updates, and prevent them from being
// updated, deleted or "selected ... for update" by other sessions, until the transaction is
// either committed or rolled-back.
func (_q *PresentationCacheQuery) ForUpdate(opts ...sql.LockOption) *PresentationCacheQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForUpdate(opts...)
	})
	return _q
}

// ForShare behaves similarly to ForUpdate, except that it acquires a shared mode lock
// on any rows that are read. Other sessions can read the rows, but cannot modify them
// until your transaction commits.
func (_q *PresentationCacheQuery) ForShare(opts ...sql.LockOption) *PresentationCacheQuery {
	if _q.driver.Dialect() == dialect.Postgres {
		_q.Unique(false)
	}
	_q.modifiers = append(_q.modifiers, func(s *sql.Selector) {
		s.ForShare(opts...)
	})
	return _q
}

// PresentationCacheGroupBy is the group-by builder for PresentationCache entities.
type PresentationCacheGroupBy struct {
	selector
	build *PresentationCacheQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PresentationCacheGroupBy) Aggregate(fns ...AggregateFunc) *PresentationCacheGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PresentationCacheGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PresentationCacheQuery, *PresentationCacheGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PresentationCacheGroupBy) sqlScan(ctx context.Context, root *PresentationCacheQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PresentationCacheSelect is the builder for selecting fields of PresentationCache entities.
type PresentationCacheSelect struct {
	*PresentationCacheQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PresentationCacheSelect) Aggregate(fns ...AggregateFunc) *PresentationCacheSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PresentationCacheSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PresentationCacheQuery, *PresentationCacheSelect](ctx, _s.PresentationCacheQuery, _s, _s.inters, v)
}

func (_s *PresentationCacheSelect) sqlScan(ctx context.Context, root *PresentationCacheQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
