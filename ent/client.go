// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/exegete-ai/exegete/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/exegete-ai/exegete/ent/analysisjob"
	"github.com/exegete-ai/exegete/ent/document"
	"github.com/exegete-ai/exegete/ent/phaseoutput"
	"github.com/exegete-ai/exegete/ent/polishcache"
	"github.com/exegete-ai/exegete/ent/presentationcache"
	"github.com/exegete-ai/exegete/ent/viewrefinement"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// AnalysisJob is the client for interacting with the AnalysisJob builders.
	AnalysisJob *AnalysisJobClient
	// Document is the client for interacting with the Document builders.
	Document *DocumentClient
	// PhaseOutput is the client for interacting with the PhaseOutput builders.
	PhaseOutput *PhaseOutputClient
	// PolishCache is the client for interacting with the PolishCache builders.
	PolishCache *PolishCacheClient
	// PresentationCache is the client for interacting with the PresentationCache builders.
	PresentationCache *PresentationCacheClient
	// ViewRefinement is the client for interacting with the ViewRefinement builders.
	ViewRefinement *ViewRefinementClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.AnalysisJob = NewAnalysisJobClient(c.config)
	c.Document = NewDocumentClient(c.config)
	c.PhaseOutput = NewPhaseOutputClient(c.config)
	c.PolishCache = NewPolishCacheClient(c.config)
	c.PresentationCache = NewPresentationCacheClient(c.config)
	c.ViewRefinement = NewViewRefinementClient(c.config)
}

type (
	// config is the configuration for the client and its builder.
	config struct {
		// driver used for executing database requests.
		driver dialect.Driver
		// debug enable a debug logging.
		debug bool
		// log used for logging on debug mode.
		log func(...any)
		// hooks to execute on mutations.
		hooks *hooks
		// interceptors to execute on queries.
		inters *inters
	}
	// Option function to configure the client.
	Option func(*config)
)

// newConfig creates a new config for the client.
func newConfig(opts ...Option) config {
	cfg := config{log: log.Println, hooks: &hooks{}, inters: &inters{}}
	cfg.options(opts...)
	return cfg
}

// options applies the options on the config object.
func (c *config) options(opts ...Option) {
	for _, opt := range opts {
		opt(c)
	}
	if c.debug {
		c.driver = dialect.Debug(c.driver, c.log)
	}
}

// Debug enables debug logging on the ent.Driver.
func Debug() Option {
	return func(c *config) {
		c.debug = true
	}
}

// Log sets the logging function for debug mode.
func Log(fn func(...any)) Option {
	return func(c *config) {
		c.log = fn
	}
}

// Driver configures the client driver.
func Driver(driver dialect.Driver) Option {
	return func(c *config) {
		c.driver = driver
	}
}

// Open opens a database/sql.DB specified by the driver name and
// the data source name, and returns a new client attached to it.
// Optional parameters can be added for configuring the client.
func Open(driverName, dataSourceName string, options ...Option) (*Client, error) {
	switch driverName {
	case dialect.MySQL, dialect.Postgres, dialect.SQLite:
		drv, err := sql.Open(driverName, dataSourceName)
		if err != nil {
			return nil, err
		}
		return NewClient(append(options, Driver(drv))...), nil
	default:
		return nil, fmt.Errorf("unsupported driver: %q", driverName)
	}
}

// ErrTxStarted is returned when trying to start a new transaction from a transactional client.
var ErrTxStarted = errors.New("ent: cannot start a transaction within a transaction")

// Tx returns a new transactional client. The provided context
// is used until the transaction is committed or rolled back.
func (c *Client) Tx(ctx context.Context) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, ErrTxStarted
	}
	tx, err := newTx(ctx, c.driver)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = tx
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AnalysisJob:       NewAnalysisJobClient(cfg),
		Document:          NewDocumentClient(cfg),
		PhaseOutput:       NewPhaseOutputClient(cfg),
		PolishCache:       NewPolishCacheClient(cfg),
		PresentationCache: NewPresentationCacheClient(cfg),
		ViewRefinement:    NewViewRefinementClient(cfg),
	}, nil
}

// BeginTx returns a transactional client with specified options.
func (c *Client) BeginTx(ctx context.Context, opts *sql.TxOptions) (*Tx, error) {
	if _, ok := c.driver.(*txDriver); ok {
		return nil, errors.New("ent: cannot start a transaction within a transaction")
	}
	tx, err := c.driver.(interface {
		BeginTx(context.Context, *sql.TxOptions) (dialect.Tx, error)
	}).BeginTx(ctx, opts)
	if err != nil {
		return nil, fmt.Errorf("ent: starting a transaction: %w", err)
	}
	cfg := c.config
	cfg.driver = &txDriver{tx: tx, drv: c.driver}
	return &Tx{
		ctx:               ctx,
		config:            cfg,
		AnalysisJob:       NewAnalysisJobClient(cfg),
		Document:          NewDocumentClient(cfg),
		PhaseOutput:       NewPhaseOutputClient(cfg),
		PolishCache:       NewPolishCacheClient(cfg),
		PresentationCache: NewPresentationCacheClient(cfg),
		ViewRefinement:    NewViewRefinementClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		AnalysisJob.
//		Query().
//		Count(ctx)
func (c *Client) Debug() *Client {
	if c.debug {
		return c
	}
	cfg := c.config
	cfg.driver = dialect.Debug(c.driver, c.log)
	client := &Client{config: cfg}
	client.init()
	return client
}

// Close closes the database connection and prevents new queries from starting.
func (c *Client) Close() error {
	return c.driver.Close()
}

// Use adds the mutation hooks to all the entity clients.
// In order to add hooks to a specific client, call: `client.Node.Use(...)`.
func (c *Client) Use(hooks ...Hook) {
	for _, n := range []interface{ Use(...Hook) }{
		c.AnalysisJob, c.Document, c.PhaseOutput, c.PolishCache, c.PresentationCache,
		c.ViewRefinement,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.AnalysisJob, c.Document, c.PhaseOutput, c.PolishCache, c.PresentationCache,
		c.ViewRefinement,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AnalysisJobMutation:
		return c.AnalysisJob.mutate(ctx, m)
	case *DocumentMutation:
		return c.Document.mutate(ctx, m)
	case *PhaseOutputMutation:
		return c.PhaseOutput.mutate(ctx, m)
	case *PolishCacheMutation:
		return c.PolishCache.mutate(ctx, m)
	case *PresentationCacheMutation:
		return c.PresentationCache.mutate(ctx, m)
	case *ViewRefinementMutation:
		return c.ViewRefinement.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AnalysisJobClient is a client for the AnalysisJob schema.
type AnalysisJobClient struct {
	config
}

// NewAnalysisJobClient returns a client for the AnalysisJob from the given config.
func NewAnalysisJobClient(c config) *AnalysisJobClient {
	return &AnalysisJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `analysisjob.Hooks(f(g(h())))`.
func (c *AnalysisJobClient) Use(hooks ...Hook) {
	c.hooks.AnalysisJob = append(c.hooks.AnalysisJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `analysisjob.Intercept(f(g(h())))`.
func (c *AnalysisJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.AnalysisJob = append(c.inters.AnalysisJob, interceptors...)
}

// Create returns a builder for creating a AnalysisJob entity.
func (c *AnalysisJobClient) Create() *AnalysisJobCreate {
	mutation := newAnalysisJobMutation(c.config, OpCreate)
	return &AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AnalysisJob entities.
func (c *AnalysisJobClient) CreateBulk(builders ...*AnalysisJobCreate) *AnalysisJobCreateBulk {
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AnalysisJobClient) MapCreateBulk(slice any, setFunc func(*AnalysisJobCreate, int)) *AnalysisJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AnalysisJobCreateBulk{err: fmt.Errorf("calling to AnalysisJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AnalysisJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AnalysisJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AnalysisJob.
func (c *AnalysisJobClient) Update() *AnalysisJobUpdate {
	mutation := newAnalysisJobMutation(c.config, OpUpdate)
	return &AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AnalysisJobClient) UpdateOne(_m *AnalysisJob) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJob(_m))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AnalysisJobClient) UpdateOneID(id string) *AnalysisJobUpdateOne {
	mutation := newAnalysisJobMutation(c.config, OpUpdateOne, withAnalysisJobID(id))
	return &AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AnalysisJob.
func (c *AnalysisJobClient) Delete() *AnalysisJobDelete {
	mutation := newAnalysisJobMutation(c.config, OpDelete)
	return &AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AnalysisJobClient) DeleteOne(_m *AnalysisJob) *AnalysisJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AnalysisJobClient) DeleteOneID(id string) *AnalysisJobDeleteOne {
	builder := c.Delete().Where(analysisjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AnalysisJobDeleteOne{builder}
}

// Query returns a query builder for AnalysisJob.
func (c *AnalysisJobClient) Query() *AnalysisJobQuery {
	return &AnalysisJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAnalysisJob},
		inters: c.Interceptors(),
	}
}

// Get returns a AnalysisJob entity by its id.
func (c *AnalysisJobClient) Get(ctx context.Context, id string) (*AnalysisJob, error) {
	return c.Query().Where(analysisjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AnalysisJobClient) GetX(ctx context.Context, id string) *AnalysisJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOutputs queries the outputs edge of a AnalysisJob.
func (c *AnalysisJobClient) QueryOutputs(_m *AnalysisJob) *PhaseOutputQuery {
	query := (&PhaseOutputClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisjob.Table, analysisjob.FieldID, id),
			sqlgraph.To(phaseoutput.Table, phaseoutput.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisjob.OutputsTable, analysisjob.OutputsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryViewRefinement queries the view_refinement edge of a AnalysisJob.
func (c *AnalysisJobClient) QueryViewRefinement(_m *AnalysisJob) *ViewRefinementQuery {
	query := (&ViewRefinementClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisjob.Table, analysisjob.FieldID, id),
			sqlgraph.To(viewrefinement.Table, viewrefinement.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, false, analysisjob.ViewRefinementTable, analysisjob.ViewRefinementColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryPolishes queries the polishes edge of a AnalysisJob.
func (c *AnalysisJobClient) QueryPolishes(_m *AnalysisJob) *PolishCacheQuery {
	query := (&PolishCacheClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(analysisjob.Table, analysisjob.FieldID, id),
			sqlgraph.To(polishcache.Table, polishcache.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, analysisjob.PolishesTable, analysisjob.PolishesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AnalysisJobClient) Hooks() []Hook {
	return c.hooks.AnalysisJob
}

// Interceptors returns the client interceptors.
func (c *AnalysisJobClient) Interceptors() []Interceptor {
	return c.inters.AnalysisJob
}

func (c *AnalysisJobClient) mutate(ctx context.Context, m *AnalysisJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AnalysisJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AnalysisJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AnalysisJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AnalysisJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AnalysisJob mutation op: %q", m.Op())
	}
}

// DocumentClient is a client for the Document schema.
type DocumentClient struct {
	config
}

// NewDocumentClient returns a client for the Document from the given config.
func NewDocumentClient(c config) *DocumentClient {
	return &DocumentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `document.Hooks(f(g(h())))`.
func (c *DocumentClient) Use(hooks ...Hook) {
	c.hooks.Document = append(c.hooks.Document, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `document.Intercept(f(g(h())))`.
func (c *DocumentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Document = append(c.inters.Document, interceptors...)
}

// Create returns a builder for creating a Document entity.
func (c *DocumentClient) Create() *DocumentCreate {
	mutation := newDocumentMutation(c.config, OpCreate)
	return &DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Document entities.
func (c *DocumentClient) CreateBulk(builders ...*DocumentCreate) *DocumentCreateBulk {
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentClient) MapCreateBulk(slice any, setFunc func(*DocumentCreate, int)) *DocumentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentCreateBulk{err: fmt.Errorf("calling to DocumentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Document.
func (c *DocumentClient) Update() *DocumentUpdate {
	mutation := newDocumentMutation(c.config, OpUpdate)
	return &DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentClient) UpdateOne(_m *Document) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocument(_m))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentClient) UpdateOneID(id string) *DocumentUpdateOne {
	mutation := newDocumentMutation(c.config, OpUpdateOne, withDocumentID(id))
	return &DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Document.
func (c *DocumentClient) Delete() *DocumentDelete {
	mutation := newDocumentMutation(c.config, OpDelete)
	return &DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentClient) DeleteOne(_m *Document) *DocumentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentClient) DeleteOneID(id string) *DocumentDeleteOne {
	builder := c.Delete().Where(document.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentDeleteOne{builder}
}

// Query returns a query builder for Document.
func (c *DocumentClient) Query() *DocumentQuery {
	return &DocumentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocument},
		inters: c.Interceptors(),
	}
}

// Get returns a Document entity by its id.
func (c *DocumentClient) Get(ctx context.Context, id string) (*Document, error) {
	return c.Query().Where(document.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentClient) GetX(ctx context.Context, id string) *Document {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentClient) Hooks() []Hook {
	return c.hooks.Document
}

// Interceptors returns the client interceptors.
func (c *DocumentClient) Interceptors() []Interceptor {
	return c.inters.Document
}

func (c *DocumentClient) mutate(ctx context.Context, m *DocumentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Document mutation op: %q", m.Op())
	}
}

// PhaseOutputClient is a client for the PhaseOutput schema.
type PhaseOutputClient struct {
	config
}

// NewPhaseOutputClient returns a client for the PhaseOutput from the given config.
func NewPhaseOutputClient(c config) *PhaseOutputClient {
	return &PhaseOutputClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `phaseoutput.Hooks(f(g(h())))`.
func (c *PhaseOutputClient) Use(hooks ...Hook) {
	c.hooks.PhaseOutput = append(c.hooks.PhaseOutput, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `phaseoutput.Intercept(f(g(h())))`.
func (c *PhaseOutputClient) Intercept(interceptors ...Interceptor) {
	c.inters.PhaseOutput = append(c.inters.PhaseOutput, interceptors...)
}

// Create returns a builder for creating a PhaseOutput entity.
func (c *PhaseOutputClient) Create() *PhaseOutputCreate {
	mutation := newPhaseOutputMutation(c.config, OpCreate)
	return &PhaseOutputCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PhaseOutput entities.
func (c *PhaseOutputClient) CreateBulk(builders ...*PhaseOutputCreate) *PhaseOutputCreateBulk {
	return &PhaseOutputCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PhaseOutputClient) MapCreateBulk(slice any, setFunc func(*PhaseOutputCreate, int)) *PhaseOutputCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PhaseOutputCreateBulk{err: fmt.Errorf("calling to PhaseOutputClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PhaseOutputCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PhaseOutputCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PhaseOutput.
func (c *PhaseOutputClient) Update() *PhaseOutputUpdate {
	mutation := newPhaseOutputMutation(c.config, OpUpdate)
	return &PhaseOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PhaseOutputClient) UpdateOne(_m *PhaseOutput) *PhaseOutputUpdateOne {
	mutation := newPhaseOutputMutation(c.config, OpUpdateOne, withPhaseOutput(_m))
	return &PhaseOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PhaseOutputClient) UpdateOneID(id string) *PhaseOutputUpdateOne {
	mutation := newPhaseOutputMutation(c.config, OpUpdateOne, withPhaseOutputID(id))
	return &PhaseOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PhaseOutput.
func (c *PhaseOutputClient) Delete() *PhaseOutputDelete {
	mutation := newPhaseOutputMutation(c.config, OpDelete)
	return &PhaseOutputDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PhaseOutputClient) DeleteOne(_m *PhaseOutput) *PhaseOutputDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PhaseOutputClient) DeleteOneID(id string) *PhaseOutputDeleteOne {
	builder := c.Delete().Where(phaseoutput.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PhaseOutputDeleteOne{builder}
}

// Query returns a query builder for PhaseOutput.
func (c *PhaseOutputClient) Query() *PhaseOutputQuery {
	return &PhaseOutputQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePhaseOutput},
		inters: c.Interceptors(),
	}
}

// Get returns a PhaseOutput entity by its id.
func (c *PhaseOutputClient) Get(ctx context.Context, id string) (*PhaseOutput, error) {
	return c.Query().Where(phaseoutput.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PhaseOutputClient) GetX(ctx context.Context, id string) *PhaseOutput {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a PhaseOutput.
func (c *PhaseOutputClient) QueryJob(_m *PhaseOutput) *AnalysisJobQuery {
	query := (&AnalysisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phaseoutput.Table, phaseoutput.FieldID, id),
			sqlgraph.To(analysisjob.Table, analysisjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, phaseoutput.JobTable, phaseoutput.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCacheEntries queries the cache_entries edge of a PhaseOutput.
func (c *PhaseOutputClient) QueryCacheEntries(_m *PhaseOutput) *PresentationCacheQuery {
	query := (&PresentationCacheClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(phaseoutput.Table, phaseoutput.FieldID, id),
			sqlgraph.To(presentationcache.Table, presentationcache.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, phaseoutput.CacheEntriesTable, phaseoutput.CacheEntriesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PhaseOutputClient) Hooks() []Hook {
	return c.hooks.PhaseOutput
}

// Interceptors returns the client interceptors.
func (c *PhaseOutputClient) Interceptors() []Interceptor {
	return c.inters.PhaseOutput
}

func (c *PhaseOutputClient) mutate(ctx context.Context, m *PhaseOutputMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PhaseOutputCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PhaseOutputUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PhaseOutputUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PhaseOutputDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PhaseOutput mutation op: %q", m.Op())
	}
}

// PolishCacheClient is a client for the PolishCache schema.
type PolishCacheClient struct {
	config
}

// NewPolishCacheClient returns a client for the PolishCache from the given config.
func NewPolishCacheClient(c config) *PolishCacheClient {
	return &PolishCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `polishcache.Hooks(f(g(h())))`.
func (c *PolishCacheClient) Use(hooks ...Hook) {
	c.hooks.PolishCache = append(c.hooks.PolishCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `polishcache.Intercept(f(g(h())))`.
func (c *PolishCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.PolishCache = append(c.inters.PolishCache, interceptors...)
}

// Create returns a builder for creating a PolishCache entity.
func (c *PolishCacheClient) Create() *PolishCacheCreate {
	mutation := newPolishCacheMutation(c.config, OpCreate)
	return &PolishCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PolishCache entities.
func (c *PolishCacheClient) CreateBulk(builders ...*PolishCacheCreate) *PolishCacheCreateBulk {
	return &PolishCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PolishCacheClient) MapCreateBulk(slice any, setFunc func(*PolishCacheCreate, int)) *PolishCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PolishCacheCreateBulk{err: fmt.Errorf("calling to PolishCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PolishCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PolishCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PolishCache.
func (c *PolishCacheClient) Update() *PolishCacheUpdate {
	mutation := newPolishCacheMutation(c.config, OpUpdate)
	return &PolishCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PolishCacheClient) UpdateOne(_m *PolishCache) *PolishCacheUpdateOne {
	mutation := newPolishCacheMutation(c.config, OpUpdateOne, withPolishCache(_m))
	return &PolishCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PolishCacheClient) UpdateOneID(id string) *PolishCacheUpdateOne {
	mutation := newPolishCacheMutation(c.config, OpUpdateOne, withPolishCacheID(id))
	return &PolishCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PolishCache.
func (c *PolishCacheClient) Delete() *PolishCacheDelete {
	mutation := newPolishCacheMutation(c.config, OpDelete)
	return &PolishCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PolishCacheClient) DeleteOne(_m *PolishCache) *PolishCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PolishCacheClient) DeleteOneID(id string) *PolishCacheDeleteOne {
	builder := c.Delete().Where(polishcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PolishCacheDeleteOne{builder}
}

// Query returns a query builder for PolishCache.
func (c *PolishCacheClient) Query() *PolishCacheQuery {
	return &PolishCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePolishCache},
		inters: c.Interceptors(),
	}
}

// Get returns a PolishCache entity by its id.
func (c *PolishCacheClient) Get(ctx context.Context, id string) (*PolishCache, error) {
	return c.Query().Where(polishcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PolishCacheClient) GetX(ctx context.Context, id string) *PolishCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a PolishCache.
func (c *PolishCacheClient) QueryJob(_m *PolishCache) *AnalysisJobQuery {
	query := (&AnalysisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(polishcache.Table, polishcache.FieldID, id),
			sqlgraph.To(analysisjob.Table, analysisjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, polishcache.JobTable, polishcache.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PolishCacheClient) Hooks() []Hook {
	return c.hooks.PolishCache
}

// Interceptors returns the client interceptors.
func (c *PolishCacheClient) Interceptors() []Interceptor {
	return c.inters.PolishCache
}

func (c *PolishCacheClient) mutate(ctx context.Context, m *PolishCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PolishCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PolishCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PolishCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PolishCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PolishCache mutation op: %q", m.Op())
	}
}

// PresentationCacheClient is a client for the PresentationCache schema.
type PresentationCacheClient struct {
	config
}

// NewPresentationCacheClient returns a client for the PresentationCache from the given config.
func NewPresentationCacheClient(c config) *PresentationCacheClient {
	return &PresentationCacheClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `presentationcache.Hooks(f(g(h())))`.
func (c *PresentationCacheClient) Use(hooks ...Hook) {
	c.hooks.PresentationCache = append(c.hooks.PresentationCache, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `presentationcache.Intercept(f(g(h())))`.
func (c *PresentationCacheClient) Intercept(interceptors ...Interceptor) {
	c.inters.PresentationCache = append(c.inters.PresentationCache, interceptors...)
}

// Create returns a builder for creating a PresentationCache entity.
func (c *PresentationCacheClient) Create() *PresentationCacheCreate {
	mutation := newPresentationCacheMutation(c.config, OpCreate)
	return &PresentationCacheCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of PresentationCache entities.
func (c *PresentationCacheClient) CreateBulk(builders ...*PresentationCacheCreate) *PresentationCacheCreateBulk {
	return &PresentationCacheCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *PresentationCacheClient) MapCreateBulk(slice any, setFunc func(*PresentationCacheCreate, int)) *PresentationCacheCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &PresentationCacheCreateBulk{err: fmt.Errorf("calling to PresentationCacheClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*PresentationCacheCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &PresentationCacheCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for PresentationCache.
func (c *PresentationCacheClient) Update() *PresentationCacheUpdate {
	mutation := newPresentationCacheMutation(c.config, OpUpdate)
	return &PresentationCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *PresentationCacheClient) UpdateOne(_m *PresentationCache) *PresentationCacheUpdateOne {
	mutation := newPresentationCacheMutation(c.config, OpUpdateOne, withPresentationCache(_m))
	return &PresentationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *PresentationCacheClient) UpdateOneID(id string) *PresentationCacheUpdateOne {
	mutation := newPresentationCacheMutation(c.config, OpUpdateOne, withPresentationCacheID(id))
	return &PresentationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for PresentationCache.
func (c *PresentationCacheClient) Delete() *PresentationCacheDelete {
	mutation := newPresentationCacheMutation(c.config, OpDelete)
	return &PresentationCacheDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *PresentationCacheClient) DeleteOne(_m *PresentationCache) *PresentationCacheDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *PresentationCacheClient) DeleteOneID(id string) *PresentationCacheDeleteOne {
	builder := c.Delete().Where(presentationcache.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &PresentationCacheDeleteOne{builder}
}

// Query returns a query builder for PresentationCache.
func (c *PresentationCacheClient) Query() *PresentationCacheQuery {
	return &PresentationCacheQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypePresentationCache},
		inters: c.Interceptors(),
	}
}

// Get returns a PresentationCache entity by its id.
func (c *PresentationCacheClient) Get(ctx context.Context, id string) (*PresentationCache, error) {
	return c.Query().Where(presentationcache.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *PresentationCacheClient) GetX(ctx context.Context, id string) *PresentationCache {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryOutput queries the output edge of a PresentationCache.
func (c *PresentationCacheClient) QueryOutput(_m *PresentationCache) *PhaseOutputQuery {
	query := (&PhaseOutputClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(presentationcache.Table, presentationcache.FieldID, id),
			sqlgraph.To(phaseoutput.Table, phaseoutput.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, presentationcache.OutputTable, presentationcache.OutputColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *PresentationCacheClient) Hooks() []Hook {
	return c.hooks.PresentationCache
}

// Interceptors returns the client interceptors.
func (c *PresentationCacheClient) Interceptors() []Interceptor {
	return c.inters.PresentationCache
}

func (c *PresentationCacheClient) mutate(ctx context.Context, m *PresentationCacheMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&PresentationCacheCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&PresentationCacheUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&PresentationCacheUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&PresentationCacheDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown PresentationCache mutation op: %q", m.Op())
	}
}

// ViewRefinementClient is a client for the ViewRefinement schema.
type ViewRefinementClient struct {
	config
}

// NewViewRefinementClient returns a client for the ViewRefinement from the given config.
func NewViewRefinementClient(c config) *ViewRefinementClient {
	return &ViewRefinementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `viewrefinement.Hooks(f(g(h())))`.
func (c *ViewRefinementClient) Use(hooks ...Hook) {
	c.hooks.ViewRefinement = append(c.hooks.ViewRefinement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `viewrefinement.Intercept(f(g(h())))`.
func (c *ViewRefinementClient) Intercept(interceptors ...Interceptor) {
	c.inters.ViewRefinement = append(c.inters.ViewRefinement, interceptors...)
}

// Create returns a builder for creating a ViewRefinement entity.
func (c *ViewRefinementClient) Create() *ViewRefinementCreate {
	mutation := newViewRefinementMutation(c.config, OpCreate)
	return &ViewRefinementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ViewRefinement entities.
func (c *ViewRefinementClient) CreateBulk(builders ...*ViewRefinementCreate) *ViewRefinementCreateBulk {
	return &ViewRefinementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ViewRefinementClient) MapCreateBulk(slice any, setFunc func(*ViewRefinementCreate, int)) *ViewRefinementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ViewRefinementCreateBulk{err: fmt.Errorf("calling to ViewRefinementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ViewRefinementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ViewRefinementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ViewRefinement.
func (c *ViewRefinementClient) Update() *ViewRefinementUpdate {
	mutation := newViewRefinementMutation(c.config, OpUpdate)
	return &ViewRefinementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ViewRefinementClient) UpdateOne(_m *ViewRefinement) *ViewRefinementUpdateOne {
	mutation := newViewRefinementMutation(c.config, OpUpdateOne, withViewRefinement(_m))
	return &ViewRefinementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ViewRefinementClient) UpdateOneID(id string) *ViewRefinementUpdateOne {
	mutation := newViewRefinementMutation(c.config, OpUpdateOne, withViewRefinementID(id))
	return &ViewRefinementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ViewRefinement.
func (c *ViewRefinementClient) Delete() *ViewRefinementDelete {
	mutation := newViewRefinementMutation(c.config, OpDelete)
	return &ViewRefinementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ViewRefinementClient) DeleteOne(_m *ViewRefinement) *ViewRefinementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ViewRefinementClient) DeleteOneID(id string) *ViewRefinementDeleteOne {
	builder := c.Delete().Where(viewrefinement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ViewRefinementDeleteOne{builder}
}

// Query returns a query builder for ViewRefinement.
func (c *ViewRefinementClient) Query() *ViewRefinementQuery {
	return &ViewRefinementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeViewRefinement},
		inters: c.Interceptors(),
	}
}

// Get returns a ViewRefinement entity by its id.
func (c *ViewRefinementClient) Get(ctx context.Context, id string) (*ViewRefinement, error) {
	return c.Query().Where(viewrefinement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ViewRefinementClient) GetX(ctx context.Context, id string) *ViewRefinement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a ViewRefinement.
func (c *ViewRefinementClient) QueryJob(_m *ViewRefinement) *AnalysisJobQuery {
	query := (&AnalysisJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(viewrefinement.Table, viewrefinement.FieldID, id),
			sqlgraph.To(analysisjob.Table, analysisjob.FieldID),
			sqlgraph.Edge(sqlgraph.O2O, true, viewrefinement.JobTable, viewrefinement.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ViewRefinementClient) Hooks() []Hook {
	return c.hooks.ViewRefinement
}

// Interceptors returns the client interceptors.
func (c *ViewRefinementClient) Interceptors() []Interceptor {
	return c.inters.ViewRefinement
}

func (c *ViewRefinementClient) mutate(ctx context.Context, m *ViewRefinementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ViewRefinementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ViewRefinementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ViewRefinementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ViewRefinementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ViewRefinement mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		AnalysisJob, Document, PhaseOutput, PolishCache, PresentationCache,
		ViewRefinement []ent.Hook
	}
	inters struct {
		AnalysisJob, Document, PhaseOutput, PolishCache, PresentationCache,
		ViewRefinement []ent.Interceptor
	}
)
