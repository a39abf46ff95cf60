// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/parolabs/parola/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/parolabs/parola/ent/importevent"
	"github.com/parolabs/parola/ent/itemprogress"
	"github.com/parolabs/parola/ent/reviewevent"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// ImportEvent is the client for interacting with the ImportEvent builders.
	ImportEvent *ImportEventClient
	// ItemProgress is the client for interacting with the ItemProgress builders.
	ItemProgress *ItemProgressClient
	// ReviewEvent is the client for interacting with the ReviewEvent builders.
	ReviewEvent *ReviewEventClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.ImportEvent = NewImportEventClient(c.config)
	c.ItemProgress = NewItemProgressClient(c.config)
	c.ReviewEvent = NewReviewEventClient(c.config)
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
		ctx:          ctx,
		config:       cfg,
		ImportEvent:  NewImportEventClient(cfg),
		ItemProgress: NewItemProgressClient(cfg),
		ReviewEvent:  NewReviewEventClient(cfg),
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
		ctx:          ctx,
		config:       cfg,
		ImportEvent:  NewImportEventClient(cfg),
		ItemProgress: NewItemProgressClient(cfg),
		ReviewEvent:  NewReviewEventClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		ImportEvent.
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
	c.ImportEvent.Use(hooks...)
	c.ItemProgress.Use(hooks...)
	c.ReviewEvent.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.ImportEvent.Intercept(interceptors...)
	c.ItemProgress.Intercept(interceptors...)
	c.ReviewEvent.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *ImportEventMutation:
		return c.ImportEvent.mutate(ctx, m)
	case *ItemProgressMutation:
		return c.ItemProgress.mutate(ctx, m)
	case *ReviewEventMutation:
		return c.ReviewEvent.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// ImportEventClient is a client for the ImportEvent schema.
type ImportEventClient struct {
	config
}

// NewImportEventClient returns a client for the ImportEvent from the given config.
func NewImportEventClient(c config) *ImportEventClient {
	return &ImportEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `importevent.Hooks(f(g(h())))`.
func (c *ImportEventClient) Use(hooks ...Hook) {
	c.hooks.ImportEvent = append(c.hooks.ImportEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `importevent.Intercept(f(g(h())))`.
func (c *ImportEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ImportEvent = append(c.inters.ImportEvent, interceptors...)
}

// Create returns a builder for creating a ImportEvent entity.
func (c *ImportEventClient) Create() *ImportEventCreate {
	mutation := newImportEventMutation(c.config, OpCreate)
	return &ImportEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ImportEvent entities.
func (c *ImportEventClient) CreateBulk(builders ...*ImportEventCreate) *ImportEventCreateBulk {
	return &ImportEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ImportEventClient) MapCreateBulk(slice any, setFunc func(*ImportEventCreate, int)) *ImportEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ImportEventCreateBulk{err: fmt.Errorf("calling to ImportEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ImportEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ImportEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ImportEvent.
func (c *ImportEventClient) Update() *ImportEventUpdate {
	mutation := newImportEventMutation(c.config, OpUpdate)
	return &ImportEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ImportEventClient) UpdateOne(_m *ImportEvent) *ImportEventUpdateOne {
	mutation := newImportEventMutation(c.config, OpUpdateOne, withImportEvent(_m))
	return &ImportEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ImportEventClient) UpdateOneID(id int) *ImportEventUpdateOne {
	mutation := newImportEventMutation(c.config, OpUpdateOne, withImportEventID(id))
	return &ImportEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ImportEvent.
func (c *ImportEventClient) Delete() *ImportEventDelete {
	mutation := newImportEventMutation(c.config, OpDelete)
	return &ImportEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ImportEventClient) DeleteOne(_m *ImportEvent) *ImportEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ImportEventClient) DeleteOneID(id int) *ImportEventDeleteOne {
	builder := c.Delete().Where(importevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ImportEventDeleteOne{builder}
}

// Query returns a query builder for ImportEvent.
func (c *ImportEventClient) Query() *ImportEventQuery {
	return &ImportEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeImportEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ImportEvent entity by its id.
func (c *ImportEventClient) Get(ctx context.Context, id int) (*ImportEvent, error) {
	return c.Query().Where(importevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ImportEventClient) GetX(ctx context.Context, id int) *ImportEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ImportEventClient) Hooks() []Hook {
	return c.hooks.ImportEvent
}

// Interceptors returns the client interceptors.
func (c *ImportEventClient) Interceptors() []Interceptor {
	return c.inters.ImportEvent
}

func (c *ImportEventClient) mutate(ctx context.Context, m *ImportEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ImportEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ImportEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ImportEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ImportEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ImportEvent mutation op: %q", m.Op())
	}
}

// ItemProgressClient is a client for the ItemProgress schema.
type ItemProgressClient struct {
	config
}

// NewItemProgressClient returns a client for the ItemProgress from the given config.
func NewItemProgressClient(c config) *ItemProgressClient {
	return &ItemProgressClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `itemprogress.Hooks(f(g(h())))`.
func (c *ItemProgressClient) Use(hooks ...Hook) {
	c.hooks.ItemProgress = append(c.hooks.ItemProgress, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `itemprogress.Intercept(f(g(h())))`.
func (c *ItemProgressClient) Intercept(interceptors ...Interceptor) {
	c.inters.ItemProgress = append(c.inters.ItemProgress, interceptors...)
}

// Create returns a builder for creating a ItemProgress entity.
func (c *ItemProgressClient) Create() *ItemProgressCreate {
	mutation := newItemProgressMutation(c.config, OpCreate)
	return &ItemProgressCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ItemProgress entities.
func (c *ItemProgressClient) CreateBulk(builders ...*ItemProgressCreate) *ItemProgressCreateBulk {
	return &ItemProgressCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ItemProgressClient) MapCreateBulk(slice any, setFunc func(*ItemProgressCreate, int)) *ItemProgressCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ItemProgressCreateBulk{err: fmt.Errorf("calling to ItemProgressClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ItemProgressCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ItemProgressCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ItemProgress.
func (c *ItemProgressClient) Update() *ItemProgressUpdate {
	mutation := newItemProgressMutation(c.config, OpUpdate)
	return &ItemProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ItemProgressClient) UpdateOne(_m *ItemProgress) *ItemProgressUpdateOne {
	mutation := newItemProgressMutation(c.config, OpUpdateOne, withItemProgress(_m))
	return &ItemProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ItemProgressClient) UpdateOneID(id int) *ItemProgressUpdateOne {
	mutation := newItemProgressMutation(c.config, OpUpdateOne, withItemProgressID(id))
	return &ItemProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ItemProgress.
func (c *ItemProgressClient) Delete() *ItemProgressDelete {
	mutation := newItemProgressMutation(c.config, OpDelete)
	return &ItemProgressDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ItemProgressClient) DeleteOne(_m *ItemProgress) *ItemProgressDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ItemProgressClient) DeleteOneID(id int) *ItemProgressDeleteOne {
	builder := c.Delete().Where(itemprogress.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ItemProgressDeleteOne{builder}
}

// Query returns a query builder for ItemProgress.
func (c *ItemProgressClient) Query() *ItemProgressQuery {
	return &ItemProgressQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeItemProgress},
		inters: c.Interceptors(),
	}
}

// Get returns a ItemProgress entity by its id.
func (c *ItemProgressClient) Get(ctx context.Context, id int) (*ItemProgress, error) {
	return c.Query().Where(itemprogress.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ItemProgressClient) GetX(ctx context.Context, id int) *ItemProgress {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ItemProgressClient) Hooks() []Hook {
	return c.hooks.ItemProgress
}

// Interceptors returns the client interceptors.
func (c *ItemProgressClient) Interceptors() []Interceptor {
	return c.inters.ItemProgress
}

func (c *ItemProgressClient) mutate(ctx context.Context, m *ItemProgressMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ItemProgressCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ItemProgressUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ItemProgressUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ItemProgressDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ItemProgress mutation op: %q", m.Op())
	}
}

// ReviewEventClient is a client for the ReviewEvent schema.
type ReviewEventClient struct {
	config
}

// NewReviewEventClient returns a client for the ReviewEvent from the given config.
func NewReviewEventClient(c config) *ReviewEventClient {
	return &ReviewEventClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `reviewevent.Hooks(f(g(h())))`.
func (c *ReviewEventClient) Use(hooks ...Hook) {
	c.hooks.ReviewEvent = append(c.hooks.ReviewEvent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `reviewevent.Intercept(f(g(h())))`.
func (c *ReviewEventClient) Intercept(interceptors ...Interceptor) {
	c.inters.ReviewEvent = append(c.inters.ReviewEvent, interceptors...)
}

// Create returns a builder for creating a ReviewEvent entity.
func (c *ReviewEventClient) Create() *ReviewEventCreate {
	mutation := newReviewEventMutation(c.config, OpCreate)
	return &ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ReviewEvent entities.
func (c *ReviewEventClient) CreateBulk(builders ...*ReviewEventCreate) *ReviewEventCreateBulk {
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReviewEventClient) MapCreateBulk(slice any, setFunc func(*ReviewEventCreate, int)) *ReviewEventCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReviewEventCreateBulk{err: fmt.Errorf("calling to ReviewEventClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReviewEventCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReviewEventCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ReviewEvent.
func (c *ReviewEventClient) Update() *ReviewEventUpdate {
	mutation := newReviewEventMutation(c.config, OpUpdate)
	return &ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReviewEventClient) UpdateOne(_m *ReviewEvent) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEvent(_m))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReviewEventClient) UpdateOneID(id int) *ReviewEventUpdateOne {
	mutation := newReviewEventMutation(c.config, OpUpdateOne, withReviewEventID(id))
	return &ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ReviewEvent.
func (c *ReviewEventClient) Delete() *ReviewEventDelete {
	mutation := newReviewEventMutation(c.config, OpDelete)
	return &ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReviewEventClient) DeleteOne(_m *ReviewEvent) *ReviewEventDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReviewEventClient) DeleteOneID(id int) *ReviewEventDeleteOne {
	builder := c.Delete().Where(reviewevent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReviewEventDeleteOne{builder}
}

// Query returns a query builder for ReviewEvent.
func (c *ReviewEventClient) Query() *ReviewEventQuery {
	return &ReviewEventQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReviewEvent},
		inters: c.Interceptors(),
	}
}

// Get returns a ReviewEvent entity by its id.
func (c *ReviewEventClient) Get(ctx context.Context, id int) (*ReviewEvent, error) {
	return c.Query().Where(reviewevent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReviewEventClient) GetX(ctx context.Context, id int) *ReviewEvent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReviewEventClient) Hooks() []Hook {
	return c.hooks.ReviewEvent
}

// Interceptors returns the client interceptors.
func (c *ReviewEventClient) Interceptors() []Interceptor {
	return c.inters.ReviewEvent
}

func (c *ReviewEventClient) mutate(ctx context.Context, m *ReviewEventMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReviewEventCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReviewEventUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReviewEventUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReviewEventDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ReviewEvent mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		ImportEvent, ItemProgress, ReviewEvent []ent.Hook
	}
	inters struct {
		ImportEvent, ItemProgress, ReviewEvent []ent.Interceptor
	}
)
