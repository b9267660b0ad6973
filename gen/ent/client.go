// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/giftcard"
	"github.com/joseph-ayodele/giftcards-tracker/gen/ent/processedmessage"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// GiftCard is the client for interacting with the GiftCard builders.
	GiftCard *GiftCardClient
	// ProcessedMessage is the client for interacting with the ProcessedMessage builders.
	ProcessedMessage *ProcessedMessageClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.GiftCard = NewGiftCardClient(c.config)
	c.ProcessedMessage = NewProcessedMessageClient(c.config)
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
		ctx:              ctx,
		config:           cfg,
		GiftCard:         NewGiftCardClient(cfg),
		ProcessedMessage: NewProcessedMessageClient(cfg),
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
		ctx:              ctx,
		config:           cfg,
		GiftCard:         NewGiftCardClient(cfg),
		ProcessedMessage: NewProcessedMessageClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		GiftCard.
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
	c.GiftCard.Use(hooks...)
	c.ProcessedMessage.Use(hooks...)
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	c.GiftCard.Intercept(interceptors...)
	c.ProcessedMessage.Intercept(interceptors...)
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *GiftCardMutation:
		return c.GiftCard.mutate(ctx, m)
	case *ProcessedMessageMutation:
		return c.ProcessedMessage.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// GiftCardClient is a client for the GiftCard schema.
type GiftCardClient struct {
	config
}

// NewGiftCardClient returns a client for the GiftCard from the given config.
func NewGiftCardClient(c config) *GiftCardClient {
	return &GiftCardClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `giftcard.Hooks(f(g(h())))`.
func (c *GiftCardClient) Use(hooks ...Hook) {
	c.hooks.GiftCard = append(c.hooks.GiftCard, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `giftcard.Intercept(f(g(h())))`.
func (c *GiftCardClient) Intercept(interceptors ...Interceptor) {
	c.inters.GiftCard = append(c.inters.GiftCard, interceptors...)
}

// Create returns a builder for creating a GiftCard entity.
func (c *GiftCardClient) Create() *GiftCardCreate {
	mutation := newGiftCardMutation(c.config, OpCreate)
	return &GiftCardCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of GiftCard entities.
func (c *GiftCardClient) CreateBulk(builders ...*GiftCardCreate) *GiftCardCreateBulk {
	return &GiftCardCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *GiftCardClient) MapCreateBulk(slice any, setFunc func(*GiftCardCreate, int)) *GiftCardCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &GiftCardCreateBulk{err: fmt.Errorf("calling to GiftCardClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*GiftCardCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &GiftCardCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for GiftCard.
func (c *GiftCardClient) Update() *GiftCardUpdate {
	mutation := newGiftCardMutation(c.config, OpUpdate)
	return &GiftCardUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *GiftCardClient) UpdateOne(_m *GiftCard) *GiftCardUpdateOne {
	mutation := newGiftCardMutation(c.config, OpUpdateOne, withGiftCard(_m))
	return &GiftCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *GiftCardClient) UpdateOneID(id uuid.UUID) *GiftCardUpdateOne {
	mutation := newGiftCardMutation(c.config, OpUpdateOne, withGiftCardID(id))
	return &GiftCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for GiftCard.
func (c *GiftCardClient) Delete() *GiftCardDelete {
	mutation := newGiftCardMutation(c.config, OpDelete)
	return &GiftCardDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *GiftCardClient) DeleteOne(_m *GiftCard) *GiftCardDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *GiftCardClient) DeleteOneID(id uuid.UUID) *GiftCardDeleteOne {
	builder := c.Delete().Where(giftcard.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &GiftCardDeleteOne{builder}
}

// Query returns a query builder for GiftCard.
func (c *GiftCardClient) Query() *GiftCardQuery {
	return &GiftCardQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeGiftCard},
		inters: c.Interceptors(),
	}
}

// Get returns a GiftCard entity by its id.
func (c *GiftCardClient) Get(ctx context.Context, id uuid.UUID) (*GiftCard, error) {
	return c.Query().Where(giftcard.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *GiftCardClient) GetX(ctx context.Context, id uuid.UUID) *GiftCard {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *GiftCardClient) Hooks() []Hook {
	return c.hooks.GiftCard
}

// Interceptors returns the client interceptors.
func (c *GiftCardClient) Interceptors() []Interceptor {
	return c.inters.GiftCard
}

func (c *GiftCardClient) mutate(ctx context.Context, m *GiftCardMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&GiftCardCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&GiftCardUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&GiftCardUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&GiftCardDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown GiftCard mutation op: %q", m.Op())
	}
}

// ProcessedMessageClient is a client for the ProcessedMessage schema.
type ProcessedMessageClient struct {
	config
}

// NewProcessedMessageClient returns a client for the ProcessedMessage from the given config.
func NewProcessedMessageClient(c config) *ProcessedMessageClient {
	return &ProcessedMessageClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `processedmessage.Hooks(f(g(h())))`.
func (c *ProcessedMessageClient) Use(hooks ...Hook) {
	c.hooks.ProcessedMessage = append(c.hooks.ProcessedMessage, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `processedmessage.Intercept(f(g(h())))`.
func (c *ProcessedMessageClient) Intercept(interceptors ...Interceptor) {
	c.inters.ProcessedMessage = append(c.inters.ProcessedMessage, interceptors...)
}

// Create returns a builder for creating a ProcessedMessage entity.
func (c *ProcessedMessageClient) Create() *ProcessedMessageCreate {
	mutation := newProcessedMessageMutation(c.config, OpCreate)
	return &ProcessedMessageCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of ProcessedMessage entities.
func (c *ProcessedMessageClient) CreateBulk(builders ...*ProcessedMessageCreate) *ProcessedMessageCreateBulk {
	return &ProcessedMessageCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProcessedMessageClient) MapCreateBulk(slice any, setFunc func(*ProcessedMessageCreate, int)) *ProcessedMessageCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProcessedMessageCreateBulk{err: fmt.Errorf("calling to ProcessedMessageClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProcessedMessageCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProcessedMessageCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for ProcessedMessage.
func (c *ProcessedMessageClient) Update() *ProcessedMessageUpdate {
	mutation := newProcessedMessageMutation(c.config, OpUpdate)
	return &ProcessedMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProcessedMessageClient) UpdateOne(_m *ProcessedMessage) *ProcessedMessageUpdateOne {
	mutation := newProcessedMessageMutation(c.config, OpUpdateOne, withProcessedMessage(_m))
	return &ProcessedMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProcessedMessageClient) UpdateOneID(id uuid.UUID) *ProcessedMessageUpdateOne {
	mutation := newProcessedMessageMutation(c.config, OpUpdateOne, withProcessedMessageID(id))
	return &ProcessedMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for ProcessedMessage.
func (c *ProcessedMessageClient) Delete() *ProcessedMessageDelete {
	mutation := newProcessedMessageMutation(c.config, OpDelete)
	return &ProcessedMessageDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProcessedMessageClient) DeleteOne(_m *ProcessedMessage) *ProcessedMessageDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProcessedMessageClient) DeleteOneID(id uuid.UUID) *ProcessedMessageDeleteOne {
	builder := c.Delete().Where(processedmessage.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProcessedMessageDeleteOne{builder}
}

// Query returns a query builder for ProcessedMessage.
func (c *ProcessedMessageClient) Query() *ProcessedMessageQuery {
	return &ProcessedMessageQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProcessedMessage},
		inters: c.Interceptors(),
	}
}

// Get returns a ProcessedMessage entity by its id.
func (c *ProcessedMessageClient) Get(ctx context.Context, id uuid.UUID) (*ProcessedMessage, error) {
	return c.Query().Where(processedmessage.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProcessedMessageClient) GetX(ctx context.Context, id uuid.UUID) *ProcessedMessage {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ProcessedMessageClient) Hooks() []Hook {
	return c.hooks.ProcessedMessage
}

// Interceptors returns the client interceptors.
func (c *ProcessedMessageClient) Interceptors() []Interceptor {
	return c.inters.ProcessedMessage
}

func (c *ProcessedMessageClient) mutate(ctx context.Context, m *ProcessedMessageMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProcessedMessageCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProcessedMessageUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProcessedMessageUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProcessedMessageDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown ProcessedMessage mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		GiftCard, ProcessedMessage []ent.Hook
	}
	inters struct {
		GiftCard, ProcessedMessage []ent.Interceptor
	}
)
