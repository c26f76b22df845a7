// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/google/uuid"
	"github.com/joseph-ayodele/docintel/gen/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/joseph-ayodele/docintel/gen/ent/bankstatement"
	"github.com/joseph-ayodele/docintel/gen/ent/batchitem"
	"github.com/joseph-ayodele/docintel/gen/ent/batchjob"
	"github.com/joseph-ayodele/docintel/gen/ent/contract"
	"github.com/joseph-ayodele/docintel/gen/ent/documentrecord"
	"github.com/joseph-ayodele/docintel/gen/ent/duplicateflag"
	"github.com/joseph-ayodele/docintel/gen/ent/entitylink"
	"github.com/joseph-ayodele/docintel/gen/ent/file"
	"github.com/joseph-ayodele/docintel/gen/ent/invoice"
	"github.com/joseph-ayodele/docintel/gen/ent/receipt"
	"github.com/joseph-ayodele/docintel/gen/ent/voucher"
	"github.com/joseph-ayodele/docintel/gen/ent/warranty"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// BankStatement is the client for interacting with the BankStatement builders.
	BankStatement *BankStatementClient
	// BatchItem is the client for interacting with the BatchItem builders.
	BatchItem *BatchItemClient
	// BatchJob is the client for interacting with the BatchJob builders.
	BatchJob *BatchJobClient
	// Contract is the client for interacting with the Contract builders.
	Contract *ContractClient
	// DocumentRecord is the client for interacting with the DocumentRecord builders.
	DocumentRecord *DocumentRecordClient
	// DuplicateFlag is the client for interacting with the DuplicateFlag builders.
	DuplicateFlag *DuplicateFlagClient
	// EntityLink is the client for interacting with the EntityLink builders.
	EntityLink *EntityLinkClient
	// File is the client for interacting with the File builders.
	File *FileClient
	// Invoice is the client for interacting with the Invoice builders.
	Invoice *InvoiceClient
	// Receipt is the client for interacting with the Receipt builders.
	Receipt *ReceiptClient
	// Voucher is the client for interacting with the Voucher builders.
	Voucher *VoucherClient
	// Warranty is the client for interacting with the Warranty builders.
	Warranty *WarrantyClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.BankStatement = NewBankStatementClient(c.config)
	c.BatchItem = NewBatchItemClient(c.config)
	c.BatchJob = NewBatchJobClient(c.config)
	c.Contract = NewContractClient(c.config)
	c.DocumentRecord = NewDocumentRecordClient(c.config)
	c.DuplicateFlag = NewDuplicateFlagClient(c.config)
	c.EntityLink = NewEntityLinkClient(c.config)
	c.File = NewFileClient(c.config)
	c.Invoice = NewInvoiceClient(c.config)
	c.Receipt = NewReceiptClient(c.config)
	c.Voucher = NewVoucherClient(c.config)
	c.Warranty = NewWarrantyClient(c.config)
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
		ctx:            ctx,
		config:         cfg,
		BankStatement:  NewBankStatementClient(cfg),
		BatchItem:      NewBatchItemClient(cfg),
		BatchJob:       NewBatchJobClient(cfg),
		Contract:       NewContractClient(cfg),
		DocumentRecord: NewDocumentRecordClient(cfg),
		DuplicateFlag:  NewDuplicateFlagClient(cfg),
		EntityLink:     NewEntityLinkClient(cfg),
		File:           NewFileClient(cfg),
		Invoice:        NewInvoiceClient(cfg),
		Receipt:        NewReceiptClient(cfg),
		Voucher:        NewVoucherClient(cfg),
		Warranty:       NewWarrantyClient(cfg),
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
		ctx:            ctx,
		config:         cfg,
		BankStatement:  NewBankStatementClient(cfg),
		BatchItem:      NewBatchItemClient(cfg),
		BatchJob:       NewBatchJobClient(cfg),
		Contract:       NewContractClient(cfg),
		DocumentRecord: NewDocumentRecordClient(cfg),
		DuplicateFlag:  NewDuplicateFlagClient(cfg),
		EntityLink:     NewEntityLinkClient(cfg),
		File:           NewFileClient(cfg),
		Invoice:        NewInvoiceClient(cfg),
		Receipt:        NewReceiptClient(cfg),
		Voucher:        NewVoucherClient(cfg),
		Warranty:       NewWarrantyClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		BankStatement.
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
		c.BankStatement, c.BatchItem, c.BatchJob, c.Contract, c.DocumentRecord,
		c.DuplicateFlag, c.EntityLink, c.File, c.Invoice, c.Receipt, c.Voucher,
		c.Warranty,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.BankStatement, c.BatchItem, c.BatchJob, c.Contract, c.DocumentRecord,
		c.DuplicateFlag, c.EntityLink, c.File, c.Invoice, c.Receipt, c.Voucher,
		c.Warranty,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *BankStatementMutation:
		return c.BankStatement.mutate(ctx, m)
	case *BatchItemMutation:
		return c.BatchItem.mutate(ctx, m)
	case *BatchJobMutation:
		return c.BatchJob.mutate(ctx, m)
	case *ContractMutation:
		return c.Contract.mutate(ctx, m)
	case *DocumentRecordMutation:
		return c.DocumentRecord.mutate(ctx, m)
	case *DuplicateFlagMutation:
		return c.DuplicateFlag.mutate(ctx, m)
	case *EntityLinkMutation:
		return c.EntityLink.mutate(ctx, m)
	case *FileMutation:
		return c.File.mutate(ctx, m)
	case *InvoiceMutation:
		return c.Invoice.mutate(ctx, m)
	case *ReceiptMutation:
		return c.Receipt.mutate(ctx, m)
	case *VoucherMutation:
		return c.Voucher.mutate(ctx, m)
	case *WarrantyMutation:
		return c.Warranty.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// BankStatementClient is a client for the BankStatement schema.
type BankStatementClient struct {
	config
}

// NewBankStatementClient returns a client for the BankStatement from the given config.
func NewBankStatementClient(c config) *BankStatementClient {
	return &BankStatementClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `bankstatement.Hooks(f(g(h())))`.
func (c *BankStatementClient) Use(hooks ...Hook) {
	c.hooks.BankStatement = append(c.hooks.BankStatement, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `bankstatement.Intercept(f(g(h())))`.
func (c *BankStatementClient) Intercept(interceptors ...Interceptor) {
	c.inters.BankStatement = append(c.inters.BankStatement, interceptors...)
}

// Create returns a builder for creating a BankStatement entity.
func (c *BankStatementClient) Create() *BankStatementCreate {
	mutation := newBankStatementMutation(c.config, OpCreate)
	return &BankStatementCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BankStatement entities.
func (c *BankStatementClient) CreateBulk(builders ...*BankStatementCreate) *BankStatementCreateBulk {
	return &BankStatementCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BankStatementClient) MapCreateBulk(slice any, setFunc func(*BankStatementCreate, int)) *BankStatementCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BankStatementCreateBulk{err: fmt.Errorf("calling to BankStatementClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BankStatementCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BankStatementCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BankStatement.
func (c *BankStatementClient) Update() *BankStatementUpdate {
	mutation := newBankStatementMutation(c.config, OpUpdate)
	return &BankStatementUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BankStatementClient) UpdateOne(_m *BankStatement) *BankStatementUpdateOne {
	mutation := newBankStatementMutation(c.config, OpUpdateOne, withBankStatement(_m))
	return &BankStatementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BankStatementClient) UpdateOneID(id uuid.UUID) *BankStatementUpdateOne {
	mutation := newBankStatementMutation(c.config, OpUpdateOne, withBankStatementID(id))
	return &BankStatementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BankStatement.
func (c *BankStatementClient) Delete() *BankStatementDelete {
	mutation := newBankStatementMutation(c.config, OpDelete)
	return &BankStatementDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BankStatementClient) DeleteOne(_m *BankStatement) *BankStatementDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BankStatementClient) DeleteOneID(id uuid.UUID) *BankStatementDeleteOne {
	builder := c.Delete().Where(bankstatement.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BankStatementDeleteOne{builder}
}

// Query returns a query builder for BankStatement.
func (c *BankStatementClient) Query() *BankStatementQuery {
	return &BankStatementQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBankStatement},
		inters: c.Interceptors(),
	}
}

// Get returns a BankStatement entity by its id.
func (c *BankStatementClient) Get(ctx context.Context, id uuid.UUID) (*BankStatement, error) {
	return c.Query().Where(bankstatement.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BankStatementClient) GetX(ctx context.Context, id uuid.UUID) *BankStatement {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *BankStatementClient) Hooks() []Hook {
	return c.hooks.BankStatement
}

// Interceptors returns the client interceptors.
func (c *BankStatementClient) Interceptors() []Interceptor {
	return c.inters.BankStatement
}

func (c *BankStatementClient) mutate(ctx context.Context, m *BankStatementMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BankStatementCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BankStatementUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BankStatementUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BankStatementDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BankStatement mutation op: %q", m.Op())
	}
}

// BatchItemClient is a client for the BatchItem schema.
type BatchItemClient struct {
	config
}

// NewBatchItemClient returns a client for the BatchItem from the given config.
func NewBatchItemClient(c config) *BatchItemClient {
	return &BatchItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchitem.Hooks(f(g(h())))`.
func (c *BatchItemClient) Use(hooks ...Hook) {
	c.hooks.BatchItem = append(c.hooks.BatchItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchitem.Intercept(f(g(h())))`.
func (c *BatchItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchItem = append(c.inters.BatchItem, interceptors...)
}

// Create returns a builder for creating a BatchItem entity.
func (c *BatchItemClient) Create() *BatchItemCreate {
	mutation := newBatchItemMutation(c.config, OpCreate)
	return &BatchItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchItem entities.
func (c *BatchItemClient) CreateBulk(builders ...*BatchItemCreate) *BatchItemCreateBulk {
	return &BatchItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchItemClient) MapCreateBulk(slice any, setFunc func(*BatchItemCreate, int)) *BatchItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchItemCreateBulk{err: fmt.Errorf("calling to BatchItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchItem.
func (c *BatchItemClient) Update() *BatchItemUpdate {
	mutation := newBatchItemMutation(c.config, OpUpdate)
	return &BatchItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchItemClient) UpdateOne(_m *BatchItem) *BatchItemUpdateOne {
	mutation := newBatchItemMutation(c.config, OpUpdateOne, withBatchItem(_m))
	return &BatchItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchItemClient) UpdateOneID(id uuid.UUID) *BatchItemUpdateOne {
	mutation := newBatchItemMutation(c.config, OpUpdateOne, withBatchItemID(id))
	return &BatchItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchItem.
func (c *BatchItemClient) Delete() *BatchItemDelete {
	mutation := newBatchItemMutation(c.config, OpDelete)
	return &BatchItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchItemClient) DeleteOne(_m *BatchItem) *BatchItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchItemClient) DeleteOneID(id uuid.UUID) *BatchItemDeleteOne {
	builder := c.Delete().Where(batchitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchItemDeleteOne{builder}
}

// Query returns a query builder for BatchItem.
func (c *BatchItemClient) Query() *BatchItemQuery {
	return &BatchItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchItem},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchItem entity by its id.
func (c *BatchItemClient) Get(ctx context.Context, id uuid.UUID) (*BatchItem, error) {
	return c.Query().Where(batchitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchItemClient) GetX(ctx context.Context, id uuid.UUID) *BatchItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryJob queries the job edge of a BatchItem.
func (c *BatchItemClient) QueryJob(_m *BatchItem) *BatchJobQuery {
	query := (&BatchJobClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchitem.Table, batchitem.FieldID, id),
			sqlgraph.To(batchjob.Table, batchjob.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, batchitem.JobTable, batchitem.JobColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchItemClient) Hooks() []Hook {
	return c.hooks.BatchItem
}

// Interceptors returns the client interceptors.
func (c *BatchItemClient) Interceptors() []Interceptor {
	return c.inters.BatchItem
}

func (c *BatchItemClient) mutate(ctx context.Context, m *BatchItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchItem mutation op: %q", m.Op())
	}
}

// BatchJobClient is a client for the BatchJob schema.
type BatchJobClient struct {
	config
}

// NewBatchJobClient returns a client for the BatchJob from the given config.
func NewBatchJobClient(c config) *BatchJobClient {
	return &BatchJobClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `batchjob.Hooks(f(g(h())))`.
func (c *BatchJobClient) Use(hooks ...Hook) {
	c.hooks.BatchJob = append(c.hooks.BatchJob, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `batchjob.Intercept(f(g(h())))`.
func (c *BatchJobClient) Intercept(interceptors ...Interceptor) {
	c.inters.BatchJob = append(c.inters.BatchJob, interceptors...)
}

// Create returns a builder for creating a BatchJob entity.
func (c *BatchJobClient) Create() *BatchJobCreate {
	mutation := newBatchJobMutation(c.config, OpCreate)
	return &BatchJobCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of BatchJob entities.
func (c *BatchJobClient) CreateBulk(builders ...*BatchJobCreate) *BatchJobCreateBulk {
	return &BatchJobCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BatchJobClient) MapCreateBulk(slice any, setFunc func(*BatchJobCreate, int)) *BatchJobCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BatchJobCreateBulk{err: fmt.Errorf("calling to BatchJobClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BatchJobCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BatchJobCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for BatchJob.
func (c *BatchJobClient) Update() *BatchJobUpdate {
	mutation := newBatchJobMutation(c.config, OpUpdate)
	return &BatchJobUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BatchJobClient) UpdateOne(_m *BatchJob) *BatchJobUpdateOne {
	mutation := newBatchJobMutation(c.config, OpUpdateOne, withBatchJob(_m))
	return &BatchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BatchJobClient) UpdateOneID(id uuid.UUID) *BatchJobUpdateOne {
	mutation := newBatchJobMutation(c.config, OpUpdateOne, withBatchJobID(id))
	return &BatchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for BatchJob.
func (c *BatchJobClient) Delete() *BatchJobDelete {
	mutation := newBatchJobMutation(c.config, OpDelete)
	return &BatchJobDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BatchJobClient) DeleteOne(_m *BatchJob) *BatchJobDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BatchJobClient) DeleteOneID(id uuid.UUID) *BatchJobDeleteOne {
	builder := c.Delete().Where(batchjob.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BatchJobDeleteOne{builder}
}

// Query returns a query builder for BatchJob.
func (c *BatchJobClient) Query() *BatchJobQuery {
	return &BatchJobQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBatchJob},
		inters: c.Interceptors(),
	}
}

// Get returns a BatchJob entity by its id.
func (c *BatchJobClient) Get(ctx context.Context, id uuid.UUID) (*BatchJob, error) {
	return c.Query().Where(batchjob.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BatchJobClient) GetX(ctx context.Context, id uuid.UUID) *BatchJob {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryItems queries the items edge of a BatchJob.
func (c *BatchJobClient) QueryItems(_m *BatchJob) *BatchItemQuery {
	query := (&BatchItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(batchjob.Table, batchjob.FieldID, id),
			sqlgraph.To(batchitem.Table, batchitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, batchjob.ItemsTable, batchjob.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BatchJobClient) Hooks() []Hook {
	return c.hooks.BatchJob
}

// Interceptors returns the client interceptors.
func (c *BatchJobClient) Interceptors() []Interceptor {
	return c.inters.BatchJob
}

func (c *BatchJobClient) mutate(ctx context.Context, m *BatchJobMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BatchJobCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BatchJobUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BatchJobUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BatchJobDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown BatchJob mutation op: %q", m.Op())
	}
}

// ContractClient is a client for the Contract schema.
type ContractClient struct {
	config
}

// NewContractClient returns a client for the Contract from the given config.
func NewContractClient(c config) *ContractClient {
	return &ContractClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `contract.Hooks(f(g(h())))`.
func (c *ContractClient) Use(hooks ...Hook) {
	c.hooks.Contract = append(c.hooks.Contract, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `contract.Intercept(f(g(h())))`.
func (c *ContractClient) Intercept(interceptors ...Interceptor) {
	c.inters.Contract = append(c.inters.Contract, interceptors...)
}

// Create returns a builder for creating a Contract entity.
func (c *ContractClient) Create() *ContractCreate {
	mutation := newContractMutation(c.config, OpCreate)
	return &ContractCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Contract entities.
func (c *ContractClient) CreateBulk(builders ...*ContractCreate) *ContractCreateBulk {
	return &ContractCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ContractClient) MapCreateBulk(slice any, setFunc func(*ContractCreate, int)) *ContractCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ContractCreateBulk{err: fmt.Errorf("calling to ContractClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ContractCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ContractCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Contract.
func (c *ContractClient) Update() *ContractUpdate {
	mutation := newContractMutation(c.config, OpUpdate)
	return &ContractUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ContractClient) UpdateOne(_m *Contract) *ContractUpdateOne {
	mutation := newContractMutation(c.config, OpUpdateOne, withContract(_m))
	return &ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ContractClient) UpdateOneID(id uuid.UUID) *ContractUpdateOne {
	mutation := newContractMutation(c.config, OpUpdateOne, withContractID(id))
	return &ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Contract.
func (c *ContractClient) Delete() *ContractDelete {
	mutation := newContractMutation(c.config, OpDelete)
	return &ContractDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ContractClient) DeleteOne(_m *Contract) *ContractDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ContractClient) DeleteOneID(id uuid.UUID) *ContractDeleteOne {
	builder := c.Delete().Where(contract.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ContractDeleteOne{builder}
}

// Query returns a query builder for Contract.
func (c *ContractClient) Query() *ContractQuery {
	return &ContractQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeContract},
		inters: c.Interceptors(),
	}
}

// Get returns a Contract entity by its id.
func (c *ContractClient) Get(ctx context.Context, id uuid.UUID) (*Contract, error) {
	return c.Query().Where(contract.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ContractClient) GetX(ctx context.Context, id uuid.UUID) *Contract {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ContractClient) Hooks() []Hook {
	return c.hooks.Contract
}

// Interceptors returns the client interceptors.
func (c *ContractClient) Interceptors() []Interceptor {
	return c.inters.Contract
}

func (c *ContractClient) mutate(ctx context.Context, m *ContractMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ContractCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ContractUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ContractUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ContractDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Contract mutation op: %q", m.Op())
	}
}

// DocumentRecordClient is a client for the DocumentRecord schema.
type DocumentRecordClient struct {
	config
}

// NewDocumentRecordClient returns a client for the DocumentRecord from the given config.
func NewDocumentRecordClient(c config) *DocumentRecordClient {
	return &DocumentRecordClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `documentrecord.Hooks(f(g(h())))`.
func (c *DocumentRecordClient) Use(hooks ...Hook) {
	c.hooks.DocumentRecord = append(c.hooks.DocumentRecord, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `documentrecord.Intercept(f(g(h())))`.
func (c *DocumentRecordClient) Intercept(interceptors ...Interceptor) {
	c.inters.DocumentRecord = append(c.inters.DocumentRecord, interceptors...)
}

// Create returns a builder for creating a DocumentRecord entity.
func (c *DocumentRecordClient) Create() *DocumentRecordCreate {
	mutation := newDocumentRecordMutation(c.config, OpCreate)
	return &DocumentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DocumentRecord entities.
func (c *DocumentRecordClient) CreateBulk(builders ...*DocumentRecordCreate) *DocumentRecordCreateBulk {
	return &DocumentRecordCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DocumentRecordClient) MapCreateBulk(slice any, setFunc func(*DocumentRecordCreate, int)) *DocumentRecordCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DocumentRecordCreateBulk{err: fmt.Errorf("calling to DocumentRecordClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DocumentRecordCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DocumentRecordCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DocumentRecord.
func (c *DocumentRecordClient) Update() *DocumentRecordUpdate {
	mutation := newDocumentRecordMutation(c.config, OpUpdate)
	return &DocumentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DocumentRecordClient) UpdateOne(_m *DocumentRecord) *DocumentRecordUpdateOne {
	mutation := newDocumentRecordMutation(c.config, OpUpdateOne, withDocumentRecord(_m))
	return &DocumentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DocumentRecordClient) UpdateOneID(id uuid.UUID) *DocumentRecordUpdateOne {
	mutation := newDocumentRecordMutation(c.config, OpUpdateOne, withDocumentRecordID(id))
	return &DocumentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DocumentRecord.
func (c *DocumentRecordClient) Delete() *DocumentRecordDelete {
	mutation := newDocumentRecordMutation(c.config, OpDelete)
	return &DocumentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DocumentRecordClient) DeleteOne(_m *DocumentRecord) *DocumentRecordDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DocumentRecordClient) DeleteOneID(id uuid.UUID) *DocumentRecordDeleteOne {
	builder := c.Delete().Where(documentrecord.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DocumentRecordDeleteOne{builder}
}

// Query returns a query builder for DocumentRecord.
func (c *DocumentRecordClient) Query() *DocumentRecordQuery {
	return &DocumentRecordQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDocumentRecord},
		inters: c.Interceptors(),
	}
}

// Get returns a DocumentRecord entity by its id.
func (c *DocumentRecordClient) Get(ctx context.Context, id uuid.UUID) (*DocumentRecord, error) {
	return c.Query().Where(documentrecord.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DocumentRecordClient) GetX(ctx context.Context, id uuid.UUID) *DocumentRecord {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DocumentRecordClient) Hooks() []Hook {
	return c.hooks.DocumentRecord
}

// Interceptors returns the client interceptors.
func (c *DocumentRecordClient) Interceptors() []Interceptor {
	return c.inters.DocumentRecord
}

func (c *DocumentRecordClient) mutate(ctx context.Context, m *DocumentRecordMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DocumentRecordCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DocumentRecordUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DocumentRecordUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DocumentRecordDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DocumentRecord mutation op: %q", m.Op())
	}
}

// DuplicateFlagClient is a client for the DuplicateFlag schema.
type DuplicateFlagClient struct {
	config
}

// NewDuplicateFlagClient returns a client for the DuplicateFlag from the given config.
func NewDuplicateFlagClient(c config) *DuplicateFlagClient {
	return &DuplicateFlagClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `duplicateflag.Hooks(f(g(h())))`.
func (c *DuplicateFlagClient) Use(hooks ...Hook) {
	c.hooks.DuplicateFlag = append(c.hooks.DuplicateFlag, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `duplicateflag.Intercept(f(g(h())))`.
func (c *DuplicateFlagClient) Intercept(interceptors ...Interceptor) {
	c.inters.DuplicateFlag = append(c.inters.DuplicateFlag, interceptors...)
}

// Create returns a builder for creating a DuplicateFlag entity.
func (c *DuplicateFlagClient) Create() *DuplicateFlagCreate {
	mutation := newDuplicateFlagMutation(c.config, OpCreate)
	return &DuplicateFlagCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of DuplicateFlag entities.
func (c *DuplicateFlagClient) CreateBulk(builders ...*DuplicateFlagCreate) *DuplicateFlagCreateBulk {
	return &DuplicateFlagCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *DuplicateFlagClient) MapCreateBulk(slice any, setFunc func(*DuplicateFlagCreate, int)) *DuplicateFlagCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &DuplicateFlagCreateBulk{err: fmt.Errorf("calling to DuplicateFlagClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*DuplicateFlagCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &DuplicateFlagCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for DuplicateFlag.
func (c *DuplicateFlagClient) Update() *DuplicateFlagUpdate {
	mutation := newDuplicateFlagMutation(c.config, OpUpdate)
	return &DuplicateFlagUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *DuplicateFlagClient) UpdateOne(_m *DuplicateFlag) *DuplicateFlagUpdateOne {
	mutation := newDuplicateFlagMutation(c.config, OpUpdateOne, withDuplicateFlag(_m))
	return &DuplicateFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *DuplicateFlagClient) UpdateOneID(id uuid.UUID) *DuplicateFlagUpdateOne {
	mutation := newDuplicateFlagMutation(c.config, OpUpdateOne, withDuplicateFlagID(id))
	return &DuplicateFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for DuplicateFlag.
func (c *DuplicateFlagClient) Delete() *DuplicateFlagDelete {
	mutation := newDuplicateFlagMutation(c.config, OpDelete)
	return &DuplicateFlagDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *DuplicateFlagClient) DeleteOne(_m *DuplicateFlag) *DuplicateFlagDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *DuplicateFlagClient) DeleteOneID(id uuid.UUID) *DuplicateFlagDeleteOne {
	builder := c.Delete().Where(duplicateflag.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &DuplicateFlagDeleteOne{builder}
}

// Query returns a query builder for DuplicateFlag.
func (c *DuplicateFlagClient) Query() *DuplicateFlagQuery {
	return &DuplicateFlagQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeDuplicateFlag},
		inters: c.Interceptors(),
	}
}

// Get returns a DuplicateFlag entity by its id.
func (c *DuplicateFlagClient) Get(ctx context.Context, id uuid.UUID) (*DuplicateFlag, error) {
	return c.Query().Where(duplicateflag.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *DuplicateFlagClient) GetX(ctx context.Context, id uuid.UUID) *DuplicateFlag {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *DuplicateFlagClient) Hooks() []Hook {
	return c.hooks.DuplicateFlag
}

// Interceptors returns the client interceptors.
func (c *DuplicateFlagClient) Interceptors() []Interceptor {
	return c.inters.DuplicateFlag
}

func (c *DuplicateFlagClient) mutate(ctx context.Context, m *DuplicateFlagMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&DuplicateFlagCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&DuplicateFlagUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&DuplicateFlagUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&DuplicateFlagDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown DuplicateFlag mutation op: %q", m.Op())
	}
}

// EntityLinkClient is a client for the EntityLink schema.
type EntityLinkClient struct {
	config
}

// NewEntityLinkClient returns a client for the EntityLink from the given config.
func NewEntityLinkClient(c config) *EntityLinkClient {
	return &EntityLinkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `entitylink.Hooks(f(g(h())))`.
func (c *EntityLinkClient) Use(hooks ...Hook) {
	c.hooks.EntityLink = append(c.hooks.EntityLink, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `entitylink.Intercept(f(g(h())))`.
func (c *EntityLinkClient) Intercept(interceptors ...Interceptor) {
	c.inters.EntityLink = append(c.inters.EntityLink, interceptors...)
}

// Create returns a builder for creating a EntityLink entity.
func (c *EntityLinkClient) Create() *EntityLinkCreate {
	mutation := newEntityLinkMutation(c.config, OpCreate)
	return &EntityLinkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of EntityLink entities.
func (c *EntityLinkClient) CreateBulk(builders ...*EntityLinkCreate) *EntityLinkCreateBulk {
	return &EntityLinkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *EntityLinkClient) MapCreateBulk(slice any, setFunc func(*EntityLinkCreate, int)) *EntityLinkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &EntityLinkCreateBulk{err: fmt.Errorf("calling to EntityLinkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*EntityLinkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &EntityLinkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for EntityLink.
func (c *EntityLinkClient) Update() *EntityLinkUpdate {
	mutation := newEntityLinkMutation(c.config, OpUpdate)
	return &EntityLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *EntityLinkClient) UpdateOne(_m *EntityLink) *EntityLinkUpdateOne {
	mutation := newEntityLinkMutation(c.config, OpUpdateOne, withEntityLink(_m))
	return &EntityLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *EntityLinkClient) UpdateOneID(id uuid.UUID) *EntityLinkUpdateOne {
	mutation := newEntityLinkMutation(c.config, OpUpdateOne, withEntityLinkID(id))
	return &EntityLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for EntityLink.
func (c *EntityLinkClient) Delete() *EntityLinkDelete {
	mutation := newEntityLinkMutation(c.config, OpDelete)
	return &EntityLinkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *EntityLinkClient) DeleteOne(_m *EntityLink) *EntityLinkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *EntityLinkClient) DeleteOneID(id uuid.UUID) *EntityLinkDeleteOne {
	builder := c.Delete().Where(entitylink.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &EntityLinkDeleteOne{builder}
}

// Query returns a query builder for EntityLink.
func (c *EntityLinkClient) Query() *EntityLinkQuery {
	return &EntityLinkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeEntityLink},
		inters: c.Interceptors(),
	}
}

// Get returns a EntityLink entity by its id.
func (c *EntityLinkClient) Get(ctx context.Context, id uuid.UUID) (*EntityLink, error) {
	return c.Query().Where(entitylink.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *EntityLinkClient) GetX(ctx context.Context, id uuid.UUID) *EntityLink {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryFile queries the file edge of a EntityLink.
func (c *EntityLinkClient) QueryFile(_m *EntityLink) *FileQuery {
	query := (&FileClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(entitylink.Table, entitylink.FieldID, id),
			sqlgraph.To(file.Table, file.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, entitylink.FileTable, entitylink.FileColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *EntityLinkClient) Hooks() []Hook {
	return c.hooks.EntityLink
}

// Interceptors returns the client interceptors.
func (c *EntityLinkClient) Interceptors() []Interceptor {
	return c.inters.EntityLink
}

func (c *EntityLinkClient) mutate(ctx context.Context, m *EntityLinkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&EntityLinkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&EntityLinkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&EntityLinkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&EntityLinkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown EntityLink mutation op: %q", m.Op())
	}
}

// FileClient is a client for the File schema.
type FileClient struct {
	config
}

// NewFileClient returns a client for the File from the given config.
func NewFileClient(c config) *FileClient {
	return &FileClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `file.Hooks(f(g(h())))`.
func (c *FileClient) Use(hooks ...Hook) {
	c.hooks.File = append(c.hooks.File, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `file.Intercept(f(g(h())))`.
func (c *FileClient) Intercept(interceptors ...Interceptor) {
	c.inters.File = append(c.inters.File, interceptors...)
}

// Create returns a builder for creating a File entity.
func (c *FileClient) Create() *FileCreate {
	mutation := newFileMutation(c.config, OpCreate)
	return &FileCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of File entities.
func (c *FileClient) CreateBulk(builders ...*FileCreate) *FileCreateBulk {
	return &FileCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *FileClient) MapCreateBulk(slice any, setFunc func(*FileCreate, int)) *FileCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &FileCreateBulk{err: fmt.Errorf("calling to FileClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*FileCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &FileCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for File.
func (c *FileClient) Update() *FileUpdate {
	mutation := newFileMutation(c.config, OpUpdate)
	return &FileUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *FileClient) UpdateOne(_m *File) *FileUpdateOne {
	mutation := newFileMutation(c.config, OpUpdateOne, withFile(_m))
	return &FileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *FileClient) UpdateOneID(id uuid.UUID) *FileUpdateOne {
	mutation := newFileMutation(c.config, OpUpdateOne, withFileID(id))
	return &FileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for File.
func (c *FileClient) Delete() *FileDelete {
	mutation := newFileMutation(c.config, OpDelete)
	return &FileDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *FileClient) DeleteOne(_m *File) *FileDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *FileClient) DeleteOneID(id uuid.UUID) *FileDeleteOne {
	builder := c.Delete().Where(file.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &FileDeleteOne{builder}
}

// Query returns a query builder for File.
func (c *FileClient) Query() *FileQuery {
	return &FileQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeFile},
		inters: c.Interceptors(),
	}
}

// Get returns a File entity by its id.
func (c *FileClient) Get(ctx context.Context, id uuid.UUID) (*File, error) {
	return c.Query().Where(file.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *FileClient) GetX(ctx context.Context, id uuid.UUID) *File {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryEntityLinks queries the entity_links edge of a File.
func (c *FileClient) QueryEntityLinks(_m *File) *EntityLinkQuery {
	query := (&EntityLinkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(file.Table, file.FieldID, id),
			sqlgraph.To(entitylink.Table, entitylink.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, file.EntityLinksTable, file.EntityLinksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *FileClient) Hooks() []Hook {
	return c.hooks.File
}

// Interceptors returns the client interceptors.
func (c *FileClient) Interceptors() []Interceptor {
	return c.inters.File
}

func (c *FileClient) mutate(ctx context.Context, m *FileMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&FileCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&FileUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&FileUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&FileDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown File mutation op: %q", m.Op())
	}
}

// InvoiceClient is a client for the Invoice schema.
type InvoiceClient struct {
	config
}

// NewInvoiceClient returns a client for the Invoice from the given config.
func NewInvoiceClient(c config) *InvoiceClient {
	return &InvoiceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `invoice.Hooks(f(g(h())))`.
func (c *InvoiceClient) Use(hooks ...Hook) {
	c.hooks.Invoice = append(c.hooks.Invoice, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `invoice.Intercept(f(g(h())))`.
func (c *InvoiceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Invoice = append(c.inters.Invoice, interceptors...)
}

// Create returns a builder for creating a Invoice entity.
func (c *InvoiceClient) Create() *InvoiceCreate {
	mutation := newInvoiceMutation(c.config, OpCreate)
	return &InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Invoice entities.
func (c *InvoiceClient) CreateBulk(builders ...*InvoiceCreate) *InvoiceCreateBulk {
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *InvoiceClient) MapCreateBulk(slice any, setFunc func(*InvoiceCreate, int)) *InvoiceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &InvoiceCreateBulk{err: fmt.Errorf("calling to InvoiceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*InvoiceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &InvoiceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Invoice.
func (c *InvoiceClient) Update() *InvoiceUpdate {
	mutation := newInvoiceMutation(c.config, OpUpdate)
	return &InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *InvoiceClient) UpdateOne(_m *Invoice) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoice(_m))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *InvoiceClient) UpdateOneID(id uuid.UUID) *InvoiceUpdateOne {
	mutation := newInvoiceMutation(c.config, OpUpdateOne, withInvoiceID(id))
	return &InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Invoice.
func (c *InvoiceClient) Delete() *InvoiceDelete {
	mutation := newInvoiceMutation(c.config, OpDelete)
	return &InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *InvoiceClient) DeleteOne(_m *Invoice) *InvoiceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *InvoiceClient) DeleteOneID(id uuid.UUID) *InvoiceDeleteOne {
	builder := c.Delete().Where(invoice.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &InvoiceDeleteOne{builder}
}

// Query returns a query builder for Invoice.
func (c *InvoiceClient) Query() *InvoiceQuery {
	return &InvoiceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeInvoice},
		inters: c.Interceptors(),
	}
}

// Get returns a Invoice entity by its id.
func (c *InvoiceClient) Get(ctx context.Context, id uuid.UUID) (*Invoice, error) {
	return c.Query().Where(invoice.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *InvoiceClient) GetX(ctx context.Context, id uuid.UUID) *Invoice {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *InvoiceClient) Hooks() []Hook {
	return c.hooks.Invoice
}

// Interceptors returns the client interceptors.
func (c *InvoiceClient) Interceptors() []Interceptor {
	return c.inters.Invoice
}

func (c *InvoiceClient) mutate(ctx context.Context, m *InvoiceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&InvoiceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&InvoiceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&InvoiceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&InvoiceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Invoice mutation op: %q", m.Op())
	}
}

// ReceiptClient is a client for the Receipt schema.
type ReceiptClient struct {
	config
}

// NewReceiptClient returns a client for the Receipt from the given config.
func NewReceiptClient(c config) *ReceiptClient {
	return &ReceiptClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `receipt.Hooks(f(g(h())))`.
func (c *ReceiptClient) Use(hooks ...Hook) {
	c.hooks.Receipt = append(c.hooks.Receipt, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `receipt.Intercept(f(g(h())))`.
func (c *ReceiptClient) Intercept(interceptors ...Interceptor) {
	c.inters.Receipt = append(c.inters.Receipt, interceptors...)
}

// Create returns a builder for creating a Receipt entity.
func (c *ReceiptClient) Create() *ReceiptCreate {
	mutation := newReceiptMutation(c.config, OpCreate)
	return &ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Receipt entities.
func (c *ReceiptClient) CreateBulk(builders ...*ReceiptCreate) *ReceiptCreateBulk {
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ReceiptClient) MapCreateBulk(slice any, setFunc func(*ReceiptCreate, int)) *ReceiptCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ReceiptCreateBulk{err: fmt.Errorf("calling to ReceiptClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ReceiptCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ReceiptCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Receipt.
func (c *ReceiptClient) Update() *ReceiptUpdate {
	mutation := newReceiptMutation(c.config, OpUpdate)
	return &ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ReceiptClient) UpdateOne(_m *Receipt) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceipt(_m))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ReceiptClient) UpdateOneID(id uuid.UUID) *ReceiptUpdateOne {
	mutation := newReceiptMutation(c.config, OpUpdateOne, withReceiptID(id))
	return &ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Receipt.
func (c *ReceiptClient) Delete() *ReceiptDelete {
	mutation := newReceiptMutation(c.config, OpDelete)
	return &ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ReceiptClient) DeleteOne(_m *Receipt) *ReceiptDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ReceiptClient) DeleteOneID(id uuid.UUID) *ReceiptDeleteOne {
	builder := c.Delete().Where(receipt.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ReceiptDeleteOne{builder}
}

// Query returns a query builder for Receipt.
func (c *ReceiptClient) Query() *ReceiptQuery {
	return &ReceiptQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeReceipt},
		inters: c.Interceptors(),
	}
}

// Get returns a Receipt entity by its id.
func (c *ReceiptClient) Get(ctx context.Context, id uuid.UUID) (*Receipt, error) {
	return c.Query().Where(receipt.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ReceiptClient) GetX(ctx context.Context, id uuid.UUID) *Receipt {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *ReceiptClient) Hooks() []Hook {
	return c.hooks.Receipt
}

// Interceptors returns the client interceptors.
func (c *ReceiptClient) Interceptors() []Interceptor {
	return c.inters.Receipt
}

func (c *ReceiptClient) mutate(ctx context.Context, m *ReceiptMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ReceiptCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ReceiptUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ReceiptUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ReceiptDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Receipt mutation op: %q", m.Op())
	}
}

// VoucherClient is a client for the Voucher schema.
type VoucherClient struct {
	config
}

// NewVoucherClient returns a client for the Voucher from the given config.
func NewVoucherClient(c config) *VoucherClient {
	return &VoucherClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `voucher.Hooks(f(g(h())))`.
func (c *VoucherClient) Use(hooks ...Hook) {
	c.hooks.Voucher = append(c.hooks.Voucher, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `voucher.Intercept(f(g(h())))`.
func (c *VoucherClient) Intercept(interceptors ...Interceptor) {
	c.inters.Voucher = append(c.inters.Voucher, interceptors...)
}

// Create returns a builder for creating a Voucher entity.
func (c *VoucherClient) Create() *VoucherCreate {
	mutation := newVoucherMutation(c.config, OpCreate)
	return &VoucherCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Voucher entities.
func (c *VoucherClient) CreateBulk(builders ...*VoucherCreate) *VoucherCreateBulk {
	return &VoucherCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *VoucherClient) MapCreateBulk(slice any, setFunc func(*VoucherCreate, int)) *VoucherCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &VoucherCreateBulk{err: fmt.Errorf("calling to VoucherClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*VoucherCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &VoucherCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Voucher.
func (c *VoucherClient) Update() *VoucherUpdate {
	mutation := newVoucherMutation(c.config, OpUpdate)
	return &VoucherUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *VoucherClient) UpdateOne(_m *Voucher) *VoucherUpdateOne {
	mutation := newVoucherMutation(c.config, OpUpdateOne, withVoucher(_m))
	return &VoucherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *VoucherClient) UpdateOneID(id uuid.UUID) *VoucherUpdateOne {
	mutation := newVoucherMutation(c.config, OpUpdateOne, withVoucherID(id))
	return &VoucherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Voucher.
func (c *VoucherClient) Delete() *VoucherDelete {
	mutation := newVoucherMutation(c.config, OpDelete)
	return &VoucherDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *VoucherClient) DeleteOne(_m *Voucher) *VoucherDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *VoucherClient) DeleteOneID(id uuid.UUID) *VoucherDeleteOne {
	builder := c.Delete().Where(voucher.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &VoucherDeleteOne{builder}
}

// Query returns a query builder for Voucher.
func (c *VoucherClient) Query() *VoucherQuery {
	return &VoucherQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeVoucher},
		inters: c.Interceptors(),
	}
}

// Get returns a Voucher entity by its id.
func (c *VoucherClient) Get(ctx context.Context, id uuid.UUID) (*Voucher, error) {
	return c.Query().Where(voucher.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *VoucherClient) GetX(ctx context.Context, id uuid.UUID) *Voucher {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *VoucherClient) Hooks() []Hook {
	return c.hooks.Voucher
}

// Interceptors returns the client interceptors.
func (c *VoucherClient) Interceptors() []Interceptor {
	return c.inters.Voucher
}

func (c *VoucherClient) mutate(ctx context.Context, m *VoucherMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&VoucherCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&VoucherUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&VoucherUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&VoucherDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Voucher mutation op: %q", m.Op())
	}
}

// WarrantyClient is a client for the Warranty schema.
type WarrantyClient struct {
	config
}

// NewWarrantyClient returns a client for the Warranty from the given config.
func NewWarrantyClient(c config) *WarrantyClient {
	return &WarrantyClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `warranty.Hooks(f(g(h())))`.
func (c *WarrantyClient) Use(hooks ...Hook) {
	c.hooks.Warranty = append(c.hooks.Warranty, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `warranty.Intercept(f(g(h())))`.
func (c *WarrantyClient) Intercept(interceptors ...Interceptor) {
	c.inters.Warranty = append(c.inters.Warranty, interceptors...)
}

// Create returns a builder for creating a Warranty entity.
func (c *WarrantyClient) Create() *WarrantyCreate {
	mutation := newWarrantyMutation(c.config, OpCreate)
	return &WarrantyCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Warranty entities.
func (c *WarrantyClient) CreateBulk(builders ...*WarrantyCreate) *WarrantyCreateBulk {
	return &WarrantyCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *WarrantyClient) MapCreateBulk(slice any, setFunc func(*WarrantyCreate, int)) *WarrantyCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &WarrantyCreateBulk{err: fmt.Errorf("calling to WarrantyClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*WarrantyCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &WarrantyCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Warranty.
func (c *WarrantyClient) Update() *WarrantyUpdate {
	mutation := newWarrantyMutation(c.config, OpUpdate)
	return &WarrantyUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *WarrantyClient) UpdateOne(_m *Warranty) *WarrantyUpdateOne {
	mutation := newWarrantyMutation(c.config, OpUpdateOne, withWarranty(_m))
	return &WarrantyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *WarrantyClient) UpdateOneID(id uuid.UUID) *WarrantyUpdateOne {
	mutation := newWarrantyMutation(c.config, OpUpdateOne, withWarrantyID(id))
	return &WarrantyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Warranty.
func (c *WarrantyClient) Delete() *WarrantyDelete {
	mutation := newWarrantyMutation(c.config, OpDelete)
	return &WarrantyDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *WarrantyClient) DeleteOne(_m *Warranty) *WarrantyDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *WarrantyClient) DeleteOneID(id uuid.UUID) *WarrantyDeleteOne {
	builder := c.Delete().Where(warranty.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &WarrantyDeleteOne{builder}
}

// Query returns a query builder for Warranty.
func (c *WarrantyClient) Query() *WarrantyQuery {
	return &WarrantyQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeWarranty},
		inters: c.Interceptors(),
	}
}

// Get returns a Warranty entity by its id.
func (c *WarrantyClient) Get(ctx context.Context, id uuid.UUID) (*Warranty, error) {
	return c.Query().Where(warranty.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *WarrantyClient) GetX(ctx context.Context, id uuid.UUID) *Warranty {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// Hooks returns the client hooks.
func (c *WarrantyClient) Hooks() []Hook {
	return c.hooks.Warranty
}

// Interceptors returns the client interceptors.
func (c *WarrantyClient) Interceptors() []Interceptor {
	return c.inters.Warranty
}

func (c *WarrantyClient) mutate(ctx context.Context, m *WarrantyMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&WarrantyCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&WarrantyUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&WarrantyUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&WarrantyDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Warranty mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		BankStatement, BatchItem, BatchJob, Contract, DocumentRecord, DuplicateFlag,
		EntityLink, File, Invoice, Receipt, Voucher, Warranty []ent.Hook
	}
	inters struct {
		BankStatement, BatchItem, BatchJob, Contract, DocumentRecord, DuplicateFlag,
		EntityLink, File, Invoice, Receipt, Voucher, Warranty []ent.Interceptor
	}
)
