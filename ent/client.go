// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"log"
	"reflect"

	"github.com/cipherswarm/cipherswarm/ent/migrate"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/cipherswarm/cipherswarm/ent/agent"
	"github.com/cipherswarm/cipherswarm/ent/agenterror"
	"github.com/cipherswarm/cipherswarm/ent/attack"
	"github.com/cipherswarm/cipherswarm/ent/benchmark"
	"github.com/cipherswarm/cipherswarm/ent/campaign"
	"github.com/cipherswarm/cipherswarm/ent/crackresult"
	"github.com/cipherswarm/cipherswarm/ent/hashcatstatus"
	"github.com/cipherswarm/cipherswarm/ent/hashitem"
	"github.com/cipherswarm/cipherswarm/ent/hashlist"
	"github.com/cipherswarm/cipherswarm/ent/project"
	"github.com/cipherswarm/cipherswarm/ent/resource"
	"github.com/cipherswarm/cipherswarm/ent/task"
)

// Client is the client that holds all ent builders.
type Client struct {
	config
	// Schema is the client for creating, migrating and dropping schema.
	Schema *migrate.Schema
	// Agent is the client for interacting with the Agent builders.
	Agent *AgentClient
	// AgentError is the client for interacting with the AgentError builders.
	AgentError *AgentErrorClient
	// Attack is the client for interacting with the Attack builders.
	Attack *AttackClient
	// Benchmark is the client for interacting with the Benchmark builders.
	Benchmark *BenchmarkClient
	// Campaign is the client for interacting with the Campaign builders.
	Campaign *CampaignClient
	// CrackResult is the client for interacting with the CrackResult builders.
	CrackResult *CrackResultClient
	// HashItem is the client for interacting with the HashItem builders.
	HashItem *HashItemClient
	// HashList is the client for interacting with the HashList builders.
	HashList *HashListClient
	// HashcatStatus is the client for interacting with the HashcatStatus builders.
	HashcatStatus *HashcatStatusClient
	// Project is the client for interacting with the Project builders.
	Project *ProjectClient
	// Resource is the client for interacting with the Resource builders.
	Resource *ResourceClient
	// Task is the client for interacting with the Task builders.
	Task *TaskClient
}

// NewClient creates a new client configured with the given options.
func NewClient(opts ...Option) *Client {
	client := &Client{config: newConfig(opts...)}
	client.init()
	return client
}

func (c *Client) init() {
	c.Schema = migrate.NewSchema(c.driver)
	c.Agent = NewAgentClient(c.config)
	c.AgentError = NewAgentErrorClient(c.config)
	c.Attack = NewAttackClient(c.config)
	c.Benchmark = NewBenchmarkClient(c.config)
	c.Campaign = NewCampaignClient(c.config)
	c.CrackResult = NewCrackResultClient(c.config)
	c.HashItem = NewHashItemClient(c.config)
	c.HashList = NewHashListClient(c.config)
	c.HashcatStatus = NewHashcatStatusClient(c.config)
	c.Project = NewProjectClient(c.config)
	c.Resource = NewResourceClient(c.config)
	c.Task = NewTaskClient(c.config)
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
		ctx:           ctx,
		config:        cfg,
		Agent:         NewAgentClient(cfg),
		AgentError:    NewAgentErrorClient(cfg),
		Attack:        NewAttackClient(cfg),
		Benchmark:     NewBenchmarkClient(cfg),
		Campaign:      NewCampaignClient(cfg),
		CrackResult:   NewCrackResultClient(cfg),
		HashItem:      NewHashItemClient(cfg),
		HashList:      NewHashListClient(cfg),
		HashcatStatus: NewHashcatStatusClient(cfg),
		Project:       NewProjectClient(cfg),
		Resource:      NewResourceClient(cfg),
		Task:          NewTaskClient(cfg),
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
		ctx:           ctx,
		config:        cfg,
		Agent:         NewAgentClient(cfg),
		AgentError:    NewAgentErrorClient(cfg),
		Attack:        NewAttackClient(cfg),
		Benchmark:     NewBenchmarkClient(cfg),
		Campaign:      NewCampaignClient(cfg),
		CrackResult:   NewCrackResultClient(cfg),
		HashItem:      NewHashItemClient(cfg),
		HashList:      NewHashListClient(cfg),
		HashcatStatus: NewHashcatStatusClient(cfg),
		Project:       NewProjectClient(cfg),
		Resource:      NewResourceClient(cfg),
		Task:          NewTaskClient(cfg),
	}, nil
}

// Debug returns a new debug-client. It's used to get verbose logging on specific operations.
//
//	client.Debug().
//		Agent.
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
		c.Agent, c.AgentError, c.Attack, c.Benchmark, c.Campaign, c.CrackResult,
		c.HashItem, c.HashList, c.HashcatStatus, c.Project, c.Resource, c.Task,
	} {
		n.Use(hooks...)
	}
}

// Intercept adds the query interceptors to all the entity clients.
// In order to add interceptors to a specific client, call: `client.Node.Intercept(...)`.
func (c *Client) Intercept(interceptors ...Interceptor) {
	for _, n := range []interface{ Intercept(...Interceptor) }{
		c.Agent, c.AgentError, c.Attack, c.Benchmark, c.Campaign, c.CrackResult,
		c.HashItem, c.HashList, c.HashcatStatus, c.Project, c.Resource, c.Task,
	} {
		n.Intercept(interceptors...)
	}
}

// Mutate implements the ent.Mutator interface.
func (c *Client) Mutate(ctx context.Context, m Mutation) (Value, error) {
	switch m := m.(type) {
	case *AgentMutation:
		return c.Agent.mutate(ctx, m)
	case *AgentErrorMutation:
		return c.AgentError.mutate(ctx, m)
	case *AttackMutation:
		return c.Attack.mutate(ctx, m)
	case *BenchmarkMutation:
		return c.Benchmark.mutate(ctx, m)
	case *CampaignMutation:
		return c.Campaign.mutate(ctx, m)
	case *CrackResultMutation:
		return c.CrackResult.mutate(ctx, m)
	case *HashItemMutation:
		return c.HashItem.mutate(ctx, m)
	case *HashListMutation:
		return c.HashList.mutate(ctx, m)
	case *HashcatStatusMutation:
		return c.HashcatStatus.mutate(ctx, m)
	case *ProjectMutation:
		return c.Project.mutate(ctx, m)
	case *ResourceMutation:
		return c.Resource.mutate(ctx, m)
	case *TaskMutation:
		return c.Task.mutate(ctx, m)
	default:
		return nil, fmt.Errorf("ent: unknown mutation type %T", m)
	}
}

// AgentClient is a client for the Agent schema.
type AgentClient struct {
	config
}

// NewAgentClient returns a client for the Agent from the given config.
func NewAgentClient(c config) *AgentClient {
	return &AgentClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agent.Hooks(f(g(h())))`.
func (c *AgentClient) Use(hooks ...Hook) {
	c.hooks.Agent = append(c.hooks.Agent, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agent.Intercept(f(g(h())))`.
func (c *AgentClient) Intercept(interceptors ...Interceptor) {
	c.inters.Agent = append(c.inters.Agent, interceptors...)
}

// Create returns a builder for creating a Agent entity.
func (c *AgentClient) Create() *AgentCreate {
	mutation := newAgentMutation(c.config, OpCreate)
	return &AgentCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Agent entities.
func (c *AgentClient) CreateBulk(builders ...*AgentCreate) *AgentCreateBulk {
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentClient) MapCreateBulk(slice any, setFunc func(*AgentCreate, int)) *AgentCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentCreateBulk{err: fmt.Errorf("calling to AgentClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Agent.
func (c *AgentClient) Update() *AgentUpdate {
	mutation := newAgentMutation(c.config, OpUpdate)
	return &AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentClient) UpdateOne(_m *Agent) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgent(_m))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentClient) UpdateOneID(id int64) *AgentUpdateOne {
	mutation := newAgentMutation(c.config, OpUpdateOne, withAgentID(id))
	return &AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Agent.
func (c *AgentClient) Delete() *AgentDelete {
	mutation := newAgentMutation(c.config, OpDelete)
	return &AgentDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentClient) DeleteOne(_m *Agent) *AgentDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentClient) DeleteOneID(id int64) *AgentDeleteOne {
	builder := c.Delete().Where(agent.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentDeleteOne{builder}
}

// Query returns a query builder for Agent.
func (c *AgentClient) Query() *AgentQuery {
	return &AgentQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgent},
		inters: c.Interceptors(),
	}
}

// Get returns a Agent entity by its id.
func (c *AgentClient) Get(ctx context.Context, id int64) (*Agent, error) {
	return c.Query().Where(agent.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentClient) GetX(ctx context.Context, id int64) *Agent {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProjects queries the projects edge of a Agent.
func (c *AgentClient) QueryProjects(_m *Agent) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, agent.ProjectsTable, agent.ProjectsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Agent.
func (c *AgentClient) QueryTasks(_m *Agent) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.TasksTable, agent.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryBenchmarks queries the benchmarks edge of a Agent.
func (c *AgentClient) QueryBenchmarks(_m *Agent) *BenchmarkQuery {
	query := (&BenchmarkClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(benchmark.Table, benchmark.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.BenchmarksTable, agent.BenchmarksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgentErrors queries the agent_errors edge of a Agent.
func (c *AgentClient) QueryAgentErrors(_m *Agent) *AgentErrorQuery {
	query := (&AgentErrorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agent.Table, agent.FieldID, id),
			sqlgraph.To(agenterror.Table, agenterror.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, agent.AgentErrorsTable, agent.AgentErrorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentClient) Hooks() []Hook {
	return c.hooks.Agent
}

// Interceptors returns the client interceptors.
func (c *AgentClient) Interceptors() []Interceptor {
	return c.inters.Agent
}

func (c *AgentClient) mutate(ctx context.Context, m *AgentMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Agent mutation op: %q", m.Op())
	}
}

// AgentErrorClient is a client for the AgentError schema.
type AgentErrorClient struct {
	config
}

// NewAgentErrorClient returns a client for the AgentError from the given config.
func NewAgentErrorClient(c config) *AgentErrorClient {
	return &AgentErrorClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `agenterror.Hooks(f(g(h())))`.
func (c *AgentErrorClient) Use(hooks ...Hook) {
	c.hooks.AgentError = append(c.hooks.AgentError, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `agenterror.Intercept(f(g(h())))`.
func (c *AgentErrorClient) Intercept(interceptors ...Interceptor) {
	c.inters.AgentError = append(c.inters.AgentError, interceptors...)
}

// Create returns a builder for creating a AgentError entity.
func (c *AgentErrorClient) Create() *AgentErrorCreate {
	mutation := newAgentErrorMutation(c.config, OpCreate)
	return &AgentErrorCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of AgentError entities.
func (c *AgentErrorClient) CreateBulk(builders ...*AgentErrorCreate) *AgentErrorCreateBulk {
	return &AgentErrorCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AgentErrorClient) MapCreateBulk(slice any, setFunc func(*AgentErrorCreate, int)) *AgentErrorCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AgentErrorCreateBulk{err: fmt.Errorf("calling to AgentErrorClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AgentErrorCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AgentErrorCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for AgentError.
func (c *AgentErrorClient) Update() *AgentErrorUpdate {
	mutation := newAgentErrorMutation(c.config, OpUpdate)
	return &AgentErrorUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AgentErrorClient) UpdateOne(_m *AgentError) *AgentErrorUpdateOne {
	mutation := newAgentErrorMutation(c.config, OpUpdateOne, withAgentError(_m))
	return &AgentErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AgentErrorClient) UpdateOneID(id int64) *AgentErrorUpdateOne {
	mutation := newAgentErrorMutation(c.config, OpUpdateOne, withAgentErrorID(id))
	return &AgentErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for AgentError.
func (c *AgentErrorClient) Delete() *AgentErrorDelete {
	mutation := newAgentErrorMutation(c.config, OpDelete)
	return &AgentErrorDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AgentErrorClient) DeleteOne(_m *AgentError) *AgentErrorDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AgentErrorClient) DeleteOneID(id int64) *AgentErrorDeleteOne {
	builder := c.Delete().Where(agenterror.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AgentErrorDeleteOne{builder}
}

// Query returns a query builder for AgentError.
func (c *AgentErrorClient) Query() *AgentErrorQuery {
	return &AgentErrorQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAgentError},
		inters: c.Interceptors(),
	}
}

// Get returns a AgentError entity by its id.
func (c *AgentErrorClient) Get(ctx context.Context, id int64) (*AgentError, error) {
	return c.Query().Where(agenterror.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AgentErrorClient) GetX(ctx context.Context, id int64) *AgentError {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a AgentError.
func (c *AgentErrorClient) QueryAgent(_m *AgentError) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agenterror.Table, agenterror.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenterror.AgentTable, agenterror.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTask queries the task edge of a AgentError.
func (c *AgentErrorClient) QueryTask(_m *AgentError) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(agenterror.Table, agenterror.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, agenterror.TaskTable, agenterror.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AgentErrorClient) Hooks() []Hook {
	return c.hooks.AgentError
}

// Interceptors returns the client interceptors.
func (c *AgentErrorClient) Interceptors() []Interceptor {
	return c.inters.AgentError
}

func (c *AgentErrorClient) mutate(ctx context.Context, m *AgentErrorMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AgentErrorCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AgentErrorUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AgentErrorUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AgentErrorDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown AgentError mutation op: %q", m.Op())
	}
}

// AttackClient is a client for the Attack schema.
type AttackClient struct {
	config
}

// NewAttackClient returns a client for the Attack from the given config.
func NewAttackClient(c config) *AttackClient {
	return &AttackClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `attack.Hooks(f(g(h())))`.
func (c *AttackClient) Use(hooks ...Hook) {
	c.hooks.Attack = append(c.hooks.Attack, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `attack.Intercept(f(g(h())))`.
func (c *AttackClient) Intercept(interceptors ...Interceptor) {
	c.inters.Attack = append(c.inters.Attack, interceptors...)
}

// Create returns a builder for creating a Attack entity.
func (c *AttackClient) Create() *AttackCreate {
	mutation := newAttackMutation(c.config, OpCreate)
	return &AttackCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Attack entities.
func (c *AttackClient) CreateBulk(builders ...*AttackCreate) *AttackCreateBulk {
	return &AttackCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *AttackClient) MapCreateBulk(slice any, setFunc func(*AttackCreate, int)) *AttackCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &AttackCreateBulk{err: fmt.Errorf("calling to AttackClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*AttackCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &AttackCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Attack.
func (c *AttackClient) Update() *AttackUpdate {
	mutation := newAttackMutation(c.config, OpUpdate)
	return &AttackUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *AttackClient) UpdateOne(_m *Attack) *AttackUpdateOne {
	mutation := newAttackMutation(c.config, OpUpdateOne, withAttack(_m))
	return &AttackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *AttackClient) UpdateOneID(id int64) *AttackUpdateOne {
	mutation := newAttackMutation(c.config, OpUpdateOne, withAttackID(id))
	return &AttackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Attack.
func (c *AttackClient) Delete() *AttackDelete {
	mutation := newAttackMutation(c.config, OpDelete)
	return &AttackDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *AttackClient) DeleteOne(_m *Attack) *AttackDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *AttackClient) DeleteOneID(id int64) *AttackDeleteOne {
	builder := c.Delete().Where(attack.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &AttackDeleteOne{builder}
}

// Query returns a query builder for Attack.
func (c *AttackClient) Query() *AttackQuery {
	return &AttackQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeAttack},
		inters: c.Interceptors(),
	}
}

// Get returns a Attack entity by its id.
func (c *AttackClient) Get(ctx context.Context, id int64) (*Attack, error) {
	return c.Query().Where(attack.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *AttackClient) GetX(ctx context.Context, id int64) *Attack {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaign queries the campaign edge of a Attack.
func (c *AttackClient) QueryCampaign(_m *Attack) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attack.Table, attack.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, attack.CampaignTable, attack.CampaignColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWordList queries the word_list edge of a Attack.
func (c *AttackClient) QueryWordList(_m *Attack) *ResourceQuery {
	query := (&ResourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attack.Table, attack.FieldID, id),
			sqlgraph.To(resource.Table, resource.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, attack.WordListTable, attack.WordListColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuleList queries the rule_list edge of a Attack.
func (c *AttackClient) QueryRuleList(_m *Attack) *ResourceQuery {
	query := (&ResourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attack.Table, attack.FieldID, id),
			sqlgraph.To(resource.Table, resource.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, attack.RuleListTable, attack.RuleListColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMaskList queries the mask_list edge of a Attack.
func (c *AttackClient) QueryMaskList(_m *Attack) *ResourceQuery {
	query := (&ResourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attack.Table, attack.FieldID, id),
			sqlgraph.To(resource.Table, resource.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, false, attack.MaskListTable, attack.MaskListColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryTasks queries the tasks edge of a Attack.
func (c *AttackClient) QueryTasks(_m *Attack) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(attack.Table, attack.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, attack.TasksTable, attack.TasksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *AttackClient) Hooks() []Hook {
	return c.hooks.Attack
}

// Interceptors returns the client interceptors.
func (c *AttackClient) Interceptors() []Interceptor {
	return c.inters.Attack
}

func (c *AttackClient) mutate(ctx context.Context, m *AttackMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&AttackCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&AttackUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&AttackUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&AttackDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Attack mutation op: %q", m.Op())
	}
}

// BenchmarkClient is a client for the Benchmark schema.
type BenchmarkClient struct {
	config
}

// NewBenchmarkClient returns a client for the Benchmark from the given config.
func NewBenchmarkClient(c config) *BenchmarkClient {
	return &BenchmarkClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `benchmark.Hooks(f(g(h())))`.
func (c *BenchmarkClient) Use(hooks ...Hook) {
	c.hooks.Benchmark = append(c.hooks.Benchmark, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `benchmark.Intercept(f(g(h())))`.
func (c *BenchmarkClient) Intercept(interceptors ...Interceptor) {
	c.inters.Benchmark = append(c.inters.Benchmark, interceptors...)
}

// Create returns a builder for creating a Benchmark entity.
func (c *BenchmarkClient) Create() *BenchmarkCreate {
	mutation := newBenchmarkMutation(c.config, OpCreate)
	return &BenchmarkCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Benchmark entities.
func (c *BenchmarkClient) CreateBulk(builders ...*BenchmarkCreate) *BenchmarkCreateBulk {
	return &BenchmarkCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *BenchmarkClient) MapCreateBulk(slice any, setFunc func(*BenchmarkCreate, int)) *BenchmarkCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &BenchmarkCreateBulk{err: fmt.Errorf("calling to BenchmarkClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*BenchmarkCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &BenchmarkCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Benchmark.
func (c *BenchmarkClient) Update() *BenchmarkUpdate {
	mutation := newBenchmarkMutation(c.config, OpUpdate)
	return &BenchmarkUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *BenchmarkClient) UpdateOne(_m *Benchmark) *BenchmarkUpdateOne {
	mutation := newBenchmarkMutation(c.config, OpUpdateOne, withBenchmark(_m))
	return &BenchmarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *BenchmarkClient) UpdateOneID(id int64) *BenchmarkUpdateOne {
	mutation := newBenchmarkMutation(c.config, OpUpdateOne, withBenchmarkID(id))
	return &BenchmarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Benchmark.
func (c *BenchmarkClient) Delete() *BenchmarkDelete {
	mutation := newBenchmarkMutation(c.config, OpDelete)
	return &BenchmarkDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *BenchmarkClient) DeleteOne(_m *Benchmark) *BenchmarkDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *BenchmarkClient) DeleteOneID(id int64) *BenchmarkDeleteOne {
	builder := c.Delete().Where(benchmark.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &BenchmarkDeleteOne{builder}
}

// Query returns a query builder for Benchmark.
func (c *BenchmarkClient) Query() *BenchmarkQuery {
	return &BenchmarkQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeBenchmark},
		inters: c.Interceptors(),
	}
}

// Get returns a Benchmark entity by its id.
func (c *BenchmarkClient) Get(ctx context.Context, id int64) (*Benchmark, error) {
	return c.Query().Where(benchmark.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *BenchmarkClient) GetX(ctx context.Context, id int64) *Benchmark {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAgent queries the agent edge of a Benchmark.
func (c *BenchmarkClient) QueryAgent(_m *Benchmark) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(benchmark.Table, benchmark.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, benchmark.AgentTable, benchmark.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *BenchmarkClient) Hooks() []Hook {
	return c.hooks.Benchmark
}

// Interceptors returns the client interceptors.
func (c *BenchmarkClient) Interceptors() []Interceptor {
	return c.inters.Benchmark
}

func (c *BenchmarkClient) mutate(ctx context.Context, m *BenchmarkMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&BenchmarkCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&BenchmarkUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&BenchmarkUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&BenchmarkDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Benchmark mutation op: %q", m.Op())
	}
}

// CampaignClient is a client for the Campaign schema.
type CampaignClient struct {
	config
}

// NewCampaignClient returns a client for the Campaign from the given config.
func NewCampaignClient(c config) *CampaignClient {
	return &CampaignClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `campaign.Hooks(f(g(h())))`.
func (c *CampaignClient) Use(hooks ...Hook) {
	c.hooks.Campaign = append(c.hooks.Campaign, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `campaign.Intercept(f(g(h())))`.
func (c *CampaignClient) Intercept(interceptors ...Interceptor) {
	c.inters.Campaign = append(c.inters.Campaign, interceptors...)
}

// Create returns a builder for creating a Campaign entity.
func (c *CampaignClient) Create() *CampaignCreate {
	mutation := newCampaignMutation(c.config, OpCreate)
	return &CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Campaign entities.
func (c *CampaignClient) CreateBulk(builders ...*CampaignCreate) *CampaignCreateBulk {
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CampaignClient) MapCreateBulk(slice any, setFunc func(*CampaignCreate, int)) *CampaignCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CampaignCreateBulk{err: fmt.Errorf("calling to CampaignClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CampaignCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CampaignCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Campaign.
func (c *CampaignClient) Update() *CampaignUpdate {
	mutation := newCampaignMutation(c.config, OpUpdate)
	return &CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CampaignClient) UpdateOne(_m *Campaign) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaign(_m))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CampaignClient) UpdateOneID(id int64) *CampaignUpdateOne {
	mutation := newCampaignMutation(c.config, OpUpdateOne, withCampaignID(id))
	return &CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Campaign.
func (c *CampaignClient) Delete() *CampaignDelete {
	mutation := newCampaignMutation(c.config, OpDelete)
	return &CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CampaignClient) DeleteOne(_m *Campaign) *CampaignDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CampaignClient) DeleteOneID(id int64) *CampaignDeleteOne {
	builder := c.Delete().Where(campaign.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CampaignDeleteOne{builder}
}

// Query returns a query builder for Campaign.
func (c *CampaignClient) Query() *CampaignQuery {
	return &CampaignQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCampaign},
		inters: c.Interceptors(),
	}
}

// Get returns a Campaign entity by its id.
func (c *CampaignClient) Get(ctx context.Context, id int64) (*Campaign, error) {
	return c.Query().Where(campaign.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CampaignClient) GetX(ctx context.Context, id int64) *Campaign {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a Campaign.
func (c *CampaignClient) QueryProject(_m *Campaign) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campaign.ProjectTable, campaign.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHashList queries the hash_list edge of a Campaign.
func (c *CampaignClient) QueryHashList(_m *Campaign) *HashListQuery {
	query := (&HashListClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(hashlist.Table, hashlist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campaign.HashListTable, campaign.HashListColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAttacks queries the attacks edge of a Campaign.
func (c *CampaignClient) QueryAttacks(_m *Campaign) *AttackQuery {
	query := (&AttackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(campaign.Table, campaign.FieldID, id),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, campaign.AttacksTable, campaign.AttacksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CampaignClient) Hooks() []Hook {
	return c.hooks.Campaign
}

// Interceptors returns the client interceptors.
func (c *CampaignClient) Interceptors() []Interceptor {
	return c.inters.Campaign
}

func (c *CampaignClient) mutate(ctx context.Context, m *CampaignMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CampaignCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CampaignUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CampaignUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CampaignDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Campaign mutation op: %q", m.Op())
	}
}

// CrackResultClient is a client for the CrackResult schema.
type CrackResultClient struct {
	config
}

// NewCrackResultClient returns a client for the CrackResult from the given config.
func NewCrackResultClient(c config) *CrackResultClient {
	return &CrackResultClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `crackresult.Hooks(f(g(h())))`.
func (c *CrackResultClient) Use(hooks ...Hook) {
	c.hooks.CrackResult = append(c.hooks.CrackResult, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `crackresult.Intercept(f(g(h())))`.
func (c *CrackResultClient) Intercept(interceptors ...Interceptor) {
	c.inters.CrackResult = append(c.inters.CrackResult, interceptors...)
}

// Create returns a builder for creating a CrackResult entity.
func (c *CrackResultClient) Create() *CrackResultCreate {
	mutation := newCrackResultMutation(c.config, OpCreate)
	return &CrackResultCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of CrackResult entities.
func (c *CrackResultClient) CreateBulk(builders ...*CrackResultCreate) *CrackResultCreateBulk {
	return &CrackResultCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *CrackResultClient) MapCreateBulk(slice any, setFunc func(*CrackResultCreate, int)) *CrackResultCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &CrackResultCreateBulk{err: fmt.Errorf("calling to CrackResultClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*CrackResultCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &CrackResultCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for CrackResult.
func (c *CrackResultClient) Update() *CrackResultUpdate {
	mutation := newCrackResultMutation(c.config, OpUpdate)
	return &CrackResultUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *CrackResultClient) UpdateOne(_m *CrackResult) *CrackResultUpdateOne {
	mutation := newCrackResultMutation(c.config, OpUpdateOne, withCrackResult(_m))
	return &CrackResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *CrackResultClient) UpdateOneID(id int64) *CrackResultUpdateOne {
	mutation := newCrackResultMutation(c.config, OpUpdateOne, withCrackResultID(id))
	return &CrackResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for CrackResult.
func (c *CrackResultClient) Delete() *CrackResultDelete {
	mutation := newCrackResultMutation(c.config, OpDelete)
	return &CrackResultDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *CrackResultClient) DeleteOne(_m *CrackResult) *CrackResultDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *CrackResultClient) DeleteOneID(id int64) *CrackResultDeleteOne {
	builder := c.Delete().Where(crackresult.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &CrackResultDeleteOne{builder}
}

// Query returns a query builder for CrackResult.
func (c *CrackResultClient) Query() *CrackResultQuery {
	return &CrackResultQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeCrackResult},
		inters: c.Interceptors(),
	}
}

// Get returns a CrackResult entity by its id.
func (c *CrackResultClient) Get(ctx context.Context, id int64) (*CrackResult, error) {
	return c.Query().Where(crackresult.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *CrackResultClient) GetX(ctx context.Context, id int64) *CrackResult {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a CrackResult.
func (c *CrackResultClient) QueryTask(_m *CrackResult) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crackresult.Table, crackresult.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, crackresult.TaskTable, crackresult.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHashItem queries the hash_item edge of a CrackResult.
func (c *CrackResultClient) QueryHashItem(_m *CrackResult) *HashItemQuery {
	query := (&HashItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(crackresult.Table, crackresult.FieldID, id),
			sqlgraph.To(hashitem.Table, hashitem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, crackresult.HashItemTable, crackresult.HashItemColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *CrackResultClient) Hooks() []Hook {
	return c.hooks.CrackResult
}

// Interceptors returns the client interceptors.
func (c *CrackResultClient) Interceptors() []Interceptor {
	return c.inters.CrackResult
}

func (c *CrackResultClient) mutate(ctx context.Context, m *CrackResultMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&CrackResultCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&CrackResultUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&CrackResultUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&CrackResultDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown CrackResult mutation op: %q", m.Op())
	}
}

// HashItemClient is a client for the HashItem schema.
type HashItemClient struct {
	config
}

// NewHashItemClient returns a client for the HashItem from the given config.
func NewHashItemClient(c config) *HashItemClient {
	return &HashItemClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hashitem.Hooks(f(g(h())))`.
func (c *HashItemClient) Use(hooks ...Hook) {
	c.hooks.HashItem = append(c.hooks.HashItem, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hashitem.Intercept(f(g(h())))`.
func (c *HashItemClient) Intercept(interceptors ...Interceptor) {
	c.inters.HashItem = append(c.inters.HashItem, interceptors...)
}

// Create returns a builder for creating a HashItem entity.
func (c *HashItemClient) Create() *HashItemCreate {
	mutation := newHashItemMutation(c.config, OpCreate)
	return &HashItemCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HashItem entities.
func (c *HashItemClient) CreateBulk(builders ...*HashItemCreate) *HashItemCreateBulk {
	return &HashItemCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HashItemClient) MapCreateBulk(slice any, setFunc func(*HashItemCreate, int)) *HashItemCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HashItemCreateBulk{err: fmt.Errorf("calling to HashItemClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HashItemCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HashItemCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HashItem.
func (c *HashItemClient) Update() *HashItemUpdate {
	mutation := newHashItemMutation(c.config, OpUpdate)
	return &HashItemUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HashItemClient) UpdateOne(_m *HashItem) *HashItemUpdateOne {
	mutation := newHashItemMutation(c.config, OpUpdateOne, withHashItem(_m))
	return &HashItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HashItemClient) UpdateOneID(id int64) *HashItemUpdateOne {
	mutation := newHashItemMutation(c.config, OpUpdateOne, withHashItemID(id))
	return &HashItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HashItem.
func (c *HashItemClient) Delete() *HashItemDelete {
	mutation := newHashItemMutation(c.config, OpDelete)
	return &HashItemDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HashItemClient) DeleteOne(_m *HashItem) *HashItemDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HashItemClient) DeleteOneID(id int64) *HashItemDeleteOne {
	builder := c.Delete().Where(hashitem.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HashItemDeleteOne{builder}
}

// Query returns a query builder for HashItem.
func (c *HashItemClient) Query() *HashItemQuery {
	return &HashItemQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHashItem},
		inters: c.Interceptors(),
	}
}

// Get returns a HashItem entity by its id.
func (c *HashItemClient) Get(ctx context.Context, id int64) (*HashItem, error) {
	return c.Query().Where(hashitem.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HashItemClient) GetX(ctx context.Context, id int64) *HashItem {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryHashList queries the hash_list edge of a HashItem.
func (c *HashItemClient) QueryHashList(_m *HashItem) *HashListQuery {
	query := (&HashListClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hashitem.Table, hashitem.FieldID, id),
			sqlgraph.To(hashlist.Table, hashlist.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hashitem.HashListTable, hashitem.HashListColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCrackResults queries the crack_results edge of a HashItem.
func (c *HashItemClient) QueryCrackResults(_m *HashItem) *CrackResultQuery {
	query := (&CrackResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hashitem.Table, hashitem.FieldID, id),
			sqlgraph.To(crackresult.Table, crackresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hashitem.CrackResultsTable, hashitem.CrackResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HashItemClient) Hooks() []Hook {
	return c.hooks.HashItem
}

// Interceptors returns the client interceptors.
func (c *HashItemClient) Interceptors() []Interceptor {
	return c.inters.HashItem
}

func (c *HashItemClient) mutate(ctx context.Context, m *HashItemMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HashItemCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HashItemUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HashItemUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HashItemDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HashItem mutation op: %q", m.Op())
	}
}

// HashListClient is a client for the HashList schema.
type HashListClient struct {
	config
}

// NewHashListClient returns a client for the HashList from the given config.
func NewHashListClient(c config) *HashListClient {
	return &HashListClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hashlist.Hooks(f(g(h())))`.
func (c *HashListClient) Use(hooks ...Hook) {
	c.hooks.HashList = append(c.hooks.HashList, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hashlist.Intercept(f(g(h())))`.
func (c *HashListClient) Intercept(interceptors ...Interceptor) {
	c.inters.HashList = append(c.inters.HashList, interceptors...)
}

// Create returns a builder for creating a HashList entity.
func (c *HashListClient) Create() *HashListCreate {
	mutation := newHashListMutation(c.config, OpCreate)
	return &HashListCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HashList entities.
func (c *HashListClient) CreateBulk(builders ...*HashListCreate) *HashListCreateBulk {
	return &HashListCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HashListClient) MapCreateBulk(slice any, setFunc func(*HashListCreate, int)) *HashListCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HashListCreateBulk{err: fmt.Errorf("calling to HashListClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HashListCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HashListCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HashList.
func (c *HashListClient) Update() *HashListUpdate {
	mutation := newHashListMutation(c.config, OpUpdate)
	return &HashListUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HashListClient) UpdateOne(_m *HashList) *HashListUpdateOne {
	mutation := newHashListMutation(c.config, OpUpdateOne, withHashList(_m))
	return &HashListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HashListClient) UpdateOneID(id int64) *HashListUpdateOne {
	mutation := newHashListMutation(c.config, OpUpdateOne, withHashListID(id))
	return &HashListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HashList.
func (c *HashListClient) Delete() *HashListDelete {
	mutation := newHashListMutation(c.config, OpDelete)
	return &HashListDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HashListClient) DeleteOne(_m *HashList) *HashListDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HashListClient) DeleteOneID(id int64) *HashListDeleteOne {
	builder := c.Delete().Where(hashlist.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HashListDeleteOne{builder}
}

// Query returns a query builder for HashList.
func (c *HashListClient) Query() *HashListQuery {
	return &HashListQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHashList},
		inters: c.Interceptors(),
	}
}

// Get returns a HashList entity by its id.
func (c *HashListClient) Get(ctx context.Context, id int64) (*HashList, error) {
	return c.Query().Where(hashlist.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HashListClient) GetX(ctx context.Context, id int64) *HashList {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProject queries the project edge of a HashList.
func (c *HashListClient) QueryProject(_m *HashList) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hashlist.Table, hashlist.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hashlist.ProjectTable, hashlist.ProjectColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryItems queries the items edge of a HashList.
func (c *HashListClient) QueryItems(_m *HashList) *HashItemQuery {
	query := (&HashItemClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hashlist.Table, hashlist.FieldID, id),
			sqlgraph.To(hashitem.Table, hashitem.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hashlist.ItemsTable, hashlist.ItemsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCampaigns queries the campaigns edge of a HashList.
func (c *HashListClient) QueryCampaigns(_m *HashList) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hashlist.Table, hashlist.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, hashlist.CampaignsTable, hashlist.CampaignsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HashListClient) Hooks() []Hook {
	return c.hooks.HashList
}

// Interceptors returns the client interceptors.
func (c *HashListClient) Interceptors() []Interceptor {
	return c.inters.HashList
}

func (c *HashListClient) mutate(ctx context.Context, m *HashListMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HashListCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HashListUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HashListUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HashListDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HashList mutation op: %q", m.Op())
	}
}

// HashcatStatusClient is a client for the HashcatStatus schema.
type HashcatStatusClient struct {
	config
}

// NewHashcatStatusClient returns a client for the HashcatStatus from the given config.
func NewHashcatStatusClient(c config) *HashcatStatusClient {
	return &HashcatStatusClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `hashcatstatus.Hooks(f(g(h())))`.
func (c *HashcatStatusClient) Use(hooks ...Hook) {
	c.hooks.HashcatStatus = append(c.hooks.HashcatStatus, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `hashcatstatus.Intercept(f(g(h())))`.
func (c *HashcatStatusClient) Intercept(interceptors ...Interceptor) {
	c.inters.HashcatStatus = append(c.inters.HashcatStatus, interceptors...)
}

// Create returns a builder for creating a HashcatStatus entity.
func (c *HashcatStatusClient) Create() *HashcatStatusCreate {
	mutation := newHashcatStatusMutation(c.config, OpCreate)
	return &HashcatStatusCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of HashcatStatus entities.
func (c *HashcatStatusClient) CreateBulk(builders ...*HashcatStatusCreate) *HashcatStatusCreateBulk {
	return &HashcatStatusCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *HashcatStatusClient) MapCreateBulk(slice any, setFunc func(*HashcatStatusCreate, int)) *HashcatStatusCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &HashcatStatusCreateBulk{err: fmt.Errorf("calling to HashcatStatusClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*HashcatStatusCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &HashcatStatusCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for HashcatStatus.
func (c *HashcatStatusClient) Update() *HashcatStatusUpdate {
	mutation := newHashcatStatusMutation(c.config, OpUpdate)
	return &HashcatStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *HashcatStatusClient) UpdateOne(_m *HashcatStatus) *HashcatStatusUpdateOne {
	mutation := newHashcatStatusMutation(c.config, OpUpdateOne, withHashcatStatus(_m))
	return &HashcatStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *HashcatStatusClient) UpdateOneID(id int64) *HashcatStatusUpdateOne {
	mutation := newHashcatStatusMutation(c.config, OpUpdateOne, withHashcatStatusID(id))
	return &HashcatStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for HashcatStatus.
func (c *HashcatStatusClient) Delete() *HashcatStatusDelete {
	mutation := newHashcatStatusMutation(c.config, OpDelete)
	return &HashcatStatusDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *HashcatStatusClient) DeleteOne(_m *HashcatStatus) *HashcatStatusDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *HashcatStatusClient) DeleteOneID(id int64) *HashcatStatusDeleteOne {
	builder := c.Delete().Where(hashcatstatus.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &HashcatStatusDeleteOne{builder}
}

// Query returns a query builder for HashcatStatus.
func (c *HashcatStatusClient) Query() *HashcatStatusQuery {
	return &HashcatStatusQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeHashcatStatus},
		inters: c.Interceptors(),
	}
}

// Get returns a HashcatStatus entity by its id.
func (c *HashcatStatusClient) Get(ctx context.Context, id int64) (*HashcatStatus, error) {
	return c.Query().Where(hashcatstatus.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *HashcatStatusClient) GetX(ctx context.Context, id int64) *HashcatStatus {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryTask queries the task edge of a HashcatStatus.
func (c *HashcatStatusClient) QueryTask(_m *HashcatStatus) *TaskQuery {
	query := (&TaskClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(hashcatstatus.Table, hashcatstatus.FieldID, id),
			sqlgraph.To(task.Table, task.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, hashcatstatus.TaskTable, hashcatstatus.TaskColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *HashcatStatusClient) Hooks() []Hook {
	return c.hooks.HashcatStatus
}

// Interceptors returns the client interceptors.
func (c *HashcatStatusClient) Interceptors() []Interceptor {
	return c.inters.HashcatStatus
}

func (c *HashcatStatusClient) mutate(ctx context.Context, m *HashcatStatusMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&HashcatStatusCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&HashcatStatusUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&HashcatStatusUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&HashcatStatusDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown HashcatStatus mutation op: %q", m.Op())
	}
}

// ProjectClient is a client for the Project schema.
type ProjectClient struct {
	config
}

// NewProjectClient returns a client for the Project from the given config.
func NewProjectClient(c config) *ProjectClient {
	return &ProjectClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `project.Hooks(f(g(h())))`.
func (c *ProjectClient) Use(hooks ...Hook) {
	c.hooks.Project = append(c.hooks.Project, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `project.Intercept(f(g(h())))`.
func (c *ProjectClient) Intercept(interceptors ...Interceptor) {
	c.inters.Project = append(c.inters.Project, interceptors...)
}

// Create returns a builder for creating a Project entity.
func (c *ProjectClient) Create() *ProjectCreate {
	mutation := newProjectMutation(c.config, OpCreate)
	return &ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Project entities.
func (c *ProjectClient) CreateBulk(builders ...*ProjectCreate) *ProjectCreateBulk {
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ProjectClient) MapCreateBulk(slice any, setFunc func(*ProjectCreate, int)) *ProjectCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ProjectCreateBulk{err: fmt.Errorf("calling to ProjectClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ProjectCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ProjectCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Project.
func (c *ProjectClient) Update() *ProjectUpdate {
	mutation := newProjectMutation(c.config, OpUpdate)
	return &ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ProjectClient) UpdateOne(_m *Project) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProject(_m))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ProjectClient) UpdateOneID(id int64) *ProjectUpdateOne {
	mutation := newProjectMutation(c.config, OpUpdateOne, withProjectID(id))
	return &ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Project.
func (c *ProjectClient) Delete() *ProjectDelete {
	mutation := newProjectMutation(c.config, OpDelete)
	return &ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ProjectClient) DeleteOne(_m *Project) *ProjectDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ProjectClient) DeleteOneID(id int64) *ProjectDeleteOne {
	builder := c.Delete().Where(project.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ProjectDeleteOne{builder}
}

// Query returns a query builder for Project.
func (c *ProjectClient) Query() *ProjectQuery {
	return &ProjectQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeProject},
		inters: c.Interceptors(),
	}
}

// Get returns a Project entity by its id.
func (c *ProjectClient) Get(ctx context.Context, id int64) (*Project, error) {
	return c.Query().Where(project.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ProjectClient) GetX(ctx context.Context, id int64) *Project {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryCampaigns queries the campaigns edge of a Project.
func (c *ProjectClient) QueryCampaigns(_m *Project) *CampaignQuery {
	query := (&CampaignClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.CampaignsTable, project.CampaignsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryHashLists queries the hash_lists edge of a Project.
func (c *ProjectClient) QueryHashLists(_m *Project) *HashListQuery {
	query := (&HashListClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(hashlist.Table, hashlist.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, project.HashListsTable, project.HashListsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryResources queries the resources edge of a Project.
func (c *ProjectClient) QueryResources(_m *Project) *ResourceQuery {
	query := (&ResourceClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(resource.Table, resource.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, project.ResourcesTable, project.ResourcesPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgents queries the agents edge of a Project.
func (c *ProjectClient) QueryAgents(_m *Project) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(project.Table, project.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, false, project.AgentsTable, project.AgentsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ProjectClient) Hooks() []Hook {
	return c.hooks.Project
}

// Interceptors returns the client interceptors.
func (c *ProjectClient) Interceptors() []Interceptor {
	return c.inters.Project
}

func (c *ProjectClient) mutate(ctx context.Context, m *ProjectMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ProjectCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ProjectUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ProjectUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ProjectDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Project mutation op: %q", m.Op())
	}
}

// ResourceClient is a client for the Resource schema.
type ResourceClient struct {
	config
}

// NewResourceClient returns a client for the Resource from the given config.
func NewResourceClient(c config) *ResourceClient {
	return &ResourceClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `resource.Hooks(f(g(h())))`.
func (c *ResourceClient) Use(hooks ...Hook) {
	c.hooks.Resource = append(c.hooks.Resource, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `resource.Intercept(f(g(h())))`.
func (c *ResourceClient) Intercept(interceptors ...Interceptor) {
	c.inters.Resource = append(c.inters.Resource, interceptors...)
}

// Create returns a builder for creating a Resource entity.
func (c *ResourceClient) Create() *ResourceCreate {
	mutation := newResourceMutation(c.config, OpCreate)
	return &ResourceCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Resource entities.
func (c *ResourceClient) CreateBulk(builders ...*ResourceCreate) *ResourceCreateBulk {
	return &ResourceCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *ResourceClient) MapCreateBulk(slice any, setFunc func(*ResourceCreate, int)) *ResourceCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &ResourceCreateBulk{err: fmt.Errorf("calling to ResourceClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*ResourceCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &ResourceCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Resource.
func (c *ResourceClient) Update() *ResourceUpdate {
	mutation := newResourceMutation(c.config, OpUpdate)
	return &ResourceUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *ResourceClient) UpdateOne(_m *Resource) *ResourceUpdateOne {
	mutation := newResourceMutation(c.config, OpUpdateOne, withResource(_m))
	return &ResourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *ResourceClient) UpdateOneID(id int64) *ResourceUpdateOne {
	mutation := newResourceMutation(c.config, OpUpdateOne, withResourceID(id))
	return &ResourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Resource.
func (c *ResourceClient) Delete() *ResourceDelete {
	mutation := newResourceMutation(c.config, OpDelete)
	return &ResourceDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *ResourceClient) DeleteOne(_m *Resource) *ResourceDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *ResourceClient) DeleteOneID(id int64) *ResourceDeleteOne {
	builder := c.Delete().Where(resource.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &ResourceDeleteOne{builder}
}

// Query returns a query builder for Resource.
func (c *ResourceClient) Query() *ResourceQuery {
	return &ResourceQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeResource},
		inters: c.Interceptors(),
	}
}

// Get returns a Resource entity by its id.
func (c *ResourceClient) Get(ctx context.Context, id int64) (*Resource, error) {
	return c.Query().Where(resource.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *ResourceClient) GetX(ctx context.Context, id int64) *Resource {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryProjects queries the projects edge of a Resource.
func (c *ResourceClient) QueryProjects(_m *Resource) *ProjectQuery {
	query := (&ProjectClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, id),
			sqlgraph.To(project.Table, project.FieldID),
			sqlgraph.Edge(sqlgraph.M2M, true, resource.ProjectsTable, resource.ProjectsPrimaryKey...),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryWordListAttacks queries the word_list_attacks edge of a Resource.
func (c *ResourceClient) QueryWordListAttacks(_m *Resource) *AttackQuery {
	query := (&AttackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, id),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, resource.WordListAttacksTable, resource.WordListAttacksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryRuleListAttacks queries the rule_list_attacks edge of a Resource.
func (c *ResourceClient) QueryRuleListAttacks(_m *Resource) *AttackQuery {
	query := (&AttackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, id),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, resource.RuleListAttacksTable, resource.RuleListAttacksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryMaskListAttacks queries the mask_list_attacks edge of a Resource.
func (c *ResourceClient) QueryMaskListAttacks(_m *Resource) *AttackQuery {
	query := (&AttackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(resource.Table, resource.FieldID, id),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, true, resource.MaskListAttacksTable, resource.MaskListAttacksColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *ResourceClient) Hooks() []Hook {
	return c.hooks.Resource
}

// Interceptors returns the client interceptors.
func (c *ResourceClient) Interceptors() []Interceptor {
	return c.inters.Resource
}

func (c *ResourceClient) mutate(ctx context.Context, m *ResourceMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&ResourceCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&ResourceUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&ResourceUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&ResourceDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Resource mutation op: %q", m.Op())
	}
}

// TaskClient is a client for the Task schema.
type TaskClient struct {
	config
}

// NewTaskClient returns a client for the Task from the given config.
func NewTaskClient(c config) *TaskClient {
	return &TaskClient{config: c}
}

// Use adds a list of mutation hooks to the hooks stack.
// A call to `Use(f, g, h)` equals to `task.Hooks(f(g(h())))`.
func (c *TaskClient) Use(hooks ...Hook) {
	c.hooks.Task = append(c.hooks.Task, hooks...)
}

// Intercept adds a list of query interceptors to the interceptors stack.
// A call to `Intercept(f, g, h)` equals to `task.Intercept(f(g(h())))`.
func (c *TaskClient) Intercept(interceptors ...Interceptor) {
	c.inters.Task = append(c.inters.Task, interceptors...)
}

// Create returns a builder for creating a Task entity.
func (c *TaskClient) Create() *TaskCreate {
	mutation := newTaskMutation(c.config, OpCreate)
	return &TaskCreate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// CreateBulk returns a builder for creating a bulk of Task entities.
func (c *TaskClient) CreateBulk(builders ...*TaskCreate) *TaskCreateBulk {
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// MapCreateBulk creates a bulk creation builder from the given slice. For each item in the slice, the function creates
// a builder and applies setFunc on it.
func (c *TaskClient) MapCreateBulk(slice any, setFunc func(*TaskCreate, int)) *TaskCreateBulk {
	rv := reflect.ValueOf(slice)
	if rv.Kind() != reflect.Slice {
		return &TaskCreateBulk{err: fmt.Errorf("calling to TaskClient.MapCreateBulk with wrong type %T, need slice", slice)}
	}
	builders := make([]*TaskCreate, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		builders[i] = c.Create()
		setFunc(builders[i], i)
	}
	return &TaskCreateBulk{config: c.config, builders: builders}
}

// Update returns an update builder for Task.
func (c *TaskClient) Update() *TaskUpdate {
	mutation := newTaskMutation(c.config, OpUpdate)
	return &TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOne returns an update builder for the given entity.
func (c *TaskClient) UpdateOne(_m *Task) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTask(_m))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// UpdateOneID returns an update builder for the given id.
func (c *TaskClient) UpdateOneID(id int64) *TaskUpdateOne {
	mutation := newTaskMutation(c.config, OpUpdateOne, withTaskID(id))
	return &TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// Delete returns a delete builder for Task.
func (c *TaskClient) Delete() *TaskDelete {
	mutation := newTaskMutation(c.config, OpDelete)
	return &TaskDelete{config: c.config, hooks: c.Hooks(), mutation: mutation}
}

// DeleteOne returns a builder for deleting the given entity.
func (c *TaskClient) DeleteOne(_m *Task) *TaskDeleteOne {
	return c.DeleteOneID(_m.ID)
}

// DeleteOneID returns a builder for deleting the given entity by its id.
func (c *TaskClient) DeleteOneID(id int64) *TaskDeleteOne {
	builder := c.Delete().Where(task.ID(id))
	builder.mutation.id = &id
	builder.mutation.op = OpDeleteOne
	return &TaskDeleteOne{builder}
}

// Query returns a query builder for Task.
func (c *TaskClient) Query() *TaskQuery {
	return &TaskQuery{
		config: c.config,
		ctx:    &QueryContext{Type: TypeTask},
		inters: c.Interceptors(),
	}
}

// Get returns a Task entity by its id.
func (c *TaskClient) Get(ctx context.Context, id int64) (*Task, error) {
	return c.Query().Where(task.ID(id)).Only(ctx)
}

// GetX is like Get, but panics if an error occurs.
func (c *TaskClient) GetX(ctx context.Context, id int64) *Task {
	obj, err := c.Get(ctx, id)
	if err != nil {
		panic(err)
	}
	return obj
}

// QueryAttack queries the attack edge of a Task.
func (c *TaskClient) QueryAttack(_m *Task) *AttackQuery {
	query := (&AttackClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(attack.Table, attack.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.AttackTable, task.AttackColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryAgent queries the agent edge of a Task.
func (c *TaskClient) QueryAgent(_m *Task) *AgentQuery {
	query := (&AgentClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(agent.Table, agent.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, task.AgentTable, task.AgentColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryStatuses queries the statuses edge of a Task.
func (c *TaskClient) QueryStatuses(_m *Task) *HashcatStatusQuery {
	query := (&HashcatStatusClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(hashcatstatus.Table, hashcatstatus.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.StatusesTable, task.StatusesColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryCrackResults queries the crack_results edge of a Task.
func (c *TaskClient) QueryCrackResults(_m *Task) *CrackResultQuery {
	query := (&CrackResultClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(crackresult.Table, crackresult.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.CrackResultsTable, task.CrackResultsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// QueryErrors queries the errors edge of a Task.
func (c *TaskClient) QueryErrors(_m *Task) *AgentErrorQuery {
	query := (&AgentErrorClient{config: c.config}).Query()
	query.path = func(context.Context) (fromV *sql.Selector, _ error) {
		id := _m.ID
		step := sqlgraph.NewStep(
			sqlgraph.From(task.Table, task.FieldID, id),
			sqlgraph.To(agenterror.Table, agenterror.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, task.ErrorsTable, task.ErrorsColumn),
		)
		fromV = sqlgraph.Neighbors(_m.driver.Dialect(), step)
		return fromV, nil
	}
	return query
}

// Hooks returns the client hooks.
func (c *TaskClient) Hooks() []Hook {
	return c.hooks.Task
}

// Interceptors returns the client interceptors.
func (c *TaskClient) Interceptors() []Interceptor {
	return c.inters.Task
}

func (c *TaskClient) mutate(ctx context.Context, m *TaskMutation) (Value, error) {
	switch m.Op() {
	case OpCreate:
		return (&TaskCreate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdate:
		return (&TaskUpdate{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpUpdateOne:
		return (&TaskUpdateOne{config: c.config, hooks: c.Hooks(), mutation: m}).Save(ctx)
	case OpDelete, OpDeleteOne:
		return (&TaskDelete{config: c.config, hooks: c.Hooks(), mutation: m}).Exec(ctx)
	default:
		return nil, fmt.Errorf("ent: unknown Task mutation op: %q", m.Op())
	}
}

// hooks and interceptors per client, for fast access.
type (
	hooks struct {
		Agent, AgentError, Attack, Benchmark, Campaign, CrackResult, HashItem, HashList,
		HashcatStatus, Project, Resource, Task []ent.Hook
	}
	inters struct {
		Agent, AgentError, Attack, Benchmark, Campaign, CrackResult, HashItem, HashList,
		HashcatStatus, Project, Resource, Task []ent.Interceptor
	}
)
