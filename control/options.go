package control

import (
	"github.com/nimbusdb/control-go/log"
)

const (
	defaultProtocolVersion = 4
	defaultConsistency     = "ONE"
)

var defaultConfig = Config{
	Logger:          log.NewNop(),
	ProtocolVersion: defaultProtocolVersion,
	Consistency:     defaultConsistency,
}

// Config is the static configuration of a ControlConnection. ProtocolVersion
// is the only field the control connection itself mutates, and only ever
// downward, from within connectToHost's downgrade path.
type Config struct {
	// Logger receives every log line the control connection emits.
	Logger log.Logger

	// ProtocolVersion is the wire protocol version offered on the next
	// connect attempt. Must be >= 1.
	ProtocolVersion int

	// Consistency is the consistency level used for every metadata read.
	Consistency string

	// Keyspace scopes the LoadBalancingPolicy's plan, if the driver has a
	// current keyspace. May be empty.
	Keyspace string

	Reactor            IOReactor
	Connector          Connector
	Runner             RequestRunner
	LoadBalancing      LoadBalancingPolicy
	Reconnection       ReconnectionPolicy
	Registry           ClusterRegistry
	Schema             ClusterSchema

	// InitialHosts seeds the LoadBalancingPolicy's candidate set before any
	// topology refresh has run.
	InitialHosts []string
}

// Option configures a ControlConnection at construction time.
type Option func(*Config)

// WithLogger overrides the default no-op Logger.
func WithLogger(l log.Logger) Option {
	return func(c *Config) { c.Logger = l }
}

// WithProtocolVersion sets the initial wire protocol version offered on the
// first connect attempt.
func WithProtocolVersion(v int) Option {
	return func(c *Config) { c.ProtocolVersion = v }
}

// WithConsistency overrides the consistency level used for metadata reads.
func WithConsistency(level string) Option {
	return func(c *Config) { c.Consistency = level }
}

// WithKeyspace sets the current keyspace consulted by the LoadBalancingPolicy.
func WithKeyspace(ks string) Option {
	return func(c *Config) { c.Keyspace = ks }
}

// WithInitialHosts seeds the candidate host set used before any topology
// refresh has completed.
func WithInitialHosts(hosts ...string) Option {
	return func(c *Config) { c.InitialHosts = hosts }
}

// WithReactor overrides the default IOReactor collaborator.
func WithReactor(r IOReactor) Option {
	return func(c *Config) { c.Reactor = r }
}

// WithConnector overrides the Connector collaborator. There is no default;
// it must be supplied.
func WithConnector(conn Connector) Option {
	return func(c *Config) { c.Connector = conn }
}

// WithRequestRunner overrides the RequestRunner collaborator. There is no
// default; it must be supplied.
func WithRequestRunner(r RequestRunner) Option {
	return func(c *Config) { c.Runner = r }
}

// WithLoadBalancingPolicy overrides the default LoadBalancingPolicy.
func WithLoadBalancingPolicy(p LoadBalancingPolicy) Option {
	return func(c *Config) { c.LoadBalancing = p }
}

// WithReconnectionPolicy overrides the default ReconnectionPolicy.
func WithReconnectionPolicy(p ReconnectionPolicy) Option {
	return func(c *Config) { c.Reconnection = p }
}

// WithRegistry overrides the default in-memory ClusterRegistry.
func WithRegistry(r ClusterRegistry) Option {
	return func(c *Config) { c.Registry = r }
}

// WithSchema overrides the default in-memory ClusterSchema.
func WithSchema(s ClusterSchema) Option {
	return func(c *Config) { c.Schema = s }
}

func buildConfig(opts []Option) Config {
	cfg := defaultConfig
	for _, opt := range opts {
		opt(&cfg)
	}
	return cfg
}
