// Package control implements the control connection: the long-lived
// metadata session a driver keeps open to one cluster node to discover
// topology, refresh schema, and react to server-pushed events.
package control

import (
	"context"
	"sync"

	"github.com/nimbusdb/control-go/errors"
	"github.com/nimbusdb/control-go/log"
	"github.com/nimbusdb/control-go/policy"
	"github.com/nimbusdb/control-go/reactor"
	"github.com/nimbusdb/control-go/registry"
	"github.com/nimbusdb/control-go/schema"
)

// ControlConnection is a single logical actor coordinating a lifecycle
// state machine, a reconnection loop, event subscription/dispatch, and
// metadata refresh over one metadata session. It is safe for concurrent
// use by any number of goroutines; every state transition is guarded by
// a single monitor (state), which is never held across a suspension point.
type ControlConnection struct {
	cfg   Config
	state *state
	log   log.Logger

	hostsMu    sync.RWMutex
	knownHosts map[string]struct{}

	// connectDone is closed whenever a connect attempt resolves, with its
	// error left in connectResult, so a concurrent idempotent Connect call
	// can wait for the in-flight one instead of starting a second.
	connectMu     sync.Mutex
	connectResult error
	connectDone   chan struct{} // non-nil while an attempt is in flight

	closeOnce sync.Once
}

// New constructs a ControlConnection. Connector and RequestRunner have no
// default and must be supplied via WithConnector/WithRequestRunner.
func New(opts ...Option) (*ControlConnection, error) {
	cfg := buildConfig(opts)
	if cfg.Connector == nil {
		return nil, errors.New("control: WithConnector is required")
	}
	if cfg.Runner == nil {
		return nil, errors.New("control: WithRequestRunner is required")
	}
	if cfg.Reactor == nil {
		cfg.Reactor = reactor.New()
	}
	if cfg.LoadBalancing == nil {
		cfg.LoadBalancing = NewLoadBalancingAdapter(policy.NewRoundRobin())
	}
	if cfg.Reconnection == nil {
		cfg.Reconnection = NewReconnectionAdapter(policy.NewReconnectionPolicy(0, 0))
	}
	if cfg.Registry == nil {
		cfg.Registry = NewRegistryAdapter(registry.New())
	}
	if cfg.Schema == nil {
		cfg.Schema = NewSchemaAdapter(schema.New())
	}
	if cfg.ProtocolVersion < 1 {
		return nil, errors.New("control: ProtocolVersion must be >= 1")
	}

	known := make(map[string]struct{}, len(cfg.InitialHosts))
	for _, h := range cfg.InitialHosts {
		known[h] = struct{}{}
	}

	return &ControlConnection{
		cfg:        cfg,
		state:      newState(),
		log:        cfg.Logger,
		knownHosts: known,
	}, nil
}

// Status reports the current lifecycle state as a string, for diagnostics
// and tests.
func (cc *ControlConnection) Status() string {
	return cc.state.currentStatus().String()
}

func (cc *ControlConnection) protocolVersion() int {
	cc.connectMu.Lock()
	defer cc.connectMu.Unlock()
	return cc.cfg.ProtocolVersion
}

func (cc *ControlConnection) downgradeProtocolVersion() (newVersion int, ok bool) {
	cc.connectMu.Lock()
	defer cc.connectMu.Unlock()
	if cc.cfg.ProtocolVersion <= 1 {
		return cc.cfg.ProtocolVersion, false
	}
	cc.cfg.ProtocolVersion--
	return cc.cfg.ProtocolVersion, true
}

// planHosts returns the current candidate set for a fresh plan: every host
// the registry knows about, falling back to the configured seed hosts
// before any topology refresh has run.
func (cc *ControlConnection) planHosts() []string {
	var hosts []string
	cc.cfg.Registry.EachHost(func(h RegistryHost) {
		hosts = append(hosts, h.IP())
	})
	if len(hosts) > 0 {
		return hosts
	}
	cc.hostsMu.RLock()
	defer cc.hostsMu.RUnlock()
	hosts = make([]string, 0, len(cc.knownHosts))
	for h := range cc.knownHosts {
		hosts = append(hosts, h)
	}
	return hosts
}

func (cc *ControlConnection) newPlan() HostIter {
	return cc.cfg.LoadBalancing.Plan(cc.cfg.Keyspace, "", cc.planHosts())
}

// HostFound is a registry-change notification from another subsystem: a
// host was discovered outside of this control connection's own topology
// refresh (e.g. by a sibling driver instance sharing the registry).
func (cc *ControlConnection) HostFound(ip string, row Row) {
	cc.cfg.Registry.HostFound(ip, row)
}

// HostLost is a registry-change notification: a host is confirmed gone.
func (cc *ControlConnection) HostLost(ip string) {
	cc.cfg.Registry.HostLost(ip)
}

// HostUp removes host from the set of hosts being probed and, if the
// control connection is currently missing (closed or closing, not merely
// reconnecting), triggers a fresh Connect so the newly-reachable host can
// be tried without waiting for the current backoff to elapse.
func (cc *ControlConnection) HostUp(ctx context.Context, host string) {
	cc.cfg.Registry.HostUp(host)
	cc.state.stopProbing(host)

	if cc.state.isAny(statusClosed, statusClosing) {
		go func() {
			if err := cc.Connect(ctx); err != nil {
				cc.log.Warnf(ctx, "host_up triggered connect for %s failed: %v", host, err)
			}
		}()
	}
}

// HostDown is a no-op if the control connection is healthy (connected) or a
// probe for host is already running. The topology refresh (see
// refreshHostsAsync) runs after every successful connect, not on a timer,
// and schedules a probe for any down, not-yet-probed host it sees at that
// moment. Otherwise HostDown starts a dedicated reachability prober
// directly, since there is no healthy control connection.
func (cc *ControlConnection) HostDown(ctx context.Context, host string) {
	cc.cfg.Registry.HostDown(host)

	if cc.state.is(statusConnected) {
		return
	}
	cc.startProber(ctx, host)
}
