package control

import (
	"github.com/google/uuid"

	"github.com/nimbusdb/control-go/policy"
	"github.com/nimbusdb/control-go/registry"
	"github.com/nimbusdb/control-go/schema"
)

// registryAdapter adapts the default in-memory *registry.Registry to
// ClusterRegistry, translating between the generic Row shape the control
// connection deals in and registry's typed Row.
type registryAdapter struct {
	r *registry.Registry
}

// NewRegistryAdapter wraps r as a ClusterRegistry.
func NewRegistryAdapter(r *registry.Registry) ClusterRegistry {
	return &registryAdapter{r: r}
}

func (a *registryAdapter) HostFound(ip string, row Row) {
	a.r.HostFound(ip, registry.Row{
		Rack:           stringField(row, "rack"),
		DataCenter:     stringField(row, "data_center"),
		HostID:         uuidField(row, "host_id"),
		ReleaseVersion: stringField(row, "release_version"),
	})
}

func (a *registryAdapter) HostLost(ip string) { a.r.HostLost(ip) }
func (a *registryAdapter) HostDown(ip string) { a.r.HostDown(ip) }
func (a *registryAdapter) HostUp(ip string)   { a.r.HostUp(ip) }

func (a *registryAdapter) Host(ip string) (RegistryHost, bool) {
	h, ok := a.r.Host(ip)
	if !ok {
		return nil, false
	}
	return hostView{h}, true
}

func (a *registryAdapter) HasHost(ip string) bool { return a.r.HasHost(ip) }

func (a *registryAdapter) EachHost(fn func(RegistryHost)) {
	a.r.EachHost(func(h *registry.Host) { fn(hostView{h}) })
}

type hostView struct{ h *registry.Host }

func (v hostView) IP() string { return v.h.IP }
func (v hostView) Down() bool { return v.h.Down() }

func stringField(row Row, key string) string {
	v, _ := row[key].(string)
	return v
}

func uuidField(row Row, key string) uuid.UUID {
	switch v := row[key].(type) {
	case uuid.UUID:
		return v
	case string:
		id, err := uuid.Parse(v)
		if err != nil {
			return uuid.Nil
		}
		return id
	default:
		return uuid.Nil
	}
}

// schemaAdapter adapts the default in-memory *schema.Schema to
// ClusterSchema.
type schemaAdapter struct {
	s *schema.Schema
}

// NewSchemaAdapter wraps s as a ClusterSchema.
func NewSchemaAdapter(s *schema.Schema) ClusterSchema {
	return &schemaAdapter{s: s}
}

func (a *schemaAdapter) UpdateKeyspaces(host string, keyspaces, tables, columns []Row) {
	a.s.UpdateKeyspaces(host, rowsToMaps(keyspaces), rowsToMaps(tables), rowsToMaps(columns))
}

func (a *schemaAdapter) UpdateKeyspace(host string, keyspace Row, tables, columns []Row) {
	a.s.UpdateKeyspace(host, map[string]any(keyspace), rowsToMaps(tables), rowsToMaps(columns))
}

func (a *schemaAdapter) UpdateTable(host, keyspace string, table Row, columns []Row) {
	a.s.UpdateTable(host, keyspace, map[string]any(table), rowsToMaps(columns))
}

func rowsToMaps(rows []Row) []map[string]any {
	out := make([]map[string]any, len(rows))
	for i, r := range rows {
		out[i] = map[string]any(r)
	}
	return out
}

// loadBalancingAdapter adapts the default *policy.RoundRobin to
// LoadBalancingPolicy.
type loadBalancingAdapter struct {
	p *policy.RoundRobin
}

// NewLoadBalancingAdapter wraps p as a LoadBalancingPolicy.
func NewLoadBalancingAdapter(p *policy.RoundRobin) LoadBalancingPolicy {
	return &loadBalancingAdapter{p: p}
}

func (a *loadBalancingAdapter) Plan(keyspace, statement string, hosts []string) HostIter {
	return a.p.Plan(keyspace, statement, hosts)
}

// reconnectionAdapter adapts the default *policy.ReconnectionPolicy to
// ReconnectionPolicy.
type reconnectionAdapter struct {
	p *policy.ReconnectionPolicy
}

// NewReconnectionAdapter wraps p as a ReconnectionPolicy.
func NewReconnectionAdapter(p *policy.ReconnectionPolicy) ReconnectionPolicy {
	return &reconnectionAdapter{p: p}
}

func (a *reconnectionAdapter) NewSchedule() Schedule {
	return a.p.NewSchedule()
}
