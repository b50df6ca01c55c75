// Package registry provides the default in-memory ClusterRegistry
// collaborator, an external catalogue of known cluster members and their
// up/down state.
package registry

import (
	"sync"

	"github.com/google/uuid"
)

// Host is a known cluster member.
type Host struct {
	IP             string
	Rack           string
	DataCenter     string
	HostID         uuid.UUID
	ReleaseVersion string
	down           bool
}

// Down reports whether this host is currently believed unreachable.
func (h *Host) Down() bool {
	return h.down
}

// Row is the subset of a system.local/system.peers row the registry needs
// to build or refresh a Host.
type Row struct {
	Rack           string
	DataCenter     string
	HostID         uuid.UUID
	ReleaseVersion string
}

// Registry is the default in-memory ClusterRegistry. It is safe for
// concurrent use; the control connection never locks it itself.
type Registry struct {
	sync.RWMutex
	hosts map[string]*Host
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{hosts: make(map[string]*Host)}
}

// HostFound registers or refreshes a host from a metadata row. A
// previously-down host is marked reachable again.
func (r *Registry) HostFound(ip string, row Row) {
	r.Lock()
	defer r.Unlock()

	h, ok := r.hosts[ip]
	if !ok {
		h = &Host{IP: ip}
		r.hosts[ip] = h
	}
	h.Rack = row.Rack
	h.DataCenter = row.DataCenter
	h.HostID = row.HostID
	h.ReleaseVersion = row.ReleaseVersion
	h.down = false
}

// HostLost removes a host that topology refresh no longer sees.
func (r *Registry) HostLost(ip string) {
	r.Lock()
	defer r.Unlock()
	delete(r.hosts, ip)
}

// HostDown marks a known host unreachable. It is a no-op for unknown hosts.
func (r *Registry) HostDown(ip string) {
	r.Lock()
	defer r.Unlock()
	if h, ok := r.hosts[ip]; ok {
		h.down = true
	}
}

// HostUp marks a known host reachable again. It is a no-op for unknown
// hosts.
func (r *Registry) HostUp(ip string) {
	r.Lock()
	defer r.Unlock()
	if h, ok := r.hosts[ip]; ok {
		h.down = false
	}
}

// Host returns the host known at ip, if any.
func (r *Registry) Host(ip string) (*Host, bool) {
	r.RLock()
	defer r.RUnlock()
	h, ok := r.hosts[ip]
	return h, ok
}

// HasHost reports whether ip is currently known.
func (r *Registry) HasHost(ip string) bool {
	r.RLock()
	defer r.RUnlock()
	_, ok := r.hosts[ip]
	return ok
}

// EachHost calls fn once per known host, in an unspecified order. fn must
// not mutate the registry.
func (r *Registry) EachHost(fn func(*Host)) {
	r.RLock()
	defer r.RUnlock()
	for _, h := range r.hosts {
		fn(h)
	}
}
