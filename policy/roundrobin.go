package policy

import (
	"sync/atomic"
)

type sliceIter struct {
	hosts []string
	pos   int
}

func (it *sliceIter) Next() (string, bool) {
	if it.pos >= len(it.hosts) {
		return "", false
	}
	h := it.hosts[it.pos]
	it.pos++
	return h, true
}

// RoundRobin ranks a fixed set of hosts starting from a rotating offset, so
// consecutive plans spread load across the known set instead of always
// hammering the first host.
type RoundRobin struct {
	next uint32
}

// NewRoundRobin builds a RoundRobin policy.
func NewRoundRobin() *RoundRobin {
	return &RoundRobin{}
}

// Plan returns a fresh, one-shot ranked iterator over hosts. keyspace and
// statement are accepted for interface compatibility with token-aware
// policies but are not consulted by this implementation. The return type is
// the concrete *sliceIter rather than control.HostIter so this package
// stays free of an import cycle back to package control; *sliceIter
// satisfies control.HostIter structurally.
func (p *RoundRobin) Plan(keyspace, statement string, hosts []string) *sliceIter {
	n := len(hosts)
	if n == 0 {
		return &sliceIter{}
	}
	offset := int(atomic.AddUint32(&p.next, 1)-1) % n
	ranked := make([]string, n)
	for i := range hosts {
		ranked[i] = hosts[(offset+i)%n]
	}
	return &sliceIter{hosts: ranked}
}
