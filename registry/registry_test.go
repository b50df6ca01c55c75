package registry_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/nimbusdb/control-go/registry"
)

func TestRegistry_HostFoundAndLost(t *testing.T) {
	r := registry.New()
	require.False(t, r.HasHost("10.0.0.1"))

	r.HostFound("10.0.0.1", registry.Row{Rack: "rack1", DataCenter: "dc1", HostID: uuid.New(), ReleaseVersion: "4.0"})
	require.True(t, r.HasHost("10.0.0.1"))
	h, ok := r.Host("10.0.0.1")
	require.True(t, ok)
	require.Equal(t, "rack1", h.Rack)
	require.False(t, h.Down())

	r.HostLost("10.0.0.1")
	require.False(t, r.HasHost("10.0.0.1"))
}

func TestRegistry_UpDown(t *testing.T) {
	r := registry.New()
	r.HostFound("10.0.0.1", registry.Row{})

	r.HostDown("10.0.0.1")
	h, _ := r.Host("10.0.0.1")
	require.True(t, h.Down())

	r.HostUp("10.0.0.1")
	h, _ = r.Host("10.0.0.1")
	require.False(t, h.Down())
}

func TestRegistry_EachHost(t *testing.T) {
	r := registry.New()
	r.HostFound("10.0.0.1", registry.Row{})
	r.HostFound("10.0.0.2", registry.Row{})

	seen := map[string]bool{}
	r.EachHost(func(h *registry.Host) { seen[h.IP] = true })
	require.Len(t, seen, 2)
}
