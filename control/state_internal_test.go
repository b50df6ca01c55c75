package control

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestState_CompareAndSwap(t *testing.T) {
	s := newState()
	require.True(t, s.is(statusClosed))

	require.False(t, s.compareAndSwap(statusConnected, statusConnecting))
	require.True(t, s.is(statusClosed))

	require.True(t, s.compareAndSwap(statusClosed, statusConnecting))
	require.True(t, s.is(statusConnecting))
}

func TestState_CompareAndSwapAny(t *testing.T) {
	s := newState()
	s.swap(statusReconnecting)

	require.True(t, s.compareAndSwapAny(statusConnected, statusConnecting, statusReconnecting))
	require.True(t, s.is(statusConnected))

	require.False(t, s.compareAndSwapAny(statusConnecting, statusReconnecting, statusClosing))
}

func TestState_AtMostOneConnection(t *testing.T) {
	s := newState()
	require.Nil(t, s.connection())

	c1 := &fakeStateConn{host: "a"}
	s.setConnection(c1)
	require.Equal(t, Connection(c1), s.connection())

	s.clearConnection()
	require.Nil(t, s.connection())

	c2 := &fakeStateConn{host: "b"}
	s.setConnection(c2)
	require.Equal(t, Connection(c2), s.connection())
}

func TestState_StartStopProbingIsExclusive(t *testing.T) {
	s := newState()
	require.True(t, s.startProbing("10.0.0.1"))
	require.False(t, s.startProbing("10.0.0.1"))
	require.True(t, s.isProbing("10.0.0.1"))

	s.stopProbing("10.0.0.1")
	require.False(t, s.isProbing("10.0.0.1"))
	require.True(t, s.startProbing("10.0.0.1"))
}

func TestState_SwapBroadcastsToWaiters(t *testing.T) {
	s := newState()
	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()
		s.mu.Lock()
		for s.current != statusConnected {
			s.cond.Wait()
		}
		s.mu.Unlock()
	}()

	s.swap(statusConnecting)
	s.swap(statusConnected)
	wg.Wait()
}

type fakeStateConn struct{ host string }

func (c *fakeStateConn) Host() string             { return c.host }
func (c *fakeStateConn) Connected() bool          { return true }
func (c *fakeStateConn) OnClose(func())           {}
func (c *fakeStateConn) Events() <-chan Event     { return nil }
