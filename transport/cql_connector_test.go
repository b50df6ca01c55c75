package transport_test

import (
	"context"
	"net"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/nimbusdb/control-go/control"
	"github.com/nimbusdb/control-go/transport"
)

func TestTCPConnector_ConnectAndClose(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	c := transport.NewTCPConnector()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := c.Connect(ctx, ln.Addr().String())
	require.NoError(t, err)
	require.True(t, conn.Connected())
	require.Equal(t, ln.Addr().String(), conn.Host())

	var closed bool
	conn.OnClose(func() { closed = true })

	require.NoError(t, c.Close(ctx, ln.Addr().String(), conn))
	require.True(t, closed)
	require.False(t, conn.Connected())
}

func TestTCPConnector_NotifyClosed(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	c := transport.NewTCPConnector()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := c.Connect(ctx, ln.Addr().String())
	require.NoError(t, err)

	tc := conn.(*transport.Conn)
	var closed bool
	tc.OnClose(func() { closed = true })
	tc.NotifyClosed()
	require.True(t, closed)
}

func TestTCPConnector_PushEventDeliversOnEventsChannel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	c := transport.NewTCPConnector()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := c.Connect(ctx, ln.Addr().String())
	require.NoError(t, err)
	tc := conn.(*transport.Conn)

	tc.PushEvent(control.Event{Type: control.EventTypeStatusChange, Change: control.ChangeUp, Address: "10.0.0.1"})

	select {
	case ev := <-tc.Events():
		require.Equal(t, "10.0.0.1", ev.Address)
	case <-time.After(time.Second):
		t.Fatal("event never delivered")
	}
}

func TestTCPConnector_CloseClosesEventsChannel(t *testing.T) {
	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		conn, err := ln.Accept()
		if err == nil {
			conn.Close()
		}
	}()

	c := transport.NewTCPConnector()
	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()

	conn, err := c.Connect(ctx, ln.Addr().String())
	require.NoError(t, err)
	tc := conn.(*transport.Conn)

	require.NoError(t, c.Close(ctx, ln.Addr().String(), conn))

	_, ok := <-tc.Events()
	require.False(t, ok, "events channel should be closed after Close")

	// A push after close must not panic on a send to a closed channel.
	require.NotPanics(t, func() {
		tc.PushEvent(control.Event{Type: control.EventTypeStatusChange})
	})
}
