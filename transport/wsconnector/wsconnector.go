// Package wsconnector tunnels the control connection's metadata session
// inside a gorilla/websocket binary-message stream, for deployments that
// front the cluster with an HTTP-aware load balancer.
package wsconnector

import (
	"context"
	"net/http"
	"sync"

	gwebsocket "github.com/gorilla/websocket"

	"github.com/nimbusdb/control-go/control"
)

// Connector opens a control.Connection over a WebSocket. host is dialed as
// a ws:// or wss:// URL depending on Secure.
type Connector struct {
	Dialer *gwebsocket.Dialer
	Header http.Header
	Secure bool
}

// New builds a Connector using gorilla/websocket's default dialer.
func New() *Connector {
	return &Connector{Dialer: gwebsocket.DefaultDialer}
}

func (c *Connector) url(host string) string {
	scheme := "ws"
	if c.Secure {
		scheme = "wss"
	}
	return scheme + "://" + host + "/cql"
}

// Connect dials host and returns a Connection wrapping the WebSocket.
func (c *Connector) Connect(ctx context.Context, host string) (control.Connection, error) {
	dialer := c.Dialer
	if dialer == nil {
		dialer = gwebsocket.DefaultDialer
	}
	wsconn, _, err := dialer.DialContext(ctx, c.url(host), c.Header)
	if err != nil {
		return nil, err
	}
	return newConn(host, wsconn), nil
}

// Close releases conn. It is a no-op if conn was not produced by this
// Connector.
func (c *Connector) Close(ctx context.Context, host string, conn control.Connection) error {
	wc, ok := conn.(*Conn)
	if !ok {
		return nil
	}
	return wc.Close()
}

// Conn is the control.Connection implementation returned by Connector.
type Conn struct {
	host   string
	wsconn *gwebsocket.Conn

	mu      sync.Mutex
	closed  bool
	onClose func()
	events  chan control.Event
}

func newConn(host string, wsconn *gwebsocket.Conn) *Conn {
	c := &Conn{host: host, wsconn: wsconn, events: make(chan control.Event, 32)}
	wsconn.SetCloseHandler(func(code int, text string) error {
		c.fire()
		return nil
	})
	return c
}

// Events delivers events decoded off WSConn by the RequestRunner.
func (c *Conn) Events() <-chan control.Event { return c.events }

// PushEvent hands a decoded EVENT frame to the control connection. Never
// blocks: a full buffer drops the event rather than stalling the reader.
// It is a no-op once the connection has closed: the send and the closed
// check share fire's lock, so a straggling decode can never race a close
// into a send on a closed channel.
func (c *Conn) PushEvent(ev control.Event) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	select {
	case c.events <- ev:
	default:
	}
}

// Host returns the address this connection was dialed against.
func (c *Conn) Host() string { return c.host }

// Connected reports whether the WebSocket is still open.
func (c *Conn) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// OnClose registers the callback fired the first time this connection
// closes, whether via Close or NotifyClosed.
func (c *Conn) OnClose(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onClose = fn
}

// NotifyClosed fires the OnClose callback. A RequestRunner reading and
// writing binary CQL frames over WSConn calls this the moment it observes
// the WebSocket fail.
func (c *Conn) NotifyClosed() {
	c.fire()
}

func (c *Conn) fire() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cb := c.onClose
	close(c.events)
	c.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// WSConn exposes the underlying gorilla connection to a RequestRunner,
// which is responsible for framing CQL bytes as binary WebSocket messages.
func (c *Conn) WSConn() *gwebsocket.Conn { return c.wsconn }

// Close releases the WebSocket, firing OnClose if it has not already fired.
func (c *Conn) Close() error {
	c.fire()
	return c.wsconn.Close()
}
