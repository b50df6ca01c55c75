package transport

import (
	"context"
	"net"
	"sync"

	"github.com/nimbusdb/control-go/control"
)

// TCPConnector opens the control connection's metadata session over a
// plain TCP socket. It carries no opinion about CQL framing: the
// RequestRunner collaborator reads and writes on the net.Conn exposed by
// Conn.NetConn.
type TCPConnector struct {
	// DialTimeout is the dial function Connect uses. NewTCPConnector sets
	// it to a zero net.Dialer's DialContext, bounded only by ctx's own
	// deadline. Connect does not check it for nil.
	DialTimeout func(ctx context.Context, network, addr string) (net.Conn, error)
}

// NewTCPConnector builds a TCPConnector using net.Dialer.DialContext.
func NewTCPConnector() *TCPConnector {
	d := &net.Dialer{}
	return &TCPConnector{DialTimeout: d.DialContext}
}

// Connect dials host over TCP. host is an ip:port pair; a bare ip is
// rejected since the native protocol port is not assumed.
func (c *TCPConnector) Connect(ctx context.Context, host string) (control.Connection, error) {
	nc, err := c.DialTimeout(ctx, "tcp", host)
	if err != nil {
		return nil, err
	}
	return newConn(host, nc), nil
}

// Close releases conn. It is a no-op if conn was not produced by this
// Connector.
func (c *TCPConnector) Close(ctx context.Context, host string, conn control.Connection) error {
	tc, ok := conn.(*Conn)
	if !ok {
		return nil
	}
	return tc.Close()
}

// Conn is the control.Connection implementation returned by TCPConnector.
type Conn struct {
	host string
	nc   net.Conn

	mu       sync.Mutex
	closed   bool
	onClose  func()
	closedCh chan struct{}
	events   chan control.Event
}

func newConn(host string, nc net.Conn) *Conn {
	return &Conn{
		host:     host,
		nc:       nc,
		closedCh: make(chan struct{}),
		events:   make(chan control.Event, 32),
	}
}

// Events delivers events decoded off nc by the RequestRunner. PushEvent is
// the write side; the control connection only ever reads.
func (c *Conn) Events() <-chan control.Event { return c.events }

// PushEvent hands a decoded EVENT frame to the control connection. The
// RequestRunner calls this after decoding an unsolicited push off nc; it
// never blocks past the channel's buffer since a slow control connection
// must not stall the read loop. It is a no-op once the connection has
// closed: the send and the closed check share fireClose's lock, so a
// straggling decode can never race a close into a send on a closed channel.
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

// NotifyClosed fires the OnClose callback. The RequestRunner calls this the
// moment it observes the underlying socket fail (EOF, reset, write error),
// since TCPConnector itself never reads from the socket and so cannot
// detect a peer-initiated close on its own.
func (c *Conn) NotifyClosed() {
	c.fireClose()
}

func (c *Conn) fireClose() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	cb := c.onClose
	close(c.closedCh)
	close(c.events)
	c.mu.Unlock()
	if cb != nil {
		cb()
	}
}

// Host returns the ip:port this connection was dialed against.
func (c *Conn) Host() string { return c.host }

// Connected reports whether the socket is still open.
func (c *Conn) Connected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return !c.closed
}

// OnClose registers the callback the control connection uses to notice a
// transport-initiated failure and enter the reconnect loop.
func (c *Conn) OnClose(fn func()) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.onClose = fn
}

// NetConn exposes the underlying socket to a RequestRunner.
func (c *Conn) NetConn() net.Conn { return c.nc }

// Close releases the socket, firing the OnClose callback if one is
// registered and it has not already fired from a peer-initiated close.
func (c *Conn) Close() error {
	c.fireClose()
	return c.nc.Close()
}
