package control_test

import (
	"sync"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/nimbusdb/control-go/control"
	"github.com/nimbusdb/control-go/controlmock"
	"github.com/nimbusdb/control-go/errors"
	"github.com/nimbusdb/control-go/reactor"
)

// fixture bundles a ControlConnection under test with its mocked
// collaborators, so each test only sets expectations on what it exercises.
type fixture struct {
	t         *testing.T
	ctrl      *gomock.Controller
	connector *controlmock.MockConnector
	runner    *controlmock.MockRequestRunner
	lbp       *controlmock.MockLoadBalancingPolicy
	reconn    *controlmock.MockReconnectionPolicy
	registry  *controlmock.MockClusterRegistry
	schema    *controlmock.MockClusterSchema
	reactor   *reactor.Reactor
}

func newFixture(t *testing.T) *fixture {
	ctrl := gomock.NewController(t)
	f := &fixture{
		t:         t,
		ctrl:      ctrl,
		connector: controlmock.NewMockConnector(ctrl),
		runner:    controlmock.NewMockRequestRunner(ctrl),
		lbp:       controlmock.NewMockLoadBalancingPolicy(ctrl),
		reconn:    controlmock.NewMockReconnectionPolicy(ctrl),
		registry:  controlmock.NewMockClusterRegistry(ctrl),
		schema:    controlmock.NewMockClusterSchema(ctrl),
		reactor:   reactor.New(),
	}
	return f
}

func (f *fixture) newControlConnection(extra ...control.Option) *control.ControlConnection {
	opts := append([]control.Option{
		control.WithConnector(f.connector),
		control.WithRequestRunner(f.runner),
		control.WithLoadBalancingPolicy(f.lbp),
		control.WithReconnectionPolicy(f.reconn),
		control.WithRegistry(f.registry),
		control.WithSchema(f.schema),
		control.WithReactor(f.reactor),
		control.WithInitialHosts("10.0.0.1", "10.0.0.2"),
	}, extra...)
	cc, err := control.New(opts...)
	require.NoError(f.t, err)
	return cc
}

// fakeIter is a HostIter over a fixed, ordered slice, standing in for a
// LoadBalancingPolicy's plan in tests that don't exercise ranking itself.
type fakeIter struct {
	hosts []string
	pos   int
}

func newFakeIter(hosts ...string) *fakeIter { return &fakeIter{hosts: hosts} }

func (it *fakeIter) Next() (string, bool) {
	if it.pos >= len(it.hosts) {
		return "", false
	}
	h := it.hosts[it.pos]
	it.pos++
	return h, true
}

// fakeConn is a minimal control.Connection double used where a mock's
// EXPECT()-based ceremony would be pure noise (OnClose registration,
// Events plumbing).
type fakeConn struct {
	mu      sync.Mutex
	host    string
	events  chan control.Event
	onClose func()
	closed  bool
}

func newFakeConn(host string) *fakeConn {
	return &fakeConn{host: host, events: make(chan control.Event, 8)}
}

func (c *fakeConn) Host() string             { return c.host }
func (c *fakeConn) Connected() bool          { return true }
func (c *fakeConn) OnClose(fn func())        { c.onClose = fn }
func (c *fakeConn) Events() <-chan control.Event { return c.events }

// fireClose invokes the registered OnClose callback and closes events,
// standing in for the Connector-driven onTransportClosed trigger in
// reconnect-path tests. Closing events lets pumpEvents' range loop exit,
// same as a real Connection.
func (c *fakeConn) fireClose() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	close(c.events)
	c.mu.Unlock()
	if c.onClose != nil {
		c.onClose()
	}
}

func emptyRS() *control.ResultSet { return &control.ResultSet{} }

func rowsRS(rows ...control.Row) *control.ResultSet { return &control.ResultSet{Rows: rows} }

func eventuallyStatus(t *testing.T, cc *control.ControlConnection, want string, timeout time.Duration) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cc.Status() == want {
			return
		}
		time.Sleep(time.Millisecond)
	}
	require.Equal(t, want, cc.Status())
}

func controlErrProtocolNegotiation() error {
	return errors.NewQueryError(errors.CodeProtocolNegotiation, "unsupported version")
}

func controlErrAuth(host string) error {
	return errors.NewQueryError(errors.CodeBadCredentials, "bad password")
}

func controlErrPlain(msg string) error {
	return errors.New(msg)
}

func controlAsNoHostsAvailable(t *testing.T, err error) *errors.NoHostsAvailable {
	t.Helper()
	var nha *errors.NoHostsAvailable
	require.True(t, errors.As(err, &nha))
	return nha
}

// instantSchedule fires with zero backoff, keeping reconnect/probe tests fast.
type instantSchedule struct{}

func newInstantSchedule() *instantSchedule { return &instantSchedule{} }

func (instantSchedule) Next() time.Duration { return time.Millisecond }

// foreverSchedule never fires within a test's lifetime, used to freeze a
// reconnect/probe loop mid-backoff so a test can observe the in-between
// status without racing a second attempt.
type foreverSchedule struct{}

func newForeverSchedule() *foreverSchedule { return &foreverSchedule{} }

func (foreverSchedule) Next() time.Duration { return time.Hour }
