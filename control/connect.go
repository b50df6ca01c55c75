package control

import (
	"context"

	"github.com/nimbusdb/control-go/errors"
	"github.com/nimbusdb/control-go/log"
)

// Connect establishes the control connection. It is idempotent while
// connecting, connected, or already reconnecting: a concurrent caller
// observes the in-flight attempt's result instead of starting a second one.
func (cc *ControlConnection) Connect(ctx context.Context) error {
	cc.connectMu.Lock()
	switch {
	case cc.state.is(statusConnected):
		cc.connectMu.Unlock()
		return nil
	case cc.state.is(statusReconnecting):
		cc.connectMu.Unlock()
		return nil
	case cc.state.is(statusClosing):
		cc.connectMu.Unlock()
		return errors.ErrConnectionClosed
	case cc.connectDone != nil:
		done := cc.connectDone
		cc.connectMu.Unlock()
		select {
		case <-done:
		case <-ctx.Done():
			return ctx.Err()
		}
		cc.connectMu.Lock()
		err := cc.connectResult
		cc.connectMu.Unlock()
		return err
	}

	if !cc.state.compareAndSwap(statusClosed, statusConnecting) {
		cc.connectMu.Unlock()
		return errors.ErrConnectionClosed
	}
	done := make(chan struct{})
	cc.connectDone = done
	cc.connectMu.Unlock()

	cc.cfg.Reactor.Start()
	err := cc.connectToFirstAvailable(ctx)

	cc.connectMu.Lock()
	cc.connectResult = err
	close(done)
	cc.connectDone = nil
	cc.connectMu.Unlock()

	if err != nil {
		cc.state.swap(statusClosed)
	}
	return err
}

// connectToFirstAvailable pops hosts off a fresh plan, in the plan's order,
// until one connects or the plan is exhausted.
func (cc *ControlConnection) connectToFirstAvailable(ctx context.Context) error {
	plan := cc.newPlan()
	errsByHost := make(map[string]error)

	for {
		host, ok := plan.Next()
		if !ok {
			return &errors.NoHostsAvailable{Errors: errsByHost}
		}

		err := cc.connectToHost(ctx, host)
		if err == nil {
			return nil
		}
		var ae *errors.AuthenticationError
		if errors.As(err, &ae) {
			return ae
		}
		errsByHost[host] = err
	}
}

// connectToHost opens a transport to host, retrying the same host with a
// decremented protocol version on a negotiation error, then subscribes to
// events and runs the two post-connect refreshes.
func (cc *ControlConnection) connectToHost(ctx context.Context, host string) error {
	hctx := log.WithTrackHostID(ctx)

	for {
		conn, err := cc.cfg.Connector.Connect(hctx, host)
		if err != nil {
			var qe *errors.QueryError
			if errors.As(err, &qe) && qe.Code() == errors.CodeProtocolNegotiation {
				if v, ok := cc.downgradeProtocolVersion(); ok {
					cc.log.Infof(hctx, "protocol negotiation failed against %s, retrying at version %d", host, v)
					continue
				}
			}
			if ae, ok := errors.AsAuthenticationError(host, err); ok {
				return ae
			}
			return err
		}

		cc.state.setConnection(conn)
		from := statusConnecting
		swapped := cc.state.compareAndSwap(statusConnecting, statusConnected)
		if !swapped {
			from = statusReconnecting
			swapped = cc.state.compareAndSwap(statusReconnecting, statusConnected)
		}
		if !swapped {
			// A close_async raced us while we were dialing: the plan
			// iteration must stop, not paper over the closed status.
			cc.state.clearConnection()
			_ = cc.cfg.Connector.Close(hctx, host, conn)
			return errors.ErrConnectionClosed
		}
		conn.OnClose(func() { cc.onTransportClosed(conn) })
		cc.log.Infof(hctx, "control connection established to %s", host)

		if err := cc.afterConnected(hctx, conn); err != nil {
			cc.state.clearConnection()
			// Revert to the status this attempt started from (connecting or
			// reconnecting) so the plan iteration can try the next host and
			// a reconnection loop keeps running. If a concurrent Close
			// already moved status past connected, leave it alone:
			// onTransportClosed (fired by the Close call below) will finish
			// that transition instead.
			cc.state.compareAndSwap(statusConnected, from)
			_ = cc.cfg.Connector.Close(hctx, host, conn)
			if ae, ok := errors.AsAuthenticationError(host, err); ok {
				return ae
			}
			return err
		}
		return nil
	}
}

// afterConnected performs the three post-connect steps: event
// subscription, topology refresh, schema refresh. Any error here is
// classified by the caller using the same auth/other split as a connect
// failure.
func (cc *ControlConnection) afterConnected(ctx context.Context, conn Connection) error {
	if err := cc.subscribeEvents(ctx, conn); err != nil {
		return err
	}
	if err := cc.refreshHostsAsync(ctx, conn); err != nil {
		return err
	}
	if err := cc.refreshSchemaAsync(ctx, conn); err != nil {
		return err
	}
	return nil
}

// onTransportClosed is the Connection's on_closed callback. It clears the
// connection field first, so at most one connection is ever held, then
// either finishes a user-requested close or starts the reconnection loop.
func (cc *ControlConnection) onTransportClosed(conn Connection) {
	cc.state.clearConnection()

	switch {
	case cc.state.compareAndSwap(statusConnected, statusReconnecting):
		go cc.reconnectLoop(context.Background(), cc.cfg.Reconnection.NewSchedule())
	case cc.state.compareAndSwap(statusClosing, statusClosed):
		cc.cfg.Reactor.Stop()
	default:
		// Already closed, or a fresh connect is racing us into
		// "connecting". Nothing to do.
	}
}
