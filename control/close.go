package control

import "context"

// Close tears down the control connection: it stops the reactor, releases
// the current connection if one is held, and aborts any in-flight
// reconnection loop or down-host probers at their next monitor-guarded
// check. It is idempotent while closing or already closed.
func (cc *ControlConnection) Close(ctx context.Context) error {
	old := cc.state.swap(statusClosing)
	if old == statusClosing || old == statusClosed {
		cc.state.swap(old)
		return nil
	}

	// Empty the probed-host set so every probeLoop exits at its next
	// isProbing check.
	cc.state.mu.Lock()
	cc.state.refreshing = make(map[string]struct{})
	cc.state.mu.Unlock()

	conn := cc.state.connection()
	if conn == nil {
		// No transport-owned close callback will fire to finish the
		// transition, since there was nothing connected (e.g. we were
		// "connecting" or "reconnecting" between attempts): finish it here.
		cc.state.swap(statusClosed)
		cc.cfg.Reactor.Stop()
		return nil
	}

	cc.state.clearConnection()
	err := cc.cfg.Connector.Close(ctx, conn.Host(), conn)
	// The registered OnClose callback (connect.go's onTransportClosed) will
	// also fire from this Close call; it observes statusClosing and
	// finishes the transition to statusClosed plus stops the reactor. If
	// the Connector doesn't invoke OnClose synchronously, finish here too
	// so Close never blocks past this call returning.
	if cc.state.compareAndSwap(statusClosing, statusClosed) {
		cc.cfg.Reactor.Stop()
	}
	return err
}
