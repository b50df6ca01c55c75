package control

import (
	"context"

	"github.com/nimbusdb/control-go/log"
)

// startProber begins a dedicated reachability probe loop for host, unless
// one is already running (the at-most-one-prober-per-host invariant).
func (cc *ControlConnection) startProber(ctx context.Context, host string) {
	if !cc.state.startProbing(host) {
		return
	}
	go cc.probeLoop(context.Background(), host, cc.cfg.Reconnection.NewSchedule())
}

// probeLoop waits on a fresh backoff, re-checks the host is still being
// probed, attempts a bare connect as a reachability test, and either
// declares the host up or recurses with the same schedule.
func (cc *ControlConnection) probeLoop(ctx context.Context, host string, schedule Schedule) {
	for {
		timeout := schedule.Next()
		fired := cc.cfg.Reactor.ScheduleTimer(ctx, timeout)
		select {
		case <-fired:
		case <-ctx.Done():
			cc.state.stopProbing(host)
			return
		}

		if !cc.state.isProbing(host) {
			return
		}

		hctx := log.WithTrackHostID(ctx)
		conn, err := cc.cfg.Connector.Connect(hctx, host)
		if err != nil {
			cc.log.Warnf(hctx, "probe of %s failed: %v", host, err)
			continue
		}

		_ = cc.cfg.Connector.Close(hctx, host, conn)
		cc.state.stopProbing(host)
		cc.cfg.Registry.HostUp(host)
		cc.log.Infof(hctx, "probe of %s succeeded, host is up", host)

		if cc.state.isAny(statusClosed, statusClosing) {
			go func() {
				if err := cc.Connect(context.Background()); err != nil {
					cc.log.Warnf(hctx, "connect triggered by probe success for %s failed: %v", host, err)
				}
			}()
		}
		return
	}
}
