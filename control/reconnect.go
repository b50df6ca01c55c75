package control

import (
	"context"

	"github.com/nimbusdb/control-go/log"
)

// reconnectLoop retries connectToFirstAvailable on schedule's backoff
// sequence until it succeeds or the control connection stops being
// "reconnecting" (a close_async won the race, or a concurrent success
// already landed). schedule is the same instance across the whole retry
// chain, so its backoff keeps progressing.
func (cc *ControlConnection) reconnectLoop(ctx context.Context, schedule Schedule) {
	for {
		timeout := schedule.Next()
		fired := cc.cfg.Reactor.ScheduleTimer(ctx, timeout)
		select {
		case <-fired:
		case <-ctx.Done():
			return
		}

		if !cc.state.is(statusReconnecting) {
			// close_async (or an unrelated concurrent success) already
			// moved us out of reconnecting: stop the retry chain, there is
			// nothing left to resolve.
			return
		}

		rctx := log.WithTrackHostID(ctx)
		err := cc.connectToFirstAvailable(rctx)
		if err == nil {
			// connectToHost already swapped status to connected on success.
			return
		}

		cc.log.Warnf(rctx, "reconnect attempt failed: %v", err)
		if !cc.state.is(statusReconnecting) {
			return
		}
		// recurse with the same schedule: backoff progresses on every loop
		// iteration, not just on failure, matching schedule.next()'s
		// "advances on every call" contract.
	}
}
