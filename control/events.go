package control

import (
	"context"
)

const registerStatement = "REGISTER"

// subscribeEvents installs a REGISTER on conn for the three server event
// types, then starts the fire-and-forget dispatch loop that routes each
// pushed Event to the refresh it implies. Exactly one subscription exists
// per connection: when conn is replaced, this dispatcher goroutine exits
// with it once conn.Events() closes.
func (cc *ControlConnection) subscribeEvents(ctx context.Context, conn Connection) error {
	_, err := cc.cfg.Runner.Execute(ctx, conn, cc.stmt(registerStatement,
		string(EventTypeTopologyChange),
		string(EventTypeStatusChange),
		string(EventTypeSchemaChange),
	))
	if err != nil {
		return err
	}

	dispatcher := newEventDispatcher()
	go dispatcher.run()
	go cc.pumpEvents(conn, dispatcher)
	return nil
}

// pumpEvents forwards conn's pushed events onto dispatcher, one enqueue per
// event, until the channel closes (conn went away).
func (cc *ControlConnection) pumpEvents(conn Connection, dispatcher *eventDispatcher) {
	defer dispatcher.stop()
	for ev := range conn.Events() {
		ev := ev
		dispatcher.enqueue(func() { cc.handleEvent(context.Background(), conn, ev) })
	}
}

// handleEvent routes one server-pushed event to the refresh it implies.
// Failures are logged and never propagated: they must not kill the event
// loop.
func (cc *ControlConnection) handleEvent(ctx context.Context, conn Connection, ev Event) {
	var err error
	switch ev.Type {
	case EventTypeSchemaChange:
		err = cc.handleSchemaChange(ctx, conn, ev)
	case EventTypeStatusChange:
		err = cc.handleStatusChange(ctx, conn, ev)
	case EventTypeTopologyChange:
		err = cc.handleTopologyChange(ctx, conn, ev)
	}
	if err != nil {
		cc.log.Warnf(ctx, "event handler failed for %s/%s (%s): %v", ev.Type, ev.Change, ev.Address, err)
	}
}

func (cc *ControlConnection) handleSchemaChange(ctx context.Context, conn Connection, ev Event) error {
	switch ev.Change {
	case ChangeCreated, ChangeDropped:
		if ev.Table == "" {
			return cc.refreshSchemaAsync(ctx, conn)
		}
		return cc.refreshKeyspaceAsync(ctx, conn, ev.Keyspace)
	case ChangeUpdated:
		if ev.Table == "" {
			return cc.refreshKeyspaceAsync(ctx, conn, ev.Keyspace)
		}
		return cc.refreshTableAsync(ctx, conn, ev.Keyspace, ev.Table)
	}
	return nil
}

func (cc *ControlConnection) handleStatusChange(ctx context.Context, conn Connection, ev Event) error {
	switch ev.Change {
	case ChangeUp:
		if cc.cfg.Registry.HasHost(ev.Address) {
			return cc.refreshHostAsync(ctx, conn, ev.Address)
		}
	case ChangeDown:
		cc.cfg.Registry.HostDown(ev.Address)
	}
	return nil
}

func (cc *ControlConnection) handleTopologyChange(ctx context.Context, conn Connection, ev Event) error {
	switch ev.Change {
	case ChangeNewNode:
		if !cc.cfg.Registry.HasHost(ev.Address) {
			return cc.refreshHostAsync(ctx, conn, ev.Address)
		}
	case ChangeRemovedNode:
		cc.cfg.Registry.HostLost(ev.Address)
	}
	return nil
}
