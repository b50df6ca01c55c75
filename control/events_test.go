package control_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/require"

	"github.com/nimbusdb/control-go/control"
)

func TestEvents_SchemaChangeCreatedKeyspaceTriggersFullSchemaRefresh(t *testing.T) {
	f := newFixture(t)
	f.reactor.Start()
	defer f.reactor.Stop()

	conn := newFakeConn("10.0.0.1")
	f.lbp.EXPECT().Plan(gomock.Any(), gomock.Any(), gomock.Any()).Return(newFakeIter("10.0.0.1"))
	f.connector.EXPECT().Connect(gomock.Any(), "10.0.0.1").Return(conn, nil)
	f.stubMetadataRunner()

	updateCh := make(chan struct{}, 1)
	f.schema.EXPECT().UpdateKeyspaces(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).DoAndReturn(
		func(string, []control.Row, []control.Row, []control.Row) {
			select {
			case updateCh <- struct{}{}:
			default:
			}
		}).AnyTimes()

	cc := f.newControlConnection()
	require.NoError(t, cc.Connect(context.Background()))
	<-updateCh // drain the post-connect refresh's own update.

	conn.events <- control.Event{Type: control.EventTypeSchemaChange, Change: control.ChangeCreated, Keyspace: "ks1"}

	select {
	case <-updateCh:
	case <-time.After(time.Second):
		t.Fatal("expected a schema refresh triggered by the pushed CREATED event")
	}
}

func TestEvents_StatusChangeDownMarksHostDown(t *testing.T) {
	f := newFixture(t)
	f.reactor.Start()
	defer f.reactor.Stop()

	conn := newFakeConn("10.0.0.1")
	f.lbp.EXPECT().Plan(gomock.Any(), gomock.Any(), gomock.Any()).Return(newFakeIter("10.0.0.1"))
	f.connector.EXPECT().Connect(gomock.Any(), "10.0.0.1").Return(conn, nil)
	f.stubMetadataRunner()
	f.stubSchema()

	downCh := make(chan string, 1)
	f.registry.EXPECT().HostDown(gomock.Any()).DoAndReturn(func(ip string) { downCh <- ip })

	cc := f.newControlConnection()
	require.NoError(t, cc.Connect(context.Background()))

	conn.events <- control.Event{Type: control.EventTypeStatusChange, Change: control.ChangeDown, Address: "10.0.0.5"}

	select {
	case ip := <-downCh:
		require.Equal(t, "10.0.0.5", ip)
	case <-time.After(time.Second):
		t.Fatal("expected HostDown to be called for the pushed DOWN event")
	}
}

func TestEvents_TopologyChangeRemovedNodeMarksHostLost(t *testing.T) {
	f := newFixture(t)
	f.reactor.Start()
	defer f.reactor.Stop()

	conn := newFakeConn("10.0.0.1")
	f.lbp.EXPECT().Plan(gomock.Any(), gomock.Any(), gomock.Any()).Return(newFakeIter("10.0.0.1"))
	f.connector.EXPECT().Connect(gomock.Any(), "10.0.0.1").Return(conn, nil)
	f.stubMetadataRunner()
	f.stubSchema()

	lostCh := make(chan string, 1)
	f.registry.EXPECT().HostLost(gomock.Any()).DoAndReturn(func(ip string) { lostCh <- ip })

	cc := f.newControlConnection()
	require.NoError(t, cc.Connect(context.Background()))

	conn.events <- control.Event{Type: control.EventTypeTopologyChange, Change: control.ChangeRemovedNode, Address: "10.0.0.6"}

	select {
	case ip := <-lostCh:
		require.Equal(t, "10.0.0.6", ip)
	case <-time.After(time.Second):
		t.Fatal("expected HostLost to be called for the pushed REMOVED_NODE event")
	}
}
