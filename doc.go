/*
Package control implements the control connection of a wide-column
database driver: the long-lived metadata session a driver keeps open to
one cluster node to discover topology, refresh schema, and react to
server-pushed events.

# Connect over the native protocol

	package main

	import (
		"context"
		"log"

		"github.com/nimbusdb/control-go/control"
		"github.com/nimbusdb/control-go/transport"
	)

	func main() {
		ctx := context.Background()

		cc, err := control.New(
			control.WithConnector(transport.NewTCPConnector()),
			control.WithRequestRunner(myRequestRunner), // decodes the CQL wire protocol
			control.WithInitialHosts("10.0.0.1:9042", "10.0.0.2:9042"),
		)
		if err != nil {
			log.Fatal(err)
		}
		if err := cc.Connect(ctx); err != nil {
			log.Fatalf("failed to open control connection: %v", err)
		}
		defer cc.Close(ctx)

		log.Println("control connection established")
	}

# Connect over WebSocket

Deployments that front the cluster with an HTTP-aware load balancer can
tunnel the same metadata session inside a WebSocket instead:

	package main

	import (
		"context"
		"log"

		"github.com/nimbusdb/control-go/control"
		"github.com/nimbusdb/control-go/transport/wsconnector"
	)

	func main() {
		ctx := context.Background()

		cc, err := control.New(
			control.WithConnector(wsconnector.New()),
			control.WithRequestRunner(myRequestRunner),
			control.WithInitialHosts("gateway.example.com:443"),
		)
		if err != nil {
			log.Fatal(err)
		}
		if err := cc.Connect(ctx); err != nil {
			log.Fatalf("failed to open control connection: %v", err)
		}
		defer cc.Close(ctx)

		log.Println("control connection established over websocket")
	}

# Watching topology

Once connected, the registry and schema collaborators can be consulted
directly (or overridden with WithRegistry/WithSchema at construction) to
observe the cluster view the control connection maintains as events
arrive and refreshes complete.
*/
package control
