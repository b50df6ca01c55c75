package control

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/nimbusdb/control-go/errors"
	"github.com/nimbusdb/control-go/log"
)

const (
	localQuery = "SELECT rack, data_center, host_id, release_version FROM system.local"
	peersQuery = "SELECT peer, rack, data_center, host_id, rpc_address, release_version FROM system.peers"

	schemaKeyspacesQuery      = "SELECT * FROM system.schema_keyspaces"
	schemaColumnfamiliesQuery = "SELECT * FROM system.schema_columnfamilies"
	schemaColumnsQuery        = "SELECT * FROM system.schema_columns"
)

// stmt builds a Statement at the configured metadata consistency level.
// Every read this package issues goes through it, so Config.Consistency
// actually reaches the RequestRunner instead of sitting unused.
func (cc *ControlConnection) stmt(query string, values ...any) Statement {
	return Statement{Query: query, Values: values, Consistency: cc.cfg.Consistency}
}

// peerIP derives a peer row's externally-reachable address: rpc_address,
// unless the peer hasn't been configured with one (0.0.0.0), in which case
// its gossip address (peer) is used instead.
func peerIP(row Row) string {
	if rpc, _ := row["rpc_address"].(string); rpc != "" && rpc != "0.0.0.0" {
		return rpc
	}
	peer, _ := row["peer"].(string)
	return peer
}

// refreshHostsAsync runs the topology refresh: system.local and
// system.peers are read concurrently, both must complete before the
// registry is updated. It also schedules a status probe for any known,
// down, not-yet-probed host that is still present in the new topology.
func (cc *ControlConnection) refreshHostsAsync(ctx context.Context, conn Connection) error {
	ctx = log.WithTrackRefreshID(ctx)

	var localRS, peersRS *ResultSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs, err := cc.cfg.Runner.Execute(gctx, conn, cc.stmt(localQuery))
		if err != nil {
			return err
		}
		localRS = rs
		return nil
	})
	g.Go(func() error {
		rs, err := cc.cfg.Runner.Execute(gctx, conn, cc.stmt(peersQuery))
		if err != nil {
			return err
		}
		peersRS = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}

	if localRS.Empty() && peersRS.Empty() {
		return errors.ErrNoHosts
	}

	seen := make(map[string]struct{})
	localIP := conn.Host()

	if !localRS.Empty() {
		seen[localIP] = struct{}{}
		cc.cfg.Registry.HostFound(localIP, localRS.Rows[0])
	}
	for _, row := range peersRS.Rows {
		ip := peerIP(row)
		if ip == "" {
			continue
		}
		seen[ip] = struct{}{}
		cc.cfg.Registry.HostFound(ip, row)
	}

	var toProbe []string
	cc.cfg.Registry.EachHost(func(h RegistryHost) {
		if _, ok := seen[h.IP()]; !ok {
			cc.cfg.Registry.HostLost(h.IP())
			return
		}
		if h.Down() && !cc.state.isProbing(h.IP()) {
			toProbe = append(toProbe, h.IP())
		}
	})
	for _, ip := range toProbe {
		cc.startProber(ctx, ip)
	}
	return nil
}

// refreshSchemaAsync runs a full schema refresh: keyspaces, tables, and
// columns are read concurrently across the whole schema, then applied
// together.
func (cc *ControlConnection) refreshSchemaAsync(ctx context.Context, conn Connection) error {
	ctx = log.WithTrackRefreshID(ctx)

	keyspaces, tables, columns, err := cc.readSchema(ctx, conn, schemaKeyspacesQuery, schemaColumnfamiliesQuery, schemaColumnsQuery)
	if err != nil {
		return err
	}
	host, ok := cc.hostForConnection(conn)
	if !ok {
		return nil
	}
	cc.cfg.Schema.UpdateKeyspaces(host, keyspaces, tables, columns)
	return nil
}

// refreshKeyspaceAsync refreshes one keyspace's tables and columns.
func (cc *ControlConnection) refreshKeyspaceAsync(ctx context.Context, conn Connection, keyspace string) error {
	ctx = log.WithTrackRefreshID(ctx)

	keyspaces, tables, columns, err := cc.readSchema(ctx, conn,
		schemaKeyspacesQuery+" WHERE keyspace_name = ?",
		schemaColumnfamiliesQuery+" WHERE keyspace_name = ?",
		schemaColumnsQuery+" WHERE keyspace_name = ?",
		keyspace)
	if err != nil {
		return err
	}
	if len(keyspaces) == 0 {
		return nil
	}
	host, ok := cc.hostForConnection(conn)
	if !ok {
		return nil
	}
	cc.cfg.Schema.UpdateKeyspace(host, keyspaces[0], tables, columns)
	return nil
}

// refreshTableAsync refreshes one table's columns within keyspace.
func (cc *ControlConnection) refreshTableAsync(ctx context.Context, conn Connection, keyspace, table string) error {
	ctx = log.WithTrackRefreshID(ctx)

	var tableRS, columnsRS *ResultSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs, err := cc.cfg.Runner.Execute(gctx, conn, cc.stmt(
			schemaColumnfamiliesQuery+" WHERE keyspace_name = ? AND columnfamily_name = ?",
			keyspace, table))
		if err != nil {
			return err
		}
		tableRS = rs
		return nil
	})
	g.Go(func() error {
		rs, err := cc.cfg.Runner.Execute(gctx, conn, cc.stmt(
			schemaColumnsQuery+" WHERE keyspace_name = ? AND columnfamily_name = ?",
			keyspace, table))
		if err != nil {
			return err
		}
		columnsRS = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return err
	}
	if tableRS.Empty() {
		return nil
	}
	host, ok := cc.hostForConnection(conn)
	if !ok {
		return nil
	}
	cc.cfg.Schema.UpdateTable(host, keyspace, tableRS.Rows[0], columnsRS.Rows)
	return nil
}

// refreshHostAsync refreshes registry metadata for a single address:
// system.local if it is the current connection's own address, else
// system.peers filtered by peer.
func (cc *ControlConnection) refreshHostAsync(ctx context.Context, conn Connection, address string) error {
	ctx = log.WithTrackRefreshID(ctx)

	var rs *ResultSet
	var err error
	if address == conn.Host() {
		rs, err = cc.cfg.Runner.Execute(ctx, conn, cc.stmt(localQuery))
	} else {
		rs, err = cc.cfg.Runner.Execute(ctx, conn, cc.stmt(peersQuery+" WHERE peer = ?", address))
	}
	if err != nil {
		return err
	}
	if rs.Empty() {
		return nil
	}
	cc.cfg.Registry.HostFound(address, rs.Rows[0])
	return nil
}

// readSchema runs the three-granularity schema read concurrently and
// returns the joined result sets' rows.
func (cc *ControlConnection) readSchema(ctx context.Context, conn Connection, keyspacesQ, tablesQ, columnsQ string, args ...any) (keyspaces, tables, columns []Row, err error) {
	var keyspacesRS, tablesRS, columnsRS *ResultSet
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		rs, err := cc.cfg.Runner.Execute(gctx, conn, cc.stmt(keyspacesQ, args...))
		if err != nil {
			return err
		}
		keyspacesRS = rs
		return nil
	})
	g.Go(func() error {
		rs, err := cc.cfg.Runner.Execute(gctx, conn, cc.stmt(tablesQ, args...))
		if err != nil {
			return err
		}
		tablesRS = rs
		return nil
	})
	g.Go(func() error {
		rs, err := cc.cfg.Runner.Execute(gctx, conn, cc.stmt(columnsQ, args...))
		if err != nil {
			return err
		}
		columnsRS = rs
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, nil, nil, err
	}
	return keyspacesRS.Rows, tablesRS.Rows, columnsRS.Rows, nil
}

// hostForConnection resolves conn's ip via the registry at the moment of
// application. If the host has since been lost, the caller skips the
// update silently. The skipped update is not queued or retried; a later
// schema refresh (such as the one run after every successful connect)
// replaces it.
func (cc *ControlConnection) hostForConnection(conn Connection) (string, bool) {
	ip := conn.Host()
	if !cc.cfg.Registry.HasHost(ip) {
		return "", false
	}
	return ip, true
}
