// Package schema provides the default in-memory ClusterSchema collaborator,
// an external catalogue of keyspaces, tables, and columns.
package schema

import "sync"

// Column describes a single column of a table.
type Column struct {
	Name       string
	Type       string
	Kind       string
	ComponentIndex int
}

// Table describes a table and its columns.
type Table struct {
	Name    string
	Columns map[string]Column
}

// Keyspace describes a keyspace and its tables.
type Keyspace struct {
	Name              string
	DurableWrites     bool
	ReplicationClass  string
	ReplicationOpts   map[string]string
	Tables            map[string]*Table
}

func newTable(name string) *Table {
	return &Table{Name: name, Columns: make(map[string]Column)}
}

func newKeyspace(name string) *Keyspace {
	return &Keyspace{Name: name, Tables: make(map[string]*Table)}
}

// Schema is the default in-memory ClusterSchema. It keeps one metadata tree
// per host, since two control connections observing different hosts may
// legitimately see different in-flight schema versions during a rolling
// change.
type Schema struct {
	sync.RWMutex
	byHost map[string]map[string]*Keyspace
}

// New builds an empty Schema.
func New() *Schema {
	return &Schema{byHost: make(map[string]map[string]*Keyspace)}
}

func (s *Schema) hostTree(host string) map[string]*Keyspace {
	tree, ok := s.byHost[host]
	if !ok {
		tree = make(map[string]*Keyspace)
		s.byHost[host] = tree
	}
	return tree
}

// UpdateKeyspaces replaces the entire schema tree observed from host with
// the rows from a full schema refresh.
func (s *Schema) UpdateKeyspaces(host string, keyspaceRows, tableRows, columnRows []map[string]any) {
	s.Lock()
	defer s.Unlock()

	tree := make(map[string]*Keyspace)
	for _, row := range keyspaceRows {
		ks := keyspaceFromRow(row)
		tree[ks.Name] = ks
	}
	applyTables(tree, tableRows)
	applyColumns(tree, columnRows)
	s.byHost[host] = tree
}

// UpdateKeyspace replaces one keyspace's subtree observed from host.
func (s *Schema) UpdateKeyspace(host string, keyspaceRow map[string]any, tableRows, columnRows []map[string]any) {
	s.Lock()
	defer s.Unlock()

	tree := s.hostTree(host)
	ks := keyspaceFromRow(keyspaceRow)
	tree[ks.Name] = ks
	single := map[string]*Keyspace{ks.Name: ks}
	applyTables(single, tableRows)
	applyColumns(single, columnRows)
}

// UpdateTable replaces one table's subtree, within keyspace, observed from
// host. The keyspace must already exist; if it does not, the update is
// dropped (a full refresh will eventually recreate it).
func (s *Schema) UpdateTable(host, keyspace string, tableRow map[string]any, columnRows []map[string]any) {
	s.Lock()
	defer s.Unlock()

	tree := s.hostTree(host)
	ks, ok := tree[keyspace]
	if !ok {
		return
	}
	tbl := newTable(stringField(tableRow, "columnfamily_name"))
	ks.Tables[tbl.Name] = tbl
	for _, row := range columnRows {
		col := columnFromRow(row)
		tbl.Columns[col.Name] = col
	}
}

// Keyspace returns the keyspace named name, as observed from host.
func (s *Schema) Keyspace(host, name string) (*Keyspace, bool) {
	s.RLock()
	defer s.RUnlock()
	tree, ok := s.byHost[host]
	if !ok {
		return nil, false
	}
	ks, ok := tree[name]
	return ks, ok
}

func applyTables(tree map[string]*Keyspace, rows []map[string]any) {
	for _, row := range rows {
		ksName := stringField(row, "keyspace_name")
		ks, ok := tree[ksName]
		if !ok {
			continue
		}
		tbl := newTable(stringField(row, "columnfamily_name"))
		ks.Tables[tbl.Name] = tbl
	}
}

func applyColumns(tree map[string]*Keyspace, rows []map[string]any) {
	for _, row := range rows {
		ksName := stringField(row, "keyspace_name")
		ks, ok := tree[ksName]
		if !ok {
			continue
		}
		tblName := stringField(row, "columnfamily_name")
		tbl, ok := ks.Tables[tblName]
		if !ok {
			continue
		}
		col := columnFromRow(row)
		tbl.Columns[col.Name] = col
	}
}

func keyspaceFromRow(row map[string]any) *Keyspace {
	ks := newKeyspace(stringField(row, "keyspace_name"))
	if dw, ok := row["durable_writes"].(bool); ok {
		ks.DurableWrites = dw
	}
	return ks
}

func columnFromRow(row map[string]any) Column {
	return Column{
		Name: stringField(row, "column_name"),
		Type: stringField(row, "validator"),
		Kind: stringField(row, "type"),
	}
}

func stringField(row map[string]any, key string) string {
	v, _ := row[key].(string)
	return v
}
