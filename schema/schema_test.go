package schema_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/nimbusdb/control-go/schema"
)

func TestSchema_UpdateKeyspaces(t *testing.T) {
	s := schema.New()
	keyspaceRows := []map[string]any{{"keyspace_name": "ks1", "durable_writes": true}}
	tableRows := []map[string]any{{"keyspace_name": "ks1", "columnfamily_name": "t1"}}
	columnRows := []map[string]any{{"keyspace_name": "ks1", "columnfamily_name": "t1", "column_name": "id", "validator": "uuid", "type": "partition_key"}}

	s.UpdateKeyspaces("10.0.0.1", keyspaceRows, tableRows, columnRows)

	ks, ok := s.Keyspace("10.0.0.1", "ks1")
	require.True(t, ok)
	require.True(t, ks.DurableWrites)
	require.Contains(t, ks.Tables, "t1")
	require.Contains(t, ks.Tables["t1"].Columns, "id")
}

func TestSchema_UpdateTable_DropsWhenKeyspaceMissing(t *testing.T) {
	s := schema.New()
	s.UpdateTable("10.0.0.1", "missing", map[string]any{"columnfamily_name": "t1"}, nil)
	_, ok := s.Keyspace("10.0.0.1", "missing")
	require.False(t, ok)
}

func TestSchema_UpdateKeyspace(t *testing.T) {
	s := schema.New()
	s.UpdateKeyspace("10.0.0.1", map[string]any{"keyspace_name": "ks1"}, nil, nil)
	ks, ok := s.Keyspace("10.0.0.1", "ks1")
	require.True(t, ok)
	require.Empty(t, ks.Tables)
}
