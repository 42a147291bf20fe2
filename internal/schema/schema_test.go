package schema_test

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/poki/predicate-filter-to-sql/internal/schema"
)

var tables = []schema.Table{
	{
		Schema: "public",
		Name:   "orders",
		Columns: []schema.Column{
			{Name: "id", Ordinal: 1, UDT: "int4", PrimaryKey: true},
			{Name: "customer_id", Ordinal: 2, UDT: "int4", ForeignKey: true},
			{Name: "note", Ordinal: 3, UDT: "text", Nullable: true},
		},
	},
	{
		Schema:  "billing",
		Name:    "invoices",
		Columns: []schema.Column{{Name: "id", Ordinal: 1, UDT: "uuid", PrimaryKey: true}},
	},
}

func TestYAMLRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, schema.WriteYAML(&buf, tables))

	assert.True(t, strings.HasPrefix(buf.String(), "tables:\n"), buf.String())
	assert.Contains(t, buf.String(), "primary_key: true")
	assert.NotContains(t, buf.String(), "nullable: false")

	got, err := schema.ReadYAML(&buf)
	require.NoError(t, err)
	assert.Equal(t, tables, got)
}

func TestReadYAMLErrors(t *testing.T) {
	_, err := schema.ReadYAML(strings.NewReader("tables:\n  - schema: public\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "table without a name")

	_, err = schema.ReadYAML(strings.NewReader("tables: ["))
	require.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schema.yaml")
	var buf bytes.Buffer
	require.NoError(t, schema.WriteYAML(&buf, tables))
	require.NoError(t, os.WriteFile(path, buf.Bytes(), 0o644))

	got, err := schema.LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, tables, got)

	_, err = schema.LoadFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestTableNames(t *testing.T) {
	assert.Equal(t, "public.orders", tables[0].QualifiedName())
	assert.Equal(t, "orders", schema.Table{Name: "orders"}.QualifiedName())
	assert.Equal(t, []string{"id", "customer_id", "note"}, tables[0].ColumnNames())
}

func TestFilter(t *testing.T) {
	assert.Equal(t, tables, schema.Filter(tables, nil))
	assert.Equal(t, tables[:1], schema.Filter(tables, []string{"orders"}))
	assert.Equal(t, tables[1:], schema.Filter(tables, []string{"billing.invoices"}))
	assert.Empty(t, schema.Filter(tables, []string{"public.invoices"}))
}
