// Package introspect reads table and column metadata from a PostgreSQL
// information_schema.
package introspect

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"

	"github.com/poki/predicate-filter-to-sql/internal/schema"
)

// Querier is the part of *pgxpool.Pool, *pgx.Conn and pgx.Tx that is needed.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
}

const columnsQuery = `
SELECT
	c.table_schema::text AS table_schema,
	c.table_name::text AS table_name,
	c.column_name::text AS column_name,
	c.ordinal_position::int AS ordinal_position,
	c.udt_name::text AS udt_name,
	c.is_nullable = 'YES' AS nullable,
	EXISTS (
		SELECT 1
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS k
			ON k.constraint_name = tc.constraint_name
			AND k.table_schema = tc.table_schema
			AND k.table_name = tc.table_name
		WHERE tc.constraint_type = 'PRIMARY KEY'
			AND k.table_schema = c.table_schema
			AND k.table_name = c.table_name
			AND k.column_name = c.column_name
	) AS primary_key,
	EXISTS (
		SELECT 1
		FROM information_schema.table_constraints AS tc
		JOIN information_schema.key_column_usage AS k
			ON k.constraint_name = tc.constraint_name
			AND k.table_schema = tc.table_schema
			AND k.table_name = tc.table_name
		WHERE tc.constraint_type = 'FOREIGN KEY'
			AND k.table_schema = c.table_schema
			AND k.table_name = c.table_name
			AND k.column_name = c.column_name
	) AS foreign_key
FROM information_schema.columns AS c
JOIN information_schema.tables AS t
	ON t.table_schema = c.table_schema
	AND t.table_name = c.table_name
WHERE t.table_type = 'BASE TABLE'
	AND c.table_schema = ANY($1::text[])
ORDER BY c.table_schema, c.table_name, c.ordinal_position`

type columnRow struct {
	TableSchema     string `db:"table_schema"`
	TableName       string `db:"table_name"`
	ColumnName      string `db:"column_name"`
	OrdinalPosition int    `db:"ordinal_position"`
	UDTName         string `db:"udt_name"`
	Nullable        bool   `db:"nullable"`
	PrimaryKey      bool   `db:"primary_key"`
	ForeignKey      bool   `db:"foreign_key"`
}

// Options narrows what Tables returns.
type Options struct {
	// Schemas to read. Defaults to public.
	Schemas []string
	// Tables to keep, by bare or schema-qualified name. Empty keeps all.
	Tables []string
	Logger *slog.Logger
}

// Tables returns the base tables of the given schemas with their columns in
// ordinal order.
func Tables(ctx context.Context, db Querier, opts Options) ([]schema.Table, error) {
	schemas := opts.Schemas
	if len(schemas) == 0 {
		schemas = []string{"public"}
	}
	logger := opts.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	rows, err := db.Query(ctx, columnsQuery, schemas)
	if err != nil {
		return nil, fmt.Errorf("querying information_schema: %w", err)
	}
	cols, err := pgx.CollectRows(rows, pgx.RowToStructByName[columnRow])
	if err != nil {
		return nil, fmt.Errorf("reading information_schema: %w", err)
	}
	logger.Debug("read columns", slog.Int("columns", len(cols)), slog.Any("schemas", schemas))

	return schema.Filter(group(cols), opts.Tables), nil
}

// group folds rows ordered by schema, table and ordinal into tables.
func group(rows []columnRow) []schema.Table {
	var tables []schema.Table
	for _, r := range rows {
		n := len(tables)
		if n == 0 || tables[n-1].Schema != r.TableSchema || tables[n-1].Name != r.TableName {
			tables = append(tables, schema.Table{Schema: r.TableSchema, Name: r.TableName})
			n++
		}
		tables[n-1].Columns = append(tables[n-1].Columns, schema.Column{
			Name:       r.ColumnName,
			Ordinal:    r.OrdinalPosition,
			UDT:        r.UDTName,
			Nullable:   r.Nullable,
			PrimaryKey: r.PrimaryKey,
			ForeignKey: r.ForeignKey,
		})
	}
	return tables
}
