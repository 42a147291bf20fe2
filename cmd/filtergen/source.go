package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/spf13/cobra"

	"github.com/poki/predicate-filter-to-sql/internal/cli"
	"github.com/poki/predicate-filter-to-sql/internal/introspect"
	"github.com/poki/predicate-filter-to-sql/internal/schema"
)

// sourceFlags selects where table metadata comes from.
type sourceFlags struct {
	db      string
	from    string
	schemas []string
	tables  []string
}

func (s *sourceFlags) register(cmd *cobra.Command) {
	f := cmd.Flags()
	f.StringVar(&s.db, "db", "", "database URL (default: from config)")
	f.StringVar(&s.from, "from", "", "read tables from a YAML file written by inspect instead of a database")
	f.StringSliceVar(&s.schemas, "schema", nil, "schemas to read (default: public)")
	f.StringSliceVar(&s.tables, "table", nil, "tables to keep, bare or schema-qualified (default: all)")
}

// load returns the selected tables. fromConfig is the config fallback for
// --from.
func (s *sourceFlags) load(ctx context.Context, opts *RootOptions, fromConfig string) ([]schema.Table, error) {
	cfg := opts.Config
	tables := resolveStrings(s.tables, cfg.Tables)

	if from := resolveString(s.from, fromConfig); from != "" {
		opts.Logger.Debug("reading tables from file", slog.String("path", from))
		all, err := schema.LoadFile(from)
		if err != nil {
			return nil, cli.SchemaParseError(fmt.Sprintf("reading %s", from), err)
		}
		return schema.Filter(all, tables), nil
	}

	dsn := s.db
	if dsn == "" {
		var err error
		if dsn, err = cfg.DSN(); err != nil {
			return nil, cli.ConfigError("--db or --from is required", err)
		}
	}

	conn, err := pgx.Connect(ctx, dsn)
	if err != nil {
		return nil, cli.DBConnectError("connecting to database", err)
	}
	defer func() { _ = conn.Close(ctx) }()

	result, err := introspect.Tables(ctx, conn, introspect.Options{
		Schemas: resolveStrings(s.schemas, cfg.Schemas),
		Tables:  tables,
		Logger:  opts.Logger,
	})
	if err != nil {
		return nil, cli.GeneralError("reading schema", err)
	}
	return result, nil
}
