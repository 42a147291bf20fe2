package main

import (
	"bytes"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/poki/predicate-filter-to-sql/internal/cli"
	"github.com/poki/predicate-filter-to-sql/internal/codegen"
)

// NewGenerateCommand creates the generate command.
func NewGenerateCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		src     sourceFlags
		output  string
		pkg     string
		qualify bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate Go filter proxies for tables",
		Example: `  # Generate from a live database to stdout
  filtergen generate --db postgres://localhost/shop

  # Generate two tables into a file
  filtergen generate --db postgres://localhost/shop --table orders --table customers --output internal/models/entities.go

  # Generate from a schema snapshot
  filtergen generate --from schema.yaml --package entities`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := rootOpts.Config

			tables, err := src.load(cmd.Context(), rootOpts, cfg.Generate.From)
			if err != nil {
				return err
			}
			if len(tables) == 0 {
				return cli.GeneralError("no tables found", nil)
			}

			genCfg := codegen.Config{
				Package: resolveString(pkg, cfg.Generate.Package, codegen.DefaultConfig().Package),
				Qualify: resolveBool(qualify, cfg.Generate.Qualify),
			}
			var buf bytes.Buffer
			if err := codegen.Generate(&buf, tables, genCfg); err != nil {
				return cli.GeneralError("generation failed", err)
			}

			out := resolveString(output, cfg.Generate.Output)
			if out == "" {
				if _, err := cmd.OutOrStdout().Write(buf.Bytes()); err != nil {
					return cli.GeneralError("writing to stdout", err)
				}
				return nil
			}

			if err := os.MkdirAll(filepath.Dir(out), 0o755); err != nil {
				return cli.GeneralError("creating output directory", err)
			}
			if err := os.WriteFile(out, buf.Bytes(), 0o644); err != nil {
				return cli.GeneralError(fmt.Sprintf("writing %s", out), err)
			}
			rootOpts.Logger.Info("generated", slog.String("path", out), slog.Int("tables", len(tables)))
			return nil
		},
	}

	src.register(cmd)
	f := cmd.Flags()
	f.StringVar(&output, "output", "", "output file (default: stdout)")
	f.StringVar(&pkg, "package", "", "package name (default: models)")
	f.BoolVar(&qualify, "qualify", false, "register entities with schema-qualified table names")

	return cmd
}
