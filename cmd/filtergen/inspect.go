package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/poki/predicate-filter-to-sql/internal/cli"
	"github.com/poki/predicate-filter-to-sql/internal/schema"
)

// NewInspectCommand creates the inspect command.
func NewInspectCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		src    sourceFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "inspect",
		Short: "Print the tables and columns filtergen sees",
		Long: `Print the tables and columns filtergen sees.

The yaml format is a schema snapshot that generate accepts with --from.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			tables, err := src.load(cmd.Context(), rootOpts, "")
			if err != nil {
				return err
			}

			w := cmd.OutOrStdout()
			switch f := resolveString(format, rootOpts.Config.Inspect.Format, "yaml"); f {
			case "yaml":
				if err := schema.WriteYAML(w, tables); err != nil {
					return cli.GeneralError("writing yaml", err)
				}
			case "text":
				writeText(w, tables)
			default:
				return cli.ConfigError(fmt.Sprintf("unknown format %q", f), fmt.Errorf("supported formats: yaml, text"))
			}
			return nil
		},
	}

	src.register(cmd)
	cmd.Flags().StringVar(&format, "format", "", "output format: yaml, text (default: yaml)")

	return cmd
}

func writeText(w io.Writer, tables []schema.Table) {
	for _, t := range tables {
		fmt.Fprintln(w, t.QualifiedName())
		for _, c := range t.Columns {
			var flags []string
			if c.PrimaryKey {
				flags = append(flags, "pk")
			}
			if c.ForeignKey {
				flags = append(flags, "fk")
			}
			if c.Nullable {
				flags = append(flags, "null")
			}
			line := fmt.Sprintf("  %s %s", c.Name, c.UDT)
			if len(flags) > 0 {
				line += " (" + strings.Join(flags, ", ") + ")"
			}
			fmt.Fprintln(w, line)
		}
	}
}
