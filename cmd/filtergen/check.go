package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/poki/predicate-filter-to-sql/internal/cli"
	"github.com/poki/predicate-filter-to-sql/internal/sqlcheck"
)

// NewCheckCommand creates the check command.
func NewCheckCommand(rootOpts *RootOptions) *cobra.Command {
	var (
		file        string
		fingerprint bool
	)

	cmd := &cobra.Command{
		Use:   "check [sql...]",
		Short: "Check SQL statements with the PostgreSQL parser",
		Example: `  filtergen check "SELECT id FROM users WHERE id != 4 LIMIT 1 OFFSET 0"
  filtergen check --file query.sql --fingerprint`,
		RunE: func(cmd *cobra.Command, args []string) error {
			stmts := args
			if file != "" {
				b, err := os.ReadFile(file)
				if err != nil {
					return cli.GeneralError(fmt.Sprintf("reading %s", file), err)
				}
				stmts = append(stmts, string(b))
			}
			if len(stmts) == 0 {
				return cli.ConfigError("no statements given", fmt.Errorf("pass SQL as arguments or use --file"))
			}

			withFingerprint := resolveBool(fingerprint, rootOpts.Config.Check.Fingerprint)
			w := cmd.OutOrStdout()
			for _, sql := range stmts {
				kind, err := sqlcheck.Parse(sql)
				if err != nil {
					return cli.InvalidSQLError("checking statement", err)
				}
				if !withFingerprint {
					fmt.Fprintln(w, kind)
					continue
				}
				fp, err := sqlcheck.Fingerprint(sql)
				if err != nil {
					return cli.InvalidSQLError("fingerprinting statement", err)
				}
				fmt.Fprintf(w, "%s %s\n", kind, fp)
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&file, "file", "", "read one statement from a file")
	f.BoolVar(&fingerprint, "fingerprint", false, "print the query fingerprint")

	return cmd
}
