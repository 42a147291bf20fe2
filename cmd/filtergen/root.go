package main

import (
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/poki/predicate-filter-to-sql/internal/cli"
)

// RootOptions holds global flags and the state loaded before a command runs.
type RootOptions struct {
	ConfigFile string
	Verbose    int

	Config     *cli.Config
	ConfigPath string
	Logger     *slog.Logger
}

// NewRootCommand creates the root command for filtergen.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "filtergen",
		Short: "Generate predicate filter proxies for PostgreSQL tables",
		Long: `filtergen - predicate filters for PostgreSQL

filtergen reads table metadata from a database and writes the Go proxy
structs and entity registrations used to build WHERE clauses from predicates.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level := slog.LevelInfo
			if opts.Verbose > 0 {
				level = slog.LevelDebug
			}
			opts.Logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			// Skip config loading for help/completion/version commands
			if cmd.Name() == "help" || cmd.Name() == "completion" || cmd.Name() == "version" {
				return nil
			}

			var err error
			opts.Config, opts.ConfigPath, err = cli.LoadConfig(opts.ConfigFile)
			if err != nil {
				return cli.ConfigError("loading configuration", err)
			}
			if opts.ConfigPath != "" {
				opts.Logger.Debug("loaded config", slog.String("path", opts.ConfigPath))
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.ConfigFile, "config", "", "config file (default: auto-discover filtergen.yaml)")
	cmd.PersistentFlags().CountVarP(&opts.Verbose, "verbose", "v", "increase verbosity")

	cmd.AddCommand(NewGenerateCommand(opts))
	cmd.AddCommand(NewInspectCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewVersionCommand())

	return cmd
}

// resolveString returns the first non-empty string from the provided values.
// Used to implement precedence: flag > config > default.
func resolveString(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}

// resolveStrings returns the first non-empty slice.
func resolveStrings(values ...[]string) []string {
	for _, v := range values {
		if len(v) > 0 {
			return v
		}
	}
	return nil
}

// resolveBool returns true if any of the provided values is true.
func resolveBool(values ...bool) bool {
	for _, v := range values {
		if v {
			return true
		}
	}
	return false
}
