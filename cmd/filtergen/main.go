// Command filtergen generates filter proxies from a PostgreSQL schema and
// checks rendered SQL with the PostgreSQL parser.
//
// Usage:
//
//	filtergen [flags] <command>
//
// Commands that read a live schema (generate, inspect) need --db, a
// database section in filtergen.yaml, or FILTERGEN_DATABASE_URL. Both also
// accept --from with a YAML document written by inspect.
package main

import (
	"context"

	"github.com/poki/predicate-filter-to-sql/internal/cli"
)

func main() {
	if err := NewRootCommand().ExecuteContext(context.Background()); err != nil {
		cli.ExitWithError(err)
	}
}
