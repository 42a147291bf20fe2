package query

import "github.com/poki/predicate-filter-to-sql/filter"

type config struct {
	terminator       bool
	quoteIdentifiers bool
	quoteLiterals    bool
	replayOptions    []filter.Option
}

func newConfig(options []Option) config {
	var c config
	for _, option := range options {
		if option.f != nil {
			option.f(&c)
		}
	}
	return c
}

type Option struct {
	f func(*config)
}

// WithTerminator ends every rendered statement with a semicolon.
func WithTerminator() Option {
	return Option{
		f: func(c *config) {
			c.terminator = true
		},
	}
}

// WithQuotedIdentifiers renders table and column names as quoted PostgreSQL
// identifiers (e.g. "order"), which is needed for reserved words.
func WithQuotedIdentifiers() Option {
	return Option{
		f: func(c *config) {
			c.quoteIdentifiers = true
		},
	}
}

// WithQuotedLiterals renders textual literals as SQL string constants
// (e.g. 'John', with embedded quotes doubled). Without it literals are written
// as is, which is the canonical form used by Condition.String.
func WithQuotedLiterals() Option {
	return Option{
		f: func(c *config) {
			c.quoteLiterals = true
		},
	}
}

// WithReplayOptions passes options to filter.Replay for every Filter call.
func WithReplayOptions(options ...filter.Option) Option {
	return Option{
		f: func(c *config) {
			c.replayOptions = append(c.replayOptions, options...)
		},
	}
}
