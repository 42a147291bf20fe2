package filter

import "log/slog"

// DefaultMaxAttempts is the replay ceiling used when WithMaxAttempts is not set.
const DefaultMaxAttempts = 64

type config struct {
	maxAttempts int
	logger      *slog.Logger
}

func newConfig(options []Option) *config {
	c := &config{
		maxAttempts: DefaultMaxAttempts,
		logger:      slog.New(slog.DiscardHandler),
	}
	for _, option := range options {
		if option.f != nil {
			option.f(c)
		}
	}
	return c
}

type Option struct {
	f func(*config)
}

// WithMaxAttempts sets how many predicate passes Replay may run before it gives
// up with a *MalformedPredicateError. Values below 1 are ignored.
func WithMaxAttempts(n int) Option {
	return Option{
		f: func(c *config) {
			if n > 0 {
				c.maxAttempts = n
			}
		},
	}
}

// WithLogger makes Replay log every predicate pass at debug level.
func WithLogger(logger *slog.Logger) Option {
	return Option{
		f: func(c *config) {
			if logger != nil {
				c.logger = logger
			}
		},
	}
}
