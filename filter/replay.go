package filter

import (
	"errors"
	"log/slog"
)

// Result is the outcome of a converged Replay.
type Result struct {
	// Conditions recorded by the pass that returned true, in call order.
	Conditions []Condition
	// Attempts is the number of predicate passes that were run.
	Attempts int
	// Slots holds the final value of every decision slot.
	Slots []bool
}

// Replay runs pred against fresh proxies of e until it returns true and returns
// the conditions recorded on that pass.
//
// Every comparison on a proxy field consumes a slot. A new slot starts out
// true; when a pass returns false, only the most recently created slot is
// negated and the predicate is run again. There is no search over the other
// slots, so predicates whose false branches are not adjacent may never
// converge; after the configured number of attempts (DefaultMaxAttempts unless
// WithMaxAttempts is given) Replay returns a *MalformedPredicateError.
func Replay[P any](e *Entity[P], pred func(P) bool, options ...Option) (*Result, error) {
	if pred == nil {
		return nil, ErrNilPredicate
	}
	if e == nil {
		return nil, errors.New("filter: entity is nil")
	}
	c := newConfig(options)

	state := &FilterState{}
	for attempt := 1; ; attempt++ {
		ok := pred(e.Proxy(state))
		c.logger.Debug("predicate pass",
			slog.String("table", e.table),
			slog.Int("attempt", attempt),
			slog.Bool("result", ok),
			slog.Int("slots", len(state.slots)),
			slog.Int("conditions", len(state.conditions)),
		)
		if ok {
			return &Result{
				Conditions: state.Conditions(),
				Attempts:   attempt,
				Slots:      state.Slots(),
			}, nil
		}
		if attempt >= c.maxAttempts || !state.flipLast() {
			return nil, &MalformedPredicateError{Table: e.table, Attempts: attempt, Slots: len(state.slots)}
		}
		state.restart()
	}
}
