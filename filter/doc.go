// Package filter turns a plain Go predicate over typed proxy fields into SQL WHERE
// conditions.
//
// Go cannot overload && and ||, so a predicate such as
//
//	func(o OrderProxy) bool {
//		return !o.Name.Contains("test") && o.ID.NotEq(2)
//	}
//
// only reaches the second comparison when the first one returned true. Replay
// runs the predicate again, flipping the most recently recorded decision, until
// the predicate returns true. The conditions recorded on that last pass are the
// filter.
//
// The explicit combinators (And, Or, Not, Col) build the same conditions
// without replaying anything, and can express OR.
package filter
