// Package query holds the state of a query over one entity and renders it to
// SQL.
//
// A QuerySet is built from a filter.Entity, narrowed with Filter (predicate
// replay) or Where (explicit expressions), and rendered with SQL or Build:
//
//	qs, err := query.From(Orders).Filter(func(o OrderProxy) bool {
//		return !o.Name.Contains("test") && o.ID.NotEq(2)
//	})
//	if err != nil {
//		// handle error
//	}
//	sql, err := qs.Limit(10).SQL()
//
// Conditions at the top level are always joined with AND. Use filter.Or to get
// an OR group as a single condition.
package query
