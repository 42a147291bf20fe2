package query

import (
	"fmt"

	"github.com/poki/predicate-filter-to-sql/filter"
)

// QuerySet is a query over the entity P. Every method returns a new QuerySet
// and leaves the receiver untouched, so a QuerySet can be shared and extended
// from several places.
type QuerySet[P any] struct {
	entity   *filter.Entity[P]
	state    *State
	renderer *Renderer
	replay   []filter.Option
}

// From starts a SELECT of every column of e.
func From[P any](e *filter.Entity[P], options ...Option) *QuerySet[P] {
	c := newConfig(options)
	return &QuerySet[P]{
		entity:   e,
		state:    NewState(e.Table(), e.Columns()),
		renderer: newRenderer(c),
		replay:   c.replayOptions,
	}
}

func (q *QuerySet[P]) clone() *QuerySet[P] {
	n := *q
	n.state = q.state.Clone()
	return &n
}

// Filter replays pred and appends the resulting conditions. Conditions from
// successive Filter calls are joined with AND.
func (q *QuerySet[P]) Filter(pred func(P) bool) (*QuerySet[P], error) {
	res, err := filter.Replay(q.entity, pred, q.replay...)
	if err != nil {
		return nil, fmt.Errorf("filter %s: %w", q.entity.Table(), err)
	}
	n := q.clone()
	for _, c := range res.Conditions {
		n.state.Where = append(n.state.Where, c)
	}
	return n, nil
}

// Where appends explicit expressions built with filter.Col, filter.And,
// filter.Or and filter.Not. Nil expressions are ignored; a group without
// members returns ErrEmptyGroup.
func (q *QuerySet[P]) Where(exprs ...filter.Expr) (*QuerySet[P], error) {
	n := q.clone()
	for _, e := range exprs {
		if e == nil {
			continue
		}
		if err := q.checkColumns(e); err != nil {
			return nil, err
		}
		n.state.Where = append(n.state.Where, e)
	}
	return n, nil
}

func (q *QuerySet[P]) checkColumns(e filter.Expr) error {
	switch e := e.(type) {
	case filter.Condition:
		return q.checkColumn(e.Column)
	case filter.Group:
		if len(e.Exprs) == 0 {
			return ErrEmptyGroup
		}
		for _, m := range e.Exprs {
			if err := q.checkColumns(m); err != nil {
				return err
			}
		}
	case filter.Negation:
		return q.checkColumns(e.Expr)
	}
	return nil
}

func (q *QuerySet[P]) checkColumn(column string) error {
	if !q.entity.HasColumn(column) {
		return &filter.UnknownColumnError{Table: q.entity.Table(), Column: column}
	}
	return nil
}

// Select narrows the selected columns. With no columns it selects *.
func (q *QuerySet[P]) Select(columns ...string) (*QuerySet[P], error) {
	for _, c := range columns {
		if err := q.checkColumn(c); err != nil {
			return nil, err
		}
	}
	n := q.clone()
	n.state.Command = Select
	n.state.Columns = append([]string(nil), columns...)
	return n, nil
}

// OrderBy appends an ORDER BY term.
func (q *QuerySet[P]) OrderBy(column string, direction Direction) (*QuerySet[P], error) {
	if err := q.checkColumn(column); err != nil {
		return nil, err
	}
	if direction != Asc && direction != Desc {
		return nil, &InvalidOrderDirectionError{Field: column, Value: direction}
	}
	n := q.clone()
	n.state.Order = append(n.state.Order, OrderTerm{Column: column, Direction: direction})
	return n, nil
}

// Limit sets the LIMIT. Negative values make rendering fail.
func (q *QuerySet[P]) Limit(limit int64) *QuerySet[P] {
	n := q.clone()
	n.state.SetLimit(limit)
	return n
}

// Offset sets the OFFSET. Negative values make rendering fail.
func (q *QuerySet[P]) Offset(offset int64) *QuerySet[P] {
	n := q.clone()
	n.state.SetOffset(offset)
	return n
}

// Delete turns the query into a DELETE with the same conditions.
func (q *QuerySet[P]) Delete() *QuerySet[P] {
	return q.command(Delete)
}

// Insert switches to INSERT. Rendering it fails with *UnsupportedCommandError.
func (q *QuerySet[P]) Insert() *QuerySet[P] {
	return q.command(Insert)
}

// Update switches to UPDATE. Rendering it fails with *UnsupportedCommandError.
func (q *QuerySet[P]) Update() *QuerySet[P] {
	return q.command(Update)
}

func (q *QuerySet[P]) command(c Command) *QuerySet[P] {
	n := q.clone()
	n.state.Command = c
	return n
}

// IsMany reports whether the query can return more than one row.
func (q *QuerySet[P]) IsMany() bool {
	return q.state.IsMany()
}

// State returns a copy of the underlying state.
func (q *QuerySet[P]) State() *State {
	return q.state.Clone()
}

// SQL renders the query with literals inlined.
func (q *QuerySet[P]) SQL() (string, error) {
	return q.renderer.Render(q.state)
}

// Build renders the query with $n placeholders starting at
// startAtParameterIndex and returns the values to bind.
func (q *QuerySet[P]) Build(startAtParameterIndex int) (string, []any, error) {
	return q.renderer.Build(q.state, startAtParameterIndex)
}

// String renders the query, or returns an empty string when it cannot be
// rendered. Use SQL to get the error.
func (q *QuerySet[P]) String() string {
	s, err := q.SQL()
	if err != nil {
		return ""
	}
	return s
}
