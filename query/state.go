package query

import "github.com/poki/predicate-filter-to-sql/filter"

// Direction is the sort direction of an ORDER BY term.
type Direction string

const (
	Asc  Direction = "ASC"
	Desc Direction = "DESC"
)

// OrderTerm is one column of an ORDER BY clause.
type OrderTerm struct {
	Column    string
	Direction Direction
}

// State is everything needed to render one statement.
type State struct {
	Command Command
	Table   string
	// Columns selected; empty renders as *.
	Columns []string
	// Where holds the conditions, joined with AND when rendered.
	Where  []filter.Expr
	Order  []OrderTerm
	Limit  *int64
	Offset *int64
}

// NewState returns a SELECT of columns from table.
func NewState(table string, columns []string) *State {
	return &State{
		Command: Select,
		Table:   table,
		Columns: append([]string(nil), columns...),
	}
}

// SetLimit sets the LIMIT.
func (s *State) SetLimit(n int64) {
	s.Limit = &n
}

// SetOffset sets the OFFSET.
func (s *State) SetOffset(n int64) {
	s.Offset = &n
}

// IsMany reports whether the query can return more than one row.
func (s *State) IsMany() bool {
	if s.Limit == nil {
		return true
	}
	return *s.Limit > 1
}

// Clone returns a deep copy of s.
func (s *State) Clone() *State {
	c := *s
	c.Columns = append([]string(nil), s.Columns...)
	c.Where = append([]filter.Expr(nil), s.Where...)
	c.Order = append([]OrderTerm(nil), s.Order...)
	if s.Limit != nil {
		n := *s.Limit
		c.Limit = &n
	}
	if s.Offset != nil {
		n := *s.Offset
		c.Offset = &n
	}
	return &c
}
