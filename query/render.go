package query

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/jackc/pgx/v5"

	"github.com/poki/predicate-filter-to-sql/filter"
)

// Renderer turns a State into SQL text. The zero value renders the canonical
// form: nothing quoted and no trailing semicolon.
type Renderer struct {
	terminator       bool
	quoteIdentifiers bool
	quoteLiterals    bool
}

// NewRenderer creates a Renderer. Only the rendering options (WithTerminator,
// WithQuotedIdentifiers, WithQuotedLiterals) have an effect.
func NewRenderer(options ...Option) *Renderer {
	return newRenderer(newConfig(options))
}

func newRenderer(c config) *Renderer {
	return &Renderer{
		terminator:       c.terminator,
		quoteIdentifiers: c.quoteIdentifiers,
		quoteLiterals:    c.quoteLiterals,
	}
}

// Render renders s with every literal inlined.
func (r *Renderer) Render(s *State) (string, error) {
	w := &writer{r: r}
	if err := w.statement(s); err != nil {
		return "", err
	}
	return w.sb.String(), nil
}

// Build renders s with every literal replaced by a $n placeholder, counting
// from startAtParameterIndex, and returns the values to bind in order.
func (r *Renderer) Build(s *State, startAtParameterIndex int) (string, []any, error) {
	if startAtParameterIndex < 1 {
		startAtParameterIndex = 1
	}
	w := &writer{r: r, params: true, next: startAtParameterIndex}
	if err := w.statement(s); err != nil {
		return "", nil, err
	}
	return w.sb.String(), w.args, nil
}

type writer struct {
	r      *Renderer
	sb     strings.Builder
	params bool
	next   int
	args   []any
}

func (w *writer) statement(s *State) error {
	switch s.Command {
	case Select:
		w.sb.WriteString("SELECT ")
		if len(s.Columns) == 0 {
			w.sb.WriteString("*")
		} else {
			for i, c := range s.Columns {
				if i > 0 {
					w.sb.WriteString(", ")
				}
				w.sb.WriteString(w.ident(c))
			}
		}
		w.sb.WriteString(" FROM ")
	case Delete:
		w.sb.WriteString("DELETE FROM ")
	default:
		return &UnsupportedCommandError{Command: s.Command}
	}
	w.sb.WriteString(w.table(s.Table))

	if len(s.Where) > 0 {
		w.sb.WriteString(" WHERE ")
		for i, e := range s.Where {
			if i > 0 {
				w.sb.WriteString(" AND ")
			}
			if err := w.expr(e); err != nil {
				return err
			}
		}
	}

	if len(s.Order) > 0 {
		w.sb.WriteString(" ORDER BY ")
		for i, o := range s.Order {
			if i > 0 {
				w.sb.WriteString(", ")
			}
			w.sb.WriteString(w.ident(o.Column))
			w.sb.WriteString(" ")
			w.sb.WriteString(string(o.Direction))
		}
	}

	if s.Limit != nil && *s.Limit < 0 {
		return &InvalidLimitError{Clause: "LIMIT", Value: *s.Limit}
	}
	if s.Offset != nil && *s.Offset < 0 {
		return &InvalidLimitError{Clause: "OFFSET", Value: *s.Offset}
	}
	if s.Limit != nil {
		fmt.Fprintf(&w.sb, " LIMIT %d", *s.Limit)
	}
	if s.Offset != nil {
		fmt.Fprintf(&w.sb, " OFFSET %d", *s.Offset)
	}
	if w.r.terminator {
		w.sb.WriteString(";")
	}
	return nil
}

func (w *writer) expr(e filter.Expr) error {
	switch e := e.(type) {
	case filter.Condition:
		w.sb.WriteString(w.ident(e.Column))
		w.sb.WriteString(" ")
		w.sb.WriteString(e.Op.SQL())
		w.sb.WriteString(" ")
		w.literal(e)
	case filter.Group:
		if len(e.Exprs) == 0 {
			return ErrEmptyGroup
		}
		w.sb.WriteString("(")
		for i, m := range e.Exprs {
			if i > 0 {
				w.sb.WriteString(" " + e.Conj.String() + " ")
			}
			if err := w.expr(m); err != nil {
				return err
			}
		}
		w.sb.WriteString(")")
	case filter.Negation:
		w.sb.WriteString("NOT ")
		_, grouped := e.Expr.(filter.Group)
		if !grouped {
			w.sb.WriteString("(")
		}
		if err := w.expr(e.Expr); err != nil {
			return err
		}
		if !grouped {
			w.sb.WriteString(")")
		}
	default:
		return fmt.Errorf("query: unsupported expression %T", e)
	}
	return nil
}

func (w *writer) literal(c filter.Condition) {
	switch {
	case w.params:
		w.args = append(w.args, argValue(c))
		w.sb.WriteString("$" + strconv.Itoa(w.next))
		w.next++
	case w.r.quoteLiterals && (c.Text || nonFinite(c.Literal)):
		w.sb.WriteString("'" + strings.ReplaceAll(c.Literal, "'", "''") + "'")
	default:
		w.sb.WriteString(c.Literal)
	}
}

// argValue converts a non-textual literal back to a typed value so drivers can
// encode it for numeric and boolean columns.
func argValue(c filter.Condition) any {
	if c.Text {
		return c.Literal
	}
	if i, err := strconv.ParseInt(c.Literal, 10, 64); err == nil {
		return i
	}
	if u, err := strconv.ParseUint(c.Literal, 10, 64); err == nil {
		return u
	}
	if f, err := strconv.ParseFloat(c.Literal, 64); err == nil {
		return f
	}
	if b, err := strconv.ParseBool(c.Literal); err == nil {
		return b
	}
	return c.Literal
}

// nonFinite reports whether a numeric literal is one of the special float
// values, which PostgreSQL only accepts as string constants.
func nonFinite(lit string) bool {
	return lit == "NaN" || lit == "Infinity" || lit == "-Infinity"
}

func (w *writer) ident(name string) string {
	if !w.r.quoteIdentifiers {
		return name
	}
	return pgx.Identifier{name}.Sanitize()
}

func (w *writer) table(name string) string {
	if !w.r.quoteIdentifiers {
		return name
	}
	return pgx.Identifier(strings.Split(name, ".")).Sanitize()
}
