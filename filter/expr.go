package filter

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Expr is a boolean SQL expression. It is sealed: the only implementations are
// Condition, Group and Negation, so renderers can switch over them exhaustively.
type Expr interface {
	isExpr()
}

// Conj is the connective joining the members of a Group.
type Conj uint8

const (
	AndConj Conj = iota + 1
	OrConj
)

func (c Conj) String() string {
	if c == OrConj {
		return "OR"
	}
	return "AND"
}

// Group is a parenthesized AND/OR of expressions.
type Group struct {
	Conj  Conj
	Exprs []Expr
}

func (Group) isExpr() {}

func (g Group) String() string {
	parts := make([]string, len(g.Exprs))
	for i, e := range g.Exprs {
		parts[i] = exprString(e)
	}
	return "(" + strings.Join(parts, " "+g.Conj.String()+" ") + ")"
}

// Negation is NOT applied to a group.
type Negation struct {
	Expr Expr
}

func (Negation) isExpr() {}

func (n Negation) String() string {
	return "NOT " + exprString(n.Expr)
}

func exprString(e Expr) string {
	switch e := e.(type) {
	case Condition:
		return e.String()
	case Group:
		return e.String()
	case Negation:
		return e.String()
	}
	return ""
}

// And joins expressions with AND. Nil members are dropped and a single
// remaining member is returned as is. And() with no members returns nil.
func And(exprs ...Expr) Expr {
	return group(AndConj, exprs)
}

// Or joins expressions with OR, with the same collapsing rules as And.
func Or(exprs ...Expr) Expr {
	return group(OrConj, exprs)
}

func group(conj Conj, exprs []Expr) Expr {
	kept := make([]Expr, 0, len(exprs))
	for _, e := range exprs {
		if e != nil {
			kept = append(kept, e)
		}
	}
	switch len(kept) {
	case 0:
		return nil
	case 1:
		return kept[0]
	}
	return Group{Conj: conj, Exprs: kept}
}

// Not negates an expression. Conditions get their operator toggled, a Negation
// is unwrapped, and anything else is wrapped.
func Not(e Expr) Expr {
	switch e := e.(type) {
	case nil:
		return nil
	case Condition:
		return e.WrapNot()
	case Negation:
		return e.Expr
	}
	return Negation{Expr: e}
}

// Column builds conditions on a named column without going through a proxy.
type Column string

// Col is shorthand for Column(name).
func Col(name string) Column {
	return Column(name)
}

func (c Column) cond(kind OpKind, v any) Condition {
	lit, text := literal(v)
	return NewCondition(string(c), kind, lit, text)
}

func (c Column) Eq(v any) Condition    { return c.cond(Eq, v) }
func (c Column) NotEq(v any) Condition { return c.cond(NotEq, v) }
func (c Column) Gt(v any) Condition    { return c.cond(Gt, v) }
func (c Column) Gte(v any) Condition   { return c.cond(Gte, v) }
func (c Column) Lt(v any) Condition    { return c.cond(Lt, v) }
func (c Column) Lte(v any) Condition   { return c.cond(Lte, v) }

// Contains matches values containing s anywhere.
func (c Column) Contains(s string) Condition {
	return NewCondition(string(c), Like, "%"+s+"%", true)
}

// Like matches against a raw LIKE pattern.
func (c Column) Like(pattern string) Condition {
	return NewCondition(string(c), Like, pattern, true)
}

// literal formats v the way proxies do and reports whether it is textual.
func literal(v any) (string, bool) {
	switch v := v.(type) {
	case string:
		return v, true
	case bool:
		return strconv.FormatBool(v), false
	case int:
		return strconv.Itoa(v), false
	case int8, int16, int32, int64, uint, uint8, uint16, uint32, uint64:
		return fmt.Sprint(v), false
	case float32:
		if math.IsNaN(float64(v)) || math.IsInf(float64(v), 0) {
			return formatFloat(float64(v)), false
		}
		return strconv.FormatFloat(float64(v), 'g', -1, 32), false
	case float64:
		return formatFloat(v), false
	case time.Time:
		return v.Format(time.RFC3339Nano), true
	case uuid.UUID:
		return v.String(), true
	case fmt.Stringer:
		return v.String(), true
	}
	return fmt.Sprint(v), true
}
