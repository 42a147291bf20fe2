package filter

import "fmt"

// OpKind is the base comparison of a Condition.
type OpKind uint8

const (
	Eq OpKind = iota + 1
	NotEq
	Gt
	Lt
	Gte
	Lte
	Like
)

func (k OpKind) String() string {
	switch k {
	case Eq:
		return "Eq"
	case NotEq:
		return "NotEq"
	case Gt:
		return "Gt"
	case Lt:
		return "Lt"
	case Gte:
		return "Gte"
	case Lte:
		return "Lte"
	case Like:
		return "Like"
	}
	return fmt.Sprintf("OpKind(%d)", uint8(k))
}

// Operator is a comparison, optionally wrapped in a single NOT. There is no way
// to express NOT(NOT(op)): negating twice gives back op.
type Operator struct {
	Kind    OpKind
	Negated bool
}

// Op returns the non-negated operator for kind.
func Op(kind OpKind) Operator {
	return Operator{Kind: kind}
}

// Negate toggles the NOT wrapper.
func (o Operator) Negate() Operator {
	o.Negated = !o.Negated
	return o
}

// SQL returns the operator text. Negated operators render as their semantic
// inverse, so NOT(>) is "<=" rather than "NOT >".
func (o Operator) SQL() string {
	switch o.Kind {
	case Eq:
		return pick(o.Negated, "=", "!=")
	case NotEq:
		return pick(o.Negated, "!=", "=")
	case Gt:
		return pick(o.Negated, ">", "<=")
	case Gte:
		return pick(o.Negated, ">=", "<")
	case Lt:
		return pick(o.Negated, "<", ">=")
	case Lte:
		return pick(o.Negated, "<=", ">")
	case Like:
		return pick(o.Negated, "LIKE", "NOT LIKE")
	}
	return "?"
}

func (o Operator) String() string {
	if o.Negated {
		return "Not(" + o.Kind.String() + ")"
	}
	return o.Kind.String()
}

func pick(negated bool, plain, inverse string) string {
	if negated {
		return inverse
	}
	return plain
}

// Condition is one comparison of a column against a literal.
type Condition struct {
	Column  string
	Op      Operator
	Literal string
	// Text marks literals that need quoting when rendered as SQL string
	// constants or bound as placeholders.
	Text bool
}

// NewCondition returns a non-negated condition.
func NewCondition(column string, kind OpKind, literal string, text bool) Condition {
	return Condition{Column: column, Op: Op(kind), Literal: literal, Text: text}
}

// WrapNot wraps the operator in NOT, or unwraps it if it already is.
func (c Condition) WrapNot() Condition {
	c.Op = c.Op.Negate()
	return c
}

// String renders "column op literal" without any quoting.
func (c Condition) String() string {
	return c.Column + " " + c.Op.SQL() + " " + c.Literal
}

func (Condition) isExpr() {}
