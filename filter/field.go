package filter

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/google/uuid"
)

// field is the part every proxy field shares: the column it stands for and the
// pass of the FilterState it was bound to.
type field struct {
	column string
	state  *FilterState
	pass   uint64
}

func (f *field) bind(column string, s *FilterState) {
	f.column = column
	f.state = s
	f.pass = s.pass
}

// Column returns the column this field is bound to.
func (f field) Column() string {
	return f.column
}

func (f field) slot() bool {
	if f.state == nil {
		panic(fmt.Sprintf("filter: field %q is not bound to a filter state", f.column))
	}
	return f.state.consumeSlot(f.pass)
}

// compare consumes a slot, records the condition with the polarity of that
// slot and hands the slot value back to the predicate.
func (f field) compare(kind OpKind, lit string, text bool) bool {
	stance := f.slot()
	c := NewCondition(f.column, kind, lit, text)
	if !stance {
		c = c.WrapNot()
	}
	f.state.record(c)
	return stance
}

// StringField is a proxy for text columns.
type StringField struct{ field }

func (f StringField) Eq(v string) bool    { return f.compare(Eq, v, true) }
func (f StringField) NotEq(v string) bool { return f.compare(NotEq, v, true) }

// Contains renders as LIKE %v%.
func (f StringField) Contains(v string) bool { return f.compare(Like, "%"+v+"%", true) }

// HasPrefix renders as LIKE v%.
func (f StringField) HasPrefix(v string) bool { return f.compare(Like, v+"%", true) }

// HasSuffix renders as LIKE %v.
func (f StringField) HasSuffix(v string) bool { return f.compare(Like, "%"+v, true) }

// Like uses pattern verbatim.
func (f StringField) Like(pattern string) bool { return f.compare(Like, pattern, true) }

// IntField is a proxy for integer columns.
type IntField struct{ field }

func (f IntField) Eq(v int64) bool    { return f.compare(Eq, strconv.FormatInt(v, 10), false) }
func (f IntField) NotEq(v int64) bool { return f.compare(NotEq, strconv.FormatInt(v, 10), false) }
func (f IntField) Gt(v int64) bool    { return f.compare(Gt, strconv.FormatInt(v, 10), false) }
func (f IntField) Gte(v int64) bool   { return f.compare(Gte, strconv.FormatInt(v, 10), false) }
func (f IntField) Lt(v int64) bool    { return f.compare(Lt, strconv.FormatInt(v, 10), false) }
func (f IntField) Lte(v int64) bool   { return f.compare(Lte, strconv.FormatInt(v, 10), false) }

// FloatField is a proxy for floating point and numeric columns.
type FloatField struct{ field }

// formatFloat spells NaN and the infinities the way PostgreSQL reads them
// ('NaN', 'Infinity', '-Infinity'); they are only valid SQL once quoted.
func formatFloat(v float64) string {
	switch {
	case math.IsNaN(v):
		return "NaN"
	case math.IsInf(v, 1):
		return "Infinity"
	case math.IsInf(v, -1):
		return "-Infinity"
	}
	return strconv.FormatFloat(v, 'g', -1, 64)
}

func (f FloatField) Eq(v float64) bool    { return f.compare(Eq, formatFloat(v), false) }
func (f FloatField) NotEq(v float64) bool { return f.compare(NotEq, formatFloat(v), false) }
func (f FloatField) Gt(v float64) bool    { return f.compare(Gt, formatFloat(v), false) }
func (f FloatField) Gte(v float64) bool   { return f.compare(Gte, formatFloat(v), false) }
func (f FloatField) Lt(v float64) bool    { return f.compare(Lt, formatFloat(v), false) }
func (f FloatField) Lte(v float64) bool   { return f.compare(Lte, formatFloat(v), false) }

// BoolField is a proxy for boolean columns.
type BoolField struct{ field }

func (f BoolField) Eq(v bool) bool { return f.compare(Eq, strconv.FormatBool(v), false) }

// IsTrue is Eq(true).
func (f BoolField) IsTrue() bool { return f.Eq(true) }

// Not stands in for !flag. With a true slot it records "flag = false"; with a
// false slot it records the negation of "flag = true", i.e. "flag != true".
// The slot value is returned unchanged.
func (f BoolField) Not() bool {
	stance := f.slot()
	c := NewCondition(f.column, Eq, strconv.FormatBool(!stance), false)
	if !stance {
		c = c.WrapNot()
	}
	f.state.record(c)
	return stance
}

// TimeField is a proxy for date and timestamp columns. Literals are RFC 3339.
type TimeField struct{ field }

func formatTime(t time.Time) string {
	return t.Format(time.RFC3339Nano)
}

func (f TimeField) Eq(t time.Time) bool         { return f.compare(Eq, formatTime(t), true) }
func (f TimeField) NotEq(t time.Time) bool      { return f.compare(NotEq, formatTime(t), true) }
func (f TimeField) Before(t time.Time) bool     { return f.compare(Lt, formatTime(t), true) }
func (f TimeField) After(t time.Time) bool      { return f.compare(Gt, formatTime(t), true) }
func (f TimeField) AtOrBefore(t time.Time) bool { return f.compare(Lte, formatTime(t), true) }
func (f TimeField) AtOrAfter(t time.Time) bool  { return f.compare(Gte, formatTime(t), true) }

// UUIDField is a proxy for uuid columns.
type UUIDField struct{ field }

func (f UUIDField) Eq(v uuid.UUID) bool    { return f.compare(Eq, v.String(), true) }
func (f UUIDField) NotEq(v uuid.UUID) bool { return f.compare(NotEq, v.String(), true) }

// KeyField is a proxy for primary and foreign key columns.
type KeyField[K comparable] struct{ field }

func (f KeyField[K]) Eq(v K) bool {
	lit, text := literal(v)
	return f.compare(Eq, lit, text)
}

func (f KeyField[K]) NotEq(v K) bool {
	lit, text := literal(v)
	return f.compare(NotEq, lit, text)
}
