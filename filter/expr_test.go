package filter_test

import (
	"math"
	"reflect"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/poki/predicate-filter-to-sql/filter"
)

type status string

func (s status) String() string { return "status:" + string(s) }

func TestColumn_Literals(t *testing.T) {
	at := time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC)
	id := uuid.MustParse("6ba7b810-9dad-11d1-80b4-00c04fd430c8")

	tests := []struct {
		name     string
		input    filter.Condition
		expected filter.Condition
	}{
		{"string", filter.Col("name").Eq("John"), filter.NewCondition("name", filter.Eq, "John", true)},
		{"int", filter.Col("id").NotEq(4), filter.NewCondition("id", filter.NotEq, "4", false)},
		{"int32", filter.Col("id").Gt(int32(7)), filter.NewCondition("id", filter.Gt, "7", false)},
		{"uint8", filter.Col("id").Gte(uint8(1)), filter.NewCondition("id", filter.Gte, "1", false)},
		{"float", filter.Col("total").Lt(9.5), filter.NewCondition("total", filter.Lt, "9.5", false)},
		{"float32", filter.Col("total").Lte(float32(0.25)), filter.NewCondition("total", filter.Lte, "0.25", false)},
		{"float nan", filter.Col("total").Eq(math.NaN()), filter.NewCondition("total", filter.Eq, "NaN", false)},
		{"float32 infinity", filter.Col("total").Gt(float32(math.Inf(1))), filter.NewCondition("total", filter.Gt, "Infinity", false)},
		{"bool", filter.Col("is_gift").Eq(true), filter.NewCondition("is_gift", filter.Eq, "true", false)},
		{"time", filter.Col("created_at").Gt(at), filter.NewCondition("created_at", filter.Gt, "2024-03-01T12:30:00Z", true)},
		{"uuid", filter.Col("tracking_id").Eq(id), filter.NewCondition("tracking_id", filter.Eq, "6ba7b810-9dad-11d1-80b4-00c04fd430c8", true)},
		{"stringer", filter.Col("status").Eq(status("open")), filter.NewCondition("status", filter.Eq, "status:open", true)},
		{"contains", filter.Col("name").Contains("john"), filter.NewCondition("name", filter.Like, "%john%", true)},
		{"like", filter.Col("name").Like("J_hn"), filter.NewCondition("name", filter.Like, "J_hn", true)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.input != tt.expected {
				t.Errorf("got %#v, want %#v", tt.input, tt.expected)
			}
		})
	}
}

func TestAndOr(t *testing.T) {
	a := filter.Col("id").Eq(1)
	b := filter.Col("name").Eq("John")

	tests := []struct {
		name     string
		input    filter.Expr
		expected filter.Expr
	}{
		{"empty and", filter.And(), nil},
		{"empty or", filter.Or(nil, nil), nil},
		{"single", filter.And(a), a},
		{"single after dropping nil", filter.Or(nil, b), b},
		{"and", filter.And(a, b), filter.Group{Conj: filter.AndConj, Exprs: []filter.Expr{a, b}}},
		{"or", filter.Or(a, nil, b), filter.Group{Conj: filter.OrConj, Exprs: []filter.Expr{a, b}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !reflect.DeepEqual(tt.input, tt.expected) {
				t.Errorf("got %#v, want %#v", tt.input, tt.expected)
			}
		})
	}
}

func TestNot(t *testing.T) {
	a := filter.Col("id").Eq(1)
	g := filter.Or(a, filter.Col("name").Contains("test"))

	if got := filter.Not(a); got != a.WrapNot() {
		t.Errorf("Not(condition) = %#v", got)
	}
	if got := filter.Not(filter.Not(a)); got != a {
		t.Errorf("Not(Not(condition)) = %#v", got)
	}
	if got := filter.Not(g); !reflect.DeepEqual(got, filter.Negation{Expr: g}) {
		t.Errorf("Not(group) = %#v", got)
	}
	if got := filter.Not(filter.Not(g)); !reflect.DeepEqual(got, g) {
		t.Errorf("Not(Not(group)) = %#v", got)
	}
	if got := filter.Not(nil); got != nil {
		t.Errorf("Not(nil) = %#v", got)
	}
}

func TestGroup_String(t *testing.T) {
	e := filter.And(
		filter.Col("id").NotEq(2),
		filter.Not(filter.Or(filter.Col("name").Contains("test"), filter.Col("status").Eq("archived"))),
	)

	expected := "(id != 2 AND NOT (name LIKE %test% OR status = archived))"
	if got := e.(filter.Group).String(); got != expected {
		t.Errorf("String() = %q, want %q", got, expected)
	}
}
