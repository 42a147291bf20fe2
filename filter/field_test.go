package filter_test

import (
	"math"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/poki/predicate-filter-to-sql/filter"
)

func TestFieldConditions(t *testing.T) {
	at := time.Date(2023, 12, 31, 23, 59, 59, 500, time.UTC)
	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	tests := []struct {
		name      string
		predicate func(OrderProxy) bool
		expected  string
	}{
		{"string eq", func(o OrderProxy) bool { return o.Name.Eq("John") }, "name = John"},
		{"string not eq", func(o OrderProxy) bool { return o.Name.NotEq("John") }, "name != John"},
		{"has prefix", func(o OrderProxy) bool { return o.Name.HasPrefix("Jo") }, "name LIKE Jo%"},
		{"has suffix", func(o OrderProxy) bool { return o.Name.HasSuffix("hn") }, "name LIKE %hn"},
		{"like", func(o OrderProxy) bool { return o.Name.Like("J_hn") }, "name LIKE J_hn"},
		{"int gt", func(o OrderProxy) bool { return o.Quantity.Gt(-3) }, "quantity > -3"},
		{"int lt", func(o OrderProxy) bool { return o.Quantity.Lt(10) }, "quantity < 10"},
		{"int not eq", func(o OrderProxy) bool { return o.Quantity.NotEq(0) }, "quantity != 0"},
		{"float gte", func(o OrderProxy) bool { return o.TotalAmount.Gte(99.99) }, "total_amount >= 99.99"},
		{"float eq", func(o OrderProxy) bool { return o.TotalAmount.Eq(1e21) }, "total_amount = 1e+21"},
		{"float nan", func(o OrderProxy) bool { return o.TotalAmount.Eq(math.NaN()) }, "total_amount = NaN"},
		{"float infinity", func(o OrderProxy) bool { return o.TotalAmount.Gt(math.Inf(1)) }, "total_amount > Infinity"},
		{"float negative infinity", func(o OrderProxy) bool { return o.TotalAmount.Lt(math.Inf(-1)) }, "total_amount < -Infinity"},
		{"bool eq", func(o OrderProxy) bool { return o.Gift.Eq(false) }, "is_gift = false"},
		{"time before", func(o OrderProxy) bool { return o.UpdatedAt.Before(at) }, "updated_at < 2023-12-31T23:59:59.0000005Z"},
		{"time at or after", func(o OrderProxy) bool { return o.UpdatedAt.AtOrAfter(at) }, "updated_at >= 2023-12-31T23:59:59.0000005Z"},
		{"uuid not eq", func(o OrderProxy) bool { return o.Tracking.NotEq(id) }, "tracking_id != f47ac10b-58cc-4372-a567-0e02b2c3d479"},
		{"key not eq", func(o OrderProxy) bool { return o.ID.NotEq(9) }, "id != 9"},
		{"negated bool not", func(o OrderProxy) bool { return !o.Gift.Not() }, "is_gift != true"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := filter.Replay(Orders, tt.predicate)
			if err != nil {
				t.Fatal(err)
			}
			if len(res.Conditions) != 1 {
				t.Fatalf("expected one condition, got %v", res.Conditions)
			}
			if got := res.Conditions[0].String(); got != tt.expected {
				t.Errorf("got %q, want %q", got, tt.expected)
			}
		})
	}
}

type accountProxy struct {
	ID    filter.KeyField[uuid.UUID] `db:"account_id"`
	Login filter.KeyField[string]
}

func TestKeyFieldLiterals(t *testing.T) {
	accounts := filter.MustEntity[accountProxy]("accounts", "account_id", "login")
	id := uuid.MustParse("f47ac10b-58cc-4372-a567-0e02b2c3d479")

	res, err := filter.Replay(accounts, func(a accountProxy) bool {
		return a.ID.Eq(id) && a.Login.NotEq("admin")
	})
	if err != nil {
		t.Fatal(err)
	}
	expected := []filter.Condition{
		filter.NewCondition("account_id", filter.Eq, id.String(), true),
		filter.NewCondition("login", filter.NotEq, "admin", true),
	}
	for i, c := range res.Conditions {
		if c != expected[i] {
			t.Errorf("condition %d = %#v, want %#v", i, c, expected[i])
		}
	}
}
