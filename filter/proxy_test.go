package filter_test

import (
	"github.com/poki/predicate-filter-to-sql/filter"
)

type UserProxy struct {
	ID   filter.KeyField[int64]
	Name filter.StringField
}

var Users = filter.MustEntity[UserProxy]("user", "name", "id")

type OrderProxy struct {
	ID              filter.KeyField[int32] `db:"id"`
	CustomerID      filter.KeyField[int32]
	OrderDate       filter.TimeField
	TotalAmount     filter.FloatField
	Status          filter.StringField
	Name            filter.StringField
	ShippingAddress filter.StringField
	CreatedAt       filter.TimeField
	UpdatedAt       filter.TimeField
	Gift            filter.BoolField `db:"is_gift"`
	Tracking        filter.UUIDField `db:"tracking_id"`
	Quantity        filter.IntField

	// not a proxy field, ignored
	Note string
}

var Orders = filter.MustEntity[OrderProxy]("order",
	"id",
	"customer_id",
	"order_date",
	"total_amount",
	"status",
	"name",
	"shipping_address",
	"created_at",
	"updated_at",
	"is_gift",
	"tracking_id",
	"quantity",
)
