package filter

import (
	"fmt"
	"reflect"

	"github.com/gobeam/stringy"
)

// binder is implemented by pointers to every proxy field type.
type binder interface {
	bind(column string, s *FilterState)
}

var binderType = reflect.TypeOf((*binder)(nil)).Elem()

type binding struct {
	index  []int
	column string
}

// Entity is the registration of a proxy struct P against a table. The proxy's
// exported proxy fields are mapped to columns once, when the entity is created;
// every predicate pass then gets a fresh P bound to its FilterState.
//
// The column of a proxy field is its `db` tag, or the snake_case form of the
// field name when there is no tag. `db:"-"` skips a field.
//
//	type OrderProxy struct {
//		ID   filter.KeyField[int32] `db:"order_id"`
//		Name filter.StringField
//	}
//
//	var Orders = filter.MustEntity[OrderProxy]("order", "order_id", "name")
type Entity[P any] struct {
	table    string
	columns  []string
	known    map[string]struct{}
	bindings []binding
}

// NewEntity registers P for table. Every proxy field must map to one of
// columns, otherwise an *UnknownColumnError is returned.
func NewEntity[P any](table string, columns ...string) (*Entity[P], error) {
	t := reflect.TypeOf((*P)(nil)).Elem()
	if t.Kind() != reflect.Struct {
		return nil, fmt.Errorf("filter: proxy type %s is not a struct", t)
	}
	if table == "" {
		return nil, fmt.Errorf("filter: proxy type %s has no table name", t)
	}

	e := &Entity[P]{
		table:   table,
		columns: append([]string(nil), columns...),
		known:   make(map[string]struct{}, len(columns)),
	}
	for _, c := range columns {
		e.known[c] = struct{}{}
	}

	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if !sf.IsExported() || !reflect.PointerTo(sf.Type).Implements(binderType) {
			continue
		}
		column := columnName(sf)
		if column == "-" {
			continue
		}
		if !e.HasColumn(column) {
			return nil, &UnknownColumnError{Table: table, Column: column}
		}
		e.bindings = append(e.bindings, binding{index: sf.Index, column: column})
	}
	return e, nil
}

// MustEntity is like NewEntity but panics on error. It is meant for
// package-level registration.
func MustEntity[P any](table string, columns ...string) *Entity[P] {
	e, err := NewEntity[P](table, columns...)
	if err != nil {
		panic(err)
	}
	return e
}

func columnName(sf reflect.StructField) string {
	if tag, ok := sf.Tag.Lookup("db"); ok && tag != "" {
		return tag
	}
	return stringy.New(sf.Name).SnakeCase().ToLower()
}

// Table returns the table name.
func (e *Entity[P]) Table() string {
	return e.table
}

// Columns returns the table's columns in declaration order.
func (e *Entity[P]) Columns() []string {
	return append([]string(nil), e.columns...)
}

// HasColumn reports whether column belongs to the table.
func (e *Entity[P]) HasColumn(column string) bool {
	_, ok := e.known[column]
	return ok
}

// Proxy returns a new P whose fields are bound to the current pass of s.
func (e *Entity[P]) Proxy(s *FilterState) P {
	var p P
	v := reflect.ValueOf(&p).Elem()
	for _, b := range e.bindings {
		v.FieldByIndex(b.index).Addr().Interface().(binder).bind(b.column, s)
	}
	return p
}
