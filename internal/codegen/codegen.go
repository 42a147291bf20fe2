// Package codegen renders Go proxy structs and entity registrations for
// database tables.
package codegen

import (
	"bytes"
	"embed"
	"fmt"
	"go/format"
	"io"
	"sort"
	"strings"
	"text/template"
	"unicode"

	"github.com/gobeam/stringy"

	"github.com/poki/predicate-filter-to-sql/internal/schema"
)

const filterImport = "github.com/poki/predicate-filter-to-sql/filter"

//go:embed templates/*.tpl
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.tpl"))

// Config controls the generated file.
type Config struct {
	// Package name of the generated file.
	Package string
	// Qualify registers entities with schema-qualified table names.
	Qualify bool
}

// DefaultConfig returns the defaults used by filtergen.
func DefaultConfig() Config {
	return Config{Package: "models"}
}

type fieldData struct {
	Name   string
	Type   string
	Column string
}

type entityData struct {
	Proxy   string
	Var     string
	Table   string
	Columns []string
	Fields  []fieldData
}

type fileData struct {
	Package  string
	Imports  []string
	Entities []entityData
}

// Generate writes one gofmt-ed Go file declaring a proxy struct and an entity
// for every table.
func Generate(w io.Writer, tables []schema.Table, cfg Config) error {
	if cfg.Package == "" {
		cfg.Package = DefaultConfig().Package
	}
	if !isIdentifier(cfg.Package) {
		return fmt.Errorf("codegen: invalid package name %q", cfg.Package)
	}

	data := fileData{Package: cfg.Package}
	imports := map[string]struct{}{filterImport: {}}
	names := map[string]int{}
	for _, t := range tables {
		e := entityData{
			Proxy:   unique(names, GoName(Singular(t.Name))+"Proxy"),
			Var:     unique(names, GoName(t.Name)),
			Table:   t.Name,
			Columns: t.ColumnNames(),
		}
		if cfg.Qualify {
			e.Table = t.QualifiedName()
		}
		fields := map[string]int{}
		for _, c := range t.Columns {
			typ, imp := FieldType(c)
			if imp != "" {
				imports[imp] = struct{}{}
			}
			e.Fields = append(e.Fields, fieldData{
				Name:   unique(fields, GoName(c.Name)),
				Type:   typ,
				Column: c.Name,
			})
		}
		data.Entities = append(data.Entities, e)
	}
	for imp := range imports {
		data.Imports = append(data.Imports, imp)
	}
	sort.Strings(data.Imports)

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "entities.go.tpl", data); err != nil {
		return fmt.Errorf("codegen: executing template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return fmt.Errorf("codegen: formatting generated source: %w", err)
	}
	_, err = w.Write(src)
	return err
}

// FieldType returns the proxy field type for a column and the extra import it
// needs, if any. Key columns get a KeyField of the matching Go type.
func FieldType(c schema.Column) (string, string) {
	if c.PrimaryKey || c.ForeignKey {
		switch c.UDT {
		case "int2":
			return "filter.KeyField[int16]", ""
		case "int4":
			return "filter.KeyField[int32]", ""
		case "int8":
			return "filter.KeyField[int64]", ""
		case "uuid":
			return "filter.KeyField[uuid.UUID]", "github.com/google/uuid"
		}
		return "filter.KeyField[string]", ""
	}
	switch c.UDT {
	case "bool":
		return "filter.BoolField", ""
	case "int2", "int4", "int8":
		return "filter.IntField", ""
	case "float4", "float8", "numeric":
		return "filter.FloatField", ""
	case "date", "timestamp", "timestamptz":
		return "filter.TimeField", ""
	case "uuid":
		return "filter.UUIDField", ""
	}
	return "filter.StringField", ""
}

var initialisms = map[string]string{
	"api":  "API",
	"html": "HTML",
	"http": "HTTP",
	"id":   "ID",
	"ip":   "IP",
	"json": "JSON",
	"sql":  "SQL",
	"url":  "URL",
	"uuid": "UUID",
}

// GoName turns a snake_case database name into an exported Go identifier:
// customer_id becomes CustomerID.
func GoName(name string) string {
	words := strings.FieldsFunc(name, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	var sb strings.Builder
	for _, w := range words {
		if upper, ok := initialisms[strings.ToLower(w)]; ok {
			sb.WriteString(upper)
			continue
		}
		sb.WriteString(stringy.New(strings.ToLower(w)).UcFirst())
	}
	out := sb.String()
	if out == "" || unicode.IsDigit(rune(out[0])) {
		out = "X" + out
	}
	return out
}

// Singular strips a plural suffix from a table name: orders becomes order and
// categories becomes category.
func Singular(name string) string {
	switch {
	case strings.HasSuffix(name, "ies"):
		return strings.TrimSuffix(name, "ies") + "y"
	case strings.HasSuffix(name, "ss"), strings.HasSuffix(name, "us"):
		return name
	case strings.HasSuffix(name, "s"):
		return strings.TrimSuffix(name, "s")
	}
	return name
}

func unique(seen map[string]int, name string) string {
	seen[name]++
	if n := seen[name]; n > 1 {
		return fmt.Sprintf("%s%d", name, n)
	}
	return name
}

func isIdentifier(s string) bool {
	for i, r := range s {
		if r != '_' && !unicode.IsLetter(r) && (i == 0 || !unicode.IsDigit(r)) {
			return false
		}
	}
	return s != ""
}
