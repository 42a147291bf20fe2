// Package schema describes database tables the way filtergen sees them: just
// enough to generate proxy structs and entity registrations.
package schema

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

// Column is one column of a table.
type Column struct {
	Name       string `yaml:"name"`
	Ordinal    int    `yaml:"ordinal"`
	UDT        string `yaml:"udt"`
	Nullable   bool   `yaml:"nullable,omitempty"`
	PrimaryKey bool   `yaml:"primary_key,omitempty"`
	ForeignKey bool   `yaml:"foreign_key,omitempty"`
}

// Table is a table with its columns in ordinal order.
type Table struct {
	Schema  string   `yaml:"schema"`
	Name    string   `yaml:"name"`
	Columns []Column `yaml:"columns"`
}

// QualifiedName returns schema.name, or name when the schema is empty.
func (t Table) QualifiedName() string {
	if t.Schema == "" {
		return t.Name
	}
	return t.Schema + "." + t.Name
}

// ColumnNames returns the column names in order.
func (t Table) ColumnNames() []string {
	names := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		names[i] = c.Name
	}
	return names
}

// Document is the YAML form written by `filtergen inspect`.
type Document struct {
	Tables []Table `yaml:"tables"`
}

// WriteYAML encodes tables as a Document.
func WriteYAML(w io.Writer, tables []Table) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(Document{Tables: tables}); err != nil {
		return fmt.Errorf("encoding schema: %w", err)
	}
	return enc.Close()
}

// ReadYAML decodes a Document.
func ReadYAML(r io.Reader) ([]Table, error) {
	var doc Document
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding schema: %w", err)
	}
	for _, t := range doc.Tables {
		if t.Name == "" {
			return nil, fmt.Errorf("decoding schema: table without a name")
		}
	}
	return doc.Tables, nil
}

// LoadFile reads a Document from path.
func LoadFile(path string) ([]Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = f.Close() }()
	return ReadYAML(f)
}

// Filter keeps the tables named in names, matched by bare or schema-qualified
// name. An empty names keeps every table.
func Filter(tables []Table, names []string) []Table {
	if len(names) == 0 {
		return tables
	}
	wanted := make(map[string]struct{}, len(names))
	for _, n := range names {
		wanted[n] = struct{}{}
	}
	var kept []Table
	for _, t := range tables {
		_, bare := wanted[t.Name]
		_, qualified := wanted[t.QualifiedName()]
		if bare || qualified {
			kept = append(kept, t)
		}
	}
	return kept
}
