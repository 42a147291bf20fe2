// Package sqlcheck validates rendered SQL with the PostgreSQL parser.
package sqlcheck

import (
	"fmt"

	pg_query "github.com/pganalyze/pg_query_go/v5"
)

// Kind is the statement kind found by Parse.
type Kind string

const (
	KindSelect Kind = "SELECT"
	KindDelete Kind = "DELETE"
	KindInsert Kind = "INSERT"
	KindUpdate Kind = "UPDATE"
	KindOther  Kind = "OTHER"
)

// SyntaxError is returned when PostgreSQL would not accept the statement.
type SyntaxError struct {
	SQL string
	Err error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("invalid sql %q: %v", e.SQL, e.Err)
}

func (e *SyntaxError) Unwrap() error {
	return e.Err
}

// Check returns a *SyntaxError if sql does not parse.
func Check(sql string) error {
	_, err := Parse(sql)
	return err
}

// Parse checks that sql holds exactly one statement and returns its kind.
func Parse(sql string) (Kind, error) {
	tree, err := pg_query.Parse(sql)
	if err != nil {
		return "", &SyntaxError{SQL: sql, Err: err}
	}
	if n := len(tree.GetStmts()); n != 1 {
		return "", &SyntaxError{SQL: sql, Err: fmt.Errorf("expected one statement, got %d", n)}
	}
	stmt := tree.GetStmts()[0].GetStmt()
	switch {
	case stmt.GetSelectStmt() != nil:
		return KindSelect, nil
	case stmt.GetDeleteStmt() != nil:
		return KindDelete, nil
	case stmt.GetInsertStmt() != nil:
		return KindInsert, nil
	case stmt.GetUpdateStmt() != nil:
		return KindUpdate, nil
	}
	return KindOther, nil
}

// Fingerprint returns the pg_query fingerprint of sql. Statements that only
// differ in literal values share a fingerprint.
func Fingerprint(sql string) (string, error) {
	fp, err := pg_query.Fingerprint(sql)
	if err != nil {
		return "", &SyntaxError{SQL: sql, Err: err}
	}
	return fp, nil
}
