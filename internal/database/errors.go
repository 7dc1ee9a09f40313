package database

import (
	"errors"
	"fmt"
)

var ErrNoResults = errors.New("no results to export")

// IntrospectionError reports that the structure of a single table could not
// be read. Callers usually skip the table and carry on.
type IntrospectionError struct {
	Table string
	Err   error
}

func (e *IntrospectionError) Error() string {
	return fmt.Sprintf("error getting schema for %s: %v", e.Table, e.Err)
}

func (e *IntrospectionError) Unwrap() error {
	return e.Err
}

// QueryError wraps a failed statement together with an optional hint for the
// operator, such as the list of tables that do exist.
type QueryError struct {
	Statement string
	Err       error
	Hint      string
}

func (e *QueryError) Error() string {
	msg := fmt.Sprintf("SQL error: %v", e.Err)
	if e.Hint != "" {
		msg += "\n" + e.Hint
	}
	return msg
}

func (e *QueryError) Unwrap() error {
	return e.Err
}
