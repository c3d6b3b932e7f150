package store

import (
	"errors"
	"fmt"
	"strings"

	"github.com/mattn/go-sqlite3"
)

// ErrorCode categorizes store failures.
type ErrorCode string

const (
	// ErrCodeConnection indicates the database file could not be created or opened.
	ErrCodeConnection ErrorCode = "CONNECTION"

	// ErrCodeSchema indicates dropping or creating the managed tables failed.
	ErrCodeSchema ErrorCode = "SCHEMA"

	// ErrCodeDuplicateKey indicates an insert collided with an existing id.
	ErrCodeDuplicateKey ErrorCode = "DUPLICATE_KEY"

	// ErrCodeInsert indicates an insert failed for any other reason.
	ErrCodeInsert ErrorCode = "INSERT"

	// ErrCodeQuery indicates a lookup statement failed.
	ErrCodeQuery ErrorCode = "QUERY"
)

// Error is returned by Store operations.
//
// Path is always set. Word and ID are set for the operations that carry them.
type Error struct {
	Code ErrorCode
	Path string
	Word string
	ID   int64
	Err  error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(string(e.Code))
	switch e.Code {
	case ErrCodeConnection:
		fmt.Fprintf(&b, ": open database %s", e.Path)
	case ErrCodeSchema:
		fmt.Fprintf(&b, ": reset schema in %s", e.Path)
	case ErrCodeDuplicateKey, ErrCodeInsert:
		fmt.Fprintf(&b, ": insert word %q with id %d", e.Word, e.ID)
	case ErrCodeQuery:
		fmt.Fprintf(&b, ": look up word %q", e.Word)
	}
	if e.Err != nil {
		fmt.Fprintf(&b, ": %v", e.Err)
	}
	return b.String()
}

// Unwrap returns the underlying driver error.
func (e *Error) Unwrap() error {
	return e.Err
}

// IsCode reports whether err is, or wraps, a store *Error with the given code.
func IsCode(err error, code ErrorCode) bool {
	var storeErr *Error
	if errors.As(err, &storeErr) {
		return storeErr.Code == code
	}
	return false
}

// isPrimaryKeyViolation reports whether err is a sqlite primary key or unique
// constraint failure.
func isPrimaryKeyViolation(err error) bool {
	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}
	return false
}
