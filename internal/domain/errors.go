package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound           = errors.New("not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid token")
	ErrInvalidInput       = errors.New("invalid input")
)

// ConflictError reports a uniqueness violation on one or more columns.
// Fields is sorted so the message is deterministic regardless of which
// constraint the store reports first.
type ConflictError struct {
	Fields []string
}

func (e *ConflictError) Error() string {
	if len(e.Fields) == 0 {
		return "unique constraint violation"
	}
	return fmt.Sprintf("unique constraint violation on %s", strings.Join(e.Fields, ", "))
}

// FieldList returns the conflicting field names joined for messages,
// "unknown fields" when the store did not expose them.
func (e *ConflictError) FieldList() string {
	if len(e.Fields) == 0 {
		return "unknown fields"
	}
	return strings.Join(e.Fields, ", ")
}

// IsConflict reports whether err is (or wraps) a ConflictError.
func IsConflict(err error) bool {
	var ce *ConflictError
	return errors.As(err, &ce)
}
