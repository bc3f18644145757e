package sqlite

import (
	"sort"
	"strings"

	"github.com/msomdec/taskdeck/internal/domain"
)

const uniqueConstraintMarker = "UNIQUE constraint failed: "

// conflictError inspects a driver error for a SQLite unique constraint
// violation and converts it into a *domain.ConflictError naming the
// offending columns. Returns nil if the error is not a uniqueness signal.
//
// The driver reports violations as e.g.
//
//	constraint failed: UNIQUE constraint failed: users.email (2067)
//
// with multiple columns comma-separated for composite constraints.
func conflictError(err error) *domain.ConflictError {
	if err == nil {
		return nil
	}
	msg := err.Error()
	idx := strings.Index(msg, uniqueConstraintMarker)
	if idx < 0 {
		return nil
	}
	rest := msg[idx+len(uniqueConstraintMarker):]
	if cut := strings.Index(rest, " ("); cut >= 0 {
		rest = rest[:cut]
	}

	var fields []string
	for _, col := range strings.Split(rest, ",") {
		col = strings.TrimSpace(col)
		// Strip the table qualifier: "users.email" -> "email".
		if dot := strings.LastIndex(col, "."); dot >= 0 {
			col = col[dot+1:]
		}
		if col != "" {
			fields = append(fields, col)
		}
	}
	sort.Strings(fields)
	return &domain.ConflictError{Fields: fields}
}
