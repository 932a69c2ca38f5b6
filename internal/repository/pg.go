package repository

import (
	"errors"

	"github.com/lib/pq"
)

// Postgres error codes the repositories translate into taxonomy kinds.
// Constraint enforcement lives in the database itself, so handler-level
// precondition checks cannot race past it.
const (
	uniqueViolation     pq.ErrorCode = "23505"
	foreignKeyViolation pq.ErrorCode = "23503"
)

func pqErrorCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// scanner is satisfied by both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}
