package dberrors

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint
// violation (23505).
const pgUniqueViolation = "23505"

// IsUniqueViolation checks if the error is a PostgreSQL unique violation.
// The reconciliation engine relies on the database-enforced uniqueness of
// natural keys and the enrollment tuple instead of its own locking, so a
// concurrent import touching the same keys surfaces here.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsUniqueViolationOnConstraint checks if the error is a unique violation
// for a specific named constraint.
func IsUniqueViolationOnConstraint(err error, constraintName string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation && pgErr.ConstraintName == constraintName
}
