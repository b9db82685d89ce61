package dberrors

import (
	"errors"
	"strings"

	"github.com/jackc/pgx/v5/pgconn" // Import pgconn for PgError
)

// PostgreSQL SQLSTATE codes the repositories react to.
const (
	CodeUniqueViolation     = "23505"
	CodeForeignKeyViolation = "23503"
	CodeNotNullViolation    = "23502"
	CodeCheckViolation      = "23514"

	classDataException = "22"
)

func pgError(err error) (*pgconn.PgError, bool) {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr, true
	}
	return nil, false
}

// IsUniqueViolation reports whether err is a unique_violation of any constraint.
func IsUniqueViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && pgErr.Code == CodeUniqueViolation
}

// IsDataException reports class 22 errors: values the column cannot hold,
// such as a numeric overflow or a NUL byte in text.
func IsDataException(err error) bool {
	pgErr, ok := pgError(err)
	return ok && strings.HasPrefix(pgErr.Code, classDataException)
}

// IsForeignKeyViolation reports whether err is a foreign_key_violation. When
// constraintName is non-empty the constraint must match as well.
func IsForeignKeyViolation(err error, constraintName string) bool {
	pgErr, ok := pgError(err)
	if !ok || pgErr.Code != CodeForeignKeyViolation {
		return false
	}
	return constraintName == "" || pgErr.ConstraintName == constraintName
}

// IsIntegrityViolation reports NOT NULL and CHECK failures.
func IsIntegrityViolation(err error) bool {
	pgErr, ok := pgError(err)
	return ok && (pgErr.Code == CodeNotNullViolation || pgErr.Code == CodeCheckViolation)
}

// ConstraintName returns the violated constraint, or "" for non-Postgres errors.
func ConstraintName(err error) string {
	if pgErr, ok := pgError(err); ok {
		return pgErr.ConstraintName
	}
	return ""
}
