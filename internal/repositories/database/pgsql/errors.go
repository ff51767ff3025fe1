package pgsql

import (
	"context"
	"errors"

	"github.com/bvtvshop/inventory_backend/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

const uniqueViolationCode = "23505"

// isUniqueViolation reports whether err is a unique constraint violation,
// optionally on one specific constraint.
func isUniqueViolation(err error, constraint string) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) || pgErr.Code != uniqueViolationCode {
		return false
	}
	return constraint == "" || pgErr.ConstraintName == constraint
}

// translateError maps driver-level failures to the application error
// taxonomy. Errors with no mapping come back wrapped in an AppError so the
// handler layer treats them as internal.
func translateError(err error, operation string) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, pgx.ErrNoRows):
		return apperrors.ErrNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return apperrors.ErrTimeout
	case isUniqueViolation(err, ""):
		return apperrors.ErrConflict
	}
	return apperrors.NewAppError(500, operation, err)
}
