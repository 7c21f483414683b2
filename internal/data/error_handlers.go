package data

import (
	"errors"
	"fmt"

	"github.com/georgysavva/scany/v2/pgxscan"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/paani/remedial-learning-app/internal/errdefs"
)

const (
	uniqueViolation     = "23505"
	foreignKeyViolation = "23503"
	checkViolation      = "23514"
)

func pgErrorCode(err error) string {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}
	return ""
}

func isNotFound(err error) bool {
	return errors.Is(err, pgx.ErrNoRows) || pgxscan.NotFound(err)
}

func handleError(err error) error {
	if isNotFound(err) {
		return errdefs.ErrNotFound
	}
	switch pgErrorCode(err) {
	case uniqueViolation:
		return errdefs.ErrAlreadyExists
	case foreignKeyViolation, checkViolation:
		return fmt.Errorf("constraint violated: %w", errdefs.ErrValidation)
	}
	return fmt.Errorf("repository error: %w", err)
}
