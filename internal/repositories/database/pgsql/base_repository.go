package pgsql

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// DatabasePool is the subset of *pgxpool.Pool the repositories use.
// pgxmock pools satisfy it in tests.
type DatabasePool interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

const uniqueViolation = "23505"

// BaseRepository provides common functionality for all repositories
type BaseRepository struct {
	Pool DatabasePool
}

// wrapQueryError maps pgx errors onto apperrors.
func (r *BaseRepository) wrapQueryError(err error, what string) error {
	if errors.Is(err, pgx.ErrNoRows) {
		return apperrors.NewNotFoundError(what + " not found")
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
		return apperrors.NewAppError(http.StatusConflict, what+" already exists", fmt.Errorf("%w: %s", apperrors.ErrDuplicate, pgErr.ConstraintName))
	}

	return apperrors.NewAppError(http.StatusInternalServerError, "failed to query "+what, err)
}
