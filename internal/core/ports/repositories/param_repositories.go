package repositories

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
)

// ParamReader defines read operations for the typed key/value settings store
type ParamReader interface {
	// FindParam returns the param stored under key, or an ErrNotFound error.
	FindParam(ctx context.Context, key string) (*domain.Param, error)
}
