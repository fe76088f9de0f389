package repositories

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
)

// RateReader defines read operations over the rate log
type RateReader interface {
	// FindLatestRate returns the most recently inserted rate of a pair.
	FindLatestRate(ctx context.Context, pairID int64) (*domain.Rate, error)

	// ListRates returns up to limit rates of a pair, newest first.
	ListRates(ctx context.Context, pairID int64, limit int) ([]domain.Rate, error)
}

// RateWriter defines write operations over the rate log
type RateWriter interface {
	// AppendRate inserts a new rate row and returns it with its id and creation time.
	AppendRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error)
}

// RateRepositoryFacade combines all rate log repository interfaces.
// The log is append-only: there is no update or delete.
type RateRepositoryFacade interface {
	RateReader
	RateWriter
}
