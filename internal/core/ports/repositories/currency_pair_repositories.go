package repositories

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
)

// CurrencyPairReader defines read operations for currency pair configuration
type CurrencyPairReader interface {
	// FindPairByID retrieves a pair by its primary key.
	FindPairByID(ctx context.Context, pairID int64) (*domain.CurrencyPair, error)

	// FindPairByName retrieves a pair by its unique "BASE/QUOTE" name.
	FindPairByName(ctx context.Context, name string) (*domain.CurrencyPair, error)
}

// CurrencyPairRepositoryFacade combines all currency pair repository interfaces.
// Pairs are edited by administrators outside this service, so only reads exist.
type CurrencyPairRepositoryFacade interface {
	CurrencyPairReader
}
