package services

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
)

// ExchangeRateReaderSvc defines read operations for pair quotes
type ExchangeRateReaderSvc interface {
	// GetExchangeRate resolves the current quote of the BASE/QUOTE pair.
	GetExchangeRate(ctx context.Context, baseCode, quoteCode string) (*domain.PairQuote, error)

	// ListRateHistory returns the latest rate log entries of the pair.
	ListRateHistory(ctx context.Context, baseCode, quoteCode string, limit int) ([]domain.Rate, error)
}

// ExchangeRateWriterSvc defines operations that append to the rate log
type ExchangeRateWriterSvc interface {
	// RefreshExchangeRate forces a provider fetch for the BASE/QUOTE pair.
	RefreshExchangeRate(ctx context.Context, baseCode, quoteCode string) (*domain.PairQuote, error)
}

// ExchangeRateSvcFacade combines all exchange rate-related service interfaces
type ExchangeRateSvcFacade interface {
	ExchangeRateReaderSvc
	ExchangeRateWriterSvc
}
