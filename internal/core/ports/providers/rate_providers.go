package providers

import (
	"context"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// RateProvider fetches a raw market rate from one external rate API.
type RateProvider interface {
	// Name is the registry key the provider is selected by (pair apiClass / defaultRateApi).
	Name() string

	// FetchRate returns the raw source->quote rate. Every failure wraps
	// apperrors.ErrProviderUnavailable.
	FetchRate(ctx context.Context, source, quote string) (*domain.MarketRate, error)
}

// PairBoundProvider is a RateProvider bound to the rate log: it answers from
// the latest cached rate of a pair when one is usable, persists every fetch
// and applies the pair's markup.
type PairBoundProvider interface {
	Name() string

	// QuotePair resolves the pair from the rate log or the provider. A cached
	// rate older than maxAge is ignored, maxAge <= 0 means cached rates never
	// expire. Every failure is reported as apperrors.ErrNoResults.
	QuotePair(ctx context.Context, pair domain.CurrencyPair, maxAge time.Duration) (*domain.PairQuote, error)

	// RefreshPair always calls the provider and appends a new rate.
	RefreshPair(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error)

	// Quote is the bare mode: the raw rate, or false when it cannot be fetched.
	Quote(ctx context.Context, source, quote string) (decimal.Decimal, bool)
}

// ProviderRegistry maps provider names to pair-bound providers.
type ProviderRegistry interface {
	Lookup(name string) (PairBoundProvider, bool)
}
