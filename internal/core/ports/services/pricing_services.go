package services

import (
	"context"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PricingSettings exposes the runtime-mutable settings the pricing core reads.
type PricingSettings interface {
	// TransactionCostPct is the global transaction fee percentage.
	TransactionCostPct(ctx context.Context) (decimal.Decimal, error)

	// TaxPct is the global tax percentage applied on top of fees.
	TaxPct(ctx context.Context) (decimal.Decimal, error)

	// DefaultRateAPI names the provider used for pair-less lookups.
	DefaultRateAPI(ctx context.Context) (string, error)

	// RateExpiration is how long a cached rate stays usable, 0 for forever.
	RateExpiration(ctx context.Context) (time.Duration, error)
}

// RateResolverSvc turns a pair configuration into its current bids.
type RateResolverSvc interface {
	// Resolve answers with the fixed rate, a cached rate or a provider fetch.
	Resolve(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error)

	// Refresh bypasses the cache and fetches a new rate for a non-fixed pair.
	Refresh(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error)

	// ResolveBare looks up a raw rate with the default provider, false when absent.
	ResolveBare(ctx context.Context, source, quote string) (decimal.Decimal, bool)
}

// OrderPricingSvc guards order creation against stale quotes and values orders.
type OrderPricingSvc interface {
	// ValidateRate reports whether clientRate is exactly the current bid of
	// the account type's tier. Resolution failures reject.
	ValidateRate(ctx context.Context, pair domain.CurrencyPair, clientRate decimal.Decimal, accountType domain.AccountType) bool

	// ConvertAmountToUSD values amount, expressed in symbol, in US dollars.
	ConvertAmountToUSD(ctx context.Context, symbol string, amount decimal.Decimal) (decimal.Decimal, error)
}
