package rateproviders

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/core/ports/providers"
	"github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
	"github.com/SscSPs/remittance_pricing/internal/middleware"
	"github.com/SscSPs/remittance_pricing/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

// PairBound binds a RateProvider to the rate log.
type PairBound struct {
	provider providers.RateProvider
	rates    repositories.RateRepositoryFacade
	metrics  *metrics.PricingMetrics
	now      func() time.Time
}

var _ providers.PairBoundProvider = (*PairBound)(nil)

func NewPairBound(provider providers.RateProvider, rates repositories.RateRepositoryFacade, m *metrics.PricingMetrics) *PairBound {
	return &PairBound{
		provider: provider,
		rates:    rates,
		metrics:  m,
		now:      time.Now,
	}
}

func (b *PairBound) Name() string {
	return b.provider.Name()
}

// QuotePair answers from the latest logged rate of the pair when it is still
// usable, otherwise fetches, appends a new rate and marks it up.
func (b *PairBound) QuotePair(ctx context.Context, pair domain.CurrencyPair, maxAge time.Duration) (*domain.PairQuote, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	latest, err := b.rates.FindLatestRate(ctx, pair.PairID)
	switch {
	case err == nil:
		if b.usable(latest, maxAge) {
			return b.quoteFromRate(ctx, pair, latest, domain.QuoteSourceCached)
		}
		logger.Debug("Cached rate expired", slog.String("pair", pair.Name), slog.Int64("rate_id", latest.RateID))
	case errors.Is(err, apperrors.ErrNotFound):
	default:
		// An unreadable cache is treated as a miss.
		logger.Warn("Failed to read cached rate", slog.String("pair", pair.Name), slog.String("error", err.Error()))
	}

	return b.fetchAndAppend(ctx, pair)
}

// RefreshPair skips the cache.
func (b *PairBound) RefreshPair(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error) {
	return b.fetchAndAppend(ctx, pair)
}

// Quote is the bare mode lookup: no cache, no persistence, no markup.
func (b *PairBound) Quote(ctx context.Context, source, quote string) (decimal.Decimal, bool) {
	rate, err := b.provider.FetchRate(ctx, source, quote)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Rate provider lookup failed",
			slog.String("provider", b.Name()),
			slog.String("source", source),
			slog.String("quote", quote),
			slog.String("error", err.Error()))
		return decimal.Zero, false
	}
	return rate.Value, true
}

func (b *PairBound) usable(rate *domain.Rate, maxAge time.Duration) bool {
	if maxAge <= 0 {
		return true
	}
	return b.now().Sub(rate.CreatedAt) < maxAge
}

func (b *PairBound) fetchAndAppend(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error) {
	logger := middleware.GetLoggerFromCtx(ctx).With(
		slog.String("provider", b.Name()),
		slog.String("pair", pair.Name),
	)

	source, quote := pair.ProviderSymbols()
	market, err := b.provider.FetchRate(ctx, source, quote)
	if err != nil {
		logger.Warn("Rate provider fetch failed", slog.String("error", err.Error()))
		return nil, apperrors.ErrNoResults
	}

	saved, err := b.rates.AppendRate(ctx, domain.Rate{
		BaseCurrencyID:    pair.BaseCurrencyID,
		QuoteCurrencyID:   pair.QuoteCurrencyID,
		PairID:            pair.PairID,
		PairName:          pair.Name,
		Value:             market.Value,
		ProviderTimestamp: market.Timestamp,
	})
	if err != nil {
		logger.Error("Failed to append fetched rate", slog.String("error", err.Error()))
		return nil, apperrors.ErrNoResults
	}

	logger.Info("Fetched new rate", slog.Int64("rate_id", saved.RateID), slog.String("value", saved.Value.String()))
	// Mark up the stored value, which is what later cached quotes read.
	return b.quoteFromRate(ctx, pair, saved, domain.QuoteSourceFetched)
}

func (b *PairBound) quoteFromRate(ctx context.Context, pair domain.CurrencyPair, rate *domain.Rate, source domain.QuoteSource) (*domain.PairQuote, error) {
	bids, err := pricing.ApplyMarkup(rate.Value, pair)
	if err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to apply markup",
			slog.String("pair", pair.Name), slog.String("error", err.Error()))
		return nil, apperrors.ErrNoResults
	}

	b.metrics.IncQuote(string(source))

	apiRate := rate.Value
	return &domain.PairQuote{
		APIRate:   &apiRate,
		Bids:      bids,
		Source:    source,
		CreatedAt: rate.CreatedAt,
		UpdatedAt: rate.CreatedAt,
	}, nil
}
