package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/core/ports/providers"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
	"github.com/SscSPs/remittance_pricing/internal/utils/pricing"
	"github.com/shopspring/decimal"
)

type rateResolver struct {
	BaseService
	registry providers.ProviderRegistry
	settings portssvc.PricingSettings
	metrics  *metrics.PricingMetrics
}

var _ portssvc.RateResolverSvc = (*rateResolver)(nil)

// NewRateResolver creates the resolver that chooses between fixed rates and
// the provider named by each pair's apiClass.
func NewRateResolver(registry providers.ProviderRegistry, settings portssvc.PricingSettings, m *metrics.PricingMetrics) portssvc.RateResolverSvc {
	return &rateResolver{registry: registry, settings: settings, metrics: m}
}

func (s *rateResolver) Resolve(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error) {
	if pair.HasFixedRate {
		s.metrics.IncQuote(string(domain.QuoteSourceFixed))
		return &domain.PairQuote{
			APIRate:   nil,
			Bids:      pricing.FixedBids(pair),
			Source:    domain.QuoteSourceFixed,
			CreatedAt: pair.CreatedAt,
			UpdatedAt: pair.LastUpdatedAt,
		}, nil
	}

	provider, err := s.provider(ctx, pair)
	if err != nil {
		return nil, err
	}

	maxAge, err := s.settings.RateExpiration(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read rate expiration, cached rates will not expire", slog.String("pair", pair.Name))
		maxAge = 0
	}

	quote, err := provider.QuotePair(ctx, pair, maxAge)
	if err != nil {
		s.metrics.IncQuote("failed")
		return nil, fmt.Errorf("%w: pair %s: %w", apperrors.ErrResolutionFailure, pair.Name, err)
	}
	return quote, nil
}

func (s *rateResolver) Refresh(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error) {
	if pair.HasFixedRate {
		return nil, apperrors.NewValidationError(fmt.Sprintf("pair %s has a fixed rate and cannot be refreshed", pair.Name))
	}

	provider, err := s.provider(ctx, pair)
	if err != nil {
		return nil, err
	}

	quote, err := provider.RefreshPair(ctx, pair)
	if err != nil {
		s.metrics.IncQuote("failed")
		return nil, fmt.Errorf("%w: pair %s: %w", apperrors.ErrResolutionFailure, pair.Name, err)
	}
	return quote, nil
}

// ResolveBare fetches a raw rate from the default provider. Same-currency
// lookups are 1 without a provider call.
func (s *rateResolver) ResolveBare(ctx context.Context, source, quote string) (decimal.Decimal, bool) {
	if strings.EqualFold(source, quote) {
		return decimal.NewFromInt(1), true
	}

	name, err := s.settings.DefaultRateAPI(ctx)
	if err != nil {
		s.LogWarn(ctx, err, "Failed to read default rate api")
		return decimal.Zero, false
	}

	provider, ok := s.registry.Lookup(name)
	if !ok {
		s.LogError(ctx, apperrors.ErrUnknownProvider, "Default rate api is not registered", slog.String("provider", name))
		return decimal.Zero, false
	}

	return provider.Quote(ctx, source, quote)
}

func (s *rateResolver) provider(ctx context.Context, pair domain.CurrencyPair) (providers.PairBoundProvider, error) {
	provider, ok := s.registry.Lookup(pair.APIClass)
	if !ok {
		s.metrics.IncQuote("failed")
		s.LogError(ctx, apperrors.ErrUnknownProvider, "Pair references an unknown rate provider",
			slog.String("pair", pair.Name), slog.String("api_class", pair.APIClass))
		return nil, fmt.Errorf("%w: pair %s: %w %q", apperrors.ErrResolutionFailure, pair.Name, apperrors.ErrUnknownProvider, pair.APIClass)
	}
	return provider, nil
}
