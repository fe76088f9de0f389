package services

import (
	"context"
	"errors"
	"log/slog"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
)

const (
	DefaultHistoryLimit = 20
	MaxHistoryLimit     = 100
)

// ExchangeRateService answers quote requests for named pairs.
type ExchangeRateService struct {
	BaseService
	pairRepo portsrepo.CurrencyPairReader
	rateRepo portsrepo.RateReader
	resolver portssvc.RateResolverSvc
}

var _ portssvc.ExchangeRateSvcFacade = (*ExchangeRateService)(nil)

// NewExchangeRateService creates a new ExchangeRateService.
func NewExchangeRateService(pairRepo portsrepo.CurrencyPairReader, rateRepo portsrepo.RateReader, resolver portssvc.RateResolverSvc) *ExchangeRateService {
	return &ExchangeRateService{
		pairRepo: pairRepo,
		rateRepo: rateRepo,
		resolver: resolver,
	}
}

// GetExchangeRate resolves the current bids of BASE/QUOTE. An unknown pair is
// ErrNotFound; a resolution failure is returned as is.
func (s *ExchangeRateService) GetExchangeRate(ctx context.Context, baseCode, quoteCode string) (*domain.PairQuote, error) {
	pair, err := s.findPair(ctx, baseCode, quoteCode)
	if err != nil {
		return nil, err
	}

	quote, err := s.resolver.Resolve(ctx, *pair)
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve exchange rate", slog.String("pair", pair.Name))
		return nil, err
	}
	return quote, nil
}

// ListRateHistory returns the latest rate log entries of the pair, newest first.
func (s *ExchangeRateService) ListRateHistory(ctx context.Context, baseCode, quoteCode string, limit int) ([]domain.Rate, error) {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if limit > MaxHistoryLimit {
		limit = MaxHistoryLimit
	}

	pair, err := s.findPair(ctx, baseCode, quoteCode)
	if err != nil {
		return nil, err
	}

	rates, err := s.rateRepo.ListRates(ctx, pair.PairID, limit)
	if err != nil {
		s.LogError(ctx, err, "Failed to list rate history", slog.String("pair", pair.Name))
		return nil, err
	}
	if rates == nil {
		rates = []domain.Rate{}
	}
	return rates, nil
}

// RefreshExchangeRate forces a provider fetch for a market-priced pair.
func (s *ExchangeRateService) RefreshExchangeRate(ctx context.Context, baseCode, quoteCode string) (*domain.PairQuote, error) {
	pair, err := s.findPair(ctx, baseCode, quoteCode)
	if err != nil {
		return nil, err
	}

	quote, err := s.resolver.Refresh(ctx, *pair)
	if err != nil {
		if !errors.Is(err, apperrors.ErrValidation) {
			s.LogError(ctx, err, "Failed to refresh exchange rate", slog.String("pair", pair.Name))
		}
		return nil, err
	}

	s.LogInfo(ctx, "Exchange rate refreshed", slog.String("pair", pair.Name), slog.String("api_rate", quote.APIRate.String()))
	return quote, nil
}

func (s *ExchangeRateService) findPair(ctx context.Context, baseCode, quoteCode string) (*domain.CurrencyPair, error) {
	name := domain.PairName(baseCode, quoteCode)
	pair, err := s.pairRepo.FindPairByName(ctx, name)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to load currency pair", slog.String("pair", name))
		}
		return nil, err
	}
	return pair, nil
}
