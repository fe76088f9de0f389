package services

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
	"github.com/shopspring/decimal"
)

const usdSymbol = "USD"

type orderPricingService struct {
	BaseService
	resolver portssvc.RateResolverSvc
	metrics  *metrics.PricingMetrics
}

var _ portssvc.OrderPricingSvc = (*orderPricingService)(nil)

func NewOrderPricingService(resolver portssvc.RateResolverSvc, m *metrics.PricingMetrics) portssvc.OrderPricingSvc {
	return &orderPricingService{resolver: resolver, metrics: m}
}

// ValidateRate fails closed: any resolution error or unknown account type rejects.
func (s *orderPricingService) ValidateRate(ctx context.Context, pair domain.CurrencyPair, clientRate decimal.Decimal, accountType domain.AccountType) bool {
	quote, err := s.resolver.Resolve(ctx, pair)
	if err != nil {
		s.metrics.IncValidation("error")
		s.LogWarn(ctx, err, "Rate validation could not resolve the pair", slog.String("pair", pair.Name))
		return false
	}

	bid, ok := quote.For(accountType)
	if !ok {
		s.metrics.IncValidation("error")
		s.LogDebug(ctx, "Unknown account type in rate validation", slog.String("account_type", string(accountType)))
		return false
	}

	if !bid.Equal(clientRate) {
		s.metrics.IncValidation("mismatch")
		s.LogInfo(ctx, "Client rate does not match current bid",
			slog.String("pair", pair.Name),
			slog.String("client_rate", clientRate.String()),
			slog.String("bid", bid.String()))
		return false
	}

	s.metrics.IncValidation("match")
	return true
}

func (s *orderPricingService) ConvertAmountToUSD(ctx context.Context, symbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	if strings.EqualFold(symbol, usdSymbol) {
		return amount, nil
	}

	rate, ok := s.resolver.ResolveBare(ctx, symbol, usdSymbol)
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: no %s/%s rate available", apperrors.ErrResolutionFailure, strings.ToUpper(symbol), usdSymbol)
	}
	return amount.Mul(rate), nil
}
