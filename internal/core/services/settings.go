package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/platform/config"
	"github.com/shopspring/decimal"
)

// StaticSettings serves pricing settings fixed at startup.
type StaticSettings struct {
	TransactionCost decimal.Decimal
	Tax             decimal.Decimal
	RateAPI         string
	Expiration      time.Duration
}

var _ portssvc.PricingSettings = StaticSettings{}

// NewStaticSettings reads the fallback pricing settings from config.
func NewStaticSettings(cfg *config.Config) StaticSettings {
	return StaticSettings{
		TransactionCost: cfg.DefaultTransactionCostPct,
		Tax:             cfg.DefaultTaxPct,
		RateAPI:         cfg.DefaultRateAPI,
	}
}

func (s StaticSettings) TransactionCostPct(context.Context) (decimal.Decimal, error) {
	return s.TransactionCost, nil
}

func (s StaticSettings) TaxPct(context.Context) (decimal.Decimal, error) {
	return s.Tax, nil
}

func (s StaticSettings) DefaultRateAPI(context.Context) (string, error) {
	return s.RateAPI, nil
}

func (s StaticSettings) RateExpiration(context.Context) (time.Duration, error) {
	return s.Expiration, nil
}

// ParamSettings reads pricing settings from the params store. A missing param
// falls back to the static value; any other read or parse error is returned.
type ParamSettings struct {
	params   portsrepo.ParamReader
	fallback StaticSettings
}

var _ portssvc.PricingSettings = (*ParamSettings)(nil)

func NewParamSettings(params portsrepo.ParamReader, fallback StaticSettings) *ParamSettings {
	return &ParamSettings{params: params, fallback: fallback}
}

func (s *ParamSettings) TransactionCostPct(ctx context.Context) (decimal.Decimal, error) {
	return s.decimalParam(ctx, domain.ParamTransactionCost, s.fallback.TransactionCost)
}

func (s *ParamSettings) TaxPct(ctx context.Context) (decimal.Decimal, error) {
	return s.decimalParam(ctx, domain.ParamTax, s.fallback.Tax)
}

func (s *ParamSettings) DefaultRateAPI(ctx context.Context) (string, error) {
	param, found, err := s.find(ctx, domain.ParamDefaultRateAPI)
	if err != nil || !found || param.String() == "" {
		return s.fallback.RateAPI, err
	}
	return param.String(), nil
}

// RateExpiration reads rate_expiration in minutes. 0 or negative disables expiry.
func (s *ParamSettings) RateExpiration(ctx context.Context) (time.Duration, error) {
	param, found, err := s.find(ctx, domain.ParamRateExpiration)
	if err != nil || !found {
		return s.fallback.Expiration, err
	}
	minutes, err := param.Int()
	if err != nil {
		return s.fallback.Expiration, err
	}
	if minutes <= 0 {
		return 0, nil
	}
	return time.Duration(minutes) * time.Minute, nil
}

func (s *ParamSettings) decimalParam(ctx context.Context, key string, fallback decimal.Decimal) (decimal.Decimal, error) {
	param, found, err := s.find(ctx, key)
	if err != nil {
		return decimal.Zero, err
	}
	if !found {
		return fallback, nil
	}
	return param.Decimal()
}

func (s *ParamSettings) find(ctx context.Context, key string) (*domain.Param, bool, error) {
	param, err := s.params.FindParam(ctx, key)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, false, nil
		}
		return nil, false, fmt.Errorf("failed to read param %s: %w", key, err)
	}
	return param, true, nil
}
