package services_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/core/services"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type RateResolverTestSuite struct {
	suite.Suite
	registry *MockProviderRegistry
	provider *MockPairBoundProvider
	settings *MockPricingSettings
	metrics  *metrics.PricingMetrics
	resolver portssvc.RateResolverSvc
	ctx      context.Context
}

func (suite *RateResolverTestSuite) SetupTest() {
	suite.registry = new(MockProviderRegistry)
	suite.provider = &MockPairBoundProvider{name: "currencylayer"}
	suite.settings = new(MockPricingSettings)
	suite.metrics = metrics.NewPricingMetrics(prometheus.NewRegistry())
	suite.resolver = services.NewRateResolver(suite.registry, suite.settings, suite.metrics)
	suite.ctx = context.Background()
}

func (suite *RateResolverTestSuite) TestResolve_FixedPairNeverCallsProvider() {
	pair := fixedPair()

	for i := 0; i < 3; i++ {
		quote, err := suite.resolver.Resolve(suite.ctx, pair)

		suite.Require().NoError(err)
		suite.Nil(quote.APIRate)
		suite.Equal(domain.QuoteSourceFixed, quote.Source)
		suite.True(quote.Bid.Equal(dec("4300")))
		suite.True(quote.BidToCorps.Equal(dec("4310")))
		suite.True(quote.BidToImports.Equal(dec("4320")))
	}

	suite.registry.AssertNotCalled(suite.T(), "Lookup", mock.Anything)
	suite.provider.AssertNotCalled(suite.T(), "QuotePair", mock.Anything, mock.Anything, mock.Anything)
	suite.Equal(3.0, testutil.ToFloat64(suite.metrics.QuotesTotal.WithLabelValues("fixed")))
}

func (suite *RateResolverTestSuite) TestResolve_DispatchesOnAPIClass() {
	pair := marketPair()
	suite.registry.On("Lookup", "currencylayer").Return(suite.provider, true).Once()
	suite.settings.On("RateExpiration", suite.ctx).Return(5*time.Minute, nil).Once()
	suite.provider.On("QuotePair", suite.ctx, pair, 5*time.Minute).Return(marketQuote(), nil).Once()

	quote, err := suite.resolver.Resolve(suite.ctx, pair)

	suite.Require().NoError(err)
	suite.True(quote.APIRate.Equal(dec("700")))
	suite.True(quote.Bid.Equal(dec("707")))
	suite.registry.AssertExpectations(suite.T())
	suite.provider.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestResolve_ProviderFailureIsResolutionFailure() {
	pair := marketPair()
	suite.registry.On("Lookup", "currencylayer").Return(suite.provider, true)
	suite.settings.On("RateExpiration", suite.ctx).Return(time.Duration(0), nil)
	suite.provider.On("QuotePair", suite.ctx, pair, time.Duration(0)).Return(nil, apperrors.ErrNoResults)

	quote, err := suite.resolver.Resolve(suite.ctx, pair)

	suite.Nil(quote)
	suite.ErrorIs(err, apperrors.ErrResolutionFailure)
	suite.ErrorIs(err, apperrors.ErrNoResults)
	suite.Equal(500, apperrors.StatusCode(err))
	suite.Equal(1.0, testutil.ToFloat64(suite.metrics.QuotesTotal.WithLabelValues("failed")))
}

func (suite *RateResolverTestSuite) TestResolve_UnknownProvider() {
	pair := marketPair()
	pair.APIClass = "fixer"
	suite.registry.On("Lookup", "fixer").Return(nil, false)

	_, err := suite.resolver.Resolve(suite.ctx, pair)

	suite.ErrorIs(err, apperrors.ErrResolutionFailure)
	suite.ErrorIs(err, apperrors.ErrUnknownProvider)
}

func (suite *RateResolverTestSuite) TestResolve_ExpirationErrorMeansNoExpiry() {
	pair := marketPair()
	suite.registry.On("Lookup", "currencylayer").Return(suite.provider, true)
	suite.settings.On("RateExpiration", suite.ctx).Return(time.Duration(0), errors.New("db down"))
	suite.provider.On("QuotePair", suite.ctx, pair, time.Duration(0)).Return(marketQuote(), nil).Once()

	_, err := suite.resolver.Resolve(suite.ctx, pair)

	suite.Require().NoError(err)
	suite.provider.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestRefresh_FixedPairIsValidationError() {
	_, err := suite.resolver.Refresh(suite.ctx, fixedPair())

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.registry.AssertNotCalled(suite.T(), "Lookup", mock.Anything)
}

func (suite *RateResolverTestSuite) TestRefresh_MarketPair() {
	pair := marketPair()
	fetched := marketQuote()
	fetched.Source = domain.QuoteSourceFetched
	suite.registry.On("Lookup", "currencylayer").Return(suite.provider, true)
	suite.provider.On("RefreshPair", suite.ctx, pair).Return(fetched, nil).Once()

	quote, err := suite.resolver.Refresh(suite.ctx, pair)

	suite.Require().NoError(err)
	suite.Equal(domain.QuoteSourceFetched, quote.Source)
}

func (suite *RateResolverTestSuite) TestResolveBare_UsesDefaultRateAPI() {
	exrates := &MockPairBoundProvider{name: "exrates"}
	suite.settings.On("DefaultRateAPI", suite.ctx).Return("exrates", nil)
	suite.registry.On("Lookup", "exrates").Return(exrates, true)
	exrates.On("Quote", suite.ctx, "VES", "USD").Return(dec("0.0274"), true).Once()

	rate, ok := suite.resolver.ResolveBare(suite.ctx, "VES", "USD")

	suite.True(ok)
	suite.True(rate.Equal(dec("0.0274")))
	exrates.AssertExpectations(suite.T())
}

func (suite *RateResolverTestSuite) TestResolveBare_Absent() {
	suite.settings.On("DefaultRateAPI", suite.ctx).Return("currencylayer", nil)
	suite.registry.On("Lookup", "currencylayer").Return(suite.provider, true)
	suite.provider.On("Quote", suite.ctx, "VES", "USD").Return(decimal.Zero, false)

	_, ok := suite.resolver.ResolveBare(suite.ctx, "VES", "USD")
	suite.False(ok)
}

func (suite *RateResolverTestSuite) TestResolveBare_UnknownDefault() {
	suite.settings.On("DefaultRateAPI", suite.ctx).Return("nope", nil)
	suite.registry.On("Lookup", "nope").Return(nil, false)

	_, ok := suite.resolver.ResolveBare(suite.ctx, "VES", "USD")
	suite.False(ok)
}

func (suite *RateResolverTestSuite) TestResolveBare_SameCurrency() {
	rate, ok := suite.resolver.ResolveBare(suite.ctx, "usd", "USD")

	suite.True(ok)
	suite.True(rate.Equal(decimal.NewFromInt(1)))
	suite.settings.AssertNotCalled(suite.T(), "DefaultRateAPI", mock.Anything)
}

func TestRateResolverTestSuite(t *testing.T) {
	suite.Run(t, new(RateResolverTestSuite))
}
