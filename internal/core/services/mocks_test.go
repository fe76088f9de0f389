package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/core/ports/providers"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// --- Mock PairBoundProvider ---
type MockPairBoundProvider struct {
	mock.Mock
	name string
}

func (m *MockPairBoundProvider) Name() string { return m.name }

func (m *MockPairBoundProvider) QuotePair(ctx context.Context, pair domain.CurrencyPair, maxAge time.Duration) (*domain.PairQuote, error) {
	args := m.Called(ctx, pair, maxAge)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PairQuote), args.Error(1)
}

func (m *MockPairBoundProvider) RefreshPair(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error) {
	args := m.Called(ctx, pair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PairQuote), args.Error(1)
}

func (m *MockPairBoundProvider) Quote(ctx context.Context, source, quote string) (decimal.Decimal, bool) {
	args := m.Called(ctx, source, quote)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}

// --- Mock ProviderRegistry ---
type MockProviderRegistry struct {
	mock.Mock
}

func (m *MockProviderRegistry) Lookup(name string) (providers.PairBoundProvider, bool) {
	args := m.Called(name)
	if args.Get(0) == nil {
		return nil, args.Bool(1)
	}
	return args.Get(0).(providers.PairBoundProvider), args.Bool(1)
}

// --- Mock PricingSettings ---
type MockPricingSettings struct {
	mock.Mock
}

func (m *MockPricingSettings) TransactionCostPct(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPricingSettings) TaxPct(ctx context.Context) (decimal.Decimal, error) {
	args := m.Called(ctx)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

func (m *MockPricingSettings) DefaultRateAPI(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

func (m *MockPricingSettings) RateExpiration(ctx context.Context) (time.Duration, error) {
	args := m.Called(ctx)
	return args.Get(0).(time.Duration), args.Error(1)
}

// --- Mock RateResolverSvc ---
type MockRateResolver struct {
	mock.Mock
}

func (m *MockRateResolver) Resolve(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error) {
	args := m.Called(ctx, pair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PairQuote), args.Error(1)
}

func (m *MockRateResolver) Refresh(ctx context.Context, pair domain.CurrencyPair) (*domain.PairQuote, error) {
	args := m.Called(ctx, pair)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.PairQuote), args.Error(1)
}

func (m *MockRateResolver) ResolveBare(ctx context.Context, source, quote string) (decimal.Decimal, bool) {
	args := m.Called(ctx, source, quote)
	return args.Get(0).(decimal.Decimal), args.Bool(1)
}

// --- Mock OrderPricingSvc ---
type MockOrderPricing struct {
	mock.Mock
}

func (m *MockOrderPricing) ValidateRate(ctx context.Context, pair domain.CurrencyPair, clientRate decimal.Decimal, accountType domain.AccountType) bool {
	args := m.Called(ctx, pair, clientRate, accountType)
	return args.Bool(0)
}

func (m *MockOrderPricing) ConvertAmountToUSD(ctx context.Context, symbol string, amount decimal.Decimal) (decimal.Decimal, error) {
	args := m.Called(ctx, symbol, amount)
	return args.Get(0).(decimal.Decimal), args.Error(1)
}

// --- Mock repositories ---
type MockCurrencyPairRepository struct {
	mock.Mock
}

func (m *MockCurrencyPairRepository) FindPairByID(ctx context.Context, pairID int64) (*domain.CurrencyPair, error) {
	args := m.Called(ctx, pairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPair), args.Error(1)
}

func (m *MockCurrencyPairRepository) FindPairByName(ctx context.Context, name string) (*domain.CurrencyPair, error) {
	args := m.Called(ctx, name)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.CurrencyPair), args.Error(1)
}

type MockRateRepository struct {
	mock.Mock
}

func (m *MockRateRepository) FindLatestRate(ctx context.Context, pairID int64) (*domain.Rate, error) {
	args := m.Called(ctx, pairID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

func (m *MockRateRepository) ListRates(ctx context.Context, pairID int64, limit int) ([]domain.Rate, error) {
	args := m.Called(ctx, pairID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rate), args.Error(1)
}

func (m *MockRateRepository) AppendRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	args := m.Called(ctx, rate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rate), args.Error(1)
}

type MockPriorityRepository struct {
	mock.Mock
}

func (m *MockPriorityRepository) FindPriorityByID(ctx context.Context, priorityID int64) (*domain.Priority, error) {
	args := m.Called(ctx, priorityID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Priority), args.Error(1)
}

type MockOrderRepository struct {
	mock.Mock
}

func (m *MockOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Order), args.Error(1)
}

func (m *MockOrderRepository) SaveOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	args := m.Called(ctx, order)
	switch stored := args.Get(0).(type) {
	case func(domain.Order) *domain.Order:
		return stored(order), args.Error(1)
	case *domain.Order:
		return stored, args.Error(1)
	}
	return nil, args.Error(1)
}

// echoOrder stands in for a store that keeps the order unchanged.
func echoOrder(order domain.Order) *domain.Order {
	return &order
}

type MockParamReader struct {
	mock.Mock
}

func (m *MockParamReader) FindParam(ctx context.Context, key string) (*domain.Param, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Param), args.Error(1)
}

// --- Mock OrderEventPublisher ---
type MockOrderEventPublisher struct {
	mock.Mock
}

func (m *MockOrderEventPublisher) PublishOrderPriced(ctx context.Context, order domain.Order) error {
	args := m.Called(ctx, order)
	return args.Error(0)
}

// --- Fixtures ---

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func marketPair() domain.CurrencyPair {
	return domain.CurrencyPair{
		PairID:          7,
		Name:            "USD/VES",
		BaseCurrencyID:  1,
		QuoteCurrencyID: 2,
		BaseSymbol:      "USD",
		QuoteSymbol:     "VES",
		OffsetMode:      domain.OffsetModePercentage,
		Offset:          dec("1"),
		OffsetToCorps:   dec("2"),
		OffsetToImports: dec("3"),
		APIClass:        "currencylayer",
	}
}

func fixedPair() domain.CurrencyPair {
	pair := marketPair()
	pair.PairID = 8
	pair.Name = "EUR/COP"
	pair.BaseSymbol = "EUR"
	pair.QuoteSymbol = "COP"
	pair.HasFixedRate = true
	pair.FixedBid = dec("4300")
	pair.FixedBidToCorps = dec("4310")
	pair.FixedBidToImports = dec("4320")
	return pair
}

func marketQuote() *domain.PairQuote {
	apiRate := dec("700")
	return &domain.PairQuote{
		APIRate: &apiRate,
		Bids: domain.Bids{
			Bid:          dec("707"),
			BidToCorps:   dec("714"),
			BidToImports: dec("721"),
		},
		Source: domain.QuoteSourceCached,
	}
}
