package rateproviders

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/apperrors"
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeProvider struct {
	name  string
	value decimal.Decimal
	err   error
	calls []string
}

func (f *fakeProvider) Name() string { return f.name }

func (f *fakeProvider) FetchRate(_ context.Context, source, quote string) (*domain.MarketRate, error) {
	f.calls = append(f.calls, source+"/"+quote)
	if f.err != nil {
		return nil, f.err
	}
	return &domain.MarketRate{Source: source, Quote: quote, Value: f.value}, nil
}

// memoryRates is an in-memory append-only rate log. With roundTo set it
// stores values at that scale, like a NUMERIC(p, s) column would.
type memoryRates struct {
	mu      sync.Mutex
	rows    []domain.Rate
	now     func() time.Time
	readErr error
	roundTo *int32
}

func (m *memoryRates) FindLatestRate(_ context.Context, pairID int64) (*domain.Rate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.readErr != nil {
		return nil, m.readErr
	}
	for i := len(m.rows) - 1; i >= 0; i-- {
		if m.rows[i].PairID == pairID {
			r := m.rows[i]
			return &r, nil
		}
	}
	return nil, apperrors.NewNotFoundError("rate not found")
}

func (m *memoryRates) ListRates(_ context.Context, pairID int64, limit int) ([]domain.Rate, error) {
	return nil, nil
}

func (m *memoryRates) AppendRate(_ context.Context, rate domain.Rate) (*domain.Rate, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	rate.RateID = int64(len(m.rows) + 1)
	rate.CreatedAt = m.now()
	if m.roundTo != nil {
		rate.Value = rate.Value.Round(*m.roundTo)
	}
	m.rows = append(m.rows, rate)
	return &rate, nil
}

type clock struct{ t time.Time }

func (c *clock) Now() time.Time { return c.t }

func percentagePair() domain.CurrencyPair {
	return domain.CurrencyPair{
		PairID:          7,
		Name:            "USD/VES",
		BaseCurrencyID:  1,
		QuoteCurrencyID: 2,
		BaseSymbol:      "USD",
		QuoteSymbol:     "VES",
		OffsetMode:      domain.OffsetModePercentage,
		Offset:          decimal.NewFromInt(1),
		OffsetToCorps:   decimal.NewFromInt(2),
		OffsetToImports: decimal.NewFromInt(3),
		APIClass:        "fake",
	}
}

func setup() (*PairBound, *fakeProvider, *memoryRates, *clock) {
	c := &clock{t: time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)}
	provider := &fakeProvider{name: "fake", value: decimal.NewFromInt(700)}
	rates := &memoryRates{now: c.Now}
	bound := NewPairBound(provider, rates, nil)
	bound.now = c.Now
	return bound, provider, rates, c
}

func TestPairBound_FetchesOnMissAndCachesAfterwards(t *testing.T) {
	bound, provider, rates, _ := setup()
	ctx := context.Background()

	first, err := bound.QuotePair(ctx, percentagePair(), 0)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteSourceFetched, first.Source)
	assert.True(t, first.APIRate.Equal(decimal.NewFromInt(700)))
	assert.True(t, first.Bid.Equal(decimal.NewFromInt(707)))
	assert.True(t, first.BidToCorps.Equal(decimal.NewFromInt(714)))
	assert.True(t, first.BidToImports.Equal(decimal.NewFromInt(721)))
	require.Len(t, rates.rows, 1)
	assert.Equal(t, "USD/VES", rates.rows[0].PairName)

	// the provider moves, the cached rate keeps answering
	provider.value = decimal.NewFromInt(800)
	second, err := bound.QuotePair(ctx, percentagePair(), 0)
	require.NoError(t, err)

	assert.Equal(t, domain.QuoteSourceCached, second.Source)
	assert.True(t, second.Bid.Equal(first.Bid))
	assert.Len(t, provider.calls, 1)
	assert.Len(t, rates.rows, 1)
}

func TestPairBound_ExpiredCacheFetchesAgain(t *testing.T) {
	bound, provider, rates, c := setup()
	ctx := context.Background()

	_, err := bound.QuotePair(ctx, percentagePair(), time.Minute)
	require.NoError(t, err)

	c.t = c.t.Add(30 * time.Second)
	quote, err := bound.QuotePair(ctx, percentagePair(), time.Minute)
	require.NoError(t, err)
	assert.Equal(t, domain.QuoteSourceCached, quote.Source)

	c.t = c.t.Add(2 * time.Minute)
	provider.value = decimal.NewFromInt(710)
	quote, err = bound.QuotePair(ctx, percentagePair(), time.Minute)
	require.NoError(t, err)

	assert.Equal(t, domain.QuoteSourceFetched, quote.Source)
	assert.True(t, quote.APIRate.Equal(decimal.NewFromInt(710)))
	assert.Len(t, provider.calls, 2)
	assert.Len(t, rates.rows, 2)
}

func TestPairBound_ProviderFailureIsNoResults(t *testing.T) {
	bound, provider, rates, _ := setup()
	provider.err = errors.New("connection refused")

	quote, err := bound.QuotePair(context.Background(), percentagePair(), 0)

	assert.Nil(t, quote)
	assert.ErrorIs(t, err, apperrors.ErrNoResults)
	assert.Empty(t, rates.rows)
}

func TestPairBound_ExpiredCacheAndFailingProviderIsNoResults(t *testing.T) {
	bound, provider, _, c := setup()
	ctx := context.Background()

	_, err := bound.QuotePair(ctx, percentagePair(), time.Minute)
	require.NoError(t, err)

	c.t = c.t.Add(time.Hour)
	provider.err = errors.New("timeout")
	_, err = bound.QuotePair(ctx, percentagePair(), time.Minute)

	assert.ErrorIs(t, err, apperrors.ErrNoResults)
}

func TestPairBound_UnreadableCacheFallsBackToProvider(t *testing.T) {
	bound, provider, rates, _ := setup()
	rates.readErr = errors.New("db down")

	quote, err := bound.QuotePair(context.Background(), percentagePair(), 0)

	require.NoError(t, err)
	assert.Equal(t, domain.QuoteSourceFetched, quote.Source)
	assert.Len(t, provider.calls, 1)
}

func TestPairBound_UnknownOffsetModeIsNoResults(t *testing.T) {
	bound, _, _, _ := setup()
	pair := percentagePair()
	pair.OffsetMode = "logarithmic"

	_, err := bound.QuotePair(context.Background(), pair, 0)

	assert.ErrorIs(t, err, apperrors.ErrNoResults)
}

func TestPairBound_InversePairQueriesQuoteFirst(t *testing.T) {
	bound, provider, _, _ := setup()
	pair := percentagePair()
	pair.ShowInverse = true

	_, err := bound.QuotePair(context.Background(), pair, 0)

	require.NoError(t, err)
	assert.Equal(t, []string{"VES/USD"}, provider.calls)
}

func TestPairBound_RefreshAlwaysFetches(t *testing.T) {
	bound, provider, rates, _ := setup()
	ctx := context.Background()

	_, err := bound.QuotePair(ctx, percentagePair(), 0)
	require.NoError(t, err)
	provider.value = decimal.NewFromInt(750)

	quote, err := bound.RefreshPair(ctx, percentagePair())

	require.NoError(t, err)
	assert.Equal(t, domain.QuoteSourceFetched, quote.Source)
	assert.True(t, quote.APIRate.Equal(decimal.NewFromInt(750)))
	assert.Len(t, provider.calls, 2)
	assert.Len(t, rates.rows, 2)
}

func TestPairBound_QuoteBareMode(t *testing.T) {
	bound, provider, rates, _ := setup()

	value, ok := bound.Quote(context.Background(), "EUR", "USD")
	assert.True(t, ok)
	assert.True(t, value.Equal(decimal.NewFromInt(700)))

	provider.err = errors.New("boom")
	value, ok = bound.Quote(context.Background(), "EUR", "USD")
	assert.False(t, ok)
	assert.True(t, value.IsZero())
	assert.Empty(t, rates.rows)
}

func TestRegistry_LookupIsCaseInsensitive(t *testing.T) {
	rates := &memoryRates{now: time.Now}
	registry := NewDefaultRegistry(DefaultOptions{}, rates, nil)

	for _, name := range []string{"currencylayer", "CurrencyLayer", " EXRATES ", "exchangerate_api"} {
		p, ok := registry.Lookup(name)
		assert.True(t, ok, name)
		assert.NotNil(t, p)
	}

	_, ok := registry.Lookup("fixer")
	assert.False(t, ok)
}

func TestPairBound_FetchedQuoteMatchesLaterCachedQuote(t *testing.T) {
	bound, provider, rates, _ := setup()
	scale := int32(12)
	rates.roundTo = &scale
	provider.value = decimal.RequireFromString("0.027397260273972601")
	ctx := context.Background()

	fetched, err := bound.QuotePair(ctx, percentagePair(), 0)
	require.NoError(t, err)
	require.Equal(t, domain.QuoteSourceFetched, fetched.Source)

	cached, err := bound.QuotePair(ctx, percentagePair(), 0)
	require.NoError(t, err)
	require.Equal(t, domain.QuoteSourceCached, cached.Source)

	assert.Equal(t, cached.APIRate.String(), fetched.APIRate.String())
	assert.Equal(t, cached.Bid.String(), fetched.Bid.String())
	assert.Equal(t, cached.BidToCorps.String(), fetched.BidToCorps.String())
	assert.Equal(t, cached.BidToImports.String(), fetched.BidToImports.String())
}
