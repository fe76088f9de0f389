package rateproviders

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

const CurrencyLayerName = "currencylayer"

type currencyLayerResponse struct {
	Success   bool                       `json:"success"`
	Timestamp int64                      `json:"timestamp"`
	Source    string                     `json:"source"`
	Quotes    map[string]decimal.Decimal `json:"quotes"`
}

// CurrencyLayer queries a currencylayer style /live endpoint. Quotes are keyed
// by the concatenated symbols, e.g. "USDVES".
type CurrencyLayer struct {
	httpProvider
}

func NewCurrencyLayer(opts Options) *CurrencyLayer {
	return &CurrencyLayer{httpProvider: newHTTPProvider(CurrencyLayerName, opts)}
}

func (p *CurrencyLayer) FetchRate(ctx context.Context, source, quote string) (_ *domain.MarketRate, err error) {
	started := time.Now()
	defer func() { p.observe(started, err) }()

	source, quote = strings.ToUpper(source), strings.ToUpper(quote)

	query := url.Values{}
	query.Set("access_key", p.apiKey)
	query.Set("source", source)
	query.Set("currencies", quote)

	var body currencyLayerResponse
	if err = p.getJSON(ctx, "/live", query, nil, &body); err != nil {
		return nil, err
	}
	if !body.Success {
		return nil, unsuccessful(p.name)
	}

	value, ok := body.Quotes[source+quote]
	if !ok {
		return nil, missingQuote(p.name, source, quote)
	}

	rate := &domain.MarketRate{Source: source, Quote: quote, Value: value}
	if body.Timestamp > 0 {
		rate.Timestamp = time.Unix(body.Timestamp, 0).UTC()
	}
	return rate, nil
}
