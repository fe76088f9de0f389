package rateproviders

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

const ExchangeRateAPIName = "exchangerate_api"

type exchangeRateAPIResponse struct {
	Result             string                     `json:"result"`
	TimeLastUpdateUnix int64                      `json:"time_last_update_unix"`
	BaseCode           string                     `json:"base_code"`
	ConversionRates    map[string]decimal.Decimal `json:"conversion_rates"`
}

// ExchangeRateAPI queries a /latest/{SOURCE} endpoint returning the rates of
// every currency against the source in conversion_rates.
type ExchangeRateAPI struct {
	httpProvider
}

func NewExchangeRateAPI(opts Options) *ExchangeRateAPI {
	return &ExchangeRateAPI{httpProvider: newHTTPProvider(ExchangeRateAPIName, opts)}
}

func (p *ExchangeRateAPI) FetchRate(ctx context.Context, source, quote string) (_ *domain.MarketRate, err error) {
	started := time.Now()
	defer func() { p.observe(started, err) }()

	source, quote = strings.ToUpper(source), strings.ToUpper(quote)

	path := "/latest/" + url.PathEscape(source)
	if p.apiKey != "" {
		path = "/" + url.PathEscape(p.apiKey) + path
	}

	var body exchangeRateAPIResponse
	if err = p.getJSON(ctx, path, nil, nil, &body); err != nil {
		return nil, err
	}
	if body.Result != "" && body.Result != "success" {
		return nil, unsuccessful(p.name)
	}

	value, ok := body.ConversionRates[quote]
	if !ok {
		return nil, missingQuote(p.name, source, quote)
	}

	rate := &domain.MarketRate{Source: source, Quote: quote, Value: value}
	if body.TimeLastUpdateUnix > 0 {
		rate.Timestamp = time.Unix(body.TimeLastUpdateUnix, 0).UTC()
	}
	return rate, nil
}
