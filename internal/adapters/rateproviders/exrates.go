package rateproviders

import (
	"context"
	"net/url"
	"strings"
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

const ExRatesName = "exrates"

// ExRates queries /exrates/{source} which answers with a nested map
// {source: {quote: rate}}. Key casing varies between deployments.
type ExRates struct {
	httpProvider
}

func NewExRates(opts Options) *ExRates {
	return &ExRates{httpProvider: newHTTPProvider(ExRatesName, opts)}
}

func (p *ExRates) FetchRate(ctx context.Context, source, quote string) (_ *domain.MarketRate, err error) {
	started := time.Now()
	defer func() { p.observe(started, err) }()

	var headers map[string]string
	if p.apiKey != "" {
		headers = map[string]string{"apikey": p.apiKey}
	}

	var body map[string]map[string]decimal.Decimal
	if err = p.getJSON(ctx, "/exrates/"+url.PathEscape(strings.ToLower(source)), nil, headers, &body); err != nil {
		return nil, err
	}

	quotes, ok := lookupFold(body, source)
	if !ok {
		return nil, missingQuote(p.name, source, quote)
	}
	value, ok := lookupFold(quotes, quote)
	if !ok {
		return nil, missingQuote(p.name, source, quote)
	}

	return &domain.MarketRate{
		Source: strings.ToUpper(source),
		Quote:  strings.ToUpper(quote),
		Value:  value,
	}, nil
}

// lookupFold tries key as given, then lower-case, then upper-case.
func lookupFold[V any](m map[string]V, key string) (V, bool) {
	for _, k := range []string{key, strings.ToLower(key), strings.ToUpper(key)} {
		if v, ok := m[k]; ok {
			return v, true
		}
	}
	var zero V
	return zero, false
}
