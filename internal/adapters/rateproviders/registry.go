package rateproviders

import (
	"strings"

	"github.com/SscSPs/remittance_pricing/internal/core/ports/providers"
	"github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
)

// Registry resolves provider names case-insensitively.
type Registry struct {
	providers map[string]providers.PairBoundProvider
}

var _ providers.ProviderRegistry = (*Registry)(nil)

func NewRegistry(bound ...providers.PairBoundProvider) *Registry {
	r := &Registry{providers: make(map[string]providers.PairBoundProvider, len(bound))}
	for _, p := range bound {
		r.Register(p)
	}
	return r
}

// Register adds p, replacing any provider registered under the same name.
func (r *Registry) Register(p providers.PairBoundProvider) {
	r.providers[strings.ToLower(p.Name())] = p
}

func (r *Registry) Lookup(name string) (providers.PairBoundProvider, bool) {
	p, ok := r.providers[strings.ToLower(strings.TrimSpace(name))]
	return p, ok
}

// DefaultOptions holds the per-provider options used by NewDefaultRegistry.
type DefaultOptions struct {
	CurrencyLayer   Options
	ExchangeRateAPI Options
	ExRates         Options
}

// NewDefaultRegistry wires the three HTTP adapters to the rate log.
func NewDefaultRegistry(opts DefaultOptions, rates repositories.RateRepositoryFacade, m *metrics.PricingMetrics) *Registry {
	return NewRegistry(
		NewPairBound(NewCurrencyLayer(opts.CurrencyLayer), rates, m),
		NewPairBound(NewExchangeRateAPI(opts.ExchangeRateAPI), rates, m),
		NewPairBound(NewExRates(opts.ExRates), rates, m),
	)
}
