package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// PricingMetrics holds the counters of the pricing core.
// A nil *PricingMetrics is valid and records nothing.
type PricingMetrics struct {
	ProviderRequestsTotal   *prometheus.CounterVec
	ProviderRequestDuration *prometheus.HistogramVec
	QuotesTotal             *prometheus.CounterVec
	RateValidationsTotal    *prometheus.CounterVec
	OrdersCreatedTotal      *prometheus.CounterVec
}

// NewPricingMetrics registers the pricing metrics on reg.
func NewPricingMetrics(reg prometheus.Registerer) *PricingMetrics {
	factory := promauto.With(reg)

	return &PricingMetrics{
		ProviderRequestsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_provider_requests_total",
				Help: "Calls made to external rate providers by outcome",
			},
			[]string{"provider", "outcome"},
		),
		ProviderRequestDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "rate_provider_request_duration_seconds",
				Help:    "Latency of external rate provider calls",
				Buckets: prometheus.DefBuckets,
			},
			[]string{"provider"},
		),
		QuotesTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_quotes_total",
				Help: "Pair quotes resolved by source (fixed, cached, fetched, failed)",
			},
			[]string{"source"},
		),
		RateValidationsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "rate_validations_total",
				Help: "Client rate validations by result",
			},
			[]string{"result"},
		),
		OrdersCreatedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "orders_created_total",
				Help: "Orders priced and persisted per pair",
			},
			[]string{"pair"},
		),
	}
}

// ObserveProviderCall records one provider call.
func (m *PricingMetrics) ObserveProviderCall(provider string, started time.Time, err error) {
	if m == nil {
		return
	}
	outcome := "success"
	if err != nil {
		outcome = "failure"
	}
	m.ProviderRequestsTotal.WithLabelValues(provider, outcome).Inc()
	m.ProviderRequestDuration.WithLabelValues(provider).Observe(time.Since(started).Seconds())
}

// IncQuote counts a resolved quote by source.
func (m *PricingMetrics) IncQuote(source string) {
	if m == nil {
		return
	}
	m.QuotesTotal.WithLabelValues(source).Inc()
}

// IncValidation counts a rate validation result ("match", "mismatch", "error").
func (m *PricingMetrics) IncValidation(result string) {
	if m == nil {
		return
	}
	m.RateValidationsTotal.WithLabelValues(result).Inc()
}

// IncOrderCreated counts a persisted order.
func (m *PricingMetrics) IncOrderCreated(pairName string) {
	if m == nil {
		return
	}
	m.OrdersCreatedTotal.WithLabelValues(pairName).Inc()
}
