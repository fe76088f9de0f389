package mapping

import (
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/models"
)

// ToModelRate converts a domain Rate to a model Rate. A zero provider
// timestamp is stored as NULL.
func ToModelRate(d domain.Rate) models.Rate {
	m := models.Rate{
		RateID:          d.RateID,
		BaseCurrencyID:  d.BaseCurrencyID,
		QuoteCurrencyID: d.QuoteCurrencyID,
		PairID:          d.PairID,
		PairName:        d.PairName,
		Value:           d.Value,
		CreatedAt:       d.CreatedAt,
	}
	if !d.ProviderTimestamp.IsZero() {
		ts := d.ProviderTimestamp
		m.ProviderTimestamp = &ts
	}
	return m
}

// ToDomainRate converts a model Rate to a domain Rate
func ToDomainRate(m models.Rate) domain.Rate {
	d := domain.Rate{
		RateID:          m.RateID,
		BaseCurrencyID:  m.BaseCurrencyID,
		QuoteCurrencyID: m.QuoteCurrencyID,
		PairID:          m.PairID,
		PairName:        m.PairName,
		Value:           m.Value,
		CreatedAt:       m.CreatedAt,
	}
	if m.ProviderTimestamp != nil {
		d.ProviderTimestamp = *m.ProviderTimestamp
	}
	return d
}

// ToDomainRates converts a slice of model Rates
func ToDomainRates(ms []models.Rate) []domain.Rate {
	ds := make([]domain.Rate, len(ms))
	for i, m := range ms {
		ds[i] = ToDomainRate(m)
	}
	return ds
}
