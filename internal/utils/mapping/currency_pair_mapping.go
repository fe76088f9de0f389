package mapping

import (
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/models"
)

// ToDomainCurrencyPair converts a model CurrencyPair to a domain CurrencyPair
func ToDomainCurrencyPair(m models.CurrencyPair) domain.CurrencyPair {
	return domain.CurrencyPair{
		PairID:            m.PairID,
		Name:              m.Name,
		BaseCurrencyID:    m.BaseCurrencyID,
		QuoteCurrencyID:   m.QuoteCurrencyID,
		BaseSymbol:        m.BaseSymbol,
		QuoteSymbol:       m.QuoteSymbol,
		OffsetMode:        domain.OffsetMode(m.OffsetMode),
		Offset:            m.OffsetValue,
		OffsetToCorps:     m.OffsetToCorps,
		OffsetToImports:   m.OffsetToImports,
		MinPipValue:       m.MinPipValue,
		HasFixedRate:      m.HasFixedRate,
		FixedBid:          m.FixedBid,
		FixedBidToCorps:   m.FixedBidToCorps,
		FixedBidToImports: m.FixedBidToImports,
		APIClass:          m.APIClass,
		ShowInverse:       m.ShowInverse,
		AuditFields:       ToDomainAuditFields(m.AuditFields),
	}
}
