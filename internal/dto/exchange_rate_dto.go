package dto

import (
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ExchangeRateResponse is the quote shown to clients before they place an order.
// APIRate is null for fixed-rate pairs.
type ExchangeRateResponse struct {
	APIRate      *decimal.Decimal `json:"api_rate"`
	Bid          decimal.Decimal  `json:"bid"`
	BidToCorps   decimal.Decimal  `json:"bid_to_corps"`
	BidToImports decimal.Decimal  `json:"bid_to_imports"`
	CreatedAt    time.Time        `json:"created_at"`
	UpdatedAt    time.Time        `json:"updated_at"`
}

// ToExchangeRateResponse converts a resolved domain.PairQuote to ExchangeRateResponse DTO
func ToExchangeRateResponse(quote *domain.PairQuote) ExchangeRateResponse {
	return ExchangeRateResponse{
		APIRate:      quote.APIRate,
		Bid:          quote.Bid,
		BidToCorps:   quote.BidToCorps,
		BidToImports: quote.BidToImports,
		CreatedAt:    quote.CreatedAt,
		UpdatedAt:    quote.UpdatedAt,
	}
}

// ListRateHistoryParams defines query parameters for the rate history endpoint.
type ListRateHistoryParams struct {
	Limit int `form:"limit,default=20" binding:"min=1,max=100"`
}

// RateHistoryEntry is one row of the rate log.
type RateHistoryEntry struct {
	RateID            int64           `json:"rate_id"`
	PairName          string          `json:"pair_name"`
	Value             decimal.Decimal `json:"value"`
	ProviderTimestamp time.Time       `json:"provider_timestamp"`
	CreatedAt         time.Time       `json:"created_at"`
}

// RateHistoryResponse wraps the rate log of a pair, newest first.
type RateHistoryResponse struct {
	Rates []RateHistoryEntry `json:"rates"`
}

// ToRateHistoryResponse converts a slice of domain.Rate to RateHistoryResponse DTO
func ToRateHistoryResponse(rates []domain.Rate) RateHistoryResponse {
	entries := make([]RateHistoryEntry, len(rates))
	for i, r := range rates {
		entries[i] = RateHistoryEntry{
			RateID:            r.RateID,
			PairName:          r.PairName,
			Value:             r.Value,
			ProviderTimestamp: r.ProviderTimestamp,
			CreatedAt:         r.CreatedAt,
		}
	}
	return RateHistoryResponse{Rates: entries}
}
