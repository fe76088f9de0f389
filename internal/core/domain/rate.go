package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is an immutable log entry written for every successful provider fetch.
// The current rate of a pair is the row with the highest RateID (insertion
// order), regardless of ProviderTimestamp.
type Rate struct {
	RateID            int64           `json:"rateID"` // BIGSERIAL, insertion sequence
	BaseCurrencyID    int64           `json:"baseCurrencyID"`
	QuoteCurrencyID   int64           `json:"quoteCurrencyID"`
	PairID            int64           `json:"pairID"`
	PairName          string          `json:"pairName"` // snapshot at fetch time
	Value             decimal.Decimal `json:"value"`    // raw quoted value
	ProviderTimestamp time.Time       `json:"providerTimestamp"`
	CreatedAt         time.Time       `json:"createdAt"`
}

// MarketRate is a raw rate as reported by an external provider.
type MarketRate struct {
	Source    string
	Quote     string
	Value     decimal.Decimal
	Timestamp time.Time // provider-reported, zero when the provider sends none
}
