package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is a row of the append-only rates log.
type Rate struct {
	RateID            int64           `db:"rate_id"` // BIGSERIAL
	BaseCurrencyID    int64           `db:"base_currency_id"`
	QuoteCurrencyID   int64           `db:"quote_currency_id"`
	PairID            int64           `db:"pair_id"`
	PairName          string          `db:"pair_name"`
	Value             decimal.Decimal `db:"value"`
	ProviderTimestamp *time.Time      `db:"provider_timestamp"` // Nullable
	CreatedAt         time.Time       `db:"created_at"`
}
