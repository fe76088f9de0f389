package models

import (
	"github.com/shopspring/decimal"
)

// CurrencyPair is a row of currency_pairs joined with the symbols of its two currencies.
type CurrencyPair struct {
	PairID          int64  `db:"pair_id"`
	Name            string `db:"name"`
	BaseCurrencyID  int64  `db:"base_currency_id"`
	QuoteCurrencyID int64  `db:"quote_currency_id"`
	BaseSymbol      string `db:"base_symbol"`  // currencies.symbol
	QuoteSymbol     string `db:"quote_symbol"` // currencies.symbol

	OffsetMode      string          `db:"offset_mode"`
	OffsetValue     decimal.Decimal `db:"offset_value"` // "offset" is reserved in SQL
	OffsetToCorps   decimal.Decimal `db:"offset_to_corps"`
	OffsetToImports decimal.Decimal `db:"offset_to_imports"`
	MinPipValue     decimal.Decimal `db:"min_pip_value"`

	HasFixedRate      bool            `db:"has_fixed_rate"`
	FixedBid          decimal.Decimal `db:"fixed_bid"`
	FixedBidToCorps   decimal.Decimal `db:"fixed_bid_to_corps"`
	FixedBidToImports decimal.Decimal `db:"fixed_bid_to_imports"`

	APIClass    string `db:"api_class"`
	ShowInverse bool   `db:"show_inverse"`
	AuditFields
}
