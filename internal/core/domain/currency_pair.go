package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// OffsetMode controls how a pair's markup offsets are interpreted.
type OffsetMode string

const (
	OffsetModePoint      OffsetMode = "point"
	OffsetModePercentage OffsetMode = "percentage"
)

// CurrencyPair is an administrator-configured corridor (base -> quote) together
// with the markup rules used to turn a market rate into customer bids.
type CurrencyPair struct {
	PairID          int64  `json:"pairID"`          // Primary Key
	Name            string `json:"name"`            // Unique, "BASE/QUOTE"
	BaseCurrencyID  int64  `json:"baseCurrencyID"`  // FK -> currencies.currency_id
	QuoteCurrencyID int64  `json:"quoteCurrencyID"` // FK -> currencies.currency_id
	BaseSymbol      string `json:"baseSymbol"`      // e.g. "USD"
	QuoteSymbol     string `json:"quoteSymbol"`     // e.g. "VES"

	OffsetMode      OffsetMode      `json:"offsetMode"`
	Offset          decimal.Decimal `json:"offset"`          // personal tier
	OffsetToCorps   decimal.Decimal `json:"offsetToCorps"`   // corporate tier
	OffsetToImports decimal.Decimal `json:"offsetToImports"` // imports tier
	MinPipValue     decimal.Decimal `json:"minPipValue"`     // only used in point mode

	HasFixedRate      bool            `json:"hasFixedRate"`
	FixedBid          decimal.Decimal `json:"fixedBid"`
	FixedBidToCorps   decimal.Decimal `json:"fixedBidToCorps"`
	FixedBidToImports decimal.Decimal `json:"fixedBidToImports"`

	APIClass    string `json:"apiClass"`    // rate provider used when no fixed or cached rate exists
	ShowInverse bool   `json:"showInverse"` // provider is queried quote-then-base
	AuditFields
}

// ProviderSymbols returns the (source, quote) argument order used when asking
// a rate provider for this pair's market rate.
// The stored offsets are already signed for the inverse direction, so only the
// argument order changes; the fetched value is never inverted numerically.
func (p CurrencyPair) ProviderSymbols() (string, string) {
	if p.ShowInverse {
		return p.QuoteSymbol, p.BaseSymbol
	}
	return p.BaseSymbol, p.QuoteSymbol
}

// PairName builds the canonical "BASE/QUOTE" name used to look pairs up.
func PairName(base, quote string) string {
	return fmt.Sprintf("%s/%s", strings.ToUpper(base), strings.ToUpper(quote))
}
