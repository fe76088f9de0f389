package domain

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// AccountType is the customer tier an order is priced for.
type AccountType string

const (
	AccountPersonal    AccountType = "personal"
	AccountCorporative AccountType = "corporative"
	AccountImports     AccountType = "imports"
)

// ParseAccountType normalizes an account type coming from a token claim.
func ParseAccountType(s string) (AccountType, bool) {
	switch AccountType(strings.ToLower(strings.TrimSpace(s))) {
	case AccountPersonal:
		return AccountPersonal, true
	case AccountCorporative:
		return AccountCorporative, true
	case AccountImports:
		return AccountImports, true
	}
	return "", false
}

// Bids are the customer-facing prices of a pair, one per tier.
type Bids struct {
	Bid          decimal.Decimal `json:"bid"`
	BidToCorps   decimal.Decimal `json:"bidToCorps"`
	BidToImports decimal.Decimal `json:"bidToImports"`
}

// For returns the bid that applies to the given account type.
func (b Bids) For(accountType AccountType) (decimal.Decimal, bool) {
	switch accountType {
	case AccountPersonal:
		return b.Bid, true
	case AccountCorporative:
		return b.BidToCorps, true
	case AccountImports:
		return b.BidToImports, true
	}
	return decimal.Zero, false
}

// QuoteSource records where a resolved quote came from.
type QuoteSource string

const (
	QuoteSourceFixed   QuoteSource = "fixed"
	QuoteSourceCached  QuoteSource = "cached"
	QuoteSourceFetched QuoteSource = "fetched"
)

// PairQuote is the outcome of resolving a pair's current rate.
type PairQuote struct {
	APIRate   *decimal.Decimal // nil for fixed-rate pairs
	Bids
	Source    QuoteSource
	CreatedAt time.Time
	UpdatedAt time.Time
}

// CostBreakdown is the fee and tax split of a gross payment amount.
type CostBreakdown struct {
	TransactionCost decimal.Decimal `json:"transactionCost"`
	PriorityCost    decimal.Decimal `json:"priorityCost"`
	TaxCost         decimal.Decimal `json:"taxCost"`
	TotalCost       decimal.Decimal `json:"totalCost"`
	AmountToSend    decimal.Decimal `json:"amountToSend"`
}
