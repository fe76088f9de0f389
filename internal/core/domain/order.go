package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is the immutable financial record written when a transfer is priced.
// Every amount is computed once at creation time and never updated.
type Order struct {
	OrderID        string          `json:"orderID"` // Primary Key (UUID)
	UserID         string          `json:"userID"`  // authenticated actor
	AccountType    AccountType     `json:"accountType"`
	PairID         int64           `json:"pairID"`
	PriorityID     int64           `json:"priorityID"`
	PaymentAmount  decimal.Decimal `json:"paymentAmount"` // gross, payment currency
	Rate           decimal.Decimal `json:"rate"`          // validated client quote
	SendedAmount   decimal.Decimal `json:"sendedAmount"`  // net amount converted
	ReceivedAmount decimal.Decimal `json:"receivedAmount"`
	USDAmount      decimal.Decimal `json:"usdAmount"`

	TransactionCost decimal.Decimal `json:"transactionCost"`
	PriorityCost    decimal.Decimal `json:"priorityCost"`
	Tax             decimal.Decimal `json:"tax"`
	TaxPct          decimal.Decimal `json:"taxPct"`
	TotalCost       decimal.Decimal `json:"totalCost"`

	CreatedAt time.Time `json:"createdAt"`
}
