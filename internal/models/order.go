package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order is a row of orders. Rows are inserted once and never updated.
type Order struct {
	OrderID         string          `db:"order_id"`
	UserID          string          `db:"user_id"`
	AccountType     string          `db:"account_type"`
	PairID          int64           `db:"pair_id"`
	PriorityID      int64           `db:"priority_id"`
	PaymentAmount   decimal.Decimal `db:"payment_amount"`
	Rate            decimal.Decimal `db:"rate"`
	SendedAmount    decimal.Decimal `db:"sended_amount"`
	ReceivedAmount  decimal.Decimal `db:"received_amount"`
	USDAmount       decimal.Decimal `db:"usd_amount"`
	TransactionCost decimal.Decimal `db:"transaction_cost"`
	PriorityCost    decimal.Decimal `db:"priority_cost"`
	Tax             decimal.Decimal `db:"tax"`
	TaxPct          decimal.Decimal `db:"tax_pct"`
	TotalCost       decimal.Decimal `db:"total_cost"`
	CreatedAt       time.Time       `db:"created_at"`
}
