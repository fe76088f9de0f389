package models

import "github.com/shopspring/decimal"

// Priority is a row of priorities.
type Priority struct {
	PriorityID  int64           `db:"priority_id"`
	Name        string          `db:"name"`
	Description string          `db:"description"`
	CostPct     decimal.Decimal `db:"cost_pct"`
	AuditFields
}
