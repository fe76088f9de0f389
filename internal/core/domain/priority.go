package domain

import "github.com/shopspring/decimal"

// Priority is a service tier whose cost_pct is charged on top of the base
// transaction fee.
type Priority struct {
	PriorityID  int64           `json:"priorityID"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	CostPct     decimal.Decimal `json:"costPct"`
	AuditFields
}
