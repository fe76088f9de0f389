package domain

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Well-known param keys read by the pricing core.
const (
	ParamTransactionCost = "transaction_cost"
	ParamTax             = "tax"
	ParamDefaultRateAPI  = "defaultRateApi"
	ParamRateExpiration  = "rate_expiration"
)

// ParamType tells how a Param's raw value should be interpreted.
type ParamType string

const (
	ParamTypeString  ParamType = "string"
	ParamTypeNumber  ParamType = "number"
	ParamTypeInteger ParamType = "integer"
	ParamTypeBoolean ParamType = "boolean"
)

// Param is a typed key/value setting that administrators can change at runtime.
type Param struct {
	Key   string    `json:"key"`
	Type  ParamType `json:"type"`
	Value string    `json:"value"`
	AuditFields
}

// Decimal parses the value of a number param.
func (p Param) Decimal() (decimal.Decimal, error) {
	d, err := decimal.NewFromString(strings.TrimSpace(p.Value))
	if err != nil {
		return decimal.Zero, fmt.Errorf("param %s is not a number: %w", p.Key, err)
	}
	return d, nil
}

// Int parses the value of an integer param.
func (p Param) Int() (int64, error) {
	n, err := strconv.ParseInt(strings.TrimSpace(p.Value), 10, 64)
	if err != nil {
		return 0, fmt.Errorf("param %s is not an integer: %w", p.Key, err)
	}
	return n, nil
}

// String returns the trimmed raw value.
func (p Param) String() string {
	return strings.TrimSpace(p.Value)
}
