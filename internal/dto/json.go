package dto

import "github.com/shopspring/decimal"

// Amounts and rates go over the wire as JSON numbers carrying the exact
// decimal text. Requests may still send them quoted.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
