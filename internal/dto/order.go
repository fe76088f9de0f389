package dto

import (
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

// CreateOrderRequest defines the data a client submits to price and place an order.
// Rate is the bid the client was shown; it must still match the current bid.
type CreateOrderRequest struct {
	PairID        int64           `json:"pair_id" binding:"required,gt=0"`
	PriorityID    int64           `json:"priority_id" binding:"required,gt=0"`
	PaymentAmount decimal.Decimal `json:"payment_amount" binding:"required,gt=0"`
	Rate          decimal.Decimal `json:"rate" binding:"required,gt=0"`
}

// OrderResponse defines the data returned for a priced order.
type OrderResponse struct {
	OrderID         string          `json:"order_id"`
	PairID          int64           `json:"pair_id"`
	PriorityID      int64           `json:"priority_id"`
	AccountType     string          `json:"account_type"`
	PaymentAmount   decimal.Decimal `json:"payment_amount"`
	Rate            decimal.Decimal `json:"rate"`
	SendedAmount    decimal.Decimal `json:"sended_amount"`
	ReceivedAmount  decimal.Decimal `json:"received_amount"`
	USDAmount       decimal.Decimal `json:"usd_amount"`
	TransactionCost decimal.Decimal `json:"transaction_cost"`
	PriorityCost    decimal.Decimal `json:"priority_cost"`
	Tax             decimal.Decimal `json:"tax"`
	TaxPct          decimal.Decimal `json:"tax_pct"`
	TotalCost       decimal.Decimal `json:"total_cost"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToOrderResponse converts a domain.Order to OrderResponse DTO
func ToOrderResponse(o *domain.Order) OrderResponse {
	return OrderResponse{
		OrderID:         o.OrderID,
		PairID:          o.PairID,
		PriorityID:      o.PriorityID,
		AccountType:     string(o.AccountType),
		PaymentAmount:   o.PaymentAmount,
		Rate:            o.Rate,
		SendedAmount:    o.SendedAmount,
		ReceivedAmount:  o.ReceivedAmount,
		USDAmount:       o.USDAmount,
		TransactionCost: o.TransactionCost,
		PriorityCost:    o.PriorityCost,
		Tax:             o.Tax,
		TaxPct:          o.TaxPct,
		TotalCost:       o.TotalCost,
		CreatedAt:       o.CreatedAt,
	}
}

// FieldErrorsResponse is the 422 body listing which fields were rejected.
type FieldErrorsResponse struct {
	Errors map[string]string `json:"errors"`
}
