package events

import (
	"time"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/shopspring/decimal"
)

const OrderPricedEventType = "order.priced"

// OrderPricedEvent is the message written for every persisted order.
type OrderPricedEvent struct {
	Type           string          `json:"type"`
	OrderID        string          `json:"order_id"`
	UserID         string          `json:"user_id"`
	AccountType    string          `json:"account_type"`
	PairID         int64           `json:"pair_id"`
	PriorityID     int64           `json:"priority_id"`
	PaymentAmount  decimal.Decimal `json:"payment_amount"`
	Rate           decimal.Decimal `json:"rate"`
	SendedAmount   decimal.Decimal `json:"sended_amount"`
	ReceivedAmount decimal.Decimal `json:"received_amount"`
	USDAmount      decimal.Decimal `json:"usd_amount"`
	TotalCost      decimal.Decimal `json:"total_cost"`
	Tax            decimal.Decimal `json:"tax"`
	CreatedAt      time.Time       `json:"created_at"`
}

func NewOrderPricedEvent(o domain.Order) OrderPricedEvent {
	return OrderPricedEvent{
		Type:           OrderPricedEventType,
		OrderID:        o.OrderID,
		UserID:         o.UserID,
		AccountType:    string(o.AccountType),
		PairID:         o.PairID,
		PriorityID:     o.PriorityID,
		PaymentAmount:  o.PaymentAmount,
		Rate:           o.Rate,
		SendedAmount:   o.SendedAmount,
		ReceivedAmount: o.ReceivedAmount,
		USDAmount:      o.USDAmount,
		TotalCost:      o.TotalCost,
		Tax:            o.Tax,
		CreatedAt:      o.CreatedAt,
	}
}
