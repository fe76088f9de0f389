package mapping

import (
	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/models"
)

// ToModelOrder converts a domain Order to a model Order
func ToModelOrder(d domain.Order) models.Order {
	return models.Order{
		OrderID:         d.OrderID,
		UserID:          d.UserID,
		AccountType:     string(d.AccountType),
		PairID:          d.PairID,
		PriorityID:      d.PriorityID,
		PaymentAmount:   d.PaymentAmount,
		Rate:            d.Rate,
		SendedAmount:    d.SendedAmount,
		ReceivedAmount:  d.ReceivedAmount,
		USDAmount:       d.USDAmount,
		TransactionCost: d.TransactionCost,
		PriorityCost:    d.PriorityCost,
		Tax:             d.Tax,
		TaxPct:          d.TaxPct,
		TotalCost:       d.TotalCost,
		CreatedAt:       d.CreatedAt,
	}
}

// ToDomainOrder converts a model Order to a domain Order
func ToDomainOrder(m models.Order) domain.Order {
	return domain.Order{
		OrderID:         m.OrderID,
		UserID:          m.UserID,
		AccountType:     domain.AccountType(m.AccountType),
		PairID:          m.PairID,
		PriorityID:      m.PriorityID,
		PaymentAmount:   m.PaymentAmount,
		Rate:            m.Rate,
		SendedAmount:    m.SendedAmount,
		ReceivedAmount:  m.ReceivedAmount,
		USDAmount:       m.USDAmount,
		TransactionCost: m.TransactionCost,
		PriorityCost:    m.PriorityCost,
		Tax:             m.Tax,
		TaxPct:          m.TaxPct,
		TotalCost:       m.TotalCost,
		CreatedAt:       m.CreatedAt,
	}
}
