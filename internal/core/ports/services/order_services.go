package services

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	"github.com/SscSPs/remittance_pricing/internal/dto"
)

// Actor is the authenticated caller placing or reading orders.
type Actor struct {
	UserID      string
	AccountType domain.AccountType
}

// OrderReaderSvc defines read operations for orders
type OrderReaderSvc interface {
	GetOrder(ctx context.Context, orderID string, actor Actor) (*domain.Order, error)
}

// OrderWriterSvc defines write operations for orders
type OrderWriterSvc interface {
	// CreateOrder validates the quoted rate, prices and persists a new order.
	CreateOrder(ctx context.Context, req dto.CreateOrderRequest, actor Actor) (*domain.Order, error)
}

// OrderSvcFacade combines all order-related service interfaces
type OrderSvcFacade interface {
	OrderReaderSvc
	OrderWriterSvc
}

// OrderEventPublisher announces priced orders to downstream consumers
// (payout, compliance). Publishing happens after the order is stored.
type OrderEventPublisher interface {
	PublishOrderPriced(ctx context.Context, order domain.Order) error
}
