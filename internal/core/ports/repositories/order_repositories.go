package repositories

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
)

// OrderReader defines read operations for priced orders
type OrderReader interface {
	FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error)
}

// OrderWriter defines write operations for priced orders
type OrderWriter interface {
	// SaveOrder inserts an order and returns it as stored. Orders are never
	// updated afterwards.
	SaveOrder(ctx context.Context, order domain.Order) (*domain.Order, error)
}

// OrderRepositoryFacade combines all order repository interfaces
type OrderRepositoryFacade interface {
	OrderReader
	OrderWriter
}
