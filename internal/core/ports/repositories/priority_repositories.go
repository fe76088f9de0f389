package repositories

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
)

// PriorityReader defines read operations for service priority tiers
type PriorityReader interface {
	FindPriorityByID(ctx context.Context, priorityID int64) (*domain.Priority, error)
}
