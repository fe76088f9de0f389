package pgsql

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_pricing/internal/models"
	"github.com/SscSPs/remittance_pricing/internal/utils/mapping"
)

// PgxOrderRepository stores priced orders. There is no update path.
type PgxOrderRepository struct {
	BaseRepository
}

var _ portsrepo.OrderRepositoryFacade = (*PgxOrderRepository)(nil)

func newPgxOrderRepository(pool DatabasePool) *PgxOrderRepository {
	return &PgxOrderRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// SaveOrder inserts a new order and returns the row as stored.
func (r *PgxOrderRepository) SaveOrder(ctx context.Context, order domain.Order) (*domain.Order, error) {
	m := mapping.ToModelOrder(order)

	var stored models.Order
	err := r.Pool.QueryRow(ctx, `
		INSERT INTO orders (
			order_id, user_id, account_type, pair_id, priority_id,
			payment_amount, rate, sended_amount, received_amount, usd_amount,
			transaction_cost, priority_cost, tax, tax_pct, total_cost, created_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
		RETURNING
			order_id, user_id, account_type, pair_id, priority_id,
			payment_amount, rate, sended_amount, received_amount, usd_amount,
			transaction_cost, priority_cost, tax, tax_pct, total_cost, created_at`,
		m.OrderID, m.UserID, m.AccountType, m.PairID, m.PriorityID,
		m.PaymentAmount, m.Rate, m.SendedAmount, m.ReceivedAmount, m.USDAmount,
		m.TransactionCost, m.PriorityCost, m.Tax, m.TaxPct, m.TotalCost, m.CreatedAt,
	).Scan(
		&stored.OrderID, &stored.UserID, &stored.AccountType, &stored.PairID, &stored.PriorityID,
		&stored.PaymentAmount, &stored.Rate, &stored.SendedAmount, &stored.ReceivedAmount, &stored.USDAmount,
		&stored.TransactionCost, &stored.PriorityCost, &stored.Tax, &stored.TaxPct, &stored.TotalCost, &stored.CreatedAt,
	)
	if err != nil {
		return nil, r.wrapQueryError(err, "order")
	}

	saved := mapping.ToDomainOrder(stored)
	return &saved, nil
}

// FindOrderByID retrieves an order by its ID.
func (r *PgxOrderRepository) FindOrderByID(ctx context.Context, orderID string) (*domain.Order, error) {
	var m models.Order
	err := r.Pool.QueryRow(ctx, `
		SELECT
			order_id, user_id, account_type, pair_id, priority_id,
			payment_amount, rate, sended_amount, received_amount, usd_amount,
			transaction_cost, priority_cost, tax, tax_pct, total_cost, created_at
		FROM orders
		WHERE order_id = $1`,
		orderID,
	).Scan(
		&m.OrderID, &m.UserID, &m.AccountType, &m.PairID, &m.PriorityID,
		&m.PaymentAmount, &m.Rate, &m.SendedAmount, &m.ReceivedAmount, &m.USDAmount,
		&m.TransactionCost, &m.PriorityCost, &m.Tax, &m.TaxPct, &m.TotalCost, &m.CreatedAt,
	)
	if err != nil {
		return nil, r.wrapQueryError(err, "order")
	}

	order := mapping.ToDomainOrder(m)
	return &order, nil
}
