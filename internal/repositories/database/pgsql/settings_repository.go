package pgsql

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_pricing/internal/models"
	"github.com/SscSPs/remittance_pricing/internal/utils/mapping"
)

// PgxPriorityRepository reads service priority tiers.
type PgxPriorityRepository struct {
	BaseRepository
}

var _ portsrepo.PriorityReader = (*PgxPriorityRepository)(nil)

func newPgxPriorityRepository(pool DatabasePool) *PgxPriorityRepository {
	return &PgxPriorityRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxPriorityRepository) FindPriorityByID(ctx context.Context, priorityID int64) (*domain.Priority, error) {
	var m models.Priority
	err := r.Pool.QueryRow(ctx, `
		SELECT priority_id, name, description, cost_pct,
			created_at, created_by, last_updated_at, last_updated_by
		FROM priorities
		WHERE priority_id = $1`,
		priorityID,
	).Scan(
		&m.PriorityID, &m.Name, &m.Description, &m.CostPct,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		return nil, r.wrapQueryError(err, "priority")
	}

	priority := mapping.ToDomainPriority(m)
	return &priority, nil
}

// PgxParamRepository reads the params key/value store.
type PgxParamRepository struct {
	BaseRepository
}

var _ portsrepo.ParamReader = (*PgxParamRepository)(nil)

func newPgxParamRepository(pool DatabasePool) *PgxParamRepository {
	return &PgxParamRepository{BaseRepository: BaseRepository{Pool: pool}}
}

func (r *PgxParamRepository) FindParam(ctx context.Context, key string) (*domain.Param, error) {
	var m models.Param
	err := r.Pool.QueryRow(ctx, `
		SELECT key, type, value, created_at, created_by, last_updated_at, last_updated_by
		FROM params
		WHERE key = $1`,
		key,
	).Scan(&m.Key, &m.Type, &m.Value, &m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy)
	if err != nil {
		return nil, r.wrapQueryError(err, "param "+key)
	}

	param := mapping.ToDomainParam(m)
	return &param, nil
}
