package pgsql

import (
	"context"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_pricing/internal/models"
	"github.com/SscSPs/remittance_pricing/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const selectRateSQL = `
	SELECT
		rate_id, base_currency_id, quote_currency_id, pair_id, pair_name, value,
		provider_timestamp, created_at
	FROM rates
	WHERE pair_id = $1
	ORDER BY rate_id DESC
`

// PgxRateRepository implements the append-only rate log. The current rate of
// a pair is the row with the highest rate_id.
type PgxRateRepository struct {
	BaseRepository
}

var _ portsrepo.RateRepositoryFacade = (*PgxRateRepository)(nil)

func newPgxRateRepository(pool DatabasePool) *PgxRateRepository {
	return &PgxRateRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// FindLatestRate returns the last inserted rate of a pair.
func (r *PgxRateRepository) FindLatestRate(ctx context.Context, pairID int64) (*domain.Rate, error) {
	m, err := scanRate(r.Pool.QueryRow(ctx, selectRateSQL+"LIMIT 1", pairID))
	if err != nil {
		return nil, r.wrapQueryError(err, "rate")
	}
	rate := mapping.ToDomainRate(m)
	return &rate, nil
}

// ListRates returns up to limit rates of a pair, newest first.
func (r *PgxRateRepository) ListRates(ctx context.Context, pairID int64, limit int) ([]domain.Rate, error) {
	rows, err := r.Pool.Query(ctx, selectRateSQL+"LIMIT $2", pairID, limit)
	if err != nil {
		return nil, r.wrapQueryError(err, "rates")
	}
	defer rows.Close()

	var modelRates []models.Rate
	for rows.Next() {
		m, err := scanRate(rows)
		if err != nil {
			return nil, r.wrapQueryError(err, "rates")
		}
		modelRates = append(modelRates, m)
	}
	if err := rows.Err(); err != nil {
		return nil, r.wrapQueryError(err, "rates")
	}

	return mapping.ToDomainRates(modelRates), nil
}

// AppendRate inserts a new rate; rate_id and created_at come from the database.
func (r *PgxRateRepository) AppendRate(ctx context.Context, rate domain.Rate) (*domain.Rate, error) {
	m := mapping.ToModelRate(rate)

	err := r.Pool.QueryRow(ctx, `
		INSERT INTO rates (
			base_currency_id, quote_currency_id, pair_id, pair_name, value, provider_timestamp
		) VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING rate_id, value, created_at`,
		m.BaseCurrencyID, m.QuoteCurrencyID, m.PairID, m.PairName, m.Value, m.ProviderTimestamp,
	).Scan(&m.RateID, &m.Value, &m.CreatedAt)
	if err != nil {
		return nil, r.wrapQueryError(err, "rate")
	}

	saved := mapping.ToDomainRate(m)
	return &saved, nil
}

func scanRate(row pgx.Row) (models.Rate, error) {
	var m models.Rate
	err := row.Scan(
		&m.RateID, &m.BaseCurrencyID, &m.QuoteCurrencyID, &m.PairID, &m.PairName, &m.Value,
		&m.ProviderTimestamp, &m.CreatedAt,
	)
	return m, err
}
