package pgsql

import (
	"context"
	"strings"

	"github.com/SscSPs/remittance_pricing/internal/core/domain"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	"github.com/SscSPs/remittance_pricing/internal/models"
	"github.com/SscSPs/remittance_pricing/internal/utils/mapping"
	"github.com/jackc/pgx/v5"
)

const selectPairSQL = `
	SELECT
		p.pair_id, p.name, p.base_currency_id, p.quote_currency_id, b.symbol, q.symbol,
		p.offset_mode, p.offset_value, p.offset_to_corps, p.offset_to_imports, p.min_pip_value,
		p.has_fixed_rate, p.fixed_bid, p.fixed_bid_to_corps, p.fixed_bid_to_imports,
		p.api_class, p.show_inverse,
		p.created_at, p.created_by, p.last_updated_at, p.last_updated_by
	FROM currency_pairs p
	JOIN currencies b ON b.currency_id = p.base_currency_id
	JOIN currencies q ON q.currency_id = p.quote_currency_id
`

// PgxCurrencyPairRepository reads pair configuration from currency_pairs.
type PgxCurrencyPairRepository struct {
	BaseRepository
}

var _ portsrepo.CurrencyPairRepositoryFacade = (*PgxCurrencyPairRepository)(nil)

func newPgxCurrencyPairRepository(pool DatabasePool) *PgxCurrencyPairRepository {
	return &PgxCurrencyPairRepository{BaseRepository: BaseRepository{Pool: pool}}
}

// FindPairByID retrieves a pair by its primary key.
func (r *PgxCurrencyPairRepository) FindPairByID(ctx context.Context, pairID int64) (*domain.CurrencyPair, error) {
	return r.findPair(ctx, selectPairSQL+"WHERE p.pair_id = $1", pairID)
}

// FindPairByName retrieves a pair by its "BASE/QUOTE" name.
func (r *PgxCurrencyPairRepository) FindPairByName(ctx context.Context, name string) (*domain.CurrencyPair, error) {
	return r.findPair(ctx, selectPairSQL+"WHERE p.name = $1", strings.ToUpper(name))
}

func (r *PgxCurrencyPairRepository) findPair(ctx context.Context, query string, arg any) (*domain.CurrencyPair, error) {
	m, err := scanPair(r.Pool.QueryRow(ctx, query, arg))
	if err != nil {
		return nil, r.wrapQueryError(err, "currency pair")
	}
	pair := mapping.ToDomainCurrencyPair(m)
	return &pair, nil
}

func scanPair(row pgx.Row) (models.CurrencyPair, error) {
	var m models.CurrencyPair
	err := row.Scan(
		&m.PairID, &m.Name, &m.BaseCurrencyID, &m.QuoteCurrencyID, &m.BaseSymbol, &m.QuoteSymbol,
		&m.OffsetMode, &m.OffsetValue, &m.OffsetToCorps, &m.OffsetToImports, &m.MinPipValue,
		&m.HasFixedRate, &m.FixedBid, &m.FixedBidToCorps, &m.FixedBidToImports,
		&m.APIClass, &m.ShowInverse,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	return m, err
}
