package pgsql

import (
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
)

func NewRepositoryProvider(dbPool DatabasePool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		CurrencyPairRepo: newPgxCurrencyPairRepository(dbPool),
		RateRepo:         newPgxRateRepository(dbPool),
		OrderRepo:        newPgxOrderRepository(dbPool),
		PriorityRepo:     newPgxPriorityRepository(dbPool),
		ParamRepo:        newPgxParamRepository(dbPool),
	}
}
