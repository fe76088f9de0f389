package services

import (
	"github.com/SscSPs/remittance_pricing/internal/core/ports/providers"
	portsrepo "github.com/SscSPs/remittance_pricing/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/remittance_pricing/internal/core/ports/services"
	"github.com/SscSPs/remittance_pricing/internal/metrics"
)

// Dependencies are the collaborators the services are built from.
type Dependencies struct {
	Repos     portsrepo.RepositoryProvider
	Registry  providers.ProviderRegistry
	Settings  portssvc.PricingSettings
	Publisher portssvc.OrderEventPublisher
	Metrics   *metrics.PricingMetrics
}

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(deps Dependencies) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{Settings: deps.Settings}

	container.RateResolver = NewRateResolver(deps.Registry, deps.Settings, deps.Metrics)
	container.OrderPricing = NewOrderPricingService(container.RateResolver, deps.Metrics)
	container.ExchangeRate = NewExchangeRateService(deps.Repos.CurrencyPairRepo, deps.Repos.RateRepo, container.RateResolver)
	container.Order = NewOrderService(
		deps.Repos.CurrencyPairRepo,
		deps.Repos.PriorityRepo,
		deps.Repos.OrderRepo,
		container.OrderPricing,
		deps.Settings,
		WithOrderEventPublisher(deps.Publisher),
		WithOrderMetrics(deps.Metrics),
	)

	return container
}
