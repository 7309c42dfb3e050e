package services

import (
	portsclients "github.com/spendio/spendio_backend/internal/core/ports/clients"
	portsrepo "github.com/spendio/spendio_backend/internal/core/ports/repositories"
	portssvc "github.com/spendio/spendio_backend/internal/core/ports/services"
	"github.com/spendio/spendio_backend/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly
// initialized dependencies.
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider, rateClient portsclients.RateSourceClient) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	rateSvc := NewRateService(rateClient, cfg.RatesCacheTTL, cfg.CatalogCacheTTL)
	container.Rate = rateSvc

	container.Preference = NewPreferenceService(repos.PreferenceRepo, repos.Mirror, cfg.DefaultCurrency)

	// The engine shares the rate service so a warm cache benefits both the
	// display path and reconciliation.
	container.Reconciliation = NewReconciliationService(rateSvc, repos)

	return container
}

// Compile-time interface checks for the service implementations.
var (
	_ portssvc.RateSvcFacade           = (*RateService)(nil)
	_ portssvc.PreferenceSvcFacade     = (*PreferenceService)(nil)
	_ portssvc.ReconciliationSvcFacade = (*ReconciliationService)(nil)
)
