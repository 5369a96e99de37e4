package services

import (
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/platform/config"
)

// NewServiceContainer creates a new service container with properly initialized dependencies
func NewServiceContainer(cfg *config.Config, repos portsrepo.RepositoryProvider) *portssvc.ServiceContainer {
	container := &portssvc.ServiceContainer{}

	// Initialize activity first since every other service records into it
	container.Activity = NewActivityService(repos.ActivityRepo)

	seed := make(domain.Vault, len(cfg.VaultSeed))
	for code, qty := range cfg.VaultSeed {
		seed[code] = qty
	}

	container.Exchange = NewExchangeService(repos.ExchangeTxRepo, repos.BankAccountRepo, container.Activity, seed)
	seedRates := make(domain.RateTable, len(cfg.DefaultRates))
	for code, quote := range cfg.DefaultRates {
		seedRates[code] = domain.Rate{CurrencyCode: code, Buy: quote.Buy, Sell: quote.Sell}
	}

	container.Rate = NewRateService(repos.RateCatalogRepo, container.Activity, ledger.ResolveRatesOptions{
		UseDefaultSeedWhenEmpty: cfg.SeedRatesWhenEmpty,
		Seed:                    seedRates,
	})
	container.Pharmacy = NewPharmacyService(repos.StockRepo, repos.SaleRepo, repos.BankAccountRepo, container.Activity, cfg.LowStockPacks)
	container.Construction = NewConstructionService(repos.SiteRepo, repos.SiteTxRepo, repos.BankAccountRepo, container.Activity)
	container.BankAccount = NewBankAccountService(repos.BankAccountRepo, container.Activity)

	return container
}
