package repositories

// RepositoryProvider holds all repository interfaces needed by services.
// This makes passing dependencies to the service container constructor cleaner.
type RepositoryProvider struct {
	ExchangeTxRepo  ExchangeTransactionRepositoryFacade
	RateCatalogRepo RateCatalogRepositoryFacade
	StockRepo       StockRepositoryFacade
	SaleRepo        SaleRepositoryFacade
	SiteRepo        SiteRepositoryFacade
	SiteTxRepo      SiteTransactionRepositoryFacade
	BankAccountRepo BankAccountRepositoryFacade
	ActivityRepo    ActivityLogRepositoryFacade
}
