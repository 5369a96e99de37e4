package pgsql

import (
	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
)

// NewRepositoryProvider assembles all pgx-backed repositories over one pool.
func NewRepositoryProvider(pool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		ExchangeTxRepo:  NewPgxExchangeTransactionRepository(pool),
		RateCatalogRepo: NewPgxRateCatalogRepository(pool),
		StockRepo:       NewPgxStockRepository(pool),
		SaleRepo:        NewPgxSaleRepository(pool),
		SiteRepo:        NewPgxSiteRepository(pool),
		SiteTxRepo:      NewPgxSiteTransactionRepository(pool),
		BankAccountRepo: NewPgxBankAccountRepository(pool),
		ActivityRepo:    NewPgxActivityLogRepository(pool),
	}
}
