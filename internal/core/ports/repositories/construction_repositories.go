package repositories

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// SiteReader defines read operations for construction sites.
type SiteReader interface {
	// ListSites retrieves all sites.
	ListSites(ctx context.Context) ([]domain.Site, error)

	// FindSiteByID retrieves a single site.
	FindSiteByID(ctx context.Context, siteID string) (*domain.Site, error)
}

// SiteWriter defines write operations for construction sites.
type SiteWriter interface {
	// SaveSite inserts or updates a site.
	SaveSite(ctx context.Context, site domain.Site) error

	// DeleteSite removes a site.
	DeleteSite(ctx context.Context, siteID string) error
}

// SiteRepositoryFacade combines all site repository interfaces.
type SiteRepositoryFacade interface {
	SiteReader
	SiteWriter
}

// SiteTransactionReader defines read operations for site transactions.
type SiteTransactionReader interface {
	// ListSiteTransactions retrieves the full site transaction history.
	ListSiteTransactions(ctx context.Context) ([]domain.SiteTransaction, error)

	// ListSiteTransactionsBySite retrieves the history for one site.
	ListSiteTransactionsBySite(ctx context.Context, siteID string) ([]domain.SiteTransaction, error)
}

// SiteTransactionWriter defines write operations for site transactions.
type SiteTransactionWriter interface {
	// SaveSiteTransaction appends an income or expense entry.
	SaveSiteTransaction(ctx context.Context, tx domain.SiteTransaction) error
}

// SiteTransactionRepositoryFacade combines all site transaction repository interfaces.
type SiteTransactionRepositoryFacade interface {
	SiteTransactionReader
	SiteTransactionWriter
}
