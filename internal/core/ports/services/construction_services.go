package services

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/dto"
)

// ConstructionReaderSvc defines read operations for the construction module.
type ConstructionReaderSvc interface {
	// ListSites retrieves all construction sites.
	ListSites(ctx context.Context) ([]domain.Site, error)

	// GetSiteByID retrieves a single site.
	GetSiteByID(ctx context.Context, siteID string) (*domain.Site, error)

	// GetSiteSummary aggregates income, expense and balance for one site.
	GetSiteSummary(ctx context.Context, siteID string) (domain.SiteSummary, error)

	// GetOverallSummary aggregates the totals across all sites.
	GetOverallSummary(ctx context.Context) (domain.SiteSummary, error)

	// ListSiteTransactions retrieves the cash flow history for one site.
	ListSiteTransactions(ctx context.Context, siteID string) ([]domain.SiteTransaction, error)
}

// ConstructionWriterSvc defines write operations for the construction module.
type ConstructionWriterSvc interface {
	// CreateSite opens a new site.
	CreateSite(ctx context.Context, req dto.CreateSiteRequest, creatorUserID string) (*domain.Site, error)

	// UpdateSite updates a site's name or status.
	UpdateSite(ctx context.Context, siteID string, req dto.UpdateSiteRequest, updaterUserID string) (*domain.Site, error)

	// DeleteSite removes a site and leaves its history orphaned.
	DeleteSite(ctx context.Context, siteID string) error

	// RecordSiteTransaction books an income or expense against a site.
	RecordSiteTransaction(ctx context.Context, siteID string, req dto.RecordSiteTransactionRequest, creatorUserID string) (*domain.SiteTransaction, error)
}

// ConstructionSvcFacade combines all construction service interfaces.
type ConstructionSvcFacade interface {
	ConstructionReaderSvc
	ConstructionWriterSvc
}
