package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// ConstructionService implements site management and site accounting. Site
// balances are never stored; every summary is aggregated from the site's
// transaction history on read.
type ConstructionService struct {
	siteRepo   portsrepo.SiteRepositoryFacade
	siteTxRepo portsrepo.SiteTransactionRepositoryFacade
	bankRepo   portsrepo.BankAccountReader
	activity   portssvc.ActivityWriterSvc
}

// NewConstructionService creates a ConstructionService.
func NewConstructionService(siteRepo portsrepo.SiteRepositoryFacade, siteTxRepo portsrepo.SiteTransactionRepositoryFacade, bankRepo portsrepo.BankAccountReader, activity portssvc.ActivityWriterSvc) *ConstructionService {
	return &ConstructionService{
		siteRepo:   siteRepo,
		siteTxRepo: siteTxRepo,
		bankRepo:   bankRepo,
		activity:   activity,
	}
}

var _ portssvc.ConstructionSvcFacade = (*ConstructionService)(nil)

func (s *ConstructionService) ListSites(ctx context.Context) ([]domain.Site, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	sites, err := s.siteRepo.ListSites(ctx)
	if err != nil {
		logger.Error("Failed to list sites", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list sites: %w", err)
	}
	if sites == nil {
		return []domain.Site{}, nil
	}
	return sites, nil
}

func (s *ConstructionService) GetSiteByID(ctx context.Context, siteID string) (*domain.Site, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	site, err := s.siteRepo.FindSiteByID(ctx, siteID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find site", slog.String("error", err.Error()), slog.String("site_id", siteID))
		}
		return nil, err
	}
	return site, nil
}

// GetSiteSummary aggregates the site's full cash flow history.
func (s *ConstructionService) GetSiteSummary(ctx context.Context, siteID string) (domain.SiteSummary, error) {
	if _, err := s.GetSiteByID(ctx, siteID); err != nil {
		return domain.SiteSummary{}, err
	}
	txns, err := s.ListSiteTransactions(ctx, siteID)
	if err != nil {
		return domain.SiteSummary{}, err
	}
	return ledger.AggregateSite(txns)
}

// GetOverallSummary aggregates the totals across every site.
func (s *ConstructionService) GetOverallSummary(ctx context.Context) (domain.SiteSummary, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.siteTxRepo.ListSiteTransactions(ctx)
	if err != nil {
		logger.Error("Failed to list site transactions", slog.String("error", err.Error()))
		return domain.SiteSummary{}, fmt.Errorf("failed to list site transactions: %w", err)
	}
	return ledger.AggregateSite(txns)
}

func (s *ConstructionService) ListSiteTransactions(ctx context.Context, siteID string) ([]domain.SiteTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	txns, err := s.siteTxRepo.ListSiteTransactionsBySite(ctx, siteID)
	if err != nil {
		logger.Error("Failed to list site transactions", slog.String("error", err.Error()), slog.String("site_id", siteID))
		return nil, fmt.Errorf("failed to list site transactions: %w", err)
	}
	if txns == nil {
		return []domain.SiteTransaction{}, nil
	}
	return txns, nil
}

func (s *ConstructionService) CreateSite(ctx context.Context, req dto.CreateSiteRequest, creatorUserID string) (*domain.Site, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	status := domain.SiteActive
	if req.Status != "" {
		status = domain.SiteStatus(req.Status)
	}
	now := time.Now()
	site := domain.Site{
		SiteID: uuid.NewString(),
		Name:   req.Name,
		Status: status,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.siteRepo.SaveSite(ctx, site); err != nil {
		logger.Error("Failed to save site", slog.String("error", err.Error()), slog.String("site_id", site.SiteID))
		return nil, fmt.Errorf("failed to save site: %w", err)
	}

	logger.Info("Site created", slog.String("site_id", site.SiteID), slog.String("name", site.Name))
	s.activity.Record(ctx, "CREATE_SITE", "construction", fmt.Sprintf("opened site %s", site.Name), creatorUserID)
	return &site, nil
}

func (s *ConstructionService) UpdateSite(ctx context.Context, siteID string, req dto.UpdateSiteRequest, updaterUserID string) (*domain.Site, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	site, err := s.siteRepo.FindSiteByID(ctx, siteID)
	if err != nil {
		return nil, err
	}
	if req.Name != nil {
		site.Name = *req.Name
	}
	if req.Status != nil {
		site.Status = domain.SiteStatus(*req.Status)
	}
	site.LastUpdatedAt = time.Now()
	site.LastUpdatedBy = updaterUserID

	if err := s.siteRepo.SaveSite(ctx, *site); err != nil {
		logger.Error("Failed to update site", slog.String("error", err.Error()), slog.String("site_id", siteID))
		return nil, fmt.Errorf("failed to update site: %w", err)
	}
	return site, nil
}

// DeleteSite removes a site. Its transaction history is kept; orphaned
// entries still contribute to the overall summary.
func (s *ConstructionService) DeleteSite(ctx context.Context, siteID string) error {
	logger := middleware.GetLoggerFromCtx(ctx)
	if err := s.siteRepo.DeleteSite(ctx, siteID); err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to delete site", slog.String("error", err.Error()), slog.String("site_id", siteID))
		}
		return err
	}
	logger.Info("Site deleted", slog.String("site_id", siteID))
	return nil
}

// RecordSiteTransaction books an income or expense against a site. The site
// must exist; bank-settled entries must name an account eligible for the
// construction sector.
func (s *ConstructionService) RecordSiteTransaction(ctx context.Context, siteID string, req dto.RecordSiteTransactionRequest, creatorUserID string) (*domain.SiteTransaction, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if _, err := s.siteRepo.FindSiteByID(ctx, siteID); err != nil {
		return nil, err
	}
	if !req.Amount.IsPositive() {
		return nil, fmt.Errorf("%w: amount must be positive", apperrors.ErrValidation)
	}
	if domain.PaymentMethod(req.PaymentMethod) == domain.PaymentBank {
		if req.BankAccountID == "" {
			return nil, fmt.Errorf("%w: bankAccountID is required for bank settlement", apperrors.ErrValidation)
		}
		account, err := s.bankRepo.FindBankAccountByID(ctx, req.BankAccountID)
		if err != nil {
			return nil, err
		}
		if err := ledger.ValidateBankAccount(*account, domain.SectorConstruction); err != nil {
			return nil, err
		}
	}

	now := time.Now()
	date := now
	if req.Date != nil {
		date = *req.Date
	}
	txn := domain.SiteTransaction{
		TransactionID: uuid.NewString(),
		SiteID:        siteID,
		Kind:          domain.SiteTransactionKind(req.Kind),
		Amount:        req.Amount,
		Date:          date,
		Description:   req.Description,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		BankAccountID: req.BankAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if req.ExternalBank != nil {
		txn.ExternalBank = &domain.BankDetails{
			BankName:      req.ExternalBank.BankName,
			AccountNumber: req.ExternalBank.AccountNumber,
		}
	}

	if err := s.siteTxRepo.SaveSiteTransaction(ctx, txn); err != nil {
		logger.Error("Failed to save site transaction", slog.String("error", err.Error()), slog.String("transaction_id", txn.TransactionID))
		return nil, fmt.Errorf("failed to save site transaction: %w", err)
	}

	logger.Info("Site transaction recorded",
		slog.String("transaction_id", txn.TransactionID),
		slog.String("site_id", siteID),
		slog.String("kind", string(txn.Kind)),
	)
	s.activity.Record(ctx, "RECORD_"+string(txn.Kind), "construction",
		fmt.Sprintf("%s %s on site %s", txn.Kind, txn.Amount.StringFixed(2), siteID), creatorUserID)
	return &txn, nil
}
