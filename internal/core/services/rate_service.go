package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// RateService manages the rate catalog. Reads pass the stored document,
// whatever legacy shape it is in, through the resolver; writes always store
// the canonical table form.
type RateService struct {
	repo     portsrepo.RateCatalogRepositoryFacade
	activity portssvc.ActivityWriterSvc
	opts     ledger.ResolveRatesOptions
}

// NewRateService creates a RateService. The resolve options control whether
// a never-written catalog is seeded with defaults.
func NewRateService(repo portsrepo.RateCatalogRepositoryFacade, activity portssvc.ActivityWriterSvc, opts ledger.ResolveRatesOptions) *RateService {
	return &RateService{repo: repo, activity: activity, opts: opts}
}

var _ portssvc.RateSvcFacade = (*RateService)(nil)

func (s *RateService) GetRates(ctx context.Context) (domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	raw, err := s.repo.FetchRawRates(ctx)
	if err != nil {
		logger.Error("Failed to fetch stored rates", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to fetch rate catalog: %w", err)
	}
	table, err := ledger.ResolveRates(raw, s.opts)
	if err != nil {
		logger.Error("Stored rate catalog is malformed", slog.String("error", err.Error()))
		return nil, err
	}
	return table, nil
}

// ReplaceRates overwrites the catalog with the given quotes. An empty list
// clears the catalog; the cleared state is stored explicitly so it does not
// fall back to the seed defaults on the next read.
func (s *RateService) ReplaceRates(ctx context.Context, req dto.ReplaceRatesRequest, updaterUserID string) (domain.RateTable, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	now := time.Now()
	table := make(domain.RateTable, len(req.Rates))
	for _, entry := range req.Rates {
		if !entry.Buy.IsPositive() || !entry.Sell.IsPositive() {
			return nil, fmt.Errorf("%w: rates for %s must be positive", apperrors.ErrValidation, entry.CurrencyCode)
		}
		if _, dup := table[entry.CurrencyCode]; dup {
			return nil, fmt.Errorf("%w: duplicate currency %s", apperrors.ErrValidation, entry.CurrencyCode)
		}
		table[entry.CurrencyCode] = domain.Rate{
			CurrencyCode: entry.CurrencyCode,
			Buy:          entry.Buy,
			Sell:         entry.Sell,
			UpdatedAt:    now,
		}
	}

	if err := s.repo.StoreRates(ctx, table); err != nil {
		logger.Error("Failed to store rate catalog", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to store rate catalog: %w", err)
	}

	logger.Info("Rate catalog replaced", slog.Int("currencies", len(table)))
	s.activity.Record(ctx, "REPLACE_RATES", "exchange", fmt.Sprintf("catalog replaced with %d currencies", len(table)), updaterUserID)
	return table, nil
}
