package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
	portsrepo "github.com/unimanage/backoffice/internal/core/ports/repositories"
	portssvc "github.com/unimanage/backoffice/internal/core/ports/services"
	"github.com/unimanage/backoffice/internal/dto"
	"github.com/unimanage/backoffice/internal/middleware"
)

// PharmacyService implements stock management and checkout. All quantities
// are stored in atomic units; pack-level requests are converted at the edge
// of this service and never leak into storage.
type PharmacyService struct {
	stockRepo portsrepo.StockRepositoryFacade
	saleRepo  portsrepo.SaleRepositoryFacade
	bankRepo  portsrepo.BankAccountReader
	activity  portssvc.ActivityWriterSvc

	// lowStockPacks flags an item as low when fewer than this many storage
	// units remain.
	lowStockPacks int64

	// mu serializes stock writes. Checkout and restock validate against a
	// snapshot of current quantities; two writers validating against the
	// same snapshot could together oversell, so read-validate-commit must
	// not overlap.
	mu sync.Mutex
}

// NewPharmacyService creates a PharmacyService.
func NewPharmacyService(stockRepo portsrepo.StockRepositoryFacade, saleRepo portsrepo.SaleRepositoryFacade, bankRepo portsrepo.BankAccountReader, activity portssvc.ActivityWriterSvc, lowStockPacks int64) *PharmacyService {
	return &PharmacyService{
		stockRepo:     stockRepo,
		saleRepo:      saleRepo,
		bankRepo:      bankRepo,
		activity:      activity,
		lowStockPacks: lowStockPacks,
	}
}

var _ portssvc.PharmacySvcFacade = (*PharmacyService)(nil)

func (s *PharmacyService) ListStockItems(ctx context.Context) ([]domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	items, err := s.stockRepo.ListStockItems(ctx)
	if err != nil {
		logger.Error("Failed to list stock items", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list stock items: %w", err)
	}
	if items == nil {
		return []domain.StockItem{}, nil
	}
	return items, nil
}

func (s *PharmacyService) GetStockItemByID(ctx context.Context, itemID string) (*domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	item, err := s.stockRepo.FindStockItemByID(ctx, itemID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			logger.Error("Failed to find stock item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		}
		return nil, err
	}
	return item, nil
}

func (s *PharmacyService) ListSales(ctx context.Context) ([]domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)
	sales, err := s.saleRepo.ListSales(ctx)
	if err != nil {
		logger.Error("Failed to list sales", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to list sales: %w", err)
	}
	if sales == nil {
		return []domain.Sale{}, nil
	}
	return sales, nil
}

// GetDashboard summarizes the stock catalog and sale history.
func (s *PharmacyService) GetDashboard(ctx context.Context) (dto.PharmacyDashboardResponse, error) {
	items, err := s.ListStockItems(ctx)
	if err != nil {
		return dto.PharmacyDashboardResponse{}, err
	}
	sales, err := s.ListSales(ctx)
	if err != nil {
		return dto.PharmacyDashboardResponse{}, err
	}

	low := make([]domain.StockItem, 0)
	for _, item := range items {
		if item.QuantityOnHand < s.lowStockPacks*item.ItemsPerStorageUnit {
			low = append(low, item)
		}
	}
	revenue := decimal.Zero
	for _, sale := range sales {
		revenue = revenue.Add(sale.Total)
	}

	return dto.PharmacyDashboardResponse{
		ItemCount:     len(items),
		LowStockItems: dto.ToListStockItemResponse(low),
		SaleCount:     len(sales),
		Revenue:       revenue,
	}, nil
}

// CreateStockItem registers a new product. The initial quantity arrives in
// storage-unit packs and is converted to atomic units before storage.
func (s *PharmacyService) CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest, creatorUserID string) (*domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	// Initial quantity arrives in storage units; when storage is already
	// atomic the declared pack size must not inflate it.
	atomicInitial := req.InitialQuantity * req.ItemsPerStorageUnit
	if domain.Unit(req.StorageUnit) == domain.UnitItem {
		atomicInitial = req.InitialQuantity
	}

	now := time.Now()
	item := domain.StockItem{
		ItemID:              uuid.NewString(),
		Name:                req.Name,
		BuyPrice:            req.BuyPrice,
		SellPrice:           req.SellPrice,
		QuantityOnHand:      atomicInitial,
		StorageUnit:         domain.Unit(req.StorageUnit),
		ItemsPerStorageUnit: req.ItemsPerStorageUnit,
		Batch:               req.Batch,
		MfgDate:             req.MfgDate,
		ExpDate:             req.ExpDate,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}
	if err := s.stockRepo.SaveStockItem(ctx, item); err != nil {
		logger.Error("Failed to save stock item", slog.String("error", err.Error()), slog.String("item_id", item.ItemID))
		return nil, fmt.Errorf("failed to save stock item: %w", err)
	}

	logger.Info("Stock item created", slog.String("item_id", item.ItemID), slog.String("name", item.Name))
	s.activity.Record(ctx, "CREATE_ITEM", "pharmacy", fmt.Sprintf("added %s", item.Name), creatorUserID)
	return &item, nil
}

// UpdateStockItem updates product metadata. Stock levels are untouched:
// they change only through restocks and sales.
func (s *PharmacyService) UpdateStockItem(ctx context.Context, itemID string, req dto.UpdateStockItemRequest, updaterUserID string) (*domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	item, err := s.stockRepo.FindStockItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		item.Name = *req.Name
	}
	if req.BuyPrice != nil {
		item.BuyPrice = *req.BuyPrice
	}
	if req.SellPrice != nil {
		if !req.SellPrice.IsPositive() {
			return nil, fmt.Errorf("%w: sellPrice must be positive", apperrors.ErrValidation)
		}
		item.SellPrice = *req.SellPrice
	}
	if req.Batch != nil {
		item.Batch = *req.Batch
	}
	if req.MfgDate != nil {
		item.MfgDate = req.MfgDate
	}
	if req.ExpDate != nil {
		item.ExpDate = req.ExpDate
	}
	item.LastUpdatedAt = time.Now()
	item.LastUpdatedBy = updaterUserID

	if err := s.stockRepo.SaveStockItem(ctx, *item); err != nil {
		logger.Error("Failed to update stock item", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to update stock item: %w", err)
	}
	return item, nil
}

// RestockItem adds quantity in the requested unit. The unit is related to
// the item's storage unit by the same rules as a sale line; only the atomic
// count matters here.
func (s *PharmacyService) RestockItem(ctx context.Context, itemID string, req dto.RestockRequest, updaterUserID string) (*domain.StockItem, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	item, err := s.stockRepo.FindStockItemByID(ctx, itemID)
	if err != nil {
		return nil, err
	}

	res, err := ledger.ResolveSaleLine(*item, req.Quantity, domain.Unit(req.Unit))
	if err != nil {
		return nil, err
	}
	updated, err := ledger.ApplyRestock(*item, res.AtomicDeduction)
	if err != nil {
		return nil, err
	}
	updated.LastUpdatedAt = time.Now()
	updated.LastUpdatedBy = updaterUserID

	if err := s.stockRepo.SaveStockItem(ctx, updated); err != nil {
		logger.Error("Failed to save restock", slog.String("error", err.Error()), slog.String("item_id", itemID))
		return nil, fmt.Errorf("failed to save restock: %w", err)
	}

	logger.Info("Stock item restocked",
		slog.String("item_id", itemID),
		slog.Int64("added_atomic", res.AtomicDeduction),
	)
	s.activity.Record(ctx, "RESTOCK", "pharmacy",
		fmt.Sprintf("restocked %s with %d %s", updated.Name, req.Quantity, req.Unit), updaterUserID)
	return &updated, nil
}

// Checkout resolves every line against current stock and commits the sale
// and the deductions in one database transaction. If any line cannot be
// covered, nothing is recorded.
func (s *PharmacyService) Checkout(ctx context.Context, req dto.CheckoutRequest, creatorUserID string) (*domain.Sale, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if domain.PaymentMethod(req.PaymentMethod) == domain.PaymentBank {
		if req.BankAccountID == "" {
			return nil, fmt.Errorf("%w: bankAccountID is required for bank settlement", apperrors.ErrValidation)
		}
		account, err := s.bankRepo.FindBankAccountByID(ctx, req.BankAccountID)
		if err != nil {
			return nil, err
		}
		if err := ledger.ValidateBankAccount(*account, domain.SectorPharmacy); err != nil {
			return nil, err
		}
	}

	ids := make([]string, 0, len(req.Lines))
	lines := make([]ledger.SaleLine, 0, len(req.Lines))
	for _, line := range req.Lines {
		ids = append(ids, line.ItemID)
		lines = append(lines, ledger.SaleLine{
			ItemID:   line.ItemID,
			Quantity: line.Quantity,
			Unit:     domain.Unit(line.Unit),
		})
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	items, err := s.stockRepo.FindStockItemsByIDs(ctx, ids)
	if err != nil {
		logger.Error("Failed to load items for checkout", slog.String("error", err.Error()))
		return nil, fmt.Errorf("failed to load items for checkout: %w", err)
	}

	batch, err := ledger.ApplySaleBatch(items, lines)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	for i := range batch.UpdatedItems {
		batch.UpdatedItems[i].LastUpdatedAt = now
		batch.UpdatedItems[i].LastUpdatedBy = creatorUserID
	}
	sale := domain.Sale{
		SaleID:        uuid.NewString(),
		Lines:         batch.Lines,
		Total:         batch.Total,
		PaymentMethod: domain.PaymentMethod(req.PaymentMethod),
		BankAccountID: req.BankAccountID,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     creatorUserID,
			LastUpdatedAt: now,
			LastUpdatedBy: creatorUserID,
		},
	}

	if err := s.saleRepo.SaveSaleWithDeductions(ctx, sale, batch.UpdatedItems); err != nil {
		logger.Error("Failed to commit sale", slog.String("error", err.Error()), slog.String("sale_id", sale.SaleID))
		return nil, fmt.Errorf("failed to commit sale: %w", err)
	}

	logger.Info("Sale completed",
		slog.String("sale_id", sale.SaleID),
		slog.Int("lines", len(sale.Lines)),
		slog.String("total", sale.Total.String()),
	)
	s.activity.Record(ctx, "CHECKOUT", "pharmacy",
		fmt.Sprintf("sold %d lines for %s", len(sale.Lines), sale.Total.StringFixed(2)), creatorUserID)
	return &sale, nil
}
