package repositories

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// StockReader defines read operations for pharmacy stock.
type StockReader interface {
	// ListStockItems retrieves the full stock catalog.
	ListStockItems(ctx context.Context) ([]domain.StockItem, error)

	// FindStockItemByID retrieves a single stock item.
	FindStockItemByID(ctx context.Context, itemID string) (*domain.StockItem, error)

	// FindStockItemsByIDs retrieves the given items keyed by ID.
	FindStockItemsByIDs(ctx context.Context, itemIDs []string) (map[string]domain.StockItem, error)
}

// StockWriter defines write operations for pharmacy stock.
type StockWriter interface {
	// SaveStockItem inserts or updates a stock item.
	SaveStockItem(ctx context.Context, item domain.StockItem) error
}

// StockRepositoryFacade combines all stock repository interfaces.
type StockRepositoryFacade interface {
	StockReader
	StockWriter
}

// SaleReader defines read operations for pharmacy sales.
type SaleReader interface {
	// ListSales retrieves sale history, newest first.
	ListSales(ctx context.Context) ([]domain.Sale, error)
}

// SaleWriter defines write operations for pharmacy sales.
type SaleWriter interface {
	// SaveSaleWithDeductions persists the sale and the deducted stock items
	// in a single database transaction, so a checkout is atomic.
	SaveSaleWithDeductions(ctx context.Context, sale domain.Sale, updatedItems []domain.StockItem) error
}

// SaleRepositoryFacade combines all sale repository interfaces.
type SaleRepositoryFacade interface {
	SaleReader
	SaleWriter
}
