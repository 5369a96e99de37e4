package services

import (
	"context"

	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/dto"
)

// PharmacyReaderSvc defines read operations for the pharmacy module.
type PharmacyReaderSvc interface {
	// ListStockItems retrieves all registered products.
	ListStockItems(ctx context.Context) ([]domain.StockItem, error)

	// GetStockItemByID retrieves a single product.
	GetStockItemByID(ctx context.Context, itemID string) (*domain.StockItem, error)

	// ListSales retrieves completed sales, newest first.
	ListSales(ctx context.Context) ([]domain.Sale, error)

	// GetDashboard summarizes stock levels and sales.
	GetDashboard(ctx context.Context) (dto.PharmacyDashboardResponse, error)
}

// PharmacyWriterSvc defines write operations for the pharmacy module.
type PharmacyWriterSvc interface {
	// CreateStockItem registers a new product.
	CreateStockItem(ctx context.Context, req dto.CreateStockItemRequest, creatorUserID string) (*domain.StockItem, error)

	// UpdateStockItem updates product metadata.
	UpdateStockItem(ctx context.Context, itemID string, req dto.UpdateStockItemRequest, updaterUserID string) (*domain.StockItem, error)

	// RestockItem adds quantity to a product in the requested unit.
	RestockItem(ctx context.Context, itemID string, req dto.RestockRequest, updaterUserID string) (*domain.StockItem, error)

	// Checkout resolves and commits a sale, deducting every line from
	// stock or nothing at all.
	Checkout(ctx context.Context, req dto.CheckoutRequest, creatorUserID string) (*domain.Sale, error)
}

// PharmacySvcFacade combines all pharmacy service interfaces.
type PharmacySvcFacade interface {
	PharmacyReaderSvc
	PharmacyWriterSvc
}
