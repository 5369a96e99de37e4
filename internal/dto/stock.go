package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// CreateStockItemRequest defines the data needed to register a pharmacy
// product. InitialQuantity is expressed in StorageUnit packs and converted
// to atomic units before storage.
type CreateStockItemRequest struct {
	Name                string          `json:"name" binding:"required"`
	BuyPrice            decimal.Decimal `json:"buyPrice"`
	SellPrice           decimal.Decimal `json:"sellPrice" binding:"required"`
	InitialQuantity     int64           `json:"initialQuantity" binding:"min=0"`
	StorageUnit         string          `json:"storageUnit" binding:"required,oneof=Item Box Strip Bottle"`
	ItemsPerStorageUnit int64           `json:"itemsPerStorageUnit" binding:"required,min=1"`
	Batch               string          `json:"batch"`
	MfgDate             *time.Time      `json:"mfgDate"`
	ExpDate             *time.Time      `json:"expDate"`
}

// UpdateStockItemRequest updates product metadata. Quantity is not updated
// here; stock levels change only through restocks and sales.
type UpdateStockItemRequest struct {
	Name      *string          `json:"name"`
	BuyPrice  *decimal.Decimal `json:"buyPrice"`
	SellPrice *decimal.Decimal `json:"sellPrice"`
	Batch     *string          `json:"batch"`
	MfgDate   *time.Time       `json:"mfgDate"`
	ExpDate   *time.Time       `json:"expDate"`
}

// RestockRequest adds quantity to an item in the given unit.
type RestockRequest struct {
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
	Unit     string `json:"unit" binding:"required,oneof=Item Box Strip Bottle"`
}

// StockItemResponse defines the data returned for a pharmacy product.
type StockItemResponse struct {
	ItemID              string          `json:"itemID"`
	Name                string          `json:"name"`
	BuyPrice            decimal.Decimal `json:"buyPrice"`
	SellPrice           decimal.Decimal `json:"sellPrice"`
	QuantityOnHand      int64           `json:"quantityOnHand"`
	StorageUnit         string          `json:"storageUnit"`
	ItemsPerStorageUnit int64           `json:"itemsPerStorageUnit"`
	Batch               string          `json:"batch,omitempty"`
	MfgDate             *time.Time      `json:"mfgDate,omitempty"`
	ExpDate             *time.Time      `json:"expDate,omitempty"`
	CreatedAt           time.Time       `json:"createdAt"`
	LastUpdatedAt       time.Time       `json:"lastUpdatedAt"`
}

// ToStockItemResponse converts a domain.StockItem to StockItemResponse DTO.
func ToStockItemResponse(item *domain.StockItem) StockItemResponse {
	return StockItemResponse{
		ItemID:              item.ItemID,
		Name:                item.Name,
		BuyPrice:            item.BuyPrice,
		SellPrice:           item.SellPrice,
		QuantityOnHand:      item.QuantityOnHand,
		StorageUnit:         string(item.StorageUnit),
		ItemsPerStorageUnit: item.ItemsPerStorageUnit,
		Batch:               item.Batch,
		MfgDate:             item.MfgDate,
		ExpDate:             item.ExpDate,
		CreatedAt:           item.CreatedAt,
		LastUpdatedAt:       item.LastUpdatedAt,
	}
}

// ToListStockItemResponse converts a slice of stock items to DTOs.
func ToListStockItemResponse(items []domain.StockItem) []StockItemResponse {
	res := make([]StockItemResponse, len(items))
	for i, item := range items {
		res[i] = ToStockItemResponse(&item)
	}
	return res
}
