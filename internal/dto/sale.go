package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// CheckoutLineRequest is one line of a checkout as the clerk entered it.
type CheckoutLineRequest struct {
	ItemID   string `json:"itemID" binding:"required"`
	Quantity int64  `json:"quantity" binding:"required,gt=0"`
	Unit     string `json:"unit" binding:"required,oneof=Item Box Strip Bottle"`
}

// CheckoutRequest defines the data needed to complete a pharmacy sale.
type CheckoutRequest struct {
	Lines         []CheckoutLineRequest `json:"lines" binding:"required,min=1,dive"`
	PaymentMethod string                `json:"paymentMethod" binding:"required,oneof=CASH BANK CREDIT"`
	BankAccountID string                `json:"bankAccountID"`
}

// SaleLineResponse defines the data returned for one resolved sale line.
type SaleLineResponse struct {
	ItemID            string          `json:"itemID"`
	Name              string          `json:"name"`
	RequestedQuantity int64           `json:"requestedQuantity"`
	RequestedUnit     string          `json:"requestedUnit"`
	AtomicDeduction   int64           `json:"atomicDeduction"`
	UnitPrice         decimal.Decimal `json:"unitPrice"`
	LineTotal         decimal.Decimal `json:"lineTotal"`
}

// SaleResponse defines the data returned for a completed sale.
type SaleResponse struct {
	SaleID        string             `json:"saleID"`
	Lines         []SaleLineResponse `json:"lines"`
	Total         decimal.Decimal    `json:"total"`
	PaymentMethod string             `json:"paymentMethod"`
	BankAccountID string             `json:"bankAccountID,omitempty"`
	CreatedAt     time.Time          `json:"createdAt"`
	CreatedBy     string             `json:"createdBy"`
}

// PharmacyDashboardResponse summarizes stock and sales for the dashboard.
type PharmacyDashboardResponse struct {
	ItemCount     int                 `json:"itemCount"`
	LowStockItems []StockItemResponse `json:"lowStockItems"`
	SaleCount     int                 `json:"saleCount"`
	Revenue       decimal.Decimal     `json:"revenue"`
}

// ToSaleResponse converts a domain.Sale to SaleResponse DTO.
func ToSaleResponse(sale *domain.Sale) SaleResponse {
	lines := make([]SaleLineResponse, len(sale.Lines))
	for i, line := range sale.Lines {
		lines[i] = SaleLineResponse{
			ItemID:            line.ItemID,
			Name:              line.Name,
			RequestedQuantity: line.RequestedQuantity,
			RequestedUnit:     string(line.RequestedUnit),
			AtomicDeduction:   line.AtomicDeduction,
			UnitPrice:         line.UnitPrice,
			LineTotal:         line.LineTotal(),
		}
	}
	return SaleResponse{
		SaleID:        sale.SaleID,
		Lines:         lines,
		Total:         sale.Total,
		PaymentMethod: string(sale.PaymentMethod),
		BankAccountID: sale.BankAccountID,
		CreatedAt:     sale.CreatedAt,
		CreatedBy:     sale.CreatedBy,
	}
}

// ToListSaleResponse converts a slice of sales to DTOs.
func ToListSaleResponse(sales []domain.Sale) []SaleResponse {
	res := make([]SaleResponse, len(sales))
	for i, sale := range sales {
		res[i] = ToSaleResponse(&sale)
	}
	return res
}
