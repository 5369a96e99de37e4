package domain

import (
	"github.com/shopspring/decimal"
)

// SaleLineItem is one resolved line of a pharmacy sale. RequestedQuantity and
// RequestedUnit are what the clerk entered; AtomicDeduction and UnitPrice are
// the resolved values the stock ledger commits.
type SaleLineItem struct {
	ItemID            string          `json:"itemID"`
	Name              string          `json:"name"`
	RequestedQuantity int64           `json:"requestedQuantity"`
	RequestedUnit     Unit            `json:"requestedUnit"`
	AtomicDeduction   int64           `json:"atomicDeduction"`
	UnitPrice         decimal.Decimal `json:"unitPrice"` // Per requested unit, full precision
}

// LineTotal is the line's contribution to the sale total.
func (l SaleLineItem) LineTotal() decimal.Decimal {
	return l.UnitPrice.Mul(decimal.NewFromInt(l.RequestedQuantity))
}

// Sale is a completed pharmacy checkout. Lines are committed all-or-nothing:
// a sale either deducts every line from stock or records nothing.
type Sale struct {
	SaleID        string          `json:"saleID"` // Primary Key (UUID)
	Lines         []SaleLineItem  `json:"lines"`
	Total         decimal.Decimal `json:"total"`
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	BankAccountID string          `json:"bankAccountID,omitempty"`
	AuditFields
}
