package domain

import "time"

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID reference
}

// PaymentMethod identifies how a transaction was settled.
type PaymentMethod string

const (
	PaymentCash   PaymentMethod = "CASH"
	PaymentBank   PaymentMethod = "BANK"
	PaymentCredit PaymentMethod = "CREDIT"
)

// Sector identifies the business module a record belongs to. Bank accounts
// declare which sectors they may settle.
type Sector string

const (
	SectorExchange     Sector = "exchange"
	SectorPharmacy     Sector = "pharmacy"
	SectorConstruction Sector = "construction"
)
