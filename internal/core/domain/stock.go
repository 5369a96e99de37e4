package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Unit names a packaging level for pharmacy stock. UnitItem is the atomic
// unit: all stored quantities are expressed in it, whatever unit the item is
// priced and packaged in.
type Unit string

const (
	UnitItem   Unit = "Item"
	UnitBox    Unit = "Box"
	UnitStrip  Unit = "Strip"
	UnitBottle Unit = "Bottle"
)

// StockItem is a pharmacy product. QuantityOnHand is always atomic units
// (single pills/pieces), never packs; that invariant is what makes unit
// conversion deterministic. SellPrice is per StorageUnit.
type StockItem struct {
	ItemID              string          `json:"itemID"` // Primary Key (UUID)
	Name                string          `json:"name"`
	BuyPrice            decimal.Decimal `json:"buyPrice"`
	SellPrice           decimal.Decimal `json:"sellPrice"`
	QuantityOnHand      int64           `json:"quantityOnHand"` // Atomic units, >= 0
	StorageUnit         Unit            `json:"storageUnit"`
	ItemsPerStorageUnit int64           `json:"itemsPerStorageUnit"` // >= 1; 1 when StorageUnit is Item
	Batch               string          `json:"batch,omitempty"`
	MfgDate             *time.Time      `json:"mfgDate,omitempty"`
	ExpDate             *time.Time      `json:"expDate,omitempty"`
	AuditFields
}
