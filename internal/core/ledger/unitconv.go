package ledger

import (
	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
)

// LineResolution is the outcome of relating a requested sale unit to an
// item's storage unit: how many atomic units leave stock and what one
// requested unit costs. UnitPrice keeps full precision; rounding to currency
// precision is a display concern.
type LineResolution struct {
	AtomicDeduction int64
	UnitPrice       decimal.Decimal
}

// ResolveSaleLine computes the atomic-unit deduction and per-unit price for
// selling qty of the given unit from item.
//
// Selling the storage unit itself deducts qty packs worth of atomic units at
// the listed price; when the storage unit is already atomic the deduction is
// qty itself, regardless of any declared pack size. Selling single items out
// of pack-stored stock deducts qty atomic units at the listed price divided
// by the pack size. Selling a pack of item-stored stock is the supported
// degenerate case: pack size many atomic units at pack-size times the listed
// price. Any other pairing cannot be related and fails with
// IncompatibleUnitError.
func ResolveSaleLine(item domain.StockItem, qty int64, unit domain.Unit) (LineResolution, error) {
	if qty <= 0 {
		return LineResolution{}, &apperrors.MalformedRecordError{Record: "sale line", Field: "requestedQuantity", Reason: "must be positive"}
	}
	if item.ItemsPerStorageUnit < 1 {
		return LineResolution{}, &apperrors.MalformedRecordError{Record: "stock item", Field: "itemsPerStorageUnit", Reason: "must be at least 1"}
	}

	perPack := decimal.NewFromInt(item.ItemsPerStorageUnit)

	switch {
	case unit == item.StorageUnit && item.StorageUnit == domain.UnitItem:
		// Atomic storage: the declared pack size only matters for
		// coarser sales, never for the deduction here.
		return LineResolution{
			AtomicDeduction: qty,
			UnitPrice:       item.SellPrice,
		}, nil
	case unit == item.StorageUnit:
		return LineResolution{
			AtomicDeduction: qty * item.ItemsPerStorageUnit,
			UnitPrice:       item.SellPrice,
		}, nil
	case unit == domain.UnitItem:
		// Finer than storage: single items out of a pack.
		return LineResolution{
			AtomicDeduction: qty,
			UnitPrice:       item.SellPrice.Div(perPack),
		}, nil
	case item.StorageUnit == domain.UnitItem:
		// Coarser than storage: a pack assembled from loose items.
		return LineResolution{
			AtomicDeduction: qty * item.ItemsPerStorageUnit,
			UnitPrice:       item.SellPrice.Mul(perPack),
		}, nil
	default:
		return LineResolution{}, &apperrors.IncompatibleUnitError{
			ItemID:        item.ItemID,
			RequestedUnit: string(unit),
			StorageUnit:   string(item.StorageUnit),
		}
	}
}
