package ledger

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
)

// SaleLine is one requested line of a checkout before resolution.
type SaleLine struct {
	ItemID   string
	Quantity int64
	Unit     domain.Unit
}

// BatchResolution is the committed outcome of a sale batch: the resolved
// lines, the affected items with their deductions applied, and the sale
// total at full precision.
type BatchResolution struct {
	Lines        []domain.SaleLineItem
	UpdatedItems []domain.StockItem
	Total        decimal.Decimal
}

// ApplyRestock adds atomic units to an item's quantity on hand. Restocks are
// additive events: applying the same restock twice doubles it, which is by
// contract the caller's concern. A negative addition is malformed.
func ApplyRestock(item domain.StockItem, addedAtomicQty int64) (domain.StockItem, error) {
	if addedAtomicQty < 0 {
		return domain.StockItem{}, &apperrors.MalformedRecordError{Record: "restock", Field: "addedQuantity", Reason: "must not be negative"}
	}
	item.QuantityOnHand += addedAtomicQty
	return item, nil
}

// ApplySaleBatch resolves and validates every line of a sale against the
// given stock, then returns the deductions as updated item copies. The check
// is all-or-nothing: if any line cannot be covered, even by the remainder
// left after earlier lines in the same batch, nothing is deducted and an
// InsufficientStockError identifies the offending line. The input map is
// never mutated.
func ApplySaleBatch(items map[string]domain.StockItem, lines []SaleLine) (*BatchResolution, error) {
	if len(lines) == 0 {
		return nil, &apperrors.MalformedRecordError{Record: "sale", Field: "lines", Reason: "must not be empty"}
	}

	remaining := make(map[string]int64, len(items))
	for id, item := range items {
		remaining[id] = item.QuantityOnHand
	}

	resolved := make([]domain.SaleLineItem, 0, len(lines))
	total := decimal.Zero
	touched := make([]string, 0, len(lines))

	for i, line := range lines {
		item, ok := items[line.ItemID]
		if !ok {
			return nil, fmt.Errorf("%w: stock item %s", apperrors.ErrNotFound, line.ItemID)
		}
		res, err := ResolveSaleLine(item, line.Quantity, line.Unit)
		if err != nil {
			return nil, err
		}
		if remaining[line.ItemID] < res.AtomicDeduction {
			return nil, &apperrors.InsufficientStockError{
				Line:      i,
				ItemID:    line.ItemID,
				Available: remaining[line.ItemID],
				Requested: res.AtomicDeduction,
			}
		}
		if remaining[line.ItemID] == item.QuantityOnHand {
			touched = append(touched, line.ItemID)
		}
		remaining[line.ItemID] -= res.AtomicDeduction

		resolved = append(resolved, domain.SaleLineItem{
			ItemID:            item.ItemID,
			Name:              item.Name,
			RequestedQuantity: line.Quantity,
			RequestedUnit:     line.Unit,
			AtomicDeduction:   res.AtomicDeduction,
			UnitPrice:         res.UnitPrice,
		})
		total = total.Add(res.UnitPrice.Mul(decimal.NewFromInt(line.Quantity)))
	}

	updated := make([]domain.StockItem, 0, len(touched))
	for _, id := range touched {
		item := items[id]
		item.QuantityOnHand = remaining[id]
		updated = append(updated, item)
	}

	return &BatchResolution{Lines: resolved, UpdatedItems: updated, Total: total}, nil
}
