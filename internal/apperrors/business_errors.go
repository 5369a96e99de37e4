package apperrors

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// The errors in this file are expected business outcomes, not faults: a sale
// that would oversell stock or a purchase the vault cannot fund is reported as
// a structured value the caller can inspect. They all unwrap to ErrValidation
// so handlers can classify them with errors.Is while services match concrete
// types with errors.As.

// IncompatibleUnitError is returned when a requested sale unit cannot be
// related to the unit a stock item is stored in.
type IncompatibleUnitError struct {
	ItemID        string
	RequestedUnit string
	StorageUnit   string
}

func (e *IncompatibleUnitError) Error() string {
	return fmt.Sprintf("unit %q is incompatible with storage unit %q for item %s", e.RequestedUnit, e.StorageUnit, e.ItemID)
}

func (e *IncompatibleUnitError) Unwrap() error { return ErrValidation }

// InsufficientStockError is returned when a sale line would drive a stock
// item's quantity negative. Line is the zero-based index of the offending
// line within the submitted batch; quantities are in atomic units.
type InsufficientStockError struct {
	Line      int
	ItemID    string
	Available int64
	Requested int64
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for item %s on line %d: requested %d, available %d", e.ItemID, e.Line, e.Requested, e.Available)
}

func (e *InsufficientStockError) Unwrap() error { return ErrValidation }

// InsufficientHoldingsError is returned when a sell transaction asks for more
// foreign currency than the vault currently holds.
type InsufficientHoldingsError struct {
	CurrencyCode string
	Available    decimal.Decimal
	Requested    decimal.Decimal
}

func (e *InsufficientHoldingsError) Error() string {
	return fmt.Sprintf("insufficient %s holdings: requested %s, available %s", e.CurrencyCode, e.Requested.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientHoldingsError) Unwrap() error { return ErrValidation }

// InsufficientLocalCashError is returned when a buy transaction costs more
// local cash than the vault currently holds.
type InsufficientLocalCashError struct {
	Available decimal.Decimal
	Required  decimal.Decimal
}

func (e *InsufficientLocalCashError) Error() string {
	return fmt.Sprintf("insufficient local cash: required %s, available %s", e.Required.StringFixed(2), e.Available.StringFixed(2))
}

func (e *InsufficientLocalCashError) Unwrap() error { return ErrValidation }

// IneligibleBankAccountError is returned when a bank account is not eligible
// to settle transactions for the given business sector.
type IneligibleBankAccountError struct {
	AccountID string
	Sector    string
}

func (e *IneligibleBankAccountError) Error() string {
	return fmt.Sprintf("bank account %s is not eligible for sector %q", e.AccountID, e.Sector)
}

func (e *IneligibleBankAccountError) Unwrap() error { return ErrValidation }

// MalformedRecordError is returned when an input record is missing a required
// field or carries a value that cannot be processed (non-positive amount, an
// unrecognized rate shape, an inconsistent total). No partial processing is
// attempted once one is detected.
type MalformedRecordError struct {
	Record string
	Field  string
	Reason string
}

func (e *MalformedRecordError) Error() string {
	return fmt.Sprintf("malformed %s record: field %q %s", e.Record, e.Field, e.Reason)
}

func (e *MalformedRecordError) Unwrap() error { return ErrValidation }
