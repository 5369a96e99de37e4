package domain

import (
	"github.com/shopspring/decimal"
)

// ExchangeKind indicates whether the desk bought or sold foreign currency.
type ExchangeKind string

const (
	ExchangeBuy  ExchangeKind = "BUY"
	ExchangeSell ExchangeKind = "SELL"
)

// LocalCurrencyCode is the distinguished vault entry for local-currency cash.
const LocalCurrencyCode = "LOCAL"

// ExchangeTransaction is a single completed buy or sell at the exchange desk.
// Transactions are immutable once recorded; corrections are made by deleting
// the record (a compensating event) and recomputing holdings from scratch.
type ExchangeTransaction struct {
	TransactionID string          `json:"transactionID"` // Primary Key (UUID)
	Kind          ExchangeKind    `json:"kind"`          // BUY or SELL (Not Null)
	CurrencyCode  string          `json:"currencyCode"`  // Foreign currency, e.g. "USD"
	Amount        decimal.Decimal `json:"amount"`        // Foreign units, positive
	Rate          decimal.Decimal `json:"rate"`          // Local per foreign unit, positive
	TotalLocal    decimal.Decimal `json:"totalLocal"`    // Amount * Rate, 2dp
	CustomerName  string          `json:"customerName"`
	CustomerRef   string          `json:"customerRef"` // ID / passport number
	Description   string          `json:"description"` // Nullable
	PaymentMethod PaymentMethod   `json:"paymentMethod"`
	BankAccountID string          `json:"bankAccountID,omitempty"` // Required when PaymentMethod is BANK
	Counterparty  *BankDetails    `json:"counterparty,omitempty"`  // External beneficiary on buys
	AuditFields
}

// BankDetails identifies an external bank counterparty on a transfer.
type BankDetails struct {
	BankName      string `json:"bankName"`
	AccountNumber string `json:"accountNumber"`
}

// Vault is the derived multi-currency cash position of the desk: currency
// code to quantity held, with LocalCurrencyCode for local cash. It is never
// persisted; it is recomputed from a seed plus the full transaction history.
type Vault map[string]decimal.Decimal

// Clone returns an independent copy of the vault.
func (v Vault) Clone() Vault {
	out := make(Vault, len(v))
	for code, qty := range v {
		out[code] = qty
	}
	return out
}

// Holding returns the quantity held for a currency, zero if absent.
func (v Vault) Holding(code string) decimal.Decimal {
	if qty, ok := v[code]; ok {
		return qty
	}
	return decimal.Zero
}

// CurrencyVolume is the per-currency traded volume split by direction.
type CurrencyVolume struct {
	Bought decimal.Decimal `json:"bought"` // Foreign units acquired
	Sold   decimal.Decimal `json:"sold"`   // Foreign units released
}

// ExchangeStats summarizes trading activity for the dashboard.
type ExchangeStats struct {
	ByCurrency  map[string]CurrencyVolume `json:"byCurrency"`
	LocalVolume decimal.Decimal           `json:"localVolume"` // Total local cash moved
	Count       int                       `json:"count"`
}
