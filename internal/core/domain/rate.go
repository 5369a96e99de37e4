package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Rate is the desk's buy/sell quote for one foreign currency, expressed in
// local currency per foreign unit. Buy is what the desk pays, Sell is what
// the desk charges; a plausible quote has Buy < Sell.
type Rate struct {
	CurrencyCode string          `json:"currencyCode"`
	Buy          decimal.Decimal `json:"buy"`
	Sell         decimal.Decimal `json:"sell"`
	UpdatedAt    time.Time       `json:"updatedAt,omitempty"`
}

// RateTable is the canonical form of the rate catalog: uppercase currency
// code to quote. Legacy storage shapes are normalized into this form at the
// boundary and never consulted directly.
type RateTable map[string]Rate
