package dto

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/core/domain"
)

// RateUpsert is one buy/sell quote in a catalog replacement.
type RateUpsert struct {
	CurrencyCode string          `json:"currencyCode" binding:"required,uppercase,min=3,max=5"`
	Buy          decimal.Decimal `json:"buy" binding:"required"`
	Sell         decimal.Decimal `json:"sell" binding:"required"`
}

// ReplaceRatesRequest replaces the whole rate catalog. An empty list is
// valid: it clears the catalog without reviving the seed defaults.
type ReplaceRatesRequest struct {
	Rates []RateUpsert `json:"rates" binding:"dive"`
}

// RateResponse defines the data returned for one currency quote.
type RateResponse struct {
	CurrencyCode string          `json:"currencyCode"`
	Buy          decimal.Decimal `json:"buy"`
	Sell         decimal.Decimal `json:"sell"`
	UpdatedAt    time.Time       `json:"updatedAt,omitempty"`
}

// ToListRateResponse converts a domain.RateTable to a sorted slice of DTOs.
func ToListRateResponse(table domain.RateTable) []RateResponse {
	res := make([]RateResponse, 0, len(table))
	for _, rate := range table {
		res = append(res, RateResponse{
			CurrencyCode: rate.CurrencyCode,
			Buy:          rate.Buy,
			Sell:         rate.Sell,
			UpdatedAt:    rate.UpdatedAt,
		})
	}
	sort.Slice(res, func(i, j int) bool { return res[i].CurrencyCode < res[j].CurrencyCode })
	return res
}
