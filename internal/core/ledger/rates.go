package ledger

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
)

// ResolveRatesOptions controls how an absent rate catalog is interpreted.
// Seed is returned when the stored catalog is missing entirely; when nil,
// DefaultSeedRates() is used. A catalog that is present but empty is an
// explicit administrator clear and is never re-seeded, regardless of the
// flag.
type ResolveRatesOptions struct {
	UseDefaultSeedWhenEmpty bool
	Seed                    domain.RateTable
}

// DefaultSeedRates returns the built-in reference quotes that keep a freshly
// initialized system usable before an administrator configures real rates.
func DefaultSeedRates() domain.RateTable {
	return domain.RateTable{
		"USD": {CurrencyCode: "USD", Buy: decimal.RequireFromString("1.00"), Sell: decimal.RequireFromString("1.02")},
		"EUR": {CurrencyCode: "EUR", Buy: decimal.RequireFromString("0.90"), Sell: decimal.RequireFromString("0.92")},
		"GBP": {CurrencyCode: "GBP", Buy: decimal.RequireFromString("0.80"), Sell: decimal.RequireFromString("0.82")},
	}
}

// rawRate tolerates every historical field spelling for a quote. Older
// revisions stored buy_rate/sell_rate, some stored a single rate field, the
// current form stores buy/sell.
type rawRate struct {
	Code     string           `json:"code"`
	Buy      *decimal.Decimal `json:"buy"`
	BuyRate  *decimal.Decimal `json:"buy_rate"`
	Sell     *decimal.Decimal `json:"sell"`
	SellRate *decimal.Decimal `json:"sell_rate"`
	Rate     *decimal.Decimal `json:"rate"`
}

// ResolveRates normalizes a stored rate catalog into the canonical RateTable.
// The input may be a JSON array of {code, buy, sell} records or a keyed
// object using any legacy field spelling; both map to the same table.
//
// A nil (or JSON null) input means the catalog was never written and yields
// the seed table when opts.UseDefaultSeedWhenEmpty is set. A present but
// empty array or object yields an empty table. Any record whose shape is not
// recognized, or whose quote is missing or non-positive, fails with a
// MalformedRecordError rather than defaulting. Resolving the canonical
// output again produces the same table.
func ResolveRates(raw []byte, opts ResolveRatesOptions) (domain.RateTable, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		if opts.UseDefaultSeedWhenEmpty {
			if opts.Seed != nil {
				return cloneTable(opts.Seed), nil
			}
			return DefaultSeedRates(), nil
		}
		return domain.RateTable{}, nil
	}

	switch trimmed[0] {
	case '[':
		var entries []rawRate
		if err := json.Unmarshal(trimmed, &entries); err != nil {
			return nil, &apperrors.MalformedRecordError{Record: "rate catalog", Field: "(document)", Reason: "is not a recognized array shape"}
		}
		table := make(domain.RateTable, len(entries))
		for _, entry := range entries {
			rate, err := normalizeRate(entry.Code, entry)
			if err != nil {
				return nil, err
			}
			table[rate.CurrencyCode] = rate
		}
		return table, nil
	case '{':
		var keyed map[string]rawRate
		if err := json.Unmarshal(trimmed, &keyed); err != nil {
			return nil, &apperrors.MalformedRecordError{Record: "rate catalog", Field: "(document)", Reason: "is not a recognized object shape"}
		}
		table := make(domain.RateTable, len(keyed))
		for code, entry := range keyed {
			rate, err := normalizeRate(code, entry)
			if err != nil {
				return nil, err
			}
			table[rate.CurrencyCode] = rate
		}
		return table, nil
	default:
		return nil, &apperrors.MalformedRecordError{Record: "rate catalog", Field: "(document)", Reason: "is neither an array nor an object"}
	}
}

func normalizeRate(code string, entry rawRate) (domain.Rate, error) {
	code = strings.ToUpper(strings.TrimSpace(code))
	if code == "" {
		return domain.Rate{}, &apperrors.MalformedRecordError{Record: "rate", Field: "code", Reason: "is required"}
	}
	buy := firstRate(entry.BuyRate, entry.Buy, entry.Rate)
	sell := firstRate(entry.SellRate, entry.Sell, entry.Rate)
	if buy == nil {
		return domain.Rate{}, &apperrors.MalformedRecordError{Record: "rate", Field: "buy", Reason: "is missing for " + code}
	}
	if sell == nil {
		return domain.Rate{}, &apperrors.MalformedRecordError{Record: "rate", Field: "sell", Reason: "is missing for " + code}
	}
	if !buy.IsPositive() {
		return domain.Rate{}, &apperrors.MalformedRecordError{Record: "rate", Field: "buy", Reason: "must be positive for " + code}
	}
	if !sell.IsPositive() {
		return domain.Rate{}, &apperrors.MalformedRecordError{Record: "rate", Field: "sell", Reason: "must be positive for " + code}
	}
	return domain.Rate{CurrencyCode: code, Buy: *buy, Sell: *sell}, nil
}

func firstRate(candidates ...*decimal.Decimal) *decimal.Decimal {
	for _, c := range candidates {
		if c != nil {
			return c
		}
	}
	return nil
}

func cloneTable(table domain.RateTable) domain.RateTable {
	out := make(domain.RateTable, len(table))
	for code, rate := range table {
		out[code] = rate
	}
	return out
}
