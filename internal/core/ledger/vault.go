// Package ledger holds the derived-state computation engines: pure,
// deterministic folds that reconstruct vault holdings, stock quantities and
// site balances from append-only transaction history, plus the validation
// rules that guard prospective mutations. Nothing in this package performs
// I/O or holds state between calls; callers load history, invoke a fold or a
// validation, and persist the outcome themselves.
package ledger

import (
	"strings"

	"github.com/shopspring/decimal"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
)

// totalTolerance is the accepted drift between a recorded TotalLocal and
// Amount*Rate, matching 2-decimal currency rounding.
var totalTolerance = decimal.RequireFromString("0.01")

// ComputeHoldings folds an ordered exchange transaction history over a seed
// vault and returns the resulting holdings. A buy increases the foreign entry
// and decreases local cash by Amount*Rate; a sell does the opposite. Currency
// codes not present in the seed auto-initialize to zero before the delta is
// applied.
//
// The fold itself never rejects a history that drives an entry negative:
// replaying the audit trail must always complete, and negativity is prevented
// at insertion time by ValidateNewTransaction. A malformed record aborts the
// fold with no partial result.
func ComputeHoldings(seed domain.Vault, txs []domain.ExchangeTransaction) (domain.Vault, error) {
	vault := seed.Clone()
	if vault == nil {
		vault = domain.Vault{}
	}
	if _, ok := vault[domain.LocalCurrencyCode]; !ok {
		vault[domain.LocalCurrencyCode] = decimal.Zero
	}

	for _, tx := range txs {
		if err := checkExchangeTransaction(tx); err != nil {
			return nil, err
		}
		code := strings.ToUpper(tx.CurrencyCode)
		if _, ok := vault[code]; !ok {
			vault[code] = decimal.Zero
		}
		local := tx.Amount.Mul(tx.Rate)
		switch tx.Kind {
		case domain.ExchangeBuy:
			vault[code] = vault[code].Add(tx.Amount)
			vault[domain.LocalCurrencyCode] = vault[domain.LocalCurrencyCode].Sub(local)
		case domain.ExchangeSell:
			vault[code] = vault[code].Sub(tx.Amount)
			vault[domain.LocalCurrencyCode] = vault[domain.LocalCurrencyCode].Add(local)
		}
	}
	return vault, nil
}

// ValidateNewTransaction checks a prospective transaction against the current
// fold of holdings before it is committed. A sell requires the foreign entry
// to cover the amount; a buy requires local cash to cover Amount*Rate. The
// verdict depends on the prefix of history the vault was folded from, so the
// caller must validate against up-to-date holdings.
func ValidateNewTransaction(vault domain.Vault, candidate domain.ExchangeTransaction) error {
	if err := checkExchangeTransaction(candidate); err != nil {
		return err
	}
	code := strings.ToUpper(candidate.CurrencyCode)
	switch candidate.Kind {
	case domain.ExchangeSell:
		available := vault.Holding(code)
		if available.LessThan(candidate.Amount) {
			return &apperrors.InsufficientHoldingsError{
				CurrencyCode: code,
				Available:    available,
				Requested:    candidate.Amount,
			}
		}
	case domain.ExchangeBuy:
		required := candidate.Amount.Mul(candidate.Rate)
		available := vault.Holding(domain.LocalCurrencyCode)
		if available.LessThan(required) {
			return &apperrors.InsufficientLocalCashError{
				Available: available,
				Required:  required,
			}
		}
	}
	return nil
}

// ComputeExchangeStats reduces a transaction history into per-currency traded
// volume and the total local cash moved. Malformed records abort the fold.
func ComputeExchangeStats(txs []domain.ExchangeTransaction) (domain.ExchangeStats, error) {
	stats := domain.ExchangeStats{
		ByCurrency:  map[string]domain.CurrencyVolume{},
		LocalVolume: decimal.Zero,
	}
	for _, tx := range txs {
		if err := checkExchangeTransaction(tx); err != nil {
			return domain.ExchangeStats{}, err
		}
		code := strings.ToUpper(tx.CurrencyCode)
		vol := stats.ByCurrency[code]
		switch tx.Kind {
		case domain.ExchangeBuy:
			vol.Bought = vol.Bought.Add(tx.Amount)
		case domain.ExchangeSell:
			vol.Sold = vol.Sold.Add(tx.Amount)
		}
		stats.ByCurrency[code] = vol
		stats.LocalVolume = stats.LocalVolume.Add(tx.Amount.Mul(tx.Rate))
		stats.Count++
	}
	return stats, nil
}

// checkExchangeTransaction rejects records that cannot be folded: unknown
// kind, blank currency, non-positive amount or rate, or a recorded total that
// disagrees with Amount*Rate beyond currency rounding. A missing rate is a
// failure, never an implicit 1.0.
func checkExchangeTransaction(tx domain.ExchangeTransaction) error {
	if tx.Kind != domain.ExchangeBuy && tx.Kind != domain.ExchangeSell {
		return &apperrors.MalformedRecordError{Record: "exchange transaction", Field: "kind", Reason: "must be BUY or SELL"}
	}
	if strings.TrimSpace(tx.CurrencyCode) == "" {
		return &apperrors.MalformedRecordError{Record: "exchange transaction", Field: "currencyCode", Reason: "is required"}
	}
	if !tx.Amount.IsPositive() {
		return &apperrors.MalformedRecordError{Record: "exchange transaction", Field: "amount", Reason: "must be positive"}
	}
	if !tx.Rate.IsPositive() {
		return &apperrors.MalformedRecordError{Record: "exchange transaction", Field: "rate", Reason: "must be positive"}
	}
	if !tx.TotalLocal.IsZero() {
		if tx.TotalLocal.Sub(tx.Amount.Mul(tx.Rate)).Abs().GreaterThan(totalTolerance) {
			return &apperrors.MalformedRecordError{Record: "exchange transaction", Field: "totalLocal", Reason: "does not equal amount * rate"}
		}
	}
	return nil
}
