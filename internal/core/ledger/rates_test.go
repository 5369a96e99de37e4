package ledger_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
)

func TestResolveRates_ArrayShape(t *testing.T) {
	raw := []byte(`[
		{"code": "USD", "buy": 1.00, "sell": 1.02},
		{"code": "eur", "buy": 0.90, "sell": 0.92}
	]`)

	table, err := ledger.ResolveRates(raw, ledger.ResolveRatesOptions{})
	require.NoError(t, err)
	require.Len(t, table, 2)

	assert.True(t, table["USD"].Buy.Equal(dec("1.00")))
	assert.True(t, table["USD"].Sell.Equal(dec("1.02")))
	// Codes are normalized to uppercase.
	assert.True(t, table["EUR"].Buy.Equal(dec("0.90")))
	assert.Equal(t, "EUR", table["EUR"].CurrencyCode)
}

func TestResolveRates_KeyedObjectWithLegacyFieldNames(t *testing.T) {
	raw := []byte(`{
		"USD": {"buy_rate": 1.00, "sell_rate": 1.02, "updated": "2024-03-01T00:00:00Z"},
		"EUR": {"buy": 0.90, "sell": 0.92},
		"GBP": {"rate": 0.81}
	}`)

	table, err := ledger.ResolveRates(raw, ledger.ResolveRatesOptions{})
	require.NoError(t, err)
	require.Len(t, table, 3)

	assert.True(t, table["USD"].Buy.Equal(dec("1.00")))
	assert.True(t, table["USD"].Sell.Equal(dec("1.02")))
	assert.True(t, table["EUR"].Sell.Equal(dec("0.92")))
	// A lone legacy "rate" serves both sides of the quote.
	assert.True(t, table["GBP"].Buy.Equal(dec("0.81")))
	assert.True(t, table["GBP"].Sell.Equal(dec("0.81")))
}

func TestResolveRates_LegacyBuyRateWinsOverBuy(t *testing.T) {
	raw := []byte(`{"USD": {"buy_rate": 1.01, "buy": 9.99, "sell": 1.05}}`)

	table, err := ledger.ResolveRates(raw, ledger.ResolveRatesOptions{})
	require.NoError(t, err)
	assert.True(t, table["USD"].Buy.Equal(dec("1.01")))
}

func TestResolveRates_MissingCatalogSeedsOnlyWhenConfigured(t *testing.T) {
	table, err := ledger.ResolveRates(nil, ledger.ResolveRatesOptions{UseDefaultSeedWhenEmpty: true})
	require.NoError(t, err)
	require.Len(t, table, 3)
	assert.True(t, table["USD"].Buy.LessThan(table["USD"].Sell), "seed quotes keep a buy<sell spread")

	table, err = ledger.ResolveRates([]byte("null"), ledger.ResolveRatesOptions{UseDefaultSeedWhenEmpty: true})
	require.NoError(t, err)
	assert.Len(t, table, 3)

	table, err = ledger.ResolveRates(nil, ledger.ResolveRatesOptions{UseDefaultSeedWhenEmpty: false})
	require.NoError(t, err)
	assert.Empty(t, table)
}

func TestResolveRates_ExplicitlyClearedCatalogStaysEmpty(t *testing.T) {
	// An administrator who empties the catalog must not see it silently
	// revert to the seed, whatever the seeding flag says.
	for _, raw := range []string{`[]`, `{}`} {
		table, err := ledger.ResolveRates([]byte(raw), ledger.ResolveRatesOptions{UseDefaultSeedWhenEmpty: true})
		require.NoError(t, err)
		assert.Empty(t, table, "input %s", raw)
	}
}

func TestResolveRates_CustomSeed(t *testing.T) {
	seed := domain.RateTable{
		"AED": {CurrencyCode: "AED", Buy: dec("3.60"), Sell: dec("3.70")},
	}
	table, err := ledger.ResolveRates(nil, ledger.ResolveRatesOptions{UseDefaultSeedWhenEmpty: true, Seed: seed})
	require.NoError(t, err)
	require.Len(t, table, 1)
	assert.True(t, table["AED"].Sell.Equal(dec("3.70")))

	// The returned table is a copy, not the caller's seed.
	delete(table, "AED")
	assert.Len(t, seed, 1)
}

func TestResolveRates_Idempotent(t *testing.T) {
	raw := []byte(`{"USD": {"buy_rate": 1.00, "sell_rate": 1.02}, "EUR": {"rate": 0.91}}`)

	once, err := ledger.ResolveRates(raw, ledger.ResolveRatesOptions{})
	require.NoError(t, err)

	reencoded, err := json.Marshal(once)
	require.NoError(t, err)

	twice, err := ledger.ResolveRates(reencoded, ledger.ResolveRatesOptions{})
	require.NoError(t, err)

	require.Equal(t, len(once), len(twice))
	for code, rate := range once {
		assert.True(t, rate.Buy.Equal(twice[code].Buy), "%s buy", code)
		assert.True(t, rate.Sell.Equal(twice[code].Sell), "%s sell", code)
	}
}

func TestResolveRates_MalformedInputsFailLoudly(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"scalar document", `42`},
		{"string document", `"rates"`},
		{"array of scalars", `[1, 2]`},
		{"entry without code", `[{"buy": 1.0, "sell": 1.1}]`},
		{"entry without any rate field", `{"USD": {"updated": "2024-01-01"}}`},
		{"zero rate", `{"USD": {"buy": 0, "sell": 1.02}}`},
		{"negative rate", `[{"code": "USD", "buy": 1.0, "sell": -1}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ledger.ResolveRates([]byte(tt.raw), ledger.ResolveRatesOptions{})
			var malformed *apperrors.MalformedRecordError
			assert.ErrorAs(t, err, &malformed, "input %s", tt.raw)
		})
	}
}
