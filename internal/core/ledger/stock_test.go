package ledger_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/unimanage/backoffice/internal/apperrors"
	"github.com/unimanage/backoffice/internal/core/domain"
	"github.com/unimanage/backoffice/internal/core/ledger"
)

func stockFixture() map[string]domain.StockItem {
	return map[string]domain.StockItem{
		"para": {
			ItemID: "para", Name: "Paracetamol",
			SellPrice: dec("50"), QuantityOnHand: 25,
			StorageUnit: domain.UnitBox, ItemsPerStorageUnit: 10,
		},
		"vitc": {
			ItemID: "vitc", Name: "Vitamin C",
			SellPrice: dec("8"), QuantityOnHand: 40,
			StorageUnit: domain.UnitItem, ItemsPerStorageUnit: 1,
		},
	}
}

func TestApplyRestock(t *testing.T) {
	item := stockFixture()["para"]

	updated, err := ledger.ApplyRestock(item, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(55), updated.QuantityOnHand)

	// Restocks are additive events, deliberately not idempotent.
	again, err := ledger.ApplyRestock(updated, 30)
	require.NoError(t, err)
	assert.Equal(t, int64(85), again.QuantityOnHand)

	_, err = ledger.ApplyRestock(item, -1)
	var malformed *apperrors.MalformedRecordError
	assert.ErrorAs(t, err, &malformed)
}

func TestApplySaleBatch_HappyPath(t *testing.T) {
	items := stockFixture()

	res, err := ledger.ApplySaleBatch(items, []ledger.SaleLine{
		{ItemID: "para", Quantity: 1, Unit: domain.UnitBox},
		{ItemID: "vitc", Quantity: 5, Unit: domain.UnitItem},
	})
	require.NoError(t, err)

	require.Len(t, res.Lines, 2)
	assert.Equal(t, int64(10), res.Lines[0].AtomicDeduction)
	assert.True(t, res.Lines[0].UnitPrice.Equal(dec("50")))
	assert.Equal(t, int64(5), res.Lines[1].AtomicDeduction)

	// 1*50 + 5*8
	assert.True(t, res.Total.Equal(dec("90")))

	require.Len(t, res.UpdatedItems, 2)
	assert.Equal(t, int64(15), res.UpdatedItems[0].QuantityOnHand)
	assert.Equal(t, int64(35), res.UpdatedItems[1].QuantityOnHand)
}

func TestApplySaleBatch_AllOrNothing(t *testing.T) {
	items := stockFixture()

	// The first line alone would succeed; the second oversells. Neither may
	// leave a trace.
	_, err := ledger.ApplySaleBatch(items, []ledger.SaleLine{
		{ItemID: "para", Quantity: 1, Unit: domain.UnitBox},
		{ItemID: "vitc", Quantity: 99, Unit: domain.UnitItem},
	})

	var insufficient *apperrors.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 1, insufficient.Line)
	assert.Equal(t, "vitc", insufficient.ItemID)
	assert.Equal(t, int64(40), insufficient.Available)
	assert.Equal(t, int64(99), insufficient.Requested)

	// Inputs untouched: no partial commit.
	assert.Equal(t, int64(25), items["para"].QuantityOnHand)
	assert.Equal(t, int64(40), items["vitc"].QuantityOnHand)
}

func TestApplySaleBatch_CumulativeDeductionAcrossLines(t *testing.T) {
	items := stockFixture()

	// Two lines hit the same item: 2 boxes + 6 singles = 26 > 25 on hand.
	_, err := ledger.ApplySaleBatch(items, []ledger.SaleLine{
		{ItemID: "para", Quantity: 2, Unit: domain.UnitBox},
		{ItemID: "para", Quantity: 6, Unit: domain.UnitItem},
	})

	var insufficient *apperrors.InsufficientStockError
	require.ErrorAs(t, err, &insufficient)
	assert.Equal(t, 1, insufficient.Line)
	// Available reflects what the earlier line in the batch left over.
	assert.Equal(t, int64(5), insufficient.Available)
	assert.Equal(t, int64(6), insufficient.Requested)
}

func TestApplySaleBatch_SameItemTwiceWithinStock(t *testing.T) {
	items := stockFixture()

	res, err := ledger.ApplySaleBatch(items, []ledger.SaleLine{
		{ItemID: "para", Quantity: 2, Unit: domain.UnitBox},
		{ItemID: "para", Quantity: 5, Unit: domain.UnitItem},
	})
	require.NoError(t, err)

	require.Len(t, res.UpdatedItems, 1)
	assert.Equal(t, int64(0), res.UpdatedItems[0].QuantityOnHand)
	// 2*50 + 5*5
	assert.True(t, res.Total.Equal(dec("125")))
}

func TestApplySaleBatch_UnknownItem(t *testing.T) {
	_, err := ledger.ApplySaleBatch(stockFixture(), []ledger.SaleLine{
		{ItemID: "ghost", Quantity: 1, Unit: domain.UnitItem},
	})
	assert.ErrorIs(t, err, apperrors.ErrNotFound)
}

func TestApplySaleBatch_EmptyBatchIsMalformed(t *testing.T) {
	_, err := ledger.ApplySaleBatch(stockFixture(), nil)
	var malformed *apperrors.MalformedRecordError
	assert.ErrorAs(t, err, &malformed)
}

func TestApplySaleBatch_ReplayIsIdempotent(t *testing.T) {
	lines := []ledger.SaleLine{
		{ItemID: "para", Quantity: 1, Unit: domain.UnitBox},
		{ItemID: "vitc", Quantity: 3, Unit: domain.UnitItem},
	}

	first, err := ledger.ApplySaleBatch(stockFixture(), lines)
	require.NoError(t, err)
	second, err := ledger.ApplySaleBatch(stockFixture(), lines)
	require.NoError(t, err)

	require.Equal(t, len(first.UpdatedItems), len(second.UpdatedItems))
	for i := range first.UpdatedItems {
		assert.Equal(t, first.UpdatedItems[i].QuantityOnHand, second.UpdatedItems[i].QuantityOnHand)
	}
	assert.True(t, first.Total.Equal(second.Total))
}
