package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestLot(t *testing.T) LotWithItems {
	t.Helper()
	req := CreateLotRequest{
		Name:        "Estate lot 12",
		Description: strPtr("Mixed glassware"),
		Items: []LotItemInput{
			{ItemID: "item-1", Quantity: 3, ItemCost: MustMoney("2.50"), ItemCategory: strPtr("glass")},
			{ItemID: "item-2", Quantity: 1, ItemCost: MustMoney("10.00")},
		},
	}
	require.NoError(t, req.Validate())
	return NewLot(req, Timestamp("2025-04-01T00:00:00Z"))
}

func TestNewLotDerivesTotalCost(t *testing.T) {
	lot := newTestLot(t)

	// 3*2.50 + 1*10.00 = 17.50
	assert.True(t, lot.TotalCost.Equal(MustMoney("17.50")), "got %s", lot.TotalCost)
	assert.True(t, lot.TotalCost.Equal(lot.ComputeTotalCost()))
}

func TestComputeTotalCostMatchesFreshRecomputation(t *testing.T) {
	lot := newTestLot(t)

	// A stale stored aggregate must be detectable against the snapshots.
	lot.TotalCost = MustMoney("99.99")
	assert.False(t, lot.TotalCost.Equal(lot.ComputeTotalCost()))
	assert.True(t, lot.ComputeTotalCost().Equal(MustMoney("17.50")))
}

func TestEmptyLotCostsNothing(t *testing.T) {
	req := CreateLotRequest{Name: "Empty"}
	require.NoError(t, req.Validate())
	lot := NewLot(req, Now())

	assert.Empty(t, lot.Items)
	assert.True(t, lot.TotalCost.Equal(MoneyFromInt(0)))
}

func TestLotApplyUpdateRecomputesTotalCost(t *testing.T) {
	lot := newTestLot(t)
	now := Timestamp("2025-04-02T00:00:00Z")

	require.NoError(t, lot.ApplyUpdate(UpdateLotRequest{
		Items: Some([]LotItemInput{
			{ItemID: "item-3", Quantity: 2, ItemCost: MustMoney("4.00")},
		}),
	}, now))

	require.Len(t, lot.Items, 1)
	assert.True(t, lot.TotalCost.Equal(MustMoney("8.00")), "got %s", lot.TotalCost)
	assert.Equal(t, now, lot.UpdatedAt)
}

func TestLotUpdateRejectsNullName(t *testing.T) {
	lot := newTestLot(t)
	err := lot.ApplyUpdate(UpdateLotRequest{Name: Null[string]()}, Now())
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "name", fieldErrs[0].Field)
}

func TestCreateLotRequestValidatesMembers(t *testing.T) {
	req := CreateLotRequest{
		Name:  "Bad lot",
		Items: []LotItemInput{{ItemID: "item-1", Quantity: 0}},
	}
	require.Error(t, req.Validate())
}
