package domain

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSale(t *testing.T) SaleWithItems {
	t.Helper()
	req := CreateSaleRequest{
		Platform:     "ebay",
		SaleDate:     Timestamp("2025-03-01T00:00:00Z"),
		GrossAmount:  MustMoney("100.00"),
		PlatformFees: MustMoney("13.25"),
		Discounts:    MustMoney("5.00"),
		ShippingCost: MustMoney("8.50"),
		ItemCost:     MustMoney("20.00"),
		Items: []SaleItemInput{
			{ItemID: "item-1", Quantity: 2, ItemName: "Vintage Radio", ItemCost: MustMoney("10.00")},
		},
	}
	require.NoError(t, req.Validate())
	return NewSale(req, Timestamp("2025-03-01T12:00:00Z"))
}

func TestNewSaleDerivesProfit(t *testing.T) {
	sale := newTestSale(t)

	assert.NotEmpty(t, sale.ID)
	// 100 - 13.25 - 5 - 8.50 - 20 = 53.25
	assert.True(t, sale.Profit.Equal(MustMoney("53.25")), "got %s", sale.Profit)
	assert.True(t, sale.Profit.Equal(sale.ComputeProfit()))
}

func TestSaleItemsAreSnapshots(t *testing.T) {
	sale := newTestSale(t)
	require.Len(t, sale.Items, 1)

	line := sale.Items[0]
	assert.Equal(t, "item-1", line.ItemID)
	assert.Equal(t, 2, line.Quantity)
	assert.Equal(t, "Vintage Radio", line.ItemName)
	assert.True(t, line.ItemCost.Equal(MustMoney("10.00")))
}

func TestSaleApplyUpdateRecomputesProfit(t *testing.T) {
	sale := newTestSale(t)
	now := Timestamp("2025-03-02T00:00:00Z")

	require.NoError(t, sale.ApplyUpdate(UpdateSaleRequest{
		PlatformFees: Some(MustMoney("10.00")),
	}, now))

	// 100 - 10 - 5 - 8.50 - 20 = 56.50
	assert.True(t, sale.Profit.Equal(MustMoney("56.50")), "got %s", sale.Profit)
	assert.Equal(t, now, sale.UpdatedAt)
}

func TestSaleApplyUpdateReplacesLineItemsWholesale(t *testing.T) {
	sale := newTestSale(t)

	require.NoError(t, sale.ApplyUpdate(UpdateSaleRequest{
		Items: Some([]SaleItemInput{
			{ItemID: "item-2", Quantity: 1, ItemName: "Lamp", ItemCost: MustMoney("4.00")},
		}),
	}, Now()))

	require.Len(t, sale.Items, 1)
	assert.Equal(t, "item-2", sale.Items[0].ItemID)
}

func TestSaleUpdateRejectsNullRequiredFields(t *testing.T) {
	sale := newTestSale(t)
	err := sale.ApplyUpdate(UpdateSaleRequest{Platform: Null[string]()}, Now())
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.Equal(t, "platform", fieldErrs[0].Field)
}

func TestCreateSaleRequestValidatesLineItems(t *testing.T) {
	req := CreateSaleRequest{
		Platform: "ebay",
		SaleDate: Timestamp("2025-03-01T00:00:00Z"),
		Items: []SaleItemInput{
			{ItemID: "", Quantity: 0, ItemName: ""},
		},
	}
	err := req.Validate()
	var fieldErrs FieldErrors
	require.ErrorAs(t, err, &fieldErrs)
	assert.NotEmpty(t, fieldErrs)
}

func TestSaleWireShape(t *testing.T) {
	sale := newTestSale(t)
	b, err := json.Marshal(sale)
	require.NoError(t, err)

	var raw map[string]any
	require.NoError(t, json.Unmarshal(b, &raw))
	for _, key := range []string{
		"id", "platform", "sale_date", "gross_amount", "platform_fees",
		"discounts", "shipping_cost", "item_cost", "estimated_tax_federal",
		"estimated_tax_state", "estimated_tax_self_employment", "profit",
		"items", "created_at", "updated_at",
	} {
		assert.Contains(t, raw, key)
	}
	// Monetary fields ride as numbers.
	assert.Equal(t, 53.25, raw["profit"])
}
