package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPricingDraftTargetIsExactlyOne(t *testing.T) {
	tests := []struct {
		name   string
		itemID *string
		lotID  *string
		valid  bool
	}{
		{name: "item only", itemID: strPtr("i1"), valid: true},
		{name: "lot only", lotID: strPtr("l1"), valid: true},
		{name: "neither", valid: false},
		{name: "both", itemID: strPtr("i1"), lotID: strPtr("l1"), valid: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := CreatePricingDraftRequest{
				ItemID:         tt.itemID,
				LotID:          tt.lotID,
				SuggestedPrice: MustMoney("25.00"),
			}
			err := req.Validate()
			if tt.valid {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}

func TestPricingDraftTargetResolution(t *testing.T) {
	draft := NewPricingDraft(CreatePricingDraftRequest{
		ItemID:         strPtr("i1"),
		SuggestedPrice: MustMoney("25.00"),
	}, Now())

	target, err := draft.Target()
	require.NoError(t, err)
	assert.Equal(t, DraftTargetItem, target.Kind)
	assert.Equal(t, "i1", target.ID)

	draft.ItemID = nil
	draft.LotID = strPtr("l1")
	target, err = draft.Target()
	require.NoError(t, err)
	assert.Equal(t, DraftTargetLot, target.Kind)
	assert.Equal(t, "l1", target.ID)

	draft.ItemID = strPtr("i1")
	_, err = draft.Target()
	require.Error(t, err)
}

func TestPricingDraftValidateFullRecord(t *testing.T) {
	draft := NewPricingDraft(CreatePricingDraftRequest{
		LotID:          strPtr("l1"),
		SuggestedPrice: MustMoney("80.00"),
		SEOTitle:       strPtr("Mixed glassware lot"),
	}, Now())
	require.NoError(t, draft.Validate())

	draft.LotID = nil
	require.Error(t, draft.Validate())
}

func TestPricingDraftApplyUpdateLeavesTargetAlone(t *testing.T) {
	draft := NewPricingDraft(CreatePricingDraftRequest{
		ItemID:         strPtr("i1"),
		SuggestedPrice: MustMoney("25.00"),
	}, Timestamp("2025-06-01T00:00:00Z"))

	now := Timestamp("2025-06-02T00:00:00Z")
	require.NoError(t, draft.ApplyUpdate(UpdatePricingDraftRequest{
		SuggestedPrice: Some(MustMoney("27.50")),
		SEOTitle:       Some("Vintage tube radio, restored"),
	}, now))

	assert.True(t, draft.SuggestedPrice.Equal(MustMoney("27.50")))
	require.NotNil(t, draft.SEOTitle)
	require.NotNil(t, draft.ItemID)
	assert.Equal(t, "i1", *draft.ItemID)
	assert.Nil(t, draft.LotID)
	assert.Equal(t, now, draft.UpdatedAt)
}

func TestPricingDraftUpdateRejectsNullPrice(t *testing.T) {
	draft := NewPricingDraft(CreatePricingDraftRequest{
		ItemID:         strPtr("i1"),
		SuggestedPrice: MustMoney("25.00"),
	}, Now())

	err := draft.ApplyUpdate(UpdatePricingDraftRequest{SuggestedPrice: Null[Money]()}, Now())
	require.Error(t, err)
}
