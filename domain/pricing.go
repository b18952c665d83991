package domain

// DraftTargetKind discriminates what a pricing draft prices.
type DraftTargetKind string

const (
	DraftTargetItem DraftTargetKind = "item"
	DraftTargetLot  DraftTargetKind = "lot"
)

// DraftTarget is the resolved one-of target of a pricing draft.
type DraftTarget struct {
	Kind DraftTargetKind
	ID   string
}

// PricingDraft is a proposed listing price and SEO copy for exactly one
// of an item or a lot. The wire shape keeps item_id and lot_id as two
// optional fields; exactly one must be set. Target resolves the pair
// into a tagged value.
type PricingDraft struct {
	ID             string    `json:"id"`
	ItemID         *string   `json:"item_id,omitempty"`
	LotID          *string   `json:"lot_id,omitempty"`
	SuggestedPrice Money     `json:"suggested_price"`
	SEOTitle       *string   `json:"seo_title,omitempty"`
	SEODescription *string   `json:"seo_description,omitempty"`
	CreatedAt      Timestamp `json:"created_at"`
	UpdatedAt      Timestamp `json:"updated_at"`
}

// Target returns the draft's one-of target, or FieldErrors when the
// pair violates the exactly-one contract.
func (d PricingDraft) Target() (DraftTarget, error) {
	if errs := validateDraftTarget(d.ItemID, d.LotID); len(errs) > 0 {
		return DraftTarget{}, errs
	}
	if d.ItemID != nil {
		return DraftTarget{Kind: DraftTargetItem, ID: *d.ItemID}, nil
	}
	return DraftTarget{Kind: DraftTargetLot, ID: *d.LotID}, nil
}

// Validate checks the full-record invariants, chiefly the one-of target.
func (d PricingDraft) Validate() error {
	var errs FieldErrors
	if d.ID == "" {
		errs = append(errs, FieldError{Field: "id", Message: "is required"})
	}
	errs = append(errs, validateDraftTarget(d.ItemID, d.LotID)...)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func validateDraftTarget(itemID, lotID *string) FieldErrors {
	switch {
	case itemID == nil && lotID == nil:
		return FieldErrors{{Field: "item_id", Message: "exactly one of item_id or lot_id must be set"}}
	case itemID != nil && lotID != nil:
		return FieldErrors{{Field: "lot_id", Message: "item_id and lot_id are mutually exclusive"}}
	}
	return nil
}

// CreatePricingDraftRequest carries the caller-suppliable fields of a
// new draft.
type CreatePricingDraftRequest struct {
	ItemID         *string `json:"item_id,omitempty"`
	LotID          *string `json:"lot_id,omitempty"`
	SuggestedPrice Money   `json:"suggested_price"`
	SEOTitle       *string `json:"seo_title,omitempty" validate:"omitempty,max=200"`
	SEODescription *string `json:"seo_description,omitempty"`
}

// Validate enforces the one-of target on top of the tag rules.
func (r CreatePricingDraftRequest) Validate() error {
	if err := ValidateStruct(r); err != nil {
		return err
	}
	if errs := validateDraftTarget(r.ItemID, r.LotID); len(errs) > 0 {
		return errs
	}
	return nil
}

// UpdatePricingDraftRequest is the partial-update shape for a draft.
// The target pair is immutable once created; a draft pricing a
// different item or lot is a new draft.
type UpdatePricingDraftRequest struct {
	SuggestedPrice Optional[Money]  `json:"suggested_price,omitzero"`
	SEOTitle       Optional[string] `json:"seo_title,omitzero"`
	SEODescription Optional[string] `json:"seo_description,omitzero"`
}

// Validate rejects clearing required fields.
func (r UpdatePricingDraftRequest) Validate() error {
	if r.SuggestedPrice.IsNull() {
		return FieldErrors{{Field: "suggested_price", Message: "cannot be null"}}
	}
	return nil
}

// NewPricingDraft builds a full draft record from a create payload.
// The payload must already satisfy Validate.
func NewPricingDraft(req CreatePricingDraftRequest, now Timestamp) PricingDraft {
	return PricingDraft{
		ID:             NewID(),
		ItemID:         req.ItemID,
		LotID:          req.LotID,
		SuggestedPrice: req.SuggestedPrice,
		SEOTitle:       req.SEOTitle,
		SEODescription: req.SEODescription,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ApplyUpdate mutates only the fields present in req and refreshes
// updated_at.
func (d *PricingDraft) ApplyUpdate(req UpdatePricingDraftRequest, now Timestamp) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if v, ok := req.SuggestedPrice.Get(); ok {
		d.SuggestedPrice = v
	}
	if req.SEOTitle.Present() {
		d.SEOTitle = ptr(req.SEOTitle)
	}
	if req.SEODescription.Present() {
		d.SEODescription = ptr(req.SEODescription)
	}
	d.UpdatedAt = now
	return nil
}
