package domain

import (
	"encoding/json"
	"fmt"
)

// ItemStatus enumerates listing states for an inventory item.
type ItemStatus string

const (
	ItemStatusUnlisted ItemStatus = "Unlisted"
	ItemStatusDraft    ItemStatus = "Draft"
	ItemStatusListed   ItemStatus = "Listed"
	ItemStatusSold     ItemStatus = "Sold"
)

// Valid reports whether s is one of the closed status values.
func (s ItemStatus) Valid() bool {
	switch s {
	case ItemStatusUnlisted, ItemStatusDraft, ItemStatusListed, ItemStatusSold:
		return true
	}
	return false
}

// LifecycleStage tracks an item's progress from capture to sale.
// Distinct from ItemStatus, though the two are correlated.
type LifecycleStage string

const (
	StageCaptured LifecycleStage = "Captured"
	StagePrepared LifecycleStage = "Prepared"
	StageListed   LifecycleStage = "Listed"
	StageSold     LifecycleStage = "Sold"
)

var stageOrder = map[LifecycleStage]int{
	StageCaptured: 0,
	StagePrepared: 1,
	StageListed:   2,
	StageSold:     3,
}

// Valid reports whether s is one of the closed stage values.
func (s LifecycleStage) Valid() bool {
	_, ok := stageOrder[s]
	return ok
}

// CanAdvanceTo reports whether next is a legal progression from s.
// Stages only move forward; staying in place is allowed.
func (s LifecycleStage) CanAdvanceTo(next LifecycleStage) bool {
	from, ok := stageOrder[s]
	to, ok2 := stageOrder[next]
	return ok && ok2 && to >= from
}

// Item is a unit of inventory. Photos is a serialized list of URLs kept
// as a string on the wire; use PhotoList/SetPhotoList for typed access.
type Item struct {
	ID                   string         `json:"id"`
	SKU                  string         `json:"sku"`
	Name                 string         `json:"name"`
	Description          *string        `json:"description,omitempty"`
	Status               ItemStatus     `json:"status"`
	LifecycleStage       LifecycleStage `json:"lifecycle_stage"`
	Cost                 Money          `json:"cost"`
	BinLocation          *string        `json:"bin_location,omitempty"`
	Photos               *string        `json:"photos,omitempty"`
	Category             *string        `json:"category,omitempty"`
	AISuggestedCategory  *string        `json:"ai_suggested_category,omitempty"`
	AICategoryConfidence *float64       `json:"ai_category_confidence,omitempty"`
	EbayListingID        *string        `json:"ebay_listing_id,omitempty"`
	EbayStatus           *string        `json:"ebay_status,omitempty"`
	SoldPrice            *Money         `json:"sold_price,omitempty"`
	SoldDate             *Timestamp     `json:"sold_date,omitempty"`
	CreatedAt            Timestamp      `json:"created_at"`
	UpdatedAt            Timestamp      `json:"updated_at"`
}

// CreateItemRequest carries the caller-suppliable fields of a new item.
// Identifiers, timestamps, AI, eBay and sale-outcome fields are
// server-owned and absent here.
type CreateItemRequest struct {
	SKU         string  `json:"sku" validate:"required,max=100"`
	Name        string  `json:"name" validate:"required,max=200"`
	Description *string `json:"description,omitempty"`
	Cost        Money   `json:"cost"`
	BinLocation *string `json:"bin_location,omitempty" validate:"omitempty,max=100"`
	Photos      *string `json:"photos,omitempty"`
	Category    *string `json:"category,omitempty" validate:"omitempty,max=100"`
}

// Validate checks field-level rules on the create payload.
func (r CreateItemRequest) Validate() error {
	return ValidateStruct(r)
}

// UpdateItemRequest is the partial-update shape: absent fields leave the
// entity unchanged, null clears an optional field, a value sets it.
// ID and timestamps are immutable and not part of the shape.
type UpdateItemRequest struct {
	SKU                  Optional[string]         `json:"sku,omitzero"`
	Name                 Optional[string]         `json:"name,omitzero"`
	Description          Optional[string]         `json:"description,omitzero"`
	Status               Optional[ItemStatus]     `json:"status,omitzero"`
	LifecycleStage       Optional[LifecycleStage] `json:"lifecycle_stage,omitzero"`
	Cost                 Optional[Money]          `json:"cost,omitzero"`
	BinLocation          Optional[string]         `json:"bin_location,omitzero"`
	Photos               Optional[string]         `json:"photos,omitzero"`
	Category             Optional[string]         `json:"category,omitzero"`
	AISuggestedCategory  Optional[string]         `json:"ai_suggested_category,omitzero"`
	AICategoryConfidence Optional[float64]        `json:"ai_category_confidence,omitzero"`
	EbayListingID        Optional[string]         `json:"ebay_listing_id,omitzero"`
	EbayStatus           Optional[string]         `json:"ebay_status,omitzero"`
	SoldPrice            Optional[Money]          `json:"sold_price,omitzero"`
	SoldDate             Optional[Timestamp]      `json:"sold_date,omitzero"`
}

// Validate rejects clearing required fields and unknown enum values.
func (r UpdateItemRequest) Validate() error {
	var errs FieldErrors
	if r.SKU.IsNull() {
		errs = append(errs, FieldError{Field: "sku", Message: "cannot be null"})
	}
	if r.Name.IsNull() {
		errs = append(errs, FieldError{Field: "name", Message: "cannot be null"})
	}
	if r.Cost.IsNull() {
		errs = append(errs, FieldError{Field: "cost", Message: "cannot be null"})
	}
	if r.Status.IsNull() {
		errs = append(errs, FieldError{Field: "status", Message: "cannot be null"})
	} else if v, ok := r.Status.Get(); ok && !v.Valid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be one of Unlisted Draft Listed Sold"})
	}
	if r.LifecycleStage.IsNull() {
		errs = append(errs, FieldError{Field: "lifecycle_stage", Message: "cannot be null"})
	} else if v, ok := r.LifecycleStage.Get(); ok && !v.Valid() {
		errs = append(errs, FieldError{Field: "lifecycle_stage", Message: "must be one of Captured Prepared Listed Sold"})
	}
	if v, ok := r.AICategoryConfidence.Get(); ok && (v < 0 || v > 1) {
		errs = append(errs, FieldError{Field: "ai_category_confidence", Message: "must be between 0 and 1"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewItem builds a full item record from a create payload. New items
// start Unlisted at the Captured stage.
func NewItem(req CreateItemRequest, now Timestamp) Item {
	return Item{
		ID:             NewID(),
		SKU:            req.SKU,
		Name:           req.Name,
		Description:    req.Description,
		Status:         ItemStatusUnlisted,
		LifecycleStage: StageCaptured,
		Cost:           req.Cost,
		BinLocation:    req.BinLocation,
		Photos:         req.Photos,
		Category:       req.Category,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

// ApplyUpdate mutates only the fields present in req and refreshes
// updated_at. Lifecycle stages may not move backwards.
func (i *Item) ApplyUpdate(req UpdateItemRequest, now Timestamp) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if next, ok := req.LifecycleStage.Get(); ok && !i.LifecycleStage.CanAdvanceTo(next) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.LifecycleStage, next)
	}
	if v, ok := req.SKU.Get(); ok {
		i.SKU = v
	}
	if v, ok := req.Name.Get(); ok {
		i.Name = v
	}
	if req.Description.Present() {
		i.Description = ptr(req.Description)
	}
	if v, ok := req.Status.Get(); ok {
		i.Status = v
	}
	if v, ok := req.LifecycleStage.Get(); ok {
		i.LifecycleStage = v
	}
	if v, ok := req.Cost.Get(); ok {
		i.Cost = v
	}
	if req.BinLocation.Present() {
		i.BinLocation = ptr(req.BinLocation)
	}
	if req.Photos.Present() {
		i.Photos = ptr(req.Photos)
	}
	if req.Category.Present() {
		i.Category = ptr(req.Category)
	}
	if req.AISuggestedCategory.Present() {
		i.AISuggestedCategory = ptr(req.AISuggestedCategory)
	}
	if req.AICategoryConfidence.Present() {
		i.AICategoryConfidence = ptr(req.AICategoryConfidence)
	}
	if req.EbayListingID.Present() {
		i.EbayListingID = ptr(req.EbayListingID)
	}
	if req.EbayStatus.Present() {
		i.EbayStatus = ptr(req.EbayStatus)
	}
	if req.SoldPrice.Present() {
		i.SoldPrice = ptr(req.SoldPrice)
	}
	if req.SoldDate.Present() {
		i.SoldDate = ptr(req.SoldDate)
	}
	i.UpdatedAt = now
	return nil
}

// MarkSold records the sale outcome. It is the only path intended to
// populate sold_price and sold_date.
func (i *Item) MarkSold(price Money, date Timestamp, now Timestamp) error {
	if !i.LifecycleStage.CanAdvanceTo(StageSold) {
		return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, i.LifecycleStage, StageSold)
	}
	i.Status = ItemStatusSold
	i.LifecycleStage = StageSold
	i.SoldPrice = &price
	i.SoldDate = &date
	i.UpdatedAt = now
	return nil
}

// Validate checks the full-record invariants: closed enums, and
// sold_price/sold_date present if and only if the item is Sold.
func (i Item) Validate() error {
	var errs FieldErrors
	if i.ID == "" {
		errs = append(errs, FieldError{Field: "id", Message: "is required"})
	}
	if i.SKU == "" {
		errs = append(errs, FieldError{Field: "sku", Message: "is required"})
	}
	if i.Name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "is required"})
	}
	if !i.Status.Valid() {
		errs = append(errs, FieldError{Field: "status", Message: "must be one of Unlisted Draft Listed Sold"})
	}
	if !i.LifecycleStage.Valid() {
		errs = append(errs, FieldError{Field: "lifecycle_stage", Message: "must be one of Captured Prepared Listed Sold"})
	}
	if i.Status == ItemStatusSold {
		if i.SoldPrice == nil {
			errs = append(errs, FieldError{Field: "sold_price", Message: "is required when status is Sold"})
		}
		if i.SoldDate == nil {
			errs = append(errs, FieldError{Field: "sold_date", Message: "is required when status is Sold"})
		}
	} else {
		if i.SoldPrice != nil {
			errs = append(errs, FieldError{Field: "sold_price", Message: "must be null unless status is Sold"})
		}
		if i.SoldDate != nil {
			errs = append(errs, FieldError{Field: "sold_date", Message: "must be null unless status is Sold"})
		}
	}
	if i.AICategoryConfidence != nil && (*i.AICategoryConfidence < 0 || *i.AICategoryConfidence > 1) {
		errs = append(errs, FieldError{Field: "ai_category_confidence", Message: "must be between 0 and 1"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// PhotoList decodes the serialized photos column into URLs.
func (i Item) PhotoList() ([]string, error) {
	if i.Photos == nil || *i.Photos == "" {
		return nil, nil
	}
	var urls []string
	if err := json.Unmarshal([]byte(*i.Photos), &urls); err != nil {
		return nil, fmt.Errorf("decode photos: %w", err)
	}
	return urls, nil
}

// SetPhotoList encodes URLs into the serialized photos column.
// An empty list clears the column.
func (i *Item) SetPhotoList(urls []string) error {
	if len(urls) == 0 {
		i.Photos = nil
		return nil
	}
	b, err := json.Marshal(urls)
	if err != nil {
		return fmt.Errorf("encode photos: %w", err)
	}
	s := string(b)
	i.Photos = &s
	return nil
}
