package api

import "github.com/resalehq/resalehq/domain"

// The AI shapes are pass-through contracts with an external service.
// Only the JSON shape is fixed here; the bounds checks below are
// runtime invariants the integration client must enforce on responses.

// SuggestCategoryRequest asks the AI service to categorize an item.
type SuggestCategoryRequest struct {
	Name        string  `json:"name" validate:"required"`
	Description *string `json:"description,omitempty"`
}

// Validate checks field-level rules on the request.
func (r SuggestCategoryRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// SuggestCategoryResponse carries a proposed category and the model's
// confidence in it.
type SuggestCategoryResponse struct {
	Category   string  `json:"category"`
	Confidence float64 `json:"confidence"`
}

// Validate enforces the implied [0,1] confidence range.
func (r SuggestCategoryResponse) Validate() error {
	var errs domain.FieldErrors
	if r.Category == "" {
		errs = append(errs, domain.FieldError{Field: "category", Message: "is required"})
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// SuggestPriceRequest asks the AI service for a listing price.
type SuggestPriceRequest struct {
	Name        string        `json:"name" validate:"required"`
	Category    *string       `json:"category,omitempty"`
	Description *string       `json:"description,omitempty"`
	Cost        *domain.Money `json:"cost,omitempty"`
}

// Validate checks field-level rules on the request.
func (r SuggestPriceRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// SuggestPriceResponse carries a proposed price and its bounds.
type SuggestPriceResponse struct {
	SuggestedPrice domain.Money `json:"suggested_price"`
	MinPrice       domain.Money `json:"min_price"`
	MaxPrice       domain.Money `json:"max_price"`
	Confidence     float64      `json:"confidence"`
}

// Validate enforces min <= suggested <= max and the [0,1] confidence
// range; neither is expressible in the type shape.
func (r SuggestPriceResponse) Validate() error {
	var errs domain.FieldErrors
	if r.MinPrice.GreaterThan(r.MaxPrice.Decimal) {
		errs = append(errs, domain.FieldError{Field: "min_price", Message: "must not exceed max_price"})
	}
	if r.SuggestedPrice.LessThan(r.MinPrice.Decimal) || r.SuggestedPrice.GreaterThan(r.MaxPrice.Decimal) {
		errs = append(errs, domain.FieldError{Field: "suggested_price", Message: "must be within [min_price, max_price]"})
	}
	if r.Confidence < 0 || r.Confidence > 1 {
		errs = append(errs, domain.FieldError{Field: "confidence", Message: "must be between 0 and 1"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}
