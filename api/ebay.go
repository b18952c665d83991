package api

import "github.com/resalehq/resalehq/domain"

// The eBay shapes are pass-through contracts with the listing client.
// Listing statuses come from eBay and are deliberately left as open
// strings; do not model them as a closed set.

// CreateEbayListingRequest asks the eBay client to list an item.
type CreateEbayListingRequest struct {
	ItemID      string       `json:"item_id" validate:"required"`
	Title       string       `json:"title" validate:"required,max=80"`
	Description *string      `json:"description,omitempty"`
	Price       domain.Money `json:"price"`
	CategoryID  *string      `json:"category_id,omitempty"`
}

// Validate checks field-level rules on the request.
func (r CreateEbayListingRequest) Validate() error {
	return domain.ValidateStruct(r)
}

// CreateEbayListingResponse carries the created listing's identity and
// the status string eBay reported for it.
type CreateEbayListingResponse struct {
	ListingID  string  `json:"listing_id"`
	Status     string  `json:"status"`
	ListingURL *string `json:"listing_url,omitempty"`
}

// EbayListingStatusResponse reports the current state of a listing.
type EbayListingStatusResponse struct {
	ListingID string           `json:"listing_id"`
	Status    string           `json:"status"`
	UpdatedAt domain.Timestamp `json:"updated_at"`
}
