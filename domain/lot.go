package domain

// Lot is a named grouping of items offered for bulk sale.
type Lot struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	CreatedAt   Timestamp `json:"created_at"`
	UpdatedAt   Timestamp `json:"updated_at"`
}

// LotItem is a lot membership: an item reference with quantity plus
// cost and category snapshots taken at association time.
type LotItem struct {
	ItemID       string  `json:"item_id"`
	Quantity     int     `json:"quantity"`
	ItemCost     Money   `json:"item_cost"`
	ItemCategory *string `json:"item_category,omitempty"`
}

// LotWithItems is a lot joined with its members. total_cost is an
// aggregate over the member snapshots; ComputeTotalCost rederives it.
type LotWithItems struct {
	Lot
	Items     []LotItem `json:"items"`
	TotalCost Money     `json:"total_cost"`
}

// ComputeTotalCost sums item_cost x quantity over the members.
func (l LotWithItems) ComputeTotalCost() Money {
	total := Money{}
	for _, li := range l.Items {
		total = total.Add(li.ItemCost.MulInt(int64(li.Quantity)))
	}
	return total
}

// LotItemInput is the caller-side membership shape.
type LotItemInput struct {
	ItemID       string  `json:"item_id" validate:"required"`
	Quantity     int     `json:"quantity" validate:"required,gt=0"`
	ItemCost     Money   `json:"item_cost"`
	ItemCategory *string `json:"item_category,omitempty"`
}

// CreateLotRequest carries the caller-suppliable fields of a new lot.
type CreateLotRequest struct {
	Name        string         `json:"name" validate:"required,max=200"`
	Description *string        `json:"description,omitempty"`
	Items       []LotItemInput `json:"items,omitempty" validate:"dive"`
}

// Validate checks field-level rules on the create payload.
func (r CreateLotRequest) Validate() error {
	return ValidateStruct(r)
}

// UpdateLotRequest is the partial-update shape for a lot. Members
// replace wholesale when present; total_cost is rederived, never set.
type UpdateLotRequest struct {
	Name        Optional[string]         `json:"name,omitzero"`
	Description Optional[string]         `json:"description,omitzero"`
	Items       Optional[[]LotItemInput] `json:"items,omitzero"`
}

// Validate rejects clearing required fields.
func (r UpdateLotRequest) Validate() error {
	var errs FieldErrors
	if r.Name.IsNull() {
		errs = append(errs, FieldError{Field: "name", Message: "cannot be null"})
	}
	if items, ok := r.Items.Get(); ok {
		for _, in := range items {
			if in.ItemID == "" {
				errs = append(errs, FieldError{Field: "items", Message: "item_id is required"})
			}
			if in.Quantity <= 0 {
				errs = append(errs, FieldError{Field: "items", Message: "quantity must be greater than 0"})
			}
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewLot builds a full lot record from a create payload, deriving
// total_cost from the member snapshots.
func NewLot(req CreateLotRequest, now Timestamp) LotWithItems {
	l := LotWithItems{
		Lot: Lot{
			ID:          NewID(),
			Name:        req.Name,
			Description: req.Description,
			CreatedAt:   now,
			UpdatedAt:   now,
		},
		Items: lotItemsFromInput(req.Items),
	}
	l.TotalCost = l.ComputeTotalCost()
	return l
}

// ApplyUpdate mutates only the fields present in req, rederives
// total_cost and refreshes updated_at.
func (l *LotWithItems) ApplyUpdate(req UpdateLotRequest, now Timestamp) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if v, ok := req.Name.Get(); ok {
		l.Name = v
	}
	if req.Description.Present() {
		l.Description = ptr(req.Description)
	}
	if items, ok := req.Items.Get(); ok {
		l.Items = lotItemsFromInput(items)
	}
	l.TotalCost = l.ComputeTotalCost()
	l.UpdatedAt = now
	return nil
}

func lotItemsFromInput(in []LotItemInput) []LotItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]LotItem, len(in))
	for i, li := range in {
		out[i] = LotItem{
			ItemID:       li.ItemID,
			Quantity:     li.Quantity,
			ItemCost:     li.ItemCost,
			ItemCategory: li.ItemCategory,
		}
	}
	return out
}
