package domain

// Sale is a completed transaction: a gross amount, its itemized
// deductions, three externally-computed tax estimates, and a derived
// profit. Profit is recomputable from the other components; readers
// should trust ComputeProfit over the stored value.
type Sale struct {
	ID                         string    `json:"id"`
	Platform                   string    `json:"platform"`
	SaleDate                   Timestamp `json:"sale_date"`
	GrossAmount                Money     `json:"gross_amount"`
	PlatformFees               Money     `json:"platform_fees"`
	Discounts                  Money     `json:"discounts"`
	ShippingCost               Money     `json:"shipping_cost"`
	ItemCost                   Money     `json:"item_cost"`
	EstimatedTaxFederal        Money     `json:"estimated_tax_federal"`
	EstimatedTaxState          Money     `json:"estimated_tax_state"`
	EstimatedTaxSelfEmployment Money     `json:"estimated_tax_self_employment"`
	Profit                     Money     `json:"profit"`
	Notes                      *string   `json:"notes,omitempty"`
	CreatedAt                  Timestamp `json:"created_at"`
	UpdatedAt                  Timestamp `json:"updated_at"`
}

// SaleItem links a sale to an item. item_name and item_cost are
// snapshots taken at sale time, not live references; later edits to the
// item do not rewrite history.
type SaleItem struct {
	ItemID   string `json:"item_id"`
	Quantity int    `json:"quantity"`
	ItemName string `json:"item_name"`
	ItemCost Money  `json:"item_cost"`
}

// SaleWithItems is a sale joined with its line items.
type SaleWithItems struct {
	Sale
	Items []SaleItem `json:"items"`
}

// SaleItemInput is the caller-side line-item shape.
type SaleItemInput struct {
	ItemID   string `json:"item_id" validate:"required"`
	Quantity int    `json:"quantity" validate:"required,gt=0"`
	ItemName string `json:"item_name" validate:"required,max=200"`
	ItemCost Money  `json:"item_cost"`
}

// CreateSaleRequest carries the caller-suppliable fields of a new sale.
// Tax estimates come from the caller; their computation is external.
type CreateSaleRequest struct {
	Platform                   string          `json:"platform" validate:"required,max=100"`
	SaleDate                   Timestamp       `json:"sale_date" validate:"required"`
	GrossAmount                Money           `json:"gross_amount"`
	PlatformFees               Money           `json:"platform_fees"`
	Discounts                  Money           `json:"discounts"`
	ShippingCost               Money           `json:"shipping_cost"`
	ItemCost                   Money           `json:"item_cost"`
	EstimatedTaxFederal        Money           `json:"estimated_tax_federal"`
	EstimatedTaxState          Money           `json:"estimated_tax_state"`
	EstimatedTaxSelfEmployment Money           `json:"estimated_tax_self_employment"`
	Notes                      *string         `json:"notes,omitempty"`
	Items                      []SaleItemInput `json:"items,omitempty" validate:"dive"`
}

// Validate checks field-level rules on the create payload.
func (r CreateSaleRequest) Validate() error {
	return ValidateStruct(r)
}

// UpdateSaleRequest is the partial-update shape for a sale. Line items
// replace wholesale when present; profit is rederived, never set.
type UpdateSaleRequest struct {
	Platform                   Optional[string]          `json:"platform,omitzero"`
	SaleDate                   Optional[Timestamp]       `json:"sale_date,omitzero"`
	GrossAmount                Optional[Money]           `json:"gross_amount,omitzero"`
	PlatformFees               Optional[Money]           `json:"platform_fees,omitzero"`
	Discounts                  Optional[Money]           `json:"discounts,omitzero"`
	ShippingCost               Optional[Money]           `json:"shipping_cost,omitzero"`
	ItemCost                   Optional[Money]           `json:"item_cost,omitzero"`
	EstimatedTaxFederal        Optional[Money]           `json:"estimated_tax_federal,omitzero"`
	EstimatedTaxState          Optional[Money]           `json:"estimated_tax_state,omitzero"`
	EstimatedTaxSelfEmployment Optional[Money]           `json:"estimated_tax_self_employment,omitzero"`
	Notes                      Optional[string]          `json:"notes,omitzero"`
	Items                      Optional[[]SaleItemInput] `json:"items,omitzero"`
}

// Validate rejects clearing required fields.
func (r UpdateSaleRequest) Validate() error {
	var errs FieldErrors
	if r.Platform.IsNull() {
		errs = append(errs, FieldError{Field: "platform", Message: "cannot be null"})
	}
	if r.SaleDate.IsNull() {
		errs = append(errs, FieldError{Field: "sale_date", Message: "cannot be null"})
	}
	if r.GrossAmount.IsNull() {
		errs = append(errs, FieldError{Field: "gross_amount", Message: "cannot be null"})
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

// NewSale builds a full sale record from a create payload, deriving
// profit from the supplied components.
func NewSale(req CreateSaleRequest, now Timestamp) SaleWithItems {
	s := SaleWithItems{
		Sale: Sale{
			ID:                         NewID(),
			Platform:                   req.Platform,
			SaleDate:                   req.SaleDate,
			GrossAmount:                req.GrossAmount,
			PlatformFees:               req.PlatformFees,
			Discounts:                  req.Discounts,
			ShippingCost:               req.ShippingCost,
			ItemCost:                   req.ItemCost,
			EstimatedTaxFederal:        req.EstimatedTaxFederal,
			EstimatedTaxState:          req.EstimatedTaxState,
			EstimatedTaxSelfEmployment: req.EstimatedTaxSelfEmployment,
			Notes:                      req.Notes,
			CreatedAt:                  now,
			UpdatedAt:                  now,
		},
		Items: saleItemsFromInput(req.Items),
	}
	s.Profit = s.ComputeProfit()
	return s
}

// ApplyUpdate mutates only the fields present in req, rederives profit
// and refreshes updated_at.
func (s *SaleWithItems) ApplyUpdate(req UpdateSaleRequest, now Timestamp) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if v, ok := req.Platform.Get(); ok {
		s.Platform = v
	}
	if v, ok := req.SaleDate.Get(); ok {
		s.SaleDate = v
	}
	if v, ok := req.GrossAmount.Get(); ok {
		s.GrossAmount = v
	}
	if v, ok := req.PlatformFees.Get(); ok {
		s.PlatformFees = v
	}
	if v, ok := req.Discounts.Get(); ok {
		s.Discounts = v
	}
	if v, ok := req.ShippingCost.Get(); ok {
		s.ShippingCost = v
	}
	if v, ok := req.ItemCost.Get(); ok {
		s.ItemCost = v
	}
	if v, ok := req.EstimatedTaxFederal.Get(); ok {
		s.EstimatedTaxFederal = v
	}
	if v, ok := req.EstimatedTaxState.Get(); ok {
		s.EstimatedTaxState = v
	}
	if v, ok := req.EstimatedTaxSelfEmployment.Get(); ok {
		s.EstimatedTaxSelfEmployment = v
	}
	if req.Notes.Present() {
		s.Notes = ptr(req.Notes)
	}
	if items, ok := req.Items.Get(); ok {
		s.Items = saleItemsFromInput(items)
	}
	s.Profit = s.ComputeProfit()
	s.UpdatedAt = now
	return nil
}

// ComputeProfit rederives profit: gross minus fees, discounts, shipping
// and item cost. Tax estimates are informational and not deducted.
func (s Sale) ComputeProfit() Money {
	return s.GrossAmount.
		Sub(s.PlatformFees).
		Sub(s.Discounts).
		Sub(s.ShippingCost).
		Sub(s.ItemCost)
}

func saleItemsFromInput(in []SaleItemInput) []SaleItem {
	if len(in) == 0 {
		return nil
	}
	out := make([]SaleItem, len(in))
	for i, li := range in {
		out[i] = SaleItem{
			ItemID:   li.ItemID,
			Quantity: li.Quantity,
			ItemName: li.ItemName,
			ItemCost: li.ItemCost,
		}
	}
	return out
}
