package domain

// Expense is an operational cost record. The three split fields allocate
// amount across inventory, operations and other; whether they actually
// partition the amount is an external concern, not enforced here.
// Vehicle fields support mileage-based deduction tracking.
type Expense struct {
	ID              string    `json:"id"`
	Description     string    `json:"description"`
	Category        *string   `json:"category,omitempty"`
	Amount          Money     `json:"amount"`
	ExpenseDate     Timestamp `json:"expense_date"`
	SplitInventory  Money     `json:"split_inventory"`
	SplitOperations Money     `json:"split_operations"`
	SplitOther      Money     `json:"split_other"`
	VehicleMiles    *float64  `json:"vehicle_miles,omitempty"`
	MileageRate     *Money    `json:"mileage_rate,omitempty"`
	CreatedAt       Timestamp `json:"created_at"`
	UpdatedAt       Timestamp `json:"updated_at"`
}

// SplitTotal sums the three-way allocation. Callers compare it against
// Amount when they need to check partitioning.
func (e Expense) SplitTotal() Money {
	return e.SplitInventory.Add(e.SplitOperations).Add(e.SplitOther)
}

// CreateExpenseRequest carries the caller-suppliable fields of a new
// expense. The three-way split is required.
type CreateExpenseRequest struct {
	Description     string    `json:"description" validate:"required,max=500"`
	Category        *string   `json:"category,omitempty" validate:"omitempty,max=100"`
	Amount          Money     `json:"amount"`
	ExpenseDate     Timestamp `json:"expense_date" validate:"required"`
	SplitInventory  Money     `json:"split_inventory"`
	SplitOperations Money     `json:"split_operations"`
	SplitOther      Money     `json:"split_other"`
	VehicleMiles    *float64  `json:"vehicle_miles,omitempty" validate:"omitempty,gte=0"`
	MileageRate     *Money    `json:"mileage_rate,omitempty"`
}

// Validate checks field-level rules on the create payload.
func (r CreateExpenseRequest) Validate() error {
	return ValidateStruct(r)
}

// UpdateExpenseRequest is the partial-update shape for an expense.
type UpdateExpenseRequest struct {
	Description     Optional[string]    `json:"description,omitzero"`
	Category        Optional[string]    `json:"category,omitzero"`
	Amount          Optional[Money]     `json:"amount,omitzero"`
	ExpenseDate     Optional[Timestamp] `json:"expense_date,omitzero"`
	SplitInventory  Optional[Money]     `json:"split_inventory,omitzero"`
	SplitOperations Optional[Money]     `json:"split_operations,omitzero"`
	SplitOther      Optional[Money]     `json:"split_other,omitzero"`
	VehicleMiles    Optional[float64]   `json:"vehicle_miles,omitzero"`
	MileageRate     Optional[Money]     `json:"mileage_rate,omitzero"`
}

// Validate rejects clearing required fields.
func (r UpdateExpenseRequest) Validate() error {
	var errs FieldErrors
	if r.Description.IsNull() {
		errs = append(errs, FieldError{Field: "description", Message: "cannot be null"})
	}
	if r.Amount.IsNull() {
		errs = append(errs, FieldError{Field: "amount", Message: "cannot be null"})
	}
	if r.ExpenseDate.IsNull() {
		errs = append(errs, FieldError{Field: "expense_date", Message: "cannot be null"})
	}
	if r.SplitInventory.IsNull() || r.SplitOperations.IsNull() || r.SplitOther.IsNull() {
		errs = append(errs, FieldError{Field: "split_inventory", Message: "split fields cannot be null"})
	}
	if v, ok := r.VehicleMiles.Get(); ok && v < 0 {
		errs = append(errs, FieldError{Field: "vehicle_miles", Message: "must be at least 0"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewExpense builds a full expense record from a create payload.
func NewExpense(req CreateExpenseRequest, now Timestamp) Expense {
	return Expense{
		ID:              NewID(),
		Description:     req.Description,
		Category:        req.Category,
		Amount:          req.Amount,
		ExpenseDate:     req.ExpenseDate,
		SplitInventory:  req.SplitInventory,
		SplitOperations: req.SplitOperations,
		SplitOther:      req.SplitOther,
		VehicleMiles:    req.VehicleMiles,
		MileageRate:     req.MileageRate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ApplyUpdate mutates only the fields present in req and refreshes
// updated_at.
func (e *Expense) ApplyUpdate(req UpdateExpenseRequest, now Timestamp) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if v, ok := req.Description.Get(); ok {
		e.Description = v
	}
	if req.Category.Present() {
		e.Category = ptr(req.Category)
	}
	if v, ok := req.Amount.Get(); ok {
		e.Amount = v
	}
	if v, ok := req.ExpenseDate.Get(); ok {
		e.ExpenseDate = v
	}
	if v, ok := req.SplitInventory.Get(); ok {
		e.SplitInventory = v
	}
	if v, ok := req.SplitOperations.Get(); ok {
		e.SplitOperations = v
	}
	if v, ok := req.SplitOther.Get(); ok {
		e.SplitOther = v
	}
	if req.VehicleMiles.Present() {
		e.VehicleMiles = ptr(req.VehicleMiles)
	}
	if req.MileageRate.Present() {
		e.MileageRate = ptr(req.MileageRate)
	}
	e.UpdatedAt = now
	return nil
}
