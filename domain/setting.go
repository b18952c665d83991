package domain

// Setting is a process-wide key/value configuration row. Keys are
// unique; values are opaque strings interpreted by their consumers.
type Setting struct {
	ID        string    `json:"id"`
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// CreateSettingRequest carries the caller-suppliable fields of a new
// setting.
type CreateSettingRequest struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value"`
}

// Validate checks field-level rules on the create payload.
func (r CreateSettingRequest) Validate() error {
	return ValidateStruct(r)
}

// UpdateSettingRequest is the partial-update shape. Keys are immutable;
// only the value changes.
type UpdateSettingRequest struct {
	Value Optional[string] `json:"value,omitzero"`
}

// Validate rejects clearing the value; an empty string is the way to
// blank a setting.
func (r UpdateSettingRequest) Validate() error {
	if r.Value.IsNull() {
		return FieldErrors{{Field: "value", Message: "cannot be null"}}
	}
	return nil
}

// NewSetting builds a full setting record from a create payload.
func NewSetting(req CreateSettingRequest, now Timestamp) Setting {
	return Setting{
		ID:        NewID(),
		Key:       req.Key,
		Value:     req.Value,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyUpdate mutates only the fields present in req and refreshes
// updated_at.
func (s *Setting) ApplyUpdate(req UpdateSettingRequest, now Timestamp) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if v, ok := req.Value.Get(); ok {
		s.Value = v
	}
	s.UpdatedAt = now
	return nil
}

// FeeProfile is a per-platform fee rate, applied externally to compute
// platform_fees on a sale. Platform is an open string; rates are
// fractional (0.13 means 13%).
type FeeProfile struct {
	ID        string    `json:"id"`
	Platform  string    `json:"platform"`
	FeeRate   float64   `json:"fee_rate"`
	CreatedAt Timestamp `json:"created_at"`
	UpdatedAt Timestamp `json:"updated_at"`
}

// CreateFeeProfileRequest carries the caller-suppliable fields of a new
// fee profile.
type CreateFeeProfileRequest struct {
	Platform string  `json:"platform" validate:"required,max=100"`
	FeeRate  float64 `json:"fee_rate" validate:"gte=0,lte=1"`
}

// Validate checks field-level rules on the create payload.
func (r CreateFeeProfileRequest) Validate() error {
	return ValidateStruct(r)
}

// UpdateFeeProfileRequest is the partial-update shape for a fee profile.
type UpdateFeeProfileRequest struct {
	Platform Optional[string]  `json:"platform,omitzero"`
	FeeRate  Optional[float64] `json:"fee_rate,omitzero"`
}

// Validate rejects clearing required fields and out-of-range rates.
func (r UpdateFeeProfileRequest) Validate() error {
	var errs FieldErrors
	if r.Platform.IsNull() {
		errs = append(errs, FieldError{Field: "platform", Message: "cannot be null"})
	}
	if r.FeeRate.IsNull() {
		errs = append(errs, FieldError{Field: "fee_rate", Message: "cannot be null"})
	} else if v, ok := r.FeeRate.Get(); ok && (v < 0 || v > 1) {
		errs = append(errs, FieldError{Field: "fee_rate", Message: "must be between 0 and 1"})
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// NewFeeProfile builds a full fee-profile record from a create payload.
func NewFeeProfile(req CreateFeeProfileRequest, now Timestamp) FeeProfile {
	return FeeProfile{
		ID:        NewID(),
		Platform:  req.Platform,
		FeeRate:   req.FeeRate,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// ApplyUpdate mutates only the fields present in req and refreshes
// updated_at.
func (f *FeeProfile) ApplyUpdate(req UpdateFeeProfileRequest, now Timestamp) error {
	if err := req.Validate(); err != nil {
		return err
	}
	if v, ok := req.Platform.Get(); ok {
		f.Platform = v
	}
	if v, ok := req.FeeRate.Get(); ok {
		f.FeeRate = v
	}
	f.UpdatedAt = now
	return nil
}
