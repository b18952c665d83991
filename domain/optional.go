package domain

import "encoding/json"

// Optional is a tri-state field for partial updates. The zero value means
// the field was absent from the payload (no change); Null means the field
// was present as JSON null (clear); Some means present with a value (set).
// Update shapes tag Optional fields with `omitzero` so absent fields stay
// absent on re-marshal.
type Optional[T any] struct {
	present bool
	null    bool
	value   T
}

// Some returns an Optional carrying v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{present: true, value: v}
}

// Null returns an Optional representing an explicit JSON null.
func Null[T any]() Optional[T] {
	return Optional[T]{present: true, null: true}
}

// Present reports whether the field appeared in the payload at all.
func (o Optional[T]) Present() bool {
	return o.present
}

// IsNull reports whether the field was an explicit null.
func (o Optional[T]) IsNull() bool {
	return o.present && o.null
}

// Get returns the value and whether one was set (present and non-null).
func (o Optional[T]) Get() (T, bool) {
	if !o.present || o.null {
		var zero T
		return zero, false
	}
	return o.value, true
}

// IsZero reports absence; it is what `omitzero` consults.
func (o Optional[T]) IsZero() bool {
	return !o.present
}

func (o Optional[T]) MarshalJSON() ([]byte, error) {
	if !o.present || o.null {
		return []byte("null"), nil
	}
	return json.Marshal(o.value)
}

func (o *Optional[T]) UnmarshalJSON(b []byte) error {
	o.present = true
	if string(b) == "null" {
		o.null = true
		var zero T
		o.value = zero
		return nil
	}
	o.null = false
	return json.Unmarshal(b, &o.value)
}

// ptr converts a set Optional to a pointer, and null/absent to nil.
// Used when applying updates to pointer-typed entity fields.
func ptr[T any](o Optional[T]) *T {
	if v, ok := o.Get(); ok {
		return &v
	}
	return nil
}
