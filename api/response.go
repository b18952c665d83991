// Package api defines the envelope shapes of the resale-inventory API:
// success/error responses, pagination, named entity wrappers, and the
// pass-through shapes exchanged with the AI and eBay integrations.
package api

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/resalehq/resalehq/domain"
)

// ErrMalformedEnvelope indicates a response carrying both or neither of
// data and error.
var ErrMalformedEnvelope = errors.New("response must contain exactly one of data or error")

// ValidationErrorDetails is one field-level failure on the wire.
type ValidationErrorDetails struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ErrorResponse is the only shape errors take at the API boundary.
// Details carries []ValidationErrorDetails for validation failures and
// unstructured data otherwise.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details any    `json:"details,omitempty"`
}

// NewErrorResponse wraps an opaque message.
func NewErrorResponse(msg string) ErrorResponse {
	return ErrorResponse{Error: msg}
}

// NewValidationError converts an error into the wire error shape.
// domain.FieldErrors become structured details; anything else becomes
// an opaque message.
func NewValidationError(err error) ErrorResponse {
	var fieldErrs domain.FieldErrors
	if errors.As(err, &fieldErrs) {
		details := make([]ValidationErrorDetails, len(fieldErrs))
		for i, fe := range fieldErrs {
			details[i] = ValidationErrorDetails{Field: fe.Field, Message: fe.Message}
		}
		return ErrorResponse{Error: "validation failed", Details: details}
	}
	return ErrorResponse{Error: err.Error()}
}

// Response is the generic envelope: exactly one of Data or Error is
// populated. The decoder rejects instances violating that contract.
type Response[T any] struct {
	Data    *T     `json:"data,omitempty"`
	Error   string `json:"error,omitempty"`
	Details any    `json:"details,omitempty"`
}

// Success wraps a payload.
func Success[T any](v T) Response[T] {
	return Response[T]{Data: &v}
}

// Failure wraps an error message and optional details.
func Failure[T any](msg string, details ...any) Response[T] {
	r := Response[T]{Error: msg}
	if len(details) > 0 {
		r.Details = details[0]
	}
	return r
}

// Validate enforces the data-xor-error contract.
func (r Response[T]) Validate() error {
	if r.Data != nil && r.Error != "" {
		return fmt.Errorf("%w: both populated", ErrMalformedEnvelope)
	}
	if r.Data == nil && r.Error == "" {
		return fmt.Errorf("%w: neither populated", ErrMalformedEnvelope)
	}
	return nil
}

// UnmarshalJSON decodes and validates; a payload carrying both data and
// error never reaches the caller.
func (r *Response[T]) UnmarshalJSON(b []byte) error {
	var p struct {
		Data    *T     `json:"data"`
		Error   string `json:"error"`
		Details any    `json:"details"`
	}
	if err := json.Unmarshal(b, &p); err != nil {
		return err
	}
	r.Data = p.Data
	r.Error = p.Error
	r.Details = p.Details
	return r.Validate()
}
