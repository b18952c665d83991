// Package domain defines the entity and request shapes shared by the
// resale-inventory backend and its clients. Field names are the wire
// format: snake_case, case-sensitive.
package domain

import (
	"time"

	"github.com/google/uuid"
)

// NewID returns a server-assigned entity identifier.
func NewID() string {
	return uuid.NewString()
}

// Timestamp is a string-encoded point in time. The wire format treats
// timestamps as opaque strings; values produced by this package are
// RFC3339, but any string a peer sends round-trips unchanged.
type Timestamp string

// Now returns the current UTC time as a Timestamp.
func Now() Timestamp {
	return Timestamp(time.Now().UTC().Format(time.RFC3339Nano))
}

// IsZero reports whether the timestamp is unset.
func (t Timestamp) IsZero() bool {
	return t == ""
}

func (t Timestamp) String() string {
	return string(t)
}
