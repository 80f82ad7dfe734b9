package core

import "github.com/google/uuid"

// Stats describes the current population of a Store relative to its
// configured capacity bound. Exposed for health/introspection endpoints.
type Stats struct {
	Count    int `json:"count"`
	Capacity int `json:"capacity"`
}

// Store persists inquiries keyed by their opaque session identifier.
//
// Implementations must make each operation atomic with respect to the
// others: no interleaving of two calls may observe a partially evicted or
// partially written record. Absent and expired keys are indistinguishable;
// both surface as ErrNotFound from Get.
type Store interface {
	// Put stores or replaces the inquiry under id, stamping its
	// LastTouched timestamp. Inserting a new id under capacity pressure
	// triggers eviction first so the insert always fits.
	Put(id string, inq *Inquiry) error

	// Get returns a copy of the inquiry and refreshes its LastTouched
	// (reads extend lifetime; expiry is sliding, not fixed TTL).
	Get(id string) (*Inquiry, error)

	// Delete removes the inquiry if present, reporting whether it was.
	Delete(id string) bool

	// Stats reports current population and capacity.
	Stats() Stats
}

// NewID generates a collision-resistant opaque session identifier. Callers
// must never be able to choose or predict one.
func NewID() string { return uuid.NewString() }
