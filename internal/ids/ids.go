// Package ids produces unique string identifiers for floors and reservations.
package ids

import "github.com/google/uuid"

// Generator yields a fresh identifier on each call. Services take one as a
// dependency so tests can substitute deterministic sequences.
type Generator func() string

// NewUUID returns a Generator backed by random UUIDs.
func NewUUID() Generator {
	return func() string {
		return uuid.NewString()
	}
}
