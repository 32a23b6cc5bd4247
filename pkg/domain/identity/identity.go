// Package identity provides the opaque, non-duplicable handle created at
// entity birth.
//
// An identity is not a value to compare: two identities are distinct
// entities, never equal, never orderable. The package therefore exposes
// no equality operation, no marshalling, and no constructor that accepts
// a pre-computed content address. An archived copy of the address string
// names a record about an entity, not the entity itself.
//
// CRITICAL INVARIANTS:
//   - Exactly one constructor; callers supply only the clock, never a
//     content address
//   - The content address is derived once at birth and never re-derived
//   - Construction fails only if the randomness source fails, and that
//     failure is terminal for the birth
package identity

import (
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"fmt"
	"time"

	"golang.org/x/crypto/sha3"

	"lineage/pkg/clock"
)

// entropyBytes is the randomness mixed into the content address.
// 256 bits makes collision negligible without collision detection.
const entropyBytes = 32

// Identity is the opaque birth handle.
// It holds the birth instant and a fixed-width content address; nothing
// about it supports duplication or reconstruction.
type Identity struct {
	bornAt         time.Time
	contentAddress string
}

// New mints a fresh identity from the injected clock and the system
// randomness source. The content address is SHA3-256 over the birth
// instant concatenated with the entropy, rendered as 64 hex characters.
func New(clk clock.Clock) (*Identity, error) {
	bornAt := clk.Now()

	entropy := make([]byte, entropyBytes)
	if _, err := rand.Read(entropy); err != nil {
		return nil, fmt.Errorf("entropy unavailable: %w", err)
	}

	material := make([]byte, 8+entropyBytes)
	binary.BigEndian.PutUint64(material[:8], uint64(bornAt.UnixNano()))
	copy(material[8:], entropy)

	sum := sha3.Sum256(material)

	return &Identity{
		bornAt:         bornAt,
		contentAddress: hex.EncodeToString(sum[:]),
	}, nil
}

// ContentAddress returns the fixed-width hex content address.
// For logging and display only; it cannot be turned back into an identity.
func (id *Identity) ContentAddress() string {
	return id.contentAddress
}

// BornAt returns the birth instant.
func (id *Identity) BornAt() time.Time {
	return id.bornAt
}
