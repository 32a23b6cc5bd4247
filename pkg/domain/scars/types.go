package scars

import (
	"time"

	"lineage/pkg/domain/fault"
)

// Scar is the immutable record of a past wound.
// Constructed once by the ledger; fields never change.
type Scar struct {
	severity    fault.Severity
	description string
	at          time.Time
}

// Severity returns the severity the scar was inflicted with.
func (s Scar) Severity() fault.Severity { return s.severity }

// Description returns what caused the wound.
func (s Scar) Description() string { return s.description }

// At returns when the scar was inflicted.
func (s Scar) At() time.Time { return s.at }
