// Package scars provides the append-only wound ledger of an entity.
//
// CRITICAL INVARIANTS:
//   - Scars are never removed, reordered, or mutated
//   - Severity is never downgraded and damage never decays
//   - Cumulative damage is the sum of all severities ever inflicted
//   - A fatal scar obligates the owning entity to die; the ledger records,
//     the owner enforces
//   - No goroutines, no time.Now(): the clock is injected
package scars

import (
	"lineage/pkg/clock"
	"lineage/pkg/domain/fault"
)

// Ledger is the ordered wound record with its cached damage score.
type Ledger struct {
	clk      clock.Clock
	scars    []Scar
	damage   uint64
	hasFatal bool
}

// NewLedger creates an empty ledger.
func NewLedger(clk clock.Clock) *Ledger {
	return &Ledger{
		clk:   clk,
		scars: make([]Scar, 0),
	}
}

// Inflict appends a new scar and updates the damage score.
// Reports whether the newly inflicted scar is fatal.
func (l *Ledger) Inflict(severity fault.Severity, description string) bool {
	l.scars = append(l.scars, Scar{
		severity:    severity,
		description: description,
		at:          l.clk.Now(),
	})
	l.damage += severity.Damage()
	if severity.Fatal() {
		l.hasFatal = true
	}
	return severity.Fatal()
}

// Count returns the number of scars ever inflicted.
func (l *Ledger) Count() int {
	return len(l.scars)
}

// Damage returns the cumulative damage score.
func (l *Ledger) Damage() uint64 {
	return l.damage
}

// HasFatal reports whether any fatal scar has been inflicted.
func (l *Ledger) HasFatal() bool {
	return l.hasFatal
}

// Scars returns a copy of the wound record in infliction order.
func (l *Ledger) Scars() []Scar {
	out := make([]Scar, len(l.scars))
	copy(out, l.scars)
	return out
}

// CountWhere returns the number of scars matching the predicate.
// Used by higher-level behaviors to count their own strain wounds.
func (l *Ledger) CountWhere(match func(Scar) bool) int {
	n := 0
	for _, s := range l.scars {
		if match(s) {
			n++
		}
	}
	return n
}
