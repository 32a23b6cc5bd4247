// Package metabolism provides the monotone energy meter of an entity.
//
// CRITICAL INVARIANTS:
//   - Energy never increases: there is no replenishment path of any kind
//   - Death is absorbing: once dead, dead forever
//   - dead <=> energy reached zero or a fatal wound was taken
//   - Over-consumption is rejected without mutation, never clamped
//
// Energy and costs are unsigned 64-bit integers. Saturating arithmetic is
// unnecessary because over-consumption never executes.
package metabolism

import (
	"errors"
	"fmt"
)

// ErrDead is returned when consuming on a dead meter.
var ErrDead = errors.New("metabolism dead: no further consumption possible")

// InsufficientEnergyError is returned when a consumption request exceeds
// the remaining energy. The meter is left untouched.
type InsufficientEnergyError struct {
	Required  uint64
	Available uint64
}

// Error implements the error interface.
func (e *InsufficientEnergyError) Error() string {
	return fmt.Sprintf("insufficient energy: required %d, available %d", e.Required, e.Available)
}

// Meter is the energy counter with its absorbing death flag.
type Meter struct {
	initial      uint64
	energy       uint64
	dead         bool
	causeOfDeath string
}

// NewMeter creates a meter holding the given initial energy.
func NewMeter(initial uint64) *Meter {
	return &Meter{
		initial: initial,
		energy:  initial,
	}
}

// Consume decrements energy by amount.
// Returns ErrDead on a dead meter and *InsufficientEnergyError when the
// amount exceeds remaining energy; neither case mutates the meter.
// A decrement landing exactly on zero transitions the meter to dead.
func (m *Meter) Consume(amount uint64) error {
	if m.dead {
		return ErrDead
	}
	if amount > m.energy {
		return &InsufficientEnergyError{
			Required:  amount,
			Available: m.energy,
		}
	}
	m.energy -= amount
	if m.energy == 0 {
		m.dead = true
		m.causeOfDeath = "energy depleted"
	}
	return nil
}

// Die zeroes the energy and marks the meter dead, recording the cause.
// Idempotent on an already-dead meter: the first cause is kept.
func (m *Meter) Die(cause string) {
	if m.dead {
		return
	}
	m.energy = 0
	m.dead = true
	m.causeOfDeath = cause
}

// Energy returns the remaining energy.
func (m *Meter) Energy() uint64 {
	return m.energy
}

// Initial returns the energy the meter was born with.
func (m *Meter) Initial() uint64 {
	return m.initial
}

// Dead reports whether the meter has died.
func (m *Meter) Dead() bool {
	return m.dead
}

// CauseOfDeath returns the recorded cause and whether the meter is dead.
func (m *Meter) CauseOfDeath() (string, bool) {
	if !m.dead {
		return "", false
	}
	return m.causeOfDeath, true
}
