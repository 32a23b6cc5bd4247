// Package lineage provides the entity: the single owner of the ontological
// primitives and the only mutation surface over them.
//
// An entity is born once, works, takes wounds, and dies exactly once.
// Nothing reverses: no undo, no replenishment, no scar removal, no revival.
// The package enforces this partly by what it refuses to expose. There is
// no SetEnergy, no AddEnergy, no Revive, no ClearScars, no DeleteEvent,
// no Reset, and no constructor accepting a pre-built primitive.
//
// CRITICAL INVARIANTS (verified after every mutating operation):
//   - The memory causal chain is dense and birth-first
//   - A dead entity holds zero energy
//   - A fatal scar implies death
//   - Death implies sealed memory, and sealed memory implies death
//
// Any failed check surfaces as an ontological-violation result. That is
// corruption; the host must abandon the entity.
//
// The entity is a single-owner value. It performs no internal concurrency
// and takes no locks; a host embedding it in a concurrent process mediates
// access with its own mutual exclusion.
package lineage

import (
	"errors"
	"fmt"
	"time"

	"lineage/pkg/clock"
	"lineage/pkg/domain/fault"
	"lineage/pkg/domain/identity"
	"lineage/pkg/domain/memory"
	"lineage/pkg/domain/metabolism"
	"lineage/pkg/domain/scars"
)

// ErrZeroInitialEnergy is returned when birth is attempted with no energy.
// No useful entity can exist dead.
var ErrZeroInitialEnergy = errors.New("initial energy must be at least 1")

// Entity composes the five primitives and exposes the operation surface.
// It exclusively owns its primitives; observers only ever receive values
// and copies, never a mutable reference.
type Entity struct {
	id    *identity.Identity
	mem   *memory.Log
	meter *metabolism.Meter
	scars *scars.Ledger
}

// Birth creates a living entity with the given initial energy.
// This is the entry-point constructor; it reads the real clock.
func Birth(initialEnergy uint64) (*Entity, error) {
	return BirthWithClock(initialEnergy, clock.NewReal())
}

// BirthWithClock creates a living entity using the injected clock.
// The clock affects timestamps only, never any invariant.
func BirthWithClock(initialEnergy uint64, clk clock.Clock) (*Entity, error) {
	if initialEnergy == 0 {
		return nil, ErrZeroInitialEnergy
	}

	id, err := identity.New(clk)
	if err != nil {
		return nil, fmt.Errorf("birth failed: %w", err)
	}

	e := &Entity{
		id:    id,
		mem:   memory.NewLog(clk),
		meter: metabolism.NewMeter(initialEnergy),
		scars: scars.NewLedger(clk),
	}

	if err := e.mem.Append(memory.KindBirth, fmt.Sprintf("Born with %d energy", initialEnergy)); err != nil {
		return nil, fmt.Errorf("birth failed: %w", err)
	}
	if reason, ok := e.invariantsOK(); !ok {
		return nil, fmt.Errorf("ontological violation at birth: %s", reason)
	}
	return e, nil
}

// PerformOperation is the canonical work step: consume cost, then record
// what was done. A consumption that lands exactly on zero is the entity's
// last act — the operation still succeeds, and memory seals behind it.
func (e *Entity) PerformOperation(description string, cost uint64) Result {
	if e.meter.Dead() {
		return dead()
	}

	if err := e.meter.Consume(cost); err != nil {
		var insuff *metabolism.InsufficientEnergyError
		if errors.As(err, &insuff) {
			return insufficient(insuff.Required, insuff.Available)
		}
		return dead()
	}

	if e.meter.Dead() {
		// Depletion: record the final act, then seal.
		if err := e.mem.Append(memory.KindOperation, description); err != nil {
			return violation("memory rejected append on depletion path: " + err.Error())
		}
		if err := e.mem.Terminate("Energy depleted"); err != nil {
			return violation("memory rejected termination on depletion path: " + err.Error())
		}
		if reason, ok := e.invariantsOK(); !ok {
			return violation(reason)
		}
		return success(cost)
	}

	if err := e.mem.Append(memory.KindOperation, description); err != nil {
		return violation("memory rejected append on a living entity: " + err.Error())
	}
	if reason, ok := e.invariantsOK(); !ok {
		return violation(reason)
	}
	return success(cost)
}

// RecordError records a fault against the entity, inflicting a scar.
// A fatal fault kills: the scar, the error event, death, and the memory
// seal land as one coupled mutation before any observer can look.
func (e *Entity) RecordError(d fault.Descriptor) Result {
	if e.meter.Dead() {
		return dead()
	}
	if err := d.Validate(); err != nil {
		// A descriptor that did not pass through the constructor is
		// surface tampering, not a caller error.
		return violation("fault descriptor fabricated outside its constructor: " + err.Error())
	}

	fatal := e.scars.Inflict(d.Severity(), d.Description())
	entry := fmt.Sprintf("[%s] %s", d.Severity(), d.Description())

	if fatal {
		if err := e.mem.Append(memory.KindError, entry); err != nil {
			return violation("memory rejected append on fatal path: " + err.Error())
		}
		cause := "Fatal scar: " + d.Description()
		e.meter.Die(cause)
		if err := e.mem.Terminate(cause); err != nil {
			return violation("memory rejected termination on fatal path: " + err.Error())
		}
		if reason, ok := e.invariantsOK(); !ok {
			return violation(reason)
		}
		return dead()
	}

	if err := e.mem.Append(memory.KindError, entry); err != nil {
		return violation("memory rejected append on a living entity: " + err.Error())
	}
	if reason, ok := e.invariantsOK(); !ok {
		return violation(reason)
	}
	return success(0)
}

// invariantsOK verifies the cross-primitive invariants.
// Returns the diagnostic of the first failed check.
func (e *Entity) invariantsOK() (string, bool) {
	if !e.mem.IntegrityOK() {
		return "memory causal chain broken", false
	}
	if e.meter.Dead() && e.meter.Energy() != 0 {
		return "dead entity retains energy", false
	}
	if e.scars.HasFatal() && !e.meter.Dead() {
		return "fatal scar on a living entity", false
	}
	if e.meter.Dead() && !e.mem.Terminated() {
		return "dead entity with unsealed memory", false
	}
	if e.mem.Terminated() && !e.meter.Dead() {
		return "sealed memory on a living entity", false
	}
	return "", true
}

// ContentAddress returns the identity's fixed-width content address.
func (e *Entity) ContentAddress() string {
	return e.id.ContentAddress()
}

// BornAt returns the birth instant.
func (e *Entity) BornAt() time.Time {
	return e.id.BornAt()
}

// Energy returns the remaining energy.
func (e *Entity) Energy() uint64 {
	return e.meter.Energy()
}

// InitialEnergy returns the energy the entity was born with.
func (e *Entity) InitialEnergy() uint64 {
	return e.meter.Initial()
}

// DamageScore returns the cumulative damage of all scars.
func (e *Entity) DamageScore() uint64 {
	return e.scars.Damage()
}

// ScarCount returns the number of scars ever inflicted.
func (e *Entity) ScarCount() int {
	return e.scars.Count()
}

// EventCount returns the number of memory events.
func (e *Entity) EventCount() int {
	return e.mem.Len()
}

// Events returns a copy of the memory event sequence in order.
func (e *Entity) Events() []memory.Event {
	return e.mem.Events()
}

// Scars returns a copy of the wound record in infliction order.
func (e *Entity) Scars() []scars.Scar {
	return e.scars.Scars()
}

// CountScarsWhere returns the number of scars matching the predicate.
func (e *Entity) CountScarsWhere(match func(scars.Scar) bool) int {
	return e.scars.CountWhere(match)
}

// IsAlive reports whether the entity can still act.
func (e *Entity) IsAlive() bool {
	return !e.meter.Dead()
}

// MemoryTerminated reports whether memory has sealed.
func (e *Entity) MemoryTerminated() bool {
	return e.mem.Terminated()
}

// CauseOfDeath returns the recorded cause and whether the entity is dead.
func (e *Entity) CauseOfDeath() (string, bool) {
	return e.meter.CauseOfDeath()
}
