// Package pulse provides the exemplar contract-enforcing behavior built on
// top of the entity's two operations.
//
// A pulse is only allowed from strength: the entity must hold at least the
// strength threshold of energy before the attempt. Pulsing from weakness
// violates the contract and inflicts a moderate strain scar, and every
// strain raises the cost of all future pulses. The resulting spiral (each
// strain makes the next strain more likely) is the intended consequence of
// contract violation, not a defect.
//
// CRITICAL INVARIANTS:
//   - The engine holds no mutable state of its own
//   - Every consequence flows through the entity's two operations and
//     lives in the scar ledger and memory log
//   - Cost rises monotonically with the engine's own strain count
package pulse

import (
	"fmt"
	"strings"

	"lineage/pkg/domain/fault"
	"lineage/pkg/domain/scars"
	"lineage/pkg/lineage"
)

// StrainMarker prefixes the description of every strain scar this engine
// inflicts. Strain counting filters the scar ledger on this prefix.
const StrainMarker = "Pulse strain"

// Config holds the pulse contract parameters.
type Config struct {
	// BaseCost is the energy cost of a pulse with no strain history.
	BaseCost uint64

	// StrengthThreshold is the minimum energy required to attempt a pulse.
	// Checked before any consumption.
	StrengthThreshold uint64

	// StrainStep is the cost increase per accumulated strain scar.
	StrainStep uint64
}

// DefaultConfig returns the canonical pulse contract:
// base cost 10, strength threshold 30, strain step 5.
func DefaultConfig() Config {
	return Config{
		BaseCost:          10,
		StrengthThreshold: 30,
		StrainStep:        5,
	}
}

// Outcome describes one pulse attempt.
type Outcome struct {
	// Result is the entity's outcome for the underlying operation.
	Result lineage.Result

	// IsStrong is true when the pulse was performed from strength.
	IsStrong bool

	// StrainOccurred is true when the attempt violated the contract and
	// inflicted a strain scar.
	StrainOccurred bool

	// Cost is the pulse cost that applied to this attempt.
	Cost uint64
}

// Engine evaluates the pulse contract against one entity.
// It owns nothing: state lives entirely in the entity.
type Engine struct {
	entity *lineage.Entity
	cfg    Config
}

// NewEngine creates a pulse engine over the given entity.
func NewEngine(e *lineage.Entity, cfg Config) *Engine {
	return &Engine{entity: e, cfg: cfg}
}

// StrainCount returns the number of strain scars this engine's contract
// has inflicted on the entity.
func (p *Engine) StrainCount() int {
	return p.entity.CountScarsWhere(func(s scars.Scar) bool {
		return strings.HasPrefix(s.Description(), StrainMarker)
	})
}

// CurrentCost returns the cost the next pulse will carry:
// base cost plus one strain step per accumulated strain.
func (p *Engine) CurrentCost() uint64 {
	return p.cfg.BaseCost + p.cfg.StrainStep*uint64(p.StrainCount())
}

// Pulse attempts one pulse.
//
// From strength (energy at or above the threshold) it performs a work
// operation at the current cost. From weakness it records a moderate
// strain fault instead, which raises the cost of every future pulse.
func (p *Engine) Pulse() Outcome {
	cost := p.CurrentCost()

	if !p.entity.IsAlive() {
		return Outcome{Result: p.entity.PerformOperation("Pulse", cost), Cost: cost}
	}

	if p.entity.Energy() >= p.cfg.StrengthThreshold {
		res := p.entity.PerformOperation(fmt.Sprintf("Pulse at cost %d", cost), cost)
		return Outcome{
			Result:   res,
			IsStrong: res.Kind() == lineage.ResultSuccess,
			Cost:     cost,
		}
	}

	desc := fmt.Sprintf("%s: energy %d below threshold %d",
		StrainMarker, p.entity.Energy(), p.cfg.StrengthThreshold)
	d, err := fault.New(fault.SeverityModerate, desc)
	if err != nil {
		// Unreachable: the severity is a package constant.
		panic(err)
	}
	res := p.entity.RecordError(d)
	return Outcome{
		Result:         res,
		StrainOccurred: res.Kind() == lineage.ResultSuccess,
		Cost:           cost,
	}
}
