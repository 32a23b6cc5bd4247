package lineage

// ResultKind identifies the outcome of a mutating operation.
// The set is closed; no other outcome exists.
type ResultKind string

const (
	// ResultSuccess means the operation completed.
	ResultSuccess ResultKind = "success"

	// ResultInsufficientEnergy means the operation was rejected without
	// any state change. A cheaper operation may still succeed.
	ResultInsufficientEnergy ResultKind = "insufficient_energy"

	// ResultDead means the entity was, or has just become, dead.
	// No subsequent operation will succeed.
	ResultDead ResultKind = "dead"

	// ResultViolation means the cross-primitive invariant check detected
	// corruption. The entity must be abandoned; the recommended host
	// response is immediate termination with the reason logged.
	ResultViolation ResultKind = "ontological_violation"
)

// Result is the outcome of PerformOperation or RecordError.
// Each kind carries only its own fields; there is no metadata escape hatch.
type Result struct {
	kind      ResultKind
	consumed  uint64
	required  uint64
	available uint64
	reason    string
}

// Kind returns the outcome kind.
func (r Result) Kind() ResultKind { return r.kind }

// Consumed returns the energy consumed. Meaningful for success results.
func (r Result) Consumed() uint64 { return r.consumed }

// Required returns the requested cost of a rejected operation.
// Meaningful for insufficient-energy results.
func (r Result) Required() uint64 { return r.required }

// Available returns the energy available when the operation was rejected.
// Meaningful for insufficient-energy results.
func (r Result) Available() uint64 { return r.available }

// Reason returns the diagnostic of a violation result.
func (r Result) Reason() string { return r.reason }

func success(consumed uint64) Result {
	return Result{kind: ResultSuccess, consumed: consumed}
}

func insufficient(required, available uint64) Result {
	return Result{kind: ResultInsufficientEnergy, required: required, available: available}
}

func dead() Result {
	return Result{kind: ResultDead}
}

func violation(reason string) Result {
	return Result{kind: ResultViolation, reason: reason}
}
