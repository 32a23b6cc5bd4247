package memory

import "time"

// EventKind identifies the kind of memory event.
type EventKind string

const (
	// KindBirth is the first event of every log. It occurs exactly once.
	KindBirth EventKind = "birth"

	// KindOperation records work performed by the entity.
	KindOperation EventKind = "operation"

	// KindError records a fault inflicted on the entity. For a fatal fault
	// it is the event immediately before the termination event.
	KindError EventKind = "error"

	// KindTermination is the final event of a sealed log. It occurs at
	// most once and only as the last entry.
	KindTermination EventKind = "termination"
)

// SentinelNoPrevious is the previous-sequence value of event 0,
// which has no predecessor.
const SentinelNoPrevious = -1

// Event is an immutable entry in the causal chain.
// Once appended, no field changes.
type Event struct {
	sequence    int
	previous    int
	at          time.Time
	kind        EventKind
	description string
}

// Sequence returns the dense 0-based index of the event.
func (e Event) Sequence() int { return e.sequence }

// Previous returns the sequence of the immediate predecessor,
// or SentinelNoPrevious for event 0.
func (e Event) Previous() int { return e.previous }

// At returns when the event was recorded.
func (e Event) At() time.Time { return e.at }

// Kind returns the event kind.
func (e Event) Kind() EventKind { return e.kind }

// Description returns the human-readable description.
func (e Event) Description() string { return e.description }
