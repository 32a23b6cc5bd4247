// Package memory provides the append-only, causally chained event log of
// an entity. The log is the authoritative serialization of everything the
// entity ever did; ordering questions are settled here and nowhere else.
//
// CRITICAL INVARIANTS:
//   - Append-only: no deletion, reordering, or field mutation exists
//   - Event 0 has kind birth; every later event names its predecessor
//   - Sequence numbers are dense and 0-based
//   - Termination is one-shot: the log seals after recording its cause
//   - A sealed log rejects all further appends
//   - No goroutines, no time.Now(): the clock is injected
package memory

import (
	"errors"

	"lineage/pkg/clock"
)

// ErrTerminated is returned when appending to, or re-terminating,
// a sealed log.
var ErrTerminated = errors.New("memory terminated: log is sealed")

// Log is the ordered event sequence of one entity.
// States: open (accepts appends) and terminated (rejects them).
// There is no transition back from terminated.
type Log struct {
	clk        clock.Clock
	events     []Event
	terminated bool
}

// NewLog creates an empty, open log.
// The owner records the birth event immediately after construction.
func NewLog(clk clock.Clock) *Log {
	return &Log{
		clk:    clk,
		events: make([]Event, 0),
	}
}

// Append records a new event at the tail of the chain.
// Returns ErrTerminated if the log is sealed. No other failure mode.
func (l *Log) Append(kind EventKind, description string) error {
	if l.terminated {
		return ErrTerminated
	}
	l.append(kind, description)
	return nil
}

// Terminate seals the log, recording the reason as the final termination
// event before setting the terminal flag. The final entry of a sealed log
// therefore always documents why it was sealed.
// A second call returns ErrTerminated.
func (l *Log) Terminate(reason string) error {
	if l.terminated {
		return ErrTerminated
	}
	l.append(KindTermination, reason)
	l.terminated = true
	return nil
}

func (l *Log) append(kind EventKind, description string) {
	seq := len(l.events)
	prev := seq - 1
	if seq == 0 {
		prev = SentinelNoPrevious
	}
	l.events = append(l.events, Event{
		sequence:    seq,
		previous:    prev,
		at:          l.clk.Now(),
		kind:        kind,
		description: description,
	})
}

// Len returns the number of recorded events.
func (l *Log) Len() int {
	return len(l.events)
}

// Terminated reports whether the log is sealed.
func (l *Log) Terminated() bool {
	return l.terminated
}

// Events returns a copy of the event sequence in order.
// The events themselves are immutable values.
func (l *Log) Events() []Event {
	out := make([]Event, len(l.events))
	copy(out, l.events)
	return out
}

// IntegrityOK verifies the causal chain: event 0 exists and is the birth
// event, and every later event carries a dense sequence naming its
// immediate predecessor.
func (l *Log) IntegrityOK() bool {
	if len(l.events) == 0 {
		return false
	}
	if l.events[0].kind != KindBirth {
		return false
	}
	if l.events[0].sequence != 0 || l.events[0].previous != SentinelNoPrevious {
		return false
	}
	for i := 1; i < len(l.events); i++ {
		if l.events[i].sequence != i {
			return false
		}
		if l.events[i].previous != i-1 {
			return false
		}
	}
	return true
}
