package memory

import (
	"errors"
	"testing"
	"time"

	"lineage/pkg/clock"
)

func testClock() clock.Clock {
	return clock.NewFixed(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
}

func TestLog_AppendBuildsDenseChain(t *testing.T) {
	l := NewLog(testClock())

	if err := l.Append(KindBirth, "born"); err != nil {
		t.Fatalf("Append(birth) failed: %v", err)
	}
	if err := l.Append(KindOperation, "first work"); err != nil {
		t.Fatalf("Append(operation) failed: %v", err)
	}
	if err := l.Append(KindError, "minor fault"); err != nil {
		t.Fatalf("Append(error) failed: %v", err)
	}

	events := l.Events()
	if len(events) != 3 {
		t.Fatalf("Len = %d, want 3", len(events))
	}
	if events[0].Kind() != KindBirth {
		t.Errorf("event 0 kind = %q, want %q", events[0].Kind(), KindBirth)
	}
	if events[0].Previous() != SentinelNoPrevious {
		t.Errorf("event 0 previous = %d, want sentinel %d", events[0].Previous(), SentinelNoPrevious)
	}
	for i, ev := range events {
		if ev.Sequence() != i {
			t.Errorf("event %d sequence = %d", i, ev.Sequence())
		}
		if i > 0 && ev.Previous() != i-1 {
			t.Errorf("event %d previous = %d, want %d", i, ev.Previous(), i-1)
		}
	}
	if !l.IntegrityOK() {
		t.Error("IntegrityOK() = false, want true")
	}
}

func TestLog_TerminateRecordsReasonThenSeals(t *testing.T) {
	l := NewLog(testClock())
	if err := l.Append(KindBirth, "born"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	if err := l.Terminate("energy depleted"); err != nil {
		t.Fatalf("Terminate() failed: %v", err)
	}
	if !l.Terminated() {
		t.Error("Terminated() = false after Terminate")
	}

	events := l.Events()
	last := events[len(events)-1]
	if last.Kind() != KindTermination {
		t.Errorf("final event kind = %q, want %q", last.Kind(), KindTermination)
	}
	if last.Description() != "energy depleted" {
		t.Errorf("final event description = %q", last.Description())
	}
}

func TestLog_SealedLogRejectsEverything(t *testing.T) {
	l := NewLog(testClock())
	if err := l.Append(KindBirth, "born"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := l.Terminate("done"); err != nil {
		t.Fatalf("Terminate failed: %v", err)
	}

	before := l.Len()

	if err := l.Append(KindOperation, "late work"); !errors.Is(err, ErrTerminated) {
		t.Errorf("Append after seal = %v, want ErrTerminated", err)
	}
	if err := l.Terminate("again"); !errors.Is(err, ErrTerminated) {
		t.Errorf("second Terminate = %v, want ErrTerminated", err)
	}
	if l.Len() != before {
		t.Errorf("Len changed from %d to %d after rejected calls", before, l.Len())
	}
}

func TestLog_IntegrityOK(t *testing.T) {
	t.Run("empty log fails", func(t *testing.T) {
		l := NewLog(testClock())
		if l.IntegrityOK() {
			t.Error("IntegrityOK() = true on empty log")
		}
	})

	t.Run("non-birth first event fails", func(t *testing.T) {
		l := NewLog(testClock())
		if err := l.Append(KindOperation, "work before birth"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if l.IntegrityOK() {
			t.Error("IntegrityOK() = true with non-birth first event")
		}
	})

	t.Run("sealed log still verifies", func(t *testing.T) {
		l := NewLog(testClock())
		if err := l.Append(KindBirth, "born"); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
		if err := l.Terminate("done"); err != nil {
			t.Fatalf("Terminate failed: %v", err)
		}
		if !l.IntegrityOK() {
			t.Error("IntegrityOK() = false on a well-formed sealed log")
		}
	})
}

func TestLog_EventsReturnsCopy(t *testing.T) {
	l := NewLog(testClock())
	if err := l.Append(KindBirth, "born"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if err := l.Append(KindOperation, "work"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}

	events := l.Events()
	events[0] = Event{} // clobber the copy

	fresh := l.Events()
	if fresh[0].Kind() != KindBirth {
		t.Error("mutating the returned slice reached the log")
	}
}

func TestLog_TimestampsComeFromInjectedClock(t *testing.T) {
	at := time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC)
	l := NewLog(clock.NewFixed(at))
	if err := l.Append(KindBirth, "born"); err != nil {
		t.Fatalf("Append failed: %v", err)
	}
	if got := l.Events()[0].At(); !got.Equal(at) {
		t.Errorf("At() = %v, want %v", got, at)
	}
}
