package scars

import (
	"strings"
	"testing"
	"time"

	"lineage/pkg/clock"
	"lineage/pkg/domain/fault"
)

func testClock() clock.Clock {
	return clock.NewFixed(time.Date(2025, 3, 1, 9, 0, 0, 0, time.UTC))
}

func TestLedger_InflictAccumulates(t *testing.T) {
	l := NewLedger(testClock())

	tests := []struct {
		severity   fault.Severity
		desc       string
		wantFatal  bool
		wantCount  int
		wantDamage uint64
	}{
		{fault.SeverityMinor, "paper cut", false, 1, 1},
		{fault.SeverityModerate, "sprain", false, 2, 6},
		{fault.SeveritySevere, "fracture", false, 3, 26},
		{fault.SeverityFatal, "corruption", true, 4, 126},
	}

	for _, tt := range tests {
		fatal := l.Inflict(tt.severity, tt.desc)
		if fatal != tt.wantFatal {
			t.Errorf("Inflict(%s) fatal = %v, want %v", tt.severity, fatal, tt.wantFatal)
		}
		if l.Count() != tt.wantCount {
			t.Errorf("Count() = %d, want %d", l.Count(), tt.wantCount)
		}
		if l.Damage() != tt.wantDamage {
			t.Errorf("Damage() = %d, want %d", l.Damage(), tt.wantDamage)
		}
	}

	if !l.HasFatal() {
		t.Error("HasFatal() = false after fatal infliction")
	}
}

func TestLedger_HasFatalStaysFalseWithoutFatal(t *testing.T) {
	l := NewLedger(testClock())
	l.Inflict(fault.SeverityMinor, "scratch")
	l.Inflict(fault.SeveritySevere, "deep wound")

	if l.HasFatal() {
		t.Error("HasFatal() = true without a fatal scar")
	}
}

func TestLedger_ScarsPreserveInflictionOrder(t *testing.T) {
	l := NewLedger(testClock())
	l.Inflict(fault.SeverityMinor, "first")
	l.Inflict(fault.SeverityModerate, "second")

	got := l.Scars()
	if len(got) != 2 {
		t.Fatalf("len(Scars()) = %d, want 2", len(got))
	}
	if got[0].Description() != "first" || got[1].Description() != "second" {
		t.Errorf("order = [%q, %q]", got[0].Description(), got[1].Description())
	}
	if got[0].Severity() != fault.SeverityMinor {
		t.Errorf("scar 0 severity = %q", got[0].Severity())
	}
}

func TestLedger_ScarsReturnsCopy(t *testing.T) {
	l := NewLedger(testClock())
	l.Inflict(fault.SeverityMinor, "original")

	scars := l.Scars()
	scars[0] = Scar{}

	if l.Scars()[0].Description() != "original" {
		t.Error("mutating the returned slice reached the ledger")
	}
}

func TestLedger_CountWhere(t *testing.T) {
	l := NewLedger(testClock())
	l.Inflict(fault.SeverityModerate, "Pulse strain: too weak")
	l.Inflict(fault.SeverityMinor, "unrelated scratch")
	l.Inflict(fault.SeverityModerate, "Pulse strain: still too weak")

	got := l.CountWhere(func(s Scar) bool {
		return strings.HasPrefix(s.Description(), "Pulse strain")
	})
	if got != 2 {
		t.Errorf("CountWhere(prefix) = %d, want 2", got)
	}

	all := l.CountWhere(func(Scar) bool { return true })
	if all != 3 {
		t.Errorf("CountWhere(true) = %d, want 3", all)
	}
}
