package rules

import "testing"

func TestTurnManagerSequence(t *testing.T) {
	tm := NewTurnManager([]string{"Alice", "Bob"}, nil)

	expected := []struct {
		phase  Phase
		player string
	}{
		{PhaseExplore, "Alice"},
		{PhaseExplore, "Bob"},
		{PhaseDevelop, "Alice"},
		{PhaseDevelop, "Bob"},
		{PhaseSettle, "Alice"},
		{PhaseSettle, "Bob"},
	}

	if tm.Steps() != len(expected) {
		t.Fatalf("expected %d steps, got %d", len(expected), tm.Steps())
	}
	for i, exp := range expected {
		if tm.CurrentPhase() != exp.phase {
			t.Fatalf("step %d: expected phase %s, got %s", i, exp.phase, tm.CurrentPhase())
		}
		if tm.ActivePlayer() != exp.player {
			t.Fatalf("step %d: expected player %s, got %s", i, exp.player, tm.ActivePlayer())
		}
		if i < len(expected)-1 {
			if tm.Advance() {
				t.Fatalf("step %d: unexpected new round", i)
			}
		}
	}
}

func TestTurnManagerAdvanceWrapsRound(t *testing.T) {
	tm := NewTurnManager([]string{" Alice "}, []Phase{PhaseSettle, PhaseExplore})

	if tm.ActivePlayer() != "Alice" {
		t.Fatalf("expected trimmed player name, got %q", tm.ActivePlayer())
	}
	if tm.Advance() {
		t.Fatal("expected to stay in round 1")
	}
	if !tm.Advance() {
		t.Fatal("expected a new round")
	}
	if tm.RoundNumber() != 2 {
		t.Fatalf("expected round 2, got %d", tm.RoundNumber())
	}
	if tm.CurrentPhase() != PhaseSettle {
		t.Fatalf("expected new round to start at SETTLE, got %s", tm.CurrentPhase())
	}
}

func TestParsePhase(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Phase
	}{
		{"explore", PhaseExplore},
		{" Develop ", PhaseDevelop},
		{"SETTLE", PhaseSettle},
	} {
		got, err := ParsePhase(tc.in)
		if err != nil {
			t.Fatalf("ParsePhase(%q): %v", tc.in, err)
		}
		if got != tc.want {
			t.Fatalf("ParsePhase(%q) = %s, want %s", tc.in, got, tc.want)
		}
	}

	if _, err := ParsePhase("produce"); err == nil {
		t.Fatal("expected error for unknown phase")
	}
	if _, err := ParsePhases([]string{"explore", "trade"}); err == nil {
		t.Fatal("expected error for unknown phase in list")
	}
}

func TestPhaseString(t *testing.T) {
	if PhaseDevelop.String() != "DEVELOP" {
		t.Fatalf("unexpected name %s", PhaseDevelop)
	}
	if Phase(9).String() != "PHASE_9" {
		t.Fatalf("unexpected fallback name %s", Phase(9))
	}
}
