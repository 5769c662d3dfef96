package rules

import (
	"fmt"
	"strings"
)

// Phase is one of the three independent actions a player may take.
type Phase int

const (
	PhaseExplore Phase = iota
	PhaseDevelop
	PhaseSettle
)

var phaseNames = map[Phase]string{
	PhaseExplore: "EXPLORE",
	PhaseDevelop: "DEVELOP",
	PhaseSettle:  "SETTLE",
}

func (p Phase) String() string {
	if name, ok := phaseNames[p]; ok {
		return name
	}
	return fmt.Sprintf("PHASE_%d", int(p))
}

// ParsePhase accepts a phase name in any case.
func ParsePhase(s string) (Phase, error) {
	want := strings.ToUpper(strings.TrimSpace(s))
	for p, name := range phaseNames {
		if name == want {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown phase %q", s)
}

// ParsePhases parses a list of phase names, preserving order.
func ParsePhases(names []string) ([]Phase, error) {
	out := make([]Phase, 0, len(names))
	for _, n := range names {
		p, err := ParsePhase(n)
		if err != nil {
			return nil, err
		}
		out = append(out, p)
	}
	return out, nil
}

// DefaultSequence is the phase order used when none is configured.
func DefaultSequence() []Phase {
	return []Phase{PhaseExplore, PhaseDevelop, PhaseSettle}
}

type turnEntry struct {
	seat  int
	phase Phase
}

// buildRoundSequence lists every (seat, phase) pair of one round. Each phase
// is taken by every seat in order before the next phase starts.
func buildRoundSequence(seats int, phases []Phase) []turnEntry {
	sequence := make([]turnEntry, 0, seats*len(phases))
	for _, phase := range phases {
		for seat := 0; seat < seats; seat++ {
			sequence = append(sequence, turnEntry{seat: seat, phase: phase})
		}
	}
	return sequence
}

// TurnManager walks through rounds of phases for a fixed set of seats. It
// only tracks position; resolving a phase is up to the caller.
type TurnManager struct {
	orderIndex  int
	roundNumber int
	players     []string
	sequence    []turnEntry
}

// NewTurnManager creates a turn manager positioned at round 1, first phase,
// first seat. An empty phase list falls back to DefaultSequence.
func NewTurnManager(players []string, phases []Phase) *TurnManager {
	seats := make([]string, len(players))
	for i, p := range players {
		seats[i] = strings.TrimSpace(p)
	}
	if len(phases) == 0 {
		phases = DefaultSequence()
	}
	return &TurnManager{
		roundNumber: 1,
		players:     seats,
		sequence:    buildRoundSequence(len(seats), phases),
	}
}

// CurrentPhase returns the phase currently in progress.
func (tm *TurnManager) CurrentPhase() Phase {
	return tm.sequence[tm.orderIndex].phase
}

// CurrentSeat returns the seat index of the acting player.
func (tm *TurnManager) CurrentSeat() int {
	return tm.sequence[tm.orderIndex].seat
}

// ActivePlayer returns the acting player's ID.
func (tm *TurnManager) ActivePlayer() string {
	return tm.players[tm.CurrentSeat()]
}

// RoundNumber returns the current round (1-based).
func (tm *TurnManager) RoundNumber() int {
	return tm.roundNumber
}

// Steps returns the number of (seat, phase) steps in one round.
func (tm *TurnManager) Steps() int {
	return len(tm.sequence)
}

// Advance moves to the next step, wrapping into a new round after the last
// one. It reports whether a new round started.
func (tm *TurnManager) Advance() (newRound bool) {
	if len(tm.sequence) == 0 {
		return false
	}
	tm.orderIndex++
	if tm.orderIndex >= len(tm.sequence) {
		tm.orderIndex = 0
		tm.roundNumber++
		return true
	}
	return false
}
