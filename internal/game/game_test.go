package game

import (
	"context"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/thraizz/tableau-server-go/internal/game/cards"
	"github.com/thraizz/tableau-server-go/internal/game/catalog"
	"github.com/thraizz/tableau-server-go/internal/game/rules"
)

// passiveChooser keeps the first cards offered and declines every optional
// choice.
type passiveChooser struct{}

func (passiveChooser) SelectOne(string, []string) (int, error) { return 0, nil }
func (passiveChooser) SelectOptional(string, []string) (int, bool, error) { return 0, false, nil }
func (passiveChooser) SelectMany(_ string, _ []string, n int) ([]int, error) {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}
	return out, nil
}
func (passiveChooser) Notify(string) {}

type recorder struct {
	mu    sync.Mutex
	types []string
}

func (r *recorder) handle(n Notification) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.types = append(r.types, n.Type)
}

func (r *recorder) count(kind string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, t := range r.types {
		if t == kind {
			n++
		}
	}
	return n
}

func newTestGame(t *testing.T, settings Settings, names ...string) *Game {
	t.Helper()
	g, err := NewGame("game-1", catalog.Default(), settings, zaptest.NewLogger(t))
	require.NoError(t, err)
	for _, n := range names {
		_, err := g.AddPlayer(n, passiveChooser{})
		require.NoError(t, err)
	}
	return g
}

func handNames(p *Player) []string {
	var out []string
	for _, c := range p.Hand() {
		out = append(out, c.Name())
	}
	return out
}

func TestDealDrawsStartingHands(t *testing.T) {
	g := newTestGame(t, Settings{StartingHand: 4, Seed: 1}, "Alice", "Bob")
	deck := g.Piles().DrawCount()

	require.NoError(t, g.Deal())
	for _, p := range g.Players() {
		assert.Equal(t, 4, p.HandSize())
		assert.Empty(t, p.Tableau())
	}
	assert.Equal(t, deck-8, g.Piles().DrawCount())
	assert.Equal(t, 1, g.Round())
	assert.Equal(t, 1, g.History().Size())
}

func TestDealWithStartWorlds(t *testing.T) {
	g := newTestGame(t, Settings{StartingHand: 4, Seed: 3, StartWorlds: true}, "Alice", "Bob")
	require.NoError(t, g.Deal())

	var worlds []*cards.Card
	for _, p := range g.Players() {
		require.Len(t, p.Tableau(), 1)
		world := p.Tableau()[0]
		assert.True(t, world.HasAttribute(cards.AttributeStarter))
		worlds = append(worlds, world)
		assert.Equal(t, 4, p.HandSize())
	}
	assert.NotSame(t, worlds[0], worlds[1])
}

func TestSeededGamesDealIdentically(t *testing.T) {
	a := newTestGame(t, Settings{StartingHand: 5, Seed: 42}, "Alice", "Bob")
	b := newTestGame(t, Settings{StartingHand: 5, Seed: 42}, "Alice", "Bob")
	require.NoError(t, a.Deal())
	require.NoError(t, b.Deal())

	for i := range a.Players() {
		assert.Equal(t, handNames(a.Players()[i]), handNames(b.Players()[i]))
	}
}

func TestDealErrors(t *testing.T) {
	g := newTestGame(t, DefaultSettings())
	assert.ErrorIs(t, g.Deal(), ErrNoPlayers)

	_, err := g.Step()
	assert.ErrorIs(t, err, ErrNotDealt)

	_, err = g.AddPlayer("Alice", passiveChooser{})
	require.NoError(t, err)
	require.NoError(t, g.Deal())
	assert.ErrorIs(t, g.Deal(), ErrAlreadyDealt)

	_, err = g.AddPlayer("Bob", passiveChooser{})
	assert.ErrorIs(t, err, ErrAlreadyDealt)

	_, err = g.AddPlayer("Carol", nil)
	assert.Error(t, err)
}

func TestNewGameValidation(t *testing.T) {
	_, err := NewGame("g", nil, DefaultSettings(), nil)
	assert.Error(t, err)

	_, err = NewGame("g", catalog.Default(), Settings{StartingHand: -1}, nil)
	assert.Error(t, err)

	g, err := NewGame("g", catalog.Default(), Settings{StartingHand: 2}, nil)
	require.NoError(t, err)
	assert.Equal(t, rules.DefaultSequence(), g.settings.Phases)
}

func TestRunPlaysRounds(t *testing.T) {
	g := newTestGame(t, Settings{StartingHand: 4, Seed: 9}, "Alice", "Bob")
	rec := &recorder{}
	g.SetNotificationHandler(rec.handle)
	require.NoError(t, g.Deal())

	require.NoError(t, g.Run(context.Background(), 1))

	for _, p := range g.Players() {
		// Explore keeps one; passive players never develop or settle.
		assert.Equal(t, 5, p.HandSize())
	}
	assert.Equal(t, 2, g.Piles().DiscardCount())
	assert.Equal(t, 2, g.Round())
	assert.Equal(t, 7, g.History().Size())

	assert.Equal(t, 1, rec.count(NotificationGameStarted))
	assert.Equal(t, 6, rec.count(NotificationPhase))
	assert.Equal(t, 1, rec.count(NotificationRoundStart))
	assert.Equal(t, 1, rec.count(NotificationGameEnded))
}

func TestPlayRoundFollowsPhaseOrder(t *testing.T) {
	g := newTestGame(t, Settings{StartingHand: 3, Seed: 5, Phases: []rules.Phase{rules.PhaseSettle, rules.PhaseExplore}}, "Alice")
	require.NoError(t, g.Deal())

	outcomes, err := g.PlayRound()
	require.NoError(t, err)
	require.Len(t, outcomes, 2)
	assert.Equal(t, rules.PhaseSettle, outcomes[0].Phase)
	assert.NotNil(t, outcomes[0].Settle)
	assert.Equal(t, rules.PhaseExplore, outcomes[1].Phase)
	assert.NotNil(t, outcomes[1].Explore)
}

func TestRunStopsBetweenPhasesOnCancel(t *testing.T) {
	g := newTestGame(t, Settings{StartingHand: 4, Seed: 9}, "Alice")
	require.NoError(t, g.Deal())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := g.Run(ctx, 3)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 1, g.History().Size())
	assert.Equal(t, 4, g.Players()[0].HandSize())
}

func TestPlayerLookup(t *testing.T) {
	g := newTestGame(t, DefaultSettings(), "Alice")
	alice := g.Players()[0]

	got, ok := g.Player(alice.ID)
	require.True(t, ok)
	assert.Same(t, alice, got)

	_, ok = g.Player("nobody")
	assert.False(t, ok)
}
