package game

import (
	"fmt"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/capability"
	"github.com/thraizz/tableau-server-go/internal/game/cards"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
	"github.com/thraizz/tableau-server-go/internal/game/rules"
)

// Piles is the shared draw and discard pile a player draws from and pays to.
type Piles interface {
	Draw() (*cards.Card, error)
	// DrawN returns the cards drawn before any error along with it.
	DrawN(n int) ([]*cards.Card, error)
	Discard(card *cards.Card)
	DiscardAll(cs []*cards.Card)
}

// Player owns a hand and a tableau. The two never share a card instance: a
// card moves from hand to tableau once, on acquisition.
type Player struct {
	ID   string
	Name string

	hand    []*cards.Card
	tableau []*cards.Card
	logger  *zap.Logger
}

// NewPlayer creates a player with an empty hand and tableau.
func NewPlayer(name string, logger *zap.Logger) *Player {
	if logger == nil {
		logger = zap.NewNop()
	}
	id := uuid.NewString()
	return &Player{
		ID:     id,
		Name:   name,
		logger: logger.With(zap.String("player_id", id), zap.String("player", name)),
	}
}

// Hand returns a copy of the hand in order.
func (p *Player) Hand() []*cards.Card {
	return append([]*cards.Card(nil), p.hand...)
}

// Tableau returns a copy of the tableau in acquisition order.
func (p *Player) Tableau() []*cards.Card {
	return append([]*cards.Card(nil), p.tableau...)
}

// HandSize returns the number of cards in hand.
func (p *Player) HandSize() int { return len(p.hand) }

// Capabilities folds the current tableau for the current hand size. Call it
// fresh before every decision.
func (p *Player) Capabilities() capability.Capabilities {
	caps := capability.Aggregate(p.tableau, len(p.hand))
	p.logger.Debug("aggregated capabilities",
		zap.Int("hand", len(p.hand)),
		zap.Int("tableau", len(p.tableau)),
		zap.Int("explore_to_see", caps.ExploreToSee),
		zap.Int("explore_to_keep", caps.ExploreToKeep),
		zap.Int("develop_trade_power", caps.DevelopTradePower),
		zap.Int("settle_trade_power", caps.SettleTradePower),
		zap.Int("settle_military_power", caps.SettleMilitaryPower),
	)
	return caps
}

// DrawUpTo draws until the hand holds n cards.
func (p *Player) DrawUpTo(piles Piles, n int) error {
	drawn, err := piles.DrawN(n - len(p.hand))
	p.hand = append(p.hand, drawn...)
	if err != nil {
		return fmt.Errorf("draw up to %d: %w", n, err)
	}
	return nil
}

// AddToHand places cards directly into the hand.
func (p *Player) AddToHand(cs ...*cards.Card) {
	p.hand = append(p.hand, cs...)
}

// PlaceInTableau puts a card straight into the tableau without payment, as
// for a starting world.
func (p *Player) PlaceInTableau(card *cards.Card) {
	p.tableau = append(p.tableau, card)
}

// Act runs the entry point for phase.
func (p *Player) Act(phase rules.Phase, piles Piles, chooser choice.Chooser) (*Outcome, error) {
	out := &Outcome{Phase: phase, PlayerID: p.ID}
	var err error
	switch phase {
	case rules.PhaseExplore:
		out.Explore, err = p.Explore(piles, chooser)
	case rules.PhaseDevelop:
		out.Develop, err = p.Develop(piles, chooser)
	case rules.PhaseSettle:
		out.Settle, err = p.Settle(piles, chooser)
	default:
		return nil, fmt.Errorf("%w: unknown phase %s", ErrInvariant, phase)
	}
	if err != nil {
		return out, fmt.Errorf("%s %s: %w", p.Name, phase, err)
	}
	return out, nil
}

// DescribeHand lists the hand for display.
func (p *Player) DescribeHand() string {
	return describe("Your hand", "Your hand is empty.", p.hand)
}

// DescribeTableau lists the tableau for display.
func (p *Player) DescribeTableau() string {
	return describe("Your tableau", "Your tableau is empty.", p.tableau)
}

func describe(title, empty string, cs []*cards.Card) string {
	if len(cs) == 0 {
		return empty
	}
	var b strings.Builder
	b.WriteString(title)
	b.WriteString(":")
	for _, c := range cs {
		b.WriteString("\n    ")
		b.WriteString(c.String())
	}
	return b.String()
}

func (p *Player) removeFromHand(i int) *cards.Card {
	card := p.hand[i]
	p.hand = append(p.hand[:i], p.hand[i+1:]...)
	return card
}

// removeFromTableau removes the first occurrence of card.
func (p *Player) removeFromTableau(card *cards.Card) bool {
	for i, c := range p.tableau {
		if c == card {
			p.tableau = append(p.tableau[:i], p.tableau[i+1:]...)
			return true
		}
	}
	return false
}

// tableauWithout returns the tableau minus the last occurrence of card, the
// copy most recently placed.
func (p *Player) tableauWithout(card *cards.Card) []*cards.Card {
	out := append([]*cards.Card(nil), p.tableau...)
	for i := len(out) - 1; i >= 0; i-- {
		if out[i] == card {
			return append(out[:i], out[i+1:]...)
		}
	}
	return out
}

func optionStrings(cs []*cards.Card) []string {
	out := make([]string, len(cs))
	for i, c := range cs {
		out[i] = c.String()
	}
	return out
}
