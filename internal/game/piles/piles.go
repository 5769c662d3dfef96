package piles

import (
	"errors"
	"math/rand/v2"

	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/cards"
)

// ErrOutOfCards is returned by Draw when both the draw pile and the discard
// pile are empty.
var ErrOutOfCards = errors.New("draw pile and discard pile are both empty")

// Piles holds the shared draw pile and discard pile. The top of the draw pile
// is the end of the slice.
type Piles struct {
	draw    []*cards.Card
	discard []*cards.Card
	rng     *rand.Rand
	logger  *zap.Logger

	reshuffles int
}

// Option configures Piles.
type Option func(*Piles)

// WithLogger attaches a logger used to report reshuffles.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Piles) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// WithSeed makes shuffling deterministic.
func WithSeed(seed uint64) Option {
	return func(p *Piles) {
		p.rng = rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
	}
}

// WithRand uses rng for shuffling.
func WithRand(rng *rand.Rand) Option {
	return func(p *Piles) {
		if rng != nil {
			p.rng = rng
		}
	}
}

// New shuffles deck into a fresh draw pile. The discard pile starts empty.
// The deck slice is copied; duplicate copies of a card may share a pointer.
func New(deck []*cards.Card, opts ...Option) *Piles {
	p := &Piles{
		draw:   append([]*cards.Card(nil), deck...),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.rng == nil {
		p.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	p.shuffle(p.draw)
	return p
}

// Draw removes and returns the top card of the draw pile. When the draw pile
// is empty the discard pile is shuffled into it first.
func (p *Piles) Draw() (*cards.Card, error) {
	if len(p.draw) == 0 {
		if len(p.discard) == 0 {
			return nil, ErrOutOfCards
		}
		p.reshuffle()
	}
	last := len(p.draw) - 1
	card := p.draw[last]
	p.draw[last] = nil
	p.draw = p.draw[:last]
	return card, nil
}

// DrawN draws n cards, stopping at the first error. The cards drawn before
// the error are returned along with it.
func (p *Piles) DrawN(n int) ([]*cards.Card, error) {
	drawn := make([]*cards.Card, 0, max(n, 0))
	for i := 0; i < n; i++ {
		card, err := p.Draw()
		if err != nil {
			return drawn, err
		}
		drawn = append(drawn, card)
	}
	return drawn, nil
}

// Discard places card on the discard pile.
func (p *Piles) Discard(card *cards.Card) {
	if card == nil {
		return
	}
	p.discard = append(p.discard, card)
}

// DiscardAll places every card on the discard pile in order.
func (p *Piles) DiscardAll(cs []*cards.Card) {
	for _, c := range cs {
		p.Discard(c)
	}
}

// DrawCount returns the size of the draw pile.
func (p *Piles) DrawCount() int { return len(p.draw) }

// DiscardCount returns the size of the discard pile.
func (p *Piles) DiscardCount() int { return len(p.discard) }

// Reshuffles returns how many times the discard pile has been recycled.
func (p *Piles) Reshuffles() int { return p.reshuffles }

func (p *Piles) reshuffle() {
	p.draw, p.discard = p.discard, p.draw[:0]
	p.shuffle(p.draw)
	p.reshuffles++
	p.logger.Debug("reshuffled discard pile into draw pile",
		zap.Int("cards", len(p.draw)),
		zap.Int("reshuffles", p.reshuffles))
}

func (p *Piles) shuffle(cs []*cards.Card) {
	p.rng.Shuffle(len(cs), func(i, j int) {
		cs[i], cs[j] = cs[j], cs[i]
	})
}
