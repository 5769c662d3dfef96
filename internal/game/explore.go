package game

import (
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/cards"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
)

// Explore reveals ExploreToSee cards and keeps ExploreToKeep of them. The
// rest go to the discard pile.
func (p *Player) Explore(piles Piles, chooser choice.Chooser) (*ExploreResult, error) {
	caps := p.Capabilities()
	res := &ExploreResult{}

	revealed, err := piles.DrawN(caps.ExploreToSee)
	res.Revealed = revealed
	if err != nil {
		p.discardRevealed(piles, res, res.Revealed)
		return res, fmt.Errorf("explore: %w", err)
	}

	var keep []int
	switch n := caps.ExploreToKeep; {
	case n <= 0 || len(res.Revealed) == 0:
	case n >= len(res.Revealed):
		keep = make([]int, len(res.Revealed))
		for i := range keep {
			keep[i] = i
		}
	default:
		prompt := fmt.Sprintf("Choose %d of %d explored cards to keep.", n, len(res.Revealed))
		picks, err := selectMany(chooser, prompt, optionStrings(res.Revealed), n)
		if err != nil {
			p.discardRevealed(piles, res, res.Revealed)
			return res, fmt.Errorf("explore: %w", err)
		}
		keep = picks
	}

	kept := make(map[int]bool, len(keep))
	sort.Ints(keep)
	for _, i := range keep {
		kept[i] = true
		res.Kept = append(res.Kept, res.Revealed[i])
	}
	p.hand = append(p.hand, res.Kept...)

	var rest []*cards.Card
	for i, c := range res.Revealed {
		if !kept[i] {
			rest = append(rest, c)
		}
	}
	p.discardRevealed(piles, res, rest)

	p.logger.Info("explored",
		zap.Int("revealed", len(res.Revealed)),
		zap.Int("kept", len(res.Kept)),
		zap.Int("hand", len(p.hand)),
	)
	return res, nil
}

func (p *Player) discardRevealed(piles Piles, res *ExploreResult, cs []*cards.Card) {
	piles.DiscardAll(cs)
	res.Discarded = append(res.Discarded, cs...)
}
