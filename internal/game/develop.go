package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/capability"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
)

// Develop optionally builds one development from hand, paying with other
// hand cards.
func (p *Player) Develop(piles Piles, chooser choice.Chooser) (*DevelopResult, error) {
	res := &DevelopResult{}

	if n := p.Capabilities().DevelopDrawBefore; n > 0 {
		chooser.Notify(fmt.Sprintf("Drawing %d cards.", n))
		drawn, err := piles.DrawN(n)
		p.hand = append(p.hand, drawn...)
		res.Drawn = drawn
		if err != nil {
			return res, fmt.Errorf("develop draw: %w", err)
		}
	}

	// Recompute so trade power reflects the post-draw hand.
	caps := p.Capabilities()

	var candidates []int
	var quotes []capability.Quote
	for i, card := range p.hand {
		if !card.IsDevelopment() {
			continue
		}
		q, err := caps.DevelopQuote(card)
		if err != nil {
			return res, fmt.Errorf("%w: %w", ErrInvariant, err)
		}
		candidates = append(candidates, i)
		quotes = append(quotes, q)
	}
	if len(candidates) == 0 {
		chooser.Notify("You have no developments to build.")
		return res, nil
	}

	options := make([]string, len(candidates))
	for i, idx := range candidates {
		options[i] = p.hand[idx].String()
	}
	chooser.Notify(fmt.Sprintf("You have an effective buying power of %d (%d cards + %d discount - 1 bought).",
		caps.DevelopTradePower, len(p.hand), caps.DevelopTradeDiscount))

	pick, ok, err := selectOptional(chooser, "What would you like to develop?", options, func(i int) (bool, string) {
		if !quotes[i].Affordable {
			return false, "You can't afford that card."
		}
		return true, ""
	})
	if err != nil {
		return res, fmt.Errorf("develop: %w", err)
	}
	if !ok {
		p.logger.Info("developed nothing")
		return res, nil
	}

	quote := quotes[pick]
	card := p.removeFromHand(candidates[pick])
	p.tableau = append(p.tableau, card)
	res.Acquired = card
	res.Quote = quote

	paid, err := p.payTradeCost(piles, chooser, quote.Price)
	res.Paid = paid
	if err != nil {
		return res, fmt.Errorf("develop %s: %w", card.Name(), err)
	}

	p.logger.Info("developed",
		zap.String("card", card.Name()),
		zap.Int("price", quote.Price),
		zap.Int("hand", len(p.hand)),
	)
	return res, nil
}
