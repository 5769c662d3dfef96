package game

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/thraizz/tableau-server-go/internal/game/capability"
	"github.com/thraizz/tableau-server-go/internal/game/cards"
	"github.com/thraizz/tableau-server-go/internal/game/choice"
)

// Settle optionally places one world from hand. Trade worlds are paid for
// with hand cards, military worlds are conquered, free worlds cost nothing.
func (p *Player) Settle(piles Piles, chooser choice.Chooser) (*SettleResult, error) {
	caps := p.Capabilities()
	res := &SettleResult{}

	var candidates []int
	var quotes []capability.Quote
	for i, card := range p.hand {
		if !card.IsWorld() {
			continue
		}
		candidates = append(candidates, i)
		quotes = append(quotes, caps.SettleQuote(card))
	}
	if len(candidates) == 0 {
		chooser.Notify("You have no worlds to settle.")
		return res, nil
	}

	options := make([]string, len(candidates))
	for i, idx := range candidates {
		options[i] = p.hand[idx].String()
	}
	chooser.Notify(fmt.Sprintf("You have a trade power of %d and a military of %d.",
		caps.SettleTradePower, caps.SettleMilitaryPower))

	pick, ok, err := selectOptional(chooser, "What would you like to settle?", options, func(i int) (bool, string) {
		q := quotes[i]
		if q.Affordable {
			return true, ""
		}
		if q.Method == capability.MethodConquer || q.Method == capability.MethodConvert {
			return false, fmt.Sprintf("You can't conquer that world (military %d).", q.Power)
		}
		return false, "You can't afford that card."
	})
	if err != nil {
		return res, fmt.Errorf("settle: %w", err)
	}
	if !ok {
		p.logger.Info("settled nothing")
		return res, nil
	}

	quote := quotes[pick]
	card := p.removeFromHand(candidates[pick])
	p.tableau = append(p.tableau, card)
	res.Acquired = card
	res.Quote = quote

	if err := p.completeSettle(piles, chooser, res); err != nil {
		return res, fmt.Errorf("settle %s: %w", card.Name(), err)
	}

	p.logger.Info("settled",
		zap.String("card", card.Name()),
		zap.Stringer("method", quote.Method),
		zap.Int("paid", len(res.Paid)),
		zap.Int("boosters", len(res.Boosters)),
	)
	return res, nil
}

// completeSettle settles the bill for the world already placed in the tableau.
func (p *Player) completeSettle(piles Piles, chooser choice.Chooser, res *SettleResult) error {
	q := res.Quote
	switch q.Method {
	case capability.MethodFree:
		return nil

	case capability.MethodConquer:
		if q.Shortfall <= 0 {
			return nil
		}
		boosters, err := p.discardForMilitary(piles, chooser, res.Acquired)
		res.Boosters = boosters
		return err

	case capability.MethodPurchase:
		price := q.Price
		if len(q.Negators) > 0 {
			negated, err := p.offerNegation(piles, chooser, q)
			if err != nil {
				return err
			}
			if negated != nil {
				res.Negated = negated
				price = 0
			}
		}
		paid, err := p.payTradeCost(piles, chooser, price)
		res.Paid = paid
		return err

	case capability.MethodConvert:
		paid, err := p.payTradeCost(piles, chooser, q.Price)
		res.Paid = paid
		return err

	default:
		return fmt.Errorf("%w: unknown settle method %s", ErrInvariant, q.Method)
	}
}

// offerNegation lets the player discard a tableau card to pay nothing. The
// offer is mandatory when the hand cannot cover the price.
func (p *Player) offerNegation(piles Piles, chooser choice.Chooser, q capability.Quote) (*cards.Card, error) {
	options := make([]string, len(q.Negators))
	for i, n := range q.Negators {
		options[i] = n.Card.String()
	}

	var pick int
	if q.NegateRequired {
		idx, err := selectOne(chooser, "Choose a card to discard to pay nothing.", options)
		if err != nil {
			return nil, err
		}
		pick = idx
	} else {
		idx, ok, err := selectOptional(chooser, "Discard a card to pay nothing?", options, nil)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, nil
		}
		pick = idx
	}

	card := q.Negators[pick].Card
	if !p.removeFromTableau(card) {
		return nil, fmt.Errorf("%w: %s not in tableau", ErrInvariant, card.Name())
	}
	piles.Discard(card)
	return card, nil
}

// discardForMilitary discards tableau cards one at a time, as chosen, until
// military against world covers its cost. Military is recomputed from the
// remaining tableau after each discard, so standing bonuses lost with a
// discarded card are taken back. Only cards whose discard raises military
// are offered.
func (p *Player) discardForMilitary(piles Piles, chooser choice.Chooser, world *cards.Card) ([]*cards.Card, error) {
	need := world.Cost().Value()
	var discarded []*cards.Card
	bonus := 0
	for {
		caps := capability.Aggregate(p.tableauWithout(world), len(p.hand))
		military := caps.MilitaryAgainst(world) + bonus
		if military >= need {
			return discarded, nil
		}

		var offers []capability.DiscardForMilitary
		for _, o := range caps.SettleDiscardableForMilitary {
			if o.Gain(world) > 0 {
				offers = append(offers, o)
			}
		}
		if len(offers) == 0 {
			return discarded, fmt.Errorf("%w: military shortfall %d uncovered", ErrInvariant, need-military)
		}
		options := make([]string, len(offers))
		for i, o := range offers {
			options[i] = fmt.Sprintf("%s (+%d military)", o.Card.Name(), o.Gain(world))
		}

		prompt := fmt.Sprintf("Choose a card to discard for military (%d more needed).", need-military)
		idx, err := selectOne(chooser, prompt, options)
		if err != nil {
			return discarded, err
		}

		offer := offers[idx]
		if !p.removeFromTableau(offer.Card) {
			return discarded, fmt.Errorf("%w: %s not in tableau", ErrInvariant, offer.Card.Name())
		}
		piles.Discard(offer.Card)
		discarded = append(discarded, offer.Card)
		bonus += offer.Bonus
	}
}
