package capability

import (
	"sort"

	"github.com/thraizz/tableau-server-go/internal/game/cards"
)

// Aggregate folds every power of every tableau card into a Capabilities
// record for a hand of handSize cards.
//
// All updates are sums or flag sets, so the result does not depend on the
// order of the tableau. The two discard lists are sorted before returning for
// the same reason. A card offers at most one discard-for-military entry, with
// the bonuses of all its discard powers summed, since it can only be
// discarded once.
func Aggregate(tableau []*cards.Card, handSize int) Capabilities {
	caps := Baseline(handSize)
	for _, card := range tableau {
		if card == nil {
			continue
		}
		first := len(caps.SettleDiscardableForMilitary)
		for _, power := range card.Powers() {
			caps.apply(card, power)
		}
		caps.mergeDiscardsFrom(first)
	}

	sort.SliceStable(caps.SettleDiscardableForMilitary, func(i, j int) bool {
		a, b := caps.SettleDiscardableForMilitary[i], caps.SettleDiscardableForMilitary[j]
		if a.Card.Name() != b.Card.Name() {
			return a.Card.Name() < b.Card.Name()
		}
		return a.Bonus < b.Bonus
	})
	sort.SliceStable(caps.SettleDiscardableToNegateTrade, func(i, j int) bool {
		a, b := caps.SettleDiscardableToNegateTrade[i], caps.SettleDiscardableToNegateTrade[j]
		if a.Card.Name() != b.Card.Name() {
			return a.Card.Name() < b.Card.Name()
		}
		return a.Good < b.Good
	})

	return caps
}

// mergeDiscardsFrom folds the discard-for-military entries appended since
// index first into a single entry.
func (c *Capabilities) mergeDiscardsFrom(first int) {
	added := c.SettleDiscardableForMilitary[first:]
	if len(added) < 2 {
		return
	}
	merged := added[0]
	for _, d := range added[1:] {
		merged.Bonus += d.Bonus
	}
	c.SettleDiscardableForMilitary = append(c.SettleDiscardableForMilitary[:first], merged)
}

// apply performs the single update a power contributes. It reports false for
// a power kind it does not know.
func (c *Capabilities) apply(owner *cards.Card, p cards.Power) bool {
	switch p.Kind {
	case cards.PowerExploreSeeBonus:
		c.ExploreToSee += p.Amount
	case cards.PowerExploreKeepBonus:
		c.ExploreToKeep += p.Amount
	case cards.PowerDevelopDiscount:
		c.DevelopTradePower += p.Amount
		c.DevelopTradeDiscount += p.Amount
	case cards.PowerDevelopDraw:
		c.DevelopDrawBefore += p.Amount
	case cards.PowerSettleTradeDiscount:
		c.SettleTradePower += p.Amount
		c.SettleTradeDiscount += p.Amount
	case cards.PowerSettleMilitaryBonus:
		c.SettleMilitaryPower += p.Amount
	case cards.PowerSettleDiscountIfGood:
		c.SettleGoodDiscounts[p.Good] += p.Amount
	case cards.PowerSettleMilitaryIfGood:
		c.SettleGoodMilitary[p.Good] += p.Amount
	case cards.PowerSettleMilitaryIfAttribute:
		c.SettleAttrMilitary[p.Attribute] += p.Amount
	case cards.PowerSettleMilitaryAsTradeWithDiscount:
		c.SettleCanConvertMilitaryToTrade = true
		c.ConversionDiscount += p.Amount
	case cards.PowerSettleDiscardForMilitary:
		c.SettleDiscardableForMilitary = append(c.SettleDiscardableForMilitary,
			DiscardForMilitary{Card: owner, Bonus: p.Amount})
	case cards.PowerSettleDiscardToNegateTradeIfGood:
		c.SettleDiscardableToNegateTrade = append(c.SettleDiscardableToNegateTrade,
			DiscardToNegateTrade{Card: owner, Good: p.Good})
	default:
		return false
	}
	return true
}
