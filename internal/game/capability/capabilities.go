package capability

import (
	"github.com/thraizz/tableau-server-go/internal/game/cards"
)

// Baseline values before any tableau power is applied.
const (
	BaseExploreToSee  = 2
	BaseExploreToKeep = 1
)

// DiscardForMilitary is a tableau card that may be discarded for temporary
// military during one settle.
type DiscardForMilitary struct {
	Card  *cards.Card
	Bonus int
}

// Gain returns the military that discarding d adds against world: its bonus
// less the standing military the card stops contributing once it leaves the
// tableau. The result may be zero or negative.
func (d DiscardForMilitary) Gain(world *cards.Card) int {
	return d.Bonus - Aggregate([]*cards.Card{d.Card}, 0).MilitaryAgainst(world)
}

// DiscardToNegateTrade is a tableau card that may be discarded to pay nothing
// for a trade world producing Good. GoodNone matches every trade world.
type DiscardToNegateTrade struct {
	Card *cards.Card
	Good cards.Good
}

// Matches reports whether the negation applies to world.
func (d DiscardToNegateTrade) Matches(world *cards.Card) bool {
	if !world.Cost().IsTrade() {
		return false
	}
	return d.Good == cards.GoodNone || d.Good == world.GoodKey()
}

// Capabilities is the resolved summary of a tableau's powers for one phase
// decision. It is never cached; recompute it before each decision.
type Capabilities struct {
	ExploreToSee  int
	ExploreToKeep int

	DevelopTradePower    int
	DevelopTradeDiscount int
	DevelopDrawBefore    int

	SettleTradePower    int
	SettleTradeDiscount int
	SettleMilitaryPower int

	// Dense maps: every key from cards.GoodKeys() / cards.Attributes() is present.
	SettleGoodDiscounts map[cards.Good]int
	SettleGoodMilitary  map[cards.Good]int
	SettleAttrMilitary  map[cards.Attribute]int

	SettleCanConvertMilitaryToTrade bool
	ConversionDiscount              int

	SettleDiscardableForMilitary   []DiscardForMilitary
	SettleDiscardableToNegateTrade []DiscardToNegateTrade
}

// Baseline returns the capabilities of an empty tableau for a hand of
// handSize cards. The card being acquired counts against the hand, hence the
// trade power of handSize-1.
func Baseline(handSize int) Capabilities {
	caps := Capabilities{
		ExploreToSee:        BaseExploreToSee,
		ExploreToKeep:       BaseExploreToKeep,
		DevelopTradePower:   handSize - 1,
		SettleTradePower:    handSize - 1,
		SettleGoodDiscounts: make(map[cards.Good]int, len(cards.GoodKeys())),
		SettleGoodMilitary:  make(map[cards.Good]int, len(cards.GoodKeys())),
		SettleAttrMilitary:  make(map[cards.Attribute]int, len(cards.Attributes())),
	}
	for _, g := range cards.GoodKeys() {
		caps.SettleGoodDiscounts[g] = 0
		caps.SettleGoodMilitary[g] = 0
	}
	for _, a := range cards.Attributes() {
		caps.SettleAttrMilitary[a] = 0
	}
	return caps
}

// MilitaryAgainst returns the military strength that applies to world,
// including the bonuses keyed on its good and attributes. Temporary military
// from discardable cards is not included.
func (c Capabilities) MilitaryAgainst(world *cards.Card) int {
	military := c.SettleMilitaryPower + c.SettleGoodMilitary[world.GoodKey()]
	for _, attr := range world.Attributes() {
		military += c.SettleAttrMilitary[attr]
	}
	return military
}

// TradeDiscountFor returns the settle discount that applies to world,
// including the discount keyed on its good.
func (c Capabilities) TradeDiscountFor(world *cards.Card) int {
	return c.SettleTradeDiscount + c.SettleGoodDiscounts[world.GoodKey()]
}

// TemporaryMilitary returns the most military that discarding tableau cards
// can add against world. Cards whose discard would not raise military are
// left out.
func (c Capabilities) TemporaryMilitary(world *cards.Card) int {
	total := 0
	for _, d := range c.SettleDiscardableForMilitary {
		if g := d.Gain(world); g > 0 {
			total += g
		}
	}
	return total
}

// NegatorsFor returns the discardable cards that can negate world's trade cost.
func (c Capabilities) NegatorsFor(world *cards.Card) []DiscardToNegateTrade {
	var out []DiscardToNegateTrade
	for _, d := range c.SettleDiscardableToNegateTrade {
		if d.Matches(world) {
			out = append(out, d)
		}
	}
	return out
}
