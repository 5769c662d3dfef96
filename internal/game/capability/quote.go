package capability

import (
	"errors"
	"fmt"

	"github.com/thraizz/tableau-server-go/internal/game/cards"
	"github.com/thraizz/tableau-server-go/internal/game/cost"
)

// ErrMilitaryDevelopment is returned when a development carries a military
// cost. Developments are defined to cost trade or nothing.
var ErrMilitaryDevelopment = errors.New("development with military cost")

// Method is how a card would be acquired.
type Method int

const (
	MethodFree Method = iota
	MethodPurchase
	MethodConquer
	MethodConvert
)

var methodNames = map[Method]string{
	MethodFree:     "FREE",
	MethodPurchase: "PURCHASE",
	MethodConquer:  "CONQUER",
	MethodConvert:  "CONVERT",
}

func (m Method) String() string {
	if name, ok := methodNames[m]; ok {
		return name
	}
	return fmt.Sprintf("METHOD_%d", int(m))
}

// Quote applies capabilities to one specific card.
type Quote struct {
	Card       *cards.Card
	Method     Method
	Affordable bool

	// Power is the trade or military power the cost was compared against.
	Power int
	// Price is the number of hand cards to discard for Purchase/Convert.
	Price int

	// Shortfall is the military that must come from discarding tableau cards,
	// measured against the military standing before any discard.
	Shortfall int

	// Negators can be discarded to pay nothing for a trade world.
	// NegateRequired is set when the hand cannot cover Price on its own.
	Negators       []DiscardToNegateTrade
	NegateRequired bool
}

// DevelopQuote prices a development for the develop phase.
func (c Capabilities) DevelopQuote(card *cards.Card) (Quote, error) {
	q := Quote{Card: card}
	switch price := card.Cost(); price.Kind() {
	case cost.KindFree:
		q.Method = MethodFree
		q.Affordable = true
	case cost.KindTrade:
		q.Method = MethodPurchase
		q.Power = c.DevelopTradePower
		q.Affordable = price.AffordableWith(c.DevelopTradePower)
		q.Price = price.Discounted(c.DevelopTradeDiscount)
	default:
		return Quote{}, fmt.Errorf("%w: %s costs %s", ErrMilitaryDevelopment, card.Name(), price)
	}
	return q, nil
}

// SettleQuote prices a world for the settle phase. Every cost is compared
// only against the power of its own economy; the good and attribute bonuses
// that match the world are applied first.
func (c Capabilities) SettleQuote(card *cards.Card) Quote {
	q := Quote{Card: card}
	price := card.Cost()

	switch price.Kind() {
	case cost.KindFree:
		q.Method = MethodFree
		q.Affordable = true

	case cost.KindTrade:
		goodDiscount := c.SettleGoodDiscounts[card.GoodKey()]
		q.Method = MethodPurchase
		q.Power = c.SettleTradePower + goodDiscount
		q.Price = price.Discounted(c.SettleTradeDiscount + goodDiscount)
		q.Affordable = price.AffordableWith(q.Power)
		q.Negators = c.NegatorsFor(card)
		if !q.Affordable && len(q.Negators) > 0 {
			q.Affordable = true
			q.NegateRequired = true
		}

	case cost.KindMilitary:
		military := c.MilitaryAgainst(card)
		q.Method = MethodConquer
		q.Power = military
		switch {
		case price.AffordableWith(military):
			q.Affordable = true
		case price.AffordableWith(military + c.TemporaryMilitary(card)):
			q.Affordable = true
			q.Shortfall = price.Value() - military
		case c.SettleCanConvertMilitaryToTrade:
			return c.conversionQuote(card)
		}
	}

	return q
}

// conversionQuote prices a military world paid for with trade. The world's
// military cost is restated as a trade cost of the same magnitude before any
// comparison against trade power.
func (c Capabilities) conversionQuote(card *cards.Card) Quote {
	converted := cost.Trade(card.Cost().Value())
	discount := c.ConversionDiscount + c.SettleGoodDiscounts[card.GoodKey()]
	q := Quote{
		Card:   card,
		Method: MethodConvert,
		Power:  c.SettleTradePower + discount,
		Price:  converted.Discounted(c.SettleTradeDiscount + discount),
	}
	q.Affordable = converted.AffordableWith(q.Power)
	return q
}
