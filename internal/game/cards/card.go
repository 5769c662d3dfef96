package cards

import (
	"fmt"
	"slices"
	"strings"

	"github.com/thraizz/tableau-server-go/internal/game/cost"
)

// Card is an immutable card definition. Cards are shared by pointer from the
// catalog; nothing in the engine mutates them.
type Card struct {
	name       string
	cardType   CardType
	cost       cost.Cost
	points     []Points
	production *Production
	powers     []Power
	attributes []Attribute
}

func (c *Card) Name() string { return c.name }
func (c *Card) Type() CardType { return c.cardType }
func (c *Card) Cost() cost.Cost { return c.cost }
func (c *Card) IsWorld() bool { return c.cardType == TypeWorld }
func (c *Card) IsDevelopment() bool { return c.cardType == TypeDevelopment }
func (c *Card) Points() []Points { return slices.Clone(c.points) }
func (c *Card) Powers() []Power { return slices.Clone(c.powers) }
func (c *Card) Attributes() []Attribute { return slices.Clone(c.attributes) }

// Production returns the card's production, if any.
func (c *Card) Production() (Production, bool) {
	if c.production == nil {
		return Production{}, false
	}
	return *c.production, true
}

// GoodKey returns the produced good, or GoodNone for cards without production.
func (c *Card) GoodKey() Good {
	if c.production == nil {
		return GoodNone
	}
	return c.production.Good
}

// HasAttribute reports whether the card carries attr.
func (c *Card) HasAttribute(attr Attribute) bool {
	return slices.Contains(c.attributes, attr)
}

// String renders the single-line summary shown to choosers, e.g.
// "Alien Robot Sentry (World - 2 military) {2 VPs} Windfall: AlienTechnology".
// Development cards use angle brackets.
func (c *Card) String() string {
	parts := []string{c.name}

	left, right := "(", ")"
	if c.cardType == TypeDevelopment {
		left, right = "<", ">"
	}
	parts = append(parts, fmt.Sprintf("%s%s - %s%s", left, c.cardType, c.cost, right))

	hasComplex := false
	for _, p := range c.points {
		if p.Kind == PointsSimple {
			parts = append(parts, fmt.Sprintf("{%d VPs}", p.Value))
		} else {
			hasComplex = true
		}
	}
	if hasComplex {
		parts = append(parts, "{?? VPs}")
	}

	if c.production != nil {
		parts = append(parts, c.production.String())
	}

	for _, power := range c.powers {
		parts = append(parts, power.String())
	}

	return strings.Join(parts, " ")
}

// Builder provides a fluent API for defining catalog cards.
type Builder struct {
	card Card
}

// New starts a World card definition with a free cost.
func New(name string) *Builder {
	return &Builder{card: Card{name: name, cardType: TypeWorld}}
}

func (b *Builder) World() *Builder {
	b.card.cardType = TypeWorld
	return b
}

func (b *Builder) Development() *Builder {
	b.card.cardType = TypeDevelopment
	return b
}

func (b *Builder) TradeCost(n int) *Builder {
	b.card.cost = cost.Trade(n)
	return b
}

func (b *Builder) MilitaryCost(n int) *Builder {
	b.card.cost = cost.Military(n)
	return b
}

func (b *Builder) VictoryPoints(n int) *Builder {
	b.card.points = append(b.card.points, SimplePoints(n))
	return b
}

func (b *Builder) AddPoints(p Points) *Builder {
	b.card.points = append(b.card.points, p)
	return b
}

func (b *Builder) Produces(kind ProductionKind, good Good) *Builder {
	b.card.production = &Production{Kind: kind, Good: good}
	return b
}

func (b *Builder) AddPower(p Power) *Builder {
	b.card.powers = append(b.card.powers, p)
	return b
}

func (b *Builder) AddAttribute(a Attribute) *Builder {
	b.card.attributes = append(b.card.attributes, a)
	return b
}

// Build returns the finished card. The builder must not be reused.
func (b *Builder) Build() *Card {
	c := b.card
	return &c
}
