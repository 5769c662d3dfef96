package cards

import "fmt"

// Good is a commodity category a world may produce.
// GoodNone is the sentinel for "produces no good" and is a valid map key.
type Good int

const (
	GoodNone Good = iota
	GoodNovelty
	GoodRareElements
	GoodGenes
	GoodAlienTechnology
)

var goodNames = map[Good]string{
	GoodNone:            "None",
	GoodNovelty:         "Novelty",
	GoodRareElements:    "RareElements",
	GoodGenes:           "Genes",
	GoodAlienTechnology: "AlienTechnology",
}

func (g Good) String() string {
	if name, ok := goodNames[g]; ok {
		return name
	}
	return fmt.Sprintf("Good(%d)", int(g))
}

// Goods returns every real good in declaration order.
func Goods() []Good {
	return []Good{GoodNovelty, GoodRareElements, GoodGenes, GoodAlienTechnology}
}

// GoodKeys returns GoodNone followed by every real good.
// Use it to build maps keyed by good-or-none.
func GoodKeys() []Good {
	return append([]Good{GoodNone}, Goods()...)
}

// Attribute is a tag carried by a card.
type Attribute int

const (
	AttributeAlien Attribute = iota
	AttributeImperium
	AttributeRebel
	AttributeStarter
	AttributeUplift
)

var attributeNames = map[Attribute]string{
	AttributeAlien:    "Alien",
	AttributeImperium: "Imperium",
	AttributeRebel:    "Rebel",
	AttributeStarter:  "Starter",
	AttributeUplift:   "Uplift",
}

func (a Attribute) String() string {
	if name, ok := attributeNames[a]; ok {
		return name
	}
	return fmt.Sprintf("Attribute(%d)", int(a))
}

// Attributes returns every attribute in declaration order.
func Attributes() []Attribute {
	return []Attribute{
		AttributeAlien,
		AttributeImperium,
		AttributeRebel,
		AttributeStarter,
		AttributeUplift,
	}
}

// CardType distinguishes worlds from developments.
type CardType int

const (
	TypeWorld CardType = iota
	TypeDevelopment
)

func (t CardType) String() string {
	switch t {
	case TypeWorld:
		return "World"
	case TypeDevelopment:
		return "Development"
	default:
		return fmt.Sprintf("CardType(%d)", int(t))
	}
}

// ProductionKind describes how a world yields its good.
type ProductionKind int

const (
	Windfall ProductionKind = iota
	Produces
)

func (p ProductionKind) String() string {
	switch p {
	case Windfall:
		return "Windfall"
	case Produces:
		return "Produces"
	default:
		return fmt.Sprintf("ProductionKind(%d)", int(p))
	}
}

// Production pairs a production kind with the good produced.
type Production struct {
	Kind ProductionKind
	Good Good
}

func (p Production) String() string {
	return fmt.Sprintf("%s: %s", p.Kind, p.Good)
}

// PointsKind identifies a victory point rule. Scoring is not evaluated by the
// engine; rules are carried for display.
type PointsKind int

const (
	PointsSimple PointsKind = iota
	PointsTableauConditions
	PointsMilitary
	PointsPerVPChip
)

// Points is one victory point rule on a card.
type Points struct {
	Kind       PointsKind
	Value      int
	Conditions []string
}

// SimplePoints returns a flat victory point rule.
func SimplePoints(n int) Points {
	return Points{Kind: PointsSimple, Value: n}
}
