package cards

import "fmt"

// PowerKind enumerates every power a card can grant.
type PowerKind int

const (
	PowerExploreSeeBonus PowerKind = iota
	PowerExploreKeepBonus
	PowerDevelopDiscount
	PowerDevelopDraw
	PowerSettleTradeDiscount
	PowerSettleMilitaryBonus
	PowerSettleDiscountIfGood
	PowerSettleMilitaryIfGood
	PowerSettleMilitaryIfAttribute
	PowerSettleMilitaryAsTradeWithDiscount
	PowerSettleDiscardForMilitary
	PowerSettleDiscardToNegateTradeIfGood

	numPowerKinds
)

var powerKindNames = map[PowerKind]string{
	PowerExploreSeeBonus:                   "ExploreSeeBonus",
	PowerExploreKeepBonus:                  "ExploreKeepBonus",
	PowerDevelopDiscount:                   "DevelopDiscount",
	PowerDevelopDraw:                       "DevelopDraw",
	PowerSettleTradeDiscount:               "SettleTradeDiscount",
	PowerSettleMilitaryBonus:               "SettleMilitaryBonus",
	PowerSettleDiscountIfGood:              "SettleDiscountIfGood",
	PowerSettleMilitaryIfGood:              "SettleMilitaryIfGood",
	PowerSettleMilitaryIfAttribute:         "SettleMilitaryIfAttribute",
	PowerSettleMilitaryAsTradeWithDiscount: "SettleMilitaryAsTradeWithDiscount",
	PowerSettleDiscardForMilitary:          "SettleDiscardForMilitary",
	PowerSettleDiscardToNegateTradeIfGood:  "SettleDiscardToNegateTradeIfGood",
}

func (k PowerKind) String() string {
	if name, ok := powerKindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("PowerKind(%d)", int(k))
}

// PowerKinds returns every declared power kind.
func PowerKinds() []PowerKind {
	kinds := make([]PowerKind, 0, numPowerKinds)
	for k := PowerKind(0); k < numPowerKinds; k++ {
		kinds = append(kinds, k)
	}
	return kinds
}

// Power is one instruction a card contributes while in a tableau.
// Good and Attribute are only meaningful for the kinds keyed on them.
type Power struct {
	Kind      PowerKind
	Amount    int
	Good      Good
	Attribute Attribute
}

func ExploreSeeBonus(n int) Power { return Power{Kind: PowerExploreSeeBonus, Amount: n} }
func ExploreKeepBonus(n int) Power { return Power{Kind: PowerExploreKeepBonus, Amount: n} }
func DevelopDiscount(n int) Power { return Power{Kind: PowerDevelopDiscount, Amount: n} }
func DevelopDraw(n int) Power { return Power{Kind: PowerDevelopDraw, Amount: n} }

func SettleTradeDiscount(n int) Power { return Power{Kind: PowerSettleTradeDiscount, Amount: n} }
func SettleMilitaryBonus(n int) Power { return Power{Kind: PowerSettleMilitaryBonus, Amount: n} }

func SettleDiscountIfGood(n int, g Good) Power {
	return Power{Kind: PowerSettleDiscountIfGood, Amount: n, Good: g}
}

func SettleMilitaryIfGood(n int, g Good) Power {
	return Power{Kind: PowerSettleMilitaryIfGood, Amount: n, Good: g}
}

func SettleMilitaryIfAttribute(n int, a Attribute) Power {
	return Power{Kind: PowerSettleMilitaryIfAttribute, Amount: n, Attribute: a}
}

func SettleMilitaryAsTradeWithDiscount(n int) Power {
	return Power{Kind: PowerSettleMilitaryAsTradeWithDiscount, Amount: n}
}

func SettleDiscardForMilitary(n int) Power {
	return Power{Kind: PowerSettleDiscardForMilitary, Amount: n}
}

// SettleDiscardToNegateTradeIfGood lets the owner discard the card to pay
// nothing for a trade world producing g. GoodNone places no restriction.
func SettleDiscardToNegateTradeIfGood(g Good) Power {
	return Power{Kind: PowerSettleDiscardToNegateTradeIfGood, Good: g}
}

// String renders the power as Name(args), e.g. "SettleDiscountIfGood(1, Genes)".
func (p Power) String() string {
	switch p.Kind {
	case PowerSettleDiscountIfGood, PowerSettleMilitaryIfGood:
		return fmt.Sprintf("%s(%d, %s)", p.Kind, p.Amount, p.Good)
	case PowerSettleMilitaryIfAttribute:
		return fmt.Sprintf("%s(%d, %s)", p.Kind, p.Amount, p.Attribute)
	case PowerSettleDiscardToNegateTradeIfGood:
		return fmt.Sprintf("%s(%s)", p.Kind, p.Good)
	default:
		return fmt.Sprintf("%s(%d)", p.Kind, p.Amount)
	}
}
