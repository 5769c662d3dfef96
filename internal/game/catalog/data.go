package catalog

import (
	"github.com/thraizz/tableau-server-go/internal/game/cards"
)

func one(c *cards.Card) Entry { return Entry{Card: c, Copies: 1} }
func copies(n int, c *cards.Card) Entry { return Entry{Card: c, Copies: n} }

func defaultEntries() []Entry {
	return []Entry{
		// Start worlds
		one(cards.New("Old Earth").VictoryPoints(1).
			AddAttribute(cards.AttributeStarter).
			AddPower(cards.SettleTradeDiscount(1)).Build()),
		one(cards.New("Alpha Centauri").
			AddAttribute(cards.AttributeStarter).
			Produces(cards.Windfall, cards.GoodRareElements).
			AddPower(cards.SettleDiscountIfGood(1, cards.GoodRareElements)).
			AddPower(cards.SettleMilitaryIfGood(1, cards.GoodRareElements)).Build()),
		one(cards.New("Epsilon Eridani").VictoryPoints(1).
			AddAttribute(cards.AttributeStarter).
			AddAttribute(cards.AttributeRebel).
			AddPower(cards.SettleMilitaryBonus(1)).Build()),
		one(cards.New("New Sparta").VictoryPoints(1).
			AddAttribute(cards.AttributeStarter).
			AddPower(cards.SettleMilitaryBonus(2)).Build()),
		one(cards.New("Earth's Lost Colony").VictoryPoints(1).
			AddAttribute(cards.AttributeStarter).
			Produces(cards.Produces, cards.GoodNovelty).
			AddPower(cards.ExploreSeeBonus(1)).Build()),

		// Worlds
		one(cards.New("Alien Robot Sentry").MilitaryCost(2).VictoryPoints(2).
			Produces(cards.Windfall, cards.GoodAlienTechnology).
			AddAttribute(cards.AttributeAlien).Build()),
		one(cards.New("Aquatic Uplift Race").MilitaryCost(2).VictoryPoints(2).
			AddAttribute(cards.AttributeUplift).Build()),
		copies(2, cards.New("Asteroid Belt").TradeCost(2).VictoryPoints(1).
			Produces(cards.Windfall, cards.GoodRareElements).Build()),
		one(cards.New("Avian Uplift Race").MilitaryCost(2).VictoryPoints(2).
			Produces(cards.Windfall, cards.GoodGenes).
			AddAttribute(cards.AttributeUplift).Build()),
		one(cards.New("Deserted Alien Colony").TradeCost(5).VictoryPoints(4).
			Produces(cards.Windfall, cards.GoodAlienTechnology).
			AddAttribute(cards.AttributeAlien).Build()),
		one(cards.New("Deserted Alien Library").TradeCost(6).VictoryPoints(5).
			Produces(cards.Windfall, cards.GoodAlienTechnology).
			AddAttribute(cards.AttributeAlien).Build()),
		one(cards.New("Deserted Alien Outpost").TradeCost(4).VictoryPoints(3).
			Produces(cards.Windfall, cards.GoodAlienTechnology).
			AddAttribute(cards.AttributeAlien).Build()),
		copies(2, cards.New("Destroyed World").TradeCost(1).
			Produces(cards.Windfall, cards.GoodRareElements).Build()),
		one(cards.New("The Last of the Uplift Gnarssh").MilitaryCost(1).
			Produces(cards.Windfall, cards.GoodGenes).
			AddAttribute(cards.AttributeUplift).Build()),
		copies(2, cards.New("Pre-Sentient Race").TradeCost(2).VictoryPoints(1).
			Produces(cards.Windfall, cards.GoodGenes).Build()),
		copies(2, cards.New("Radioactive World").TradeCost(2).VictoryPoints(1).
			Produces(cards.Windfall, cards.GoodRareElements).Build()),
		one(cards.New("Rebel Base").MilitaryCost(6).VictoryPoints(6).
			AddAttribute(cards.AttributeRebel).Build()),
		copies(2, cards.New("Rebel Fuel Cache").MilitaryCost(1).VictoryPoints(1).
			Produces(cards.Windfall, cards.GoodRareElements).
			AddAttribute(cards.AttributeRebel).Build()),
		one(cards.New("Rebel Homeworld").MilitaryCost(7).VictoryPoints(7).
			AddAttribute(cards.AttributeRebel).Build()),
		one(cards.New("Reptile Uplift Race").MilitaryCost(2).VictoryPoints(2).
			Produces(cards.Windfall, cards.GoodGenes).
			AddAttribute(cards.AttributeUplift).Build()),
		copies(2, cards.New("Spice World").TradeCost(2).VictoryPoints(1).
			Produces(cards.Produces, cards.GoodNovelty).Build()),
		one(cards.New("Comet Zone").TradeCost(3).VictoryPoints(2).
			Produces(cards.Produces, cards.GoodRareElements).Build()),
		one(cards.New("Gene Factory").TradeCost(4).VictoryPoints(2).
			Produces(cards.Produces, cards.GoodGenes).Build()),
		one(cards.New("Alien Rosetta Stone World").TradeCost(3).VictoryPoints(2).
			AddAttribute(cards.AttributeAlien).
			AddPower(cards.SettleDiscountIfGood(2, cards.GoodAlienTechnology)).Build()),
		one(cards.New("Imperium Armaments World").MilitaryCost(4).VictoryPoints(2).
			Produces(cards.Windfall, cards.GoodRareElements).
			AddAttribute(cards.AttributeImperium).
			AddPower(cards.SettleMilitaryBonus(1)).Build()),
		one(cards.New("Space Port").TradeCost(2).VictoryPoints(1).
			AddPower(cards.SettleDiscountIfGood(2, cards.GoodNone)).Build()),
		one(cards.New("Rebel Warrior Race").MilitaryCost(3).VictoryPoints(2).
			Produces(cards.Windfall, cards.GoodGenes).
			AddAttribute(cards.AttributeRebel).
			AddPower(cards.SettleMilitaryBonus(1)).Build()),

		// Developments
		one(cards.New("Galactic Renaissance").Development().TradeCost(6).
			AddPoints(cards.Points{Kind: cards.PointsPerVPChip, Value: 3}).
			AddPoints(cards.Points{Kind: cards.PointsTableauConditions, Value: 3,
				Conditions: []string{"Named: Research Labs", "Named: Galactic Trendsetters", "Named: Artist Colony"}}).
			AddPower(cards.ExploreSeeBonus(2)).
			AddPower(cards.ExploreKeepBonus(1)).Build()),
		one(cards.New("Galactic Survey: SETI").Development().TradeCost(6).
			AddPoints(cards.Points{Kind: cards.PointsTableauConditions, Value: 1,
				Conditions: []string{"HasPhase: Explore", "CardType: World"}}).
			AddPower(cards.ExploreSeeBonus(2)).Build()),
		copies(2, cards.New("Investment Credits").Development().TradeCost(1).VictoryPoints(1).
			AddPower(cards.DevelopDiscount(1)).Build()),
		copies(2, cards.New("Public Works").Development().TradeCost(1).VictoryPoints(1).
			AddPower(cards.DevelopDraw(1)).Build()),
		copies(2, cards.New("Space Marines").Development().TradeCost(2).VictoryPoints(1).
			AddPower(cards.SettleMilitaryBonus(2)).Build()),
		one(cards.New("Drop Ships").Development().TradeCost(4).VictoryPoints(2).
			AddPower(cards.SettleMilitaryBonus(3)).Build()),
		copies(2, cards.New("Replicant Robots").Development().TradeCost(4).VictoryPoints(2).
			AddPower(cards.SettleTradeDiscount(2)).Build()),
		one(cards.New("Terraforming Robots").Development().TradeCost(3).VictoryPoints(2).
			AddPower(cards.SettleTradeDiscount(1)).Build()),
		copies(2, cards.New("Mining Robots").Development().TradeCost(2).VictoryPoints(1).
			AddPower(cards.SettleDiscountIfGood(1, cards.GoodRareElements)).
			AddPower(cards.SettleMilitaryIfGood(1, cards.GoodRareElements)).Build()),
		one(cards.New("Genetics Lab").Development().TradeCost(2).VictoryPoints(1).
			AddPower(cards.SettleDiscountIfGood(1, cards.GoodGenes)).
			AddPower(cards.ExploreSeeBonus(1)).Build()),
		one(cards.New("Alien Tech Institute").Development().TradeCost(6).
			AddPoints(cards.Points{Kind: cards.PointsTableauConditions, Value: 2,
				Conditions: []string{"Produces: AlienTechnology"}}).
			AddAttribute(cards.AttributeAlien).
			AddPower(cards.SettleDiscountIfGood(2, cards.GoodAlienTechnology)).
			AddPower(cards.SettleMilitaryIfGood(2, cards.GoodAlienTechnology)).Build()),
		one(cards.New("Galactic Imperium").Development().TradeCost(6).
			AddPoints(cards.Points{Kind: cards.PointsTableauConditions, Value: 2,
				Conditions: []string{"Attribute: Rebel", "CardType: World"}}).
			AddAttribute(cards.AttributeImperium).
			AddPower(cards.SettleMilitaryIfAttribute(4, cards.AttributeRebel)).Build()),
		one(cards.New("Uplift Code").Development().TradeCost(3).VictoryPoints(2).
			AddPower(cards.SettleMilitaryIfAttribute(2, cards.AttributeUplift)).Build()),
		copies(2, cards.New("Contact Specialist").Development().TradeCost(1).VictoryPoints(1).
			AddPower(cards.SettleMilitaryAsTradeWithDiscount(1)).Build()),
		copies(2, cards.New("New Military Tactics").Development().TradeCost(1).VictoryPoints(1).
			AddPower(cards.SettleDiscardForMilitary(3)).Build()),
		copies(2, cards.New("Colony Ship").Development().TradeCost(2).VictoryPoints(1).
			AddPower(cards.SettleDiscardToNegateTradeIfGood(cards.GoodNone)).Build()),
		one(cards.New("Genetic Engineering Station").Development().TradeCost(2).VictoryPoints(1).
			AddPower(cards.SettleDiscardToNegateTradeIfGood(cards.GoodGenes)).Build()),
		copies(2, cards.New("Expedition Force").Development().TradeCost(1).VictoryPoints(1).
			AddPower(cards.ExploreSeeBonus(1)).
			AddPower(cards.SettleMilitaryBonus(1)).Build()),
		one(cards.New("Military Discipline").Development().TradeCost(6).
			AddPoints(cards.Points{Kind: cards.PointsMilitary}).
			AddPower(cards.SettleMilitaryBonus(1)).Build()),
	}
}
