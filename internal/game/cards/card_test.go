package cards

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/thraizz/tableau-server-go/internal/game/cost"
)

func TestCardString(t *testing.T) {
	tests := []struct {
		name string
		card *Card
		want string
	}{
		{
			name: "military world with windfall",
			card: New("Alien Robot Sentry").MilitaryCost(2).VictoryPoints(2).
				Produces(Windfall, GoodAlienTechnology).Build(),
			want: "Alien Robot Sentry (World - 2 military) {2 VPs} Windfall: AlienTechnology",
		},
		{
			name: "free world",
			card: New("Old Earth").VictoryPoints(1).AddPower(SettleTradeDiscount(1)).Build(),
			want: "Old Earth (World - free) {1 VPs} SettleTradeDiscount(1)",
		},
		{
			name: "development with complex points",
			card: New("Galactic Renaissance").Development().TradeCost(6).
				AddPoints(Points{Kind: PointsPerVPChip, Value: 3}).
				AddPower(ExploreSeeBonus(2)).AddPower(ExploreKeepBonus(1)).Build(),
			want: "Galactic Renaissance <Development - 6 trade> {?? VPs} ExploreSeeBonus(2) ExploreKeepBonus(1)",
		},
		{
			name: "keyed powers",
			card: New("Mining Robots").Development().TradeCost(2).
				AddPower(SettleDiscountIfGood(1, GoodRareElements)).
				AddPower(SettleMilitaryIfAttribute(2, AttributeRebel)).
				AddPower(SettleDiscardToNegateTradeIfGood(GoodNone)).Build(),
			want: "Mining Robots <Development - 2 trade> SettleDiscountIfGood(1, RareElements) " +
				"SettleMilitaryIfAttribute(2, Rebel) SettleDiscardToNegateTradeIfGood(None)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.card.String())
			assert.Equal(t, tt.card.String(), tt.card.String(), "display must be deterministic")
		})
	}
}

func TestCardAccessors(t *testing.T) {
	c := New("Avian Uplift Race").MilitaryCost(2).Produces(Windfall, GoodGenes).
		AddAttribute(AttributeUplift).Build()

	assert.True(t, c.IsWorld())
	assert.False(t, c.IsDevelopment())
	assert.Equal(t, cost.Military(2), c.Cost())
	assert.Equal(t, GoodGenes, c.GoodKey())
	assert.True(t, c.HasAttribute(AttributeUplift))
	assert.False(t, c.HasAttribute(AttributeRebel))

	prod, ok := c.Production()
	require.True(t, ok)
	assert.Equal(t, Windfall, prod.Kind)

	bare := New("Rebel Base").MilitaryCost(6).Build()
	assert.Equal(t, GoodNone, bare.GoodKey())
	_, ok = bare.Production()
	assert.False(t, ok)
}

func TestCardSlicesAreCopies(t *testing.T) {
	c := New("Space Marines").Development().TradeCost(2).AddPower(SettleMilitaryBonus(2)).Build()

	powers := c.Powers()
	powers[0] = ExploreSeeBonus(9)

	assert.Equal(t, SettleMilitaryBonus(2), c.Powers()[0])
}

func TestEnumerations(t *testing.T) {
	assert.Len(t, Goods(), 4)
	assert.NotContains(t, Goods(), GoodNone)
	assert.Equal(t, GoodNone, GoodKeys()[0])
	assert.Len(t, GoodKeys(), 5)
	assert.Len(t, Attributes(), 5)
	assert.Len(t, PowerKinds(), 12)

	for _, k := range PowerKinds() {
		assert.NotContains(t, k.String(), "PowerKind(", "power kind %d has no name", int(k))
	}
}
