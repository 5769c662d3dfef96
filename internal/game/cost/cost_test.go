package cost

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestConstructors(t *testing.T) {
	tests := []struct {
		name  string
		cost  Cost
		kind  Kind
		value int
		str   string
	}{
		{"free", Free(), KindFree, 0, "free"},
		{"zero value", Cost{}, KindFree, 0, "free"},
		{"trade", Trade(2), KindTrade, 2, "2 trade"},
		{"military", Military(3), KindMilitary, 3, "3 military"},
		{"negative trade clamps", Trade(-4), KindTrade, 0, "0 trade"},
		{"negative military clamps", Military(-1), KindMilitary, 0, "0 military"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.kind, tt.cost.Kind())
			assert.Equal(t, tt.value, tt.cost.Value())
			assert.Equal(t, tt.str, tt.cost.String())
		})
	}
}

func TestCompareScalar(t *testing.T) {
	tests := []struct {
		name string
		cost Cost
		k    int
		want Ordering
	}{
		{"free vs 0", Free(), 0, Equal},
		{"free vs 1", Free(), 1, Less},
		{"free vs -1", Free(), -1, Greater},
		{"trade below", Trade(2), 3, Less},
		{"trade equal", Trade(3), 3, Equal},
		{"trade above", Trade(4), 3, Greater},
		{"military ignores kind", Military(3), 3, Equal},
		{"military above", Military(3), 2, Greater},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cost.CompareScalar(tt.k))
		})
	}
}

func TestPartialCompare(t *testing.T) {
	tests := []struct {
		name   string
		a, b   Cost
		want   Ordering
		wantOK bool
	}{
		{"trade vs military incomparable", Trade(2), Military(2), 0, false},
		{"military vs trade incomparable", Military(0), Trade(5), 0, false},
		{"free equals free", Free(), Free(), Equal, true},
		{"free below trade zero", Free(), Trade(0), Less, true},
		{"free below military zero", Free(), Military(0), Less, true},
		{"trade zero above free", Trade(0), Free(), Greater, true},
		{"trade ordering", Trade(1), Trade(4), Less, true},
		{"trade equal", Trade(4), Trade(4), Equal, true},
		{"military ordering", Military(6), Military(2), Greater, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := tt.a.PartialCompare(tt.b)
			assert.Equal(t, tt.wantOK, ok)
			if ok {
				assert.Equal(t, tt.want, got)
			}
		})
	}
}

func TestFreeIsDistinctFromZeroTrade(t *testing.T) {
	ord, ok := Free().PartialCompare(Trade(0))
	assert.True(t, ok)
	assert.NotEqual(t, Equal, ord, "Free and Trade(0) are different kinds")
	assert.NotEqual(t, Free(), Trade(0))

	// Against a scalar both behave as zero.
	assert.Equal(t, Free().CompareScalar(0), Trade(0).CompareScalar(0))
}

func TestAffordableWith(t *testing.T) {
	assert.True(t, Free().AffordableWith(0))
	assert.False(t, Free().AffordableWith(-1))
	assert.True(t, Trade(3).AffordableWith(3))
	assert.False(t, Trade(3).AffordableWith(2))
	assert.True(t, Military(3).AffordableWith(5))
}

func TestDiscounted(t *testing.T) {
	assert.Equal(t, 0, Free().Discounted(0))
	assert.Equal(t, 0, Free().Discounted(-2))
	assert.Equal(t, 1, Trade(3).Discounted(2))
	assert.Equal(t, 0, Trade(2).Discounted(5))
	assert.Equal(t, 4, Military(4).Discounted(0))
}
