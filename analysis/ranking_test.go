package analysis

import (
	"testing"

	"github.com/lox/holdem-equity/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRankedClassesCoverEveryClass(t *testing.T) {
	t.Parallel()
	seen := make(map[string]bool)
	pairs, suited, offsuit := 0, 0, 0
	for _, n := range RankedClasses() {
		c, err := ParseClass(n)
		require.NoError(t, err, n)
		require.Equal(t, n, c.String(), "table entries are canonical")
		require.False(t, seen[n], "duplicate %s", n)
		seen[n] = true
		switch {
		case c.IsPair():
			pairs++
		case c.Suited:
			suited++
		default:
			offsuit++
		}
	}
	assert.Equal(t, 13, pairs)
	assert.Equal(t, 78, suited)
	assert.Equal(t, 78, offsuit)
}

func TestTopByPercent(t *testing.T) {
	t.Parallel()
	assert.Empty(t, TopByPercent(0))
	assert.Empty(t, TopByPercent(-5))
	assert.Len(t, TopByPercent(100), 169)
	assert.Len(t, TopByPercent(250), 169)
	assert.Equal(t, []string{"AA"}, TopByPercent(0.1))
	assert.Len(t, TopByPercent(10), 17) // ceil(16.9)
	assert.Len(t, TopByPercent(50), 85) // ceil(84.5)

	top := TopByPercent(5)
	assert.Equal(t, []string{"AA", "KK", "QQ", "AKs", "JJ", "AQs", "KQs", "AJs", "KJs"}, top)
}

func TestMaskForPercent(t *testing.T) {
	t.Parallel()
	full := MaskForPercent(100)
	assert.Equal(t, 169, full.Count())
	for row := 0; row < 13; row++ {
		for col := 0; col < 13; col++ {
			assert.True(t, full.Contains(GridClass(row, col)))
		}
	}

	empty := MaskForPercent(0)
	assert.Equal(t, 0, empty.Count())
	for row := 0; row < 13; row++ {
		for col := 0; col < 13; col++ {
			assert.False(t, empty.Contains(GridClass(row, col)))
		}
	}

	m := MaskForPercent(5)
	assert.Equal(t, 9, m.Count())
	aa := Class{High: poker.Ace, Low: poker.Ace}
	assert.True(t, m[aa.High-poker.Two][aa.Low-poker.Two][0], "pairs mark the offsuit layer")
	assert.True(t, m[aa.High-poker.Two][aa.Low-poker.Two][1], "pairs mark the suited layer")
	assert.True(t, m.Contains(Class{High: poker.Ace, Low: poker.King, Suited: true}))
	assert.False(t, m.Contains(Class{High: poker.Ace, Low: poker.King}), "AKo is outside the top 5%")
}

func TestIsInTopPercent(t *testing.T) {
	t.Parallel()
	assert.True(t, IsInTopPercent(poker.MustParseHand("AhAd"), 1))
	assert.False(t, IsInTopPercent(poker.MustParseHand("AhAd"), 0))
	assert.True(t, IsInTopPercent(poker.MustParseHand("KhAh"), 5))
	assert.False(t, IsInTopPercent(poker.MustParseHand("KdAh"), 5))
	assert.True(t, IsInTopPercent(poker.MustParseHand("7h2c"), 100))
	assert.False(t, IsInTopPercent(poker.MustParseHand("7h2c"), 99))
}

func TestPositionAndPercentile(t *testing.T) {
	t.Parallel()
	i, ok := Position("AA")
	require.True(t, ok)
	assert.Equal(t, 0, i)

	i, ok = Position("72o")
	require.True(t, ok)
	assert.Equal(t, 168, i)

	_, ok = Position("AK")
	assert.False(t, ok)

	assert.InDelta(t, 1.0, Percentile(poker.MustParseHand("AsAc")), 1e-9)
	assert.InDelta(t, 0.0, Percentile(poker.MustParseHand("7s2c")), 1e-9)
	assert.Zero(t, Percentile(poker.Hand{}), "an unset hand is not a starting hand")
	assert.False(t, IsInTopPercent(poker.Hand{}, 100))
}

func TestGridClass(t *testing.T) {
	t.Parallel()
	assert.Equal(t, "AA", GridClass(0, 0).String())
	assert.Equal(t, "AKs", GridClass(0, 1).String())
	assert.Equal(t, "AKo", GridClass(1, 0).String())
	assert.Equal(t, "32s", GridClass(11, 12).String())
	assert.Equal(t, "22", GridClass(12, 12).String())
}
