package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHand(t *testing.T) {
	t.Parallel()
	h, err := ParseHand("KdAh")
	require.NoError(t, err)
	assert.Equal(t, "AhKd", h.String())
	assert.Equal(t, Ace, h.High().Rank())
	assert.Equal(t, King, h.Low().Rank())
	assert.False(t, h.IsPair())
	assert.False(t, h.IsSuited())
	assert.True(t, h.Equal(MustParseHand("AhKd")))

	_, err = ParseHand("AhAh")
	require.ErrorIs(t, err, ErrDuplicateCard)

	_, err = ParseHand("AhKdQc")
	require.ErrorIs(t, err, ErrInvalidHandSize)
}

func TestBoard(t *testing.T) {
	t.Parallel()
	var b Board
	assert.Equal(t, Preflop, b.Street())

	require.NoError(t, b.Add(MustParseCards("Td7s8h")...))
	assert.Equal(t, Flop, b.Street())
	assert.Equal(t, 3, b.Len())

	err := b.Add(MustParseCard("7s"))
	require.ErrorIs(t, err, ErrDuplicateCard)
	assert.Equal(t, 3, b.Len(), "failed add must not change the board")

	require.NoError(t, b.Add(MustParseCard("2c")))
	assert.Equal(t, Turn, b.Street())
	require.NoError(t, b.Add(MustParseCard("3c")))
	assert.Equal(t, River, b.Street())
	assert.Equal(t, "Td7s8h2c3c", b.String())

	require.ErrorIs(t, b.Add(MustParseCard("4c")), ErrBoardFull)

	b.Reset()
	assert.Equal(t, 0, b.Len())
}

func TestParseBoard(t *testing.T) {
	t.Parallel()
	_, err := ParseBoard("AhKhQhJhTh9h")
	require.ErrorIs(t, err, ErrBoardFull)

	b, err := ParseBoard("")
	require.NoError(t, err)
	assert.Empty(t, b.Cards())
}
