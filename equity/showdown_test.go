package equity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/holdem-equity/poker"
)

func TestShowdownOrdersPlayers(t *testing.T) {
	t.Parallel()
	players := []PlayerSpec{
		known(t, "pair", "QhQd"),
		known(t, "flush", "AhTh"),
		known(t, "straight", "9c8d"),
		known(t, "nothing", "3c2d"),
	}
	got, err := Showdown(players, poker.MustParseCards("Jh7h6s5h2c"))
	require.NoError(t, err)

	names := make([]string, len(got))
	places := make([]int, len(got))
	for i, s := range got {
		names[i] = s.Name
		places[i] = s.Place
	}
	assert.Equal(t, []string{"flush", "straight", "pair", "nothing"}, names)
	assert.Equal(t, []int{1, 2, 3, 4}, places)

	assert.Equal(t, poker.Flush, got[0].Best.Category)
	assert.Equal(t, "Flush, Ace high", got[0].Best.String())
	assert.ElementsMatch(t, poker.MustParseCards("AhJhTh7h5h"), got[0].Best.Cards[:])
	assert.Equal(t, poker.MustParseHand("AhTh"), got[0].Hand)
}

func TestShowdownGroupsTies(t *testing.T) {
	t.Parallel()
	players := []PlayerSpec{
		known(t, "c", "QhQd"),
		known(t, "a", "AcKd"),
		known(t, "b", "AdKc"),
	}
	got, err := Showdown(players, poker.MustParseCards("AsKh7c4d2s"))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, "a", got[0].Name)
	assert.Equal(t, "b", got[1].Name, "tied players keep their input order")
	assert.Equal(t, "c", got[2].Name)
	assert.Equal(t, []int{1, 1, 2}, []int{got[0].Place, got[1].Place, got[2].Place})
}

func TestShowdownErrors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name    string
		players []PlayerSpec
		board   string
		wantErr error
	}{
		{
			name:    "board not complete",
			players: []PlayerSpec{known(t, "a", "AhAd")},
			board:   "2c7d9h",
			wantErr: poker.ErrInvalidHandSize,
		},
		{
			name:    "unknown hole cards",
			players: []PlayerSpec{known(t, "a", "AhAd"), Unknown("b")},
			board:   "2c7d9hJsQc",
			wantErr: ErrInvalidPlayer,
		},
		{
			name:    "duplicate card",
			players: []PlayerSpec{known(t, "a", "AhAd"), known(t, "b", "2c3c")},
			board:   "2c7d9hJsQc",
			wantErr: poker.ErrDuplicateCard,
		},
		{
			name:    "no players",
			board:   "2c7d9hJsQc",
			wantErr: ErrNoPlayers,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Showdown(tt.players, poker.MustParseCards(tt.board))
			require.ErrorIs(t, err, tt.wantErr)
		})
	}
}
