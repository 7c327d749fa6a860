package poker

import (
	"testing"

	ph "github.com/paulhankin/poker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBestOf(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		cards    string
		category Category
		best     string
	}{
		{"seven card flush over straight", "AhKh9h8d7h6c5h", Flush, "AhKh9h7h5h"},
		{"board plays", "2c3dAsKsQsJsTs", StraightFlush, "AsKsQsJsTs"},
		{"two trips make a full house", "KhKdKc5s5h5d2c", FullHouse, "KhKdKc5s5h"},
		{"six cards with wheel", "Ah2d3h4c5s9d", Straight, "Ah2d3h4c5s"},
		{"three pair keeps the best two", "AhAd9c9s4h4dKc", TwoPair, "AhAd9c9sKc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			score, best, err := BestOf(MustParseCards(tt.cards))
			require.NoError(t, err)
			assert.Equal(t, tt.category, score.Category())

			want, err := Classify(MustParseCards(tt.best))
			require.NoError(t, err)
			assert.Equal(t, want.Score(), score)

			got, err := Classify(best[:])
			require.NoError(t, err)
			assert.Equal(t, score, got.Score(), "winning cards reproduce the score")
		})
	}
}

func TestBestOfFiveMatchesClassify(t *testing.T) {
	t.Parallel()
	d := NewDeck(newTestRand(11))
	for i := 0; i < 10; i++ {
		cards, err := d.Deal(5)
		require.NoError(t, err)
		cl, err := Classify(cards)
		require.NoError(t, err)
		score, best, err := BestOf(cards)
		require.NoError(t, err)
		assert.Equal(t, cl.Score(), score)
		assert.Equal(t, cl.Cards, best)
	}
}

func TestBestOfErrors(t *testing.T) {
	t.Parallel()
	_, _, err := BestOf(MustParseCards("AhKhQhJh"))
	require.ErrorIs(t, err, ErrInvalidHandSize)

	_, _, err = BestOf(MustParseCards("AhKhQhJhTh9h8h7h"))
	require.ErrorIs(t, err, ErrInvalidHandSize)

	_, _, err = BestOf(MustParseCards("AhKhQhJhTh9hAh"))
	require.ErrorIs(t, err, ErrDuplicateCard)
}

func TestBestOfIsDeterministicOnTies(t *testing.T) {
	t.Parallel()
	// The board plays for everyone; the first subset in index order wins.
	cards := MustParseCards("2c3dAsKsQsJsTs")
	_, a, err := BestOf(cards)
	require.NoError(t, err)
	_, b, err := BestOf(cards)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	cl, err := Evaluate(MustParseCards("AhAd9c9s4h4dKc"))
	require.NoError(t, err)
	assert.Equal(t, "Two Pair, Aces and Nines", cl.String())
}

func toReference(t *testing.T, c Card) ph.Card {
	t.Helper()
	var s ph.Suit
	switch c.Suit() {
	case Clubs:
		s = ph.Club
	case Diamonds:
		s = ph.Diamond
	case Hearts:
		s = ph.Heart
	default:
		s = ph.Spade
	}
	r := ph.Rank(c.Rank())
	if c.Rank() == Ace {
		r = ph.Rank(1)
	}
	pc, err := ph.MakeCard(s, r)
	require.NoError(t, err)
	return pc
}

func referenceScore(t *testing.T, cards []Card) int16 {
	t.Helper()
	var a7 [7]ph.Card
	for i, c := range cards {
		a7[i] = toReference(t, c)
	}
	return ph.Eval7(&a7)
}

func sign(x int) int {
	switch {
	case x > 0:
		return 1
	case x < 0:
		return -1
	}
	return 0
}

// TestBestOfAgreesWithReferenceEvaluator checks that seven-card comparisons
// order the same way as an independent evaluator.
func TestBestOfAgreesWithReferenceEvaluator(t *testing.T) {
	t.Parallel()

	// Work out which way the reference scores point before comparing.
	strong := MustParseCards("AsKsQsJsTs2c3d")
	weak := MustParseCards("7h5d4c3s2hJcQd")
	direction := sign(int(referenceScore(t, strong)) - int(referenceScore(t, weak)))
	require.NotZero(t, direction)

	rng := newTestRand(2024)
	for i := 0; i < 2000; i++ {
		d := NewDeck(rng)
		a, err := d.Deal(7)
		require.NoError(t, err)
		b, err := d.Deal(7)
		require.NoError(t, err)

		sa, _, err := BestOf(a)
		require.NoError(t, err)
		sb, _, err := BestOf(b)
		require.NoError(t, err)

		ours := sa.Compare(sb)
		theirs := direction * sign(int(referenceScore(t, a))-int(referenceScore(t, b)))
		require.Equal(t, theirs, ours, "%s vs %s", FormatCards(a, ""), FormatCards(b, ""))
	}
}
