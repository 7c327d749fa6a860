package poker

import "fmt"

// subsetTable lists, for n in 5..7, every 5-card index combination in
// lexicographic order.
var subsetTable = buildSubsetTable()

func buildSubsetTable() [8][][5]uint8 {
	var table [8][][5]uint8
	for n := 5; n <= 7; n++ {
		var idx [5]uint8
		var rec func(start, k int)
		rec = func(start, k int) {
			if k == 5 {
				table[n] = append(table[n], idx)
				return
			}
			for i := start; i <= n-(5-k); i++ {
				idx[k] = uint8(i)
				rec(i+1, k+1)
			}
		}
		rec(0, 0)
	}
	return table
}

// BestOf returns the strongest five-card hand that can be made from 5, 6 or 7
// cards, along with the cards that make it. When several subsets tie, the
// first in lexicographic index order wins.
func BestOf(cards []Card) (Score, [5]Card, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return 0, [5]Card{}, fmt.Errorf("%w: best-of needs 5 to 7 cards, got %d", ErrInvalidHandSize, len(cards))
	}
	if err := checkDistinct(cards); err != nil {
		return 0, [5]Card{}, err
	}
	cl := bestOf(cards)
	return cl.Score(), cl.Cards, nil
}

// Evaluate returns the classification of the best five cards out of 5 to 7.
func Evaluate(cards []Card) (Classification, error) {
	if len(cards) < 5 || len(cards) > 7 {
		return Classification{}, fmt.Errorf("%w: evaluate needs 5 to 7 cards, got %d", ErrInvalidHandSize, len(cards))
	}
	if err := checkDistinct(cards); err != nil {
		return Classification{}, err
	}
	return bestOf(cards), nil
}

// ScoreOf is the unchecked hot path used by the equity simulator.
// The caller guarantees 5 to 7 distinct valid cards.
func ScoreOf(cards []Card) Score {
	return bestOf(cards).Score()
}

func bestOf(cards []Card) Classification {
	var best Classification
	var bestScore Score
	var five [5]Card
	for i, combo := range subsetTable[len(cards)] {
		for j, idx := range combo {
			five[j] = cards[idx]
		}
		cl := classify5(&five)
		if s := cl.Score(); i == 0 || s > bestScore {
			best, bestScore = cl, s
		}
	}
	return best
}
