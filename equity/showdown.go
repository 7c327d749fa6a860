package equity

import (
	"fmt"
	"slices"

	"github.com/lox/holdem-equity/poker"
)

// Standing is one player's made hand at showdown.
type Standing struct {
	Name string
	Hand poker.Hand
	Best poker.Classification
	// Place is 1 for the winners. Tied players share a place and the next
	// distinct hand takes the following number.
	Place int
}

// Showdown ranks known hands on a complete board, strongest first. Players
// with equal hands keep their input order.
func Showdown(players []PlayerSpec, board []poker.Card) ([]Standing, error) {
	if len(board) != 5 {
		return nil, fmt.Errorf("%w: showdown needs a 5 card board, got %d", poker.ErrInvalidHandSize, len(board))
	}
	if _, err := Validate(players, board); err != nil {
		return nil, err
	}

	standings := make([]Standing, len(players))
	var seven [7]poker.Card
	copy(seven[2:], board)
	for i, p := range players {
		if p.Hand == nil {
			return nil, fmt.Errorf("%w: %q has unknown hole cards", ErrInvalidPlayer, p.Name)
		}
		hole := p.Hand.Cards()
		copy(seven[:2], hole[:])
		best, err := poker.Evaluate(seven[:])
		if err != nil {
			return nil, err
		}
		standings[i] = Standing{Name: p.Name, Hand: *p.Hand, Best: best}
	}

	slices.SortStableFunc(standings, func(a, b Standing) int {
		return b.Best.Score().Compare(a.Best.Score())
	})
	for i := range standings {
		switch {
		case i == 0:
			standings[i].Place = 1
		case standings[i].Best.Score() == standings[i-1].Best.Score():
			standings[i].Place = standings[i-1].Place
		default:
			standings[i].Place = standings[i-1].Place + 1
		}
	}
	return standings, nil
}
