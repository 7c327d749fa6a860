package poker

import (
	"fmt"
	"strings"
)

// Draw is a single kind of drawing hand.
type Draw uint8

const (
	FlushDraw Draw = 1 << iota
	StraightOpenEnded
	StraightGutshot
)

func (d Draw) String() string {
	switch d {
	case FlushDraw:
		return "flush draw"
	case StraightOpenEnded:
		return "open-ended straight draw"
	case StraightGutshot:
		return "gutshot"
	default:
		return "unknown"
	}
}

// Draws is a set of draws.
type Draws uint8

// Has reports whether d is in the set.
func (ds Draws) Has(d Draw) bool { return uint8(ds)&uint8(d) != 0 }

// Len returns the number of draws in the set.
func (ds Draws) Len() int { return len(ds.List()) }

// List returns the draws in a fixed order.
func (ds Draws) List() []Draw {
	var out []Draw
	for _, d := range []Draw{FlushDraw, StraightOpenEnded, StraightGutshot} {
		if ds.Has(d) {
			out = append(out, d)
		}
	}
	return out
}

func (ds Draws) String() string {
	list := ds.List()
	if len(list) == 0 {
		return "no draw"
	}
	parts := make([]string, len(list))
	for i, d := range list {
		parts[i] = d.String()
	}
	return strings.Join(parts, ", ")
}

// DetectDraws looks for flush and straight draws in exactly five cards.
// Hands that already make a straight or a flush have no draws.
func DetectDraws(cards []Card) (Draws, error) {
	if len(cards) != 5 {
		return 0, fmt.Errorf("%w: draw detection needs 5 cards, got %d", ErrInvalidHandSize, len(cards))
	}
	if err := checkDistinct(cards); err != nil {
		return 0, err
	}
	var five [5]Card
	copy(five[:], cards)
	if cl := classify5(&five); cl.IsFlush || cl.IsStraight {
		return 0, nil
	}

	var draws Draws
	var suits [4]int
	// present[v] for v in 1..14, with the ace at both ends.
	var present [15]bool
	for _, c := range cards {
		suits[c.suit]++
		present[c.rank] = true
		if c.rank == Ace {
			present[1] = true
		}
	}
	for _, n := range suits {
		if n == 4 {
			draws |= Draws(FlushDraw)
		}
	}

	gutshot := false
	for low := 1; low <= 10; low++ {
		missing, count := 0, 0
		for v := low; v < low+5; v++ {
			if present[v] {
				count++
			} else {
				missing = v
			}
		}
		if count != 4 {
			continue
		}
		// A rank missing at either end of the window is open-ended, one missing
		// inside it is a gutshot.
		if missing == low || missing == low+4 {
			draws |= Draws(StraightOpenEnded)
		} else {
			gutshot = true
		}
	}
	if gutshot && !draws.Has(StraightOpenEnded) {
		draws |= Draws(StraightGutshot)
	}
	return draws, nil
}
