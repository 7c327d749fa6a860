package poker

import (
	"fmt"
	rand "math/rand/v2"
)

// Deck is a standard 52-card deck minus any cards already in play.
// A Deck is owned by a single caller and is not safe for concurrent use.
type Deck struct {
	cards []Card
	next  int
	rng   *rand.Rand // Random source for deterministic shuffling
}

// NewDeck creates a new shuffled deck with explicit RNG.
// A nil rng leaves the cards in canonical order (clubs first, deuce to ace).
func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{
		cards: make([]Card, 0, 52),
		rng:   rng,
	}

	for rank := Two; rank <= Ace; rank++ {
		for suit := Clubs; suit <= Spades; suit++ {
			d.cards = append(d.cards, Card{rank: rank, suit: suit})
		}
	}

	if rng != nil {
		d.Shuffle()
	}
	return d
}

// Shuffle shuffles the undrawn cards using Fisher-Yates
func (d *Deck) Shuffle() {
	rest := d.cards[d.next:]
	for i := len(rest) - 1; i > 0; i-- {
		j := d.intN(i + 1)
		rest[i], rest[j] = rest[j], rest[i]
	}
}

func (d *Deck) intN(n int) int {
	if d.rng != nil {
		return d.rng.IntN(n)
	}
	return rand.IntN(n)
}

// Draw deals the next card and advances the cursor.
func (d *Deck) Draw() (Card, error) {
	if d.next >= len(d.cards) {
		return Card{}, ErrDeckEmpty
	}
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// Deal draws n cards. The deck is left untouched if fewer than n remain.
func (d *Deck) Deal(n int) ([]Card, error) {
	if n < 0 || d.next+n > len(d.cards) {
		return nil, fmt.Errorf("%w: want %d cards, %d remaining", ErrDeckEmpty, n, d.Remaining())
	}
	out := make([]Card, n)
	copy(out, d.cards[d.next:d.next+n])
	d.next += n
	return out, nil
}

// DrawRandom deals a uniformly chosen undrawn card by swapping it into the
// cursor slot, so a sequence of calls is a partial Fisher-Yates shuffle.
func (d *Deck) DrawRandom() (Card, error) {
	n := len(d.cards) - d.next
	if n <= 0 {
		return Card{}, ErrDeckEmpty
	}
	j := d.next + d.intN(n)
	d.cards[d.next], d.cards[j] = d.cards[j], d.cards[d.next]
	c := d.cards[d.next]
	d.next++
	return c, nil
}

// RemoveExcluding drops every undrawn card that appears in cards, keeping the
// relative order of the rest. Cards already drawn are discarded as well and
// the cursor is reset to the start of what remains.
func (d *Deck) RemoveExcluding(cards ...Card) {
	exclude := NewCardSet(cards...)
	kept := d.cards[:0]
	for _, c := range d.cards[d.next:] {
		if !exclude.Contains(c) {
			kept = append(kept, c)
		}
	}
	d.cards = kept
	d.next = 0
}

// Remaining returns the number of cards left to draw.
func (d *Deck) Remaining() int {
	return len(d.cards) - d.next
}

// Cards returns a copy of the undrawn cards in draw order.
func (d *Deck) Cards() []Card {
	out := make([]Card, d.Remaining())
	copy(out, d.cards[d.next:])
	return out
}

// Clone returns an independent copy of the undrawn cards sharing the RNG.
func (d *Deck) Clone() *Deck {
	return &Deck{cards: d.Cards(), rng: d.rng}
}

// CopyFrom replaces the contents of d with the undrawn cards of src,
// reusing d's storage. The RNG of d is kept.
func (d *Deck) CopyFrom(src *Deck) {
	d.cards = append(d.cards[:0], src.cards[src.next:]...)
	d.next = 0
}

// WithRand returns a copy of the undrawn cards driven by rng.
func (d *Deck) WithRand(rng *rand.Rand) *Deck {
	c := d.Clone()
	c.rng = rng
	return c
}
