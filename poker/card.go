// Package poker provides the Texas Hold'em card model, deck and hand evaluator.
package poker

import (
	"fmt"
	"strings"
)

// Rank is a card rank from Two (2) to Ace (14).
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

const rankGlyphs = "23456789TJQKA"

// Valid reports whether r is between Two and Ace.
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// String returns the single character glyph for the rank.
func (r Rank) String() string {
	if !r.Valid() {
		return "?"
	}
	return string(rankGlyphs[r-Two])
}

// Name returns the English name of the rank, e.g. "Queen".
func (r Rank) Name() string {
	switch r {
	case Two:
		return "Two"
	case Three:
		return "Three"
	case Four:
		return "Four"
	case Five:
		return "Five"
	case Six:
		return "Six"
	case Seven:
		return "Seven"
	case Eight:
		return "Eight"
	case Nine:
		return "Nine"
	case Ten:
		return "Ten"
	case Jack:
		return "Jack"
	case Queen:
		return "Queen"
	case King:
		return "King"
	case Ace:
		return "Ace"
	default:
		return "Unknown"
	}
}

// ParseRank converts an upper-case rank glyph to a Rank.
func ParseRank(c byte) (Rank, bool) {
	i := strings.IndexByte(rankGlyphs, c)
	if i < 0 {
		return 0, false
	}
	return Two + Rank(i), true
}

// Suit is one of the four card suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

const suitGlyphs = "cdhs"

// Valid reports whether s is one of the four suits.
func (s Suit) Valid() bool {
	return s <= Spades
}

// String returns the single character glyph for the suit.
func (s Suit) String() string {
	if !s.Valid() {
		return "?"
	}
	return string(suitGlyphs[s])
}

// Symbol returns the unicode symbol for the suit.
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds.
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// ParseSuit converts a lower-case suit glyph to a Suit.
func ParseSuit(c byte) (Suit, bool) {
	i := strings.IndexByte(suitGlyphs, c)
	if i < 0 {
		return 0, false
	}
	return Suit(i), true
}

// Card is an immutable playing card. The zero value is not a valid card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card, validating both rank and suit.
func NewCard(rank Rank, suit Suit) (Card, error) {
	if !rank.Valid() || !suit.Valid() {
		return Card{}, fmt.Errorf("%w: rank %d suit %d", ErrInvalidCardCode, rank, suit)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustCard creates a card and panics if it is invalid.
func MustCard(rank Rank, suit Suit) Card {
	c, err := NewCard(rank, suit)
	if err != nil {
		panic(err)
	}
	return c
}

// ParseCard parses a two character code such as "Ah" or "Tc".
func ParseCard(code string) (Card, error) {
	if len(code) != 2 {
		return Card{}, fmt.Errorf("%w: %q must be two characters", ErrInvalidCardCode, code)
	}
	rank, ok := ParseRank(code[0])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q in %q", ErrInvalidCardCode, code[0], code)
	}
	suit, ok := ParseSuit(code[1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q in %q", ErrInvalidCardCode, code[1], code)
	}
	return Card{rank: rank, suit: suit}, nil
}

// MustParseCard parses a card and panics on error (for tests)
func MustParseCard(code string) Card {
	c, err := ParseCard(code)
	if err != nil {
		panic(fmt.Sprintf("failed to parse card %q: %v", code, err))
	}
	return c
}

// ParseCards parses a run of card codes such as "AsKsQs" or "As Ks Qs".
func ParseCards(s string) ([]Card, error) {
	s = strings.Join(strings.Fields(s), "")
	if len(s)%2 != 0 {
		return nil, fmt.Errorf("%w: card string %q has odd length", ErrInvalidCardCode, s)
	}

	cards := make([]Card, 0, len(s)/2)
	for i := 0; i < len(s); i += 2 {
		c, err := ParseCard(s[i : i+2])
		if err != nil {
			return nil, err
		}
		cards = append(cards, c)
	}
	return cards, nil
}

// MustParseCards parses cards and panics on error (for tests)
func MustParseCards(s string) []Card {
	cards, err := ParseCards(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse cards %q: %v", s, err))
	}
	return cards
}

// Rank returns the card's rank.
func (c Card) Rank() Rank { return c.rank }

// Suit returns the card's suit.
func (c Card) Suit() Suit { return c.suit }

// NumericRank returns the rank as 2..14 with the ace high.
func (c Card) NumericRank() int { return int(c.rank) }

// Valid reports whether the card was constructed with a valid rank and suit.
func (c Card) Valid() bool {
	return c.rank.Valid() && c.suit.Valid()
}

// String returns the two character code, e.g. "Ah".
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// Pretty returns the card with a unicode suit symbol, e.g. "A♥".
func (c Card) Pretty() string {
	return c.rank.String() + c.suit.Symbol()
}

// index maps a valid card to 0..51.
func (c Card) index() int {
	return int(c.rank-Two)*4 + int(c.suit)
}

// CardSet is a bitset of cards keyed by rank and suit.
type CardSet uint64

// NewCardSet creates a CardSet from a slice of cards
func NewCardSet(cards ...Card) CardSet {
	var cs CardSet
	for _, c := range cards {
		cs.Add(c)
	}
	return cs
}

// Add adds a card to the set
func (cs *CardSet) Add(c Card) {
	*cs |= 1 << c.index()
}

// Contains checks if a card is in the set
func (cs CardSet) Contains(c Card) bool {
	return cs&(1<<c.index()) != 0
}

// FormatCards joins card codes with a separator.
func FormatCards(cards []Card, sep string) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, sep)
}

// checkDistinct returns ErrDuplicateCard for the first repeated card.
func checkDistinct(cards []Card) error {
	var seen CardSet
	for _, c := range cards {
		if !c.Valid() {
			return fmt.Errorf("%w: %v", ErrInvalidCardCode, c)
		}
		if seen.Contains(c) {
			return fmt.Errorf("%w: %s", ErrDuplicateCard, c)
		}
		seen.Add(c)
	}
	return nil
}
