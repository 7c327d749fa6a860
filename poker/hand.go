package poker

import "fmt"

// Hand is a player's two hole cards.
type Hand struct {
	cards [2]Card
}

// NewHand creates a hand from two distinct cards.
func NewHand(a, b Card) (Hand, error) {
	if err := checkDistinct([]Card{a, b}); err != nil {
		return Hand{}, err
	}
	return Hand{cards: [2]Card{a, b}}, nil
}

// ParseHand parses a four character hand such as "AhKd".
func ParseHand(s string) (Hand, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Hand{}, err
	}
	if len(cards) != 2 {
		return Hand{}, fmt.Errorf("%w: hand %q has %d cards, want 2", ErrInvalidHandSize, s, len(cards))
	}
	return NewHand(cards[0], cards[1])
}

// MustParseHand parses a hand and panics on error (for tests)
func MustParseHand(s string) Hand {
	h, err := ParseHand(s)
	if err != nil {
		panic(fmt.Sprintf("failed to parse hand %q: %v", s, err))
	}
	return h
}

// Cards returns both hole cards in the order they were given.
func (h Hand) Cards() [2]Card { return h.cards }

// High returns the higher ranked card, or the first card of a pair.
func (h Hand) High() Card {
	if h.cards[1].rank > h.cards[0].rank {
		return h.cards[1]
	}
	return h.cards[0]
}

// Low returns the lower ranked card, or the second card of a pair.
func (h Hand) Low() Card {
	if h.cards[1].rank > h.cards[0].rank {
		return h.cards[0]
	}
	return h.cards[1]
}

// IsPair reports whether both cards share a rank.
func (h Hand) IsPair() bool { return h.cards[0].rank == h.cards[1].rank }

// IsSuited reports whether both cards share a suit.
func (h Hand) IsSuited() bool { return h.cards[0].suit == h.cards[1].suit }

// Valid reports whether the hand holds two distinct valid cards.
func (h Hand) Valid() bool {
	return h.cards[0].Valid() && h.cards[1].Valid() && h.cards[0] != h.cards[1]
}

// Canonical returns the hand with the high card first. Pairs put the higher
// suit first, so equal hands always have equal canonical forms.
func (h Hand) Canonical() Hand {
	a, b := h.cards[0], h.cards[1]
	if b.rank > a.rank || (b.rank == a.rank && b.suit > a.suit) {
		a, b = b, a
	}
	return Hand{cards: [2]Card{a, b}}
}

// Equal compares hands regardless of card order.
func (h Hand) Equal(o Hand) bool {
	return (h.cards[0] == o.cards[0] && h.cards[1] == o.cards[1]) ||
		(h.cards[0] == o.cards[1] && h.cards[1] == o.cards[0])
}

// String returns the hand as "AhKd", high card first.
func (h Hand) String() string {
	return h.High().String() + h.Low().String()
}

// Street identifies how much of the board has been revealed.
type Street int

const (
	Preflop Street = iota
	Flop
	Turn
	River
)

func (s Street) String() string {
	switch s {
	case Preflop:
		return "preflop"
	case Flop:
		return "flop"
	case Turn:
		return "turn"
	case River:
		return "river"
	default:
		return "unknown"
	}
}

// Board holds up to five community cards, filled in street order.
type Board struct {
	cards [5]Card
	n     int
}

// NewBoard creates a board from the given cards.
func NewBoard(cards ...Card) (Board, error) {
	var b Board
	if err := b.Add(cards...); err != nil {
		return Board{}, err
	}
	return b, nil
}

// ParseBoard parses a board such as "Td7s8h".
func ParseBoard(s string) (Board, error) {
	cards, err := ParseCards(s)
	if err != nil {
		return Board{}, err
	}
	return NewBoard(cards...)
}

// Add reveals the next cards. Nothing is added when any card fails validation.
func (b *Board) Add(cards ...Card) error {
	if b.n+len(cards) > len(b.cards) {
		return fmt.Errorf("%w: %d cards on board, adding %d", ErrBoardFull, b.n, len(cards))
	}
	all := append(b.Cards(), cards...)
	if err := checkDistinct(all); err != nil {
		return err
	}
	copy(b.cards[b.n:], cards)
	b.n += len(cards)
	return nil
}

// Cards returns a copy of the revealed cards.
func (b Board) Cards() []Card {
	out := make([]Card, b.n, len(b.cards))
	copy(out, b.cards[:b.n])
	return out
}

// Len returns the number of revealed cards.
func (b Board) Len() int { return b.n }

// Street reports the street implied by the revealed cards.
// A partially dealt flop still counts as preflop.
func (b Board) Street() Street {
	switch {
	case b.n == 5:
		return River
	case b.n == 4:
		return Turn
	case b.n >= 3:
		return Flop
	default:
		return Preflop
	}
}

// Reset clears the board for a new hand.
func (b *Board) Reset() {
	*b = Board{}
}

func (b Board) String() string {
	return FormatCards(b.cards[:b.n], "")
}
