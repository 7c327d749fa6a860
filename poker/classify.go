package poker

import (
	"fmt"
	"strings"
)

// Category is the kind of made hand, ordered from weakest to strongest.
type Category uint8

const (
	HighCard Category = iota
	OnePair
	TwoPair
	ThreeOfAKind
	Straight
	Flush
	FullHouse
	FourOfAKind
	StraightFlush
)

// NumCategories is the number of hand categories.
const NumCategories = int(StraightFlush) + 1

// String returns the readable name of the category.
func (c Category) String() string {
	switch c {
	case HighCard:
		return "High Card"
	case OnePair:
		return "One Pair"
	case TwoPair:
		return "Two Pair"
	case ThreeOfAKind:
		return "Three of a Kind"
	case Straight:
		return "Straight"
	case Flush:
		return "Flush"
	case FullHouse:
		return "Full House"
	case FourOfAKind:
		return "Four of a Kind"
	case StraightFlush:
		return "Straight Flush"
	default:
		return "Unknown"
	}
}

// Classification is the result of classifying exactly five cards.
type Classification struct {
	Category        Category
	Cards           [5]Card
	IsFlush         bool
	IsStraight      bool
	IsStraightFlush bool
	IsRoyal         bool

	tieBreaks [5]Rank
	n         int
}

// TieBreaks returns the ranks that decide ties within the category,
// most decisive first.
func (c Classification) TieBreaks() []Rank {
	out := make([]Rank, c.n)
	copy(out, c.tieBreaks[:c.n])
	return out
}

// Score packs the classification into a comparable integer.
func (c Classification) Score() Score {
	return packScore(c.Category, c.tieBreaks)
}

// String describes the hand, e.g. "Full House, Kings full of Fives".
func (c Classification) String() string {
	return describe(c.Category, c.tieBreaks)
}

// Classify classifies exactly five distinct cards.
func Classify(cards []Card) (Classification, error) {
	if len(cards) != 5 {
		return Classification{}, fmt.Errorf("%w: classify needs 5 cards, got %d", ErrInvalidHandSize, len(cards))
	}
	if err := checkDistinct(cards); err != nil {
		return Classification{}, err
	}
	var five [5]Card
	copy(five[:], cards)
	return classify5(&five), nil
}

// classify5 assumes five distinct valid cards.
func classify5(cards *[5]Card) Classification {
	cl := Classification{Cards: *cards}

	// Sort ranks ascending; insertion sort is plenty for five values.
	var r [5]Rank
	for i, c := range cards {
		r[i] = c.rank
	}
	for i := 1; i < len(r); i++ {
		for j := i; j > 0 && r[j] < r[j-1]; j-- {
			r[j], r[j-1] = r[j-1], r[j]
		}
	}

	flush := true
	for _, c := range cards[1:] {
		if c.suit != cards[0].suit {
			flush = false
			break
		}
	}

	straight := true
	for i := 1; i < len(r); i++ {
		if r[i] != r[i-1]+1 {
			straight = false
			break
		}
	}
	top := r[4]
	if !straight && r == [5]Rank{Two, Three, Four, Five, Ace} {
		// Wheel: the ace plays low.
		straight = true
		top = Five
	}

	cl.IsFlush = flush
	cl.IsStraight = straight
	cl.IsStraightFlush = flush && straight
	cl.IsRoyal = cl.IsStraightFlush && r == [5]Rank{Ten, Jack, Queen, King, Ace}

	if cl.IsStraightFlush {
		cl.Category = StraightFlush
		cl.setTieBreaks(top)
		return cl
	}

	var freq [15]int
	for _, rank := range r {
		freq[rank]++
	}

	var quad, trip Rank
	var pairs, singles []Rank
	var pairBuf, singleBuf [5]Rank
	pairs, singles = pairBuf[:0], singleBuf[:0]
	for rank := Ace; rank >= Two; rank-- {
		switch freq[rank] {
		case 4:
			quad = rank
		case 3:
			trip = rank
		case 2:
			pairs = append(pairs, rank)
		case 1:
			singles = append(singles, rank)
		}
	}

	switch {
	case quad != 0:
		cl.Category = FourOfAKind
		cl.setTieBreaks(quad, singles[0])
	case trip != 0 && len(pairs) > 0:
		cl.Category = FullHouse
		cl.setTieBreaks(trip, pairs[0])
	case flush:
		cl.Category = Flush
		cl.setTieBreaks(singles...)
	case straight:
		cl.Category = Straight
		cl.setTieBreaks(top)
	case trip != 0:
		cl.Category = ThreeOfAKind
		cl.setTieBreaks(trip, singles[0], singles[1])
	case len(pairs) == 2:
		cl.Category = TwoPair
		cl.setTieBreaks(pairs[0], pairs[1], singles[0])
	case len(pairs) == 1:
		cl.Category = OnePair
		cl.setTieBreaks(pairs[0], singles[0], singles[1], singles[2])
	default:
		cl.Category = HighCard
		cl.setTieBreaks(singles...)
	}
	return cl
}

func (c *Classification) setTieBreaks(ranks ...Rank) {
	c.n = copy(c.tieBreaks[:], ranks)
}

// Score is a packed, totally ordered hand strength. Higher is stronger.
// The category sits at bit 40 and five 5-bit tie-break ranks follow,
// most decisive first. Unused slots are zero.
type Score uint64

const (
	categoryShift = 40
	tieBreakBits  = 5
	tieBreakMask  = 1<<tieBreakBits - 1
)

func packScore(cat Category, ranks [5]Rank) Score {
	s := Score(cat) << categoryShift
	for i, r := range ranks {
		s |= Score(r) << (tieBreakBits * (len(ranks) - 1 - i))
	}
	return s
}

// Category returns the hand category encoded in the score.
func (s Score) Category() Category {
	return Category(s >> categoryShift)
}

// TieBreaks returns the populated tie-break ranks, most decisive first.
func (s Score) TieBreaks() []Rank {
	var out []Rank
	for _, r := range s.ranks() {
		if r == 0 {
			break
		}
		out = append(out, r)
	}
	return out
}

func (s Score) ranks() [5]Rank {
	var r [5]Rank
	for i := range r {
		r[i] = Rank(s >> (tieBreakBits * (len(r) - 1 - i)) & tieBreakMask)
	}
	return r
}

// Compare returns 1 if s beats o, -1 if it loses and 0 on a tie.
func (s Score) Compare(o Score) int {
	switch {
	case s > o:
		return 1
	case s < o:
		return -1
	default:
		return 0
	}
}

// String describes the hand the score encodes.
func (s Score) String() string {
	return describe(s.Category(), s.ranks())
}

func describe(cat Category, r [5]Rank) string {
	switch cat {
	case HighCard:
		return "High Card, " + r[0].Name()
	case OnePair:
		return "Pair of " + plural(r[0])
	case TwoPair:
		return fmt.Sprintf("Two Pair, %s and %s", plural(r[0]), plural(r[1]))
	case ThreeOfAKind:
		return "Three of a Kind, " + plural(r[0])
	case Straight:
		return fmt.Sprintf("Straight, %s high", r[0].Name())
	case Flush:
		return fmt.Sprintf("Flush, %s high", r[0].Name())
	case FullHouse:
		return fmt.Sprintf("Full House, %s full of %s", plural(r[0]), plural(r[1]))
	case FourOfAKind:
		return "Four of a Kind, " + plural(r[0])
	case StraightFlush:
		if r[0] == Ace {
			return "Royal Flush"
		}
		return fmt.Sprintf("Straight Flush, %s high", r[0].Name())
	default:
		return "Unknown"
	}
}

func plural(r Rank) string {
	name := r.Name()
	if strings.HasSuffix(name, "x") {
		return name + "es"
	}
	return name + "s"
}
