// Package analysis provides starting-hand range parsing and the 169-hand
// ranking table.
package analysis

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/lox/holdem-equity/poker"
)

// ErrInvalidRangeToken is returned for range text that does not parse.
var ErrInvalidRangeToken = errors.New("invalid range token")

// Class is one of the 169 starting-hand classes, e.g. AA, AKs or AKo.
// High is never below Low; Suited is ignored for pairs.
type Class struct {
	High   poker.Rank
	Low    poker.Rank
	Suited bool
}

// IsPair reports whether both ranks match.
func (c Class) IsPair() bool { return c.High == c.Low }

// String returns the 169-notation, e.g. "AKs".
func (c Class) String() string {
	s := c.High.String() + c.Low.String()
	switch {
	case c.IsPair():
		return s
	case c.Suited:
		return s + "s"
	default:
		return s + "o"
	}
}

// ClassOf returns the class a concrete hand belongs to.
func ClassOf(h poker.Hand) Class {
	return Class{
		High:   h.High().Rank(),
		Low:    h.Low().Rank(),
		Suited: !h.IsPair() && h.IsSuited(),
	}
}

// Shorthand converts a concrete hand to its 169-notation.
func Shorthand(h poker.Hand) string {
	return ClassOf(h).String()
}

// ParseClass parses a single 169-notation token such as "TT", "AKs" or "KAo".
// The two ranks may be given in either order.
func ParseClass(tok string) (Class, error) {
	if len(tok) < 2 || len(tok) > 3 {
		return Class{}, fmt.Errorf("%w: %q", ErrInvalidRangeToken, tok)
	}
	r1, ok1 := poker.ParseRank(tok[0])
	r2, ok2 := poker.ParseRank(tok[1])
	if !ok1 || !ok2 {
		return Class{}, fmt.Errorf("%w: bad rank in %q", ErrInvalidRangeToken, tok)
	}
	if r2 > r1 {
		r1, r2 = r2, r1
	}
	c := Class{High: r1, Low: r2}

	if len(tok) == 2 {
		if !c.IsPair() {
			return Class{}, fmt.Errorf("%w: %q needs an s or o suffix", ErrInvalidRangeToken, tok)
		}
		return c, nil
	}
	if c.IsPair() {
		return Class{}, fmt.Errorf("%w: pocket pair %q cannot have a suffix", ErrInvalidRangeToken, tok)
	}
	switch tok[2] {
	case 's':
		c.Suited = true
	case 'o':
	default:
		return Class{}, fmt.Errorf("%w: invalid modifier %q in %q", ErrInvalidRangeToken, tok[2], tok)
	}
	return c, nil
}

// IsValidSyntax reports whether text is a well formed range. Blank text and
// empty entries between commas are rejected.
func IsValidSyntax(text string) bool {
	for part := range strings.SplitSeq(text, ",") {
		if strings.TrimSpace(part) == "" {
			return false
		}
	}
	_, err := expandClasses(text)
	return err == nil
}

// Expand converts range text such as "JJ+,AKs,ATs-A8s" into the 169-notation
// tokens it denotes. Duplicates are dropped, keeping the first occurrence;
// within a token the strongest class comes first. Empty text yields an empty list.
func Expand(text string) ([]string, error) {
	classes, err := expandClasses(text)
	if err != nil {
		return nil, err
	}
	out := make([]string, len(classes))
	for i, c := range classes {
		out[i] = c.String()
	}
	return out, nil
}

func expandClasses(text string) ([]Class, error) {
	out := []Class{}
	seen := make(map[Class]bool)
	for part := range strings.SplitSeq(text, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		classes, err := expandToken(part)
		if err != nil {
			return nil, err
		}
		for _, c := range classes {
			if !seen[c] {
				seen[c] = true
				out = append(out, c)
			}
		}
	}
	return out, nil
}

func expandToken(tok string) ([]Class, error) {
	switch {
	case strings.HasSuffix(tok, "+"):
		return expandPlus(tok)
	case strings.Contains(tok, "-"):
		return expandDash(tok)
	default:
		c, err := ParseClass(tok)
		if err != nil {
			return nil, err
		}
		return []Class{c}, nil
	}
}

// expandPlus handles "JJ+" (every pair up to aces) and "T2s+" (the kicker
// climbs to one below the high card).
func expandPlus(tok string) ([]Class, error) {
	base := strings.TrimSuffix(tok, "+")
	if strings.ContainsAny(base, "+-") {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRangeToken, tok)
	}
	c, err := ParseClass(base)
	if err != nil {
		return nil, err
	}

	var out []Class
	if c.IsPair() {
		for r := poker.Ace; r >= c.High; r-- {
			out = append(out, Class{High: r, Low: r})
		}
		return out, nil
	}
	for low := c.High - 1; low >= c.Low; low-- {
		out = append(out, Class{High: c.High, Low: low, Suited: c.Suited})
	}
	return out, nil
}

// expandDash handles "QQ-AA" and "ATs-A8s". Bounds may come in either order.
func expandDash(tok string) ([]Class, error) {
	parts := strings.Split(tok, "-")
	if len(parts) != 2 {
		return nil, fmt.Errorf("%w: %q", ErrInvalidRangeToken, tok)
	}
	a, err := ParseClass(strings.TrimSpace(parts[0]))
	if err != nil {
		return nil, err
	}
	b, err := ParseClass(strings.TrimSpace(parts[1]))
	if err != nil {
		return nil, err
	}

	var out []Class
	switch {
	case a.IsPair() && b.IsPair():
		for r := max(a.High, b.High); r >= min(a.High, b.High); r-- {
			out = append(out, Class{High: r, Low: r})
		}
	case !a.IsPair() && !b.IsPair() && a.High == b.High && a.Suited == b.Suited:
		for low := max(a.Low, b.Low); low >= min(a.Low, b.Low); low-- {
			out = append(out, Class{High: a.High, Low: low, Suited: a.Suited})
		}
	default:
		return nil, fmt.Errorf("%w: %q bounds must share shape, high card and suffix", ErrInvalidRangeToken, tok)
	}
	return out, nil
}

// Combos returns every concrete hand in a class: 6 for a pair,
// 4 suited or 12 offsuit.
func Combos(notation string) ([]poker.Hand, error) {
	c, err := ParseClass(notation)
	if err != nil {
		return nil, err
	}
	return c.Combos(), nil
}

// Combos returns every concrete hand in the class, high card first.
func (c Class) Combos() []poker.Hand {
	var out []poker.Hand
	add := func(s1, s2 poker.Suit) {
		h, err := poker.NewHand(poker.MustCard(c.High, s1), poker.MustCard(c.Low, s2))
		if err == nil {
			out = append(out, h)
		}
	}
	for s1 := poker.Clubs; s1 <= poker.Spades; s1++ {
		switch {
		case c.IsPair():
			for s2 := s1 + 1; s2 <= poker.Spades; s2++ {
				add(s1, s2)
			}
		case c.Suited:
			add(s1, s1)
		default:
			for s2 := poker.Clubs; s2 <= poker.Spades; s2++ {
				if s1 != s2 {
					add(s1, s2)
				}
			}
		}
	}
	return out
}

// Range is a set of concrete starting hands.
type Range struct {
	hands   map[poker.Hand]struct{}
	classes []Class
}

// ParseRange creates a range from standard notation.
// Examples: "AA,KK", "AKs,AKo", "TT+", "A5s-A2s", "22-66"
func ParseRange(text string) (*Range, error) {
	classes, err := expandClasses(text)
	if err != nil {
		return nil, err
	}
	r := &Range{
		hands:   make(map[poker.Hand]struct{}),
		classes: classes,
	}
	for _, c := range classes {
		for _, h := range c.Combos() {
			r.hands[h.Canonical()] = struct{}{}
		}
	}
	return r, nil
}

// Contains checks if a specific hand is in the range
func (r *Range) Contains(h poker.Hand) bool {
	_, ok := r.hands[h.Canonical()]
	return ok
}

// Size returns the number of hand combinations in the range
func (r *Range) Size() int {
	return len(r.hands)
}

// Hands returns every combination, sorted by notation for stable output.
func (r *Range) Hands() []poker.Hand {
	hands := make([]poker.Hand, 0, len(r.hands))
	for h := range r.hands {
		hands = append(hands, h)
	}
	slices.SortFunc(hands, func(a, b poker.Hand) int {
		return strings.Compare(a.String(), b.String())
	})
	return hands
}

// Notations returns the 169-notation classes in the range.
func (r *Range) Notations() []string {
	out := make([]string, len(r.classes))
	for i, c := range r.classes {
		out[i] = c.String()
	}
	return out
}
