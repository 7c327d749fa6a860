package analysis

import (
	"math"

	"github.com/lox/holdem-equity/poker"
)

// rankedClasses orders all 169 starting-hand classes from strongest to weakest.
// Data source: http://iholdemindicator.com/rank.html
var rankedClasses = [169]string{
	"AA", "KK", "QQ", "AKs", "JJ", "AQs", "KQs", "AJs", "KJs", "TT",
	"AKo", "ATs", "QJs", "KTs", "QTs", "JTs", "99", "AQo", "A9s", "KQo",
	"88", "K9s", "T9s", "A8s", "Q9s", "J9s", "AJo", "A5s", "77", "A7s",
	"KJo", "A4s", "A3s", "A6s", "QJo", "66", "K8s", "T8s", "A2s", "98s",
	"J8s", "ATo", "Q8s", "K7s", "KTo", "55", "JTo", "87s", "QTo", "44",
	"22", "33", "K6s", "97s", "K5s", "76s", "T7s", "K4s", "K2s", "K3s",
	"Q7s", "86s", "65s", "J7s", "54s", "Q6s", "75s", "96s", "Q5s", "64s",
	"Q4s", "Q3s", "T9o", "T6s", "Q2s", "A9o", "53s", "85s", "J6s", "J9o",
	"K9o", "J5s", "Q9o", "43s", "74s", "J4s", "J3s", "95s", "J2s", "63s",
	"A8o", "52s", "T5s", "84s", "T4s", "T3s", "42s", "T2s", "98o", "T8o",
	"A5o", "A7o", "73s", "A4o", "32s", "94s", "93s", "J8o", "A3o", "62s",
	"92s", "K8o", "A6o", "87o", "Q8o", "83s", "A2o", "82s", "97o", "72s",
	"76o", "K7o", "65o", "T7o", "K6o", "86o", "54o", "K5o", "J7o", "75o",
	"Q7o", "K4o", "K3o", "96o", "K2o", "64o", "Q6o", "53o", "85o", "T6o",
	"Q5o", "43o", "Q4o", "Q3o", "74o", "Q2o", "J6o", "63o", "J5o", "95o",
	"52o", "J4o", "J3o", "42o", "J2o", "84o", "T5o", "T4o", "32o", "T3o",
	"73o", "T2o", "62o", "94o", "93o", "92o", "83o", "82o", "72o",
}

var classPosition = func() map[string]int {
	m := make(map[string]int, len(rankedClasses))
	for i, n := range rankedClasses {
		m[n] = i
	}
	return m
}()

// RankedClasses returns all 169 classes, strongest first.
func RankedClasses() []string {
	out := make([]string, len(rankedClasses))
	copy(out, rankedClasses[:])
	return out
}

// Position returns the 0-based strength position of a class (0 is AA).
func Position(notation string) (int, bool) {
	c, err := ParseClass(notation)
	if err != nil {
		return 0, false
	}
	i, ok := classPosition[c.String()]
	return i, ok
}

// Percentile returns 1.0 for the strongest class down to 0.0 for the weakest.
// Hands that are not valid starting hands get 0.
func Percentile(h poker.Hand) float64 {
	i, ok := classPosition[Shorthand(h)]
	if !ok {
		return 0
	}
	return 1 - float64(i)/float64(len(rankedClasses)-1)
}

// topCount returns ceil(169 * p / 100) with p clamped to 0..100.
func topCount(p float64) int {
	p = math.Max(0, math.Min(100, p))
	// The epsilon keeps values like 169*x/100 that land on an integer from
	// rounding up through float error.
	n := int(math.Ceil(float64(len(rankedClasses))*p/100 - 1e-9))
	return max(0, min(n, len(rankedClasses)))
}

// TopByPercent returns the strongest ceil(169*p/100) classes.
func TopByPercent(p float64) []string {
	out := make([]string, topCount(p))
	copy(out, rankedClasses[:len(out)])
	return out
}

// Mask marks starting-hand classes by [high-2][low-2][suited]. Pairs sit on
// the diagonal and are marked in both layers.
type Mask [13][13][2]bool

// Set marks a class.
func (m *Mask) Set(c Class) {
	hi, lo := c.High-poker.Two, c.Low-poker.Two
	if c.IsPair() {
		m[hi][lo][0] = true
		m[hi][lo][1] = true
		return
	}
	m[hi][lo][layer(c.Suited)] = true
}

// Contains reports whether a class is marked.
func (m *Mask) Contains(c Class) bool {
	return m[c.High-poker.Two][c.Low-poker.Two][layer(c.Suited && !c.IsPair())]
}

// Count returns the number of marked classes, counting each pair once.
func (m *Mask) Count() int {
	n := 0
	for _, notation := range rankedClasses {
		c, _ := ParseClass(notation)
		if m.Contains(c) {
			n++
		}
	}
	return n
}

func layer(suited bool) int {
	if suited {
		return 1
	}
	return 0
}

// MaskForPercent marks every class inside the top p percent.
func MaskForPercent(p float64) Mask {
	var m Mask
	for _, notation := range rankedClasses[:topCount(p)] {
		c, _ := ParseClass(notation)
		m.Set(c)
	}
	return m
}

// IsInTopPercent reports whether a hand's class is inside the top p percent.
func IsInTopPercent(h poker.Hand, p float64) bool {
	i, ok := classPosition[Shorthand(h)]
	return ok && i < topCount(p)
}

// GridClass returns the class shown at row, col of the usual 13x13 chart:
// aces in the first row and column, suited hands above the diagonal.
func GridClass(row, col int) Class {
	hi := poker.Ace - poker.Rank(row)
	lo := poker.Ace - poker.Rank(col)
	switch {
	case row == col:
		return Class{High: hi, Low: hi}
	case row < col:
		return Class{High: hi, Low: lo, Suited: true}
	default:
		return Class{High: lo, Low: hi}
	}
}
