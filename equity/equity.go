// Package equity estimates each player's share of the pot by completing the
// unknown cards at random and comparing the best five-card hands.
package equity

import (
	"context"
	"errors"
	"fmt"

	"github.com/lox/holdem-equity/poker"
)

var (
	// ErrNoPlayers is returned when a simulation has nobody to evaluate.
	ErrNoPlayers = errors.New("no players")

	// ErrInvalidPlayer is returned for empty or repeated player names.
	ErrInvalidPlayer = errors.New("invalid player")

	// ErrInvalidTrials is returned when sampling is needed but trials < 1.
	ErrInvalidTrials = errors.New("invalid trial count")
)

// PlayerSpec names a player and, when known, their hole cards.
type PlayerSpec struct {
	Name string
	Hand *poker.Hand // nil when the hole cards are unknown
}

// Known returns a player whose hole cards are fixed.
func Known(name string, h poker.Hand) PlayerSpec {
	return PlayerSpec{Name: name, Hand: &h}
}

// Unknown returns a player whose hole cards are sampled.
func Unknown(name string) PlayerSpec {
	return PlayerSpec{Name: name}
}

// Simulator computes each player's equity as a percentage keyed by name.
// Percentages sum to 100. Identical inputs and seed give identical output.
type Simulator interface {
	Simulate(ctx context.Context, players []PlayerSpec, board []poker.Card, trials int, seed int64) (map[string]float64, error)
}

// Request bundles the inputs of one simulation.
type Request struct {
	Players []PlayerSpec
	Board   []poker.Card
	Trials  int
	Seed    int64
}

// PlayerResult holds one player's totals.
type PlayerResult struct {
	Name string
	// Equity is the percentage of the pot won on average, ties split.
	Equity float64
	// StdErr is the standard error of Equity in percentage points.
	StdErr float64
	// Wins counts iterations won outright, Ties those shared with others.
	Wins int
	Ties int
	// Categories counts how often the player's best hand fell in each category.
	Categories [poker.NumCategories]int
}

// Result is the outcome of a simulation.
type Result struct {
	Players    []PlayerResult
	Iterations int
	// Exact is set when the board and every hand were known, so a single
	// evaluation decided the outcome.
	Exact bool
}

// Equities returns the percentage for each player keyed by name.
func (r *Result) Equities() map[string]float64 {
	out := make(map[string]float64, len(r.Players))
	for _, p := range r.Players {
		out[p.Name] = p.Equity
	}
	return out
}

// Validate checks players and board for the conditions every simulator relies
// on and returns the cards already in play.
func Validate(players []PlayerSpec, board []poker.Card) ([]poker.Card, error) {
	if len(players) == 0 {
		return nil, ErrNoPlayers
	}
	if len(board) > 5 {
		return nil, fmt.Errorf("%w: board has %d cards", poker.ErrInvalidHandSize, len(board))
	}

	names := make(map[string]bool, len(players))
	used := make([]poker.Card, 0, len(board)+2*len(players))
	used = append(used, board...)
	unknown := 0
	for _, p := range players {
		if p.Name == "" {
			return nil, fmt.Errorf("%w: empty name", ErrInvalidPlayer)
		}
		if names[p.Name] {
			return nil, fmt.Errorf("%w: %q listed twice", ErrInvalidPlayer, p.Name)
		}
		names[p.Name] = true
		if p.Hand == nil {
			unknown++
			continue
		}
		cards := p.Hand.Cards()
		used = append(used, cards[:]...)
	}

	var seen poker.CardSet
	for _, c := range used {
		if !c.Valid() {
			return nil, fmt.Errorf("%w: %v", poker.ErrInvalidCardCode, c)
		}
		if seen.Contains(c) {
			return nil, fmt.Errorf("%w: %s", poker.ErrDuplicateCard, c)
		}
		seen.Add(c)
	}

	if needed := 2*unknown + 5 - len(board); needed > 52-len(used) {
		return nil, fmt.Errorf("%w: need %d cards, %d left", poker.ErrDeckEmpty, needed, 52-len(used))
	}
	return used, nil
}

// SimulateEquity runs the built-in Monte Carlo engine with default options.
func SimulateEquity(players []PlayerSpec, board []poker.Card, trials int, seed int64) (map[string]float64, error) {
	return NewMonteCarlo().Simulate(context.Background(), players, board, trials, seed)
}
