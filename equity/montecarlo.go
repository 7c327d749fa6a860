package equity

import (
	"context"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/lox/holdem-equity/internal/randutil"
	"github.com/lox/holdem-equity/internal/statistics"
	"github.com/lox/holdem-equity/poker"
)

// DefaultStreams is the number of independent random streams a simulation is
// split into. It is fixed rather than tied to the CPU count so that a seed
// gives the same answer on every machine.
const DefaultStreams = 8

const cancelCheckInterval = 1024

// MonteCarlo is the built-in equity engine.
type MonteCarlo struct {
	streams     int
	parallelism int
}

// Option configures a MonteCarlo engine.
type Option func(*MonteCarlo)

// WithStreams sets how many random streams trials are split into.
// Changing it changes the sampled outcome for a given seed.
func WithStreams(n int) Option {
	return func(m *MonteCarlo) {
		if n > 0 {
			m.streams = n
		}
	}
}

// WithParallelism caps how many streams run at once. It never affects results.
func WithParallelism(n int) Option {
	return func(m *MonteCarlo) {
		if n > 0 {
			m.parallelism = n
		}
	}
}

// NewMonteCarlo creates an engine.
func NewMonteCarlo(opts ...Option) *MonteCarlo {
	m := &MonteCarlo{
		streams:     DefaultStreams,
		parallelism: runtime.GOMAXPROCS(0),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Simulate implements Simulator.
func (m *MonteCarlo) Simulate(ctx context.Context, players []PlayerSpec, board []poker.Card, trials int, seed int64) (map[string]float64, error) {
	res, err := m.Run(ctx, Request{Players: players, Board: board, Trials: trials, Seed: seed})
	if err != nil {
		return nil, err
	}
	return res.Equities(), nil
}

// Run simulates a request and returns per-player totals.
func (m *MonteCarlo) Run(ctx context.Context, req Request) (*Result, error) {
	used, err := Validate(req.Players, req.Board)
	if err != nil {
		return nil, err
	}

	base := poker.NewDeck(nil)
	base.RemoveExcluding(used...)

	if IsExact(req.Players, req.Board) {
		t := newTally(len(req.Players))
		if err := t.runTrials(ctx, base, req, 1); err != nil {
			return nil, err
		}
		res := t.result(req.Players)
		res.Exact = true
		return res, nil
	}

	if req.Trials < 1 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidTrials, req.Trials)
	}

	streams := min(m.streams, req.Trials)
	tallies := make([]*tally, streams)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(m.parallelism)
	for s := range streams {
		count := req.Trials / streams
		if s < req.Trials%streams {
			count++
		}
		g.Go(func() error {
			t := newTally(len(req.Players))
			t.rng = randutil.Derive(req.Seed, s)
			if err := t.runTrials(ctx, base, req, count); err != nil {
				return err
			}
			tallies[s] = t
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	// Reduce in stream order so the floating point sums are reproducible.
	total := newTally(len(req.Players))
	for _, t := range tallies {
		total.merge(t)
	}
	return total.result(req.Players), nil
}

// IsExact reports whether the board is complete and every hand known, so one
// evaluation decides the outcome.
func IsExact(players []PlayerSpec, board []poker.Card) bool {
	if len(board) != 5 {
		return false
	}
	for _, p := range players {
		if p.Hand == nil {
			return false
		}
	}
	return true
}

// tally accumulates outcomes for one stream. It is owned by one goroutine.
type tally struct {
	rng        *rand.Rand
	share      []statistics.Sample
	wins       []int
	ties       []int
	categories [][poker.NumCategories]int
}

func newTally(players int) *tally {
	return &tally{
		share:      make([]statistics.Sample, players),
		wins:       make([]int, players),
		ties:       make([]int, players),
		categories: make([][poker.NumCategories]int, players),
	}
}

// runTrials completes the unknown cards count times from a private copy of
// base and records the winners of each deal.
func (t *tally) runTrials(ctx context.Context, base *poker.Deck, req Request, count int) error {
	deck := base.WithRand(t.rng)
	holes := make([][2]poker.Card, len(req.Players))
	scores := make([]poker.Score, len(req.Players))
	var board [5]poker.Card
	var seven [7]poker.Card

	for n := range count {
		if n%cancelCheckInterval == 0 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		deck.CopyFrom(base)

		for i, p := range req.Players {
			if p.Hand != nil {
				holes[i] = p.Hand.Cards()
				continue
			}
			for j := range holes[i] {
				c, err := deck.DrawRandom()
				if err != nil {
					return err
				}
				holes[i][j] = c
			}
		}

		copy(board[:], req.Board)
		for k := len(req.Board); k < len(board); k++ {
			c, err := deck.DrawRandom()
			if err != nil {
				return err
			}
			board[k] = c
		}

		copy(seven[2:], board[:])
		for i := range holes {
			copy(seven[:2], holes[i][:])
			scores[i] = poker.ScoreOf(seven[:])
		}
		t.record(scores)
	}
	return nil
}

// record splits one win unit evenly among the players with the top score.
// Every player gets an observation so the spread of each share is tracked.
func (t *tally) record(scores []poker.Score) {
	best := scores[0]
	for _, s := range scores[1:] {
		best = max(best, s)
	}
	winners := 0
	for i, s := range scores {
		t.categories[i][s.Category()]++
		if s == best {
			winners++
		}
	}
	portion := 1 / float64(winners)
	for i, s := range scores {
		if s != best {
			t.share[i].Add(0)
			continue
		}
		t.share[i].Add(portion)
		if winners == 1 {
			t.wins[i]++
		} else {
			t.ties[i]++
		}
	}
}

func (t *tally) merge(o *tally) {
	for i := range t.share {
		t.share[i].Merge(o.share[i])
		t.wins[i] += o.wins[i]
		t.ties[i] += o.ties[i]
		for c := range t.categories[i] {
			t.categories[i][c] += o.categories[i][c]
		}
	}
}

func (t *tally) result(players []PlayerSpec) *Result {
	res := &Result{
		Players:    make([]PlayerResult, len(players)),
		Iterations: t.share[0].N,
	}
	for i, p := range players {
		res.Players[i] = PlayerResult{
			Name:       p.Name,
			Equity:     100 * t.share[i].Mean(),
			StdErr:     100 * t.share[i].StdError(),
			Wins:       t.wins[i],
			Ties:       t.ties[i],
			Categories: t.categories[i],
		}
	}
	return res
}
