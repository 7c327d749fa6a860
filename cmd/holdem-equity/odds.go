package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/lox/holdem-equity/equity"
	"github.com/lox/holdem-equity/internal/accel"
	"github.com/lox/holdem-equity/poker"
)

// OddsCmd estimates equity for a set of players.
type OddsCmd struct {
	Players []string `arg:"" help:"Players as name=AhKd, or name=? for unknown hole cards. The name is optional"`
	Board   string   `short:"b" help:"Community cards (e.g. 'Td7s8h')"`
	Trials  int      `short:"t" help:"Monte Carlo trials (0 = from config by street)"`
	Seed    *int64   `help:"Random seed for reproducible results"`
	Details bool     `short:"d" help:"Show made-hand category breakdown"`
}

func (cmd *OddsCmd) Run(g *Globals, ctx context.Context) error {
	cfg, logger, err := g.setup()
	if err != nil {
		return err
	}

	players, err := parsePlayers(cmd.Players)
	if err != nil {
		return err
	}
	board, err := poker.ParseBoard(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	trials := cmd.Trials
	if trials == 0 {
		trials = cfg.TrialsFor(board.Len())
	}
	seed := time.Now().UnixNano()
	if cmd.Seed != nil {
		seed = *cmd.Seed
	}
	logger.Debug("Running simulation", "players", len(players), "board", board, "trials", trials, "seed", seed)

	sim := accel.Select(cfg, logger)
	start := time.Now()

	// The built-in engine reports win, tie and category counts as well.
	if mc, ok := sim.(*equity.MonteCarlo); ok {
		res, err := mc.Run(ctx, equity.Request{
			Players: players,
			Board:   board.Cards(),
			Trials:  trials,
			Seed:    seed,
		})
		if err != nil {
			return err
		}
		displayResult(g.Stdout, players, board, res, true, cmd.Details, time.Since(start))
		return nil
	}

	equities, err := sim.Simulate(ctx, players, board.Cards(), trials, seed)
	if err != nil {
		return err
	}
	res := externalResult(players, board.Cards(), trials, equities)
	displayResult(g.Stdout, players, board, res, false, false, time.Since(start))
	return nil
}

// externalResult wraps the equities reported by an accelerator, which carry no
// win, tie or category counts.
func externalResult(players []equity.PlayerSpec, board []poker.Card, trials int, equities map[string]float64) *equity.Result {
	res := &equity.Result{Iterations: trials, Exact: equity.IsExact(players, board)}
	if res.Exact {
		res.Iterations = 1
	}
	for _, p := range players {
		res.Players = append(res.Players, equity.PlayerResult{Name: p.Name, Equity: equities[p.Name]})
	}
	return res
}

// parsePlayers reads name=cards arguments. Bare cards are named after
// themselves and a bare "?" gets a seat name.
func parsePlayers(args []string) ([]equity.PlayerSpec, error) {
	players := make([]equity.PlayerSpec, 0, len(args))
	for i, arg := range args {
		name, cards, found := strings.Cut(strings.TrimSpace(arg), "=")
		if !found {
			cards = name
			name = ""
		}
		cards = strings.ReplaceAll(cards, " ", "")

		if cards == "?" {
			if name == "" {
				name = fmt.Sprintf("player %d", i+1)
			}
			players = append(players, equity.Unknown(name))
			continue
		}

		hand, err := poker.ParseHand(cards)
		if err != nil {
			return nil, fmt.Errorf("player %d: %w", i+1, err)
		}
		if name == "" {
			name = hand.String()
		}
		players = append(players, equity.Known(name, hand))
	}
	return players, nil
}

func displayResult(out io.Writer, players []equity.PlayerSpec, board poker.Board, res *equity.Result, counts, details bool, duration time.Duration) {
	if board.Len() > 0 {
		fmt.Fprintf(out, "%s\n", headerStyle.Render(board.Street().String()))
		fmt.Fprintf(out, "%s\n\n", formatCards(board.Cards()))
	}

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("player"),
		headerStyle.Render("hand"),
		headerStyle.Render("equity"),
		headerStyle.Render("win"),
		headerStyle.Render("tie"))

	for i, p := range res.Players {
		hand := "??"
		if players[i].Hand != nil {
			cards := players[i].Hand.Cards()
			hand = formatCards(cards[:])
		}
		win, tie := "-", "-"
		if counts {
			win = fmt.Sprintf("%.1f%%", 100*float64(p.Wins)/float64(res.Iterations))
			tie = fmt.Sprintf("%.1f%%", 100*float64(p.Ties)/float64(res.Iterations))
		}
		eq := fmt.Sprintf("%.2f%%", p.Equity)
		if counts && !res.Exact {
			eq += fmt.Sprintf(" ±%.2f", 1.96*p.StdErr)
		}
		fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
			nameStyle.Render(p.Name),
			hand,
			percentStyle.Render(eq),
			winStyle.Render(win),
			tieStyle.Render(tie))
	}
	_ = w.Flush()

	if details {
		fmt.Fprintln(out)
		displayCategories(out, res)
	}

	fmt.Fprintln(out)
	if res.Exact {
		fmt.Fprintf(out, "exact result in %v\n", duration.Truncate(time.Microsecond))
		return
	}
	fmt.Fprintf(out, "%d iterations in %v\n", res.Iterations, duration.Truncate(time.Millisecond))
}

func displayCategories(out io.Writer, res *equity.Result) {
	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)

	fmt.Fprintf(w, "%s", categoryStyle.Render("hand"))
	for _, p := range res.Players {
		fmt.Fprintf(w, "\t%s", nameStyle.Render(p.Name))
	}
	fmt.Fprintln(w)

	for cat := poker.StraightFlush; ; cat-- {
		seen := false
		for _, p := range res.Players {
			seen = seen || p.Categories[cat] > 0
		}
		if seen {
			fmt.Fprintf(w, "%s", categoryStyle.Render(cat.String()))
			for _, p := range res.Players {
				if n := p.Categories[cat]; n > 0 {
					fmt.Fprintf(w, "\t%s", percentStyle.Render(fmt.Sprintf("%.1f%%", 100*float64(n)/float64(res.Iterations))))
				} else {
					fmt.Fprintf(w, "\t%s", percentStyle.Render("."))
				}
			}
			fmt.Fprintln(w)
		}
		if cat == poker.HighCard {
			break
		}
	}
	_ = w.Flush()
}
