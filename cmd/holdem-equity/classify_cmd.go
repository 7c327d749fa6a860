package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/holdem-equity/poker"
)

// ClassifyCmd shows the best five-card hand from 5 to 7 cards.
type ClassifyCmd struct {
	Cards string `arg:"" help:"Five to seven cards (e.g. 'AhKhQhJhTh9c2d')"`
}

func (cmd *ClassifyCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}

	cards, err := poker.ParseCards(cmd.Cards)
	if err != nil {
		return err
	}
	best, err := poker.Evaluate(cards)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("hand"), nameStyle.Render(best.String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("category"), categoryStyle.Render(best.Category.String()))
	fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("cards"), formatCards(best.Cards[:]))
	fmt.Fprintf(w, "%s\t%#x\n", headerStyle.Render("score"), uint64(best.Score()))

	// Draws only make sense with cards still to come. With six cards the
	// best five are checked.
	if len(cards) < 7 {
		draws, err := poker.DetectDraws(best.Cards[:])
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%s\n", headerStyle.Render("draws"), draws)
	}
	return w.Flush()
}
