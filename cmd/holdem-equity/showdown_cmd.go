package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/lox/holdem-equity/equity"
	"github.com/lox/holdem-equity/poker"
)

// ShowdownCmd ranks known hands on a complete board.
type ShowdownCmd struct {
	Players []string `arg:"" help:"Players as name=AhKd. The name is optional"`
	Board   string   `short:"b" required:"" help:"All five community cards (e.g. 'Td7s8h2c5d')"`
}

func (cmd *ShowdownCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}

	players, err := parsePlayers(cmd.Players)
	if err != nil {
		return err
	}
	board, err := poker.ParseCards(cmd.Board)
	if err != nil {
		return fmt.Errorf("board: %w", err)
	}

	standings, err := equity.Showdown(players, board)
	if err != nil {
		return err
	}

	fmt.Fprintf(g.Stdout, "%s\n%s\n\n", headerStyle.Render("river"), formatCards(board))

	w := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
		headerStyle.Render("place"),
		headerStyle.Render("player"),
		headerStyle.Render("hand"),
		headerStyle.Render("best five"),
		headerStyle.Render("description"))
	for _, s := range standings {
		hole := s.Hand.Cards()
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n",
			s.Place,
			nameStyle.Render(s.Name),
			formatCards(hole[:]),
			formatCards(s.Best.Cards[:]),
			categoryStyle.Render(s.Best.String()))
	}
	return w.Flush()
}
