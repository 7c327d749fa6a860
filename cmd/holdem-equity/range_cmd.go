package main

import (
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/lox/holdem-equity/analysis"
)

// RangeCmd expands range notation such as "TT+,AQs+,KJo".
type RangeCmd struct {
	Notation []string `arg:"" help:"Range notation; several arguments are joined with commas"`
	Hands    bool     `help:"List every hand combination"`
}

func (cmd *RangeCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}

	text := strings.Join(cmd.Notation, ",")
	r, err := analysis.ParseRange(text)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(g.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
		headerStyle.Render("class"),
		headerStyle.Render("combos"),
		headerStyle.Render("rank"),
		headerStyle.Render("tier"))
	for _, n := range r.Notations() {
		combos, err := analysis.Combos(n)
		if err != nil {
			return err
		}
		pos, _ := analysis.Position(n)
		class, err := analysis.ParseClass(n)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", nameStyle.Render(n), len(combos), pos+1, categoryStyle.Render(string(class.Tier())))
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(g.Stdout, "\n%d classes, %d combos (%.1f%% of hands)\n",
		len(r.Notations()), r.Size(), 100*float64(r.Size())/1326)

	if cmd.Hands {
		hands := r.Hands()
		parts := make([]string, len(hands))
		for i, h := range hands {
			parts[i] = h.String()
		}
		fmt.Fprintf(g.Stdout, "\n%s\n", strings.Join(parts, " "))
	}
	return nil
}
