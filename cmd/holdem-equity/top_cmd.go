package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-equity/analysis"
	"github.com/lox/holdem-equity/poker"
)

// TopCmd lists the starting hands within the top percentage.
type TopCmd struct {
	Percent float64 `arg:"" help:"Percentage of the 169 starting hand classes (0-100)"`
	Grid    bool    `short:"g" help:"Show the selection on a 13x13 grid"`
	Hand    string  `help:"Check whether a hand (e.g. 'AhKd') is inside the selection"`
}

func (cmd *TopCmd) Run(g *Globals) error {
	if _, _, err := g.setup(); err != nil {
		return err
	}

	if cmd.Hand != "" {
		h, err := poker.ParseHand(cmd.Hand)
		if err != nil {
			return err
		}
		verdict := "outside"
		if analysis.IsInTopPercent(h, cmd.Percent) {
			verdict = "inside"
		}
		fmt.Fprintf(g.Stdout, "%s (%s, %s) is %s the top %g%%, percentile %.3f\n",
			h, analysis.Shorthand(h), analysis.TierOf(h), verdict, cmd.Percent, analysis.Percentile(h))
		return nil
	}

	if cmd.Grid {
		fmt.Fprintln(g.Stdout, renderGrid(analysis.MaskForPercent(cmd.Percent)))
		return nil
	}

	top := analysis.TopByPercent(cmd.Percent)
	fmt.Fprintf(g.Stdout, "%s\n%s\n",
		headerStyle.Render(fmt.Sprintf("top %g%%: %d classes", cmd.Percent, len(top))),
		strings.Join(top, " "))
	return nil
}

// renderGrid draws the usual starting hand chart with the masked classes
// highlighted.
func renderGrid(mask analysis.Mask) string {
	rows := make([]string, 13)
	for row := range 13 {
		cells := make([]string, 13)
		for col := range 13 {
			c := analysis.GridClass(row, col)
			style := dimCellStyle
			if mask.Contains(c) {
				style = selectedCellStyle
			}
			cells[col] = style.Render(c.String())
		}
		rows[row] = lipgloss.JoinHorizontal(lipgloss.Top, cells...)
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}
