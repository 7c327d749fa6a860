package main

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/lox/holdem-equity/poker"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("15"))

	nameStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("14"))

	winStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10"))

	tieStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("11"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("12"))

	percentStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	redSuitStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))

	cellStyle = lipgloss.NewStyle().
			Width(4).
			Align(lipgloss.Center)

	selectedCellStyle = cellStyle.
				Bold(true).
				Foreground(lipgloss.Color("0")).
				Background(lipgloss.Color("10"))

	dimCellStyle = cellStyle.
			Foreground(lipgloss.Color("8"))
)

// formatCards renders cards with suit symbols, red suits coloured.
func formatCards(cards []poker.Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		if c.Suit().IsRed() {
			parts[i] = redSuitStyle.Render(c.Pretty())
		} else {
			parts[i] = c.Pretty()
		}
	}
	return strings.Join(parts, " ")
}
