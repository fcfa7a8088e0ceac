package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/umputun/toggler/app/enum"
)

var (
	colorWhite = lipgloss.AdaptiveColor{Light: "0", Dark: "15"}
	colorDim   = lipgloss.AdaptiveColor{Light: "242", Dark: "240"}
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorWhite)

	paletteNameStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	statusLabelStyle = lipgloss.NewStyle().
				Foreground(colorDim)

	statusStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorDim).
			Padding(0, 1)

	buttonBase = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 3).
			MarginRight(2)
)

// buttonStyle returns the style of a button painted with the token's colors.
func buttonStyle(c enum.Color) lipgloss.Style {
	return buttonBase.
		Background(lipgloss.Color(c.Background())).
		Foreground(lipgloss.Color(c.Foreground()))
}
