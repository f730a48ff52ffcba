package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Gruvbox-inspired color palette.
var (
	colorGreen  = lipgloss.Color("#8ec07c")
	colorYellow = lipgloss.Color("#fabd2f")
	colorRed    = lipgloss.Color("#fb4934")
	colorBlue   = lipgloss.Color("#83a598")
	colorPurple = lipgloss.Color("#d3869b")
	colorDim    = lipgloss.Color("#928374")
	colorFg     = lipgloss.Color("#ebdbb2")
	colorHeader = lipgloss.Color("#fe8019")
)

var (
	styleGreen  = lipgloss.NewStyle().Foreground(colorGreen)
	styleYellow = lipgloss.NewStyle().Foreground(colorYellow)
	styleRed    = lipgloss.NewStyle().Foreground(colorRed)
	styleBlue   = lipgloss.NewStyle().Foreground(colorBlue)
	stylePurple = lipgloss.NewStyle().Foreground(colorPurple)
	styleDim    = lipgloss.NewStyle().Foreground(colorDim)
	styleBold   = lipgloss.NewStyle().Foreground(colorFg).Bold(true)
	styleHeader = lipgloss.NewStyle().Foreground(colorHeader).Bold(true)
)

// header renders a section header with an underline.
func header(text string) string {
	upper := strings.ToUpper(text)
	line := strings.Repeat("─", lipgloss.Width(upper))
	return fmt.Sprintf("%s\n%s", styleHeader.Render(upper), styleDim.Render(line))
}

func dim(text string) string {
	return styleDim.Render(text)
}

func bold(text string) string {
	return styleBold.Render(text)
}

// checkbox renders the completion marker for an agenda line.
func checkbox(done bool) string {
	if done {
		return styleGreen.Render("[✓]")
	}
	return styleDim.Render("[ ]")
}

// itemTypeStyle picks a color per agenda item type so mixed views stay
// scannable.
func itemTypeStyle(itemType string) lipgloss.Style {
	switch itemType {
	case "task":
		return styleBlue
	case "habit":
		return styleGreen
	case "journal":
		return stylePurple
	default:
		return styleDim
	}
}

// progressBar renders a fixed-width percentage bar.
func progressBar(percent int, width int) string {
	if percent < 0 {
		percent = 0
	}
	if percent > 100 {
		percent = 100
	}
	filled := percent * width / 100
	bar := strings.Repeat("█", filled) + strings.Repeat("░", width-filled)

	style := styleRed
	switch {
	case percent >= 80:
		style = styleGreen
	case percent >= 50:
		style = styleYellow
	}
	return fmt.Sprintf("%s %3d%%", style.Render(bar), percent)
}
