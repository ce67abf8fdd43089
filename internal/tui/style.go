package tui

import "github.com/charmbracelet/lipgloss"

type Style struct {
	Title    lipgloss.Style
	Subtitle lipgloss.Style
	Input    lipgloss.Style
	Button   lipgloss.Style
	Error    lipgloss.Style
	Card     lipgloss.Style
	Footer   lipgloss.Style
}

func DefaultStyles() *Style {
	blue := lipgloss.Color("#2563EB")

	return &Style{
		Title:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFFFFF")).Background(blue).Padding(0, 1),
		Subtitle: lipgloss.NewStyle().Faint(true),
		Input:    lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(blue).Padding(0, 1),
		Button:   lipgloss.NewStyle().Foreground(lipgloss.Color("#FFFFFF")).Background(blue).Padding(0, 2),
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("#EF4444")),
		Card:     lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#93C5FD")).Padding(0, 1),
		Footer:   lipgloss.NewStyle().MarginTop(1),
	}
}
