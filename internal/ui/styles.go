package ui

import "github.com/charmbracelet/lipgloss"

var (
	boldStyle = lipgloss.NewStyle().
			Bold(true)

	highlightStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("33")).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))

	warningStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("214")).
			Bold(true)

	documentStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderLeft(true).
			BorderForeground(lipgloss.Color("240")).
			PaddingLeft(1)
)

func Bold(s string) string      { return boldStyle.Render(s) }
func Highlight(s string) string { return highlightStyle.Render(s) }
func Muted(s string) string     { return mutedStyle.Render(s) }
func Warning(s string) string   { return warningStyle.Render(s) }

// Document frames a rendered markdown document for review before it is written anywhere.
func Document(s string) string {
	return documentStyle.Render(s)
}
