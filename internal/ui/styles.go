package ui

import (
	"github.com/charmbracelet/lipgloss"
)

// Banner renders a title box in the current TUI palette, used by the REPL
// and the compare mode header.
func Banner(title, subtitle string) string {
	theme := GetCurrentTUITheme()
	titleStyle := lipgloss.NewStyle().Bold(true).Foreground(theme.Accent)
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(theme.Border).
		Padding(0, 2)

	body := titleStyle.Render(title)
	if subtitle != "" {
		body = lipgloss.JoinVertical(lipgloss.Left, body,
			lipgloss.NewStyle().Foreground(theme.Dim).Render(subtitle))
	}
	return box.Render(body)
}

// KeyValue renders "key: value" with an aligned, dimmed key column.
func KeyValue(key string, width int, value string) string {
	theme := GetCurrentTUITheme()
	k := lipgloss.NewStyle().Foreground(theme.Dim).Width(width).Render(key + ":")
	v := lipgloss.NewStyle().Foreground(theme.Text).Render(value)
	return lipgloss.JoinHorizontal(lipgloss.Top, k, " ", v)
}
