package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/ui"
)

// Style variables for the calculator, rebuilt from the ui theme by
// initTUIStyles.
var (
	panelStyle        lipgloss.Style
	headerStyle       lipgloss.Style
	titleStyle        lipgloss.Style
	dimStyle          lipgloss.Style
	statusStyle       lipgloss.Style
	promptStyle       lipgloss.Style
	historyTimeStyle  lipgloss.Style
	historyInputStyle lipgloss.Style
	historyValueStyle lipgloss.Style
	historyNoteStyle  lipgloss.Style
	historyErrorStyle lipgloss.Style
	metricLabelStyle  lipgloss.Style
	metricValueStyle  lipgloss.Style
	chartBarStyle     lipgloss.Style
	chartEmptyStyle   lipgloss.Style
	timingLineStyle   lipgloss.Style
	heapLineStyle     lipgloss.Style
	runningStyle      lipgloss.Style
	doneStyle         lipgloss.Style
)

func init() {
	initTUIStyles()
}

// initTUIStyles rebuilds all styles from the current ui theme. Run calls it
// again once the theme has been chosen.
func initTUIStyles() {
	t := ui.GetCurrentTUITheme()

	panelStyle = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(t.Border).
		Foreground(t.Text)

	headerStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(t.Accent).
		Padding(0, 1)

	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(t.Accent)
	dimStyle = lipgloss.NewStyle().Foreground(t.Dim)
	statusStyle = lipgloss.NewStyle().Foreground(t.Info)
	promptStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)

	historyTimeStyle = lipgloss.NewStyle().Foreground(t.Dim)
	historyInputStyle = lipgloss.NewStyle().Foreground(t.Info)
	historyValueStyle = lipgloss.NewStyle().Foreground(t.Success)
	historyNoteStyle = lipgloss.NewStyle().Foreground(t.Accent)
	historyErrorStyle = lipgloss.NewStyle().Foreground(t.Error)

	metricLabelStyle = lipgloss.NewStyle().Foreground(t.Dim)
	metricValueStyle = lipgloss.NewStyle().Foreground(t.Accent).Bold(true)

	chartBarStyle = lipgloss.NewStyle().Foreground(t.Accent)
	chartEmptyStyle = lipgloss.NewStyle().Foreground(t.Dim)
	timingLineStyle = lipgloss.NewStyle().Foreground(t.Accent)
	heapLineStyle = lipgloss.NewStyle().Foreground(t.Warning)

	runningStyle = lipgloss.NewStyle().Foreground(t.Warning).Bold(true)
	doneStyle = lipgloss.NewStyle().Foreground(t.Success).Bold(true)
}
