package tui

import (
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/format"
)

// HeaderModel renders the top bar: title, version, active radixes and
// strategies, and session time.
type HeaderModel struct {
	startTime time.Time
	version   string
	inBase    int
	outBase   int
	mul, div  string
	comparing bool
	width     int
}

// NewHeaderModel creates a new header.
func NewHeaderModel(version string) HeaderModel {
	return HeaderModel{
		startTime: time.Now(),
		version:   version,
		outBase:   10,
	}
}

// SetBases updates the displayed input and output radix.
func (h *HeaderModel) SetBases(in, out int) {
	h.inBase, h.outBase = in, out
}

// SetStrategies updates the displayed strategy names.
func (h *HeaderModel) SetStrategies(mul, div string) {
	h.mul, h.div = mul, div
}

// SetComparing toggles the comparison indicator.
func (h *HeaderModel) SetComparing(on bool) {
	h.comparing = on
}

// SetWidth updates the available width.
func (h *HeaderModel) SetWidth(w int) {
	h.width = w
}

func baseLabel(b int) string {
	if b == 0 {
		return "auto"
	}
	return fmt.Sprint(b)
}

// View renders the header.
func (h HeaderModel) View() string {
	titleText := "bigcalc"
	if h.version != "" && h.version != "dev" {
		titleText += " " + h.version
	}
	pipe := dimStyle.Render(" | ")

	left := titleStyle.Render(titleText) + pipe +
		statusStyle.Render(fmt.Sprintf("in: %s  out: %d", baseLabel(h.inBase), h.outBase)) + pipe +
		statusStyle.Render(fmt.Sprintf("mul: %s  div: %s", h.mul, h.div))

	var right string
	if h.comparing {
		right = runningStyle.Render("comparing") + pipe
	}
	right += dimStyle.Render("Session: " + format.FormatExecutionDuration(time.Since(h.startTime).Truncate(time.Second)))

	gap := max(h.width-2-lipgloss.Width(left)-lipgloss.Width(right), 1)
	return headerStyle.Width(h.width).Render(left + spaces(gap) + right)
}

// spaces returns a string of n space characters.
func spaces(n int) string {
	if n <= 0 {
		return ""
	}
	b := make([]byte, n)
	for i := range b {
		b[i] = ' '
	}
	return string(b)
}
