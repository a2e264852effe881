package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// maxHistoryLines bounds the scrollback.
const maxHistoryLines = 1000

type lineKind int

const (
	lineInput lineKind = iota
	lineValue
	lineNote
	lineError
)

type historyLine struct {
	time time.Time
	kind lineKind
	text string
}

// HistoryModel is the scrolling panel of evaluated expressions. It also keeps
// the submitted inputs for recall with the arrow keys.
type HistoryModel struct {
	lines  []historyLine
	inputs []string
	recall int
	draft  string
	offset int
	width  int
	height int
}

// NewHistoryModel creates an empty history.
func NewHistoryModel() HistoryModel {
	return HistoryModel{}
}

// SetSize updates dimensions.
func (h *HistoryModel) SetSize(w, height int) {
	h.width = w
	h.height = height
}

func (h *HistoryModel) add(kind lineKind, text string) {
	h.lines = append(h.lines, historyLine{time: time.Now(), kind: kind, text: text})
	if len(h.lines) > maxHistoryLines {
		h.lines = h.lines[len(h.lines)-maxHistoryLines:]
	}
	h.offset = 0
}

// valueWidth is the room left for a value after the timestamp and label.
func (h HistoryModel) valueWidth() int {
	return max(h.width-16, 24)
}

func (h *HistoryModel) addValue(label string, v bigint.Int, out cli.OutputConfig) {
	h.add(lineValue, label+" "+format.TruncateMiddle(cli.FormatValue(v, out), h.valueWidth()))
}

// AddResult records a successful evaluation.
func (h *HistoryModel) AddResult(input string, res calc.Result, out cli.OutputConfig) {
	h.add(lineInput, "› "+input)
	label := "="
	if res.Expr.Op == calc.OpCmp {
		label = "cmp"
	}
	h.addValue(label, res.Value, out)
	if res.HasRemainder {
		h.addValue("r", res.Remainder, out)
	}
	details := fmt.Sprintf("%s · %d bits", format.FormatExecutionDuration(res.Duration), res.Value.BitLen())
	if res.Strategy != "" {
		details = res.Strategy + " · " + details
	}
	h.add(lineNote, details)
}

// AddError records a failed evaluation.
func (h *HistoryModel) AddError(input string, err error) {
	if input != "" {
		h.add(lineInput, "› "+input)
	}
	h.add(lineError, "✗ "+err.Error())
}

// AddNote records an informational line.
func (h *HistoryModel) AddNote(text string) {
	h.add(lineNote, text)
}

// AddComparison records one line per strategy of a comparison.
func (h *HistoryModel) AddComparison(results []orchestration.StrategyResult) {
	for _, r := range results {
		if r.Err != nil {
			h.add(lineError, fmt.Sprintf("  %-12s ✗ %v", r.Name, r.Err))
			continue
		}
		h.add(lineNote, fmt.Sprintf("  %-12s %10s ✓", r.Name, format.FormatExecutionDuration(r.Duration)))
	}
}

// AddFinal records the outcome every strategy agreed on.
func (h *HistoryModel) AddFinal(res orchestration.StrategyResult, out cli.OutputConfig) {
	h.addValue("=", bigint.FromMagnitude(magnitude.SignPos, res.Outcome.Value), out)
	if res.Outcome.Remainder != nil {
		h.addValue("r", bigint.FromMagnitude(magnitude.SignPos, res.Outcome.Remainder), out)
	}
}

// Remember stores a submitted input for recall, skipping immediate repeats.
func (h *HistoryModel) Remember(input string) {
	if n := len(h.inputs); n == 0 || h.inputs[n-1] != input {
		h.inputs = append(h.inputs, input)
	}
	h.recall = len(h.inputs)
	h.draft = ""
}

// Prev returns the previous input. current is saved as a draft when recall
// starts so that Next can restore it.
func (h *HistoryModel) Prev(current string) (string, bool) {
	if h.recall == 0 {
		return "", false
	}
	if h.recall == len(h.inputs) {
		h.draft = current
	}
	h.recall--
	return h.inputs[h.recall], true
}

// Next returns the following input, or the draft past the newest one.
func (h *HistoryModel) Next() (string, bool) {
	if h.recall >= len(h.inputs) {
		return "", false
	}
	h.recall++
	if h.recall == len(h.inputs) {
		return h.draft, true
	}
	return h.inputs[h.recall], true
}

// Scroll moves the view by delta lines; positive values go back in time.
func (h *HistoryModel) Scroll(delta int) {
	h.offset = min(max(h.offset+delta, 0), max(len(h.lines)-h.visibleLines(), 0))
}

// Reset clears the panel but keeps the inputs available for recall.
func (h *HistoryModel) Reset() {
	h.lines = nil
	h.offset = 0
}

func (h HistoryModel) visibleLines() int {
	return max(h.height-3, 1)
}

func renderLine(l historyLine) string {
	var text string
	switch l.kind {
	case lineInput:
		text = historyInputStyle.Render(l.text)
	case lineValue:
		text = historyValueStyle.Render(l.text)
	case lineError:
		text = historyErrorStyle.Render(l.text)
	default:
		text = historyNoteStyle.Render(l.text)
	}
	return historyTimeStyle.Render(l.time.Format("15:04:05")) + " " + text
}

// View renders the panel.
func (h HistoryModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("History"))

	visible := h.visibleLines()
	if h.offset > 0 {
		visible = max(visible-1, 1)
	}
	end := len(h.lines) - h.offset
	start := max(end-visible, 0)
	if len(h.lines) == 0 {
		b.WriteString("\n" + dimStyle.Render("Type an expression such as 1 << 64 or 0xff * 3 and press enter."))
	}
	for _, l := range h.lines[start:end] {
		b.WriteString("\n")
		b.WriteString(renderLine(l))
	}
	if h.offset > 0 {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("↓ %d more", h.offset)))
	}

	style := panelStyle
	if h.width > 2 {
		style = style.Width(h.width - 2)
	}
	if h.height > 2 {
		style = style.Height(h.height - 2)
	}
	return style.Render(b.String())
}
