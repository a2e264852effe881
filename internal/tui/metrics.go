package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/format"
)

// MetricsModel displays runtime memory figures and evaluation statistics.
type MetricsModel struct {
	alloc        uint64
	heapInuse    uint64
	numGC        uint32
	pauseTotalNs uint64
	numGoroutine int

	// speed is the smoothed comparison progress per second.
	speed        float64
	lastProgress float64
	lastUpdate   time.Time

	evaluations   int
	totalDuration time.Duration
	lastBits      int
	lastDigits    int

	width  int
	height int
}

// NewMetricsModel creates a new metrics panel.
func NewMetricsModel() MetricsModel {
	return MetricsModel{
		lastUpdate: time.Now(),
	}
}

// SetSize updates dimensions.
func (m *MetricsModel) SetSize(w, h int) {
	m.width = w
	m.height = h
}

// UpdateMemStats updates memory statistics.
func (m *MetricsModel) UpdateMemStats(msg MemStatsMsg) {
	m.alloc = msg.Alloc
	m.heapInuse = msg.HeapInuse
	m.numGC = msg.NumGC
	m.pauseTotalNs = msg.PauseTotalNs
	m.numGoroutine = msg.NumGoroutine
}

// UpdateProgress updates the comparison speed with exponential smoothing.
func (m *MetricsModel) UpdateProgress(progress float64) {
	now := time.Now()
	dt := now.Sub(m.lastUpdate).Seconds()
	if dt > 0.05 {
		dp := progress - m.lastProgress
		if dp > 0 {
			instantSpeed := dp / dt
			if m.speed > 0 {
				m.speed = 0.7*m.speed + 0.3*instantSpeed
			} else {
				m.speed = instantSpeed
			}
		}
		m.lastProgress = progress
		m.lastUpdate = now
	}
}

// ResetProgress clears the comparison speed before a new run.
func (m *MetricsModel) ResetProgress() {
	m.speed = 0
	m.lastProgress = 0
	m.lastUpdate = time.Now()
}

// RecordEvaluation accounts for one evaluated expression.
func (m *MetricsModel) RecordEvaluation(res calc.Result, outBase int) {
	m.evaluations++
	m.totalDuration += res.Duration
	m.lastBits = res.Value.BitLen()
	m.lastDigits = len(res.Value.Abs().Text(outBase))
}

func (m MetricsModel) averageDuration() time.Duration {
	if m.evaluations == 0 {
		return 0
	}
	return m.totalDuration / time.Duration(m.evaluations)
}

// View renders the metrics panel.
func (m MetricsModel) View() string {
	var rows strings.Builder
	rows.WriteString(titleStyle.Render("Metrics"))

	heapStr := metricValueStyle.Render(format.FormatBytes(m.alloc) + " / " + format.FormatBytes(m.heapInuse))
	gcStr := metricValueStyle.Render(fmt.Sprintf("%d (%.1fms)", m.numGC, float64(m.pauseTotalNs)/1e6))
	rows.WriteString(fmt.Sprintf("\n  %s %s%s%s %s",
		metricLabelStyle.Render("Heap:"), heapStr,
		metricLabelStyle.Render(" | "),
		metricLabelStyle.Render("GC Runs:"), gcStr))

	colWidth := (m.width - 6) / 2
	speed := "-"
	if m.speed > 0 {
		speed = fmt.Sprintf("%.0f%%/s", m.speed*100)
	}
	leftCol := []string{
		formatMetricCol("Evaluations:", fmt.Sprint(m.evaluations), colWidth),
		formatMetricCol("Last bits:", format.FormatNumberString(fmt.Sprint(m.lastBits)), colWidth),
		formatMetricCol("Speed:", speed, colWidth),
	}
	rightCol := []string{
		formatMetricCol("Avg time:", format.FormatExecutionDuration(m.averageDuration()), colWidth),
		formatMetricCol("Last digits:", format.FormatNumberString(fmt.Sprint(m.lastDigits)), colWidth),
		formatMetricCol("Goroutines:", fmt.Sprint(m.numGoroutine), colWidth),
	}
	for i := range leftCol {
		rows.WriteString("\n")
		rows.WriteString(leftCol[i])
		rows.WriteString(rightCol[i])
	}

	style := panelStyle
	if m.width > 2 {
		style = style.Width(m.width - 2)
	}
	if m.height > 2 {
		style = style.Height(m.height - 2)
	}
	return style.Render(rows.String())
}

func formatMetricCol(label, value string, colWidth int) string {
	cell := fmt.Sprintf(" %s %s",
		metricLabelStyle.Render(fmt.Sprintf("%-12s", label)),
		metricValueStyle.Render(value))
	if visible := lipgloss.Width(cell); visible < colWidth {
		cell += strings.Repeat(" ", colWidth-visible)
	}
	return cell
}
