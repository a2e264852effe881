package tui

import (
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

const (
	// sparklineOverhead is the width taken by the heap label, the value
	// printed after the sparkline, and the panel borders.
	sparklineOverhead = 17
	// minSparklineHeight is the panel height from which the heap sparkline
	// is shown.
	minSparklineHeight = 10
	// minProgressWidth is the panel width below which the comparison bar
	// is hidden.
	minProgressWidth = 20
)

// ChartModel plots evaluation timings as a braille chart, the heap as a
// sparkline, and the progress of a running comparison.
type ChartModel struct {
	timings *RingBuffer
	heap    *RingBuffer

	averageProgress float64
	eta             time.Duration
	comparing       bool
	lastRun         time.Duration

	width  int
	height int
}

// NewChartModel creates a new chart panel.
func NewChartModel() ChartModel {
	return ChartModel{
		timings: NewRingBuffer(64),
		heap:    NewRingBuffer(64),
	}
}

// SetSize updates dimensions and resizes the sample buffers to the plot
// widths.
func (c *ChartModel) SetSize(w, h int) {
	c.width = w
	c.height = h
	c.timings.Resize(max(2*(w-4), 1))
	c.heap.Resize(max(w-sparklineOverhead, 1))
}

// AddEvaluation records the duration of an evaluation.
func (c *ChartModel) AddEvaluation(d time.Duration) {
	c.timings.Push(float64(d.Microseconds()))
}

// UpdateHeap records a heap sample in bytes.
func (c *ChartModel) UpdateHeap(alloc uint64) {
	c.heap.Push(float64(alloc))
}

// StartComparison clears the progress of the previous comparison.
func (c *ChartModel) StartComparison() {
	c.averageProgress = 0
	c.eta = 0
	c.comparing = true
}

// AddDataPoint records a comparison progress update.
func (c *ChartModel) AddDataPoint(_, average float64, eta time.Duration) {
	c.averageProgress = average
	c.eta = eta
}

// SetDone stops the comparison clock.
func (c *ChartModel) SetDone(elapsed time.Duration) {
	c.comparing = false
	c.lastRun = elapsed
}

// Reset clears every sample.
func (c *ChartModel) Reset() {
	c.timings.Reset()
	c.heap.Reset()
	c.averageProgress = 0
	c.eta = 0
	c.comparing = false
	c.lastRun = 0
}

// logTimings maps durations to log10(1+µs) so that a chart of mixed fast and
// slow evaluations stays readable.
func logTimings(samples []float64) []float64 {
	out := make([]float64, len(samples))
	for i, v := range samples {
		out[i] = math.Log10(1 + max(v, 0))
	}
	return out
}

func (c ChartModel) renderProgressBar() string {
	if c.width < minProgressWidth {
		return ""
	}
	barWidth := c.width - minProgressWidth
	bar := format.ProgressBar(c.averageProgress, barWidth)
	filled := strings.Count(bar, "█")
	line := chartBarStyle.Render(strings.Repeat("█", filled)) +
		chartEmptyStyle.Render(strings.Repeat("░", barWidth-filled)) +
		fmt.Sprintf(" %5.1f%%", min(max(c.averageProgress, 0), 1)*100)
	if c.comparing {
		line += " ETA: " + format.FormatETA(c.eta)
	} else if c.lastRun > 0 {
		line += " in " + format.FormatExecutionDuration(c.lastRun)
	}
	return line
}

// View renders the chart panel.
func (c ChartModel) View() string {
	var b strings.Builder
	b.WriteString(titleStyle.Render("Timing"))

	samples := c.timings.Slice()
	if len(samples) == 0 {
		b.WriteString("\n" + dimStyle.Render("no evaluations yet"))
	} else {
		b.WriteString("\n" + dimStyle.Render(fmt.Sprintf("last %s, slowest %s",
			format.FormatExecutionDuration(time.Duration(c.timings.Last())*time.Microsecond),
			format.FormatExecutionDuration(time.Duration(maxOf(samples))*time.Microsecond))))
	}

	reserved := 4 // borders, title, caption
	showProgress := c.comparing || c.averageProgress > 0
	if showProgress {
		reserved++
	}
	showHeap := c.height >= minSparklineHeight && c.heap.Len() > 0
	if showHeap {
		reserved++
	}
	if rows := c.height - reserved; rows > 0 && len(samples) > 0 {
		for _, line := range RenderBrailleChart(logTimings(samples), max(c.width-4, 1), rows, 0) {
			b.WriteString("\n" + timingLineStyle.Render(line))
		}
	}

	if showProgress {
		if bar := c.renderProgressBar(); bar != "" {
			b.WriteString("\n" + bar)
		}
	}
	if showHeap {
		b.WriteString(fmt.Sprintf("\n%s %s %s",
			metricLabelStyle.Render("Heap"),
			heapLineStyle.Render(RenderSparkline(c.heap.Slice(), 0)),
			metricValueStyle.Render(format.FormatBytes(uint64(c.heap.Last())))))
	}

	style := panelStyle
	if c.width > 2 {
		style = style.Width(c.width - 2)
	}
	if c.height > 2 {
		style = style.Height(c.height - 2)
	}
	return style.Render(b.String())
}

func maxOf(values []float64) float64 {
	var m float64
	for _, v := range values {
		m = max(m, v)
	}
	return m
}
