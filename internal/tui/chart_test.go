package tui

import (
	"strings"
	"testing"
	"time"
)

func TestChartModel_AddDataPoint(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)

	chart.AddDataPoint(0.25, 0.25, 30*time.Second)
	chart.AddDataPoint(0.50, 0.50, 20*time.Second)
	chart.AddDataPoint(0.75, 0.75, 10*time.Second)

	if chart.averageProgress != 0.75 {
		t.Errorf("expected average 0.75, got %f", chart.averageProgress)
	}
	if chart.eta != 10*time.Second {
		t.Errorf("expected eta 10s, got %v", chart.eta)
	}
}

func TestChartModel_Reset(t *testing.T) {
	chart := NewChartModel()
	chart.StartComparison()
	chart.AddDataPoint(0.5, 0.5, 10*time.Second)
	chart.AddEvaluation(3 * time.Millisecond)
	chart.UpdateHeap(1 << 20)

	chart.Reset()

	if chart.averageProgress != 0 {
		t.Errorf("expected 0 average after reset, got %f", chart.averageProgress)
	}
	if chart.comparing {
		t.Error("expected no comparison after reset")
	}
	if chart.timings.Len() != 0 {
		t.Error("expected timings to be empty after reset")
	}
	if chart.heap.Len() != 0 {
		t.Error("expected heap to be empty after reset")
	}
}

func TestChartModel_View_Empty(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)

	view := chart.View()
	if !strings.Contains(view, "Timing") {
		t.Error("expected view to contain 'Timing'")
	}
	if !strings.Contains(view, "no evaluations yet") {
		t.Error("expected empty chart hint")
	}
}

func TestChartModel_View_Comparing(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)
	chart.StartComparison()

	chart.AddDataPoint(0.3, 0.3, 20*time.Second)
	chart.AddDataPoint(0.6, 0.6, 10*time.Second)

	view := chart.View()
	if !strings.Contains(view, "ETA:") {
		t.Error("expected view to contain ETA while comparing")
	}
	if !strings.Contains(view, "60.0%") {
		t.Error("expected view to contain progress percentage")
	}
}

func TestChartModel_SetDone(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)
	chart.StartComparison()
	chart.AddDataPoint(1, 1, 0)
	chart.SetDone(42 * time.Millisecond)

	bar := chart.renderProgressBar()
	if strings.Contains(bar, "ETA:") {
		t.Error("expected no ETA once done")
	}
	if !strings.Contains(bar, "in 42ms") {
		t.Errorf("expected elapsed time in %q", bar)
	}
}

func TestChartModel_RenderProgressBar(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)
	chart.AddDataPoint(0.5, 0.5, 10*time.Second)

	bar := chart.renderProgressBar()
	if !strings.Contains(bar, "█") {
		t.Error("expected progress bar to contain filled block character")
	}
	if !strings.Contains(bar, "░") {
		t.Error("expected progress bar to contain empty block character")
	}
	if !strings.Contains(bar, "50.0%") {
		t.Error("expected progress bar to show 50.0%")
	}
}

func TestChartModel_RenderProgressBar_Zero(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)
	chart.AddDataPoint(0.0, 0.0, 0)

	bar := chart.renderProgressBar()
	if !strings.Contains(bar, "░") {
		t.Error("expected progress bar to contain empty blocks at 0%")
	}
	if !strings.Contains(bar, "0.0%") {
		t.Error("expected progress bar to show 0.0%")
	}
}

func TestChartModel_RenderProgressBar_Full(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 10)
	chart.AddDataPoint(1.0, 1.0, 0)

	bar := chart.renderProgressBar()
	if !strings.Contains(bar, "█") {
		t.Error("expected progress bar to contain filled blocks at 100%")
	}
	if !strings.Contains(bar, "100.0%") {
		t.Error("expected progress bar to show 100.0%")
	}
}

func TestChartModel_RenderProgressBar_TooNarrow(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(10, 5) // too narrow for a progress bar

	bar := chart.renderProgressBar()
	if bar != "" {
		t.Error("expected empty progress bar for very narrow chart")
	}
}

func TestChartModel_AddEvaluation(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 15)

	chart.AddEvaluation(250 * time.Microsecond)
	chart.AddEvaluation(3 * time.Millisecond)

	if chart.timings.Len() != 2 {
		t.Fatalf("expected 2 timing samples, got %d", chart.timings.Len())
	}
	if chart.timings.Last() != 3000 {
		t.Errorf("expected last sample 3000µs, got %f", chart.timings.Last())
	}

	view := chart.View()
	if !strings.Contains(view, "last 3ms, slowest 3ms") {
		t.Errorf("expected timing caption in view:\n%s", view)
	}
}

func TestChartModel_View_ContainsSparklines(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 15) // height >= 10, sparkline visible

	chart.UpdateHeap(1 << 20)
	chart.UpdateHeap(2 << 20)

	view := chart.View()
	if !strings.Contains(view, "Heap") {
		t.Error("expected view to contain 'Heap' sparkline label")
	}
	if !strings.Contains(view, "2.0 MiB") {
		t.Errorf("expected latest heap size in view:\n%s", view)
	}
}

func TestChartModel_View_NoSparklinesWhenShort(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(50, 8) // height < 10, sparkline hidden

	chart.UpdateHeap(1 << 20)

	view := chart.View()
	if strings.Contains(view, "Heap") {
		t.Error("expected no heap sparkline when height < 10")
	}
}

func TestChartModel_SetSize_ResizesBuffers(t *testing.T) {
	chart := NewChartModel()
	chart.SetSize(60, 15)

	if got, want := chart.timings.Cap(), 2*(60-4); got != want {
		t.Errorf("expected timings capacity %d, got %d", want, got)
	}
	if got, want := chart.heap.Cap(), 60-sparklineOverhead; got != want {
		t.Errorf("expected heap capacity %d, got %d", want, got)
	}
}

func TestLogTimings(t *testing.T) {
	got := logTimings([]float64{0, 9, 99, -5})
	want := []float64{0, 1, 2, 0}
	for i := range want {
		if diff := got[i] - want[i]; diff > 1e-9 || diff < -1e-9 {
			t.Errorf("logTimings[%d] = %f, want %f", i, got[i], want[i])
		}
	}
}
