package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
)

func TestMetricsModel_UpdateMemStats(t *testing.T) {
	m := NewMetricsModel()

	msg := MemStatsMsg{
		Alloc:        1024 * 1024 * 50, // 50 MB
		HeapInuse:    1024 * 1024 * 80,
		NumGC:        10,
		NumGoroutine: 8,
	}
	m.UpdateMemStats(msg)

	if m.alloc != msg.Alloc {
		t.Errorf("expected alloc %d, got %d", msg.Alloc, m.alloc)
	}
	if m.heapInuse != msg.HeapInuse {
		t.Errorf("expected heapInuse %d, got %d", msg.HeapInuse, m.heapInuse)
	}
	if m.numGC != msg.NumGC {
		t.Errorf("expected numGC %d, got %d", msg.NumGC, m.numGC)
	}
	if m.numGoroutine != msg.NumGoroutine {
		t.Errorf("expected numGoroutine %d, got %d", msg.NumGoroutine, m.numGoroutine)
	}
}

func TestMetricsModel_UpdateProgress(t *testing.T) {
	m := NewMetricsModel()
	// Force the lastUpdate back in time to ensure dt > 0.05
	m.lastUpdate = time.Now().Add(-1 * time.Second)

	m.UpdateProgress(0.5)
	if m.speed <= 0 {
		t.Error("expected positive speed after progress update")
	}
	if m.lastProgress != 0.5 {
		t.Errorf("expected lastProgress 0.5, got %f", m.lastProgress)
	}
}

func TestMetricsModel_UpdateProgress_Smoothing(t *testing.T) {
	m := NewMetricsModel()
	m.lastUpdate = time.Now().Add(-1 * time.Second)

	// First update: dp=0.3 over ~1s → speed ≈ 0.3
	m.UpdateProgress(0.3)
	firstSpeed := m.speed

	if firstSpeed <= 0 {
		t.Fatal("precondition: first speed should be positive")
	}

	// Second update: dp=0.5 over ~0.5s → instant speed ≈ 1.0
	// Smoothed: 0.7*0.3 + 0.3*1.0 = 0.51 ≠ 0.3
	m.lastUpdate = time.Now().Add(-500 * time.Millisecond)
	m.UpdateProgress(0.8)

	if m.speed <= 0 {
		t.Error("expected positive speed after second update")
	}
	if m.speed == firstSpeed {
		t.Error("expected speed to change after second update with different rate")
	}
}

func TestMetricsModel_UpdateProgress_TooFast(t *testing.T) {
	m := NewMetricsModel()
	// lastUpdate is now, so dt < 0.05 and speed stays unset.
	m.UpdateProgress(0.5)

	if m.speed != 0 {
		t.Errorf("expected speed to remain 0 when dt < 0.05, got %f", m.speed)
	}
}

func TestMetricsModel_UpdateProgress_NoForward(t *testing.T) {
	m := NewMetricsModel()
	m.lastUpdate = time.Now().Add(-1 * time.Second)
	m.lastProgress = 0.5

	// Same progress (dp = 0) should not update speed
	m.UpdateProgress(0.5)

	if m.speed != 0 {
		t.Errorf("expected speed to remain 0 when no forward progress, got %f", m.speed)
	}
}

func TestMetricsModel_View(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(90, 15)

	m.UpdateMemStats(MemStatsMsg{
		Alloc:        1024 * 1024 * 50,
		HeapInuse:    1024 * 1024 * 80,
		NumGC:        10,
		NumGoroutine: 8,
	})

	view := m.View()
	if !strings.Contains(view, "Metrics") {
		t.Error("expected view to contain 'Metrics' header")
	}
	if !strings.Contains(view, "Heap") {
		t.Error("expected view to contain 'Heap' label")
	}
	if !strings.Contains(view, "GC Runs") {
		t.Error("expected view to contain 'GC Runs' label")
	}
	if !strings.Contains(view, "Speed") {
		t.Error("expected view to contain 'Speed' label")
	}
	if !strings.Contains(view, "Goroutines") {
		t.Error("expected view to contain 'Goroutines' label")
	}
}

func TestMetricsModel_UpdateProgress_RapidUpdates(t *testing.T) {
	m := NewMetricsModel()
	m.lastUpdate = time.Now().Add(-1 * time.Second)

	// 1000 rapid updates with increasing progress
	for i := 0; i < 1000; i++ {
		m.lastUpdate = time.Now().Add(-100 * time.Millisecond)
		m.UpdateProgress(float64(i) / 1000.0)
	}

	if m.speed <= 0 {
		t.Error("expected positive speed after many updates")
	}
	if m.lastProgress == 0 {
		t.Error("expected non-zero lastProgress after many updates")
	}
}

func TestMetricsModel_SetSize(t *testing.T) {
	m := NewMetricsModel()
	m.SetSize(50, 20)

	if m.width != 50 {
		t.Errorf("expected width 50, got %d", m.width)
	}
	if m.height != 20 {
		t.Errorf("expected height 20, got %d", m.height)
	}
}

func TestFormatMetricCol(t *testing.T) {
	col := formatMetricCol("Last bits:", "1,024", 30)
	if !strings.Contains(col, "Last bits") {
		t.Error("expected column to contain label")
	}
	if !strings.Contains(col, "1,024") {
		t.Error("expected column to contain value")
	}
}

func TestMetricsModel_RecordEvaluation(t *testing.T) {
	m := NewMetricsModel()

	m.RecordEvaluation(calc.Result{Value: bigint.NewInt(255), Duration: 2 * time.Millisecond}, 16)
	m.RecordEvaluation(calc.Result{Value: bigint.NewInt(-1 << 20), Duration: 4 * time.Millisecond}, 10)

	if m.evaluations != 2 {
		t.Errorf("expected 2 evaluations, got %d", m.evaluations)
	}
	if got := m.averageDuration(); got != 3*time.Millisecond {
		t.Errorf("expected average 3ms, got %v", got)
	}
	if m.lastBits != 21 {
		t.Errorf("expected 21 bits, got %d", m.lastBits)
	}
	if m.lastDigits != len("1048576") {
		t.Errorf("expected %d digits, got %d", len("1048576"), m.lastDigits)
	}
}

func TestMetricsModel_AverageDuration_Empty(t *testing.T) {
	m := NewMetricsModel()
	if got := m.averageDuration(); got != 0 {
		t.Errorf("expected 0 average without evaluations, got %v", got)
	}
}
