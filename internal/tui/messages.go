package tui

import (
	"time"

	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/orchestration"
)

// EvalMsg carries the outcome of an expression typed in the input line.
type EvalMsg struct {
	Input  string
	Result calc.Result
	Err    error
}

// ProgressMsg is an aggregated progress update of a strategy comparison.
type ProgressMsg struct {
	StrategyIndex   int
	Value           float64
	AverageProgress float64
	Completed       int
	ETA             time.Duration
}

// ProgressDoneMsg signals that the progress channel was closed.
type ProgressDoneMsg struct{}

// ComparisonResultsMsg carries the per-strategy results of a comparison.
type ComparisonResultsMsg struct {
	Results []orchestration.StrategyResult
}

// FinalResultMsg carries the outcome every strategy agreed on.
type FinalResultMsg struct {
	Result     orchestration.StrategyResult
	OutputBase int
}

// ErrorMsg reports a comparison in which no strategy succeeded.
type ErrorMsg struct {
	Err      error
	Duration time.Duration
}

// CompareCompleteMsg ends a comparison run.
type CompareCompleteMsg struct {
	ExitCode   int
	Generation uint64
}

// TickMsg drives periodic sampling.
type TickMsg time.Time

// MemStatsMsg is a runtime memory sample.
type MemStatsMsg struct {
	Alloc        uint64
	HeapInuse    uint64
	NumGC        uint32
	PauseTotalNs uint64
	NumGoroutine int
}

// ContextCancelledMsg is sent when the session context ends.
type ContextCancelledMsg struct {
	Err error
}
