package orchestration

import (
	"io"
	"sync"
	"time"

	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/strategy"
)

// StrategyResult encapsulates the outcome of one strategy run.
// It serves as the shared domain type between orchestration and presentation layers.
type StrategyResult struct {
	// Name is the strategy name (e.g. "karatsuba").
	Name string
	// Outcome is the computed value, zero if Err is set.
	Outcome strategy.Outcome
	// Duration is the time taken by the strategy.
	Duration time.Duration
	// Err contains any error that occurred during the run.
	Err error
}

// Operands are the inputs shared by every strategy of a comparison.
type Operands struct {
	A, B magnitude.Nat
}

// ProgressUpdate reports that the strategy at StrategyIndex reached Value
// (0 when started, 1 when finished).
type ProgressUpdate struct {
	StrategyIndex int
	Value         float64
}

// PresentationOptions configures how results are presented to the user.
type PresentationOptions struct {
	OutputBase int
	Verbose    bool
	Quiet      bool
}

// ProgressReporter defines the interface for displaying comparison progress.
// DisplayProgress runs in its own goroutine until progressChan is closed,
// then calls wg.Done.
type ProgressReporter interface {
	DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)
}

// ProgressReporterFunc is a function adapter that implements ProgressReporter.
type ProgressReporterFunc func(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer)

// DisplayProgress calls the underlying function.
func (f ProgressReporterFunc) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, numStrategies int, out io.Writer) {
	f(wg, progressChan, numStrategies, out)
}

// NullProgressReporter is a no-op implementation of ProgressReporter.
// It drains the progress channel without displaying anything.
type NullProgressReporter struct{}

// DisplayProgress drains the channel without output.
func (NullProgressReporter) DisplayProgress(wg *sync.WaitGroup, progressChan <-chan ProgressUpdate, _ int, _ io.Writer) {
	defer wg.Done()
	DrainChannel(progressChan)
}

// ResultPresenter defines the interface for presenting comparison results.
type ResultPresenter interface {
	// PresentComparisonTable displays the comparison summary table.
	PresentComparisonTable(results []StrategyResult, out io.Writer)

	// PresentResult displays the agreed outcome.
	PresentResult(result StrategyResult, opts PresentationOptions, out io.Writer)

	// HandleError reports a failure and returns the exit code.
	HandleError(err error, duration time.Duration, out io.Writer) int
}

// DurationFormatter formats durations for display.
type DurationFormatter interface {
	FormatDuration(d time.Duration) string
}
