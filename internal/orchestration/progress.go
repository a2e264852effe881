package orchestration

import (
	"time"

	"github.com/agbru/bigcalc/internal/format"
)

// ProgressAggregator turns per-strategy updates into an overall completion
// ratio and ETA. Both the CLI spinner and the TUI consume it.
type ProgressAggregator struct {
	state         *format.ProgressWithETA
	numStrategies int
	done          int
}

// NewProgressAggregator creates a new aggregator for the given number of
// strategies. Returns nil if numStrategies <= 0.
func NewProgressAggregator(numStrategies int) *ProgressAggregator {
	if numStrategies <= 0 {
		return nil
	}
	return &ProgressAggregator{
		state:         format.NewProgressWithETA(numStrategies),
		numStrategies: numStrategies,
	}
}

// AggregatedProgress holds the result of processing a single progress update.
type AggregatedProgress struct {
	StrategyIndex   int
	Value           float64
	AverageProgress float64
	Completed       int
	ETA             time.Duration
}

// Update processes a single progress update and returns the aggregated result.
func (a *ProgressAggregator) Update(update ProgressUpdate) AggregatedProgress {
	if update.Value >= 1 {
		a.done++
	}
	avgProgress, eta := a.state.UpdateWithETA(update.StrategyIndex, update.Value)
	return AggregatedProgress{
		StrategyIndex:   update.StrategyIndex,
		Value:           update.Value,
		AverageProgress: avgProgress,
		Completed:       a.done,
		ETA:             eta,
	}
}

// CalculateAverage returns the current average progress without updating.
func (a *ProgressAggregator) CalculateAverage() float64 {
	return a.state.CalculateAverage()
}

// GetETA returns the current ETA estimate without updating.
func (a *ProgressAggregator) GetETA() time.Duration {
	return a.state.GetETA()
}

// NumStrategies returns the number of strategies being tracked.
func (a *ProgressAggregator) NumStrategies() int {
	return a.numStrategies
}

// DrainChannel reads all updates from the channel without processing.
func DrainChannel(progressChan <-chan ProgressUpdate) {
	for range progressChan {
	}
}
