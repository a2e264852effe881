package orchestration

import (
	"context"
	"fmt"
	"io"
	"sort"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/strategy"
)

// ProgressBufferMultiplier defines the buffer size multiplier for the progress
// channel. A larger buffer reduces the likelihood of blocking strategy
// goroutines when the UI is slow to consume updates.
const ProgressBufferMultiplier = 5

// ExecuteStrategies runs every strategy concurrently on its own copy of the
// operands, collects their results in input order and coordinates the
// display of progress updates. A failing strategy does not cancel the
// others; its error is stored in its result.
func ExecuteStrategies(ctx context.Context, strategies []strategy.Strategy, ops Operands, progressReporter ProgressReporter, out io.Writer) []StrategyResult {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]StrategyResult, len(strategies))
	progressChan := make(chan ProgressUpdate, len(strategies)*ProgressBufferMultiplier)

	var displayWg sync.WaitGroup
	displayWg.Add(1)
	go progressReporter.DisplayProgress(&displayWg, progressChan, len(strategies), out)

	for i, s := range strategies {
		idx, strat := i, s
		g.Go(func() error {
			a, b := ops.A.Clone(), ops.B.Clone()
			progressChan <- ProgressUpdate{StrategyIndex: idx, Value: 0}
			startTime := time.Now()
			outcome, err := runStrategy(ctx, strat, a, b)
			results[idx] = StrategyResult{
				Name: strat.Name(), Outcome: outcome, Duration: time.Since(startTime), Err: err,
			}
			progressChan <- ProgressUpdate{StrategyIndex: idx, Value: 1}
			return nil
		})
	}

	_ = g.Wait()
	close(progressChan)
	displayWg.Wait()

	return results
}

// runStrategy applies s, turning an engine panic into a CalculationError so
// that one broken strategy is reported next to the others.
func runStrategy(ctx context.Context, s strategy.Strategy, a, b magnitude.Nat) (outcome strategy.Outcome, err error) {
	defer func() {
		if r := recover(); r != nil {
			if e, ok := r.(error); ok {
				err = apperrors.CalculationError{Strategy: s.Name(), Cause: e}
				return
			}
			err = apperrors.CalculationError{Strategy: s.Name(), Cause: fmt.Errorf("panic: %v", r)}
		}
	}()
	return s.Apply(ctx, a, b)
}

// AnalyzeComparisonResults sorts the results (successes first, then by
// duration), presents the comparison table and checks that every successful
// outcome agrees.
//
// Returns:
//   - int: ExitSuccess, ExitErrorMismatch when two successful outcomes differ,
//     or the presenter's code when every strategy failed.
func AnalyzeComparisonResults(results []StrategyResult, opts PresentationOptions, presenter ResultPresenter, out io.Writer) int {
	sort.SliceStable(results, func(i, j int) bool {
		if (results[i].Err == nil) != (results[j].Err == nil) {
			return results[i].Err == nil
		}
		return results[i].Duration < results[j].Duration
	})

	var firstValidResult *StrategyResult
	var firstError error
	successCount := 0

	for i := range results {
		if results[i].Err != nil {
			if firstError == nil {
				firstError = results[i].Err
			}
		} else {
			successCount++
			if firstValidResult == nil {
				firstValidResult = &results[i]
			}
		}
	}

	presenter.PresentComparisonTable(results, out)

	if successCount == 0 {
		fmt.Fprintf(out, "\nGlobal Status: Failure. No strategy could complete the operation.\n")
		return presenter.HandleError(firstError, 0, out)
	}

	for _, res := range results {
		if res.Err == nil && !res.Outcome.Equal(firstValidResult.Outcome) {
			fmt.Fprintf(out, "\nGlobal Status: CRITICAL ERROR! %s and %s disagree.\n", firstValidResult.Name, res.Name)
			return apperrors.ExitErrorMismatch
		}
	}

	fmt.Fprintf(out, "\nGlobal Status: Success. All valid results are consistent.\n")
	presenter.PresentResult(*firstValidResult, opts, out)
	return apperrors.ExitSuccess
}
