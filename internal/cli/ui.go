//go:generate mockgen -source=ui.go -destination=mocks/mock_ui.go -package=mocks

package cli

import (
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/briandowns/spinner"

	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
)

const (
	// TruncationLimit is the length from which a value is truncated in
	// standard output.
	TruncationLimit = 100
	// DisplayEdges is the number of characters kept at each end of a
	// truncated value.
	DisplayEdges = 25
	// ProgressRefreshRate defines the refresh frequency of the progress bar.
	ProgressRefreshRate = 200 * time.Millisecond
	// ProgressBarWidth defines the width in characters of the progress bar.
	ProgressBarWidth = 30
)

// Spinner abstracts a terminal spinner so that DisplayProgress can be tested
// without a terminal.
type Spinner interface {
	// Start begins the spinner animation.
	Start()
	// Stop halts the spinner animation.
	Stop()
	// UpdateSuffix sets the text that is displayed after the spinner.
	UpdateSuffix(suffix string)
}

// realSpinner adapts spinner.Spinner to Spinner.
type realSpinner struct {
	s *spinner.Spinner
}

func (rs *realSpinner) Start() { rs.s.Start() }

func (rs *realSpinner) Stop() { rs.s.Stop() }

func (rs *realSpinner) UpdateSuffix(suffix string) {
	rs.s.Lock()
	rs.s.Suffix = suffix
	rs.s.Unlock()
}

var newSpinner = func(options ...spinner.Option) Spinner {
	s := spinner.New(spinner.CharSets[11], ProgressRefreshRate, options...)
	return &realSpinner{s}
}

// DisplayProgress shows a spinner with a completion bar while strategies run.
// It returns, after calling wg.Done, once progressChan is closed.
func DisplayProgress(wg *sync.WaitGroup, progressChan <-chan orchestration.ProgressUpdate, numStrategies int, out io.Writer) {
	defer wg.Done()
	agg := orchestration.NewProgressAggregator(numStrategies)
	if agg == nil {
		orchestration.DrainChannel(progressChan)
		return
	}

	s := newSpinner(spinner.WithWriter(out))
	s.UpdateSuffix(progressSuffix(orchestration.AggregatedProgress{}, numStrategies))
	s.Start()
	defer s.Stop()

	ticker := time.NewTicker(ProgressRefreshRate)
	defer ticker.Stop()

	var last orchestration.AggregatedProgress
	for {
		select {
		case update, ok := <-progressChan:
			if !ok {
				last.AverageProgress = 1
				last.Completed = numStrategies
				last.ETA = 0
				s.UpdateSuffix(progressSuffix(last, numStrategies))
				return
			}
			last = agg.Update(update)
			s.UpdateSuffix(progressSuffix(last, numStrategies))
		case <-ticker.C:
			last.ETA = agg.GetETA()
			s.UpdateSuffix(progressSuffix(last, numStrategies))
		}
	}
}

func progressSuffix(p orchestration.AggregatedProgress, n int) string {
	return fmt.Sprintf(" %d/%d strategies %s", p.Completed, n,
		format.FormatProgressBarWithETA(p.AverageProgress, p.ETA, ProgressBarWidth))
}
