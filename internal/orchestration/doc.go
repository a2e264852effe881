// Package orchestration runs several multiplication or division strategies
// concurrently on the same operands and compares their outcomes. It decouples
// execution from presentation via the ProgressReporter and ResultPresenter
// interfaces.
package orchestration
