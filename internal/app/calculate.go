package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand/v2"
	"os/signal"
	"syscall"

	"go.opentelemetry.io/otel/attribute"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/cli"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/strategy"
)

// seedMix decorrelates the two PCG words derived from -seed.
const seedMix = 0x9e3779b97f4a7c15

func (a *Application) outputConfig() cli.OutputConfig {
	return cli.OutputConfig{
		OutputFile: a.Config.OutputFile,
		Quiet:      a.Config.Quiet,
		Verbose:    a.Config.Verbose,
		Base:       a.Config.OutputBase,
		ShowPrefix: a.Config.ShowPrefix,
		ShowSign:   a.Config.ShowSign,
	}
}

// lifecycle bounds ctx by the configured timeout and SIGINT/SIGTERM.
func (a *Application) lifecycle(ctx context.Context) (context.Context, func()) {
	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	return ctx, func() {
		stopSignals()
		cancelTimeout()
	}
}

// runEval evaluates the expression given on the command line, in eval and
// convert modes.
func (a *Application) runEval(ctx context.Context, out io.Writer) int {
	ctx, stop := a.lifecycle(ctx)
	defer stop()

	ctx, span := tracer.Start(ctx, "evaluate")
	expr, err := calc.ParseExpression(a.Config.ExpressionText(), a.Config.Base)
	if err != nil {
		endSpan(span, err)
		return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}
	span.SetAttributes(
		attribute.String("op", expr.Op.String()),
		attribute.Int("a.bits", expr.A.BitLen()),
		attribute.Int("b.bits", expr.B.BitLen()),
	)

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	done := a.Recorder.Track()
	res, err := a.newEvaluator().Evaluate(ctx, expr)
	done()
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: expr.Op.String(), Limit: a.Config.Timeout}
	}
	endSpan(span, err)
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	if err := cli.DisplayResultWithConfig(out, res, a.outputConfig()); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
		return apperrors.ExitErrorGeneric
	}
	if a.Config.Verbose && !a.Config.Quiet {
		fmt.Fprintln(out)
		cli.DisplayMemoryStats(collector.Snapshot().Delta(before), out)
	}
	return apperrors.ExitSuccess
}

// compareOp returns the operation compared in compare mode, multiplication
// unless -op names another one.
func (a *Application) compareOp() calc.Op {
	if a.Config.Op == "" {
		return calc.OpMul
	}
	op, err := a.Config.ParsedOp()
	if err != nil {
		return calc.OpMul
	}
	return op
}

// compareOperands returns the magnitudes given with -a and -b, or random
// operands of -digits digits drawn from -seed. Random divisors have half as
// many digits as the dividend so that the quotient is not trivial.
func (a *Application) compareOperands(kind strategy.Kind) (orchestration.Operands, error) {
	if a.Config.A != "" && a.Config.B != "" {
		x, err := bigint.Parse(a.Config.A, a.Config.Base)
		if err != nil {
			return orchestration.Operands{}, err
		}
		y, err := bigint.Parse(a.Config.B, a.Config.Base)
		if err != nil {
			return orchestration.Operands{}, err
		}
		if kind == strategy.KindDivide && y.IsZero() {
			return orchestration.Operands{}, apperrors.ErrDivisionByZero
		}
		return orchestration.Operands{A: x.Magnitude(), B: y.Magnitude()}, nil
	}

	rng := rand.New(rand.NewPCG(a.Config.Seed, a.Config.Seed^seedMix))
	bDigits := a.Config.Digits
	if kind == strategy.KindDivide {
		bDigits = max(a.Config.Digits/2, 1)
	}
	return orchestration.Operands{
		A: randomNat(rng, a.Config.Digits),
		B: randomNat(rng, bDigits),
	}, nil
}

// randomNat returns an n-digit magnitude with a non-zero top digit.
func randomNat(rng *rand.Rand, n int) magnitude.Nat {
	ds := make([]magnitude.Digit, n)
	for i := range ds {
		ds[i] = rng.Uint32()
	}
	ds[n-1] |= 1 << (magnitude.DigitBits - 1)
	return magnitude.FromDigits(ds...)
}

// runCompare runs the selected strategies on the same operands and checks
// that they agree. Operands are compared as magnitudes.
func (a *Application) runCompare(ctx context.Context, out io.Writer) int {
	ctx, stop := a.lifecycle(ctx)
	defer stop()

	op := a.compareOp()
	kind, _ := op.StrategyKind()
	ops, err := a.compareOperands(kind)
	if err != nil {
		return apperrors.HandleCalculationError(err, 0, a.ErrWriter, cli.CLIColorProvider{})
	}
	strategies, err := a.Factory.Select(kind, a.Config.Algo)
	if err != nil {
		return apperrors.HandleCalculationError(apperrors.NewConfigError("%v", err), 0, a.ErrWriter, cli.CLIColorProvider{})
	}

	ctx, span := tracer.Start(ctx, "compare")
	span.SetAttributes(
		attribute.String("kind", kind.String()),
		attribute.Int("strategies", len(strategies)),
		attribute.Int("a.digits", len(ops.A)),
		attribute.Int("b.digits", len(ops.B)),
	)

	if !a.Config.Quiet {
		cli.PrintExecutionConfig(a.Config, kind, ops, out)
		cli.PrintExecutionMode(strategies, out)
	}

	var progressReporter orchestration.ProgressReporter = cli.CLIProgressReporter{}
	analysisOut := out
	if a.Config.Quiet {
		progressReporter = orchestration.NullProgressReporter{}
		analysisOut = io.Discard
	}

	collector := metrics.NewMemoryCollector()
	before := collector.Snapshot()
	results := orchestration.ExecuteStrategies(ctx, strategies, ops, progressReporter, analysisOut)
	for _, r := range results {
		a.Recorder.ObserveEvaluation(op.String(), max(len(ops.A), len(ops.B)), r.Duration, r.Err)
		a.Logger.Debug("strategy finished", logging.String("strategy", r.Name), logging.Duration("duration", r.Duration))
	}

	opts := orchestration.PresentationOptions{
		OutputBase: a.Config.OutputBase,
		Verbose:    a.Config.Verbose,
		Quiet:      a.Config.Quiet,
	}
	code := orchestration.AnalyzeComparisonResults(results, opts, cli.CLIResultPresenter{}, analysisOut)
	if code != apperrors.ExitSuccess {
		endSpan(span, fmt.Errorf("comparison failed with exit code %d", code))
		return code
	}
	endSpan(span, nil)

	// AnalyzeComparisonResults sorts the fastest successful result first.
	best := results[0]
	res := outcomeResult(op, kind, best)
	if a.Config.Quiet {
		cli.DisplayQuietResult(out, res, a.outputConfig())
	}
	if a.Config.OutputFile != "" {
		if err := cli.WriteResultToFile(res, a.outputConfig()); err != nil {
			fmt.Fprintf(a.ErrWriter, "Error saving result: %v\n", err)
			return apperrors.ExitErrorGeneric
		}
	}
	if a.Config.Verbose && !a.Config.Quiet {
		fmt.Fprintln(out)
		cli.DisplayMemoryStats(collector.Snapshot().Delta(before), out)
	}
	return apperrors.ExitSuccess
}

// outcomeResult turns the agreed strategy outcome into an evaluation result.
func outcomeResult(op calc.Op, kind strategy.Kind, best orchestration.StrategyResult) calc.Result {
	res := calc.Result{
		Expr:     calc.Expression{Op: op},
		Value:    bigint.FromMagnitude(magnitude.SignPos, best.Outcome.Value),
		Strategy: best.Name,
		Duration: best.Duration,
	}
	if kind == strategy.KindDivide {
		rem := bigint.FromMagnitude(magnitude.SignPos, best.Outcome.Remainder)
		switch op {
		case calc.OpRem:
			res.Value = rem
		case calc.OpQuoRem:
			res.Remainder = rem
			res.HasRemainder = true
		}
	}
	return res
}
