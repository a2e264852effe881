package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"slices"
	"syscall"
	"time"

	"github.com/rs/zerolog"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"

	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/metrics"
	"github.com/agbru/bigcalc/internal/strategy"
	"github.com/agbru/bigcalc/internal/tui"
	"github.com/agbru/bigcalc/internal/ui"
)

var tracer = otel.Tracer("github.com/agbru/bigcalc/internal/app")

// Application represents the bigcalc application instance.
type Application struct {
	Config    config.AppConfig
	Factory   *strategy.Factory
	Logger    logging.Logger
	Recorder  *metrics.Recorder
	ErrWriter io.Writer
	In        io.Reader
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithFactory sets a custom strategy factory for the application.
func WithFactory(f *strategy.Factory) AppOption {
	return func(a *Application) { a.Factory = f }
}

// WithLogger replaces the stderr logger.
func WithLogger(l logging.Logger) AppOption {
	return func(a *Application) { a.Logger = l }
}

// WithRecorder sets the Prometheus recorder evaluations are reported to.
func WithRecorder(r *metrics.Recorder) AppOption {
	return func(a *Application) { a.Recorder = r }
}

// WithInput sets the reader the REPL consumes, os.Stdin by default.
func WithInput(in io.Reader) AppOption {
	return func(a *Application) { a.In = in }
}

// New creates a new Application instance by parsing command-line arguments.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}
	if app.Factory == nil {
		app.Factory = strategy.GlobalFactory()
	}

	programName := "bigcalc"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		return nil, err
	}
	app.Config = cfg

	if app.Logger == nil {
		level, err := logging.ParseLevel(cfg.LogLevel)
		if err != nil {
			return nil, err
		}
		output := zerolog.ConsoleWriter{Out: errWriter, NoColor: cfg.NoColor, TimeFormat: time.RFC3339}
		app.Logger = logging.NewZerologAdapter(zerolog.New(output).With().Timestamp().Logger()).WithLevel(level)
	}
	if app.Recorder == nil {
		app.Recorder = metrics.NewRecorder()
	}
	if app.In == nil {
		app.In = os.Stdin
	}
	return app, nil
}

// Run executes the application based on the configured mode.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	mode := a.Config.Mode()
	if mode == config.ModeCompletion {
		return a.runCompletion(out)
	}

	ui.InitTheme(a.Config.NoColor)

	ctx, span := tracer.Start(ctx, "bigcalc."+mode.String())
	defer span.End()

	if a.Config.MetricsAddr != "" {
		stop := a.serveMetrics(ctx)
		defer stop()
	}

	var code int
	switch mode {
	case config.ModeREPL:
		code = a.runREPL(out)
	case config.ModeTUI:
		code = a.runTUI(ctx)
	case config.ModeCompare:
		code = a.runCompare(ctx, out)
	default:
		code = a.runEval(ctx, out)
	}
	span.SetAttributes(attribute.Int("exit_code", code))
	if code != apperrors.ExitSuccess {
		span.SetStatus(codes.Error, fmt.Sprintf("exit code %d", code))
	}
	return code
}

// serveMetrics exposes the recorder on the configured address until the
// returned func is called.
func (a *Application) serveMetrics(ctx context.Context) (stop func()) {
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := a.Recorder.Serve(ctx, a.Config.MetricsAddr, a.Logger); err != nil {
			a.Logger.Error("metrics endpoint failed", err, logging.String("addr", a.Config.MetricsAddr))
		}
	}()
	return func() {
		cancel()
		<-done
	}
}

// runCompletion generates shell completion scripts.
func (a *Application) runCompletion(out io.Writer) int {
	names := append(a.Factory.List(strategy.KindMultiply), a.Factory.List(strategy.KindDivide)...)
	slices.Sort(names)
	names = slices.Compact(names)
	if err := cli.GenerateCompletion(out, a.Config.Completion, names); err != nil {
		fmt.Fprintf(a.ErrWriter, "Error generating completion: %v\n", err)
		return apperrors.ExitErrorConfig
	}
	return apperrors.ExitSuccess
}

// newEvaluator builds an evaluator using the -algo strategy for every kind
// that registers it and auto for the others.
func (a *Application) newEvaluator() *calc.Evaluator {
	var selected [2]strategy.Strategy
	for i, kind := range []strategy.Kind{strategy.KindMultiply, strategy.KindDivide} {
		if s, err := a.Factory.Get(kind, a.Config.Algo); err == nil {
			selected[i] = s
		} else {
			selected[i], _ = a.Factory.Get(kind, strategy.NameAuto)
		}
	}
	return calc.NewEvaluator(selected[0], selected[1], a.Recorder, evaluationLogger{a.Logger})
}

// runREPL starts the interactive line calculator.
func (a *Application) runREPL(out io.Writer) int {
	repl := cli.NewREPL(a.newEvaluator(), a.Factory, cli.REPLConfig{
		Timeout:    a.Config.Timeout,
		Base:       a.Config.Base,
		OutputBase: a.Config.OutputBase,
	})
	repl.SetInput(a.In)
	repl.SetOutput(out)
	repl.Start()
	return apperrors.ExitSuccess
}

// runTUI launches the interactive calculator dashboard. The timeout applies
// to each evaluation, not to the session.
func (a *Application) runTUI(ctx context.Context) int {
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()
	return tui.Run(ctx, a.newEvaluator(), a.Factory, a.Config, Version)
}

// evaluationLogger reports evaluations to the application logger.
type evaluationLogger struct {
	logger logging.Logger
}

func (l evaluationLogger) ObserveEvaluation(op string, operandDigits int, d time.Duration, err error) {
	if apperrors.IsContextError(err) {
		l.logger.Info("evaluation interrupted", logging.String("op", op), logging.Int("digits", operandDigits), logging.Err(err))
		return
	}
	if err != nil {
		l.logger.Error("evaluation failed", err, logging.String("op", op), logging.Int("digits", operandDigits))
		return
	}
	l.logger.Debug("evaluation done", logging.String("op", op), logging.Int("digits", operandDigits), logging.Duration("duration", d))
}

// endSpan records err on span, if any.
func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	span.End()
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
