package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"runtime"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/config"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/strategy"
)

// Layout constants for the calculator.
const (
	headerHeight        = 1
	inputHeight         = 1
	helpHeight          = 1
	minBodyHeight       = 6
	HistoryPanelPercent = 60
	MetricsPanelHeight  = 7
	tickInterval        = 500 * time.Millisecond
)

var errStrategiesDisagree = errors.New("strategies disagree")

// inputBases and outputBases are the radixes cycled through with the base
// keys. Input base 0 infers the radix from each operand's prefix.
var (
	inputBases  = []int{0, 10, 16, 2, 8}
	outputBases = []int{10, 16, 2, 8, 36, 64}
)

// nextBase returns the entry following cur in bases, wrapping around.
func nextBase(bases []int, cur int) int {
	i := slices.Index(bases, cur)
	return bases[(i+1)%len(bases)]
}

// comparisonState tracks the running strategy comparison, if any.
type comparisonState struct {
	cancel     context.CancelFunc
	generation uint64
	running    bool
	started    time.Time
	input      string
}

// LayoutManager holds terminal dimensions and provides layout calculations.
type LayoutManager struct {
	width  int
	height int
}

func (l LayoutManager) bodyHeight() int {
	return max(l.height-headerHeight-inputHeight-helpHeight, minBodyHeight)
}

func (l LayoutManager) historyWidth() int {
	return l.width * HistoryPanelPercent / 100
}

func (l LayoutManager) rightWidth() int {
	return l.width - l.historyWidth()
}

func (l LayoutManager) metricsHeight() int {
	return min(MetricsPanelHeight, l.bodyHeight()/2)
}

func (l LayoutManager) chartHeight() int {
	return l.bodyHeight() - l.metricsHeight()
}

// Model is the root bubbletea model of the interactive calculator.
type Model struct {
	header  HeaderModel
	history HistoryModel
	metrics MetricsModel
	chart   ChartModel
	input   textinput.Model
	help    help.Model
	keymap  KeyMap

	LayoutManager

	evaluator *calc.Evaluator
	factory   *strategy.Factory
	config    config.AppConfig
	inBase    int
	outBase   int

	parentCtx context.Context
	compare   comparisonState
	ref       *programRef
	exitCode  int
}

// NewModel creates the calculator model. A nil evaluator uses the default
// strategies and a nil factory the global one.
func NewModel(parentCtx context.Context, evaluator *calc.Evaluator, factory *strategy.Factory, cfg config.AppConfig, version string) Model {
	if evaluator == nil {
		evaluator = calc.NewEvaluator(nil, nil)
	}
	if factory == nil {
		factory = strategy.GlobalFactory()
	}
	if cfg.Timeout <= 0 {
		cfg.Timeout = config.DefaultTimeout
	}
	outBase := cfg.OutputBase
	if outBase == 0 {
		outBase = config.DefaultOutputBase
	}

	in := textinput.New()
	in.Prompt = "big> "
	in.PromptStyle = promptStyle
	in.Placeholder = "expression"
	in.Focus()

	m := Model{
		header:    NewHeaderModel(version),
		history:   NewHistoryModel(),
		metrics:   NewMetricsModel(),
		chart:     NewChartModel(),
		input:     in,
		help:      help.New(),
		keymap:    DefaultKeyMap(),
		evaluator: evaluator,
		factory:   factory,
		config:    cfg,
		inBase:    cfg.Base,
		outBase:   outBase,
		parentCtx: parentCtx,
		ref:       &programRef{},
		exitCode:  apperrors.ExitSuccess,
	}
	m.header.SetBases(m.inBase, m.outBase)
	m.header.SetStrategies(evaluator.Strategy(strategy.KindMultiply).Name(), evaluator.Strategy(strategy.KindDivide).Name())
	return m
}

// Init returns the initial commands.
func (m Model) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, tickCmd(), watchContextCmd(m.parentCtx))
}

func (m Model) outputConfig(base int) cli.OutputConfig {
	return cli.OutputConfig{
		Base:       base,
		ShowPrefix: m.config.ShowPrefix,
		ShowSign:   m.config.ShowSign,
	}
}

// Update handles all incoming messages.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.layoutPanels()
		return m, nil

	case EvalMsg:
		if msg.Err != nil {
			m.history.AddError(msg.Input, msg.Err)
			return m, nil
		}
		m.history.AddResult(msg.Input, msg.Result, m.outputConfig(m.outBase))
		m.metrics.RecordEvaluation(msg.Result, m.outBase)
		m.chart.AddEvaluation(msg.Result.Duration)
		return m, nil

	case ProgressMsg:
		m.chart.AddDataPoint(msg.Value, msg.AverageProgress, msg.ETA)
		m.metrics.UpdateProgress(msg.AverageProgress)
		return m, nil

	case ProgressDoneMsg:
		return m, nil

	case ComparisonResultsMsg:
		m.history.AddComparison(msg.Results)
		return m, nil

	case FinalResultMsg:
		m.history.AddFinal(msg.Result, m.outputConfig(msg.OutputBase))
		return m, nil

	case ErrorMsg:
		m.history.AddError("", msg.Err)
		return m, nil

	case CompareCompleteMsg:
		if msg.Generation != m.compare.generation {
			return m, nil // stale message from a superseded comparison
		}
		m.finishComparison()
		m.exitCode = msg.ExitCode
		if msg.ExitCode == apperrors.ExitErrorMismatch {
			m.history.AddError("", errStrategiesDisagree)
		}
		return m, nil

	case TickMsg:
		return m, tea.Batch(sampleMemStatsCmd(), tickCmd())

	case MemStatsMsg:
		m.metrics.UpdateMemStats(msg)
		m.chart.UpdateHeap(msg.HeapInuse)
		return m, nil

	case ContextCancelledMsg:
		m.cancelComparison()
		m.exitCode = apperrors.ExitCode(msg.Err)
		return m, tea.Quit
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.cancelComparison()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Submit):
		text := strings.TrimSpace(m.input.Value())
		if text == "" {
			return m, nil
		}
		m.history.Remember(text)
		m.input.Reset()
		return m, evalCmd(m.parentCtx, m.evaluator, text, m.inBase, m.config.Timeout)

	case key.Matches(msg, m.keymap.Compare):
		return m.startComparison()

	case key.Matches(msg, m.keymap.HistoryPrev):
		if s, ok := m.history.Prev(m.input.Value()); ok {
			m.input.SetValue(s)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keymap.HistoryNext):
		if s, ok := m.history.Next(); ok {
			m.input.SetValue(s)
			m.input.CursorEnd()
		}
		return m, nil

	case key.Matches(msg, m.keymap.ScrollUp):
		m.history.Scroll(m.history.visibleLines())
		return m, nil

	case key.Matches(msg, m.keymap.ScrollDown):
		m.history.Scroll(-m.history.visibleLines())
		return m, nil

	case key.Matches(msg, m.keymap.CycleBase):
		m.inBase = nextBase(inputBases, m.inBase)
		m.header.SetBases(m.inBase, m.outBase)
		return m, nil

	case key.Matches(msg, m.keymap.CycleOutput):
		m.outBase = nextBase(outputBases, m.outBase)
		m.header.SetBases(m.inBase, m.outBase)
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		m.history.Reset()
		m.chart.Reset()
		return m, nil

	case key.Matches(msg, m.keymap.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// startComparison runs every strategy of the input's operation kind. The
// input line is kept so the expression can be edited and compared again.
func (m Model) startComparison() (tea.Model, tea.Cmd) {
	text := strings.TrimSpace(m.input.Value())
	if text == "" {
		return m, nil
	}
	if m.compare.running {
		m.history.AddNote("a comparison is already running")
		return m, nil
	}
	m.history.Remember(text)

	expr, err := calc.ParseExpression(text, m.inBase)
	if err != nil {
		m.history.AddError(text, err)
		return m, nil
	}
	kind, ok := expr.Op.StrategyKind()
	if !ok {
		m.history.AddError(text, fmt.Errorf("%s has no alternative strategies", expr.Op))
		return m, nil
	}
	if kind == strategy.KindDivide && expr.B.IsZero() {
		m.history.AddError(text, apperrors.ErrDivisionByZero)
		return m, nil
	}

	ctx, cancel := context.WithTimeout(m.parentCtx, m.config.Timeout)
	m.compare = comparisonState{
		cancel:     cancel,
		generation: m.compare.generation + 1,
		running:    true,
		started:    time.Now(),
		input:      text,
	}
	m.header.SetComparing(true)
	m.chart.StartComparison()
	m.metrics.ResetProgress()
	m.history.AddNote(fmt.Sprintf("comparing %s strategies on %s", kind, text))

	ops := orchestration.Operands{A: expr.A.Magnitude(), B: expr.B.Magnitude()}
	return m, startComparisonCmd(m.ref, ctx, m.factory.GetAll(kind), ops, m.outBase, m.compare.generation)
}

func (m *Model) finishComparison() {
	if m.compare.cancel != nil {
		m.compare.cancel()
	}
	m.compare.running = false
	m.header.SetComparing(false)
	m.chart.SetDone(time.Since(m.compare.started))
}

func (m *Model) cancelComparison() {
	if m.compare.cancel != nil {
		m.compare.cancel()
	}
}

// View renders the calculator.
func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}

	rightCol := lipgloss.JoinVertical(lipgloss.Left, m.metrics.View(), m.chart.View())
	body := lipgloss.JoinHorizontal(lipgloss.Top, m.history.View(), rightCol)

	status := ""
	if m.compare.running {
		status = runningStyle.Render(" running")
	} else if !m.compare.started.IsZero() {
		status = doneStyle.Render(" done")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		m.header.View(),
		body,
		m.input.View()+status,
		m.help.View(m.keymap),
	)
}

func (m *Model) layoutPanels() {
	m.header.SetWidth(m.width)
	m.history.SetSize(m.historyWidth(), m.bodyHeight())
	m.metrics.SetSize(m.rightWidth(), m.metricsHeight())
	m.chart.SetSize(m.rightWidth(), m.chartHeight())
	m.input.Width = max(m.width-len(m.input.Prompt)-10, 10)
	m.help.Width = m.width
}

// Run is the public entry point for the TUI mode.
// It creates the bubbletea program, runs it, and returns the exit code.
func Run(ctx context.Context, evaluator *calc.Evaluator, factory *strategy.Factory, cfg config.AppConfig, version string) int {
	// Rebuild styles from the current ui theme (set by app.Run via InitTheme).
	initTUIStyles()

	model := NewModel(ctx, evaluator, factory, cfg, version)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	// Inject the program reference before running so bridge goroutines can Send.
	model.ref.SetProgram(p)

	finalModel, err := p.Run()
	exitCode := apperrors.ExitSuccess
	if m, ok := finalModel.(Model); ok {
		m.cancelComparison()
		exitCode = m.exitCode
	}
	switch {
	case ctx.Err() != nil:
		return apperrors.ExitCode(ctx.Err())
	case err != nil:
		return apperrors.ExitErrorGeneric
	}
	return exitCode
}

// evalCmd evaluates text off the UI goroutine.
func evalCmd(ctx context.Context, evaluator *calc.Evaluator, text string, base int, timeout time.Duration) tea.Cmd {
	return func() tea.Msg {
		expr, err := calc.ParseExpression(text, base)
		if err != nil {
			return EvalMsg{Input: text, Err: err}
		}
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		res, err := evaluator.Evaluate(ctx, expr)
		return EvalMsg{Input: text, Result: res, Err: err}
	}
}

// startComparisonCmd returns a tea.Cmd that launches the orchestration.
func startComparisonCmd(ref *programRef, ctx context.Context, strategies []strategy.Strategy, ops orchestration.Operands, outBase int, gen uint64) tea.Cmd {
	return func() tea.Msg {
		progressReporter := &TUIProgressReporter{ref: ref}
		presenter := &TUIResultPresenter{ref: ref}

		results := orchestration.ExecuteStrategies(ctx, strategies, ops, progressReporter, io.Discard)
		opts := orchestration.PresentationOptions{OutputBase: outBase}
		exitCode := orchestration.AnalyzeComparisonResults(results, opts, presenter, io.Discard)

		return CompareCompleteMsg{ExitCode: exitCode, Generation: gen}
	}
}

// tickCmd returns a command that sends a TickMsg after tickInterval.
func tickCmd() tea.Cmd {
	return tea.Tick(tickInterval, func(t time.Time) tea.Msg {
		return TickMsg(t)
	})
}

// sampleMemStatsCmd reads runtime memory stats and returns a MemStatsMsg.
func sampleMemStatsCmd() tea.Cmd {
	return func() tea.Msg {
		var ms runtime.MemStats
		runtime.ReadMemStats(&ms)
		return MemStatsMsg{
			Alloc:        ms.Alloc,
			HeapInuse:    ms.HeapInuse,
			NumGC:        ms.NumGC,
			PauseTotalNs: ms.PauseTotalNs,
			NumGoroutine: runtime.NumGoroutine(),
		}
	}
}

// watchContextCmd waits for the session context to end.
func watchContextCmd(ctx context.Context) tea.Cmd {
	return func() tea.Msg {
		<-ctx.Done()
		return ContextCancelledMsg{Err: ctx.Err()}
	}
}
