package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/strategy"
	"github.com/agbru/bigcalc/internal/ui"
)

// statusKeyWidth aligns the values printed by the status command.
const statusKeyWidth = 13

// REPLConfig holds configuration for the REPL session.
type REPLConfig struct {
	// Timeout is the maximum duration of each evaluation.
	Timeout time.Duration
	// Base is the input radix, 0 to infer it from literal prefixes.
	Base int
	// OutputBase is the radix of printed results.
	OutputBase int
	// HexOutput prints results in hexadecimal regardless of OutputBase.
	HexOutput bool
}

// REPL is an interactive calculator session.
type REPL struct {
	config    REPLConfig
	factory   *strategy.Factory
	evaluator *calc.Evaluator
	in        io.Reader
	out       io.Writer
}

// NewREPL creates a REPL evaluating with evaluator and switching strategies
// from factory.
func NewREPL(evaluator *calc.Evaluator, factory *strategy.Factory, config REPLConfig) *REPL {
	if config.Timeout <= 0 {
		config.Timeout = time.Minute
	}
	if evaluator == nil {
		evaluator = calc.NewEvaluator(nil, nil)
	}
	if factory == nil {
		factory = strategy.GlobalFactory()
	}
	return &REPL{
		config:    config,
		factory:   factory,
		evaluator: evaluator,
		in:        os.Stdin,
		out:       os.Stdout,
	}
}

// SetInput sets a custom input reader (useful for testing).
func (r *REPL) SetInput(in io.Reader) {
	r.in = in
}

// SetOutput sets a custom output writer (useful for testing).
func (r *REPL) SetOutput(out io.Writer) {
	r.out = out
}

// Start runs the session until exit, quit or EOF.
func (r *REPL) Start() {
	fmt.Fprintln(r.out, ui.Banner("bigcalc", "interactive mode"))
	r.printHelp()
	fmt.Fprintln(r.out)

	reader := bufio.NewReader(r.in)
	for {
		fmt.Fprint(r.out, ui.ColorGreen()+"big> "+ui.ColorReset())

		input, err := reader.ReadString('\n')
		if err != nil && !errors.Is(err, io.EOF) {
			fmt.Fprintf(r.out, "%sRead error: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
			continue
		}
		if line := strings.TrimSpace(input); line != "" {
			if !r.processCommand(line) {
				return
			}
		}
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(r.out, "\nGoodbye!")
			return
		}
	}
}

func (r *REPL) printHelp() {
	fmt.Fprintf(r.out, "%sAvailable commands:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scalc <expr>%s    - Evaluate an expression, e.g. calc 12 * 34 (calc is optional)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %scompare <expr>%s - Run every strategy on a multiplication or division\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %salgo <name>%s    - Change strategy (%s)\n", ui.ColorYellow(), ui.ColorReset(), r.algoList())
	fmt.Fprintf(r.out, "  %sbase <n>%s       - Set the input radix (0 infers from prefixes)\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sobase <n>%s      - Set the output radix\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shex%s            - Toggle hexadecimal display\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %slist%s           - List available strategies\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sstatus%s         - Display current configuration\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %shelp%s           - Display this help\n", ui.ColorYellow(), ui.ColorReset())
	fmt.Fprintf(r.out, "  %sexit%s / %squit%s    - Exit interactive mode\n", ui.ColorYellow(), ui.ColorReset(), ui.ColorYellow(), ui.ColorReset())
}

// algoList returns the strategy names of both kinds, deduplicated.
func (r *REPL) algoList() string {
	seen := make(map[string]bool)
	var names []string
	for _, kind := range []strategy.Kind{strategy.KindMultiply, strategy.KindDivide} {
		for _, name := range r.factory.List(kind) {
			if !seen[name] {
				seen[name] = true
				names = append(names, name)
			}
		}
	}
	return strings.Join(names, ", ")
}

// processCommand executes one input line and returns false when the REPL
// should exit.
func (r *REPL) processCommand(input string) bool {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return true
	}

	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "calc", "c":
		r.cmdCalc(strings.Join(args, " "))
	case "compare":
		r.cmdCompare(strings.Join(args, " "))
	case "algo", "a":
		r.cmdAlgo(args)
	case "base":
		r.cmdBase(args, &r.config.Base, true)
	case "obase":
		r.cmdBase(args, &r.config.OutputBase, false)
	case "list", "ls":
		r.cmdList()
	case "hex":
		r.cmdHex()
	case "status", "st":
		r.cmdStatus()
	case "help", "h", "?":
		r.printHelp()
	case "exit", "quit", "q":
		fmt.Fprintf(r.out, "%sGoodbye!%s\n", ui.ColorGreen(), ui.ColorReset())
		return false
	default:
		r.cmdCalc(input)
	}
	return true
}

func (r *REPL) outputConfig() OutputConfig {
	config := OutputConfig{Base: r.config.OutputBase}
	if r.config.HexOutput {
		config.Base, config.ShowPrefix = 16, true
	}
	return config
}

func (r *REPL) cmdCalc(text string) {
	if text == "" {
		fmt.Fprintf(r.out, "%sUsage: calc <expr>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	expr, err := calc.ParseExpression(text, r.config.Base)
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid expression: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		fmt.Fprintf(r.out, "Type %shelp%s to see available commands.\n", ui.ColorYellow(), ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	res, err := r.evaluator.Evaluate(ctx, expr)
	if err != nil {
		fmt.Fprintf(r.out, "%sError: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	DisplayResult(res, r.outputConfig(), r.out)
	fmt.Fprintln(r.out)
}

// cmdCompare runs every strategy of the expression's kind on its operands.
func (r *REPL) cmdCompare(text string) {
	expr, err := calc.ParseExpression(text, r.config.Base)
	if err != nil {
		fmt.Fprintf(r.out, "%sUsage: compare <a> * <b> | <a> / <b>: %v%s\n", ui.ColorRed(), err, ui.ColorReset())
		return
	}
	kind, ok := expr.Op.StrategyKind()
	if !ok {
		fmt.Fprintf(r.out, "%s%s has no alternative strategies%s\n", ui.ColorRed(), expr.Op, ui.ColorReset())
		return
	}
	if kind == strategy.KindDivide && expr.B.IsZero() {
		fmt.Fprintf(r.out, "%sError: division by zero%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), r.config.Timeout)
	defer cancel()

	ops := orchestration.Operands{A: expr.A.Magnitude(), B: expr.B.Magnitude()}
	results := orchestration.ExecuteStrategies(ctx, r.factory.GetAll(kind), ops, orchestration.NullProgressReporter{}, io.Discard)

	fmt.Fprintf(r.out, "\n%sComparison for |%s|:%s\n", ui.ColorBold(), describe(expr), ui.ColorReset())
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n", ui.ColorCyan(), ui.ColorReset())
	var first *strategy.Outcome
	for i, res := range results {
		if res.Err != nil {
			fmt.Fprintf(r.out, "  %s%-12s%s: %sError - %v%s\n",
				ui.ColorYellow(), res.Name, ui.ColorReset(), ui.ColorRed(), res.Err, ui.ColorReset())
			continue
		}
		status := ui.ColorGreen() + "✓" + ui.ColorReset()
		if first == nil {
			first = &results[i].Outcome
		} else if !res.Outcome.Equal(*first) {
			status = ui.ColorRed() + "✗ INCONSISTENT" + ui.ColorReset()
		}
		fmt.Fprintf(r.out, "  %s%-12s%s: %s%12s%s %s\n",
			ui.ColorYellow(), res.Name, ui.ColorReset(),
			ui.ColorCyan(), format.FormatExecutionDuration(res.Duration), ui.ColorReset(),
			status)
	}
	if first != nil {
		v := bigint.FromMagnitude(magnitude.SignPos, first.Value)
		fmt.Fprintf(r.out, "  = %s\n", displayValue(v, r.outputConfig()))
	}
	fmt.Fprintf(r.out, "%s─────────────────────────────────────────────%s\n\n", ui.ColorCyan(), ui.ColorReset())
}

// cmdAlgo selects a strategy for every kind that registers the name.
func (r *REPL) cmdAlgo(args []string) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: algo <name>%s\n", ui.ColorRed(), ui.ColorReset())
		fmt.Fprintf(r.out, "Available strategies: %s\n", r.algoList())
		return
	}

	name := strings.ToLower(args[0])
	var changed []string
	for _, kind := range []strategy.Kind{strategy.KindMultiply, strategy.KindDivide} {
		if s, err := r.factory.Get(kind, name); err == nil {
			r.evaluator = r.evaluator.WithStrategy(s)
			changed = append(changed, kind.String())
		}
	}
	if len(changed) == 0 {
		fmt.Fprintf(r.out, "%sUnknown strategy: %s%s\n", ui.ColorRed(), name, ui.ColorReset())
		fmt.Fprintf(r.out, "Available strategies: %s\n", r.algoList())
		return
	}
	fmt.Fprintf(r.out, "Strategy changed to: %s%s%s (%s)\n", ui.ColorGreen(), name, ui.ColorReset(), strings.Join(changed, ", "))
}

func (r *REPL) cmdBase(args []string, target *int, allowZero bool) {
	if len(args) == 0 {
		fmt.Fprintf(r.out, "%sUsage: base <n>%s\n", ui.ColorRed(), ui.ColorReset())
		return
	}
	n, err := strconv.Atoi(args[0])
	if err == nil && !(allowZero && n == 0) {
		err = magnitude.CheckRadix(n)
	}
	if err != nil {
		fmt.Fprintf(r.out, "%sInvalid base: %s%s\n", ui.ColorRed(), args[0], ui.ColorReset())
		return
	}
	*target = n
	fmt.Fprintf(r.out, "Base set to: %s%d%s\n", ui.ColorGreen(), n, ui.ColorReset())
}

func (r *REPL) cmdList() {
	fmt.Fprintf(r.out, "\n%sAvailable strategies:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, kind := range []strategy.Kind{strategy.KindMultiply, strategy.KindDivide} {
		current := r.evaluator.Strategy(kind).Name()
		for _, s := range r.factory.GetAll(kind) {
			marker := "  "
			if s.Name() == current {
				marker = ui.ColorGreen() + "► " + ui.ColorReset()
			}
			fmt.Fprintf(r.out, "%s%s%s/%-10s%s - %s\n", marker, ui.ColorYellow(), kind, s.Name(), ui.ColorReset(), s.Description())
		}
	}
	fmt.Fprintln(r.out)
}

func (r *REPL) cmdHex() {
	r.config.HexOutput = !r.config.HexOutput
	status := "disabled"
	if r.config.HexOutput {
		status = "enabled"
	}
	fmt.Fprintf(r.out, "Hexadecimal display: %s%s%s\n", ui.ColorGreen(), status, ui.ColorReset())
}

func (r *REPL) cmdStatus() {
	hexStatus := "no"
	if r.config.HexOutput {
		hexStatus = "yes"
	}
	fmt.Fprintf(r.out, "\n%sCurrent configuration:%s\n", ui.ColorBold(), ui.ColorReset())
	for _, kv := range [][2]string{
		{"Multiply", r.evaluator.Strategy(strategy.KindMultiply).Name()},
		{"Divide", r.evaluator.Strategy(strategy.KindDivide).Name()},
		{"Timeout", r.config.Timeout.String()},
		{"Input base", strconv.Itoa(r.config.Base)},
		{"Output base", strconv.Itoa(r.outputConfig().base())},
		{"Hexadecimal", hexStatus},
	} {
		fmt.Fprintf(r.out, "  %s\n", ui.KeyValue(kv[0], statusKeyWidth, kv[1]))
	}
	fmt.Fprintln(r.out)
}
