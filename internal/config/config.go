// Package config handles command-line flags, environment overrides and
// validation for bigcalc.
package config

import (
	"flag"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/calc"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/logging"
	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/strategy"
)

// EnvPrefix is prepended to every environment variable consulted by the
// configuration layer.
const EnvPrefix = "BIGCALC_"

// ─────────────────────────────────────────────────────────────────────────────
// Defaults
// ─────────────────────────────────────────────────────────────────────────────

const (
	DefaultTimeout     = 5 * time.Minute
	DefaultOutputBase  = 10
	DefaultDigits      = 2000
	DefaultLogLevel    = "info"
	DefaultAlgo        = strategy.NameAuto
	DefaultCompareAlgo = "all"
)

// Mode is the top-level behavior selected by the flags.
type Mode int

const (
	ModeEval Mode = iota
	ModeConvert
	ModeCompare
	ModeREPL
	ModeTUI
	ModeCompletion
)

func (m Mode) String() string {
	switch m {
	case ModeEval:
		return "eval"
	case ModeConvert:
		return "convert"
	case ModeCompare:
		return "compare"
	case ModeREPL:
		return "repl"
	case ModeTUI:
		return "tui"
	case ModeCompletion:
		return "completion"
	}
	return fmt.Sprintf("Mode(%d)", int(m))
}

// AppConfig holds the parsed application configuration.
type AppConfig struct {
	// Op is the operation word or symbol given with -op.
	Op string
	// A and B are the operand texts given with -a and -b.
	A, B string
	// Expression is the positional expression, joined with spaces.
	Expression string
	// Base is the input radix; 0 infers it from each operand's prefix.
	Base int
	// OutputBase is the radix results are printed in.
	OutputBase int
	ShowPrefix bool
	ShowSign   bool
	// Algo selects the strategy: a name, or "all" in compare mode.
	Algo    string
	Compare bool
	// Digits is the size, in 32-bit digits, of random compare operands.
	Digits      int
	Seed        uint64
	Timeout     time.Duration
	REPL        bool
	TUI         bool
	OutputFile  string
	Quiet       bool
	Verbose     bool
	NoColor     bool
	MetricsAddr string
	LogLevel    string
	Completion  string
}

// Mode returns the behavior selected by the configuration.
func (c AppConfig) Mode() Mode {
	switch {
	case c.Completion != "":
		return ModeCompletion
	case c.TUI:
		return ModeTUI
	case c.REPL:
		return ModeREPL
	case c.Compare:
		return ModeCompare
	}
	if op, err := calc.ParseOp(c.Op); err == nil && op == calc.OpConvert {
		return ModeConvert
	}
	if c.Op == "" && c.B == "" && c.A != "" {
		return ModeConvert
	}
	return ModeEval
}

// ParsedOp returns the operation given with -op.
func (c AppConfig) ParsedOp() (calc.Op, error) {
	if c.Op == "" {
		return calc.OpConvert, nil
	}
	return calc.ParseOp(c.Op)
}

// ExpressionText returns the expression to evaluate: the positional
// expression if any, otherwise one assembled from -a, -op and -b.
func (c AppConfig) ExpressionText() string {
	if c.Expression != "" {
		return c.Expression
	}
	if c.Mode() == ModeConvert {
		return c.A
	}
	return strings.Join([]string{c.A, c.Op, c.B}, " ")
}

// ParseConfig parses args (without the program name) into an AppConfig.
// Usage and flag errors are written to errWriter. Environment overrides are
// applied to flags not set on the command line, then the result is
// validated.
func ParseConfig(programName string, args []string, errWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errWriter)

	config := AppConfig{}
	fs.StringVar(&config.Op, "op", "", "Operation: "+strings.Join(calc.Names(), ", ")+".")
	fs.StringVar(&config.A, "a", "", "First operand.")
	fs.StringVar(&config.B, "b", "", "Second operand.")
	fs.IntVar(&config.Base, "base", 0, "Input radix (2-64), 0 infers it from the 0x/0b/0 prefix.")
	fs.IntVar(&config.OutputBase, "obase", DefaultOutputBase, "Output radix (2-64).")
	fs.BoolVar(&config.ShowPrefix, "prefix", false, "Show the radix prefix (0x, 0b, 0) in results.")
	fs.BoolVar(&config.ShowSign, "sign", false, "Show a '+' on positive results.")
	fs.StringVar(&config.Algo, "algo", DefaultAlgo, "Strategy for multiplication and division ('all' in compare mode).")
	fs.BoolVar(&config.Compare, "compare", false, "Run every selected strategy on the same operands and compare.")
	fs.IntVar(&config.Digits, "digits", DefaultDigits, "Size in 32-bit digits of random compare operands.")
	fs.Uint64Var(&config.Seed, "seed", 1, "Seed for random compare operands.")
	fs.DurationVar(&config.Timeout, "timeout", DefaultTimeout, "Maximum execution time.")
	fs.BoolVar(&config.REPL, "repl", false, "Start the interactive REPL.")
	fs.BoolVar(&config.TUI, "tui", false, "Start the interactive dashboard.")
	fs.StringVar(&config.OutputFile, "output", "", "Write the result to this file.")
	fs.StringVar(&config.OutputFile, "o", "", "Write the result to this file (shorthand).")
	fs.BoolVar(&config.Quiet, "quiet", false, "Print only the result.")
	fs.BoolVar(&config.Quiet, "q", false, "Print only the result (shorthand).")
	fs.BoolVar(&config.Verbose, "verbose", false, "Show details and memory statistics.")
	fs.BoolVar(&config.Verbose, "v", false, "Show details and memory statistics (shorthand).")
	fs.BoolVar(&config.NoColor, "no-color", false, "Disable colored output.")
	fs.StringVar(&config.MetricsAddr, "metrics-addr", "", "Serve Prometheus metrics on this address (e.g. :9090).")
	fs.StringVar(&config.LogLevel, "log-level", DefaultLogLevel, "Log level: debug, info, warn, error, disabled.")
	fs.StringVar(&config.Completion, "completion", "", "Generate a completion script (bash, zsh, fish, powershell).")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	config.Expression = strings.Join(fs.Args(), " ")

	applyEnvOverrides(&config, fs)

	if config.Compare && !isFlagSet(fs, "algo") && config.Algo == DefaultAlgo {
		config.Algo = DefaultCompareAlgo
	}

	if err := config.Validate(); err != nil {
		fmt.Fprintln(errWriter, "Error:", err)
		fs.Usage()
		return AppConfig{}, err
	}
	return config, nil
}

// Validate checks the semantic consistency of the configuration.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout value must be strictly positive")
	}
	if c.Base != 0 {
		if err := magnitude.CheckRadix(c.Base); err != nil {
			return apperrors.NewConfigError("invalid -base %d: %v", c.Base, err)
		}
	}
	if err := magnitude.CheckRadix(c.OutputBase); err != nil {
		return apperrors.NewConfigError("invalid -obase %d: %v", c.OutputBase, err)
	}
	if _, err := logging.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	if c.Completion != "" {
		switch c.Completion {
		case "bash", "zsh", "fish", "powershell", "ps":
			return nil
		}
		return apperrors.NewConfigError("unsupported shell %q for -completion", c.Completion)
	}
	if c.Op != "" {
		if _, err := calc.ParseOp(c.Op); err != nil {
			return apperrors.NewConfigError("invalid -op: %v", err)
		}
	}
	if c.Expression != "" && (c.Op != "" || c.A != "" || c.B != "") {
		return apperrors.NewConfigError("a positional expression cannot be combined with -op, -a or -b")
	}

	mode := c.Mode()
	switch mode {
	case ModeCompare:
		return c.validateCompare()
	case ModeREPL, ModeTUI:
		return c.validateAlgo(false)
	case ModeConvert:
		if c.A == "" && c.Expression == "" {
			return apperrors.NewConfigError("nothing to convert: use -a")
		}
	case ModeEval:
		if c.Expression == "" && (c.A == "" || c.B == "") {
			return apperrors.NewConfigError("no expression given: use -a, -op and -b, a positional expression, -repl, -tui or -compare")
		}
	}
	return c.validateAlgo(false)
}

func (c AppConfig) validateCompare() error {
	op, err := c.ParsedOp()
	if err != nil || c.Op == "" {
		op = calc.OpMul
	}
	if _, ok := op.StrategyKind(); !ok {
		return apperrors.NewConfigError("compare mode needs a multiplication or division -op, got %q", c.Op)
	}
	if c.Digits <= 0 && (c.A == "" || c.B == "") {
		return apperrors.NewConfigError("-digits must be positive")
	}
	return c.validateAlgo(true)
}

// validateAlgo checks that Algo names a strategy of at least one kind, or is
// "all" when allowAll is set.
func (c AppConfig) validateAlgo(allowAll bool) error {
	if allowAll && c.Algo == "all" {
		return nil
	}
	f := strategy.GlobalFactory()
	for _, kind := range []strategy.Kind{strategy.KindMultiply, strategy.KindDivide} {
		if _, err := f.Get(kind, c.Algo); err == nil {
			return nil
		}
	}
	names := append(f.List(strategy.KindMultiply), f.List(strategy.KindDivide)...)
	return apperrors.NewConfigError("unknown -algo %q (available: %s)", c.Algo, strings.Join(uniqueSorted(names), ", "))
}

func uniqueSorted(names []string) []string {
	seen := make(map[string]bool, len(names))
	out := names[:0]
	for _, n := range names {
		if !seen[n] {
			seen[n] = true
			out = append(out, n)
		}
	}
	slices.Sort(out)
	return out
}
