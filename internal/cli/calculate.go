package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/bigcalc/internal/config"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/strategy"
	"github.com/agbru/bigcalc/internal/ui"
)

// PrintExecutionConfig displays the operation being benchmarked, the operand
// sizes, the timeout and the runtime environment.
func PrintExecutionConfig(cfg config.AppConfig, kind strategy.Kind, ops orchestration.Operands, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Comparing %s%s%s strategies on %s%s%s x %s%s%s digit operands with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), kind, ui.ColorReset(),
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(len(ops.A))), ui.ColorReset(),
		ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(len(ops.B))), ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(), ui.ColorCyan(), runtime.Version(), ui.ColorReset())
}

// PrintExecutionMode displays whether one strategy runs or several are
// compared.
func PrintExecutionMode(strategies []strategy.Strategy, out io.Writer) {
	var modeDesc string
	switch len(strategies) {
	case 0:
		modeDesc = "No strategy selected"
	case 1:
		modeDesc = fmt.Sprintf("Single run of the %s%s%s strategy",
			ui.ColorGreen(), strategies[0].Name(), ui.ColorReset())
	default:
		modeDesc = "Parallel comparison of all strategies"
	}
	fmt.Fprintf(out, "Execution mode: %s.\n", modeDesc)
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
