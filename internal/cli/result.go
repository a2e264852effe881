package cli

import (
	"fmt"
	"io"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/format"
	"github.com/agbru/bigcalc/internal/ui"
)

// DisplayResult prints an evaluation: the expression, the value (truncated
// past TruncationLimit characters unless verbose), the remainder for divmod,
// and size and timing details.
func DisplayResult(res calc.Result, config OutputConfig, out io.Writer) {
	fmt.Fprintf(out, "%s%s%s\n", ui.ColorDim(), describe(res.Expr), ui.ColorReset())

	label := "="
	if res.Expr.Op == calc.OpCmp {
		label = "cmp"
	}
	fmt.Fprintf(out, "  %s %s%s%s\n", label, ui.ColorGreen(), displayValue(res.Value, config), ui.ColorReset())
	if res.HasRemainder {
		fmt.Fprintf(out, "  r %s%s%s\n", ui.ColorGreen(), displayValue(res.Remainder, config), ui.ColorReset())
	}

	fmt.Fprintf(out, "\n%sDetails:%s\n", ui.ColorBold(), ui.ColorReset())
	fmt.Fprintf(out, "  Base:      %s%d%s\n", ui.ColorMagenta(), config.base(), ui.ColorReset())
	fmt.Fprintf(out, "  Bits:      %s%s%s\n", ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(res.Value.BitLen())), ui.ColorReset())
	fmt.Fprintf(out, "  Digits:    %s%s%s\n", ui.ColorCyan(), format.FormatNumberString(fmt.Sprint(len(res.Value.Abs().Text(config.base())))), ui.ColorReset())
	if res.Strategy != "" {
		fmt.Fprintf(out, "  Strategy:  %s%s%s\n", ui.ColorBlue(), res.Strategy, ui.ColorReset())
	}
	fmt.Fprintf(out, "  Time:      %s%s%s\n", ui.ColorYellow(), format.FormatExecutionDuration(res.Duration), ui.ColorReset())
}

// describe renders the expression for the header line, shortening long
// operands.
func describe(expr calc.Expression) string {
	a := format.TruncateMiddle(expr.A.String(), TruncationLimit)
	if expr.Op.Unary() {
		return "convert " + a
	}
	b := format.TruncateMiddle(expr.B.String(), TruncationLimit)
	return fmt.Sprintf("%s %s %s", a, expr.Op.Symbol(), b)
}

func displayValue(v bigint.Int, config OutputConfig) string {
	s := FormatValue(v, config)
	if config.Verbose || len(s) <= TruncationLimit {
		return s
	}
	return s[:DisplayEdges] + "..." + s[len(s)-DisplayEdges:] + " (truncated, use -v for the full value)"
}
