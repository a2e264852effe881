// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayResult], [DisplayQuietResult], [DisplayProgress].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatValue], [FormatQuietResult].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/ui"
)

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints only the value.
	Quiet bool
	// Verbose prints the full value instead of a truncated one.
	Verbose bool
	// Base is the output radix, 10 when zero.
	Base int
	// ShowPrefix prints 0x, 0b or 0 in front of hex, binary and octal values.
	ShowPrefix bool
	// ShowSign prints '+' in front of positive values.
	ShowSign bool
}

func (c OutputConfig) base() int {
	if c.Base == 0 {
		return 10
	}
	return c.Base
}

// radixPrefix returns the literal prefix Parse understands for base.
func radixPrefix(base int) string {
	switch base {
	case 16:
		return "0x"
	case 2:
		return "0b"
	case 8:
		return "0"
	}
	return ""
}

// FormatValue renders v in the configured radix, with optional sign and
// prefix.
func FormatValue(v bigint.Int, config OutputConfig) string {
	var b strings.Builder
	switch {
	case v.Sign() < 0:
		b.WriteByte('-')
	case config.ShowSign && v.Sign() > 0:
		b.WriteByte('+')
	}
	digits := v.Abs().Text(config.base())
	if config.ShowPrefix && !(config.base() == 8 && digits == "0") {
		b.WriteString(radixPrefix(config.base()))
	}
	b.WriteString(digits)
	return b.String()
}

// FormatQuietResult formats a result for quiet mode: the value, followed by
// the remainder for divmod, on a single line.
func FormatQuietResult(res calc.Result, config OutputConfig) string {
	s := FormatValue(res.Value, config)
	if res.HasRemainder {
		s += " " + FormatValue(res.Remainder, config)
	}
	return s
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, res calc.Result, config OutputConfig) {
	fmt.Fprintln(out, FormatQuietResult(res, config))
}

// WriteResultToFile writes an evaluation result to config.OutputFile,
// creating missing directories. It is a no-op without an output file.
func WriteResultToFile(res calc.Result, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# bigcalc result\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Expression: %s\n", res.Expr)
	if res.Strategy != "" {
		fmt.Fprintf(file, "# Strategy: %s\n", res.Strategy)
	}
	fmt.Fprintf(file, "# Duration: %s\n", res.Duration)
	fmt.Fprintf(file, "# Base: %d\n", config.base())
	fmt.Fprintf(file, "# Bits: %d\n", res.Value.BitLen())
	fmt.Fprintf(file, "\n")

	fmt.Fprintf(file, "%s\n", FormatValue(res.Value, config))
	if res.HasRemainder {
		fmt.Fprintf(file, "remainder %s\n", FormatValue(res.Remainder, config))
	}
	return file.Close()
}

// DisplayResultWithConfig displays a result and saves it when an output file
// is configured.
func DisplayResultWithConfig(out io.Writer, res calc.Result, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, res, config)
	} else {
		DisplayResult(res, config, out)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(res, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}
