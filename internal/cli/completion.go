package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/agbru/bigcalc/internal/calc"
)

// FlagCompletion describes a CLI flag for shell completion generation.
// Every shell script is generated from flagRegistry.
type FlagCompletion struct {
	Long      string   // long flag name without dashes (e.g., "help")
	Short     string   // short flag without the dash (e.g., "h")
	Help      string   // description text
	Values    []string // suggested values (nil = boolean or free-form)
	ValueName string   // label for the value in zsh (e.g., "radix")
	IsFile    bool     // the flag takes a file path
	IsAlgo    bool     // values come from the strategy list
	Group     string   // section heading in the fish script
}

var radixValues = []string{"2", "8", "10", "16", "32", "36", "62", "64"}

var flagRegistry = []FlagCompletion{
	{Long: "help", Short: "h", Help: "Show help message", Group: "Help and version"},
	{Long: "version", Short: "V", Help: "Show version information", Group: "Help and version"},
	{Long: "op", Help: "Operation to perform", Values: calc.Names(), ValueName: "operation", Group: "Operation"},
	{Long: "a", Help: "First operand", ValueName: "integer", Group: "Operation"},
	{Long: "b", Help: "Second operand", ValueName: "integer", Group: "Operation"},
	{Long: "base", Help: "Input radix (0 infers from prefixes)", Values: append([]string{"0"}, radixValues...), ValueName: "radix", Group: "Operation"},
	{Long: "obase", Help: "Output radix", Values: radixValues, ValueName: "radix", Group: "Operation"},
	{Long: "algo", Help: "Multiplication or division strategy", IsAlgo: true, ValueName: "strategy", Group: "Strategies"},
	{Long: "compare", Help: "Benchmark every strategy of an operation", Values: []string{"mul", "div"}, ValueName: "operation", Group: "Strategies"},
	{Long: "digits", Help: "Operand size in digits for random comparisons", Values: []string{"100", "1000", "10000", "100000"}, ValueName: "digits", Group: "Strategies"},
	{Long: "seed", Help: "Seed for random operands", ValueName: "seed", Group: "Strategies"},
	{Long: "timeout", Help: "Maximum execution time", Values: []string{"10s", "1m", "5m", "30m"}, ValueName: "duration", Group: "Strategies"},
	{Long: "repl", Help: "Start interactive mode", Group: "Modes"},
	{Long: "tui", Help: "Start the terminal interface", Group: "Modes"},
	{Long: "output", Short: "o", Help: "Output file path", IsFile: true, ValueName: "file", Group: "Output"},
	{Long: "quiet", Short: "q", Help: "Print only the result"},
	{Long: "verbose", Short: "v", Help: "Print the full result value"},
	{Long: "prefix", Help: "Print radix prefixes"},
	{Long: "sign", Help: "Print a sign on positive values"},
	{Long: "no-color", Help: "Disable colored output"},
	{Long: "metrics-addr", Help: "Serve Prometheus metrics on this address", ValueName: "address", Group: "Observability"},
	{Long: "log-level", Help: "Log level", Values: []string{"debug", "info", "warn", "error", "disabled"}, ValueName: "level"},
	{Long: "completion", Help: "Generate completion script", Values: []string{"bash", "zsh", "fish", "powershell"}, ValueName: "shell", Group: "Completion"},
}

// GenerateCompletion writes a completion script for shell ("bash", "zsh",
// "fish", "powershell" or "ps") with algorithms as the strategy names.
func GenerateCompletion(out io.Writer, shell string, algorithms []string) error {
	switch shell {
	case "bash":
		return generateBashCompletion(out, algorithms)
	case "zsh":
		return generateZshCompletion(out, algorithms)
	case "fish":
		return generateFishCompletion(out, algorithms)
	case "powershell", "ps":
		return generatePowerShellCompletion(out, algorithms)
	default:
		return fmt.Errorf("unsupported shell: %s (accepted values: bash, zsh, fish, powershell)", shell)
	}
}

// flagForms returns the spellings of f accepted on the command line.
func flagForms(f FlagCompletion) []string {
	var forms []string
	if f.Long != "" {
		forms = append(forms, "--"+f.Long)
	}
	if f.Short != "" {
		forms = append(forms, "-"+f.Short)
	}
	return forms
}

func generateBashCompletion(out io.Writer, algorithms []string) error {
	var opts []string
	var caseBody strings.Builder
	for _, f := range flagRegistry {
		opts = append(opts, flagForms(f)...)

		var body string
		switch {
		case f.IsAlgo:
			body = `COMPREPLY=( $(compgen -W "${algorithms}" -- "${cur}") )`
		case f.IsFile:
			body = `COMPREPLY=( $(compgen -f -- "${cur}") )`
		case len(f.Values) > 0:
			body = fmt.Sprintf(`COMPREPLY=( $(compgen -W "%s" -- "${cur}") )`, strings.Join(f.Values, " "))
		default:
			continue
		}
		fmt.Fprintf(&caseBody, "        %s)\n            %s\n            return 0\n            ;;\n",
			strings.Join(flagForms(f), "|"), body)
	}

	script := fmt.Sprintf(`# Bash completion script for bigcalc
# Add this to your ~/.bashrc or ~/.bash_completion

_bigcalc_completions() {
    local cur prev opts algorithms
    COMPREPLY=()
    cur="${COMP_WORDS[COMP_CWORD]}"
    prev="${COMP_WORDS[COMP_CWORD-1]}"

    opts="%s"
    algorithms="%s all"

    case "${prev}" in
%s    esac

    if [[ "${cur}" == -* ]]; then
        COMPREPLY=( $(compgen -W "${opts}" -- "${cur}") )
        return 0
    fi
}

complete -F _bigcalc_completions bigcalc
`, strings.Join(opts, " "), strings.Join(algorithms, " "), caseBody.String())

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion bash generation failed: %w", err)
	}
	return nil
}

func generateZshCompletion(out io.Writer, algorithms []string) error {
	args := make([]string, 0, len(flagRegistry))
	for _, f := range flagRegistry {
		args = append(args, zshArgEntry(f))
	}

	script := fmt.Sprintf(`#compdef bigcalc

# Zsh completion script for bigcalc
# Place this file in $fpath as _bigcalc

_bigcalc() {
    local -a algorithms
    algorithms=(%s all)

    _arguments -s \
%s
}

_bigcalc "$@"
`, strings.Join(algorithms, " "), strings.Join(args, " \\\n"))

	if _, err := fmt.Fprint(out, script); err != nil {
		return fmt.Errorf("completion zsh generation failed: %w", err)
	}
	return nil
}

// zshArgEntry formats f as a zsh _arguments spec.
func zshArgEntry(f FlagCompletion) string {
	var valueSuffix string
	switch {
	case f.IsFile:
		valueSuffix = fmt.Sprintf(":%s:_files", f.ValueName)
	case f.IsAlgo:
		valueSuffix = fmt.Sprintf(":%s:($algorithms)", f.ValueName)
	case len(f.Values) > 0:
		valueSuffix = fmt.Sprintf(":%s:(%s)", f.ValueName, strings.Join(f.Values, " "))
	case f.ValueName != "":
		valueSuffix = fmt.Sprintf(":%s:", f.ValueName)
	}

	if f.Short != "" {
		return fmt.Sprintf("        '(-%s --%s)'{-%s,--%s}'[%s]%s'",
			f.Short, f.Long, f.Short, f.Long, f.Help, valueSuffix)
	}
	return fmt.Sprintf("        '--%s[%s]%s'", f.Long, f.Help, valueSuffix)
}

func generateFishCompletion(out io.Writer, algorithms []string) error {
	lines := []string{
		"# Fish completion script for bigcalc",
		"# Add this to ~/.config/fish/completions/bigcalc.fish",
		"",
		"complete -c bigcalc -f",
	}

	algoList := strings.Join(algorithms, " ")
	for _, f := range flagRegistry {
		if f.Group != "" {
			lines = append(lines, "", "# "+f.Group)
		}
		lines = append(lines, fishCompleteLine(f, algoList))
	}
	lines = append(lines, "")

	if _, err := fmt.Fprint(out, strings.Join(lines, "\n")); err != nil {
		return fmt.Errorf("completion fish generation failed: %w", err)
	}
	return nil
}

func fishCompleteLine(f FlagCompletion, algoList string) string {
	parts := []string{"complete -c bigcalc"}
	if f.Short != "" {
		parts = append(parts, "-s "+f.Short)
	}
	parts = append(parts, "-l "+f.Long, fmt.Sprintf("-d '%s'", f.Help))

	switch {
	case f.IsFile:
		parts = append(parts, "-rF")
	case f.IsAlgo:
		parts = append(parts, fmt.Sprintf("-xa '%s all'", algoList))
	case len(f.Values) > 0:
		parts = append(parts, fmt.Sprintf("-xa '%s'", strings.Join(f.Values, " ")))
	case f.ValueName != "":
		parts = append(parts, "-x")
	}
	return strings.Join(parts, " ")
}

// psQuote renders values as a PowerShell array body.
func psQuote(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = "'" + v + "'"
	}
	return strings.Join(quoted, ", ")
}

func generatePowerShellCompletion(out io.Writer, algorithms []string) error {
	var optionEntries, switchEntries []string
	for _, f := range flagRegistry {
		for _, form := range flagForms(f) {
			optionEntries = append(optionEntries, fmt.Sprintf(
				"        @{Name = '%s'; Description = '%s' }", form, f.Help))
		}

		var source string
		switch {
		case f.IsAlgo:
			source = "$bigcalcAlgorithms"
		case len(f.Values) > 0 && !f.IsFile:
			source = "@(" + psQuote(f.Values) + ")"
		default:
			continue
		}
		switchEntries = append(switchEntries, fmt.Sprintf(`        '--%s' {
            %s | Where-Object { $_ -like "$wordToComplete*" } | ForEach-Object {
                [System.Management.Automation.CompletionResult]::new($_, $_, 'ParameterValue', $_)
            }
            return
        }`, f.Long, source))
	}

	script := fmt.Sprintf(`# PowerShell completion script for bigcalc
# Add this to your $PROFILE

$bigcalcAlgorithms = @(%s)

Register-ArgumentCompleter -CommandName 'bigcalc' -Native -ScriptBlock {
    param($wordToComplete, $commandAst, $cursorPosition)

    $options = @(
%s
    )

    $elements = $commandAst.CommandElements
    $prevElement = if ($elements.Count -gt 2) { $elements[-2].ToString() } else { '' }

    switch ($prevElement) {
%s
    }

    $options | Where-Object { $_.Name -like "$wordToComplete*" } | ForEach-Object {
        [System.Management.Automation.CompletionResult]::new($_.Name, $_.Name, 'ParameterName', $_.Description)
    }
}
`, psQuote(append(append([]string{}, algorithms...), "all")), strings.Join(optionEntries, "\n"), strings.Join(switchEntries, "\n"))

	_, err := fmt.Fprint(out, script)
	return err
}
