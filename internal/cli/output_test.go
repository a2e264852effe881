package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
)

func divmodResult() calc.Result {
	return calc.Result{
		Expr:         calc.Expression{Op: calc.OpQuoRem, A: bigint.NewInt(7), B: bigint.NewInt(2)},
		Value:        bigint.NewInt(3),
		Remainder:    bigint.NewInt(1),
		HasRemainder: true,
		Strategy:     "schoolbook",
		Duration:     time.Millisecond,
	}
}

func TestFormatValue(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name   string
		value  bigint.Int
		config OutputConfig
		want   string
	}{
		{"decimal default", bigint.NewInt(-1234), OutputConfig{}, "-1234"},
		{"hex with prefix", bigint.NewInt(-255), OutputConfig{Base: 16, ShowPrefix: true}, "-0xff"},
		{"binary with prefix", bigint.NewInt(5), OutputConfig{Base: 2, ShowPrefix: true}, "0b101"},
		{"octal zero keeps single digit", bigint.NewInt(0), OutputConfig{Base: 8, ShowPrefix: true}, "0"},
		{"octal prefix", bigint.NewInt(8), OutputConfig{Base: 8, ShowPrefix: true}, "010"},
		{"explicit plus", bigint.NewInt(10), OutputConfig{ShowSign: true}, "+10"},
		{"zero has no sign", bigint.NewInt(0), OutputConfig{ShowSign: true}, "0"},
		{"base 36", bigint.NewInt(35), OutputConfig{Base: 36}, "z"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			if got := FormatValue(tc.value, tc.config); got != tc.want {
				t.Errorf("FormatValue() = %q, want %q", got, tc.want)
			}
		})
	}
}

func TestFormatQuietResult(t *testing.T) {
	t.Parallel()
	if got := FormatQuietResult(divmodResult(), OutputConfig{}); got != "3 1" {
		t.Errorf("FormatQuietResult() = %q, want %q", got, "3 1")
	}
	res := calc.Result{Value: bigint.NewInt(42)}
	if got := FormatQuietResult(res, OutputConfig{Base: 16}); got != "2a" {
		t.Errorf("FormatQuietResult() = %q, want %q", got, "2a")
	}
}

func TestWriteResultToFile(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()

	testCases := []struct {
		name       string
		outputFile string
		checkFunc  func(t *testing.T, filePath string)
	}{
		{
			name:       "Write divmod result to file",
			outputFile: filepath.Join(tmpDir, "result.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				content, err := os.ReadFile(filePath)
				if err != nil {
					t.Fatalf("Failed to read output file: %v", err)
				}
				for _, want := range []string{"# Expression: 7 divmod 2", "# Strategy: schoolbook", "# Base: 10", "\n3\n", "remainder 1"} {
					if !strings.Contains(string(content), want) {
						t.Errorf("file should contain %q, got:\n%s", want, content)
					}
				}
			},
		},
		{
			name:       "Empty output file (no write)",
			outputFile: "",
		},
		{
			name:       "Create nested directory",
			outputFile: filepath.Join(tmpDir, "nested", "dir", "result.txt"),
			checkFunc: func(t *testing.T, filePath string) {
				if _, err := os.Stat(filePath); err != nil {
					t.Errorf("File should exist in nested directory: %v", err)
				}
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := WriteResultToFile(divmodResult(), OutputConfig{OutputFile: tc.outputFile})
			if err != nil {
				t.Fatalf("WriteResultToFile() error = %v", err)
			}
			if tc.checkFunc != nil {
				tc.checkFunc(t, tc.outputFile)
			}
		})
	}
}

func TestWriteResultToFile_BadPath(t *testing.T) {
	t.Parallel()
	tmpDir := t.TempDir()
	blocker := filepath.Join(tmpDir, "file")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	err := WriteResultToFile(divmodResult(), OutputConfig{OutputFile: filepath.Join(blocker, "sub", "out.txt")})
	if err == nil {
		t.Error("expected an error when a parent path is a regular file")
	}
}

func TestDisplayResultWithConfig(t *testing.T) {
	t.Parallel()

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		if err := DisplayResultWithConfig(&buf, divmodResult(), OutputConfig{Quiet: true}); err != nil {
			t.Fatal(err)
		}
		if buf.String() != "3 1\n" {
			t.Errorf("quiet output = %q", buf.String())
		}
	})

	t.Run("saved", func(t *testing.T) {
		t.Parallel()
		var buf bytes.Buffer
		path := filepath.Join(t.TempDir(), "out.txt")
		if err := DisplayResultWithConfig(&buf, divmodResult(), OutputConfig{OutputFile: path}); err != nil {
			t.Fatal(err)
		}
		if !strings.Contains(buf.String(), "Result saved to: "+path) {
			t.Errorf("missing save notice in %q", buf.String())
		}
	})
}

func TestDisplayResult(t *testing.T) {
	t.Parallel()
	big := bigint.NewInt(1).Lsh(1000)

	tests := []struct {
		name     string
		result   calc.Result
		config   OutputConfig
		contains []string
		excludes []string
	}{
		{
			name:     "divmod",
			result:   divmodResult(),
			contains: []string{"7 divmod 2", "= 3", "r 1", "Strategy:  schoolbook", "Bits:      2"},
		},
		{
			name: "compare label",
			result: calc.Result{
				Expr:  calc.Expression{Op: calc.OpCmp, A: bigint.NewInt(1), B: bigint.NewInt(2)},
				Value: bigint.NewInt(-1),
			},
			contains: []string{"1 <=> 2", "cmp -1"},
			excludes: []string{"Strategy:"},
		},
		{
			name: "truncated",
			result: calc.Result{
				Expr:  calc.Expression{Op: calc.OpLsh, A: bigint.NewInt(1), B: bigint.NewInt(1000)},
				Value: big,
			},
			contains: []string{"(truncated, use -v for the full value)", "Digits:    302"},
		},
		{
			name: "verbose",
			result: calc.Result{
				Expr:  calc.Expression{Op: calc.OpLsh, A: bigint.NewInt(1), B: bigint.NewInt(1000)},
				Value: big,
			},
			config:   OutputConfig{Verbose: true},
			contains: []string{big.String()},
			excludes: []string{"truncated"},
		},
		{
			name: "convert",
			result: calc.Result{
				Expr:  calc.Expression{Op: calc.OpConvert, A: bigint.NewInt(255)},
				Value: bigint.NewInt(255),
			},
			config:   OutputConfig{Base: 16},
			contains: []string{"convert 255", "= ff", "Base:      16"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var buf bytes.Buffer
			DisplayResult(tc.result, tc.config, &buf)
			output := buf.String()
			for _, want := range tc.contains {
				if !strings.Contains(output, want) {
					t.Errorf("output should contain %q, got:\n%s", want, output)
				}
			}
			for _, unwanted := range tc.excludes {
				if strings.Contains(output, unwanted) {
					t.Errorf("output should not contain %q, got:\n%s", unwanted, output)
				}
			}
		})
	}
}
