package tui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	"github.com/agbru/bigcalc/internal/calc"
	"github.com/agbru/bigcalc/internal/cli"
	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/orchestration"
	"github.com/agbru/bigcalc/internal/strategy"
)

func historyTexts(h HistoryModel) []string {
	texts := make([]string, len(h.lines))
	for i, l := range h.lines {
		texts[i] = l.text
	}
	return texts
}

func TestHistoryModel_AddResult(t *testing.T) {
	h := NewHistoryModel()
	h.SetSize(80, 20)

	h.AddResult("2 * 3", calc.Result{
		Expr:     calc.Expression{Op: calc.OpMul},
		Value:    bigint.NewInt(6),
		Strategy: strategy.NameKaratsuba,
		Duration: 250 * time.Microsecond,
	}, cli.OutputConfig{})

	want := []string{"› 2 * 3", "= 6", "karatsuba · 250µs · 3 bits"}
	got := historyTexts(h)
	if strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", got, want)
	}
}

func TestHistoryModel_AddResult_RemainderAndBase(t *testing.T) {
	h := NewHistoryModel()
	h.SetSize(80, 20)

	h.AddResult("17 divmod 5", calc.Result{
		Expr:         calc.Expression{Op: calc.OpQuoRem},
		Value:        bigint.NewInt(3),
		Remainder:    bigint.NewInt(2),
		HasRemainder: true,
	}, cli.OutputConfig{Base: 2, ShowPrefix: true})

	got := historyTexts(h)
	if got[1] != "= 0b11" || got[2] != "r 0b10" {
		t.Errorf("unexpected value lines %q", got)
	}
}

func TestHistoryModel_AddResult_Compare(t *testing.T) {
	h := NewHistoryModel()
	h.AddResult("1 <=> 2", calc.Result{Expr: calc.Expression{Op: calc.OpCmp}, Value: bigint.NewInt(-1)}, cli.OutputConfig{})

	if got := historyTexts(h)[1]; got != "cmp -1" {
		t.Errorf("expected cmp line, got %q", got)
	}
}

func TestHistoryModel_AddError(t *testing.T) {
	h := NewHistoryModel()
	h.AddError("1 +", errors.New("bad input"))
	h.AddError("", errors.New("strategies disagree"))

	want := []string{"› 1 +", "✗ bad input", "✗ strategies disagree"}
	if got := historyTexts(h); strings.Join(got, "|") != strings.Join(want, "|") {
		t.Errorf("lines = %q, want %q", got, want)
	}
	if h.lines[1].kind != lineError {
		t.Error("expected error kind")
	}
}

func TestHistoryModel_AddComparisonAndFinal(t *testing.T) {
	h := NewHistoryModel()
	h.SetSize(80, 20)

	h.AddComparison([]orchestration.StrategyResult{
		{Name: "long", Outcome: strategy.Outcome{Value: magnitude.FromUint64(255)}, Duration: time.Millisecond},
		{Name: "mathbig", Err: errors.New("boom")},
	})
	h.AddFinal(orchestration.StrategyResult{
		Name:    "long",
		Outcome: strategy.Outcome{Value: magnitude.FromUint64(255), Remainder: magnitude.FromUint64(1)},
	}, cli.OutputConfig{Base: 16})

	got := historyTexts(h)
	if len(got) != 4 {
		t.Fatalf("expected 4 lines, got %q", got)
	}
	if !strings.Contains(got[0], "long") || !strings.Contains(got[0], "✓") {
		t.Errorf("unexpected success line %q", got[0])
	}
	if !strings.Contains(got[1], "✗ boom") {
		t.Errorf("unexpected failure line %q", got[1])
	}
	if got[2] != "= ff" || got[3] != "r 1" {
		t.Errorf("unexpected final lines %q", got[2:])
	}
}

func TestHistoryModel_Recall(t *testing.T) {
	h := NewHistoryModel()
	h.Remember("1 + 1")
	h.Remember("2 + 2")
	h.Remember("2 + 2") // repeat is skipped

	if s, ok := h.Prev("draft"); !ok || s != "2 + 2" {
		t.Fatalf("Prev = %q, %v", s, ok)
	}
	if s, ok := h.Prev("ignored"); !ok || s != "1 + 1" {
		t.Fatalf("Prev = %q, %v", s, ok)
	}
	if _, ok := h.Prev(""); ok {
		t.Error("expected no input before the oldest")
	}
	if s, ok := h.Next(); !ok || s != "2 + 2" {
		t.Fatalf("Next = %q, %v", s, ok)
	}
	if s, ok := h.Next(); !ok || s != "draft" {
		t.Fatalf("expected the draft back, got %q, %v", s, ok)
	}
	if _, ok := h.Next(); ok {
		t.Error("expected nothing past the draft")
	}
}

func TestHistoryModel_ScrollClamps(t *testing.T) {
	h := NewHistoryModel()
	h.SetSize(80, 8) // 5 visible lines
	for i := range 12 {
		h.AddNote(strings.Repeat("x", i+1))
	}

	h.Scroll(100)
	if h.offset != 7 {
		t.Errorf("expected offset clamped to 7, got %d", h.offset)
	}
	if !strings.Contains(h.View(), "↓ 7 more") {
		t.Error("expected scroll indicator")
	}
	h.Scroll(-100)
	if h.offset != 0 {
		t.Errorf("expected offset 0, got %d", h.offset)
	}

	h.Scroll(3)
	h.AddNote("new")
	if h.offset != 0 {
		t.Error("expected a new line to scroll back to the bottom")
	}
}

func TestHistoryModel_Trim(t *testing.T) {
	h := NewHistoryModel()
	for range maxHistoryLines + 10 {
		h.AddNote("n")
	}
	if len(h.lines) != maxHistoryLines {
		t.Errorf("expected %d lines, got %d", maxHistoryLines, len(h.lines))
	}
}

func TestHistoryModel_ResetKeepsRecall(t *testing.T) {
	h := NewHistoryModel()
	h.SetSize(80, 10)
	h.Remember("1 + 1")
	h.AddNote("note")

	h.Reset()

	if len(h.lines) != 0 {
		t.Error("expected no lines after reset")
	}
	if s, ok := h.Prev(""); !ok || s != "1 + 1" {
		t.Error("expected inputs to survive a reset")
	}
	if !strings.Contains(h.View(), "Type an expression") {
		t.Error("expected the empty hint")
	}
}
