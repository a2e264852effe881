package calc

import (
	"fmt"
	"strings"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/strategy"
)

// Op is an arithmetic operation.
type Op int

const (
	OpAdd Op = iota
	OpSub
	OpMul
	OpQuo
	OpRem
	OpQuoRem
	OpLsh
	OpRsh
	OpCmp
	OpConvert
)

// opSpec describes the spellings of an operation. The first alias is the
// canonical word used by -op.
var opSpecs = [...]struct {
	symbol  string
	aliases []string
}{
	OpAdd:     {"+", []string{"add"}},
	OpSub:     {"-", []string{"sub"}},
	OpMul:     {"*", []string{"mul", "x"}},
	OpQuo:     {"/", []string{"div", "quo"}},
	OpRem:     {"%", []string{"mod", "rem"}},
	OpQuoRem:  {"divmod", []string{"quorem", "divmod"}},
	OpLsh:     {"<<", []string{"shl", "lsh"}},
	OpRsh:     {">>", []string{"shr", "rsh"}},
	OpCmp:     {"<=>", []string{"cmp"}},
	OpConvert: {"convert", []string{"convert"}},
}

// ParseOp returns the operation spelled s, either as a symbol or a word.
func ParseOp(s string) (Op, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for op, spec := range opSpecs {
		if s == spec.symbol {
			return Op(op), nil
		}
		for _, alias := range spec.aliases {
			if s == alias {
				return Op(op), nil
			}
		}
	}
	return 0, fmt.Errorf("%w %q", apperrors.ErrUnknownOperation, s)
}

// Names returns the canonical word of every operation.
func Names() []string {
	names := make([]string, len(opSpecs))
	for i, spec := range opSpecs {
		names[i] = spec.aliases[0]
	}
	return names
}

// String returns the canonical word.
func (o Op) String() string {
	if o < 0 || int(o) >= len(opSpecs) {
		return fmt.Sprintf("Op(%d)", int(o))
	}
	return opSpecs[o].aliases[0]
}

// Symbol returns the infix spelling.
func (o Op) Symbol() string {
	if o < 0 || int(o) >= len(opSpecs) {
		return "?"
	}
	return opSpecs[o].symbol
}

// Unary reports whether the operation takes a single operand.
func (o Op) Unary() bool { return o == OpConvert }

// StrategyKind returns the strategy kind the operation is routed through,
// if any.
func (o Op) StrategyKind() (strategy.Kind, bool) {
	switch o {
	case OpMul:
		return strategy.KindMultiply, true
	case OpQuo, OpRem, OpQuoRem:
		return strategy.KindDivide, true
	default:
		return 0, false
	}
}
