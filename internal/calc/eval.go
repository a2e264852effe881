package calc

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/agbru/bigcalc/internal/bigint"
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/magnitude"
	"github.com/agbru/bigcalc/internal/strategy"
)

// MaxShift bounds shift counts so that a typo cannot request a multi-gigabyte
// result.
const MaxShift = 1 << 32

// Expression is a parsed operation with its operands. B is unused for unary
// operations.
type Expression struct {
	Op   Op
	A, B bigint.Int
}

// String renders the expression in infix form.
func (e Expression) String() string {
	if e.Op.Unary() {
		return e.A.String()
	}
	return fmt.Sprintf("%s %s %s", e.A, e.Op.Symbol(), e.B)
}

// ParseExpression parses "a op b", "op a b" or a lone operand (conversion).
// Operands are read with bigint.Parse in the given base, 0 to infer it from
// each operand's prefix.
func ParseExpression(s string, base int) (Expression, error) {
	fields := strings.Fields(s)
	switch len(fields) {
	case 1:
		a, err := bigint.Parse(fields[0], base)
		if err != nil {
			return Expression{}, err
		}
		return Expression{Op: OpConvert, A: a}, nil
	case 3:
		if op, err := ParseOp(fields[1]); err == nil {
			return parseOperands(op, fields[0], fields[2], base)
		}
		op, err := ParseOp(fields[0])
		if err != nil {
			return Expression{}, err
		}
		return parseOperands(op, fields[1], fields[2], base)
	default:
		return Expression{}, apperrors.ValidationError{
			Field:   "expression",
			Message: fmt.Sprintf("expected \"<a> <op> <b>\", got %d tokens", len(fields)),
		}
	}
}

func parseOperands(op Op, a, b string, base int) (Expression, error) {
	x, err := bigint.Parse(a, base)
	if err != nil {
		return Expression{}, err
	}
	y, err := bigint.Parse(b, base)
	if err != nil {
		return Expression{}, err
	}
	return Expression{Op: op, A: x, B: y}, nil
}

// Result is the outcome of an evaluation.
type Result struct {
	Expr Expression
	// Value is the result, the quotient for OpQuoRem and -1, 0 or +1 for
	// OpCmp.
	Value bigint.Int
	// Remainder is set for OpQuoRem only.
	Remainder    bigint.Int
	HasRemainder bool
	// Strategy names the algorithm used, empty for operations that have a
	// single implementation.
	Strategy string
	Duration time.Duration
}

// Observer is notified after every evaluation.
type Observer interface {
	ObserveEvaluation(op string, operandDigits int, duration time.Duration, err error)
}

// Evaluator evaluates expressions, routing multiplication and division
// through the configured strategies.
type Evaluator struct {
	mul, div  strategy.Strategy
	observers []Observer
}

// NewEvaluator returns an evaluator using mul and div. Nil strategies fall
// back to the threshold-dispatching defaults.
func NewEvaluator(mul, div strategy.Strategy, observers ...Observer) *Evaluator {
	f := strategy.GlobalFactory()
	if mul == nil {
		mul, _ = f.Get(strategy.KindMultiply, strategy.NameAuto)
	}
	if div == nil {
		div, _ = f.Get(strategy.KindDivide, strategy.NameAuto)
	}
	return &Evaluator{mul: mul, div: div, observers: observers}
}

// WithStrategy returns a copy of the evaluator with s replacing the strategy
// of its kind.
func (e *Evaluator) WithStrategy(s strategy.Strategy) *Evaluator {
	c := *e
	if s.Kind() == strategy.KindMultiply {
		c.mul = s
	} else {
		c.div = s
	}
	return &c
}

// Strategy returns the strategy used for kind.
func (e *Evaluator) Strategy(kind strategy.Kind) strategy.Strategy {
	if kind == strategy.KindMultiply {
		return e.mul
	}
	return e.div
}

// Evaluate computes expr.
func (e *Evaluator) Evaluate(ctx context.Context, expr Expression) (Result, error) {
	start := time.Now()
	res, err := e.evaluate(ctx, expr)
	res.Expr = expr
	res.Duration = time.Since(start)
	digits := max(len(expr.A.Magnitude()), len(expr.B.Magnitude()))
	for _, o := range e.observers {
		o.ObserveEvaluation(expr.Op.String(), digits, res.Duration, err)
	}
	return res, err
}

func (e *Evaluator) evaluate(ctx context.Context, expr Expression) (Result, error) {
	if err := ctx.Err(); err != nil {
		return Result{}, err
	}
	a, b := expr.A, expr.B
	switch expr.Op {
	case OpAdd:
		return Result{Value: a.Add(b)}, nil
	case OpSub:
		return Result{Value: a.Sub(b)}, nil
	case OpCmp:
		return Result{Value: bigint.NewInt(int64(a.Cmp(b)))}, nil
	case OpConvert:
		return Result{Value: a}, nil
	case OpLsh, OpRsh:
		n, err := shiftCount(b)
		if err != nil {
			return Result{}, err
		}
		if expr.Op == OpLsh {
			return Result{Value: a.Lsh(n)}, nil
		}
		return Result{Value: a.Rsh(n)}, nil
	case OpMul:
		out, err := e.mul.Apply(ctx, a.Magnitude(), b.Magnitude())
		if err != nil {
			return Result{}, apperrors.CalculationError{Strategy: e.mul.Name(), Cause: err}
		}
		sign := magnitude.Sign(a.Sign() * b.Sign())
		return Result{Value: bigint.FromMagnitude(sign, out.Value), Strategy: e.mul.Name()}, nil
	case OpQuo, OpRem, OpQuoRem:
		if b.IsZero() {
			return Result{}, apperrors.WrapError(apperrors.ErrDivisionByZero, "evaluating %s", expr)
		}
		out, err := e.div.Apply(ctx, a.Magnitude(), b.Magnitude())
		if err != nil {
			return Result{}, apperrors.CalculationError{Strategy: e.div.Name(), Cause: err}
		}
		q := bigint.FromMagnitude(magnitude.Sign(a.Sign()*b.Sign()), out.Value)
		r := bigint.FromMagnitude(magnitude.Sign(a.Sign()), out.Remainder)
		switch expr.Op {
		case OpQuo:
			return Result{Value: q, Strategy: e.div.Name()}, nil
		case OpRem:
			return Result{Value: r, Strategy: e.div.Name()}, nil
		default:
			return Result{Value: q, Remainder: r, HasRemainder: true, Strategy: e.div.Name()}, nil
		}
	}
	return Result{}, fmt.Errorf("%w %v", apperrors.ErrUnknownOperation, expr.Op)
}

// shiftCount validates a shift operand.
func shiftCount(b bigint.Int) (uint, error) {
	if b.Sign() < 0 || !b.IsUint64() || b.Uint64() > MaxShift {
		return 0, apperrors.ValidationError{
			Field:   "shift",
			Message: fmt.Sprintf("shift count %s outside [0, %d]", b, uint64(MaxShift)),
		}
	}
	return uint(b.Uint64()), nil
}
