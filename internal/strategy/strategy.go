package strategy

import (
	"context"
	"fmt"
	"math/big"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/magnitude"
)

// Kind is the operation a strategy performs.
type Kind int

const (
	// KindMultiply strategies compute a product.
	KindMultiply Kind = iota
	// KindDivide strategies compute a quotient and remainder.
	KindDivide
)

// String returns "mul" or "div".
func (k Kind) String() string {
	switch k {
	case KindMultiply:
		return "mul"
	case KindDivide:
		return "div"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Outcome is the result of applying a strategy. Remainder is nil for
// multiplication.
type Outcome struct {
	Value     magnitude.Nat
	Remainder magnitude.Nat
}

// Equal reports whether two outcomes hold the same values.
func (o Outcome) Equal(other Outcome) bool {
	if magnitude.Compare(o.Value, other.Value) != 0 {
		return false
	}
	if (o.Remainder == nil) != (other.Remainder == nil) {
		return false
	}
	return o.Remainder == nil || magnitude.Compare(o.Remainder, other.Remainder) == 0
}

// Strategy is a named algorithm over two magnitudes.
type Strategy interface {
	// Name is the short identifier used on the command line.
	Name() string
	// Description is a human-readable label for tables.
	Description() string
	// Kind tells whether the strategy multiplies or divides.
	Kind() Kind
	// Apply runs the algorithm. The operation itself cannot be interrupted;
	// ctx is checked before it starts.
	Apply(ctx context.Context, a, b magnitude.Nat) (Outcome, error)
}

// multiplier adapts a multiplication function.
type multiplier struct {
	name, description string
	mul               func(a, b magnitude.Nat) magnitude.Nat
}

func (m multiplier) Name() string        { return m.name }
func (m multiplier) Description() string { return m.description }
func (m multiplier) Kind() Kind          { return KindMultiply }

func (m multiplier) Apply(ctx context.Context, a, b magnitude.Nat) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	return Outcome{Value: m.mul(a, b)}, nil
}

// divider adapts a division function. A zero divisor is reported as
// apperrors.ErrDivisionByZero instead of panicking.
type divider struct {
	name, description string
	div               func(u, v magnitude.Nat) (magnitude.Nat, magnitude.Nat)
}

func (d divider) Name() string        { return d.name }
func (d divider) Description() string { return d.description }
func (d divider) Kind() Kind          { return KindDivide }

func (d divider) Apply(ctx context.Context, u, v magnitude.Nat) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Outcome{}, err
	}
	if v.IsZero() {
		return Outcome{}, apperrors.ErrDivisionByZero
	}
	q, r := d.div(u, v)
	return Outcome{Value: q, Remainder: r}, nil
}

// Multiplier returns a strategy around mul.
func Multiplier(name, description string, mul func(a, b magnitude.Nat) magnitude.Nat) Strategy {
	return multiplier{name: name, description: description, mul: mul}
}

// Divider returns a strategy around div.
func Divider(name, description string, div func(u, v magnitude.Nat) (magnitude.Nat, magnitude.Nat)) Strategy {
	return divider{name: name, description: description, div: div}
}

// ─────────────────────────────────────────────────────────────────────────────
// math/big Reference
// ─────────────────────────────────────────────────────────────────────────────

// toBig converts a magnitude to a big.Int through its digit bytes.
func toBig(z magnitude.Nat) *big.Int {
	buf := make([]byte, 4*len(z))
	for i, d := range z {
		j := len(buf) - 4*(i+1)
		buf[j], buf[j+1], buf[j+2], buf[j+3] = byte(d>>24), byte(d>>16), byte(d>>8), byte(d)
	}
	return new(big.Int).SetBytes(buf)
}

// fromBig converts a non-negative big.Int to a magnitude.
func fromBig(x *big.Int) magnitude.Nat {
	b := x.Bytes()
	z := make([]magnitude.Digit, (len(b)+3)/4)
	for i := range b {
		z[i/4] |= magnitude.Digit(b[len(b)-1-i]) << (8 * (i % 4))
	}
	return magnitude.FromDigits(z...)
}

func bigMul(a, b magnitude.Nat) magnitude.Nat {
	return fromBig(new(big.Int).Mul(toBig(a), toBig(b)))
}

func bigQuoRem(u, v magnitude.Nat) (magnitude.Nat, magnitude.Nat) {
	q, r := new(big.Int).QuoRem(toBig(u), toBig(v), new(big.Int))
	return fromBig(q), fromBig(r)
}
