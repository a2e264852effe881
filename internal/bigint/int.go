package bigint

import (
	"fmt"
	"math"
	"math/big"
	"strings"

	"github.com/holiman/uint256"

	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/magnitude"
)

// Int is an arbitrary-precision signed integer: a sign and a canonical
// magnitude. A nil magnitude stands for zero.
type Int struct {
	sign magnitude.Sign
	abs  magnitude.Nat
}

// newInt builds an Int, forcing the sign to zero for a zero magnitude.
func newInt(sign magnitude.Sign, abs magnitude.Nat) Int {
	if abs.IsZero() {
		return Int{}
	}
	return Int{sign: sign, abs: abs}
}

// mag returns the magnitude, Zero() for the zero value.
func (x Int) mag() magnitude.Nat {
	if x.abs == nil {
		return magnitude.Zero()
	}
	return x.abs
}

// NewInt returns v as an Int.
func NewInt(v int64) Int {
	switch {
	case v < 0:
		return newInt(magnitude.SignNeg, magnitude.FromUint64(uint64(-v)))
	default:
		return newInt(magnitude.SignPos, magnitude.FromUint64(uint64(v)))
	}
}

// NewUint returns v as an Int.
func NewUint(v uint64) Int {
	return newInt(magnitude.SignPos, magnitude.FromUint64(v))
}

// FromFloat returns f truncated toward zero. NaN and infinities are rejected
// with an error wrapping apperrors.ErrNotFinite.
func FromFloat(f float64) (Int, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Int{}, fmt.Errorf("bigint: converting %v: %w", f, apperrors.ErrNotFinite)
	}
	sign := magnitude.SignPos
	if f < 0 {
		sign = magnitude.SignNeg
	}
	return newInt(sign, magnitude.FromFloat(math.Abs(f))), nil
}

// FromMagnitude returns the Int with the given sign and magnitude. The
// magnitude is copied.
func FromMagnitude(sign magnitude.Sign, abs magnitude.Nat) Int {
	return newInt(sign, abs.Clone())
}

// Parse converts text to an Int. Surrounding whitespace and one leading '+'
// or '-' are accepted. With base 0 the radix is inferred from a "0x", "0b"
// or "0" prefix, defaulting to 10; with an explicit base a prefix matching
// that base is skipped. Errors are *apperrors.ParseError values.
func Parse(s string, base int) (Int, error) {
	text := strings.TrimSpace(s)
	sign := magnitude.SignPos
	if text != "" && (text[0] == '+' || text[0] == '-') {
		if text[0] == '-' {
			sign = magnitude.SignNeg
		}
		text = text[1:]
	}
	if base == 0 {
		base = magnitude.InferRadix(text)
	}
	abs, err := magnitude.Parse(magnitude.StripRadixPrefix(text, base), base)
	if err != nil {
		return Int{}, err
	}
	return newInt(sign, abs), nil
}

// MustParse is like Parse but panics on error. It simplifies initialization
// of package-level values and tests.
func MustParse(s string, base int) Int {
	x, err := Parse(s, base)
	if err != nil {
		panic(err)
	}
	return x
}

// Sign returns -1, 0 or +1.
func (x Int) Sign() int { return int(x.sign) }

// IsZero reports whether x is zero.
func (x Int) IsZero() bool { return x.sign == magnitude.SignZero }

// Abs returns |x|.
func (x Int) Abs() Int {
	if x.sign == magnitude.SignNeg {
		return Int{sign: magnitude.SignPos, abs: x.abs}
	}
	return x
}

// Neg returns -x.
func (x Int) Neg() Int {
	return Int{sign: x.sign.Neg(), abs: x.abs}
}

// Magnitude returns a copy of |x| as a Nat.
func (x Int) Magnitude() magnitude.Nat { return x.mag().Clone() }

// BitLen returns the bit length of |x|.
func (x Int) BitLen() int { return x.mag().BitLen() }

// Cmp returns -1, 0 or +1 depending on whether x is less than, equal to or
// greater than y.
func (x Int) Cmp(y Int) int {
	switch {
	case x.sign < y.sign:
		return -1
	case x.sign > y.sign:
		return 1
	case x.sign == magnitude.SignZero:
		return 0
	}
	return magnitude.Compare(x.abs, y.abs) * int(x.sign)
}

// CmpAbs compares |x| and |y|.
func (x Int) CmpAbs(y Int) int {
	return magnitude.Compare(x.mag(), y.mag())
}

// Equal reports whether x and y hold the same value.
func (x Int) Equal(y Int) bool { return x.Cmp(y) == 0 }

// Int64 returns the low 64 bits of x as a two's complement int64.
func (x Int) Int64() int64 { return int64(x.Uint64()) }

// Uint64 returns the low 64 bits of x in two's complement.
func (x Int) Uint64() uint64 {
	v := x.mag().Uint64()
	if x.sign == magnitude.SignNeg {
		return -v
	}
	return v
}

// IsInt64 reports whether x fits in an int64.
func (x Int) IsInt64() bool {
	if !x.mag().IsUint64() {
		return false
	}
	v := x.mag().Uint64()
	if x.sign == magnitude.SignNeg {
		return v <= 1<<63
	}
	return v < 1<<63
}

// IsUint64 reports whether x fits in a uint64.
func (x Int) IsUint64() bool {
	return x.sign != magnitude.SignNeg && x.mag().IsUint64()
}

// Float64 returns the float64 nearest to x, ±Inf when out of range.
func (x Int) Float64() float64 {
	f := magnitude.Float64(x.mag())
	if x.sign == magnitude.SignNeg {
		return -f
	}
	return f
}

// FromBig returns b as an Int.
func FromBig(b *big.Int) Int {
	bytes := b.Bytes()
	abs := make(magnitude.Nat, (len(bytes)+3)/4+1)
	for i := range bytes {
		abs[i/4] |= magnitude.Digit(bytes[len(bytes)-1-i]) << (8 * (i % 4))
	}
	return newInt(magnitude.Sign(b.Sign()), magnitude.FromDigits(abs...))
}

// ToBig returns x as a new big.Int.
func (x Int) ToBig() *big.Int {
	abs := x.mag()
	buf := make([]byte, 4*len(abs))
	for i, d := range abs {
		j := len(buf) - 4*(i+1)
		buf[j], buf[j+1], buf[j+2], buf[j+3] = byte(d>>24), byte(d>>16), byte(d>>8), byte(d)
	}
	b := new(big.Int).SetBytes(buf)
	if x.sign == magnitude.SignNeg {
		b.Neg(b)
	}
	return b
}

// FromUint256 returns u as an Int.
func FromUint256(u *uint256.Int) Int {
	abs := make(magnitude.Nat, 0, 8)
	for _, w := range u {
		abs = append(abs, magnitude.Digit(w), magnitude.Digit(w>>magnitude.DigitBits))
	}
	return newInt(magnitude.SignPos, magnitude.FromDigits(abs...))
}

// ToUint256 returns x modulo 2^256 in two's complement, and whether that
// reduction lost information because |x| does not fit in 256 bits.
func (x Int) ToUint256() (*uint256.Int, bool) {
	abs := x.mag()
	z := new(uint256.Int)
	for i := range z {
		z[i] = uint64(abs.Digit(2*i)) | uint64(abs.Digit(2*i+1))<<magnitude.DigitBits
	}
	if x.sign == magnitude.SignNeg {
		z.Neg(z)
	}
	return z, len(abs) > 8
}
