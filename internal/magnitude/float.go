package magnitude

import (
	"math"
	"math/bits"
)

// FloatCursor produces the base-2^32 digits of the integral part of a
// non-negative finite float, least-significant first, without building the
// whole sequence.
type FloatCursor struct {
	start     float64
	remaining float64
}

// NewFloatCursor returns a cursor over floor(f).
func NewFloatCursor(f float64) *FloatCursor {
	mustFinite(f)
	f = math.Floor(f)
	return &FloatCursor{start: f, remaining: f}
}

// Next returns the next digit, or false once the value is exhausted.
func (c *FloatCursor) Next() (Digit, bool) {
	if c.remaining < 1 {
		return 0, false
	}
	d := DigitFromFloat(c.remaining)
	c.remaining = math.Floor(c.remaining / float64(DigitBase))
	return d, true
}

// Reset rewinds the cursor to its first digit.
func (c *FloatCursor) Reset() { c.remaining = c.start }

// EstimateFloatDigits returns the number of digits of floor(f), at least 1.
// It is exact: the binary exponent of f is its bit length.
func EstimateFloatDigits(f float64) int {
	if f < 1 {
		return 1
	}
	_, exp := math.Frexp(f)
	return (exp + DigitBits - 1) / DigitBits
}

// FromFloat returns floor(f) for a non-negative finite f.
func FromFloat(f float64) Nat {
	c := NewFloatCursor(f)
	z := make(Nat, 0, EstimateFloatDigits(f))
	for d, ok := c.Next(); ok; d, ok = c.Next() {
		z = append(z, d)
	}
	return z.norm()
}

// Float64 returns the float64 nearest to z, +Inf when z exceeds the float64
// range.
func Float64(z Nat) float64 {
	n := z.BitLen()
	if n <= 64 {
		return float64(z.Uint64())
	}
	// Keep the top 64 bits and fold every discarded bit into a sticky low
	// bit so that the conversion rounds as if it saw all of them.
	shift := uint(n - 64)
	m := Rsh(z, shift).Uint64()
	if trailingZeros(z) < shift {
		m |= 1
	}
	return math.Ldexp(float64(m), int(shift))
}

// trailingZeros returns the number of trailing zero bits of a non-zero z.
func trailingZeros(z Nat) uint {
	for i, d := range z {
		if d != 0 {
			return uint(i)*DigitBits + uint(bits.TrailingZeros32(d))
		}
	}
	return 0
}
