package magnitude

import "math/bits"

// Accumulator is an extended-width unsigned value wide enough for the three
// digit partial products of the division quotient estimate: the top three
// digits of a running remainder, or a quotient digit times the top two digits
// of a divisor. It is a value type and is copied freely.
//
// The value is hi*2^64 + lo. Only the low digit of hi is used; callers keep
// the value below DigitBase^3.
type Accumulator struct {
	hi, lo uint64
}

// AccumulatorOf returns an Accumulator holding w.
func AccumulatorOf(w Wide) Accumulator {
	return Accumulator{lo: w}
}

// AccumulatorFromDigits returns high*B^2 + middle*B + low.
func AccumulatorFromDigits(high, middle, low Digit) Accumulator {
	return Accumulator{hi: uint64(high), lo: join(middle, low)}
}

// Low returns the least-significant digit.
func (a Accumulator) Low() Digit { return Digit(a.lo) }

// Middle returns the second digit.
func (a Accumulator) Middle() Digit { return Digit(a.lo >> DigitBits) }

// High returns the third digit.
func (a Accumulator) High() Digit { return Digit(a.hi) }

// DigitsSize reports how many digits are significant, between 1 and 3.
func (a Accumulator) DigitsSize() int {
	switch {
	case a.High() != 0:
		return 3
	case a.Middle() != 0:
		return 2
	default:
		return 1
	}
}

// Len implements operand.
func (a Accumulator) Len() int { return a.DigitsSize() }

// Digit implements operand.
func (a Accumulator) Digit(i int) Digit {
	switch i {
	case 0:
		return a.Low()
	case 1:
		return a.Middle()
	case 2:
		return a.High()
	default:
		return 0
	}
}

// IsZero reports whether the value is zero.
func (a Accumulator) IsZero() bool { return a.hi == 0 && a.lo == 0 }

// Cmp returns -1, 0 or +1 depending on whether a is less than, equal to or
// greater than b.
func (a Accumulator) Cmp(b Accumulator) int {
	switch {
	case a.hi < b.hi:
		return -1
	case a.hi > b.hi:
		return 1
	case a.lo < b.lo:
		return -1
	case a.lo > b.lo:
		return 1
	}
	return 0
}

// MulDigitBase returns a*DigitBase, dropping anything shifted past the third
// digit.
func (a Accumulator) MulDigitBase() Accumulator {
	return Accumulator{
		hi: (a.hi<<DigitBits | a.lo>>DigitBits) & digitMask,
		lo: a.lo << DigitBits,
	}
}

// MulDigitBaseAdd returns a*DigitBase + d.
func (a Accumulator) MulDigitBaseAdd(d Digit) Accumulator {
	r := a.MulDigitBase()
	r.lo |= uint64(d)
	return r
}

// Rsh returns a >> s for s < 64.
func (a Accumulator) Rsh(s uint) Accumulator {
	if s == 0 {
		return a
	}
	return Accumulator{
		hi: a.hi >> s,
		lo: a.lo>>s | a.hi<<(64-s),
	}
}

// Add returns a + b.
func (a Accumulator) Add(b Accumulator) Accumulator {
	lo, carry := bits.Add64(a.lo, b.lo, 0)
	return Accumulator{hi: a.hi + b.hi + carry, lo: lo}
}

// Sub returns a - b. The caller guarantees a >= b.
func (a Accumulator) Sub(b Accumulator) Accumulator {
	lo, borrow := bits.Sub64(a.lo, b.lo, 0)
	return Accumulator{hi: a.hi - b.hi - borrow, lo: lo}
}

// MulDigit returns a*d. The product must stay below DigitBase^3.
func (a Accumulator) MulDigit(d Digit) Accumulator {
	hi, lo := bits.Mul64(a.lo, uint64(d))
	return Accumulator{hi: hi + a.hi*uint64(d), lo: lo}
}

// Wide returns the low 64 bits of the value.
func (a Accumulator) Wide() Wide { return a.lo }
