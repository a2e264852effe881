package magnitude

import (
	"math"

	"golang.org/x/exp/constraints"
)

// Digit is a single base-2^32 digit of a magnitude.
type Digit = uint32

// Wide is the accumulator type. It holds any digit*digit + digit + digit
// without overflow.
type Wide = uint64

const (
	// DigitBits is the width W of a digit in bits.
	DigitBits = 32
	// DigitBase is 2^W, the internal representation radix.
	DigitBase Wide = 1 << DigitBits
	// DigitMax is the largest digit value.
	DigitMax Digit = math.MaxUint32

	digitMask = DigitBase - 1
)

// DigitFromUnsigned reduces x modulo DigitBase. The digit width divides every
// native unsigned width, so the reduction is a mask.
func DigitFromUnsigned[T constraints.Unsigned](x T) Digit {
	return Digit(uint64(x) & digitMask)
}

// DigitFromFloat reduces the integral part of a non-negative finite f modulo
// DigitBase.
func DigitFromFloat(f float64) Digit {
	return Digit(math.Mod(f, float64(DigitBase)))
}

// split returns the high and low digits of w.
func split(w Wide) (hi, lo Digit) {
	return Digit(w >> DigitBits), Digit(w)
}

// join returns hi*DigitBase + lo.
func join(hi, lo Digit) Wide {
	return Wide(hi)<<DigitBits | Wide(lo)
}
