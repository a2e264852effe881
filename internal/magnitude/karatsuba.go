package magnitude

// KaratsubaMultiply returns a*b. Operands are split at half the length of
// the shorter one into low and high halves; the three products
//
//	low  = aLow*bLow
//	high = aHigh*bHigh
//	mid  = (aLow+aHigh)*(bLow+bHigh) - low - high
//
// are computed recursively and recombined as high*B^2h + mid*B^h + low.
// Below KaratsubaThreshold it falls back to LongMultiply; a single-digit
// operand multiplies the other directly.
func KaratsubaMultiply(a, b Nat) Nat {
	if len(a) < len(b) {
		a, b = b, a
	}
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	if len(b) == 1 {
		return MulDigit(a, b[0])
	}
	if len(b) < KaratsubaThreshold {
		return LongMultiply(a, b)
	}

	h := len(b) / 2
	aLow, aHigh := a[:h].norm(), a[h:]
	bLow, bHigh := b[:h].norm(), b[h:]

	low := KaratsubaMultiply(aLow, bLow)
	high := KaratsubaMultiply(aHigh, bHigh)
	mid := KaratsubaMultiply(Add(aLow, aHigh), Add(bLow, bHigh))
	s := mid.SubAssign(low)
	invariant(s >= SignZero, "karatsuba middle term underflow")
	s = mid.SubAssign(high)
	invariant(s >= SignZero, "karatsuba middle term underflow")

	z := high
	z.ShiftDigitsLeftAssign(h)
	z.AddAssign(mid)
	z.ShiftDigitsLeftAssign(h)
	z.AddAssign(low)

	debugCheck(z.Valid, "karatsuba product not canonical")
	return z
}
