package magnitude

import "golang.org/x/exp/constraints"

// mulAddDigit sets z[i] += x.Digit(i)*d for i < x.Len() and returns the carry
// out of the last position. len(z) must be at least x.Len().
func mulAddDigit[X operand](z Nat, x X, d Digit) Digit {
	var carry Wide
	for i, n := 0, x.Len(); i < n; i++ {
		t := Wide(x.Digit(i))*Wide(d) + Wide(z[i]) + carry
		z[i] = Digit(t)
		carry = t >> DigitBits
	}
	return Digit(carry)
}

// mulDigitInto stores x*d in z, reusing its storage, and returns it.
func mulDigitInto[X operand](z Nat, x X, d Digit) Nat {
	n := x.Len()
	if cap(z) < n+1 {
		z = make(Nat, n+1)
	}
	z = z[:n+1]
	clear(z)
	z[n] = mulAddDigit(z, x, d)
	return z.norm()
}

// MulDigit returns a*d.
func MulDigit(a Nat, d Digit) Nat {
	if d == 0 || a.IsZero() {
		return Zero()
	}
	return mulDigitInto(nil, a, d)
}

// MulDigitAssign sets z = z*d + add in place.
func (z *Nat) MulDigitAssign(d Digit, add Digit) {
	a := *z
	carry := Wide(add)
	for i := range a {
		t := Wide(a[i])*Wide(d) + carry
		a[i] = Digit(t)
		carry = t >> DigitBits
	}
	if carry != 0 {
		a = append(a, Digit(carry))
	}
	*z = a.norm()
}

// LongMultiply returns a*b by the schoolbook method: every digit of the
// shorter operand scales the longer one into a shifted row of a single
// len(a)+len(b) digit accumulator.
func LongMultiply(a, b Nat) Nat {
	if a.IsZero() || b.IsZero() {
		return Zero()
	}
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make(Nat, len(a)+len(b))
	for j, d := range b {
		if d == 0 {
			continue
		}
		z[j+len(a)] = mulAddDigit(z[j:], a, d)
	}
	return z.norm()
}

// Mul returns a*b, choosing between LongMultiply and KaratsubaMultiply by
// the length of the shorter operand.
func Mul(a, b Nat) Nat {
	if min(len(a), len(b)) < KaratsubaThreshold {
		return LongMultiply(a, b)
	}
	return KaratsubaMultiply(a, b)
}

// MulUnsigned returns a*x for a native unsigned integer.
func MulUnsigned[T constraints.Unsigned](a Nat, x T) Nat {
	v := ViewOf(x)
	if v.IsZero() || a.IsZero() {
		return Zero()
	}
	if v.Len() == 1 {
		return MulDigit(a, v.Digit(0))
	}
	return LongMultiply(a, toNat(v))
}

// MulFloat returns a*floor(f) for a non-negative finite f.
func MulFloat(a Nat, f float64) Nat {
	mustFinite(f)
	return Mul(a, FromFloat(f))
}
