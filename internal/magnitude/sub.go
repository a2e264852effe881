package magnitude

import "golang.org/x/exp/constraints"

// subAssign sets *z = |*z - b| and returns the sign of *z - b.
//
// The difference is taken in one's complement over the common width n:
// ~z + b = (B^n - 1) - (z - b). A carry out of the top digit means b > z; it
// is folded back into the lowest digit (end-around carry), after which the
// sum already equals b - z. Without a carry the sum is the complement of
// z - b and is complemented back.
func subAssign[B operand](z *Nat, b B) Sign {
	a := *z
	n := b.Len()
	a = a.resize(n, 0)
	n = len(a)

	for i := range a {
		a[i] = ^a[i]
	}
	var carry Wide
	for i := 0; i < n; i++ {
		s := Wide(a[i]) + Wide(b.Digit(i)) + carry
		a[i] = Digit(s)
		carry = s >> DigitBits
	}
	negative := carry != 0
	for i := 0; carry != 0 && i < n; i++ {
		s := Wide(a[i]) + carry
		a[i] = Digit(s)
		carry = s >> DigitBits
	}
	invariant(carry == 0, "end-around carry overflowed")
	if !negative {
		for i := range a {
			a[i] = ^a[i]
		}
	}

	*z = a.norm()
	switch {
	case negative:
		return SignNeg
	case z.IsZero():
		return SignZero
	default:
		return SignPos
	}
}

// SubAssign sets z = |z - b| and returns the sign of z - b.
func (z *Nat) SubAssign(b Nat) Sign {
	return subAssign(z, b)
}

// Sub returns the sign of a - b and its magnitude |a - b|.
func Sub(a, b Nat) (Sign, Nat) {
	z := a.Clone()
	s := subAssign(&z, b)
	return s, z
}

// SubUnsigned returns the sign and magnitude of a - x.
func SubUnsigned[T constraints.Unsigned](a Nat, x T) (Sign, Nat) {
	z := a.Clone()
	s := subAssign(&z, ViewOf(x))
	return s, z
}

// SubUnsignedAssign sets z = |z - x| and returns the sign of z - x.
func SubUnsignedAssign[T constraints.Unsigned](z *Nat, x T) Sign {
	return subAssign(z, ViewOf(x))
}

// SubFloat returns the sign and magnitude of a - floor(f) for a non-negative
// finite f.
func SubFloat(a Nat, f float64) (Sign, Nat) {
	mustFinite(f)
	z := a.Clone()
	s := subAssign(&z, FromFloat(f))
	return s, z
}
