package magnitude

import "golang.org/x/exp/constraints"

// addAssign sets *z = *z + b in place. z is padded to b's length with one
// digit of carry headroom, so a carry surviving past the top is appended
// without reallocating.
func addAssign[B operand](z *Nat, b B) {
	a := *z
	n := b.Len()
	a = a.resize(n, 1)

	var carry Wide
	i := 0
	for ; i < n; i++ {
		s := Wide(a[i]) + Wide(b.Digit(i)) + carry
		a[i] = Digit(s)
		carry = s >> DigitBits
	}
	for ; carry != 0 && i < len(a); i++ {
		s := Wide(a[i]) + carry
		a[i] = Digit(s)
		carry = s >> DigitBits
	}
	if carry != 0 {
		a = append(a, Digit(carry))
	}
	*z = a.norm()
}

// AddAssign sets z = z + b.
func (z *Nat) AddAssign(b Nat) {
	addAssign(z, b)
}

// Add returns a + b.
func Add(a, b Nat) Nat {
	if len(a) < len(b) {
		a, b = b, a
	}
	z := make(Nat, len(a), len(a)+1)
	copy(z, a)
	addAssign(&z, b)
	return z
}

// AddUnsigned returns a + x.
func AddUnsigned[T constraints.Unsigned](a Nat, x T) Nat {
	z := a.Clone()
	addAssign(&z, ViewOf(x))
	return z
}

// AddUnsignedAssign sets z = z + x.
func AddUnsignedAssign[T constraints.Unsigned](z *Nat, x T) {
	addAssign(z, ViewOf(x))
}

// AddFloatAssign sets z = z + floor(f) for a non-negative finite f, pulling
// the digits of f from a FloatCursor.
func (z *Nat) AddFloatAssign(f float64) {
	mustFinite(f)
	c := NewFloatCursor(f)
	a := z.resize(EstimateFloatDigits(f), 1)

	var carry Wide
	i := 0
	for d, ok := c.Next(); ok; d, ok = c.Next() {
		if i == len(a) {
			a = append(a, 0)
		}
		s := Wide(a[i]) + Wide(d) + carry
		a[i] = Digit(s)
		carry = s >> DigitBits
		i++
	}
	for ; carry != 0 && i < len(a); i++ {
		s := Wide(a[i]) + carry
		a[i] = Digit(s)
		carry = s >> DigitBits
	}
	if carry != 0 {
		a = append(a, Digit(carry))
	}
	*z = a.norm()
}

// AddFloat returns a + floor(f).
func AddFloat(a Nat, f float64) Nat {
	z := a.Clone()
	z.AddFloatAssign(f)
	return z
}
