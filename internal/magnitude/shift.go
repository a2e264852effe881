package magnitude

// ShiftDigitsLeftAssign multiplies z by B^n in place: the digits move up n
// positions and zeros fill the vacated low end. Zero is left untouched.
func (z *Nat) ShiftDigitsLeftAssign(n int) {
	a := *z
	if n <= 0 || a.IsZero() {
		return
	}
	m := len(a)
	a = a.resize(m+n, 0)
	copy(a[n:], a[:m])
	clear(a[:n])
	*z = a
}

// ShiftDigitsRightAssign divides z by B^n in place, discarding the n low
// digits.
func (z *Nat) ShiftDigitsRightAssign(n int) {
	a := *z
	if n <= 0 {
		return
	}
	if n >= len(a) {
		*z = append(a[:0], 0)
		return
	}
	copy(a, a[n:])
	*z = a[:len(a)-n]
}

// LshAssign sets z = z << s.
func (z *Nat) LshAssign(s uint) {
	if z.IsZero() || s == 0 {
		return
	}
	off := OffsetOf(s)
	a := *z
	if off.Bits != 0 {
		var carry Digit
		for i, d := range a {
			a[i] = d<<off.Bits | carry
			carry = d >> (DigitBits - off.Bits)
		}
		if carry != 0 {
			a = append(a, carry)
		}
	}
	*z = a
	z.ShiftDigitsLeftAssign(off.Digits)
}

// RshAssign sets z = z >> s.
func (z *Nat) RshAssign(s uint) {
	if s == 0 {
		return
	}
	off := OffsetOf(s)
	z.ShiftDigitsRightAssign(off.Digits)
	if off.Bits == 0 {
		return
	}
	a := *z
	for i := range a {
		a[i] = a[i]>>off.Bits | a.Digit(i+1)<<(DigitBits-off.Bits)
	}
	*z = a.norm()
}

// Lsh returns a << s.
func Lsh(a Nat, s uint) Nat {
	if a.IsZero() {
		return Zero()
	}
	off := OffsetOf(s)
	z := make(Nat, len(a)+off.Digits+1)
	if off.Bits == 0 {
		copy(z[off.Digits:], a)
		return z.norm()
	}
	var carry Digit
	for i, d := range a {
		z[i+off.Digits] = d<<off.Bits | carry
		carry = d >> (DigitBits - off.Bits)
	}
	z[len(a)+off.Digits] = carry
	return z.norm()
}

// Rsh returns a >> s.
func Rsh(a Nat, s uint) Nat {
	off := OffsetOf(s)
	if off.Digits >= len(a) {
		return Zero()
	}
	z := make(Nat, len(a)-off.Digits)
	for i := range z {
		j := i + off.Digits
		if off.Bits == 0 {
			z[i] = a[j]
			continue
		}
		z[i] = a[j]>>off.Bits | a.Digit(j+1)<<(DigitBits-off.Bits)
	}
	return z.norm()
}
