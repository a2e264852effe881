package magnitude

import "math/bits"

// DivideRecursive returns u / v and u % v by recursive divide-and-conquer
// division. The divisor is padded to n = j*2^k digits, where 2^k is the
// smallest power of two with n/2^k below RecursiveDivisionThreshold, and both
// operands are shifted so that the padded divisor fills n digits exactly with
// its top bit set. The dividend is then consumed n digits at a time by
// divide2n1n, each step carrying the remainder into the next block.
func DivideRecursive(u, v Nat) (q, r Nat) {
	checkDivisor(v)
	if compare(u, v) < 0 {
		return Zero(), u.Clone()
	}

	s := len(v)
	m := 1 << bits.Len(uint(s/RecursiveDivisionThreshold))
	n := (s + m - 1) / m * m
	sigma := uint(n-s)*DigitBits + NormalizationOffset(v.Top())
	b := Lsh(v, sigma)
	a := Lsh(u, sigma)

	blockBits := n * DigitBits
	t := max((a.BitLen()+blockBits)/blockBits, 2)

	z := a.window((t-2)*n, t*n)
	q = make(Nat, (t-1)*n)
	for i := t - 2; i >= 0; i-- {
		qi, ri := divide2n1n(z, b, n)
		invariant(len(qi) <= n, "quotient block overflow")
		copy(q[i*n:], qi)
		if i == 0 {
			r = ri
			break
		}
		z = ri
		z.ShiftDigitsLeftAssign(n)
		z.AddAssign(a.window((i-1)*n, i*n))
	}

	r.RshAssign(sigma)
	invariant(compare(r, v) < 0, "recursive division remainder not below divisor")
	return q.norm(), r
}

// divide2n1n divides a by the n-digit normalized b, given a < b*B^n. Odd or
// short blocks fall through to long division; otherwise a is processed as
// four half blocks [a1 a2 a3 a4] with two divide3n2n steps.
func divide2n1n(a, b Nat, n int) (q, r Nat) {
	if n%2 != 0 || n < RecursiveDivisionThreshold {
		return divideLong(a, b)
	}
	h := n / 2

	q1, r1 := divide3n2n(a.window(h, 4*h), b, h)
	r1.ShiftDigitsLeftAssign(h)
	r1.AddAssign(a.window(0, h))
	q2, r := divide3n2n(r1, b, h)

	q = q1
	q.ShiftDigitsLeftAssign(h)
	q.AddAssign(q2)
	return q, r
}

// divide3n2n divides the three half-block value a = [a1 a2 a3] by the two
// half-block normalized b = [b1 b2], given a < b*B^h.
//
// The quotient is first estimated from [a1 a2] / b1, or B^h - 1 when a1 and
// b1 are equal. The remainder [r1 a3] - q*b2 can then be negative, and is
// brought back into range by adding b at most maxCorrections times.
func divide3n2n(a, b Nat, h int) (q, r Nat) {
	a12 := a.window(h, 3*h)
	b1 := b.window(h, 2*h)

	var r1 Nat
	if compare(a.window(2*h, 3*h), b1) < 0 {
		q, r1 = divide2n1n(a12, b1, h)
	} else {
		q = make(Nat, h)
		for i := range q {
			q[i] = DigitMax
		}
		r1 = a12
		r1.AddAssign(b1)
		b1h := b1.Clone()
		b1h.ShiftDigitsLeftAssign(h)
		s := r1.SubAssign(b1h)
		invariant(s >= SignZero, "quotient block estimate too large")
	}

	r = r1
	r.ShiftDigitsLeftAssign(h)
	r.AddAssign(a.window(0, h))
	negative := r.SubAssign(Mul(q, b.window(0, h))) < 0

	for corrections := 0; negative; corrections++ {
		invariant(corrections < maxCorrections, "quotient block corrected too often")
		SubUnsignedAssign(&q, uint(1))
		negative = r.SubAssign(b) > 0
	}
	return q, r
}
