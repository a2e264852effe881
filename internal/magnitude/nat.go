package magnitude

import "math/bits"

// Nat is an unsigned magnitude stored as little-endian base-2^32 digits.
// See the package documentation for the canonical form.
type Nat []Digit

// Zero returns a new canonical zero.
func Zero() Nat { return Nat{0} }

// FromDigit returns d as a one-digit Nat.
func FromDigit(d Digit) Nat { return Nat{d} }

// FromUint64 returns x as a Nat.
func FromUint64(x uint64) Nat {
	return toNat(ViewOf(x))
}

// FromDigits copies ds (least-significant first) into a canonical Nat.
func FromDigits(ds ...Digit) Nat {
	if len(ds) == 0 {
		return Zero()
	}
	z := make(Nat, len(ds))
	copy(z, ds)
	return z.norm()
}

// Len implements operand.
func (z Nat) Len() int { return len(z) }

// Digit implements operand.
func (z Nat) Digit(i int) Digit {
	if i < 0 || i >= len(z) {
		return 0
	}
	return z[i]
}

// Top returns the most-significant digit.
func (z Nat) Top() Digit { return z[len(z)-1] }

// IsZero reports whether z is zero.
func (z Nat) IsZero() bool {
	return len(z) == 0 || (len(z) == 1 && z[0] == 0)
}

// Clone returns a copy of z that shares no storage with it.
func (z Nat) Clone() Nat {
	if len(z) == 0 {
		return Zero()
	}
	c := make(Nat, len(z))
	copy(c, z)
	return c
}

// BitLen returns the number of significant bits, 0 for zero.
func (z Nat) BitLen() int {
	if z.IsZero() {
		return 0
	}
	return (len(z)-1)*DigitBits + bits.Len32(z.Top())
}

// Uint64 returns the low 64 bits of z.
func (z Nat) Uint64() uint64 {
	return join(z.Digit(1), z.Digit(0))
}

// IsUint64 reports whether z fits in a uint64.
func (z Nat) IsUint64() bool { return len(z) <= 2 }

// Valid reports whether z is canonical.
func (z Nat) Valid() bool {
	return len(z) > 0 && (len(z) == 1 || z.Top() != 0)
}

// String returns the decimal representation of z.
func (z Nat) String() string { return Format(z, 10) }

// norm drops redundant most-significant zero digits, keeping at least one.
// It reslices and never allocates, except to turn an empty z into Zero().
func (z Nat) norm() Nat {
	i := len(z)
	for i > 1 && z[i-1] == 0 {
		i--
	}
	if i == 0 {
		return Zero()
	}
	return z[:i]
}

// resize extends z to n digits, zero-filling new positions, and makes sure
// at least headroom more digits fit without reallocating. It never shrinks z.
func (z Nat) resize(n, headroom int) Nat {
	m := len(z)
	if n < m {
		n = m
	}
	if cap(z) < n+headroom {
		c := make(Nat, m, n+headroom)
		copy(c, z)
		z = c
	}
	z = z[:n]
	clear(z[m:])
	return z
}

// window returns a canonical copy of digits [from, to) of z, zero when the
// range is empty.
func (z Nat) window(from, to int) Nat {
	if to > len(z) {
		to = len(z)
	}
	if from >= to {
		return Zero()
	}
	return FromDigits(z[from:to]...)
}
