package magnitude

// operand is the capability set shared by the three magnitude shapes: a Nat,
// a WordView over a machine integer and an Accumulator. Comparison, addition,
// subtraction and long division are written once against it.
//
// Len must be canonical (the most-significant digit is non-zero unless the
// value is zero, in which case Len is 1). Digit returns 0 for indexes outside
// [0, Len).
type operand interface {
	Len() int
	Digit(i int) Digit
}

var (
	_ operand = Nat(nil)
	_ operand = WordView{}
	_ operand = Accumulator{}
)

// top returns the most-significant digit of x.
func top[T operand](x T) Digit {
	return x.Digit(x.Len() - 1)
}

// isZeroOperand reports whether x is zero.
func isZeroOperand[T operand](x T) bool {
	return x.Len() == 1 && x.Digit(0) == 0
}

// toNat materializes x as a freshly allocated Nat.
func toNat[T operand](x T) Nat {
	if n, ok := any(x).(Nat); ok {
		return n.Clone()
	}
	z := make(Nat, x.Len())
	for i := range z {
		z[i] = x.Digit(i)
	}
	return z.norm()
}
