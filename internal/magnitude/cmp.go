package magnitude

import (
	"math"

	"golang.org/x/exp/constraints"
)

// compare orders two canonical operands: first by length, then digit by digit
// from the most-significant end.
func compare[A, B operand](a A, b B) int {
	la, lb := a.Len(), b.Len()
	switch {
	case la < lb:
		return -1
	case la > lb:
		return 1
	}
	for i := la - 1; i >= 0; i-- {
		x, y := a.Digit(i), b.Digit(i)
		switch {
		case x < y:
			return -1
		case x > y:
			return 1
		}
	}
	return 0
}

// Compare returns -1, 0 or +1 depending on whether a is less than, equal to
// or greater than b.
func Compare(a, b Nat) int {
	return compare(a, b)
}

// CompareUnsigned compares a with a native unsigned integer.
func CompareUnsigned[T constraints.Unsigned](a Nat, x T) int {
	return compare(a, ViewOf(x))
}

// CompareFloat compares a with a non-negative finite float. A fractional part
// makes f larger than an equal integral part.
func CompareFloat(a Nat, f float64) int {
	mustFinite(f)
	if c := compare(a, FromFloat(f)); c != 0 {
		return c
	}
	if f != math.Floor(f) {
		return -1
	}
	return 0
}
