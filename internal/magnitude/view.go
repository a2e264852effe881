package magnitude

import "golang.org/x/exp/constraints"

// WordView exposes a native unsigned integer of up to 64 bits as a one- or
// two-digit magnitude, so that arithmetic with machine integers needs no
// allocation.
type WordView struct {
	w Wide
}

// ViewOf wraps x.
func ViewOf[T constraints.Unsigned](x T) WordView {
	return WordView{w: Wide(x)}
}

// Len implements operand. A value that fits in one digit reports length 1.
func (v WordView) Len() int {
	if v.w>>DigitBits != 0 {
		return 2
	}
	return 1
}

// Digit implements operand.
func (v WordView) Digit(i int) Digit {
	switch i {
	case 0:
		return Digit(v.w)
	case 1:
		return Digit(v.w >> DigitBits)
	default:
		return 0
	}
}

// Value returns the wrapped integer.
func (v WordView) Value() Wide { return v.w }

// IsZero reports whether the wrapped integer is zero.
func (v WordView) IsZero() bool { return v.w == 0 }

// Low returns the least significant digit.
func (v WordView) Low() Digit { return Digit(v.w) }

// High returns the most significant digit, 0 for a single-digit value.
func (v WordView) High() Digit { return Digit(v.w >> DigitBits) }

// Top returns the most significant non-redundant digit.
func (v WordView) Top() Digit { return top(v) }

// Nat materializes the view as an independently owned magnitude.
func (v WordView) Nat() Nat { return toNat(v) }
