package magnitude

// Sign is the sign of a signed quantity: -1, 0 or +1.
type Sign int8

const (
	SignNeg  Sign = -1
	SignZero Sign = 0
	SignPos  Sign = 1
)

// Neg returns the opposite sign.
func (s Sign) Neg() Sign { return -s }

// Mul returns the sign of a product of quantities signed s and t.
func (s Sign) Mul(t Sign) Sign { return s * t }

// String returns "-", "0" or "+".
func (s Sign) String() string {
	switch s {
	case SignNeg:
		return "-"
	case SignPos:
		return "+"
	default:
		return "0"
	}
}

// CombineSigns returns the sign of lhs + rhs for operands of opposite signs,
// given lhs's sign and the sign of |lhs| - |rhs| as reported by Sub.
func CombineSigns(lhs, diff Sign) Sign {
	return lhs * diff
}

// SignOf returns SignZero for zero and SignPos otherwise.
func SignOf(z Nat) Sign {
	if z.IsZero() {
		return SignZero
	}
	return SignPos
}
