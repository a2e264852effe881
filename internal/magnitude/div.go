package magnitude

import (
	"golang.org/x/exp/constraints"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

// checkDivisor panics on a zero divisor.
func checkDivisor[V operand](v V) {
	if isZeroOperand(v) {
		panic(apperrors.ErrDivisionByZero)
	}
}

// Divide returns the quotient and remainder of u / v, with r < v. Single
// digit divisors take DivDigit, divisors of RecursiveDivisionThreshold digits
// or more take DivideRecursive and everything else DivideLong. It panics if v
// is zero.
func Divide(u, v Nat) (q, r Nat) {
	checkDivisor(v)
	switch {
	case compare(u, v) < 0:
		return Zero(), u.Clone()
	case len(v) == 1:
		q, d := DivDigit(u, v[0])
		return q, FromDigit(d)
	case len(v) >= RecursiveDivisionThreshold:
		return DivideRecursive(u, v)
	default:
		return DivideLong(u, v)
	}
}

// Quo returns u / v. It panics if v is zero.
func Quo(u, v Nat) Nat {
	q, _ := Divide(u, v)
	return q
}

// Rem returns u % v. It panics if v is zero.
func Rem(u, v Nat) Nat {
	_, r := Divide(u, v)
	return r
}

// DivDigit returns u / d and u % d for a non-zero digit d.
func DivDigit(u Nat, d Digit) (Nat, Digit) {
	if d == 0 {
		panic(apperrors.ErrDivisionByZero)
	}
	q := make(Nat, len(u))
	var r Wide
	for i := len(u) - 1; i >= 0; i-- {
		t := r<<DigitBits | Wide(u[i])
		q[i] = Digit(t / Wide(d))
		r = t % Wide(d)
	}
	return q.norm(), Digit(r)
}

// DivideLong returns u / v and u % v by schoolbook long division. Both
// operands are first shifted left so that the divisor's top bit is set, which
// keeps every quotient digit estimate within two of the true digit; the
// remainder is shifted back before returning.
func DivideLong(u, v Nat) (q, r Nat) {
	checkDivisor(v)
	s := NormalizationOffset(v.Top())
	q, r = divideLong(Lsh(u, s), Lsh(v, s))
	r.RshAssign(s)
	invariant(compare(r, v) < 0, "long division remainder not below divisor")
	return q, r
}

// DivideUnsigned returns u / x and u % x for a native unsigned divisor,
// without materializing the divisor as a Nat.
func DivideUnsigned[T constraints.Unsigned](u Nat, x T) (q, r Nat) {
	v := ViewOf(x)
	checkDivisor(v)
	if v.Len() == 1 {
		q, d := DivDigit(u, v.Digit(0))
		return q, FromDigit(d)
	}
	s := NormalizationOffset(top(v))
	q, r = divideLong(Lsh(u, s), ViewOf(v.Value()<<s))
	r.RshAssign(s)
	invariant(compare(r, v) < 0, "long division remainder not below divisor")
	return q, r
}

// DivideFloat returns u / floor(f) and u % floor(f) for a finite f >= 1.
func DivideFloat(u Nat, f float64) (q, r Nat) {
	mustFinite(f)
	return Divide(u, FromFloat(f))
}

// divideLong divides u by a normalized divisor v (top bit set), walking u
// from its most-significant digit down.
//
// Each step shifts the running remainder up one digit and folds in the next
// digit of u. Once the remainder reaches v, a quotient digit is estimated
// from the top two remainder digits over the top divisor digit, capped at
// DigitMax, refined against the top three remainder digits with an
// Accumulator, and finally corrected against the full product. The estimate
// is decremented at most maxCorrections times in total.
func divideLong[V operand](u Nat, v V) (q, rem Nat) {
	n := v.Len()
	vTop := top(v)
	invariant(vTop>>(DigitBits-1) == 1, "divisor not normalized")
	vTwo := AccumulatorOf(join(vTop, v.Digit(n-2)))

	q = make(Nat, len(u))
	rem = make(Nat, 0, n+2)
	var prod Nat
	for i := len(u) - 1; i >= 0; i-- {
		rem = append(rem, 0)
		copy(rem[1:], rem)
		rem[0] = u[i]
		rem = rem.norm()
		if compare(rem, v) < 0 {
			continue
		}

		qhat := DigitMax
		if e := join(rem.Digit(n), rem.Digit(n-1)) / Wide(vTop); e < Wide(DigitMax) {
			qhat = Digit(e)
		}

		corrections := 0
		r3 := AccumulatorFromDigits(rem.Digit(n), rem.Digit(n-1), rem.Digit(n-2))
		for vTwo.MulDigit(qhat).Cmp(r3) > 0 {
			qhat--
			corrections++
			invariant(corrections <= maxCorrections, "quotient estimate corrected too often")
		}

		prod = mulDigitInto(prod, v, qhat)
		for compare(prod, rem) > 0 {
			qhat--
			corrections++
			invariant(corrections <= maxCorrections, "quotient estimate corrected too often")
			subAssign(&prod, v)
		}
		s := subAssign(&rem, prod)
		invariant(s >= SignZero, "partial remainder underflow")
		q[i] = qhat
	}
	return q.norm(), rem.norm()
}
