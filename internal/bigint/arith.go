package bigint

import (
	apperrors "github.com/agbru/bigcalc/internal/errors"
	"github.com/agbru/bigcalc/internal/magnitude"
)

// Add returns x + y.
func (x Int) Add(y Int) Int {
	switch {
	case x.IsZero():
		return y
	case y.IsZero():
		return x
	case x.sign == y.sign:
		return newInt(x.sign, magnitude.Add(x.abs, y.abs))
	}
	diff, abs := magnitude.Sub(x.abs, y.abs)
	return newInt(magnitude.CombineSigns(x.sign, diff), abs)
}

// Sub returns x - y.
func (x Int) Sub(y Int) Int {
	return x.Add(y.Neg())
}

// Mul returns x * y.
func (x Int) Mul(y Int) Int {
	if x.IsZero() || y.IsZero() {
		return Int{}
	}
	return newInt(x.sign.Mul(y.sign), magnitude.Mul(x.abs, y.abs))
}

// QuoRem returns the quotient x / y truncated toward zero and the remainder
// x - q*y, which has the sign of x. It panics with
// apperrors.ErrDivisionByZero if y is zero.
func (x Int) QuoRem(y Int) (q, r Int) {
	if y.IsZero() {
		panic(apperrors.ErrDivisionByZero)
	}
	if x.IsZero() {
		return Int{}, Int{}
	}
	qa, ra := magnitude.Divide(x.abs, y.abs)
	return newInt(x.sign.Mul(y.sign), qa), newInt(x.sign, ra)
}

// Quo returns x / y truncated toward zero.
func (x Int) Quo(y Int) Int {
	q, _ := x.QuoRem(y)
	return q
}

// Rem returns x % y, with the sign of x.
func (x Int) Rem(y Int) Int {
	_, r := x.QuoRem(y)
	return r
}

// Lsh returns x << n.
func (x Int) Lsh(n uint) Int {
	if x.IsZero() {
		return x
	}
	return newInt(x.sign, magnitude.Lsh(x.abs, n))
}

// Rsh returns x >> n applied to the magnitude, so that negative values round
// toward zero.
func (x Int) Rsh(n uint) Int {
	if x.IsZero() {
		return x
	}
	return newInt(x.sign, magnitude.Rsh(x.abs, n))
}
