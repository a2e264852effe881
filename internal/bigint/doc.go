// Package bigint provides Int, an immutable arbitrary-precision signed
// integer built on the magnitude engine.
//
// Int is a value type: every operation returns a new Int and never modifies
// its operands, so Ints can be copied, compared with Cmp and shared between
// goroutines freely. The zero value is 0.
//
// Division truncates toward zero, like Go's integer operators: the quotient
// is negative when the operand signs differ and the remainder takes the sign
// of the dividend.
package bigint
