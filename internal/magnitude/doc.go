// Package magnitude implements the unsigned digit-sequence arithmetic engine
// behind bigcalc: little-endian sequences of 32-bit digits with schoolbook and
// Karatsuba multiplication, normalized schoolbook and divide-and-conquer
// division, carry/borrow propagation, bit shifts and radix 2..64 text
// conversion.
//
// A Nat is always canonical: non-empty, with no redundant most-significant
// zero digit except the single-digit zero Nat{0}. Functions either return a
// freshly allocated Nat or mutate a receiver the caller owns exclusively;
// a Nat is never shared between concurrent mutators. Nothing in this package
// spawns goroutines or keeps state between calls, so independent operations
// may run in parallel.
//
// Contract violations (a zero divisor, a non-canonical operand, a negative or
// non-finite float) are programming errors and panic. Text parsing is the only
// operation that reports recoverable errors.
package magnitude
