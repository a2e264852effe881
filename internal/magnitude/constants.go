package magnitude

// ─────────────────────────────────────────────────────────────────────────────
// Algorithm Tuning Constants
// ─────────────────────────────────────────────────────────────────────────────
//
// The crossover points are fixed at build time. They are expressed in digits
// (32-bit words) of the shorter operand or of the divisor.

const (
	// KaratsubaThreshold is the operand length, in digits, below which
	// KaratsubaMultiply falls back to LongMultiply. Under roughly a hundred
	// digits the extra additions and allocations of the recursive split cost
	// more than the multiplications they save.
	KaratsubaThreshold = 100

	// RecursiveDivisionThreshold is the divisor length, in digits, from which
	// Divide switches from schoolbook long division to the recursive
	// divide-and-conquer algorithm. It is also the block length below which
	// the recursion bottoms out into long division.
	RecursiveDivisionThreshold = 32

	// maxCorrections bounds the quotient-digit correction loops of both
	// division algorithms. With a normalized divisor the estimate is never
	// more than two too large.
	maxCorrections = 2
)
