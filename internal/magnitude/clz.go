package magnitude

import (
	"math/bits"
	"runtime"

	"golang.org/x/sys/cpu"
)

// hasLZCNT reports whether the host can count leading zeros with a single
// instruction. On amd64 LZCNT ships alongside BMI1; every arm64 core has CLZ.
var hasLZCNT = (runtime.GOARCH == "amd64" && cpu.X86.HasBMI1) || runtime.GOARCH == "arm64"

// LeadingZeros returns the number of leading zero bits of d, DigitBits for a
// zero digit.
func LeadingZeros(d Digit) int {
	if hasLZCNT {
		return bits.LeadingZeros32(d)
	}
	return leadingZerosPortable(d)
}

// leadingZerosPortable counts leading zeros by halving the search window.
func leadingZerosPortable(d Digit) int {
	if d == 0 {
		return DigitBits
	}
	n := 0
	for s := DigitBits / 2; s > 0; s /= 2 {
		if d>>(DigitBits-s) == 0 {
			n += s
			d <<= s
		}
	}
	return n
}
