package magnitude

import (
	"fmt"
	"math"
)

// invariant panics when cond is false. It guards cheap, always-on checks such
// as the bounded quotient correction loops and division postconditions.
func invariant(cond bool, msg string) {
	if !cond {
		panic("magnitude: " + msg)
	}
}

// debugCheck runs check only in builds tagged bigcalc_debug. It guards the
// linear scans (canonical form of every result) that are too costly for
// release builds.
func debugCheck(check func() bool, msg string) {
	if debugChecks && !check() {
		panic("magnitude: " + msg)
	}
}

// mustFinite rejects negative, NaN and infinite floats.
func mustFinite(f float64) {
	if math.IsNaN(f) || math.IsInf(f, 0) || f < 0 {
		panic(fmt.Sprintf("magnitude: float operand %v is not a non-negative finite value", f))
	}
}
