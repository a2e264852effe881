package magnitude

import (
	"encoding/binary"
	"math/big"
	"math/rand/v2"
)

// toBig converts z to a big.Int for use as an oracle.
func toBig(z Nat) *big.Int {
	buf := make([]byte, 4*len(z))
	for i, d := range z {
		binary.BigEndian.PutUint32(buf[len(buf)-4*(i+1):], d)
	}
	return new(big.Int).SetBytes(buf)
}

// fromBig converts a non-negative big.Int to a canonical Nat.
func fromBig(x *big.Int) Nat {
	b := x.Bytes()
	z := make(Nat, (len(b)+3)/4+1)
	for i := range b {
		z[i/4] |= Digit(b[len(b)-1-i]) << (8 * (i % 4))
	}
	return z.norm()
}

// randNat returns a random canonical Nat of exactly n digits.
func randNat(rng *rand.Rand, n int) Nat {
	z := make(Nat, n)
	for i := range z {
		z[i] = rng.Uint32()
	}
	if z[n-1] == 0 {
		z[n-1] = 1
	}
	return z
}

// newRand returns a deterministic generator for reproducible tests.
func newRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// power returns a Nat holding a single 1 at digit position k.
func power(k int) Nat {
	z := make(Nat, k+1)
	z[k] = 1
	return z
}
