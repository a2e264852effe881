package magnitude

import (
	"fmt"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLongMultiplyMaxDigit(t *testing.T) {
	t.Parallel()
	// (B-1)^2 = (B-2)*B + 1
	got := LongMultiply(Nat{DigitMax}, Nat{DigitMax})
	if diff := cmp.Diff(Nat{1, DigitMax - 1}, got); diff != "" {
		t.Errorf("[DigitMax]^2 mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiplyByZeroAndOne(t *testing.T) {
	t.Parallel()
	x := randNat(newRand(3), 150)
	for name, mul := range map[string]func(a, b Nat) Nat{
		"long":      LongMultiply,
		"karatsuba": KaratsubaMultiply,
		"dispatch":  Mul,
	} {
		if got := mul(x, Zero()); !got.IsZero() {
			t.Errorf("%s: x*0 = %v", name, got)
		}
		if diff := cmp.Diff(x, mul(Nat{1}, x)); diff != "" {
			t.Errorf("%s: 1*x mismatch (-want +got):\n%s", name, diff)
		}
	}
}

func TestKaratsubaSingleLeadingOne(t *testing.T) {
	t.Parallel()
	// B^499 * B^999 = B^1498
	got := KaratsubaMultiply(power(499), power(999))
	if diff := cmp.Diff(power(1498), got); diff != "" {
		t.Errorf("B^499 * B^999 mismatch (-want +got):\n%s", diff)
	}
}

func TestMultiplyAgainstBig(t *testing.T) {
	t.Parallel()
	rng := newRand(42)
	sizes := [][2]int{
		{1, 1}, {2, 1}, {5, 3}, {99, 99}, {100, 100}, {101, 257},
		{KaratsubaThreshold, 3 * KaratsubaThreshold}, {640, 512}, {1000, 120},
	}
	for _, sz := range sizes {
		a, b := randNat(rng, sz[0]), randNat(rng, sz[1])
		want := new(big.Int).Mul(toBig(a), toBig(b))
		t.Run(fmt.Sprintf("%dx%d", sz[0], sz[1]), func(t *testing.T) {
			t.Parallel()
			long := LongMultiply(a, b)
			kara := KaratsubaMultiply(a, b)
			if toBig(long).Cmp(want) != 0 {
				t.Error("LongMultiply disagrees with math/big")
			}
			if toBig(kara).Cmp(want) != 0 {
				t.Error("KaratsubaMultiply disagrees with math/big")
			}
			if !long.Valid() || !kara.Valid() {
				t.Error("product is not canonical")
			}
		})
	}
}

func TestMultiplyUnsigned(t *testing.T) {
	t.Parallel()
	a := randNat(newRand(5), 4)
	for _, x := range []uint64{0, 1, 7, 1 << 32, 1<<64 - 1} {
		want := new(big.Int).Mul(toBig(a), new(big.Int).SetUint64(x))
		if got := toBig(MulUnsigned(a, x)); got.Cmp(want) != 0 {
			t.Errorf("MulUnsigned(%d) = %v, want %v", x, got, want)
		}
	}
}

func BenchmarkMultiply(b *testing.B) {
	rng := newRand(1)
	for _, n := range []int{64, 256, 1024} {
		x, y := randNat(rng, n), randNat(rng, n)
		b.Run(fmt.Sprintf("long/%d", n), func(b *testing.B) {
			for b.Loop() {
				LongMultiply(x, y)
			}
		})
		b.Run(fmt.Sprintf("karatsuba/%d", n), func(b *testing.B) {
			for b.Loop() {
				KaratsubaMultiply(x, y)
			}
		})
	}
}
