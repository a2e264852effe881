package magnitude

import (
	"math"
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestCompare(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Nat
		want int
	}{
		{"zero zero", Zero(), Zero(), 0},
		{"shorter is smaller", Nat{DigitMax}, Nat{0, 1}, -1},
		{"longer is larger", Nat{0, 0, 1}, Nat{DigitMax, DigitMax}, 1},
		{"top digit decides", Nat{5, 2}, Nat{9, 1}, 1},
		{"low digit decides", Nat{4, 2}, Nat{5, 2}, -1},
		{"equal", Nat{1, 2, 3}, Nat{1, 2, 3}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
			if got := Compare(tt.b, tt.a); got != -tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.b, tt.a, got, -tt.want)
			}
		})
	}
}

func TestCompareMixed(t *testing.T) {
	t.Parallel()
	a := FromUint64(1 << 40)
	if got := CompareUnsigned(a, uint64(1<<40)); got != 0 {
		t.Errorf("CompareUnsigned equal = %d", got)
	}
	if got := CompareUnsigned(a, uint32(math.MaxUint32)); got != 1 {
		t.Errorf("CompareUnsigned larger = %d", got)
	}
	if got := CompareFloat(a, math.Ldexp(1, 40)); got != 0 {
		t.Errorf("CompareFloat equal = %d", got)
	}
	if got := CompareFloat(a, math.Ldexp(1, 40)+0.5); got != -1 {
		t.Errorf("CompareFloat with fraction = %d, want -1", got)
	}
	if got := CompareFloat(a, 1e300); got != -1 {
		t.Errorf("CompareFloat huge = %d, want -1", got)
	}
}

func TestAdd(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		a, b Nat
		want Nat
	}{
		{"zero identity", Zero(), Nat{7}, Nat{7}},
		{"carry into new digit", Nat{DigitMax}, Nat{1}, Nat{0, 1}},
		{"carry ripples through", Nat{DigitMax, DigitMax, DigitMax}, Nat{1}, Nat{0, 0, 0, 1}},
		{"different lengths", Nat{1}, Nat{2, 3, 4}, Nat{3, 3, 4}},
		{"two full digits", Nat{DigitMax, DigitMax}, Nat{DigitMax, DigitMax}, Nat{DigitMax - 1, DigitMax, 1}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if diff := cmp.Diff(tt.want, Add(tt.a, tt.b)); diff != "" {
				t.Errorf("Add mismatch (-want +got):\n%s", diff)
			}
			z := tt.a.Clone()
			z.AddAssign(tt.b)
			if diff := cmp.Diff(tt.want, z); diff != "" {
				t.Errorf("AddAssign mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestAddDoesNotAliasOperands(t *testing.T) {
	t.Parallel()
	a := Nat{DigitMax, 1}
	b := Nat{1}
	_ = Add(a, b)
	if diff := cmp.Diff(Nat{DigitMax, 1}, a); diff != "" {
		t.Errorf("Add modified its operand (-want +got):\n%s", diff)
	}
}

func TestSub(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		a, b     Nat
		wantSign Sign
		want     Nat
	}{
		{"equal operands", Nat{5, 6}, Nat{5, 6}, SignZero, Nat{0}},
		{"borrow", Nat{0, 1}, Nat{1}, SignPos, Nat{DigitMax}},
		{"negative result", Nat{1}, Nat{0, 1}, SignNeg, Nat{DigitMax}},
		{"negative longer subtrahend", Nat{3}, Nat{5, 0, 2}, SignNeg, Nat{2, 0, 2}},
		{"zero minus value", Zero(), Nat{9}, SignNeg, Nat{9}},
		{"value minus zero", Nat{9, 9}, Zero(), SignPos, Nat{9, 9}},
		{"borrow ripples", Nat{0, 0, 0, 1}, Nat{1}, SignPos, Nat{DigitMax, DigitMax, DigitMax}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			sign, got := Sub(tt.a, tt.b)
			if sign != tt.wantSign {
				t.Errorf("Sub sign = %v, want %v", sign, tt.wantSign)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("Sub mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestCombineSigns(t *testing.T) {
	t.Parallel()
	// 3 + (-5): |3| - |5| is negative and the result takes the opposite of
	// the left sign.
	if got := CombineSigns(SignPos, SignNeg); got != SignNeg {
		t.Errorf("CombineSigns(+, -) = %v", got)
	}
	// -7 + 2: |7| - |2| is positive, the result keeps the left sign.
	if got := CombineSigns(SignNeg, SignPos); got != SignNeg {
		t.Errorf("CombineSigns(-, +) = %v", got)
	}
	if got := CombineSigns(SignNeg, SignZero); got != SignZero {
		t.Errorf("CombineSigns(-, 0) = %v", got)
	}
}

func TestUnsignedOperands(t *testing.T) {
	t.Parallel()
	a := Nat{DigitMax, DigitMax}
	if diff := cmp.Diff(Nat{0, 0, 1}, AddUnsigned(a, uint8(1))); diff != "" {
		t.Errorf("AddUnsigned mismatch (-want +got):\n%s", diff)
	}
	sign, d := SubUnsigned(Nat{5}, uint64(1<<33))
	if sign != SignNeg || toBig(d).Uint64() != 1<<33-5 {
		t.Errorf("SubUnsigned = %v %v, want - %d", sign, d, uint64(1<<33-5))
	}
	z := Nat{10}
	if s := SubUnsignedAssign(&z, uint(10)); s != SignZero || !z.IsZero() {
		t.Errorf("SubUnsignedAssign = %v %v, want zero", s, z)
	}
	AddUnsignedAssign(&z, uint64(math.MaxUint64))
	if z.Uint64() != math.MaxUint64 || len(z) != 2 {
		t.Errorf("AddUnsignedAssign = %v", z)
	}
}

func TestFloatOperands(t *testing.T) {
	t.Parallel()
	f := math.Ldexp(1, 70) + math.Ldexp(1, 20)
	want := new(big.Int).Lsh(big.NewInt(1), 70)
	want.Add(want, big.NewInt(1<<20))

	if got := toBig(FromFloat(f)); got.Cmp(want) != 0 {
		t.Errorf("FromFloat = %v, want %v", got, want)
	}
	if got := FromFloat(0.75); !got.IsZero() {
		t.Errorf("FromFloat(0.75) = %v, want 0", got)
	}

	sum := AddFloat(Nat{DigitMax}, f)
	if got := toBig(sum); got.Cmp(new(big.Int).Add(want, big.NewInt(int64(DigitMax)))) != 0 {
		t.Errorf("AddFloat = %v", got)
	}
	sign, diff := SubFloat(Nat{1}, f)
	if sign != SignNeg || toBig(diff).Cmp(new(big.Int).Sub(want, big.NewInt(1))) != 0 {
		t.Errorf("SubFloat = %v %v", sign, diff)
	}
	if got := toBig(MulFloat(Nat{3}, f)); got.Cmp(new(big.Int).Mul(want, big.NewInt(3))) != 0 {
		t.Errorf("MulFloat = %v", got)
	}
	q, r := DivideFloat(fromBig(want), 1024)
	if toBig(q).Cmp(new(big.Int).Rsh(want, 10)) != 0 || !r.IsZero() {
		t.Errorf("DivideFloat = %v rem %v", q, r)
	}
}

func TestFloatCursor(t *testing.T) {
	t.Parallel()
	c := NewFloatCursor(math.Ldexp(1, 64) + math.Ldexp(5, 32))
	var got []Digit
	for d, ok := c.Next(); ok; d, ok = c.Next() {
		got = append(got, d)
	}
	if diff := cmp.Diff([]Digit{0, 5, 1}, got); diff != "" {
		t.Errorf("cursor digits mismatch (-want +got):\n%s", diff)
	}
	c.Reset()
	if d, ok := c.Next(); !ok || d != 0 {
		t.Errorf("after Reset Next() = %d, %v", d, ok)
	}

	for _, tt := range []struct {
		f    float64
		want int
	}{
		{0, 1}, {1, 1}, {math.Ldexp(1, 32) - 1, 1}, {math.Ldexp(1, 32), 2}, {1e300, 32},
	} {
		if got := EstimateFloatDigits(tt.f); got != tt.want {
			t.Errorf("EstimateFloatDigits(%g) = %d, want %d", tt.f, got, tt.want)
		}
	}
}

func TestFloat64(t *testing.T) {
	t.Parallel()
	rng := newRand(7)
	for _, n := range []int{1, 2, 3, 5, 40} {
		z := randNat(rng, n)
		want, _ := new(big.Float).SetInt(toBig(z)).Float64()
		if got := Float64(z); got != want {
			t.Errorf("Float64(%d digits) = %g, want %g", n, got, want)
		}
	}
	if got := Float64(power(40)); !math.IsInf(got, 1) {
		t.Errorf("Float64(B^40) = %g, want +Inf", got)
	}
}

func TestFloatPanicsOnNaN(t *testing.T) {
	t.Parallel()
	defer func() {
		if recover() == nil {
			t.Error("expected a panic for NaN")
		}
	}()
	FromFloat(math.NaN())
}

func TestShift(t *testing.T) {
	t.Parallel()
	rng := newRand(11)
	for _, n := range []int{1, 2, 7} {
		z := randNat(rng, n)
		for _, s := range []uint{0, 1, 31, 32, 33, 64, 100} {
			wantL := new(big.Int).Lsh(toBig(z), s)
			if got := toBig(Lsh(z, s)); got.Cmp(wantL) != 0 {
				t.Errorf("Lsh(%v, %d) = %v, want %v", z, s, got, wantL)
			}
			in := z.Clone()
			in.LshAssign(s)
			if got := toBig(in); got.Cmp(wantL) != 0 {
				t.Errorf("LshAssign(%v, %d) = %v, want %v", z, s, got, wantL)
			}

			wantR := new(big.Int).Rsh(toBig(z), s)
			if got := toBig(Rsh(z, s)); got.Cmp(wantR) != 0 {
				t.Errorf("Rsh(%v, %d) = %v, want %v", z, s, got, wantR)
			}
			in = z.Clone()
			in.RshAssign(s)
			if got := toBig(in); got.Cmp(wantR) != 0 || !in.Valid() {
				t.Errorf("RshAssign(%v, %d) = %v, want %v", z, s, got, wantR)
			}
		}
	}

	z := Zero()
	z.ShiftDigitsLeftAssign(5)
	if diff := cmp.Diff(Zero(), z); diff != "" {
		t.Errorf("shifting zero must be a no-op (-want +got):\n%s", diff)
	}
	z = Nat{1, 2, 3}
	z.ShiftDigitsRightAssign(5)
	if diff := cmp.Diff(Zero(), z); diff != "" {
		t.Errorf("shifting out every digit must leave zero (-want +got):\n%s", diff)
	}
}
