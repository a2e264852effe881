package magnitude

import (
	"reflect"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

// genNat generates canonical Nats of 1 to maxDigits digits.
func genNat(maxDigits int) gopter.Gen {
	return gen.IntRange(1, maxDigits).FlatMap(func(n interface{}) gopter.Gen {
		return gen.SliceOfN(n.(int), gen.UInt32())
	}, reflect.TypeOf([]uint32(nil))).Map(func(ds []uint32) Nat {
		return FromDigits(ds...)
	})
}

// TestArithmeticIdentities_PropertyBased checks the algebraic identities
// tying the operations together on random operands.
func TestArithmeticIdentities_PropertyBased(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	properties.Property("(a + b) - b = a", prop.ForAll(
		func(a, b Nat) bool {
			sign, diff := Sub(Add(a, b), b)
			return sign >= SignZero && Compare(diff, a) == 0
		},
		genNat(40), genNat(40),
	))

	properties.Property("a - b is antisymmetric", prop.ForAll(
		func(a, b Nat) bool {
			s1, d1 := Sub(a, b)
			s2, d2 := Sub(b, a)
			return s1 == -s2 && Compare(d1, d2) == 0
		},
		genNat(20), genNat(20),
	))

	properties.Property("Karatsuba agrees with long multiplication", prop.ForAll(
		func(a, b Nat) bool {
			return Compare(KaratsubaMultiply(a, b), LongMultiply(a, b)) == 0
		},
		genNat(260), genNat(260),
	))

	properties.Property("q*v + r = u and r < v", prop.ForAll(
		func(u, v Nat) bool {
			if v.IsZero() {
				v = Nat{1}
			}
			q, r := Divide(u, v)
			back := Mul(q, v)
			back.AddAssign(r)
			return Compare(r, v) < 0 && Compare(back, u) == 0
		},
		genNat(120), genNat(70),
	))

	properties.Property("long and recursive division agree", prop.ForAll(
		func(u, v Nat) bool {
			if v.IsZero() {
				v = Nat{1}
			}
			q1, r1 := DivideLong(u, v)
			q2, r2 := DivideRecursive(u, v)
			return Compare(q1, q2) == 0 && Compare(r1, r2) == 0
		},
		genNat(150), genNat(80),
	))

	properties.Property("(a << s) >> s = a", prop.ForAll(
		func(a Nat, s uint) bool {
			return Compare(Rsh(Lsh(a, s), s), a) == 0
		},
		genNat(10), gen.UIntRange(0, 300),
	))

	properties.Property("Format then Parse is the identity", prop.ForAll(
		func(a Nat, radix int) bool {
			back, err := Parse(Format(a, radix), radix)
			return err == nil && Compare(back, a) == 0
		},
		genNat(12), gen.IntRange(MinRadix, MaxRadix),
	))

	properties.TestingRun(t)
}
