package magnitude

import (
	"fmt"
	"slices"
	"strings"

	apperrors "github.com/agbru/bigcalc/internal/errors"
)

const (
	// MinRadix and MaxRadix bound the radixes accepted by Parse and Format.
	MinRadix = 2
	MaxRadix = 64

	// lowerAlphabet serves radixes up to 36; letters are read
	// case-insensitively.
	lowerAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"
	// base64Alphabet serves radixes 37 to 64. Letters are case-sensitive.
	base64Alphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/"
)

// alphabet returns the digit characters used by radix.
func alphabet(radix int) string {
	if radix <= 36 {
		return lowerAlphabet
	}
	return base64Alphabet
}

// digitValue returns the value of character c in radix, and whether c is a
// valid digit there.
func digitValue(c byte, radix int) (int, bool) {
	v := -1
	if radix <= 36 {
		switch {
		case '0' <= c && c <= '9':
			v = int(c - '0')
		case 'a' <= c && c <= 'z':
			v = int(c-'a') + 10
		case 'A' <= c && c <= 'Z':
			v = int(c-'A') + 10
		}
	} else {
		switch {
		case 'A' <= c && c <= 'Z':
			v = int(c - 'A')
		case 'a' <= c && c <= 'z':
			v = int(c-'a') + 26
		case '0' <= c && c <= '9':
			v = int(c-'0') + 52
		case c == '+':
			v = 62
		case c == '/':
			v = 63
		}
	}
	return v, v >= 0 && v < radix
}

// chunk returns the largest k with radix^k <= DigitMax, and radix^k.
func chunk(radix int) (k int, power Digit) {
	k, p := 1, Wide(radix)
	for p*Wide(radix) <= Wide(DigitMax) {
		p *= Wide(radix)
		k++
	}
	return k, Digit(p)
}

// CheckRadix returns an error wrapping apperrors.ErrRadixRange when radix is
// outside [MinRadix, MaxRadix].
func CheckRadix(radix int) error {
	if radix < MinRadix || radix > MaxRadix {
		return fmt.Errorf("%w: %d", apperrors.ErrRadixRange, radix)
	}
	return nil
}

// Parse converts text in the given radix to a Nat by Horner's method:
// the running value is multiplied by the radix and the next digit is added,
// most-significant character first. Characters are taken in groups that fit
// one digit so that each group costs a single multiply-add pass.
//
// Signs, whitespace and radix prefixes are the caller's business; see
// InferRadix and StripRadixPrefix.
func Parse(text string, radix int) (Nat, error) {
	if err := CheckRadix(radix); err != nil {
		return nil, &apperrors.ParseError{Input: text, Radix: radix, Err: err}
	}
	if text == "" {
		return nil, &apperrors.ParseError{Input: text, Radix: radix, Err: apperrors.ErrEmptyNumber}
	}

	k, power := chunk(radix)
	z := make(Nat, 1, len(text)/(k+1)+2)
	group, size := Digit(0), 0
	for i := 0; i < len(text); i++ {
		v, ok := digitValue(text[i], radix)
		if !ok {
			return nil, &apperrors.ParseError{
				Input: text,
				Radix: radix,
				Err:   fmt.Errorf("%w %q at offset %d", apperrors.ErrInvalidDigit, text[i], i),
			}
		}
		group = group*Digit(radix) + Digit(v)
		size++
		if size == k {
			z.MulDigitAssign(power, group)
			group, size = 0, 0
		}
	}
	if size > 0 {
		p := Digit(1)
		for range size {
			p *= Digit(radix)
		}
		z.MulDigitAssign(p, group)
	}
	return z, nil
}

// MustParse is like Parse but panics on error.
func MustParse(text string, radix int) Nat {
	z, err := Parse(text, radix)
	if err != nil {
		panic(err)
	}
	return z
}

// Format returns the text of z in the given radix. Digits are produced by
// repeated division, least-significant first, and reversed at the end.
// Radixes above 36 use the base-64 alphabet. It panics on an invalid radix.
func Format(z Nat, radix int) string {
	if err := CheckRadix(radix); err != nil {
		panic(err)
	}
	if z.IsZero() {
		return alphabet(radix)[:1]
	}

	chars := alphabet(radix)
	k, power := chunk(radix)
	buf := make([]byte, 0, z.BitLen()/bitsPerChar(radix)+k)
	q := z.Clone()
	for !q.IsZero() {
		var r Digit
		q, r = DivDigit(q, power)
		for j := 0; j < k && (r != 0 || !q.IsZero()); j++ {
			buf = append(buf, chars[r%Digit(radix)])
			r /= Digit(radix)
		}
	}
	slices.Reverse(buf)
	return string(buf)
}

// bitsPerChar returns floor(log2(radix)), at least 1.
func bitsPerChar(radix int) int {
	n := 0
	for r := radix; r > 1; r >>= 1 {
		n++
	}
	return max(n, 1)
}

// InferRadix guesses the radix of an unsigned literal from its prefix:
// "0x" or "0X" is hexadecimal, "0b" or "0B" binary, any other leading zero
// octal and everything else decimal.
func InferRadix(text string) int {
	if len(text) < 2 || text[0] != '0' {
		return 10
	}
	switch text[1] {
	case 'x', 'X':
		return 16
	case 'b', 'B':
		return 2
	default:
		return 8
	}
}

// StripRadixPrefix removes the prefix InferRadix recognizes when it agrees
// with radix, and returns text unchanged otherwise.
func StripRadixPrefix(text string, radix int) string {
	if InferRadix(text) != radix {
		return text
	}
	switch radix {
	case 16:
		return text[2:]
	case 2:
		return text[2:]
	case 8:
		return strings.TrimPrefix(text, "0")
	}
	return text
}
