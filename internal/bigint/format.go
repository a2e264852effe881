package bigint

import (
	"errors"
	"fmt"
	"strings"

	"github.com/agbru/bigcalc/internal/magnitude"
)

// String returns the decimal representation of x.
func (x Int) String() string { return x.Text(10) }

// Text returns the representation of x in the given base, 2 to 64, with a
// leading '-' for negative values. Bases above 36 use the base-64 alphabet
// (A-Z, a-z, 0-9, '+', '/'). It panics on an invalid base.
func (x Int) Text(base int) string {
	digits := magnitude.Format(x.mag(), base)
	if x.sign == magnitude.SignNeg {
		return "-" + digits
	}
	return digits
}

// MarshalText implements encoding.TextMarshaler with the decimal form.
func (x Int) MarshalText() ([]byte, error) {
	return []byte(x.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The radix is inferred
// from the text's prefix.
func (x *Int) UnmarshalText(text []byte) error {
	v, err := Parse(string(text), 0)
	if err != nil {
		return err
	}
	*x = v
	return nil
}

// verbBase maps a formatting verb to its radix, 0 for unknown verbs.
func verbBase(verb rune) int {
	switch verb {
	case 'b':
		return 2
	case 'o', 'O':
		return 8
	case 'd', 's', 'v':
		return 10
	case 'x', 'X':
		return 16
	}
	return 0
}

// writeMultiple writes count copies of text to s.
func writeMultiple(s fmt.State, text string, count int) {
	if len(text) > 0 {
		b := []byte(text)
		for ; count > 0; count-- {
			_, _ = s.Write(b)
		}
	}
}

// Format implements fmt.Formatter. It accepts the verbs 'b' (binary), 'o'
// and 'O' (octal, the latter with a "0o" prefix), 'd', 's' and 'v' (decimal),
// 'x' and 'X' (hexadecimal), together with the '+', ' ' and '#' flags, a
// minimum digit count as precision, and a field width padded with spaces
// or, with '0', zeros.
func (x Int) Format(s fmt.State, verb rune) {
	base := verbBase(verb)
	if base == 0 {
		fmt.Fprintf(s, "%%!%c(bigint.Int=%s)", verb, x.String())
		return
	}

	sign := ""
	switch {
	case x.sign == magnitude.SignNeg:
		sign = "-"
	case s.Flag('+'):
		sign = "+"
	case s.Flag(' '):
		sign = " "
	}

	prefix := ""
	if s.Flag('#') {
		switch verb {
		case 'b':
			prefix = "0b"
		case 'o':
			prefix = "0"
		case 'x':
			prefix = "0x"
		case 'X':
			prefix = "0X"
		}
	}
	if verb == 'O' {
		prefix = "0o"
	}

	digits := magnitude.Format(x.mag(), base)
	if verb == 'X' {
		digits = strings.ToUpper(digits)
	}

	var left, zeroes, right int
	precision, precisionSet := s.Precision()
	if precisionSet {
		switch {
		case len(digits) < precision:
			zeroes = precision - len(digits)
		case digits == "0" && precision == 0:
			return
		}
	}

	length := len(sign) + len(prefix) + zeroes + len(digits)
	if width, widthSet := s.Width(); widthSet && length < width {
		switch d := width - length; {
		case s.Flag('-'):
			right = d
		case s.Flag('0') && !precisionSet:
			zeroes = d
		default:
			left = d
		}
	}

	writeMultiple(s, " ", left)
	writeMultiple(s, sign, 1)
	writeMultiple(s, prefix, 1)
	writeMultiple(s, "0", zeroes)
	writeMultiple(s, digits, 1)
	writeMultiple(s, " ", right)
}

// isLiteralRune reports whether r can appear in an integer literal.
func isLiteralRune(r rune) bool {
	return r == '+' || r == '-' ||
		('0' <= r && r <= '9') || ('a' <= r && r <= 'z') || ('A' <= r && r <= 'Z')
}

// Scan implements fmt.Scanner. It accepts the verbs 'b', 'o', 'd', 'x' and
// 'X' for a fixed base, and 's' and 'v' to infer the base from the prefix.
func (x *Int) Scan(s fmt.ScanState, verb rune) error {
	s.SkipSpace()
	base := 0
	switch verb {
	case 'b', 'o', 'd', 'x', 'X':
		base = verbBase(verb)
	case 's', 'v':
	default:
		return errors.New("bigint.Int.Scan: invalid verb")
	}
	token, err := s.Token(false, isLiteralRune)
	if err != nil {
		return err
	}
	v, err := Parse(string(token), base)
	if err != nil {
		return err
	}
	*x = v
	return nil
}
