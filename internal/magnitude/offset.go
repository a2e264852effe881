package magnitude

// ShiftOffset splits a bit count into whole digits and residual bits, with
// Bits < DigitBits.
type ShiftOffset struct {
	Digits int
	Bits   uint
}

// OffsetOf returns the ShiftOffset of n bits.
func OffsetOf(n uint) ShiftOffset {
	return ShiftOffset{Digits: int(n / DigitBits), Bits: n % DigitBits}
}

// Total returns the offset in bits.
func (o ShiftOffset) Total() uint {
	return uint(o.Digits)*DigitBits + o.Bits
}

// NormalizationOffset returns the left shift, in bits, that sets the top bit
// of the non-zero digit d. It is the leading zero count of d.
func NormalizationOffset(d Digit) uint {
	return uint(LeadingZeros(d))
}
