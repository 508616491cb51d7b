package fixed

import (
	"math"
	"strconv"
	"strings"
)

// String renders n in the canonical decimal grammar: an optional
// leading '-', the integer part with no leading zeros, and -- if n's
// decimal-place count is greater than zero -- a '.' followed by
// exactly DecimalPlaces zero-padded fractional digits. It implements
// fmt.Stringer.
func (n Number) String() string {
	integer, fractional, err := integerAndFractional(n.raw(), n.DecimalPlaces())
	if err != nil {
		return "<invalid fixed.Number>"
	}

	var b strings.Builder
	if n.IsNegative() {
		b.WriteByte('-')
	}

	b.WriteString(strconv.FormatUint(integer.Lo(), 10))

	dp := n.DecimalPlaces()
	if dp > 0 {
		frac := strconv.FormatUint(fractional.Lo(), 10)
		b.WriteByte('.')
		if pad := dp - len(frac); pad > 0 {
			b.WriteString(strings.Repeat("0", pad))
		}
		b.WriteString(frac)
	}
	return b.String()
}

// Float64 converts n to the nearest float64, reassembling it from its
// integer and fractional parts rather than going through String, so no
// decimal-to-binary parsing round trip is involved.
func (n Number) Float64() float64 {
	integer, fractional, err := integerAndFractional(n.raw(), n.DecimalPlaces())
	if err != nil {
		return 0
	}
	v := float64(integer.Lo())
	if dp := n.DecimalPlaces(); dp > 0 {
		v += float64(fractional.Lo()) / math.Pow10(dp)
	}
	if n.IsNegative() {
		v = -v
	}
	return v
}

// ToFloat64 is an alias for Float64, matching the original
// implementation's accessor name.
func (n Number) ToFloat64() float64 { return n.Float64() }

// Abs returns a copy of n with its sign cleared. This never fails,
// even for the minimum representable Number (-9223372036854775808 at
// zero decimal places): its magnitude, 9223372036854775808, is the one
// documented exception to the MaxIntegerValue invariant, and stays
// 128-bit backed since it doesn't fit a signed int64 -- matching the
// original implementation's toAbsolute, which is declared noexcept for
// exactly this reason.
func (n Number) Abs() Number {
	return n.withRaw(n.raw().Abs(), n.DecimalPlaces())
}

// Abs is the static form of Number.Abs, for call sites that prefer a
// free function over a method on the zero value.
func Abs(n Number) Number { return n.Abs() }

// Negate returns a copy of n with its sign flipped. Like Abs, this
// never fails: negating the minimum representable value produces the
// same 128-bit-backed magnitude Abs does.
func (n Number) Negate() Number {
	return n.withRaw(n.raw().Neg(), n.DecimalPlaces())
}

// Negate is the static form of Number.Negate.
func Negate(n Number) Number { return n.Negate() }
