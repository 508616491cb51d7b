package fixed

import (
	"math"

	"github.com/oanda/libfixed/internal/int128"
	"github.com/oanda/libfixed/rounding"
)

// Zero returns the value 0 at zero decimal places, with the
// process-wide default policies snapshotted in. The bare zero value
// `fixed.Number{}` is also a valid, usable zero, but bypasses the
// snapshot -- Zero() is for callers who want default-policy behavior
// from the start.
func Zero() Number {
	mult, div, round := snapshotDefaults()
	return Number{multPolicy: mult, divPolicy: div, roundingMode: round}
}

// Validate reports whether the given integer/fractional/decimalPlaces
// combination could be used to construct a Number without raising
// ErrBadValue -- the non-throwing predicate the original implementation
// exposes alongside its constructor. math.MinInt64 is accepted as a
// special case (with no fractional part, at zero decimal places): it is
// the one integer value whose magnitude, 2^63, cannot be held in a
// signed int64, yet two's-complement int64 represents it directly, so
// New must still be able to construct it.
func Validate(integer int64, fractional uint64, decimalPlaces int) bool {
	if decimalPlaces < 0 || decimalPlaces > MaxDecimalPlaces {
		return false
	}
	if integer == math.MinInt64 {
		return fractional == 0 && decimalPlaces == 0
	}
	mag := integer
	if mag < 0 {
		mag = -mag
	}
	if mag > MaxIntegerValue {
		return false
	}
	limit, err := tenToThe(decimalPlaces)
	if err != nil {
		return false
	}
	return fractional < limit
}

func tenToThe(dp int) (uint64, error) {
	v := uint64(1)
	for i := 0; i < dp; i++ {
		v *= 10
	}
	return v, nil
}

// New constructs a Number from an integer component, a fractional
// component (digits past the decimal point, as an integer in
// [0, 10^decimalPlaces)), a decimal-place count, and a sign. A negative
// integer overrides negative.
func New(integer int64, fractional uint64, decimalPlaces int, negative bool) (Number, error) {
	if !Validate(integer, fractional, decimalPlaces) {
		return Number{}, badValuef("New", "integer=%d fractional=%d decimalPlaces=%d", integer, fractional, decimalPlaces)
	}

	if integer == math.MinInt64 {
		// -integer would overflow int64 here; int128.FromInt64 reads the
		// bit pattern directly instead of negating, so it is exact.
		mult, div, round := snapshotDefaults()
		n := Number{multPolicy: mult, divPolicy: div, roundingMode: round}
		return n.withRaw(int128.FromInt64(integer), 0), nil
	}

	neg := negative
	mag := integer
	if integer < 0 {
		neg = true
		mag = -integer
	}

	scale, err := pow10(decimalPlaces)
	if err != nil {
		return Number{}, err
	}
	magRaw, overflow := int128.Mul(int128.FromInt64(mag), scale)
	if overflow {
		return Number{}, overflowf("New", "integer=%d decimalPlaces=%d", integer, decimalPlaces)
	}
	raw, overflow := int128.Add(magRaw, int128.FromInt64(int64(fractional)))
	if overflow {
		return Number{}, overflowf("New", "integer=%d fractional=%d", integer, fractional)
	}
	if neg {
		raw = raw.Neg()
	}

	mult, div, round := snapshotDefaults()
	n := Number{multPolicy: mult, divPolicy: div, roundingMode: round}
	return n.withRaw(raw, decimalPlaces), nil
}

// NewFromInt64 is a convenience wrapper around New for a plain signed
// integer with no fractional part.
func NewFromInt64(v int64) (Number, error) {
	return New(v, 0, 0, false)
}

// NewFromUint64 is the unsigned counterpart of NewFromInt64.
func NewFromUint64(v uint64) (Number, error) {
	if v > uint64(MaxIntegerValue) {
		return Number{}, badValuef("NewFromUint64", "value %d exceeds MaxIntegerValue", v)
	}
	return New(int64(v), 0, 0, false)
}

// newFromFloat64Full constructs a Number from f at the full
// MaxDecimalPlaces precision, truncating (not rounding) the fractional
// part, exactly as the original floating-point constructor's first
// phase does before any caller-requested rounding is applied.
func newFromFloat64Full(f float64) (Number, error) {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Number{}, badValuef("NewFromFloat64", "NaN or infinite input")
	}

	neg := f < 0
	af := math.Abs(f)
	intPart := math.Trunc(af)
	if intPart > float64(MaxIntegerValue) {
		return Number{}, badValuef("NewFromFloat64", "magnitude %v exceeds MaxIntegerValue", f)
	}

	fracPart := af - intPart
	scale := math.Pow10(MaxDecimalPlaces)
	fracScaled := uint64(math.Trunc(fracPart * scale))
	// Binary floating point can make fracPart*scale land one unit
	// past 10^MaxDecimalPlaces-1 (a fractional part within about 1e-16
	// of 1 rounds up to exactly 10^14); clamp rather than let it roll
	// into the integer part.
	limit, _ := tenToThe(MaxDecimalPlaces)
	if fracScaled >= limit {
		fracScaled = limit - 1
	}

	return New(int64(intPart), fracScaled, MaxDecimalPlaces, neg)
}

// NewFromFloat64 constructs a Number from a float64. With no further
// argument, the result is compacted (trailing zero decimal places
// stripped) after a full-precision construction. With a decimalPlaces
// argument, the value is rounded down to that many decimal places using
// the process-wide default rounding mode; use NewFromFloat64Rounded to
// choose the mode explicitly.
func NewFromFloat64(f float64, decimalPlaces ...int) (Number, error) {
	n, err := newFromFloat64Full(f)
	if err != nil {
		return Number{}, err
	}

	if len(decimalPlaces) == 0 || decimalPlaces[0] > MaxDecimalPlaces {
		compacted, _ := n.compact(MaxDecimalPlaces)
		return compacted, nil
	}
	return n.WithDecimalPlaces(decimalPlaces[0])
}

// NewFromFloat64Rounded is NewFromFloat64 with an explicit rounding
// mode for the reduction down to decimalPlaces, matching the original
// implementation's three-argument floating-point constructor.
func NewFromFloat64Rounded(f float64, decimalPlaces int, mode rounding.Mode) (Number, error) {
	n, err := newFromFloat64Full(f)
	if err != nil {
		return Number{}, err
	}
	n = n.WithRoundingMode(mode)
	if decimalPlaces > MaxDecimalPlaces {
		compacted, _ := n.compact(MaxDecimalPlaces)
		return compacted, nil
	}
	return n.WithDecimalPlaces(decimalPlaces)
}

// NewFromFloat32 widens f to float64 and defers to NewFromFloat64;
// float32 carries no information a float64 round-trip would lose.
func NewFromFloat32(f float32, decimalPlaces ...int) (Number, error) {
	return NewFromFloat64(float64(f), decimalPlaces...)
}

// NewFromString parses s under the canonical decimal grammar (the one
// String emits, with an optional leading '+' also accepted) into a Number.
func NewFromString(s string) (Number, error) {
	if s == "" {
		return Number{}, badValuef("NewFromString", "empty input")
	}

	i := 0
	neg := false
	switch s[0] {
	case '+':
		i++
	case '-':
		neg = true
		i++
	}
	if i >= len(s) {
		return Number{}, badValuef("NewFromString", "sign with no digits: %q", s)
	}

	intStart := i
	for i < len(s) && isDigit(s[i]) {
		i++
	}
	if i == intStart {
		return Number{}, badValuef("NewFromString", "no integer digits: %q", s)
	}
	intDigits := s[intStart:i]

	var fracDigits string
	if i < len(s) {
		if s[i] != '.' {
			return Number{}, badValuef("NewFromString", "unexpected character at %d: %q", i, s)
		}
		i++
		fracStart := i
		for i < len(s) && isDigit(s[i]) {
			i++
		}
		if i == fracStart {
			return Number{}, badValuef("NewFromString", "'.' with no fractional digits: %q", s)
		}
		fracDigits = s[fracStart:i]
		if i != len(s) {
			return Number{}, badValuef("NewFromString", "trailing characters: %q", s)
		}
	}

	if len(fracDigits) > MaxDecimalPlaces {
		return Number{}, badValuef("NewFromString", "too many fractional digits (%d > %d): %q", len(fracDigits), MaxDecimalPlaces, s)
	}

	integer, err := parseUint63(intDigits)
	if err != nil {
		return Number{}, badValuef("NewFromString", "integer magnitude out of range: %q", s)
	}

	fractional := uint64(0)
	if fracDigits != "" {
		fractional, err = parseUint63(fracDigits)
		if err != nil {
			return Number{}, badValuef("NewFromString", "fractional digits out of range: %q", s)
		}
	}

	return New(int64(integer), fractional, len(fracDigits), neg)
}

func isDigit(b byte) bool { return b >= '0' && b <= '9' }

// parseUint63 parses a run of decimal digits into a uint64, failing if
// the magnitude would exceed MaxIntegerValue -- used for both the
// integer and fractional runs of the grammar (the fractional run is
// already bounded to 14 digits by the caller, well inside this limit).
func parseUint63(digits string) (uint64, error) {
	var v uint64
	for _, d := range []byte(digits) {
		nd := v*10 + uint64(d-'0')
		if nd < v { // overflowed uint64
			return 0, badValuef("parseUint63", "overflow")
		}
		v = nd
	}
	if v > uint64(MaxIntegerValue) {
		return 0, badValuef("parseUint63", "exceeds MaxIntegerValue")
	}
	return v, nil
}
