// Package fixed implements a fixed-point decimal Number suitable for
// financial computation: a signed value with an explicit, per-instance
// decimal-place count, exact addition/subtraction/multiplication/
// division/remainder, configurable rounding, and configurable
// precision policies for the results of multiplication and division.
//
// Number carries its scaled integer value in one of two backing
// widths -- a native int64 fast path, or a 128-bit internal/int128.Int128
// fallback -- promoting and demoting between them automatically. This
// mirrors the way the teacher repository in this lineage hand-duplicates
// its value representation across widths rather than abstracting over
// them with generics.
package fixed

import (
	"sync/atomic"

	"github.com/oanda/libfixed/internal/int128"
	"github.com/oanda/libfixed/internal/shifttable"
	"github.com/oanda/libfixed/precision"
	"github.com/oanda/libfixed/rounding"
)

// Exported constants, the numeric contract external callers rely on.
const (
	MaxIntegerValue    = int64(1<<63 - 1)
	MaxDecimalPlaces   = 14
	MaxFractionalValue = 99999999999999 // 10^14 - 1

	// DivisionExtraDecimalPlacesForRounding is the extra decimal place
	// division computes internally so the final rounding step has one
	// more digit to inspect than the policy-selected result width.
	DivisionExtraDecimalPlacesForRounding = 1
)

// Number is a signed decimal value scaled by a power of ten, held in
// either of two backing widths.
type Number struct {
	value64    int64
	value128   int128.Int128
	value64Set bool

	decimalPlaces uint8

	multPolicy   precision.Policy
	divPolicy    precision.Policy
	roundingMode rounding.Mode
}

// process-wide mutable defaults, snapshotted into each new Number at
// construction time. Stored as atomics so a racing setter can never
// split a single construction's read across two different values; it
// may only cause different constructions to observe different
// snapshots, which is the contract this library promises.
var (
	defaultMultPolicy   atomic.Int32
	defaultDivPolicy    atomic.Int32
	defaultRoundingMode atomic.Int32
)

func init() {
	defaultMultPolicy.Store(int32(precision.MaxOperandPlus2))
	defaultDivPolicy.Store(int32(precision.MaxOperandPlus2))
	defaultRoundingMode.Store(int32(rounding.ToNearestHalfToEven))
}

// SetDefaultMultPrecisionPolicy changes the process-wide default
// multiplication precision policy. It has no effect on Numbers already
// constructed.
func SetDefaultMultPrecisionPolicy(p precision.Policy) {
	defaultMultPolicy.Store(int32(p))
}

// SetDefaultDivPrecisionPolicy is the division counterpart of
// SetDefaultMultPrecisionPolicy.
func SetDefaultDivPrecisionPolicy(p precision.Policy) {
	defaultDivPolicy.Store(int32(p))
}

// SetDefaultRoundingMode changes the process-wide default rounding mode.
func SetDefaultRoundingMode(m rounding.Mode) {
	defaultRoundingMode.Store(int32(m))
}

func snapshotDefaults() (precision.Policy, precision.Policy, rounding.Mode) {
	return precision.Policy(defaultMultPolicy.Load()),
		precision.Policy(defaultDivPolicy.Load()),
		rounding.Mode(defaultRoundingMode.Load())
}

// DecimalPlaces returns n's current decimal-place count.
func (n Number) DecimalPlaces() int { return int(n.decimalPlaces) }

// MultPrecisionPolicy returns the policy n uses to decide the decimal
// places of a multiplication result.
func (n Number) MultPrecisionPolicy() precision.Policy { return n.multPolicy }

// DivPrecisionPolicy returns the policy n uses to decide the decimal
// places of a division result.
func (n Number) DivPrecisionPolicy() precision.Policy { return n.divPolicy }

// RoundingMode returns the rounding mode n uses whenever it must
// reduce decimal places.
func (n Number) RoundingMode() rounding.Mode { return n.roundingMode }

// WithMultPrecisionPolicy returns a copy of n with its multiplication
// precision policy replaced, leaving n itself unchanged.
func (n Number) WithMultPrecisionPolicy(p precision.Policy) Number {
	n.multPolicy = p
	return n
}

// WithDivPrecisionPolicy is the division counterpart of
// WithMultPrecisionPolicy.
func (n Number) WithDivPrecisionPolicy(p precision.Policy) Number {
	n.divPolicy = p
	return n
}

// WithRoundingMode returns a copy of n with its rounding mode replaced.
func (n Number) WithRoundingMode(m rounding.Mode) Number {
	n.roundingMode = m
	return n
}

// IsZero, IsNegative and IsPositive are the predicate trio over n's
// sign.
func (n Number) IsZero() bool {
	if n.value64Set {
		return n.value64 == 0
	}
	return n.value128.IsZero()
}

func (n Number) IsNegative() bool {
	if n.value64Set {
		return n.value64 < 0
	}
	return n.value128.IsNeg()
}

func (n Number) IsPositive() bool {
	return !n.IsZero() && !n.IsNegative()
}

// raw returns n's scaled value widened to Int128, regardless of which
// width is currently authoritative -- the common currency every
// arithmetic routine computes in before deciding how to store the
// result back.
func (n Number) raw() int128.Int128 {
	if n.value64Set {
		return int128.FromInt64(n.value64)
	}
	return n.value128
}

// pow10 returns 10^dp widened to Int128.
func pow10(dp int) (int128.Int128, error) {
	return shifttable.Pow10Wide(dp)
}

// firstBitSetOfMagnitude returns the first-bit-set position of |raw|.
func firstBitSetOfMagnitude(raw int128.Int128) int {
	return raw.FirstBitSet()
}

// withRaw constructs a Number carrying raw (already scaled by
// 10^decimalPlaces) at the given decimal-place count, auto-resizing the
// backing width per the §3 invariants, and copying over n's policies.
func (n Number) withRaw(raw int128.Int128, decimalPlaces int) Number {
	out := n
	out.decimalPlaces = uint8(decimalPlaces)
	autoResize(&out, raw)
	return out
}

// autoResize chooses the narrowest backing width that can hold raw
// without losing the §3.3 invariant: the 64-bit representation is
// authoritative whenever raw fits in 63 magnitude bits and is not
// exactly math.MinInt64.
func autoResize(n *Number, raw int128.Int128) {
	if v, ok := raw.ToInt64(); ok {
		n.value64 = v
		n.value64Set = true
		n.value128 = int128.Zero
		return
	}
	n.value64 = 0
	n.value64Set = false
	n.value128 = raw
}

// integerAndFractional splits raw (scaled by 10^dp) into its integer
// and fractional components, matching value = sign*(integer*10^dp +
// fractional) with fractional in [0, 10^dp).
func integerAndFractional(raw int128.Int128, dp int) (integer int128.Int128, fractional int128.Int128, err error) {
	if dp == 0 {
		return raw.Abs(), int128.Zero, nil
	}
	scale, err := pow10(dp)
	if err != nil {
		return int128.Zero, int128.Zero, err
	}
	q, r, divByZero := int128.QuoRem(raw.Abs(), scale)
	if divByZero {
		return int128.Zero, int128.Zero, badValuef("integerAndFractional", "zero scale")
	}
	return q, r, nil
}

// IntegerValue returns the truncated integer portion of n's magnitude
// (always non-negative; combine with IsNegative for the sign). The
// magnitude is read off the low word directly rather than through
// Int128.ToInt64: it is guaranteed non-negative (integerAndFractional
// always operates on an absolute value) and never exceeds 2^63, so it
// always fits a uint64, even for the one value -- the minimum
// representable Number -- whose magnitude does not fit a signed int64.
func (n Number) IntegerValue() uint64 {
	integer, _, err := integerAndFractional(n.raw(), n.DecimalPlaces())
	if err != nil {
		return 0
	}
	return integer.Lo()
}

// FractionalValue returns n's fractional digits as an integer in
// [0, 10^DecimalPlaces), exactly as they'd be printed.
func (n Number) FractionalValue() uint64 {
	_, fractional, err := integerAndFractional(n.raw(), n.DecimalPlaces())
	if err != nil {
		return 0
	}
	return fractional.Lo()
}

// overflowCheck reports whether raw's integer portion (once divided by
// 10^dp) exceeds MaxIntegerValue in magnitude.
func overflowCheck(raw int128.Int128, dp int) (bool, error) {
	integer, _, err := integerAndFractional(raw, dp)
	if err != nil {
		return false, err
	}
	limit := int128.FromInt64(MaxIntegerValue)
	return integer.Cmp(limit) > 0, nil
}
