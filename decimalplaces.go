package fixed

import (
	"github.com/oanda/libfixed/internal/int128"
	"github.com/oanda/libfixed/rounding"
)

// WithDecimalPlaces returns a copy of n rescaled to exactly dp decimal
// places, applying n's rounding mode if dp is smaller than n's current
// decimal-place count. It is the public form of the original
// implementation's setDecimalPlaces, and the primitive every operation
// that must shed precision (multiplication, division, construction)
// is built on.
func (n Number) WithDecimalPlaces(dp int) (Number, error) {
	if dp < 0 || dp > MaxDecimalPlaces {
		return Number{}, badValuef("WithDecimalPlaces", "decimal places %d out of range [0,%d]", dp, MaxDecimalPlaces)
	}
	return n.withDecimalPlacesUnchecked(dp)
}

// withDecimalPlacesUnchecked is WithDecimalPlaces without the public
// [0,MaxDecimalPlaces] bound, used internally by multiplication's
// intermediate steps where decimal places may transiently reach 28
// (see invariant §3.4) before being brought back down.
func (n Number) withDecimalPlacesUnchecked(dp int) (Number, error) {
	cur := n.DecimalPlaces()
	switch {
	case dp == cur:
		return n, nil
	case dp > cur:
		return n.increaseDecimalPlaces(dp)
	default:
		return n.decreaseDecimalPlaces(dp)
	}
}

func (n Number) increaseDecimalPlaces(dp int) (Number, error) {
	delta := dp - n.DecimalPlaces()
	scale, err := pow10(delta)
	if err != nil {
		return Number{}, err
	}
	raw, overflow := int128.Mul(n.raw(), scale)
	if overflow {
		return Number{}, overflowf("WithDecimalPlaces", "increasing decimal places to %d", dp)
	}
	return n.withRaw(raw, dp), nil
}

func (n Number) decreaseDecimalPlaces(dp int) (Number, error) {
	delta := n.DecimalPlaces() - dp
	scale, err := pow10(delta)
	if err != nil {
		return Number{}, err
	}
	halfRange := scale.Rsh1()

	raw := n.raw()
	q, r, divByZero := int128.QuoRem(raw, scale)
	if divByZero {
		return Number{}, badValuef("WithDecimalPlaces", "zero scale")
	}

	adjustment := rounding.AdjustInt128(n.roundingMode, q, r.Abs(), halfRange, raw.IsNeg())
	adjusted, addOverflow := int128.Add(q, adjustment)
	if addOverflow {
		return Number{}, overflowf("WithDecimalPlaces", "rounding adjustment overflowed")
	}

	overflowed, err := overflowCheck(adjusted, dp)
	if err != nil {
		return Number{}, err
	}
	if overflowed {
		if corrected, ok := correctRoundingCornerCase(q, adjusted, dp); ok {
			adjusted = corrected
		} else {
			return Number{}, overflowf("WithDecimalPlaces", "reducing decimal places to %d", dp)
		}
	}

	return n.withRaw(adjusted, dp), nil
}

// correctRoundingCornerCase implements the one documented exception to
// the overflow rule (§7): if the rounding adjustment alone pushed the
// magnitude of the integer part from MaxIntegerValue to exactly
// MaxIntegerValue+1, pull it back by one unit toward zero rather than
// failing the whole operation. preAdjust is the quotient before the
// rounding adjustment was added; postAdjust is the value after.
func correctRoundingCornerCase(preAdjust, postAdjust int128.Int128, dp int) (int128.Int128, bool) {
	preOverflowed, err := overflowCheck(preAdjust, dp)
	if err != nil || preOverflowed {
		// Already out of range before rounding: not the corner case,
		// a genuine overflow.
		return int128.Int128{}, false
	}

	limit := int128.FromInt64(MaxIntegerValue)
	limitPlusOne, _ := int128.Add(limit, int128.FromInt64(1))
	integerAfter, _, err := integerAndFractional(postAdjust, dp)
	if err != nil || integerAfter.Cmp(limitPlusOne) != 0 {
		return int128.Int128{}, false
	}

	if postAdjust.IsNeg() {
		corrected, _ := int128.Add(postAdjust, int128.FromInt64(1))
		return corrected, true
	}
	corrected, _ := int128.Sub(postAdjust, int128.FromInt64(1))
	return corrected, true
}

// compact strips trailing decimal zeros from n, reducing its decimal
// places accordingly without changing the logical value -- the Go
// realization of the original's squeezeZeros/makeCompact helper, used
// by construction and by multiplication's operand-precision reduction.
// maxSqueeze bounds how many decimal places may be stripped; it
// returns the number actually removed.
func (n Number) compact(maxSqueeze int) (Number, int) {
	raw := n.raw()
	if raw.IsZero() || maxSqueeze <= 0 {
		return n, 0
	}
	removed := 0
	dp := n.DecimalPlaces()
	for removed < maxSqueeze && dp-removed > 0 {
		ten, err := pow10(1)
		if err != nil {
			break
		}
		q, r, divByZero := int128.QuoRem(raw, ten)
		if divByZero || !r.IsZero() {
			break
		}
		raw = q
		removed++
	}
	if removed == 0 {
		return n, 0
	}
	return n.withRaw(raw, dp-removed), removed
}
