// Package rounding implements the ten rounding modes a Number applies
// whenever it has to drop decimal places: each mode is a pure decision
// over the integer quotient kept so far, the fractional remainder being
// discarded, the half-range threshold for that remainder's width, and
// whether the original value was negative. The decision is returned as
// an adjustment in {-1, 0, +1} to be added to the integer quotient.
//
// This is a closed set by design -- callers select one of the ten named
// Mode constants; there is no extension hook, matching the
// reference implementation's closed dispatch table.
package rounding

import "github.com/oanda/libfixed/internal/int128"

// Mode names one of the ten rounding rules.
type Mode int

const (
	Down Mode = iota
	Up
	TowardsZero
	AwayFromZero
	ToNearestHalfUp
	ToNearestHalfDown
	ToNearestHalfAwayFromZero
	ToNearestHalfTowardsZero
	ToNearestHalfToEven
	ToNearestHalfToOdd

	modeMaxVal
)

var modeStrings = [...]string{
	"DOWN",
	"UP",
	"TOWARDS_ZERO",
	"AWAY_FROM_ZERO",
	"TO_NEAREST_HALF_UP",
	"TO_NEAREST_HALF_DOWN",
	"TO_NEAREST_HALF_AWAY_FROM_ZERO",
	"TO_NEAREST_HALF_TOWARDS_ZERO",
	"TO_NEAREST_HALF_TO_EVEN",
	"TO_NEAREST_HALF_TO_ODD",
}

// String implements fmt.Stringer.
func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeStrings) {
		return "UNKNOWN_ROUNDING_MODE"
	}
	return modeStrings[m]
}

// Valid reports whether m is one of the ten defined modes.
func (m Mode) Valid() bool {
	return m >= 0 && m < modeMaxVal
}

func init() {
	if len(modeStrings) != int(modeMaxVal) {
		panic("rounding: modeStrings size does not match the number of defined modes")
	}
}

// AdjustInt64 returns the {-1,0,+1} adjustment for the 64-bit fast
// path, given the integer quotient already computed, the absolute
// fractional residue being dropped, the half-range value for that
// residue's width, and whether the original value was negative.
func AdjustInt64(mode Mode, integerVal, decimalVal, halfRangeVal int64, negativeFlag bool) int64 {
	switch mode {
	case Down:
		return downAdjustment(integerVal, decimalVal, negativeFlag)
	case Up:
		return upAdjustment(integerVal, decimalVal, negativeFlag)
	case TowardsZero:
		return 0
	case AwayFromZero:
		return awayFromZeroAdjustment(decimalVal, negativeFlag)
	case ToNearestHalfUp:
		return halfUpAdjustment(decimalVal, halfRangeVal, negativeFlag)
	case ToNearestHalfDown:
		return halfDownAdjustment(decimalVal, halfRangeVal, negativeFlag)
	case ToNearestHalfAwayFromZero:
		return halfAwayFromZeroAdjustment(decimalVal, halfRangeVal, negativeFlag)
	case ToNearestHalfTowardsZero:
		return halfTowardsZeroAdjustment(decimalVal, halfRangeVal, negativeFlag)
	case ToNearestHalfToEven:
		return halfToEvenAdjustment(integerVal, decimalVal, halfRangeVal, negativeFlag)
	case ToNearestHalfToOdd:
		return halfToOddAdjustment(integerVal, decimalVal, halfRangeVal, negativeFlag)
	default:
		return 0
	}
}

// AdjustInt128 is the Int128 counterpart of AdjustInt64, used once
// Number has promoted to its 128-bit backing.
func AdjustInt128(mode Mode, integerVal, decimalVal, halfRangeVal int128.Int128, negativeFlag bool) int128.Int128 {
	odd := integerVal.Lo()&1 != 0
	decimalNonZero := !decimalVal.IsZero()
	cmp := decimalVal.Cmp(halfRangeVal)

	switch mode {
	case Down:
		if negativeFlag && decimalNonZero {
			return int128.FromInt64(-1)
		}
		return int128.Zero
	case Up:
		if !negativeFlag && decimalNonZero {
			return int128.FromInt64(1)
		}
		return int128.Zero
	case TowardsZero:
		return int128.Zero
	case AwayFromZero:
		if decimalNonZero {
			if negativeFlag {
				return int128.FromInt64(-1)
			}
			return int128.FromInt64(1)
		}
		return int128.Zero
	case ToNearestHalfUp:
		if negativeFlag {
			if cmp > 0 {
				return int128.FromInt64(-1)
			}
		} else if cmp >= 0 {
			return int128.FromInt64(1)
		}
		return int128.Zero
	case ToNearestHalfDown:
		if negativeFlag {
			if cmp >= 0 {
				return int128.FromInt64(-1)
			}
		} else if cmp > 0 {
			return int128.FromInt64(1)
		}
		return int128.Zero
	case ToNearestHalfAwayFromZero:
		if cmp >= 0 {
			if negativeFlag {
				return int128.FromInt64(-1)
			}
			return int128.FromInt64(1)
		}
		return int128.Zero
	case ToNearestHalfTowardsZero:
		if cmp > 0 {
			if negativeFlag {
				return int128.FromInt64(-1)
			}
			return int128.FromInt64(1)
		}
		return int128.Zero
	case ToNearestHalfToEven:
		if odd {
			if cmp >= 0 {
				if negativeFlag {
					return int128.FromInt64(-1)
				}
				return int128.FromInt64(1)
			}
		} else if cmp > 0 {
			if negativeFlag {
				return int128.FromInt64(-1)
			}
			return int128.FromInt64(1)
		}
		return int128.Zero
	case ToNearestHalfToOdd:
		if odd {
			if cmp > 0 {
				if negativeFlag {
					return int128.FromInt64(-1)
				}
				return int128.FromInt64(1)
			}
		} else if cmp >= 0 {
			if negativeFlag {
				return int128.FromInt64(-1)
			}
			return int128.FromInt64(1)
		}
		return int128.Zero
	default:
		return int128.Zero
	}
}

func downAdjustment(_, decimalVal int64, negativeFlag bool) int64 {
	if negativeFlag && decimalVal != 0 {
		return -1
	}
	return 0
}

func upAdjustment(_, decimalVal int64, negativeFlag bool) int64 {
	if !negativeFlag && decimalVal != 0 {
		return 1
	}
	return 0
}

func awayFromZeroAdjustment(decimalVal int64, negativeFlag bool) int64 {
	if decimalVal == 0 {
		return 0
	}
	if negativeFlag {
		return -1
	}
	return 1
}

func halfUpAdjustment(decimalVal, halfRangeVal int64, negativeFlag bool) int64 {
	if negativeFlag {
		if decimalVal > halfRangeVal {
			return -1
		}
		return 0
	}
	if decimalVal >= halfRangeVal {
		return 1
	}
	return 0
}

func halfDownAdjustment(decimalVal, halfRangeVal int64, negativeFlag bool) int64 {
	if negativeFlag {
		if decimalVal >= halfRangeVal {
			return -1
		}
		return 0
	}
	if decimalVal > halfRangeVal {
		return 1
	}
	return 0
}

func halfAwayFromZeroAdjustment(decimalVal, halfRangeVal int64, negativeFlag bool) int64 {
	if decimalVal < halfRangeVal {
		return 0
	}
	if negativeFlag {
		return -1
	}
	return 1
}

func halfTowardsZeroAdjustment(decimalVal, halfRangeVal int64, negativeFlag bool) int64 {
	if decimalVal <= halfRangeVal {
		return 0
	}
	if negativeFlag {
		return -1
	}
	return 1
}

func halfToEvenAdjustment(integerVal, decimalVal, halfRangeVal int64, negativeFlag bool) int64 {
	odd := integerVal&1 != 0
	if negativeFlag {
		if odd {
			if decimalVal >= halfRangeVal {
				return -1
			}
		} else if decimalVal > halfRangeVal {
			return -1
		}
		return 0
	}
	if odd {
		if decimalVal >= halfRangeVal {
			return 1
		}
	} else if decimalVal > halfRangeVal {
		return 1
	}
	return 0
}

func halfToOddAdjustment(integerVal, decimalVal, halfRangeVal int64, negativeFlag bool) int64 {
	odd := integerVal&1 != 0
	if negativeFlag {
		if odd {
			if decimalVal > halfRangeVal {
				return -1
			}
		} else if decimalVal >= halfRangeVal {
			return -1
		}
		return 0
	}
	if odd {
		if decimalVal > halfRangeVal {
			return 1
		}
	} else if decimalVal >= halfRangeVal {
		return 1
	}
	return 0
}
