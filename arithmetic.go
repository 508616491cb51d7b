package fixed

import (
	"github.com/oanda/libfixed/internal/int128"
	"github.com/oanda/libfixed/internal/shifttable"
	"github.com/oanda/libfixed/precision"
)

// alignDecimalPlaces shifts the lower-precision of a, b up to match
// the higher, returning both at a common decimal-place count. This may
// promote either operand's backing width.
func alignDecimalPlaces(a, b Number) (Number, Number, error) {
	da, db := a.DecimalPlaces(), b.DecimalPlaces()
	if da == db {
		return a, b, nil
	}
	if da < db {
		a, err := a.withDecimalPlacesUnchecked(db)
		return a, b, err
	}
	b, err := b.withDecimalPlacesUnchecked(da)
	return a, b, err
}

// Add returns n+other, never mutating either operand.
func (n Number) Add(other Number) (Number, error) {
	return addSub(n, other, false)
}

// Sub returns n-other, never mutating either operand.
func (n Number) Sub(other Number) (Number, error) {
	return addSub(n, other, true)
}

func addSub(a, b Number, subtract bool) (Number, error) {
	a, b, err := alignDecimalPlaces(a, b)
	if err != nil {
		return Number{}, err
	}
	dp := a.DecimalPlaces()

	op := "Add"
	if subtract {
		op = "Sub"
	}

	// 64-bit fast path: try native int64 arithmetic, detecting overflow
	// by inspecting operand/result signs rather than relying on
	// wraparound.
	if a.value64Set && b.value64Set {
		x, y := a.value64, b.value64
		fastPathOK := true
		if subtract {
			if y == minInt64 {
				fastPathOK = false
			} else {
				y = -y
			}
		}
		if fastPathOK {
			sum := x + y
			xNeg, yNeg, sNeg := x < 0, y < 0, sum < 0
			if !(xNeg == yNeg && sNeg != xNeg) {
				result := a.withRaw(int128.FromInt64(sum), dp)
				if overflowed, err := overflowCheck(result.raw(), dp); err != nil {
					return Number{}, err
				} else if overflowed {
					return Number{}, overflowf(op, "integer part exceeds MaxIntegerValue")
				}
				return result, nil
			}
		}
	}

	ra, rb := a.raw(), b.raw()
	if subtract {
		rb = rb.Neg()
	}
	sum, overflow := int128.Add(ra, rb)
	if overflow {
		return Number{}, overflowf(op, "128-bit addition overflowed")
	}
	result := a.withRaw(sum, dp)
	if overflowed, err := overflowCheck(sum, dp); err != nil {
		return Number{}, err
	} else if overflowed {
		return Number{}, overflowf(op, "integer part exceeds MaxIntegerValue")
	}
	return result, nil
}

const minInt64 = -1 << 63

// maxProductBits is the highest magnitude bit position an Int128 can
// hold a signed value at -- the 128th bit is the sign. Multiplication's
// operand-precision reduction is triggered once the two operands'
// combined bit cost would exceed this.
const maxProductBits = 127

// combinedPolicy evaluates policy pa and pb against the same da, db
// using eval, and keeps whichever decimal-place result is larger -- the
// only meaningful way to compare two policies, since which one "yields
// more" depends on the operands, not the policies in isolation.
func combinedPolicy(da, db, maxDP int, pa, pb precision.Policy, eval func(int, int, int, precision.Policy) (int, error)) (int, error) {
	ra, err := eval(da, db, maxDP, pa)
	if err != nil {
		return 0, badValuef("combinedPolicy", "%v", err)
	}
	rb, err := eval(da, db, maxDP, pb)
	if err != nil {
		return 0, badValuef("combinedPolicy", "%v", err)
	}
	if rb > ra {
		return rb, nil
	}
	return ra, nil
}

// Mul returns n*other, applying operand-precision reduction if needed
// to keep the 128-bit product within its usable 127-bit magnitude
// budget.
func (n Number) Mul(other Number) (Number, error) {
	a, b := n, other
	da, db := a.DecimalPlaces(), b.DecimalPlaces()

	target, err := combinedPolicy(da, db, MaxDecimalPlaces, a.multPolicy, b.multPolicy, precision.ProductDecimalPlaces)
	if err != nil {
		return Number{}, err
	}

	if a.value64Set && b.value64Set {
		fa := firstBitSetOfMagnitude(int128.FromInt64(a.value64))
		fb := firstBitSetOfMagnitude(int128.FromInt64(b.value64))
		if fa+fb <= 62 {
			product := a.value64 * b.value64
			result := a.withRaw(int128.FromInt64(product), da+db)
			return finishMul(result, target)
		}
	}

	a, b, err = reduceOperandPrecisionForMul(a, b)
	if err != nil {
		return Number{}, err
	}

	product, overflow := int128.Mul(a.raw(), b.raw())
	if overflow {
		return Number{}, overflowf("Mul", "128-bit product overflowed")
	}
	result := a.withRaw(product, a.DecimalPlaces()+b.DecimalPlaces())
	return finishMul(result, target)
}

func finishMul(result Number, target int) (Number, error) {
	if result.DecimalPlaces() > target {
		reduced, err := result.withDecimalPlacesUnchecked(target)
		if err != nil {
			return Number{}, err
		}
		result = reduced
	}
	if overflowed, err := overflowCheck(result.raw(), result.DecimalPlaces()); err != nil {
		return Number{}, err
	} else if overflowed {
		return Number{}, overflowf("Mul", "integer part exceeds MaxIntegerValue")
	}
	return result, nil
}

// reduceOperandPrecisionForMul implements §4.3 step 3: when the
// estimated bit cost of multiplying two operands exceeds the 127-bit
// magnitude budget of a signed Int128 product, shed decimal places
// from the operands -- first by compacting away trailing zeros, then
// by penalizing whichever operand has more integer digits (it
// tolerates precision loss better), then by splitting any remainder
// evenly with a deterministic tiebreak so the whole operation stays
// commutative. Each operand's final decimal-place count is worked out
// as pure bookkeeping first and only applied once, via a single
// withDecimalPlacesUnchecked call per operand -- rounding each operand
// twice would compound its rounding error. Both operands are promoted
// to their 128-bit form on return.
func reduceOperandPrecisionForMul(a, b Number) (Number, Number, error) {
	a = forcePromoteTo128(a)
	b = forcePromoteTo128(b)

	requiredBits := firstBitSetOfMagnitude(a.raw()) + firstBitSetOfMagnitude(b.raw())
	if requiredBits <= maxProductBits {
		return a, b, nil
	}

	excessBits := requiredBits - maxProductBits
	dpExcess := shifttable.ExcessDecimalPlaces(excessBits)
	if dpExcess > a.DecimalPlaces()+b.DecimalPlaces() {
		return Number{}, Number{}, overflowf("Mul", "cannot reduce operand precision enough")
	}

	n1Idop := integerDigitCount(a)
	n2Idop := integerDigitCount(b)

	// Prefer to trim trailing zeroes before dropping significant digits.
	var removedA, removedB int
	a, removedA = a.compact(dpExcess)
	dpExcess -= removedA
	b, removedB = b.compact(dpExcess)
	dpExcess -= removedB

	n1Dp := a.DecimalPlaces()
	n2Dp := b.DecimalPlaces()

	switch {
	case n1Idop > n2Idop:
		saved := min2(n1Idop-n2Idop, dpExcess)
		n1Dp -= saved
		dpExcess -= saved
	case n2Idop > n1Idop:
		saved := min2(n2Idop-n1Idop, dpExcess)
		n2Dp -= saved
		dpExcess -= saved
	}

	if dpExcess > 0 {
		// The two magnitudes are now equal; split what's left evenly,
		// and if an odd unit remains, penalize whichever operand
		// currently carries more decimal places -- tied, penalize
		// whichever has the larger magnitude, so n1*n2 == n2*n1.
		n1Dp -= dpExcess / 2
		n2Dp -= dpExcess / 2
		if dpExcess&1 != 0 {
			switch {
			case n1Dp > n2Dp:
				n1Dp--
			case n2Dp > n1Dp:
				n2Dp--
			case absCmp(a, b) > 0:
				n1Dp--
			default:
				n2Dp--
			}
		}
	}

	var err error
	a, err = a.withDecimalPlacesUnchecked(n1Dp)
	if err != nil {
		return Number{}, Number{}, err
	}
	b, err = b.withDecimalPlacesUnchecked(n2Dp)
	if err != nil {
		return Number{}, Number{}, err
	}

	a = forcePromoteTo128(a)
	b = forcePromoteTo128(b)

	return a, b, nil
}

func integerDigitCount(n Number) int {
	integer, _, err := integerAndFractional(n.raw(), n.DecimalPlaces())
	if err != nil {
		return 0
	}
	if integer.IsZero() {
		return 1
	}
	digits := 0
	ten := int128.FromInt64(10)
	for !integer.IsZero() {
		integer, _, _ = int128.QuoRem(integer, ten)
		digits++
	}
	return digits
}

func absCmp(a, b Number) int {
	return a.raw().Abs().Cmp(b.raw().Abs())
}

func forcePromoteTo128(n Number) Number {
	n.value128 = n.raw()
	n.value64Set = false
	return n
}

func min2(a, b int) int {
	if a < b {
		return a
	}
	return b
}

// Div returns n/other. It targets one extra internal decimal place
// beyond the policy-selected result width (DivisionExtraDecimalPlacesForRounding)
// so the final rounding reduction has a genuine remainder to inspect,
// but when scaling the dividend or divisor to reach that width would
// overflow the 128-bit working value, Div progressively drops the
// policy-selected decimal places from the least significant end --
// always keeping the one extra rounding digit -- until the
// computation fits, exactly as §4.4 documents for operands whose
// integer parts already occupy most of the representable range.
func (n Number) Div(other Number) (Number, error) {
	a, b := n, other
	if b.IsZero() {
		return Number{}, divideByZerof("Div")
	}
	da, db := a.DecimalPlaces(), b.DecimalPlaces()

	target, err := combinedPolicy(da, db, MaxDecimalPlaces, a.divPolicy, b.divPolicy, precision.QuotientDecimalPlaces)
	if err != nil {
		return Number{}, err
	}

	numeratorMag, denominatorMag := a.raw().Abs(), b.raw().Abs()
	resultNegative := a.IsNegative() != b.IsNegative()

	for dp := target; dp >= 0; dp-- {
		wideDp := dp + DivisionExtraDecimalPlacesForRounding
		numerator, denominator, scaleErr := scaleForDivision(numeratorMag, denominatorMag, da, db, wideDp)
		if scaleErr != nil {
			continue
		}

		q, _, divByZero := int128.QuoRem(numerator, denominator)
		if divByZero {
			return Number{}, divideByZerof("Div")
		}
		if resultNegative {
			q = q.Neg()
		}

		wideResult := a.withRaw(q, wideDp)
		result, err := wideResult.withDecimalPlacesUnchecked(dp)
		if err != nil {
			continue
		}
		if overflowed, oerr := overflowCheck(result.raw(), result.DecimalPlaces()); oerr == nil && !overflowed {
			return result, nil
		}
	}

	return Number{}, overflowf("Div", "no decimal-place count avoids overflow")
}

// scaleForDivision computes the numerator and denominator magnitudes
// to divide so that the truncated quotient is scaled by 10^wideDp:
// numerator/denominator = (a/10^da) / (b/10^db) * 10^wideDp.
func scaleForDivision(numeratorMag, denominatorMag int128.Int128, da, db, wideDp int) (int128.Int128, int128.Int128, error) {
	shift := db + wideDp - da
	switch {
	case shift > 0:
		scale, err := pow10General(shift)
		if err != nil {
			return int128.Zero, int128.Zero, err
		}
		numerator, overflow := int128.Mul(numeratorMag, scale)
		if overflow {
			return int128.Zero, int128.Zero, overflowf("Div", "dividend shift overflowed")
		}
		return numerator, denominatorMag, nil
	case shift < 0:
		scale, err := pow10General(-shift)
		if err != nil {
			return int128.Zero, int128.Zero, err
		}
		denominator, overflow := int128.Mul(denominatorMag, scale)
		if overflow {
			return int128.Zero, int128.Zero, overflowf("Div", "divisor shift overflowed")
		}
		return numeratorMag, denominator, nil
	default:
		return numeratorMag, denominatorMag, nil
	}
}

// pow10General computes 10^n as an Int128 by repeated multiplication,
// without consulting the precomputed shift table. The shifts division's
// decimal-place alignment asks for (db + wideDp - da) are at most 29,
// wider than any single operand's own decimal-place count.
func pow10General(n int) (int128.Int128, error) {
	if n < 0 {
		return int128.Zero, badValuef("pow10General", "negative exponent %d", n)
	}
	result := int128.FromInt64(1)
	ten := int128.FromInt64(10)
	for i := 0; i < n; i++ {
		var overflow bool
		result, overflow = int128.Mul(result, ten)
		if overflow {
			return int128.Zero, overflowf("pow10General", "10^%d overflowed 128 bits", n)
		}
	}
	return result, nil
}

// Mod returns the remainder of n/other, truncated division style: its
// sign always matches n's (the dividend), regardless of other's sign.
func (n Number) Mod(other Number) (Number, error) {
	a, b, err := alignDecimalPlaces(n, other)
	if err != nil {
		return Number{}, err
	}
	dp := a.DecimalPlaces()

	ra := a.raw()
	rb := b.raw().Abs()
	if rb.IsZero() {
		return Number{}, divideByZerof("Mod")
	}

	_, rem, divByZero := int128.QuoRem(ra.Abs(), rb)
	if divByZero {
		return Number{}, divideByZerof("Mod")
	}
	if ra.IsNeg() {
		rem = rem.Neg()
	}
	return a.withRaw(rem, dp), nil
}

// MustAdd, MustSub, MustMul, MustDiv and MustMod panic instead of
// returning an error -- a convenience for call sites operating on
// values already known to be well-formed, such as literal constants.
func (n Number) MustAdd(other Number) Number { return must(n.Add(other)) }
func (n Number) MustSub(other Number) Number { return must(n.Sub(other)) }
func (n Number) MustMul(other Number) Number { return must(n.Mul(other)) }
func (n Number) MustDiv(other Number) Number { return must(n.Div(other)) }
func (n Number) MustMod(other Number) Number { return must(n.Mod(other)) }

func must(n Number, err error) Number {
	if err != nil {
		panic(err)
	}
	return n
}
