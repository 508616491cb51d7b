// Package shifttable precomputes powers of ten and the derived
// thresholds Number's arithmetic consults at every decimal-place shift:
// the scaling factor itself, half that factor (the tie threshold for
// rounding), and the first-bit-set position of the factor (used to
// estimate, without a multiply, whether shifting by a given number of
// decimal places will overflow the current backing width).
//
// Two variants exist, mirroring the two backing widths Number can be
// in: a narrow table sized to what fits in an int64, and a wide table
// sized to what fits in the 127 usable magnitude bits of a signed
// Int128. They are kept as separate concrete types rather than unified
// with generics, the same way the teacher repo hand-duplicates its
// value representation for each width rather than abstracting over it.
package shifttable

import (
	"fmt"

	"github.com/oanda/libfixed/internal/bitscan"
	"github.com/oanda/libfixed/internal/int128"
)

// MaxDigits64 is the highest decimal-place shift representable in the
// narrow (int64) table: 10^18 is the largest power of ten that still
// leaves room for a nonzero integer part in 63 bits.
const MaxDigits64 = 18

// MaxDigits128 is the highest decimal-place shift representable in the
// wide (Int128) table. 10^37 needs 123 bits, comfortably inside the
// 127-bit budget a signed Int128 magnitude has to work with.
const MaxDigits128 = 37

// Entry64 is one row of the narrow table.
type Entry64 struct {
	DecimalPlaces int
	Value         uint64 // 10^DecimalPlaces
	HalfRangeVal  uint64 // Value / 2
	FirstBitSet   int    // first-bit-set(Value)
}

// Entry128 is one row of the wide table.
type Entry128 struct {
	DecimalPlaces int
	Value         int128.Int128 // 10^DecimalPlaces, always non-negative
	HalfRangeVal  int128.Int128
	FirstBitSet   int
}

// Table64 is the complete narrow table, indexed by decimal-place count.
type Table64 [MaxDigits64 + 1]Entry64

// Table128 is the complete wide table, indexed by decimal-place count.
type Table128 [MaxDigits128 + 1]Entry128

var (
	narrow Table64
	wide   Table128
)

func init() {
	var v uint64 = 1
	for dp := 0; dp <= MaxDigits64; dp++ {
		narrow[dp] = Entry64{
			DecimalPlaces: dp,
			Value:         v,
			HalfRangeVal:  v / 2,
			FirstBitSet:   bitscan.OfUint64(v),
		}
		v *= 10
	}

	w := int128.FromUint64(1)
	ten := int128.FromInt64(10)
	for dp := 0; dp <= MaxDigits128; dp++ {
		wide[dp] = Entry128{
			DecimalPlaces: dp,
			Value:         w,
			HalfRangeVal:  w.Rsh1(),
			FirstBitSet:   w.FirstBitSet(),
		}
		var overflow bool
		w, overflow = int128.Mul(w, ten)
		if overflow {
			break
		}
	}
}

// Narrow returns the dp-th entry of the int64-width table.
func Narrow(dp int) (Entry64, error) {
	if dp < 0 || dp > MaxDigits64 {
		return Entry64{}, fmt.Errorf("shifttable: decimal places %d out of narrow range [0,%d]", dp, MaxDigits64)
	}
	return narrow[dp], nil
}

// Wide returns the dp-th entry of the Int128-width table.
func Wide(dp int) (Entry128, error) {
	if dp < 0 || dp > MaxDigits128 {
		return Entry128{}, fmt.Errorf("shifttable: decimal places %d out of wide range [0,%d]", dp, MaxDigits128)
	}
	return wide[dp], nil
}

// Pow10Uint64 is a convenience accessor equivalent to Narrow(dp).Value,
// for call sites that only need the scaling factor.
func Pow10Uint64(dp int) (uint64, error) {
	e, err := Narrow(dp)
	if err != nil {
		return 0, err
	}
	return e.Value, nil
}

// Pow10Wide is the Int128 counterpart of Pow10Uint64.
func Pow10Wide(dp int) (int128.Int128, error) {
	e, err := Wide(dp)
	if err != nil {
		return int128.Zero, err
	}
	return e.Value, nil
}

// ExcessDecimalPlaces returns the smallest d such that 10^d occupies at
// least wantBits bits -- the computation multiplication's
// operand-precision reduction uses to translate "I need to shed this
// many bits" into "I need to shed this many decimal places".
func ExcessDecimalPlaces(wantBits int) int {
	if wantBits <= 0 {
		return 0
	}
	for dp := 0; dp <= MaxDigits128; dp++ {
		if wide[dp].FirstBitSet >= wantBits {
			return dp
		}
	}
	return MaxDigits128 + 1
}
