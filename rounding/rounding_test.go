package rounding

import (
	"fmt"
	"testing"

	"github.com/oanda/libfixed/internal/int128"
	"github.com/stretchr/testify/assert"
)

// TestAdjustInt64HalfCases reproduces the canonical 22.5 / -22.5
// mapping table: dropping one decimal digit of value 5 out of a
// half-range of 5 (10/2), added to an integer quotient of 22.
func TestAdjustInt64HalfCases(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		mode      Mode
		wantPos   int64
		wantNeg   int64
	}{
		{Down, 22, -23},
		{Up, 23, -22},
		{TowardsZero, 22, -22},
		{AwayFromZero, 23, -23},
		{ToNearestHalfUp, 23, -22},
		{ToNearestHalfDown, 22, -23},
		{ToNearestHalfAwayFromZero, 23, -23},
		{ToNearestHalfTowardsZero, 22, -22},
		{ToNearestHalfToEven, 22, -22},
		{ToNearestHalfToOdd, 23, -23},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d_%s", i, test.mode), func(t *testing.T) {
			posAdj := AdjustInt64(test.mode, 22, 5, 5, false)
			a.Equal(test.wantPos, 22+posAdj)

			negAdj := AdjustInt64(test.mode, -22, 5, 5, true)
			a.Equal(test.wantNeg, -22+negAdj)
		})
	}
}

func TestModeString(t *testing.T) {
	a := assert.New(t)
	a.Equal("TO_NEAREST_HALF_TO_EVEN", ToNearestHalfToEven.String())
	a.True(Down.Valid())
	a.False(Mode(-1).Valid())
	a.False(modeMaxVal.Valid())
}

func TestAdjustInt128HalfCases(t *testing.T) {
	a := assert.New(t)

	integerVal := int128.FromInt64(22)
	negIntegerVal := int128.FromInt64(-22)
	decimalVal := int128.FromInt64(5)
	halfRangeVal := int128.FromInt64(5)

	tests := []struct {
		mode    Mode
		wantPos int64
		wantNeg int64
	}{
		{Down, 22, -23},
		{Up, 23, -22},
		{TowardsZero, 22, -22},
		{AwayFromZero, 23, -23},
		{ToNearestHalfUp, 23, -22},
		{ToNearestHalfDown, 22, -23},
		{ToNearestHalfAwayFromZero, 23, -23},
		{ToNearestHalfTowardsZero, 22, -22},
		{ToNearestHalfToEven, 22, -22},
		{ToNearestHalfToOdd, 23, -23},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d_%s", i, test.mode), func(t *testing.T) {
			posAdj := AdjustInt128(test.mode, integerVal, decimalVal, halfRangeVal, false)
			posSum, _ := int128.Add(integerVal, posAdj)
			a.Equal(test.wantPos, int64(posSum.Lo()))

			negAdj := AdjustInt128(test.mode, negIntegerVal, decimalVal, halfRangeVal, true)
			negSum, _ := int128.Add(negIntegerVal, negAdj)
			a.Equal(test.wantNeg, int64(negSum.Lo()))
		})
	}
}
