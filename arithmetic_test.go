package fixed

import (
	"fmt"
	"testing"

	"github.com/oanda/libfixed/precision"
	"github.com/oanda/libfixed/rounding"
	"github.com/stretchr/testify/assert"
)

func mustParse(t *testing.T, s string) Number {
	t.Helper()
	n, err := NewFromString(s)
	if err != nil {
		t.Fatalf("NewFromString(%q): %v", s, err)
	}
	return n
}

func TestAddSub(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "1.50")
	y := mustParse(t, "2.25")

	sum, err := x.Add(y)
	a.NoError(err)
	a.Equal("3.75", sum.String())

	diff, err := y.Sub(x)
	a.NoError(err)
	a.Equal("0.75", diff.String())

	diff2, err := x.Sub(y)
	a.NoError(err)
	a.Equal("-0.75", diff2.String())
}

func TestAddOverflow(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "9223372036854775807.99999999999999")
	y := mustParse(t, "0.00000000000001")
	_, err := x.Add(y)
	a.ErrorIs(err, ErrOverflow)
}

func TestSubExactZero(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "5.5")
	diff, err := x.Sub(x)
	a.NoError(err)
	a.True(diff.IsZero())
	a.Equal("0.0", diff.String())
}

func TestMul(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "12345.12345").WithMultPrecisionPolicy(precision.MaxPrecision)
	y := mustParse(t, "54321.54321").WithMultPrecisionPolicy(precision.MaxPrecision)
	product, err := x.Mul(y)
	a.NoError(err)
	a.Equal("670606156.9219592745", product.String())
}

// TestMulWide exercises multiplication of two operands whose combined
// bit cost exceeds the 128-bit product budget, forcing operand
// precision reduction.
func TestMulWide(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "123456789012.12345678901234")
	y := mustParse(t, "74709314.17104198834225")
	product, err := x.Mul(y)
	a.NoError(err)
	a.Equal("9223372036854775806.79500247491567", product.String())
}

func TestDivMinOperandPlus5(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "9223372036854775807.99999999999999").WithDivPrecisionPolicy(precision.MinOperandPlus5)
	y := mustParse(t, "31").WithDivPrecisionPolicy(precision.MinOperandPlus5)
	q, err := x.Div(y)
	a.NoError(err)
	a.Equal("297528130221121800.25806", q.String())
}

// TestDivMaxPrecision divides two operands whose quotient's integer
// part sits close enough to MaxIntegerValue that computing the full
// MAX_PRECISION-selected decimal-place count would overflow the
// 128-bit working value during the internal shift; per §4.4, decimal
// places are dropped from the result until the computation fits. This
// checks that Div succeeds and narrows the result rather than erroring
// or silently producing the wrong integer part.
func TestDivMaxPrecision(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "3676299675362152112.41203440812031").WithDivPrecisionPolicy(precision.MaxPrecision)
	y := mustParse(t, "0.39858520947355").WithDivPrecisionPolicy(precision.MaxPrecision)
	q, err := x.Div(y)
	a.NoError(err)
	a.Less(q.DecimalPlaces(), MaxDecimalPlaces)
	a.InEpsilon(9223372036854544405.23297, q.Float64(), 1e-6)
}

func TestDivByZero(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "1")
	_, err := x.Div(Zero())
	a.ErrorIs(err, ErrDivideByZero)
}

func TestMod(t *testing.T) {
	a := assert.New(t)
	tests := []struct {
		x, y, want string
	}{
		{"9.2345", "2.41", "2.0045"},
		{"-9.2345", "2.41", "-2.0045"},
	}
	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			x := mustParse(t, test.x)
			y := mustParse(t, test.y)
			r, err := x.Mod(y)
			a.NoError(err)
			a.Equal(test.want, r.String())
		})
	}
}

func TestModByZero(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "1")
	_, err := x.Mod(Zero())
	a.ErrorIs(err, ErrDivideByZero)
}

func TestMustArithmeticPanicsOnError(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "1")
	a.Panics(func() {
		x.MustDiv(Zero())
	})
}

func TestMustArithmeticReturnsValueOnSuccess(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "1.5")
	y := mustParse(t, "2.5")
	a.Equal("4.0", x.MustAdd(y).String())
}

func TestRoundingAffectsReducedDivision(t *testing.T) {
	a := assert.New(t)
	x := mustParse(t, "1").WithRoundingMode(rounding.Up)
	y := mustParse(t, "3")
	div, err := x.Div(y)
	a.NoError(err)
	a.Equal("0.34", div.String())

	x = mustParse(t, "1").WithRoundingMode(rounding.Down)
	div, err = x.Div(y)
	a.NoError(err)
	a.Equal("0.33", div.String())
}
