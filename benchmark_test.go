package fixed

import (
	"testing"

	of "github.com/robaho/fixed"
	"github.com/shopspring/decimal"
)

func BenchmarkMulNumber(b *testing.B) {
	x, _ := NewFromFloat64(123456789.9)
	y, _ := NewFromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		x.Mul(y)
	}
}

func BenchmarkMulOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Mul(f1)
	}
}

func BenchmarkMulDecimal(b *testing.B) {
	d0 := decimal.NewFromFloat(123456789.9)
	d1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		d0.Mul(d1)
	}
}

func BenchmarkDivNumber(b *testing.B) {
	x, _ := NewFromFloat64(123456789.9)
	y, _ := NewFromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		x.Div(y)
	}
}

func BenchmarkDivOtherFixed(b *testing.B) {
	f0 := of.NewF(123456789.9)
	f1 := of.NewF(1234.9)

	for i := 0; i < b.N; i++ {
		f0.Div(f1)
	}
}

func BenchmarkDivDecimal(b *testing.B) {
	d0 := decimal.NewFromFloat(123456789.9)
	d1 := decimal.NewFromFloat(1234.9)

	for i := 0; i < b.N; i++ {
		d0.Div(d1)
	}
}

func BenchmarkAddNumber(b *testing.B) {
	x, _ := NewFromFloat64(123456789.9)
	y, _ := NewFromFloat64(1234.9)

	for i := 0; i < b.N; i++ {
		x.Add(y)
	}
}

func BenchmarkStringNumber(b *testing.B) {
	x, _ := NewFromFloat64(123456789.9)

	for i := 0; i < b.N; i++ {
		_ = x.String()
	}
}
