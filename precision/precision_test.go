package precision

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductDecimalPlaces(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		da, db int
		policy Policy
		want   int
	}{
		{2, 3, MinOperandPlus0, 2},
		{2, 3, MinOperandPlus2, 4},
		{2, 3, MaxOperandPlus0, 3},
		{2, 3, MaxOperandPlus2, 5},
		{5, 5, MaxPrecision, 10},
		{14, 14, MaxPrecision, 14}, // capped by MAX_DECIMAL_PLACES
		{0, 0, MinOperandPlus5, 0},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got, err := ProductDecimalPlaces(test.da, test.db, 14, test.policy)
			a.NoError(err)
			a.Equal(test.want, got)
		})
	}
}

func TestQuotientDecimalPlaces(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		da, db int
		policy Policy
		want   int
	}{
		{2, 3, MinOperandPlus0, 2},
		{2, 3, MinOperandPlus5, 7},
		{2, 3, MaxOperandPlus0, 3},
		{5, 5, MaxPrecision, 14},
		{14, 0, MinOperandPlus5, 5},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			got, err := QuotientDecimalPlaces(test.da, test.db, 14, test.policy)
			a.NoError(err)
			a.Equal(test.want, got)
		})
	}
}

func TestPolicyStringAndValid(t *testing.T) {
	a := assert.New(t)
	a.Equal("MAX_PRECISION", MaxPrecision.String())
	a.True(MinOperandPlus0.Valid())
	a.False(Policy(-1).Valid())
	a.False(policyMaxVal.Valid())
}
