package shifttable

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNarrowTable(t *testing.T) {
	a := assert.New(t)

	e, err := Narrow(0)
	a.NoError(err)
	a.Equal(uint64(1), e.Value)
	a.Equal(uint64(0), e.HalfRangeVal)

	e, err = Narrow(3)
	a.NoError(err)
	a.Equal(uint64(1000), e.Value)
	a.Equal(uint64(500), e.HalfRangeVal)
	a.Equal(10, e.FirstBitSet)

	_, err = Narrow(MaxDigits64 + 1)
	a.Error(err)
	_, err = Narrow(-1)
	a.Error(err)
}

func TestWideTable(t *testing.T) {
	a := assert.New(t)

	e, err := Wide(0)
	a.NoError(err)
	a.True(e.Value.IsZero() == false)

	e, err = Wide(18)
	a.NoError(err)
	narrowE, _ := Narrow(18)
	a.Equal(narrowE.Value, e.Value.Lo())
	a.Equal(uint64(0), e.Value.Hi())

	_, err = Wide(MaxDigits128 + 1)
	a.Error(err)
}

func TestExcessDecimalPlaces(t *testing.T) {
	a := assert.New(t)

	tests := []struct {
		wantBits int
		want     int
	}{
		{0, 0},
		{-5, 0},
		{1, 0},
		{4, 1},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			a.Equal(test.want, ExcessDecimalPlaces(test.wantBits))
		})
	}
}
