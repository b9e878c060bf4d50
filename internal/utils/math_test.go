package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBinomialCoefficient(t *testing.T) {
	tests := []struct {
		n, k     int
		expected int64
	}{
		{0, 0, 1},
		{1, 0, 1},
		{1, 1, 1},
		{2, 1, 2},
		{5, 2, 10},
		{9, 4, 126},
		{9, 9, 1},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.expected, BinomialCoefficient(tt.n, tt.k), "C(%d,%d)", tt.n, tt.k)
	}
}

func TestBinomialCoefficient_OutOfRangePanics(t *testing.T) {
	assert.Panics(t, func() { BinomialCoefficient(MaxRolls+1, 1) })
	assert.Panics(t, func() { BinomialCoefficient(3, 4) })
	assert.Panics(t, func() { BinomialCoefficient(3, -1) })
	assert.Panics(t, func() { BinomialCoefficient(-1, 0) })
}

func TestBinomialProbability(t *testing.T) {
	p := 1.0 / 25

	t.Run("two rolls", func(t *testing.T) {
		assert.InDelta(t, 2*p*(1-p), BinomialProbability(p, 2, 1), 1e-12)
		assert.InDelta(t, p*p, BinomialProbability(p, 2, 2), 1e-12)
		assert.InDelta(t, (1-p)*(1-p), BinomialProbability(p, 2, 0), 1e-12)
	})

	t.Run("distribution sums to one", func(t *testing.T) {
		for n := 1; n <= MaxRolls; n++ {
			total := 0.0
			for k := 0; k <= n; k++ {
				total += BinomialProbability(0.3, n, k)
			}
			assert.InDelta(t, 1.0, total, 1e-9, "n=%d", n)
		}
	})

	t.Run("certain success", func(t *testing.T) {
		assert.InDelta(t, 1.0, BinomialProbability(1, 3, 3), 1e-12)
		assert.InDelta(t, 0.0, BinomialProbability(1, 3, 2), 1e-12)
	})
}

func TestCumulativeGeometric(t *testing.T) {
	assert.InDelta(t, 0.0, CumulativeGeometric(0.5, 0), 1e-12)
	assert.InDelta(t, 0.5, CumulativeGeometric(0.5, 1), 1e-12)
	assert.InDelta(t, 0.75, CumulativeGeometric(0.5, 2), 1e-12)
	assert.InDelta(t, 1-(4999.0/5000)*(4999.0/5000)*(4999.0/5000), CumulativeGeometric(1.0/5000, 3), 1e-12)

	prev := 0.0
	for k := 1; k <= 50; k++ {
		cur := CumulativeGeometric(0.01, k)
		assert.Greater(t, cur, prev, "should increase with more trials")
		assert.LessOrEqual(t, cur, 1.0)
		prev = cur
	}
}
