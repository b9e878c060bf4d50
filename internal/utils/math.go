package utils

import (
	"fmt"
	"math"
)

// MaxRolls is the largest roll count the factorial table supports.
// The shipped npc dataset peaks at 9 rolls (Leagues tier 5 relic).
const MaxRolls = 9

// factorials holds 0! through MaxRolls! for n-choose-k.
var factorials = func() [MaxRolls + 1]int64 {
	var f [MaxRolls + 1]int64
	f[0] = 1
	for i := 1; i <= MaxRolls; i++ {
		f[i] = int64(i) * f[i-1]
	}
	return f
}()

// BinomialCoefficient returns n choose k.
// It panics unless 0 <= k <= n <= MaxRolls; a larger n means the dataset outgrew the table.
func BinomialCoefficient(n, k int) int64 {
	if n < 0 || n > MaxRolls || k < 0 || k > n {
		panic(fmt.Sprintf("binomial coefficient out of range: n=%d k=%d (max n=%d)", n, k, MaxRolls))
	}
	return factorials[n] / (factorials[k] * factorials[n-k])
}

// BinomialProbability returns the probability of exactly k successes in n independent
// trials with success probability p.
func BinomialProbability(p float64, n, k int) float64 {
	return float64(BinomialCoefficient(n, k)) * math.Pow(p, float64(k)) * math.Pow(1-p, float64(n-k))
}

// CumulativeGeometric returns the probability of at least one success in k trials.
func CumulativeGeometric(p float64, k int) float64 {
	return 1 - math.Pow(1-p, float64(k))
}
