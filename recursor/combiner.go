package recursor

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// ViterbiCombiner picks the single best-scoring transition at each
// cell; FillAlpha/FillBeta under it trace out the maximum-likelihood
// path, and Alignment's traceback is only meaningful for matrices filled
// with it.
type ViterbiCombiner struct{}

// Combine returns the maximum of scores, or Identity() if scores is
// empty.
func (ViterbiCombiner) Combine(scores ...float64) float64 {
	if len(scores) == 0 {
		return ViterbiCombiner{}.Identity()
	}
	best := scores[0]
	for _, s := range scores[1:] {
		if s > best {
			best = s
		}
	}
	return best
}

// Identity returns negative infinity.
func (ViterbiCombiner) Identity() float64 { return math.Inf(-1) }

// SumCombiner sums the probability mass of every transition into a
// cell in log-space, via a numerically stable log-sum-exp; FillAlpha
// under it computes the Forward algorithm's total sequence likelihood
// rather than a single best path.
type SumCombiner struct{}

// Combine returns the log-sum-exp of scores, or Identity() if scores is
// empty.
func (SumCombiner) Combine(scores ...float64) float64 {
	if len(scores) == 0 {
		return SumCombiner{}.Identity()
	}
	return floats.LogSumExp(scores)
}

// Identity returns negative infinity.
func (SumCombiner) Identity() float64 { return math.Inf(-1) }
