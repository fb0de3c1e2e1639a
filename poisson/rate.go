package poisson

import (
	"fmt"
	"math"

	"github.com/statkit/poisreg/mle"
)

// rateTol is the bracket width at which the one-dimensional rate
// searches stop.
const rateTol = 1e-6

// RateLogLike returns the Poisson log-likelihood of the constant-rate
// model in which every count in y shares the rate lambda.  This
// evaluator works directly in rate space, where only positive rates
// are meaningful; lambda <= 0 yields -Inf so that a maximizer treats
// such points as no improvement and keeps searching the valid domain.
func RateLogLike(y []float64, lambda float64) float64 {

	if lambda <= 0 {
		return math.Inf(-1)
	}

	llam := math.Log(lambda)

	var ll float64
	for _, yv := range y {
		g, _ := math.Lgamma(yv + 1)
		ll += yv*llam - lambda - g
	}

	return ll
}

// FitRate estimates a single Poisson rate for the counts in y by
// maximizing the likelihood over the bracket (lo, hi), which must
// satisfy 0 < lo < hi.  The maximum likelihood estimate of a constant
// rate is the sample mean of the counts, so the bracket should
// contain it; if the maximum lies outside the bracket the search
// stops at the nearer edge.  The located rate and the log-likelihood
// attained there are returned.
func FitRate(y []float64, lo, hi float64) (float64, float64) {

	checkRateBracket(lo, hi)

	f := func(lam float64) float64 {
		return RateLogLike(y, lam)
	}

	x1 := (lo + hi) / 2
	lam, ll, _ := mle.BisectMax(f, lo, x1, hi, f(x1), rateTol)

	return lam, ll
}

func checkRateBracket(lo, hi float64) {
	if lo <= 0 || hi <= lo {
		panic(fmt.Sprintf("poisson: invalid rate bracket (%v, %v), need 0 < lo < hi\n", lo, hi))
	}
}
