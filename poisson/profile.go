package poisson

import (
	"sort"

	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/poisreg/mle"
)

// RateProfiler supports profile likelihood analysis of the
// constant-rate model.  It records every point of the likelihood
// curve visited during its searches, which makes it convenient for
// plotting the curve around the maximum.
type RateProfiler struct {

	// The observed counts
	y []float64

	// The MLE of the rate
	rateMLE float64

	// The log-likelihood at the rate MLE
	maxLogLike float64

	// A sequence of (rate, log-likelihood) values that lie on the
	// profile curve, sorted by rate.
	Profile [][2]float64
}

// NewRateProfiler returns a RateProfiler for the counts in y,
// locating the rate MLE inside the bracket (lo, hi).  The bracket
// must satisfy 0 < lo < hi.
func NewRateProfiler(y []float64, lo, hi float64) *RateProfiler {

	checkRateBracket(lo, hi)

	rp := &RateProfiler{y: y}

	x1 := (lo + hi) / 2
	var hist [][2]float64
	rp.rateMLE, rp.maxLogLike, hist = mle.BisectMax(rp.LogLike, lo, x1, hi, rp.LogLike(x1), rateTol)
	rp.Profile = append(rp.Profile, hist...)
	rp.sortProfile()

	return rp
}

// LogLike returns the constant-rate log-likelihood at the given rate.
func (rp *RateProfiler) LogLike(lambda float64) float64 {
	return RateLogLike(rp.y, lambda)
}

// RateMLE returns the maximum likelihood estimate of the rate.
func (rp *RateProfiler) RateMLE() float64 {
	return rp.rateMLE
}

// MaxLogLike returns the log-likelihood value at the rate MLE.
func (rp *RateProfiler) MaxLogLike() float64 {
	return rp.maxLogLike
}

// ConfInt identifies rates r0, r1 that define a profile likelihood
// confidence interval for the rate at the given probability level.
// All points on the profile curve visited during the search are added
// to the Profile field.  If the likelihood never drops below the
// cutoff to the left of the estimate, as happens when every count is
// zero and the likelihood rises monotonically toward the origin, the
// lower limit is reported at the search floor rather than at a
// likelihood crossing.
func (rp *RateProfiler) ConfInt(prob float64) (float64, float64) {

	qp := distuv.ChiSquared{K: 1}.Quantile(prob) / 2

	// Left side.  The expansion is floored at rateTol: with no
	// likelihood drop toward the origin there is no crossing to
	// bracket.
	r0 := 0.9 * rp.rateMLE
	ll0 := rp.LogLike(r0)
	for ll0 > rp.maxLogLike-qp && r0 > rateTol {
		r0 *= 0.9
		ll0 = rp.LogLike(r0)
		rp.Profile = append(rp.Profile, [2]float64{r0, ll0})
	}
	var hist [][2]float64
	if ll0 <= rp.maxLogLike-qp {
		r0, hist = mle.BisectRoot(rp.LogLike, r0, rp.rateMLE, ll0, rp.maxLogLike, rp.maxLogLike-qp, rateTol)
		rp.Profile = append(rp.Profile, hist...)
	}

	// Right side
	r1 := 1.1 * rp.rateMLE
	ll1 := rp.LogLike(r1)
	for ll1 > rp.maxLogLike-qp {
		r1 *= 1.1
		ll1 = rp.LogLike(r1)
		rp.Profile = append(rp.Profile, [2]float64{r1, ll1})
	}
	r1, hist = mle.BisectRoot(rp.LogLike, rp.rateMLE, r1, rp.maxLogLike, ll1, rp.maxLogLike-qp, rateTol)
	rp.Profile = append(rp.Profile, hist...)

	rp.sortProfile()

	return r0, r1
}

func (rp *RateProfiler) sortProfile() {
	sort.Slice(rp.Profile, func(i, j int) bool {
		return rp.Profile[i][0] < rp.Profile[j][0]
	})
}
