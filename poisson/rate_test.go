package poisson

import (
	"math"
	"testing"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"
)

func mean(y []float64) float64 {
	var m float64
	for _, v := range y {
		m += v
	}
	return m / float64(len(y))
}

// The MLE of a constant Poisson rate is the sample mean.
func TestRateMean(t *testing.T) {

	y := []float64{2, 3, 1, 4, 2}

	lam, ll := FitRate(y, 0.1, 10)

	if !scalarClose(lam, 2.4, 1e-4) {
		t.Errorf("rate %v, want 2.4", lam)
	}
	if !scalarClose(ll, RateLogLike(y, 2.4), 1e-6) {
		t.Errorf("loglike %v, want %v", ll, RateLogLike(y, 2.4))
	}

	// The likelihood is unimodal around the optimum.
	if ll <= RateLogLike(y, 1.0) || ll <= RateLogLike(y, 5.0) {
		t.Error("log-likelihood at the MLE does not dominate nearby rates")
	}
}

func TestRateSparse(t *testing.T) {

	y := []float64{0, 1, 0, 2, 0, 1, 0, 0, 3, 0}

	lam, _ := FitRate(y, 0.1, 10)

	if !scalarClose(lam, mean(y), 1e-4) {
		t.Errorf("rate %v, want %v", lam, mean(y))
	}
	if !scalarClose(lam, 0.7, 1e-4) {
		t.Errorf("rate %v, want 0.7", lam)
	}
}

// For an all-zero series the likelihood increases as the rate
// approaches zero, so the search runs to the lower edge of the
// bracket without producing NaN.
func TestRateAllZero(t *testing.T) {

	y := make([]float64, 20)

	lam, ll := FitRate(y, 0.05, 10)

	if lam > 0.06 {
		t.Errorf("rate %v, want the lower bracket edge", lam)
	}
	if math.IsNaN(ll) || math.IsInf(ll, 0) {
		t.Errorf("loglike %v is not finite", ll)
	}
}

// Rates outside the positive domain are rejected with a -Inf
// sentinel, not an error.
func TestRateDomain(t *testing.T) {

	y := []float64{1, 2, 3}

	for _, lam := range []float64{0, -1, -0.0001} {
		if !math.IsInf(RateLogLike(y, lam), -1) {
			t.Errorf("RateLogLike(%v) should be -Inf", lam)
		}
	}
}

func TestRateBracketValidation(t *testing.T) {

	defer func() {
		if recover() == nil {
			t.Error("expected panic for a non-positive bracket")
		}
	}()

	FitRate([]float64{1, 2}, -1, 10)
}

// With growing samples from a known Poisson distribution, the
// estimated rate approaches the truth and always equals the sample
// mean.
func TestRateConsistency(t *testing.T) {

	src := rand.NewSource(4523745)
	dist := distuv.Poisson{Lambda: 3.5, Src: src}

	n := 2000
	y := make([]float64, n)
	for i := range y {
		y[i] = dist.Rand()
	}

	lam, _ := FitRate(y, 0.1, 10)

	if !scalarClose(lam, mean(y), 1e-4) {
		t.Errorf("rate %v does not match the sample mean %v", lam, mean(y))
	}
	if !scalarClose(lam, 3.5, 0.15) {
		t.Errorf("rate %v too far from the true rate 3.5", lam)
	}
}

// Sampled regression data recover the generating coefficients.
func TestRegressionConsistency(t *testing.T) {

	rng := rand.New(rand.NewSource(909492))

	n := 2000
	icept := make([]float64, n)
	x1 := make([]float64, n)
	y := make([]float64, n)

	for i := 0; i < n; i++ {
		icept[i] = 1
		x1[i] = rng.NormFloat64()

		lam := math.Exp(0.5 + 0.3*x1[i])
		dist := distuv.Poisson{Lambda: lam, Src: rng}
		y[i] = dist.Rand()
	}

	model := NewModel(y, [][]float64{icept, x1}, []string{"icept", "x1"}).Done()
	result := model.Fit()

	if !result.Converged() {
		t.Fatal("fit did not converge")
	}
	if !scalarClose(result.Params()[0], 0.5, 0.1) || !scalarClose(result.Params()[1], 0.3, 0.1) {
		t.Errorf("recovered coefficients %v too far from {0.5, 0.3}", result.Params())
	}
}
