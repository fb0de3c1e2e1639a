package poisson

import (
	"fmt"
	"testing"

	"gonum.org/v1/gonum/diff/fd"
	"gonum.org/v1/gonum/floats"
)

var diffParams = [][]float64{{1, 0}, {0, 1}, {1, 1}, {-1, 1}}

// The analytic score must agree with a numerical gradient of the
// log-likelihood.
func TestScoreGrad(t *testing.T) {

	y, x, na := data3()
	model := NewModel(y, x, na).Done()

	p := model.NumParams()
	ngrad := make([]float64, p)
	score := make([]float64, p)

	loglike := func(coeff []float64) float64 {
		return model.LogLike(coeff)
	}

	for _, params := range diffParams {
		fd.Gradient(ngrad, loglike, params, nil)
		model.Score(params, score)
		if !floats.EqualApprox(score, ngrad, 1e-5) {
			fmt.Printf("Numerical:  %v\n", ngrad)
			fmt.Printf("Analytical: %v\n", score)
			t.Fail()
		}
	}
}

// The analytic Hessian must agree with central differences of the
// score.
func TestHessianDiff(t *testing.T) {

	y, x, na := data3()
	model := NewModel(y, x, na).Done()

	p := model.NumParams()
	hess := make([]float64, p*p)
	nhess := make([]float64, p*p)
	s0 := make([]float64, p)
	s1 := make([]float64, p)

	h := 1e-5

	for _, params := range diffParams {

		model.Hessian(params, hess)

		for j := 0; j < p; j++ {
			pt := make([]float64, p)
			copy(pt, params)
			pt[j] += h
			model.Score(pt, s1)
			pt[j] -= 2 * h
			model.Score(pt, s0)
			for k := 0; k < p; k++ {
				nhess[j*p+k] = (s1[k] - s0[k]) / (2 * h)
			}
		}

		if !floats.EqualApprox(hess, nhess, 1e-4) {
			fmt.Printf("Numerical:  %v\n", nhess)
			fmt.Printf("Analytical: %v\n", hess)
			t.Fail()
		}
	}
}
