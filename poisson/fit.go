package poisson

import (
	"fmt"
	"math"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"

	"github.com/statkit/poisreg/mle"
)

// Results describes the results of fitting a Poisson regression model.
type Results struct {
	mle.BaseResults
}

// Fit estimates the coefficients of the model by maximizing the
// log-likelihood and returns a results value.  If the fitting
// procedure stops before meeting its convergence tolerances, the
// point it last produced is still returned, with Converged reporting
// false.
func (m *Model) Fit() *Results {

	if m.NumParams() == 0 {
		r := mle.NewBaseResults(m, m.LogLike(nil), nil, true, nil)
		return &Results{BaseResults: r}
	}

	var params []float64
	var converged bool

	switch m.fitMethod {
	case "gradient":
		if m.log != nil {
			m.log.Print("Fitting using gradient optimization\n")
		}
		params, converged = m.fitGradient(m.start)
	default:
		if m.log != nil {
			m.log.Print("Fitting using IRLS\n")
		}
		params, converged = m.fitIRLS(m.start, 100)
	}

	ll := m.LogLike(params)

	vcov, err := mle.GetVcov(m, params)
	if err != nil {
		vcov = nil
	}

	return &Results{
		BaseResults: mle.NewBaseResults(m, ll, params, converged, vcov),
	}
}

// fitGradient uses gradient-based optimization to maximize the
// log-likelihood, by minimizing its negation.  The search is
// unconstrained: the log link guarantees positive rates for any
// coefficient vector.
func (m *Model) fitGradient(start []float64) ([]float64, bool) {

	p := optimize.Problem{
		Func: func(x []float64) float64 {
			return -m.LogLike(x)
		},
		Grad: func(grad, x []float64) {
			m.Score(x, grad)
			floats.Scale(-1, grad)
		},
	}

	settings := m.settings
	if settings == nil {
		settings = &optimize.Settings{
			GradientThreshold: 1e-6,
			MajorIterations:   200,
		}
	}

	method := m.method
	if method == nil {
		method = &optimize.BFGS{}
	}

	optrslt, err := optimize.Minimize(p, start, settings, method)
	if optrslt == nil {
		panic(err)
	}

	params := make([]float64, len(optrslt.X))
	copy(params, optrslt.X)

	converged := err == nil
	switch optrslt.Status {
	case optimize.Success, optimize.FunctionThreshold, optimize.FunctionConvergence,
		optimize.GradientThreshold, optimize.StepConvergence, optimize.MethodConverge:
	default:
		converged = false
	}

	if m.log != nil {
		m.log.Printf("Gradient optimization finished with status %v\n", optrslt.Status)
	}

	return params, converged
}

// FittedRates returns the fitted mean count for every observation in
// the training data.
func (rslt *Results) FittedRates() []float64 {

	m := rslt.Model().(*Model)

	rates := make([]float64, m.NumObs())
	m.linPred(rslt.Params(), rates)
	for i, v := range rates {
		rates[i] = math.Exp(v)
	}

	return rates
}

// Summary produces a table describing the fitted model.
func (rslt *Results) Summary() *mle.SummaryTable {

	m := rslt.Model().(*Model)

	sum := &mle.SummaryTable{
		Title: "Poisson regression analysis",
		Top: []string{
			"Family:    Poisson",
			"Link:      Log",
			fmt.Sprintf("Num obs:   %d", m.NumObs()),
			fmt.Sprintf("Log-like:  %.4f", rslt.LogLike()),
			fmt.Sprintf("Converged: %t", rslt.Converged()),
		},
	}

	fnum := func(x []float64) []string {
		var s []string
		for _, v := range x {
			s = append(s, fmt.Sprintf("%.4f", v))
		}
		return s
	}

	if rslt.VCov() != nil {
		par := rslt.Params()
		se := rslt.StdErr()
		lcb := make([]float64, len(par))
		ucb := make([]float64, len(par))
		for j := range par {
			lcb[j] = par[j] - 2*se[j]
			ucb[j] = par[j] + 2*se[j]
		}

		sum.ColNames = []string{"Variable", "Estimate", "SE", "LCB", "UCB", "Z-score", "P-value"}
		sum.Cols = [][]string{
			rslt.Names(),
			fnum(par),
			fnum(se),
			fnum(lcb),
			fnum(ucb),
			fnum(rslt.ZScores()),
			fnum(rslt.PValues()),
		}
	} else {
		sum.ColNames = []string{"Variable", "Estimate"}
		sum.Cols = [][]string{rslt.Names(), fnum(rslt.Params())}
		sum.Msg = append(sum.Msg, "Standard errors are not available")
	}

	if !rslt.Converged() {
		sum.Msg = append(sum.Msg, "Fitting did not converge, estimates may be unreliable")
	}

	return sum
}
