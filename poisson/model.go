package poisson

import (
	"fmt"
	"log"
	"math"
	"strings"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/optimize"
)

// maxLinPred caps the linear predictor before exponentiation.  exp
// overflows float64 just above 709, so rates are saturated at
// exp(maxLinPred) and the log-likelihood stays finite there.  The
// resulting value is a large penalty that steers an optimizer back
// toward the interior of the parameter space.
const maxLinPred = 700

// Model represents a Poisson regression model with a log link.
type Model struct {

	// The observed counts
	y []float64

	// The covariates, stored by column.  The caller includes a
	// column of 1's if an intercept is desired.
	x [][]float64

	// Names of the covariates
	xnames []string

	// Starting values, optional
	start []float64

	// Either irls (the default) or gradient
	fitMethod string

	// Optimization settings for the gradient method
	settings *optimize.Settings

	// Optimization method for the gradient method
	method optimize.Method

	// If not nil, write progress messages here
	log *log.Logger
}

// NewModel returns a Poisson regression model for the given counts
// and covariates.  The covariates are given by column and must each
// have the same length as y.  Call Done to validate the model before
// fitting.
func NewModel(y []float64, x [][]float64, xnames []string) *Model {
	return &Model{
		y:         y,
		x:         x,
		xnames:    xnames,
		fitMethod: "irls",
	}
}

// Start sets starting values for the fitting algorithm.  The default
// starting point is the zero vector.
func (m *Model) Start(start []float64) *Model {
	m.start = start
	return m
}

// FitMethod sets the fitting method, either IRLS or gradient.
func (m *Model) FitMethod(method string) *Model {
	lmethod := strings.ToLower(method)
	if lmethod != "irls" && lmethod != "gradient" {
		panic(fmt.Sprintf("poisson: fitting method %s not allowed\n", method))
	}
	m.fitMethod = lmethod
	return m
}

// OptSettings allows the caller to provide settings for the gradient
// optimizer.
func (m *Model) OptSettings(s *optimize.Settings) *Model {
	m.settings = s
	return m
}

// OptMethod sets the optimization method from gonum optimize used by
// the gradient fitting method.
func (m *Model) OptMethod(method optimize.Method) *Model {
	m.method = method
	return m
}

// Log takes a logger that will receive progress messages during
// fitting.  By default nothing is logged.
func (m *Model) Log(log *log.Logger) *Model {
	m.log = log
	return m
}

// Done completes the definition of the model, checking the shapes and
// values of the data.  After calling Done the model can be fit by
// calling Fit.
func (m *Model) Done() *Model {

	if len(m.xnames) != len(m.x) {
		panic(fmt.Sprintf("poisson: %d covariate names given for %d covariates\n",
			len(m.xnames), len(m.x)))
	}

	for j, xcol := range m.x {
		if len(xcol) != len(m.y) {
			panic(fmt.Sprintf("poisson: covariate %s has length %d, but there are %d responses\n",
				m.xnames[j], len(xcol), len(m.y)))
		}
	}

	for i, yv := range m.y {
		if yv < 0 || yv != math.Floor(yv) {
			panic(fmt.Sprintf("poisson: response value %v in position %d is not a non-negative integer count\n",
				yv, i))
		}
	}

	if len(m.start) == 0 {
		m.start = make([]float64, m.NumParams())
	} else if len(m.start) != m.NumParams() {
		panic(fmt.Sprintf("poisson: %d starting values given for %d parameters\n",
			len(m.start), m.NumParams()))
	}

	return m
}

// NumParams returns the number of covariates in the model.
func (m *Model) NumParams() int {
	return len(m.x)
}

// NumObs returns the number of observations in the model.
func (m *Model) NumObs() int {
	return len(m.y)
}

// XNames returns the names of the covariates in the model.
func (m *Model) XNames() []string {
	return m.xnames
}

// linPred fills lp with the linear predictor at the given coefficient
// vector, clamped at maxLinPred.
func (m *Model) linPred(coeff, lp []float64) {
	zero(lp)
	for j, xcol := range m.x {
		floats.AddScaled(lp, coeff[j], xcol)
	}
	for i, v := range lp {
		if v > maxLinPred {
			lp[i] = maxLinPred
		}
	}
}

// LogLike returns the Poisson log-likelihood at the given coefficient
// vector.  The factorial terms are computed through the log-gamma
// function so large counts do not overflow.  If the model has no
// observations or no covariates the result is zero (an empty sum).
// The result is always finite: linear predictors are clamped at
// maxLinPred and the sum is floored at -MaxFloat64.
func (m *Model) LogLike(coeff []float64) float64 {

	if len(m.y) == 0 || len(m.x) == 0 {
		return 0
	}

	lp := make([]float64, len(m.y))
	m.linPred(coeff, lp)

	var ll float64
	for i, y := range m.y {
		g, _ := math.Lgamma(y + 1)
		ll += y*lp[i] - math.Exp(lp[i]) - g
	}

	// The penalties of many saturated rows can overflow when summed.
	if !(ll >= -math.MaxFloat64) {
		ll = -math.MaxFloat64
	}

	return ll
}

// Score computes the score vector (the gradient of the
// log-likelihood) at the given coefficient vector, storing it in
// score.
func (m *Model) Score(coeff, score []float64) {

	zero(score)
	if len(m.y) == 0 || len(m.x) == 0 {
		return
	}

	lp := make([]float64, len(m.y))
	m.linPred(coeff, lp)

	for i, y := range m.y {
		r := y - math.Exp(lp[i])
		for j, xcol := range m.x {
			score[j] += r * xcol[i]
		}
	}
}

// Hessian computes the Hessian matrix of the log-likelihood at the
// given coefficient vector, storing its vectorized form in hess.  For
// the canonical log link the observed and expected Hessians coincide,
// so a single form serves both purposes.
func (m *Model) Hessian(coeff, hess []float64) {

	zero(hess)
	if len(m.y) == 0 || len(m.x) == 0 {
		return
	}

	nvar := m.NumParams()
	lp := make([]float64, len(m.y))
	m.linPred(coeff, lp)

	for i := range m.y {
		lam := math.Exp(lp[i])
		for j1 := 0; j1 < nvar; j1++ {
			for j2 := 0; j2 <= j1; j2++ {
				hess[j1*nvar+j2] -= lam * m.x[j1][i] * m.x[j2][i]
			}
		}
	}

	// Fill in the upper triangle
	for j1 := 0; j1 < nvar; j1++ {
		for j2 := 0; j2 < j1; j2++ {
			hess[j2*nvar+j1] = hess[j1*nvar+j2]
		}
	}
}

// zero sets all elements of the slice to 0.
func zero(x []float64) {
	for i := range x {
		x[i] = 0
	}
}
