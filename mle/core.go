package mle

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// LogLiker is a model whose parameters can be estimated by maximizing
// a log-likelihood surface.
type LogLiker interface {

	// Number of parameters in the model.
	NumParams() int

	// Number of observations in the data set.
	NumObs() int

	// Names of the covariates, aligned with the parameter vector.
	XNames() []string

	// The log-likelihood at the given parameter vector.
	LogLike(params []float64) float64

	// The score vector (gradient of the log-likelihood) at the given
	// parameter vector, written into the second argument.
	Score(params, score []float64)

	// The Hessian matrix of the log-likelihood at the given parameter
	// vector, written in vectorized (row-major) form into the second
	// argument, which must have length NumParams squared.
	Hessian(params, hess []float64)
}

// BaseResults contains the quantities produced by fitting a model to
// data.
type BaseResults struct {
	model     LogLiker
	loglike   float64
	params    []float64
	converged bool
	vcov      []float64

	stderr  []float64
	zscores []float64
	pvalues []float64
}

// NewBaseResults returns a BaseResults for the given fitted model.
// The vcov argument may be nil if no covariance matrix is available,
// in which case the standard errors, Z-scores, and p-values are nil.
func NewBaseResults(model LogLiker, loglike float64, params []float64, converged bool, vcov []float64) BaseResults {
	return BaseResults{
		model:     model,
		loglike:   loglike,
		params:    params,
		converged: converged,
		vcov:      vcov,
	}
}

// Model returns the model that was fit to produce these results.
func (rslt *BaseResults) Model() LogLiker {
	return rslt.model
}

// Params returns the point estimates of the model parameters.
func (rslt *BaseResults) Params() []float64 {
	return rslt.params
}

// LogLike returns the maximized log-likelihood value.
func (rslt *BaseResults) LogLike() float64 {
	return rslt.loglike
}

// Converged reports whether the fitting procedure met its convergence
// tolerances.  When false, the parameters are the last point the
// procedure produced and should be interpreted with care.
func (rslt *BaseResults) Converged() bool {
	return rslt.converged
}

// Names returns the names of the covariates in the model.
func (rslt *BaseResults) Names() []string {
	return rslt.model.XNames()
}

// VCov returns the sampling variance/covariance matrix of the
// parameter estimates, vectorized to one dimension, or nil if it is
// not available.
func (rslt *BaseResults) VCov() []float64 {
	return rslt.vcov
}

// StdErr returns the standard errors of the parameter estimates.
func (rslt *BaseResults) StdErr() []float64 {

	// No vcov, no standard errors
	if rslt.vcov == nil {
		return nil
	}

	if rslt.stderr != nil {
		return rslt.stderr
	}

	p := rslt.model.NumParams()
	rslt.stderr = make([]float64, p)
	for i := range rslt.stderr {
		rslt.stderr[i] = math.Sqrt(rslt.vcov[i*p+i])
	}

	return rslt.stderr
}

// ZScores returns the parameter estimates divided by their standard
// errors.
func (rslt *BaseResults) ZScores() []float64 {

	if rslt.vcov == nil {
		return nil
	}

	if rslt.zscores != nil {
		return rslt.zscores
	}

	std := rslt.StdErr()
	rslt.zscores = make([]float64, len(std))
	for i := range std {
		rslt.zscores[i] = rslt.params[i] / std[i]
	}

	return rslt.zscores
}

func normcdf(x float64) float64 {
	return 0.5 * math.Erfc(-x/math.Sqrt(2))
}

// PValues returns the p-values for the null hypothesis that each
// parameter's population value is zero.
func (rslt *BaseResults) PValues() []float64 {

	if rslt.vcov == nil {
		return nil
	}

	if rslt.pvalues != nil {
		return rslt.pvalues
	}

	z := rslt.ZScores()
	rslt.pvalues = make([]float64, len(z))
	for i := range z {
		rslt.pvalues[i] = 2 * normcdf(-math.Abs(z[i]))
	}

	return rslt.pvalues
}

// GetVcov returns the sampling variance/covariance matrix of the
// parameter estimates at the given point, obtained by inverting the
// negated Hessian of the log-likelihood.  The matrix is vectorized to
// one dimension.
func GetVcov(model LogLiker, params []float64) ([]float64, error) {
	nvar := model.NumParams()
	hess := make([]float64, nvar*nvar)
	model.Hessian(params, hess)
	hmat := mat.NewDense(nvar, nvar, hess)
	hessi := make([]float64, nvar*nvar)
	himat := mat.NewDense(nvar, nvar, hessi)
	if err := himat.Inverse(hmat); err != nil {
		return nil, err
	}
	himat.Scale(-1, himat)

	return hessi, nil
}
