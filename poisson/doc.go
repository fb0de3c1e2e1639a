// Package poisson fits Poisson regression models by maximum
// likelihood.  The mean of each observed count is tied to a linear
// combination of covariates through the exponential function (the
// canonical log link), and the coefficients are estimated by directly
// maximizing the Poisson log-likelihood, either with iteratively
// reweighted least squares or with a gradient-based optimizer.
//
// The package also estimates a single constant rate with no
// covariates, searching directly in rate space over a bounded
// interval, together with profile likelihood utilities that are
// useful for visualizing the likelihood curve around the estimate.
package poisson
