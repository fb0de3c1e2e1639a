package poisson

import (
	"math"

	"gonum.org/v1/gonum/mat"
)

// fitIRLS fits the model by iteratively reweighted least squares.
// For the log link the working weights are the fitted rates
// themselves.  Convergence is declared when the deviance changes by
// less than dtol between iterations; if the iteration budget runs out
// first, the last parameter value is returned with a false flag.
func (m *Model) fitIRLS(start []float64, maxiter int) ([]float64, bool) {

	dtol := 1e-8

	nvar := m.NumParams()
	n := m.NumObs()

	linpred := make([]float64, n)
	mn := make([]float64, n)
	irlsw := make([]float64, n)
	adjy := make([]float64, n)

	xty := make([]float64, nvar)
	xtx := make([]float64, nvar*nvar)

	params := make([]float64, nvar)
	copy(params, start)

	var nparam mat.VecDense
	var dev []float64

	for iter := 0; iter < maxiter; iter++ {

		zero(xtx)
		zero(xty)

		m.linPred(params, linpred)

		if iter == 0 {
			m.startingMu(mn)
		} else {
			for i := range linpred {
				mn[i] = math.Exp(linpred[i])
			}
		}

		// Weights and adjusted response for WLS
		for i, y := range m.y {
			irlsw[i] = mn[i]
			adjy[i] = linpred[i] + (y-mn[i])/mn[i]
		}

		// Update the weighted moment matrices
		for j1 := 0; j1 < nvar; j1++ {

			xda := m.x[j1]
			var u float64
			for i := range adjy {
				u += adjy[i] * xda[i] * irlsw[i]
			}
			xty[j1] += u

			for j2 := 0; j2 <= j1; j2++ {
				xdb := m.x[j2]
				var v float64
				for i := range xda {
					v += xda[i] * xdb[i] * irlsw[i]
				}
				xtx[j1*nvar+j2] += v
			}
		}

		// Fill in the unfilled triangle of xtx
		for j1 := 0; j1 < nvar; j1++ {
			for j2 := j1 + 1; j2 < nvar; j2++ {
				xtx[j1*nvar+j2] = xtx[j2*nvar+j1]
			}
		}

		// Update the parameters
		xtxm := mat.NewDense(nvar, nvar, xtx)
		xtyv := mat.NewVecDense(nvar, xty)
		if err := nparam.SolveVec(xtxm, xtyv); err != nil {
			// Singular weighted design; report the last point.
			if m.log != nil {
				m.log.Printf("IRLS stopped at iteration %d: %v\n", iter+1, err)
			}
			return params, false
		}
		copy(params, nparam.RawVector().Data)

		// Check convergence
		devi := m.deviance(mn)
		dev = append(dev, devi)
		if m.log != nil {
			m.log.Printf("IRLS iteration %d: deviance=%.10f\n", iter+1, devi)
		}
		if len(dev) > 2 && math.Abs(dev[len(dev)-1]-dev[len(dev)-2]) < dtol {
			if m.log != nil {
				m.log.Print("IRLS converged\n")
			}
			return params, true
		}
	}

	return params, false
}

// deviance returns the Poisson deviance at the given fitted rates.
func (m *Model) deviance(mn []float64) float64 {

	var dev float64
	for i, y := range m.y {
		if y > 0 {
			dev += 2 * (y*math.Log(y/mn[i]) - (y - mn[i]))
		} else {
			dev += 2 * mn[i]
		}
	}

	return dev
}

// startingMu produces starting fitted rates for IRLS by shrinking the
// observed counts toward their mean, bounded away from zero.
func (m *Model) startingMu(mn []float64) {

	var q float64
	for _, y := range m.y {
		q += y
	}
	q /= float64(len(m.y))

	for i, y := range m.y {
		mn[i] = (y + q) / 2
		if mn[i] < 0.1 {
			mn[i] = 0.1
		}
	}
}
