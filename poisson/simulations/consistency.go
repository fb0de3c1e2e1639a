//go:build ignore

/*
This simulation generates counts from a Poisson regression model with
known coefficients, fits the model with both fitting methods, and
reports how well the coefficients are recovered.
*/

package main

import (
	"fmt"
	"math"

	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/statkit/poisreg/poisson"
)

var rng *rand.Rand

type dataset struct {
	y      []float64
	x      [][]float64
	xnames []string
}

func simulate(n int) dataset {

	icept := make([]float64, n)
	x1 := make([]float64, n)
	x2 := make([]float64, n)
	y := make([]float64, n)

	for i := 0; i < n; i++ {
		icept[i] = 1
		x1[i] = rng.NormFloat64()
		x2[i] = rng.NormFloat64()

		lam := math.Exp(0.5 + 0.3*x1[i] - 0.2*x2[i])
		po := distuv.Poisson{Lambda: lam, Src: rng}
		y[i] = po.Rand()
	}

	return dataset{
		y:      y,
		x:      [][]float64{icept, x1, x2},
		xnames: []string{"icept", "x1", "x2"},
	}
}

func main() {

	rng = rand.New(rand.NewSource(4523745))

	n := 5000
	data := simulate(n)

	for _, fmeth := range []string{"irls", "gradient"} {
		model := poisson.NewModel(data.y, data.x, data.xnames).FitMethod(fmeth).Done()
		result := model.Fit()
		fmt.Printf("Method: %s\n", fmeth)
		fmt.Printf("%v\n", result.Summary())
	}

	// The constant-rate MLE is the sample mean of the counts.
	lam, ll := poisson.FitRate(data.y, 0.1, 10)
	fmt.Printf("Constant rate MLE: %f (loglike %f)\n", lam, ll)
}
