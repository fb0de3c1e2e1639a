/*
This example analyzes firm-level patent counts.  The number of patents
granted to a firm is regressed on the log of its R&D spending and an
indicator of whether it operates in the science sector, using a
Poisson model with the canonical log link.

As a companion, the constant-rate likelihood curve is profiled and
plotted, with the maximum at the sample mean of the counts.

The input file patents.csv has a header row and float columns named
patents, lrnd, and science.
*/

package main

import (
	"fmt"
	"os"

	"github.com/kshedden/dstream/dstream"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"

	"github.com/statkit/poisreg/poisson"
)

func getData() ([]float64, [][]float64, []string) {

	fid, err := os.Open("patents.csv")
	if err != nil {
		panic(err)
	}
	defer fid.Close()

	types := []dstream.VarType{
		{Name: "patents", Type: dstream.Float64},
		{Name: "lrnd", Type: dstream.Float64},
		{Name: "science", Type: dstream.Float64},
	}

	da := dstream.FromCSV(fid).SetTypes(types).ChunkSize(100).HasHeader().Done()

	pos := make(map[string]int)
	for k, na := range da.Names() {
		pos[na] = k
	}

	var y, lrnd, science []float64
	for da.Next() {
		y = append(y, da.GetPos(pos["patents"]).([]float64)...)
		lrnd = append(lrnd, da.GetPos(pos["lrnd"]).([]float64)...)
		science = append(science, da.GetPos(pos["science"]).([]float64)...)
	}

	icept := make([]float64, len(y))
	for i := range icept {
		icept[i] = 1
	}

	x := [][]float64{icept, lrnd, science}
	xnames := []string{"icept", "lrnd", "science"}

	return y, x, xnames
}

func profilePlot(profile [][2]float64, mle float64, filename string) {

	p := plot.New()
	p.Title.Text = fmt.Sprintf("Constant-rate log-likelihood (MLE=%.3f)", mle)
	p.X.Label.Text = "Rate"
	p.Y.Label.Text = "Log-likelihood"

	pts := make(plotter.XYs, len(profile))
	for i, q := range profile {
		pts[i].X = q[0]
		pts[i].Y = q[1]
	}

	if err := plotutil.AddLinePoints(p, pts); err != nil {
		panic(err)
	}

	if err := p.Save(6*vg.Inch, 4*vg.Inch, filename); err != nil {
		panic(err)
	}
}

func main() {

	y, x, xnames := getData()

	model := poisson.NewModel(y, x, xnames).Done()
	result := model.Fit()
	fmt.Printf("%v\n", result.Summary())

	// Companion view: the likelihood of a single shared rate.
	rp := poisson.NewRateProfiler(y, 0.1, 10)
	fmt.Printf("Constant rate MLE: %f\n", rp.RateMLE())

	lcb, ucb := rp.ConfInt(0.95)
	fmt.Printf("95%% profile confidence interval: %f, %f\n", lcb, ucb)

	profilePlot(rp.Profile, rp.RateMLE(), "rate_profile.pdf")
}
