package mle

// BisectMax locates a local maximum of f inside the bracket (x0, x2)
// by bisection.  x1 must lie strictly inside the bracket and y1 must
// equal f(x1).  If f is monotone on the bracket the search walks to
// the better endpoint.  The search stops when the bracket is narrower
// than xtol.  The returned values are the located point, the function
// value there, and the (x, f(x)) pairs visited during the search.
func BisectMax(f func(float64) float64, x0, x1, x2, y1, xtol float64) (float64, float64, [][2]float64) {

	var hist [][2]float64

	for x2-x0 > xtol {
		if x2-x1 > x1-x0 {
			x := (x1 + x2) / 2
			y := f(x)
			hist = append(hist, [2]float64{x, y})
			if y > y1 {
				x0 = x1
				y1 = y
				x1 = x
			} else {
				x2 = x
			}
		} else {
			x := (x0 + x1) / 2
			y := f(x)
			hist = append(hist, [2]float64{x, y})
			if y > y1 {
				x2 = x1
				y1 = y
				x1 = x
			} else {
				x0 = x
			}
		}
	}

	return x1, y1, hist
}

// BisectRoot locates a point where f crosses the level yt inside the
// bracket (x0, x1), with y0 = f(x0) and y1 = f(x1) on opposite sides
// of yt.  The search stops when the bracket is narrower than xtol.
// The visited (x, f(x)) pairs are returned with the located point.
func BisectRoot(f func(float64) float64, x0, x1, y0, y1, yt, xtol float64) (float64, [][2]float64) {

	if (y0-yt)*(y1-yt) > 0 {
		panic("mle: BisectRoot bracket does not straddle the target level")
	}

	var hist [][2]float64

	for x1-x0 > xtol {
		x := (x0 + x1) / 2
		y := f(x)
		hist = append(hist, [2]float64{x, y})
		if (y-yt)*(y0-yt) > 0 {
			x0 = x
			y0 = y
		} else {
			x1 = x
		}
	}

	return (x0 + x1) / 2, hist
}
