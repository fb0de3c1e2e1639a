package mle

import (
	"math"
	"testing"
)

func TestBisectMax(t *testing.T) {

	f := func(x float64) float64 {
		return -(x - 2) * (x - 2)
	}

	x, y, hist := BisectMax(f, 0, 1, 5, f(1), 1e-6)

	if math.Abs(x-2) > 1e-5 {
		t.Errorf("max located at %f, want 2", x)
	}
	if math.Abs(y) > 1e-8 {
		t.Errorf("max value %f, want 0", y)
	}
	if len(hist) == 0 {
		t.Error("no search history recorded")
	}
	for _, p := range hist {
		if p[1] != f(p[0]) {
			t.Error("history pair does not lie on the function")
		}
	}
}

func TestBisectMaxMonotone(t *testing.T) {

	// Strictly decreasing function: the search should walk to the
	// lower endpoint of the bracket.
	f := func(x float64) float64 {
		return -x
	}

	x, _, _ := BisectMax(f, 0.05, 5, 10, f(5), 1e-6)

	if x > 0.06 {
		t.Errorf("monotone search stopped at %f, want lower edge", x)
	}
}

func TestBisectRoot(t *testing.T) {

	f := func(x float64) float64 {
		return x*x - 2
	}

	x, hist := BisectRoot(f, 0, 2, f(0), f(2), 0, 1e-8)

	if math.Abs(x-math.Sqrt2) > 1e-7 {
		t.Errorf("root located at %f, want sqrt(2)", x)
	}
	if len(hist) == 0 {
		t.Error("no search history recorded")
	}
}

func TestBisectRootLevel(t *testing.T) {

	// Crossing a non-zero level on a decreasing function.
	f := func(x float64) float64 {
		return 10 - 3*x
	}

	x, _ := BisectRoot(f, 0, 5, f(0), f(5), 1, 1e-8)

	if math.Abs(x-3) > 1e-7 {
		t.Errorf("level crossing at %f, want 3", x)
	}
}
