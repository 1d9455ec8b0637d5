package main

import (
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/interp"
)

// fitCurve returns a smooth presentation curve over the discrete spectrum:
// a natural cubic spline when enough bins exist, a piecewise quadratic for
// small spectra, and nil slices when there are too few bins to interpolate.
// The dense axis spans the bin range at fitDensity points per bin.
func fitCurve(sp *spectrum) (xs, ys []float64) {
	n := len(sp.freqs)
	if n < fitMinBins {
		return nil, nil
	}
	xs = floats.Span(make([]float64, n*fitDensity), sp.freqs[0], sp.freqs[n-1])
	ys = make([]float64, len(xs))
	if n >= splineMinBins {
		var spline interp.NaturalCubic
		if err := spline.Fit(sp.freqs, sp.mags); err != nil {
			return nil, nil
		}
		for i, x := range xs {
			ys[i] = spline.Predict(x)
		}
		return xs, ys
	}
	for i, x := range xs {
		ys[i] = quadraticInterp(sp.freqs, sp.mags, x)
	}
	return xs, ys
}

// quadraticInterp evaluates a piecewise quadratic Lagrange interpolant
// through the three knots nearest x. Knots must be strictly increasing and
// there must be at least three of them.
func quadraticInterp(xs, ys []float64, x float64) float64 {
	n := len(xs)
	if x <= xs[0] {
		return ys[0]
	}
	if x >= xs[n-1] {
		return ys[n-1]
	}
	j := 1
	for j < n-1 && xs[j] < x {
		j++
	}
	if j > n-2 {
		j = n - 2
	}
	x0, x1, x2 := xs[j-1], xs[j], xs[j+1]
	y0, y1, y2 := ys[j-1], ys[j], ys[j+1]
	l0 := (x - x1) * (x - x2) / ((x0 - x1) * (x0 - x2))
	l1 := (x - x0) * (x - x2) / ((x1 - x0) * (x1 - x2))
	l2 := (x - x0) * (x - x1) / ((x2 - x0) * (x2 - x1))
	return y0*l0 + y1*l1 + y2*l2
}
