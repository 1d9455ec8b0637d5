package main

import (
	"math"
	"testing"
)

func testSpectrum(n int) *spectrum {
	sp := &spectrum{
		freqs: make([]float64, n),
		mags:  make([]float64, n),
	}
	for i := range sp.freqs {
		sp.freqs[i] = float64(i) * 4
		sp.mags[i] = math.Abs(math.Sin(float64(i) * 0.7))
	}
	return sp
}

func TestFitCurveSkipsTinySpectra(t *testing.T) {
	for _, n := range []int{0, 1, 2, 3} {
		xs, ys := fitCurve(testSpectrum(n))
		if xs != nil || ys != nil {
			t.Fatalf("n=%d: expected no fit curve", n)
		}
	}
}

func TestFitCurveQuadratic(t *testing.T) {
	sp := testSpectrum(5)
	xs, ys := fitCurve(sp)
	if len(xs) != 5*fitDensity {
		t.Fatalf("dense axis len = %d, want %d", len(xs), 5*fitDensity)
	}
	if len(ys) != len(xs) {
		t.Fatalf("ys len = %d, want %d", len(ys), len(xs))
	}
	if xs[0] != sp.freqs[0] || xs[len(xs)-1] != sp.freqs[4] {
		t.Fatalf("dense axis spans [%v, %v], want [%v, %v]", xs[0], xs[len(xs)-1], sp.freqs[0], sp.freqs[4])
	}
	if math.Abs(ys[0]-sp.mags[0]) > 1e-9 {
		t.Fatalf("curve start = %v, want %v", ys[0], sp.mags[0])
	}
	if math.Abs(ys[len(ys)-1]-sp.mags[4]) > 1e-9 {
		t.Fatalf("curve end = %v, want %v", ys[len(ys)-1], sp.mags[4])
	}
}

func TestFitCurveSpline(t *testing.T) {
	sp := testSpectrum(16)
	xs, ys := fitCurve(sp)
	if len(xs) != 16*fitDensity {
		t.Fatalf("dense axis len = %d, want %d", len(xs), 16*fitDensity)
	}
	if math.Abs(ys[0]-sp.mags[0]) > 1e-9 {
		t.Fatalf("curve start = %v, want %v", ys[0], sp.mags[0])
	}
	if math.Abs(ys[len(ys)-1]-sp.mags[15]) > 1e-9 {
		t.Fatalf("curve end = %v, want %v", ys[len(ys)-1], sp.mags[15])
	}
	for i, y := range ys {
		if math.IsNaN(y) || math.IsInf(y, 0) {
			t.Fatalf("non-finite curve value at %d: %v", i, y)
		}
	}
}

func TestQuadraticInterpHitsKnots(t *testing.T) {
	xs := []float64{0, 4, 8, 12, 16}
	ys := []float64{0.1, 0.9, 0.3, 0.7, 0.2}
	for i := range xs {
		got := quadraticInterp(xs, ys, xs[i])
		if math.Abs(got-ys[i]) > 1e-9 {
			t.Fatalf("knot %d: got %v, want %v", i, got, ys[i])
		}
	}
}
