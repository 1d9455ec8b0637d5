package main

import "math"

// Experiment and rendering configuration constants used throughout the
// application. These values define the analytic signal, the adjustment steps
// for the sampling parameters, and the plot canvas geometry.
const (
	f1Hz       = 1000.0
	f2Hz       = 1100.0
	phaseRad   = math.Pi / 4
	defaultFs  = 4000.0
	defaultN   = 1000
	fsStep     = 500.0
	nStep      = 100
	canvasW    = 1120
	canvasH    = 640
	plotMargin = 70
	plotGap    = 56
	markerMaxN = 100
	timeYMin   = -2.5
	timeYMax   = 2.5
	freqYMax   = 1.1
	xTicks     = 8
	yTicks     = 5
	// fitDensity is the oversampling factor of the smooth spectrum fit
	// curve relative to the discrete bin count.
	fitDensity = 5
	// splineMinBins and fitMinBins select the fit method: a natural cubic
	// spline needs at least splineMinBins points, piecewise quadratic
	// covers fitMinBins..splineMinBins-1, fewer bins draw no curve.
	splineMinBins = 10
	fitMinBins    = 4
)

// Scripted parameter sweep run by batch mode: vary fs at fixed N, vary N at
// fixed fs, then two deliberately undersampled configurations.
var (
	sweepFrequencies  = []float64{2500, 4000, 8000}
	sweepSampleCounts = []int{100, 500, 2000}
	sweepUndersampled = []float64{1500, 1800}
)
