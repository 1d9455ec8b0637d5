package main

import (
	"math/cmplx"

	"github.com/mjibson/go-dsp/fft"
)

// spectrum is the one-sided normalized magnitude spectrum of a sampled
// signal. Bin k corresponds to frequency k*fs/N.
type spectrum struct {
	freqs []float64
	mags  []float64
}

// analyzeSpectrum computes the one-sided magnitude spectrum of the sampled
// signal. Magnitudes are normalized by the sample count and doubled to
// account for the discarded mirror half; the DC bin is never doubled, and
// for even sample counts the last retained bin is not doubled either.
// Degenerate inputs of fewer than two samples yield a trivial spectrum.
func analyzeSpectrum(sig *sampledSignal, fs float64) *spectrum {
	n := sig.len()
	half := n / 2
	sp := &spectrum{
		freqs: make([]float64, half),
		mags:  make([]float64, half),
	}
	if half == 0 {
		return sp
	}
	coeffs := fft.FFTReal(sig.amps)
	for k := 0; k < half; k++ {
		sp.freqs[k] = float64(k) * fs / float64(n)
		sp.mags[k] = cmplx.Abs(coeffs[k]) / float64(n)
	}
	doubleEnd := half
	if n%2 == 0 {
		doubleEnd = half - 1
	}
	for k := 1; k < doubleEnd; k++ {
		sp.mags[k] *= 2
	}
	return sp
}
