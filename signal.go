package main

import "math"

// sampledSignal stores the time points and amplitudes produced by one
// sampling run of the analytic two-tone signal.
type sampledSignal struct {
	times []float64
	amps  []float64
}

// sampleTimes returns n uniformly spaced time points at sampling frequency fs.
func sampleTimes(n int, fs float64) []float64 {
	t := make([]float64, n)
	for i := range t {
		t[i] = float64(i) / fs
	}
	return t
}

// generateSignal evaluates cos(2*pi*f1*t + phase) + cos(2*pi*f2*t) at every
// time point. Any real-valued input is valid, including an empty sequence.
func generateSignal(times []float64) []float64 {
	out := make([]float64, len(times))
	for i, t := range times {
		out[i] = math.Cos(2*math.Pi*f1Hz*t+phaseRad) + math.Cos(2*math.Pi*f2Hz*t)
	}
	return out
}

// newSampledSignal samples the two-tone signal with the given configuration.
func newSampledSignal(cfg samplingConfig) *sampledSignal {
	times := sampleTimes(cfg.sampleCount, cfg.samplingFrequency)
	return &sampledSignal{times: times, amps: generateSignal(times)}
}

func (s *sampledSignal) len() int { return len(s.times) }

// duration returns the time of the last sample, or zero for empty signals.
func (s *sampledSignal) duration() float64 {
	if len(s.times) == 0 {
		return 0
	}
	return s.times[len(s.times)-1]
}
