package main

import (
	"math"
	"testing"
)

func TestGenerateSignalFormula(t *testing.T) {
	times := []float64{-0.25, 0, 1e-4, 3.7e-4, 0.001, 0.25}
	got := generateSignal(times)
	if len(got) != len(times) {
		t.Fatalf("len = %d, want %d", len(got), len(times))
	}
	for i, tv := range times {
		want := math.Cos(2*math.Pi*f1Hz*tv+phaseRad) + math.Cos(2*math.Pi*f2Hz*tv)
		if math.Abs(got[i]-want) > 1e-12 {
			t.Fatalf("sample %d at t=%v: got %v, want %v", i, tv, got[i], want)
		}
	}
}

func TestGenerateSignalEmpty(t *testing.T) {
	if got := generateSignal(nil); len(got) != 0 {
		t.Fatalf("len = %d, want 0", len(got))
	}
}

func TestSampleTimesSpacing(t *testing.T) {
	times := sampleTimes(8, 4000)
	if len(times) != 8 {
		t.Fatalf("len = %d, want 8", len(times))
	}
	if times[0] != 0 {
		t.Fatalf("times[0] = %v, want 0", times[0])
	}
	for i := 1; i < len(times); i++ {
		if math.Abs(times[i]-times[i-1]-1.0/4000) > 1e-15 {
			t.Fatalf("spacing at %d = %v, want %v", i, times[i]-times[i-1], 1.0/4000)
		}
	}
}

func TestNewSampledSignalLength(t *testing.T) {
	cfg := samplingConfig{samplingFrequency: 4000, sampleCount: 1000}
	sig := newSampledSignal(cfg)
	if sig.len() != 1000 {
		t.Fatalf("len = %d, want 1000", sig.len())
	}
	if d := sig.duration(); math.Abs(d-999.0/4000) > 1e-12 {
		t.Fatalf("duration = %v, want %v", d, 999.0/4000)
	}
}

func TestSampledSignalDurationEmpty(t *testing.T) {
	sig := &sampledSignal{}
	if d := sig.duration(); d != 0 {
		t.Fatalf("duration = %v, want 0", d)
	}
}
