package main

import "testing"

func TestFrequencyFloor(t *testing.T) {
	cfg := samplingConfig{samplingFrequency: fsStep, sampleCount: 1000}
	if cfg.decreaseFrequency() {
		t.Fatal("decrease at one step must be rejected")
	}
	if cfg.samplingFrequency != fsStep {
		t.Fatalf("fs = %v, want %v", cfg.samplingFrequency, fsStep)
	}
}

func TestSampleCountFloor(t *testing.T) {
	cfg := samplingConfig{samplingFrequency: 4000, sampleCount: nStep}
	if cfg.decreaseCount() {
		t.Fatal("decrease at one step must be rejected")
	}
	if cfg.sampleCount != nStep {
		t.Fatalf("n = %d, want %d", cfg.sampleCount, nStep)
	}
}

func TestParameterSteps(t *testing.T) {
	cfg := samplingConfig{samplingFrequency: 4000, sampleCount: 1000}

	cfg.increaseFrequency()
	if cfg.samplingFrequency != 4500 {
		t.Fatalf("fs = %v, want 4500", cfg.samplingFrequency)
	}
	if !cfg.decreaseFrequency() || cfg.samplingFrequency != 4000 {
		t.Fatalf("fs = %v, want 4000", cfg.samplingFrequency)
	}

	cfg.increaseCount()
	if cfg.sampleCount != 1100 {
		t.Fatalf("n = %d, want 1100", cfg.sampleCount)
	}
	if !cfg.decreaseCount() || cfg.sampleCount != 1000 {
		t.Fatalf("n = %d, want 1000", cfg.sampleCount)
	}
}

func TestStatusClassification(t *testing.T) {
	tests := []struct {
		fs   float64
		want string
	}{
		{1500, "Undersampling"},
		{2199, "Undersampling"},
		{2200, "Proper Sampling"},
		{4000, "Proper Sampling"},
		{8000, "Proper Sampling"},
	}
	for _, tc := range tests {
		cfg := samplingConfig{samplingFrequency: tc.fs, sampleCount: 1000}
		if got := cfg.status(); got != tc.want {
			t.Fatalf("fs=%g: status = %q, want %q", tc.fs, got, tc.want)
		}
	}
}

func TestImageFilename(t *testing.T) {
	tests := []struct {
		cfg  samplingConfig
		want string
	}{
		{samplingConfig{4000, 1000}, "experiment_fs_4000_N_1000.png"},
		{samplingConfig{1500, 100}, "experiment_fs_1500_N_100.png"},
		{samplingConfig{2250.5, 300}, "experiment_fs_2250.5_N_300.png"},
	}
	for _, tc := range tests {
		if got := tc.cfg.imageFilename(); got != tc.want {
			t.Fatalf("got %q, want %q", got, tc.want)
		}
	}
}
