package main

import (
	"fmt"

	"go.uber.org/zap"
)

// runBatch renders the fixed parameter sweep headless and writes one PNG
// per configuration: varying sampling frequency at the default sample
// count, varying sample count at the default frequency, and two
// deliberately undersampled setups.
func runBatch(logger *zap.SugaredLogger) error {
	canvas := newPlotCanvas(canvasW, canvasH)
	save := func(cfg samplingConfig, name string) error {
		sig := newSampledSignal(cfg)
		sp := analyzeSpectrum(sig, cfg.samplingFrequency)
		renderExperiment(canvas, cfg, sig, sp)
		if err := canvas.savePNG(name); err != nil {
			return fmt.Errorf("save %s: %w", name, err)
		}
		logger.Infow("experiment saved",
			"file", name, "fs", cfg.samplingFrequency, "n", cfg.sampleCount, "status", cfg.status())
		return nil
	}

	for _, fs := range sweepFrequencies {
		cfg := samplingConfig{samplingFrequency: fs, sampleCount: defaultN}
		if err := save(cfg, cfg.imageFilename()); err != nil {
			return err
		}
	}
	for _, n := range sweepSampleCounts {
		cfg := samplingConfig{samplingFrequency: defaultFs, sampleCount: n}
		if err := save(cfg, cfg.imageFilename()); err != nil {
			return err
		}
	}
	for _, fs := range sweepUndersampled {
		cfg := samplingConfig{samplingFrequency: fs, sampleCount: defaultN}
		name := fmt.Sprintf("experiment_undersampling_fs_%g_N_%d.png", fs, defaultN)
		if err := save(cfg, name); err != nil {
			return err
		}
	}
	return nil
}
