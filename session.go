package main

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"go.uber.org/zap"
)

// samplingConfig is the mutable pair of sampling parameters owned by the
// session. Both values stay strictly positive: a decrease that would reach
// zero or below is rejected.
type samplingConfig struct {
	samplingFrequency float64
	sampleCount       int
}

func (c *samplingConfig) increaseFrequency() {
	c.samplingFrequency += fsStep
}

func (c *samplingConfig) decreaseFrequency() bool {
	if c.samplingFrequency <= fsStep {
		return false
	}
	c.samplingFrequency -= fsStep
	return true
}

func (c *samplingConfig) increaseCount() {
	c.sampleCount += nStep
}

func (c *samplingConfig) decreaseCount() bool {
	if c.sampleCount <= nStep {
		return false
	}
	c.sampleCount -= nStep
	return true
}

// undersampled reports whether the configuration violates the Nyquist
// criterion for the higher tone.
func (c samplingConfig) undersampled() bool {
	return c.samplingFrequency < 2*f2Hz
}

// status returns the classification shown in the plot titles.
func (c samplingConfig) status() string {
	if c.undersampled() {
		return "Undersampling"
	}
	return "Proper Sampling"
}

// imageFilename returns the PNG filename encoding the current parameters.
func (c samplingConfig) imageFilename() string {
	return fmt.Sprintf("experiment_fs_%g_N_%d.png", c.samplingFrequency, c.sampleCount)
}

// Session owns the sampling configuration, the signal and spectrum derived
// from it, and the canvas they are rendered into. It implements ebiten.Game.
type Session struct {
	cfg    samplingConfig
	signal *sampledSignal
	spec   *spectrum
	canvas *plotCanvas
	logger *zap.SugaredLogger
}

// newSession constructs a session with an initial rendering of the given
// parameters.
func newSession(fs float64, n int, logger *zap.SugaredLogger) *Session {
	s := &Session{
		cfg:    samplingConfig{samplingFrequency: fs, sampleCount: n},
		canvas: newPlotCanvas(canvasW, canvasH),
		logger: logger,
	}
	s.recompute()
	return s
}

// recompute regenerates the sampled signal and spectrum from the current
// configuration and re-renders the canvas from scratch. Nothing is cached
// across parameter changes.
func (s *Session) recompute() {
	s.signal = newSampledSignal(s.cfg)
	s.spec = analyzeSpectrum(s.signal, s.cfg.samplingFrequency)
	renderExperiment(s.canvas, s.cfg, s.signal, s.spec)
}

// Update handles one discrete key event and recomputes the plots when a
// parameter changed. Decreases below one step and unknown keys are ignored.
func (s *Session) Update() error {
	switch {
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowUp):
		s.cfg.increaseFrequency()
		s.logger.Infow("sampling frequency increased", "fs", s.cfg.samplingFrequency)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowDown):
		if !s.cfg.decreaseFrequency() {
			s.logger.Debugw("sampling frequency already at minimum", "fs", s.cfg.samplingFrequency)
			return nil
		}
		s.logger.Infow("sampling frequency decreased", "fs", s.cfg.samplingFrequency)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowRight):
		s.cfg.increaseCount()
		s.logger.Infow("sample count increased", "n", s.cfg.sampleCount)
	case inpututil.IsKeyJustPressed(ebiten.KeyArrowLeft):
		if !s.cfg.decreaseCount() {
			s.logger.Debugw("sample count already at minimum", "n", s.cfg.sampleCount)
			return nil
		}
		s.logger.Infow("sample count decreased", "n", s.cfg.sampleCount)
	case inpututil.IsKeyJustPressed(ebiten.KeyS):
		name := s.cfg.imageFilename()
		if err := s.canvas.savePNG(name); err != nil {
			s.logger.Errorw("image save failed", "file", name, "error", err)
			return nil
		}
		s.logger.Infow("image saved", "file", name)
		return nil
	case inpututil.IsKeyJustPressed(ebiten.KeyQ):
		s.logger.Info("session terminated")
		return ebiten.Termination
	default:
		return nil
	}
	s.recompute()
	return nil
}
