package main

import (
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// renderExperiment rasterizes the stacked time-domain and frequency-domain
// plots for the given state into the canvas, replacing its previous content.
func renderExperiment(c *plotCanvas, cfg samplingConfig, sig *sampledSignal, sp *spectrum) {
	c.clear()
	plotW := c.width() - 2*plotMargin
	plotH := (c.height() - 2*plotMargin - plotGap) / 2
	status := cfg.status()

	tEnd := sig.duration()
	if tEnd <= 0 {
		tEnd = 1 / cfg.samplingFrequency
	}
	top := &axes{
		canvas: c,
		px:     plotMargin, py: plotMargin, pw: plotW, ph: plotH,
		xMin: 0, xMax: tEnd, yMin: timeYMin, yMax: timeYMax,
	}
	top.grid()
	top.frame()
	top.polyline(sig.times, sig.amps, colorSignal)
	entries := []legendEntry{{"Sampled Signal", colorSignal}}
	if sig.len() <= markerMaxN {
		top.markers(sig.times, sig.amps, colorMarker)
		entries = append(entries, legendEntry{"Sample Points", colorMarker})
	}
	top.legend(entries)
	top.title(fmt.Sprintf("Time Domain - %s: Fs=%gHz, N=%d", status, cfg.samplingFrequency, cfg.sampleCount))
	top.xlabel("Time (s)")
	top.ylabel("Amplitude")

	xMax := math.Min(2*f2Hz, cfg.samplingFrequency/2)
	if xMax <= 0 {
		xMax = f2Hz
	}
	bottom := &axes{
		canvas: c,
		px:     plotMargin, py: plotMargin + plotH + plotGap, pw: plotW, ph: plotH,
		xMin: 0, xMax: xMax, yMin: 0, yMax: freqYMax,
	}
	bottom.grid()
	bottom.frame()
	bottom.stems(sp.freqs, sp.mags, colorStem)
	entries = []legendEntry{
		{fmt.Sprintf("f1=%gHz", f1Hz), colorF1Ref},
		{fmt.Sprintf("f2=%gHz", f2Hz), colorF2Ref},
	}
	if fitX, fitY := fitCurve(sp); fitX != nil {
		bottom.polyline(fitX, fitY, colorFit)
		entries = append(entries, legendEntry{"Spectrum Fit Curve", colorFit})
	}
	bottom.vline(f1Hz, colorF1Ref)
	bottom.vline(f2Hz, colorF2Ref)
	bottom.legend(entries)
	bottom.title(fmt.Sprintf("Frequency Domain - %s: Fs=%gHz, N=%d", status, cfg.samplingFrequency, cfg.sampleCount))
	bottom.xlabel("Frequency (Hz)")
	bottom.ylabel("Magnitude")
}

// Draw blits the pre-rendered canvas and the optional debug overlay.
func (s *Session) Draw(screen *ebiten.Image) {
	screen.WritePixels(s.canvas.pix())
	if *debugFlag {
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f", ebiten.ActualFPS(), ebiten.ActualTPS())
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (s *Session) Layout(_, _ int) (int, int) { return canvasW, canvasH }
