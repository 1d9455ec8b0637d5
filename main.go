package main

import (
	"flag"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"
)

func main() {
	flag.Parse()

	zl, err := zap.NewDevelopment()
	if err != nil {
		panic(err)
	}
	defer zl.Sync()
	logger := zl.Sugar()

	if *batchFlag {
		if err := runBatch(logger); err != nil {
			logger.Fatalw("batch experiment failed", "error", err)
		}
		return
	}

	fs := *initialFsFlag
	if fs <= 0 {
		logger.Fatalw("initial sampling frequency must be positive", "fs", fs)
	}
	n := *initialNFlag
	if n <= 0 {
		logger.Fatalw("initial sample count must be positive", "n", n)
	}
	scale := *windowScaleFlag
	if scale < 1 {
		scale = 1
	}

	s := newSession(fs, n, logger)
	logger.Infow("interactive session started", "fs", fs, "n", n)

	ebiten.SetWindowSize(canvasW*scale, canvasH*scale)
	ebiten.SetWindowTitle("Spectral Sampling Experiment")
	if err := ebiten.RunGame(s); err != nil {
		logger.Fatalw("session aborted", "error", err)
	}
}
