package main

import "flag"

// Command-line flags that control the runtime mode and the initial sampling
// parameters of the interactive session.
var (
	// batchFlag runs the scripted parameter sweep headless instead of
	// opening the interactive window.
	batchFlag = flag.Bool("batch", false, "run the fixed parameter sweep and save PNGs instead of the interactive window")

	// initialFsFlag sets the sampling frequency the session starts with.
	initialFsFlag = flag.Float64("fs", defaultFs, "initial sampling frequency in Hz")

	// initialNFlag sets the sample count the session starts with.
	initialNFlag = flag.Int("samples", defaultN, "initial sample count")

	// windowScaleFlag scales the window relative to the canvas size.
	windowScaleFlag = flag.Int("scale", 1, "integer window scale factor")

	// debugFlag enables the FPS and tick rate overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and tick rate overlay")
)
