package main

import "flag"

// Command-line flags that size the lamps and choose how frames are
// presented: an ebiten window, the terminal, or a headless PNG.
var (
	// widthFlag and heightFlag size the drawing surface in pixels.
	widthFlag  = flag.Int("width", defaultWidth, "surface width in pixels")
	heightFlag = flag.Int("height", defaultHeight, "surface height in pixels")

	// lampsFlag sets how many lamps share the surface.
	lampsFlag = flag.Int("lamps", defaultLamps, "number of lamps drawn on top of each other")

	// ballsFlag sets the ball count of every lamp.
	ballsFlag = flag.Int("balls", defaultBalls, "balls per lamp")

	stepFlag = flag.Float64("step", defaultStep, "lattice spacing in pixels")

	// seedFlag fixes ball placement; zero seeds from the clock.
	seedFlag = flag.Int64("seed", 0, "random seed for ball placement (0 = time based)")

	// scaleFlag multiplies the window size.
	scaleFlag = flag.Float64("scale", defaultWindowScale, "window scale factor")

	backgroundFlag = flag.String("background", defaultBackground, "background color behind the lamps")

	// fadeFlag is the fade-in duration after start and after a reseed.
	fadeFlag = flag.Duration("fade", defaultFade, "fade-in duration (0 disables)")

	// debugFlag enables the FPS and frame overlay.
	debugFlag = flag.Bool("debug", false, "show FPS and frame overlay")

	terminalFlag = flag.Bool("terminal", false, "render into the terminal instead of a window")

	// framesFlag and pngFlag select headless mode.
	framesFlag = flag.Int("frames", defaultHeadlessFrames, "frames to advance before writing -png")
	pngFlag    = flag.String("png", "", "write the final frame to this PNG file and exit")

	cpuProfileFlag = flag.String("cpuprofile", "", "write a CPU profile to this file")

	logLevelFlag = flag.String("log-level", "info", "log level: debug, info, warn or error")
)
