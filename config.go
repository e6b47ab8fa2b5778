package main

import "time"

// Window, animation and palette defaults for the lava lamp host. These values
// size the drawing surface, pace the ebiten loop and bound the speed hotkeys.
const (
	defaultWidth, defaultHeight = 640, 480
	defaultWindowScale          = 1.0
	defaultTPS                  = 60
	defaultLamps                = 3
	defaultBalls                = 10
	defaultStep                 = 10.0
	defaultSpeed                = 1
	speedStep                   = 1
	minSpeed                    = 1
	maxSpeed                    = 8
	defaultFade                 = 1500 * time.Millisecond
	defaultBackground           = "#ffffff"
	defaultHeadlessFrames       = 120
	terminalFrameInterval       = 33 * time.Millisecond
	windowTitle                 = "Lava Lamp"
)

// lampColors is the gradient pair of one lamp: inner at the surface center,
// outer at half the surface width.
type lampColors struct {
	inner, outer string
}

// palette holds the lamp colors in draw order. Lamps beyond its length reuse
// it cyclically.
var palette = []lampColors{
	{"#5d3a97", "#8942a4"},
	{"#60bfbd", "#1c4995"},
	{"#24519f", "#fa0000"},
}
