// Package lava renders animated lava-lamp blobs with metaballs.
//
// A [Lamp] owns a set of bouncing [Ball] field sources and a [Lattice] of
// sample nodes covering the drawing surface plus one padding node on every
// side. Each call to [Lamp.AdvanceFrame] moves the balls, then walks the
// iso-line |potential| = 1 around every ball with a marching-squares tracer and
// hands each closed outline to a [Surface] as a single fill-and-stroke path.
//
// The potential at a node is the sum of r²/d² over all balls, so a lone ball's
// outline is the circle of its radius; nearby balls merge into one blob.
//
// A [Driver] owns several lamps that share one surface and advances them in a
// fixed order once per host tick:
//
//	lamp, err := lava.New(800, 600, 10, "#5d3a97", "#8942a4")
//	if err != nil {
//		return err
//	}
//	dc := gg.NewContext(800, 600)
//	driver := lava.NewDriver(lamp)
//	canvas := lava.NewCanvas(dc)
//	for range ticks {
//		if err := driver.Tick(canvas); err != nil {
//			return err
//		}
//	}
//
// The package is single-threaded: a lamp must only be driven from one
// goroutine at a time.
package lava
