package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"

	"github.com/gogpu/gg"
	"golang.org/x/image/draw"

	"lavalamp/lava"
)

// runHeadless advances the lamps cfg.frames times offscreen and writes the
// last frame, composed over the background, to cfg.png.
func runHeadless(cfg runConfig) error {
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}
	dc := gg.NewContext(cfg.width, cfg.height)
	defer dc.Close()

	if err := renderFrames(driver, lava.NewCanvas(dc), cfg.frames); err != nil {
		return err
	}

	out := gg.NewContextForImage(composeOver(frameView(dc), cfg.background))
	defer out.Close()
	if err := out.SavePNG(cfg.png); err != nil {
		return fmt.Errorf("save %s: %w", cfg.png, err)
	}
	slog.Info("frame written", "path", cfg.png, "frames", driver.Frames())
	return nil
}

// renderFrames ticks driver n times on s.
func renderFrames(driver *lava.Driver, s lava.Surface, n int) error {
	for i := 0; i < n; i++ {
		if err := driver.Tick(s); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}
	}
	return nil
}

// composeOver returns an opaque copy of src drawn over bg.
func composeOver(src *image.RGBA, bg color.Color) *image.RGBA {
	dst := image.NewRGBA(src.Bounds())
	draw.Draw(dst, dst.Bounds(), image.NewUniform(bg), image.Point{}, draw.Src)
	draw.Draw(dst, dst.Bounds(), src, src.Bounds().Min, draw.Over)
	return dst
}
