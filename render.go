package main

import (
	"fmt"
	"image"
	"log/slog"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
)

// Draw composes the lamps over the background and prints the optional overlay.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(g.cfg.background)

	if g.frameDirty {
		g.frame.WritePixels(frameView(g.dc).Pix)
		g.frameDirty = false
	}
	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(g.alpha)
	screen.DrawImage(g.frame, op)

	if g.cfg.debug {
		state := "running"
		if g.paused {
			state = "paused"
		}
		debugMsg := fmt.Sprintf("FPS: %.1f\nTPS: %.1f\nSpeed: %dx (+/-), %s\nFrames: %d (%.0f/s)\nTick: %.2f ms",
			ebiten.ActualFPS(), ebiten.ActualTPS(), g.speed, state,
			g.driver.Frames(), g.framesPerSecond(), g.lastTickTime.Seconds()*1000)
		ebitenutil.DebugPrint(screen, debugMsg)
	}
}

// Layout reports the logical screen size used by Ebiten.
func (g *Game) Layout(_, _ int) (int, int) { return g.cfg.width, g.cfg.height }

// frameView returns the context pixels as premultiplied RGBA. The image
// shares memory with dc and is overwritten by the next frame.
func frameView(dc *gg.Context) *image.RGBA {
	if err := dc.FlushGPU(); err != nil {
		slog.Debug("gpu flush failed", "err", err)
	}
	pm := dc.ResizeTarget()
	return &image.RGBA{
		Pix:    pm.Data(),
		Stride: 4 * pm.Width(),
		Rect:   image.Rect(0, 0, pm.Width(), pm.Height()),
	}
}
