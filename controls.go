package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// handleControls processes the window hotkeys: Space pauses, R reseeds,
// +/- change the speed and Escape or Q quits.
func (g *Game) handleControls() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		if err := g.reseed(); err != nil {
			return err
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyMinus) || inpututil.IsKeyJustPressed(ebiten.KeyKPSubtract) {
		g.adjustSpeed(-speedStep)
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEqual) || inpututil.IsKeyJustPressed(ebiten.KeyKPAdd) {
		g.adjustSpeed(speedStep)
	}
	return nil
}

// adjustSpeed changes the frames advanced per tick, clamped to
// [minSpeed, maxSpeed].
func (g *Game) adjustSpeed(delta int) {
	g.speed += delta
	if g.speed < minSpeed {
		g.speed = minSpeed
	} else if g.speed > maxSpeed {
		g.speed = maxSpeed
	}
}

// framesPerSecond returns the nominal lamp frames advanced each second.
func (g *Game) framesPerSecond() float64 {
	if g.paused {
		return 0
	}
	return defaultTPS * float64(g.speed)
}
