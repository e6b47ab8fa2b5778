package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/gogpu/gg"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"lavalamp/lava"
)

// Game hosts the lamps in an ebiten window. The lamps draw into an offscreen
// gg context whose pixels are uploaded to frame on every Draw.
type Game struct {
	cfg    runConfig
	driver *lava.Driver

	dc     *gg.Context
	canvas *lava.Canvas
	frame  *ebiten.Image

	// frameDirty is set when dc holds a frame not yet uploaded to frame.
	frameDirty bool

	// fade tweens alpha from 0 to 1 after start and after each reseed.
	fade  *gween.Tween
	alpha float32

	paused       bool
	speed        int
	lastTickTime time.Duration
}

// newGame builds the driver and the offscreen buffers for cfg.
func newGame(cfg runConfig) (*Game, error) {
	driver, err := buildDriver(cfg)
	if err != nil {
		return nil, err
	}
	dc := gg.NewContext(cfg.width, cfg.height)
	g := &Game{
		cfg:    cfg,
		driver: driver,
		dc:     dc,
		canvas: lava.NewCanvas(dc),
		frame:  ebiten.NewImage(cfg.width, cfg.height),
		speed:  defaultSpeed,
	}
	g.startFade()
	return g, nil
}

// startFade restarts the fade-in, or shows the lamps at full opacity when
// fading is disabled.
func (g *Game) startFade() {
	if g.cfg.fade <= 0 {
		g.fade = nil
		g.alpha = 1
		return
	}
	g.fade = gween.New(0, 1, float32(g.cfg.fade.Seconds()), ease.OutQuad)
	g.alpha = 0
}

// updateFade advances the fade by one tick.
func (g *Game) updateFade() {
	if g.fade == nil {
		return
	}
	alpha, done := g.fade.Update(1 / float32(defaultTPS))
	g.alpha = alpha
	if done {
		g.fade = nil
		g.alpha = 1
	}
}

// reseed replaces every lamp with freshly placed balls.
func (g *Game) reseed() error {
	g.cfg.seed = time.Now().UnixNano()
	driver, err := buildDriver(g.cfg)
	if err != nil {
		return err
	}
	g.driver = driver
	g.startFade()
	slog.Info("lamps reseeded", "seed", g.cfg.seed)
	return nil
}

// Update handles hotkeys, advances the fade and ticks the lamps speed times.
func (g *Game) Update() error {
	if err := g.handleControls(); err != nil {
		return err
	}
	g.updateFade()
	if g.paused {
		return nil
	}
	start := time.Now()
	if err := g.tickBatch(g.speed); err != nil {
		return fmt.Errorf("tick: %w", err)
	}
	g.lastTickTime = time.Since(start)
	return nil
}

// runWindow opens the ebiten window and blocks until it is closed.
func runWindow(cfg runConfig) error {
	g, err := newGame(cfg)
	if err != nil {
		return err
	}
	defer g.dc.Close()

	ebiten.SetWindowSize(int(float64(cfg.width)*cfg.scale), int(float64(cfg.height)*cfg.scale))
	ebiten.SetWindowTitle(windowTitle)
	ebiten.SetTPS(defaultTPS)
	slog.Info("window mode", "width", cfg.width, "height", cfg.height, "scale", cfg.scale)
	return ebiten.RunGame(g)
}
