package main

import (
	"fmt"
	"image"
	"image/color"
	"log/slog"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/draw"

	"lavalamp/lava"
)

// halfBlock paints the upper half of a cell in the foreground color; the
// background color fills the lower half, so one cell shows two pixels.
const halfBlock = '▀'

// terminalView renders lamp frames into a tcell screen.
type terminalView struct {
	screen tcell.Screen
	bg     colorful.Color

	// cells is the frame scaled to cols x 2*rows.
	cells *image.RGBA
}

func newTerminalView(screen tcell.Screen, bg colorful.Color) *terminalView {
	v := &terminalView{screen: screen, bg: bg}
	v.resize()
	return v
}

// resize matches the scaled buffer to the current screen size.
func (v *terminalView) resize() {
	cols, rows := v.screen.Size()
	v.cells = image.NewRGBA(image.Rect(0, 0, max(cols, 1), max(2*rows, 1)))
}

// draw scales frame to the screen and writes one half-block per cell.
func (v *terminalView) draw(frame *image.RGBA) {
	draw.ApproxBiLinear.Scale(v.cells, v.cells.Bounds(), frame, frame.Bounds(), draw.Src, nil)
	cols, rows := v.screen.Size()
	b := v.cells.Bounds()
	for y := 0; y < rows && 2*y+1 < b.Dy(); y++ {
		for x := 0; x < cols && x < b.Dx(); x++ {
			top := cellColor(v.cells.RGBAAt(x, 2*y), v.bg)
			bottom := cellColor(v.cells.RGBAAt(x, 2*y+1), v.bg)
			style := tcell.StyleDefault.Foreground(tcellColor(top)).Background(tcellColor(bottom))
			v.screen.SetContent(x, y, halfBlock, nil, style)
		}
	}
	v.screen.Show()
}

// cellColor blends a premultiplied pixel over bg.
func cellColor(px color.RGBA, bg colorful.Color) colorful.Color {
	if px.A == 0 {
		return bg
	}
	a := float64(px.A) / 255
	fg := colorful.Color{
		R: float64(px.R) / 255 / a,
		G: float64(px.G) / 255 / a,
		B: float64(px.B) / 255 / a,
	}
	return bg.BlendRgb(fg.Clamped(), a).Clamped()
}

func tcellColor(c colorful.Color) tcell.Color {
	r, g, b := c.RGB255()
	return tcell.NewRGBColor(int32(r), int32(g), int32(b))
}

// eventPoller is the part of tcell.Screen that delivers input.
type eventPoller interface {
	PollEvent() tcell.Event
}

// pollEvents forwards events from p until p is finalized or done is closed,
// then closes the returned channel.
func pollEvents(p eventPoller, done <-chan struct{}) <-chan tcell.Event {
	events := make(chan tcell.Event, 16)
	go func() {
		defer close(events)
		for {
			ev := p.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()
	return events
}

// runTerminal renders the lamps into the terminal until q, Escape or Ctrl-C.
// Space pauses.
func runTerminal(cfg runConfig) error {
	driver, err := buildDriver(cfg)
	if err != nil {
		return err
	}
	dc := gg.NewContext(cfg.width, cfg.height)
	defer dc.Close()
	canvas := lava.NewCanvas(dc)

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("terminal screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("terminal init: %w", err)
	}
	defer screen.Fini()

	view := newTerminalView(screen, cfg.background)
	slog.Debug("terminal mode", "width", cfg.width, "height", cfg.height)

	ticker := time.NewTicker(terminalFrameInterval)
	defer ticker.Stop()

	done := make(chan struct{})
	defer close(done)
	events := pollEvents(screen, done)

	paused := false
	for {
		select {
		case ev, ok := <-events:
			if !ok {
				return nil
			}
			switch ev := ev.(type) {
			case *tcell.EventKey:
				switch {
				case ev.Key() == tcell.KeyEscape || ev.Key() == tcell.KeyCtrlC:
					return nil
				case ev.Key() == tcell.KeyRune && (ev.Rune() == 'q' || ev.Rune() == 'Q'):
					return nil
				case ev.Key() == tcell.KeyRune && ev.Rune() == ' ':
					paused = !paused
				}
			case *tcell.EventResize:
				view.resize()
				screen.Sync()
			}

		case <-ticker.C:
			if paused {
				continue
			}
			if err := driver.Tick(canvas); err != nil {
				return fmt.Errorf("tick: %w", err)
			}
			view.draw(frameView(dc))
		}
	}
}
