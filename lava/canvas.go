package lava

import "github.com/gogpu/gg"

const (
	// shadowLayers is the number of widening translucent strokes that stand
	// in for a blurred shadow.
	shadowLayers = 5

	// strokeWidth is the outline width drawn over every fill.
	strokeWidth = 1.0
)

// Canvas adapts a gg.Context to the Surface interface.
//
// gg has no shadow state of its own, so a blur b is approximated by stroking
// the path shadowLayers times with widths b/shadowLayers .. b, each layer
// carrying an equal share of the shadow alpha, before the fill. Strokes use
// the fill brush.
type Canvas struct {
	dc *gg.Context

	fill        gg.Brush
	shadowBlur  float64
	shadowColor gg.RGBA

	// open is false until the first LineTo of the current path.
	open bool
}

var _ Surface = (*Canvas)(nil)

// NewCanvas returns a surface drawing into dc.
func NewCanvas(dc *gg.Context) *Canvas {
	return &Canvas{dc: dc, fill: gg.Solid(gg.Black)}
}

// Context returns the underlying drawing context.
func (c *Canvas) Context() *gg.Context { return c.dc }

// Clear resets every pixel to transparent.
func (c *Canvas) Clear() {
	c.dc.Clear()
}

// BeginPath discards the current path.
func (c *Canvas) BeginPath() {
	c.dc.ClearPath()
	c.open = false
}

// LineTo extends the path to (x, y); on an empty path it sets the start.
func (c *Canvas) LineTo(x, y float64) {
	if !c.open {
		c.dc.MoveTo(x, y)
		c.open = true
		return
	}
	c.dc.LineTo(x, y)
}

// ClosePath closes the current subpath.
func (c *Canvas) ClosePath() {
	c.dc.ClosePath()
}

// SetFillStyle sets the brush used by Fill and Stroke.
func (c *Canvas) SetFillStyle(b gg.Brush) {
	c.fill = b
}

// SetShadow sets the shadow drawn under subsequent fills.
func (c *Canvas) SetShadow(blur float64, col gg.RGBA) {
	c.shadowBlur = blur
	c.shadowColor = col
}

// Fill paints the shadow, if any, then fills the path.
func (c *Canvas) Fill() error {
	if c.shadowBlur > 0 && c.shadowColor.A > 0 {
		if err := c.shadow(); err != nil {
			return err
		}
	}
	c.dc.SetFillBrush(c.fill)
	return c.dc.FillPreserve()
}

// Stroke outlines the path with the fill brush.
func (c *Canvas) Stroke() error {
	c.dc.SetStrokeBrush(c.fill)
	c.dc.SetLineWidth(strokeWidth)
	return c.dc.StrokePreserve()
}

func (c *Canvas) shadow() error {
	col := c.shadowColor
	col.A /= shadowLayers
	c.dc.SetStrokeBrush(gg.Solid(col))
	for i := shadowLayers; i >= 1; i-- {
		c.dc.SetLineWidth(c.shadowBlur * float64(i) / shadowLayers)
		if err := c.dc.StrokePreserve(); err != nil {
			return err
		}
	}
	return nil
}
