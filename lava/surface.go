package lava

import "github.com/gogpu/gg"

// Surface is the drawing collaborator a Lamp renders into. The calls follow
// canvas-2D semantics: BeginPath starts an empty path, the first LineTo of a
// path positions its start, and Fill and Stroke leave the path intact.
type Surface interface {
	Clear()
	BeginPath()
	LineTo(x, y float64)
	ClosePath()
	SetFillStyle(b gg.Brush)
	SetShadow(blur float64, c gg.RGBA)
	Fill() error
	Stroke() error
}
