package lava

import (
	"math"

	"github.com/gogpu/gg"
)

// recordingSurface captures every Surface call and the closed paths.
type recordingSurface struct {
	calls   []string
	paths   [][]Point
	current []Point
	styles  []gg.Brush
	blur    float64
	clears  int
	fillErr error
}

func (r *recordingSurface) Clear() {
	r.clears++
	r.calls = append(r.calls, "Clear")
}

func (r *recordingSurface) BeginPath() {
	r.current = nil
	r.calls = append(r.calls, "BeginPath")
}

func (r *recordingSurface) LineTo(x, y float64) {
	r.current = append(r.current, NewPoint(x, y))
	r.calls = append(r.calls, "LineTo")
}

func (r *recordingSurface) ClosePath() {
	r.calls = append(r.calls, "ClosePath")
}

func (r *recordingSurface) SetFillStyle(b gg.Brush) {
	r.styles = append(r.styles, b)
	r.calls = append(r.calls, "SetFillStyle")
}

func (r *recordingSurface) SetShadow(blur float64, _ gg.RGBA) {
	r.blur = blur
	r.calls = append(r.calls, "SetShadow")
}

func (r *recordingSurface) Fill() error {
	r.calls = append(r.calls, "Fill")
	if r.fillErr != nil {
		return r.fillErr
	}
	r.paths = append(r.paths, r.current)
	return nil
}

func (r *recordingSurface) Stroke() error {
	r.calls = append(r.calls, "Stroke")
	return nil
}

// seqRand replays a fixed sequence of values.
type seqRand struct {
	vals []float64
	i    int
}

func (s *seqRand) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

func distance(p Point, x, y float64) float64 {
	return math.Hypot(p.X()-x, p.Y()-y)
}
