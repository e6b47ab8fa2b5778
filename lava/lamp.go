package lava

import (
	"errors"
	"fmt"

	"github.com/gogpu/gg"
	"github.com/lucasb-eyer/go-colorful"
)

// ErrInvalidConfig is returned by New when the lamp cannot be built from its
// arguments.
var ErrInvalidConfig = errors.New("lava: invalid configuration")

// Lamp is one animated set of metaballs with its own lattice, gradient and
// frame counters.
type Lamp struct {
	width  float64
	height float64
	step   float64

	lattice *Lattice
	balls   []Ball

	// iteration counts frames and stamps lattice nodes; sign flips every
	// frame and multiplies every evaluated potential.
	iteration int
	sign      float64

	fill        gg.Brush
	shadowBlur  float64
	shadowColor gg.RGBA

	maxSteps int
	path     []Point
}

// New builds a lamp for a width x height surface with ballCount balls filled
// with a radial gradient from color0 at the surface center to color1 at half
// the width. Colors are hex strings such as "#5d3a97".
func New(width, height float64, ballCount int, color0, color1 string, opts ...Option) (*Lamp, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: surface %gx%g", ErrInvalidConfig, width, height)
	}
	if ballCount <= 0 {
		return nil, fmt.Errorf("%w: ball count %d", ErrInvalidConfig, ballCount)
	}
	if o.step <= 0 {
		return nil, fmt.Errorf("%w: lattice step %g", ErrInvalidConfig, o.step)
	}
	if o.balls != nil && len(o.balls) != ballCount {
		return nil, fmt.Errorf("%w: %d balls given for count %d", ErrInvalidConfig, len(o.balls), ballCount)
	}
	c0, err := colorful.Hex(color0)
	if err != nil {
		return nil, fmt.Errorf("%w: color0 %q: %v", ErrInvalidConfig, color0, err)
	}
	c1, err := colorful.Hex(color1)
	if err != nil {
		return nil, fmt.Errorf("%w: color1 %q: %v", ErrInvalidConfig, color1, err)
	}

	l := &Lamp{
		width:       width,
		height:      height,
		step:        o.step,
		lattice:     newLattice(width, height, o.step),
		sign:        1,
		fill:        radialFill(width, height, gg.FromColor(c0), gg.FromColor(c1)),
		shadowBlur:  o.shadowBlur,
		shadowColor: o.shadowColor,
		maxSteps:    o.maxSteps,
	}
	if l.maxSteps <= 0 {
		l.maxSteps = 4 * l.lattice.Len()
	}

	if o.balls != nil {
		l.balls = o.balls
	} else {
		rng := o.rng
		if rng == nil {
			rng = newTimeSeededRand()
		}
		l.balls = make([]Ball, ballCount)
		for i := range l.balls {
			l.balls[i] = newRandomBall(width, height, rng)
		}
	}

	Logger().Info("lava: lamp created",
		"width", width, "height", height, "balls", len(l.balls),
		"cols", l.lattice.cols, "rows", l.lattice.rows)
	return l, nil
}

// radialFill is the lamp gradient: color0 at the surface center fading to
// color1 at half the surface width.
func radialFill(w, h float64, c0, c1 gg.RGBA) gg.Brush {
	return gg.NewRadialGradientBrush(w/2, h/2, 0, w/2).
		AddColorStop(0, c0).
		AddColorStop(1, c1)
}

// Balls returns a copy of the current ball states.
func (l *Lamp) Balls() []Ball {
	return append([]Ball(nil), l.balls...)
}

// Lattice returns the lamp's sampling lattice.
func (l *Lamp) Lattice() *Lattice { return l.lattice }

// Iteration returns the number of frames advanced so far.
func (l *Lamp) Iteration() int { return l.iteration }

// Sign returns the current sign convention, +1 or -1.
func (l *Lamp) Sign() float64 { return l.sign }

// Fill returns the gradient brush the lamp fills its blobs with.
func (l *Lamp) Fill() gg.Brush { return l.fill }

// AdvanceFrame moves every ball one step, traces one contour per ball and
// fills and strokes each closed contour on s. Balls whose blob was already
// outlined this frame, or whose walk did not close, draw nothing.
func (l *Lamp) AdvanceFrame(s Surface) error {
	for i := range l.balls {
		l.balls[i].Move()
	}
	l.iteration++
	l.sign = -l.sign

	s.SetFillStyle(l.fill)
	s.SetShadow(l.shadowBlur, l.shadowColor)

	for i := range l.balls {
		points, ok := l.trace(&l.balls[i])
		if !ok {
			continue
		}
		s.BeginPath()
		for _, p := range points {
			s.LineTo(p.x, p.y)
		}
		s.ClosePath()
		if err := s.Fill(); err != nil {
			return fmt.Errorf("fill contour of ball %d: %w", i, err)
		}
		if err := s.Stroke(); err != nil {
			return fmt.Errorf("stroke contour of ball %d: %w", i, err)
		}
	}
	return nil
}
