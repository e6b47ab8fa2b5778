package lava

// Point is a 2D position that carries its squared length alongside the
// coordinates. The magnitude is recomputed on every write, so it can never
// drift from X and Y.
type Point struct {
	x, y      float64
	magnitude float64
}

// NewPoint returns the point (x, y).
func NewPoint(x, y float64) Point {
	return Point{x: x, y: y, magnitude: x*x + y*y}
}

// X returns the horizontal coordinate.
func (p Point) X() float64 { return p.x }

// Y returns the vertical coordinate.
func (p Point) Y() float64 { return p.y }

// Magnitude returns x² + y².
func (p Point) Magnitude() float64 { return p.magnitude }

// Set overwrites both coordinates.
func (p *Point) Set(x, y float64) {
	p.x, p.y = x, y
	p.magnitude = x*x + y*y
}

// Add returns p translated by q.
func (p Point) Add(q Point) Point {
	return NewPoint(p.x+q.x, p.y+q.y)
}
