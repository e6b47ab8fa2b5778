package lava

import "math"

// direction is the edge a marching-squares step leaves its cell through.
type direction int

const (
	dirNone direction = iota - 1
	dirUp
	dirRight
	dirDown
	dirLeft
)

// gridOffset is a relative lattice coordinate.
type gridOffset struct {
	dx int
	dy int
}

// cellCorners lists the corners sampled for a cell, one per mask bit.
var cellCorners = [4]gridOffset{
	{0, 0}, // bit 1
	{1, 0}, // bit 2
	{1, 1}, // bit 4
	{0, 1}, // bit 8
}

// caseDirections maps masks 0-14 to the edge to follow. Masks 5 and 10 are
// saddles resolved by resolveSaddle; 15 restarts the walk.
var caseDirections = [15]direction{
	dirUp, dirLeft, dirUp, dirLeft,
	dirRight, dirLeft, dirUp, dirLeft,
	dirDown, dirDown, dirUp, dirDown,
	dirRight, dirRight, dirUp,
}

// cellEdge describes the crossing for a direction: the point lies on the
// segment from corner from toward corner to.
type cellEdge struct {
	from gridOffset
	to   gridOffset
	move gridOffset
}

var cellEdges = [4]cellEdge{
	dirUp:    {from: gridOffset{0, 0}, to: gridOffset{1, 0}, move: gridOffset{0, -1}},
	dirRight: {from: gridOffset{1, 0}, to: gridOffset{1, 1}, move: gridOffset{1, 0}},
	dirDown:  {from: gridOffset{1, 1}, to: gridOffset{0, 1}, move: gridOffset{0, 1}},
	dirLeft:  {from: gridOffset{0, 1}, to: gridOffset{0, 0}, move: gridOffset{-1, 0}},
}

const (
	maskSaddleA = 5  // top-left and bottom-right inside
	maskSaddleB = 10 // top-right and bottom-left inside
	maskFull    = 15
)

// resolveSaddle picks the exit for an ambiguous cell from the direction the
// walk entered with.
func resolveSaddle(mask int, prev direction) direction {
	if mask == maskSaddleA {
		if prev == dirDown {
			return dirLeft
		}
		return dirRight
	}
	if prev == dirLeft {
		return dirUp
	}
	return dirDown
}

// cellMask samples the four corners of the cell at (x, y).
func (l *Lamp) cellMask(x, y int) int {
	mask := 0
	for bit, c := range cellCorners {
		if inside(l.force(x+c.dx, y+c.dy)) {
			mask |= 1 << bit
		}
	}
	return mask
}

// crossing interpolates the iso-crossing on the exit edge of cell (x, y) in
// field-value space. The corner forces were evaluated by cellMask.
func (l *Lamp) crossing(x, y int, dir direction) Point {
	e := cellEdges[dir]
	from := &l.lattice.nodes[l.lattice.Index(x+e.from.dx, y+e.from.dy)]
	to := &l.lattice.nodes[l.lattice.Index(x+e.to.dx, y+e.to.dy)]

	df := math.Abs(math.Abs(from.force) - isoThreshold)
	dt := math.Abs(math.Abs(to.force) - isoThreshold)
	var t float64
	if sum := df + dt; sum > 0 {
		t = l.step * df / sum
	}
	ax := float64(e.to.dx - e.from.dx)
	ay := float64(e.to.dy - e.from.dy)
	return NewPoint(from.pos.x+ax*t, from.pos.y+ay*t)
}

// trace walks the outline of the blob containing b and returns its vertices.
// ok is false when the walk produced no closed outline: the blob was already
// traced this frame, the walk left the lattice, or it exceeded maxSteps.
// The returned slice aliases the lamp's path buffer.
func (l *Lamp) trace(b *Ball) (points []Point, ok bool) {
	x := int(math.Round(b.pos.x / l.step))
	y := int(math.Round(b.pos.y / l.step))
	prev := dirNone
	l.path = l.path[:0]

	for steps := 0; ; steps++ {
		if steps >= l.maxSteps {
			Logger().Debug("lava: contour walk abandoned",
				"reason", "step bound", "steps", steps, "iteration", l.iteration)
			return nil, false
		}
		if !l.lattice.contains(x, y) {
			Logger().Debug("lava: contour walk abandoned",
				"reason", "left lattice", "x", x, "y", y, "iteration", l.iteration)
			return nil, false
		}
		node := &l.lattice.nodes[l.lattice.Index(x, y)]
		if node.computed == l.iteration {
			break
		}

		mask := l.cellMask(x, y)
		if mask == maskFull {
			y--
			prev = dirNone
			continue
		}

		var dir direction
		switch mask {
		case maskSaddleA, maskSaddleB:
			dir = resolveSaddle(mask, prev)
		default:
			dir = caseDirections[mask]
			node.computed = l.iteration
		}
		if mask != 0 {
			l.path = append(l.path, l.crossing(x, y, dir))
		}

		m := cellEdges[dir].move
		x += m.dx
		y += m.dy
		prev = dir
	}

	return l.path, len(l.path) > 0
}
