package lava

import "math"

// latticeNode is one sample of the field. computed and forceGen are iteration
// stamps compared for exact integer equality against Lamp.iteration.
type latticeNode struct {
	pos Point

	// computed is the iteration at which the tracer finalized this node.
	computed int

	// force holds the last evaluated potential; valid only while
	// forceGen equals the current iteration.
	force    float64
	forceGen int
}

// Lattice is the fixed-step grid of field samples. It covers the surface and
// reserves one padding node on each side of each axis.
type Lattice struct {
	step  float64
	cols  int
	rows  int
	nodes []latticeNode
}

// newLattice allocates the nodes for a width x height surface.
func newLattice(width, height, step float64) *Lattice {
	cols := int(math.Floor(width/step)) + 2
	rows := int(math.Floor(height/step)) + 2
	l := &Lattice{
		step:  step,
		cols:  cols,
		rows:  rows,
		nodes: make([]latticeNode, cols*rows),
	}
	for i := range l.nodes {
		px := float64(i%cols) * step
		py := float64(i/cols) * step
		l.nodes[i].pos = NewPoint(px, py)
	}
	return l
}

// Step returns the spacing between nodes in surface units.
func (l *Lattice) Step() float64 { return l.step }

// Cols returns the number of nodes per row, padding included.
func (l *Lattice) Cols() int { return l.cols }

// Rows returns the number of node rows, padding included.
func (l *Lattice) Rows() int { return l.rows }

// Len returns the total node count.
func (l *Lattice) Len() int { return len(l.nodes) }

// Index maps grid coordinate (x, y) to a node index. Coordinates that step
// past either end of the node slice are clamped to the first or last node.
func (l *Lattice) Index(x, y int) int {
	return clampIndex(x+y*l.cols, 0, len(l.nodes)-1)
}

// NodePosition returns the surface position of the node at (x, y).
func (l *Lattice) NodePosition(x, y int) Point {
	return l.nodes[l.Index(x, y)].pos
}

// onRing reports whether (x, y) lies on the padding ring or outside the grid.
func (l *Lattice) onRing(x, y int) bool {
	return x <= 0 || y <= 0 || x >= l.cols-1 || y >= l.rows-1
}

// contains reports whether (x, y) addresses a node.
func (l *Lattice) contains(x, y int) bool {
	return x >= 0 && y >= 0 && x < l.cols && y < l.rows
}

// clampIndex constrains v to lie within the inclusive [lo, hi] range.
func clampIndex(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
