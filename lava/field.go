package lava

import "math"

const (
	// boundaryPotential is the fixed magnitude on the padding ring. It stays
	// below the iso threshold so contours close inside the lattice.
	boundaryPotential = 0.6

	// isoThreshold separates inside (|force| > 1) from outside.
	isoThreshold = 1.0

	// minDistanceSq floors the squared node-to-ball distance. A ball centered
	// exactly on a node would otherwise contribute +Inf.
	minDistanceSq = 1e-6
)

// computeForce evaluates the signed potential at grid coordinate (x, y),
// stores it on the node for the current iteration and returns it.
// Coordinates outside the grid have no node and read as boundary.
func (l *Lamp) computeForce(x, y int) float64 {
	if !l.lattice.contains(x, y) {
		return boundaryPotential * l.sign
	}
	idx := l.lattice.Index(x, y)
	node := &l.lattice.nodes[idx]

	var force float64
	if l.lattice.onRing(x, y) {
		force = boundaryPotential * l.sign
	} else {
		for i := range l.balls {
			b := &l.balls[i]
			// |node - ball|² expanded through the cached magnitudes.
			den := b.pos.magnitude + node.pos.magnitude -
				2*(node.pos.x*b.pos.x+node.pos.y*b.pos.y)
			if den < minDistanceSq {
				den = minDistanceSq
			}
			force += b.radius * b.radius / den
		}
		force *= l.sign
	}

	node.force = force
	node.forceGen = l.iteration
	return force
}

// force returns the potential at (x, y), evaluating it at most once per
// iteration.
func (l *Lamp) force(x, y int) float64 {
	if !l.lattice.contains(x, y) {
		return boundaryPotential * l.sign
	}
	node := &l.lattice.nodes[l.lattice.Index(x, y)]
	if node.forceGen == l.iteration {
		return node.force
	}
	return l.computeForce(x, y)
}

// inside reports whether a potential lies within a blob.
func inside(force float64) bool {
	return math.Abs(force) > isoThreshold
}
