package lava

// Ball is a bouncing disk acting as one metaball field source.
type Ball struct {
	pos     Point
	vel     Point
	radius  float64
	boundsW float64
	boundsH float64
}

// RandomSource supplies uniformly distributed values in [0, 1).
// *math/rand.Rand satisfies it; tests substitute fixed sequences.
type RandomSource interface {
	Float64() float64
}

// NewBall returns a ball centered at (x, y) moving by (vx, vy) per frame and
// bouncing inside a boundsW x boundsH surface.
func NewBall(x, y, vx, vy, radius, boundsW, boundsH float64) Ball {
	return Ball{
		pos:     NewPoint(x, y),
		vel:     NewPoint(vx, vy),
		radius:  radius,
		boundsW: boundsW,
		boundsH: boundsH,
	}
}

// newRandomBall places a ball in the central 60% of the surface with a radius
// between 1/15 and 2/15 of the smaller side. Four values are drawn from rng,
// in order: rx (x direction and size), ry (y direction and speed), rx2 (x
// position and speed) and ry2 (y position).
func newRandomBall(w, h float64, rng RandomSource) Ball {
	rx := rng.Float64()
	ry := rng.Float64()
	rx2 := rng.Float64()
	ry2 := rng.Float64()

	vx := 0.2 + rx2*0.25
	if rx <= 0.5 {
		vx = -vx
	}
	vy := 0.2 + ry
	if ry <= 0.5 {
		vy = -vy
	}

	wh := min(w, h)
	return NewBall(
		w*0.2+rx2*w*0.6,
		h*0.2+ry2*h*0.6,
		vx, vy,
		wh/15+rx*(wh/15),
		w, h,
	)
}

// Position returns the ball center.
func (b *Ball) Position() Point { return b.pos }

// Velocity returns the per-frame displacement.
func (b *Ball) Velocity() Point { return b.vel }

// Radius returns the ball radius.
func (b *Ball) Radius() float64 { return b.radius }

// Move advances the ball by one frame. Each axis is reflected and clamped
// against the surface bounds first, then the (possibly flipped) velocity is
// added. A ball wider than half the surface oscillates at the clamp.
func (b *Ball) Move() {
	x, vx := bounce(b.pos.x, b.vel.x, b.radius, b.boundsW)
	y, vy := bounce(b.pos.y, b.vel.y, b.radius, b.boundsH)
	b.vel.Set(vx, vy)
	b.pos.Set(x+vx, y+vy)
}

// bounce resolves one axis: past the far bound the velocity is turned
// negative, past the near bound positive, and the position is clamped in
// either case.
func bounce(pos, vel, radius, bound float64) (float64, float64) {
	if pos+radius >= bound {
		if vel > 0 {
			vel = -vel
		}
		pos = bound - radius
	} else if pos-radius <= 0 {
		if vel < 0 {
			vel = -vel
		}
		pos = radius
	}
	return pos, vel
}
