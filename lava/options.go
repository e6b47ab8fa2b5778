package lava

import (
	"math/rand"
	"time"

	"github.com/gogpu/gg"
)

const (
	// DefaultStep is the lattice spacing in surface units.
	DefaultStep = 10.0

	// DefaultShadowBlur is the shadow blur applied under every blob.
	DefaultShadowBlur = 50.0
)

// Option configures a Lamp at construction.
type Option func(*options)

type options struct {
	rng         RandomSource
	step        float64
	balls       []Ball
	shadowBlur  float64
	shadowColor gg.RGBA
	maxSteps    int
}

func defaultOptions() options {
	return options{
		step:        DefaultStep,
		shadowBlur:  DefaultShadowBlur,
		shadowColor: gg.Black,
	}
}

// WithRandom sets the source used to place random balls. By default a
// time-seeded *rand.Rand is used.
func WithRandom(rng RandomSource) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithStep sets the lattice spacing.
func WithStep(step float64) Option {
	return func(o *options) {
		o.step = step
	}
}

// WithBalls replaces random placement with the given balls. Their count must
// match the ball count passed to New.
func WithBalls(balls ...Ball) Option {
	return func(o *options) {
		o.balls = append([]Ball(nil), balls...)
	}
}

// WithShadow sets the shadow drawn under every blob. A zero blur disables it.
func WithShadow(blur float64, c gg.RGBA) Option {
	return func(o *options) {
		o.shadowBlur = blur
		o.shadowColor = c
	}
}

// WithMaxSteps bounds a single contour walk. Non-positive values select the
// default of four steps per lattice node.
func WithMaxSteps(n int) Option {
	return func(o *options) {
		o.maxSteps = n
	}
}

func newTimeSeededRand() *rand.Rand {
	return rand.New(rand.NewSource(time.Now().UnixNano()))
}
