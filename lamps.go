package main

import (
	"errors"
	"fmt"
	"log/slog"
	"math/rand"
	"time"

	"github.com/lucasb-eyer/go-colorful"

	"lavalamp/lava"
)

// errInvalidFlag is wrapped by every flag validation failure.
var errInvalidFlag = errors.New("invalid flag")

// runConfig is the validated set of flags for one run.
type runConfig struct {
	width, height int
	lamps         int
	balls         int
	step          float64
	seed          int64
	scale         float64
	background    colorful.Color
	fade          time.Duration
	debug         bool
	terminal      bool
	frames        int
	png           string
	cpuProfile    string
	logLevel      slog.Level
}

// configFromFlags gathers the parsed flags into a runConfig.
func configFromFlags() (runConfig, error) {
	cfg := runConfig{
		width:      *widthFlag,
		height:     *heightFlag,
		lamps:      *lampsFlag,
		balls:      *ballsFlag,
		step:       *stepFlag,
		seed:       *seedFlag,
		scale:      *scaleFlag,
		fade:       *fadeFlag,
		debug:      *debugFlag,
		terminal:   *terminalFlag,
		frames:     *framesFlag,
		png:        *pngFlag,
		cpuProfile: *cpuProfileFlag,
	}
	bg, err := colorful.Hex(*backgroundFlag)
	if err != nil {
		return runConfig{}, fmt.Errorf("%w: -background %q: %v", errInvalidFlag, *backgroundFlag, err)
	}
	cfg.background = bg
	if err := cfg.logLevel.UnmarshalText([]byte(*logLevelFlag)); err != nil {
		return runConfig{}, fmt.Errorf("%w: -log-level %q", errInvalidFlag, *logLevelFlag)
	}
	if cfg.seed == 0 {
		cfg.seed = time.Now().UnixNano()
	}
	return cfg, cfg.validate()
}

// validate checks the numeric flags. Lamp colors and ball placement are
// checked again by lava.New.
func (c runConfig) validate() error {
	switch {
	case c.width <= 0 || c.height <= 0:
		return fmt.Errorf("%w: surface %dx%d", errInvalidFlag, c.width, c.height)
	case c.lamps <= 0:
		return fmt.Errorf("%w: -lamps %d", errInvalidFlag, c.lamps)
	case c.balls <= 0:
		return fmt.Errorf("%w: -balls %d", errInvalidFlag, c.balls)
	case c.step <= 0:
		return fmt.Errorf("%w: -step %g", errInvalidFlag, c.step)
	case c.scale <= 0:
		return fmt.Errorf("%w: -scale %g", errInvalidFlag, c.scale)
	case c.fade < 0:
		return fmt.Errorf("%w: -fade %s", errInvalidFlag, c.fade)
	case c.png != "" && c.frames <= 0:
		return fmt.Errorf("%w: -frames %d with -png", errInvalidFlag, c.frames)
	case c.png != "" && c.terminal:
		return fmt.Errorf("%w: -png and -terminal are exclusive", errInvalidFlag)
	}
	return nil
}

// buildDriver creates cfg.lamps lamps over the palette, each seeded from
// cfg.seed plus its index, in draw order.
func buildDriver(cfg runConfig) (*lava.Driver, error) {
	w, h := float64(cfg.width), float64(cfg.height)
	lamps := make([]*lava.Lamp, 0, cfg.lamps)
	for i := 0; i < cfg.lamps; i++ {
		colors := palette[i%len(palette)]
		rng := rand.New(rand.NewSource(cfg.seed + int64(i)))
		l, err := lava.New(w, h, cfg.balls, colors.inner, colors.outer,
			lava.WithRandom(rng),
			lava.WithStep(cfg.step),
		)
		if err != nil {
			return nil, fmt.Errorf("lamp %d: %w", i, err)
		}
		lamps = append(lamps, l)
	}
	slog.Info("lamps ready", "lamps", len(lamps), "balls", cfg.balls, "seed", cfg.seed)
	return lava.NewDriver(lamps...), nil
}
