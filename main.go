package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/gogpu/gg"

	"lavalamp/lava"
)

func main() {
	flag.Parse()
	cfg, err := configFromFlags()
	if err != nil {
		fmt.Fprintf(os.Stderr, "lavalamp: %v\n", err)
		flag.Usage()
		os.Exit(2)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)
	gg.SetLogger(logger)
	lava.SetLogger(logger)

	if err := run(cfg); err != nil {
		slog.Error("lavalamp failed", "err", err)
		os.Exit(1)
	}
}

// newLogger writes text records to stderr. Terminal mode owns the screen, so
// its logger only reports errors.
func newLogger(cfg runConfig) *slog.Logger {
	level := cfg.logLevel
	if cfg.terminal && level < slog.LevelError {
		level = slog.LevelError
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

// run dispatches to the selected mode, profiled when -cpuprofile is set.
func run(cfg runConfig) error {
	return withCPUProfile(cfg.cpuProfile, func() error {
		switch {
		case cfg.png != "":
			return runHeadless(cfg)
		case cfg.terminal:
			return runTerminal(cfg)
		default:
			return runWindow(cfg)
		}
	})
}
