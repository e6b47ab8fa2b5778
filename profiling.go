package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
)

// withCPUProfile runs fn while writing a CPU profile to path. An empty path
// runs fn unprofiled. The profile is flushed even when fn fails, and a
// failure to close it is reported alongside fn's error.
func withCPUProfile(path string, fn func() error) (err error) {
	if path == "" {
		return fn()
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create cpu profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return fmt.Errorf("start cpu profile: %w", err)
	}
	slog.Info("cpu profile started", "path", path)
	defer func() {
		pprof.StopCPUProfile()
		if cerr := f.Close(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close cpu profile: %w", cerr))
		}
	}()
	return fn()
}
