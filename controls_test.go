package main

import (
	"testing"
	"time"
)

func TestGame_AdjustSpeed(t *testing.T) {
	tests := []struct {
		start, delta, want int
	}{
		{1, 1, 2},
		{1, -1, minSpeed},
		{maxSpeed, 1, maxSpeed},
		{4, -10, minSpeed},
		{4, 10, maxSpeed},
	}
	for _, tt := range tests {
		g := &Game{speed: tt.start}
		g.adjustSpeed(tt.delta)
		if g.speed != tt.want {
			t.Errorf("adjustSpeed(%d) from %d = %d, want %d", tt.delta, tt.start, g.speed, tt.want)
		}
	}
}

func TestGame_FramesPerSecond(t *testing.T) {
	g := &Game{speed: 3}
	if got := g.framesPerSecond(); got != 3*defaultTPS {
		t.Errorf("framesPerSecond() = %v, want %v", got, 3*defaultTPS)
	}
	g.paused = true
	if got := g.framesPerSecond(); got != 0 {
		t.Errorf("framesPerSecond() paused = %v, want 0", got)
	}
}

func TestGame_Fade(t *testing.T) {
	g := &Game{cfg: runConfig{fade: 500 * time.Millisecond}}
	g.startFade()
	if g.alpha != 0 || g.fade == nil {
		t.Fatalf("after startFade alpha = %v, tween set = %v", g.alpha, g.fade != nil)
	}
	prev := g.alpha
	for i := 0; i < defaultTPS; i++ {
		g.updateFade()
		if g.alpha < prev {
			t.Fatalf("alpha decreased from %v to %v", prev, g.alpha)
		}
		prev = g.alpha
	}
	if g.alpha != 1 || g.fade != nil {
		t.Errorf("after one second alpha = %v, tween set = %v; want 1, false", g.alpha, g.fade != nil)
	}
}

func TestGame_FadeDisabled(t *testing.T) {
	g := &Game{}
	g.startFade()
	if g.alpha != 1 || g.fade != nil {
		t.Errorf("alpha = %v, tween set = %v; want 1, false", g.alpha, g.fade != nil)
	}
}
