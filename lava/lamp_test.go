package lava

import (
	"errors"
	"math/rand"
	"slices"
	"testing"
)

func TestNew_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		w, h   float64
		balls  int
		c0, c1 string
		opts   []Option
	}{
		{"zero width", 0, 100, 3, "#000000", "#ffffff", nil},
		{"negative height", 100, -1, 3, "#000000", "#ffffff", nil},
		{"zero balls", 100, 100, 0, "#000000", "#ffffff", nil},
		{"negative balls", 100, 100, -2, "#000000", "#ffffff", nil},
		{"bad color0", 100, 100, 3, "purple", "#ffffff", nil},
		{"bad color1", 100, 100, 3, "#000000", "#12", nil},
		{"zero step", 100, 100, 3, "#000000", "#ffffff", []Option{WithStep(0)}},
		{"ball count mismatch", 100, 100, 3, "#000000", "#ffffff",
			[]Option{WithBalls(NewBall(50, 50, 0, 0, 5, 100, 100))}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			l, err := New(tt.w, tt.h, tt.balls, tt.c0, tt.c1, tt.opts...)
			if !errors.Is(err, ErrInvalidConfig) {
				t.Errorf("New() error = %v, want ErrInvalidConfig", err)
			}
			if l != nil {
				t.Errorf("New() returned a lamp with an error")
			}
		})
	}
}

func TestNew_RandomBalls(t *testing.T) {
	const w, h = 640.0, 480.0
	l, err := New(w, h, 10, "#5d3a97", "#8942a4", WithRandom(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	balls := l.Balls()
	if len(balls) != 10 {
		t.Fatalf("balls = %d, want 10", len(balls))
	}
	for i, b := range balls {
		p := b.Position()
		if p.X() < 0.2*w || p.X() > 0.8*w || p.Y() < 0.2*h || p.Y() > 0.8*h {
			t.Errorf("ball %d at (%v, %v) outside the central 60%%", i, p.X(), p.Y())
		}
		if b.Radius() < h/15 || b.Radius() > 2*h/15 {
			t.Errorf("ball %d radius %v outside [%v, %v]", i, b.Radius(), h/15, 2*h/15)
		}
	}

	again, err := New(w, h, 10, "#5d3a97", "#8942a4", WithRandom(rand.New(rand.NewSource(1))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !slices.Equal(balls, again.Balls()) {
		t.Errorf("same seed produced different balls")
	}
}

func TestLamp_AdvanceFrameCounters(t *testing.T) {
	l, err := New(200, 200, 2, "#000000", "#ffffff", WithRandom(rand.New(rand.NewSource(3))))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if l.Iteration() != 0 || l.Sign() != 1 {
		t.Fatalf("initial iteration/sign = %d/%v, want 0/1", l.Iteration(), l.Sign())
	}
	for frame := 1; frame <= 4; frame++ {
		if err := l.AdvanceFrame(&recordingSurface{}); err != nil {
			t.Fatalf("AdvanceFrame: %v", err)
		}
		wantSign := 1.0
		if frame%2 == 1 {
			wantSign = -1
		}
		if l.Iteration() != frame || l.Sign() != wantSign {
			t.Errorf("frame %d: iteration/sign = %d/%v, want %d/%v", frame, l.Iteration(), l.Sign(), frame, wantSign)
		}
	}
}

func TestLamp_AdvanceFrameMovesBalls(t *testing.T) {
	l, err := New(200, 200, 1, "#000000", "#ffffff",
		WithBalls(NewBall(100, 100, 1.5, -0.5, 20, 200, 200)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if err := l.AdvanceFrame(&recordingSurface{}); err != nil {
		t.Fatalf("AdvanceFrame: %v", err)
	}
	if p := l.Balls()[0].Position(); p.X() != 101.5 || p.Y() != 99.5 {
		t.Errorf("ball at (%v, %v), want (101.5, 99.5)", p.X(), p.Y())
	}
}

func TestLamp_AdvanceFrameCallOrder(t *testing.T) {
	l, err := New(100, 100, 1, "#000000", "#ffffff",
		WithBalls(NewBall(50, 50, 0, 0, 5, 100, 100)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := &recordingSurface{}
	if err := l.AdvanceFrame(rec); err != nil {
		t.Fatalf("AdvanceFrame: %v", err)
	}

	want := []string{"SetFillStyle", "SetShadow", "BeginPath"}
	for range rec.paths[0] {
		want = append(want, "LineTo")
	}
	want = append(want, "ClosePath", "Fill", "Stroke")
	if !slices.Equal(rec.calls, want) {
		t.Errorf("calls = %v, want %v", rec.calls, want)
	}
	if rec.blur != DefaultShadowBlur {
		t.Errorf("shadow blur = %v, want %v", rec.blur, DefaultShadowBlur)
	}
	if len(rec.styles) != 1 || rec.styles[0] != l.Fill() {
		t.Errorf("fill style not set to the lamp gradient")
	}
}

func TestLamp_AdvanceFrameFillError(t *testing.T) {
	l, err := New(100, 100, 1, "#000000", "#ffffff",
		WithBalls(NewBall(50, 50, 0, 0, 5, 100, 100)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	boom := errors.New("boom")
	err = l.AdvanceFrame(&recordingSurface{fillErr: boom})
	if !errors.Is(err, boom) {
		t.Errorf("AdvanceFrame() error = %v, want wrapped %v", err, boom)
	}
}

func TestLamp_GradientReusedAcrossFrames(t *testing.T) {
	l, err := New(100, 100, 1, "#000000", "#ffffff",
		WithBalls(NewBall(50, 50, 0, 0, 5, 100, 100)))
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	rec := &recordingSurface{}
	for i := 0; i < 3; i++ {
		if err := l.AdvanceFrame(rec); err != nil {
			t.Fatalf("AdvanceFrame: %v", err)
		}
	}
	for i, s := range rec.styles {
		if s != l.Fill() {
			t.Errorf("frame %d used a different fill brush", i)
		}
	}
}
