package particles

import (
	"context"
	"errors"
	"image/color"
	"testing"
	"time"
)

// fakeSurface records draw calls.
type fakeSurface struct {
	clears  int
	circles []circle
}

type circle struct {
	x, y, r float64
	c       color.NRGBA
}

func (f *fakeSurface) Clear() {
	f.clears++
	f.circles = f.circles[:0]
}

func (f *fakeSurface) FillCircle(x, y, r float64, c color.NRGBA) {
	f.circles = append(f.circles, circle{x, y, r, c})
}

func TestNewCountAndBounds(t *testing.T) {
	bounds := Bounds{Width: 800, Height: 600}
	for _, n := range []int{0, 1, 100, 1000} {
		sim, err := NewSeeded(n, bounds, 42)
		if err != nil {
			t.Fatalf("NewSeeded(%d): %v", n, err)
		}
		if sim.Len() != n {
			t.Errorf("expected %d particles, got %d", n, sim.Len())
		}
		for i, p := range sim.Particles() {
			if !bounds.Contains(p.X, p.Y) {
				t.Errorf("particle %d at (%g, %g) outside bounds", i, p.X, p.Y)
			}
			if p.Radius < 1 || p.Radius >= 3 {
				t.Errorf("particle %d radius %g outside [1, 3)", i, p.Radius)
			}
			if p.SpeedX < -1.5 || p.SpeedX >= 1.5 || p.SpeedY < -1.5 || p.SpeedY >= 1.5 {
				t.Errorf("particle %d speed (%g, %g) outside [-1.5, 1.5)", i, p.SpeedX, p.SpeedY)
			}
		}
	}
}

func TestNewRejectsBadInput(t *testing.T) {
	if _, err := NewSeeded(-1, Bounds{Width: 10, Height: 10}, 1); !errors.Is(err, ErrInvalidCount) {
		t.Errorf("expected ErrInvalidCount, got %v", err)
	}
	for _, b := range []Bounds{{0, 10}, {10, 0}, {-5, 10}} {
		if _, err := NewSeeded(3, b, 1); !errors.Is(err, ErrInvalidBounds) {
			t.Errorf("bounds %+v: expected ErrInvalidBounds, got %v", b, err)
		}
	}
}

func TestSeedIsDeterministic(t *testing.T) {
	bounds := Bounds{Width: 320, Height: 240}
	a, _ := NewSeeded(50, bounds, 7)
	b, _ := NewSeeded(50, bounds, 7)
	for i := 0; i < 25; i++ {
		a.Advance()
		b.Advance()
	}
	pa, pb := a.Particles(), b.Particles()
	for i := range pa {
		if pa[i] != pb[i] {
			t.Fatalf("particle %d diverged: %+v vs %+v", i, pa[i], pb[i])
		}
	}
}

func TestAdvanceKeepsParticlesInBounds(t *testing.T) {
	for _, wrap := range []WrapPolicy{WrapCarry, WrapReset} {
		t.Run(string(wrap), func(t *testing.T) {
			bounds := Bounds{Width: 37, Height: 11}
			sim, err := NewSeeded(200, bounds, 99, WithWrap(wrap))
			if err != nil {
				t.Fatal(err)
			}
			for step := 0; step < 2000; step++ {
				sim.Advance()
				for i, p := range sim.Particles() {
					if !bounds.Contains(p.X, p.Y) {
						t.Fatalf("step %d: particle %d at (%g, %g) outside bounds", step, i, p.X, p.Y)
					}
				}
			}
		})
	}
}

func TestAdvanceWrapsAtEdges(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 50}
	tests := []struct {
		name  string
		wrap  WrapPolicy
		in    Particle
		wantX float64
		wantY float64
	}{
		{"carry past right", WrapCarry, Particle{X: 99.5, Y: 10, SpeedX: 1}, 0.5, 10},
		{"carry past left", WrapCarry, Particle{X: 0.25, Y: 10, SpeedX: -0.5}, 99.75, 10},
		{"carry past bottom", WrapCarry, Particle{X: 10, Y: 49.5, SpeedY: 1.25}, 10, 0.75},
		{"carry past top", WrapCarry, Particle{X: 10, Y: 1, SpeedY: -1.5}, 10, 49.5},
		{"reset past right", WrapReset, Particle{X: 99.5, Y: 10, SpeedX: 1}, 0, 10},
		{"exactly on edge wraps", WrapCarry, Particle{X: 99, Y: 10, SpeedX: 1}, 0, 10},
		{"interior unchanged", WrapCarry, Particle{X: 40, Y: 20, SpeedX: 1.5, SpeedY: -1.5}, 41.5, 18.5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sim, err := FromParticles([]Particle{tt.in}, bounds, WithWrap(tt.wrap))
			if err != nil {
				t.Fatal(err)
			}
			sim.Advance()
			got := sim.Particles()[0]
			if got.X != tt.wantX || got.Y != tt.wantY {
				t.Errorf("got (%g, %g), want (%g, %g)", got.X, got.Y, tt.wantX, tt.wantY)
			}
		})
	}
}

func TestResetPastLeftStaysBelowFarEdge(t *testing.T) {
	bounds := Bounds{Width: 100, Height: 50}
	sim, _ := FromParticles([]Particle{{X: 0.5, Y: 10, SpeedX: -1}}, bounds, WithWrap(WrapReset))
	sim.Advance()
	got := sim.Particles()[0]
	if got.X >= bounds.Width || got.X < bounds.Width-1e-9 {
		t.Errorf("expected x just below %g, got %g", bounds.Width, got.X)
	}
}

func TestOvershootLargerThanBounds(t *testing.T) {
	bounds := Bounds{Width: 1, Height: 1}
	sim, _ := FromParticles([]Particle{{X: 0.9, Y: 0.1, SpeedX: 1.5, SpeedY: -1.4}}, bounds)
	sim.Advance()
	got := sim.Particles()[0]
	if !bounds.Contains(got.X, got.Y) {
		t.Errorf("expected in bounds, got (%g, %g)", got.X, got.Y)
	}
}

func TestRenderDrawsEveryParticle(t *testing.T) {
	sim, _ := NewSeeded(12, Bounds{Width: 200, Height: 100}, 3)
	surface := &fakeSurface{}
	before := sim.Particles()

	sim.Render(surface)

	if surface.clears != 1 {
		t.Errorf("expected 1 clear, got %d", surface.clears)
	}
	if len(surface.circles) != 12 {
		t.Fatalf("expected 12 circles, got %d", len(surface.circles))
	}
	for i, c := range surface.circles {
		if c.x != before[i].X || c.y != before[i].Y || c.r != before[i].Radius {
			t.Errorf("circle %d = %+v does not match particle %+v", i, c, before[i])
		}
		if c.c != Fill {
			t.Errorf("circle %d colour %v, want %v", i, c.c, Fill)
		}
	}

	after := sim.Particles()
	for i := range before {
		if before[i] != after[i] {
			t.Errorf("Render mutated particle %d", i)
		}
	}
}

func TestEmptySimulation(t *testing.T) {
	sim, err := NewSeeded(0, Bounds{Width: 640, Height: 480}, 1)
	if err != nil {
		t.Fatalf("NewSeeded: %v", err)
	}
	surface := &fakeSurface{}
	for i := 0; i < 10; i++ {
		sim.Advance()
		sim.Render(surface)
	}
	if len(surface.circles) != 0 {
		t.Errorf("expected no circles, got %d", len(surface.circles))
	}
	if surface.clears != 10 {
		t.Errorf("expected 10 clears, got %d", surface.clears)
	}
}

func TestLoopRunStepsPerTick(t *testing.T) {
	sim, _ := NewSeeded(5, Bounds{Width: 50, Height: 50}, 11)
	surface := &fakeSurface{}
	var presented []int
	loop := NewLoop(sim, surface, func(frame int) error {
		presented = append(presented, frame)
		return nil
	})

	ticks := make(chan struct{})
	done := make(chan error, 1)
	go func() { done <- loop.Run(context.Background(), ticks) }()

	for i := 0; i < 3; i++ {
		ticks <- struct{}{}
	}
	close(ticks)

	if err := <-done; err != nil {
		t.Fatalf("Run: %v", err)
	}
	if loop.Frames() != 3 {
		t.Errorf("expected 3 frames, got %d", loop.Frames())
	}
	if len(presented) != 3 || presented[2] != 3 {
		t.Errorf("unexpected present calls: %v", presented)
	}
	if surface.clears != 3 {
		t.Errorf("expected 3 clears, got %d", surface.clears)
	}
}

func TestLoopStopsOnCancel(t *testing.T) {
	sim, _ := NewSeeded(1, Bounds{Width: 10, Height: 10}, 1)
	loop := NewLoop(sim, &fakeSurface{}, nil)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- loop.Run(ctx, make(chan struct{})) }()
	cancel()

	select {
	case err := <-done:
		if err != nil {
			t.Errorf("expected nil on cancel, got %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("loop did not stop after cancel")
	}
}

func TestLoopPresentErrorStops(t *testing.T) {
	sim, _ := NewSeeded(1, Bounds{Width: 10, Height: 10}, 1)
	boom := errors.New("boom")
	loop := NewLoop(sim, &fakeSurface{}, func(int) error { return boom })

	ticks := make(chan struct{}, 2)
	ticks <- struct{}{}
	ticks <- struct{}{}

	if err := loop.Run(context.Background(), ticks); !errors.Is(err, boom) {
		t.Errorf("expected boom, got %v", err)
	}
	if loop.Frames() != 1 {
		t.Errorf("expected loop to stop after 1 frame, got %d", loop.Frames())
	}
}
