package particles

import "context"

// Loop is the animation task a host starts when a view mounts and stops when
// it unmounts. It has no clock of its own: each value received on the tick
// channel is one frame.
type Loop struct {
	sim     *Simulation
	surface Surface
	present func(frame int) error
	frames  int
}

// NewLoop binds sim to surface. present, if non-nil, runs after every frame
// is drawn, typically to flush the surface to its display.
func NewLoop(sim *Simulation, surface Surface, present func(frame int) error) *Loop {
	return &Loop{sim: sim, surface: surface, present: present}
}

// Step advances the simulation once and redraws it.
func (l *Loop) Step() error {
	l.sim.Advance()
	l.sim.Render(l.surface)
	l.frames++
	if l.present != nil {
		return l.present(l.frames)
	}
	return nil
}

// Frames returns the number of completed steps.
func (l *Loop) Frames() int { return l.frames }

// Run steps once per tick until ctx is cancelled or ticks is closed, both of
// which return nil. A present error stops the loop and is returned.
func (l *Loop) Run(ctx context.Context, ticks <-chan struct{}) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case _, ok := <-ticks:
			if !ok {
				return nil
			}
			if err := l.Step(); err != nil {
				return err
			}
		}
	}
}
