package particles

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Simulation owns a fixed set of particles moving inside Bounds.
// It is not safe for concurrent use; a single loop drives it.
type Simulation struct {
	bounds    Bounds
	wrap      WrapPolicy
	particles []Particle
}

// Option configures a Simulation.
type Option func(*Simulation)

// WithWrap selects the edge policy. The default is WrapCarry.
func WithWrap(p WrapPolicy) Option {
	return func(s *Simulation) {
		if p.Valid() {
			s.wrap = p
		}
	}
}

// New creates count particles with random positions inside bounds, speeds in
// [-1.5, 1.5) on each axis and radii in [1, 3). The same rng seed always
// produces the same field.
func New(count int, bounds Bounds, rng *rand.Rand, opts ...Option) (*Simulation, error) {
	if count < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidCount, count)
	}
	if !(bounds.Width > 0) || !(bounds.Height > 0) {
		return nil, fmt.Errorf("%w: got %gx%g", ErrInvalidBounds, bounds.Width, bounds.Height)
	}

	s := &Simulation{
		bounds:    bounds,
		wrap:      WrapCarry,
		particles: make([]Particle, count),
	}
	for _, opt := range opts {
		opt(s)
	}

	for i := range s.particles {
		s.particles[i] = Particle{
			X:      rng.Float64() * bounds.Width,
			Y:      rng.Float64() * bounds.Height,
			Radius: rng.Float64()*radiusRange + minRadius,
			SpeedX: rng.Float64()*2*maxSpeed - maxSpeed,
			SpeedY: rng.Float64()*2*maxSpeed - maxSpeed,
		}
	}
	return s, nil
}

// NewSeeded is New with a PCG source built from seed.
func NewSeeded(count int, bounds Bounds, seed uint64, opts ...Option) (*Simulation, error) {
	return New(count, bounds, rand.New(rand.NewPCG(seed, seed)), opts...)
}

// FromParticles builds a simulation around an explicit particle set. The
// slice is copied.
func FromParticles(ps []Particle, bounds Bounds, opts ...Option) (*Simulation, error) {
	if !(bounds.Width > 0) || !(bounds.Height > 0) {
		return nil, fmt.Errorf("%w: got %gx%g", ErrInvalidBounds, bounds.Width, bounds.Height)
	}
	s := &Simulation{
		bounds:    bounds,
		wrap:      WrapCarry,
		particles: append([]Particle(nil), ps...),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// Bounds returns the area the particles move in.
func (s *Simulation) Bounds() Bounds { return s.bounds }

// Len returns the number of particles.
func (s *Simulation) Len() int { return len(s.particles) }

// Particles returns a copy of the current particle states.
func (s *Simulation) Particles() []Particle {
	return append([]Particle(nil), s.particles...)
}

// Advance moves every particle by its velocity and wraps it back inside the
// bounds.
func (s *Simulation) Advance() {
	for i := range s.particles {
		p := &s.particles[i]
		p.X = s.wrapAxis(p.X+p.SpeedX, s.bounds.Width)
		p.Y = s.wrapAxis(p.Y+p.SpeedY, s.bounds.Height)
	}
}

// Render clears surface and draws each particle as a filled circle.
func (s *Simulation) Render(surface Surface) {
	surface.Clear()
	for _, p := range s.particles {
		surface.FillCircle(p.X, p.Y, p.Radius, Fill)
	}
}

func (s *Simulation) wrapAxis(v, size float64) float64 {
	switch s.wrap {
	case WrapReset:
		if v >= size {
			v = 0
		} else if v < 0 {
			v = math.Nextafter(size, 0)
		}
	default:
		if v >= size {
			v -= size
		} else if v < 0 {
			v += size
		}
	}
	return reduce(v, size)
}

// reduce folds v into [0, size) for overshoots larger than one width and for
// rounding at the edge (a tiny negative plus size can round up to size).
func reduce(v, size float64) float64 {
	if v >= 0 && v < size {
		return v
	}
	v = math.Mod(v, size)
	if v < 0 {
		v += size
	}
	if v >= size {
		v = 0
	}
	return v
}
