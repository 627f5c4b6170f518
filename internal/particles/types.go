package particles

import (
	"errors"
	"image/color"
)

// DefaultCount is the number of particles in the page background.
const DefaultCount = 100

// Ranges for randomized particle attributes.
const (
	minRadius   = 1.0
	radiusRange = 2.0
	maxSpeed    = 1.5
)

// Fill is the colour every particle is drawn with: white at 50% opacity.
var Fill = color.NRGBA{R: 255, G: 255, B: 255, A: 128}

var (
	// ErrInvalidCount is returned when a simulation is asked for a negative
	// number of particles.
	ErrInvalidCount = errors.New("particles: count must be non-negative")
	// ErrInvalidBounds is returned when the drawing area has no extent.
	ErrInvalidBounds = errors.New("particles: width and height must be positive")
)

// Particle is a point with a velocity and a fixed radius.
type Particle struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	SpeedX float64 `json:"speed_x"`
	SpeedY float64 `json:"speed_y"`
	Radius float64 `json:"radius"`
}

// Bounds is the size of the area particles move in.
type Bounds struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
}

// Contains reports whether (x, y) lies in [0, Width) x [0, Height).
func (b Bounds) Contains(x, y float64) bool {
	return x >= 0 && x < b.Width && y >= 0 && y < b.Height
}

// WrapPolicy decides where a particle leaving one edge re-enters.
type WrapPolicy string

const (
	// WrapCarry re-enters at the opposite edge, keeping the overshoot.
	WrapCarry WrapPolicy = "carry"
	// WrapReset snaps to the opposite edge, dropping the overshoot.
	WrapReset WrapPolicy = "reset"
)

// Valid reports whether p is a known policy.
func (p WrapPolicy) Valid() bool {
	return p == WrapCarry || p == WrapReset
}

// Surface is anything a simulation can be drawn on.
type Surface interface {
	// Clear erases the whole surface.
	Clear()
	// FillCircle draws a filled circle centred at (x, y).
	FillCircle(x, y, r float64, c color.NRGBA)
}
