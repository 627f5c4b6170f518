// Package canvas provides drawing surfaces for the particle simulation that
// are not tied to a display: a draw-list recorder for browser canvases and an
// in-memory raster.
package canvas

import (
	"fmt"
	"image/color"
	"math"
	"strconv"
)

// Op is one fillCircle call, in the shape the browser client replays.
type Op struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	R    float64 `json:"r"`
	Fill string  `json:"fill"`
}

// Recorder is a Surface that keeps the draw list of the current frame.
type Recorder struct {
	ops   []Op
	fills map[color.NRGBA]string
}

// NewRecorder returns an empty Recorder.
func NewRecorder() *Recorder {
	return &Recorder{fills: make(map[color.NRGBA]string)}
}

// Clear drops every recorded op.
func (r *Recorder) Clear() {
	r.ops = r.ops[:0]
}

// FillCircle records a circle. Values are truncated to hundredths of a pixel
// to keep frames small; truncation never moves a point past the far edge.
func (r *Recorder) FillCircle(x, y, radius float64, c color.NRGBA) {
	r.ops = append(r.ops, Op{
		X:    trunc2(x),
		Y:    trunc2(y),
		R:    trunc2(radius),
		Fill: r.fill(c),
	})
}

// Ops returns a copy of the current draw list.
func (r *Recorder) Ops() []Op {
	return append([]Op{}, r.ops...)
}

// Len returns the number of recorded ops.
func (r *Recorder) Len() int { return len(r.ops) }

func (r *Recorder) fill(c color.NRGBA) string {
	if s, ok := r.fills[c]; ok {
		return s
	}
	s := CSSColor(c)
	r.fills[c] = s
	return s
}

// CSSColor formats c as a CSS rgba() value, e.g. "rgba(255, 255, 255, 0.5)".
func CSSColor(c color.NRGBA) string {
	alpha := strconv.FormatFloat(float64(c.A)/255, 'g', 2, 64)
	return fmt.Sprintf("rgba(%d, %d, %d, %s)", c.R, c.G, c.B, alpha)
}

// trunc2 returns the largest hundredth not greater than v.
func trunc2(v float64) float64 {
	t := math.Floor(v*100) / 100
	if t > v {
		t -= 0.01
	}
	return t
}
