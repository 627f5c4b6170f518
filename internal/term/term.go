// Package term draws the particle field in a terminal with tcell.
package term

import (
	"context"
	"image/color"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ziadkadry99/cosmic-code/internal/particles"
)

// CellAspect is how many simulation units tall one terminal cell is
// relative to its width. Cells are roughly twice as tall as they are wide.
const CellAspect = 2

// DefaultFPS is the tick rate used when the caller does not pick one;
// terminals give no refresh signal to follow.
const DefaultFPS = 30

var background = tcell.NewRGBColor(0x1a, 0x1a, 0x2e)

// Surface maps circles onto terminal cells.
type Surface struct {
	screen tcell.Screen
}

// NewSurface wraps screen.
func NewSurface(screen tcell.Screen) *Surface {
	return &Surface{screen: screen}
}

// Bounds returns the simulation area that covers the whole screen.
func (s *Surface) Bounds() particles.Bounds {
	w, h := s.screen.Size()
	return particles.Bounds{Width: float64(w), Height: float64(h * CellAspect)}
}

// Clear blanks the screen.
func (s *Surface) Clear() {
	s.screen.Fill(' ', tcell.StyleDefault.Background(background))
}

// FillCircle marks the cell under (x, y). Larger particles get a heavier
// glyph; the colour is c composited over the background.
func (s *Surface) FillCircle(x, y, r float64, c color.NRGBA) {
	col, row := int(x), int(y/CellAspect)
	w, h := s.screen.Size()
	if col < 0 || row < 0 || col >= w || row >= h {
		return
	}
	glyph := '·'
	if r >= 2 {
		glyph = '•'
	}
	style := tcell.StyleDefault.Background(background).Foreground(blend(c))
	s.screen.SetContent(col, row, glyph, nil, style)
}

// blend composites c over the terminal background.
func blend(c color.NRGBA) tcell.Color {
	a := int32(c.A)
	mix := func(fg uint8, bg int32) int32 {
		return (int32(fg)*a + bg*(255-a)) / 255
	}
	return tcell.NewRGBColor(mix(c.R, 0x1a), mix(c.G, 0x1a), mix(c.B, 0x2e))
}

// Run animates sim on screen at fps until ctx is cancelled or the user
// presses Esc, q or Ctrl+C. Size sim with NewSurface(screen).Bounds(). screen
// must already be initialised; Run does not call Fini.
func Run(ctx context.Context, screen tcell.Screen, sim *particles.Simulation, fps int) error {
	if fps <= 0 {
		fps = DefaultFPS
	}
	surface := NewSurface(screen)

	ctx, unmount := context.WithCancel(ctx)
	defer unmount()
	go watchKeys(screen, unmount)

	ticks := make(chan struct{})
	go func() {
		defer close(ticks)
		t := time.NewTicker(time.Second / time.Duration(fps))
		defer t.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-t.C:
				select {
				case ticks <- struct{}{}:
				case <-ctx.Done():
					return
				}
			}
		}
	}()

	loop := particles.NewLoop(sim, surface, func(int) error {
		screen.Show()
		return nil
	})
	return loop.Run(ctx, ticks)
}

// watchKeys cancels the view on a quit key and keeps the screen in sync on
// resize. It returns when the screen is finalised.
func watchKeys(screen tcell.Screen, unmount context.CancelFunc) {
	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
		case *tcell.EventKey:
			if isQuit(ev) {
				unmount()
				return
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}
