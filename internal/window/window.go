// Package window runs the particle field in a desktop window with ebiten.
package window

import (
	"errors"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/ziadkadry99/cosmic-code/internal/particles"
)

var background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

// surface adapts an ebiten frame to particles.Surface.
type surface struct {
	img *ebiten.Image
}

func (s surface) Clear() {
	s.img.Fill(background)
}

func (s surface) FillCircle(x, y, r float64, c color.NRGBA) {
	vector.DrawFilledCircle(s.img, float32(x), float32(y), float32(r), c, true)
}

type game struct {
	sim    *particles.Simulation
	bounds particles.Bounds
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	g.sim.Advance()
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	g.sim.Render(surface{img: screen})
}

func (g *game) Layout(int, int) (int, int) {
	return int(g.bounds.Width), int(g.bounds.Height)
}

// Run opens a window the size of the simulation and animates it, one step
// per displayed frame, until the window is closed or Esc or q is pressed.
func Run(sim *particles.Simulation, title string) error {
	b := sim.Bounds()
	ebiten.SetWindowSize(int(b.Width), int(b.Height))
	ebiten.SetWindowTitle(title)
	ebiten.SetTPS(ebiten.SyncWithFPS)

	if err := ebiten.RunGame(&game{sim: sim, bounds: b}); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}
