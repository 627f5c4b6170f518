package term

import (
	"context"
	"image/color"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/ziadkadry99/cosmic-code/internal/particles"
)

func newScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("Init: %v", err)
	}
	s.SetSize(w, h)
	t.Cleanup(s.Fini)
	return s
}

func TestSurfaceBounds(t *testing.T) {
	s := NewSurface(newScreen(t, 80, 24))
	b := s.Bounds()
	if b.Width != 80 || b.Height != 48 {
		t.Errorf("unexpected bounds %+v", b)
	}
}

func TestFillCircleMarksCell(t *testing.T) {
	screen := newScreen(t, 10, 5)
	s := NewSurface(screen)

	s.Clear()
	s.FillCircle(3.7, 4.9, 2.5, particles.Fill)
	s.FillCircle(8.2, 0.5, 1.2, particles.Fill)
	s.FillCircle(-1, 3, 1, particles.Fill)  // off screen
	s.FillCircle(5, 100, 1, particles.Fill) // off screen
	screen.Show()

	cells, w, _ := screen.GetContents()
	at := func(x, y int) rune {
		c := cells[y*w+x]
		if len(c.Runes) == 0 {
			return 0
		}
		return c.Runes[0]
	}

	if got := at(3, 2); got != '•' {
		t.Errorf("expected large glyph at (3,2), got %q", got)
	}
	if got := at(8, 0); got != '·' {
		t.Errorf("expected small glyph at (8,0), got %q", got)
	}

	marked := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			marked++
		}
	}
	if marked != 2 {
		t.Errorf("expected 2 marked cells, got %d", marked)
	}
}

func TestBlend(t *testing.T) {
	if got := blend(color.NRGBA{R: 255, G: 255, B: 255, A: 255}); got != tcell.NewRGBColor(255, 255, 255) {
		t.Errorf("opaque white should stay white, got %v", got)
	}
	if got := blend(color.NRGBA{A: 0}); got != background {
		t.Errorf("transparent should be background, got %v", got)
	}
}

func TestIsQuit(t *testing.T) {
	tests := []struct {
		ev   *tcell.EventKey
		want bool
	}{
		{tcell.NewEventKey(tcell.KeyEscape, 0, tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), true},
		{tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), true},
		{tcell.NewEventKey(tcell.KeyRune, 'x', tcell.ModNone), false},
		{tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), false},
	}
	for _, tt := range tests {
		if got := isQuit(tt.ev); got != tt.want {
			t.Errorf("isQuit(%v) = %v, want %v", tt.ev.Name(), got, tt.want)
		}
	}
}

func newSim(t *testing.T, screen tcell.Screen) *particles.Simulation {
	t.Helper()
	sim, err := particles.NewSeeded(30, NewSurface(screen).Bounds(), 9)
	if err != nil {
		t.Fatal(err)
	}
	return sim
}

func TestRunStopsOnQuitKey(t *testing.T) {
	screen := newScreen(t, 40, 12)
	sim := newSim(t, screen)

	done := make(chan error, 1)
	go func() { done <- Run(t.Context(), screen, sim, 120) }()

	time.Sleep(50 * time.Millisecond)
	screen.InjectKey(tcell.KeyRune, 'q', tcell.ModNone)

	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("Run: %v", err)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not stop on q")
	}
}

func TestRunStopsOnCancel(t *testing.T) {
	screen := newScreen(t, 40, 12)
	sim := newSim(t, screen)

	ctx, cancel := context.WithTimeout(t.Context(), 100*time.Millisecond)
	defer cancel()
	if err := Run(ctx, screen, sim, 0); err != nil {
		t.Fatalf("Run: %v", err)
	}

	cells, _, _ := screen.GetContents()
	marked := 0
	for _, c := range cells {
		if len(c.Runes) > 0 && c.Runes[0] != ' ' {
			marked++
		}
	}
	if marked == 0 {
		t.Error("expected particles on screen after running")
	}
}
