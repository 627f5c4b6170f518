// Package snapshot renders a particle simulation to an animated GIF.
package snapshot

import (
	"context"
	"fmt"
	"image"
	"image/color"
	"image/color/palette"
	"image/draw"
	"image/gif"
	"io"

	"github.com/ziadkadry99/cosmic-code/internal/canvas"
	"github.com/ziadkadry99/cosmic-code/internal/particles"
	"github.com/ziadkadry99/cosmic-code/internal/progress"
)

// Background is the darkest stop of the page gradient.
var Background = color.RGBA{R: 0x1a, G: 0x1a, B: 0x2e, A: 0xff}

// Options controls an export.
type Options struct {
	Frames int
	Delay  int // hundredths of a second per frame
}

// DefaultOptions renders two seconds at roughly 60 frames per second.
func DefaultOptions() Options {
	return Options{Frames: 120, Delay: 2}
}

// Export advances sim once per frame, rasterises it and writes the result to
// w as a looping GIF. The simulation is left in its final state.
func Export(ctx context.Context, w io.Writer, sim *particles.Simulation, opts Options, reporter progress.Reporter) error {
	if opts.Frames <= 0 {
		return fmt.Errorf("snapshot: frames must be positive, got %d", opts.Frames)
	}
	if opts.Delay <= 0 {
		opts.Delay = DefaultOptions().Delay
	}
	if reporter == nil {
		reporter = progress.Discard{}
	}

	b := sim.Bounds()
	raster := canvas.NewRaster(int(b.Width), int(b.Height), Background)
	pal := framePalette()

	anim := &gif.GIF{LoopCount: 0}
	loop := particles.NewLoop(sim, raster, func(frame int) error {
		img := raster.Image()
		frameImg := image.NewPaletted(img.Bounds(), pal)
		draw.Draw(frameImg, img.Bounds(), img, image.Point{}, draw.Src)
		anim.Image = append(anim.Image, frameImg)
		anim.Delay = append(anim.Delay, opts.Delay)
		reporter.Update(frame, fmt.Sprintf("frame %d", frame))
		return nil
	})

	reporter.Start(opts.Frames)
	for i := 0; i < opts.Frames; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := loop.Step(); err != nil {
			return err
		}
	}
	reporter.Finish()

	if err := gif.EncodeAll(w, anim); err != nil {
		return fmt.Errorf("encoding gif: %w", err)
	}
	return nil
}

// framePalette is Plan 9's palette with black swapped for the page background, so
// empty space does not dither.
func framePalette() color.Palette {
	pal := make(color.Palette, len(palette.Plan9))
	copy(pal, palette.Plan9)
	pal[0] = Background
	return pal
}
