package canvas

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/vector"
)

// kappa places cubic control points so four Bézier segments approximate a
// circle.
const kappa = 0.5522847498

// Raster is a Surface backed by an RGBA image. Circles are anti-aliased with
// the x/image vector rasterizer and composited over the background.
type Raster struct {
	img        *image.RGBA
	background color.Color
	z          *vector.Rasterizer
}

// NewRaster creates a width x height raster cleared to background.
func NewRaster(width, height int, background color.Color) *Raster {
	r := &Raster{
		img:        image.NewRGBA(image.Rect(0, 0, width, height)),
		background: background,
		z:          vector.NewRasterizer(width, height),
	}
	r.Clear()
	return r
}

// Image returns the backing image. It is overwritten by the next frame.
func (r *Raster) Image() *image.RGBA { return r.img }

// Clear fills the raster with the background colour.
func (r *Raster) Clear() {
	draw.Draw(r.img, r.img.Bounds(), image.NewUniform(r.background), image.Point{}, draw.Src)
}

// FillCircle composites a filled circle over the current image.
func (r *Raster) FillCircle(x, y, radius float64, c color.NRGBA) {
	b := r.img.Bounds()
	r.z.Reset(b.Dx(), b.Dy())
	r.z.DrawOp = draw.Over

	cx, cy, rad := float32(x), float32(y), float32(radius)
	k := float32(kappa) * rad
	r.z.MoveTo(cx+rad, cy)
	r.z.CubeTo(cx+rad, cy+k, cx+k, cy+rad, cx, cy+rad)
	r.z.CubeTo(cx-k, cy+rad, cx-rad, cy+k, cx-rad, cy)
	r.z.CubeTo(cx-rad, cy-k, cx-k, cy-rad, cx, cy-rad)
	r.z.CubeTo(cx+k, cy-rad, cx+rad, cy-k, cx+rad, cy)
	r.z.ClosePath()
	r.z.Draw(r.img, b, image.NewUniform(c), image.Point{})
}
