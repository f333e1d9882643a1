// Package raster is a headless backdrop.Canvas backed by an in-memory RGBA
// image. It is used for snapshots and golden-image tests, where the GPU
// canvas of the game loop is not available.
package raster

import (
	"image"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"

	"github.com/iburimskiy/shader-backdrop/internal/backdrop"
)

var _ backdrop.Canvas = (*Canvas)(nil)

// Canvas draws with source-over compositing onto an *image.RGBA.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// New returns a cleared canvas of the given size.
func New(w, h int) *Canvas {
	c := &Canvas{}
	c.Resize(w, h)
	return c
}

func (c *Canvas) Size() (int, int) {
	b := c.img.Bounds()
	return b.Dx(), b.Dy()
}

// Resize reallocates the image; previous pixels are dropped.
func (c *Canvas) Resize(w, h int) {
	c.img = image.NewRGBA(image.Rect(0, 0, max(w, 0), max(h, 0)))
	c.z = nil
}

// Image returns the backing image. It is reused across frames.
func (c *Canvas) Image() *image.RGBA { return c.img }

// EncodePNG writes the current frame as PNG.
func (c *Canvas) EncodePNG(w io.Writer) error {
	return png.Encode(w, c.img)
}

func (c *Canvas) empty() bool {
	w, h := c.Size()
	return w == 0 || h == 0
}

func (c *Canvas) rasterizer() *vector.Rasterizer {
	w, h := c.Size()
	if c.z == nil {
		c.z = vector.NewRasterizer(w, h)
	} else {
		c.z.Reset(w, h)
	}
	c.z.DrawOp = draw.Over
	return c.z
}

func (c *Canvas) paint(z *vector.Rasterizer, col backdrop.Color) {
	z.Draw(c.img, c.img.Bounds(), image.NewUniform(col.NRGBA()), image.Point{})
}

func (c *Canvas) FillRect(x, y, w, h float64, col backdrop.Color) {
	if c.empty() || w <= 0 || h <= 0 {
		return
	}
	z := c.rasterizer()
	z.MoveTo(float32(x), float32(y))
	z.LineTo(float32(x+w), float32(y))
	z.LineTo(float32(x+w), float32(y+h))
	z.LineTo(float32(x), float32(y+h))
	z.ClosePath()
	c.paint(z, col)
}

// FillGradient shades every pixel centre; x/image has no gradient source.
func (c *Canvas) FillGradient(g backdrop.Gradient) {
	if c.empty() || g.Degenerate() {
		return
	}
	b := c.img.Bounds()
	src := image.NewNRGBA(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := backdrop.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
			src.SetNRGBA(x, y, g.At(p).NRGBA())
		}
	}
	draw.Draw(c.img, b, src, b.Min, draw.Over)
}

// StrokePath outlines every segment as a quad. All quads share one winding
// so overlapping joints are covered once.
func (c *Canvas) StrokePath(pts []backdrop.Point, width float64, col backdrop.Color) {
	if c.empty() || len(pts) < 2 || width <= 0 {
		return
	}
	half := width / 2
	z := c.rasterizer()
	for i := 1; i < len(pts); i++ {
		a, b := pts[i-1], pts[i]
		dx, dy := b.X-a.X, b.Y-a.Y
		l := math.Hypot(dx, dy)
		if l == 0 {
			continue
		}
		nx, ny := -dy/l*half, dx/l*half
		z.MoveTo(float32(a.X+nx), float32(a.Y+ny))
		z.LineTo(float32(b.X+nx), float32(b.Y+ny))
		z.LineTo(float32(b.X-nx), float32(b.Y-ny))
		z.LineTo(float32(a.X-nx), float32(a.Y-ny))
		z.ClosePath()
	}
	c.paint(z, col)
}

func (c *Canvas) FillCircle(cx, cy, r float64, col backdrop.Color) {
	if c.empty() || r <= 0 {
		return
	}
	segments := max(16, int(math.Ceil(r*8)))
	z := c.rasterizer()
	z.MoveTo(float32(cx+r), float32(cy))
	for i := 1; i < segments; i++ {
		a := float64(i) / float64(segments) * 2 * math.Pi
		z.LineTo(float32(cx+math.Cos(a)*r), float32(cy+math.Sin(a)*r))
	}
	z.ClosePath()
	c.paint(z, col)
}
