package game

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/shader-backdrop/internal/backdrop"
)

var (
	whiteImage    = ebiten.NewImage(3, 3)
	whiteSubImage = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
)

func init() {
	whiteImage.Fill(color.White)
}

var _ backdrop.Canvas = (*screenCanvas)(nil)

// screenCanvas draws the backdrop onto the ebiten screen of the current frame.
type screenCanvas struct {
	dst  *ebiten.Image
	w, h int

	// layer holds one translucent stroke at a time: stroke triangles overlap
	// at joints, so they are drawn opaque and faded as a whole.
	layer *ebiten.Image

	vertices []ebiten.Vertex
	indices  []uint16
}

// bind sets the image drawn on until the next bind.
func (c *screenCanvas) bind(dst *ebiten.Image) {
	c.dst = dst
}

func (c *screenCanvas) Size() (int, int) {
	return c.w, c.h
}

func (c *screenCanvas) Resize(w, h int) {
	c.w, c.h = w, h
	if c.layer != nil {
		c.layer.Deallocate()
		c.layer = nil
	}
}

func (c *screenCanvas) ready() bool {
	return c.dst != nil && c.w > 0 && c.h > 0
}

func (c *screenCanvas) FillRect(x, y, w, h float64, col backdrop.Color) {
	if !c.ready() {
		return
	}
	vector.DrawFilledRect(c.dst, float32(x), float32(y), float32(w), float32(h), col.NRGBA(), false)
}

// FillGradient shades each gradient band with per-vertex colours. Within a
// band the colour is affine, so the GPU interpolation matches the gradient.
func (c *screenCanvas) FillGradient(g backdrop.Gradient) {
	if !c.ready() {
		return
	}
	c.vertices, c.indices = c.vertices[:0], c.indices[:0]
	for _, band := range g.Bands(float64(c.w), float64(c.h)) {
		base := uint16(len(c.vertices))
		for _, p := range band {
			c.vertices = append(c.vertices, vertex(p, g.At(p)))
		}
		for i := 1; i+1 < len(band); i++ {
			c.indices = append(c.indices, base, base+uint16(i), base+uint16(i+1))
		}
	}
	if len(c.indices) == 0 {
		return
	}
	c.dst.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{})
}

func (c *screenCanvas) StrokePath(pts []backdrop.Point, width float64, col backdrop.Color) {
	if !c.ready() || len(pts) < 2 {
		return
	}
	if c.layer == nil {
		c.layer = ebiten.NewImage(c.w, c.h)
	}
	c.layer.Clear()

	var path vector.Path
	path.MoveTo(float32(pts[0].X), float32(pts[0].Y))
	for _, p := range pts[1:] {
		path.LineTo(float32(p.X), float32(p.Y))
	}
	c.vertices, c.indices = path.AppendVerticesAndIndicesForStroke(c.vertices[:0], c.indices[:0], &vector.StrokeOptions{
		Width:    float32(width),
		LineJoin: vector.LineJoinRound,
	})

	opaque := col
	opaque.A = 1
	for i := range c.vertices {
		v := vertex(backdrop.Point{}, opaque)
		v.DstX, v.DstY = c.vertices[i].DstX, c.vertices[i].DstY
		c.vertices[i] = v
	}
	c.layer.DrawTriangles(c.vertices, c.indices, whiteSubImage, &ebiten.DrawTrianglesOptions{AntiAlias: true})

	op := &ebiten.DrawImageOptions{}
	op.ColorScale.ScaleAlpha(float32(col.A))
	c.dst.DrawImage(c.layer, op)
}

func (c *screenCanvas) FillCircle(cx, cy, r float64, col backdrop.Color) {
	if !c.ready() || r <= 0 {
		return
	}
	vector.DrawFilledCircle(c.dst, float32(cx), float32(cy), float32(r), col.NRGBA(), true)
}
