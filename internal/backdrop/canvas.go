package backdrop

import (
	"image/color"
	"math"
)

// Color is an RGBA colour with 0-255 channels and alpha in [0,1], the way
// CSS rgba() spells it.
type Color struct {
	R, G, B float64
	A       float64
}

// RGBA builds a Color from CSS-style components.
func RGBA(r, g, b uint8, a float64) Color {
	return Color{R: float64(r), G: float64(g), B: float64(b), A: a}
}

// NRGBA converts to a non-premultiplied image colour.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{
		R: channel(c.R),
		G: channel(c.G),
		B: channel(c.B),
		A: channel(c.A * 255),
	}
}

func (c Color) lerp(o Color, t float64) Color {
	return Color{
		R: c.R + (o.R-c.R)*t,
		G: c.G + (o.G-c.G)*t,
		B: c.B + (o.B-c.B)*t,
		A: c.A + (o.A-c.A)*t,
	}
}

func channel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(math.Round(v))
}

// Point is a position in device pixels.
type Point struct {
	X, Y float64
}

// Canvas is the drawing surface the renderer paints on. Coordinates are
// device pixels with the origin at the top-left corner.
type Canvas interface {
	Size() (w, h int)
	Resize(w, h int)

	FillRect(x, y, w, h float64, c Color)
	// FillGradient paints the whole surface with g.
	FillGradient(g Gradient)
	// StrokePath draws pts as one open polyline.
	StrokePath(pts []Point, width float64, c Color)
	FillCircle(cx, cy, r float64, c Color)
}
