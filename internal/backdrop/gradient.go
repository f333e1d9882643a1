package backdrop

import "math"

// Stop is a gradient colour stop.
type Stop struct {
	Offset float64
	Color  Color
}

// Gradient is a linear gradient between two points. Stops must be sorted by
// offset. Outside [From, To] the end colours extend, as on an HTML canvas.
type Gradient struct {
	From, To Point
	Stops    []Stop
}

// Degenerate reports whether the gradient paints nothing.
func (g Gradient) Degenerate() bool {
	return len(g.Stops) == 0 || (g.From.X == g.To.X && g.From.Y == g.To.Y)
}

// Param projects p onto the gradient axis. 0 is From, 1 is To; the result is
// not clamped.
func (g Gradient) Param(p Point) float64 {
	dx, dy := g.To.X-g.From.X, g.To.Y-g.From.Y
	l2 := dx*dx + dy*dy
	if l2 == 0 {
		return 0
	}
	return ((p.X-g.From.X)*dx + (p.Y-g.From.Y)*dy) / l2
}

// ColorAt returns the colour at axis parameter t.
func (g Gradient) ColorAt(t float64) Color {
	if len(g.Stops) == 0 {
		return Color{}
	}
	first, last := g.Stops[0], g.Stops[len(g.Stops)-1]
	if t <= first.Offset {
		return first.Color
	}
	if t >= last.Offset {
		return last.Color
	}
	for i := 1; i < len(g.Stops); i++ {
		a, b := g.Stops[i-1], g.Stops[i]
		if t > b.Offset {
			continue
		}
		span := b.Offset - a.Offset
		if span <= 0 {
			return b.Color
		}
		return a.Color.lerp(b.Color, (t-a.Offset)/span)
	}
	return last.Color
}

// At returns the colour painted at p.
func (g Gradient) At(p Point) Color {
	return g.ColorAt(g.Param(p))
}

// Bands splits the rectangle (0,0)-(w,h) into convex polygons, one per
// interval between consecutive stops plus the two clamped ends. Inside each
// polygon the gradient colour is an affine function of position, so shading
// the vertices with At and interpolating is exact.
func (g Gradient) Bands(w, h float64) [][]Point {
	if g.Degenerate() || w <= 0 || h <= 0 {
		return nil
	}
	rect := []Point{{0, 0}, {w, 0}, {w, h}, {0, h}}

	edges := make([]float64, 0, len(g.Stops)+2)
	edges = append(edges, math.Inf(-1))
	for _, s := range g.Stops {
		edges = append(edges, s.Offset)
	}
	edges = append(edges, math.Inf(1))

	var bands [][]Point
	for i := 1; i < len(edges); i++ {
		lo, hi := edges[i-1], edges[i]
		if hi <= lo {
			continue
		}
		poly := rect
		if !math.IsInf(lo, -1) {
			poly = clip(poly, func(p Point) float64 { return g.Param(p) - lo })
		}
		if !math.IsInf(hi, 1) {
			poly = clip(poly, func(p Point) float64 { return hi - g.Param(p) })
		}
		if len(poly) >= 3 {
			bands = append(bands, poly)
		}
	}
	return bands
}

// clip keeps the part of the convex polygon where f >= 0 (Sutherland-Hodgman
// against a single half-plane; f must be affine).
func clip(poly []Point, f func(Point) float64) []Point {
	if len(poly) == 0 {
		return nil
	}
	out := make([]Point, 0, len(poly)+1)
	prev := poly[len(poly)-1]
	fp := f(prev)
	for _, cur := range poly {
		fc := f(cur)
		if fc >= 0 {
			if fp < 0 && fc > 0 {
				out = append(out, intersect(prev, cur, fp, fc))
			}
			out = append(out, cur)
		} else if fp > 0 {
			out = append(out, intersect(prev, cur, fp, fc))
		}
		prev, fp = cur, fc
	}
	return out
}

func intersect(a, b Point, fa, fb float64) Point {
	t := fa / (fa - fb)
	return Point{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}
