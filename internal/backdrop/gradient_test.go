package backdrop

import (
	"math"
	"testing"
)

func testGradient(mid float64) Gradient {
	return Gradient{
		From: Point{0, 0},
		To:   Point{800, 600},
		Stops: []Stop{
			{0, RGBA(15, 23, 42, 0.8)},
			{mid, RGBA(59, 130, 246, 0.1)},
			{1, RGBA(15, 23, 42, 0.8)},
		},
	}
}

func TestGradientColorAt(t *testing.T) {
	g := testGradient(0.5)

	tests := []struct {
		name string
		t    float64
		want Color
	}{
		{"before start", -1, RGBA(15, 23, 42, 0.8)},
		{"start", 0, RGBA(15, 23, 42, 0.8)},
		{"mid", 0.5, RGBA(59, 130, 246, 0.1)},
		{"quarter", 0.25, Color{R: 37, G: 76.5, B: 144, A: 0.45}},
		{"past end", 2, RGBA(15, 23, 42, 0.8)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := g.ColorAt(tt.t)
			if !closeColor(got, tt.want) {
				t.Errorf("ColorAt(%v) = %+v, want %+v", tt.t, got, tt.want)
			}
		})
	}
}

func TestGradientParam(t *testing.T) {
	g := testGradient(0.5)
	if p := g.Param(Point{800, 600}); math.Abs(p-1) > 1e-12 {
		t.Errorf("Param(end) = %v, want 1", p)
	}
	if p := g.Param(Point{400, 300}); math.Abs(p-0.5) > 1e-12 {
		t.Errorf("Param(centre) = %v, want 0.5", p)
	}
	// (800, 0) projects onto the diagonal at 640000/1000000.
	if p := g.Param(Point{800, 0}); math.Abs(p-0.64) > 1e-12 {
		t.Errorf("Param(top right) = %v, want 0.64", p)
	}
}

func TestGradientBandsCoverSurface(t *testing.T) {
	for _, mid := range []float64{0.5, 0.6, 0.7} {
		g := testGradient(mid)
		bands := g.Bands(800, 600)

		var area float64
		for _, poly := range bands {
			area += polygonArea(poly)
			for _, v := range poly {
				if v.X < -1e-9 || v.X > 800+1e-9 || v.Y < -1e-9 || v.Y > 600+1e-9 {
					t.Errorf("mid %v: vertex %+v outside surface", mid, v)
				}
			}
		}
		if math.Abs(area-800*600) > 1e-6 {
			t.Errorf("mid %v: bands cover %v px², want %v", mid, area, 800*600)
		}
	}
}

func TestGradientBandsAreAffine(t *testing.T) {
	g := testGradient(0.6)
	for _, poly := range g.Bands(800, 600) {
		lo, hi := math.Inf(1), math.Inf(-1)
		for _, v := range poly {
			p := g.Param(v)
			lo, hi = math.Min(lo, p), math.Max(hi, p)
		}
		// No band may straddle a stop, otherwise vertex shading is wrong.
		for _, s := range g.Stops {
			if s.Offset > lo+1e-9 && s.Offset < hi-1e-9 {
				t.Errorf("band [%v, %v] straddles stop %v", lo, hi, s.Offset)
			}
		}
	}
}

func TestGradientDegenerate(t *testing.T) {
	g := Gradient{Stops: []Stop{{0, RGBA(0, 0, 0, 1)}}}
	if !g.Degenerate() {
		t.Error("zero-length gradient should be degenerate")
	}
	if bands := g.Bands(100, 100); bands != nil {
		t.Errorf("Bands() = %v, want nil", bands)
	}
	if bands := testGradient(0.5).Bands(0, 0); bands != nil {
		t.Errorf("Bands(0,0) = %v, want nil", bands)
	}
}

func TestColorNRGBA(t *testing.T) {
	c := RGBA(59, 130, 246, 0.3).NRGBA()
	if c.R != 59 || c.G != 130 || c.B != 246 || c.A != 77 {
		t.Errorf("NRGBA() = %+v, want {59 130 246 77}", c)
	}
}

func closeColor(a, b Color) bool {
	const eps = 1e-9
	return math.Abs(a.R-b.R) < eps && math.Abs(a.G-b.G) < eps &&
		math.Abs(a.B-b.B) < eps && math.Abs(a.A-b.A) < eps
}

func polygonArea(poly []Point) float64 {
	var s float64
	for i := range poly {
		j := (i + 1) % len(poly)
		s += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(s) / 2
}
