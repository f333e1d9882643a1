package backdrop

import (
	"math"
	"testing"
)

func TestWaveOpacity(t *testing.T) {
	tests := []struct {
		index int
		want  float64
	}{
		{0, 0.10},
		{1, 0.07},
		{2, 0.04},
		{4, 0},
		{10, 0},
	}
	for _, tt := range tests {
		if got := WaveOpacity(tt.index); math.Abs(got-tt.want) > 1e-9 {
			t.Errorf("WaveOpacity(%d) = %v, want %v", tt.index, got, tt.want)
		}
	}
	for i := 1; i < 8; i++ {
		if WaveOpacity(i) > WaveOpacity(i-1) {
			t.Errorf("WaveOpacity(%d) > WaveOpacity(%d)", i, i-1)
		}
	}
}

func TestNoiseBounded(t *testing.T) {
	for x := -50.0; x <= 50; x += 0.7 {
		for y := 0.0; y <= 2; y += 0.5 {
			for _, tm := range []float64{0, 17, 1e4, 1e7} {
				if n := Noise(x, y, tm); n < -1 || n > 1 {
					t.Fatalf("Noise(%v, %v, %v) = %v out of [-1,1]", x, y, tm, n)
				}
			}
		}
	}
}

func TestWaveGolden(t *testing.T) {
	p := Pointer{X: 0.5, Y: 0.5}
	pts := WavePoints(0, 100, p, 800, 600, 5)
	if len(pts) != 160 {
		t.Fatalf("samples = %d, want 160", len(pts))
	}

	first, last := pts[0], pts[len(pts)-1]
	if first.X != 0 || math.Abs(first.Y-374.06305657014394) > 1e-9 {
		t.Errorf("first sample = %+v, want (0, 374.06305657)", first)
	}
	if last.X != 795 || math.Abs(last.Y-483.04848464534246) > 1e-9 {
		t.Errorf("last sample = %+v, want (795, 483.04848465)", last)
	}
}

func TestWavePointsDegenerate(t *testing.T) {
	if pts := WavePoints(0, 1, Pointer{}, 0, 600, 5); len(pts) != 0 {
		t.Errorf("zero width gave %d samples", len(pts))
	}
	// A bad step falls back to the default instead of looping forever.
	if pts := WavePoints(0, 1, Pointer{}, 20, 600, 0); len(pts) != 4 {
		t.Errorf("zero step gave %d samples, want 4", len(pts))
	}
}

func TestParticleRadiusRange(t *testing.T) {
	for _, clock := range []uint64{0, 1, 99, 314, 1e6, math.MaxUint32} {
		for i := 0; i < DefaultParticleCount; i++ {
			p := ParticleAt(i, DefaultParticleCount, clock, Pointer{0.5, 0.5}, 800, 600)
			if p.Radius < 0 || p.Radius > 2 {
				t.Errorf("clock %d particle %d radius = %v, want [0,2]", clock, i, p.Radius)
			}
		}
	}
}

func TestFirstParticleStartsRightOfCentre(t *testing.T) {
	p := ParticleAt(0, DefaultParticleCount, 0, Pointer{0.5, 0.5}, 800, 600)
	if p.Angle != 0 {
		t.Errorf("angle = %v, want 0", p.Angle)
	}
	// distance at clock 0, i 0 is 100 + sin(0)*50 = 100.
	if math.Abs(p.X-500) > 1e-9 || math.Abs(p.Y-300) > 1e-9 {
		t.Errorf("position = (%v, %v), want (500, 300)", p.X, p.Y)
	}
}

func TestParticlePointerShift(t *testing.T) {
	centred := ParticleAt(7, 50, 42, Pointer{0.5, 0.5}, 800, 600)
	shifted := ParticleAt(7, 50, 42, Pointer{1, 0}, 800, 600)
	if dx := shifted.X - centred.X; math.Abs(dx-50) > 1e-9 {
		t.Errorf("x shift = %v, want 50", dx)
	}
	if dy := shifted.Y - centred.Y; math.Abs(dy+50) > 1e-9 {
		t.Errorf("y shift = %v, want -50", dy)
	}
}

func TestNormalizePointer(t *testing.T) {
	tests := []struct {
		name           string
		px, py, vw, vh float64
		wantX, wantY   float64
	}{
		{"origin", 0, 0, 800, 600, 0, 0},
		{"centre", 400, 300, 800, 600, 0.5, 0.5},
		{"outside", 1000, -60, 800, 600, 1.25, -0.1},
		{"empty viewport", 10, 10, 0, 0, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			x, y := NormalizePointer(tt.px, tt.py, tt.vw, tt.vh)
			if math.Abs(x-tt.wantX) > 1e-9 || math.Abs(y-tt.wantY) > 1e-9 {
				t.Errorf("got (%v, %v), want (%v, %v)", x, y, tt.wantX, tt.wantY)
			}
		})
	}
}
