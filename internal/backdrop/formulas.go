package backdrop

import "math"

// Noise is a smooth pseudo-noise built from sines and cosines. It is cheap,
// deterministic and bounded by [-1, 1]; it only has to look organic.
func Noise(x, y, t float64) float64 {
	return math.Sin(x*0.5+t*0.002) * math.Cos(y*0.5+t*0.002) *
		math.Sin(x*0.3+y*0.3+t*0.001)
}

// GradientMidStop is the offset of the glowing middle stop for pointer x.
func GradientMidStop(px float64) float64 {
	return 0.5 + px*0.2
}

// WaveOpacity fades later waves out and never goes negative.
func WaveOpacity(index int) float64 {
	return math.Max(0, 0.1-float64(index)*0.03)
}

// WaveY is the y coordinate of wave index at horizontal position x.
func WaveY(x float64, index int, clock uint64, p Pointer, height float64) float64 {
	t := float64(clock)
	n := Noise(x*0.002, float64(index)*0.5, t+p.X*50)
	offset := 100 + n*150 + p.Y*100
	return height/2 + math.Sin(x*0.01+t*0.005+float64(index))*offset
}

// WavePoints samples wave index every step pixels across the surface width.
func WavePoints(index int, clock uint64, p Pointer, width, height int, step float64) []Point {
	if width <= 0 {
		return nil
	}
	if step <= 0 {
		step = DefaultWaveStep
	}
	pts := make([]Point, 0, int(float64(width)/step)+1)
	for x := 0.0; x < float64(width); x += step {
		pts = append(pts, Point{X: x, Y: WaveY(x, index, clock, p, float64(height))})
	}
	return pts
}

// Particle is one orbiting dot as drawn in a given frame.
type Particle struct {
	X, Y   float64
	Radius float64
	Angle  float64
}

// ParticleAt places particle i of count on its orbit around the surface
// centre, nudged towards the pointer.
func ParticleAt(i, count int, clock uint64, p Pointer, width, height int) Particle {
	t := float64(clock)
	fi := float64(i)
	angle := fi/float64(count)*2*math.Pi + t*0.002
	distance := 100 + math.Sin(t*0.005+fi)*50

	return Particle{
		X:      float64(width)/2 + math.Cos(angle)*distance + (p.X-0.5)*100,
		Y:      float64(height)/2 + math.Sin(angle)*distance + (p.Y-0.5)*100,
		Radius: 1 + math.Sin(t*0.01+fi),
		Angle:  angle,
	}
}

// NormalizePointer converts a pointer position in device pixels to viewport
// fractions. Positions outside the viewport are passed through unclamped.
func NormalizePointer(px, py, viewportW, viewportH float64) (nx, ny float64) {
	if viewportW > 0 {
		nx = px / viewportW
	}
	if viewportH > 0 {
		ny = py / viewportH
	}
	return nx, ny
}
