// Package backdrop draws the animated background: a pointer-tinted gradient,
// a few noisy horizontal waves and a ring of orbiting particles.
//
// The picture is a pure function of the frame clock, the pointer and the
// surface size. The host loop owns scheduling: it calls Advance once per tick
// and Draw once per displayed frame, or RenderFrame to do both.
package backdrop

import (
	"errors"
	"io"
	"log"
	"math"
)

// ErrNoSurface is returned by New when there is nothing to draw on.
var ErrNoSurface = errors.New("backdrop: no drawing surface")

// Pointer is the latest pointer position as viewport fractions.
type Pointer struct {
	X, Y float64
}

// Renderer owns the surface, the frame clock and the pointer state.
// It is not safe for concurrent use; input and drawing run on one loop.
type Renderer struct {
	canvas  Canvas
	params  Params
	clock   uint64
	pointer Pointer
	logger  *log.Logger
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithParams replaces the default look.
func WithParams(p Params) Option {
	return func(r *Renderer) { r.params = p }
}

// WithLogger sets the logger for lifecycle messages.
func WithLogger(l *log.Logger) Option {
	return func(r *Renderer) {
		if l != nil {
			r.logger = l
		}
	}
}

// New creates a renderer drawing on canvas.
func New(canvas Canvas, opts ...Option) (*Renderer, error) {
	if canvas == nil {
		return nil, ErrNoSurface
	}
	r := &Renderer{
		canvas: canvas,
		params: DefaultParams(),
		logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(r)
	}
	if r.params.WaveStep <= 0 {
		r.params.WaveStep = DefaultWaveStep
	}
	return r, nil
}

// Resize matches the surface to the viewport. Resizing discards the pixels.
func (r *Renderer) Resize(w, h int) {
	w, h = max(w, 0), max(h, 0)
	r.canvas.Resize(w, h)
	r.logger.Printf("[Renderer] surface resized to %dx%d", w, h)
}

// Size returns the current surface size.
func (r *Renderer) Size() (w, h int) {
	return r.canvas.Size()
}

// OnPointerMove records the pointer. Values are kept even when they fall
// outside [0,1], e.g. while dragging past the window edge.
func (r *Renderer) OnPointerMove(nx, ny float64) {
	r.pointer = Pointer{X: nx, Y: ny}
}

func (r *Renderer) Pointer() Pointer { return r.pointer }

func (r *Renderer) Clock() uint64 { return r.clock }

// SetClock jumps to frame t, e.g. to replay a frame.
func (r *Renderer) SetClock(t uint64) { r.clock = t }

// Advance moves the frame clock forward by one.
func (r *Renderer) Advance() { r.clock++ }

// RenderFrame advances the clock and draws the new frame.
func (r *Renderer) RenderFrame() {
	r.Advance()
	r.Draw()
}

// Gradient returns the overlay gradient for the current surface and pointer.
func (r *Renderer) Gradient() Gradient {
	w, h := r.canvas.Size()
	return Gradient{
		From: Point{0, 0},
		To:   Point{float64(w), float64(h)},
		Stops: []Stop{
			{Offset: 0, Color: r.params.Edge},
			{Offset: GradientMidStop(r.pointer.X), Color: r.params.Glow},
			{Offset: 1, Color: r.params.Edge},
		},
	}
}

// Draw paints the frame for the current clock without advancing it.
func (r *Renderer) Draw() {
	w, h := r.canvas.Size()
	if w <= 0 || h <= 0 {
		return
	}

	r.canvas.FillRect(0, 0, float64(w), float64(h), r.params.Base)
	r.canvas.FillGradient(r.Gradient())

	for i := 0; i < r.params.WaveCount; i++ {
		c := r.params.Wave
		c.A = WaveOpacity(i)
		if c.A <= 0 {
			continue
		}
		pts := WavePoints(i, r.clock, r.pointer, w, h, r.params.WaveStep)
		r.canvas.StrokePath(pts, 1, c)
	}

	for i := 0; i < r.params.ParticleCount; i++ {
		p := ParticleAt(i, r.params.ParticleCount, r.clock, r.pointer, w, h)
		if p.Radius <= 0 || math.IsNaN(p.Radius) {
			continue
		}
		r.canvas.FillCircle(p.X, p.Y, p.Radius, r.params.Particle)
	}
}
