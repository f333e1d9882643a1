package page

import "time"

// Reveal defaults: an element fades in once a tenth of it is visible, with
// the bottom 100px of the viewport not counting as visible.
const (
	RevealThreshold    = 0.1
	RevealBottomMargin = -100
	RevealDuration     = 600 * time.Millisecond
	RevealOffset       = 20
)

// Rect is an axis-aligned rectangle in page coordinates.
type Rect struct {
	X, Y, W, H float64
}

func (r Rect) area() float64 { return r.W * r.H }

func (r Rect) intersect(o Rect) Rect {
	x0, y0 := max(r.X, o.X), max(r.Y, o.Y)
	x1, y1 := min(r.X+r.W, o.X+o.W), min(r.Y+r.H, o.Y+o.H)
	if x1 < x0 || y1 < y0 {
		return Rect{}
	}
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

// Style is the visual state of an observed element.
type Style struct {
	Opacity    float64
	TranslateY float64
}

// Hidden is the style of an element that was never revealed.
var Hidden = Style{Opacity: 0, TranslateY: RevealOffset}

type observed struct {
	rect       Rect
	revealed   bool
	revealedAt time.Duration
}

// Observer reveals elements once they scroll into view. A revealed element
// stays revealed.
type Observer struct {
	Threshold    float64
	BottomMargin float64
	Duration     time.Duration

	elements map[string]*observed
	order    []string
}

// NewObserver returns an observer with the page defaults.
func NewObserver() *Observer {
	return &Observer{
		Threshold:    RevealThreshold,
		BottomMargin: RevealBottomMargin,
		Duration:     RevealDuration,
		elements:     map[string]*observed{},
	}
}

// Observe starts tracking id at rect, or moves an already tracked element.
func (o *Observer) Observe(id string, rect Rect) {
	if e, ok := o.elements[id]; ok {
		e.rect = rect
		return
	}
	o.elements[id] = &observed{rect: rect}
	o.order = append(o.order, id)
}

// Ratio is how much of rect is inside the viewport once the margin is applied.
func (o *Observer) Ratio(rect, viewport Rect) float64 {
	root := viewport
	root.H = max(0, root.H+o.BottomMargin)

	if rect.area() == 0 {
		// Empty elements count as fully visible while inside the root.
		if rect.X >= root.X && rect.X+rect.W <= root.X+root.W &&
			rect.Y >= root.Y && rect.Y+rect.H <= root.Y+root.H {
			return 1
		}
		return 0
	}
	in := rect.intersect(root)
	return in.area() / rect.area()
}

// Update checks every element against viewport and returns the ids revealed
// by this call, in observation order.
func (o *Observer) Update(viewport Rect, now time.Duration) []string {
	var revealed []string
	for _, id := range o.order {
		e := o.elements[id]
		if e.revealed {
			continue
		}
		if r := o.Ratio(e.rect, viewport); r > 0 && r >= o.Threshold {
			e.revealed = true
			e.revealedAt = now
			revealed = append(revealed, id)
		}
	}
	return revealed
}

// Revealed reports whether id has been revealed.
func (o *Observer) Revealed(id string) bool {
	e, ok := o.elements[id]
	return ok && e.revealed
}

// Style returns the style of id at time now, mid-transition if needed.
func (o *Observer) Style(id string, now time.Duration) Style {
	e, ok := o.elements[id]
	if !ok || !e.revealed {
		return Hidden
	}
	p := 1.0
	if o.Duration > 0 {
		p = float64(now-e.revealedAt) / float64(o.Duration)
	}
	k := EaseOut(p)
	return Style{
		Opacity:    Lerp(Hidden.Opacity, 1, k),
		TranslateY: Lerp(Hidden.TranslateY, 0, k),
	}
}
