package game

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/iburimskiy/shader-backdrop/internal/config"
	"github.com/iburimskiy/shader-backdrop/internal/page"
)

type section struct {
	id    string
	title string
	body  string
}

// DebugPrint only has ASCII glyphs.
var sections = []section{
	{"inicio", "Inicio", "Desenvolvedor - Go, web e automacao"},
	{"sobre", "Sobre", "Alguns anos construindo servicos e ferramentas"},
	{"projetos", "Projetos", "Uma selecao de projetos recentes"},
	{"contato", "Contato", "Pressione C para enviar uma mensagem pelo WhatsApp"},
}

var (
	headerColor  = color.NRGBA{R: 2, G: 6, B: 23, A: 200}
	panelColor   = color.NRGBA{R: 15, G: 23, B: 42, A: 170}
	accentColor  = color.NRGBA{R: 59, G: 130, B: 246, A: 160}
	menuBoxColor = color.NRGBA{R: 15, G: 23, B: 42, A: 235}
)

const (
	menuButtonWidth  = 64
	menuButtonHeight = 28
	menuItemHeight   = 28
	menuWidth        = 160
)

// chrome is the page drawn over the backdrop: header, menu and sections.
type chrome struct {
	title     string
	menu      page.Menu
	observer  *page.Observer
	scrollTop float64
	w, h      float64
}

func newChrome(title string) *chrome {
	return &chrome{
		title:    title,
		observer: page.NewObserver(),
	}
}

func (c *chrome) headerHeight() float64 {
	if page.HeaderShrunk(c.scrollTop) {
		return config.HeaderHeightShrunk
	}
	return config.HeaderHeight
}

// sectionRect is the rectangle of section i in page coordinates.
func (c *chrome) sectionRect(i int) page.Rect {
	y := config.HeaderHeight + config.SectionGap + float64(i)*(config.SectionHeight+config.SectionGap)
	return page.Rect{
		X: config.SectionMarginX,
		Y: y,
		W: math.Max(0, c.w-2*config.SectionMarginX),
		H: config.SectionHeight,
	}
}

func (c *chrome) pageHeight() float64 {
	last := c.sectionRect(len(sections) - 1)
	return last.Y + last.H + config.SectionGap
}

func (c *chrome) scrollTo(top float64) {
	c.scrollTop = math.Max(0, math.Min(top, c.pageHeight()-c.h))
}

func (c *chrome) menuButton() page.Rect {
	hh := c.headerHeight()
	return page.Rect{
		X: c.w - menuButtonWidth - 16,
		Y: (hh - menuButtonHeight) / 2,
		W: menuButtonWidth,
		H: menuButtonHeight,
	}
}

func (c *chrome) menuItem(i int) page.Rect {
	return page.Rect{
		X: c.w - menuWidth - 16,
		Y: c.headerHeight() + float64(i)*menuItemHeight,
		W: menuWidth,
		H: menuItemHeight,
	}
}

// update lays the page out for a w×h viewport, applies the wheel delta and
// reveals sections that came into view.
func (c *chrome) update(w, h, wheelY float64, now time.Duration) {
	c.w, c.h = w, h
	c.scrollTo(c.scrollTop - wheelY*config.ScrollSpeed)
	for i, s := range sections {
		c.observer.Observe(s.id, c.sectionRect(i))
	}
	c.observer.Update(page.Rect{X: 0, Y: c.scrollTop, W: w, H: h}, now)
}

// click handles a left click at screen position (x, y).
func (c *chrome) click(x, y int) {
	if contains(c.menuButton(), x, y) {
		c.menu.Toggle()
		return
	}
	if !c.menu.Active() {
		return
	}
	for i := range sections {
		if contains(c.menuItem(i), x, y) {
			c.scrollTo(c.sectionRect(i).Y - c.headerHeight())
			c.menu.Close()
			return
		}
	}
}

func (c *chrome) draw(screen *ebiten.Image, now time.Duration) {
	for i, s := range sections {
		r := c.sectionRect(i)
		style := c.observer.Style(s.id, now)
		y := r.Y - c.scrollTop + style.TranslateY
		if y > c.h || y+r.H < 0 || style.Opacity <= 0 {
			continue
		}
		vector.DrawFilledRect(screen, float32(r.X), float32(y), float32(r.W), float32(r.H), fade(panelColor, style.Opacity), false)
		vector.StrokeRect(screen, float32(r.X), float32(y), float32(r.W), float32(r.H), 1, fade(accentColor, style.Opacity), false)
		if style.Opacity > 0.5 {
			ebitenutil.DebugPrintAt(screen, s.title, int(r.X)+20, int(y)+20)
			ebitenutil.DebugPrintAt(screen, s.body, int(r.X)+20, int(y)+44)
		}
	}

	hh := c.headerHeight()
	vector.DrawFilledRect(screen, 0, 0, float32(c.w), float32(hh), headerColor, false)
	vector.StrokeLine(screen, 0, float32(hh), float32(c.w), float32(hh), 1, accentColor, false)
	ebitenutil.DebugPrintAt(screen, c.title, 24, int(hh/2)-8)

	b := c.menuButton()
	vector.StrokeRect(screen, float32(b.X), float32(b.Y), float32(b.W), float32(b.H), 1, accentColor, false)
	ebitenutil.DebugPrintAt(screen, "MENU", int(b.X)+18, int(b.Y)+6)

	if !c.menu.Active() {
		return
	}
	for i, s := range sections {
		r := c.menuItem(i)
		vector.DrawFilledRect(screen, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), menuBoxColor, false)
		ebitenutil.DebugPrintAt(screen, s.title, int(r.X)+12, int(r.Y)+6)
	}
}
