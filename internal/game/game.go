// Package game hosts the backdrop in an ebiten window. The ebiten loop is the
// display refresh source: Update advances the frame clock and feeds pointer
// input, Draw paints the backdrop and the page chrome on top.
package game

import (
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/ncruces/zenity"

	"github.com/iburimskiy/shader-backdrop/internal/backdrop"
	"github.com/iburimskiy/shader-backdrop/internal/config"
	"github.com/iburimskiy/shader-backdrop/internal/contact"
	"github.com/iburimskiy/shader-backdrop/internal/prefs"
)

type Game struct {
	settings *config.Settings
	store    *prefs.Store

	canvas   *screenCanvas
	renderer *backdrop.Renderer
	chrome   *chrome
	logo     *ebiten.Image

	// viewport
	width, height    int
	cursorX, cursorY int
	ticks            uint64

	// input edge detection
	prevKey map[ebiten.Key]bool

	// state
	paused  bool
	lastErr error
}

// New builds the game. logger receives renderer lifecycle messages and may
// be nil.
func New(settings *config.Settings, store *prefs.Store, logger *log.Logger) (*Game, error) {
	canvas := &screenCanvas{}
	renderer, err := backdrop.New(canvas,
		backdrop.WithParams(settings.Params()),
		backdrop.WithLogger(logger),
	)
	if err != nil {
		return nil, fmt.Errorf("creating renderer: %w", err)
	}

	g := &Game{
		settings: settings,
		store:    store,
		canvas:   canvas,
		renderer: renderer,
		cursorX:  -1,
		cursorY:  -1,
		prevKey:  map[ebiten.Key]bool{},
		paused:   store.Get().Paused,
	}
	if settings.Chrome {
		g.chrome = newChrome(settings.Title)
	}
	if settings.Logo != "" {
		g.logo = loadLogo(settings.Logo)
	}
	return g, nil
}

// loadLogo returns nil when the image cannot be loaded; the page is simply
// drawn without it.
func loadLogo(path string) *ebiten.Image {
	img, _, err := ebitenutil.NewImageFromFile(path)
	if err != nil {
		log.Printf("[Game] Warning: image not loaded: %s: %v", path, err)
		return nil
	}
	return img
}

func (g *Game) Update() error {
	justPressed := func(k ebiten.Key) bool {
		pressed := ebiten.IsKeyPressed(k)
		jp := pressed && !g.prevKey[k]
		g.prevKey[k] = pressed
		return jp
	}

	if justPressed(ebiten.KeyEscape) || justPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if justPressed(ebiten.KeySpace) {
		g.paused = !g.paused
	}

	// Pointer moves are forwarded only when the cursor actually moved.
	mouseX, mouseY := ebiten.CursorPosition()
	if mouseX != g.cursorX || mouseY != g.cursorY {
		g.cursorX, g.cursorY = mouseX, mouseY
		g.renderer.OnPointerMove(backdrop.NormalizePointer(
			float64(mouseX), float64(mouseY), float64(g.width), float64(g.height)))
	}

	g.ticks++

	if g.chrome != nil {
		if justPressed(ebiten.KeyM) {
			g.chrome.menu.Toggle()
		}
		if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
			g.chrome.click(mouseX, mouseY)
		}
		_, wheelY := ebiten.Wheel()
		g.chrome.update(float64(g.width), float64(g.height), wheelY, g.now())
	}

	if justPressed(ebiten.KeyC) {
		if err := g.openContactDialog(); err != nil {
			g.lastErr = err
		}
	}

	if g.running() {
		g.renderer.Advance()
	}
	return nil
}

func (g *Game) running() bool {
	if g.paused {
		return false
	}
	return !g.settings.PauseWhenUnfocused || ebiten.IsFocused()
}

// now is the time since start measured in ticks, so it is stable under
// frame drops.
func (g *Game) now() time.Duration {
	tps := ebiten.TPS()
	if tps <= 0 {
		tps = config.TPS
	}
	return time.Duration(g.ticks) * time.Second / time.Duration(tps)
}

func (g *Game) Draw(screen *ebiten.Image) {
	g.canvas.bind(screen)
	g.renderer.Draw()

	if g.chrome != nil {
		g.chrome.draw(screen, g.now())
	}
	g.drawLogo(screen)

	status := "Space: pause  M: menu  C: contact  Esc/Q: quit  " + formatDuration(g.now())
	if !g.running() {
		status = "Paused - " + status
	}
	if g.lastErr != nil {
		status += " | Error: " + g.lastErr.Error()
	}
	ebitenutil.DebugPrintAt(screen, status, 12, g.height-20)
}

func (g *Game) drawLogo(screen *ebiten.Image) {
	if g.logo == nil {
		return
	}
	size := float64(config.HeaderHeightShrunk - 16)
	b := g.logo.Bounds()
	scale := size / float64(max(b.Dx(), b.Dy(), 1))

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(float64(g.width)/2-size/2, 8)
	screen.DrawImage(g.logo, op)
}

// Layout makes the logical screen match the window so the backdrop always
// covers the full viewport.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.renderer.Resize(outsideWidth, outsideHeight)
	}
	return outsideWidth, outsideHeight
}

// openContactDialog runs the contact form dialogs and shows the resulting
// link. It blocks the loop while a dialog is open.
func (g *Game) openContactDialog() error {
	form, err := contact.Prompt()
	if err != nil {
		if errors.Is(err, zenity.ErrCanceled) {
			return nil
		}
		return err
	}

	link, err := form.Link(g.settings.Contact.Phone, g.settings.Contact.Owner)
	if err != nil {
		return contact.Alert(err)
	}
	log.Printf("[Game] contact link: %s", link)
	return contact.ShowLink(link)
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	w, h := g.store.WindowSize(g.settings.WindowWidth, g.settings.WindowHeight)
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(g.settings.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(g.settings.Fullscreen)
	ebiten.SetTPS(g.settings.TPS)

	err := ebiten.RunGame(g)
	g.savePrefs()
	if err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

func (g *Game) savePrefs() {
	p := g.store.Get()
	p.Paused = g.paused
	if !g.settings.Fullscreen && g.width > 0 && g.height > 0 {
		p.WindowWidth, p.WindowHeight = g.width, g.height
	}
	g.store.Set(p)
	if err := g.store.Save(); err != nil {
		log.Printf("[Game] Warning: %v", err)
	}
}
