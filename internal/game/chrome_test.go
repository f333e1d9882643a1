package game

import (
	"testing"

	"github.com/iburimskiy/shader-backdrop/internal/config"
)

func TestChromeScrollClamp(t *testing.T) {
	c := newChrome("test")
	c.update(800, 600, 0, 0)

	c.update(800, 600, 10, 0) // wheel up at the top
	if c.scrollTop != 0 {
		t.Errorf("scrollTop = %v, want 0", c.scrollTop)
	}

	c.update(800, 600, -1000, 0)
	if want := c.pageHeight() - 600; c.scrollTop != want {
		t.Errorf("scrollTop = %v, want bottom %v", c.scrollTop, want)
	}
}

func TestChromeHeaderShrinks(t *testing.T) {
	c := newChrome("test")
	c.update(800, 600, 0, 0)
	if c.headerHeight() != config.HeaderHeight {
		t.Errorf("headerHeight() = %v, want %v", c.headerHeight(), config.HeaderHeight)
	}
	c.update(800, 600, -2, 0) // 80px down
	if c.headerHeight() != config.HeaderHeightShrunk {
		t.Errorf("headerHeight() = %v, want %v", c.headerHeight(), config.HeaderHeightShrunk)
	}
}

func TestChromeMenuClicks(t *testing.T) {
	c := newChrome("test")
	c.update(800, 600, 0, 0)

	b := c.menuButton()
	c.click(int(b.X)+2, int(b.Y)+2)
	if !c.menu.Active() || c.menu.AriaExpanded() != "true" {
		t.Fatal("clicking the menu button should open the menu")
	}

	item := c.menuItem(2)
	c.click(int(item.X)+2, int(item.Y)+2)
	if c.menu.Active() {
		t.Error("following a menu link should close the menu")
	}
	if c.scrollTop == 0 {
		t.Error("following a menu link should scroll to its section")
	}
}

func TestChromeClickOutsideClosedMenu(t *testing.T) {
	c := newChrome("test")
	c.update(800, 600, 0, 0)
	c.click(400, 300)
	if c.menu.Active() {
		t.Error("a click on the page should not open the menu")
	}
}

func TestChromeRevealsFirstSection(t *testing.T) {
	c := newChrome("test")
	c.update(800, 600, 0, 0)
	if !c.observer.Revealed(sections[0].id) {
		t.Error("first section should be revealed on load")
	}
	if c.observer.Revealed(sections[len(sections)-1].id) {
		t.Error("last section should wait until scrolled into view")
	}
}
