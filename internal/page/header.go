// Package page holds the state of the page chrome drawn over the backdrop:
// the header that shrinks on scroll, the mobile menu and the sections that
// fade in when they scroll into view. Everything here is pure state; drawing
// lives in the game package.
package page

import "strconv"

// ShrinkScrollTop is how far the page must scroll before the header shrinks.
const ShrinkScrollTop = 50

// HeaderShrunk reports whether the header is in its compact form.
func HeaderShrunk(scrollTop float64) bool {
	return scrollTop > ShrinkScrollTop
}

// Menu is the collapsible navigation menu.
type Menu struct {
	active bool
}

// Toggle flips the menu and returns the new state.
func (m *Menu) Toggle() bool {
	m.active = !m.active
	return m.active
}

// Close hides the menu, e.g. after one of its links was followed.
func (m *Menu) Close() { m.active = false }

func (m *Menu) Active() bool { return m.active }

// AriaExpanded is the aria-expanded value of the menu button.
func (m *Menu) AriaExpanded() string {
	return strconv.FormatBool(m.active)
}
