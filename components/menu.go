package components

import "github.com/yohamta/donburi"

// MenuItemID identifies a focusable menu entry.
type MenuItemID int

const (
	MenuItemResume MenuItemID = iota
	MenuItemRestart
)

func (m MenuItemID) Label() string {
	switch m {
	case MenuItemResume:
		return "Resume"
	case MenuItemRestart:
		return "Restart"
	}
	return ""
}

// MenuData stores the entries of the open menu and which one has focus
type MenuData struct {
	Items []MenuItemID
	Focus int
}

// Open replaces the entries and focuses the first one.
func (m *MenuData) Open(items ...MenuItemID) {
	m.Items = append(m.Items[:0], items...)
	m.Focus = 0
}

func (m *MenuData) Close() {
	m.Items = m.Items[:0]
	m.Focus = 0
}

// MoveFocus shifts focus by delta with wrap-around.
func (m *MenuData) MoveFocus(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.Focus = ((m.Focus+delta)%n + n) % n
}

// Focused returns the entry with focus, if the menu is open.
func (m *MenuData) Focused() (MenuItemID, bool) {
	if m.Focus < 0 || m.Focus >= len(m.Items) {
		return 0, false
	}
	return m.Items[m.Focus], true
}

var Menu = donburi.NewComponentType[MenuData]()
