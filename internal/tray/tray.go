// Package tray wraps the popup-menu collaborator as an opaque
// primitive: display a menu, block, return the selection. Menu
// construction, tracking, and teardown all happen inside Show; callers
// only ever see item indexes.
package tray

// Item is one selectable menu entry.
type Item struct {
	Text     string
	Disabled bool
}

// Menu is an ordered list of items shown as a popup.
type Menu struct {
	Items []Item
}

// Add appends an entry and returns the menu for chaining.
func (m *Menu) Add(text string) *Menu {
	m.Items = append(m.Items, Item{Text: text})
	return m
}

// AddDisabled appends a non-selectable entry.
func (m *Menu) AddDisabled(text string) *Menu {
	m.Items = append(m.Items, Item{Text: text, Disabled: true})
	return m
}
