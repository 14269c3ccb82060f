// Package menubutton implements an accessible menu button: a trigger that
// opens a popup action menu with full keyboard navigation and a roving focus
// model, following the WAI-ARIA menu-button interaction pattern.
package menubutton

import (
	"unicode"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

const (
	chevronClosed = " ▼"
	chevronOpen   = " ▲"
)

// MenuButton is a button that opens an action menu when clicked or operated
// from the keyboard. Exactly one menu item is focusable at any time once
// focus has entered the menu; arrow keys, Home/End, and first-character
// typing move that focus. Activating an item closes the menu and invokes the
// action callback with the activated item.
type MenuButton struct {
	widget.Button

	label    string
	items    []*Item
	onAction func(*Item)

	firstChars  []rune
	itemWidgets []*menuItem
	focusIndex  int // roving focus; -1 until focus first enters the menu

	expanded bool
	overlay  *menuOverlay
}

// NewMenuButton creates a menu button with the given trigger label, the menu
// items in display order, and the callback invoked when an item is activated.
// The item slice is not copied and must not be modified afterwards.
func NewMenuButton(label string, items []*Item, onAction func(*Item)) *MenuButton {
	b := &MenuButton{
		label:      label,
		items:      items,
		onAction:   onAction,
		focusIndex: -1,
	}
	b.Text = label + chevronClosed

	b.firstChars = make([]rune, len(items))
	b.itemWidgets = make([]*menuItem, len(items))
	for i, it := range items {
		b.firstChars[i] = firstCharacter(it.Label)
		b.itemWidgets[i] = newMenuItem(b, it, i)
	}

	b.ExtendBaseWidget(b)
	return b
}

// Items returns the menu items in display order.
func (b *MenuButton) Items() []*Item {
	return b.items
}

// IsOpen reports whether the menu is currently showing.
func (b *MenuButton) IsOpen() bool {
	return b.expanded
}

// Open shows the menu below the trigger. Calling Open on an already open
// menu has no further effect.
func (b *MenuButton) Open() {
	c := b.canvas()
	if c == nil {
		return
	}
	if b.overlay == nil || b.overlay.targetCanvas != c {
		box := container.NewVBox()
		for _, iw := range b.itemWidgets {
			box.Add(iw)
		}
		b.overlay = newMenuOverlay(b, box, c)
	}

	b.expanded = true
	b.Text = b.label + chevronOpen
	b.Importance = widget.HighImportance

	pos := fyne.CurrentApp().Driver().AbsolutePositionForObject(b)
	pos.Y += b.Size().Height // Position below the button
	b.overlay.ShowAt(pos)
	b.Refresh()
}

// Close hides the menu. No-op when already closed. Close does not move
// input focus; callers that need focus back on the trigger do that
// themselves.
func (b *MenuButton) Close() {
	if !b.expanded {
		return
	}
	b.expanded = false
	b.Text = b.label + chevronClosed
	b.Importance = widget.MediumImportance
	if b.overlay != nil {
		b.overlay.Hide()
	}
	b.Refresh()
}

// FocusItem makes the given item the single focusable menu item and moves
// input focus to it. This is the only mutator of the roving focus state.
func (b *MenuButton) FocusItem(it *Item) {
	idx := b.indexOf(it)
	if idx < 0 {
		return
	}
	b.setRoving(idx)
	if c := b.canvas(); c != nil && b.expanded {
		c.Focus(b.itemWidgets[idx])
	}
}

// FocusFirst focuses the first menu item.
func (b *MenuButton) FocusFirst() {
	if len(b.items) > 0 {
		b.FocusItem(b.items[0])
	}
}

// FocusLast focuses the last menu item.
func (b *MenuButton) FocusLast() {
	if n := len(b.items); n > 0 {
		b.FocusItem(b.items[n-1])
	}
}

// FocusNext focuses the item after current, wrapping to the first item.
func (b *MenuButton) FocusNext(current *Item) {
	idx := b.indexOf(current)
	if idx < 0 {
		return
	}
	b.FocusItem(b.items[(idx+1)%len(b.items)])
}

// FocusPrevious focuses the item before current, wrapping to the last item.
func (b *MenuButton) FocusPrevious(current *Item) {
	idx := b.indexOf(current)
	if idx < 0 {
		return
	}
	b.FocusItem(b.items[(idx-1+len(b.items))%len(b.items)])
}

// FocusByFirstCharacter focuses the next item whose label starts with r,
// case-insensitively, searching forward from the position after current and
// wrapping to the start. No-op when no label matches.
func (b *MenuButton) FocusByFirstCharacter(current *Item, r rune) {
	n := len(b.items)
	if n == 0 {
		return
	}
	r = unicode.ToLower(r)
	start := b.indexOf(current) + 1
	for i := 0; i < n; i++ {
		idx := (start + i) % n
		if b.firstChars[idx] == r {
			b.FocusItem(b.items[idx])
			return
		}
	}
}

// Tapped toggles the menu: opening focuses the first item, closing returns
// focus to the trigger.
func (b *MenuButton) Tapped(_ *fyne.PointEvent) {
	if b.expanded {
		b.Close()
		b.focusTrigger()
		return
	}
	b.Open()
	b.FocusFirst()
}

// TypedKey handles keyboard operation of the trigger.
func (b *MenuButton) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter, fyne.KeyDown:
		b.Open()
		b.FocusFirst()
	case fyne.KeyUp:
		b.Open()
		b.FocusLast()
	case fyne.KeyEscape:
		b.Close()
	}
}

// TypedRune is consumed so typing on the trigger does not fall through to
// the embedded button behaviour.
func (b *MenuButton) TypedRune(_ rune) {}

// activate closes the menu, invokes the action callback with the activated
// item, then returns focus to the trigger.
func (b *MenuButton) activate(it *Item) {
	b.Close()
	if b.onAction != nil {
		b.onAction(it)
	}
	b.focusTrigger()
}

// dismiss closes the menu in response to a press outside it. Presses while
// closed have no effect.
func (b *MenuButton) dismiss() {
	if !b.expanded {
		return
	}
	b.Close()
	b.focusTrigger()
}

// setRoving updates the focusable flags so that only the item at idx is
// focusable, and repaints items whose state changed.
func (b *MenuButton) setRoving(idx int) {
	b.focusIndex = idx
	for i, iw := range b.itemWidgets {
		focusable := i == idx
		if iw.focusable != focusable {
			iw.focusable = focusable
			iw.Refresh()
		}
	}
}

func (b *MenuButton) focusTrigger() {
	if c := b.canvas(); c != nil {
		c.Focus(b)
	}
}

func (b *MenuButton) canvas() fyne.Canvas {
	return fyne.CurrentApp().Driver().CanvasForObject(b)
}

func (b *MenuButton) indexOf(it *Item) int {
	for i, candidate := range b.items {
		if candidate == it {
			return i
		}
	}
	return -1
}
