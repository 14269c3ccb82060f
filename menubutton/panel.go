package menubutton

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// menuItem is the widget for one entry of the open menu. It carries the
// roving focusable flag and forwards all interaction to its owning
// MenuButton.
type menuItem struct {
	widget.BaseWidget

	owner *MenuButton
	item  *Item
	index int

	focusable bool // roving tabstop; true for exactly one item once focus entered the menu
	focused   bool

	background *canvas.Rectangle
	label      *widget.Label
}

func newMenuItem(owner *MenuButton, it *Item, index int) *menuItem {
	mi := &menuItem{
		owner:      owner,
		item:       it,
		index:      index,
		background: canvas.NewRectangle(color.Transparent),
		label:      widget.NewLabel(it.Label),
	}
	mi.ExtendBaseWidget(mi)
	return mi
}

func (mi *menuItem) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(container.NewStack(mi.background, mi.label))
}

func (mi *menuItem) Refresh() {
	if mi.focused {
		mi.background.FillColor = theme.Color(theme.ColorNameFocus)
	} else {
		mi.background.FillColor = color.Transparent
	}
	mi.BaseWidget.Refresh()
}

// FocusGained keeps the roving state in sync when focus arrives from canvas
// traversal or hover.
func (mi *menuItem) FocusGained() {
	mi.focused = true
	mi.owner.setRoving(mi.index)
	mi.Refresh()
}

func (mi *menuItem) FocusLost() {
	mi.focused = false
	mi.Refresh()
}

// TypedKey handles menu navigation and activation.
func (mi *menuItem) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeySpace, fyne.KeyReturn, fyne.KeyEnter:
		mi.owner.activate(mi.item)
	case fyne.KeyEscape:
		mi.owner.Close()
		mi.owner.focusTrigger()
	case fyne.KeyUp:
		mi.owner.FocusPrevious(mi.item)
	case fyne.KeyDown:
		mi.owner.FocusNext(mi.item)
	case fyne.KeyHome:
		mi.owner.FocusFirst()
	case fyne.KeyEnd:
		mi.owner.FocusLast()
	case fyne.KeyTab:
		// Close only; focus traversal then continues from the trigger.
		mi.owner.Close()
		mi.owner.focusTrigger()
		if c := mi.owner.canvas(); c != nil {
			c.FocusNext()
		}
	}
}

// TypedRune implements first-character navigation.
func (mi *menuItem) TypedRune(r rune) {
	mi.owner.FocusByFirstCharacter(mi.item, r)
}

// TypedShortcut deliberately does nothing: keypresses with Ctrl, Alt, or
// Meta held are ignored by the menu.
func (mi *menuItem) TypedShortcut(_ fyne.Shortcut) {}

// AcceptsTab keeps Tab out of the canvas traversal while the menu is open so
// TypedKey can close the menu first.
func (mi *menuItem) AcceptsTab() bool {
	return true
}

// Tapped activates the item.
func (mi *menuItem) Tapped(_ *fyne.PointEvent) {
	mi.owner.activate(mi.item)
}

// MouseIn moves the roving focus to the hovered item so pointer and
// keyboard navigation stay in sync.
func (mi *menuItem) MouseIn(_ *desktop.MouseEvent) {
	mi.owner.FocusItem(mi.item)
}

func (mi *menuItem) MouseMoved(_ *desktop.MouseEvent) {}

func (mi *menuItem) MouseOut() {}

// menuOverlay is the popup surface holding the menu items. While shown it
// covers the whole canvas, so it observes presses outside the menu before
// any widget underneath can and closes the menu, returning focus to the
// trigger.
type menuOverlay struct {
	widget.BaseWidget

	owner        *MenuButton
	content      fyne.CanvasObject
	background   *canvas.Rectangle
	targetCanvas fyne.Canvas
	menuPos      fyne.Position
	shown        bool
}

func newMenuOverlay(owner *MenuButton, content fyne.CanvasObject, c fyne.Canvas) *menuOverlay {
	bg := canvas.NewRectangle(theme.Color(theme.ColorNameOverlayBackground))
	bg.StrokeColor = theme.Color(theme.ColorNameShadow)
	bg.StrokeWidth = 1
	o := &menuOverlay{
		owner:        owner,
		content:      content,
		background:   bg,
		targetCanvas: c,
	}
	o.ExtendBaseWidget(o)
	return o
}

// ShowAt places the menu at pos and pushes the overlay onto the canvas.
func (o *menuOverlay) ShowAt(pos fyne.Position) {
	o.menuPos = pos
	if !o.shown {
		o.targetCanvas.Overlays().Add(o)
		o.shown = true
	}
	o.Resize(o.targetCanvas.Size())
	o.BaseWidget.Show()
	o.Refresh()
}

func (o *menuOverlay) Hide() {
	if o.shown {
		o.targetCanvas.Overlays().Remove(o)
		o.shown = false
	}
	o.BaseWidget.Hide()
}

func (o *menuOverlay) CreateRenderer() fyne.WidgetRenderer {
	return &menuOverlayRenderer{overlay: o}
}

func (o *menuOverlay) Tapped(_ *fyne.PointEvent) {
	o.owner.dismiss()
}

func (o *menuOverlay) TappedSecondary(_ *fyne.PointEvent) {
	o.owner.dismiss()
}

type menuOverlayRenderer struct {
	overlay *menuOverlay
}

func (r *menuOverlayRenderer) Layout(_ fyne.Size) {
	min := r.overlay.content.MinSize()
	r.overlay.content.Resize(min)
	r.overlay.content.Move(r.overlay.menuPos)
	r.overlay.background.Resize(min)
	r.overlay.background.Move(r.overlay.menuPos)
}

func (r *menuOverlayRenderer) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (r *menuOverlayRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.overlay.background, r.overlay.content}
}

func (r *menuOverlayRenderer) Refresh() {
	r.overlay.background.FillColor = theme.Color(theme.ColorNameOverlayBackground)
	r.overlay.background.Refresh()
	r.overlay.content.Refresh()
}

func (r *menuOverlayRenderer) Destroy() {}
