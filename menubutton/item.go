package menubutton

import "unicode"

// Item is a single entry in a menu button's action menu.
type Item struct {
	Label string // Display text for the item
	Data  any    // Application-specific data attached to the item
}

// NewItem creates a menu item with the given label and attached data.
func NewItem(label string, data any) *Item {
	return &Item{Label: label, Data: data}
}

// firstCharacter returns the lowercased first non-space rune of the label,
// used for first-character navigation. Returns 0 for blank labels.
func firstCharacter(label string) rune {
	for _, r := range label {
		if !unicode.IsSpace(r) {
			return unicode.ToLower(r)
		}
	}
	return 0
}
