package shared

import (
	"image/color"
	"net/url"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// CreateUpdateNotification creates a notification row with a warning icon,
// the given message, and an optional release-notes link.
func CreateUpdateNotification(message string, releaseNotesURL string) fyne.CanvasObject {
	messageLabel := widget.NewLabel(message)
	messageLabel.TextStyle = fyne.TextStyle{Bold: true}
	warningIcon := canvas.NewText("⚠️", color.Black)
	warningIcon.TextSize = 20
	messageBox := container.NewHBox(warningIcon, messageLabel)
	if releaseNotesURL != "" {
		if u, err := url.Parse(releaseNotesURL); err == nil {
			messageBox.Add(widget.NewHyperlink("Release notes", u))
		}
	}
	return messageBox
}
