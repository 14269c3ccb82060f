package main

import (
	"fmt"
	"log"
	"os"
	"strings"

	"menubutton-panel/locales"
	"menubutton-panel/menubutton"
	"menubutton-panel/shared"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"
	"go.uber.org/atomic"
)

const releaseNotesURL = "https://github.com/menubutton-panel/panel/releases"

var (
	outputEntry *widget.Entry
	statusLabel *widget.Label
	activations = atomic.NewInt64(0)
)

// newActionCallback builds the default action callback: it writes the
// activated item's trimmed label into the output field, updates the status
// line, and runs any handler attached to the item.
func newActionCallback(loc *locales.Localizer) func(*menubutton.Item) {
	return func(it *menubutton.Item) {
		count := activations.Inc()
		label := strings.TrimSpace(it.Label)
		outputEntry.SetText(label)
		statusLabel.SetText(fmt.Sprintf("%s: %s (%d)", loc.T("StatusActivated"), label, count))
		log.Printf("Activated %q", label)

		if handler, ok := it.Data.(func()); ok && handler != nil {
			handler()
		}
	}
}

func main() {
	log.SetFlags(log.LstdFlags | log.Lshortfile)
	log.SetOutput(shared.NewLogPathShorteningWriter(os.Stderr))

	InitEnv()
	if err := acquireInstanceLock(); err != nil {
		log.Fatalf("Cannot start: %v", err)
	}
	defer releaseInstanceLock()

	loc := locales.NewLocalizer(GetLocale())

	a := app.NewWithID("app.menubutton.panel")
	a.Settings().SetTheme(newPanelTheme())
	w := a.NewWindow(GetWindowTitle())
	w.Resize(fyne.NewSize(600, 300))

	outputEntry = widget.NewEntry()
	outputEntry.SetPlaceHolder(loc.T("OutputNone"))
	statusLabel = widget.NewLabel(loc.T("StatusReady"))
	statusLabel.Wrapping = fyne.TextWrapWord

	onAction := newActionCallback(loc)

	actionsMenu := menubutton.NewMenuButton(loc.T("MenuActions"), []*menubutton.Item{
		menubutton.NewItem(loc.T("ItemDownload"), nil),
		menubutton.NewItem(loc.T("ItemCopy"), nil),
		menubutton.NewItem(loc.T("ItemPaste"), nil),
	}, onAction)

	systemMenu := menubutton.NewMenuButton(loc.T("MenuSystem"), []*menubutton.Item{
		menubutton.NewItem(loc.T("ItemMemory"), func() {
			dialog.ShowInformation(loc.T("ItemMemory"), MemorySummary(), w)
		}),
		menubutton.NewItem(loc.T("ItemProcess"), func() {
			dialog.ShowInformation(loc.T("ItemProcess"), ProcessSummary(), w)
		}),
		menubutton.NewItem(loc.T("ItemAbout"), func() {
			dialog.ShowInformation(loc.T("ItemAbout"),
				fmt.Sprintf("%s %s", loc.T("AboutVersion"), GetPanelVersion()), w)
		}),
	}, onAction)

	mainContent := container.NewVBox(
		widget.NewLabelWithStyle(loc.T("PanelHeading"), fyne.TextAlignCenter, fyne.TextStyle{Bold: true}),
		container.NewHBox(actionsMenu, systemMenu),
		widget.NewForm(widget.NewFormItem(loc.T("OutputLabel"), outputEntry)),
		statusLabel,
	)

	// An update banner appears when the preferences record a release newer
	// than this build.
	if latest := GetLatestKnownVersion(); latest != "" && IsNewerVersion(latest, GetPanelVersion()) {
		mainContent.Add(shared.CreateUpdateNotification(loc.T("UpdateAvailable"), releaseNotesURL))
	}

	w.SetContent(mainContent)

	w.SetCloseIntercept(func() {
		releaseInstanceLock()
		w.Close()
	})

	w.ShowAndRun()
}
